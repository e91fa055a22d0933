package deployapp

import (
	"fmt"
	"strings"

	"github.com/loilo-inc/deploycage/env"
	"github.com/loilo-inc/deploycage/timeout"
	"github.com/urfave/cli/v2"
)

func RegionFlag(dest *string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "aws-region",
		Aliases:     []string{"region"},
		EnvVars:     []string{env.RegionKey},
		Usage:       "aws region for ecs and ecr. if not specified, try to load from aws config automatically",
		Destination: dest,
	}
}

func EnvironmentFlag(dest *string) *cli.StringFlag {
	names := make([]string, len(env.Environments))
	for i, e := range env.Environments {
		names[i] = string(e)
	}
	return &cli.StringFlag{
		Name:        "environment",
		EnvVars:     []string{env.EnvironmentKey},
		Usage:       fmt.Sprintf("deployment environment (%s). also the name of the ecs cluster", strings.Join(names, ", ")),
		Destination: dest,
	}
}

func AllowFeatureBranchDeploymentFlag(dest *bool) *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:        "allow-feature-branch-deployment",
		Usage:       fmt.Sprintf("deploy from a feature branch. only allowed for the %s environment", env.FeatureBranchEnvironment),
		Destination: dest,
	}
}

func EcrRepositoryFlag(dest *string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "ecr-repository",
		EnvVars:     []string{env.EcrRepositoryKey},
		Usage:       "ecr repository of the image. also the prefix of the service and task definition families",
		Destination: dest,
	}
}

func DeploymentTagFlag(dest *string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "deployment-tag",
		EnvVars:     []string{env.DeploymentTagKey},
		Usage:       "value of the 'created_by' tag put on task definitions registered by this deployment",
		Destination: dest,
	}
}

func ImageTagFlag(dest *string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "image-tag",
		EnvVars:     []string{env.ImageTagKey},
		Usage:       "tag of the image to deploy",
		Destination: dest,
	}
}

func RunPreflightFlag(dest *bool) *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:        "run-preflight",
		EnvVars:     []string{env.RunPreflightKey},
		Usage:       "run the preflight task definition once before updating the service",
		Destination: dest,
	}
}

func DesiredCountFlag(dest *int) *cli.IntFlag {
	return &cli.IntFlag{
		Name:        "desired-count",
		EnvVars:     []string{env.DesiredCountKey},
		Usage:       "desired task count of the service after the deployment",
		Destination: dest,
		Required:    true,
	}
}

func SeedCreatorFlag(dest *string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "seed-creator",
		EnvVars:     []string{env.SeedCreatorKey},
		Usage:       "value of the 'created_by' tag of the seed task definitions provisioned by infrastructure code",
		Destination: dest,
		Category:    "ADVANCED",
		Value:       env.DefaultSeedCreator,
	}
}

func TaskStoppedIntervalFlag(dest *int) *cli.IntFlag {
	return &cli.IntFlag{
		Name:        "task-stopped-interval",
		EnvVars:     []string{env.TaskStoppedIntervalKey},
		Usage:       "seconds between checks while waiting for a task to stop",
		Destination: dest,
		Category:    "ADVANCED",
		Value:       int(timeout.DefaultTaskStopped.Interval.Seconds()),
	}
}

func TaskStoppedMaxAttemptsFlag(dest *int) *cli.IntFlag {
	return &cli.IntFlag{
		Name:        "task-stopped-max-attempts",
		EnvVars:     []string{env.TaskStoppedMaxAttemptsKey},
		Usage:       "max checks while waiting for a task to stop. interval * attempts must exceed the CI job timeout",
		Destination: dest,
		Category:    "ADVANCED",
		Value:       timeout.DefaultTaskStopped.MaxAttempts,
	}
}

func ServiceStableIntervalFlag(dest *int) *cli.IntFlag {
	return &cli.IntFlag{
		Name:        "service-stable-interval",
		EnvVars:     []string{env.ServiceStableIntervalKey},
		Usage:       "seconds between checks while waiting for the service to be stable",
		Destination: dest,
		Category:    "ADVANCED",
		Value:       int(timeout.DefaultServiceStable.Interval.Seconds()),
	}
}

func ServiceStableMaxAttemptsFlag(dest *int) *cli.IntFlag {
	return &cli.IntFlag{
		Name:        "service-stable-max-attempts",
		EnvVars:     []string{env.ServiceStableMaxAttemptsKey},
		Usage:       "max checks while waiting for the service to be stable. interval * attempts must exceed the CI job timeout",
		Destination: dest,
		Category:    "ADVANCED",
		Value:       timeout.DefaultServiceStable.MaxAttempts,
	}
}

func ClusterFlag(dest *string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "cluster",
		Usage:       "ecs cluster name",
		Destination: dest,
		Required:    true,
	}
}

func ServiceFlag(dest *string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "service",
		Usage:       "ecs service name",
		Destination: dest,
		Required:    true,
	}
}

func TaskDefinitionArnFlag(dest *string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "task-definition-arn",
		Usage:       "full arn or family:revision of task definition",
		Destination: dest,
		Required:    true,
	}
}

func TaskFlag(dest *string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "task",
		Usage:       "task arn",
		Destination: dest,
		Required:    true,
	}
}

func FamilyPrefixFlag(dest *string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "family-prefix",
		Usage:       "task definition family",
		Destination: dest,
		Required:    true,
	}
}

func TagsFlag(dest *string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "tags",
		Usage:       "required tags in the form 'key:value,key:value'",
		Destination: dest,
		Required:    true,
	}
}

func AllowInitialDeploymentFlag(dest *bool) *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:        "allow-initial-deployment",
		Usage:       "print an empty arn if the seed task definition is the only active revision",
		Destination: dest,
	}
}

// TimeoutFlags are the poll tuning flags every waiting command accepts.
func TimeoutFlags(envars *env.Envars) []cli.Flag {
	return []cli.Flag{
		TaskStoppedIntervalFlag(&envars.TaskStoppedInterval),
		TaskStoppedMaxAttemptsFlag(&envars.TaskStoppedMaxAttempts),
		ServiceStableIntervalFlag(&envars.ServiceStableInterval),
		ServiceStableMaxAttemptsFlag(&envars.ServiceStableMaxAttempts),
	}
}
