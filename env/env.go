package env

import (
	"fmt"
	"strings"

	"golang.org/x/xerrors"
)

type Environment string

const (
	Dev  Environment = "dev"
	Test Environment = "test"
	Live Environment = "live"
)

// Environments lists every accepted value of --environment.
var Environments = []Environment{Dev, Test, Live}

// FeatureBranchEnvironment is the only environment feature branches may deploy to.
const FeatureBranchEnvironment = Dev

func (e Environment) Valid() bool {
	for _, v := range Environments {
		if e == v {
			return true
		}
	}
	return false
}

type Envars struct {
	_                            struct{}    `type:"struct"`
	CI                           bool        `json:"ci" type:"bool"`
	Region                       string      `json:"region" type:"string"`
	Environment                  Environment `json:"environment" type:"string" required:"true"`
	AllowFeatureBranchDeployment bool        `json:"allowFeatureBranchDeployment" type:"bool"`
	EcrRepository                string      `json:"ecrRepository" type:"string" required:"true"`
	DeploymentTag                string      `json:"deploymentTag" type:"string" required:"true"`
	ImageTag                     string      `json:"imageTag" type:"string" required:"true"`
	RunPreflight                 bool        `json:"runPreflight" type:"bool"`
	DesiredCount                 int         `json:"desiredCount" type:"integer"`
	SeedCreator                  string      `json:"seedCreator" type:"string"`
	TaskStoppedInterval          int         // sec
	TaskStoppedMaxAttempts       int
	ServiceStableInterval        int // sec
	ServiceStableMaxAttempts     int
}

// required
const EnvironmentKey = "DEPLOYCAGE_ENVIRONMENT"
const EcrRepositoryKey = "ECR_REPOSITORY"
const DeploymentTagKey = "DEPLOYMENT_TAG"
const ImageTagKey = "IMAGE_TAG"
const DesiredCountKey = "DEPLOYCAGE_DESIRED_COUNT"

// optional
const RegionKey = "AWS_DEFAULT_REGION"
const RunPreflightKey = "RUN_PREFLIGHT"
const SeedCreatorKey = "DEPLOYCAGE_SEED_CREATOR"
const TaskStoppedIntervalKey = "DEPLOYCAGE_TASK_STOPPED_INTERVAL"
const TaskStoppedMaxAttemptsKey = "DEPLOYCAGE_TASK_STOPPED_MAX_ATTEMPTS"
const ServiceStableIntervalKey = "DEPLOYCAGE_SERVICE_STABLE_INTERVAL"
const ServiceStableMaxAttemptsKey = "DEPLOYCAGE_SERVICE_STABLE_MAX_ATTEMPTS"

const DefaultSeedCreator = "Pulumi"

func EnsureEnvars(
	dest *Envars,
) error {
	// required
	if !dest.Environment.Valid() {
		return xerrors.Errorf("--environment [%s] must be one of %s", EnvironmentKey, joinEnvironments())
	}
	if dest.EcrRepository == "" {
		return xerrors.Errorf("--ecr-repository [%s] is required", EcrRepositoryKey)
	} else if dest.DeploymentTag == "" {
		return xerrors.Errorf("--deployment-tag [%s] is required", DeploymentTagKey)
	} else if dest.ImageTag == "" {
		return xerrors.Errorf("--image-tag [%s] is required", ImageTagKey)
	}
	if dest.DesiredCount < 0 {
		return xerrors.Errorf("--desired-count [%s] must not be negative", DesiredCountKey)
	}
	if dest.SeedCreator == "" {
		dest.SeedCreator = DefaultSeedCreator
	}
	return nil
}

func joinEnvironments() string {
	names := make([]string, len(Environments))
	for i, v := range Environments {
		names[i] = string(v)
	}
	return strings.Join(names, ", ")
}

// Cluster is named after the environment.
func (e *Envars) Cluster() string {
	return string(e.Environment)
}

func (e *Envars) ServiceName() string {
	return fmt.Sprintf("%s-%s", e.EcrRepository, e.Environment)
}

func (e *Envars) LocalExecIdentity() string {
	return fmt.Sprintf("%s-local-exec-%s", e.EcrRepository, e.Environment)
}

func (e *Envars) PreflightIdentity() string {
	return fmt.Sprintf("%s-preflight-%s", e.EcrRepository, e.Environment)
}
