package commands

import (
	"github.com/apex/log"
	"github.com/loilo-inc/deploycage/cli/deploycage/deployapp"
	"github.com/loilo-inc/deploycage/env"
	"github.com/urfave/cli/v2"
)

func (c *Commands) EcsDeploy(envars *env.Envars) *cli.Command {
	var environment string
	return &cli.Command{
		Name:  "ecs-deploy",
		Usage: "register new task definitions for the image and roll the ecs service onto them",
		Description: "publishes the local exec, production and (optionally) preflight task definitions, " +
			"runs the preflight task and updates the service. previous revisions are deregistered on success, " +
			"the new ones on failure.",
		Flags: append([]cli.Flag{
			deployapp.RegionFlag(&envars.Region),
			deployapp.EnvironmentFlag(&environment),
			deployapp.AllowFeatureBranchDeploymentFlag(&envars.AllowFeatureBranchDeployment),
			deployapp.EcrRepositoryFlag(&envars.EcrRepository),
			deployapp.DeploymentTagFlag(&envars.DeploymentTag),
			deployapp.ImageTagFlag(&envars.ImageTag),
			deployapp.RunPreflightFlag(&envars.RunPreflight),
			deployapp.DesiredCountFlag(&envars.DesiredCount),
			deployapp.SeedCreatorFlag(&envars.SeedCreator),
		}, deployapp.TimeoutFlags(envars)...),
		Action: func(ctx *cli.Context) error {
			envars.Environment = env.Environment(environment)
			if err := env.EnsureEnvars(envars); err != nil {
				return err
			}
			input, closer, err := c.setup(ctx.Context, envars)
			if err != nil {
				return err
			}
			defer closer()
			if _, err := c.provider.Deployer(input).Deploy(ctx.Context); err != nil {
				return err
			}
			log.Infof("🎉 '%s' is now running image '%s'", envars.ServiceName(), envars.ImageTag)
			return nil
		},
	}
}
