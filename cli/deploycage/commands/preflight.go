package commands

import (
	"github.com/apex/log"
	"github.com/loilo-inc/deploycage/cli/deploycage/deployapp"
	"github.com/loilo-inc/deploycage/env"
	"github.com/loilo-inc/deploycage/preflight"
	"github.com/loilo-inc/deploycage/timeout"
	"github.com/urfave/cli/v2"
)

func (c *Commands) RunPreflight(envars *env.Envars) *cli.Command {
	var cluster, service, taskDefinitionArn string
	return &cli.Command{
		Name:        "run-preflight",
		Usage:       "run a task definition once in the network of a service and wait for it to exit",
		Description: "fails unless the only container of the task exits with code 0",
		Flags: append([]cli.Flag{
			deployapp.RegionFlag(&envars.Region),
			deployapp.ClusterFlag(&cluster),
			deployapp.ServiceFlag(&service),
			deployapp.TaskDefinitionArnFlag(&taskDefinitionArn),
		}, deployapp.TimeoutFlags(envars)...),
		Action: func(ctx *cli.Context) error {
			input, closer, err := c.setup(ctx.Context, envars)
			if err != nil {
				return err
			}
			defer closer()
			runner := preflight.NewRunner(input.Ecs, c.poller(input, timeout.Manager.TaskStopped), input.Outputs)
			if _, err := runner.Run(ctx.Context, taskDefinitionArn, cluster, service); err != nil {
				return err
			}
			log.Infof("👍 preflight succeeded")
			return nil
		},
	}
}
