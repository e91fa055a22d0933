package commands

import (
	"github.com/apex/log"
	"github.com/loilo-inc/deploycage/cli/deploycage/deployapp"
	"github.com/loilo-inc/deploycage/env"
	"github.com/loilo-inc/deploycage/timeout"
	"github.com/loilo-inc/deploycage/waiter"
	"github.com/urfave/cli/v2"
)

func (c *Commands) WaitForServiceStability(envars *env.Envars) *cli.Command {
	var cluster, service string
	return &cli.Command{
		Name:  "wait-for-service-stability",
		Usage: "wait until the service runs a single deployment at its desired count",
		Flags: append([]cli.Flag{
			deployapp.RegionFlag(&envars.Region),
			deployapp.ClusterFlag(&cluster),
			deployapp.ServiceFlag(&service),
		}, deployapp.TimeoutFlags(envars)...),
		Action: func(ctx *cli.Context) error {
			input, closer, err := c.setup(ctx.Context, envars)
			if err != nil {
				return err
			}
			defer closer()
			log.Infof("⏳ waiting for service '%s' to be stable...", service)
			cond := waiter.ServicesStable(input.Ecs, cluster, []string{service})
			if err := c.poller(input, timeout.Manager.ServiceStable).Wait(ctx.Context, "service stable", cond); err != nil {
				return err
			}
			log.Infof("🥴 service '%s' is stable", service)
			return nil
		},
	}
}

func (c *Commands) WaitForTaskStopped(envars *env.Envars) *cli.Command {
	var cluster, task string
	return &cli.Command{
		Name:  "wait-for-task-stopped",
		Usage: "wait until the task is stopped",
		Flags: append([]cli.Flag{
			deployapp.RegionFlag(&envars.Region),
			deployapp.ClusterFlag(&cluster),
			deployapp.TaskFlag(&task),
		}, deployapp.TimeoutFlags(envars)...),
		Action: func(ctx *cli.Context) error {
			input, closer, err := c.setup(ctx.Context, envars)
			if err != nil {
				return err
			}
			defer closer()
			log.Infof("⏳ waiting for task '%s' to stop...", task)
			cond := waiter.TasksStopped(input.Ecs, cluster, []string{task})
			if err := c.poller(input, timeout.Manager.TaskStopped).Wait(ctx.Context, "task stopped", cond); err != nil {
				return err
			}
			log.Infof("🛑 task '%s' stopped", task)
			return nil
		},
	}
}
