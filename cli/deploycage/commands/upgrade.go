package commands

import (
	"github.com/loilo-inc/deploycage/cli/deploycage/upgrade"
	"github.com/urfave/cli/v2"
)

func (c *Commands) Upgrade(u upgrade.Upgrader) *cli.Command {
	var preRelease bool
	return &cli.Command{
		Name:  "upgrade",
		Usage: "upgrade deploycage binary with the latest version",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "pre-release",
				Usage:       "include pre-release versions",
				Destination: &preRelease,
			},
		},
		Action: func(ctx *cli.Context) error {
			return u.Upgrade(ctx.Context, &upgrade.Input{
				PreRelease: preRelease,
			})
		},
	}
}
