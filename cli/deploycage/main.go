package main

import (
	"fmt"
	"os"

	"github.com/loilo-inc/deploycage/cli/deploycage/commands"
	"github.com/loilo-inc/deploycage/cli/deploycage/deployapp"
	"github.com/loilo-inc/deploycage/cli/deploycage/upgrade"
	"github.com/loilo-inc/deploycage/env"
	"github.com/loilo-inc/deploycage/logger"
	"github.com/urfave/cli/v2"
)

// set by goreleaser
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	app := cli.NewApp()
	app.Name = "deploycage"
	app.Version = fmt.Sprintf("%s (commit: %s, date: %s)", version, commit, date)
	app.Usage = "A deployment helper for AWS ECS services driven by CI"
	app.Description = "Resolves task definitions by tags, renders them with a freshly built image, " +
		"runs a preflight task, rolls the service and deregisters whichever revisions lost."
	printer := logger.NewPrinter(os.Stdout, os.Stderr)
	envars := env.Envars{}
	cmds := commands.NewCommands(printer, deployapp.DefaultProvider())
	app.Commands = []*cli.Command{
		cmds.EcsDeploy(&envars),
		cmds.GetActiveTaskDefinition(&envars),
		cmds.GetImageUri(&envars),
		cmds.RunPreflight(&envars),
		cmds.WaitForServiceStability(&envars),
		cmds.WaitForTaskStopped(&envars),
		cmds.Upgrade(upgrade.NewUpgrader(version)),
	}
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:        "ci",
			Usage:       "CI mode.",
			EnvVars:     []string{"CI"},
			Destination: &envars.CI,
		},
	}
	os.Exit(commands.Report(printer, app.Run(os.Args)))
}
