package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/loilo-inc/deploycage/awsiface"
	"github.com/loilo-inc/deploycage/cli/deploycage/commands"
	"github.com/loilo-inc/deploycage/cli/deploycage/deployapp"
	"github.com/loilo-inc/deploycage/env"
	"github.com/loilo-inc/deploycage/logger"
	"github.com/loilo-inc/deploycage/mocks/mock_types"
	"github.com/loilo-inc/deploycage/test"
	"github.com/loilo-inc/deploycage/types"
	"github.com/urfave/cli/v2"
)

type testApp struct {
	app      *cli.App
	fixture  *test.Fixture
	deployer *mock_types.MockDeployer
	stdout   *bytes.Buffer
	// input is what the deployer was built with.
	input *types.Input
}

func setup(t *testing.T, deployed bool) *testApp {
	ctrl := gomock.NewController(t)
	ta := &testApp{
		fixture:  test.Setup(test.DefaultEnvars(), deployed),
		deployer: mock_types.NewMockDeployer(ctrl),
		stdout:   &bytes.Buffer{},
	}
	printer := logger.NewPrinter(ta.stdout, &bytes.Buffer{})
	provider := &deployapp.Provider{
		Clients: func(ctx context.Context, region string) (awsiface.EcsClient, awsiface.EcrClient) {
			return ta.fixture.Ecs, ta.fixture.Ecr
		},
		Deployer: func(input *types.Input) types.Deployer {
			ta.input = input
			return ta.deployer
		},
		Outputs: func(p logger.Printer) (*logger.Outputs, func() error, error) {
			return logger.NewOutputs(p, nil), func() error { return nil }, nil
		},
		Time: test.NewFakeTime(),
	}
	cmds := commands.NewCommands(printer, provider)
	envars := env.Envars{}
	app := cli.NewApp()
	app.Commands = []*cli.Command{
		cmds.EcsDeploy(&envars),
		cmds.GetActiveTaskDefinition(&envars),
		cmds.GetImageUri(&envars),
		cmds.RunPreflight(&envars),
		cmds.WaitForServiceStability(&envars),
		cmds.WaitForTaskStopped(&envars),
	}
	ta.app = app
	return ta
}
