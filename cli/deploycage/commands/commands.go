package commands

import (
	"context"
	"errors"

	"github.com/loilo-inc/deploycage/cli/deploycage/deployapp"
	"github.com/loilo-inc/deploycage/env"
	"github.com/loilo-inc/deploycage/errs"
	"github.com/loilo-inc/deploycage/logger"
	"github.com/loilo-inc/deploycage/timeout"
	"github.com/loilo-inc/deploycage/types"
	"github.com/loilo-inc/deploycage/waiter"
	"golang.org/x/xerrors"
)

type Commands struct {
	printer  logger.Printer
	provider *deployapp.Provider
}

func NewCommands(printer logger.Printer, provider *deployapp.Provider) *Commands {
	return &Commands{printer: printer, provider: provider}
}

// setup builds the input every command runs with. The returned func
// releases the step output file.
func (c *Commands) setup(ctx context.Context, envars *env.Envars) (*types.Input, func() error, error) {
	outputs, closer, err := c.provider.Outputs(c.printer)
	if err != nil {
		return nil, nil, xerrors.Errorf("failed to open $%s: %w", logger.GithubOutputKey, err)
	}
	ecsCli, ecrCli := c.provider.Clients(ctx, envars.Region)
	return &types.Input{
		Env:     envars,
		Ecs:     ecsCli,
		Ecr:     ecrCli,
		Time:    c.provider.Time,
		Outputs: outputs,
	}, closer, nil
}

func (c *Commands) poller(input *types.Input, pick func(timeout.Manager) waiter.Config) *waiter.Poller {
	return waiter.NewPoller(pick(timeout.NewManager(input.Env)), input.Time)
}

// Report annotates the failed step and returns the process exit code.
func Report(p logger.Printer, err error) int {
	if err == nil {
		return 0
	}
	var rollback *errs.RollbackTriggeredError
	if errors.As(err, &rollback) {
		logger.Annotate(p, errs.RollbackMessage)
	} else {
		logger.Annotate(p, err.Error())
	}
	return 1
}
