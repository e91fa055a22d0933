package deployapp

import (
	"context"

	"github.com/loilo-inc/deploycage/awsiface"
	"github.com/loilo-inc/deploycage/logger"
	"github.com/loilo-inc/deploycage/types"
)

type ClientsProvider = func(ctx context.Context, region string) (awsiface.EcsClient, awsiface.EcrClient)
type DeployerProvider = func(input *types.Input) types.Deployer
type OutputsProvider = func(p logger.Printer) (*logger.Outputs, func() error, error)

// Provider builds what commands need at run time.
type Provider struct {
	Clients  ClientsProvider
	Deployer DeployerProvider
	Outputs  OutputsProvider
	Time     types.Time
}
