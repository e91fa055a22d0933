package deployapp

import (
	"github.com/loilo-inc/deploycage"
	"github.com/loilo-inc/deploycage/awsiface"
	"github.com/loilo-inc/deploycage/logger"
	"github.com/loilo-inc/deploycage/timeout"
)

func DefaultProvider() *Provider {
	return &Provider{
		Clients:  awsiface.NewClients,
		Deployer: deploycage.NewDeployer,
		Outputs:  logger.OpenOutputs,
		Time:     &timeout.Time{},
	}
}
