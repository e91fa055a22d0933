// Package deploycage deploys a new image to an ECS service through tagged
// task definition revisions and rolls the revisions back when the service
// does not end up on the new one.
package deploycage

import (
	"github.com/loilo-inc/deploycage/timeout"
	"github.com/loilo-inc/deploycage/types"
	"github.com/loilo-inc/deploycage/waiter"
)

type deployer struct {
	*types.Input
	Timeout timeout.Manager
}

func NewDeployer(input *types.Input) types.Deployer {
	return &deployer{Input: input, Timeout: timeout.NewManager(input.Env)}
}

func (d *deployer) poller(conf waiter.Config) *waiter.Poller {
	return waiter.NewPoller(conf, d.Time)
}
