package types

import (
	"context"
	"time"

	"github.com/loilo-inc/deploycage/awsiface"
	"github.com/loilo-inc/deploycage/env"
	"github.com/loilo-inc/deploycage/logger"
)

type Deployer interface {
	Deploy(ctx context.Context) (*DeployOutcome, error)
}

type Time interface {
	Now() time.Time
	NewTimer(time.Duration) *time.Timer
}

type Input struct {
	Env     *env.Envars
	Ecs     awsiface.EcsClient
	Ecr     awsiface.EcrClient
	Time    Time
	Outputs *logger.Outputs
}

// DeployResult is produced once per application identity. An empty
// PreviousTaskDefinitionArn means the identity had never been deployed.
type DeployResult struct {
	PreviousTaskDefinitionArn string
	LatestTaskDefinitionArn   string
}

type PreflightResult struct {
	TaskArn string
}

// DeployOutcome holds what a deploy run got through. Nil fields were never
// reached.
type DeployOutcome struct {
	ImageUri      string
	Local         *DeployResult
	Production    *DeployResult
	Preflight     *DeployResult
	PreflightTask *PreflightResult
}
