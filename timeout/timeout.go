package timeout

import (
	"time"

	"github.com/loilo-inc/deploycage/env"
	"github.com/loilo-inc/deploycage/waiter"
)

// Note: the total wait (interval * max attempts) must not be shorter than
// the timeout of the CI job running the deployment.
var (
	DefaultTaskStopped   = waiter.Config{Interval: 2 * time.Second, MaxAttempts: 1440}
	DefaultServiceStable = waiter.Config{Interval: 15 * time.Second, MaxAttempts: 1440}
)

type Manager interface {
	TaskStopped() waiter.Config
	ServiceStable() waiter.Config
}

type manager struct {
	env *env.Envars
}

func NewManager(env *env.Envars) Manager {
	return &manager{env: env}
}

func (t *manager) TaskStopped() waiter.Config {
	return pick(DefaultTaskStopped, t.env.TaskStoppedInterval, t.env.TaskStoppedMaxAttempts)
}

func (t *manager) ServiceStable() waiter.Config {
	return pick(DefaultServiceStable, t.env.ServiceStableInterval, t.env.ServiceStableMaxAttempts)
}

func pick(def waiter.Config, interval int, maxAttempts int) waiter.Config {
	conf := def
	if interval > 0 {
		conf.Interval = time.Duration(interval) * time.Second
	}
	if maxAttempts > 0 {
		conf.MaxAttempts = maxAttempts
	}
	return conf
}
