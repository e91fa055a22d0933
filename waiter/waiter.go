// Package waiter polls the cluster until it reaches a wanted state.
//
// The poll loop is explicit instead of the SDK's built-in waiters so that
// the interval, the attempt budget and the clock can all be injected.
package waiter

import (
	"context"
	"time"

	"github.com/apex/log"
	"github.com/loilo-inc/deploycage/errs"
	"github.com/loilo-inc/deploycage/types"
)

type Config struct {
	Interval    time.Duration
	MaxAttempts int
}

// MaxWait is the longest a Poller with this config can block.
func (c Config) MaxWait() time.Duration {
	return c.Interval * time.Duration(c.MaxAttempts)
}

// Condition reports whether the awaited state is reached.
// Returning an error aborts the wait.
type Condition func(ctx context.Context) (bool, error)

type Poller struct {
	Config
	Time types.Time
}

func NewPoller(conf Config, t types.Time) *Poller {
	return &Poller{Config: conf, Time: t}
}

// Wait evaluates cond right away and then once per Interval until it
// holds, fails, or MaxAttempts evaluations have been spent.
func (p *Poller) Wait(ctx context.Context, name string, cond Condition) error {
	maxAttempts := p.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	for attempt := 1; ; attempt++ {
		done, err := cond(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		if attempt >= maxAttempts {
			break
		}
		log.Debugf("%s: attempt %d/%d, retrying in %s", name, attempt, maxAttempts, p.Interval)
		timer := p.Time.NewTimer(p.Interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return &errs.WaiterExceededError{Name: name, MaxAttempts: maxAttempts}
}
