package test

import (
	"time"

	"github.com/loilo-inc/deploycage/types"
)

// newTimer fires right away. It is a real timer so callers may Stop it.
func newTimer(_ time.Duration) *time.Timer {
	return time.NewTimer(0)
}

type timeImpl struct{}

func (t *timeImpl) Now() time.Time {
	return time.Now()
}
func (t *timeImpl) NewTimer(d time.Duration) *time.Timer {
	return newTimer(d)
}

// NewFakeTime returns a clock whose timers fire immediately.
func NewFakeTime() types.Time {
	return &timeImpl{}
}
