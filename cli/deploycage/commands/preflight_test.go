package commands_test

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/loilo-inc/deploycage/errs"
	"github.com/loilo-inc/deploycage/test"
	"github.com/stretchr/testify/assert"
)

func TestRunPreflight(t *testing.T) {
	envars := test.DefaultEnvars()
	args := func(ta *testApp) []string {
		return []string{"deploycage", "run-preflight",
			"--cluster", envars.Cluster(),
			"--service", envars.ServiceName(),
			"--task-definition-arn", ta.fixture.Seeds[envars.PreflightIdentity()],
		}
	}
	t.Run("basic", func(t *testing.T) {
		ta := setup(t, false)
		err := ta.app.Run(args(ta))
		assert.NoError(t, err)
		assert.Len(t, ta.fixture.Ecs.RunTaskInputs, 1)
		assert.Contains(t, ta.stdout.String(), "preflight_task_arn=arn:aws:ecs:us-west-2:012345678910:task/dev/")
	})
	t.Run("non zero exit code", func(t *testing.T) {
		ta := setup(t, false)
		ta.fixture.Ecs.ExitCodes[envars.PreflightIdentity()] = aws.Int32(2)
		err := ta.app.Run(args(ta))
		var pf *errs.PreflightFailedError
		assert.ErrorAs(t, err, &pf)
		assert.Equal(t, int32(2), *pf.ExitCode)
	})
	t.Run("should give up after max attempts", func(t *testing.T) {
		ta := setup(t, false)
		ta.fixture.Ecs.TaskPolls = 10
		err := ta.app.Run(append(args(ta), "--task-stopped-max-attempts", "3"))
		var exceeded *errs.WaiterExceededError
		assert.ErrorAs(t, err, &exceeded)
		assert.Equal(t, 3, exceeded.MaxAttempts)
	})
	t.Run("should require task definition", func(t *testing.T) {
		ta := setup(t, false)
		err := ta.app.Run([]string{"deploycage", "run-preflight", "--cluster", "dev", "--service", "app-dev"})
		assert.EqualError(t, err, `Required flag "task-definition-arn" not set`)
	})
}
