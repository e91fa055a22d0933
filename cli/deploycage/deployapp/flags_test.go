package deployapp_test

import (
	"testing"

	"github.com/loilo-inc/deploycage/cli/deploycage/deployapp"
	"github.com/loilo-inc/deploycage/env"
	"github.com/loilo-inc/deploycage/test"
	"github.com/loilo-inc/deploycage/types"
	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v2"
)

func newInput(f *test.Fixture) *types.Input {
	return &types.Input{Env: test.DefaultEnvars(), Ecs: f.Ecs, Ecr: f.Ecr, Time: test.NewFakeTime()}
}

func TestTimeoutFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		envars := &env.Envars{}
		app := cli.NewApp()
		app.Flags = deployapp.TimeoutFlags(envars)
		app.Action = func(*cli.Context) error { return nil }
		assert.NoError(t, app.Run([]string{"deploycage"}))
		assert.Equal(t, 2, envars.TaskStoppedInterval)
		assert.Equal(t, 1440, envars.TaskStoppedMaxAttempts)
		assert.Equal(t, 15, envars.ServiceStableInterval)
		assert.Equal(t, 1440, envars.ServiceStableMaxAttempts)
	})
	t.Run("from environment variables", func(t *testing.T) {
		t.Setenv(env.ServiceStableIntervalKey, "30")
		envars := &env.Envars{}
		app := cli.NewApp()
		app.Flags = deployapp.TimeoutFlags(envars)
		app.Action = func(*cli.Context) error { return nil }
		assert.NoError(t, app.Run([]string{"deploycage", "--task-stopped-max-attempts", "10"}))
		assert.Equal(t, 30, envars.ServiceStableInterval)
		assert.Equal(t, 10, envars.TaskStoppedMaxAttempts)
	})
}

func TestRegionFlag(t *testing.T) {
	t.Setenv(env.RegionKey, "eu-west-1")
	var region string
	app := cli.NewApp()
	app.Flags = []cli.Flag{deployapp.RegionFlag(&region)}
	app.Action = func(*cli.Context) error { return nil }
	assert.NoError(t, app.Run([]string{"deploycage"}))
	assert.Equal(t, "eu-west-1", region)
	assert.NoError(t, app.Run([]string{"deploycage", "--region", "us-east-1"}))
	assert.Equal(t, "us-east-1", region)
}
