package env_test

import (
	"testing"

	"github.com/loilo-inc/deploycage/env"
	"github.com/stretchr/testify/assert"
)

func validEnvars() *env.Envars {
	return &env.Envars{
		Region:        "eu-central-1",
		Environment:   env.Dev,
		EcrRepository: "app",
		DeploymentTag: "GithubAction",
		ImageTag:      "master-e0428b7",
		DesiredCount:  2,
	}
}

func TestEnsureEnvars(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		e := validEnvars()
		assert.NoError(t, env.EnsureEnvars(e))
		assert.Equal(t, env.DefaultSeedCreator, e.SeedCreator)
	})
	t.Run("should keep custom seed creator", func(t *testing.T) {
		e := validEnvars()
		e.SeedCreator = "Terraform"
		assert.NoError(t, env.EnsureEnvars(e))
		assert.Equal(t, "Terraform", e.SeedCreator)
	})
	t.Run("should return err if environment is unknown", func(t *testing.T) {
		e := validEnvars()
		e.Environment = "prod"
		assert.EqualError(t, env.EnsureEnvars(e), "--environment [DEPLOYCAGE_ENVIRONMENT] must be one of dev, test, live")
	})
	t.Run("should return err if desired count is negative", func(t *testing.T) {
		e := validEnvars()
		e.DesiredCount = -1
		assert.EqualError(t, env.EnsureEnvars(e), "--desired-count [DEPLOYCAGE_DESIRED_COUNT] must not be negative")
	})
	t.Run("should return err if required props are not defined", func(t *testing.T) {
		for _, v := range []struct {
			name  string
			clear func(e *env.Envars)
			msg   string
		}{
			{"repository", func(e *env.Envars) { e.EcrRepository = "" }, "--ecr-repository [ECR_REPOSITORY] is required"},
			{"deployment tag", func(e *env.Envars) { e.DeploymentTag = "" }, "--deployment-tag [DEPLOYMENT_TAG] is required"},
			{"image tag", func(e *env.Envars) { e.ImageTag = "" }, "--image-tag [IMAGE_TAG] is required"},
		} {
			t.Run(v.name, func(t *testing.T) {
				e := validEnvars()
				v.clear(e)
				assert.EqualError(t, env.EnsureEnvars(e), v.msg)
			})
		}
	})
}

func TestEnvironment(t *testing.T) {
	assert.True(t, env.Dev.Valid())
	assert.True(t, env.Live.Valid())
	assert.False(t, env.Environment("").Valid())
	assert.Equal(t, env.Dev, env.FeatureBranchEnvironment)
}

func TestIdentities(t *testing.T) {
	e := validEnvars()
	e.Environment = env.Live
	assert.Equal(t, "live", e.Cluster())
	assert.Equal(t, "app-live", e.ServiceName())
	assert.Equal(t, "app-local-exec-live", e.LocalExecIdentity())
	assert.Equal(t, "app-preflight-live", e.PreflightIdentity())
}
