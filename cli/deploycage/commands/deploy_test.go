package commands_test

import (
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/loilo-inc/deploycage/env"
	"github.com/loilo-inc/deploycage/types"
	"github.com/stretchr/testify/assert"
)

func TestEcsDeploy(t *testing.T) {
	args := []string{"deploycage", "ecs-deploy",
		"--region", "us-west-2",
		"--environment", "dev",
		"--ecr-repository", "app",
		"--deployment-tag", "gha",
		"--desired-count", "2",
		"--image-tag", "v1.1.0",
	}
	t.Run("basic", func(t *testing.T) {
		ta := setup(t, false)
		ta.deployer.EXPECT().Deploy(gomock.Any()).Return(&types.DeployOutcome{}, nil)
		err := ta.app.Run(append(args, "--run-preflight", "--desired-count", "3"))
		assert.NoError(t, err)
		envars := ta.input.Env
		assert.Equal(t, env.Dev, envars.Environment)
		assert.Equal(t, "us-west-2", envars.Region)
		assert.Equal(t, "app", envars.EcrRepository)
		assert.Equal(t, "gha", envars.DeploymentTag)
		assert.Equal(t, "v1.1.0", envars.ImageTag)
		assert.True(t, envars.RunPreflight)
		assert.False(t, envars.AllowFeatureBranchDeployment)
		assert.Equal(t, 3, envars.DesiredCount)
		assert.Equal(t, env.DefaultSeedCreator, envars.SeedCreator)
		assert.Equal(t, 15, envars.ServiceStableInterval)
		assert.Equal(t, ta.fixture.Ecs, ta.input.Ecs)
		assert.Equal(t, ta.fixture.Ecr, ta.input.Ecr)
		assert.NotNil(t, ta.input.Outputs)
	})
	t.Run("defaults", func(t *testing.T) {
		ta := setup(t, false)
		ta.deployer.EXPECT().Deploy(gomock.Any()).Return(&types.DeployOutcome{}, nil)
		err := ta.app.Run(append(args, "--seed-creator", "Terraform"))
		assert.NoError(t, err)
		assert.False(t, ta.input.Env.RunPreflight)
		assert.Equal(t, 2, ta.input.Env.DesiredCount)
		assert.Equal(t, "Terraform", ta.input.Env.SeedCreator)
	})
	t.Run("should require desired count", func(t *testing.T) {
		ta := setup(t, false)
		err := ta.app.Run([]string{"deploycage", "ecs-deploy",
			"--environment", "dev",
			"--ecr-repository", "app",
			"--deployment-tag", "gha",
			"--image-tag", "v1.1.0",
		})
		assert.EqualError(t, err, `Required flag "desired-count" not set`)
		assert.Nil(t, ta.input)
	})
	t.Run("should accept scaling to zero", func(t *testing.T) {
		ta := setup(t, false)
		ta.deployer.EXPECT().Deploy(gomock.Any()).Return(&types.DeployOutcome{}, nil)
		err := ta.app.Run(append(args, "--desired-count", "0"))
		assert.NoError(t, err)
		assert.Equal(t, 0, ta.input.Env.DesiredCount)
	})
	t.Run("should read environment variables", func(t *testing.T) {
		t.Setenv(env.EnvironmentKey, "live")
		t.Setenv(env.ImageTagKey, "v2.0.0")
		t.Setenv(env.RunPreflightKey, "true")
		t.Setenv(env.DesiredCountKey, "4")
		ta := setup(t, false)
		ta.deployer.EXPECT().Deploy(gomock.Any()).Return(&types.DeployOutcome{}, nil)
		err := ta.app.Run([]string{"deploycage", "ecs-deploy", "--ecr-repository", "app", "--deployment-tag", "gha"})
		assert.NoError(t, err)
		assert.Equal(t, env.Live, ta.input.Env.Environment)
		assert.Equal(t, "v2.0.0", ta.input.Env.ImageTag)
		assert.True(t, ta.input.Env.RunPreflight)
		assert.Equal(t, 4, ta.input.Env.DesiredCount)
	})
	t.Run("should validate envars before deploying", func(t *testing.T) {
		ta := setup(t, false)
		err := ta.app.Run([]string{"deploycage", "ecs-deploy", "--environment", "prod", "--desired-count", "1"})
		assert.EqualError(t, err, "--environment [DEPLOYCAGE_ENVIRONMENT] must be one of dev, test, live")
		assert.Nil(t, ta.input)
	})
	t.Run("should require image tag", func(t *testing.T) {
		ta := setup(t, false)
		err := ta.app.Run(args[:len(args)-2])
		assert.EqualError(t, err, "--image-tag [IMAGE_TAG] is required")
	})
	t.Run("error", func(t *testing.T) {
		ta := setup(t, false)
		ta.deployer.EXPECT().Deploy(gomock.Any()).Return(nil, fmt.Errorf("error"))
		err := ta.app.Run(args)
		assert.EqualError(t, err, "error")
	})
}
