package deployapp_test

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/loilo-inc/deploycage/cli/deploycage/deployapp"
	"github.com/loilo-inc/deploycage/test"
	"github.com/stretchr/testify/assert"
)

func TestDefaultProvider(t *testing.T) {
	p := deployapp.DefaultProvider()
	t.Run("clients", func(t *testing.T) {
		ecsCli, ecrCli := p.Clients(context.Background(), "ap-northeast-1")
		assert.NotNil(t, ecrCli)
		assert.Equal(t, "ap-northeast-1", ecsCli.(*ecs.Client).Options().Region)
	})
	t.Run("deployer", func(t *testing.T) {
		f := test.Setup(test.DefaultEnvars(), false)
		d := p.Deployer(newInput(f))
		assert.NotNil(t, d)
	})
	t.Run("outputs", func(t *testing.T) {
		t.Setenv("GITHUB_OUTPUT", "")
		o, closer, err := p.Outputs(nil)
		assert.NoError(t, err)
		assert.NotNil(t, o)
		assert.NoError(t, closer())
	})
	t.Run("time", func(t *testing.T) {
		assert.False(t, p.Time.Now().IsZero())
	})
}
