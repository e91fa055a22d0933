package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputs(t *testing.T) {
	t.Run("stdout only", func(t *testing.T) {
		stdout := &bytes.Buffer{}
		o := NewOutputs(NewPrinter(stdout, nil), nil)
		o.Set("image_uri", "repo:tag")
		assert.Equal(t, "image_uri=repo:tag\n", stdout.String())
	})
	t.Run("mirrors to file", func(t *testing.T) {
		stdout := &bytes.Buffer{}
		file := &bytes.Buffer{}
		o := NewOutputs(NewPrinter(stdout, nil), file)
		o.Set("latest_task_definition_arn", "arn:1")
		assert.Equal(t, "latest_task_definition_arn=arn:1\n", stdout.String())
		assert.Equal(t, "latest_task_definition_arn=arn:1\n", file.String())
	})
	t.Run("nil outputs is a no-op", func(t *testing.T) {
		var o *Outputs
		assert.NotPanics(t, func() { o.Set("k", "v") })
	})
}

func TestOpenOutputs(t *testing.T) {
	t.Run("without GITHUB_OUTPUT", func(t *testing.T) {
		t.Setenv(GithubOutputKey, "")
		stdout := &bytes.Buffer{}
		o, closer, err := OpenOutputs(NewPrinter(stdout, nil))
		assert.NoError(t, err)
		o.Set("k", "v")
		assert.NoError(t, closer())
		assert.Equal(t, "k=v\n", stdout.String())
	})
	t.Run("with GITHUB_OUTPUT", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "output")
		assert.NoError(t, os.WriteFile(path, []byte("a=b\n"), 0644))
		t.Setenv(GithubOutputKey, path)
		o, closer, err := OpenOutputs(NewPrinter(&bytes.Buffer{}, nil))
		assert.NoError(t, err)
		o.Set("k", "v")
		assert.NoError(t, closer())
		d, err := os.ReadFile(path)
		assert.NoError(t, err)
		assert.Equal(t, "a=b\nk=v\n", string(d))
	})
	t.Run("should error if file cannot be opened", func(t *testing.T) {
		t.Setenv(GithubOutputKey, filepath.Join(t.TempDir(), "missing", "output"))
		_, _, err := OpenOutputs(NewPrinter(&bytes.Buffer{}, nil))
		assert.Error(t, err)
	})
}
