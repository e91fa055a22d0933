package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPrinter(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	p := NewPrinter(stdout, stderr)
	p.PrintOutf("test %s", "stdout")
	p.PrintErrf("test %s", "stderr")
	assert.Equal(t, "test stdout", stdout.String())
	assert.Equal(t, "test stderr", stderr.String())
}

func TestAnnotate(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		stdout := &bytes.Buffer{}
		Annotate(NewPrinter(stdout, nil), "Deployment failed; rollback triggered.")
		assert.Equal(t, "::error ::Deployment failed; rollback triggered.\n", stdout.String())
	})
	t.Run("should escape newlines", func(t *testing.T) {
		stdout := &bytes.Buffer{}
		Annotate(NewPrinter(stdout, nil), "exit code - 1 \n Reason: 100%")
		assert.Equal(t, "::error ::exit code - 1 %0A Reason: 100%25\n", stdout.String())
	})
}
