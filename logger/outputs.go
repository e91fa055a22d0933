package logger

import (
	"fmt"
	"io"
	"os"
)

// GithubOutputKey names the file GitHub Actions reads step outputs from.
const GithubOutputKey = "GITHUB_OUTPUT"

// Outputs emits key=value lines for the pipeline steps that follow a
// deployment. Lines always go to stdout and are mirrored to the step
// output file when there is one.
type Outputs struct {
	printer Printer
	file    io.Writer
}

func NewOutputs(p Printer, file io.Writer) *Outputs {
	return &Outputs{printer: p, file: file}
}

// OpenOutputs mirrors outputs to $GITHUB_OUTPUT if it is set.
// The returned func closes that file.
func OpenOutputs(p Printer) (*Outputs, func() error, error) {
	path := os.Getenv(GithubOutputKey)
	if path == "" {
		return NewOutputs(p, nil), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}
	return NewOutputs(p, f), f.Close, nil
}

func (o *Outputs) Set(key string, value string) {
	if o == nil {
		return
	}
	o.printer.PrintOutf("%s=%s\n", key, value)
	if o.file != nil {
		fmt.Fprintf(o.file, "%s=%s\n", key, value)
	}
}
