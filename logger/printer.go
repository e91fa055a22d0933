package logger

import (
	"fmt"
	"io"
	"strings"
)

type Printer interface {
	PrintOutf(format string, args ...any)
	PrintErrf(format string, args ...any)
}

type printer struct {
	stdout io.Writer
	stderr io.Writer
}

var _ Printer = (*printer)(nil)

func NewPrinter(stdout io.Writer, stderr io.Writer) Printer {
	return &printer{stdout: stdout, stderr: stderr}
}

func (p *printer) PrintOutf(format string, args ...any) {
	fmt.Fprintf(p.stdout, format, args...)
}

func (p *printer) PrintErrf(format string, args ...any) {
	fmt.Fprintf(p.stderr, format, args...)
}

var annotationEscaper = strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A")

// Annotate prints a GitHub Actions error annotation.
func Annotate(p Printer, message string) {
	p.PrintOutf("::error ::%s\n", annotationEscaper.Replace(message))
}
