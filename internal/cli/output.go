package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// printer writes colored status lines to an output stream.
type printer struct {
	out io.Writer
}

func newPrinter(out io.Writer) *printer {
	return &printer{out: out}
}

func (p *printer) line(c *color.Color, format string, a ...interface{}) {
	fmt.Fprintln(p.out, c.Sprintf(format, a...))
}

// Success prints a green line
func (p *printer) Success(format string, a ...interface{}) {
	p.line(color.New(color.FgGreen), format, a...)
}

// Error prints a red line
func (p *printer) Error(format string, a ...interface{}) {
	p.line(color.New(color.FgRed), format, a...)
}

// Info prints a cyan line
func (p *printer) Info(format string, a ...interface{}) {
	p.line(color.New(color.FgCyan), format, a...)
}

// Highlight prints a bold magenta line
func (p *printer) Highlight(format string, a ...interface{}) {
	p.line(color.New(color.FgMagenta, color.Bold), format, a...)
}

// Plain prints text without color
func (p *printer) Plain(text string) {
	fmt.Fprintln(p.out, text)
}
