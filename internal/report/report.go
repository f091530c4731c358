// Package report prints batch progress to the console.
package report

import (
	"fmt"
	"io"

	"golang.org/x/term"
)

const (
	green = "\033[32m"
	red   = "\033[31m"
	reset = "\033[0m"
)

// Reporter writes one line per icon to out and failures to errOut. Status
// marks are colored only when the stream is a terminal.
type Reporter struct {
	out, errOut io.Writer
	colorOut    bool
	colorErr    bool
}

// New returns a Reporter for the given streams.
func New(out, errOut io.Writer) *Reporter {
	return &Reporter{
		out:      out,
		errOut:   errOut,
		colorOut: isTerminal(out),
		colorErr: isTerminal(errOut),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

func paint(on bool, code, s string) string {
	if !on {
		return s
	}
	return code + s + reset
}

// Start prints the batch header.
func (r *Reporter) Start(dir string) {
	fmt.Fprintln(r.out, "Generating iOS app icons...")
	fmt.Fprintf(r.out, "Output directory: %s\n\n", dir)
}

// Created reports one written icon.
func (r *Reporter) Created(filename string, size int) {
	fmt.Fprintf(r.out, "Created: %s (%dx%d)\n", filename, size, size)
}

// Done prints the success summary.
func (r *Reporter) Done(dir string) {
	fmt.Fprintf(r.out, "\n%s All icons generated successfully!\n", paint(r.colorOut, green, "✓"))
	fmt.Fprintf(r.out, "Icons are ready in: %s\n", dir)
}

// Failed prints the failure summary.
func (r *Reporter) Failed(err error) {
	fmt.Fprintf(r.errOut, "\n%s Icon generation failed: %v\n", paint(r.colorErr, red, "✗"), err)
}
