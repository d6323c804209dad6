// Package report writes checker diagnostics. Errors go to the error stream with
// an "ERROR:" prefix, everything else goes to standard output.
package report

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

// Suspender pauses any animated output (spinners) while fn writes to the terminal.
type Suspender interface {
	Suspend(fn func())
}

// Reporter is the shared output channel for both pipelines.
type Reporter struct {
	mu        sync.Mutex
	out       io.Writer
	errOut    io.Writer
	verbose   bool
	colored   bool
	suspender Suspender
	errors    int
	warnings  int
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithVerbose enables per-item pass/fail output.
func WithVerbose(verbose bool) Option {
	return func(r *Reporter) { r.verbose = verbose }
}

// WithColor toggles ANSI colors on the prefixes.
func WithColor(colored bool) Option {
	return func(r *Reporter) { r.colored = colored }
}

// WithSuspender routes every write through s.
func WithSuspender(s Suspender) Option {
	return func(r *Reporter) { r.suspender = s }
}

// New creates a Reporter writing to out and errOut.
func New(out, errOut io.Writer, opts ...Option) *Reporter {
	r := &Reporter{out: out, errOut: errOut}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Errorf reports a failure on the error stream.
func (r *Reporter) Errorf(format string, args ...any) {
	r.mu.Lock()
	r.errors++
	r.mu.Unlock()
	r.write(r.errOut, r.paint(color.FgRed, "ERROR:")+" "+fmt.Sprintf(format, args...))
}

// Warnf reports an advisory finding on standard output.
func (r *Reporter) Warnf(format string, args ...any) {
	r.mu.Lock()
	r.warnings++
	r.mu.Unlock()
	r.write(r.out, r.paint(color.FgYellow, "WARNING:")+" "+fmt.Sprintf(format, args...))
}

// Printf writes an informational line to standard output.
func (r *Reporter) Printf(format string, args ...any) {
	r.write(r.out, fmt.Sprintf(format, args...))
}

// Verbosef writes an informational line only in verbose mode.
func (r *Reporter) Verbosef(format string, args ...any) {
	if !r.verbose {
		return
	}
	r.Printf(format, args...)
}

// Pass prints a verbose success line for name.
func (r *Reporter) Pass(kind, name string) {
	if !r.verbose {
		return
	}
	r.write(r.out, fmt.Sprintf("%s %s %q", r.paint(color.FgGreen, "✓"), kind, name))
}

// Fail prints a verbose failure line for name. It does not count as an error;
// callers report the error itself through Errorf.
func (r *Reporter) Fail(kind, name string) {
	if !r.verbose {
		return
	}
	r.write(r.out, fmt.Sprintf("%s %s %q", r.paint(color.FgRed, "✗"), kind, name))
}

// Errors returns the number of errors reported so far.
func (r *Reporter) Errors() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.errors
}

// Warnings returns the number of warnings reported so far.
func (r *Reporter) Warnings() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.warnings
}

func (r *Reporter) paint(attr color.Attribute, s string) string {
	if !r.colored {
		return s
	}
	return color.New(attr, color.Bold).Sprint(s)
}

func (r *Reporter) write(w io.Writer, line string) {
	emit := func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		fmt.Fprintln(w, line)
	}
	if r.suspender != nil {
		r.suspender.Suspend(emit)
		return
	}
	emit()
}
