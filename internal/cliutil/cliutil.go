// Package cliutil holds the small pieces shared by every phsp CLI driver:
// listing registered formats for --formats, collecting and reporting
// errors and warnings across a run instead of aborting on the first one,
// and a spinner wrapper around briandowns/spinner for long operations.
package cliutil

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	pkgerrors "github.com/pkg/errors"

	"github.com/particlezoo/phsp/registry"
)

// PrintFormats writes every registered format name to w, one per line,
// for the --formats flag every CLI driver exposes.
func PrintFormats(w io.Writer) {
	for _, name := range registry.RegisteredFormats() {
		fmt.Fprintln(w, name)
	}
}

// Collector accumulates errors and warnings across a multi-input
// operation (combine's sequential inputs, convert/split's single run):
// drivers collect and report rather than abort on the first warning.
type Collector struct {
	Errors   []error
	Warnings []string
}

// AddError records a fatal condition for later reporting.
func (c *Collector) AddError(err error) {
	if err != nil {
		c.Errors = append(c.Errors, err)
	}
}

// AddWarning records a non-fatal condition for later reporting.
func (c *Collector) AddWarning(msg string) {
	c.Warnings = append(c.Warnings, msg)
}

// HasErrors reports whether any fatal condition was recorded.
func (c *Collector) HasErrors() bool { return len(c.Errors) > 0 }

// Report writes every collected warning and error to w.
func (c *Collector) Report(w io.Writer) {
	for _, warn := range c.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warn)
	}
	for _, err := range c.Errors {
		fmt.Fprintf(w, "error: %v\n", err)
	}
}

// FatalWrap wraps err with pkg/errors and prints it with a stack trace
// (%+v) so a driver's unrecoverable startup failures (a file that won't
// open, a format that can't be created) carry more than a one-line
// message.
func FatalWrap(w io.Writer, err error, context string) {
	fmt.Fprintf(w, "error: %+v\n", pkgerrors.Wrap(err, context))
}

// Spin starts a spinner with the given prefix, stopped by the caller
// once the long-running operation finishes.
func Spin(prefix string) *spinner.Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Prefix = prefix
	s.Start()

	return s
}
