// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package diag routes non-fatal warnings to an injected sink. The converter
// and dispatcher report recoverable conditions (transparency loss, skipped
// entries) through a Reporter instead of writing to process-global state,
// so callers control where warnings land and tests can capture them.
package diag

import (
	"fmt"
	"io"
	"os"
)

// Reporter receives non-fatal warnings. Warnings never affect control flow;
// they describe conditions the run recovered from or adjusted for.
type Reporter interface {
	Warnf(format string, args ...any)
}

type writerReporter struct {
	prog string
	w    io.Writer
}

// NewWriter returns a Reporter that writes "<prog>: warning: <message>"
// lines to w.
func NewWriter(prog string, w io.Writer) Reporter {
	return &writerReporter{prog: prog, w: w}
}

// NewStderr returns a Reporter that writes program-prefixed warnings to
// standard error.
func NewStderr(prog string) Reporter {
	return NewWriter(prog, os.Stderr)
}

func (r *writerReporter) Warnf(format string, args ...any) {
	fmt.Fprintf(r.w, "%s: warning: %s\n", r.prog, fmt.Sprintf(format, args...))
}

type discardReporter struct{}

// Discard returns a Reporter that drops all warnings.
func Discard() Reporter {
	return discardReporter{}
}

func (discardReporter) Warnf(string, ...any) {}
