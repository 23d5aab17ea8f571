// Package output provides formatted output utilities for the CLI.
package output

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"mkprop/internal/diagnostic"
)

// ANSI color codes.
const (
	reset  = "\033[0m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
)

// Writer handles CLI output formatting.
type Writer struct {
	out   io.Writer
	err   io.Writer
	color bool
	quiet bool
}

// New creates a new Writer on stdout and stderr. Color is enabled when
// stderr is a terminal.
func New() *Writer {
	return &Writer{
		out:   os.Stdout,
		err:   os.Stderr,
		color: isTerminal(os.Stderr),
	}
}

// NewWithWriters creates a Writer with custom io.Writers (for testing).
func NewWithWriters(out, err io.Writer, color bool) *Writer {
	return &Writer{
		out:   out,
		err:   err,
		color: color,
	}
}

// SetQuiet enables or disables quiet mode.
func (w *Writer) SetQuiet(quiet bool) {
	w.quiet = quiet
}

// Quiet reports whether quiet mode is on.
func (w *Writer) Quiet() bool {
	return w.quiet
}

// Print writes to stdout.
func (w *Writer) Print(format string, args ...any) {
	fmt.Fprintf(w.out, format, args...)
}

// Println writes a line to stdout.
func (w *Writer) Println(format string, args ...any) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Errorln writes a line to stderr.
func (w *Writer) Errorln(format string, args ...any) {
	fmt.Fprintf(w.err, format+"\n", args...)
}

// Info prints an info message (skipped in quiet mode).
func (w *Writer) Info(format string, args ...any) {
	if w.quiet {
		return
	}

	w.Println(format, args...)
}

// Success prints a success message (skipped in quiet mode).
func (w *Writer) Success(format string, args ...any) {
	if w.quiet {
		return
	}

	if w.color {
		w.Println(green+format+reset, args...)
	} else {
		w.Println(format, args...)
	}
}

// Warn prints a diagnostic as `[WARN] [CATEGORY] message`. Warnings are
// printed in quiet mode too.
func (w *Writer) Warn(d diagnostic.Diagnostic) {
	if w.color {
		w.Errorln("%s[WARN]%s %s", yellow, reset, d)
	} else {
		w.Errorln("[WARN] %s", d)
	}
}

// Warnings prints every warning of diags in order.
func (w *Writer) Warnings(diags diagnostic.Diagnostics) {
	for _, d := range diags.Warnings {
		w.Warn(d)
	}
}

// Failure prints an error, prefixed with the job name when set.
func (w *Writer) Failure(job string, err error) {
	prefix := "error:"
	if job != "" {
		prefix = fmt.Sprintf("[%s] error:", job)
	}

	if w.color {
		w.Errorln("%s%s%s %v", red, prefix, reset, err)
	} else {
		w.Errorln("%s %v", prefix, err)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
