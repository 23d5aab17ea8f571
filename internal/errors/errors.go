// Package errors provides structured error types and exit codes for mkprop.
package errors

import (
	"errors"
	"fmt"

	"mkprop/internal/classfile"
	"mkprop/internal/grammar"
)

// Exit codes.
const (
	ExitSuccess      = 0 // Success
	ExitRuntimeError = 1 // Runtime error (I/O failure, etc.)
	ExitUsageError   = 2 // Bad arguments or invalid project file
	ExitInputError   = 3 // Input rejected (parse, limit or class decode failure)
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindUsage
	KindConfig
	KindInput
)

// MkpropError is the base error type for mkprop.
type MkpropError struct {
	Kind    ErrorKind
	Message string
	Job     string // Job name if applicable
	Cause   error  // Underlying error
}

func (e *MkpropError) Error() string {
	msg := e.Message
	if e.Cause != nil {
		if msg == "" {
			msg = e.Cause.Error()
		} else {
			msg += ": " + e.Cause.Error()
		}
	}

	if e.Job != "" {
		return fmt.Sprintf("[%s] %s", e.Job, msg)
	}

	return msg
}

func (e *MkpropError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *MkpropError) ExitCode() int {
	switch e.Kind {
	case KindUsage, KindConfig:
		return ExitUsageError
	case KindInput:
		return ExitInputError
	default:
		return ExitRuntimeError
	}
}

// Usage creates a new usage error.
func Usage(message string) *MkpropError {
	return &MkpropError{Kind: KindUsage, Message: message}
}

// Usagef creates a new usage error with formatting.
func Usagef(format string, args ...any) *MkpropError {
	return Usage(fmt.Sprintf(format, args...))
}

// Config wraps a project file error.
func Config(err error) *MkpropError {
	return &MkpropError{Kind: KindConfig, Cause: err}
}

// Wrap wraps an error with additional context. Parse and class-file limit
// errors anywhere in the chain make it an input error.
func Wrap(err error, message string) *MkpropError {
	return &MkpropError{Kind: Classify(err), Message: message, Cause: err}
}

// WithJob sets the job name and returns e.
func (e *MkpropError) WithJob(job string) *MkpropError {
	e.Job = job
	return e
}

// Classify returns the kind of err.
func Classify(err error) ErrorKind {
	var me *MkpropError
	if errors.As(err, &me) {
		return me.Kind
	}

	var pe *grammar.ParseError
	if errors.As(err, &pe) {
		return KindInput
	}

	var le *classfile.LimitError
	if errors.As(err, &le) {
		return KindInput
	}

	var de *classfile.DecodeError
	if errors.As(err, &de) {
		return KindInput
	}

	return KindRuntime
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var me *MkpropError
	if errors.As(err, &me) {
		return me.ExitCode()
	}

	return (&MkpropError{Kind: Classify(err)}).ExitCode()
}
