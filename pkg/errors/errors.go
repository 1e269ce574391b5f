package errors

import (
	"errors"
	"fmt"
	"runtime"
)

// Kind distinguishes the one failure mode this package models as a Go
// error (spec §7): a knowledge base inconsistency that aborts a
// running operation outright. TypeMismatch, Infeasible and NotFound
// are not Go errors here — they surface as empty kb.FactSet/kb.UIDSet
// results, which callers observe by checking Empty().
type Kind string

const KindInvariantViolation Kind = "INVARIANT_VIOLATION"

// Error is the package's sole error type: an invariant violation such
// as a provides/needs/consumes label that fails to parse as a
// quantity, or a resource update that would drive a residual negative
// outside the normal satisfiability check. Per spec §5, encountering
// one aborts the enclosing run; partial results must not be observed.
type Error struct {
	Kind       Kind
	Message    string
	Cause      error
	StackTrace string
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// captureStackTrace captures the current call stack for diagnostics.
func captureStackTrace() string {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	stack := ""
	for {
		frame, more := frames.Next()
		stack += fmt.Sprintf("%s:%d %s\n", frame.File, frame.Line, frame.Function)
		if !more {
			break
		}
	}
	return stack
}

// NewInvariantViolation builds a fresh invariant-violation error.
func NewInvariantViolation(message string) *Error {
	return &Error{Kind: KindInvariantViolation, Message: message, StackTrace: captureStackTrace()}
}

// WrapInvariantViolation attaches cause (e.g. a strconv.ParseFloat
// failure) to a new invariant-violation error.
func WrapInvariantViolation(cause error, message string) *Error {
	return &Error{Kind: KindInvariantViolation, Message: message, Cause: cause, StackTrace: captureStackTrace()}
}

// IsInvariantViolation reports whether err is, or wraps, an
// invariant-violation error.
func IsInvariantViolation(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindInvariantViolation
}
