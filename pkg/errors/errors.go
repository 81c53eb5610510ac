// Package errors provides structured error handling for the Loom engine.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindParse indicates a selector or fixture parse failure.
	KindParse
	// KindResolve indicates a target reference that could not be resolved.
	KindResolve
	// KindLifecycle indicates a view activation or deactivation misuse.
	KindLifecycle
)

func (k ErrorKind) String() string {
	switch k {
	case KindParse:
		return "parse"
	case KindResolve:
		return "resolve"
	case KindLifecycle:
		return "lifecycle"
	default:
		return "unknown"
	}
}

// LoomError represents a structured error in the Loom engine.
type LoomError struct {
	// Op is the operation that failed (e.g., "selector.Parse").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *LoomError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *LoomError) Unwrap() error {
	return e.Err
}

// New constructs a LoomError with the given operation, kind and message.
func New(op string, kind ErrorKind, format string, args ...any) *LoomError {
	return &LoomError{
		Op:        op,
		Kind:      kind,
		Err:       fmt.Errorf(format, args...),
		Timestamp: time.Now(),
	}
}

// Wrap constructs a LoomError around an existing error.
func Wrap(op string, kind ErrorKind, err error) *LoomError {
	if err == nil {
		return nil
	}
	return &LoomError{
		Op:        op,
		Kind:      kind,
		Err:       err,
		Timestamp: time.Now(),
	}
}
