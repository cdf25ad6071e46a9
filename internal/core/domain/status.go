package domain

import (
	"errors"
	"fmt"
)

// StatusError carries the exit status of an external process up to the entry point.
type StatusError struct {
	Code int
	Err  error
}

// NewStatusError wraps err with an exit status.
func NewStatusError(code int, err error) *StatusError {
	return &StatusError{Code: code, Err: err}
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

// Message returns the status without the cause chain.
func (e *StatusError) Message() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error.
func (e *StatusError) Unwrap() error {
	return e.Err
}

// DriftError reports a committed lock file that differs from a fresh resolution.
// Committed is listed before Resolved in every rendering.
type DriftError struct {
	Dir         string
	Declaration string
	LockPath    string
	Committed   Manifest
	Resolved    Manifest
}

// Error implements the error interface.
func (e *DriftError) Error() string {
	return e.Message() + ": " + ErrLockDrift.Error()
}

// Message returns the drift description without the cause chain.
func (e *DriftError) Message() string {
	return fmt.Sprintf("%s does not match a fresh resolution of %s", e.LockPath, e.Declaration)
}

// Unwrap returns ErrLockDrift so callers can match it with errors.Is.
func (e *DriftError) Unwrap() error {
	return ErrLockDrift
}

// ExitCode maps a run result to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var status *StatusError
	if errors.As(err, &status) && status.Code > 0 {
		return status.Code
	}
	return 1
}
