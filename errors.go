// Package askpod - errors.go
// Defines session and tool-server specific errors.

package askpod

import (
	"errors"
	"fmt"
)

var (
	ErrSessionClosed  = errors.New("session has been closed")
	ErrNoMessage      = errors.New("no message available")
	ErrNotInitialized = errors.New("tool server session has not been initialized")
	ErrMissingAPIKey  = errors.New("missing API key")
)

// IgnorableError marks a tool failure that the model should not retry.
type IgnorableError struct {
	Err error
}

func (e *IgnorableError) Error() string {
	return fmt.Sprintf("ignorable: %v", e.Err)
}

func (e *IgnorableError) Unwrap() error { return e.Err }

// RetryableError marks a tool failure the model may retry with corrected input.
type RetryableError struct {
	Err error
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.Err)
}

func (e *RetryableError) Unwrap() error { return e.Err }
