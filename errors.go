package fetchkit

import "errors"

var (
	// ErrTimeout is returned when the effective timeout elapses before the
	// transport settles. The in-flight request is aborted.
	ErrTimeout = errors.New("fetchkit: request timed out")

	// ErrCanceled is returned when the caller cancels the Call (or its
	// parent context) before it settles.
	ErrCanceled = errors.New("fetchkit: request canceled")
)
