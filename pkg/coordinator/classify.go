package coordinator

import (
	"context"
	"errors"

	"github.com/trilogy-group/nexus-agents/pkg/llm"
)

// ErrCancelled is the cause attached to an attempt context when its task is
// cancelled cooperatively.
var ErrCancelled = errors.New("cancelled")

// ErrTimeout is recorded when an operation exhausts its retry budget on
// deadline breaches.
var ErrTimeout = errors.New("timeout")

// transientError marks an error as retryable for the coordinator.
type transientError struct {
	err error
}

func (e *transientError) Error() string { return e.err.Error() }

func (e *transientError) Unwrap() error { return e.err }

// Transient wraps an error so the coordinator retries it with backoff.
// Operation bodies use this when translating gateway transient outcomes.
func Transient(err error) error {
	if err == nil {
		return nil
	}
	return &transientError{err: err}
}

// IsTransient reports whether an operation error should be retried.
// Recognized: explicit Transient wrapping, sidecar-reported retryable LLM
// failures, deadline breaches, and anything exposing Transient() bool.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var te *transientError
	if errors.As(err, &te) {
		return true
	}

	var callErr *llm.CallError
	if errors.As(err, &callErr) {
		return callErr.Retryable
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var classified interface{ Transient() bool }
	if errors.As(err, &classified) {
		return classified.Transient()
	}

	return false
}

// IsCancelled reports whether an operation error represents cooperative
// cancellation rather than a failure.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled) || errors.Is(err, context.Canceled)
}
