// Package gateway is the uniform call surface over the search providers and
// the LLM sidecar. Every external call goes through it and comes back as a
// Result — the gateway never panics and never lets provider errors escape
// unclassified.
package gateway

import "time"

// Status discriminates the outcome of a gateway call.
type Status string

const (
	// StatusOK — the call succeeded; Value is valid.
	StatusOK Status = "ok"
	// StatusTransient — a retryable failure persisted through the retry
	// budget; Attempts and Err describe the last attempt.
	StatusTransient Status = "transient"
	// StatusPermanent — a non-retryable failure; no retries were attempted
	// beyond the failing call.
	StatusPermanent Status = "permanent"
	// StatusDegraded — the provider is disabled, missing its API key, or
	// unavailable; no call was made. Fan-out phases treat this as an empty
	// result.
	StatusDegraded Status = "degraded"
)

// Result is the discriminated outcome of a gateway call.
type Result[T any] struct {
	Status Status

	// Value is valid only when Status == StatusOK.
	Value T

	// Attempts is the number of calls actually made (0 for degraded).
	Attempts int

	// Err is the last error for transient and permanent outcomes.
	Err error

	// Reason explains a degraded outcome.
	Reason string
}

// OK reports whether the call succeeded.
func (r Result[T]) OK() bool { return r.Status == StatusOK }

// Degraded reports whether the provider was skipped without a call.
func (r Result[T]) Degraded() bool { return r.Status == StatusDegraded }

func resultOK[T any](value T, attempts int) Result[T] {
	return Result[T]{Status: StatusOK, Value: value, Attempts: attempts}
}

func resultTransient[T any](attempts int, err error) Result[T] {
	return Result[T]{Status: StatusTransient, Attempts: attempts, Err: err}
}

func resultPermanent[T any](attempts int, err error) Result[T] {
	return Result[T]{Status: StatusPermanent, Attempts: attempts, Err: err}
}

func resultDegraded[T any](reason string) Result[T] {
	return Result[T]{Status: StatusDegraded, Reason: reason}
}

// SearchResult is one hit returned by a provider search.
type SearchResult struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Provider    string `json:"provider"`
}

// SearchOptions tunes a single search call.
type SearchOptions struct {
	// MaxResults bounds the number of hits requested from the adapter.
	// Zero lets the adapter default apply.
	MaxResults int
}

// Document is the fetched content of a single URL.
type Document struct {
	URL       string    `json:"url"`
	Content   string    `json:"content"`
	Provider  string    `json:"provider"`
	FetchedAt time.Time `json:"fetched_at"`
}

// RetryPolicy bounds the gateway's transient-error retries.
type RetryPolicy struct {
	// MaxAttempts is the total number of calls, first attempt included.
	MaxAttempts int

	// BackoffBase is the initial delay of the exponential backoff between
	// attempts; jitter is applied on top.
	BackoffBase time.Duration
}
