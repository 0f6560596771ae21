package orchestrator

import (
	"errors"

	"github.com/trilogy-group/nexus-agents/pkg/coordinator"
	"github.com/trilogy-group/nexus-agents/pkg/ledger"
	"github.com/trilogy-group/nexus-agents/pkg/services"
)

// Error kinds persisted on failed tasks and mirrored in task.status events as
// meta.error_kind.
const (
	KindConfigError        = "ConfigError"
	KindStoreError         = "StoreError"
	KindProviderTransient  = "ProviderTransient"
	KindProviderPermanent  = "ProviderPermanent"
	KindProviderDegraded   = "ProviderDegraded"
	KindTimeout            = "Timeout"
	KindCancelled          = "Cancelled"
	KindDependencyFailed   = "DependencyFailed"
	KindInvariantViolation = "InvariantViolation"
)

// degradedError marks an operation that failed because its provider was
// disabled or unavailable; no call was made.
type degradedError struct {
	err error
}

func (e *degradedError) Error() string { return e.err.Error() }
func (e *degradedError) Unwrap() error { return e.err }

// degraded wraps an error as a provider-degraded failure.
func degraded(err error) error {
	return &degradedError{err: err}
}

// IsDegraded reports whether the error chain marks a degraded provider.
func IsDegraded(err error) bool {
	var de *degradedError
	return errors.As(err, &de)
}

// errorKind classifies a pipeline error into the persisted taxonomy. A
// transient kind here means the retry budget was exhausted.
func errorKind(err error) string {
	var storeErr *ledger.StoreError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, coordinator.ErrCancelled):
		return KindCancelled
	case errors.Is(err, coordinator.ErrTimeout):
		return KindTimeout
	case errors.Is(err, coordinator.ErrDependencyFailed):
		return KindDependencyFailed
	case IsDegraded(err):
		return KindProviderDegraded
	case errors.As(err, &storeErr):
		return KindStoreError
	case errors.Is(err, services.ErrInvalidTransition) || services.IsValidationError(err):
		return KindInvariantViolation
	case coordinator.IsTransient(err):
		return KindProviderTransient
	default:
		return KindProviderPermanent
	}
}
