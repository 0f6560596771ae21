// Package coordinator schedules operations onto a fixed-size worker pool
// draining named priority queues. Every lifecycle transition is recorded in
// the operation ledger and mirrored on the monitoring event stream.
package coordinator

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/trilogy-group/nexus-agents/ent/operation"
	"github.com/trilogy-group/nexus-agents/pkg/ledger"
)

// Sentinel errors for submission and dispatch.
var (
	// ErrQueueFull indicates the named queue is at its depth cap.
	ErrQueueFull = errors.New("queue_full")

	// ErrUnknownQueue indicates a submission to a queue the coordinator
	// was not configured with.
	ErrUnknownQueue = errors.New("unknown queue")

	// ErrStopped indicates the coordinator is shutting down.
	ErrStopped = errors.New("coordinator stopped")

	// ErrDependencyFailed is the failure recorded on dependents when a
	// dependency fails under the propagate policy.
	ErrDependencyFailed = errors.New("dependency_failed")
)

// errWorkerStale cancels the in-flight attempt of a worker whose heartbeat
// went silent; the attempt is requeued rather than failed.
var errWorkerStale = errors.New("worker stale")

// OpFunc is the body of an operation. It runs on exactly one worker slot,
// must honor ctx at every external-call boundary, and returns the output
// written to the ledger on success plus any evidence captured during the
// attempt. Evidence is written atomically with the terminal transition.
type OpFunc func(ctx context.Context) (output map[string]any, evidence []ledger.EvidenceInput, err error)

// DependencyPolicy controls what happens to an operation when one of its
// dependencies fails.
type DependencyPolicy string

const (
	// DependencyPropagate fails dependents with dependency_failed (default).
	DependencyPropagate DependencyPolicy = "propagate"
	// DependencyBestEffort dispatches dependents regardless.
	DependencyBestEffort DependencyPolicy = "best_effort"
)

// RetryPolicy bounds transient-error retries for one operation.
type RetryPolicy struct {
	MaxAttempts int
	BackoffBase time.Duration
}

// OpSpec describes the work to submit.
type OpSpec struct {
	// OperationID makes resubmission idempotent: submitting the same ID
	// again returns the original handle. Empty means generate one.
	OperationID   string
	TaskID        string
	ParentID      string
	OperationType string
	AgentType     string
	InputData     map[string]any
	Meta          map[string]any
	Fn            OpFunc
}

// SubmitOptions tune scheduling for one submission.
type SubmitOptions struct {
	// Priority orders dispatch within a queue: higher first, then FIFO.
	Priority int
	// DependsOn gates dispatch until every handle is terminal.
	DependsOn []*Handle
	// DependencyPolicy defaults to DependencyPropagate.
	DependencyPolicy DependencyPolicy
	// RetryPolicy defaults to the coordinator's configured policy.
	RetryPolicy *RetryPolicy
	// Deadline is the absolute time after which attempts are cut off.
	// Zero means the coordinator's default per-op timeout applies alone.
	Deadline time.Time
}

// Outcome is the terminal result of an operation.
type Outcome struct {
	OperationID string
	Status      operation.Status
	Output      map[string]any
	Err         error
	Attempts    int
}

// Handle tracks one submitted operation through to its terminal state.
type Handle struct {
	operationID string
	taskID      string
	queue       string

	done    chan struct{}
	mu      sync.Mutex
	outcome Outcome
}

func newHandle(operationID, taskID, queue string) *Handle {
	return &Handle{
		operationID: operationID,
		taskID:      taskID,
		queue:       queue,
		done:        make(chan struct{}),
	}
}

// OperationID returns the ledger row ID of this operation.
func (h *Handle) OperationID() string { return h.operationID }

// TaskID returns the owning task.
func (h *Handle) TaskID() string { return h.taskID }

// Done is closed when the operation reaches a terminal status.
func (h *Handle) Done() <-chan struct{} { return h.done }

// Outcome returns the terminal result. Valid only after Done is closed.
func (h *Handle) Outcome() Outcome {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.outcome
}

// Wait blocks until the operation is terminal or ctx expires.
func (h *Handle) Wait(ctx context.Context) (Outcome, error) {
	select {
	case <-h.done:
		return h.Outcome(), nil
	case <-ctx.Done():
		return Outcome{}, ctx.Err()
	}
}

// finish records the terminal outcome and releases waiters. Idempotent.
func (h *Handle) finish(o Outcome) {
	h.mu.Lock()
	defer h.mu.Unlock()
	select {
	case <-h.done:
		return
	default:
	}
	h.outcome = o
	close(h.done)
}

// terminal reports whether the handle has finished.
func (h *Handle) terminal() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}
