package coordinator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/trilogy-group/nexus-agents/ent/operation"
	"github.com/trilogy-group/nexus-agents/pkg/events"
	"github.com/trilogy-group/nexus-agents/pkg/ledger"
)

// worker executes one operation at a time off the coordinator's work channel.
type worker struct {
	id    string
	coord *Coordinator

	mu       sync.Mutex
	working  bool
	current  *item
	lastBeat time.Time
	// staleFired dedupes stale detection per attempt.
	staleFired *item
}

func newWorker(id string, coord *Coordinator) *worker {
	return &worker{
		id:       id,
		coord:    coord,
		lastBeat: time.Now(),
	}
}

func (w *worker) isWorking() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.working
}

func (w *worker) beat() {
	w.mu.Lock()
	w.lastBeat = time.Now()
	w.mu.Unlock()
}

func (w *worker) setCurrent(it *item) {
	w.mu.Lock()
	w.working = it != nil
	w.current = it
	w.lastBeat = time.Now()
	if it == nil {
		w.staleFired = nil
	}
	w.mu.Unlock()
}

// staleItem returns the in-flight item when this worker's heartbeat is older
// than the TTL, at most once per attempt.
func (w *worker) staleItem(ttl time.Duration) *item {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.working || w.current == nil {
		return nil
	}
	if time.Since(w.lastBeat) <= ttl {
		return nil
	}
	if w.staleFired == w.current {
		return nil
	}
	w.staleFired = w.current
	return w.current
}

// run is the worker loop: receive an item, execute it, repeat until the work
// channel closes or stop is signalled.
func (w *worker) run() {
	log := w.coord.logger.With("worker_id", w.id)
	w.publishStatus(events.WorkerStatusStarted)
	log.Info("worker started")

	defer func() {
		w.publishStatus(events.WorkerStatusStopped)
		log.Info("worker stopped")
	}()

	for {
		select {
		case it, ok := <-w.coord.work:
			if !ok {
				return
			}
			w.setCurrent(it)
			w.execute(log, it)
			w.setCurrent(nil)
		case <-w.coord.stopCh:
			return
		}
	}
}

func (w *worker) publishStatus(status string) {
	if err := w.coord.publisher.PublishWorkerStatus(context.Background(), events.WorkerStatusPayload{
		WorkerID: w.id,
		Status:   status,
	}); err != nil {
		w.coord.logger.Warn("failed to publish worker status",
			"worker_id", w.id, "status", status, "error", err)
	}
}

// heartbeatLoop emits worker heartbeats while an attempt runs.
func (w *worker) heartbeatLoop(ctx context.Context) {
	interval := w.coord.cfg.HeartbeatInterval
	if interval <= 0 {
		interval = 10 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.beat()
			w.publishStatus(events.WorkerStatusHeartbeat)
		}
	}
}

// execute runs one attempt of an operation and finalizes or requeues it.
func (w *worker) execute(log *slog.Logger, it *item) {
	c := w.coord
	defer c.finishDispatch(it)

	opID := it.handle.operationID
	log = log.With("operation_id", opID, "operation_type", it.spec.OperationType, "task_id", it.spec.TaskID)

	if c.taskCancelled(it.spec.TaskID) {
		// The row was already flipped by CancelPending; just settle the handle.
		it.handle.finish(Outcome{
			OperationID: opID,
			Status:      operation.StatusCancelled,
			Err:         ErrCancelled,
			Attempts:    it.attempt,
		})
		return
	}

	if _, err := c.applyWithRetry(opID, ledger.Transition{
		To:       operation.StatusDispatched,
		WorkerID: w.id,
	}); err != nil {
		w.failOrSettleCancelled(log, it, err)
		return
	}
	if _, err := c.applyWithRetry(opID, ledger.Transition{To: operation.StatusInFlight}); err != nil {
		w.failOrSettleCancelled(log, it, err)
		return
	}

	attempt := it.attempt + 1
	c.publishProgress(it, operation.StatusInFlight, it.attempt, w.id)

	deadline := time.Now().Add(c.cfg.OpTimeout)
	if !it.deadline.IsZero() && it.deadline.Before(deadline) {
		deadline = it.deadline
	}

	base, cancelCause := context.WithCancelCause(context.Background())
	attemptCtx, cancelDeadline := context.WithDeadline(base, deadline)
	defer cancelDeadline()
	defer cancelCause(nil)

	c.mu.Lock()
	it.attemptCancel = cancelCause
	c.mu.Unlock()

	hbCtx, stopHeartbeat := context.WithCancel(attemptCtx)
	go w.heartbeatLoop(hbCtx)

	output, evidence, err := it.spec.Fn(attemptCtx)

	stopHeartbeat()
	cause := context.Cause(attemptCtx)

	c.mu.Lock()
	it.attemptCancel = nil
	c.mu.Unlock()

	it.attempt = attempt

	switch {
	case err == nil:
		w.complete(log, it, output, evidence)

	case errors.Is(cause, ErrCancelled) || IsCancelled(err):
		w.cancel(log, it, evidence)

	case errors.Is(cause, errWorkerStale):
		w.retryOrFail(log, it, fmt.Errorf("worker %s stale mid-attempt", w.id), evidence, true)

	default:
		w.retryOrFail(log, it, err, evidence, IsTransient(err))
	}
}

// failOrSettleCancelled resolves a pre-execution ledger write failure. A
// concurrent task cancel flips rows out from under the worker; that is a
// cancellation, not a store failure.
func (w *worker) failOrSettleCancelled(log *slog.Logger, it *item, err error) {
	if w.coord.taskCancelled(it.spec.TaskID) {
		it.handle.finish(Outcome{
			OperationID: it.handle.operationID,
			Status:      operation.StatusCancelled,
			Err:         ErrCancelled,
			Attempts:    it.attempt,
		})
		return
	}
	log.Error("failed to record pre-execution transition", "error", err)
	w.coord.failHandle(it, err)
}

func (w *worker) complete(log *slog.Logger, it *item, output map[string]any, evidence []ledger.EvidenceInput) {
	c := w.coord
	if _, err := c.applyWithRetry(it.handle.operationID, ledger.Transition{
		To:         operation.StatusCompleted,
		OutputData: output,
		Evidence:   evidence,
		RetryCount: it.attempt - 1,
	}); err != nil {
		log.Error("failed to record completion", "error", err)
		c.failHandle(it, err)
		return
	}
	c.completedTotal.Add(1)
	c.publishProgress(it, operation.StatusCompleted, it.attempt-1, w.id)
	log.Info("operation completed", "attempts", it.attempt)
	it.handle.finish(Outcome{
		OperationID: it.handle.operationID,
		Status:      operation.StatusCompleted,
		Output:      output,
		Attempts:    it.attempt,
	})
}

func (w *worker) cancel(log *slog.Logger, it *item, evidence []ledger.EvidenceInput) {
	c := w.coord
	// Evidence captured before the cancel point is discarded: nothing may be
	// appended after the cancel timestamp.
	_ = evidence
	if _, err := c.applyWithRetry(it.handle.operationID, ledger.Transition{
		To:           operation.StatusCancelled,
		ErrorMessage: "cancelled",
	}); err != nil {
		log.Error("failed to record cancellation", "error", err)
	}
	c.publishProgress(it, operation.StatusCancelled, it.attempt-1, w.id)
	log.Info("operation cancelled", "attempts", it.attempt)
	it.handle.finish(Outcome{
		OperationID: it.handle.operationID,
		Status:      operation.StatusCancelled,
		Err:         ErrCancelled,
		Attempts:    it.attempt,
	})
}

// retryOrFail requeues a transient failure with backoff, or finalizes the
// operation as failed when the error is permanent or the budget is spent.
func (w *worker) retryOrFail(log *slog.Logger, it *item, opErr error, evidence []ledger.EvidenceInput, transient bool) {
	c := w.coord
	opID := it.handle.operationID

	if transient && it.attempt < it.retryPolicy.MaxAttempts {
		if _, err := c.applyWithRetry(opID, ledger.Transition{
			To:           operation.StatusRetrying,
			ErrorMessage: opErr.Error(),
			RetryCount:   it.attempt,
			Evidence:     evidence,
		}); err != nil {
			log.Error("failed to record retry", "error", err)
			c.failHandle(it, err)
			return
		}
		delay := c.backoffDelay(it.retryPolicy, it.attempt)
		c.retriedTotal.Add(1)
		c.publishProgress(it, operation.StatusRetrying, it.attempt, w.id)
		log.Warn("operation retrying",
			"attempt", it.attempt,
			"max_attempts", it.retryPolicy.MaxAttempts,
			"delay", delay,
			"error", opErr)
		it.notBefore = time.Now().Add(delay)
		c.enqueue(it)
		return
	}

	finalErr := opErr
	if transient && errors.Is(opErr, context.DeadlineExceeded) {
		finalErr = fmt.Errorf("%w: %v", ErrTimeout, opErr)
	}
	if _, err := c.applyWithRetry(opID, ledger.Transition{
		To:           operation.StatusFailed,
		ErrorMessage: finalErr.Error(),
		RetryCount:   it.attempt - 1,
		Evidence:     evidence,
	}); err != nil {
		log.Error("failed to record failure", "error", err)
	}
	c.failedTotal.Add(1)
	c.publishProgress(it, operation.StatusFailed, it.attempt-1, w.id)
	log.Error("operation failed", "attempts", it.attempt, "error", finalErr)
	it.handle.finish(Outcome{
		OperationID: opID,
		Status:      operation.StatusFailed,
		Err:         finalErr,
		Attempts:    it.attempt,
	})
}
