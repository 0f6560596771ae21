package coordinator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/trilogy-group/nexus-agents/ent"
	"github.com/trilogy-group/nexus-agents/ent/operation"
	"github.com/trilogy-group/nexus-agents/pkg/config"
	"github.com/trilogy-group/nexus-agents/pkg/events"
	"github.com/trilogy-group/nexus-agents/pkg/ledger"
)

// Store is the ledger surface the coordinator writes through. Satisfied by
// *ledger.Ledger.
type Store interface {
	Append(ctx context.Context, spec ledger.OperationSpec) (*ent.Operation, error)
	Apply(ctx context.Context, operationID string, tr ledger.Transition) (*ent.Operation, error)
	CancelPending(ctx context.Context, taskID string) (int, error)
}

// Publisher is the monitoring-event surface the coordinator emits on.
// Satisfied by *events.EventPublisher.
type Publisher interface {
	PublishOperationProgress(ctx context.Context, payload events.OperationProgressPayload) error
	PublishWorkerStatus(ctx context.Context, payload events.WorkerStatusPayload) error
	PublishQueueDepth(ctx context.Context, payload events.QueueDepthPayload) error
	PublishStatsSnapshot(ctx context.Context, payload events.StatsSnapshotPayload) error
}

// Coordinator schedules operations onto a fixed worker pool draining named
// priority queues. Safe for concurrent use.
type Coordinator struct {
	podID     string
	cfg       *config.CoordinatorConfig
	store     Store
	publisher Publisher
	logger    *slog.Logger

	mu         sync.Mutex
	queues     map[string]*namedQueue
	queueNames []string // sorted, for deterministic dispatch scans
	seq        uint64
	handles    map[string]*Handle
	inFlight   map[string]*item
	cancelled  map[string]chan struct{}
	stopped    bool

	work chan *item
	wake chan struct{}

	workers  []*worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool

	completedTotal atomic.Int64
	failedTotal    atomic.Int64
	retriedTotal   atomic.Int64
}

// New creates a Coordinator from configuration. Queues are fixed at
// construction; submissions to other names get ErrUnknownQueue.
func New(podID string, cfg *config.CoordinatorConfig, store Store, publisher Publisher, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}

	queues := make(map[string]*namedQueue, len(cfg.Queues))
	names := make([]string, 0, len(cfg.Queues))
	for name, settings := range cfg.Queues {
		capacity := settings.Cap
		if capacity <= 0 {
			capacity = config.DefaultQueueCap
		}
		queues[name] = newNamedQueue(name, capacity, settings.Concurrency)
		names = append(names, name)
	}
	sort.Strings(names)

	return &Coordinator{
		podID:      podID,
		cfg:        cfg,
		store:      store,
		publisher:  publisher,
		logger:     logger.With("component", "coordinator"),
		queues:     queues,
		queueNames: names,
		handles:    make(map[string]*Handle),
		inFlight:   make(map[string]*item),
		cancelled:  make(map[string]chan struct{}),
		work:       make(chan *item),
		wake:       make(chan struct{}, 1),
		stopCh:     make(chan struct{}),
	}
}

// Start spawns the dispatcher, the worker pool, and the stats loop.
// Safe to call once; subsequent calls are no-ops.
func (c *Coordinator) Start(ctx context.Context) {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		c.logger.Warn("coordinator already started, ignoring duplicate Start call")
		return
	}
	c.started = true
	c.mu.Unlock()

	c.logger.Info("starting coordinator",
		"worker_count", c.cfg.WorkerCount,
		"queues", c.queueNames)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.dispatch()
	}()

	for i := 0; i < c.cfg.WorkerCount; i++ {
		w := newWorker(fmt.Sprintf("%s-worker-%d", c.podID, i), c)
		c.workers = append(c.workers, w)
		c.wg.Add(1)
		go func() {
			defer c.wg.Done()
			w.run()
		}()
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.statsLoop()
	}()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.staleLoop()
	}()
}

// Stop drains gracefully: no new dispatches, in-flight operations finish,
// then all goroutines exit. Safe to call multiple times.
func (c *Coordinator) Stop() {
	c.stopOnce.Do(func() {
		c.mu.Lock()
		c.stopped = true
		c.mu.Unlock()
		close(c.stopCh)
	})
	c.wg.Wait()
	c.logger.Info("coordinator stopped")
}

// Submit appends an operation to the ledger and schedules it on the named
// queue. When spec.OperationID names an already-submitted operation the
// prior handle is returned unchanged. Returns ErrQueueFull when the queue is
// at its depth cap.
func (c *Coordinator) Submit(ctx context.Context, queueName string, spec OpSpec, opts SubmitOptions) (*Handle, error) {
	if spec.Fn == nil {
		return nil, fmt.Errorf("coordinator: op function required")
	}

	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return nil, ErrStopped
	}
	q, ok := c.queues[queueName]
	if !ok {
		c.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrUnknownQueue, queueName)
	}
	if spec.OperationID != "" {
		if prior, exists := c.handles[spec.OperationID]; exists {
			c.mu.Unlock()
			return prior, nil
		}
	}
	if q.full() {
		c.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrQueueFull, queueName)
	}
	c.mu.Unlock()

	hasDeps := len(opts.DependsOn) > 0
	op, err := c.store.Append(ctx, ledger.OperationSpec{
		OperationID:     spec.OperationID,
		TaskID:          spec.TaskID,
		ParentID:        spec.ParentID,
		OperationType:   spec.OperationType,
		QueueName:       queueName,
		AgentType:       spec.AgentType,
		Priority:        opts.Priority,
		InputData:       spec.InputData,
		Meta:            spec.Meta,
		HasDependencies: hasDeps,
	})
	if err != nil {
		return nil, err
	}

	h := newHandle(op.ID, spec.TaskID, queueName)

	policy := RetryPolicy{MaxAttempts: c.cfg.MaxRetries + 1, BackoffBase: c.cfg.RetryBase}
	if opts.RetryPolicy != nil {
		policy = *opts.RetryPolicy
	}
	if policy.MaxAttempts <= 0 {
		policy.MaxAttempts = 1
	}

	c.mu.Lock()
	c.seq++
	it := &item{
		handle:      h,
		spec:        spec,
		priority:    opts.Priority,
		seq:         c.seq,
		retryPolicy: policy,
		deadline:    opts.Deadline,
	}
	c.handles[op.ID] = h
	c.mu.Unlock()

	c.publishProgress(it, operation.StatusQueued, 0, "")

	if hasDeps {
		depPolicy := opts.DependencyPolicy
		if depPolicy == "" {
			depPolicy = DependencyPropagate
		}
		c.wg.Add(1)
		go func() {
			defer c.wg.Done()
			c.waitDependencies(it, opts.DependsOn, depPolicy)
		}()
		return h, nil
	}

	c.enqueue(it)
	return h, nil
}

// Handle returns the handle of a previously submitted operation, if any.
func (c *Coordinator) Handle(operationID string) (*Handle, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	h, ok := c.handles[operationID]
	return h, ok
}

// Cancel marks all pending operations of a task cancelled and signals
// in-flight workers cooperatively. Idempotent.
func (c *Coordinator) Cancel(ctx context.Context, taskID string) error {
	c.mu.Lock()
	ch, seen := c.cancelled[taskID]
	if !seen {
		ch = make(chan struct{})
		c.cancelled[taskID] = ch
		close(ch)
	}

	var removed []*item
	var depths []events.QueueDepthPayload
	for _, name := range c.queueNames {
		q := c.queues[name]
		taken := q.removeForTask(taskID)
		if len(taken) > 0 {
			removed = append(removed, taken...)
			depths = append(depths, c.depthPayloadLocked(q))
		}
	}

	var running []*item
	for _, it := range c.inFlight {
		if it.spec.TaskID == taskID {
			running = append(running, it)
		}
	}
	c.mu.Unlock()

	// Pending DB rows (queued, retrying, dispatched, waiting_deps) flip to
	// cancelled in one statement; in-flight rows finalize cooperatively.
	if _, err := c.store.CancelPending(ctx, taskID); err != nil {
		c.logger.Error("cancel: failed to mark pending operations",
			"task_id", taskID, "error", err)
	}

	for _, it := range removed {
		c.publishProgress(it, operation.StatusCancelled, it.attempt, "")
		it.handle.finish(Outcome{
			OperationID: it.handle.operationID,
			Status:      operation.StatusCancelled,
			Err:         ErrCancelled,
			Attempts:    it.attempt,
		})
	}

	for _, it := range running {
		if it.attemptCancel != nil {
			it.attemptCancel(ErrCancelled)
		}
	}

	for _, d := range depths {
		c.publishDepth(d)
	}
	return nil
}

// Depths returns the current depth of every queue, for health reporting.
func (c *Coordinator) Depths() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	depths := make(map[string]int, len(c.queues))
	for name, q := range c.queues {
		depths[name] = q.depth()
	}
	return depths
}

// taskCancelChan returns a channel closed when the task is cancelled.
func (c *Coordinator) taskCancelChan(taskID string) <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	ch, ok := c.cancelled[taskID]
	if !ok {
		ch = make(chan struct{})
		c.cancelled[taskID] = ch
	}
	return ch
}

func (c *Coordinator) taskCancelled(taskID string) bool {
	ch := c.taskCancelChan(taskID)
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

// waitDependencies gates dispatch until every dependency handle is terminal.
func (c *Coordinator) waitDependencies(it *item, deps []*Handle, policy DependencyPolicy) {
	cancelCh := c.taskCancelChan(it.spec.TaskID)

	for _, dep := range deps {
		select {
		case <-dep.Done():
			outcome := dep.Outcome()
			if outcome.Status != operation.StatusCompleted && policy == DependencyPropagate {
				c.failWaiting(it, fmt.Errorf("%w: operation %s ended %s",
					ErrDependencyFailed, outcome.OperationID, outcome.Status))
				return
			}
		case <-cancelCh:
			// CancelPending already flipped the waiting_deps row.
			it.handle.finish(Outcome{
				OperationID: it.handle.operationID,
				Status:      operation.StatusCancelled,
				Err:         ErrCancelled,
			})
			return
		case <-c.stopCh:
			it.handle.finish(Outcome{
				OperationID: it.handle.operationID,
				Status:      operation.StatusFailed,
				Err:         ErrStopped,
			})
			return
		}
	}

	if _, err := c.applyWithRetry(it.handle.operationID, ledger.Transition{To: operation.StatusQueued}); err != nil {
		c.failHandle(it, err)
		return
	}
	c.enqueue(it)
}

// failWaiting finalizes a waiting_deps operation as failed without dispatch.
func (c *Coordinator) failWaiting(it *item, cause error) {
	if _, err := c.applyWithRetry(it.handle.operationID, ledger.Transition{
		To:           operation.StatusFailed,
		ErrorMessage: cause.Error(),
	}); err != nil {
		c.logger.Error("failed to record dependency failure",
			"operation_id", it.handle.operationID, "error", err)
	}
	c.failedTotal.Add(1)
	c.publishProgress(it, operation.StatusFailed, it.attempt, "")
	it.handle.finish(Outcome{
		OperationID: it.handle.operationID,
		Status:      operation.StatusFailed,
		Err:         cause,
		Attempts:    it.attempt,
	})
}

// failHandle finalizes a handle after an internal store failure.
func (c *Coordinator) failHandle(it *item, err error) {
	c.failedTotal.Add(1)
	it.handle.finish(Outcome{
		OperationID: it.handle.operationID,
		Status:      operation.StatusFailed,
		Err:         err,
		Attempts:    it.attempt,
	})
}

// enqueue pushes an item and nudges the dispatcher.
func (c *Coordinator) enqueue(it *item) {
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		c.failHandle(it, ErrStopped)
		return
	}
	if ch, ok := c.cancelled[it.spec.TaskID]; ok {
		select {
		case <-ch:
			c.mu.Unlock()
			it.handle.finish(Outcome{
				OperationID: it.handle.operationID,
				Status:      operation.StatusCancelled,
				Err:         ErrCancelled,
				Attempts:    it.attempt,
			})
			return
		default:
		}
	}
	q := c.queues[it.handle.queue]
	q.push(it)
	depth := c.depthPayloadLocked(q)
	c.mu.Unlock()

	c.publishDepth(depth)
	c.nudge()
}

func (c *Coordinator) nudge() {
	select {
	case c.wake <- struct{}{}:
	default:
	}
}

// dispatch is the single scheduler loop: it scans queues for the best ready
// item (priority desc, submission order asc), honoring per-queue concurrency
// caps and retry backoff delays, and hands items to idle workers.
func (c *Coordinator) dispatch() {
	for {
		now := time.Now()

		c.mu.Lock()
		if c.stopped {
			c.mu.Unlock()
			close(c.work)
			return
		}

		var best *item
		var bestQueue *namedQueue
		var nextReady time.Time
		for _, name := range c.queueNames {
			q := c.queues[name]
			if q.atConcurrencyCap() || q.items.Len() == 0 {
				continue
			}
			head := q.items[0]
			if head.notBefore.After(now) {
				if nextReady.IsZero() || head.notBefore.Before(nextReady) {
					nextReady = head.notBefore
				}
				continue
			}
			if best == nil ||
				head.priority > best.priority ||
				(head.priority == best.priority && head.seq < best.seq) {
				best = head
				bestQueue = q
			}
		}

		if best != nil {
			bestQueue.popHead()
			bestQueue.inFlight++
			c.inFlight[best.handle.operationID] = best
			depth := c.depthPayloadLocked(bestQueue)
			c.mu.Unlock()

			c.publishDepth(depth)

			select {
			case c.work <- best:
			case <-c.stopCh:
				// Shutdown while waiting for a free worker: put it back so
				// startup orphan recovery sees a queued row, not a lost one.
				c.mu.Lock()
				bestQueue.inFlight--
				delete(c.inFlight, best.handle.operationID)
				bestQueue.push(best)
				c.mu.Unlock()
				close(c.work)
				return
			}
			continue
		}
		c.mu.Unlock()

		var delay <-chan time.Time
		if !nextReady.IsZero() {
			timer := time.NewTimer(time.Until(nextReady))
			delay = timer.C
			select {
			case <-c.wake:
				timer.Stop()
			case <-delay:
			case <-c.stopCh:
				timer.Stop()
				close(c.work)
				return
			}
			continue
		}

		select {
		case <-c.wake:
		case <-c.stopCh:
			close(c.work)
			return
		}
	}
}

// finishDispatch releases the queue concurrency slot after an attempt ends.
func (c *Coordinator) finishDispatch(it *item) {
	c.mu.Lock()
	if q, ok := c.queues[it.handle.queue]; ok {
		q.inFlight--
	}
	delete(c.inFlight, it.handle.operationID)
	c.mu.Unlock()
	c.nudge()
}

// applyWithRetry performs a ledger transition, retrying once on store
// failure before propagating.
func (c *Coordinator) applyWithRetry(operationID string, tr ledger.Transition) (*ent.Operation, error) {
	ctx := context.Background()
	op, err := c.store.Apply(ctx, operationID, tr)
	if err == nil {
		return op, nil
	}
	var storeErr *ledger.StoreError
	if !errors.As(err, &storeErr) {
		return nil, err
	}
	c.logger.Warn("ledger write failed, retrying once",
		"operation_id", operationID, "to", tr.To, "error", err)
	return c.store.Apply(ctx, operationID, tr)
}

// backoffDelay computes the exponential retry delay for a completed attempt
// count, with ±25% jitter, capped at one minute.
func (c *Coordinator) backoffDelay(policy RetryPolicy, attempt int) time.Duration {
	base := policy.BackoffBase
	if base <= 0 {
		base = c.cfg.RetryBase
	}
	delay := base << uint(attempt-1)
	if delay > time.Minute {
		delay = time.Minute
	}
	jitter := time.Duration(rand.Int64N(int64(delay)/2+1)) - delay/4
	return delay + jitter
}

// statsLoop publishes a periodic stats.snapshot.
func (c *Coordinator) statsLoop() {
	interval := c.cfg.StatsInterval
	if interval <= 0 {
		interval = 5 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.publishStats()
		}
	}
}

func (c *Coordinator) publishStats() {
	c.mu.Lock()
	depths := make(map[string]int, len(c.queues))
	for name, q := range c.queues {
		depths[name] = q.depth()
	}
	inFlight := len(c.inFlight)
	c.mu.Unlock()

	active := 0
	for _, w := range c.workers {
		if w.isWorking() {
			active++
		}
	}

	if err := c.publisher.PublishStatsSnapshot(context.Background(), events.StatsSnapshotPayload{
		ActiveWorkers:  active,
		QueueDepths:    depths,
		InFlight:       inFlight,
		CompletedTotal: c.completedTotal.Load(),
		FailedTotal:    c.failedTotal.Load(),
		RetriedTotal:   c.retriedTotal.Load(),
	}); err != nil {
		c.logger.Warn("failed to publish stats snapshot", "error", err)
	}
}

// staleLoop watches worker heartbeats and requeues the in-flight attempt of
// any worker silent past the TTL.
func (c *Coordinator) staleLoop() {
	interval := c.cfg.HeartbeatInterval
	if interval <= 0 {
		interval = 10 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.checkStaleWorkers()
		}
	}
}

func (c *Coordinator) checkStaleWorkers() {
	ttl := c.cfg.HeartbeatTTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	for _, w := range c.workers {
		it := w.staleItem(ttl)
		if it == nil {
			continue
		}
		c.logger.Warn("worker heartbeat lost, requeueing in-flight operation",
			"worker_id", w.id, "operation_id", it.handle.operationID)
		if err := c.publisher.PublishWorkerStatus(context.Background(), events.WorkerStatusPayload{
			WorkerID: w.id,
			Status:   events.WorkerStatusStale,
		}); err != nil {
			c.logger.Warn("failed to publish stale worker status", "error", err)
		}
		if it.attemptCancel != nil {
			it.attemptCancel(errWorkerStale)
		}
	}
}

func (c *Coordinator) depthPayloadLocked(q *namedQueue) events.QueueDepthPayload {
	return events.QueueDepthPayload{
		QueueName: q.name,
		Depth:     q.depth(),
		Cap:       q.cap,
		InFlight:  q.inFlight,
	}
}

func (c *Coordinator) publishDepth(payload events.QueueDepthPayload) {
	if err := c.publisher.PublishQueueDepth(context.Background(), payload); err != nil {
		c.logger.Warn("failed to publish queue depth",
			"queue", payload.QueueName, "error", err)
	}
}

func (c *Coordinator) publishProgress(it *item, status operation.Status, retryCount int, workerID string) {
	if err := c.publisher.PublishOperationProgress(context.Background(), events.OperationProgressPayload{
		TaskID:        it.spec.TaskID,
		OperationID:   it.handle.operationID,
		OperationType: it.spec.OperationType,
		QueueName:     it.handle.queue,
		Status:        status,
		RetryCount:    retryCount,
		WorkerID:      workerID,
	}); err != nil {
		c.logger.Warn("failed to publish operation progress",
			"operation_id", it.handle.operationID, "status", status, "error", err)
	}
}
