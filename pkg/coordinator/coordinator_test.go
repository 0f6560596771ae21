package coordinator

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trilogy-group/nexus-agents/ent"
	"github.com/trilogy-group/nexus-agents/ent/operation"
	"github.com/trilogy-group/nexus-agents/pkg/config"
	"github.com/trilogy-group/nexus-agents/pkg/events"
	"github.com/trilogy-group/nexus-agents/pkg/ledger"
)

// fakeStore records ledger calls in memory.
type fakeStore struct {
	mu          sync.Mutex
	rows        map[string]operation.Status
	transitions map[string][]operation.Status
	retryCounts map[string]int
	cancelCalls int
	failApply   error // when set, Apply fails once with this error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		rows:        make(map[string]operation.Status),
		transitions: make(map[string][]operation.Status),
		retryCounts: make(map[string]int),
	}
}

func (s *fakeStore) Append(_ context.Context, spec ledger.OperationSpec) (*ent.Operation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := spec.OperationID
	if id == "" {
		id = uuid.New().String()
	}
	status := operation.StatusQueued
	if spec.HasDependencies {
		status = operation.StatusWaitingDeps
	}
	s.rows[id] = status
	return &ent.Operation{ID: id, TaskID: spec.TaskID, Status: status}, nil
}

func (s *fakeStore) Apply(_ context.Context, operationID string, tr ledger.Transition) (*ent.Operation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failApply != nil {
		err := s.failApply
		s.failApply = nil
		return nil, err
	}
	s.rows[operationID] = tr.To
	s.transitions[operationID] = append(s.transitions[operationID], tr.To)
	if tr.RetryCount > s.retryCounts[operationID] {
		s.retryCounts[operationID] = tr.RetryCount
	}
	return &ent.Operation{ID: operationID, Status: tr.To}, nil
}

func (s *fakeStore) CancelPending(_ context.Context, _ string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelCalls++
	return 0, nil
}

func (s *fakeStore) history(operationID string) []operation.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]operation.Status, len(s.transitions[operationID]))
	copy(out, s.transitions[operationID])
	return out
}

// fakePublisher records monitoring events in memory.
type fakePublisher struct {
	mu       sync.Mutex
	progress []events.OperationProgressPayload
	workers  []events.WorkerStatusPayload
	depths   []events.QueueDepthPayload
}

func (p *fakePublisher) PublishOperationProgress(_ context.Context, payload events.OperationProgressPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.progress = append(p.progress, payload)
	return nil
}

func (p *fakePublisher) PublishWorkerStatus(_ context.Context, payload events.WorkerStatusPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.workers = append(p.workers, payload)
	return nil
}

func (p *fakePublisher) PublishQueueDepth(_ context.Context, payload events.QueueDepthPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.depths = append(p.depths, payload)
	return nil
}

func (p *fakePublisher) PublishStatsSnapshot(_ context.Context, _ events.StatsSnapshotPayload) error {
	return nil
}

func (p *fakePublisher) progressFor(operationID string) []events.OperationProgressPayload {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []events.OperationProgressPayload
	for _, e := range p.progress {
		if e.OperationID == operationID {
			out = append(out, e)
		}
	}
	return out
}

func testConfig() *config.CoordinatorConfig {
	return &config.CoordinatorConfig{
		WorkerCount: 4,
		Queues: map[string]config.QueueSettings{
			"search": {Cap: 8, Concurrency: 4},
			"llm":    {Cap: 8, Concurrency: 2},
		},
		MaxRetries:        2,
		RetryBase:         5 * time.Millisecond,
		OpTimeout:         2 * time.Second,
		HeartbeatInterval: 50 * time.Millisecond,
		HeartbeatTTL:      time.Hour, // stale detection off unless a test wants it
		StatsInterval:     time.Hour,
	}
}

func startCoordinator(t *testing.T, cfg *config.CoordinatorConfig) (*Coordinator, *fakeStore, *fakePublisher) {
	t.Helper()
	store := newFakeStore()
	pub := &fakePublisher{}
	c := New("test-pod", cfg, store, pub, nil)
	c.Start(context.Background())
	t.Cleanup(c.Stop)
	return c, store, pub
}

func succeedOp(output map[string]any) OpFunc {
	return func(context.Context) (map[string]any, []ledger.EvidenceInput, error) {
		return output, nil, nil
	}
}

func TestSubmitAndComplete(t *testing.T) {
	c, store, pub := startCoordinator(t, testConfig())

	h, err := c.Submit(context.Background(), "search", OpSpec{
		TaskID:        "task-1",
		OperationType: "mcp_search",
		Fn:            succeedOp(map[string]any{"hits": 3}),
	}, SubmitOptions{})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	outcome, err := h.Wait(ctx)
	require.NoError(t, err)

	assert.Equal(t, operation.StatusCompleted, outcome.Status)
	assert.Equal(t, map[string]any{"hits": 3}, outcome.Output)
	assert.Equal(t, 1, outcome.Attempts)

	assert.Equal(t,
		[]operation.Status{operation.StatusDispatched, operation.StatusInFlight, operation.StatusCompleted},
		store.history(h.OperationID()))

	// queued → in_flight → completed on the progress stream.
	progress := pub.progressFor(h.OperationID())
	require.NotEmpty(t, progress)
	assert.Equal(t, operation.StatusQueued, progress[0].Status)
	assert.Equal(t, operation.StatusCompleted, progress[len(progress)-1].Status)
}

func TestSubmitUnknownQueue(t *testing.T) {
	c, _, _ := startCoordinator(t, testConfig())

	_, err := c.Submit(context.Background(), "nope", OpSpec{
		TaskID:        "task-1",
		OperationType: "mcp_search",
		Fn:            succeedOp(nil),
	}, SubmitOptions{})
	assert.ErrorIs(t, err, ErrUnknownQueue)
}

func TestQueueFull(t *testing.T) {
	cfg := testConfig()
	cfg.WorkerCount = 1
	cfg.Queues = map[string]config.QueueSettings{"search": {Cap: 2, Concurrency: 1}}
	c, _, _ := startCoordinator(t, cfg)

	block := make(chan struct{})
	started := make(chan struct{})
	blocking := func(ctx context.Context) (map[string]any, []ledger.EvidenceInput, error) {
		select {
		case <-block:
		case <-ctx.Done():
		}
		return nil, nil, nil
	}
	defer close(block)

	// First op occupies the single worker slot...
	_, err := c.Submit(context.Background(), "search", OpSpec{
		TaskID:        "task-1",
		OperationType: "mcp_search",
		Fn: func(ctx context.Context) (map[string]any, []ledger.EvidenceInput, error) {
			close(started)
			return blocking(ctx)
		},
	}, SubmitOptions{})
	require.NoError(t, err)
	<-started

	// ...then two queued ops fill the cap.
	for i := 0; i < 2; i++ {
		_, err := c.Submit(context.Background(), "search", OpSpec{
			TaskID:        "task-1",
			OperationType: "mcp_search",
			Fn:            blocking,
		}, SubmitOptions{})
		require.NoError(t, err)
	}

	_, err = c.Submit(context.Background(), "search", OpSpec{
		TaskID:        "task-1",
		OperationType: "mcp_search",
		Fn:            blocking,
	}, SubmitOptions{})
	assert.ErrorIs(t, err, ErrQueueFull)
}

func TestDuplicateOperationIDReturnsPriorHandle(t *testing.T) {
	c, _, _ := startCoordinator(t, testConfig())

	opID := uuid.New().String()
	spec := OpSpec{
		OperationID:   opID,
		TaskID:        "task-1",
		OperationType: "mcp_search",
		Fn:            succeedOp(nil),
	}
	h1, err := c.Submit(context.Background(), "search", spec, SubmitOptions{})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err = h1.Wait(ctx)
	require.NoError(t, err)

	h2, err := c.Submit(context.Background(), "search", spec, SubmitOptions{})
	require.NoError(t, err)
	assert.Same(t, h1, h2)
}

func TestTransientRetryThenSuccess(t *testing.T) {
	c, store, pub := startCoordinator(t, testConfig())

	var mu sync.Mutex
	calls := 0
	flaky := func(context.Context) (map[string]any, []ledger.EvidenceInput, error) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		if calls < 3 {
			return nil, nil, Transient(errors.New("503 from provider"))
		}
		return map[string]any{"ok": true}, nil, nil
	}

	h, err := c.Submit(context.Background(), "search", OpSpec{
		TaskID:        "task-1",
		OperationType: "mcp_search",
		Fn:            flaky,
	}, SubmitOptions{})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	outcome, err := h.Wait(ctx)
	require.NoError(t, err)

	assert.Equal(t, operation.StatusCompleted, outcome.Status)
	assert.Equal(t, 3, outcome.Attempts)

	// Two retry events with monotonic retry counts.
	var retries []events.OperationProgressPayload
	for _, e := range pub.progressFor(h.OperationID()) {
		if e.Status == operation.StatusRetrying {
			retries = append(retries, e)
		}
	}
	require.Len(t, retries, 2)
	assert.Equal(t, 1, retries[0].RetryCount)
	assert.Equal(t, 2, retries[1].RetryCount)

	assert.Equal(t, 2, store.retryCounts[h.OperationID()])
}

func TestPermanentErrorFailsImmediately(t *testing.T) {
	c, store, _ := startCoordinator(t, testConfig())

	permanent := errors.New("401 unauthorized")
	h, err := c.Submit(context.Background(), "search", OpSpec{
		TaskID:        "task-1",
		OperationType: "mcp_search",
		Fn: func(context.Context) (map[string]any, []ledger.EvidenceInput, error) {
			return nil, nil, permanent
		},
	}, SubmitOptions{})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	outcome, err := h.Wait(ctx)
	require.NoError(t, err)

	assert.Equal(t, operation.StatusFailed, outcome.Status)
	assert.ErrorIs(t, outcome.Err, permanent)
	assert.Equal(t, 1, outcome.Attempts)

	history := store.history(h.OperationID())
	assert.NotContains(t, history, operation.StatusRetrying)
}

func TestRetryBudgetExhausted(t *testing.T) {
	cfg := testConfig()
	cfg.MaxRetries = 1
	c, _, _ := startCoordinator(t, cfg)

	h, err := c.Submit(context.Background(), "search", OpSpec{
		TaskID:        "task-1",
		OperationType: "mcp_search",
		Fn: func(context.Context) (map[string]any, []ledger.EvidenceInput, error) {
			return nil, nil, Transient(errors.New("timeout talking to provider"))
		},
	}, SubmitOptions{})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	outcome, err := h.Wait(ctx)
	require.NoError(t, err)

	assert.Equal(t, operation.StatusFailed, outcome.Status)
	assert.Equal(t, 2, outcome.Attempts) // first attempt + one retry
}

func TestDependencyOrdering(t *testing.T) {
	c, _, _ := startCoordinator(t, testConfig())

	var mu sync.Mutex
	var order []string
	record := func(name string) OpFunc {
		return func(context.Context) (map[string]any, []ledger.EvidenceInput, error) {
			mu.Lock()
			order = append(order, name)
			mu.Unlock()
			return nil, nil, nil
		}
	}

	first, err := c.Submit(context.Background(), "llm", OpSpec{
		TaskID:        "task-1",
		OperationType: "topic_decomposition",
		Fn:            record("first"),
	}, SubmitOptions{})
	require.NoError(t, err)

	second, err := c.Submit(context.Background(), "llm", OpSpec{
		TaskID:        "task-1",
		OperationType: "research_plan",
		Fn:            record("second"),
	}, SubmitOptions{DependsOn: []*Handle{first}})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	outcome, err := second.Wait(ctx)
	require.NoError(t, err)
	require.Equal(t, operation.StatusCompleted, outcome.Status)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestDependencyFailurePropagates(t *testing.T) {
	c, store, _ := startCoordinator(t, testConfig())

	first, err := c.Submit(context.Background(), "llm", OpSpec{
		TaskID:        "task-1",
		OperationType: "build_knowledge_tree",
		Fn: func(context.Context) (map[string]any, []ledger.EvidenceInput, error) {
			return nil, nil, errors.New("malformed llm output")
		},
	}, SubmitOptions{})
	require.NoError(t, err)

	dispatched := false
	second, err := c.Submit(context.Background(), "llm", OpSpec{
		TaskID:        "task-1",
		OperationType: "generate_insights",
		Fn: func(context.Context) (map[string]any, []ledger.EvidenceInput, error) {
			dispatched = true
			return nil, nil, nil
		},
	}, SubmitOptions{DependsOn: []*Handle{first}})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	outcome, err := second.Wait(ctx)
	require.NoError(t, err)

	assert.Equal(t, operation.StatusFailed, outcome.Status)
	assert.ErrorIs(t, outcome.Err, ErrDependencyFailed)
	assert.False(t, dispatched, "dependent must not dispatch after dependency failure")

	// The waiting_deps row went straight to failed.
	assert.Equal(t, []operation.Status{operation.StatusFailed}, store.history(second.OperationID()))
}

func TestDependencyBestEffortDispatches(t *testing.T) {
	c, _, _ := startCoordinator(t, testConfig())

	first, err := c.Submit(context.Background(), "llm", OpSpec{
		TaskID:        "task-1",
		OperationType: "mcp_search",
		Fn: func(context.Context) (map[string]any, []ledger.EvidenceInput, error) {
			return nil, nil, errors.New("provider down")
		},
	}, SubmitOptions{})
	require.NoError(t, err)

	second, err := c.Submit(context.Background(), "llm", OpSpec{
		TaskID:        "task-1",
		OperationType: "summarize_source",
		Fn:            succeedOp(map[string]any{"ran": true}),
	}, SubmitOptions{
		DependsOn:        []*Handle{first},
		DependencyPolicy: DependencyBestEffort,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	outcome, err := second.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, operation.StatusCompleted, outcome.Status)
}

func TestPriorityOrdering(t *testing.T) {
	cfg := testConfig()
	cfg.WorkerCount = 1
	cfg.Queues = map[string]config.QueueSettings{"search": {Cap: 16, Concurrency: 1}}
	c, _, _ := startCoordinator(t, cfg)

	var mu sync.Mutex
	var order []int
	gate := make(chan struct{})

	// A blocker occupies the single worker while the rest queue up.
	blocker, err := c.Submit(context.Background(), "search", OpSpec{
		TaskID:        "task-1",
		OperationType: "mcp_search",
		Fn: func(ctx context.Context) (map[string]any, []ledger.EvidenceInput, error) {
			<-gate
			return nil, nil, nil
		},
	}, SubmitOptions{})
	require.NoError(t, err)

	var handles []*Handle
	for i, prio := range []int{0, 5, 1} {
		i := i
		h, err := c.Submit(context.Background(), "search", OpSpec{
			TaskID:        "task-1",
			OperationType: "mcp_search",
			Fn: func(context.Context) (map[string]any, []ledger.EvidenceInput, error) {
				mu.Lock()
				order = append(order, i)
				mu.Unlock()
				return nil, nil, nil
			},
		}, SubmitOptions{Priority: prio})
		require.NoError(t, err)
		handles = append(handles, h)
	}
	close(gate)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err = blocker.Wait(ctx)
	require.NoError(t, err)
	for _, h := range handles {
		_, err := h.Wait(ctx)
		require.NoError(t, err)
	}

	mu.Lock()
	defer mu.Unlock()
	// Priority 5 first, then 1, then 0 (FIFO would be 0,1,2).
	assert.Equal(t, []int{1, 2, 0}, order)
}

func TestCancelTask(t *testing.T) {
	cfg := testConfig()
	cfg.WorkerCount = 1
	cfg.Queues = map[string]config.QueueSettings{"search": {Cap: 16, Concurrency: 1}}
	c, store, _ := startCoordinator(t, cfg)

	started := make(chan struct{})
	inFlight, err := c.Submit(context.Background(), "search", OpSpec{
		TaskID:        "task-1",
		OperationType: "mcp_search",
		Fn: func(ctx context.Context) (map[string]any, []ledger.EvidenceInput, error) {
			close(started)
			<-ctx.Done()
			return nil, nil, context.Cause(ctx)
		},
	}, SubmitOptions{})
	require.NoError(t, err)

	queued, err := c.Submit(context.Background(), "search", OpSpec{
		TaskID:        "task-1",
		OperationType: "mcp_search",
		Fn:            succeedOp(nil),
	}, SubmitOptions{})
	require.NoError(t, err)

	<-started
	require.NoError(t, c.Cancel(context.Background(), "task-1"))
	// Idempotent.
	require.NoError(t, c.Cancel(context.Background(), "task-1"))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	o1, err := inFlight.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, operation.StatusCancelled, o1.Status)

	o2, err := queued.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, operation.StatusCancelled, o2.Status)

	assert.GreaterOrEqual(t, store.cancelCalls, 1)

	// Later submissions for the cancelled task settle as cancelled too.
	late, err := c.Submit(context.Background(), "search", OpSpec{
		TaskID:        "task-1",
		OperationType: "mcp_search",
		Fn:            succeedOp(nil),
	}, SubmitOptions{})
	require.NoError(t, err)
	o3, err := late.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, operation.StatusCancelled, o3.Status)
}

func TestDeadlineBecomesTimeout(t *testing.T) {
	cfg := testConfig()
	cfg.MaxRetries = 0
	c, _, _ := startCoordinator(t, cfg)

	h, err := c.Submit(context.Background(), "search", OpSpec{
		TaskID:        "task-1",
		OperationType: "mcp_search",
		Fn: func(ctx context.Context) (map[string]any, []ledger.EvidenceInput, error) {
			<-ctx.Done()
			return nil, nil, ctx.Err()
		},
	}, SubmitOptions{Deadline: time.Now().Add(50 * time.Millisecond)})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	outcome, err := h.Wait(ctx)
	require.NoError(t, err)

	assert.Equal(t, operation.StatusFailed, outcome.Status)
	assert.ErrorIs(t, outcome.Err, ErrTimeout)
}

func TestStoreFailureRetriedOnce(t *testing.T) {
	c, store, _ := startCoordinator(t, testConfig())

	store.mu.Lock()
	store.failApply = &ledger.StoreError{Op: "update_operation", Err: errors.New("connection reset")}
	store.mu.Unlock()

	h, err := c.Submit(context.Background(), "search", OpSpec{
		TaskID:        "task-1",
		OperationType: "mcp_search",
		Fn:            succeedOp(nil),
	}, SubmitOptions{})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	outcome, err := h.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, operation.StatusCompleted, outcome.Status)
}
