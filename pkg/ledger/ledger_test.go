package ledger

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trilogy-group/nexus-agents/ent"
	"github.com/trilogy-group/nexus-agents/ent/evidence"
	"github.com/trilogy-group/nexus-agents/ent/operation"
	"github.com/trilogy-group/nexus-agents/ent/researchtask"
	testdb "github.com/trilogy-group/nexus-agents/test/database"
)

func newTestLedger(t *testing.T, cap int) (*Ledger, *ent.Client, *ent.ResearchTask) {
	t.Helper()
	client := testdb.NewTestClient(t)
	led := New(client.Client, cap, nil)

	task, err := client.ResearchTask.Create().
		SetID("task-ledger").
		SetTitle("ledger test").
		SetResearchQuery("q").
		SetResearchType(researchtask.ResearchTypeAnalyticalReport).
		Save(context.Background())
	require.NoError(t, err)
	return led, client.Client, task
}

func TestLedger_Append(t *testing.T) {
	led, _, task := newTestLedger(t, 0)
	ctx := context.Background()

	t.Run("queued by default", func(t *testing.T) {
		op, err := led.Append(ctx, OperationSpec{
			TaskID:        task.ID,
			OperationType: "mcp_search",
			QueueName:     "search",
			Priority:      5,
			InputData:     map[string]any{"query": "remote work"},
		})
		require.NoError(t, err)
		assert.Equal(t, operation.StatusQueued, op.Status)
		assert.Equal(t, 5, op.Priority)
	})

	t.Run("waiting_deps when dependencies declared", func(t *testing.T) {
		op, err := led.Append(ctx, OperationSpec{
			TaskID:          task.ID,
			OperationType:   "summarize_source",
			QueueName:       "llm",
			HasDependencies: true,
		})
		require.NoError(t, err)
		assert.Equal(t, operation.StatusWaitingDeps, op.Status)
	})

	t.Run("validates spec", func(t *testing.T) {
		_, err := led.Append(ctx, OperationSpec{OperationType: "x", QueueName: "q"})
		assert.Error(t, err)
		_, err = led.Append(ctx, OperationSpec{TaskID: task.ID, QueueName: "q"})
		assert.Error(t, err)
		_, err = led.Append(ctx, OperationSpec{TaskID: task.ID, OperationType: "x"})
		assert.Error(t, err)
	})
}

func TestLedger_Lifecycle(t *testing.T) {
	led, client, task := newTestLedger(t, 0)
	ctx := context.Background()

	op, err := led.Append(ctx, OperationSpec{
		TaskID: task.ID, OperationType: "mcp_search", QueueName: "search",
	})
	require.NoError(t, err)

	t.Run("dispatch then in_flight stamps started_at once", func(t *testing.T) {
		_, err := led.Apply(ctx, op.ID, Transition{To: operation.StatusDispatched})
		require.NoError(t, err)

		inFlight, err := led.Apply(ctx, op.ID, Transition{
			To: operation.StatusInFlight, WorkerID: "worker-1",
		})
		require.NoError(t, err)
		require.NotNil(t, inFlight.StartedAt)
		started := *inFlight.StartedAt

		_, err = led.Apply(ctx, op.ID, Transition{To: operation.StatusRetrying, RetryCount: 1})
		require.NoError(t, err)
		again, err := led.Apply(ctx, op.ID, Transition{To: operation.StatusInFlight})
		require.NoError(t, err)
		assert.Equal(t, started, *again.StartedAt, "started_at is the first attempt")
		assert.Equal(t, 1, again.RetryCount)
	})

	t.Run("completion writes output, duration and evidence atomically", func(t *testing.T) {
		done, err := led.Apply(ctx, op.ID, Transition{
			To:         operation.StatusCompleted,
			OutputData: map[string]any{"result_count": 7},
			Evidence: []EvidenceInput{
				{Type: "search_results", Data: map[string]any{"hits": 7}, Provider: "linkup", SourceURL: "https://example.com"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, operation.StatusCompleted, done.Status)
		require.NotNil(t, done.CompletedAt)
		require.NotNil(t, done.DurationMs)
		assert.GreaterOrEqual(t, *done.DurationMs, int64(0))
		assert.EqualValues(t, 7, done.OutputData["result_count"])

		rows, err := client.Evidence.Query().
			Where(evidence.OperationIDEQ(op.ID)).All(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, task.ID, rows[0].TaskID)
		require.NotNil(t, rows[0].Provider)
		assert.Equal(t, "linkup", *rows[0].Provider)
	})

	t.Run("terminal operations admit no transitions", func(t *testing.T) {
		_, err := led.Apply(ctx, op.ID, Transition{To: operation.StatusInFlight})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestLedger_InvalidTransitions(t *testing.T) {
	led, _, task := newTestLedger(t, 0)
	ctx := context.Background()

	op, err := led.Append(ctx, OperationSpec{
		TaskID: task.ID, OperationType: "mcp_search", QueueName: "search",
	})
	require.NoError(t, err)

	// queued cannot jump straight to completed.
	_, err = led.Apply(ctx, op.ID, Transition{To: operation.StatusCompleted})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// output data outside completed is rejected before any write.
	_, err = led.Apply(ctx, op.ID, Transition{
		To: operation.StatusDispatched, OutputData: map[string]any{"x": 1},
	})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidTransition)

	reloaded, err := led.Get(ctx, op.ID)
	require.NoError(t, err)
	assert.Equal(t, operation.StatusQueued, reloaded.Status, "failed transition left no trace")
}

func TestLedger_EvidenceSizeCap(t *testing.T) {
	led, client, task := newTestLedger(t, 512)
	ctx := context.Background()

	op, err := led.Append(ctx, OperationSpec{
		TaskID: task.ID, OperationType: "fetch_page", QueueName: "search",
	})
	require.NoError(t, err)
	_, err = led.Apply(ctx, op.ID, Transition{To: operation.StatusDispatched})
	require.NoError(t, err)
	_, err = led.Apply(ctx, op.ID, Transition{To: operation.StatusInFlight})
	require.NoError(t, err)

	_, err = led.Apply(ctx, op.ID, Transition{
		To:         operation.StatusCompleted,
		OutputData: map[string]any{},
		Evidence: []EvidenceInput{{
			Type: "document",
			Data: map[string]any{"content": strings.Repeat("x", 4096)},
		}},
	})
	require.NoError(t, err)

	rows, err := client.Evidence.Query().
		Where(evidence.OperationIDEQ(op.ID)).All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, true, rows[0].EvidenceData["truncated"])
	assert.LessOrEqual(t, rows[0].SizeBytes, 512, "stub stays under the cap")
	assert.EqualValues(t, 4096+len(`{"content":""}`), int(rows[0].EvidenceData["original_size_bytes"].(float64)))
}

func TestLedger_CancelPending(t *testing.T) {
	led, _, task := newTestLedger(t, 0)
	ctx := context.Background()

	queued, err := led.Append(ctx, OperationSpec{
		TaskID: task.ID, OperationType: "mcp_search", QueueName: "search",
	})
	require.NoError(t, err)
	waiting, err := led.Append(ctx, OperationSpec{
		TaskID: task.ID, OperationType: "summarize_source", QueueName: "llm",
		HasDependencies: true,
	})
	require.NoError(t, err)
	inFlight, err := led.Append(ctx, OperationSpec{
		TaskID: task.ID, OperationType: "fetch_page", QueueName: "search",
	})
	require.NoError(t, err)
	_, err = led.Apply(ctx, inFlight.ID, Transition{To: operation.StatusDispatched})
	require.NoError(t, err)
	_, err = led.Apply(ctx, inFlight.ID, Transition{To: operation.StatusInFlight})
	require.NoError(t, err)

	n, err := led.CancelPending(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, id := range []string{queued.ID, waiting.ID} {
		op, err := led.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, operation.StatusCancelled, op.Status)
		assert.NotNil(t, op.CompletedAt)
	}
	still, err := led.Get(ctx, inFlight.ID)
	require.NoError(t, err)
	assert.Equal(t, operation.StatusInFlight, still.Status, "in-flight ops finalize cooperatively")

	// Idempotent.
	n, err = led.CancelPending(ctx, task.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
}
