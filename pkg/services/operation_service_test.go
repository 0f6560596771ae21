package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trilogy-group/nexus-agents/ent"
	testdb "github.com/trilogy-group/nexus-agents/test/database"
)

func insertTestOperation(t *testing.T, client *ent.Client, taskID, opType string) *ent.Operation {
	t.Helper()
	op, err := client.Operation.Create().
		SetID(uuid.New().String()).
		SetTaskID(taskID).
		SetOperationType(opType).
		SetQueueName("search").
		Save(context.Background())
	require.NoError(t, err)
	return op
}

func insertTestEvidence(t *testing.T, client *ent.Client, op *ent.Operation, provider string) *ent.Evidence {
	t.Helper()
	builder := client.Evidence.Create().
		SetID(uuid.New().String()).
		SetOperationID(op.ID).
		SetTaskID(op.TaskID).
		SetEvidenceType("search_results").
		SetEvidenceData(map[string]any{"results": 3}).
		SetSizeBytes(64)
	if provider != "" {
		builder.SetProvider(provider)
	}
	ev, err := builder.Save(context.Background())
	require.NoError(t, err)
	return ev
}

func TestOperationService_ListOperationsForTask(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewOperationService(client.Client)
	ctx := context.Background()

	task := createTestTask(t, client.Client)
	search := insertTestOperation(t, client.Client, task.ID, "mcp_search")
	summarize := insertTestOperation(t, client.Client, task.ID, "summarize_source")
	insertTestEvidence(t, client.Client, search, "linkup")
	insertTestEvidence(t, client.Client, search, "exa")

	ops, err := service.ListOperationsForTask(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, ops, 2)
	assert.Equal(t, search.ID, ops[0].ID, "submission order")
	assert.Equal(t, 2, ops[0].EvidenceCount)
	assert.Equal(t, summarize.ID, ops[1].ID)
	assert.Zero(t, ops[1].EvidenceCount)
}

func TestOperationService_GetEvidenceForTask(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewOperationService(client.Client)
	ctx := context.Background()

	task := createTestTask(t, client.Client)
	first := insertTestOperation(t, client.Client, task.ID, "mcp_search")
	second := insertTestOperation(t, client.Client, task.ID, "mcp_search")
	insertTestEvidence(t, client.Client, first, "linkup")
	insertTestEvidence(t, client.Client, first, "exa")
	insertTestEvidence(t, client.Client, second, "linkup")
	insertTestEvidence(t, client.Client, second, "")

	resp, err := service.GetEvidenceForTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, resp.TotalEvidenceItems)
	assert.Equal(t, []string{"exa", "linkup"}, resp.SearchProvidersUsed, "sorted, deduplicated")
	assert.Equal(t, 2, resp.OperationsCount)
	assert.Len(t, resp.Evidence, 4)
}

func TestOperationService_ListEvidenceForOperation(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewOperationService(client.Client)
	ctx := context.Background()

	task := createTestTask(t, client.Client)
	op := insertTestOperation(t, client.Client, task.ID, "fetch_page")
	other := insertTestOperation(t, client.Client, task.ID, "fetch_page")
	insertTestEvidence(t, client.Client, op, "firecrawl")
	insertTestEvidence(t, client.Client, other, "firecrawl")

	rows, err := service.ListEvidenceForOperation(ctx, op.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, op.ID, rows[0].OperationID)

	_, err = service.GetOperation(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOperationService_TaskDeleteCascades(t *testing.T) {
	client := testdb.NewTestClient(t)
	opService := NewOperationService(client.Client)
	taskService := NewTaskService(client.Client)
	ctx := context.Background()

	task := createTestTask(t, client.Client)
	op := insertTestOperation(t, client.Client, task.ID, "mcp_search")
	insertTestEvidence(t, client.Client, op, "linkup")

	require.NoError(t, taskService.DeleteTask(ctx, task.ID))

	ops, err := opService.ListOperationsForTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Empty(t, ops)
	resp, err := opService.GetEvidenceForTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Zero(t, resp.TotalEvidenceItems)
}
