package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trilogy-group/nexus-agents/pkg/entity"
	testdb "github.com/trilogy-group/nexus-agents/test/database"
)

func resolvedEntity(name, identifier, taskID string, attrs map[string]string, confidence float64) entity.Resolved {
	candidates := []entity.Candidate{{
		Name:             name,
		UniqueIdentifier: identifier,
		Attributes:       attrs,
		Confidence:       confidence,
		TaskID:           taskID,
		SourceURL:        "https://example.com/src",
		ObservedAt:       time.Now(),
	}}
	return entity.Resolve(candidates, nil, time.Now())[0]
}

func TestEntityService_UpsertResolved(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEntityService(client.Client)
	ctx := context.Background()

	t.Run("creates a new entity", func(t *testing.T) {
		row, err := service.UpsertResolved(ctx, "task-1", "company",
			resolvedEntity("Acme Inc", "ACME-1", "task-1", map[string]string{"hq": "Berlin"}, 0.8))
		require.NoError(t, err)
		assert.Equal(t, "acme inc", row.NormalizedName)
		assert.Equal(t, "Berlin", row.ConsolidatedAttributes["hq"])
		assert.Equal(t, []string{"task-1"}, row.SourceTasks)
		assert.InDelta(t, 0.8, row.ConfidenceScore, 1e-9)
	})

	t.Run("merges by unique identifier across tasks", func(t *testing.T) {
		first, err := service.UpsertResolved(ctx, "proj-1", "company",
			resolvedEntity("Globex", "GLOB-7", "task-a", map[string]string{"hq": "Oslo"}, 0.6))
		require.NoError(t, err)

		second, err := service.UpsertResolved(ctx, "proj-1", "company",
			resolvedEntity("Globex Corporation", "GLOB-7", "task-b", map[string]string{"founded": "1989"}, 0.9))
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "Globex", second.Name, "stored identity wins")
		assert.Equal(t, "Oslo", second.ConsolidatedAttributes["hq"])
		assert.Equal(t, "1989", second.ConsolidatedAttributes["founded"])
		assert.Equal(t, []string{"task-a", "task-b"}, second.SourceTasks)
	})

	t.Run("merges by normalized name when no identifier", func(t *testing.T) {
		first, err := service.UpsertResolved(ctx, "proj-2", "company",
			resolvedEntity("Initech, LLC", "", "task-a", map[string]string{"sector": "tech"}, 0.7))
		require.NoError(t, err)

		second, err := service.UpsertResolved(ctx, "proj-2", "company",
			resolvedEntity("initech llc", "", "task-b", nil, 0.5))
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("repeat upsert with identical input is a no-op", func(t *testing.T) {
		input := resolvedEntity("Stable Co", "STB-1", "task-a", map[string]string{"hq": "Paris"}, 0.8)

		first, err := service.UpsertResolved(ctx, "proj-3", "company", input)
		require.NoError(t, err)
		second, err := service.UpsertResolved(ctx, "proj-3", "company", input)
		require.NoError(t, err)

		assert.Equal(t, first.ConsolidatedAttributes, second.ConsolidatedAttributes)
		assert.Equal(t, first.ConfidenceScore, second.ConfidenceScore)
		assert.Equal(t, first.SourceTasks, second.SourceTasks)
		assert.Equal(t, first.DataLineage["attributes"], second.DataLineage["attributes"])
	})

	t.Run("scopes are independent", func(t *testing.T) {
		a, err := service.UpsertResolved(ctx, "scope-a", "company",
			resolvedEntity("Shared Name", "SH-1", "t1", nil, 0.5))
		require.NoError(t, err)
		b, err := service.UpsertResolved(ctx, "scope-b", "company",
			resolvedEntity("Shared Name", "SH-1", "t2", nil, 0.5))
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("validates input", func(t *testing.T) {
		_, err := service.UpsertResolved(ctx, "", "company", resolvedEntity("X", "", "t", nil, 0.5))
		assert.True(t, IsValidationError(err))
		_, err = service.UpsertResolved(ctx, "scope", "", resolvedEntity("X", "", "t", nil, 0.5))
		assert.True(t, IsValidationError(err))
	})
}

func TestEntityService_ListAndDelete(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEntityService(client.Client)
	ctx := context.Background()

	_, err := service.UpsertResolved(ctx, "scope-list", "company",
		resolvedEntity("Beta Corp", "", "t1", nil, 0.5))
	require.NoError(t, err)
	_, err = service.UpsertResolved(ctx, "scope-list", "company",
		resolvedEntity("Alpha LLC", "", "t1", nil, 0.5))
	require.NoError(t, err)
	_, err = service.UpsertResolved(ctx, "scope-list", "person",
		resolvedEntity("C. Example", "", "t1", nil, 0.5))
	require.NoError(t, err)

	rows, err := service.ListEntities(ctx, "scope-list", "company")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "alpha llc", rows[0].NormalizedName, "ordered for stable exports")

	rows, err = service.ListEntities(ctx, "scope-list", "")
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	n, err := service.DeleteScope(ctx, "scope-list")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
