package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/trilogy-group/nexus-agents/test/database"
)

func TestSourceService_RecordObservation(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSourceService(client.Client)
	ctx := context.Background()

	t.Run("creates a new source", func(t *testing.T) {
		src, err := service.RecordObservation(ctx, ObservedSource{
			URL:      "https://example.com/a",
			Title:    "Example A",
			Provider: "linkup",
			Content:  "body text",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, src.ObservationCount)
		assert.InDelta(t, 0.5, src.ReliabilityScore, 1e-9)
		assert.Equal(t, ContentHash("body text"), src.ContentHash)
	})

	t.Run("repeat observation dedupes and bumps reliability", func(t *testing.T) {
		first, err := service.RecordObservation(ctx, ObservedSource{
			URL: "https://example.com/b", Provider: "exa", Content: "same body",
		})
		require.NoError(t, err)

		second, err := service.RecordObservation(ctx, ObservedSource{
			URL: "https://example.com/b", Provider: "linkup", Content: "same body",
		})
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 2, second.ObservationCount)
		assert.InDelta(t, 0.55, second.ReliabilityScore, 1e-9)
	})

	t.Run("changed content is a new source version", func(t *testing.T) {
		v1, err := service.RecordObservation(ctx, ObservedSource{
			URL: "https://example.com/c", Content: "version one",
		})
		require.NoError(t, err)
		v2, err := service.RecordObservation(ctx, ObservedSource{
			URL: "https://example.com/c", Content: "version two",
		})
		require.NoError(t, err)
		assert.NotEqual(t, v1.ID, v2.ID)

		versions, err := service.ListByURL(ctx, "https://example.com/c")
		require.NoError(t, err)
		assert.Len(t, versions, 2)
	})

	t.Run("reliability is capped at 1.0", func(t *testing.T) {
		for i := 0; i < 15; i++ {
			_, err := service.RecordObservation(ctx, ObservedSource{
				URL: "https://example.com/d", Content: "stable",
			})
			require.NoError(t, err)
		}
		src, err := service.RecordObservation(ctx, ObservedSource{
			URL: "https://example.com/d", Content: "stable",
		})
		require.NoError(t, err)
		assert.InDelta(t, 1.0, src.ReliabilityScore, 1e-9)
	})

	t.Run("requires url", func(t *testing.T) {
		_, err := service.RecordObservation(ctx, ObservedSource{Content: "x"})
		assert.True(t, IsValidationError(err))
	})
}

func TestSourceService_GetSourcesByIDs(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSourceService(client.Client)
	ctx := context.Background()

	a := createTestSource(t, client.Client, "https://example.com/x")
	b := createTestSource(t, client.Client, "https://example.com/y")

	sources, err := service.GetSourcesByIDs(ctx, []string{a.ID, b.ID, "missing"})
	require.NoError(t, err)
	assert.Len(t, sources, 2, "missing IDs are skipped")

	sources, err = service.GetSourcesByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, sources)

	_, err = service.GetSource(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
