package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trilogy-group/nexus-agents/ent"
	testdb "github.com/trilogy-group/nexus-agents/test/database"
)

func insertTestEvent(t *testing.T, client *ent.Client, taskID, channel, eventType string, createdAt time.Time) *ent.Event {
	t.Helper()
	builder := client.Event.Create().
		SetChannel(channel).
		SetEventType(eventType).
		SetPayload(map[string]any{"event_type": eventType}).
		SetCreatedAt(createdAt)
	if taskID != "" {
		builder.SetTaskID(taskID)
	}
	ev, err := builder.Save(context.Background())
	require.NoError(t, err)
	return ev
}

func TestEventService_GetEventsSince(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.Client)
	ctx := context.Background()

	task := createTestTask(t, client.Client)
	channel := "task:" + task.ID
	now := time.Now()

	first := insertTestEvent(t, client.Client, task.ID, channel, "task.started", now)
	second := insertTestEvent(t, client.Client, task.ID, channel, "phase.started", now)
	insertTestEvent(t, client.Client, "", "global", "stats_snapshot", now)

	t.Run("returns channel events after the cursor", func(t *testing.T) {
		events, err := service.GetEventsSince(ctx, channel, 0, 0)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, first.ID, events[0].ID, "ascending id order")

		events, err = service.GetEventsSince(ctx, channel, first.ID, 0)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, second.ID, events[0].ID)
	})

	t.Run("respects the limit", func(t *testing.T) {
		events, err := service.GetEventsSince(ctx, channel, 0, 1)
		require.NoError(t, err)
		assert.Len(t, events, 1)
	})

	t.Run("unknown channel is empty", func(t *testing.T) {
		events, err := service.GetEventsSince(ctx, "task:none", 0, 0)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestEventService_Cleanup(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.Client)
	ctx := context.Background()

	task := createTestTask(t, client.Client)
	now := time.Now()

	insertTestEvent(t, client.Client, task.ID, "task:"+task.ID, "task.started", now)
	insertTestEvent(t, client.Client, task.ID, "global", "task.started", now)
	old := insertTestEvent(t, client.Client, "", "global", "stats_snapshot", now.Add(-2*time.Hour))

	t.Run("cleanup by task removes rows on any channel", func(t *testing.T) {
		n, err := service.CleanupTaskEvents(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("cleanup by ttl removes expired rows", func(t *testing.T) {
		n, err := service.CleanupExpiredEvents(ctx, time.Hour)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		events, err := service.GetEventsSince(ctx, "global", 0, 0)
		require.NoError(t, err)
		for _, ev := range events {
			assert.NotEqual(t, old.ID, ev.ID)
		}
	})
}
