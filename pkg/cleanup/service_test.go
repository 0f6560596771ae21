package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trilogy-group/nexus-agents/ent/researchtask"
	"github.com/trilogy-group/nexus-agents/pkg/config"
	"github.com/trilogy-group/nexus-agents/pkg/database"
	"github.com/trilogy-group/nexus-agents/pkg/models"
	"github.com/trilogy-group/nexus-agents/pkg/services"
	testdb "github.com/trilogy-group/nexus-agents/test/database"
)

func setupRetention(t *testing.T) (*database.Client, *services.TaskService, *services.EventService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	return client, services.NewTaskService(client.Client), services.NewEventService(client.Client)
}

func TestService_SoftDeletesOldCompletedTasks(t *testing.T) {
	client, taskService, eventService := setupRetention(t)
	ctx := context.Background()

	old, err := taskService.CreateTask(ctx, models.CreateTaskRequest{
		Title:         "ancient",
		ResearchQuery: "query",
		ResearchType:  string(researchtask.ResearchTypeAnalyticalReport),
	})
	require.NoError(t, err)
	require.NoError(t, client.ResearchTask.UpdateOneID(old.ID).
		SetStatus(researchtask.StatusCompleted).
		SetCompletedAt(time.Now().Add(-120*24*time.Hour)).
		Exec(ctx))

	fresh, err := taskService.CreateTask(ctx, models.CreateTaskRequest{
		Title:         "fresh",
		ResearchQuery: "query",
		ResearchType:  string(researchtask.ResearchTypeAnalyticalReport),
	})
	require.NoError(t, err)

	svc := NewService(&config.RetentionConfig{
		TaskRetentionDays: 90,
		EventTTL:          time.Hour,
		CleanupInterval:   time.Hour,
	}, taskService, eventService, nil)
	svc.RunOnce(ctx)

	deleted, err := client.ResearchTask.Get(ctx, old.ID)
	require.NoError(t, err)
	assert.NotNil(t, deleted.DeletedAt)

	kept, err := client.ResearchTask.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Nil(t, kept.DeletedAt)
}

func TestService_CleansUpExpiredEvents(t *testing.T) {
	client, taskService, eventService := setupRetention(t)
	ctx := context.Background()

	_, err := client.Event.Create().
		SetChannel("tasks").
		SetEventType("task.status").
		SetPayload(map[string]interface{}{"status": "completed"}).
		SetCreatedAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	recent, err := client.Event.Create().
		SetChannel("tasks").
		SetEventType("task.status").
		SetPayload(map[string]interface{}{"status": "pending"}).
		Save(ctx)
	require.NoError(t, err)

	svc := NewService(&config.RetentionConfig{
		TaskRetentionDays: 90,
		EventTTL:          time.Hour,
		CleanupInterval:   time.Hour,
	}, taskService, eventService, nil)
	svc.RunOnce(ctx)

	remaining, err := client.Event.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, recent.ID, remaining[0].ID)
}

func TestService_DisabledSweepsAreSkipped(t *testing.T) {
	client, taskService, eventService := setupRetention(t)
	ctx := context.Background()

	task, err := taskService.CreateTask(ctx, models.CreateTaskRequest{
		Title:         "kept forever",
		ResearchQuery: "query",
		ResearchType:  string(researchtask.ResearchTypeAnalyticalReport),
	})
	require.NoError(t, err)
	require.NoError(t, client.ResearchTask.UpdateOneID(task.ID).
		SetStatus(researchtask.StatusCompleted).
		SetCompletedAt(time.Now().Add(-10*365*24*time.Hour)).
		Exec(ctx))

	svc := NewService(&config.RetentionConfig{
		TaskRetentionDays: 0,
		EventTTL:          0,
		CleanupInterval:   time.Hour,
	}, taskService, eventService, nil)
	svc.RunOnce(ctx)

	kept, err := client.ResearchTask.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Nil(t, kept.DeletedAt)
}
