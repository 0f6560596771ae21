package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trilogy-group/nexus-agents/ent/researchtask"
	"github.com/trilogy-group/nexus-agents/pkg/models"
	testdb "github.com/trilogy-group/nexus-agents/test/database"
)

func TestProjectService(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewProjectService(client.Client)
	taskService := NewTaskService(client.Client)
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		p, err := service.CreateProject(ctx, models.CreateProjectRequest{
			Name:        "EU battery market",
			Description: "aggregation tasks for the battery landscape",
		})
		require.NoError(t, err)

		loaded, err := service.GetProject(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "EU battery market", loaded.Name)

		_, err = service.CreateProject(ctx, models.CreateProjectRequest{})
		assert.True(t, IsValidationError(err))
		_, err = service.GetProject(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("lists only completed aggregation tasks for consolidation", func(t *testing.T) {
		p, err := service.CreateProject(ctx, models.CreateProjectRequest{Name: "consolidation scope"})
		require.NoError(t, err)

		done := createTestAggregationTask(t, client.Client, p.ID)
		_, err = taskService.TransitionStatus(ctx, done.ID, researchtask.StatusCompleted)
		require.NoError(t, err)

		createTestAggregationTask(t, client.Client, p.ID) // still pending

		analytical, err := taskService.CreateTask(ctx, models.CreateTaskRequest{
			Title:         "report in same project",
			ResearchQuery: "battery supply chains",
			ResearchType:  "analytical_report",
			ProjectID:     p.ID,
		})
		require.NoError(t, err)
		_, err = taskService.TransitionStatus(ctx, analytical.ID, researchtask.StatusCompleted)
		require.NoError(t, err)

		tasks, err := service.ListAggregationTasks(ctx, p.ID)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, done.ID, tasks[0].ID)
	})
}
