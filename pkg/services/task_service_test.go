package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trilogy-group/nexus-agents/ent/researchtask"
	"github.com/trilogy-group/nexus-agents/pkg/models"
	testdb "github.com/trilogy-group/nexus-agents/test/database"
)

func TestTaskService_CreateTask(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client)
	ctx := context.Background()

	t.Run("creates pending analytical task", func(t *testing.T) {
		task, err := service.CreateTask(ctx, models.CreateTaskRequest{
			Title:         "remote work report",
			ResearchQuery: "impact of remote work on engineering teams",
			ResearchType:  "analytical_report",
			UserID:        "user-1",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, task.ID)
		assert.Equal(t, researchtask.StatusPending, task.Status)
		assert.Nil(t, task.StartedAt)
		assert.Nil(t, task.CompletedAt)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := service.CreateTask(ctx, models.CreateTaskRequest{
			ResearchQuery: "q",
			ResearchType:  "analytical_report",
		})
		assert.True(t, IsValidationError(err))

		_, err = service.CreateTask(ctx, models.CreateTaskRequest{
			Title:        "no query",
			ResearchType: "analytical_report",
		})
		assert.True(t, IsValidationError(err))

		_, err = service.CreateTask(ctx, models.CreateTaskRequest{
			Title:         "bad type",
			ResearchQuery: "q",
			ResearchType:  "literature_review",
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("aggregation task requires config", func(t *testing.T) {
		_, err := service.CreateTask(ctx, models.CreateTaskRequest{
			Title:         "agg",
			ResearchQuery: "q",
			ResearchType:  "data_aggregation",
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("aggregation task accepts documented config", func(t *testing.T) {
		task, err := service.CreateTask(ctx, models.CreateTaskRequest{
			Title:         "school sweep",
			ResearchQuery: "aggregate data about private schools in California",
			ResearchType:  "data_aggregation",
			AggregationConfig: map[string]any{
				"entities":     []any{"private schools"},
				"attributes":   []any{"name", "address", "website", "enrollment", "tuition"},
				"search_space": "California",
				"domain_hint":  "education.private_schools",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "California", task.AggregationConfig["search_space"])
	})

	t.Run("aggregation task rejects malformed config", func(t *testing.T) {
		_, err := service.CreateTask(ctx, models.CreateTaskRequest{
			Title:         "bad shape",
			ResearchQuery: "q",
			ResearchType:  "data_aggregation",
			AggregationConfig: map[string]any{
				"entities":     []any{"cafe"},
				"attributes":   []any{"address"},
				"search_space": 42,
			},
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("analytical task rejects aggregation config", func(t *testing.T) {
		_, err := service.CreateTask(ctx, models.CreateTaskRequest{
			Title:             "mixed",
			ResearchQuery:     "q",
			ResearchType:      "analytical_report",
			AggregationConfig: map[string]any{"entity_type": "company"},
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects unknown project", func(t *testing.T) {
		_, err := service.CreateTask(ctx, models.CreateTaskRequest{
			Title:         "orphan project",
			ResearchQuery: "q",
			ResearchType:  "analytical_report",
			ProjectID:     "does-not-exist",
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestTaskService_TransitionStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client)
	ctx := context.Background()

	t.Run("follows the pipeline forward", func(t *testing.T) {
		task := createTestTask(t, client.Client)

		updated, err := service.TransitionStatus(ctx, task.ID, researchtask.StatusRunning)
		require.NoError(t, err)
		assert.NotNil(t, updated.StartedAt)

		for _, status := range []researchtask.Status{
			researchtask.StatusPlanning,
			researchtask.StatusSearching,
			researchtask.StatusSummarizing,
			researchtask.StatusBuildingKnowledge,
			researchtask.StatusGeneratingInsights,
			researchtask.StatusAnalyzingPovs,
			researchtask.StatusSynthesizing,
			researchtask.StatusCompleted,
		} {
			updated, err = service.TransitionStatus(ctx, task.ID, status)
			require.NoError(t, err, "transition to %s", status)
		}
		assert.NotNil(t, updated.CompletedAt)
	})

	t.Run("allows skipping substates", func(t *testing.T) {
		task := createTestTask(t, client.Client)
		_, err := service.TransitionStatus(ctx, task.ID, researchtask.StatusRunning)
		require.NoError(t, err)

		// The aggregation pipeline jumps straight to searching.
		_, err = service.TransitionStatus(ctx, task.ID, researchtask.StatusSearching)
		require.NoError(t, err)
		_, err = service.TransitionStatus(ctx, task.ID, researchtask.StatusSynthesizing)
		require.NoError(t, err)
	})

	t.Run("rejects backward transitions", func(t *testing.T) {
		task := createTestTask(t, client.Client)
		_, err := service.TransitionStatus(ctx, task.ID, researchtask.StatusSearching)
		require.NoError(t, err)

		_, err = service.TransitionStatus(ctx, task.ID, researchtask.StatusPlanning)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		_, err = service.TransitionStatus(ctx, task.ID, researchtask.StatusSearching)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("rejects transitions out of terminal states", func(t *testing.T) {
		task := createTestTask(t, client.Client)
		_, err := service.TransitionStatus(ctx, task.ID, researchtask.StatusCompleted)
		require.NoError(t, err)

		_, err = service.TransitionStatus(ctx, task.ID, researchtask.StatusRunning)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("unknown task", func(t *testing.T) {
		_, err := service.TransitionStatus(ctx, "nope", researchtask.StatusRunning)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTaskService_FailTask(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client)
	ctx := context.Background()

	t.Run("fails a running task with kind and message", func(t *testing.T) {
		task := createTestTask(t, client.Client)
		_, err := service.TransitionStatus(ctx, task.ID, researchtask.StatusSearching)
		require.NoError(t, err)

		err = service.FailTask(ctx, task.ID, "provider_degraded", "all search providers unavailable")
		require.NoError(t, err)

		failed, err := service.GetTask(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, researchtask.StatusFailed, failed.Status)
		require.NotNil(t, failed.ErrorKind)
		assert.Equal(t, "provider_degraded", *failed.ErrorKind)
		assert.NotNil(t, failed.CompletedAt)
	})

	t.Run("is rejected on terminal task", func(t *testing.T) {
		task := createTestTask(t, client.Client)
		_, err := service.TransitionStatus(ctx, task.ID, researchtask.StatusCompleted)
		require.NoError(t, err)

		err = service.FailTask(ctx, task.ID, "timeout", "too late")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestTaskService_ListTasks(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client)
	ctx := context.Background()

	first := createTestTask(t, client.Client)
	second := createTestTask(t, client.Client)
	_, err := service.TransitionStatus(ctx, second.ID, researchtask.StatusRunning)
	require.NoError(t, err)

	t.Run("filters by status", func(t *testing.T) {
		resp, err := service.ListTasks(ctx, models.TaskFilters{Status: "pending"})
		require.NoError(t, err)
		require.Equal(t, 1, resp.TotalCount)
		assert.Equal(t, first.ID, resp.Tasks[0].ID)
	})

	t.Run("paginates with defaults", func(t *testing.T) {
		resp, err := service.ListTasks(ctx, models.TaskFilters{})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.TotalCount)
		assert.Equal(t, 20, resp.Limit)
	})

	t.Run("full-text search over research query", func(t *testing.T) {
		resp, err := service.ListTasks(ctx, models.TaskFilters{Search: "remote work"})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.TotalCount)

		resp, err = service.ListTasks(ctx, models.TaskFilters{Search: "quantum chromodynamics"})
		require.NoError(t, err)
		assert.Zero(t, resp.TotalCount)
	})

	t.Run("excludes soft-deleted by default", func(t *testing.T) {
		victim := createTestTask(t, client.Client)
		_, err := service.TransitionStatus(ctx, victim.ID, researchtask.StatusCompleted)
		require.NoError(t, err)
		// Backdate completion so the retention sweep picks it up.
		err = client.ResearchTask.UpdateOneID(victim.ID).
			SetCompletedAt(time.Now().Add(-48 * time.Hour)).
			Exec(ctx)
		require.NoError(t, err)

		n, err := service.SoftDeleteOldTasks(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		resp, err := service.ListTasks(ctx, models.TaskFilters{})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.TotalCount)

		resp, err = service.ListTasks(ctx, models.TaskFilters{IncludeDeleted: true})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.TotalCount)

		require.NoError(t, service.RestoreTask(ctx, victim.ID))
		resp, err = service.ListTasks(ctx, models.TaskFilters{})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.TotalCount)
	})
}

func TestTaskService_Heartbeats(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client)
	ctx := context.Background()

	t.Run("claim and heartbeat keep a task off the orphan list", func(t *testing.T) {
		task := createTestTask(t, client.Client)
		_, err := service.TransitionStatus(ctx, task.ID, researchtask.StatusSearching)
		require.NoError(t, err)
		require.NoError(t, service.ClaimTask(ctx, task.ID, "pod-a"))
		require.NoError(t, service.Heartbeat(ctx, task.ID))

		orphans, err := service.FindOrphanedTasks(ctx, 30*time.Second)
		require.NoError(t, err)
		assert.Empty(t, orphans)
	})

	t.Run("stale heartbeat surfaces the task", func(t *testing.T) {
		task := createTestTask(t, client.Client)
		_, err := service.TransitionStatus(ctx, task.ID, researchtask.StatusSearching)
		require.NoError(t, err)
		err = client.ResearchTask.UpdateOneID(task.ID).
			SetPodID("pod-dead").
			SetLastHeartbeatAt(time.Now().Add(-5 * time.Minute)).
			Exec(ctx)
		require.NoError(t, err)

		orphans, err := service.FindOrphanedTasks(ctx, 30*time.Second)
		require.NoError(t, err)
		require.Len(t, orphans, 1)
		assert.Equal(t, task.ID, orphans[0].ID)
	})

	t.Run("pending and terminal tasks are never orphans", func(t *testing.T) {
		stale := time.Now().Add(-time.Hour)
		pending := createTestTask(t, client.Client)
		require.NoError(t, client.ResearchTask.UpdateOneID(pending.ID).
			SetLastHeartbeatAt(stale).Exec(ctx))

		done := createTestTask(t, client.Client)
		_, err := service.TransitionStatus(ctx, done.ID, researchtask.StatusCompleted)
		require.NoError(t, err)
		require.NoError(t, client.ResearchTask.UpdateOneID(done.ID).
			SetLastHeartbeatAt(stale).Exec(ctx))

		orphans, err := service.FindOrphanedTasks(ctx, 30*time.Second)
		require.NoError(t, err)
		for _, o := range orphans {
			assert.NotEqual(t, pending.ID, o.ID)
			assert.NotEqual(t, done.ID, o.ID)
		}
	})
}

func TestTaskService_SaveReport(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client)
	ctx := context.Background()

	task := createTestTask(t, client.Client)
	require.NoError(t, service.SaveReport(ctx, task.ID, "# Findings\n\nNothing conclusive."))

	loaded, err := service.GetTask(ctx, task.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.ReportMarkdown)
	assert.Contains(t, *loaded.ReportMarkdown, "# Findings")

	assert.ErrorIs(t, service.SaveReport(ctx, "missing", "x"), ErrNotFound)
}
