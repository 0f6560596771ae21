package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/trilogy-group/nexus-agents/ent"
	"github.com/trilogy-group/nexus-agents/ent/project"
	"github.com/trilogy-group/nexus-agents/ent/researchtask"
	"github.com/trilogy-group/nexus-agents/pkg/models"
)

// statusRank orders the task status set for monotonic transition checks.
// A transition is legal only when the rank strictly increases; the pipeline
// may skip substates (the aggregation pipeline has no summarizing phase) but
// never moves backwards.
var statusRank = map[researchtask.Status]int{
	researchtask.StatusPending:            0,
	researchtask.StatusRunning:            1,
	researchtask.StatusPlanning:           2,
	researchtask.StatusSearching:          3,
	researchtask.StatusSummarizing:        4,
	researchtask.StatusBuildingKnowledge:  5,
	researchtask.StatusGeneratingInsights: 6,
	researchtask.StatusAnalyzingPovs:      7,
	researchtask.StatusSynthesizing:       8,
	researchtask.StatusCompleted:          9,
	researchtask.StatusFailed:             9,
}

// isTerminalStatus reports whether no further transitions are allowed.
func isTerminalStatus(s researchtask.Status) bool {
	return s == researchtask.StatusCompleted || s == researchtask.StatusFailed
}

// TaskService manages the research task lifecycle.
type TaskService struct {
	client *ent.Client
}

// NewTaskService creates a new TaskService.
func NewTaskService(client *ent.Client) *TaskService {
	return &TaskService{client: client}
}

// CreateTask validates and persists a new research task in status pending.
func (s *TaskService) CreateTask(httpCtx context.Context, req models.CreateTaskRequest) (*ent.ResearchTask, error) {
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}
	if req.ResearchQuery == "" {
		return nil, NewValidationError("research_query", "required")
	}
	researchType := researchtask.ResearchType(req.ResearchType)
	if err := researchtask.ResearchTypeValidator(researchType); err != nil {
		return nil, NewValidationError("research_type",
			"must be analytical_report or data_aggregation")
	}
	// aggregation_config present iff research_type=data_aggregation
	if researchType == researchtask.ResearchTypeDataAggregation {
		if len(req.AggregationConfig) == 0 {
			return nil, NewValidationError("data_aggregation_config",
				"required for data_aggregation tasks")
		}
		if _, err := models.ParseAggregationConfig(req.AggregationConfig); err != nil {
			return nil, NewValidationError("data_aggregation_config", err.Error())
		}
	}
	if researchType == researchtask.ResearchTypeAnalyticalReport && len(req.AggregationConfig) > 0 {
		return nil, NewValidationError("data_aggregation_config",
			"only valid for data_aggregation tasks")
	}
	if req.ProjectID != "" {
		exists, err := s.client.Project.Query().
			Where(project.IDEQ(req.ProjectID)).
			Exist(httpCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to check project: %w", err)
		}
		if !exists {
			return nil, NewValidationError("project_id", "project not found")
		}
	}

	// Use background context with timeout for the critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.ResearchTask.Create().
		SetID(uuid.New().String()).
		SetTitle(req.Title).
		SetResearchQuery(req.ResearchQuery).
		SetResearchType(researchType).
		SetStatus(researchtask.StatusPending)

	if len(req.AggregationConfig) > 0 {
		builder.SetAggregationConfig(req.AggregationConfig)
	}
	if req.ProjectID != "" {
		builder.SetProjectID(req.ProjectID)
	}
	if req.UserID != "" {
		builder.SetUserID(req.UserID)
	}

	task, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// GetTask retrieves a task by ID.
func (s *TaskService) GetTask(ctx context.Context, taskID string) (*ent.ResearchTask, error) {
	task, err := s.client.ResearchTask.Query().
		Where(researchtask.IDEQ(taskID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

// ListTasks lists tasks with filtering and pagination.
func (s *TaskService) ListTasks(ctx context.Context, filters models.TaskFilters) (*models.TaskListResponse, error) {
	query := s.client.ResearchTask.Query()

	if filters.Status != "" {
		query = query.Where(researchtask.StatusEQ(researchtask.Status(filters.Status)))
	}
	if filters.ResearchType != "" {
		query = query.Where(researchtask.ResearchTypeEQ(researchtask.ResearchType(filters.ResearchType)))
	}
	if filters.ProjectID != "" {
		query = query.Where(researchtask.ProjectIDEQ(filters.ProjectID))
	}
	if filters.UserID != "" {
		query = query.Where(researchtask.UserIDEQ(filters.UserID))
	}
	if filters.CreatedAfter != nil {
		query = query.Where(researchtask.CreatedAtGTE(*filters.CreatedAfter))
	}
	if filters.CreatedBefore != nil {
		query = query.Where(researchtask.CreatedAtLT(*filters.CreatedBefore))
	}
	if !filters.IncludeDeleted {
		query = query.Where(researchtask.DeletedAtIsNil())
	}
	if filters.Search != "" {
		query = query.Where(fullTextPredicate(filters.Search))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	tasks, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(researchtask.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return &models.TaskListResponse{
		Tasks:      tasks,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// TransitionStatus moves a task to a new status, enforcing forward-only
// transitions. Returns ErrInvalidTransition when the move would go backwards
// or leave a terminal state. The check and the write run in one transaction
// so concurrent transitions serialize on the row.
func (s *TaskService) TransitionStatus(ctx context.Context, taskID string, status researchtask.Status) (*ent.ResearchTask, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	current, err := tx.ResearchTask.Query().
		Where(researchtask.IDEQ(taskID)).
		ForUpdate().
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock task: %w", err)
	}

	if err := validateTransition(current.Status, status); err != nil {
		return nil, err
	}

	update := tx.ResearchTask.UpdateOneID(taskID).SetStatus(status)
	now := time.Now()
	if current.Status == researchtask.StatusPending {
		update = update.SetStartedAt(now)
	}
	if isTerminalStatus(status) {
		update = update.SetCompletedAt(now)
	}

	task, err := update.Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit status transition: %w", err)
	}
	return task, nil
}

// validateTransition enforces the monotonic status order.
func validateTransition(from, to researchtask.Status) error {
	if isTerminalStatus(from) {
		return fmt.Errorf("%w: task is already %s", ErrInvalidTransition, from)
	}
	if statusRank[to] <= statusRank[from] {
		return fmt.Errorf("%w: %s → %s", ErrInvalidTransition, from, to)
	}
	return nil
}

// FailTask transitions a task to failed with an error kind and message.
// Legal from any non-terminal state.
func (s *TaskService) FailTask(ctx context.Context, taskID, errorKind, errorMessage string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.ResearchTask.Update().
		Where(
			researchtask.IDEQ(taskID),
			researchtask.StatusNotIn(researchtask.StatusCompleted, researchtask.StatusFailed),
		).
		SetStatus(researchtask.StatusFailed).
		SetErrorKind(errorKind).
		SetErrorMessage(errorMessage).
		SetCompletedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to fail task: %w", err)
	}
	if count == 0 {
		// Either missing or already terminal
		exists, err := s.client.ResearchTask.Query().
			Where(researchtask.IDEQ(taskID)).Exist(writeCtx)
		if err != nil {
			return fmt.Errorf("failed to check task: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
		return fmt.Errorf("%w: task already terminal", ErrInvalidTransition)
	}
	return nil
}

// SaveReport stores the final Markdown report on the task.
func (s *TaskService) SaveReport(ctx context.Context, taskID, markdown string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.ResearchTask.UpdateOneID(taskID).
		SetReportMarkdown(markdown).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// ClaimTask records which pod is executing a task and stamps the first
// heartbeat. Used by the orchestrator when it picks up a pending task.
func (s *TaskService) ClaimTask(ctx context.Context, taskID, podID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.ResearchTask.UpdateOneID(taskID).
		SetPodID(podID).
		SetLastHeartbeatAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to claim task: %w", err)
	}
	return nil
}

// Heartbeat refreshes the task's liveness timestamp.
func (s *TaskService) Heartbeat(ctx context.Context, taskID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.ResearchTask.UpdateOneID(taskID).
		SetLastHeartbeatAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to heartbeat task: %w", err)
	}
	return nil
}

// FindOrphanedTasks finds tasks stuck in a running substate whose heartbeat
// went stale — the executing pod died without failing them.
func (s *TaskService) FindOrphanedTasks(ctx context.Context, heartbeatTTL time.Duration) ([]*ent.ResearchTask, error) {
	threshold := time.Now().Add(-heartbeatTTL)

	tasks, err := s.client.ResearchTask.Query().
		Where(
			researchtask.StatusNotIn(
				researchtask.StatusPending,
				researchtask.StatusCompleted,
				researchtask.StatusFailed,
			),
			researchtask.LastHeartbeatAtNotNil(),
			researchtask.LastHeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find orphaned tasks: %w", err)
	}
	return tasks, nil
}

// DeleteTask hard deletes a task; operations, evidence, taxonomy rows and
// events cascade with it. Sources survive — they are shared across tasks.
func (s *TaskService) DeleteTask(ctx context.Context, taskID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err := s.client.ResearchTask.DeleteOneID(taskID).Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// SoftDeleteOldTasks soft deletes terminal tasks older than the retention period.
func (s *TaskService) SoftDeleteOldTasks(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, fmt.Errorf("retention_days must be positive, got %d", retentionDays)
	}

	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	deleteCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.ResearchTask.Update().
		Where(
			researchtask.CompletedAtLT(cutoff),
			researchtask.DeletedAtIsNil(),
		).
		SetDeletedAt(time.Now()).
		Save(deleteCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to soft delete tasks: %w", err)
	}
	return count, nil
}

// RestoreTask restores a soft-deleted task.
func (s *TaskService) RestoreTask(ctx context.Context, taskID string) error {
	restoreCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.ResearchTask.UpdateOneID(taskID).
		ClearDeletedAt().
		Exec(restoreCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to restore task: %w", err)
	}
	return nil
}

// fullTextPredicate matches research_query and the final report against the
// search terms. Backed by the GIN indexes created in pkg/database.
func fullTextPredicate(search string) func(*sql.Selector) {
	return func(sel *sql.Selector) {
		sel.Where(sql.Or(
			sql.ExprP("to_tsvector('english', research_query) @@ plainto_tsquery($1)", search),
			sql.ExprP("to_tsvector('english', COALESCE(report_markdown, '')) @@ plainto_tsquery($2)", search),
		))
	}
}
