package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/trilogy-group/nexus-agents/ent"
	"github.com/trilogy-group/nexus-agents/ent/project"
	"github.com/trilogy-group/nexus-agents/ent/researchtask"
	"github.com/trilogy-group/nexus-agents/pkg/models"
)

// ProjectService manages projects, the optional grouping used to scope
// cross-task entity consolidation.
type ProjectService struct {
	client *ent.Client
}

// NewProjectService creates a new ProjectService.
func NewProjectService(client *ent.Client) *ProjectService {
	return &ProjectService{client: client}
}

// CreateProject creates a new project.
func (s *ProjectService) CreateProject(ctx context.Context, req models.CreateProjectRequest) (*ent.Project, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	p, err := s.client.Project.Create().
		SetID(uuid.New().String()).
		SetName(req.Name).
		SetDescription(req.Description).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return p, nil
}

// GetProject retrieves a project by ID.
func (s *ProjectService) GetProject(ctx context.Context, projectID string) (*ent.Project, error) {
	p, err := s.client.Project.Query().
		Where(project.IDEQ(projectID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// ListProjects lists all projects, newest first.
func (s *ProjectService) ListProjects(ctx context.Context) ([]*ent.Project, error) {
	projects, err := s.client.Project.Query().
		Order(ent.Desc(project.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// ListAggregationTasks returns the project's completed data-aggregation
// tasks — the input set for cross-task consolidation.
func (s *ProjectService) ListAggregationTasks(ctx context.Context, projectID string) ([]*ent.ResearchTask, error) {
	tasks, err := s.client.ResearchTask.Query().
		Where(
			researchtask.ProjectIDEQ(projectID),
			researchtask.ResearchTypeEQ(researchtask.ResearchTypeDataAggregation),
			researchtask.StatusEQ(researchtask.StatusCompleted),
			researchtask.DeletedAtIsNil(),
		).
		Order(ent.Asc(researchtask.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list aggregation tasks: %w", err)
	}
	return tasks, nil
}
