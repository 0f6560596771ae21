// Package api is the HTTP surface of the research platform: task CRUD and
// control, operation and evidence inspection, DOK taxonomy retrieval, entity
// exports, project consolidation, and the WebSocket monitor stream.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/trilogy-group/nexus-agents/pkg/artifacts"
	"github.com/trilogy-group/nexus-agents/pkg/database"
	"github.com/trilogy-group/nexus-agents/pkg/events"
	"github.com/trilogy-group/nexus-agents/pkg/services"
	"github.com/trilogy-group/nexus-agents/pkg/version"
)

// TaskController is the orchestrator surface the API calls into. Satisfied
// by *orchestrator.Orchestrator.
type TaskController interface {
	CancelTask(ctx context.Context, taskID string) error
	ConsolidateProject(ctx context.Context, projectID string) (int, error)
	Depths() map[string]int
}

// Services bundles the read/write services the handlers use.
type Services struct {
	Tasks      *services.TaskService
	Operations *services.OperationService
	DOK        *services.DOKService
	Sources    *services.SourceService
	Entities   *services.EntityService
	Projects   *services.ProjectService
	Warnings   *services.SystemWarningsService
}

// Server wires the HTTP handlers to their dependencies.
type Server struct {
	svc         Services
	controller  TaskController
	store       *artifacts.Store
	connManager *events.ConnectionManager
	dbClient    *database.Client
	logger      *slog.Logger
}

// NewServer creates the API server.
func NewServer(svc Services, controller TaskController, store *artifacts.Store,
	connManager *events.ConnectionManager, dbClient *database.Client, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		svc:         svc,
		controller:  controller,
		store:       store,
		connManager: connManager,
		dbClient:    dbClient,
		logger:      logger.With("component", "api"),
	}
}

// RegisterRoutes mounts every endpoint on the router.
func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.Use(securityHeaders())

	r.GET("/health", s.healthHandler)
	r.GET("/ws/monitor", s.wsHandler)

	r.POST("/tasks", s.createTask)
	r.GET("/tasks", s.listTasks)
	r.GET("/tasks/:id", s.getTask)
	r.DELETE("/tasks/:id", s.deleteTask)
	r.POST("/tasks/:id/cancel", s.cancelTask)
	r.GET("/tasks/:id/operations", s.listOperations)
	r.GET("/tasks/:id/evidence", s.getEvidence)
	r.GET("/tasks/:id/report", s.getReport)
	r.GET("/tasks/:id/export/csv", s.exportCSV)
	r.GET("/tasks/:id/export/xlsx", s.exportXLSX)

	api := r.Group("/api")
	{
		dok := api.Group("/dok/:task_id")
		dok.GET("/stats", s.dokStats)
		dok.GET("/knowledge-tree", s.dokKnowledgeTree)
		dok.GET("/insights", s.dokInsights)
		dok.GET("/spiky-povs", s.dokSpikyPOVs)
		dok.GET("/bibliography", s.dokBibliography)
		dok.GET("/source-summaries", s.dokSourceSummaries)
		dok.GET("/complete", s.dokComplete)

		api.POST("/projects", s.createProject)
		api.GET("/projects", s.listProjects)
		api.GET("/projects/:id", s.getProject)
		api.GET("/projects/:id/tasks", s.listProjectTasks)
		api.GET("/projects/:id/entities", s.listProjectEntities)
		api.POST("/projects/:id/consolidate", s.consolidateProject)

		api.GET("/system/warnings", s.systemWarnings)
	}
}

const (
	healthStatusHealthy   = "healthy"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /health. Only the platform's own dependencies
// are checked; external providers are excluded so a provider outage never
// restarts the pod.
func (s *Server) healthHandler(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	checks := gin.H{}
	status := healthStatusHealthy

	if hs, err := database.Health(reqCtx, s.dbClient.DB()); err != nil {
		status = healthStatusUnhealthy
		checks["database"] = gin.H{"status": healthStatusUnhealthy, "message": err.Error()}
	} else {
		checks["database"] = hs
	}

	code := http.StatusOK
	if status == healthStatusUnhealthy {
		code = http.StatusServiceUnavailable
	}
	body := gin.H{
		"status":  status,
		"version": version.Full(),
		"checks":  checks,
	}
	if s.connManager != nil {
		body["ws_connections"] = s.connManager.ActiveConnections()
	}
	if s.controller != nil {
		body["queues"] = s.controller.Depths()
	}
	c.JSON(code, body)
}

// systemWarnings handles GET /api/system/warnings.
func (s *Server) systemWarnings(c *gin.Context) {
	if s.svc.Warnings == nil {
		c.JSON(http.StatusOK, gin.H{"warnings": []any{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"warnings": s.svc.Warnings.GetWarnings()})
}
