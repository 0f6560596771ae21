package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trilogy-group/nexus-agents/ent"
	"github.com/trilogy-group/nexus-agents/ent/researchtask"
	"github.com/trilogy-group/nexus-agents/pkg/export"
	"github.com/trilogy-group/nexus-agents/pkg/models"
)

// createTask handles POST /tasks.
func (s *Server) createTask(c *gin.Context) {
	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := s.svc.Tasks.CreateTask(c.Request.Context(), req)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// listTasks handles GET /tasks with filtering and pagination.
func (s *Server) listTasks(c *gin.Context) {
	var filters models.TaskFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := s.svc.Tasks.ListTasks(c.Request.Context(), filters)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getTask handles GET /tasks/{id}.
func (s *Server) getTask(c *gin.Context) {
	task, err := s.svc.Tasks.GetTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// deleteTask handles DELETE /tasks/{id}. Operations, evidence, taxonomy rows
// and events cascade; artifacts on disk go with them.
func (s *Server) deleteTask(c *gin.Context) {
	taskID := c.Param("id")
	if err := s.svc.Tasks.DeleteTask(c.Request.Context(), taskID); err != nil {
		abortServiceError(c, err)
		return
	}
	if s.store != nil {
		if err := s.store.RemoveTask(taskID); err != nil {
			s.logger.Warn("failed to remove task artifacts", "task_id", taskID, "error", err)
		}
	}
	c.Status(http.StatusNoContent)
}

// cancelTask handles POST /tasks/{id}/cancel. Idempotent.
func (s *Server) cancelTask(c *gin.Context) {
	taskID := c.Param("id")
	if _, err := s.svc.Tasks.GetTask(c.Request.Context(), taskID); err != nil {
		abortServiceError(c, err)
		return
	}
	if err := s.controller.CancelTask(c.Request.Context(), taskID); err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"task_id": taskID, "status": "cancelling"})
}

// listOperations handles GET /tasks/{id}/operations.
func (s *Server) listOperations(c *gin.Context) {
	taskID := c.Param("id")
	if _, err := s.svc.Tasks.GetTask(c.Request.Context(), taskID); err != nil {
		abortServiceError(c, err)
		return
	}
	ops, err := s.svc.Operations.ListOperationsForTask(c.Request.Context(), taskID)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task_id": taskID, "operations": ops})
}

// getEvidence handles GET /tasks/{id}/evidence.
func (s *Server) getEvidence(c *gin.Context) {
	taskID := c.Param("id")
	if _, err := s.svc.Tasks.GetTask(c.Request.Context(), taskID); err != nil {
		abortServiceError(c, err)
		return
	}
	resp, err := s.svc.Operations.GetEvidenceForTask(c.Request.Context(), taskID)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getReport handles GET /tasks/{id}/report: Markdown for analytical tasks,
// the consolidated entity list for aggregation tasks. A task that is not
// completed yields 409 with its current state.
func (s *Server) getReport(c *gin.Context) {
	task, err := s.svc.Tasks.GetTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortServiceError(c, err)
		return
	}

	switch task.Status {
	case researchtask.StatusFailed:
		c.JSON(http.StatusConflict, gin.H{
			"error":         "task failed",
			"status":        task.Status,
			"error_kind":    task.ErrorKind,
			"error_message": task.ErrorMessage,
		})
		return
	case researchtask.StatusCompleted:
	default:
		c.JSON(http.StatusConflict, gin.H{
			"error":  "report not ready",
			"status": task.Status,
		})
		return
	}

	if task.ResearchType == researchtask.ResearchTypeAnalyticalReport {
		report := ""
		if task.ReportMarkdown != nil {
			report = *task.ReportMarkdown
		}
		c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(report))
		return
	}

	entities, err := s.taskEntities(c, task)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task_id": task.ID, "entities": entities})
}

// exportCSV handles GET /tasks/{id}/export/csv.
func (s *Server) exportCSV(c *gin.Context) {
	s.exportEntities(c, "csv")
}

// exportXLSX handles GET /tasks/{id}/export/xlsx.
func (s *Server) exportXLSX(c *gin.Context) {
	s.exportEntities(c, "xlsx")
}

func (s *Server) exportEntities(c *gin.Context, format string) {
	task, err := s.svc.Tasks.GetTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortServiceError(c, err)
		return
	}
	if task.ResearchType != researchtask.ResearchTypeDataAggregation {
		c.JSON(http.StatusBadRequest, gin.H{"error": "task is not a data aggregation task"})
		return
	}

	entities, err := s.taskEntities(c, task)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	// Exports render from the live consolidated rows, so re-consolidated
	// projects export current data without re-running the task.
	switch format {
	case "csv":
		data, err := export.CSV(entities)
		if err != nil {
			abortServiceError(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "entities-"+task.ID+".csv"))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
	case "xlsx":
		data, err := export.XLSX(entities)
		if err != nil {
			abortServiceError(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "entities-"+task.ID+".xlsx"))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	}
}

// taskEntities lists the consolidated entities a task contributed to: the
// project scope when the task belongs to a project, else the task scope.
func (s *Server) taskEntities(c *gin.Context, task *ent.ResearchTask) ([]*ent.AggregatedEntity, error) {
	scope := task.ID
	if task.ProjectID != nil && *task.ProjectID != "" {
		scope = *task.ProjectID
	}
	entityType := ""
	if cfg, err := models.ParseAggregationConfig(task.AggregationConfig); err == nil {
		entityType = cfg.EntityType()
	}
	return s.svc.Entities.ListEntities(c.Request.Context(), scope, entityType)
}
