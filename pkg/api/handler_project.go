package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trilogy-group/nexus-agents/pkg/models"
)

// createProject handles POST /api/projects.
func (s *Server) createProject(c *gin.Context) {
	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := s.svc.Projects.CreateProject(c.Request.Context(), req)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// listProjects handles GET /api/projects.
func (s *Server) listProjects(c *gin.Context) {
	projects, err := s.svc.Projects.ListProjects(c.Request.Context())
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// getProject handles GET /api/projects/{id}.
func (s *Server) getProject(c *gin.Context) {
	project, err := s.svc.Projects.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// listProjectTasks handles GET /api/projects/{id}/tasks.
func (s *Server) listProjectTasks(c *gin.Context) {
	projectID := c.Param("id")
	if _, err := s.svc.Projects.GetProject(c.Request.Context(), projectID); err != nil {
		abortServiceError(c, err)
		return
	}
	resp, err := s.svc.Tasks.ListTasks(c.Request.Context(), models.TaskFilters{
		ProjectID: projectID,
		Limit:     200,
	})
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// listProjectEntities handles GET /api/projects/{id}/entities. The optional
// entity_type query narrows the listing.
func (s *Server) listProjectEntities(c *gin.Context) {
	projectID := c.Param("id")
	if _, err := s.svc.Projects.GetProject(c.Request.Context(), projectID); err != nil {
		abortServiceError(c, err)
		return
	}
	entities, err := s.svc.Entities.ListEntities(c.Request.Context(), projectID, c.Query("entity_type"))
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"project_id": projectID, "entities": entities})
}

// consolidateProject handles POST /api/projects/{id}/consolidate: re-merges
// task-scoped entities from the project's aggregation tasks into the project
// scope. Idempotent.
func (s *Server) consolidateProject(c *gin.Context) {
	projectID := c.Param("id")
	if _, err := s.svc.Projects.GetProject(c.Request.Context(), projectID); err != nil {
		abortServiceError(c, err)
		return
	}
	count, err := s.controller.ConsolidateProject(c.Request.Context(), projectID)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"project_id": projectID, "entities": count})
}
