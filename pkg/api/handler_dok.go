package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// dokStats handles GET /api/dok/{task_id}/stats.
func (s *Server) dokStats(c *gin.Context) {
	taskID := c.Param("task_id")
	if _, err := s.svc.Tasks.GetTask(c.Request.Context(), taskID); err != nil {
		abortServiceError(c, err)
		return
	}
	stats, err := s.svc.DOK.GetStats(c.Request.Context(), taskID)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task_id": taskID, "stats": stats})
}

// dokKnowledgeTree handles GET /api/dok/{task_id}/knowledge-tree.
func (s *Server) dokKnowledgeTree(c *gin.Context) {
	taskID := c.Param("task_id")
	if _, err := s.svc.Tasks.GetTask(c.Request.Context(), taskID); err != nil {
		abortServiceError(c, err)
		return
	}
	tree, err := s.svc.DOK.GetKnowledgeTree(c.Request.Context(), taskID)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tree)
}

// dokInsights handles GET /api/dok/{task_id}/insights.
func (s *Server) dokInsights(c *gin.Context) {
	taskID := c.Param("task_id")
	if _, err := s.svc.Tasks.GetTask(c.Request.Context(), taskID); err != nil {
		abortServiceError(c, err)
		return
	}
	insights, err := s.svc.DOK.ListInsights(c.Request.Context(), taskID)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task_id": taskID, "insights": insights})
}

// dokSpikyPOVs handles GET /api/dok/{task_id}/spiky-povs.
func (s *Server) dokSpikyPOVs(c *gin.Context) {
	taskID := c.Param("task_id")
	if _, err := s.svc.Tasks.GetTask(c.Request.Context(), taskID); err != nil {
		abortServiceError(c, err)
		return
	}
	povs, err := s.svc.DOK.ListSpikyPOVs(c.Request.Context(), taskID)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	// Partitioned into truths and myths; each POV cites its insights.
	truths := povs[:0:0]
	myths := povs[:0:0]
	for _, p := range povs {
		if p.Kind == "truth" {
			truths = append(truths, p)
		} else {
			myths = append(myths, p)
		}
	}
	c.JSON(http.StatusOK, gin.H{"task_id": taskID, "truths": truths, "myths": myths})
}

// dokBibliography handles GET /api/dok/{task_id}/bibliography: the sources
// the task's summaries draw on.
func (s *Server) dokBibliography(c *gin.Context) {
	taskID := c.Param("task_id")
	if _, err := s.svc.Tasks.GetTask(c.Request.Context(), taskID); err != nil {
		abortServiceError(c, err)
		return
	}
	summaries, err := s.svc.DOK.ListSummaries(c.Request.Context(), taskID)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	seen := make(map[string]struct{}, len(summaries))
	ids := make([]string, 0, len(summaries))
	for _, sum := range summaries {
		if _, dup := seen[sum.SourceID]; dup {
			continue
		}
		seen[sum.SourceID] = struct{}{}
		ids = append(ids, sum.SourceID)
	}
	sources, err := s.svc.Sources.GetSourcesByIDs(c.Request.Context(), ids)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task_id": taskID, "sources": sources})
}

// dokSourceSummaries handles GET /api/dok/{task_id}/source-summaries.
func (s *Server) dokSourceSummaries(c *gin.Context) {
	taskID := c.Param("task_id")
	if _, err := s.svc.Tasks.GetTask(c.Request.Context(), taskID); err != nil {
		abortServiceError(c, err)
		return
	}
	summaries, err := s.svc.DOK.ListSummaries(c.Request.Context(), taskID)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task_id": taskID, "source_summaries": summaries})
}

// dokComplete handles GET /api/dok/{task_id}/complete: the full taxonomy in
// one payload.
func (s *Server) dokComplete(c *gin.Context) {
	taskID := c.Param("task_id")
	if _, err := s.svc.Tasks.GetTask(c.Request.Context(), taskID); err != nil {
		abortServiceError(c, err)
		return
	}
	resp, err := s.svc.DOK.GetTaxonomy(c.Request.Context(), taskID)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
