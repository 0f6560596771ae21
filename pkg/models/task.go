// Package models contains request/response models and business domain types.
package models

import (
	"time"

	"github.com/trilogy-group/nexus-agents/ent"
)

// CreateTaskRequest contains the fields for submitting a research task.
type CreateTaskRequest struct {
	Title             string         `json:"title"`
	ResearchQuery     string         `json:"research_query"`
	ResearchType      string         `json:"research_type"`
	AggregationConfig map[string]any `json:"data_aggregation_config,omitempty"`
	ProjectID         string         `json:"project_id,omitempty"`
	UserID            string         `json:"user_id,omitempty"`
}

// TaskFilters narrows task listings.
type TaskFilters struct {
	Status        string     `form:"status"`
	ResearchType  string     `form:"research_type"`
	ProjectID     string     `form:"project_id"`
	UserID        string     `form:"user_id"`
	Search        string     `form:"search"` // full-text over research_query + report
	CreatedAfter  *time.Time `form:"created_after"`
	CreatedBefore *time.Time `form:"created_before"`

	Limit          int  `form:"limit"`
	Offset         int  `form:"offset"`
	IncludeDeleted bool `form:"include_deleted"`
}

// TaskListResponse is a paginated task listing.
type TaskListResponse struct {
	Tasks      []*ent.ResearchTask `json:"tasks"`
	TotalCount int                 `json:"total_count"`
	Limit      int                 `json:"limit"`
	Offset     int                 `json:"offset"`
}

// OperationWithEvidence pairs an operation with its evidence count for the
// operations listing.
type OperationWithEvidence struct {
	*ent.Operation
	EvidenceCount int `json:"evidence_count"`
}

// EvidenceAggregate summarizes a task's evidence rows.
type EvidenceAggregate struct {
	TotalEvidenceItems  int      `json:"total_evidence_items"`
	SearchProvidersUsed []string `json:"search_providers_used"`
	OperationsCount     int      `json:"operations_count"`
}

// EvidenceResponse is the evidence endpoint payload.
type EvidenceResponse struct {
	Evidence []*ent.Evidence `json:"evidence"`
	EvidenceAggregate
}

// DOKStats aggregates the taxonomy output of an analytical task.
type DOKStats struct {
	TotalSummaries int `json:"total_summaries"`
	TotalNodes     int `json:"total_nodes"`
	TotalInsights  int `json:"total_insights"`
	TotalTruths    int `json:"total_truths"`
	TotalMyths     int `json:"total_myths"`
}

// CreateProjectRequest contains the fields for creating a project.
type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
