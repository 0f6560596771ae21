package events

import (
	"github.com/trilogy-group/nexus-agents/ent/operation"
	"github.com/trilogy-group/nexus-agents/ent/researchtask"
)

// TaskStatusPayload is the payload for task.status events.
// Published on every task lifecycle transition, including the intermediate
// pipeline statuses (planning, searching, summarizing, …).
type TaskStatusPayload struct {
	Type         string              `json:"type"`     // always EventTypeTaskStatus
	EventID      string              `json:"event_id"` // event UUID
	TaskID       string              `json:"task_id"`
	ProjectID    string              `json:"project_id,omitempty"`
	Status       researchtask.Status `json:"status"`
	ErrorKind    string              `json:"error_kind,omitempty"`    // set on failed
	ErrorMessage string              `json:"error_message,omitempty"` // set on failed
	Timestamp    string              `json:"timestamp"`               // RFC3339Nano
}

// PhaseStatusPayload is the payload for phase.status events.
// Single event type for all phase lifecycle transitions.
type PhaseStatusPayload struct {
	Type       string `json:"type"`     // always EventTypePhaseStatus
	EventID    string `json:"event_id"` // event UUID
	TaskID     string `json:"task_id"`
	Phase      string `json:"phase"`                 // planning, search, summarize, tree, insights, povs, report, extract, consolidate, export
	Status     string `json:"status"`                // started, completed, failed, timed_out, cancelled
	Total      int    `json:"total,omitempty"`       // fan-out width (completed/failed only)
	Succeeded  int    `json:"succeeded,omitempty"`   // successful operations
	Failed     int    `json:"failed,omitempty"`      // failed operations
	DurationMS int64  `json:"duration_ms,omitempty"` // phase wall time
	Timestamp  string `json:"timestamp"`             // RFC3339Nano
}

// ArtifactCreatedPayload is the payload for artifact.created events.
// Published when an export artifact is written and registered.
type ArtifactCreatedPayload struct {
	Type       string `json:"type"`     // always EventTypeArtifactCreated
	EventID    string `json:"event_id"` // event UUID
	TaskID     string `json:"task_id"`
	ArtifactID string `json:"artifact_id"`
	Kind       string `json:"kind"` // csv, xlsx, report_md
	SizeBytes  int64  `json:"size_bytes"`
	Timestamp  string `json:"timestamp"` // RFC3339Nano
}

// OperationProgressPayload is the payload for operation.progress transient
// events. High-frequency; lost on disconnect by design.
type OperationProgressPayload struct {
	Type          string           `json:"type"`     // always EventTypeOperationProgress
	EventID       string           `json:"event_id"` // event UUID
	TaskID        string           `json:"task_id"`
	OperationID   string           `json:"operation_id"`
	OperationType string           `json:"operation_type"`
	QueueName     string           `json:"queue_name"`
	Status        operation.Status `json:"status"`
	RetryCount    int              `json:"retry_count,omitempty"`
	WorkerID      string           `json:"worker_id,omitempty"`
	Timestamp     string           `json:"timestamp"` // RFC3339Nano
}

// WorkerStatusPayload is the payload for worker.status transient events.
type WorkerStatusPayload struct {
	Type      string `json:"type"`     // always EventTypeWorkerStatus
	EventID   string `json:"event_id"` // event UUID
	WorkerID  string `json:"worker_id"`
	Status    string `json:"status"` // started, stopped, stale
	Timestamp string `json:"timestamp"`
}

// QueueDepthPayload is the payload for queue.depth transient events.
type QueueDepthPayload struct {
	Type      string `json:"type"`     // always EventTypeQueueDepth
	EventID   string `json:"event_id"` // event UUID
	QueueName string `json:"queue_name"`
	Depth     int    `json:"depth"`
	Cap       int    `json:"cap"`
	InFlight  int    `json:"in_flight"`
	Timestamp string `json:"timestamp"`
}

// StatsSnapshotPayload is the payload for stats.snapshot transient events.
// Published periodically by the coordinator.
type StatsSnapshotPayload struct {
	Type           string         `json:"type"`     // always EventTypeStatsSnapshot
	EventID        string         `json:"event_id"` // event UUID
	ActiveWorkers  int            `json:"active_workers"`
	QueueDepths    map[string]int `json:"queue_depths"`
	InFlight       int            `json:"in_flight"`
	CompletedTotal int64          `json:"completed_total"`
	FailedTotal    int64          `json:"failed_total"`
	RetriedTotal   int64          `json:"retried_total"`
	Timestamp      string         `json:"timestamp"`
}
