// Package events provides real-time monitoring event delivery via WebSocket
// and PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// ════════════════════════════════════════════════════════════════
// Monitoring Event Contract
// ════════════════════════════════════════════════════════════════
//
// Every event payload carries three envelope fields:
//
//	event_id  — UUID assigned at publish time
//	type      — event type constant (see below)
//	timestamp — RFC3339Nano publish time
//
// Events fall into two delivery classes:
//
// PERSISTENT (stored in the events table, then NOTIFY):
//
//	task.status       — task lifecycle and phase-level status transitions
//	phase.status      — pipeline phase started/completed/failed/timed_out
//	artifact.created  — an export artifact became available
//
//	Persistent events gain a db_event_id field in the NOTIFY payload: the
//	BIGSERIAL row id, which doubles as the catchup cursor. A reconnecting
//	client sends {"action":"catchup","last_event_id":N} and receives every
//	stored event it missed, in order. Delivery is therefore at-least-once;
//	clients must dedupe on event_id.
//
// TRANSIENT (NOTIFY only, no persistence, lost on disconnect):
//
//	operation.progress — per-operation dispatch/retry/completion ticks
//	worker.status      — worker started/stopped/stale
//	queue.depth        — queue depth gauge updates
//	stats.snapshot     — periodic coordinator statistics
//
// Oversized payloads are not dropped: the NOTIFY copy is replaced by a
// truncation envelope ({type, event_id, task_id, db_event_id, truncated:true})
// and the client fetches the full event over REST. The stored row always
// holds the complete payload.
//
// ════════════════════════════════════════════════════════════════
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	// Task lifecycle — single event type for all task status transitions,
	// including intermediate pipeline statuses (searching, summarizing, …).
	EventTypeTaskStatus = "task.status"

	// Pipeline phase lifecycle.
	EventTypePhaseStatus = "phase.status"

	// Export artifact availability.
	EventTypeArtifactCreated = "artifact.created"
)

// Phase lifecycle status values (used in PhaseStatusPayload.Status).
const (
	PhaseStatusStarted   = "started"
	PhaseStatusCompleted = "completed"
	PhaseStatusFailed    = "failed"
	PhaseStatusTimedOut  = "timed_out"
	PhaseStatusCancelled = "cancelled"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	// Per-operation progress ticks — high-frequency, ephemeral.
	EventTypeOperationProgress = "operation.progress"

	// Worker pool lifecycle.
	EventTypeWorkerStatus = "worker.status"

	// Queue depth gauge.
	EventTypeQueueDepth = "queue.depth"

	// Periodic coordinator statistics.
	EventTypeStatsSnapshot = "stats.snapshot"
)

// Worker lifecycle status values (used in WorkerStatusPayload.Status).
const (
	WorkerStatusStarted   = "started"
	WorkerStatusStopped   = "stopped"
	WorkerStatusStale     = "stale"
	WorkerStatusHeartbeat = "heartbeat"
)

// GlobalTasksChannel is the channel for task-level status events.
// The task list page subscribes to this for real-time updates.
const GlobalTasksChannel = "tasks"

// TaskChannel returns the channel name for a specific task's events.
// Format: "task:{task_id}"
func TaskChannel(taskID string) string {
	return "task:" + taskID
}

// ProjectChannel returns the channel name for project-scoped events.
// Format: "project:{project_id}"
func ProjectChannel(projectID string) string {
	return "project:" + projectID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string   `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string   `json:"channel,omitempty"`       // Channel name (e.g., "task:abc-123")
	LastEventID *int     `json:"last_event_id,omitempty"` // For catchup
	EventTypes  []string `json:"event_types,omitempty"`   // Optional subscribe filter; empty means all
}
