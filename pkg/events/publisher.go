package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/trilogy-group/nexus-agents/pkg/config"
)

// pgNotifyLimit is PostgreSQL's hard NOTIFY payload ceiling (8000 bytes),
// minus headroom for the db_event_id injection.
const pgNotifyLimit = 7900

// EventPublisher publishes monitoring events for WebSocket delivery.
// Persistent events are stored in the events table then broadcast via NOTIFY.
// Transient events (progress ticks, gauges) are broadcast via NOTIFY only.
//
// Each public method accepts a specific typed payload struct — see payloads.go.
// Internally, payloads are marshaled to JSON and routed to the appropriate
// channel via persistAndNotify or notifyOnly. Persistent publishes are
// retried with exponential backoff so a transient DB hiccup doesn't lose a
// lifecycle event (delivery is at-least-once; clients dedupe on event_id).
type EventPublisher struct {
	db            *sql.DB
	maxEventBytes int
	retries       int
	backoffBase   time.Duration
}

// NewEventPublisher creates a new EventPublisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewEventPublisher(db *sql.DB, cfg *config.BusConfig) *EventPublisher {
	maxBytes := cfg.MaxEventBytes
	if maxBytes > pgNotifyLimit {
		maxBytes = pgNotifyLimit
	}
	return &EventPublisher{
		db:            db,
		maxEventBytes: maxBytes,
		retries:       cfg.PublishRetries,
		backoffBase:   cfg.PublishBackoffBase,
	}
}

// stamp returns the envelope fields every payload carries: a fresh event
// UUID and an RFC3339Nano timestamp. Every Publish method calls this before
// marshaling.
func stamp() (id, ts string) {
	return uuid.New().String(), time.Now().UTC().Format(time.RFC3339Nano)
}

// --- Typed public methods ---

// PublishTaskStatus persists a task status event to the task channel and
// broadcasts transient copies to the global tasks channel and, when the task
// belongs to a project, the project channel. Publishes are best-effort
// individually: the first error is returned after all three are attempted.
func (p *EventPublisher) PublishTaskStatus(ctx context.Context, payload TaskStatusPayload) error {
	payload.Type = EventTypeTaskStatus
	payload.EventID, payload.Timestamp = stamp()

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal TaskStatusPayload: %w", err)
	}

	var firstErr error
	if err := p.persistAndNotify(ctx, payload.TaskID, EventTypeTaskStatus, TaskChannel(payload.TaskID), payloadJSON); err != nil {
		slog.Warn("Failed to publish task status to task channel",
			"task_id", payload.TaskID, "status", payload.Status, "error", err)
		firstErr = err
	}

	// Global tasks channel (transient — for the task list page)
	if err := p.notifyOnly(ctx, GlobalTasksChannel, payloadJSON); err != nil {
		slog.Warn("Failed to publish task status to global channel",
			"task_id", payload.TaskID, "status", payload.Status, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}

	// Project channel (transient — for project dashboards)
	if payload.ProjectID != "" {
		if err := p.notifyOnly(ctx, ProjectChannel(payload.ProjectID), payloadJSON); err != nil {
			slog.Warn("Failed to publish task status to project channel",
				"task_id", payload.TaskID, "project_id", payload.ProjectID, "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

// PublishPhaseStatus persists and broadcasts a phase.status event.
// Used for pipeline phase lifecycle transitions (started, completed, failed, etc.).
func (p *EventPublisher) PublishPhaseStatus(ctx context.Context, payload PhaseStatusPayload) error {
	payload.Type = EventTypePhaseStatus
	payload.EventID, payload.Timestamp = stamp()

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal PhaseStatusPayload: %w", err)
	}
	return p.persistAndNotify(ctx, payload.TaskID, EventTypePhaseStatus, TaskChannel(payload.TaskID), payloadJSON)
}

// PublishArtifactCreated persists and broadcasts an artifact.created event.
func (p *EventPublisher) PublishArtifactCreated(ctx context.Context, payload ArtifactCreatedPayload) error {
	payload.Type = EventTypeArtifactCreated
	payload.EventID, payload.Timestamp = stamp()

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal ArtifactCreatedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, payload.TaskID, EventTypeArtifactCreated, TaskChannel(payload.TaskID), payloadJSON)
}

// PublishOperationProgress broadcasts an operation.progress transient event
// (no DB persistence). High-frequency; lost on disconnect by design.
func (p *EventPublisher) PublishOperationProgress(ctx context.Context, payload OperationProgressPayload) error {
	payload.Type = EventTypeOperationProgress
	payload.EventID, payload.Timestamp = stamp()

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal OperationProgressPayload: %w", err)
	}
	return p.notifyOnly(ctx, TaskChannel(payload.TaskID), payloadJSON)
}

// PublishWorkerStatus broadcasts a worker.status transient event to the
// global tasks channel.
func (p *EventPublisher) PublishWorkerStatus(ctx context.Context, payload WorkerStatusPayload) error {
	payload.Type = EventTypeWorkerStatus
	payload.EventID, payload.Timestamp = stamp()

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal WorkerStatusPayload: %w", err)
	}
	return p.notifyOnly(ctx, GlobalTasksChannel, payloadJSON)
}

// PublishQueueDepth broadcasts a queue.depth transient event to the global
// tasks channel.
func (p *EventPublisher) PublishQueueDepth(ctx context.Context, payload QueueDepthPayload) error {
	payload.Type = EventTypeQueueDepth
	payload.EventID, payload.Timestamp = stamp()

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal QueueDepthPayload: %w", err)
	}
	return p.notifyOnly(ctx, GlobalTasksChannel, payloadJSON)
}

// PublishStatsSnapshot broadcasts a stats.snapshot transient event to the
// global tasks channel.
func (p *EventPublisher) PublishStatsSnapshot(ctx context.Context, payload StatsSnapshotPayload) error {
	payload.Type = EventTypeStatsSnapshot
	payload.EventID, payload.Timestamp = stamp()

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal StatsSnapshotPayload: %w", err)
	}
	return p.notifyOnly(ctx, GlobalTasksChannel, payloadJSON)
}

// --- Internal core methods ---

// persistAndNotify persists a pre-marshaled event to the database and
// broadcasts via NOTIFY in a single transaction (pg_notify is transactional —
// held until COMMIT). The whole transaction is retried with exponential
// backoff on failure.
func (p *EventPublisher) persistAndNotify(ctx context.Context, taskID, eventType, channel string, payloadJSON []byte) error {
	op := func() error {
		return p.persistAndNotifyOnce(ctx, taskID, eventType, channel, payloadJSON)
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = p.backoffBase
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, uint64(p.retries)), ctx)

	return backoff.Retry(op, policy)
}

func (p *EventPublisher) persistAndNotifyOnce(ctx context.Context, taskID, eventType, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// 1. Persist to events table (within transaction)
	var taskIDParam any
	if taskID != "" {
		taskIDParam = taskID
	}
	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (task_id, channel, event_type, payload, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		taskIDParam, channel, eventType, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// Build NOTIFY payload with db_event_id for catchup tracking.
	notifyPayload, err := p.injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return backoff.Permanent(err)
	}

	// 2. pg_notify within same transaction — held until COMMIT
	_, err = tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	// 3. Commit — INSERT is persisted and NOTIFY fires atomically
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}

	return nil
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without persisting
// to DB. Transient events are not retried: a stale gauge is worthless by the
// time a retry would land.
func (p *EventPublisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := p.truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// --- Internal helpers ---

// injectDBEventIDAndTruncate adds db_event_id to the JSON payload for NOTIFY
// delivery and applies truncation if the result exceeds the size cap.
func (p *EventPublisher) injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enrichedBytes, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}

	return p.truncateIfNeeded(string(enrichedBytes))
}

// truncateIfNeeded returns the payload string as-is if it fits within the
// configured cap (itself bounded by PostgreSQL's 8000-byte NOTIFY limit),
// otherwise returns a minimal truncation envelope with only routing fields.
func (p *EventPublisher) truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= p.maxEventBytes {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload creates a minimal truncation envelope from the full
// JSON payload bytes, extracting only the routing fields the client needs
// to fetch the complete event from the database.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type      string `json:"type"`
		EventID   string `json:"event_id"`
		TaskID    string `json:"task_id"`
		DBEventID *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":      routing.Type,
		"event_id":  routing.EventID,
		"task_id":   routing.TaskID,
		"truncated": true,
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
