package services

import (
	"context"
	"fmt"
	"time"

	"github.com/trilogy-group/nexus-agents/ent"
	"github.com/trilogy-group/nexus-agents/ent/event"
)

// EventService queries and prunes the persisted monitoring event stream.
// Events are written by the EventPublisher (pkg/events) inside the same
// transaction as the NOTIFY; this service covers the read side (catchup)
// and retention cleanup.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService.
func NewEventService(client *ent.Client) *EventService {
	if client == nil {
		panic("NewEventService: client must not be nil")
	}
	return &EventService{client: client}
}

// GetEventsSince retrieves events for a channel with ID greater than sinceID,
// ordered by ID ascending. limit bounds the result size; 0 means unbounded.
func (s *EventService) GetEventsSince(ctx context.Context, channel string, sinceID, limit int) ([]*ent.Event, error) {
	q := s.client.Event.Query().
		Where(
			event.ChannelEQ(channel),
			event.IDGT(sinceID),
		).
		Order(ent.Asc(event.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	return events, nil
}

// CleanupTaskEvents removes all persisted events for a task.
// Called when a task is deleted (the FK cascade covers task-channel events;
// this also catches any rows written with a task_id but a non-task channel).
func (s *EventService) CleanupTaskEvents(ctx context.Context, taskID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.TaskIDEQ(taskID)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup task events: %w", err)
	}

	return count, nil
}

// CleanupExpiredEvents removes events older than the retention TTL.
// Run periodically by the retention job; catchup beyond the TTL falls back
// to a full REST reload.
func (s *EventService) CleanupExpiredEvents(ctx context.Context, ttl time.Duration) (int, error) {
	cutoff := time.Now().Add(-ttl)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup expired events: %w", err)
	}

	return count, nil
}
