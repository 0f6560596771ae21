package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trilogy-group/nexus-agents/pkg/config"
)

func newTestPublisher() *EventPublisher {
	return NewEventPublisher(nil, config.DefaultBusConfig())
}

func TestNewEventPublisher(t *testing.T) {
	t.Run("caps max event bytes at the pg_notify limit", func(t *testing.T) {
		// Default config asks for 10KiB but NOTIFY payloads top out at 8000
		// bytes; the publisher must clamp.
		p := NewEventPublisher(nil, config.DefaultBusConfig())
		assert.Equal(t, pgNotifyLimit, p.maxEventBytes)
	})

	t.Run("keeps smaller configured cap", func(t *testing.T) {
		cfg := config.DefaultBusConfig()
		cfg.MaxEventBytes = 1024
		p := NewEventPublisher(nil, cfg)
		assert.Equal(t, 1024, p.maxEventBytes)
	})
}

func TestTruncateIfNeeded(t *testing.T) {
	p := newTestPublisher()

	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(TaskStatusPayload{
			Type:    EventTypeTaskStatus,
			EventID: "evt-123",
			TaskID:  "task-abc",
			Status:  "searching",
		})

		result, err := p.truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeTaskStatus)
		assert.Contains(t, result, "task-abc")
		assert.NotContains(t, result, "truncated")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		payload, _ := json.Marshal(TaskStatusPayload{
			Type:         EventTypeTaskStatus,
			EventID:      "evt-123",
			TaskID:       "task-abc",
			Status:       "failed",
			ErrorKind:    "provider",
			ErrorMessage: strings.Repeat("a", 8000),
		})

		result, err := p.truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Less(t, len(result), 8000)
	})

	t.Run("truncation envelope preserves routing fields only", func(t *testing.T) {
		payload, _ := json.Marshal(TaskStatusPayload{
			Type:         EventTypeTaskStatus,
			EventID:      "evt-456",
			TaskID:       "task-789",
			Status:       "failed",
			ErrorMessage: strings.Repeat("x", 8000),
		})

		result, err := p.truncateIfNeeded(string(payload))
		require.NoError(t, err)

		assert.Contains(t, result, EventTypeTaskStatus)
		assert.Contains(t, result, "evt-456")
		assert.Contains(t, result, "task-789")
		assert.Contains(t, result, `"truncated":true`)
		assert.NotContains(t, result, "xxxx")
	})

	t.Run("respects a smaller configured cap", func(t *testing.T) {
		cfg := config.DefaultBusConfig()
		cfg.MaxEventBytes = 256
		small := NewEventPublisher(nil, cfg)

		payload, _ := json.Marshal(TaskStatusPayload{
			Type:         EventTypeTaskStatus,
			EventID:      "evt-1",
			TaskID:       "task-1",
			Status:       "failed",
			ErrorMessage: strings.Repeat("y", 500),
		})

		result, err := small.truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
	})

	t.Run("boundary: payload just under limit is not truncated", func(t *testing.T) {
		// Build a payload whose JSON is just under the cap. Marshal an empty
		// struct first to measure the overhead of the struct's fixed fields,
		// with a 20-byte safety margin so new fields with non-zero defaults
		// don't flip the test unexpectedly.
		base, _ := json.Marshal(TaskStatusPayload{Type: "t"})
		msgSize := p.maxEventBytes - len(base) - 20
		payload, _ := json.Marshal(TaskStatusPayload{
			Type:         "t",
			ErrorMessage: strings.Repeat("b", msgSize),
		})
		require.LessOrEqual(t, len(payload), p.maxEventBytes, "test payload should be under limit")

		result, err := p.truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("empty JSON object", func(t *testing.T) {
		result, err := p.truncateIfNeeded("{}")
		require.NoError(t, err)
		assert.Equal(t, "{}", result)
	})
}

func TestInjectDBEventIDAndTruncate(t *testing.T) {
	p := newTestPublisher()

	t.Run("injects db_event_id into normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(TaskStatusPayload{
			Type:    EventTypeTaskStatus,
			EventID: "evt-1",
			TaskID:  "task-1",
			Status:  "running",
		})

		result, err := p.injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "evt-1")
	})

	t.Run("truncated payload preserves db_event_id", func(t *testing.T) {
		payload, _ := json.Marshal(TaskStatusPayload{
			Type:         EventTypeTaskStatus,
			EventID:      "evt-456",
			TaskID:       "task-789",
			Status:       "failed",
			ErrorMessage: strings.Repeat("x", 8000),
		})

		result, err := p.injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "evt-456")
	})

	t.Run("rejects non-JSON payload", func(t *testing.T) {
		_, err := p.injectDBEventIDAndTruncate([]byte("not json"), 1)
		assert.Error(t, err)
	})
}

func TestBuildTruncatedPayload(t *testing.T) {
	t.Run("minimal envelope without db_event_id", func(t *testing.T) {
		payload, _ := json.Marshal(map[string]any{
			"type":     EventTypeArtifactCreated,
			"event_id": "evt-9",
			"task_id":  "task-9",
			"kind":     "xlsx",
		})

		result, err := buildTruncatedPayload(payload)
		require.NoError(t, err)

		var envelope map[string]any
		require.NoError(t, json.Unmarshal([]byte(result), &envelope))
		assert.Equal(t, EventTypeArtifactCreated, envelope["type"])
		assert.Equal(t, "evt-9", envelope["event_id"])
		assert.Equal(t, "task-9", envelope["task_id"])
		assert.Equal(t, true, envelope["truncated"])
		assert.NotContains(t, envelope, "db_event_id")
		assert.NotContains(t, envelope, "kind")
	})

	t.Run("carries db_event_id through when present", func(t *testing.T) {
		payload, _ := json.Marshal(map[string]any{
			"type":        EventTypeTaskStatus,
			"event_id":    "evt-10",
			"task_id":     "task-10",
			"db_event_id": 77,
		})

		result, err := buildTruncatedPayload(payload)
		require.NoError(t, err)
		assert.Contains(t, result, `"db_event_id":77`)
	})
}

func TestStamp(t *testing.T) {
	id1, ts1 := stamp()
	id2, ts2 := stamp()

	assert.NotEmpty(t, id1)
	assert.NotEmpty(t, ts1)
	assert.NotEqual(t, id1, id2, "event IDs must be unique")
	assert.NotEmpty(t, ts2)
}
