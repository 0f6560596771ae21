package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trilogy-group/nexus-agents/ent/operation"
	"github.com/trilogy-group/nexus-agents/ent/researchtask"
)

func TestTaskStatusPayload_OmitsOptionalFields(t *testing.T) {
	// Error fields only appear on failed transitions; project_id only when
	// the task belongs to a project. A healthy transition must not carry them.
	payload := TaskStatusPayload{
		Type:      EventTypeTaskStatus,
		EventID:   "evt-1",
		TaskID:    "task-1",
		Status:    researchtask.StatusSearching,
		Timestamp: "2026-08-20T12:00:00Z",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "project_id")
	assert.NotContains(t, string(data), "error_kind")
	assert.NotContains(t, string(data), "error_message")
}

func TestTaskStatusPayload_FailedTransition(t *testing.T) {
	payload := TaskStatusPayload{
		Type:         EventTypeTaskStatus,
		EventID:      "evt-2",
		TaskID:       "task-2",
		ProjectID:    "proj-1",
		Status:       researchtask.StatusFailed,
		ErrorKind:    "no_sources_found",
		ErrorMessage: "search returned zero usable sources",
		Timestamp:    "2026-08-20T12:00:00Z",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded TaskStatusPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, researchtask.StatusFailed, decoded.Status)
	assert.Equal(t, "proj-1", decoded.ProjectID)
	assert.Equal(t, "no_sources_found", decoded.ErrorKind)
	assert.Equal(t, "search returned zero usable sources", decoded.ErrorMessage)
}

func TestPhaseStatusPayload_StartedOmitsCounters(t *testing.T) {
	// Fan-out counters are only meaningful on completed/failed; a started
	// event omits them entirely.
	payload := PhaseStatusPayload{
		Type:      EventTypePhaseStatus,
		EventID:   "evt-3",
		TaskID:    "task-3",
		Phase:     "search",
		Status:    PhaseStatusStarted,
		Timestamp: "2026-08-20T12:00:00Z",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "total")
	assert.NotContains(t, string(data), "succeeded")
	assert.NotContains(t, string(data), "duration_ms")
}

func TestPhaseStatusPayload_CompletedCarriesCounters(t *testing.T) {
	payload := PhaseStatusPayload{
		Type:       EventTypePhaseStatus,
		EventID:    "evt-4",
		TaskID:     "task-4",
		Phase:      "summarize",
		Status:     PhaseStatusCompleted,
		Total:      8,
		Succeeded:  6,
		Failed:     2,
		DurationMS: 42000,
		Timestamp:  "2026-08-20T12:00:00Z",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded PhaseStatusPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, 8, decoded.Total)
	assert.Equal(t, 6, decoded.Succeeded)
	assert.Equal(t, 2, decoded.Failed)
	assert.Equal(t, int64(42000), decoded.DurationMS)
}

func TestOperationProgressPayload_JSON(t *testing.T) {
	payload := OperationProgressPayload{
		Type:          EventTypeOperationProgress,
		EventID:       "evt-5",
		TaskID:        "task-5",
		OperationID:   "op-1",
		OperationType: "search_subtopic",
		QueueName:     "search",
		Status:        operation.StatusInFlight,
		RetryCount:    1,
		WorkerID:      "worker-3",
		Timestamp:     "2026-08-20T12:00:00Z",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded OperationProgressPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, operation.StatusInFlight, decoded.Status)
	assert.Equal(t, "search", decoded.QueueName)
	assert.Equal(t, 1, decoded.RetryCount)
	assert.Equal(t, "worker-3", decoded.WorkerID)
}

func TestStatsSnapshotPayload_JSON(t *testing.T) {
	payload := StatsSnapshotPayload{
		Type:          EventTypeStatsSnapshot,
		EventID:       "evt-6",
		ActiveWorkers: 8,
		QueueDepths: map[string]int{
			"search":    12,
			"llm":       3,
			"synthesis": 0,
		},
		InFlight:       5,
		CompletedTotal: 120,
		FailedTotal:    4,
		RetriedTotal:   9,
		Timestamp:      "2026-08-20T12:00:00Z",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded StatsSnapshotPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, 8, decoded.ActiveWorkers)
	assert.Equal(t, 12, decoded.QueueDepths["search"])
	assert.Equal(t, int64(120), decoded.CompletedTotal)
}
