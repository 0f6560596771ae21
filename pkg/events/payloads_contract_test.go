package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Persistent payloads must always marshal the routing fields the truncation
// envelope and the catchup path depend on: type, event_id and task_id. If a
// payload drops one of these keys, oversized events lose their routing and
// clients can no longer fetch the full event from the database.
func TestPersistentPayloads_CarryRoutingFields(t *testing.T) {
	tests := []struct {
		name    string
		payload any
	}{
		{
			name: "task.status",
			payload: TaskStatusPayload{
				Type:    EventTypeTaskStatus,
				EventID: "evt-1",
				TaskID:  "task-1",
				Status:  "running",
			},
		},
		{
			name: "phase.status",
			payload: PhaseStatusPayload{
				Type:    EventTypePhaseStatus,
				EventID: "evt-2",
				TaskID:  "task-2",
				Phase:   "search",
				Status:  PhaseStatusStarted,
			},
		},
		{
			name: "artifact.created",
			payload: ArtifactCreatedPayload{
				Type:       EventTypeArtifactCreated,
				EventID:    "evt-3",
				TaskID:     "task-3",
				ArtifactID: "art-1",
				Kind:       "csv",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			var m map[string]any
			require.NoError(t, json.Unmarshal(data, &m))

			assert.Contains(t, m, "type")
			assert.Contains(t, m, "event_id")
			assert.Contains(t, m, "task_id")
			assert.NotEmpty(t, m["type"])
			assert.NotEmpty(t, m["event_id"])
			assert.NotEmpty(t, m["task_id"])
		})
	}
}

// The truncation envelope built from each persistent payload must itself be
// valid JSON carrying the same routing fields.
func TestPersistentPayloads_SurviveTruncation(t *testing.T) {
	payload, err := json.Marshal(PhaseStatusPayload{
		Type:    EventTypePhaseStatus,
		EventID: "evt-t",
		TaskID:  "task-t",
		Phase:   "report",
		Status:  PhaseStatusCompleted,
	})
	require.NoError(t, err)

	result, err := buildTruncatedPayload(payload)
	require.NoError(t, err)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal([]byte(result), &envelope))
	assert.Equal(t, EventTypePhaseStatus, envelope["type"])
	assert.Equal(t, "evt-t", envelope["event_id"])
	assert.Equal(t, "task-t", envelope["task_id"])
	assert.Equal(t, true, envelope["truncated"])
}
