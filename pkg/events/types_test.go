package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskChannel(t *testing.T) {
	tests := []struct {
		name   string
		taskID string
		want   string
	}{
		{
			name:   "formats task channel correctly",
			taskID: "abc-123",
			want:   "task:abc-123",
		},
		{
			name:   "handles UUID format",
			taskID: "550e8400-e29b-41d4-a716-446655440000",
			want:   "task:550e8400-e29b-41d4-a716-446655440000",
		},
		{
			name:   "handles empty string",
			taskID: "",
			want:   "task:",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TaskChannel(tt.taskID)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProjectChannel(t *testing.T) {
	assert.Equal(t, "project:proj-1", ProjectChannel("proj-1"))
}

func TestGlobalTasksChannel(t *testing.T) {
	assert.Equal(t, "tasks", GlobalTasksChannel)
}

func TestEventTypeConstants(t *testing.T) {
	// Verify event types are non-empty and distinct
	types := []string{
		EventTypeTaskStatus,
		EventTypePhaseStatus,
		EventTypeArtifactCreated,
		EventTypeOperationProgress,
		EventTypeWorkerStatus,
		EventTypeQueueDepth,
		EventTypeStatsSnapshot,
	}

	seen := make(map[string]bool)
	for _, typ := range types {
		assert.NotEmpty(t, typ, "event type should not be empty")
		assert.False(t, seen[typ], "duplicate event type: %s", typ)
		seen[typ] = true
	}
}

func TestPhaseStatusConstants(t *testing.T) {
	statuses := []string{
		PhaseStatusStarted,
		PhaseStatusCompleted,
		PhaseStatusFailed,
		PhaseStatusTimedOut,
		PhaseStatusCancelled,
	}

	seen := make(map[string]bool)
	for _, status := range statuses {
		assert.NotEmpty(t, status, "phase status should not be empty")
		assert.False(t, seen[status], "duplicate phase status: %s", status)
		seen[status] = true
	}
}

func TestValidChannel(t *testing.T) {
	tests := []struct {
		channel string
		want    bool
	}{
		{"tasks", true},
		{"task:abc-123", true},
		{"project:proj-1", true},
		{"task:", false},
		{"project:", false},
		{"", false},
		{"session:abc", false},
		{"tasks:extra", false},
		{"TASK:abc", false},
	}
	for _, tt := range tests {
		t.Run(tt.channel, func(t *testing.T) {
			assert.Equal(t, tt.want, validChannel(tt.channel))
		})
	}
}
