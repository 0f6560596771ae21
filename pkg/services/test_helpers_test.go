package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trilogy-group/nexus-agents/ent"
	"github.com/trilogy-group/nexus-agents/ent/researchtask"
	"github.com/trilogy-group/nexus-agents/pkg/models"
)

// createTestTask inserts a pending analytical task and returns it.
func createTestTask(t *testing.T, client *ent.Client) *ent.ResearchTask {
	t.Helper()
	task, err := NewTaskService(client).CreateTask(context.Background(), models.CreateTaskRequest{
		Title:         "test task",
		ResearchQuery: "impact of remote work on mid-size engineering teams",
		ResearchType:  string(researchtask.ResearchTypeAnalyticalReport),
	})
	require.NoError(t, err)
	return task
}

// createTestAggregationTask inserts a pending data_aggregation task.
func createTestAggregationTask(t *testing.T, client *ent.Client, projectID string) *ent.ResearchTask {
	t.Helper()
	task, err := NewTaskService(client).CreateTask(context.Background(), models.CreateTaskRequest{
		Title:         "aggregation task",
		ResearchQuery: "list of EU battery manufacturers",
		ResearchType:  string(researchtask.ResearchTypeDataAggregation),
		AggregationConfig: map[string]any{
			"entities":     []string{"company"},
			"attributes":   []string{"hq", "founded"},
			"search_space": "EU",
		},
		ProjectID: projectID,
	})
	require.NoError(t, err)
	return task
}

// createTestSource inserts one source observation and returns it.
func createTestSource(t *testing.T, client *ent.Client, url string) *ent.Source {
	t.Helper()
	src, err := NewSourceService(client).RecordObservation(context.Background(), ObservedSource{
		URL:      url,
		Title:    "test source",
		Provider: "linkup",
		Content:  "content of " + url,
	})
	require.NoError(t, err)
	return src
}
