package e2e

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trilogy-group/nexus-agents/ent/researchtask"
	"github.com/trilogy-group/nexus-agents/pkg/gateway"
)

// TestAnalyticalResearchFlow drives an analytical task from HTTP submission
// through runner claim, all seven phases, and report retrieval.
func TestAnalyticalResearchFlow(t *testing.T) {
	gw := newFakeGateway("linkup")
	scriptAnalytical(gw)
	h := newHarness(t, gw)

	body, code := h.postJSON("/tasks",
		`{"title":"remote work","research_query":"impact of remote work on engineering teams","research_type":"analytical_report"}`)
	require.Equal(t, 201, code, string(body))
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body, &created))

	h.waitForStatus(created.ID, "completed", 60*time.Second)

	report, code := h.get("/tasks/" + created.ID + "/report")
	require.Equal(t, 200, code)
	assert.Contains(t, string(report), "## Key Findings")

	dokBody, code := h.get("/api/dok/" + created.ID + "/complete")
	require.Equal(t, 200, code)
	var taxonomy struct {
		Insights []struct {
			Insight string `json:"insight"`
		} `json:"insights"`
	}
	require.NoError(t, json.Unmarshal(dokBody, &taxonomy))
	require.NotEmpty(t, taxonomy.Insights)
	assert.Equal(t, "Gains persist beyond the novelty period.", taxonomy.Insights[0].Insight)

	opsBody, code := h.get("/tasks/" + created.ID + "/operations")
	require.Equal(t, 200, code)
	var ops struct {
		Operations []struct {
			Status string `json:"status"`
		} `json:"operations"`
	}
	require.NoError(t, json.Unmarshal(opsBody, &ops))
	assert.NotEmpty(t, ops.Operations)
}

// TestAggregationResearchFlow drives a data-aggregation task through the
// pipeline and exports the consolidated entities as CSV.
func TestAggregationResearchFlow(t *testing.T) {
	gw := newFakeGateway("linkup")
	gw.searches["private_school Mission District"] = []gateway.SearchResult{
		{URL: "https://example.com/hillcrest", Title: "Hillcrest Academy", Description: "A school."},
	}
	gw.fetches["https://example.com/hillcrest"] = "Hillcrest Academy, 42 Valencia St. Tuition $18,000. NCES 12345."
	gw.respond["extract"] = static(okJSON(map[string]any{
		"entities": []map[string]any{{
			"name":              "Hillcrest Academy",
			"unique_identifier": "nces-12345",
			"attributes":        map[string]string{"address": "42 Valencia St", "tuition": "$18,000"},
			"confidence":        0.9,
			"source_url":        "https://example.com/hillcrest",
		}},
	}))

	h := newHarness(t, gw)

	body, code := h.postJSON("/tasks",
		`{"title":"schools","research_query":"catalog private schools in the Mission","research_type":"data_aggregation",`+
			`"data_aggregation_config":{"entities":["private_school"],"attributes":["address","tuition"],"search_space":["Mission District"]}}`)
	require.Equal(t, 201, code, string(body))
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body, &created))

	h.waitForStatus(created.ID, "completed", 60*time.Second)

	csv, code := h.get("/tasks/" + created.ID + "/export/csv")
	require.Equal(t, 200, code)
	assert.Contains(t, string(csv), "Hillcrest Academy")
	assert.Contains(t, string(csv), "nces-12345")

	reportBody, code := h.get("/tasks/" + created.ID + "/report")
	require.Equal(t, 200, code)
	var report struct {
		Entities []struct {
			Name string `json:"name"`
		} `json:"entities"`
	}
	require.NoError(t, json.Unmarshal(reportBody, &report))
	require.Len(t, report.Entities, 1)
	assert.Equal(t, "Hillcrest Academy", report.Entities[0].Name)
}

// TestOrphanRecovery marks a running task's pod as dead and verifies the
// recovery sweep fails it with a timeout kind.
func TestOrphanRecovery(t *testing.T) {
	gw := newFakeGateway("linkup")
	h := newHarness(t, gw)
	ctx := context.Background()

	// Seed a task that looks claimed by a pod that stopped heartbeating.
	// Created directly so the live runner never picks it up.
	task, err := h.db.Client.ResearchTask.Create().
		SetID("11111111-2222-4333-8444-555555555555").
		SetTitle("orphaned").
		SetResearchQuery("query").
		SetResearchType(researchtask.ResearchTypeAnalyticalReport).
		SetStatus(researchtask.StatusSearching).
		SetPodID("pod-dead").
		SetLastHeartbeatAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	recovered, err := h.runner.RecoverOrphans(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, recovered)

	failed, err := h.db.Client.ResearchTask.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, researchtask.StatusFailed, failed.Status)
	require.NotNil(t, failed.ErrorKind)
	assert.Equal(t, "Timeout", *failed.ErrorKind)
}
