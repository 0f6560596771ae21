package dok

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trilogy-group/nexus-agents/ent"
	"github.com/trilogy-group/nexus-agents/ent/researchtask"
	"github.com/trilogy-group/nexus-agents/pkg/config"
	"github.com/trilogy-group/nexus-agents/pkg/coordinator"
	"github.com/trilogy-group/nexus-agents/pkg/gateway"
	"github.com/trilogy-group/nexus-agents/pkg/llm"
	"github.com/trilogy-group/nexus-agents/pkg/models"
	"github.com/trilogy-group/nexus-agents/pkg/services"
	testdb "github.com/trilogy-group/nexus-agents/test/database"
)

// scriptedCompleter returns canned results in submission order and records
// every call it receives.
type scriptedCompleter struct {
	responses []gateway.Result[*llm.Completion]
	calls     []*llm.GenerateInput
}

func (s *scriptedCompleter) Complete(_ context.Context, input *llm.GenerateInput) gateway.Result[*llm.Completion] {
	s.calls = append(s.calls, input)
	if len(s.responses) == 0 {
		return gateway.Result[*llm.Completion]{
			Status: gateway.StatusPermanent,
			Err:    errors.New("no scripted response"),
		}
	}
	res := s.responses[0]
	s.responses = s.responses[1:]
	return res
}

func okText(text string) gateway.Result[*llm.Completion] {
	return gateway.Result[*llm.Completion]{
		Status:   gateway.StatusOK,
		Value:    &llm.Completion{Text: text},
		Attempts: 1,
	}
}

func newTestEngine(t *testing.T, completer Completer) (*Engine, *ent.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	engine := NewEngine(completer, services.NewDOKService(client.Client),
		config.DefaultPipelineConfig(), nil)
	return engine, client.Client
}

func seedTask(t *testing.T, client *ent.Client) *ent.ResearchTask {
	t.Helper()
	task, err := services.NewTaskService(client).CreateTask(context.Background(), models.CreateTaskRequest{
		Title:         "remote work",
		ResearchQuery: "impact of remote work on engineering teams",
		ResearchType:  string(researchtask.ResearchTypeAnalyticalReport),
	})
	require.NoError(t, err)
	return task
}

func seedSource(t *testing.T, client *ent.Client, url string) *ent.Source {
	t.Helper()
	src, err := services.NewSourceService(client).RecordObservation(context.Background(), services.ObservedSource{
		URL:      url,
		Title:    "seeded source",
		Provider: "linkup",
		Content:  "content of " + url,
	})
	require.NoError(t, err)
	return src
}

func TestEngine_SummarizeSource(t *testing.T) {
	ctx := context.Background()

	t.Run("stores summary and truncates long facts", func(t *testing.T) {
		longFact := strings.Repeat("x", 600)
		completer := &scriptedCompleter{responses: []gateway.Result[*llm.Completion]{
			okText(`{"summary": "The paper reports a productivity gain.",
				"facts": ["12% gain reported", "` + longFact + `", ""]}`),
		}}
		engine, client := newTestEngine(t, completer)
		task := seedTask(t, client)
		src := seedSource(t, client, "https://example.com/paper")

		summary, evidence, err := engine.SummarizeSource(ctx, task.ID, src, "full text here", "productivity")
		require.NoError(t, err)
		assert.Equal(t, 1, summary.DokLevel)
		require.Len(t, summary.Dok1Facts, 2)
		assert.Len(t, summary.Dok1Facts[1], 512)

		require.Len(t, evidence, 1)
		assert.Equal(t, "summarize_source", evidence[0].Data["stage"])

		// The prompt carries the source and the subtopic.
		require.Len(t, completer.calls, 1)
		prompt := completer.calls[0].Messages[1].Content
		assert.Contains(t, prompt, src.URL)
		assert.Contains(t, prompt, "productivity")
		assert.True(t, completer.calls[0].JSONOutput)
	})

	t.Run("transient gateway outcome is retryable", func(t *testing.T) {
		completer := &scriptedCompleter{responses: []gateway.Result[*llm.Completion]{
			{Status: gateway.StatusTransient, Attempts: 3, Err: errors.New("rate limited")},
		}}
		engine, client := newTestEngine(t, completer)
		task := seedTask(t, client)
		src := seedSource(t, client, "https://example.com/limited")

		_, _, err := engine.SummarizeSource(ctx, task.ID, src, "text", "s")
		require.Error(t, err)
		assert.True(t, coordinator.IsTransient(err))
	})

	t.Run("unparseable output fails with evidence preserved", func(t *testing.T) {
		completer := &scriptedCompleter{responses: []gateway.Result[*llm.Completion]{
			okText("I could not produce JSON."),
		}}
		engine, client := newTestEngine(t, completer)
		task := seedTask(t, client)
		src := seedSource(t, client, "https://example.com/garbled")

		_, evidence, err := engine.SummarizeSource(ctx, task.ID, src, "text", "s")
		require.Error(t, err)
		assert.False(t, coordinator.IsTransient(err))
		require.Len(t, evidence, 1)
	})
}

func TestEngine_BuildKnowledgeTree(t *testing.T) {
	ctx := context.Background()
	completer := &scriptedCompleter{}
	engine, client := newTestEngine(t, completer)
	task := seedTask(t, client)
	srcA := seedSource(t, client, "https://example.com/a")
	srcB := seedSource(t, client, "https://example.com/b")

	dokService := services.NewDOKService(client)
	for _, src := range []*ent.Source{srcA, srcB} {
		_, err := dokService.RecordSummary(ctx, services.RecordSummaryInput{
			TaskID: task.ID, SourceID: src.ID, Subtopic: "general",
			Summary: "summary of " + src.URL,
		})
		require.NoError(t, err)
	}
	summaries, err := dokService.ListSummaries(ctx, task.ID)
	require.NoError(t, err)

	completer.responses = []gateway.Result[*llm.Completion]{okText(`{
		"categories": [{
			"category": "economics",
			"summary": "Economic effects.",
			"children": [{
				"subcategory": "labor",
				"summary": "Labor market effects.",
				"sources": [
					{"source_id": "` + srcA.ID + `", "relevance": 0.9},
					{"source_id": "` + srcB.ID + `", "relevance": 1.7},
					{"source_id": "ghost-source", "relevance": 0.5}
				]
			}]
		}]
	}`)}

	output, evidence, err := engine.BuildKnowledgeTree(ctx, task.ID, summaries)
	require.NoError(t, err)
	assert.Equal(t, 2, output["nodes"])
	// The ghost reference is dropped, not fatal.
	assert.Equal(t, 2, output["source_links"])
	require.Len(t, evidence, 1)

	tree, err := dokService.GetKnowledgeTree(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, tree.Roots, 1)
	require.Len(t, tree.Roots[0].Children, 1)
	leaf := tree.Roots[0].Children[0].Node
	assert.Equal(t, "labor", leaf.Subcategory)

	ids, err := dokService.NodeSourceIDs(ctx, leaf.ID)
	require.NoError(t, err)
	assert.Len(t, ids, 2)
}

func TestEngine_BuildKnowledgeTree_NoSummaries(t *testing.T) {
	completer := &scriptedCompleter{}
	engine, client := newTestEngine(t, completer)
	task := seedTask(t, client)

	output, evidence, err := engine.BuildKnowledgeTree(context.Background(), task.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, output["nodes"])
	assert.Empty(t, evidence)
	assert.Empty(t, completer.calls)
}

func TestEngine_GenerateInsights(t *testing.T) {
	ctx := context.Background()
	completer := &scriptedCompleter{}
	engine, client := newTestEngine(t, completer)
	task := seedTask(t, client)
	src := seedSource(t, client, "https://example.com/insight")

	dokService := services.NewDOKService(client)
	_, err := dokService.RecordSummary(ctx, services.RecordSummaryInput{
		TaskID: task.ID, SourceID: src.ID, Subtopic: "general", Summary: "s",
	})
	require.NoError(t, err)
	summaries, err := dokService.ListSummaries(ctx, task.ID)
	require.NoError(t, err)

	completer.responses = []gateway.Result[*llm.Completion]{okText(`{
		"insights": [
			{"category": "economics", "insight": "Grounded claim.", "confidence": 1.4,
			 "source_ids": ["` + src.ID + `"]},
			{"category": "economics", "insight": "Ungrounded claim.", "confidence": 0.9,
			 "source_ids": ["ghost-source"]}
		]
	}`)}

	output, _, err := engine.GenerateInsights(ctx, task.ID, summaries)
	require.NoError(t, err)
	assert.Equal(t, 1, output["insights"])

	stored, err := dokService.ListInsights(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Grounded claim.", stored[0].InsightText)
	assert.InDelta(t, 1.0, stored[0].ConfidenceScore, 1e-9)
}

func TestEngine_GenerateSpikyPOVs(t *testing.T) {
	ctx := context.Background()
	completer := &scriptedCompleter{}
	engine, client := newTestEngine(t, completer)
	task := seedTask(t, client)

	t.Run("no insights short-circuits without an LLM call", func(t *testing.T) {
		output, _, err := engine.GenerateSpikyPOVs(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, output["truths"])
		assert.Empty(t, completer.calls)
	})

	t.Run("partitions truths and myths, drops uncited", func(t *testing.T) {
		src := seedSource(t, client, "https://example.com/pov")
		dokService := services.NewDOKService(client)
		ins, err := dokService.CreateInsight(ctx, services.CreateInsightInput{
			TaskID: task.ID, InsightText: "Async reduces meeting load.",
			ConfidenceScore: 0.8, SourceIDs: []string{src.ID},
		})
		require.NoError(t, err)

		completer.responses = []gateway.Result[*llm.Completion]{okText(`{
			"truths": [{"statement": "Meetings are coordination failure.",
			            "reasoning": "From async findings.",
			            "insight_ids": ["` + ins.ID + `"]}],
			"myths": [{"statement": "Cites nothing real.",
			           "reasoning": "x", "insight_ids": ["ghost"]}]
		}`)}

		output, _, err := engine.GenerateSpikyPOVs(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, output["truths"])
		assert.Equal(t, 0, output["myths"])

		povs, err := dokService.ListSpikyPOVs(ctx, task.ID)
		require.NoError(t, err)
		require.Len(t, povs, 1)
		assert.Equal(t, "truth", string(povs[0].Kind))
	})
}

func TestEngine_SynthesizeReport(t *testing.T) {
	ctx := context.Background()

	t.Run("assembles sections in order", func(t *testing.T) {
		completer := &scriptedCompleter{}
		engine, client := newTestEngine(t, completer)
		task := seedTask(t, client)
		src := seedSource(t, client, "https://example.com/report")

		dokService := services.NewDOKService(client)
		_, err := dokService.RecordSummary(ctx, services.RecordSummaryInput{
			TaskID: task.ID, SourceID: src.ID, Subtopic: "general", Summary: "s",
		})
		require.NoError(t, err)
		summaries, err := dokService.ListSummaries(ctx, task.ID)
		require.NoError(t, err)

		completer.responses = []gateway.Result[*llm.Completion]{okText(`{
			"key_findings": {"content": "Finding one.", "source_ids": ["` + src.ID + `", "ghost"]},
			"evidence_analysis": {"content": "Evidence holds.", "source_ids": ["` + src.ID + `"]},
			"causal_relationships": {"content": "A drives B.", "source_ids": []},
			"alternative_interpretations": {"content": "Could be selection bias.", "source_ids": []}
		}`)}

		markdown, evidence, err := engine.SynthesizeReport(ctx, task, summaries)
		require.NoError(t, err)
		require.Len(t, evidence, 1)

		assert.Contains(t, markdown, "# remote work")
		keyIdx := strings.Index(markdown, "## Key Findings")
		altIdx := strings.Index(markdown, "## Alternative Interpretations")
		require.GreaterOrEqual(t, keyIdx, 0)
		assert.Greater(t, altIdx, keyIdx)

		sections, err := dokService.ListReportSections(ctx, task.ID)
		require.NoError(t, err)
		require.Len(t, sections, 4)
		// Unknown source ids are filtered from the citation list.
		assert.Equal(t, []string{src.ID}, sections[0].SourceIds)
	})

	t.Run("empty corpus yields an explicit empty report", func(t *testing.T) {
		completer := &scriptedCompleter{}
		engine, client := newTestEngine(t, completer)
		task := seedTask(t, client)

		markdown, evidence, err := engine.SynthesizeReport(ctx, task, nil)
		require.NoError(t, err)
		assert.Empty(t, evidence)
		assert.Empty(t, completer.calls)
		assert.Contains(t, markdown, "No sources were found")

		sections, err := services.NewDOKService(client).ListReportSections(ctx, task.ID)
		require.NoError(t, err)
		assert.Len(t, sections, 1)
	})
}
