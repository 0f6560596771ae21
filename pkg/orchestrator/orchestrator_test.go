package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trilogy-group/nexus-agents/ent"
	"github.com/trilogy-group/nexus-agents/ent/researchtask"
	"github.com/trilogy-group/nexus-agents/pkg/artifacts"
	"github.com/trilogy-group/nexus-agents/pkg/config"
	"github.com/trilogy-group/nexus-agents/pkg/coordinator"
	"github.com/trilogy-group/nexus-agents/pkg/dok"
	"github.com/trilogy-group/nexus-agents/pkg/entity"
	"github.com/trilogy-group/nexus-agents/pkg/events"
	"github.com/trilogy-group/nexus-agents/pkg/gateway"
	"github.com/trilogy-group/nexus-agents/pkg/ledger"
	"github.com/trilogy-group/nexus-agents/pkg/llm"
	"github.com/trilogy-group/nexus-agents/pkg/models"
	"github.com/trilogy-group/nexus-agents/pkg/services"
	testdb "github.com/trilogy-group/nexus-agents/test/database"
)

// scriptedGateway scripts external calls per pipeline stage. Search results
// are keyed by query; completions are keyed by the stage inferred from the
// system prompt, so fan-out ordering never matters.
type scriptedGateway struct {
	mu        sync.Mutex
	providers []string
	searches  map[string][]gateway.SearchResult
	forced    map[string]gateway.Result[[]gateway.SearchResult] // per provider
	fetches   map[string]string
	respond   map[string]func(*llm.GenerateInput) gateway.Result[*llm.Completion]
	calls     map[string]int
}

func newScriptedGateway(providers ...string) *scriptedGateway {
	return &scriptedGateway{
		providers: providers,
		searches:  make(map[string][]gateway.SearchResult),
		forced:    make(map[string]gateway.Result[[]gateway.SearchResult]),
		fetches:   make(map[string]string),
		respond:   make(map[string]func(*llm.GenerateInput) gateway.Result[*llm.Completion]),
		calls:     make(map[string]int),
	}
}

func (g *scriptedGateway) Search(_ context.Context, provider, query string, _ gateway.SearchOptions) gateway.Result[[]gateway.SearchResult] {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls["search"]++
	if res, ok := g.forced[provider]; ok {
		return res
	}
	return gateway.Result[[]gateway.SearchResult]{
		Status:   gateway.StatusOK,
		Value:    g.searches[query],
		Attempts: 1,
	}
}

func (g *scriptedGateway) Fetch(_ context.Context, url string) gateway.Result[*gateway.Document] {
	g.mu.Lock()
	defer g.mu.Unlock()
	if content, ok := g.fetches[url]; ok {
		return gateway.Result[*gateway.Document]{
			Status:   gateway.StatusOK,
			Value:    &gateway.Document{URL: url, Content: content},
			Attempts: 1,
		}
	}
	return gateway.Result[*gateway.Document]{
		Status: gateway.StatusPermanent,
		Err:    fmt.Errorf("no scripted fetch for %s", url),
	}
}

func (g *scriptedGateway) Complete(_ context.Context, input *llm.GenerateInput) gateway.Result[*llm.Completion] {
	stage := stageOf(input)
	g.mu.Lock()
	fn := g.respond[stage]
	g.calls[stage]++
	g.mu.Unlock()
	if fn == nil {
		return gateway.Result[*llm.Completion]{
			Status: gateway.StatusPermanent,
			Err:    fmt.Errorf("no scripted completion for stage %q", stage),
		}
	}
	return fn(input)
}

func (g *scriptedGateway) EnabledProviders() []string { return g.providers }

func (g *scriptedGateway) callCount(stage string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls[stage]
}

// stageOf classifies an LLM call by its system prompt.
func stageOf(input *llm.GenerateInput) string {
	if len(input.Messages) == 0 {
		return "unknown"
	}
	system := input.Messages[0].Content
	switch {
	case strings.Contains(system, "Decompose the research query"):
		return "decompose"
	case strings.Contains(system, "produce a research plan"):
		return "plan"
	case strings.Contains(system, "level 1 summary"):
		return "summarize"
	case strings.Contains(system, "knowledge taxonomy"):
		return "tree"
	case strings.Contains(system, "level 3 insights"):
		return "insights"
	case strings.Contains(system, "level 4 spiky"):
		return "povs"
	case strings.Contains(system, "final report"):
		return "report"
	case strings.Contains(system, "data-aggregation sweep"):
		return "enumerate"
	case strings.Contains(system, "extract structured entities"):
		return "extract"
	default:
		return "unknown"
	}
}

// okJSON wraps a value as a successful JSON completion.
func okJSON(v any) gateway.Result[*llm.Completion] {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return gateway.Result[*llm.Completion]{
		Status:   gateway.StatusOK,
		Value:    &llm.Completion{Text: string(data)},
		Attempts: 1,
	}
}

func static(res gateway.Result[*llm.Completion]) func(*llm.GenerateInput) gateway.Result[*llm.Completion] {
	return func(*llm.GenerateInput) gateway.Result[*llm.Completion] { return res }
}

var uuidRe = regexp.MustCompile(`[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)

// idsIn extracts the distinct UUIDs appearing in the user prompt, in order.
func idsIn(input *llm.GenerateInput) []string {
	var text strings.Builder
	for _, m := range input.Messages {
		if m.Role == llm.RoleUser {
			text.WriteString(m.Content)
		}
	}
	seen := make(map[string]struct{})
	var out []string
	for _, id := range uuidRe.FindAllString(text.String(), -1) {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// recordingSink records published task and phase events.
type recordingSink struct {
	mu     sync.Mutex
	tasks  []events.TaskStatusPayload
	phases []events.PhaseStatusPayload
}

func (s *recordingSink) PublishTaskStatus(_ context.Context, payload events.TaskStatusPayload) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, payload)
	return nil
}

func (s *recordingSink) PublishPhaseStatus(_ context.Context, payload events.PhaseStatusPayload) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phases = append(s.phases, payload)
	return nil
}

func (s *recordingSink) phaseEvents(phase string) []events.PhaseStatusPayload {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []events.PhaseStatusPayload
	for _, p := range s.phases {
		if p.Phase == phase {
			out = append(out, p)
		}
	}
	return out
}

func (s *recordingSink) lastTaskStatus() events.TaskStatusPayload {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.tasks) == 0 {
		return events.TaskStatusPayload{}
	}
	return s.tasks[len(s.tasks)-1]
}

type noopMonitor struct{}

func (noopMonitor) PublishOperationProgress(context.Context, events.OperationProgressPayload) error {
	return nil
}
func (noopMonitor) PublishWorkerStatus(context.Context, events.WorkerStatusPayload) error { return nil }
func (noopMonitor) PublishQueueDepth(context.Context, events.QueueDepthPayload) error     { return nil }
func (noopMonitor) PublishStatsSnapshot(context.Context, events.StatsSnapshotPayload) error {
	return nil
}

type noopArtifactPublisher struct{}

func (noopArtifactPublisher) PublishArtifactCreated(context.Context, events.ArtifactCreatedPayload) error {
	return nil
}

type harness struct {
	orch  *Orchestrator
	gw    *scriptedGateway
	sink  *recordingSink
	store *artifacts.Store
	svc   Services
	ent   *ent.Client
}

func newHarness(t *testing.T, gw *scriptedGateway) *harness {
	t.Helper()
	client := testdb.NewTestClient(t).Client

	coordCfg := &config.CoordinatorConfig{
		WorkerCount: 8,
		Queues: map[string]config.QueueSettings{
			"search":    {Cap: 64, Concurrency: 4},
			"llm":       {Cap: 64, Concurrency: 4},
			"synthesis": {Cap: 16, Concurrency: 2},
		},
		MaxRetries:              1,
		RetryBase:               5 * time.Millisecond,
		OpTimeout:               10 * time.Second,
		HeartbeatInterval:       50 * time.Millisecond,
		HeartbeatTTL:            5 * time.Second,
		StatsInterval:           time.Hour,
		GracefulShutdownTimeout: 5 * time.Second,
	}
	led := ledger.New(client, 64*1024, nil)
	coord := coordinator.New("pod-test", coordCfg, led, noopMonitor{}, nil)
	coord.Start(context.Background())
	t.Cleanup(coord.Stop)

	svc := Services{
		Tasks:    services.NewTaskService(client),
		Sources:  services.NewSourceService(client),
		DOK:      services.NewDOKService(client),
		Entities: services.NewEntityService(client),
		Projects: services.NewProjectService(client),
	}
	store := artifacts.NewStore(t.TempDir(), client, noopArtifactPublisher{}, nil)
	engine := dok.NewEngine(gw, svc.DOK, config.DefaultPipelineConfig(), nil)
	sink := &recordingSink{}

	pipeCfg := config.DefaultPipelineConfig()
	pipeCfg.PhaseTimeout = 30 * time.Second

	orch := New("pod-test", coord, gw, engine, svc, store, sink, pipeCfg, nil)
	return &harness{orch: orch, gw: gw, sink: sink, store: store, svc: svc, ent: client}
}

func (h *harness) createAnalyticalTask(t *testing.T, query string) *ent.ResearchTask {
	t.Helper()
	task, err := h.svc.Tasks.CreateTask(context.Background(), models.CreateTaskRequest{
		Title:         "test research",
		ResearchQuery: query,
		ResearchType:  string(researchtask.ResearchTypeAnalyticalReport),
	})
	require.NoError(t, err)
	// Pipelines assume the runner's claim already happened.
	_, err = h.svc.Tasks.TransitionStatus(context.Background(), task.ID, researchtask.StatusRunning)
	require.NoError(t, err)
	return task
}

func (h *harness) createAggregationTask(t *testing.T, cfg map[string]any) *ent.ResearchTask {
	t.Helper()
	task, err := h.svc.Tasks.CreateTask(context.Background(), models.CreateTaskRequest{
		Title:             "test aggregation",
		ResearchQuery:     "catalog the private schools in the 94110 zip code",
		ResearchType:      string(researchtask.ResearchTypeDataAggregation),
		AggregationConfig: cfg,
	})
	require.NoError(t, err)
	_, err = h.svc.Tasks.TransitionStatus(context.Background(), task.ID, researchtask.StatusRunning)
	require.NoError(t, err)
	return task
}

// scriptAnalyticalSynthesis wires tree, insights, povs and report responders
// that cite whatever real ids appear in their prompts.
func scriptAnalyticalSynthesis(gw *scriptedGateway) {
	gw.respond["summarize"] = static(okJSON(map[string]any{
		"summary": "The source describes sustained productivity gains.",
		"facts":   []string{"Output rose 12% over two quarters."},
	}))
	gw.respond["tree"] = func(input *llm.GenerateInput) gateway.Result[*llm.Completion] {
		sources := make([]map[string]any, 0)
		for _, id := range idsIn(input) {
			sources = append(sources, map[string]any{"source_id": id, "relevance": 0.8})
		}
		return okJSON(map[string]any{
			"categories": []map[string]any{{
				"category": "Productivity",
				"summary":  "Productivity effects of remote work.",
				"children": []map[string]any{{
					"subcategory": "Measured output",
					"summary":     "Quantified output changes.",
					"sources":     sources,
				}},
			}},
		})
	}
	gw.respond["insights"] = func(input *llm.GenerateInput) gateway.Result[*llm.Completion] {
		return okJSON(map[string]any{
			"insights": []map[string]any{{
				"category":   "Productivity",
				"insight":    "Gains persist beyond the novelty period.",
				"confidence": 0.8,
				"source_ids": idsIn(input),
			}},
		})
	}
	gw.respond["povs"] = func(input *llm.GenerateInput) gateway.Result[*llm.Completion] {
		return okJSON(map[string]any{
			"truths": []map[string]any{{
				"statement":   "Office mandates trade measured output for visibility.",
				"reasoning":   "Output metrics improved while remote.",
				"insight_ids": idsIn(input),
			}},
			"myths": []map[string]any{},
		})
	}
	gw.respond["report"] = func(input *llm.GenerateInput) gateway.Result[*llm.Completion] {
		ids := idsIn(input)
		section := func(content string) map[string]any {
			return map[string]any{"content": content, "source_ids": ids}
		}
		return okJSON(map[string]any{
			"key_findings":                section("Remote work raised measured output."),
			"evidence_analysis":           section("Two quarters of output data."),
			"causal_relationships":        section("Fewer interruptions drive the gain."),
			"alternative_interpretations": section("Selection effects may contribute."),
		})
	}
}

func TestRunAnalytical_HappyPath(t *testing.T) {
	gw := newScriptedGateway("linkup", "tavily")
	gw.respond["decompose"] = static(okJSON(map[string]any{
		"subtopics": []map[string]any{
			{"title": "Productivity", "query": "remote work productivity", "focus_area": "output"},
			{"title": "Retention", "query": "remote work retention", "focus_area": "attrition"},
		},
	}))
	gw.respond["plan"] = static(okJSON(map[string]any{
		"objectives":    []string{"Quantify the productivity effect"},
		"deliverables":  []string{"Synthesis report"},
		"key_questions": []string{"Does output change?"},
		"strategies": []map[string]any{
			{"method": "web_search", "sources": []string{"studies"}, "keywords": []string{"remote", "productivity"}},
		},
	}))
	gw.searches["remote work productivity"] = []gateway.SearchResult{
		{URL: "https://example.com/prod", Title: "Productivity study", Description: "A study."},
	}
	gw.searches["remote work retention"] = []gateway.SearchResult{
		{URL: "https://example.com/retention", Title: "Retention data", Description: "Attrition numbers."},
	}
	gw.fetches["https://example.com/prod"] = "Output rose 12% over two quarters of remote work."
	scriptAnalyticalSynthesis(gw)

	h := newHarness(t, gw)
	task := h.createAnalyticalTask(t, "impact of remote work on engineering teams")

	require.NoError(t, h.orch.RunTask(context.Background(), task))

	got, err := h.svc.Tasks.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, researchtask.StatusCompleted, got.Status)
	require.NotNil(t, got.ReportMarkdown)
	assert.Contains(t, *got.ReportMarkdown, "## Key Findings")
	assert.Contains(t, *got.ReportMarkdown, "Remote work raised measured output.")

	// Both subtopics hit both providers.
	assert.Equal(t, 4, gw.callCount("search"))

	// Sources were recorded; each source was summarized once per subtopic
	// it appeared under.
	summaries, err := h.svc.DOK.ListSummaries(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Len(t, summaries, 2)

	insights, err := h.svc.DOK.ListInsights(context.Background(), task.ID)
	require.NoError(t, err)
	require.Len(t, insights, 1)
	assert.NotEmpty(t, insights[0].SourceIds)

	// Every phase completed, and the report landed in the artifact store.
	for _, phase := range []string{"planning", "search", "summarize", "tree", "insights", "povs", "report"} {
		evts := h.sink.phaseEvents(phase)
		require.NotEmpty(t, evts, "phase %s", phase)
		assert.Equal(t, events.PhaseStatusCompleted, evts[len(evts)-1].Status, "phase %s", phase)
	}
	art, err := h.store.Latest(context.Background(), task.ID, "report_md")
	require.NoError(t, err)
	data, _, err := h.store.Read(context.Background(), art.ID)
	require.NoError(t, err)
	assert.Contains(t, string(data), "## Key Findings")

	assert.Equal(t, researchtask.StatusCompleted, h.sink.lastTaskStatus().Status)
}

func TestRunAnalytical_NoSourcesStillCompletes(t *testing.T) {
	gw := newScriptedGateway("linkup")
	gw.respond["decompose"] = static(okJSON(map[string]any{
		"subtopics": []map[string]any{
			{"title": "Niche", "query": "a query with no results", "focus_area": "niche"},
		},
	}))
	gw.respond["plan"] = static(okJSON(map[string]any{
		"objectives": []string{"Find anything"},
	}))
	// No scripted searches: every query returns zero hits. The report stage
	// must not be reached through the LLM.

	h := newHarness(t, gw)
	task := h.createAnalyticalTask(t, "an unanswerable question")

	require.NoError(t, h.orch.RunTask(context.Background(), task))

	got, err := h.svc.Tasks.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, researchtask.StatusCompleted, got.Status)
	require.NotNil(t, got.ReportMarkdown)
	assert.Contains(t, *got.ReportMarkdown, "No sources were found")

	// Empty corpus short-circuits every synthesis LLM call.
	assert.Zero(t, gw.callCount("tree"))
	assert.Zero(t, gw.callCount("insights"))
	assert.Zero(t, gw.callCount("povs"))
	assert.Zero(t, gw.callCount("report"))
}

func TestRunAnalytical_SynthesisFailureMarksDownstreamDependencyFailed(t *testing.T) {
	gw := newScriptedGateway("linkup")
	gw.respond["decompose"] = static(okJSON(map[string]any{
		"subtopics": []map[string]any{
			{"title": "Topic", "query": "some query", "focus_area": "all"},
		},
	}))
	gw.respond["plan"] = static(okJSON(map[string]any{
		"objectives": []string{"Establish the facts"},
	}))
	gw.searches["some query"] = []gateway.SearchResult{
		{URL: "https://example.com/a", Title: "A", Description: "Alpha content."},
	}
	gw.respond["summarize"] = static(okJSON(map[string]any{
		"summary": "Alpha summary.",
		"facts":   []string{"Alpha fact."},
	}))
	// Tree output is unparseable: a permanent failure after exhausting
	// nothing (permanent errors never retry).
	gw.respond["tree"] = static(gateway.Result[*llm.Completion]{
		Status:   gateway.StatusOK,
		Value:    &llm.Completion{Text: "not json at all"},
		Attempts: 1,
	})

	h := newHarness(t, gw)
	task := h.createAnalyticalTask(t, "failing synthesis")

	err := h.orch.RunTask(context.Background(), task)
	require.Error(t, err)

	got, gerr := h.svc.Tasks.GetTask(context.Background(), task.ID)
	require.NoError(t, gerr)
	assert.Equal(t, researchtask.StatusFailed, got.Status)
	require.NotNil(t, got.ErrorKind)
	assert.Equal(t, KindProviderPermanent, *got.ErrorKind)

	// Downstream synthesis stages never dispatched.
	assert.Zero(t, gw.callCount("insights"))
	assert.Zero(t, gw.callCount("povs"))
	assert.Zero(t, gw.callCount("report"))
}

func TestRunAnalytical_AllProvidersDegraded(t *testing.T) {
	gw := newScriptedGateway("linkup")
	gw.respond["decompose"] = static(okJSON(map[string]any{
		"subtopics": []map[string]any{
			{"title": "Topic", "query": "degraded query", "focus_area": "all"},
		},
	}))
	gw.respond["plan"] = static(okJSON(map[string]any{
		"objectives": []string{"Establish the facts"},
	}))
	gw.forced["linkup"] = gateway.Result[[]gateway.SearchResult]{
		Status: gateway.StatusDegraded,
		Reason: "provider disabled",
	}

	h := newHarness(t, gw)
	task := h.createAnalyticalTask(t, "degraded providers")

	err := h.orch.RunTask(context.Background(), task)
	require.Error(t, err)

	got, gerr := h.svc.Tasks.GetTask(context.Background(), task.ID)
	require.NoError(t, gerr)
	assert.Equal(t, researchtask.StatusFailed, got.Status)
	require.NotNil(t, got.ErrorKind)
	assert.Equal(t, KindProviderDegraded, *got.ErrorKind)

	evts := h.sink.phaseEvents("search")
	require.NotEmpty(t, evts)
	assert.Equal(t, events.PhaseStatusFailed, evts[len(evts)-1].Status)
}

func TestRunAggregation_HappyPath(t *testing.T) {
	gw := newScriptedGateway("tavily")
	gw.respond["enumerate"] = static(okJSON(map[string]any{
		"subspaces": []string{"94110 north", "94110 south"},
	}))
	gw.searches["private_school 94110 north"] = []gateway.SearchResult{
		{URL: "https://example.com/hillcrest", Title: "Hillcrest Academy", Description: "A school."},
	}
	gw.searches["private_school 94110 south"] = []gateway.SearchResult{
		{URL: "https://example.com/bayview", Title: "Bayview Prep", Description: "Another school."},
	}
	gw.fetches["https://example.com/hillcrest"] = "Hillcrest Academy, 12 Oak St. Tuition $24,000."
	gw.fetches["https://example.com/bayview"] = "Bayview Prep, 9 Pier Rd. Tuition $18,500."
	gw.respond["extract"] = func(input *llm.GenerateInput) gateway.Result[*llm.Completion] {
		prompt := input.Messages[len(input.Messages)-1].Content
		if strings.Contains(prompt, "Hillcrest") {
			return okJSON(map[string]any{
				"entities": []map[string]any{{
					"name":              "Hillcrest Academy",
					"unique_identifier": "nces-001",
					"attributes":        map[string]string{"address": "12 Oak St", "tuition": "24000"},
					"confidence":        0.9,
					"source_url":        "https://example.com/hillcrest",
				}},
			})
		}
		return okJSON(map[string]any{
			"entities": []map[string]any{{
				"name":       "Bayview Prep",
				"attributes": map[string]string{"address": "9 Pier Rd", "tuition": "18500"},
				"confidence": 0.7,
				"source_url": "https://example.com/bayview",
			}},
		})
	}

	h := newHarness(t, gw)
	task := h.createAggregationTask(t, map[string]any{
		"entities":     []string{"private_school"},
		"attributes":   []string{"address", "tuition"},
		"search_space": "94110",
	})

	require.NoError(t, h.orch.RunTask(context.Background(), task))

	got, err := h.svc.Tasks.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, researchtask.StatusCompleted, got.Status)

	// No project: entities land in the task scope.
	entities, err := h.svc.Entities.ListEntities(context.Background(), task.ID, "private_school")
	require.NoError(t, err)
	require.Len(t, entities, 2)
	assert.Equal(t, "Bayview Prep", entities[0].Name)
	assert.Equal(t, "Hillcrest Academy", entities[1].Name)
	assert.Equal(t, "nces-001", entities[1].UniqueIdentifier)

	// Both export artifacts registered and readable.
	csvArt, err := h.store.Latest(context.Background(), task.ID, "export_csv")
	require.NoError(t, err)
	csvData, _, err := h.store.Read(context.Background(), csvArt.ID)
	require.NoError(t, err)
	assert.Contains(t, string(csvData), "name,unique_identifier,address,tuition,source_tasks,confidence_score,updated_at")
	assert.Contains(t, string(csvData), "Hillcrest Academy")

	_, err = h.store.Latest(context.Background(), task.ID, "export_xlsx")
	require.NoError(t, err)

	for _, phase := range []string{"planning", "search", "extract", "consolidate", "export"} {
		evts := h.sink.phaseEvents(phase)
		require.NotEmpty(t, evts, "phase %s", phase)
		assert.Equal(t, events.PhaseStatusCompleted, evts[len(evts)-1].Status, "phase %s", phase)
	}
}

func TestRunAggregation_DocumentedConfigShape(t *testing.T) {
	gw := newScriptedGateway("tavily")
	gw.respond["enumerate"] = static(okJSON(map[string]any{
		"subspaces": []string{"Northern California"},
	}))
	gw.searches["private schools Northern California"] = []gateway.SearchResult{
		{URL: "https://example.com/stmary", Title: "St. Mary Academy", Description: "A school."},
	}
	gw.fetches["https://example.com/stmary"] = "St. Mary Academy, 4 Elm St, Sacramento. 310 students, tuition $21,000."
	gw.respond["extract"] = static(okJSON(map[string]any{
		"entities": []map[string]any{{
			"name":              "St. Mary Academy",
			"unique_identifier": "cds-341",
			"attributes": map[string]string{
				"name":       "St. Mary Academy",
				"address":    "4 Elm St, Sacramento",
				"enrollment": "310",
				"tuition":    "21000",
				"website":    "https://stmary.example",
			},
			"confidence": 0.9,
			"source_url": "https://example.com/stmary",
		}},
	}))

	h := newHarness(t, gw)
	// The request shape the API documents: a single search_space string the
	// pipeline enumerates, with name among the requested attributes.
	task := h.createAggregationTask(t, map[string]any{
		"entities":     []any{"private schools"},
		"attributes":   []any{"name", "address", "website", "enrollment", "tuition"},
		"search_space": "California",
		"domain_hint":  "education.private_schools",
	})

	require.NoError(t, h.orch.RunTask(context.Background(), task))

	got, err := h.svc.Tasks.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, researchtask.StatusCompleted, got.Status)

	entities, err := h.svc.Entities.ListEntities(context.Background(), task.ID, "private schools")
	require.NoError(t, err)
	require.Len(t, entities, 1)
	assert.Equal(t, "St. Mary Academy", entities[0].Name)

	// The stored name attribute rides the fixed head column, never a
	// duplicate header.
	csvArt, err := h.store.Latest(context.Background(), task.ID, "export_csv")
	require.NoError(t, err)
	csvData, _, err := h.store.Read(context.Background(), csvArt.ID)
	require.NoError(t, err)
	lines := strings.Split(string(csvData), "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t,
		"name,unique_identifier,address,enrollment,tuition,website,source_tasks,confidence_score,updated_at",
		lines[0])
}

func TestRunAggregation_ProvidedSearchSpaceSkipsEnumeration(t *testing.T) {
	gw := newScriptedGateway("tavily")
	gw.searches["cafe downtown"] = []gateway.SearchResult{
		{URL: "https://example.com/cafe", Title: "Cafe", Description: "A cafe."},
	}
	gw.respond["extract"] = static(okJSON(map[string]any{
		"entities": []map[string]any{{
			"name":       "Corner Cafe",
			"attributes": map[string]string{"address": "1 Main St"},
			"confidence": 0.8,
			"source_url": "https://example.com/cafe",
		}},
	}))

	h := newHarness(t, gw)
	task := h.createAggregationTask(t, map[string]any{
		"entities":     []string{"cafe"},
		"attributes":   []string{"address"},
		"search_space": []string{"downtown"},
	})

	require.NoError(t, h.orch.RunTask(context.Background(), task))
	assert.Zero(t, gw.callCount("enumerate"))

	entities, err := h.svc.Entities.ListEntities(context.Background(), task.ID, "cafe")
	require.NoError(t, err)
	require.Len(t, entities, 1)
	assert.Equal(t, "Corner Cafe", entities[0].Name)
}

func TestRunAggregation_InvalidConfigFailsAsInvariant(t *testing.T) {
	gw := newScriptedGateway("tavily")
	h := newHarness(t, gw)
	ctx := context.Background()

	// Creation rejects malformed configs, so write the row directly: the
	// pipeline still has to refuse it rather than run on garbage.
	task, err := h.ent.ResearchTask.Create().
		SetID(uuid.New().String()).
		SetTitle("malformed aggregation").
		SetResearchQuery("cafes downtown").
		SetResearchType(researchtask.ResearchTypeDataAggregation).
		SetStatus(researchtask.StatusRunning).
		SetAggregationConfig(map[string]any{
			"entities": []string{"cafe"},
			// attributes and search_space missing
		}).
		Save(ctx)
	require.NoError(t, err)

	err = h.orch.RunTask(ctx, task)
	require.Error(t, err)

	got, gerr := h.svc.Tasks.GetTask(ctx, task.ID)
	require.NoError(t, gerr)
	assert.Equal(t, researchtask.StatusFailed, got.Status)
	require.NotNil(t, got.ErrorKind)
	assert.Equal(t, KindInvariantViolation, *got.ErrorKind)
}

func TestConsolidateProject(t *testing.T) {
	gw := newScriptedGateway("tavily")
	h := newHarness(t, gw)
	ctx := context.Background()

	project, err := h.svc.Projects.CreateProject(ctx, models.CreateProjectRequest{
		Name: "school census",
	})
	require.NoError(t, err)

	task, err := h.svc.Tasks.CreateTask(ctx, models.CreateTaskRequest{
		Title:         "zip sweep",
		ResearchQuery: "schools in 94110",
		ResearchType:  string(researchtask.ResearchTypeDataAggregation),
		AggregationConfig: map[string]any{
			"entities":     []string{"private_school"},
			"attributes":   []string{"address"},
			"search_space": "94110",
		},
		ProjectID: project.ID,
	})
	require.NoError(t, err)

	// Simulate a task-scoped run that predates the project association.
	now := time.Now()
	resolved := entityResolveSingle("Hillcrest Academy", "nces-001", map[string]string{"address": "12 Oak St"}, task.ID, now)
	_, err = h.svc.Entities.UpsertResolved(ctx, task.ID, "private_school", resolved)
	require.NoError(t, err)

	count, err := h.orch.ConsolidateProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	entities, err := h.svc.Entities.ListEntities(ctx, project.ID, "private_school")
	require.NoError(t, err)
	require.Len(t, entities, 1)
	assert.Equal(t, "Hillcrest Academy", entities[0].Name)
	assert.Contains(t, entities[0].SourceTasks, task.ID)

	// Re-running converges on the same row.
	_, err = h.orch.ConsolidateProject(ctx, project.ID)
	require.NoError(t, err)
	entities, err = h.svc.Entities.ListEntities(ctx, project.ID, "private_school")
	require.NoError(t, err)
	assert.Len(t, entities, 1)
}

// entityResolveSingle builds one consolidated entity the way the pipeline
// would, for seeding pre-existing task-scoped rows.
func entityResolveSingle(name, uid string, attrs map[string]string, taskID string, now time.Time) entity.Resolved {
	resolved := entity.Resolve([]entity.Candidate{{
		Name:             name,
		UniqueIdentifier: uid,
		Attributes:       attrs,
		Confidence:       0.9,
		TaskID:           taskID,
		ObservedAt:       now,
	}}, nil, now)
	return resolved[0]
}

func TestCancelTask(t *testing.T) {
	gw := newScriptedGateway("tavily")
	h := newHarness(t, gw)
	ctx := context.Background()

	task := h.createAnalyticalTask(t, "to be cancelled")
	require.NoError(t, h.orch.CancelTask(ctx, task.ID))

	got, err := h.svc.Tasks.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, researchtask.StatusFailed, got.Status)
	require.NotNil(t, got.ErrorKind)
	assert.Equal(t, KindCancelled, *got.ErrorKind)

	// Idempotent: the second cancel leaves the terminal state alone.
	require.NoError(t, h.orch.CancelTask(ctx, task.ID))
}
