// Package e2e runs full-stack tests: real Postgres, coordinator, runner and
// HTTP API, with only the external providers and the LLM sidecar scripted.
package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/trilogy-group/nexus-agents/pkg/api"
	"github.com/trilogy-group/nexus-agents/pkg/artifacts"
	"github.com/trilogy-group/nexus-agents/pkg/config"
	"github.com/trilogy-group/nexus-agents/pkg/coordinator"
	"github.com/trilogy-group/nexus-agents/pkg/database"
	"github.com/trilogy-group/nexus-agents/pkg/dok"
	"github.com/trilogy-group/nexus-agents/pkg/events"
	"github.com/trilogy-group/nexus-agents/pkg/gateway"
	"github.com/trilogy-group/nexus-agents/pkg/ledger"
	"github.com/trilogy-group/nexus-agents/pkg/llm"
	"github.com/trilogy-group/nexus-agents/pkg/orchestrator"
	"github.com/trilogy-group/nexus-agents/pkg/services"
	testdb "github.com/trilogy-group/nexus-agents/test/database"
)

// fakeGateway scripts external calls per pipeline stage. Search results are
// keyed by query; completions by the stage inferred from the system prompt.
type fakeGateway struct {
	mu        sync.Mutex
	providers []string
	searches  map[string][]gateway.SearchResult
	fetches   map[string]string
	respond   map[string]func(*llm.GenerateInput) gateway.Result[*llm.Completion]
}

func newFakeGateway(providers ...string) *fakeGateway {
	return &fakeGateway{
		providers: providers,
		searches:  make(map[string][]gateway.SearchResult),
		fetches:   make(map[string]string),
		respond:   make(map[string]func(*llm.GenerateInput) gateway.Result[*llm.Completion]),
	}
}

func (g *fakeGateway) Search(_ context.Context, _, query string, _ gateway.SearchOptions) gateway.Result[[]gateway.SearchResult] {
	g.mu.Lock()
	defer g.mu.Unlock()
	return gateway.Result[[]gateway.SearchResult]{
		Status:   gateway.StatusOK,
		Value:    g.searches[query],
		Attempts: 1,
	}
}

func (g *fakeGateway) Fetch(_ context.Context, url string) gateway.Result[*gateway.Document] {
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

func (g *fakeGateway) Complete(_ context.Context, input *llm.GenerateInput) gateway.Result[*llm.Completion] {
	stage := stageOf(input)
	g.mu.Lock()
	fn := g.respond[stage]
	g.mu.Unlock()
	if fn == nil {
		return gateway.Result[*llm.Completion]{
			Status: gateway.StatusPermanent,
			Err:    fmt.Errorf("no scripted completion for stage %q", stage),
		}
	}
	return fn(input)
}

func (g *fakeGateway) EnabledProviders() []string { return g.providers }

var _ orchestrator.Gateway = (*fakeGateway)(nil)

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

// idsIn extracts the distinct UUIDs in the user prompt, in order. Synthesis
// responders cite them so the engine sees real runtime ids.
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

// scriptAnalytical wires every stage of the analytical pipeline.
func scriptAnalytical(gw *fakeGateway) {
	gw.respond["decompose"] = static(okJSON(map[string]any{
		"subtopics": []map[string]any{
			{"title": "Productivity", "query": "remote work productivity", "focus_area": "output"},
		},
	}))
	gw.respond["plan"] = static(okJSON(map[string]any{
		"objectives":    []string{"Quantify the productivity effect"},
		"deliverables":  []string{"Synthesis report"},
		"key_questions": []string{"Does output change?"},
		"strategies": []map[string]any{
			{"method": "web_search", "sources": []string{"studies"}, "keywords": []string{"remote"}},
		},
	}))
	gw.searches["remote work productivity"] = []gateway.SearchResult{
		{URL: "https://example.com/prod", Title: "Productivity study", Description: "A study."},
	}
	gw.fetches["https://example.com/prod"] = "Output rose 12% over two quarters of remote work."
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

type harness struct {
	t      *testing.T
	db     *database.Client
	gw     *fakeGateway
	runner *orchestrator.Runner
	tasks  *services.TaskService
	server *httptest.Server
}

// newHarness wires the full stack: database, event publisher, coordinator,
// pipelines, runner and HTTP API. The runner polls fast so tests stay quick.
func newHarness(t *testing.T, gw *fakeGateway) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	taskService := services.NewTaskService(client)
	operationService := services.NewOperationService(client)
	dokService := services.NewDOKService(client)
	sourceService := services.NewSourceService(client)
	entityService := services.NewEntityService(client)
	projectService := services.NewProjectService(client)

	publisher := events.NewEventPublisher(dbClient.DB(), config.DefaultBusConfig())

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
	coord := coordinator.New("pod-e2e", coordCfg, led, publisher, nil)
	coord.Start(ctx)
	t.Cleanup(coord.Stop)

	pipeCfg := config.DefaultPipelineConfig()
	pipeCfg.PhaseTimeout = 30 * time.Second

	store := artifacts.NewStore(t.TempDir(), client, publisher, nil)
	engine := dok.NewEngine(gw, dokService, pipeCfg, nil)
	orch := orchestrator.New("pod-e2e", coord, gw, engine, orchestrator.Services{
		Tasks:    taskService,
		Sources:  sourceService,
		DOK:      dokService,
		Entities: entityService,
		Projects: projectService,
	}, store, publisher, pipeCfg, nil)

	runner := orchestrator.NewRunner("pod-e2e", orch, taskService, &config.RunnerConfig{
		PollInterval:      50 * time.Millisecond,
		MaxParallelTasks:  2,
		HeartbeatInterval: 50 * time.Millisecond,
		HeartbeatTTL:      2 * time.Second,
	}, nil)
	runner.Start(ctx)
	t.Cleanup(func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = runner.Stop(stopCtx)
	})

	apiServer := api.NewServer(api.Services{
		Tasks:      taskService,
		Operations: operationService,
		DOK:        dokService,
		Sources:    sourceService,
		Entities:   entityService,
		Projects:   projectService,
		Warnings:   services.NewSystemWarningsService(),
	}, orch, store, nil, dbClient, nil)
	router := gin.New()
	apiServer.RegisterRoutes(router)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &harness{
		t:      t,
		db:     dbClient,
		gw:     gw,
		runner: runner,
		tasks:  taskService,
		server: server,
	}
}

// waitForStatus polls the task over HTTP until it reaches the wanted status.
func (h *harness) waitForStatus(taskID, want string, timeout time.Duration) {
	h.t.Helper()
	require.Eventually(h.t, func() bool {
		body, code := h.get("/tasks/" + taskID)
		if code != 200 {
			return false
		}
		var task struct {
			Status string `json:"status"`
		}
		if err := json.Unmarshal(body, &task); err != nil {
			return false
		}
		return task.Status == want
	}, timeout, 100*time.Millisecond, "task %s never reached status %s", taskID, want)
}
