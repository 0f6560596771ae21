package orchestrator

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/trilogy-group/nexus-agents/ent"
	"github.com/trilogy-group/nexus-agents/ent/researchtask"
	"github.com/trilogy-group/nexus-agents/pkg/config"
	"github.com/trilogy-group/nexus-agents/pkg/coordinator"
	"github.com/trilogy-group/nexus-agents/pkg/events"
	"github.com/trilogy-group/nexus-agents/pkg/gateway"
	"github.com/trilogy-group/nexus-agents/pkg/ledger"
	"github.com/trilogy-group/nexus-agents/pkg/llm"
	"github.com/trilogy-group/nexus-agents/pkg/services"
)

// subtopic is one decomposed slice of the research query.
type subtopic struct {
	Title     string `json:"title"`
	Query     string `json:"query"`
	FocusArea string `json:"focus_area"`
}

// sourceHit records one deduplicated source discovered during the search
// phase, with the content available for summarization and the subtopics it
// was found under.
type sourceHit struct {
	source    *ent.Source
	content   string
	subtopics map[int]string // subtopic index -> title
}

// searchCollector accumulates sources across concurrent search operations.
type searchCollector struct {
	mu   sync.Mutex
	hits map[string]*sourceHit // keyed by source id
}

func newSearchCollector() *searchCollector {
	return &searchCollector{hits: make(map[string]*sourceHit)}
}

func (c *searchCollector) add(src *ent.Source, content string, subtopicIdx int, subtopicTitle string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	hit, ok := c.hits[src.ID]
	if !ok {
		hit = &sourceHit{source: src, content: content, subtopics: make(map[int]string)}
		c.hits[src.ID] = hit
	}
	if hit.content == "" {
		hit.content = content
	}
	hit.subtopics[subtopicIdx] = subtopicTitle
}

// pairs returns (source, subtopic) work units in deterministic order:
// subtopic index asc, then source URL asc.
func (c *searchCollector) pairs() []summarizePair {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []summarizePair
	for _, hit := range c.hits {
		for idx, title := range hit.subtopics {
			out = append(out, summarizePair{
				source:      hit.source,
				content:     hit.content,
				subtopicIdx: idx,
				subtopic:    title,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].subtopicIdx != out[j].subtopicIdx {
			return out[i].subtopicIdx < out[j].subtopicIdx
		}
		return out[i].source.URL < out[j].source.URL
	})
	return out
}

func (c *searchCollector) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.hits)
}

type summarizePair struct {
	source      *ent.Source
	content     string
	subtopicIdx int
	subtopic    string
}

// runAnalytical executes the analytical-report pipeline: planning, search
// fan-out, summarization fan-out, then the dependency-chained synthesis
// stages through to the final report.
func (o *Orchestrator) runAnalytical(ctx context.Context, task *ent.ResearchTask) error {
	// Phase 1+2: topic decomposition then research plan, strictly ordered.
	// The runner already moved the task to running when it claimed it.
	if err := o.transition(task, researchtask.StatusPlanning); err != nil {
		return err
	}
	var subtopics []subtopic
	_, err := o.runPhase(ctx, task, "planning", 1.0, func(deadline time.Time) ([]*coordinator.Handle, error) {
		decompose, err := o.coord.Submit(ctx, "llm", coordinator.OpSpec{
			TaskID:        task.ID,
			OperationType: "topic_decomposition",
			AgentType:     "reasoning",
			InputData:     map[string]any{"research_query": task.ResearchQuery},
			Fn: func(opCtx context.Context) (map[string]any, []ledger.EvidenceInput, error) {
				parsed, evidence, err := o.decomposeTopic(opCtx, task)
				if err != nil {
					return nil, evidence, err
				}
				subtopics = parsed
				return map[string]any{"subtopics": len(parsed)}, evidence, nil
			},
		}, coordinator.SubmitOptions{Priority: 10, Deadline: deadline})
		if err != nil {
			return nil, err
		}

		plan, err := o.coord.Submit(ctx, "llm", coordinator.OpSpec{
			TaskID:        task.ID,
			OperationType: "research_plan",
			AgentType:     "reasoning",
			Fn: func(opCtx context.Context) (map[string]any, []ledger.EvidenceInput, error) {
				return o.buildResearchPlan(opCtx, task, subtopics)
			},
		}, coordinator.SubmitOptions{
			Priority:  10,
			Deadline:  deadline,
			DependsOn: []*coordinator.Handle{decompose},
		})
		if err != nil {
			return nil, err
		}
		return []*coordinator.Handle{decompose, plan}, nil
	})
	if err != nil {
		return err
	}

	// Phase 3: search fan-out, subtopic × provider.
	if err := o.transition(task, researchtask.StatusSearching); err != nil {
		return err
	}
	collector := newSearchCollector()
	_, err = o.runPhase(ctx, task, "search", o.cfg.MinSuccessRatioFanOut,
		func(deadline time.Time) ([]*coordinator.Handle, error) {
			return o.submitSearches(ctx, task, subtopics, collector, deadline)
		})
	if err != nil {
		return err
	}
	o.logger.Info("search phase collected sources",
		"task_id", task.ID, "sources", collector.size())

	// Phase 4: summarization fan-out, one op per (source, subtopic).
	if err := o.transition(task, researchtask.StatusSummarizing); err != nil {
		return err
	}
	_, err = o.runPhase(ctx, task, "summarize", o.cfg.MinSuccessRatioFanOut,
		func(deadline time.Time) ([]*coordinator.Handle, error) {
			return o.submitSummaries(ctx, task, collector.pairs(), deadline)
		})
	if err != nil {
		return err
	}

	return o.runSynthesisChain(ctx, task)
}

// decomposeTopic asks the reasoning model for the subtopic breakdown.
func (o *Orchestrator) decomposeTopic(ctx context.Context, task *ent.ResearchTask) ([]subtopic, []ledger.EvidenceInput, error) {
	res := o.gw.Complete(ctx, &llm.GenerateInput{
		TaskID:     task.ID,
		Role:       config.ModelRoleReasoning,
		JSONOutput: true,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: decomposeSystemPrompt},
			{Role: llm.RoleUser, Content: decomposeUserPrompt(task.ResearchQuery, o.cfg.MaxSubtopics)},
		},
	})
	text, err := o.completionText(res)
	if err != nil {
		return nil, nil, err
	}
	evidence := []ledger.EvidenceInput{llmEvidence("topic_decomposition", text)}

	var parsed struct {
		Subtopics []subtopic `json:"subtopics"`
	}
	if err := llm.DecodeJSON(text, &parsed); err != nil {
		return nil, evidence, fmt.Errorf("topic_decomposition: %w", err)
	}

	var out []subtopic
	for _, st := range parsed.Subtopics {
		if st.Query == "" && st.Title == "" {
			continue
		}
		if st.Query == "" {
			st.Query = st.Title
		}
		if st.Title == "" {
			st.Title = st.Query
		}
		out = append(out, st)
		if len(out) == o.cfg.MaxSubtopics {
			break
		}
	}
	if len(out) == 0 {
		return nil, evidence, fmt.Errorf("topic_decomposition: model returned no subtopics")
	}
	return out, evidence, nil
}

// buildResearchPlan produces objectives, deliverables, key questions and
// per-strategy search plans. The plan lives in the operation's output data.
func (o *Orchestrator) buildResearchPlan(ctx context.Context, task *ent.ResearchTask, subtopics []subtopic) (map[string]any, []ledger.EvidenceInput, error) {
	res := o.gw.Complete(ctx, &llm.GenerateInput{
		TaskID:     task.ID,
		Role:       config.ModelRoleReasoning,
		JSONOutput: true,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: planSystemPrompt},
			{Role: llm.RoleUser, Content: planUserPrompt(task.ResearchQuery, subtopics)},
		},
	})
	text, err := o.completionText(res)
	if err != nil {
		return nil, nil, err
	}
	evidence := []ledger.EvidenceInput{llmEvidence("research_plan", text)}

	var parsed struct {
		Objectives   []string `json:"objectives"`
		Deliverables []string `json:"deliverables"`
		KeyQuestions []string `json:"key_questions"`
		Strategies   []struct {
			Method   string   `json:"method"`
			Sources  []string `json:"sources"`
			Keywords []string `json:"keywords"`
		} `json:"strategies"`
	}
	if err := llm.DecodeJSON(text, &parsed); err != nil {
		return nil, evidence, fmt.Errorf("research_plan: %w", err)
	}
	if len(parsed.Objectives) == 0 {
		return nil, evidence, fmt.Errorf("research_plan: model returned no objectives")
	}

	strategies := make([]map[string]any, 0, len(parsed.Strategies))
	for _, s := range parsed.Strategies {
		strategies = append(strategies, map[string]any{
			"method":   s.Method,
			"sources":  s.Sources,
			"keywords": s.Keywords,
		})
	}
	return map[string]any{
		"objectives":    parsed.Objectives,
		"deliverables":  parsed.Deliverables,
		"key_questions": parsed.KeyQuestions,
		"strategies":    strategies,
	}, evidence, nil
}

// submitSearches fans out subtopic × provider search operations in
// deterministic order: subtopic index asc, provider name asc. EnabledProviders
// returns sorted names.
func (o *Orchestrator) submitSearches(ctx context.Context, task *ent.ResearchTask,
	subtopics []subtopic, collector *searchCollector, deadline time.Time) ([]*coordinator.Handle, error) {

	providers := o.gw.EnabledProviders()
	var handles []*coordinator.Handle
	for idx, st := range subtopics {
		for _, provider := range providers {
			idx, st, provider := idx, st, provider
			h, err := o.coord.Submit(ctx, "search", coordinator.OpSpec{
				TaskID:        task.ID,
				OperationType: "mcp_search",
				AgentType:     provider,
				InputData: map[string]any{
					"subtopic": st.Title,
					"query":    st.Query,
					"provider": provider,
				},
				Meta: map[string]any{"subtopic_index": idx},
				Fn: func(opCtx context.Context) (map[string]any, []ledger.EvidenceInput, error) {
					return o.searchSubtopic(opCtx, task.ID, provider, st, idx, collector)
				},
			}, coordinator.SubmitOptions{Priority: 5, Deadline: deadline})
			if err != nil {
				return handles, err
			}
			handles = append(handles, h)
		}
	}
	return handles, nil
}

// searchSubtopic runs one provider search, fetches result content best
// effort, and records deduplicated sources.
func (o *Orchestrator) searchSubtopic(ctx context.Context, taskID, provider string,
	st subtopic, subtopicIdx int, collector *searchCollector) (map[string]any, []ledger.EvidenceInput, error) {

	res := o.gw.Search(ctx, provider, st.Query, gateway.SearchOptions{})
	switch res.Status {
	case gateway.StatusOK:
	case gateway.StatusTransient:
		return nil, nil, coordinator.Transient(fmt.Errorf("search %s: %w", provider, res.Err))
	case gateway.StatusDegraded:
		return nil, nil, degraded(fmt.Errorf("provider %s degraded: %s", provider, res.Reason))
	default:
		return nil, nil, fmt.Errorf("search %s: %w", provider, res.Err)
	}

	urls := make([]string, 0, len(res.Value))
	recorded := 0
	for _, hit := range res.Value {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		urls = append(urls, hit.URL)

		content := hit.Description
		if doc := o.gw.Fetch(ctx, hit.URL); doc.OK() {
			content = doc.Value.Content
		}

		src, err := o.svc.Sources.RecordObservation(ctx, services.ObservedSource{
			URL:         hit.URL,
			Title:       hit.Title,
			Description: hit.Description,
			Provider:    provider,
			Content:     content,
		})
		if err != nil {
			o.logger.Warn("failed to record source",
				"task_id", taskID, "url", hit.URL, "error", err)
			continue
		}
		collector.add(src, content, subtopicIdx, st.Title)
		recorded++
	}

	evidence := []ledger.EvidenceInput{{
		Type:     "search_results",
		Provider: provider,
		Data: map[string]any{
			"query":   st.Query,
			"results": urls,
		},
	}}
	return map[string]any{"results": len(res.Value), "sources": recorded}, evidence, nil
}

// submitSummaries fans out one summarization op per (source, subtopic) pair.
func (o *Orchestrator) submitSummaries(ctx context.Context, task *ent.ResearchTask,
	pairs []summarizePair, deadline time.Time) ([]*coordinator.Handle, error) {

	var handles []*coordinator.Handle
	for _, pair := range pairs {
		pair := pair
		h, err := o.coord.Submit(ctx, "llm", coordinator.OpSpec{
			TaskID:        task.ID,
			OperationType: "summarize_source",
			AgentType:     "task",
			InputData: map[string]any{
				"source_id": pair.source.ID,
				"url":       pair.source.URL,
				"subtopic":  pair.subtopic,
			},
			Meta: map[string]any{"subtopic_index": pair.subtopicIdx},
			Fn: func(opCtx context.Context) (map[string]any, []ledger.EvidenceInput, error) {
				summary, evidence, err := o.engine.SummarizeSource(opCtx, task.ID,
					pair.source, pair.content, pair.subtopic)
				if err != nil {
					return nil, evidence, err
				}
				return map[string]any{"summary_id": summary.ID}, evidence, nil
			},
		}, coordinator.SubmitOptions{Priority: 5, Deadline: deadline})
		if err != nil {
			return handles, err
		}
		handles = append(handles, h)
	}
	return handles, nil
}

// runSynthesisChain submits the four synthesis stages as a dependency chain
// so a permanent failure upstream marks every later stage dependency_failed
// without dispatch, then narrates them phase by phase.
func (o *Orchestrator) runSynthesisChain(ctx context.Context, task *ent.ResearchTask) error {
	var reportMarkdown string

	tree, err := o.coord.Submit(ctx, "synthesis", coordinator.OpSpec{
		TaskID:        task.ID,
		OperationType: "build_knowledge_tree",
		AgentType:     "reasoning",
		Fn: func(opCtx context.Context) (map[string]any, []ledger.EvidenceInput, error) {
			summaries, err := o.svc.DOK.ListSummaries(opCtx, task.ID)
			if err != nil {
				return nil, nil, err
			}
			return o.engine.BuildKnowledgeTree(opCtx, task.ID, summaries)
		},
	}, coordinator.SubmitOptions{Priority: 10})
	if err != nil {
		return err
	}

	insights, err := o.coord.Submit(ctx, "synthesis", coordinator.OpSpec{
		TaskID:        task.ID,
		OperationType: "generate_insights",
		AgentType:     "reasoning",
		Fn: func(opCtx context.Context) (map[string]any, []ledger.EvidenceInput, error) {
			summaries, err := o.svc.DOK.ListSummaries(opCtx, task.ID)
			if err != nil {
				return nil, nil, err
			}
			if len(summaries) == 0 {
				return map[string]any{"insights": 0}, nil, nil
			}
			return o.engine.GenerateInsights(opCtx, task.ID, summaries)
		},
	}, coordinator.SubmitOptions{Priority: 10, DependsOn: []*coordinator.Handle{tree}})
	if err != nil {
		return err
	}

	povs, err := o.coord.Submit(ctx, "synthesis", coordinator.OpSpec{
		TaskID:        task.ID,
		OperationType: "spiky_pov",
		AgentType:     "reasoning",
		Fn: func(opCtx context.Context) (map[string]any, []ledger.EvidenceInput, error) {
			return o.engine.GenerateSpikyPOVs(opCtx, task.ID)
		},
	}, coordinator.SubmitOptions{Priority: 10, DependsOn: []*coordinator.Handle{insights}})
	if err != nil {
		return err
	}

	report, err := o.coord.Submit(ctx, "synthesis", coordinator.OpSpec{
		TaskID:        task.ID,
		OperationType: "synthesize_report",
		AgentType:     "reasoning",
		Fn: func(opCtx context.Context) (map[string]any, []ledger.EvidenceInput, error) {
			summaries, err := o.svc.DOK.ListSummaries(opCtx, task.ID)
			if err != nil {
				return nil, nil, err
			}
			markdown, evidence, err := o.engine.SynthesizeReport(opCtx, task, summaries)
			if err != nil {
				return nil, evidence, err
			}
			if err := o.svc.Tasks.SaveReport(opCtx, task.ID, markdown); err != nil {
				return nil, evidence, err
			}
			reportMarkdown = markdown
			return map[string]any{"report_bytes": len(markdown)}, evidence, nil
		},
	}, coordinator.SubmitOptions{Priority: 10, DependsOn: []*coordinator.Handle{povs}})
	if err != nil {
		return err
	}

	stages := []struct {
		status researchtask.Status
		phase  string
		handle *coordinator.Handle
	}{
		{researchtask.StatusBuildingKnowledge, "tree", tree},
		{researchtask.StatusGeneratingInsights, "insights", insights},
		{researchtask.StatusAnalyzingPovs, "povs", povs},
		{researchtask.StatusSynthesizing, "report", report},
	}
	for _, stage := range stages {
		if err := o.transition(task, stage.status); err != nil {
			return err
		}
		o.publishPhase(task, events.PhaseStatusPayload{
			TaskID: task.ID,
			Phase:  stage.phase,
			Status: events.PhaseStatusStarted,
		})
		if _, err := o.awaitPhase(ctx, task, stage.phase, 1.0, time.Now(),
			[]*coordinator.Handle{stage.handle}); err != nil {
			return err
		}
	}

	if o.artifacts != nil && reportMarkdown != "" {
		if _, err := o.artifacts.Put(context.Background(), task.ID,
			"report_md", "md", "text/markdown", []byte(reportMarkdown)); err != nil {
			o.logger.Warn("failed to store report artifact",
				"task_id", task.ID, "error", err)
		}
	}
	return nil
}
