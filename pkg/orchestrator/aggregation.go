package orchestrator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/trilogy-group/nexus-agents/ent"
	"github.com/trilogy-group/nexus-agents/ent/researchtask"
	"github.com/trilogy-group/nexus-agents/pkg/config"
	"github.com/trilogy-group/nexus-agents/pkg/coordinator"
	"github.com/trilogy-group/nexus-agents/pkg/entity"
	"github.com/trilogy-group/nexus-agents/pkg/export"
	"github.com/trilogy-group/nexus-agents/pkg/gateway"
	"github.com/trilogy-group/nexus-agents/pkg/ledger"
	"github.com/trilogy-group/nexus-agents/pkg/llm"
	"github.com/trilogy-group/nexus-agents/pkg/models"
	"github.com/trilogy-group/nexus-agents/pkg/services"
)

// parseAggregationConfig validates a stored aggregation_config. Creation
// rejects malformed configs, so a failure here is a row written outside the
// service layer and fails the task as an invariant violation.
func parseAggregationConfig(raw map[string]any) (*models.AggregationConfig, error) {
	cfg, err := models.ParseAggregationConfig(raw)
	if err != nil {
		return nil, services.NewValidationError("data_aggregation_config", err.Error())
	}
	return cfg, nil
}

// aggHit is one search result retained for entity extraction.
type aggHit struct {
	URL     string
	Title   string
	Content string
}

// aggCollector accumulates per-subspace search hits and extracted candidates
// across concurrent operations.
type aggCollector struct {
	mu         sync.Mutex
	hits       map[int][]aggHit // subspace index -> hits
	seen       map[int]map[string]struct{}
	candidates []entity.Candidate
}

func newAggCollector() *aggCollector {
	return &aggCollector{
		hits: make(map[int][]aggHit),
		seen: make(map[int]map[string]struct{}),
	}
}

func (c *aggCollector) addHit(subspaceIdx int, hit aggHit) {
	c.mu.Lock()
	defer c.mu.Unlock()
	urls, ok := c.seen[subspaceIdx]
	if !ok {
		urls = make(map[string]struct{})
		c.seen[subspaceIdx] = urls
	}
	if _, dup := urls[hit.URL]; dup {
		return
	}
	urls[hit.URL] = struct{}{}
	c.hits[subspaceIdx] = append(c.hits[subspaceIdx], hit)
}

func (c *aggCollector) hitsFor(subspaceIdx int) []aggHit {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits[subspaceIdx]
}

func (c *aggCollector) addCandidates(cands []entity.Candidate) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.candidates = append(c.candidates, cands...)
}

func (c *aggCollector) allCandidates() []entity.Candidate {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]entity.Candidate, len(c.candidates))
	copy(out, c.candidates)
	return out
}

// runAggregation executes the data-aggregation pipeline: search-space
// enumeration, per-subspace search fan-out, entity extraction, resolution into
// the target scope, then CSV/XLSX export.
func (o *Orchestrator) runAggregation(ctx context.Context, task *ent.ResearchTask) error {
	aggCfg, err := parseAggregationConfig(task.AggregationConfig)
	if err != nil {
		return err
	}
	entityType := aggCfg.EntityType()

	// Phase 1: search-space enumeration. A caller-pre-split search space
	// skips the LLM call but still passes through the planning phase for a
	// uniform event stream.
	if err := o.transition(task, researchtask.StatusPlanning); err != nil {
		return err
	}
	subspaces := aggCfg.SearchSpace.Subspaces
	_, err = o.runPhase(ctx, task, "planning", 1.0, func(deadline time.Time) ([]*coordinator.Handle, error) {
		h, err := o.coord.Submit(ctx, "llm", coordinator.OpSpec{
			TaskID:        task.ID,
			OperationType: "search_space_enumeration",
			AgentType:     "reasoning",
			InputData:     map[string]any{"entity_type": entityType, "provided": len(subspaces)},
			Fn: func(opCtx context.Context) (map[string]any, []ledger.EvidenceInput, error) {
				if len(subspaces) > 0 {
					return map[string]any{"subspaces": len(subspaces), "enumerated": false}, nil, nil
				}
				enumerated, evidence, err := o.enumerateSearchSpace(opCtx, task, aggCfg)
				if err != nil {
					return nil, evidence, err
				}
				subspaces = enumerated
				return map[string]any{"subspaces": len(enumerated), "enumerated": true}, evidence, nil
			},
		}, coordinator.SubmitOptions{Priority: 10, Deadline: deadline})
		if err != nil {
			return nil, err
		}
		return []*coordinator.Handle{h}, nil
	})
	if err != nil {
		return err
	}

	// Phase 2: search fan-out, subspace × provider.
	if err := o.transition(task, researchtask.StatusSearching); err != nil {
		return err
	}
	collector := newAggCollector()
	_, err = o.runPhase(ctx, task, "search", o.cfg.MinSuccessRatioFanOut,
		func(deadline time.Time) ([]*coordinator.Handle, error) {
			return o.submitSubspaceSearches(ctx, task, aggCfg, subspaces, collector, deadline)
		})
	if err != nil {
		return err
	}

	// Phase 3: entity extraction, one op per subspace.
	if err := o.transition(task, researchtask.StatusSummarizing); err != nil {
		return err
	}
	_, err = o.runPhase(ctx, task, "extract", o.cfg.MinSuccessRatioFanOut,
		func(deadline time.Time) ([]*coordinator.Handle, error) {
			return o.submitExtractions(ctx, task, aggCfg, subspaces, collector, deadline)
		})
	if err != nil {
		return err
	}

	// Phases 4+5: resolution then export, sequential on the synthesis queue.
	if err := o.transition(task, researchtask.StatusSynthesizing); err != nil {
		return err
	}
	scope := task.ID
	if pid := taskProject(task); pid != "" {
		scope = pid
	}
	_, err = o.runPhase(ctx, task, "consolidate", 1.0, func(deadline time.Time) ([]*coordinator.Handle, error) {
		h, err := o.coord.Submit(ctx, "synthesis", coordinator.OpSpec{
			TaskID:        task.ID,
			OperationType: "resolve_entities",
			AgentType:     "task",
			InputData:     map[string]any{"scope_id": scope, "entity_type": entityType},
			Fn: func(opCtx context.Context) (map[string]any, []ledger.EvidenceInput, error) {
				return o.resolveEntities(opCtx, scope, entityType, aggCfg.DomainHint, collector.allCandidates())
			},
		}, coordinator.SubmitOptions{Priority: 10, Deadline: deadline})
		if err != nil {
			return nil, err
		}
		return []*coordinator.Handle{h}, nil
	})
	if err != nil {
		return err
	}

	_, err = o.runPhase(ctx, task, "export", 1.0, func(deadline time.Time) ([]*coordinator.Handle, error) {
		h, err := o.coord.Submit(ctx, "synthesis", coordinator.OpSpec{
			TaskID:        task.ID,
			OperationType: "export_csv",
			AgentType:     "task",
			InputData:     map[string]any{"scope_id": scope, "entity_type": entityType},
			Fn: func(opCtx context.Context) (map[string]any, []ledger.EvidenceInput, error) {
				return o.exportEntities(opCtx, task.ID, scope, entityType)
			},
		}, coordinator.SubmitOptions{Priority: 10, Deadline: deadline})
		if err != nil {
			return nil, err
		}
		return []*coordinator.Handle{h}, nil
	})
	return err
}

// enumerateSearchSpace asks the reasoning model to partition the search into
// subspaces wide enough to cover the entity population.
func (o *Orchestrator) enumerateSearchSpace(ctx context.Context, task *ent.ResearchTask,
	aggCfg *models.AggregationConfig) ([]string, []ledger.EvidenceInput, error) {

	res := o.gw.Complete(ctx, &llm.GenerateInput{
		TaskID:     task.ID,
		Role:       config.ModelRoleReasoning,
		JSONOutput: true,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: enumerateSystemPrompt},
			{Role: llm.RoleUser, Content: enumerateUserPrompt(task.ResearchQuery, aggCfg)},
		},
	})
	text, err := o.completionText(res)
	if err != nil {
		return nil, nil, err
	}
	evidence := []ledger.EvidenceInput{llmEvidence("search_space_enumeration", text)}

	var parsed struct {
		Subspaces []string `json:"subspaces"`
	}
	if err := llm.DecodeJSON(text, &parsed); err != nil {
		return nil, evidence, fmt.Errorf("search_space_enumeration: %w", err)
	}
	var out []string
	for _, s := range parsed.Subspaces {
		if s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil, evidence, fmt.Errorf("search_space_enumeration: model returned no subspaces")
	}
	return out, evidence, nil
}

// submitSubspaceSearches fans out subspace × provider search operations in
// deterministic order.
func (o *Orchestrator) submitSubspaceSearches(ctx context.Context, task *ent.ResearchTask,
	aggCfg *models.AggregationConfig, subspaces []string, collector *aggCollector,
	deadline time.Time) ([]*coordinator.Handle, error) {

	entityType := aggCfg.EntityType()
	providers := o.gw.EnabledProviders()
	var handles []*coordinator.Handle
	for idx, subspace := range subspaces {
		for _, provider := range providers {
			idx, subspace, provider := idx, subspace, provider
			query := fmt.Sprintf("%s %s", entityType, subspace)
			h, err := o.coord.Submit(ctx, "search", coordinator.OpSpec{
				TaskID:        task.ID,
				OperationType: "mcp_search",
				AgentType:     provider,
				InputData: map[string]any{
					"subspace": subspace,
					"query":    query,
					"provider": provider,
				},
				Meta: map[string]any{"subspace_index": idx},
				Fn: func(opCtx context.Context) (map[string]any, []ledger.EvidenceInput, error) {
					return o.searchSubspace(opCtx, task.ID, provider, query, idx, collector)
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

func (o *Orchestrator) searchSubspace(ctx context.Context, taskID, provider, query string,
	subspaceIdx int, collector *aggCollector) (map[string]any, []ledger.EvidenceInput, error) {

	res := o.gw.Search(ctx, provider, query, gateway.SearchOptions{})
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
	for _, hit := range res.Value {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		urls = append(urls, hit.URL)

		content := hit.Description
		if doc := o.gw.Fetch(ctx, hit.URL); doc.OK() {
			content = doc.Value.Content
		}
		if _, err := o.svc.Sources.RecordObservation(ctx, services.ObservedSource{
			URL:         hit.URL,
			Title:       hit.Title,
			Description: hit.Description,
			Provider:    provider,
			Content:     content,
		}); err != nil {
			o.logger.Warn("failed to record source",
				"task_id", taskID, "url", hit.URL, "error", err)
		}
		collector.addHit(subspaceIdx, aggHit{URL: hit.URL, Title: hit.Title, Content: content})
	}

	evidence := []ledger.EvidenceInput{{
		Type:     "search_results",
		Provider: provider,
		Data: map[string]any{
			"query":   query,
			"results": urls,
		},
	}}
	return map[string]any{"results": len(res.Value)}, evidence, nil
}

// submitExtractions fans out one extraction op per subspace.
func (o *Orchestrator) submitExtractions(ctx context.Context, task *ent.ResearchTask,
	aggCfg *models.AggregationConfig, subspaces []string, collector *aggCollector,
	deadline time.Time) ([]*coordinator.Handle, error) {

	var handles []*coordinator.Handle
	for idx, subspace := range subspaces {
		idx, subspace := idx, subspace
		h, err := o.coord.Submit(ctx, "llm", coordinator.OpSpec{
			TaskID:        task.ID,
			OperationType: "extract_entities",
			AgentType:     "task",
			InputData:     map[string]any{"subspace": subspace},
			Meta:          map[string]any{"subspace_index": idx},
			Fn: func(opCtx context.Context) (map[string]any, []ledger.EvidenceInput, error) {
				return o.extractEntities(opCtx, task, aggCfg, subspace, collector.hitsFor(idx), collector)
			},
		}, coordinator.SubmitOptions{Priority: 5, Deadline: deadline})
		if err != nil {
			return handles, err
		}
		handles = append(handles, h)
	}
	return handles, nil
}

// extractEntities runs one subspace's hit set through the extraction prompt
// and collects the resulting candidates. A subspace with no hits completes
// without an LLM call.
func (o *Orchestrator) extractEntities(ctx context.Context, task *ent.ResearchTask,
	aggCfg *models.AggregationConfig, subspace string, hits []aggHit,
	collector *aggCollector) (map[string]any, []ledger.EvidenceInput, error) {

	if len(hits) == 0 {
		return map[string]any{"candidates": 0}, nil, nil
	}

	res := o.gw.Complete(ctx, &llm.GenerateInput{
		TaskID:     task.ID,
		Role:       config.ModelRoleTask,
		JSONOutput: true,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: extractSystemPrompt},
			{Role: llm.RoleUser, Content: extractUserPrompt(aggCfg, subspace, hits)},
		},
	})
	text, err := o.completionText(res)
	if err != nil {
		return nil, nil, err
	}
	evidence := []ledger.EvidenceInput{llmEvidence("extract_entities", text)}

	var parsed struct {
		Entities []struct {
			Name             string            `json:"name"`
			UniqueIdentifier string            `json:"unique_identifier"`
			Attributes       map[string]string `json:"attributes"`
			Confidence       float64           `json:"confidence"`
			SourceURL        string            `json:"source_url"`
		} `json:"entities"`
	}
	if err := llm.DecodeJSON(text, &parsed); err != nil {
		return nil, evidence, fmt.Errorf("extract_entities: %w", err)
	}

	now := time.Now()
	var cands []entity.Candidate
	for _, e := range parsed.Entities {
		if e.Name == "" {
			continue
		}
		conf := e.Confidence
		if conf <= 0 {
			conf = 0.5
		} else if conf > 1 {
			conf = 1
		}
		cands = append(cands, entity.Candidate{
			Name:             e.Name,
			UniqueIdentifier: e.UniqueIdentifier,
			Attributes:       e.Attributes,
			Confidence:       conf,
			SourceURL:        e.SourceURL,
			TaskID:           task.ID,
			ObservedAt:       now,
		})
	}
	collector.addCandidates(cands)
	return map[string]any{"candidates": len(cands)}, evidence, nil
}

// resolveEntities consolidates the collected candidates and upserts them into
// the target scope. A domain hint that matches a registered matcher swaps in
// domain-aware identity comparison.
func (o *Orchestrator) resolveEntities(ctx context.Context, scope, entityType, domainHint string,
	candidates []entity.Candidate) (map[string]any, []ledger.EvidenceInput, error) {

	resolved := entity.Resolve(candidates, entity.MatcherFor(domainHint), time.Now())
	for _, r := range resolved {
		if _, err := o.svc.Entities.UpsertResolved(ctx, scope, entityType, r); err != nil {
			return nil, nil, fmt.Errorf("upsert entity %q: %w", r.Name, err)
		}
	}
	return map[string]any{
		"candidates": len(candidates),
		"entities":   len(resolved),
	}, nil, nil
}

// exportEntities renders the scope's consolidated entities as CSV and XLSX
// artifacts.
func (o *Orchestrator) exportEntities(ctx context.Context, taskID, scope,
	entityType string) (map[string]any, []ledger.EvidenceInput, error) {

	entities, err := o.svc.Entities.ListEntities(ctx, scope, entityType)
	if err != nil {
		return nil, nil, err
	}

	csvData, err := export.CSV(entities)
	if err != nil {
		return nil, nil, err
	}
	xlsxData, err := export.XLSX(entities)
	if err != nil {
		return nil, nil, err
	}

	out := map[string]any{"rows": len(entities)}
	if o.artifacts != nil {
		csvArt, err := o.artifacts.Put(ctx, taskID, "export_csv", "csv", "text/csv", csvData)
		if err != nil {
			return nil, nil, err
		}
		xlsxArt, err := o.artifacts.Put(ctx, taskID, "export_xlsx", "xlsx",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", xlsxData)
		if err != nil {
			return nil, nil, err
		}
		out["csv_artifact"] = csvArt.ID
		out["xlsx_artifact"] = xlsxArt.ID
	}
	return out, nil, nil
}

// ConsolidateProject re-merges task-scoped entities from the project's
// aggregation tasks into the project scope. Tasks that already wrote to the
// project scope contribute nothing new, which keeps the call idempotent.
func (o *Orchestrator) ConsolidateProject(ctx context.Context, projectID string) (int, error) {
	tasks, err := o.svc.Projects.ListAggregationTasks(ctx, projectID)
	if err != nil {
		return 0, err
	}

	// Candidates grouped per entity type so types never cross-merge.
	byType := make(map[string][]entity.Candidate)
	hints := make(map[string]string)
	for _, task := range tasks {
		aggCfg, err := parseAggregationConfig(task.AggregationConfig)
		if err != nil {
			o.logger.Warn("skipping task with invalid aggregation config",
				"task_id", task.ID, "error", err)
			continue
		}
		entityType := aggCfg.EntityType()
		rows, err := o.svc.Entities.ListEntities(ctx, task.ID, entityType)
		if err != nil {
			return 0, err
		}
		for _, row := range rows {
			byType[entityType] = append(byType[entityType], rowCandidate(row, task.ID))
		}
		if _, ok := hints[entityType]; !ok {
			hints[entityType] = aggCfg.DomainHint
		}
	}

	total := 0
	for entityType, candidates := range byType {
		resolved := entity.Resolve(candidates, entity.MatcherFor(hints[entityType]), time.Now())
		for _, r := range resolved {
			if _, err := o.svc.Entities.UpsertResolved(ctx, projectID, entityType, r); err != nil {
				return total, fmt.Errorf("upsert entity %q: %w", r.Name, err)
			}
			total++
		}
	}
	o.logger.Info("project consolidated",
		"project_id", projectID, "tasks", len(tasks), "entities", total)
	return total, nil
}

// rowCandidate converts a stored task-scoped entity back into a resolution
// candidate for project-level consolidation.
func rowCandidate(row *ent.AggregatedEntity, taskID string) entity.Candidate {
	attrs := make(map[string]string, len(row.ConsolidatedAttributes))
	for k, v := range row.ConsolidatedAttributes {
		if s, ok := v.(string); ok {
			attrs[k] = s
		} else {
			attrs[k] = fmt.Sprintf("%v", v)
		}
	}
	return entity.Candidate{
		Name:             row.Name,
		UniqueIdentifier: row.UniqueIdentifier,
		Attributes:       attrs,
		Confidence:       row.ConfidenceScore,
		TaskID:           taskID,
		ObservedAt:       row.UpdatedAt,
	}
}
