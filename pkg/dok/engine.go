// Package dok is the synthesis engine for the Depth-of-Knowledge taxonomy:
// per-source summaries with atomic facts (DOK-1), a categorized knowledge
// forest (DOK-2), synthesized insights (DOK-3), and contrarian spiky POVs
// (DOK-4), plus the final report assembly. Every stage is one LLM call with
// a structured-output contract; persistence goes through the DOK service.
package dok

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/trilogy-group/nexus-agents/ent"
	"github.com/trilogy-group/nexus-agents/pkg/config"
	"github.com/trilogy-group/nexus-agents/pkg/coordinator"
	"github.com/trilogy-group/nexus-agents/pkg/gateway"
	"github.com/trilogy-group/nexus-agents/pkg/ledger"
	"github.com/trilogy-group/nexus-agents/pkg/llm"
	"github.com/trilogy-group/nexus-agents/pkg/services"
)

// Completer is the LLM surface the engine calls. Satisfied by
// *gateway.Gateway.
type Completer interface {
	Complete(ctx context.Context, input *llm.GenerateInput) gateway.Result[*llm.Completion]
}

// Engine runs the synthesis stages for one or more tasks. Stateless apart
// from its dependencies; safe for concurrent use.
type Engine struct {
	completer Completer
	dok       *services.DOKService
	cfg       *config.PipelineConfig
	logger    *slog.Logger
}

// NewEngine wires the synthesis engine.
func NewEngine(completer Completer, dokService *services.DOKService, cfg *config.PipelineConfig, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		completer: completer,
		dok:       dokService,
		cfg:       cfg,
		logger:    logger.With("component", "dok"),
	}
}

// completionText unwraps a gateway completion result into text, translating
// the discriminated outcome into the coordinator's retry classification.
func completionText(res gateway.Result[*llm.Completion]) (string, error) {
	switch res.Status {
	case gateway.StatusOK:
		return res.Value.Text, nil
	case gateway.StatusTransient:
		return "", coordinator.Transient(fmt.Errorf("llm call: %w", res.Err))
	case gateway.StatusDegraded:
		return "", fmt.Errorf("llm unavailable: %s", res.Reason)
	default:
		return "", fmt.Errorf("llm call: %w", res.Err)
	}
}

// llmEvidence captures the raw model output for the operation ledger.
func llmEvidence(stage, text string) ledger.EvidenceInput {
	return ledger.EvidenceInput{
		Type: "llm_response",
		Data: map[string]any{"stage": stage, "response": text},
	}
}

// truncate bounds a string at n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := []byte(s)[:n]
	for len(cut) > 0 && cut[len(cut)-1]&0xC0 == 0x80 {
		cut = cut[:len(cut)-1]
	}
	return string(cut)
}

// clamp01 bounds a model-reported confidence to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// SummarizeSource produces the DOK-1 summary for one source within one
// subtopic: a self-contained paragraph plus atomic source-grounded facts.
func (e *Engine) SummarizeSource(ctx context.Context, taskID string, src *ent.Source, content, subtopic string) (*ent.SourceSummary, []ledger.EvidenceInput, error) {
	res := e.completer.Complete(ctx, &llm.GenerateInput{
		TaskID:     taskID,
		Role:       config.ModelRoleTask,
		JSONOutput: true,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: summarizeSystemPrompt},
			{Role: llm.RoleUser, Content: summarizeUserPrompt(src, content, subtopic)},
		},
	})
	text, err := completionText(res)
	if err != nil {
		return nil, nil, err
	}
	evidence := []ledger.EvidenceInput{llmEvidence("summarize_source", text)}

	var parsed struct {
		Summary string   `json:"summary"`
		Facts   []string `json:"facts"`
	}
	if err := llm.DecodeJSON(text, &parsed); err != nil {
		return nil, evidence, fmt.Errorf("summarize_source: %w", err)
	}
	if parsed.Summary == "" {
		return nil, evidence, fmt.Errorf("summarize_source: model returned no summary")
	}

	facts := make([]string, 0, len(parsed.Facts))
	for _, f := range parsed.Facts {
		if f == "" {
			continue
		}
		facts = append(facts, truncate(f, e.cfg.MaxFactLength))
	}

	summary, err := e.dok.RecordSummary(ctx, services.RecordSummaryInput{
		TaskID:    taskID,
		SourceID:  src.ID,
		Subtopic:  subtopic,
		Summary:   parsed.Summary,
		DOK1Facts: facts,
		DOKLevel:  1,
	})
	if err != nil {
		return nil, evidence, err
	}
	return summary, evidence, nil
}

// treeCategory is the structured-output contract for one knowledge category.
type treeCategory struct {
	Category string `json:"category"`
	Summary  string `json:"summary"`
	Children []struct {
		Subcategory string `json:"subcategory"`
		Summary     string `json:"summary"`
		Sources     []struct {
			SourceID  string  `json:"source_id"`
			Relevance float64 `json:"relevance"`
		} `json:"sources"`
	} `json:"children"`
}

// BuildKnowledgeTree clusters the task's summaries into a two-level forest
// (DOK-2). Leaves link back to sources with a relevance score; references to
// unknown sources are dropped rather than failing the phase.
func (e *Engine) BuildKnowledgeTree(ctx context.Context, taskID string, summaries []*ent.SourceSummary) (map[string]any, []ledger.EvidenceInput, error) {
	if len(summaries) == 0 {
		return map[string]any{"nodes": 0}, nil, nil
	}

	res := e.completer.Complete(ctx, &llm.GenerateInput{
		TaskID:     taskID,
		Role:       config.ModelRoleReasoning,
		JSONOutput: true,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: treeSystemPrompt},
			{Role: llm.RoleUser, Content: treeUserPrompt(summaries)},
		},
	})
	text, err := completionText(res)
	if err != nil {
		return nil, nil, err
	}
	evidence := []ledger.EvidenceInput{llmEvidence("build_knowledge_tree", text)}

	var parsed struct {
		Categories []treeCategory `json:"categories"`
	}
	if err := llm.DecodeJSON(text, &parsed); err != nil {
		return nil, evidence, fmt.Errorf("build_knowledge_tree: %w", err)
	}
	if len(parsed.Categories) == 0 {
		return nil, evidence, fmt.Errorf("build_knowledge_tree: model returned no categories")
	}

	known := make(map[string]bool, len(summaries))
	for _, s := range summaries {
		known[s.SourceID] = true
	}

	nodes, links := 0, 0
	for ci, cat := range parsed.Categories {
		if cat.Category == "" {
			continue
		}
		root, err := e.dok.CreateKnowledgeNode(ctx, services.CreateNodeInput{
			TaskID:   taskID,
			Category: cat.Category,
			Summary:  cat.Summary,
			DOKLevel: 2,
			Position: ci,
		})
		if err != nil {
			return nil, evidence, err
		}
		nodes++

		for li, leaf := range cat.Children {
			if leaf.Subcategory == "" && leaf.Summary == "" {
				continue
			}
			node, err := e.dok.CreateKnowledgeNode(ctx, services.CreateNodeInput{
				TaskID:      taskID,
				ParentID:    root.ID,
				Category:    cat.Category,
				Subcategory: leaf.Subcategory,
				Summary:     leaf.Summary,
				DOKLevel:    2,
				Position:    li,
			})
			if err != nil {
				return nil, evidence, err
			}
			nodes++

			for _, ref := range leaf.Sources {
				if !known[ref.SourceID] {
					e.logger.Warn("knowledge tree cites unknown source, dropping link",
						"task_id", taskID, "source_id", ref.SourceID)
					continue
				}
				if err := e.dok.LinkNodeSource(ctx, node.ID, ref.SourceID, clamp01(ref.Relevance)); err != nil {
					return nil, evidence, err
				}
				links++
			}
		}
	}
	if nodes == 0 {
		return nil, evidence, fmt.Errorf("build_knowledge_tree: no usable categories in model output")
	}

	return map[string]any{"nodes": nodes, "source_links": links}, evidence, nil
}

// GenerateInsights synthesizes DOK-3 insights over the knowledge tree. Every
// stored insight cites at least one known source; insights citing none are
// dropped.
func (e *Engine) GenerateInsights(ctx context.Context, taskID string, summaries []*ent.SourceSummary) (map[string]any, []ledger.EvidenceInput, error) {
	tree, err := e.dok.GetKnowledgeTree(ctx, taskID)
	if err != nil {
		return nil, nil, err
	}

	res := e.completer.Complete(ctx, &llm.GenerateInput{
		TaskID:     taskID,
		Role:       config.ModelRoleReasoning,
		JSONOutput: true,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: insightsSystemPrompt},
			{Role: llm.RoleUser, Content: insightsUserPrompt(tree, summaries)},
		},
	})
	text, err := completionText(res)
	if err != nil {
		return nil, nil, err
	}
	evidence := []ledger.EvidenceInput{llmEvidence("generate_insights", text)}

	var parsed struct {
		Insights []struct {
			Category   string   `json:"category"`
			Insight    string   `json:"insight"`
			Confidence float64  `json:"confidence"`
			SourceIDs  []string `json:"source_ids"`
		} `json:"insights"`
	}
	if err := llm.DecodeJSON(text, &parsed); err != nil {
		return nil, evidence, fmt.Errorf("generate_insights: %w", err)
	}

	known := make(map[string]bool, len(summaries))
	for _, s := range summaries {
		known[s.SourceID] = true
	}

	created := 0
	for i, in := range parsed.Insights {
		if in.Insight == "" {
			continue
		}
		var sourceIDs []string
		for _, id := range in.SourceIDs {
			if known[id] {
				sourceIDs = append(sourceIDs, id)
			}
		}
		if len(sourceIDs) == 0 {
			e.logger.Warn("insight cites no known sources, dropping",
				"task_id", taskID, "category", in.Category)
			continue
		}
		if _, err := e.dok.CreateInsight(ctx, services.CreateInsightInput{
			TaskID:          taskID,
			Category:        in.Category,
			InsightText:     in.Insight,
			ConfidenceScore: clamp01(in.Confidence),
			SourceIDs:       sourceIDs,
			Position:        i,
		}); err != nil {
			return nil, evidence, err
		}
		created++
	}
	if created == 0 && len(summaries) > 0 {
		return nil, evidence, fmt.Errorf("generate_insights: no grounded insights in model output")
	}

	return map[string]any{"insights": created}, evidence, nil
}

// GenerateSpikyPOVs produces DOK-4 contrarian claims partitioned into truths
// and myths, each citing at least one insight.
func (e *Engine) GenerateSpikyPOVs(ctx context.Context, taskID string) (map[string]any, []ledger.EvidenceInput, error) {
	insights, err := e.dok.ListInsights(ctx, taskID)
	if err != nil {
		return nil, nil, err
	}
	if len(insights) == 0 {
		return map[string]any{"truths": 0, "myths": 0}, nil, nil
	}

	res := e.completer.Complete(ctx, &llm.GenerateInput{
		TaskID:     taskID,
		Role:       config.ModelRoleReasoning,
		JSONOutput: true,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: povSystemPrompt},
			{Role: llm.RoleUser, Content: povUserPrompt(insights)},
		},
	})
	text, err := completionText(res)
	if err != nil {
		return nil, nil, err
	}
	evidence := []ledger.EvidenceInput{llmEvidence("spiky_pov", text)}

	type povItem struct {
		Statement  string   `json:"statement"`
		Reasoning  string   `json:"reasoning"`
		InsightIDs []string `json:"insight_ids"`
	}
	var parsed struct {
		Truths []povItem `json:"truths"`
		Myths  []povItem `json:"myths"`
	}
	if err := llm.DecodeJSON(text, &parsed); err != nil {
		return nil, evidence, fmt.Errorf("spiky_pov: %w", err)
	}

	known := make(map[string]bool, len(insights))
	for _, in := range insights {
		known[in.ID] = true
	}

	store := func(kind string, items []povItem) (int, error) {
		created := 0
		for i, p := range items {
			if p.Statement == "" {
				continue
			}
			var ids []string
			for _, id := range p.InsightIDs {
				if known[id] {
					ids = append(ids, id)
				}
			}
			if len(ids) == 0 {
				e.logger.Warn("spiky POV cites no known insights, dropping",
					"task_id", taskID, "kind", kind)
				continue
			}
			if _, err := e.dok.CreateSpikyPOV(ctx, services.CreatePOVInput{
				TaskID:     taskID,
				Kind:       kind,
				Statement:  p.Statement,
				Reasoning:  p.Reasoning,
				InsightIDs: ids,
				Position:   i,
			}); err != nil {
				return created, err
			}
			created++
		}
		return created, nil
	}

	truths, err := store("truth", parsed.Truths)
	if err != nil {
		return nil, evidence, err
	}
	myths, err := store("myth", parsed.Myths)
	if err != nil {
		return nil, evidence, err
	}

	return map[string]any{"truths": truths, "myths": myths}, evidence, nil
}
