package dok

import (
	"context"
	"fmt"
	"strings"

	"github.com/trilogy-group/nexus-agents/ent"
	"github.com/trilogy-group/nexus-agents/ent/reportsection"
	"github.com/trilogy-group/nexus-agents/pkg/config"
	"github.com/trilogy-group/nexus-agents/pkg/ledger"
	"github.com/trilogy-group/nexus-agents/pkg/llm"
)

// reportSectionOrder fixes the section sequence of the assembled report.
var reportSectionOrder = []struct {
	section reportsection.Section
	heading string
}{
	{reportsection.SectionKeyFindings, "Key Findings"},
	{reportsection.SectionEvidenceAnalysis, "Evidence Analysis"},
	{reportsection.SectionCausalRelationships, "Causal Relationships"},
	{reportsection.SectionAlternativeInterpretations, "Alternative Interpretations"},
}

// SynthesizeReport assembles the final Markdown report from the task's
// taxonomy and stores each section with the source ids it cites. Returns the
// rendered Markdown. A task with no sources gets an explicit empty-corpus
// report rather than a failure.
func (e *Engine) SynthesizeReport(ctx context.Context, task *ent.ResearchTask, summaries []*ent.SourceSummary) (string, []ledger.EvidenceInput, error) {
	taskID := task.ID

	if len(summaries) == 0 {
		markdown := emptyReport(task)
		_, err := e.dok.SaveReportSection(ctx, taskID, reportsection.SectionKeyFindings,
			"No sources were found for this research query; no findings can be reported.", nil, 0)
		if err != nil {
			return "", nil, err
		}
		return markdown, nil, nil
	}

	insights, err := e.dok.ListInsights(ctx, taskID)
	if err != nil {
		return "", nil, err
	}
	povs, err := e.dok.ListSpikyPOVs(ctx, taskID)
	if err != nil {
		return "", nil, err
	}

	res := e.completer.Complete(ctx, &llm.GenerateInput{
		TaskID:     taskID,
		Role:       config.ModelRoleReasoning,
		JSONOutput: true,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: reportSystemPrompt},
			{Role: llm.RoleUser, Content: reportUserPrompt(task, summaries, insights, povs)},
		},
	})
	text, err := completionText(res)
	if err != nil {
		return "", nil, err
	}
	evidence := []ledger.EvidenceInput{llmEvidence("synthesize_report", text)}

	type sectionOut struct {
		Content   string   `json:"content"`
		SourceIDs []string `json:"source_ids"`
	}
	var parsed struct {
		KeyFindings                sectionOut `json:"key_findings"`
		EvidenceAnalysis           sectionOut `json:"evidence_analysis"`
		CausalRelationships        sectionOut `json:"causal_relationships"`
		AlternativeInterpretations sectionOut `json:"alternative_interpretations"`
	}
	if err := llm.DecodeJSON(text, &parsed); err != nil {
		return "", evidence, fmt.Errorf("synthesize_report: %w", err)
	}

	known := make(map[string]bool, len(summaries))
	for _, s := range summaries {
		known[s.SourceID] = true
	}
	filterKnown := func(ids []string) []string {
		var out []string
		for _, id := range ids {
			if known[id] {
				out = append(out, id)
			}
		}
		return out
	}

	bySection := map[reportsection.Section]sectionOut{
		reportsection.SectionKeyFindings:                parsed.KeyFindings,
		reportsection.SectionEvidenceAnalysis:           parsed.EvidenceAnalysis,
		reportsection.SectionCausalRelationships:        parsed.CausalRelationships,
		reportsection.SectionAlternativeInterpretations: parsed.AlternativeInterpretations,
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", task.Title)
	fmt.Fprintf(&b, "> %s\n\n", task.ResearchQuery)

	wrote := 0
	for pos, entry := range reportSectionOrder {
		out := bySection[entry.section]
		if out.Content == "" {
			continue
		}
		if _, err := e.dok.SaveReportSection(ctx, taskID, entry.section,
			out.Content, filterKnown(out.SourceIDs), pos); err != nil {
			return "", evidence, err
		}
		fmt.Fprintf(&b, "## %s\n\n%s\n\n", entry.heading, out.Content)
		wrote++
	}
	if wrote == 0 {
		return "", evidence, fmt.Errorf("synthesize_report: model returned no sections")
	}

	return b.String(), evidence, nil
}

func emptyReport(task *ent.ResearchTask) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", task.Title)
	fmt.Fprintf(&b, "> %s\n\n", task.ResearchQuery)
	b.WriteString("## Key Findings\n\nNo sources were found for this research query. ")
	b.WriteString("All configured search providers returned zero usable results, ")
	b.WriteString("so no findings can be reported.\n")
	return b.String()
}
