package dok

import (
	"fmt"
	"strings"

	"github.com/trilogy-group/nexus-agents/ent"
	"github.com/trilogy-group/nexus-agents/pkg/models"
)

// maxPromptContent bounds how much raw source text goes into a single
// summarization prompt.
const maxPromptContent = 24000

const summarizeSystemPrompt = `You are a research analyst producing a Depth-of-Knowledge level 1 summary of a single source.
Write a self-contained summary paragraph and extract atomic facts. Each fact must be a single
verifiable statement grounded in the source text, with no interpretation or speculation.
Respond with JSON only, matching:
{"summary": "...", "facts": ["...", "..."]}`

func summarizeUserPrompt(src *ent.Source, content, subtopic string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Research subtopic: %s\n\n", subtopic)
	fmt.Fprintf(&b, "Source URL: %s\n", src.URL)
	if src.Title != "" {
		fmt.Fprintf(&b, "Source title: %s\n", src.Title)
	}
	if src.Description != "" {
		fmt.Fprintf(&b, "Source description: %s\n", src.Description)
	}
	b.WriteString("\nSource content:\n")
	b.WriteString(truncate(content, maxPromptContent))
	b.WriteString("\n\nSummarize this source with respect to the subtopic and extract its atomic facts.")
	return b.String()
}

const treeSystemPrompt = `You are a research analyst organizing per-source summaries into a knowledge taxonomy.
Cluster the summaries into top-level categories, each with subcategories. Every subcategory
must list the source ids it draws on with a relevance score between 0 and 1. Use only the
source ids given in the input; never invent ids.
Respond with JSON only, matching:
{"categories": [{"category": "...", "summary": "...", "children": [{"subcategory": "...", "summary": "...", "sources": [{"source_id": "...", "relevance": 0.0}]}]}]}`

func treeUserPrompt(summaries []*ent.SourceSummary) string {
	var b strings.Builder
	b.WriteString("Source summaries:\n\n")
	for _, s := range summaries {
		fmt.Fprintf(&b, "source_id: %s (subtopic: %s)\n%s\n", s.SourceID, s.Subtopic, s.Summary)
		for _, f := range s.Dok1Facts {
			fmt.Fprintf(&b, "- %s\n", f)
		}
		b.WriteString("\n")
	}
	b.WriteString("Build the knowledge taxonomy for these summaries.")
	return b.String()
}

const insightsSystemPrompt = `You are a research analyst synthesizing Depth-of-Knowledge level 3 insights.
An insight is a non-obvious conclusion that connects evidence across multiple sources or
categories. Every insight must cite the source ids supporting it; uncited insights are
discarded. Confidence is a number between 0 and 1.
Respond with JSON only, matching:
{"insights": [{"category": "...", "insight": "...", "confidence": 0.0, "source_ids": ["..."]}]}`

func insightsUserPrompt(tree *models.KnowledgeTree, summaries []*ent.SourceSummary) string {
	var b strings.Builder
	b.WriteString("Knowledge taxonomy:\n\n")
	for _, root := range tree.Roots {
		fmt.Fprintf(&b, "%s: %s\n", root.Node.Category, root.Node.Summary)
		for _, child := range root.Children {
			fmt.Fprintf(&b, "  %s: %s\n", child.Node.Subcategory, child.Node.Summary)
		}
	}
	b.WriteString("\nSource summaries:\n\n")
	for _, s := range summaries {
		fmt.Fprintf(&b, "source_id: %s\n%s\n\n", s.SourceID, s.Summary)
	}
	b.WriteString("Synthesize cross-source insights from this material.")
	return b.String()
}

const povSystemPrompt = `You are a contrarian research analyst producing Depth-of-Knowledge level 4 spiky points of view.
A truth is a defensible claim that contradicts conventional wisdom; a myth is a widely held
belief the evidence undermines. Every statement must cite the insight ids it builds on;
uncited statements are discarded.
Respond with JSON only, matching:
{"truths": [{"statement": "...", "reasoning": "...", "insight_ids": ["..."]}], "myths": [{"statement": "...", "reasoning": "...", "insight_ids": ["..."]}]}`

func povUserPrompt(insights []*ent.Insight) string {
	var b strings.Builder
	b.WriteString("Insights:\n\n")
	for _, in := range insights {
		fmt.Fprintf(&b, "insight_id: %s (category: %s, confidence: %.2f)\n%s\n\n",
			in.ID, in.Category, in.ConfidenceScore, in.InsightText)
	}
	b.WriteString("Derive contrarian truths and myths from these insights.")
	return b.String()
}

const reportSystemPrompt = `You are a research analyst writing the final report for a completed research task.
Write four sections in Markdown body text (no top-level headings): key findings, evidence
analysis, causal relationships, and alternative interpretations. Each section must list the
source ids it cites, using only ids given in the input.
Respond with JSON only, matching:
{"key_findings": {"content": "...", "source_ids": ["..."]},
 "evidence_analysis": {"content": "...", "source_ids": ["..."]},
 "causal_relationships": {"content": "...", "source_ids": ["..."]},
 "alternative_interpretations": {"content": "...", "source_ids": ["..."]}}`

func reportUserPrompt(task *ent.ResearchTask, summaries []*ent.SourceSummary, insights []*ent.Insight, povs []*ent.SpikyPOV) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Research query: %s\n\n", task.ResearchQuery)

	b.WriteString("Source summaries:\n\n")
	for _, s := range summaries {
		fmt.Fprintf(&b, "source_id: %s (subtopic: %s)\n%s\n\n", s.SourceID, s.Subtopic, s.Summary)
	}

	if len(insights) > 0 {
		b.WriteString("Insights:\n\n")
		for _, in := range insights {
			fmt.Fprintf(&b, "- [%s] %s (sources: %s)\n", in.Category, in.InsightText,
				strings.Join(in.SourceIds, ", "))
		}
		b.WriteString("\n")
	}

	if len(povs) > 0 {
		b.WriteString("Spiky points of view:\n\n")
		for _, p := range povs {
			fmt.Fprintf(&b, "- (%s) %s\n", p.Kind, p.Statement)
		}
		b.WriteString("\n")
	}

	b.WriteString("Write the four report sections.")
	return b.String()
}
