package orchestrator

import (
	"fmt"
	"strings"

	"github.com/trilogy-group/nexus-agents/pkg/models"
)

// Prompt content is capped so a pathological page cannot blow the context
// window; the synthesis engine uses the same bound for summaries.
const maxHitContent = 8000

const decomposeSystemPrompt = `You are a research planner. Decompose the research query into focused subtopics that together cover the question.

Respond with JSON only, in this exact shape:
{"subtopics": [{"title": "...", "query": "...", "focus_area": "..."}]}

Each subtopic needs a short title, a standalone web-search query, and the aspect of the main question it covers. Do not overlap subtopics.`

func decomposeUserPrompt(query string, maxSubtopics int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Research query: %s\n\n", query)
	fmt.Fprintf(&b, "Produce at most %d subtopics.\n", maxSubtopics)
	return b.String()
}

const planSystemPrompt = `You are a research planner. Given a research query and its subtopic decomposition, produce a research plan.

Respond with JSON only, in this exact shape:
{"objectives": ["..."], "deliverables": ["..."], "key_questions": ["..."], "strategies": [{"method": "...", "sources": ["..."], "keywords": ["..."]}]}

Objectives state what the research must establish. Deliverables describe the outputs. Key questions are the questions the report must answer. Each strategy names a search method, the source types it targets, and the keywords to use.`

func planUserPrompt(query string, subtopics []subtopic) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Research query: %s\n\nSubtopics:\n", query)
	for i, st := range subtopics {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, st.Title, st.FocusArea)
	}
	return b.String()
}

const enumerateSystemPrompt = `You are planning an exhaustive data-aggregation sweep. Partition the search into subspaces (geographic regions, categories, market segments) that together cover the full entity population without large overlaps.

Respond with JSON only, in this exact shape:
{"subspaces": ["..."]}

Each subspace is a short phrase usable directly in a web-search query.`

func enumerateUserPrompt(query string, aggCfg *models.AggregationConfig) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Goal: %s\n", query)
	fmt.Fprintf(&b, "Entity type: %s\n", aggCfg.EntityType())
	fmt.Fprintf(&b, "Search space: %s\n", aggCfg.SearchSpace.Description)
	if aggCfg.DomainHint != "" {
		fmt.Fprintf(&b, "Domain: %s\n", aggCfg.DomainHint)
	}
	fmt.Fprintf(&b, "Attributes to collect: %s\n", strings.Join(aggCfg.Attributes, ", "))
	return b.String()
}

const extractSystemPrompt = `You extract structured entities from web content. Report only entities actually present in the content; never invent names, identifiers or attribute values. Omit an attribute rather than guessing it.

Respond with JSON only, in this exact shape:
{"entities": [{"name": "...", "unique_identifier": "...", "attributes": {"attr": "value"}, "confidence": 0.0, "source_url": "..."}]}

unique_identifier is an official registry or catalog identifier when the content states one, otherwise an empty string. confidence is your 0..1 certainty that the entity and its attributes are correctly extracted. source_url is the page the entity came from.`

func extractUserPrompt(aggCfg *models.AggregationConfig, subspace string, hits []aggHit) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Entity type: %s\n", aggCfg.EntityType())
	fmt.Fprintf(&b, "Search subspace: %s\n", subspace)
	if aggCfg.DomainHint != "" {
		fmt.Fprintf(&b, "Domain: %s\n", aggCfg.DomainHint)
	}
	fmt.Fprintf(&b, "Attributes to extract: %s\n\nContent:\n", strings.Join(aggCfg.Attributes, ", "))
	for _, hit := range hits {
		content := hit.Content
		if len(content) > maxHitContent {
			content = content[:maxHitContent]
		}
		fmt.Fprintf(&b, "--- %s (%s)\n%s\n", hit.Title, hit.URL, content)
	}
	return b.String()
}
