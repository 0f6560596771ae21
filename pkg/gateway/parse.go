package gateway

import (
	"encoding/json"
	"strings"
)

// maxFallbackDescription bounds the description synthesized from free-text
// adapter output (perplexity answers and similar).
const maxFallbackDescription = 2000

// parseSearchResults converts adapter tool output into search results.
//
// Adapters are not standardized; the parsing cascade is deliberately lenient
// (first successful parse wins):
//  1. JSON object with a "results" (or "data", "items") array
//  2. bare JSON array
//  3. free text → single result carrying the text as description
//     (answer-style providers like perplexity return prose with citations)
//
// Empty output returns an empty slice, never nil errors — zero hits is a
// valid provider answer.
func parseSearchResults(provider, text string) []SearchResult {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return []SearchResult{}
	}

	if items, ok := tryParseResultArray(trimmed); ok {
		results := make([]SearchResult, 0, len(items))
		for _, item := range items {
			if r, ok := itemToResult(provider, item); ok {
				results = append(results, r)
			}
		}
		return results
	}

	// Free-text fallback: one synthetic result, no URL. Dedup downstream is
	// by content hash, so answer-style output still becomes evidence.
	desc := trimmed
	if len(desc) > maxFallbackDescription {
		desc = desc[:maxFallbackDescription]
	}
	return []SearchResult{{
		Description: desc,
		Provider:    provider,
	}}
}

// resultArrayKeys are the wrapper keys adapters use for their hit lists.
var resultArrayKeys = []string{"results", "data", "items", "sources"}

func tryParseResultArray(text string) ([]map[string]any, bool) {
	switch text[0] {
	case '{':
		var wrapper map[string]json.RawMessage
		if err := json.Unmarshal([]byte(text), &wrapper); err != nil {
			return nil, false
		}
		for _, key := range resultArrayKeys {
			raw, ok := wrapper[key]
			if !ok {
				continue
			}
			var items []map[string]any
			if err := json.Unmarshal(raw, &items); err == nil {
				return items, true
			}
		}
		return nil, false
	case '[':
		var items []map[string]any
		if err := json.Unmarshal([]byte(text), &items); err != nil {
			return nil, false
		}
		return items, true
	default:
		return nil, false
	}
}

// itemToResult maps one adapter hit object onto SearchResult, tolerating the
// field-name drift between providers. Items with neither URL nor text are
// dropped.
func itemToResult(provider string, item map[string]any) (SearchResult, bool) {
	r := SearchResult{
		URL:         firstString(item, "url", "link", "source_url", "sourceUrl"),
		Title:       firstString(item, "title", "name"),
		Description: firstString(item, "description", "snippet", "summary", "text", "content"),
		Provider:    provider,
	}
	if r.URL == "" && r.Description == "" {
		return SearchResult{}, false
	}
	return r, true
}

func firstString(item map[string]any, keys ...string) string {
	for _, key := range keys {
		if v, ok := item[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
