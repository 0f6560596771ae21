package mcp

import (
	"fmt"
	"log/slog"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/trilogy-group/nexus-agents/pkg/config"
)

// Capability names the operations the gateway needs from a provider adapter.
type Capability string

const (
	// CapabilitySearch is a web/document search returning result lists.
	CapabilitySearch Capability = "search"
	// CapabilityFetch retrieves the content of a single URL.
	CapabilityFetch Capability = "fetch"
)

// knownTools maps provider type → capability → preferred adapter tool names,
// in priority order. Adapter tool names are not standardized across MCP
// servers, so the well-known names are listed explicitly and a keyword
// heuristic covers adapter version drift.
var knownTools = map[config.ProviderType]map[Capability][]string{
	config.ProviderTypeLinkup: {
		CapabilitySearch: {"search-web", "linkup_search"},
		CapabilityFetch:  {"fetch-page"},
	},
	config.ProviderTypeExa: {
		CapabilitySearch: {"web_search_exa", "web_search"},
		CapabilityFetch:  {"crawling", "get_contents"},
	},
	config.ProviderTypePerplexity: {
		CapabilitySearch: {"perplexity_search", "perplexity_ask"},
	},
	config.ProviderTypeFirecrawl: {
		CapabilitySearch: {"firecrawl_search"},
		CapabilityFetch:  {"firecrawl_scrape", "firecrawl_crawl"},
	},
}

// fetchKeywords are substrings that identify a fetch-capable tool when no
// well-known name matches.
var fetchKeywords = []string{"fetch", "scrape", "crawl", "contents", "read"}

// ResolveTool picks the adapter tool implementing a capability, preferring
// well-known names for the provider type and falling back to a keyword match
// over the advertised tool list.
func ResolveTool(providerType config.ProviderType, capability Capability, tools []*mcpsdk.Tool) (string, error) {
	names := make(map[string]bool, len(tools))
	for _, tool := range tools {
		names[tool.Name] = true
	}

	for _, candidate := range knownTools[providerType][capability] {
		if names[candidate] {
			return candidate, nil
		}
	}

	// Heuristic fallback: match by keyword in the tool name.
	var keywords []string
	switch capability {
	case CapabilitySearch:
		keywords = []string{"search"}
	case CapabilityFetch:
		keywords = fetchKeywords
	}
	for _, tool := range tools {
		lower := strings.ToLower(tool.Name)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				slog.Debug("Resolved adapter tool by keyword",
					"provider_type", providerType, "capability", capability, "tool", tool.Name)
				return tool.Name, nil
			}
		}
	}

	return "", fmt.Errorf("provider %s advertises no %s tool (have %d tools)",
		providerType, capability, len(tools))
}

// SupportsCapability reports whether the provider type is expected to offer
// the capability at all (perplexity, for example, has no fetch tool).
// A provider without fetch support is skipped during fetch fan-out rather
// than marked degraded.
func SupportsCapability(providerType config.ProviderType, capability Capability) bool {
	if capability == CapabilitySearch {
		return true
	}
	_, ok := knownTools[providerType][capability]
	return ok
}

// ExtractTextContent extracts text from an MCP CallToolResult.
// Concatenates all TextContent items. Non-text content (images, embedded
// resources) is logged at debug level and skipped.
func ExtractTextContent(result *mcpsdk.CallToolResult) string {
	var parts []string
	for _, c := range result.Content {
		if tc, ok := c.(*mcpsdk.TextContent); ok {
			parts = append(parts, tc.Text)
		} else {
			slog.Debug("Adapter returned non-text content, skipping",
				"content_type", fmt.Sprintf("%T", c))
		}
	}
	return strings.Join(parts, "\n")
}
