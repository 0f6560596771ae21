package mcp

import (
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trilogy-group/nexus-agents/pkg/config"
)

func toolList(names ...string) []*mcpsdk.Tool {
	tools := make([]*mcpsdk.Tool, len(names))
	for i, n := range names {
		tools[i] = &mcpsdk.Tool{Name: n}
	}
	return tools
}

func TestResolveTool_KnownNames(t *testing.T) {
	tests := []struct {
		name         string
		providerType config.ProviderType
		capability   Capability
		tools        []*mcpsdk.Tool
		want         string
	}{
		{"linkup search", config.ProviderTypeLinkup, CapabilitySearch,
			toolList("search-web", "fetch-page"), "search-web"},
		{"exa search prefers exa-suffixed name", config.ProviderTypeExa, CapabilitySearch,
			toolList("web_search_exa", "crawling"), "web_search_exa"},
		{"exa fetch", config.ProviderTypeExa, CapabilityFetch,
			toolList("web_search_exa", "crawling"), "crawling"},
		{"perplexity search", config.ProviderTypePerplexity, CapabilitySearch,
			toolList("perplexity_ask"), "perplexity_ask"},
		{"firecrawl search", config.ProviderTypeFirecrawl, CapabilitySearch,
			toolList("firecrawl_search", "firecrawl_scrape"), "firecrawl_search"},
		{"firecrawl fetch", config.ProviderTypeFirecrawl, CapabilityFetch,
			toolList("firecrawl_search", "firecrawl_scrape"), "firecrawl_scrape"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveTool(tt.providerType, tt.capability, tt.tools)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveTool_KeywordFallback(t *testing.T) {
	// Adapter renamed its tools; keyword match still finds them.
	tools := toolList("do_search_v2", "read_url")

	got, err := ResolveTool(config.ProviderTypeLinkup, CapabilitySearch, tools)
	require.NoError(t, err)
	assert.Equal(t, "do_search_v2", got)

	got, err = ResolveTool(config.ProviderTypeLinkup, CapabilityFetch, tools)
	require.NoError(t, err)
	assert.Equal(t, "read_url", got)
}

func TestResolveTool_NotFound(t *testing.T) {
	_, err := ResolveTool(config.ProviderTypePerplexity, CapabilityFetch, toolList("perplexity_ask"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no fetch tool")
}

func TestSupportsCapability(t *testing.T) {
	assert.True(t, SupportsCapability(config.ProviderTypeLinkup, CapabilitySearch))
	assert.True(t, SupportsCapability(config.ProviderTypeFirecrawl, CapabilityFetch))
	assert.False(t, SupportsCapability(config.ProviderTypePerplexity, CapabilityFetch))
}

func TestExtractTextContent(t *testing.T) {
	t.Run("concatenates text items", func(t *testing.T) {
		result := &mcpsdk.CallToolResult{
			Content: []mcpsdk.Content{
				&mcpsdk.TextContent{Text: "first"},
				&mcpsdk.TextContent{Text: "second"},
			},
		}
		assert.Equal(t, "first\nsecond", ExtractTextContent(result))
	})

	t.Run("skips non-text content", func(t *testing.T) {
		result := &mcpsdk.CallToolResult{
			Content: []mcpsdk.Content{
				&mcpsdk.TextContent{Text: "text"},
				&mcpsdk.ImageContent{Data: []byte{0x1}, MIMEType: "image/png"},
			},
		}
		assert.Equal(t, "text", ExtractTextContent(result))
	})

	t.Run("empty result", func(t *testing.T) {
		assert.Equal(t, "", ExtractTextContent(&mcpsdk.CallToolResult{}))
	})
}
