package gateway

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"testing"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trilogy-group/nexus-agents/pkg/config"
	"github.com/trilogy-group/nexus-agents/pkg/mcp"
)

// startAdapter runs an in-memory MCP server and returns its client transport.
func startAdapter(t *testing.T, name string, tools map[string]mcpsdk.ToolHandler) *mcpsdk.InMemoryTransport {
	t.Helper()

	server := mcpsdk.NewServer(&mcpsdk.Implementation{Name: name, Version: "test"}, nil)
	for toolName, handler := range tools {
		server.AddTool(&mcpsdk.Tool{
			Name:        toolName,
			Description: "test tool",
			InputSchema: json.RawMessage(`{"type":"object"}`),
		}, handler)
	}

	clientTransport, serverTransport := mcpsdk.NewInMemoryTransports()
	go func() { _ = server.Run(context.Background(), serverTransport) }()
	return clientTransport
}

func textToolResult(text string, isError bool) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: text}},
		IsError: isError,
	}
}

// newTestGateway wires a gateway over in-memory adapters keyed by provider name.
func newTestGateway(t *testing.T, providers map[string]*config.ProviderConfig, adapters map[string]*mcpsdk.InMemoryTransport, retry RetryPolicy) *Gateway {
	t.Helper()

	registry := config.NewProviderRegistry(providers)
	factory := mcp.NewTestClientFactory(registry, func(c *mcp.Client) {
		for provider, transport := range adapters {
			sdkClient := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "nexus-test", Version: "test"}, nil)
			session, err := sdkClient.Connect(context.Background(), transport, nil)
			require.NoError(t, err)
			c.InjectSession(provider, sdkClient, session)
		}
	})

	client, err := factory.CreateClient(context.Background(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return NewGateway(registry, client, nil, nil, retry)
}

func linkupConfig() *config.ProviderConfig {
	return &config.ProviderConfig{
		Type:        config.ProviderTypeLinkup,
		Transport:   config.TransportTypeStdio,
		Command:     "unused-in-test",
		Enabled:     true,
		RPS:         100,
		Concurrency: 8,
	}
}

func TestGateway_Search_OK(t *testing.T) {
	transport := startAdapter(t, "linkup-adapter", map[string]mcpsdk.ToolHandler{
		"search-web": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return textToolResult(`{"results":[{"url":"https://a.example","title":"A"}]}`, false), nil
		},
	})

	g := newTestGateway(t,
		map[string]*config.ProviderConfig{"linkup": linkupConfig()},
		map[string]*mcpsdk.InMemoryTransport{"linkup": transport},
		RetryPolicy{MaxAttempts: 3, BackoffBase: 10 * time.Millisecond})

	result := g.Search(context.Background(), "linkup", "ai agents", SearchOptions{MaxResults: 5})
	require.True(t, result.OK(), "status=%s err=%v", result.Status, result.Err)
	assert.Equal(t, 1, result.Attempts)
	require.Len(t, result.Value, 1)
	assert.Equal(t, "https://a.example", result.Value[0].URL)
	assert.Equal(t, "linkup", result.Value[0].Provider)
}

func TestGateway_Search_TransientThenSuccess(t *testing.T) {
	// Two 503s, then success — the retry budget absorbs both failures.
	var calls atomic.Int32
	transport := startAdapter(t, "linkup-adapter", map[string]mcpsdk.ToolHandler{
		"search-web": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			if calls.Add(1) <= 2 {
				return textToolResult("HTTP 503 Service Unavailable", true), nil
			}
			return textToolResult(`{"results":[{"url":"https://ok.example","title":"OK"}]}`, false), nil
		},
	})

	g := newTestGateway(t,
		map[string]*config.ProviderConfig{"linkup": linkupConfig()},
		map[string]*mcpsdk.InMemoryTransport{"linkup": transport},
		RetryPolicy{MaxAttempts: 3, BackoffBase: 5 * time.Millisecond})

	result := g.Search(context.Background(), "linkup", "q", SearchOptions{})
	require.True(t, result.OK())
	assert.Equal(t, 3, result.Attempts)
	assert.Equal(t, int32(3), calls.Load())
}

func TestGateway_Search_TransientExhausted(t *testing.T) {
	transport := startAdapter(t, "linkup-adapter", map[string]mcpsdk.ToolHandler{
		"search-web": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return textToolResult("429 too many requests", true), nil
		},
	})

	g := newTestGateway(t,
		map[string]*config.ProviderConfig{"linkup": linkupConfig()},
		map[string]*mcpsdk.InMemoryTransport{"linkup": transport},
		RetryPolicy{MaxAttempts: 2, BackoffBase: 5 * time.Millisecond})

	result := g.Search(context.Background(), "linkup", "q", SearchOptions{})
	assert.Equal(t, StatusTransient, result.Status)
	assert.Equal(t, 2, result.Attempts)
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "429")
}

func TestGateway_Search_PermanentNoRetry(t *testing.T) {
	var calls atomic.Int32
	transport := startAdapter(t, "linkup-adapter", map[string]mcpsdk.ToolHandler{
		"search-web": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			calls.Add(1)
			return textToolResult("401 unauthorized", true), nil
		},
	})

	g := newTestGateway(t,
		map[string]*config.ProviderConfig{"linkup": linkupConfig()},
		map[string]*mcpsdk.InMemoryTransport{"linkup": transport},
		RetryPolicy{MaxAttempts: 3, BackoffBase: 5 * time.Millisecond})

	result := g.Search(context.Background(), "linkup", "q", SearchOptions{})
	assert.Equal(t, StatusPermanent, result.Status)
	assert.Equal(t, 1, result.Attempts)
	assert.Equal(t, int32(1), calls.Load())
}

func TestGateway_Search_Degraded(t *testing.T) {
	disabled := linkupConfig()
	disabled.Enabled = false

	keyMissing := linkupConfig()
	keyMissing.APIKeyEnv = "NEXUS_TEST_MISSING_PROVIDER_KEY"

	g := newTestGateway(t,
		map[string]*config.ProviderConfig{"linkup": disabled, "exa": keyMissing},
		nil,
		RetryPolicy{MaxAttempts: 1, BackoffBase: time.Millisecond})

	t.Run("disabled provider", func(t *testing.T) {
		result := g.Search(context.Background(), "linkup", "q", SearchOptions{})
		assert.True(t, result.Degraded())
		assert.Equal(t, 0, result.Attempts)
		assert.Contains(t, result.Reason, "disabled")
	})

	t.Run("missing API key", func(t *testing.T) {
		result := g.Search(context.Background(), "exa", "q", SearchOptions{})
		assert.True(t, result.Degraded())
		assert.Contains(t, result.Reason, "NEXUS_TEST_MISSING_PROVIDER_KEY")
	})

	t.Run("unknown provider", func(t *testing.T) {
		result := g.Search(context.Background(), "duckduckgo", "q", SearchOptions{})
		assert.True(t, result.Degraded())
		assert.Contains(t, result.Reason, "unknown provider")
	})
}

func TestGateway_Fetch_PrefersCrawlProvider(t *testing.T) {
	firecrawl := startAdapter(t, "firecrawl-adapter", map[string]mcpsdk.ToolHandler{
		"firecrawl_search": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return textToolResult("{}", false), nil
		},
		"firecrawl_scrape": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return textToolResult("# Page Title\n\nbody text", false), nil
		},
	})

	fcCfg := &config.ProviderConfig{
		Type: config.ProviderTypeFirecrawl, Transport: config.TransportTypeStdio,
		Command: "unused", Enabled: true, RPS: 100, Concurrency: 4,
	}

	g := newTestGateway(t,
		map[string]*config.ProviderConfig{"firecrawl": fcCfg, "linkup": linkupConfig()},
		map[string]*mcpsdk.InMemoryTransport{"firecrawl": firecrawl},
		RetryPolicy{MaxAttempts: 1, BackoffBase: time.Millisecond})

	result := g.Fetch(context.Background(), "https://doc.example/page")
	require.True(t, result.OK(), "status=%s err=%v", result.Status, result.Err)
	assert.Equal(t, "firecrawl", result.Value.Provider)
	assert.Equal(t, "https://doc.example/page", result.Value.URL)
	assert.Contains(t, result.Value.Content, "body text")
	assert.False(t, result.Value.FetchedAt.IsZero())
}

func TestGateway_Fetch_NoCapableProvider(t *testing.T) {
	// Perplexity has no fetch tool; with only perplexity enabled, Fetch degrades.
	pCfg := &config.ProviderConfig{
		Type: config.ProviderTypePerplexity, Transport: config.TransportTypeHTTP,
		URL: "https://unused.example", Enabled: true, RPS: 100, Concurrency: 4,
	}

	g := newTestGateway(t,
		map[string]*config.ProviderConfig{"perplexity": pCfg},
		nil,
		RetryPolicy{MaxAttempts: 1, BackoffBase: time.Millisecond})

	result := g.Fetch(context.Background(), "https://doc.example")
	assert.True(t, result.Degraded())
	assert.Contains(t, result.Reason, "no fetch-capable provider")
}

func TestGateway_Complete_NoSidecar(t *testing.T) {
	g := newTestGateway(t, nil, nil, RetryPolicy{MaxAttempts: 1, BackoffBase: time.Millisecond})

	result := g.Complete(context.Background(), nil)
	assert.True(t, result.Degraded())
	assert.Contains(t, result.Reason, "llm sidecar")
}

func TestGateway_Search_CancelledContext(t *testing.T) {
	transport := startAdapter(t, "linkup-adapter", map[string]mcpsdk.ToolHandler{
		"search-web": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return textToolResult("{}", false), nil
		},
	})

	g := newTestGateway(t,
		map[string]*config.ProviderConfig{"linkup": linkupConfig()},
		map[string]*mcpsdk.InMemoryTransport{"linkup": transport},
		RetryPolicy{MaxAttempts: 3, BackoffBase: time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := g.Search(ctx, "linkup", "q", SearchOptions{})
	assert.Equal(t, StatusPermanent, result.Status)
}

func TestBuildSearchArgs(t *testing.T) {
	t.Run("no max results", func(t *testing.T) {
		args := buildSearchArgs(config.ProviderTypeLinkup, "q", SearchOptions{})
		assert.Equal(t, map[string]any{"query": "q"}, args)
	})

	t.Run("provider-specific count keys", func(t *testing.T) {
		assert.Contains(t, buildSearchArgs(config.ProviderTypeExa, "q", SearchOptions{MaxResults: 5}), "numResults")
		assert.Contains(t, buildSearchArgs(config.ProviderTypeFirecrawl, "q", SearchOptions{MaxResults: 5}), "limit")
		assert.Contains(t, buildSearchArgs(config.ProviderTypeLinkup, "q", SearchOptions{MaxResults: 5}), "max_results")
	})
}

func TestGateway_EnabledProviders(t *testing.T) {
	disabled := linkupConfig()
	disabled.Enabled = false

	g := newTestGateway(t,
		map[string]*config.ProviderConfig{
			"linkup": linkupConfig(),
			"exa": {Type: config.ProviderTypeExa, Transport: config.TransportTypeHTTP,
				URL: "https://unused", Enabled: true},
			"firecrawl": disabled,
		},
		nil,
		RetryPolicy{MaxAttempts: 1, BackoffBase: time.Millisecond})

	assert.Equal(t, []string{"exa", "linkup"}, g.EnabledProviders())
}
