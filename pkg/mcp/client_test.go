package mcp

import (
	"context"
	"encoding/json"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trilogy-group/nexus-agents/pkg/config"
)

// emptySchema is a minimal valid JSON Schema for test tools.
var emptySchema = json.RawMessage(`{"type":"object"}`)

// testAdapterServer holds an in-memory MCP server and its transport pair.
type testAdapterServer struct {
	server          *mcpsdk.Server
	clientTransport *mcpsdk.InMemoryTransport
	serverTransport *mcpsdk.InMemoryTransport
}

// startTestAdapter creates an in-memory MCP server with given tools and connects it.
func startTestAdapter(t *testing.T, name string, tools map[string]mcpsdk.ToolHandler) *testAdapterServer {
	t.Helper()

	server := mcpsdk.NewServer(&mcpsdk.Implementation{
		Name: name, Version: "test",
	}, nil)

	for toolName, handler := range tools {
		server.AddTool(&mcpsdk.Tool{
			Name:        toolName,
			Description: "test tool: " + toolName,
			InputSchema: emptySchema,
		}, handler)
	}

	clientTransport, serverTransport := mcpsdk.NewInMemoryTransports()

	// Start server in background
	go func() {
		_ = server.Run(context.Background(), serverTransport)
	}()

	return &testAdapterServer{
		server:          server,
		clientTransport: clientTransport,
		serverTransport: serverTransport,
	}
}

// textResult builds a single-text-content tool result.
func textResult(text string) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: text}},
	}
}

// connectClientDirect creates a Client with a pre-wired in-memory transport.
// Bypasses the registry/createTransport path for unit testing the client itself.
func connectClientDirect(t *testing.T, provider string, transport *mcpsdk.InMemoryTransport) *Client {
	t.Helper()
	ctx := context.Background()

	client := newClient(config.NewProviderRegistry(nil))

	sdkClient := mcpsdk.NewClient(&mcpsdk.Implementation{
		Name: "nexus-test", Version: "test",
	}, nil)

	session, err := sdkClient.Connect(ctx, transport, nil)
	require.NoError(t, err)

	client.InjectSession(provider, sdkClient, session)

	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestClient_ListTools(t *testing.T) {
	ts := startTestAdapter(t, "linkup-adapter", map[string]mcpsdk.ToolHandler{
		"search-web": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return textResult("ok"), nil
		},
		"fetch-page": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return textResult("ok"), nil
		},
	})

	client := connectClientDirect(t, "linkup", ts.clientTransport)
	ctx := context.Background()

	tools, err := client.ListTools(ctx, "linkup")
	require.NoError(t, err)
	assert.Len(t, tools, 2)

	names := make([]string, len(tools))
	for i, tool := range tools {
		names[i] = tool.Name
	}
	assert.Contains(t, names, "search-web")
	assert.Contains(t, names, "fetch-page")
}

func TestClient_ListTools_Cached(t *testing.T) {
	ts := startTestAdapter(t, "exa-adapter", map[string]mcpsdk.ToolHandler{
		"web_search_exa": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return textResult("ok"), nil
		},
	})

	client := connectClientDirect(t, "exa", ts.clientTransport)
	ctx := context.Background()

	// First call populates cache
	tools1, err := client.ListTools(ctx, "exa")
	require.NoError(t, err)

	// Second call should return cached results
	tools2, err := client.ListTools(ctx, "exa")
	require.NoError(t, err)

	assert.Equal(t, tools1, tools2)
}

func TestClient_ListTools_NoSession(t *testing.T) {
	client := newClient(config.NewProviderRegistry(nil))
	_, err := client.ListTools(context.Background(), "perplexity")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no session for provider")
}

func TestClient_CallTool(t *testing.T) {
	ts := startTestAdapter(t, "linkup-adapter", map[string]mcpsdk.ToolHandler{
		"search-web": func(_ context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			var parsed map[string]any
			require.NoError(t, json.Unmarshal(req.Params.Arguments, &parsed))
			query, _ := parsed["query"].(string)
			return textResult(`{"results":[{"url":"https://example.com","title":"` + query + `"}]}`), nil
		},
	})

	client := connectClientDirect(t, "linkup", ts.clientTransport)

	result, err := client.CallTool(context.Background(), "linkup", "search-web",
		map[string]any{"query": "ai agents in testing"})
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Contains(t, ExtractTextContent(result), "ai agents in testing")
}

func TestClient_CallTool_NoSession(t *testing.T) {
	client := newClient(config.NewProviderRegistry(nil))
	_, err := client.CallTool(context.Background(), "firecrawl", "firecrawl_search", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no session for provider")
}

func TestClient_CallTool_ToolError(t *testing.T) {
	// Tool-level errors (IsError result) are returned to the caller, not retried.
	ts := startTestAdapter(t, "exa-adapter", map[string]mcpsdk.ToolHandler{
		"web_search_exa": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return &mcpsdk.CallToolResult{
				Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "quota exhausted"}},
				IsError: true,
			}, nil
		},
	})

	client := connectClientDirect(t, "exa", ts.clientTransport)

	result, err := client.CallTool(context.Background(), "exa", "web_search_exa", map[string]any{})
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Equal(t, "quota exhausted", ExtractTextContent(result))
}

func TestClient_HasSession(t *testing.T) {
	ts := startTestAdapter(t, "linkup-adapter", map[string]mcpsdk.ToolHandler{
		"search-web": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return textResult("ok"), nil
		},
	})

	client := connectClientDirect(t, "linkup", ts.clientTransport)

	assert.True(t, client.HasSession("linkup"))
	assert.False(t, client.HasSession("exa"))
}

func TestClient_Close_ClearsState(t *testing.T) {
	ts := startTestAdapter(t, "linkup-adapter", map[string]mcpsdk.ToolHandler{
		"search-web": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return textResult("ok"), nil
		},
	})

	client := connectClientDirect(t, "linkup", ts.clientTransport)

	_, err := client.ListTools(context.Background(), "linkup")
	require.NoError(t, err)

	require.NoError(t, client.Close())
	assert.False(t, client.HasSession("linkup"))

	// Cache is gone too — the next ListTools hits the missing session.
	_, err = client.ListTools(context.Background(), "linkup")
	require.Error(t, err)
}

func TestClient_InvalidateToolCache(t *testing.T) {
	calls := 0
	ts := startTestAdapter(t, "exa-adapter", map[string]mcpsdk.ToolHandler{
		"web_search_exa": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return textResult("ok"), nil
		},
	})
	_ = calls

	client := connectClientDirect(t, "exa", ts.clientTransport)
	ctx := context.Background()

	_, err := client.ListTools(ctx, "exa")
	require.NoError(t, err)

	client.InvalidateToolCache("exa")

	// Re-probe succeeds against the live session.
	tools, err := client.ListTools(ctx, "exa")
	require.NoError(t, err)
	assert.Len(t, tools, 1)
}

func TestClient_Initialize_UnknownProvider(t *testing.T) {
	registry := config.NewProviderRegistry(nil)
	client := newClient(registry)
	t.Cleanup(func() { _ = client.Close() })

	// Initialize records the failure instead of returning an error.
	require.NoError(t, client.Initialize(context.Background(), []string{"linkup"}))

	failed := client.FailedProviders()
	require.Contains(t, failed, "linkup")
	assert.Contains(t, failed["linkup"], "not found in registry")
}

func TestClientFactory_TestFactoryInjection(t *testing.T) {
	ts := startTestAdapter(t, "linkup-adapter", map[string]mcpsdk.ToolHandler{
		"search-web": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return textResult("ok"), nil
		},
	})

	registry := config.NewProviderRegistry(nil)
	factory := NewTestClientFactory(registry, func(c *Client) {
		sdkClient := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "nexus-test", Version: "test"}, nil)
		session, err := sdkClient.Connect(context.Background(), ts.clientTransport, nil)
		require.NoError(t, err)
		c.InjectSession("linkup", sdkClient, session)
	})

	client, err := factory.CreateClient(context.Background(), []string{"linkup"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	assert.True(t, client.HasSession("linkup"))
}
