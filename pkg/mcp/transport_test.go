package mcp

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trilogy-group/nexus-agents/pkg/config"
)

func TestCreateTransport_Stdio(t *testing.T) {
	cfg := &config.ProviderConfig{
		Type:      config.ProviderTypeLinkup,
		Transport: config.TransportTypeStdio,
		Command:   "npx",
		Args:      []string{"-y", "linkup-mcp-server"},
	}

	transport, err := createTransport(cfg)
	require.NoError(t, err)
	assert.NotNil(t, transport)
}

func TestCreateTransport_Stdio_MissingCommand(t *testing.T) {
	cfg := &config.ProviderConfig{
		Type:      config.ProviderTypeLinkup,
		Transport: config.TransportTypeStdio,
	}

	_, err := createTransport(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stdio transport requires command")
}

func TestCreateTransport_HTTP(t *testing.T) {
	cfg := &config.ProviderConfig{
		Type:      config.ProviderTypeExa,
		Transport: config.TransportTypeHTTP,
		URL:       "https://mcp.exa.ai/mcp",
	}

	transport, err := createTransport(cfg)
	require.NoError(t, err)
	assert.NotNil(t, transport)
}

func TestCreateTransport_HTTP_MissingURL(t *testing.T) {
	cfg := &config.ProviderConfig{
		Type:      config.ProviderTypeExa,
		Transport: config.TransportTypeHTTP,
	}

	_, err := createTransport(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP transport requires url")
}

func TestCreateTransport_UnsupportedType(t *testing.T) {
	cfg := &config.ProviderConfig{Transport: config.TransportType("sse")}

	_, err := createTransport(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported transport type")
}

func TestBuildHTTPClient_BearerToken(t *testing.T) {
	t.Setenv("TEST_EXA_API_KEY", "sk-test-123")

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := &config.ProviderConfig{
		Type:      config.ProviderTypeExa,
		Transport: config.TransportTypeHTTP,
		URL:       srv.URL,
		APIKeyEnv: "TEST_EXA_API_KEY",
	}

	client := buildHTTPClient(cfg)
	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "Bearer sk-test-123", gotAuth)
}

func TestBuildHTTPClient_NoKey(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := &config.ProviderConfig{
		Type:      config.ProviderTypePerplexity,
		Transport: config.TransportTypeHTTP,
		URL:       srv.URL,
	}

	client := buildHTTPClient(cfg)
	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Empty(t, gotAuth)
}

func TestBuildHTTPClient_Timeout(t *testing.T) {
	cfg := &config.ProviderConfig{
		Type:      config.ProviderTypeFirecrawl,
		Transport: config.TransportTypeHTTP,
		URL:       "https://example.com",
		Timeout:   30 * time.Second,
	}

	client := buildHTTPClient(cfg)
	assert.Equal(t, 30*time.Second, client.Timeout)
}

func TestAPIKey(t *testing.T) {
	t.Run("unset env returns empty", func(t *testing.T) {
		cfg := &config.ProviderConfig{APIKeyEnv: "NEXUS_TEST_UNSET_KEY"}
		assert.Empty(t, apiKey(cfg))
	})

	t.Run("no env declared returns empty", func(t *testing.T) {
		assert.Empty(t, apiKey(&config.ProviderConfig{}))
	})

	t.Run("set env returns value", func(t *testing.T) {
		t.Setenv("NEXUS_TEST_SET_KEY", "abc")
		cfg := &config.ProviderConfig{APIKeyEnv: "NEXUS_TEST_SET_KEY"}
		assert.Equal(t, "abc", apiKey(cfg))
	})
}
