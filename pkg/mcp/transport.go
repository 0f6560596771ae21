package mcp

import (
	"fmt"
	"net/http"
	"os"
	"os/exec"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/trilogy-group/nexus-agents/pkg/config"
)

// createTransport creates an MCP SDK transport from a provider config.
func createTransport(cfg *config.ProviderConfig) (mcpsdk.Transport, error) {
	switch cfg.Transport {
	case config.TransportTypeStdio:
		return createStdioTransport(cfg)
	case config.TransportTypeHTTP:
		return createHTTPTransport(cfg)
	default:
		return nil, fmt.Errorf("unsupported transport type: %s", cfg.Transport)
	}
}

func createStdioTransport(cfg *config.ProviderConfig) (*mcpsdk.CommandTransport, error) {
	if cfg.Command == "" {
		return nil, fmt.Errorf("stdio transport requires command")
	}

	cmd := exec.Command(cfg.Command, cfg.Args...)

	// Inherit parent environment. The provider API key is already present as
	// cfg.APIKeyEnv in the parent env; the adapter subprocess reads it itself.
	// Key presence is the gateway's concern (missing key → degraded), not ours.
	cmd.Env = os.Environ()

	return &mcpsdk.CommandTransport{Command: cmd}, nil
}

func createHTTPTransport(cfg *config.ProviderConfig) (*mcpsdk.StreamableClientTransport, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("HTTP transport requires url")
	}
	transport := &mcpsdk.StreamableClientTransport{
		Endpoint: cfg.URL,
	}
	if apiKey(cfg) != "" || cfg.Timeout > 0 {
		transport.HTTPClient = buildHTTPClient(cfg)
	}
	return transport, nil
}

// apiKey resolves the provider API key from the environment.
// Returns "" when the provider declares no key env or the variable is unset.
func apiKey(cfg *config.ProviderConfig) string {
	if cfg.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(cfg.APIKeyEnv)
}

// buildHTTPClient creates an http.Client with auth and timeout settings.
func buildHTTPClient(cfg *config.ProviderConfig) *http.Client {
	client := &http.Client{
		Transport: http.DefaultTransport.(*http.Transport).Clone(),
	}

	// Bearer token via round-tripper wrapper
	if key := apiKey(cfg); key != "" {
		client.Transport = &bearerTokenTransport{
			base:  client.Transport,
			token: key,
		}
	}

	if cfg.Timeout > 0 {
		client.Timeout = cfg.Timeout
	}

	return client
}

// bearerTokenTransport wraps an http.RoundTripper to add Authorization headers.
type bearerTokenTransport struct {
	base  http.RoundTripper
	token string
}

func (t *bearerTokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+t.token)
	return t.base.RoundTrip(req)
}
