package mcp

import (
	"context"

	"github.com/trilogy-group/nexus-agents/pkg/config"
)

// ClientFactory creates Client instances bound to the provider registry.
type ClientFactory struct {
	registry *config.ProviderRegistry

	// createClientFn overrides client creation in tests (in-memory sessions).
	// nil means the real Initialize() transport path.
	createClientFn func(ctx context.Context, providers []string) (*Client, error)
}

// NewClientFactory creates a new factory.
func NewClientFactory(registry *config.ProviderRegistry) *ClientFactory {
	return &ClientFactory{registry: registry}
}

// CreateClient creates a new Client connected to the named provider adapters.
// Adapters that fail to connect are recorded on the client, not returned as
// errors; the gateway reads FailedProviders() to mark them degraded.
// The caller is responsible for calling Close() when done.
func (f *ClientFactory) CreateClient(ctx context.Context, providers []string) (*Client, error) {
	if f.createClientFn != nil {
		return f.createClientFn(ctx, providers)
	}
	client := newClient(f.registry)
	if err := client.Initialize(ctx, providers); err != nil {
		_ = client.Close() // Clean up partial initialization
		return nil, err
	}
	return client, nil
}

// CreateEnabledClient creates a Client connected to every enabled provider.
// This is the primary entry point used by the gateway at startup.
func (f *ClientFactory) CreateEnabledClient(ctx context.Context) (*Client, error) {
	return f.CreateClient(ctx, f.registry.EnabledNames())
}
