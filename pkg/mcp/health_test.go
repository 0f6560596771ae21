package mcp

import (
	"context"
	"testing"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trilogy-group/nexus-agents/pkg/config"
	"github.com/trilogy-group/nexus-agents/pkg/services"
)

// newHealthTestMonitor wires a HealthMonitor over an in-memory linkup adapter.
func newHealthTestMonitor(t *testing.T) (*HealthMonitor, *services.SystemWarningsService) {
	t.Helper()

	ts := startTestAdapter(t, "linkup-adapter", map[string]mcpsdk.ToolHandler{
		"search-web": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return textResult("ok"), nil
		},
	})

	registry := config.NewProviderRegistry(map[string]*config.ProviderConfig{
		"linkup": {
			Type:      config.ProviderTypeLinkup,
			Transport: config.TransportTypeStdio,
			Command:   "unused-in-test",
			Enabled:   true,
		},
	})

	factory := NewTestClientFactory(registry, func(c *Client) {
		sdkClient := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "nexus-test", Version: "test"}, nil)
		session, err := sdkClient.Connect(context.Background(), ts.clientTransport, nil)
		require.NoError(t, err)
		c.InjectSession("linkup", sdkClient, session)
	})

	warnings := services.NewSystemWarningsService()
	monitor := NewHealthMonitor(factory, registry, warnings)
	monitor.checkInterval = 50 * time.Millisecond
	monitor.pingTimeout = 2 * time.Second
	return monitor, warnings
}

func TestHealthMonitor_HealthyProvider(t *testing.T) {
	monitor, warnings := newHealthTestMonitor(t)

	monitor.Start(context.Background())
	t.Cleanup(monitor.Stop)

	require.Eventually(t, monitor.IsHealthy, 3*time.Second, 20*time.Millisecond)

	statuses := monitor.GetStatuses()
	require.Contains(t, statuses, "linkup")
	assert.True(t, statuses["linkup"].Healthy)
	assert.Equal(t, 1, statuses["linkup"].ToolCount)
	assert.Empty(t, statuses["linkup"].Error)

	tools := monitor.GetCachedTools()
	require.Contains(t, tools, "linkup")
	assert.Equal(t, "search-web", tools["linkup"][0].Name)

	assert.Empty(t, warnings.GetWarnings())
	assert.True(t, monitor.IsProviderHealthy("linkup"))
}

func TestHealthMonitor_UncheckedProviderReportsHealthy(t *testing.T) {
	monitor, _ := newHealthTestMonitor(t)
	// No Start: unknown providers must not block gateway calls.
	assert.True(t, monitor.IsProviderHealthy("exa"))
	assert.False(t, monitor.IsHealthy()) // no statuses yet → overall unhealthy
}

func TestHealthMonitor_StopClearsState(t *testing.T) {
	monitor, _ := newHealthTestMonitor(t)

	monitor.Start(context.Background())
	require.Eventually(t, monitor.IsHealthy, 3*time.Second, 20*time.Millisecond)

	monitor.Stop()

	assert.Empty(t, monitor.GetStatuses())
	assert.Empty(t, monitor.GetCachedTools())
	assert.False(t, monitor.IsHealthy())
}

func TestHealthMonitor_StartTwiceIsNoop(t *testing.T) {
	monitor, _ := newHealthTestMonitor(t)

	monitor.Start(context.Background())
	t.Cleanup(monitor.Stop)
	monitor.Start(context.Background()) // must not spawn a second loop

	require.Eventually(t, monitor.IsHealthy, 3*time.Second, 20*time.Millisecond)
}
