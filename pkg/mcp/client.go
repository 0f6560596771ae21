// Package mcp provides MCP (Model Context Protocol) client infrastructure
// for connecting to and executing tools on the search-provider adapters
// (linkup, exa, perplexity, firecrawl).
package mcp

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/trilogy-group/nexus-agents/pkg/config"
	"github.com/trilogy-group/nexus-agents/pkg/version"
)

// Client manages MCP SDK sessions for multiple provider adapters.
// One Client instance is shared by the gateway for the process lifetime.
// Thread-safe: sessions may be accessed from many workers during fan-out phases.
type Client struct {
	registry *config.ProviderRegistry

	mu              sync.RWMutex
	sessions        map[string]*mcpsdk.ClientSession // provider → session
	clients         map[string]*mcpsdk.Client        // provider → client (for reconnection)
	failedProviders map[string]string                // provider → error message

	// Tool cache (populated on first ListTools, invalidated on session
	// recreation — adapter tool sets are static for a given adapter version)
	toolCache   map[string][]*mcpsdk.Tool
	toolCacheMu sync.RWMutex

	// Per-provider mutex for session recreation to prevent thundering herd
	reinitMu sync.Map // provider → *sync.Mutex

	logger *slog.Logger
}

// newClient creates a new Client.
func newClient(registry *config.ProviderRegistry) *Client {
	return &Client{
		registry:        registry,
		sessions:        make(map[string]*mcpsdk.ClientSession),
		clients:         make(map[string]*mcpsdk.Client),
		failedProviders: make(map[string]string),
		toolCache:       make(map[string][]*mcpsdk.Tool),
		logger:          slog.Default(),
	}
}

// Initialize connects to all named provider adapters.
// Providers that fail to connect are recorded in FailedProviders; the gateway
// treats them as degraded and continues with the remaining providers.
//
// Always returns nil today; the error return is retained so the signature can
// evolve (e.g., returning an error when *all* providers fail) without breaking
// callers.
func (c *Client) Initialize(ctx context.Context, providers []string) error {
	for _, provider := range providers {
		if err := c.InitializeProvider(ctx, provider); err != nil {
			c.mu.Lock()
			c.failedProviders[provider] = err.Error()
			c.mu.Unlock()
			c.logger.Warn("Provider adapter failed to initialize",
				"provider", provider, "error", err)
		}
	}
	return nil
}

// InitializeProvider connects to a single provider adapter.
// Returns nil if already connected. Used for lazy initialization and recovery.
// Uses a per-provider mutex to prevent concurrent initialization of the same adapter.
func (c *Client) InitializeProvider(ctx context.Context, provider string) error {
	muI, _ := c.reinitMu.LoadOrStore(provider, &sync.Mutex{})
	mu := muI.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()

	return c.initializeProviderLocked(ctx, provider)
}

// initializeProviderLocked performs the actual adapter connection.
// Caller must hold the per-provider reinitMu lock.
func (c *Client) initializeProviderLocked(ctx context.Context, provider string) error {
	// Check if already connected (under per-provider lock, no TOCTOU race)
	c.mu.RLock()
	if _, exists := c.sessions[provider]; exists {
		c.mu.RUnlock()
		return nil
	}
	c.mu.RUnlock()

	providerCfg, err := c.registry.Get(provider)
	if err != nil {
		return fmt.Errorf("provider %q not found in registry: %w", provider, err)
	}

	transport, err := createTransport(providerCfg)
	if err != nil {
		return fmt.Errorf("failed to create transport for %q: %w", provider, err)
	}

	initCtx, cancel := context.WithTimeout(ctx, AdapterInitTimeout)
	defer cancel()

	client := mcpsdk.NewClient(&mcpsdk.Implementation{
		Name:    version.AppName,
		Version: version.GitCommit,
	}, nil)

	session, err := client.Connect(initCtx, transport, nil)
	if err != nil {
		// Defensive: close the transport if it implements io.Closer to avoid
		// leaking resources (e.g., stdio child processes). The SDK closes the
		// underlying connection on most failure paths, but this guards against
		// edge cases and future transport types.
		if closer, ok := transport.(io.Closer); ok {
			_ = closer.Close()
		}
		return fmt.Errorf("failed to connect to %q: %w", provider, err)
	}

	// Store session and clear failure record
	c.mu.Lock()
	c.sessions[provider] = session
	c.clients[provider] = client
	delete(c.failedProviders, provider)
	c.mu.Unlock()

	c.logger.Info("Provider adapter connected", "provider", provider)
	return nil
}

// ListTools returns tools from a specific provider adapter. Uses cache if available.
func (c *Client) ListTools(ctx context.Context, provider string) ([]*mcpsdk.Tool, error) {
	// Check cache first
	// Lock ordering: never acquire c.mu while holding toolCacheMu.
	c.toolCacheMu.RLock()
	if cached, ok := c.toolCache[provider]; ok {
		c.toolCacheMu.RUnlock()
		return cached, nil
	}
	c.toolCacheMu.RUnlock()

	c.mu.RLock()
	session, exists := c.sessions[provider]
	c.mu.RUnlock()
	if !exists {
		return nil, fmt.Errorf("no session for provider %q", provider)
	}

	opCtx, cancel := context.WithTimeout(ctx, OperationTimeout)
	defer cancel()

	result, err := session.ListTools(opCtx, nil)
	if err != nil {
		return nil, fmt.Errorf("list tools from %q: %w", provider, err)
	}

	// Cache results (nil-guard: ensure we always cache a non-nil slice so
	// cache hits don't return nil to callers).
	tools := result.Tools
	if tools == nil {
		tools = []*mcpsdk.Tool{}
	}
	c.toolCacheMu.Lock()
	c.toolCache[provider] = tools
	c.toolCacheMu.Unlock()

	return tools, nil
}

// ListAllTools returns tools from all connected provider adapters.
// Returns partial results if some adapters fail (logs errors, does not abort).
// Returns an error only when every adapter fails (no tools available at all).
func (c *Client) ListAllTools(ctx context.Context) (map[string][]*mcpsdk.Tool, error) {
	c.mu.RLock()
	providers := make([]string, 0, len(c.sessions))
	for id := range c.sessions {
		providers = append(providers, id)
	}
	c.mu.RUnlock()

	result := make(map[string][]*mcpsdk.Tool)
	var lastErr error
	for _, id := range providers {
		tools, err := c.ListTools(ctx, id)
		if err != nil {
			lastErr = err
			c.logger.Warn("Failed to list tools from provider adapter",
				"provider", id, "error", err)
			continue
		}
		result[id] = tools
	}

	if len(result) == 0 && lastErr != nil {
		return nil, fmt.Errorf("all provider adapters failed to list tools: %w", lastErr)
	}
	return result, nil
}

// CallTool executes a tool call on the specified provider adapter.
// Handles recovery (retry with session recreation) on transport failures.
// At most one retry is attempted after a jittered backoff; if the retry also
// fails the error is returned to the caller. The gateway layers its own
// transient-error retry policy on top of this transport-level recovery.
func (c *Client) CallTool(ctx context.Context, provider, toolName string, args map[string]any) (*mcpsdk.CallToolResult, error) {
	params := &mcpsdk.CallToolParams{
		Name:      toolName,
		Arguments: args,
	}

	// First attempt
	result, err := c.callToolOnce(ctx, provider, params)
	if err == nil {
		return result, nil
	}

	// Classify error for recovery
	action := ClassifyError(err)
	if action == NoRetry {
		return nil, err
	}

	c.logger.Info("Provider call failed, retrying",
		"provider", provider, "tool", toolName,
		"action", action, "error", err)

	// Jittered backoff
	backoff := RetryBackoffMin + time.Duration(rand.Int64N(int64(RetryBackoffMax-RetryBackoffMin)))
	select {
	case <-time.After(backoff):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	// Recreate session if needed
	if action == RetryNewSession {
		if err := c.recreateSession(ctx, provider); err != nil {
			return nil, fmt.Errorf("session recreation failed for %q: %w", provider, err)
		}
	}

	// Second attempt
	result, err = c.callToolOnce(ctx, provider, params)
	if err != nil {
		return nil, fmt.Errorf("retry failed for %s.%s: %w", provider, toolName, err)
	}
	return result, nil
}

// callToolOnce performs a single CallTool attempt.
func (c *Client) callToolOnce(ctx context.Context, provider string, params *mcpsdk.CallToolParams) (*mcpsdk.CallToolResult, error) {
	c.mu.RLock()
	session, exists := c.sessions[provider]
	c.mu.RUnlock()
	if !exists {
		return nil, fmt.Errorf("no session for provider %q", provider)
	}

	opCtx, cancel := context.WithTimeout(ctx, OperationTimeout)
	defer cancel()

	return session.CallTool(opCtx, params)
}

// recreateSession tears down and recreates the session for a provider adapter.
// Uses a per-provider mutex to prevent concurrent recreation.
//
// Note: if two goroutines race into recreateSession, the second will
// unnecessarily tear down the freshly recreated session and create another.
// A staleness guard (checking if session exists after lock) doesn't work here
// because the first caller also sees the broken session in the map.
// The cost is an extra recreation, which is acceptable for simplicity.
func (c *Client) recreateSession(ctx context.Context, provider string) error {
	muI, _ := c.reinitMu.LoadOrStore(provider, &sync.Mutex{})
	mu := muI.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()

	// Close existing session
	c.mu.Lock()
	if session, exists := c.sessions[provider]; exists {
		_ = session.Close()
		delete(c.sessions, provider)
		delete(c.clients, provider)
	}
	c.mu.Unlock()

	c.InvalidateToolCache(provider)

	// Reinitialize with timeout (use locked variant — we already hold reinitMu)
	reinitCtx, cancel := context.WithTimeout(ctx, ReinitTimeout)
	defer cancel()

	return c.initializeProviderLocked(reinitCtx, provider)
}

// Close shuts down all sessions and transports gracefully.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var firstErr error
	for id, session := range c.sessions {
		if err := session.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close session %q: %w", id, err)
		}
	}

	// Clear all state
	c.sessions = make(map[string]*mcpsdk.ClientSession)
	c.clients = make(map[string]*mcpsdk.Client)
	c.failedProviders = make(map[string]string)

	// Lock ordering note: mu → toolCacheMu is safe here because no other
	// code path holds toolCacheMu while acquiring mu.
	c.toolCacheMu.Lock()
	c.toolCache = make(map[string][]*mcpsdk.Tool)
	c.toolCacheMu.Unlock()

	return firstErr
}

// InvalidateToolCache removes the cached tool list for a provider,
// forcing the next ListTools call to re-probe the adapter.
// Lock ordering: never acquire c.mu while holding toolCacheMu.
func (c *Client) InvalidateToolCache(provider string) {
	c.toolCacheMu.Lock()
	delete(c.toolCache, provider)
	c.toolCacheMu.Unlock()
}

// HasSession checks if a provider has an active session.
func (c *Client) HasSession(provider string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, exists := c.sessions[provider]
	return exists
}

// FailedProviders returns the map of providers that failed to initialize.
func (c *Client) FailedProviders() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make(map[string]string, len(c.failedProviders))
	for k, v := range c.failedProviders {
		result[k] = v
	}
	return result
}
