package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"github.com/trilogy-group/nexus-agents/pkg/config"
	"github.com/trilogy-group/nexus-agents/pkg/llm"
	"github.com/trilogy-group/nexus-agents/pkg/mcp"
)

// DefaultCallTimeout bounds a single provider call when the provider config
// declares no timeout of its own.
const DefaultCallTimeout = 60 * time.Second

// defaultRPS and defaultConcurrency apply to providers configured without
// explicit budgets.
const (
	defaultRPS         = 2.0
	defaultConcurrency = 4
)

// fetchPreference orders provider types for Fetch: crawl-specialized first.
var fetchPreference = []config.ProviderType{
	config.ProviderTypeFirecrawl,
	config.ProviderTypeExa,
	config.ProviderTypeLinkup,
}

// providerBudget holds the per-provider admission controls. Waiters on the
// limiter are served FIFO (rate.Limiter reservation order), which gives the
// bounded-wait fairness the fan-out phases rely on.
type providerBudget struct {
	limiter *rate.Limiter
	sem     *semaphore.Weighted
}

// Gateway is the single entry point for search, fetch, and LLM calls.
// Safe for concurrent use by all workers.
type Gateway struct {
	registry *config.ProviderRegistry
	client   *mcp.Client
	llm      *llm.Client
	monitor  *mcp.HealthMonitor // nil disables health-based degradation
	retry    RetryPolicy

	budgets map[string]*providerBudget

	// Resolved adapter tool name per provider+capability.
	toolsMu sync.RWMutex
	tools   map[string]map[mcp.Capability]string

	logger *slog.Logger
}

// NewGateway wires the gateway over an initialized MCP client and LLM client.
// monitor may be nil (no health-based skipping); llmClient may be nil when the
// sidecar is not configured, in which case Complete returns degraded.
func NewGateway(
	registry *config.ProviderRegistry,
	client *mcp.Client,
	llmClient *llm.Client,
	monitor *mcp.HealthMonitor,
	retry RetryPolicy,
) *Gateway {
	if retry.MaxAttempts <= 0 {
		retry.MaxAttempts = 1
	}
	if retry.BackoffBase <= 0 {
		retry.BackoffBase = 500 * time.Millisecond
	}

	budgets := make(map[string]*providerBudget, registry.Len())
	for name, cfg := range registry.GetAll() {
		rps := cfg.RPS
		if rps <= 0 {
			rps = defaultRPS
		}
		concurrency := cfg.Concurrency
		if concurrency <= 0 {
			concurrency = defaultConcurrency
		}
		budgets[name] = &providerBudget{
			limiter: rate.NewLimiter(rate.Limit(rps), 1),
			sem:     semaphore.NewWeighted(int64(concurrency)),
		}
	}

	return &Gateway{
		registry: registry,
		client:   client,
		llm:      llmClient,
		monitor:  monitor,
		retry:    retry,
		budgets:  budgets,
		tools:    make(map[string]map[mcp.Capability]string),
		logger:   slog.Default(),
	}
}

// Search runs one query against one provider and returns the parsed hits.
// Zero hits is a successful outcome, not an error.
func (g *Gateway) Search(ctx context.Context, provider, query string, opts SearchOptions) Result[[]SearchResult] {
	cfg, err := g.registry.Get(provider)
	if err != nil {
		return resultDegraded[[]SearchResult]("unknown provider " + provider)
	}
	if reason := g.degradedReason(provider, cfg); reason != "" {
		return resultDegraded[[]SearchResult](reason)
	}

	return retryCall(ctx, g, classifyProviderError, func(ctx context.Context) ([]SearchResult, error) {
		text, err := g.callTool(ctx, provider, cfg, mcp.CapabilitySearch, buildSearchArgs(cfg.Type, query, opts))
		if err != nil {
			return nil, err
		}
		return parseSearchResults(provider, text), nil
	})
}

// Fetch retrieves the content of a URL through the first usable fetch-capable
// provider (crawl-specialized providers preferred). Providers that come back
// degraded or failed are skipped in favor of the next; the last failure wins
// when every provider fails.
func (g *Gateway) Fetch(ctx context.Context, url string) Result[*Document] {
	var last Result[*Document]
	tried := false

	for _, provider := range g.fetchOrder() {
		cfg, err := g.registry.Get(provider)
		if err != nil {
			continue
		}
		if reason := g.degradedReason(provider, cfg); reason != "" {
			continue
		}
		tried = true

		result := retryCall(ctx, g, classifyProviderError, func(ctx context.Context) (*Document, error) {
			text, err := g.callTool(ctx, provider, cfg, mcp.CapabilityFetch, map[string]any{"url": url})
			if err != nil {
				return nil, err
			}
			return &Document{
				URL:       url,
				Content:   text,
				Provider:  provider,
				FetchedAt: time.Now().UTC(),
			}, nil
		})
		if result.OK() {
			return result
		}
		last = result
		if ctx.Err() != nil {
			return last
		}
		g.logger.Warn("Fetch failed, trying next provider",
			"provider", provider, "status", result.Status, "error", result.Err)
	}

	if !tried {
		return resultDegraded[*Document]("no fetch-capable provider available")
	}
	return last
}

// Complete runs an LLM completion through the sidecar with the gateway's
// retry policy. The sidecar's retryability verdict drives classification.
func (g *Gateway) Complete(ctx context.Context, input *llm.GenerateInput) Result[*llm.Completion] {
	if g.llm == nil {
		return resultDegraded[*llm.Completion]("llm sidecar not configured")
	}

	return retryCall(ctx, g, classifyLLMError, func(ctx context.Context) (*llm.Completion, error) {
		return g.llm.Complete(ctx, input)
	})
}

// EnabledProviders returns the enabled provider names in deterministic order.
func (g *Gateway) EnabledProviders() []string {
	return g.registry.EnabledNames()
}

// degradedReason returns a non-empty reason when the provider must be skipped
// without a call: disabled, missing API key, or persistently unhealthy.
func (g *Gateway) degradedReason(provider string, cfg *config.ProviderConfig) string {
	if !cfg.Enabled {
		return "provider disabled"
	}
	if cfg.APIKeyEnv != "" && os.Getenv(cfg.APIKeyEnv) == "" {
		return "API key env " + cfg.APIKeyEnv + " not set"
	}
	if g.monitor != nil && !g.monitor.IsProviderHealthy(provider) {
		return "provider adapter unhealthy"
	}
	return ""
}

// callTool performs one budgeted adapter call and returns the text content.
// An adapter IsError result becomes a *toolError so it classifies like any
// other provider failure.
func (g *Gateway) callTool(
	ctx context.Context,
	provider string,
	cfg *config.ProviderConfig,
	capability mcp.Capability,
	args map[string]any,
) (string, error) {
	budget := g.budgets[provider]
	if budget == nil {
		return "", fmt.Errorf("no budget for provider %q", provider)
	}

	if err := budget.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait for %q: %w", provider, err)
	}
	if err := budget.sem.Acquire(ctx, 1); err != nil {
		return "", fmt.Errorf("concurrency acquire for %q: %w", provider, err)
	}
	defer budget.sem.Release(1)

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultCallTimeout
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	toolName, err := g.resolveTool(callCtx, provider, cfg.Type, capability)
	if err != nil {
		return "", err
	}

	result, err := g.client.CallTool(callCtx, provider, toolName, args)
	if err != nil {
		return "", err
	}

	text := mcp.ExtractTextContent(result)
	if result.IsError {
		return "", &toolError{provider: provider, text: text}
	}
	return text, nil
}

// resolveTool finds and caches the adapter tool implementing a capability.
func (g *Gateway) resolveTool(ctx context.Context, provider string, providerType config.ProviderType, capability mcp.Capability) (string, error) {
	g.toolsMu.RLock()
	if name, ok := g.tools[provider][capability]; ok {
		g.toolsMu.RUnlock()
		return name, nil
	}
	g.toolsMu.RUnlock()

	tools, err := g.client.ListTools(ctx, provider)
	if err != nil {
		return "", err
	}
	name, err := mcp.ResolveTool(providerType, capability, tools)
	if err != nil {
		return "", err
	}

	g.toolsMu.Lock()
	if g.tools[provider] == nil {
		g.tools[provider] = make(map[mcp.Capability]string)
	}
	g.tools[provider][capability] = name
	g.toolsMu.Unlock()

	return name, nil
}

// fetchOrder lists enabled providers in fetch preference order, keeping only
// fetch-capable types.
func (g *Gateway) fetchOrder() []string {
	byType := make(map[config.ProviderType][]string)
	for _, name := range g.registry.EnabledNames() {
		cfg, err := g.registry.Get(name)
		if err != nil {
			continue
		}
		byType[cfg.Type] = append(byType[cfg.Type], name)
	}

	var order []string
	for _, pt := range fetchPreference {
		if !mcp.SupportsCapability(pt, mcp.CapabilityFetch) {
			continue
		}
		order = append(order, byType[pt]...)
	}
	return order
}

// buildSearchArgs maps the uniform search call onto each adapter's argument
// shape. The max-results key is the only field that differs by provider.
func buildSearchArgs(providerType config.ProviderType, query string, opts SearchOptions) map[string]any {
	args := map[string]any{"query": query}
	if opts.MaxResults > 0 {
		switch providerType {
		case config.ProviderTypeExa:
			args["numResults"] = opts.MaxResults
		case config.ProviderTypeFirecrawl:
			args["limit"] = opts.MaxResults
		default:
			args["max_results"] = opts.MaxResults
		}
	}
	return args
}

// retryCall runs one gateway call under the retry policy. Only transient
// failures consume the retry budget; permanent failures and context
// cancellation return immediately.
func retryCall[T any](
	ctx context.Context,
	g *Gateway,
	classify func(error) Status,
	call func(ctx context.Context) (T, error),
) Result[T] {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = g.retry.BackoffBase
	bo.MaxElapsedTime = 0

	var lastErr error
	for attempt := 1; ; attempt++ {
		value, err := call(ctx)
		if err == nil {
			return resultOK(value, attempt)
		}
		lastErr = err

		if classify(err) == StatusPermanent {
			return resultPermanent[T](attempt, err)
		}
		if attempt >= g.retry.MaxAttempts {
			return resultTransient[T](attempt, lastErr)
		}

		select {
		case <-time.After(bo.NextBackOff()):
		case <-ctx.Done():
			return resultPermanent[T](attempt, ctx.Err())
		}
	}
}
