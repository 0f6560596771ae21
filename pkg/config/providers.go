package config

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// ProviderType identifies a supported search provider.
type ProviderType string

const (
	// ProviderTypeLinkup is the Linkup search API.
	ProviderTypeLinkup ProviderType = "linkup"
	// ProviderTypeExa is the Exa neural search API.
	ProviderTypeExa ProviderType = "exa"
	// ProviderTypePerplexity is the Perplexity search API.
	ProviderTypePerplexity ProviderType = "perplexity"
	// ProviderTypeFirecrawl is the Firecrawl crawl/scrape API.
	ProviderTypeFirecrawl ProviderType = "firecrawl"
)

// IsValid checks if the provider type is valid.
func (t ProviderType) IsValid() bool {
	switch t {
	case ProviderTypeLinkup, ProviderTypeExa, ProviderTypePerplexity, ProviderTypeFirecrawl:
		return true
	default:
		return false
	}
}

// TransportType defines MCP adapter transport types.
type TransportType string

const (
	// TransportTypeStdio uses subprocess communication via stdin/stdout.
	TransportTypeStdio TransportType = "stdio"
	// TransportTypeHTTP uses streamable HTTP.
	TransportTypeHTTP TransportType = "http"
)

// IsValid checks if the transport type is valid.
func (t TransportType) IsValid() bool {
	return t == TransportTypeStdio || t == TransportTypeHTTP
}

// ProviderConfig defines one search provider reached through an MCP adapter.
type ProviderConfig struct {
	// Provider type (required)
	Type ProviderType `yaml:"type"`

	// Transport to the MCP adapter process/endpoint
	Transport TransportType `yaml:"transport"`

	// Command + args for stdio transport
	Command string   `yaml:"command,omitempty"`
	Args    []string `yaml:"args,omitempty"`

	// URL for http transport
	URL string `yaml:"url,omitempty"`

	// Environment variable holding the provider API key. A missing key marks
	// the provider degraded, not misconfigured.
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	// Enabled toggles the provider without removing its config.
	Enabled bool `yaml:"enabled"`

	// RPS is the request-per-second budget (token bucket).
	RPS float64 `yaml:"rps"`

	// Concurrency caps simultaneous in-flight calls to this provider.
	Concurrency int `yaml:"concurrency"`

	// Timeout bounds a single call.
	Timeout time.Duration `yaml:"timeout"`
}

// ProviderRegistry stores search provider configurations with thread-safe access.
type ProviderRegistry struct {
	providers map[string]*ProviderConfig
	mu        sync.RWMutex
}

// NewProviderRegistry creates a new provider registry.
func NewProviderRegistry(providers map[string]*ProviderConfig) *ProviderRegistry {
	// Defensive copy to prevent external mutation
	copied := make(map[string]*ProviderConfig, len(providers))
	for k, v := range providers {
		copied[k] = v
	}
	return &ProviderRegistry{providers: copied}
}

// Get retrieves a provider configuration by name (thread-safe).
func (r *ProviderRegistry) Get(name string) (*ProviderConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, exists := r.providers[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrProviderNotFound, name)
	}
	return provider, nil
}

// GetAll returns all provider configurations (thread-safe, returns copy).
func (r *ProviderRegistry) GetAll() map[string]*ProviderConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*ProviderConfig, len(r.providers))
	for k, v := range r.providers {
		result[k] = v
	}
	return result
}

// Has checks if a provider exists in the registry (thread-safe).
func (r *ProviderRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.providers[name]
	return exists
}

// Len returns the number of providers in the registry (thread-safe).
func (r *ProviderRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}

// EnabledNames returns a sorted list of enabled provider names.
// Sorted so fan-out submission order is deterministic.
func (r *ProviderRegistry) EnabledNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.providers))
	for name, p := range r.providers {
		if p.Enabled {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
