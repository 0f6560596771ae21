package config

// Config is the umbrella configuration object that encapsulates all
// registries, defaults, and configuration state. This is the primary object
// returned by Initialize() and used throughout the application.
type Config struct {
	configDir string

	// Coordinator and worker pool configuration
	Coordinator *CoordinatorConfig

	// Event bus configuration
	Bus *BusConfig

	// Research pipeline tuning
	Pipeline *PipelineConfig

	// Task runner (claiming, parallelism, heartbeats)
	Runner *RunnerConfig

	// LLM sidecar configuration (reasoning + task model roles)
	LLM *LLMConfig

	// Artifact object store
	Storage *StorageConfig

	// Retention / cleanup
	Retention *RetentionConfig

	// Search provider registry
	ProviderRegistry *ProviderRegistry
}

// Stats contains statistics about loaded configuration.
type Stats struct {
	Providers        int
	EnabledProviders int
	Queues           int
}

// Stats returns configuration statistics for logging/monitoring.
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.ProviderRegistry != nil {
		s.Providers = c.ProviderRegistry.Len()
		s.EnabledProviders = len(c.ProviderRegistry.EnabledNames())
	}
	if c.Coordinator != nil {
		s.Queues = len(c.Coordinator.Queues)
	}
	return s
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetProvider retrieves a search provider configuration by name.
// Convenience wrapper around ProviderRegistry.Get().
func (c *Config) GetProvider(name string) (*ProviderConfig, error) {
	return c.ProviderRegistry.Get(name)
}

// EnabledProviders returns the sorted names of all enabled search providers.
func (c *Config) EnabledProviders() []string {
	return c.ProviderRegistry.EnabledNames()
}
