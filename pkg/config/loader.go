package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// NexusYAMLConfig represents the complete nexus.yaml file structure.
type NexusYAMLConfig struct {
	Coordinator *CoordinatorConfig `yaml:"coordinator"`
	Bus         *BusConfig         `yaml:"bus"`
	Pipeline    *PipelineConfig    `yaml:"pipeline"`
	Runner      *RunnerConfig      `yaml:"runner"`
	LLM         *LLMConfig         `yaml:"llm"`
	Storage     *StorageConfig     `yaml:"storage"`
	Retention   *RetentionConfig   `yaml:"retention"`
}

// ProvidersYAMLConfig represents the complete providers.yaml file structure.
type ProvidersYAMLConfig struct {
	Providers map[string]ProviderConfig `yaml:"providers"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load YAML files from configDir
//  2. Expand environment variables in file content
//  3. Merge user config over built-in defaults
//  4. Apply environment variable overrides (WORKER_COUNT, PROVIDER_<NAME>_RPS, …)
//  5. Build the provider registry
//  6. Validate all configuration
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"providers", stats.Providers,
		"enabled_providers", stats.EnabledProviders,
		"queues", stats.Queues)

	return cfg, nil
}

// load is the internal loader (not exported).
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{configDir: configDir}

	nexusCfg, err := loader.loadNexusYAML()
	if err != nil {
		return nil, NewLoadError("nexus.yaml", err)
	}

	providers, err := loader.loadProvidersYAML()
	if err != nil {
		return nil, NewLoadError("providers.yaml", err)
	}

	// Merge user YAML over built-in defaults (non-zero values override).
	coordinator := DefaultCoordinatorConfig()
	if nexusCfg.Coordinator != nil {
		if err := mergo.Merge(coordinator, nexusCfg.Coordinator, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge coordinator config: %w", err)
		}
	}
	bus := DefaultBusConfig()
	if nexusCfg.Bus != nil {
		if err := mergo.Merge(bus, nexusCfg.Bus, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge bus config: %w", err)
		}
	}
	pipeline := DefaultPipelineConfig()
	if nexusCfg.Pipeline != nil {
		if err := mergo.Merge(pipeline, nexusCfg.Pipeline, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge pipeline config: %w", err)
		}
	}
	runner := DefaultRunnerConfig()
	if nexusCfg.Runner != nil {
		if err := mergo.Merge(runner, nexusCfg.Runner, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge runner config: %w", err)
		}
	}
	llm := DefaultLLMConfig()
	if nexusCfg.LLM != nil {
		if err := mergo.Merge(llm, nexusCfg.LLM, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge llm config: %w", err)
		}
	}
	storage := DefaultStorageConfig()
	if nexusCfg.Storage != nil && nexusCfg.Storage.Root != "" {
		storage.Root = nexusCfg.Storage.Root
	}
	retention := DefaultRetentionConfig()
	if nexusCfg.Retention != nil {
		if err := mergo.Merge(retention, nexusCfg.Retention, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge retention config: %w", err)
		}
	}

	applyEnvOverrides(coordinator, bus, runner, llm, providers)

	providerPtrs := make(map[string]*ProviderConfig, len(providers))
	for name := range providers {
		p := providers[name]
		if p.Timeout == 0 {
			p.Timeout = 30 * time.Second
		}
		providerPtrs[name] = &p
	}

	return &Config{
		configDir:        configDir,
		Coordinator:      coordinator,
		Bus:              bus,
		Pipeline:         pipeline,
		Runner:           runner,
		LLM:              llm,
		Storage:          storage,
		Retention:        retention,
		ProviderRegistry: NewProviderRegistry(providerPtrs),
	}, nil
}

// applyEnvOverrides applies the recognized environment variables on top of
// the merged YAML configuration. Env always wins.
func applyEnvOverrides(coordinator *CoordinatorConfig, bus *BusConfig, runner *RunnerConfig, llm *LLMConfig, providers map[string]ProviderConfig) {
	if v, ok := envInt("WORKER_COUNT"); ok {
		coordinator.WorkerCount = v
	}
	if v, ok := envInt("MAX_RETRIES"); ok {
		coordinator.MaxRetries = v
	}
	if v, ok := envInt("RETRY_BASE_MS"); ok {
		coordinator.RetryBase = time.Duration(v) * time.Millisecond
	}
	if v, ok := envInt("HEARTBEAT_INTERVAL_SEC"); ok {
		coordinator.HeartbeatInterval = time.Duration(v) * time.Second
	}
	if v, ok := envInt("HEARTBEAT_TTL_SEC"); ok {
		coordinator.HeartbeatTTL = time.Duration(v) * time.Second
	}
	if v, ok := envInt("MAX_PARALLEL_TASKS"); ok {
		runner.MaxParallelTasks = v
	}
	if v, ok := envInt("EVENT_MAX_BYTES"); ok {
		bus.MaxEventBytes = v
	}
	if v := os.Getenv("LLM_REASONING_MODEL"); v != "" {
		llm.ReasoningModel = v
	}
	if v := os.Getenv("LLM_TASK_MODEL"); v != "" {
		llm.TaskModel = v
	}

	// QUEUE_<NAME>_CAP
	for name, q := range coordinator.Queues {
		if v, ok := envInt("QUEUE_" + strings.ToUpper(name) + "_CAP"); ok {
			q.Cap = v
			coordinator.Queues[name] = q
		}
	}

	// PROVIDER_<NAME>_RPS / PROVIDER_<NAME>_CONCURRENCY
	for name, p := range providers {
		upper := strings.ToUpper(name)
		if v, ok := envFloat("PROVIDER_" + upper + "_RPS"); ok {
			p.RPS = v
		}
		if v, ok := envInt("PROVIDER_" + upper + "_CONCURRENCY"); ok {
			p.Concurrency = v
		}
		providers[name] = p
	}
}

func envInt(key string) (int, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("Ignoring non-integer environment override", "key", key, "value", raw)
		return 0, false
	}
	return v, true
}

func envFloat(key string) (float64, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		slog.Warn("Ignoring non-numeric environment override", "key", key, "value", raw)
		return 0, false
	}
	return v, true
}

// validate performs comprehensive validation on loaded configuration.
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	// ExpandEnv passes through original data on parse/execution errors,
	// letting the YAML parser produce a clearer error message.
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadNexusYAML() (*NexusYAMLConfig, error) {
	var config NexusYAMLConfig
	if err := l.loadYAML("nexus.yaml", &config); err != nil {
		return nil, err
	}
	return &config, nil
}

func (l *configLoader) loadProvidersYAML() (map[string]ProviderConfig, error) {
	var config ProvidersYAMLConfig
	config.Providers = make(map[string]ProviderConfig)
	if err := l.loadYAML("providers.yaml", &config); err != nil {
		return nil, err
	}
	return config.Providers, nil
}
