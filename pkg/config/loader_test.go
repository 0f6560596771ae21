package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFiles(t *testing.T, nexusYAML, providersYAML string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nexus.yaml"), []byte(nexusYAML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "providers.yaml"), []byte(providersYAML), 0o644))
	return dir
}

const minimalProvidersYAML = `
providers:
  linkup:
    type: linkup
    transport: stdio
    command: linkup-mcp
    api_key_env: LINKUP_API_KEY
    enabled: true
    rps: 2
    concurrency: 4
`

func TestInitialize_Defaults(t *testing.T) {
	dir := writeConfigFiles(t, "", minimalProvidersYAML)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Coordinator.WorkerCount)
	assert.Equal(t, 3, cfg.Coordinator.MaxRetries)
	assert.Equal(t, 10*1024, cfg.Bus.MaxEventBytes)
	assert.Equal(t, 0.5, cfg.Pipeline.MinSuccessRatioFanOut)
	assert.Equal(t, "gemini-2.5-pro", cfg.LLM.ReasoningModel)
	assert.Equal(t, "storage", cfg.Storage.Root)

	// Queues carry built-in defaults when nexus.yaml is silent.
	require.Contains(t, cfg.Coordinator.Queues, "search")
	assert.Equal(t, 512, cfg.Coordinator.Queues["search"].Cap)

	stats := cfg.Stats()
	assert.Equal(t, 1, stats.Providers)
	assert.Equal(t, 1, stats.EnabledProviders)
	assert.Equal(t, 3, stats.Queues)
}

func TestInitialize_YAMLOverridesDefaults(t *testing.T) {
	nexusYAML := `
coordinator:
  worker_count: 16
  max_retries: 5
pipeline:
  max_tree_depth: 6
llm:
  reasoning_model: custom-pro
`
	dir := writeConfigFiles(t, nexusYAML, minimalProvidersYAML)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 16, cfg.Coordinator.WorkerCount)
	assert.Equal(t, 5, cfg.Coordinator.MaxRetries)
	assert.Equal(t, 6, cfg.Pipeline.MaxTreeDepth)
	assert.Equal(t, "custom-pro", cfg.LLM.ReasoningModel)
	// Untouched fields keep defaults.
	assert.Equal(t, 500*time.Millisecond, cfg.Coordinator.RetryBase)
	assert.Equal(t, "gemini-2.5-flash", cfg.LLM.TaskModel)
}

func TestInitialize_EnvOverridesWin(t *testing.T) {
	nexusYAML := `
coordinator:
  worker_count: 16
`
	dir := writeConfigFiles(t, nexusYAML, minimalProvidersYAML)

	t.Setenv("WORKER_COUNT", "4")
	t.Setenv("QUEUE_SEARCH_CAP", "99")
	t.Setenv("PROVIDER_LINKUP_RPS", "7.5")
	t.Setenv("PROVIDER_LINKUP_CONCURRENCY", "2")
	t.Setenv("LLM_TASK_MODEL", "env-flash")
	t.Setenv("EVENT_MAX_BYTES", "20480")
	t.Setenv("HEARTBEAT_INTERVAL_SEC", "3")
	t.Setenv("HEARTBEAT_TTL_SEC", "9")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Coordinator.WorkerCount)
	assert.Equal(t, 99, cfg.Coordinator.Queues["search"].Cap)
	assert.Equal(t, "env-flash", cfg.LLM.TaskModel)
	assert.Equal(t, 20480, cfg.Bus.MaxEventBytes)
	assert.Equal(t, 3*time.Second, cfg.Coordinator.HeartbeatInterval)
	assert.Equal(t, 9*time.Second, cfg.Coordinator.HeartbeatTTL)

	linkup, err := cfg.GetProvider("linkup")
	require.NoError(t, err)
	assert.Equal(t, 7.5, linkup.RPS)
	assert.Equal(t, 2, linkup.Concurrency)
}

func TestInitialize_InvalidEnvOverrideIgnored(t *testing.T) {
	dir := writeConfigFiles(t, "", minimalProvidersYAML)

	t.Setenv("WORKER_COUNT", "not-a-number")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Coordinator.WorkerCount)
}

func TestInitialize_MissingProvidersFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nexus.yaml"), []byte(""), 0o644))

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitialize_InvalidYAML(t *testing.T) {
	dir := writeConfigFiles(t, "coordinator: [not a map", minimalProvidersYAML)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitialize_EnvExpansionInProviders(t *testing.T) {
	providersYAML := `
providers:
  exa:
    type: exa
    transport: http
    url: "{{.EXA_ADAPTER_URL}}"
    enabled: true
    rps: 1
    concurrency: 2
`
	dir := writeConfigFiles(t, "", providersYAML)
	t.Setenv("EXA_ADAPTER_URL", "http://localhost:9201/mcp")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	exa, err := cfg.GetProvider("exa")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9201/mcp", exa.URL)
}

func TestValidator_Failures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{
			name:    "zero workers",
			mutate:  func(cfg *Config) { cfg.Coordinator.WorkerCount = 0 },
			wantErr: "worker_count",
		},
		{
			name:    "ttl below interval",
			mutate:  func(cfg *Config) { cfg.Coordinator.HeartbeatTTL = cfg.Coordinator.HeartbeatInterval },
			wantErr: "heartbeat_ttl",
		},
		{
			name:    "success ratio out of range",
			mutate:  func(cfg *Config) { cfg.Pipeline.MinSuccessRatioFanOut = 1.5 },
			wantErr: "min_success_ratio",
		},
		{
			name:    "keepalive above contract limit",
			mutate:  func(cfg *Config) { cfg.Bus.KeepaliveInterval = 45 * time.Second },
			wantErr: "keepalive_interval",
		},
		{
			name:    "missing reasoning model",
			mutate:  func(cfg *Config) { cfg.LLM.ReasoningModel = "" },
			wantErr: "reasoning_model",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Coordinator:      DefaultCoordinatorConfig(),
				Bus:              DefaultBusConfig(),
				Pipeline:         DefaultPipelineConfig(),
				LLM:              DefaultLLMConfig(),
				Storage:          DefaultStorageConfig(),
				Retention:        DefaultRetentionConfig(),
				ProviderRegistry: NewProviderRegistry(nil),
			}
			tt.mutate(cfg)

			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidator_ProviderFailures(t *testing.T) {
	tests := []struct {
		name     string
		provider ProviderConfig
		wantErr  string
	}{
		{
			name:     "unknown type",
			provider: ProviderConfig{Type: "bing", Transport: TransportTypeStdio, Command: "x"},
			wantErr:  "type",
		},
		{
			name:     "stdio without command",
			provider: ProviderConfig{Type: ProviderTypeExa, Transport: TransportTypeStdio},
			wantErr:  "command",
		},
		{
			name:     "http without url",
			provider: ProviderConfig{Type: ProviderTypeExa, Transport: TransportTypeHTTP},
			wantErr:  "url",
		},
		{
			name:     "negative rps",
			provider: ProviderConfig{Type: ProviderTypeExa, Transport: TransportTypeStdio, Command: "x", RPS: -1},
			wantErr:  "rps",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.provider
			cfg := &Config{
				Coordinator:      DefaultCoordinatorConfig(),
				Bus:              DefaultBusConfig(),
				Pipeline:         DefaultPipelineConfig(),
				LLM:              DefaultLLMConfig(),
				ProviderRegistry: NewProviderRegistry(map[string]*ProviderConfig{"bad": &p}),
			}

			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestProviderRegistry_EnabledNamesSorted(t *testing.T) {
	reg := NewProviderRegistry(map[string]*ProviderConfig{
		"perplexity": {Type: ProviderTypePerplexity, Enabled: true},
		"exa":        {Type: ProviderTypeExa, Enabled: true},
		"linkup":     {Type: ProviderTypeLinkup, Enabled: false},
	})

	assert.Equal(t, []string{"exa", "perplexity"}, reg.EnabledNames())
	assert.True(t, reg.Has("linkup"))
	assert.Equal(t, 3, reg.Len())

	_, err := reg.Get("firecrawl")
	assert.ErrorIs(t, err, ErrProviderNotFound)
}

func TestLLMConfig_ModelFor(t *testing.T) {
	cfg := DefaultLLMConfig()
	assert.Equal(t, cfg.ReasoningModel, cfg.ModelFor(ModelRoleReasoning))
	assert.Equal(t, cfg.TaskModel, cfg.ModelFor(ModelRoleTask))
}
