package config

import "time"

// QueueSettings configures one named coordinator queue.
type QueueSettings struct {
	// Cap is the maximum queue depth; submissions beyond it get queue_full.
	Cap int `yaml:"cap"`

	// Concurrency caps how many ops from this queue may be in flight at once.
	// Zero means bounded only by the global worker count.
	Concurrency int `yaml:"concurrency"`
}

// CoordinatorConfig contains worker pool and queue configuration.
// These values control how operations are queued, dispatched, and retried.
type CoordinatorConfig struct {
	// WorkerCount is the number of worker goroutines draining the queues.
	WorkerCount int `yaml:"worker_count"`

	// Queues maps queue name → settings. Unknown queues get DefaultQueueCap.
	Queues map[string]QueueSettings `yaml:"queues"`

	// MaxRetries is the per-operation retry budget for transient errors.
	MaxRetries int `yaml:"max_retries"`

	// RetryBase is the base delay for exponential retry backoff.
	RetryBase time.Duration `yaml:"retry_base"`

	// OpTimeout is the default per-operation deadline.
	OpTimeout time.Duration `yaml:"op_timeout"`

	// HeartbeatInterval is how often each worker emits a heartbeat.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// HeartbeatTTL is how long a worker may go silent before it is marked
	// stale and its in-flight operation requeued.
	HeartbeatTTL time.Duration `yaml:"heartbeat_ttl"`

	// StatsInterval is how often a stats_snapshot event is published.
	StatsInterval time.Duration `yaml:"stats_interval"`

	// GracefulShutdownTimeout is the max time to wait for in-flight
	// operations to finish during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// DefaultQueueCap bounds queues that have no explicit settings.
const DefaultQueueCap = 1024

// DefaultCoordinatorConfig returns the built-in coordinator defaults.
func DefaultCoordinatorConfig() *CoordinatorConfig {
	return &CoordinatorConfig{
		WorkerCount: 8,
		Queues: map[string]QueueSettings{
			"search":    {Cap: 512, Concurrency: 16},
			"llm":       {Cap: 256, Concurrency: 8},
			"synthesis": {Cap: 64, Concurrency: 4},
		},
		MaxRetries:              3,
		RetryBase:               500 * time.Millisecond,
		OpTimeout:               5 * time.Minute,
		HeartbeatInterval:       10 * time.Second,
		HeartbeatTTL:            30 * time.Second,
		StatsInterval:           5 * time.Second,
		GracefulShutdownTimeout: 10 * time.Minute,
	}
}
