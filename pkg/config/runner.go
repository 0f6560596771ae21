package config

import "time"

// RunnerConfig tunes the task runner: how pending tasks are picked up and
// how task liveness is maintained.
type RunnerConfig struct {
	// PollInterval is how often the runner scans for pending tasks.
	PollInterval time.Duration `yaml:"poll_interval"`

	// MaxParallelTasks bounds how many tasks one pod executes at once.
	MaxParallelTasks int `yaml:"max_parallel_tasks"`

	// HeartbeatInterval is how often a running task's heartbeat is refreshed.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// HeartbeatTTL is how long a task heartbeat may go stale before another
	// pod treats the task as orphaned.
	HeartbeatTTL time.Duration `yaml:"heartbeat_ttl"`
}

// DefaultRunnerConfig returns the built-in runner defaults.
func DefaultRunnerConfig() *RunnerConfig {
	return &RunnerConfig{
		PollInterval:      5 * time.Second,
		MaxParallelTasks:  4,
		HeartbeatInterval: 15 * time.Second,
		HeartbeatTTL:      2 * time.Minute,
	}
}
