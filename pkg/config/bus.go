package config

import "time"

// BusConfig contains monitoring event bus configuration.
type BusConfig struct {
	// MaxEventBytes bounds a single event payload. Oversized payloads are
	// replaced with a truncation envelope carrying truncated=true.
	MaxEventBytes int `yaml:"max_event_bytes"`

	// PublishRetries bounds best-effort publish retries.
	PublishRetries int `yaml:"publish_retries"`

	// PublishBackoffBase is the base delay for publish retry backoff.
	PublishBackoffBase time.Duration `yaml:"publish_backoff_base"`

	// KeepaliveInterval is the WebSocket ping cadence. Must be ≤ 30s per the
	// monitor stream contract.
	KeepaliveInterval time.Duration `yaml:"keepalive_interval"`
}

// DefaultBusConfig returns the built-in event bus defaults.
func DefaultBusConfig() *BusConfig {
	return &BusConfig{
		MaxEventBytes:      10 * 1024,
		PublishRetries:     3,
		PublishBackoffBase: 100 * time.Millisecond,
		KeepaliveInterval:  25 * time.Second,
	}
}
