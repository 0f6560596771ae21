package config

import (
	"fmt"
)

// Validator validates loaded configuration.
type Validator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration.
func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateAll validates every configuration section.
func (v *Validator) ValidateAll() error {
	if err := v.validateCoordinator(); err != nil {
		return err
	}
	if err := v.validateBus(); err != nil {
		return err
	}
	if err := v.validatePipeline(); err != nil {
		return err
	}
	if err := v.validateLLM(); err != nil {
		return err
	}
	return v.validateProviders()
}

func (v *Validator) validateCoordinator() error {
	c := v.cfg.Coordinator
	if c == nil {
		return fmt.Errorf("%w: coordinator configuration is nil", ErrValidationFailed)
	}
	if c.WorkerCount < 1 || c.WorkerCount > 128 {
		return fmt.Errorf("%w: worker_count must be between 1 and 128, got %d", ErrValidationFailed, c.WorkerCount)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("%w: max_retries must be non-negative", ErrValidationFailed)
	}
	if c.RetryBase <= 0 {
		return fmt.Errorf("%w: retry_base must be positive", ErrValidationFailed)
	}
	if c.OpTimeout <= 0 {
		return fmt.Errorf("%w: op_timeout must be positive", ErrValidationFailed)
	}
	if c.HeartbeatInterval <= 0 {
		return fmt.Errorf("%w: heartbeat_interval must be positive", ErrValidationFailed)
	}
	if c.HeartbeatTTL <= c.HeartbeatInterval {
		return fmt.Errorf("%w: heartbeat_ttl must be greater than heartbeat_interval", ErrValidationFailed)
	}
	if c.StatsInterval <= 0 {
		return fmt.Errorf("%w: stats_interval must be positive", ErrValidationFailed)
	}
	for name, q := range c.Queues {
		if q.Cap < 1 {
			return fmt.Errorf("%w: queue %q cap must be at least 1", ErrValidationFailed, name)
		}
		if q.Concurrency < 0 {
			return fmt.Errorf("%w: queue %q concurrency must be non-negative", ErrValidationFailed, name)
		}
	}
	return nil
}

func (v *Validator) validateBus() error {
	b := v.cfg.Bus
	if b == nil {
		return fmt.Errorf("%w: bus configuration is nil", ErrValidationFailed)
	}
	if b.MaxEventBytes < 1024 {
		return fmt.Errorf("%w: max_event_bytes must be at least 1024", ErrValidationFailed)
	}
	if b.PublishRetries < 0 {
		return fmt.Errorf("%w: publish_retries must be non-negative", ErrValidationFailed)
	}
	if b.KeepaliveInterval <= 0 || b.KeepaliveInterval > 30e9 {
		return fmt.Errorf("%w: keepalive_interval must be positive and at most 30s", ErrValidationFailed)
	}
	return nil
}

func (v *Validator) validatePipeline() error {
	p := v.cfg.Pipeline
	if p == nil {
		return fmt.Errorf("%w: pipeline configuration is nil", ErrValidationFailed)
	}
	if p.MinSuccessRatioFanOut < 0 || p.MinSuccessRatioFanOut > 1 {
		return fmt.Errorf("%w: min_success_ratio_fan_out must be in [0,1]", ErrValidationFailed)
	}
	if p.MaxTreeDepth < 1 {
		return fmt.Errorf("%w: max_tree_depth must be at least 1", ErrValidationFailed)
	}
	if p.MaxSubtopics < 1 {
		return fmt.Errorf("%w: max_subtopics must be at least 1", ErrValidationFailed)
	}
	if p.MaxEvidenceBytes < 1024 {
		return fmt.Errorf("%w: max_evidence_bytes must be at least 1024", ErrValidationFailed)
	}
	return nil
}

func (v *Validator) validateLLM() error {
	l := v.cfg.LLM
	if l == nil {
		return fmt.Errorf("%w: llm configuration is nil", ErrValidationFailed)
	}
	if l.ServiceAddr == "" {
		return NewValidationError("llm", "sidecar", "service_addr", ErrMissingRequiredField)
	}
	if l.ReasoningModel == "" {
		return NewValidationError("llm", "sidecar", "reasoning_model", ErrMissingRequiredField)
	}
	if l.TaskModel == "" {
		return NewValidationError("llm", "sidecar", "task_model", ErrMissingRequiredField)
	}
	return nil
}

func (v *Validator) validateProviders() error {
	for name, p := range v.cfg.ProviderRegistry.GetAll() {
		if !p.Type.IsValid() {
			return NewValidationError("provider", name, "type", fmt.Errorf("%w: %q", ErrInvalidValue, p.Type))
		}
		if p.Transport == "" {
			p.Transport = TransportTypeStdio
		}
		if !p.Transport.IsValid() {
			return NewValidationError("provider", name, "transport", fmt.Errorf("%w: %q", ErrInvalidValue, p.Transport))
		}
		switch p.Transport {
		case TransportTypeStdio:
			if p.Command == "" {
				return NewValidationError("provider", name, "command", ErrMissingRequiredField)
			}
		case TransportTypeHTTP:
			if p.URL == "" {
				return NewValidationError("provider", name, "url", ErrMissingRequiredField)
			}
		}
		if p.RPS < 0 {
			return NewValidationError("provider", name, "rps", fmt.Errorf("%w: must be non-negative", ErrInvalidValue))
		}
		if p.Concurrency < 0 {
			return NewValidationError("provider", name, "concurrency", fmt.Errorf("%w: must be non-negative", ErrInvalidValue))
		}
	}
	return nil
}
