package config

import "time"

// ModelRole selects which configured model an LLM call uses.
type ModelRole string

const (
	// ModelRoleReasoning is the heavyweight model for decomposition,
	// planning, tree building, insight and POV generation.
	ModelRoleReasoning ModelRole = "reasoning"
	// ModelRoleTask is the lightweight model for summarization and
	// extraction fan-out.
	ModelRoleTask ModelRole = "task"
)

// IsValid checks if the model role is valid.
func (r ModelRole) IsValid() bool {
	return r == ModelRoleReasoning || r == ModelRoleTask
}

// LLMConfig configures the gRPC LLM sidecar and the two model roles.
type LLMConfig struct {
	// ServiceAddr is the sidecar gRPC address.
	ServiceAddr string `yaml:"service_addr"`

	// ReasoningModel handles planning and synthesis calls.
	ReasoningModel string `yaml:"reasoning_model"`

	// TaskModel handles high-volume summarization/extraction calls.
	TaskModel string `yaml:"task_model"`

	// Temperature, applied to both roles when set.
	Temperature *float32 `yaml:"temperature,omitempty"`

	// MaxTokens caps completion length when set.
	MaxTokens *int32 `yaml:"max_tokens,omitempty"`

	// Timeout bounds a single completion call.
	Timeout time.Duration `yaml:"timeout"`

	// RPS is the completions-per-second budget shared by both roles.
	RPS float64 `yaml:"rps"`

	// Concurrency caps simultaneous in-flight completions.
	Concurrency int `yaml:"concurrency"`
}

// ModelFor returns the configured model name for a role.
func (c *LLMConfig) ModelFor(role ModelRole) string {
	if role == ModelRoleReasoning {
		return c.ReasoningModel
	}
	return c.TaskModel
}

// DefaultLLMConfig returns the built-in LLM defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		ServiceAddr:    "localhost:50051",
		ReasoningModel: "gemini-2.5-pro",
		TaskModel:      "gemini-2.5-flash",
		Timeout:        2 * time.Minute,
		RPS:            4,
		Concurrency:    8,
	}
}
