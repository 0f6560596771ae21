package config

import "time"

// PipelineConfig tunes the research pipelines and synthesis stages.
type PipelineConfig struct {
	// MinSuccessRatioFanOut is the minimum fraction of fan-out operations
	// that must succeed for a phase to complete.
	MinSuccessRatioFanOut float64 `yaml:"min_success_ratio_fan_out"`

	// PhaseTimeout bounds a single orchestrator phase. On breach, remaining
	// in-flight ops are cancelled and the phase is evaluated under the
	// success ratio.
	PhaseTimeout time.Duration `yaml:"phase_timeout"`

	// MaxTreeDepth bounds the knowledge forest depth.
	MaxTreeDepth int `yaml:"max_tree_depth"`

	// MaxFactLength bounds a single DOK-1 fact, in bytes.
	MaxFactLength int `yaml:"max_fact_length"`

	// MaxEvidenceBytes bounds a single evidence payload.
	MaxEvidenceBytes int `yaml:"max_evidence_bytes"`

	// MaxSubtopics bounds topic decomposition output.
	MaxSubtopics int `yaml:"max_subtopics"`
}

// DefaultPipelineConfig returns the built-in pipeline defaults.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		MinSuccessRatioFanOut: 0.5,
		PhaseTimeout:          10 * time.Minute,
		MaxTreeDepth:          4,
		MaxFactLength:         512,
		MaxEvidenceBytes:      64 * 1024,
		MaxSubtopics:          8,
	}
}

// RetentionConfig controls soft-delete retention and transient event cleanup.
type RetentionConfig struct {
	// TaskRetentionDays is how long completed tasks are kept before the
	// retention sweep soft-deletes them. Zero disables the sweep.
	TaskRetentionDays int `yaml:"task_retention_days"`

	// EventTTL is how long persisted events are kept for catchup. Catchup
	// past the TTL falls back to a full REST reload.
	EventTTL time.Duration `yaml:"event_ttl"`

	// CleanupInterval is how often the retention sweep runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		TaskRetentionDays: 90,
		EventTTL:          24 * time.Hour,
		CleanupInterval:   6 * time.Hour,
	}
}

// StorageConfig locates the artifact object store.
type StorageConfig struct {
	// Root is the base directory; artifacts live at
	// {Root}/{task_id}/{artifact_uuid}.{ext}.
	Root string `yaml:"root"`
}

// DefaultStorageConfig returns the built-in storage defaults.
func DefaultStorageConfig() *StorageConfig {
	return &StorageConfig{Root: "storage"}
}
