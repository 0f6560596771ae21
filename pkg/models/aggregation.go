package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// AggregationConfig is the typed view of a data-aggregation task's
// data_aggregation_config JSON.
type AggregationConfig struct {
	Entities    []string    `json:"entities"`
	Attributes  []string    `json:"attributes"`
	SearchSpace SearchSpace `json:"search_space"`
	DomainHint  string      `json:"domain_hint,omitempty"`
}

// SearchSpace is either a single description of the space to sweep, which the
// pipeline enumerates into subspaces, or a subspace list the caller already
// split.
type SearchSpace struct {
	Description string
	Subspaces   []string
}

// UnmarshalJSON accepts both forms: "California" or ["Northern California",
// "Southern California"].
func (s *SearchSpace) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		s.Description = single
		s.Subspaces = nil
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return errors.New("search_space must be a string or a list of strings")
	}
	s.Description = ""
	s.Subspaces = list
	return nil
}

// MarshalJSON writes back whichever form the value carries.
func (s SearchSpace) MarshalJSON() ([]byte, error) {
	if len(s.Subspaces) > 0 {
		return json.Marshal(s.Subspaces)
	}
	return json.Marshal(s.Description)
}

// Empty reports whether neither form was provided.
func (s SearchSpace) Empty() bool {
	return s.Description == "" && len(s.Subspaces) == 0
}

// EntityType is the label consolidated entities are stored and exported
// under, derived from the requested entity kinds.
func (c *AggregationConfig) EntityType() string {
	return strings.Join(c.Entities, ", ")
}

// ParseAggregationConfig decodes and validates the stored JSON map form of
// the config.
func ParseAggregationConfig(raw map[string]any) (*AggregationConfig, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid aggregation config: %w", err)
	}
	var cfg AggregationConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid aggregation config: %w", err)
	}
	if len(cfg.Entities) == 0 {
		return nil, errors.New("aggregation config requires entities")
	}
	for _, e := range cfg.Entities {
		if strings.TrimSpace(e) == "" {
			return nil, errors.New("aggregation config entities must be non-empty")
		}
	}
	if len(cfg.Attributes) == 0 {
		return nil, errors.New("aggregation config requires at least one attribute")
	}
	if cfg.SearchSpace.Empty() {
		return nil, errors.New("aggregation config requires search_space")
	}
	return &cfg, nil
}
