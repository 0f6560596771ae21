package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAggregationConfig_DocumentedShape(t *testing.T) {
	// The canonical request body for an aggregation sweep: a single
	// search_space string the pipeline enumerates into subspaces.
	raw := map[string]any{
		"entities":     []any{"private schools"},
		"attributes":   []any{"name", "address", "website", "enrollment", "tuition"},
		"search_space": "California",
		"domain_hint":  "education.private_schools",
	}

	cfg, err := ParseAggregationConfig(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"private schools"}, cfg.Entities)
	assert.Equal(t, "private schools", cfg.EntityType())
	assert.Equal(t, "California", cfg.SearchSpace.Description)
	assert.Empty(t, cfg.SearchSpace.Subspaces)
	assert.Equal(t, "education.private_schools", cfg.DomainHint)
}

func TestParseAggregationConfig_PreSplitSearchSpace(t *testing.T) {
	raw := map[string]any{
		"entities":     []any{"cafe"},
		"attributes":   []any{"address"},
		"search_space": []any{"downtown", "waterfront"},
	}

	cfg, err := ParseAggregationConfig(raw)
	require.NoError(t, err)
	assert.Empty(t, cfg.SearchSpace.Description)
	assert.Equal(t, []string{"downtown", "waterfront"}, cfg.SearchSpace.Subspaces)
}

func TestParseAggregationConfig_Invalid(t *testing.T) {
	cases := map[string]map[string]any{
		"missing entities": {
			"attributes":   []any{"address"},
			"search_space": "California",
		},
		"blank entity": {
			"entities":     []any{"  "},
			"attributes":   []any{"address"},
			"search_space": "California",
		},
		"missing attributes": {
			"entities":     []any{"cafe"},
			"search_space": "California",
		},
		"missing search_space": {
			"entities":   []any{"cafe"},
			"attributes": []any{"address"},
		},
		"numeric search_space": {
			"entities":     []any{"cafe"},
			"attributes":   []any{"address"},
			"search_space": 42,
		},
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseAggregationConfig(raw)
			assert.Error(t, err)
		})
	}
}

func TestSearchSpace_JSONRoundTrip(t *testing.T) {
	var single SearchSpace
	require.NoError(t, json.Unmarshal([]byte(`"California"`), &single))
	out, err := json.Marshal(single)
	require.NoError(t, err)
	assert.JSONEq(t, `"California"`, string(out))

	var list SearchSpace
	require.NoError(t, json.Unmarshal([]byte(`["north","south"]`), &list))
	out, err = json.Marshal(list)
	require.NoError(t, err)
	assert.JSONEq(t, `["north","south"]`, string(out))
}
