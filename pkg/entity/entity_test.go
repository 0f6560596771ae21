package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Acme, Inc.", "acme inc"},
		{"  ACME   INC ", "acme inc"},
		{"O'Brien & Sons", "obrien sons"},
		{"Vertex-42", "vertex42"},
		{"", ""},
		{"...", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeName(tt.in), "input %q", tt.in)
	}
}

func candidateAt(name, id, taskID string, confidence float64, attrs map[string]string, ts time.Time) Candidate {
	return Candidate{
		Name:             name,
		UniqueIdentifier: id,
		Attributes:       attrs,
		Confidence:       confidence,
		TaskID:           taskID,
		SourceURL:        "https://example.com/" + taskID,
		ObservedAt:       ts,
	}
}

func TestResolve_GroupsByUniqueIdentifier(t *testing.T) {
	now := time.Now()
	candidates := []Candidate{
		candidateAt("Acme Inc", "ACME-1", "t1", 0.9, map[string]string{"hq": "Berlin"}, now),
		candidateAt("ACME Incorporated", "ACME-1", "t2", 0.8, map[string]string{"hq": "Berlin"}, now),
		candidateAt("Globex", "GLOB-7", "t1", 0.7, nil, now),
	}

	resolved := Resolve(candidates, nil, now)
	require.Len(t, resolved, 2)

	// Deterministic order: sorted by normalized name.
	assert.Equal(t, "Acme Inc", resolved[0].Name)
	assert.Equal(t, "ACME-1", resolved[0].UniqueIdentifier)
	assert.ElementsMatch(t, []string{"t1", "t2"}, resolved[0].SourceTasks)
	assert.Equal(t, "Globex", resolved[1].Name)
}

func TestResolve_GroupsByNormalizedName(t *testing.T) {
	now := time.Now()
	candidates := []Candidate{
		candidateAt("Acme, Inc.", "", "t1", 0.9, nil, now),
		candidateAt("acme inc", "", "t2", 0.6, nil, now),
		candidateAt("Initech", "", "t1", 0.5, nil, now),
	}

	resolved := Resolve(candidates, nil, now)
	require.Len(t, resolved, 2)
	assert.Equal(t, "acme inc", resolved[0].NormalizedName)
	assert.ElementsMatch(t, []string{"t1", "t2"}, resolved[0].SourceTasks)
}

func TestResolve_DropsEmptyNames(t *testing.T) {
	now := time.Now()
	candidates := []Candidate{
		candidateAt("  ", "", "t1", 0.9, nil, now),
		candidateAt("Kept", "", "t1", 0.9, nil, now),
	}

	resolved := Resolve(candidates, nil, now)
	require.Len(t, resolved, 1)
	assert.Equal(t, "Kept", resolved[0].Name)
}

func TestMerge_HighestSummedConfidenceWins(t *testing.T) {
	now := time.Now()
	// "Berlin" is attested twice (0.4 + 0.4 = 0.8), beating a single 0.7.
	group := []Candidate{
		candidateAt("Acme", "A1", "t1", 0.4, map[string]string{"hq": "Berlin"}, now.Add(-2*time.Hour)),
		candidateAt("Acme", "A1", "t2", 0.4, map[string]string{"hq": "Berlin"}, now.Add(-time.Hour)),
		candidateAt("Acme", "A1", "t3", 0.7, map[string]string{"hq": "Munich"}, now),
	}

	r := Merge(group, now)
	assert.Equal(t, "Berlin", r.Attributes["hq"])
	require.Contains(t, r.Lineage.Attributes, "hq")
	assert.Len(t, r.Lineage.Attributes["hq"].Sources, 3, "all observed values kept in lineage")
}

func TestMerge_TieBreaksTowardMostRecent(t *testing.T) {
	now := time.Now()
	group := []Candidate{
		candidateAt("Acme", "A1", "t1", 0.5, map[string]string{"ceo": "Old Name"}, now.Add(-time.Hour)),
		candidateAt("Acme", "A1", "t2", 0.5, map[string]string{"ceo": "New Name"}, now),
	}

	r := Merge(group, now)
	assert.Equal(t, "New Name", r.Attributes["ceo"])
}

func TestMerge_AverageConfidenceOverAttributes(t *testing.T) {
	now := time.Now()
	group := []Candidate{
		candidateAt("Acme", "A1", "t1", 0.8, map[string]string{"hq": "Berlin", "founded": "1999"}, now),
	}

	r := Merge(group, now)
	assert.InDelta(t, 0.8, r.ConfidenceScore, 1e-9)
	assert.Equal(t, r.ConfidenceScore, r.Lineage.Aggregate.AverageConfidence)
	assert.Equal(t, now, r.Lineage.Aggregate.ConsolidationTimestamp)
}

func TestMerge_SkipsEmptyAttributeValues(t *testing.T) {
	now := time.Now()
	group := []Candidate{
		candidateAt("Acme", "A1", "t1", 0.8, map[string]string{"hq": ""}, now),
	}

	r := Merge(group, now)
	assert.NotContains(t, r.Attributes, "hq")
}

func TestResolve_StableUnderRerun(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	candidates := []Candidate{
		candidateAt("Beta Corp", "", "t2", 0.6, map[string]string{"sector": "energy"}, now),
		candidateAt("Alpha LLC", "", "t1", 0.9, map[string]string{"sector": "tech"}, now),
		candidateAt("beta corp", "", "t1", 0.7, map[string]string{"sector": "energy"}, now),
	}

	first := Resolve(candidates, nil, now)
	second := Resolve(candidates, nil, now)
	assert.Equal(t, first, second)
	require.Len(t, first, 2)
	assert.Equal(t, "alpha llc", first[0].NormalizedName)
	assert.Equal(t, "beta corp", first[1].NormalizedName)
}

type prefixMatcher struct{}

func (prefixMatcher) SameEntity(a, b Candidate) bool {
	na, nb := NormalizeName(a.Name), NormalizeName(b.Name)
	if len(na) > 4 {
		na = na[:4]
	}
	if len(nb) > 4 {
		nb = nb[:4]
	}
	return na == nb
}

func TestResolve_CustomMatcher(t *testing.T) {
	now := time.Now()
	candidates := []Candidate{
		candidateAt("Acme GmbH", "", "t1", 0.9, nil, now),
		candidateAt("Acme AG", "", "t2", 0.5, nil, now),
	}

	resolved := Resolve(candidates, prefixMatcher{}, now)
	require.Len(t, resolved, 1)
	assert.ElementsMatch(t, []string{"t1", "t2"}, resolved[0].SourceTasks)
}
