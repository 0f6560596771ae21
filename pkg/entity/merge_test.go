package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func obs(value, taskID string, confidence float64, ts time.Time) Observation {
	return Observation{
		Value:      value,
		TaskID:     taskID,
		SourceURL:  "https://example.com/" + taskID,
		Confidence: confidence,
		Timestamp:  ts,
	}
}

func TestMergeLineages_DedupesIdenticalObservations(t *testing.T) {
	ts := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	a := Lineage{Attributes: map[string]AttributeLineage{
		"hq": {Sources: []Observation{obs("Berlin", "t1", 0.8, ts)}},
	}}

	merged := MergeLineages(a, a)
	require.Contains(t, merged.Attributes, "hq")
	assert.Len(t, merged.Attributes["hq"].Sources, 1)
}

func TestMergeLineages_UnionsAttributes(t *testing.T) {
	ts := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	a := Lineage{Attributes: map[string]AttributeLineage{
		"hq": {Sources: []Observation{obs("Berlin", "t1", 0.8, ts)}},
	}}
	b := Lineage{Attributes: map[string]AttributeLineage{
		"hq":  {Sources: []Observation{obs("Munich", "t2", 0.4, ts.Add(time.Hour))}},
		"ceo": {Sources: []Observation{obs("A. Example", "t2", 0.9, ts)}},
	}}

	merged := MergeLineages(a, b)
	assert.Len(t, merged.Attributes["hq"].Sources, 2)
	assert.Len(t, merged.Attributes["ceo"].Sources, 1)
	// Newest first within an attribute.
	assert.Equal(t, "Munich", merged.Attributes["hq"].Sources[0].Value)
}

func TestReconsolidate_ReelectsFromCombinedHistory(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	combined := Lineage{Attributes: map[string]AttributeLineage{
		"hq": {Sources: []Observation{
			obs("Berlin", "t1", 0.4, now.Add(-2*time.Hour)),
			obs("Berlin", "t2", 0.4, now.Add(-time.Hour)),
			obs("Munich", "t3", 0.7, now),
		}},
	}}

	stored := Resolved{
		Name:           "Acme",
		NormalizedName: "acme",
		Lineage:        combined,
		SourceTasks:    []string{"t1", "t2"},
	}
	incoming := Resolved{SourceTasks: []string{"t3"}}

	r := Reconsolidate(stored, incoming, now)
	assert.Equal(t, "Berlin", r.Attributes["hq"], "summed confidence beats single observation")
	assert.Equal(t, []string{"t1", "t2", "t3"}, r.SourceTasks)
	assert.Equal(t, "Acme", r.Name, "stored identity wins")
	assert.Equal(t, now, r.Lineage.Aggregate.ConsolidationTimestamp)
}

func TestReconsolidate_IdempotentUnderIdenticalInputs(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	delta := Lineage{Attributes: map[string]AttributeLineage{
		"hq": {Sources: []Observation{obs("Berlin", "t1", 0.8, now.Add(-time.Hour))}},
	}}
	stored := Resolved{
		Name:           "Acme",
		NormalizedName: "acme",
		Lineage:        delta,
		SourceTasks:    []string{"t1"},
	}
	incoming := Resolved{Lineage: delta, SourceTasks: []string{"t1"}}

	once := Reconsolidate(Resolved{
		Name:           stored.Name,
		NormalizedName: stored.NormalizedName,
		Lineage:        MergeLineages(stored.Lineage, incoming.Lineage),
		SourceTasks:    stored.SourceTasks,
	}, incoming, now)

	twice := Reconsolidate(Resolved{
		Name:           once.Name,
		NormalizedName: once.NormalizedName,
		Lineage:        MergeLineages(once.Lineage, incoming.Lineage),
		SourceTasks:    once.SourceTasks,
	}, incoming, now)

	assert.Equal(t, once.Attributes, twice.Attributes)
	assert.Equal(t, once.ConfidenceScore, twice.ConfidenceScore)
	assert.Equal(t, once.SourceTasks, twice.SourceTasks)
}
