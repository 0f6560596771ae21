package entity

import (
	"sort"
	"time"

	"github.com/montanaflynn/stats"
)

// MergeLineages unions two attribute histories. Observations are deduplicated
// on their full identity, so merging the same delta twice yields the same
// lineage.
func MergeLineages(a, b Lineage) Lineage {
	out := Lineage{Attributes: make(map[string]AttributeLineage)}

	seen := make(map[string]map[Observation]struct{})
	add := func(attr string, obs Observation) {
		if seen[attr] == nil {
			seen[attr] = make(map[Observation]struct{})
		}
		if _, dup := seen[attr][obs]; dup {
			return
		}
		seen[attr][obs] = struct{}{}
		lin := out.Attributes[attr]
		lin.Sources = append(lin.Sources, obs)
		out.Attributes[attr] = lin
	}

	for attr, lin := range a.Attributes {
		for _, obs := range lin.Sources {
			add(attr, obs)
		}
	}
	for attr, lin := range b.Attributes {
		for _, obs := range lin.Sources {
			add(attr, obs)
		}
	}

	for attr, lin := range out.Attributes {
		sortObservations(lin.Sources)
		out.Attributes[attr] = lin
	}
	return out
}

// Reconsolidate re-elects every attribute of a stored entity from a combined
// lineage and folds in the incoming entity's task provenance. The stored
// identity (name, identifier) wins over the incoming one.
func Reconsolidate(stored, incoming Resolved, now time.Time) Resolved {
	r := Resolved{
		Name:             stored.Name,
		NormalizedName:   stored.NormalizedName,
		UniqueIdentifier: stored.UniqueIdentifier,
		Attributes:       make(map[string]string),
		Lineage:          stored.Lineage,
	}
	if r.Name == "" {
		r.Name = incoming.Name
		r.NormalizedName = incoming.NormalizedName
	}
	if r.UniqueIdentifier == "" {
		r.UniqueIdentifier = incoming.UniqueIdentifier
	}
	if r.Lineage.Attributes == nil {
		r.Lineage.Attributes = make(map[string]AttributeLineage)
	}

	confidences := make([]float64, 0, len(r.Lineage.Attributes))
	for attr, lin := range r.Lineage.Attributes {
		value, confidence := electValue(lin.Sources)
		r.Attributes[attr] = value
		confidences = append(confidences, confidence)
	}
	if len(confidences) > 0 {
		if mean, err := stats.Mean(confidences); err == nil {
			r.ConfidenceScore = clamp01(mean)
		}
	}

	taskSet := make(map[string]struct{})
	for _, id := range stored.SourceTasks {
		taskSet[id] = struct{}{}
	}
	for _, id := range incoming.SourceTasks {
		taskSet[id] = struct{}{}
	}
	r.SourceTasks = make([]string, 0, len(taskSet))
	for id := range taskSet {
		r.SourceTasks = append(r.SourceTasks, id)
	}
	sort.Strings(r.SourceTasks)

	r.Lineage.Aggregate = LineageAggregate{
		ConsolidationTimestamp: now,
		AverageConfidence:      r.ConfidenceScore,
	}
	return r
}
