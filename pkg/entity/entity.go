// Package entity implements entity resolution for data aggregation tasks:
// grouping extracted candidates, merging duplicates, and consolidating
// attribute values with per-attribute lineage. The package is pure logic;
// persistence lives in pkg/services.
package entity

import (
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/montanaflynn/stats"
)

// Candidate is one entity observation extracted from a single source.
type Candidate struct {
	Name             string
	UniqueIdentifier string
	Attributes       map[string]string
	Confidence       float64
	SourceURL        string
	TaskID           string
	ObservedAt       time.Time
}

// Observation records one contribution to an attribute's value.
type Observation struct {
	Value      string    `json:"value"`
	TaskID     string    `json:"task_id"`
	SourceURL  string    `json:"source_url,omitempty"`
	Confidence float64   `json:"confidence"`
	Timestamp  time.Time `json:"timestamp"`
}

// AttributeLineage holds every observed value for one attribute.
type AttributeLineage struct {
	Sources []Observation `json:"sources"`
}

// Lineage maps attribute name to its observation history, plus an aggregate
// block describing the consolidation itself.
type Lineage struct {
	Attributes map[string]AttributeLineage `json:"attributes"`
	Aggregate  LineageAggregate            `json:"aggregate"`
}

// LineageAggregate summarizes the consolidation pass.
type LineageAggregate struct {
	ConsolidationTimestamp time.Time `json:"consolidation_timestamp"`
	AverageConfidence      float64   `json:"average_confidence"`
}

// Resolved is a consolidated entity produced from one candidate group.
type Resolved struct {
	Name             string
	NormalizedName   string
	UniqueIdentifier string
	Attributes       map[string]string
	Lineage          Lineage
	ConfidenceScore  float64
	SourceTasks      []string
}

// NameMatcher lets domain processors override candidate grouping for entities
// without a unique identifier. The default matcher compares normalized names.
type NameMatcher interface {
	SameEntity(a, b Candidate) bool
}

type normalizedNameMatcher struct{}

func (normalizedNameMatcher) SameEntity(a, b Candidate) bool {
	return NormalizeName(a.Name) == NormalizeName(b.Name)
}

// NormalizeName lowercases, strips punctuation, and collapses whitespace so
// "Acme, Inc." and "acme inc" group together.
func NormalizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Resolve groups candidates and merges each group into one consolidated
// entity. Empty-named candidates are dropped. Output order is deterministic:
// entities sorted by normalized name, then unique identifier.
func Resolve(candidates []Candidate, matcher NameMatcher, now time.Time) []Resolved {
	if matcher == nil {
		matcher = normalizedNameMatcher{}
	}

	groups := group(candidates, matcher)
	resolved := make([]Resolved, 0, len(groups))
	for _, g := range groups {
		resolved = append(resolved, Merge(g, now))
	}
	sort.Slice(resolved, func(i, j int) bool {
		if resolved[i].NormalizedName != resolved[j].NormalizedName {
			return resolved[i].NormalizedName < resolved[j].NormalizedName
		}
		return resolved[i].UniqueIdentifier < resolved[j].UniqueIdentifier
	})
	return resolved
}

// group partitions candidates, first by unique identifier, then by matcher
// equality among the identifier-less remainder.
func group(candidates []Candidate, matcher NameMatcher) [][]Candidate {
	var groups [][]Candidate
	byIdentifier := make(map[string]int)
	var unidentified []Candidate

	for _, c := range candidates {
		if strings.TrimSpace(c.Name) == "" {
			continue
		}
		if c.UniqueIdentifier != "" {
			if idx, ok := byIdentifier[c.UniqueIdentifier]; ok {
				groups[idx] = append(groups[idx], c)
			} else {
				byIdentifier[c.UniqueIdentifier] = len(groups)
				groups = append(groups, []Candidate{c})
			}
			continue
		}
		unidentified = append(unidentified, c)
	}

	for _, c := range unidentified {
		placed := false
		for i, g := range groups {
			if matcher.SameEntity(c, g[0]) {
				groups[i] = append(groups[i], c)
				placed = true
				break
			}
		}
		if !placed {
			groups = append(groups, []Candidate{c})
		}
	}
	return groups
}

// Merge consolidates one candidate group. Per attribute, the value with the
// highest summed confidence across observations wins; ties break toward the
// most recent observation. Every observed value is kept in the lineage.
func Merge(group []Candidate, now time.Time) Resolved {
	r := Resolved{
		Attributes: make(map[string]string),
		Lineage: Lineage{
			Attributes: make(map[string]AttributeLineage),
		},
	}

	// Collect observations per attribute. The entity name participates in
	// the same vote so the display name is the best-attested one.
	nameObs := make([]Observation, 0, len(group))
	taskSet := make(map[string]struct{})
	for _, c := range group {
		if r.UniqueIdentifier == "" {
			r.UniqueIdentifier = c.UniqueIdentifier
		}
		if c.TaskID != "" {
			taskSet[c.TaskID] = struct{}{}
		}
		nameObs = append(nameObs, Observation{
			Value:      c.Name,
			TaskID:     c.TaskID,
			SourceURL:  c.SourceURL,
			Confidence: c.Confidence,
			Timestamp:  c.ObservedAt,
		})
		for attr, value := range c.Attributes {
			if value == "" {
				continue
			}
			lin := r.Lineage.Attributes[attr]
			lin.Sources = append(lin.Sources, Observation{
				Value:      value,
				TaskID:     c.TaskID,
				SourceURL:  c.SourceURL,
				Confidence: c.Confidence,
				Timestamp:  c.ObservedAt,
			})
			r.Lineage.Attributes[attr] = lin
		}
	}

	winnerName, _ := electValue(nameObs)
	r.Name = winnerName
	r.NormalizedName = NormalizeName(winnerName)

	confidences := make([]float64, 0, len(r.Lineage.Attributes))
	for attr, lin := range r.Lineage.Attributes {
		sortObservations(lin.Sources)
		r.Lineage.Attributes[attr] = lin

		value, confidence := electValue(lin.Sources)
		r.Attributes[attr] = value
		confidences = append(confidences, confidence)
	}

	if len(confidences) > 0 {
		mean, err := stats.Mean(confidences)
		if err == nil {
			r.ConfidenceScore = clamp01(mean)
		}
	} else if len(nameObs) > 0 {
		// No attributes beyond the name; fall back to the name's vote.
		_, confidence := electValue(nameObs)
		r.ConfidenceScore = clamp01(confidence)
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

// electValue picks the value with the highest summed confidence; ties break
// toward the most recently observed value. The returned confidence is the
// strongest single observation of the winning value.
func electValue(observations []Observation) (string, float64) {
	type tally struct {
		summed float64
		best   float64
		latest time.Time
	}
	tallies := make(map[string]*tally)
	for _, obs := range observations {
		t, ok := tallies[obs.Value]
		if !ok {
			t = &tally{}
			tallies[obs.Value] = t
		}
		t.summed += obs.Confidence
		if obs.Confidence > t.best {
			t.best = obs.Confidence
		}
		if obs.Timestamp.After(t.latest) {
			t.latest = obs.Timestamp
		}
	}

	var winner string
	var winning *tally
	for value, t := range tallies {
		switch {
		case winning == nil:
			winner, winning = value, t
		case t.summed > winning.summed:
			winner, winning = value, t
		case t.summed == winning.summed && t.latest.After(winning.latest):
			winner, winning = value, t
		case t.summed == winning.summed && t.latest.Equal(winning.latest) && value < winner:
			// Full tie: lexicographic order keeps re-runs stable.
			winner, winning = value, t
		}
	}
	if winning == nil {
		return "", 0
	}
	return winner, winning.best
}

// sortObservations orders lineage entries newest first, then by task for
// stability.
func sortObservations(obs []Observation) {
	sort.Slice(obs, func(i, j int) bool {
		if !obs[i].Timestamp.Equal(obs[j].Timestamp) {
			return obs[i].Timestamp.After(obs[j].Timestamp)
		}
		if obs[i].TaskID != obs[j].TaskID {
			return obs[i].TaskID < obs[j].TaskID
		}
		return obs[i].Value < obs[j].Value
	})
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
