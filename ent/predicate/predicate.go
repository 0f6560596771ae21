// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AggregatedEntity is the predicate function for aggregatedentity builders.
type AggregatedEntity func(*sql.Selector)

// Artifact is the predicate function for artifact builders.
type Artifact func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Evidence is the predicate function for evidence builders.
type Evidence func(*sql.Selector)

// Insight is the predicate function for insight builders.
type Insight func(*sql.Selector)

// KnowledgeNode is the predicate function for knowledgenode builders.
type KnowledgeNode func(*sql.Selector)

// KnowledgeNodeSource is the predicate function for knowledgenodesource builders.
type KnowledgeNodeSource func(*sql.Selector)

// Operation is the predicate function for operation builders.
type Operation func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// ReportSection is the predicate function for reportsection builders.
type ReportSection func(*sql.Selector)

// ResearchTask is the predicate function for researchtask builders.
type ResearchTask func(*sql.Selector)

// Source is the predicate function for source builders.
type Source func(*sql.Selector)

// SourceSummary is the predicate function for sourcesummary builders.
type SourceSummary func(*sql.Selector)

// SpikyPOV is the predicate function for spikypov builders.
type SpikyPOV func(*sql.Selector)
