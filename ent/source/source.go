// Code generated by ent, DO NOT EDIT.

package source

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the source type in the database.
	Label = "source"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "source_id"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldContentHash holds the string denoting the content_hash field in the database.
	FieldContentHash = "content_hash"
	// FieldReliabilityScore holds the string denoting the reliability_score field in the database.
	FieldReliabilityScore = "reliability_score"
	// FieldObservationCount holds the string denoting the observation_count field in the database.
	FieldObservationCount = "observation_count"
	// FieldAccessedAt holds the string denoting the accessed_at field in the database.
	FieldAccessedAt = "accessed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSummaries holds the string denoting the summaries edge name in mutations.
	EdgeSummaries = "summaries"
	// EdgeNodeLinks holds the string denoting the node_links edge name in mutations.
	EdgeNodeLinks = "node_links"
	// SourceSummaryFieldID holds the string denoting the ID field of the SourceSummary.
	SourceSummaryFieldID = "summary_id"
	// KnowledgeNodeSourceFieldID holds the string denoting the ID field of the KnowledgeNodeSource.
	KnowledgeNodeSourceFieldID = "link_id"
	// Table holds the table name of the source in the database.
	Table = "sources"
	// SummariesTable is the table that holds the summaries relation/edge.
	SummariesTable = "source_summaries"
	// SummariesInverseTable is the table name for the SourceSummary entity.
	// It exists in this package in order to avoid circular dependency with the "sourcesummary" package.
	SummariesInverseTable = "source_summaries"
	// SummariesColumn is the table column denoting the summaries relation/edge.
	SummariesColumn = "source_id"
	// NodeLinksTable is the table that holds the node_links relation/edge.
	NodeLinksTable = "knowledge_node_sources"
	// NodeLinksInverseTable is the table name for the KnowledgeNodeSource entity.
	// It exists in this package in order to avoid circular dependency with the "knowledgenodesource" package.
	NodeLinksInverseTable = "knowledge_node_sources"
	// NodeLinksColumn is the table column denoting the node_links relation/edge.
	NodeLinksColumn = "source_id"
)

// Columns holds all SQL columns for source fields.
var Columns = []string{
	FieldID,
	FieldURL,
	FieldTitle,
	FieldDescription,
	FieldProvider,
	FieldContentHash,
	FieldReliabilityScore,
	FieldObservationCount,
	FieldAccessedAt,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// URLValidator is a validator for the "url" field. It is called by the builders before save.
	URLValidator func(string) error
	// ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	ContentHashValidator func(string) error
	// DefaultReliabilityScore holds the default value on creation for the "reliability_score" field.
	DefaultReliabilityScore float64
	// DefaultObservationCount holds the default value on creation for the "observation_count" field.
	DefaultObservationCount int
	// DefaultAccessedAt holds the default value on creation for the "accessed_at" field.
	DefaultAccessedAt func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Source queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByContentHash orders the results by the content_hash field.
func ByContentHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentHash, opts...).ToFunc()
}

// ByReliabilityScore orders the results by the reliability_score field.
func ByReliabilityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReliabilityScore, opts...).ToFunc()
}

// ByObservationCount orders the results by the observation_count field.
func ByObservationCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObservationCount, opts...).ToFunc()
}

// ByAccessedAt orders the results by the accessed_at field.
func ByAccessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccessedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySummariesCount orders the results by summaries count.
func BySummariesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSummariesStep(), opts...)
	}
}

// BySummaries orders the results by summaries terms.
func BySummaries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSummariesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByNodeLinksCount orders the results by node_links count.
func ByNodeLinksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newNodeLinksStep(), opts...)
	}
}

// ByNodeLinks orders the results by node_links terms.
func ByNodeLinks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newNodeLinksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSummariesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SummariesInverseTable, SourceSummaryFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SummariesTable, SummariesColumn),
	)
}
func newNodeLinksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(NodeLinksInverseTable, KnowledgeNodeSourceFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, NodeLinksTable, NodeLinksColumn),
	)
}
