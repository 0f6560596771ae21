// Code generated by ent, DO NOT EDIT.

package knowledgenode

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the knowledgenode type in the database.
	Label = "knowledge_node"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "node_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldParentID holds the string denoting the parent_id field in the database.
	FieldParentID = "parent_id"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldSubcategory holds the string denoting the subcategory field in the database.
	FieldSubcategory = "subcategory"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldDokLevel holds the string denoting the dok_level field in the database.
	FieldDokLevel = "dok_level"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeTask holds the string denoting the task edge name in mutations.
	EdgeTask = "task"
	// EdgeSourceLinks holds the string denoting the source_links edge name in mutations.
	EdgeSourceLinks = "source_links"
	// ResearchTaskFieldID holds the string denoting the ID field of the ResearchTask.
	ResearchTaskFieldID = "task_id"
	// KnowledgeNodeSourceFieldID holds the string denoting the ID field of the KnowledgeNodeSource.
	KnowledgeNodeSourceFieldID = "link_id"
	// Table holds the table name of the knowledgenode in the database.
	Table = "knowledge_nodes"
	// TaskTable is the table that holds the task relation/edge.
	TaskTable = "knowledge_nodes"
	// TaskInverseTable is the table name for the ResearchTask entity.
	// It exists in this package in order to avoid circular dependency with the "researchtask" package.
	TaskInverseTable = "research_tasks"
	// TaskColumn is the table column denoting the task relation/edge.
	TaskColumn = "task_id"
	// SourceLinksTable is the table that holds the source_links relation/edge.
	SourceLinksTable = "knowledge_node_sources"
	// SourceLinksInverseTable is the table name for the KnowledgeNodeSource entity.
	// It exists in this package in order to avoid circular dependency with the "knowledgenodesource" package.
	SourceLinksInverseTable = "knowledge_node_sources"
	// SourceLinksColumn is the table column denoting the source_links relation/edge.
	SourceLinksColumn = "node_id"
)

// Columns holds all SQL columns for knowledgenode fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldParentID,
	FieldCategory,
	FieldSubcategory,
	FieldSummary,
	FieldDokLevel,
	FieldPosition,
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
	// CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	CategoryValidator func(string) error
	// SummaryValidator is a validator for the "summary" field. It is called by the builders before save.
	SummaryValidator func(string) error
	// DefaultDokLevel holds the default value on creation for the "dok_level" field.
	DefaultDokLevel int
	// DokLevelValidator is a validator for the "dok_level" field. It is called by the builders before save.
	DokLevelValidator func(int) error
	// DefaultPosition holds the default value on creation for the "position" field.
	DefaultPosition int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the KnowledgeNode queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByParentID orders the results by the parent_id field.
func ByParentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentID, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// BySubcategory orders the results by the subcategory field.
func BySubcategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubcategory, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByDokLevel orders the results by the dok_level field.
func ByDokLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDokLevel, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByTaskField orders the results by task field.
func ByTaskField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTaskStep(), sql.OrderByField(field, opts...))
	}
}

// BySourceLinksCount orders the results by source_links count.
func BySourceLinksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSourceLinksStep(), opts...)
	}
}

// BySourceLinks orders the results by source_links terms.
func BySourceLinks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSourceLinksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newTaskStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TaskInverseTable, ResearchTaskFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
	)
}
func newSourceLinksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SourceLinksInverseTable, KnowledgeNodeSourceFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SourceLinksTable, SourceLinksColumn),
	)
}
