// Code generated by ent, DO NOT EDIT.

package reportsection

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the reportsection type in the database.
	Label = "report_section"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "section_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldSection holds the string denoting the section field in the database.
	FieldSection = "section"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldSourceIds holds the string denoting the source_ids field in the database.
	FieldSourceIds = "source_ids"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// EdgeTask holds the string denoting the task edge name in mutations.
	EdgeTask = "task"
	// ResearchTaskFieldID holds the string denoting the ID field of the ResearchTask.
	ResearchTaskFieldID = "task_id"
	// Table holds the table name of the reportsection in the database.
	Table = "report_sections"
	// TaskTable is the table that holds the task relation/edge.
	TaskTable = "report_sections"
	// TaskInverseTable is the table name for the ResearchTask entity.
	// It exists in this package in order to avoid circular dependency with the "researchtask" package.
	TaskInverseTable = "research_tasks"
	// TaskColumn is the table column denoting the task relation/edge.
	TaskColumn = "task_id"
)

// Columns holds all SQL columns for reportsection fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldSection,
	FieldContent,
	FieldSourceIds,
	FieldPosition,
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
	// DefaultPosition holds the default value on creation for the "position" field.
	DefaultPosition int
)

// Section defines the type for the "section" enum field.
type Section string

// Section values.
const (
	SectionKeyFindings                Section = "key_findings"
	SectionEvidenceAnalysis           Section = "evidence_analysis"
	SectionCausalRelationships        Section = "causal_relationships"
	SectionAlternativeInterpretations Section = "alternative_interpretations"
)

func (s Section) String() string {
	return string(s)
}

// SectionValidator is a validator for the "section" field enum values. It is called by the builders before save.
func SectionValidator(s Section) error {
	switch s {
	case SectionKeyFindings, SectionEvidenceAnalysis, SectionCausalRelationships, SectionAlternativeInterpretations:
		return nil
	default:
		return fmt.Errorf("reportsection: invalid enum value for section field: %q", s)
	}
}

// OrderOption defines the ordering options for the ReportSection queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// BySection orders the results by the section field.
func BySection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSection, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByTaskField orders the results by task field.
func ByTaskField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTaskStep(), sql.OrderByField(field, opts...))
	}
}
func newTaskStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TaskInverseTable, ResearchTaskFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
	)
}
