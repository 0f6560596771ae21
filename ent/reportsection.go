// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/trilogy-group/nexus-agents/ent/reportsection"
	"github.com/trilogy-group/nexus-agents/ent/researchtask"
)

// ReportSection is the model entity for the ReportSection schema.
type ReportSection struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// Section holds the value of the "section" field.
	Section reportsection.Section `json:"section,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// SourceIds holds the value of the "source_ids" field.
	SourceIds []string `json:"source_ids,omitempty"`
	// Position holds the value of the "position" field.
	Position int `json:"position,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ReportSectionQuery when eager-loading is set.
	Edges        ReportSectionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ReportSectionEdges holds the relations/edges for other nodes in the graph.
type ReportSectionEdges struct {
	// Task holds the value of the task edge.
	Task *ResearchTask `json:"task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReportSectionEdges) TaskOrErr() (*ResearchTask, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: researchtask.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReportSection) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reportsection.FieldSourceIds:
			values[i] = new([]byte)
		case reportsection.FieldPosition:
			values[i] = new(sql.NullInt64)
		case reportsection.FieldID, reportsection.FieldTaskID, reportsection.FieldSection, reportsection.FieldContent:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReportSection fields.
func (_m *ReportSection) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reportsection.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case reportsection.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case reportsection.FieldSection:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field section", values[i])
			} else if value.Valid {
				_m.Section = reportsection.Section(value.String)
			}
		case reportsection.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case reportsection.FieldSourceIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field source_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SourceIds); err != nil {
					return fmt.Errorf("unmarshal field source_ids: %w", err)
				}
			}
		case reportsection.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReportSection.
// This includes values selected through modifiers, order, etc.
func (_m *ReportSection) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the ReportSection entity.
func (_m *ReportSection) QueryTask() *ResearchTaskQuery {
	return NewReportSectionClient(_m.config).QueryTask(_m)
}

// Update returns a builder for updating this ReportSection.
// Note that you need to call ReportSection.Unwrap() before calling this method if this ReportSection
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReportSection) Update() *ReportSectionUpdateOne {
	return NewReportSectionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReportSection entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReportSection) Unwrap() *ReportSection {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReportSection is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReportSection) String() string {
	var builder strings.Builder
	builder.WriteString("ReportSection(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("section=")
	builder.WriteString(fmt.Sprintf("%v", _m.Section))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("source_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceIds))
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteByte(')')
	return builder.String()
}

// ReportSections is a parsable slice of ReportSection.
type ReportSections []*ReportSection
