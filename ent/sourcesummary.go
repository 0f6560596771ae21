// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/trilogy-group/nexus-agents/ent/researchtask"
	"github.com/trilogy-group/nexus-agents/ent/source"
	"github.com/trilogy-group/nexus-agents/ent/sourcesummary"
)

// SourceSummary is the model entity for the SourceSummary schema.
type SourceSummary struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// SourceID holds the value of the "source_id" field.
	SourceID string `json:"source_id,omitempty"`
	// Subtopic the summarization op was scoped to
	Subtopic string `json:"subtopic,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary string `json:"summary,omitempty"`
	// Atomic source-grounded assertions
	Dok1Facts []string `json:"dok1_facts,omitempty"`
	// DokLevel holds the value of the "dok_level" field.
	DokLevel int `json:"dok_level,omitempty"`
	// SupersededBy holds the value of the "superseded_by" field.
	SupersededBy *string `json:"superseded_by,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SourceSummaryQuery when eager-loading is set.
	Edges        SourceSummaryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SourceSummaryEdges holds the relations/edges for other nodes in the graph.
type SourceSummaryEdges struct {
	// Task holds the value of the task edge.
	Task *ResearchTask `json:"task,omitempty"`
	// Source holds the value of the source edge.
	Source *Source `json:"source,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SourceSummaryEdges) TaskOrErr() (*ResearchTask, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: researchtask.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// SourceOrErr returns the Source value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SourceSummaryEdges) SourceOrErr() (*Source, error) {
	if e.Source != nil {
		return e.Source, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: source.Label}
	}
	return nil, &NotLoadedError{edge: "source"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SourceSummary) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sourcesummary.FieldDok1Facts:
			values[i] = new([]byte)
		case sourcesummary.FieldDokLevel:
			values[i] = new(sql.NullInt64)
		case sourcesummary.FieldID, sourcesummary.FieldTaskID, sourcesummary.FieldSourceID, sourcesummary.FieldSubtopic, sourcesummary.FieldSummary, sourcesummary.FieldSupersededBy:
			values[i] = new(sql.NullString)
		case sourcesummary.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SourceSummary fields.
func (_m *SourceSummary) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sourcesummary.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case sourcesummary.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case sourcesummary.FieldSourceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_id", values[i])
			} else if value.Valid {
				_m.SourceID = value.String
			}
		case sourcesummary.FieldSubtopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subtopic", values[i])
			} else if value.Valid {
				_m.Subtopic = value.String
			}
		case sourcesummary.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case sourcesummary.FieldDok1Facts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field dok1_facts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Dok1Facts); err != nil {
					return fmt.Errorf("unmarshal field dok1_facts: %w", err)
				}
			}
		case sourcesummary.FieldDokLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field dok_level", values[i])
			} else if value.Valid {
				_m.DokLevel = int(value.Int64)
			}
		case sourcesummary.FieldSupersededBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field superseded_by", values[i])
			} else if value.Valid {
				_m.SupersededBy = new(string)
				*_m.SupersededBy = value.String
			}
		case sourcesummary.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SourceSummary.
// This includes values selected through modifiers, order, etc.
func (_m *SourceSummary) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the SourceSummary entity.
func (_m *SourceSummary) QueryTask() *ResearchTaskQuery {
	return NewSourceSummaryClient(_m.config).QueryTask(_m)
}

// QuerySource queries the "source" edge of the SourceSummary entity.
func (_m *SourceSummary) QuerySource() *SourceQuery {
	return NewSourceSummaryClient(_m.config).QuerySource(_m)
}

// Update returns a builder for updating this SourceSummary.
// Note that you need to call SourceSummary.Unwrap() before calling this method if this SourceSummary
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SourceSummary) Update() *SourceSummaryUpdateOne {
	return NewSourceSummaryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SourceSummary entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SourceSummary) Unwrap() *SourceSummary {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SourceSummary is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SourceSummary) String() string {
	var builder strings.Builder
	builder.WriteString("SourceSummary(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("source_id=")
	builder.WriteString(_m.SourceID)
	builder.WriteString(", ")
	builder.WriteString("subtopic=")
	builder.WriteString(_m.Subtopic)
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("dok1_facts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Dok1Facts))
	builder.WriteString(", ")
	builder.WriteString("dok_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.DokLevel))
	builder.WriteString(", ")
	if v := _m.SupersededBy; v != nil {
		builder.WriteString("superseded_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SourceSummaries is a parsable slice of SourceSummary.
type SourceSummaries []*SourceSummary
