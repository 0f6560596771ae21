// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/trilogy-group/nexus-agents/ent/knowledgenode"
	"github.com/trilogy-group/nexus-agents/ent/researchtask"
)

// KnowledgeNode is the model entity for the KnowledgeNode schema.
type KnowledgeNode struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// ParentID holds the value of the "parent_id" field.
	ParentID *string `json:"parent_id,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// Subcategory holds the value of the "subcategory" field.
	Subcategory string `json:"subcategory,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary string `json:"summary,omitempty"`
	// DokLevel holds the value of the "dok_level" field.
	DokLevel int `json:"dok_level,omitempty"`
	// Insertion order within the task's forest
	Position int `json:"position,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the KnowledgeNodeQuery when eager-loading is set.
	Edges        KnowledgeNodeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// KnowledgeNodeEdges holds the relations/edges for other nodes in the graph.
type KnowledgeNodeEdges struct {
	// Task holds the value of the task edge.
	Task *ResearchTask `json:"task,omitempty"`
	// SourceLinks holds the value of the source_links edge.
	SourceLinks []*KnowledgeNodeSource `json:"source_links,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e KnowledgeNodeEdges) TaskOrErr() (*ResearchTask, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: researchtask.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// SourceLinksOrErr returns the SourceLinks value or an error if the edge
// was not loaded in eager-loading.
func (e KnowledgeNodeEdges) SourceLinksOrErr() ([]*KnowledgeNodeSource, error) {
	if e.loadedTypes[1] {
		return e.SourceLinks, nil
	}
	return nil, &NotLoadedError{edge: "source_links"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*KnowledgeNode) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case knowledgenode.FieldDokLevel, knowledgenode.FieldPosition:
			values[i] = new(sql.NullInt64)
		case knowledgenode.FieldID, knowledgenode.FieldTaskID, knowledgenode.FieldParentID, knowledgenode.FieldCategory, knowledgenode.FieldSubcategory, knowledgenode.FieldSummary:
			values[i] = new(sql.NullString)
		case knowledgenode.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the KnowledgeNode fields.
func (_m *KnowledgeNode) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case knowledgenode.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case knowledgenode.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case knowledgenode.FieldParentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_id", values[i])
			} else if value.Valid {
				_m.ParentID = new(string)
				*_m.ParentID = value.String
			}
		case knowledgenode.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case knowledgenode.FieldSubcategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subcategory", values[i])
			} else if value.Valid {
				_m.Subcategory = value.String
			}
		case knowledgenode.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case knowledgenode.FieldDokLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field dok_level", values[i])
			} else if value.Valid {
				_m.DokLevel = int(value.Int64)
			}
		case knowledgenode.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case knowledgenode.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the KnowledgeNode.
// This includes values selected through modifiers, order, etc.
func (_m *KnowledgeNode) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the KnowledgeNode entity.
func (_m *KnowledgeNode) QueryTask() *ResearchTaskQuery {
	return NewKnowledgeNodeClient(_m.config).QueryTask(_m)
}

// QuerySourceLinks queries the "source_links" edge of the KnowledgeNode entity.
func (_m *KnowledgeNode) QuerySourceLinks() *KnowledgeNodeSourceQuery {
	return NewKnowledgeNodeClient(_m.config).QuerySourceLinks(_m)
}

// Update returns a builder for updating this KnowledgeNode.
// Note that you need to call KnowledgeNode.Unwrap() before calling this method if this KnowledgeNode
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *KnowledgeNode) Update() *KnowledgeNodeUpdateOne {
	return NewKnowledgeNodeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the KnowledgeNode entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *KnowledgeNode) Unwrap() *KnowledgeNode {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: KnowledgeNode is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *KnowledgeNode) String() string {
	var builder strings.Builder
	builder.WriteString("KnowledgeNode(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	if v := _m.ParentID; v != nil {
		builder.WriteString("parent_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("subcategory=")
	builder.WriteString(_m.Subcategory)
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("dok_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.DokLevel))
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// KnowledgeNodes is a parsable slice of KnowledgeNode.
type KnowledgeNodes []*KnowledgeNode
