// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/trilogy-group/nexus-agents/ent/knowledgenode"
	"github.com/trilogy-group/nexus-agents/ent/knowledgenodesource"
	"github.com/trilogy-group/nexus-agents/ent/source"
)

// KnowledgeNodeSource is the model entity for the KnowledgeNodeSource schema.
type KnowledgeNodeSource struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// NodeID holds the value of the "node_id" field.
	NodeID string `json:"node_id,omitempty"`
	// SourceID holds the value of the "source_id" field.
	SourceID string `json:"source_id,omitempty"`
	// RelevanceScore holds the value of the "relevance_score" field.
	RelevanceScore float64 `json:"relevance_score,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the KnowledgeNodeSourceQuery when eager-loading is set.
	Edges        KnowledgeNodeSourceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// KnowledgeNodeSourceEdges holds the relations/edges for other nodes in the graph.
type KnowledgeNodeSourceEdges struct {
	// Node holds the value of the node edge.
	Node *KnowledgeNode `json:"node,omitempty"`
	// Source holds the value of the source edge.
	Source *Source `json:"source,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// NodeOrErr returns the Node value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e KnowledgeNodeSourceEdges) NodeOrErr() (*KnowledgeNode, error) {
	if e.Node != nil {
		return e.Node, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: knowledgenode.Label}
	}
	return nil, &NotLoadedError{edge: "node"}
}

// SourceOrErr returns the Source value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e KnowledgeNodeSourceEdges) SourceOrErr() (*Source, error) {
	if e.Source != nil {
		return e.Source, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: source.Label}
	}
	return nil, &NotLoadedError{edge: "source"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*KnowledgeNodeSource) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case knowledgenodesource.FieldRelevanceScore:
			values[i] = new(sql.NullFloat64)
		case knowledgenodesource.FieldID, knowledgenodesource.FieldNodeID, knowledgenodesource.FieldSourceID:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the KnowledgeNodeSource fields.
func (_m *KnowledgeNodeSource) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case knowledgenodesource.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case knowledgenodesource.FieldNodeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field node_id", values[i])
			} else if value.Valid {
				_m.NodeID = value.String
			}
		case knowledgenodesource.FieldSourceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_id", values[i])
			} else if value.Valid {
				_m.SourceID = value.String
			}
		case knowledgenodesource.FieldRelevanceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field relevance_score", values[i])
			} else if value.Valid {
				_m.RelevanceScore = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the KnowledgeNodeSource.
// This includes values selected through modifiers, order, etc.
func (_m *KnowledgeNodeSource) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryNode queries the "node" edge of the KnowledgeNodeSource entity.
func (_m *KnowledgeNodeSource) QueryNode() *KnowledgeNodeQuery {
	return NewKnowledgeNodeSourceClient(_m.config).QueryNode(_m)
}

// QuerySource queries the "source" edge of the KnowledgeNodeSource entity.
func (_m *KnowledgeNodeSource) QuerySource() *SourceQuery {
	return NewKnowledgeNodeSourceClient(_m.config).QuerySource(_m)
}

// Update returns a builder for updating this KnowledgeNodeSource.
// Note that you need to call KnowledgeNodeSource.Unwrap() before calling this method if this KnowledgeNodeSource
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *KnowledgeNodeSource) Update() *KnowledgeNodeSourceUpdateOne {
	return NewKnowledgeNodeSourceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the KnowledgeNodeSource entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *KnowledgeNodeSource) Unwrap() *KnowledgeNodeSource {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: KnowledgeNodeSource is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *KnowledgeNodeSource) String() string {
	var builder strings.Builder
	builder.WriteString("KnowledgeNodeSource(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("node_id=")
	builder.WriteString(_m.NodeID)
	builder.WriteString(", ")
	builder.WriteString("source_id=")
	builder.WriteString(_m.SourceID)
	builder.WriteString(", ")
	builder.WriteString("relevance_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.RelevanceScore))
	builder.WriteByte(')')
	return builder.String()
}

// KnowledgeNodeSources is a parsable slice of KnowledgeNodeSource.
type KnowledgeNodeSources []*KnowledgeNodeSource
