// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/trilogy-group/nexus-agents/ent/aggregatedentity"
)

// AggregatedEntity is the model entity for the AggregatedEntity schema.
type AggregatedEntity struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// project_id when project-scoped, else task_id
	ScopeID string `json:"scope_id,omitempty"`
	// EntityType holds the value of the "entity_type" field.
	EntityType string `json:"entity_type,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// lowercase, whitespace-collapsed, punctuation-stripped
	NormalizedName string `json:"normalized_name,omitempty"`
	// Domain key, e.g. NCES id; empty when unknown
	UniqueIdentifier string `json:"unique_identifier,omitempty"`
	// ConsolidatedAttributes holds the value of the "consolidated_attributes" field.
	ConsolidatedAttributes map[string]interface{} `json:"consolidated_attributes,omitempty"`
	// Per-attribute source history plus aggregate block
	DataLineage map[string]interface{} `json:"data_lineage,omitempty"`
	// ConfidenceScore holds the value of the "confidence_score" field.
	ConfidenceScore float64 `json:"confidence_score,omitempty"`
	// SourceTasks holds the value of the "source_tasks" field.
	SourceTasks []string `json:"source_tasks,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AggregatedEntity) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case aggregatedentity.FieldConsolidatedAttributes, aggregatedentity.FieldDataLineage, aggregatedentity.FieldSourceTasks:
			values[i] = new([]byte)
		case aggregatedentity.FieldConfidenceScore:
			values[i] = new(sql.NullFloat64)
		case aggregatedentity.FieldID, aggregatedentity.FieldScopeID, aggregatedentity.FieldEntityType, aggregatedentity.FieldName, aggregatedentity.FieldNormalizedName, aggregatedentity.FieldUniqueIdentifier:
			values[i] = new(sql.NullString)
		case aggregatedentity.FieldCreatedAt, aggregatedentity.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AggregatedEntity fields.
func (_m *AggregatedEntity) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case aggregatedentity.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case aggregatedentity.FieldScopeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope_id", values[i])
			} else if value.Valid {
				_m.ScopeID = value.String
			}
		case aggregatedentity.FieldEntityType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_type", values[i])
			} else if value.Valid {
				_m.EntityType = value.String
			}
		case aggregatedentity.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case aggregatedentity.FieldNormalizedName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field normalized_name", values[i])
			} else if value.Valid {
				_m.NormalizedName = value.String
			}
		case aggregatedentity.FieldUniqueIdentifier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unique_identifier", values[i])
			} else if value.Valid {
				_m.UniqueIdentifier = value.String
			}
		case aggregatedentity.FieldConsolidatedAttributes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field consolidated_attributes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ConsolidatedAttributes); err != nil {
					return fmt.Errorf("unmarshal field consolidated_attributes: %w", err)
				}
			}
		case aggregatedentity.FieldDataLineage:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data_lineage", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DataLineage); err != nil {
					return fmt.Errorf("unmarshal field data_lineage: %w", err)
				}
			}
		case aggregatedentity.FieldConfidenceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_score", values[i])
			} else if value.Valid {
				_m.ConfidenceScore = value.Float64
			}
		case aggregatedentity.FieldSourceTasks:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field source_tasks", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SourceTasks); err != nil {
					return fmt.Errorf("unmarshal field source_tasks: %w", err)
				}
			}
		case aggregatedentity.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case aggregatedentity.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AggregatedEntity.
// This includes values selected through modifiers, order, etc.
func (_m *AggregatedEntity) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AggregatedEntity.
// Note that you need to call AggregatedEntity.Unwrap() before calling this method if this AggregatedEntity
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AggregatedEntity) Update() *AggregatedEntityUpdateOne {
	return NewAggregatedEntityClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AggregatedEntity entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AggregatedEntity) Unwrap() *AggregatedEntity {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AggregatedEntity is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AggregatedEntity) String() string {
	var builder strings.Builder
	builder.WriteString("AggregatedEntity(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("scope_id=")
	builder.WriteString(_m.ScopeID)
	builder.WriteString(", ")
	builder.WriteString("entity_type=")
	builder.WriteString(_m.EntityType)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("normalized_name=")
	builder.WriteString(_m.NormalizedName)
	builder.WriteString(", ")
	builder.WriteString("unique_identifier=")
	builder.WriteString(_m.UniqueIdentifier)
	builder.WriteString(", ")
	builder.WriteString("consolidated_attributes=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConsolidatedAttributes))
	builder.WriteString(", ")
	builder.WriteString("data_lineage=")
	builder.WriteString(fmt.Sprintf("%v", _m.DataLineage))
	builder.WriteString(", ")
	builder.WriteString("confidence_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfidenceScore))
	builder.WriteString(", ")
	builder.WriteString("source_tasks=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceTasks))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AggregatedEntities is a parsable slice of AggregatedEntity.
type AggregatedEntities []*AggregatedEntity
