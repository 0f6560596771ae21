// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/trilogy-group/nexus-agents/ent/aggregatedentity"
	"github.com/trilogy-group/nexus-agents/ent/artifact"
	"github.com/trilogy-group/nexus-agents/ent/event"
	"github.com/trilogy-group/nexus-agents/ent/evidence"
	"github.com/trilogy-group/nexus-agents/ent/insight"
	"github.com/trilogy-group/nexus-agents/ent/knowledgenode"
	"github.com/trilogy-group/nexus-agents/ent/knowledgenodesource"
	"github.com/trilogy-group/nexus-agents/ent/operation"
	"github.com/trilogy-group/nexus-agents/ent/predicate"
	"github.com/trilogy-group/nexus-agents/ent/project"
	"github.com/trilogy-group/nexus-agents/ent/reportsection"
	"github.com/trilogy-group/nexus-agents/ent/researchtask"
	"github.com/trilogy-group/nexus-agents/ent/source"
	"github.com/trilogy-group/nexus-agents/ent/sourcesummary"
	"github.com/trilogy-group/nexus-agents/ent/spikypov"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAggregatedEntity    = "AggregatedEntity"
	TypeArtifact            = "Artifact"
	TypeEvent               = "Event"
	TypeEvidence            = "Evidence"
	TypeInsight             = "Insight"
	TypeKnowledgeNode       = "KnowledgeNode"
	TypeKnowledgeNodeSource = "KnowledgeNodeSource"
	TypeOperation           = "Operation"
	TypeProject             = "Project"
	TypeReportSection       = "ReportSection"
	TypeResearchTask        = "ResearchTask"
	TypeSource              = "Source"
	TypeSourceSummary       = "SourceSummary"
	TypeSpikyPOV            = "SpikyPOV"
)

// AggregatedEntityMutation represents an operation that mutates the AggregatedEntity nodes in the graph.
type AggregatedEntityMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	scope_id                *string
	entity_type             *string
	name                    *string
	normalized_name         *string
	unique_identifier       *string
	consolidated_attributes *map[string]interface{}
	data_lineage            *map[string]interface{}
	confidence_score        *float64
	addconfidence_score     *float64
	source_tasks            *[]string
	appendsource_tasks      []string
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*AggregatedEntity, error)
	predicates              []predicate.AggregatedEntity
}

var _ ent.Mutation = (*AggregatedEntityMutation)(nil)

// aggregatedentityOption allows management of the mutation configuration using functional options.
type aggregatedentityOption func(*AggregatedEntityMutation)

// newAggregatedEntityMutation creates new mutation for the AggregatedEntity entity.
func newAggregatedEntityMutation(c config, op Op, opts ...aggregatedentityOption) *AggregatedEntityMutation {
	m := &AggregatedEntityMutation{
		config:        c,
		op:            op,
		typ:           TypeAggregatedEntity,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAggregatedEntityID sets the ID field of the mutation.
func withAggregatedEntityID(id string) aggregatedentityOption {
	return func(m *AggregatedEntityMutation) {
		var (
			err   error
			once  sync.Once
			value *AggregatedEntity
		)
		m.oldValue = func(ctx context.Context) (*AggregatedEntity, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AggregatedEntity.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAggregatedEntity sets the old AggregatedEntity of the mutation.
func withAggregatedEntity(node *AggregatedEntity) aggregatedentityOption {
	return func(m *AggregatedEntityMutation) {
		m.oldValue = func(context.Context) (*AggregatedEntity, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AggregatedEntityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AggregatedEntityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AggregatedEntity entities.
func (m *AggregatedEntityMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AggregatedEntityMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AggregatedEntityMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AggregatedEntity.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetScopeID sets the "scope_id" field.
func (m *AggregatedEntityMutation) SetScopeID(s string) {
	m.scope_id = &s
}

// ScopeID returns the value of the "scope_id" field in the mutation.
func (m *AggregatedEntityMutation) ScopeID() (r string, exists bool) {
	v := m.scope_id
	if v == nil {
		return
	}
	return *v, true
}

// OldScopeID returns the old "scope_id" field's value of the AggregatedEntity entity.
// If the AggregatedEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AggregatedEntityMutation) OldScopeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScopeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScopeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScopeID: %w", err)
	}
	return oldValue.ScopeID, nil
}

// ResetScopeID resets all changes to the "scope_id" field.
func (m *AggregatedEntityMutation) ResetScopeID() {
	m.scope_id = nil
}

// SetEntityType sets the "entity_type" field.
func (m *AggregatedEntityMutation) SetEntityType(s string) {
	m.entity_type = &s
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *AggregatedEntityMutation) EntityType() (r string, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the AggregatedEntity entity.
// If the AggregatedEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AggregatedEntityMutation) OldEntityType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *AggregatedEntityMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetName sets the "name" field.
func (m *AggregatedEntityMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AggregatedEntityMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the AggregatedEntity entity.
// If the AggregatedEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AggregatedEntityMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AggregatedEntityMutation) ResetName() {
	m.name = nil
}

// SetNormalizedName sets the "normalized_name" field.
func (m *AggregatedEntityMutation) SetNormalizedName(s string) {
	m.normalized_name = &s
}

// NormalizedName returns the value of the "normalized_name" field in the mutation.
func (m *AggregatedEntityMutation) NormalizedName() (r string, exists bool) {
	v := m.normalized_name
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalizedName returns the old "normalized_name" field's value of the AggregatedEntity entity.
// If the AggregatedEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AggregatedEntityMutation) OldNormalizedName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalizedName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalizedName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalizedName: %w", err)
	}
	return oldValue.NormalizedName, nil
}

// ResetNormalizedName resets all changes to the "normalized_name" field.
func (m *AggregatedEntityMutation) ResetNormalizedName() {
	m.normalized_name = nil
}

// SetUniqueIdentifier sets the "unique_identifier" field.
func (m *AggregatedEntityMutation) SetUniqueIdentifier(s string) {
	m.unique_identifier = &s
}

// UniqueIdentifier returns the value of the "unique_identifier" field in the mutation.
func (m *AggregatedEntityMutation) UniqueIdentifier() (r string, exists bool) {
	v := m.unique_identifier
	if v == nil {
		return
	}
	return *v, true
}

// OldUniqueIdentifier returns the old "unique_identifier" field's value of the AggregatedEntity entity.
// If the AggregatedEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AggregatedEntityMutation) OldUniqueIdentifier(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUniqueIdentifier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUniqueIdentifier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUniqueIdentifier: %w", err)
	}
	return oldValue.UniqueIdentifier, nil
}

// ClearUniqueIdentifier clears the value of the "unique_identifier" field.
func (m *AggregatedEntityMutation) ClearUniqueIdentifier() {
	m.unique_identifier = nil
	m.clearedFields[aggregatedentity.FieldUniqueIdentifier] = struct{}{}
}

// UniqueIdentifierCleared returns if the "unique_identifier" field was cleared in this mutation.
func (m *AggregatedEntityMutation) UniqueIdentifierCleared() bool {
	_, ok := m.clearedFields[aggregatedentity.FieldUniqueIdentifier]
	return ok
}

// ResetUniqueIdentifier resets all changes to the "unique_identifier" field.
func (m *AggregatedEntityMutation) ResetUniqueIdentifier() {
	m.unique_identifier = nil
	delete(m.clearedFields, aggregatedentity.FieldUniqueIdentifier)
}

// SetConsolidatedAttributes sets the "consolidated_attributes" field.
func (m *AggregatedEntityMutation) SetConsolidatedAttributes(value map[string]interface{}) {
	m.consolidated_attributes = &value
}

// ConsolidatedAttributes returns the value of the "consolidated_attributes" field in the mutation.
func (m *AggregatedEntityMutation) ConsolidatedAttributes() (r map[string]interface{}, exists bool) {
	v := m.consolidated_attributes
	if v == nil {
		return
	}
	return *v, true
}

// OldConsolidatedAttributes returns the old "consolidated_attributes" field's value of the AggregatedEntity entity.
// If the AggregatedEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AggregatedEntityMutation) OldConsolidatedAttributes(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsolidatedAttributes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsolidatedAttributes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsolidatedAttributes: %w", err)
	}
	return oldValue.ConsolidatedAttributes, nil
}

// ResetConsolidatedAttributes resets all changes to the "consolidated_attributes" field.
func (m *AggregatedEntityMutation) ResetConsolidatedAttributes() {
	m.consolidated_attributes = nil
}

// SetDataLineage sets the "data_lineage" field.
func (m *AggregatedEntityMutation) SetDataLineage(value map[string]interface{}) {
	m.data_lineage = &value
}

// DataLineage returns the value of the "data_lineage" field in the mutation.
func (m *AggregatedEntityMutation) DataLineage() (r map[string]interface{}, exists bool) {
	v := m.data_lineage
	if v == nil {
		return
	}
	return *v, true
}

// OldDataLineage returns the old "data_lineage" field's value of the AggregatedEntity entity.
// If the AggregatedEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AggregatedEntityMutation) OldDataLineage(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDataLineage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDataLineage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDataLineage: %w", err)
	}
	return oldValue.DataLineage, nil
}

// ResetDataLineage resets all changes to the "data_lineage" field.
func (m *AggregatedEntityMutation) ResetDataLineage() {
	m.data_lineage = nil
}

// SetConfidenceScore sets the "confidence_score" field.
func (m *AggregatedEntityMutation) SetConfidenceScore(f float64) {
	m.confidence_score = &f
	m.addconfidence_score = nil
}

// ConfidenceScore returns the value of the "confidence_score" field in the mutation.
func (m *AggregatedEntityMutation) ConfidenceScore() (r float64, exists bool) {
	v := m.confidence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceScore returns the old "confidence_score" field's value of the AggregatedEntity entity.
// If the AggregatedEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AggregatedEntityMutation) OldConfidenceScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceScore: %w", err)
	}
	return oldValue.ConfidenceScore, nil
}

// AddConfidenceScore adds f to the "confidence_score" field.
func (m *AggregatedEntityMutation) AddConfidenceScore(f float64) {
	if m.addconfidence_score != nil {
		*m.addconfidence_score += f
	} else {
		m.addconfidence_score = &f
	}
}

// AddedConfidenceScore returns the value that was added to the "confidence_score" field in this mutation.
func (m *AggregatedEntityMutation) AddedConfidenceScore() (r float64, exists bool) {
	v := m.addconfidence_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidenceScore resets all changes to the "confidence_score" field.
func (m *AggregatedEntityMutation) ResetConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
}

// SetSourceTasks sets the "source_tasks" field.
func (m *AggregatedEntityMutation) SetSourceTasks(s []string) {
	m.source_tasks = &s
	m.appendsource_tasks = nil
}

// SourceTasks returns the value of the "source_tasks" field in the mutation.
func (m *AggregatedEntityMutation) SourceTasks() (r []string, exists bool) {
	v := m.source_tasks
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceTasks returns the old "source_tasks" field's value of the AggregatedEntity entity.
// If the AggregatedEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AggregatedEntityMutation) OldSourceTasks(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceTasks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceTasks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceTasks: %w", err)
	}
	return oldValue.SourceTasks, nil
}

// AppendSourceTasks adds s to the "source_tasks" field.
func (m *AggregatedEntityMutation) AppendSourceTasks(s []string) {
	m.appendsource_tasks = append(m.appendsource_tasks, s...)
}

// AppendedSourceTasks returns the list of values that were appended to the "source_tasks" field in this mutation.
func (m *AggregatedEntityMutation) AppendedSourceTasks() ([]string, bool) {
	if len(m.appendsource_tasks) == 0 {
		return nil, false
	}
	return m.appendsource_tasks, true
}

// ResetSourceTasks resets all changes to the "source_tasks" field.
func (m *AggregatedEntityMutation) ResetSourceTasks() {
	m.source_tasks = nil
	m.appendsource_tasks = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AggregatedEntityMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AggregatedEntityMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AggregatedEntity entity.
// If the AggregatedEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AggregatedEntityMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AggregatedEntityMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AggregatedEntityMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AggregatedEntityMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AggregatedEntity entity.
// If the AggregatedEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AggregatedEntityMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AggregatedEntityMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the AggregatedEntityMutation builder.
func (m *AggregatedEntityMutation) Where(ps ...predicate.AggregatedEntity) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AggregatedEntityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AggregatedEntityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AggregatedEntity, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AggregatedEntityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AggregatedEntityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AggregatedEntity).
func (m *AggregatedEntityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AggregatedEntityMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.scope_id != nil {
		fields = append(fields, aggregatedentity.FieldScopeID)
	}
	if m.entity_type != nil {
		fields = append(fields, aggregatedentity.FieldEntityType)
	}
	if m.name != nil {
		fields = append(fields, aggregatedentity.FieldName)
	}
	if m.normalized_name != nil {
		fields = append(fields, aggregatedentity.FieldNormalizedName)
	}
	if m.unique_identifier != nil {
		fields = append(fields, aggregatedentity.FieldUniqueIdentifier)
	}
	if m.consolidated_attributes != nil {
		fields = append(fields, aggregatedentity.FieldConsolidatedAttributes)
	}
	if m.data_lineage != nil {
		fields = append(fields, aggregatedentity.FieldDataLineage)
	}
	if m.confidence_score != nil {
		fields = append(fields, aggregatedentity.FieldConfidenceScore)
	}
	if m.source_tasks != nil {
		fields = append(fields, aggregatedentity.FieldSourceTasks)
	}
	if m.created_at != nil {
		fields = append(fields, aggregatedentity.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, aggregatedentity.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AggregatedEntityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case aggregatedentity.FieldScopeID:
		return m.ScopeID()
	case aggregatedentity.FieldEntityType:
		return m.EntityType()
	case aggregatedentity.FieldName:
		return m.Name()
	case aggregatedentity.FieldNormalizedName:
		return m.NormalizedName()
	case aggregatedentity.FieldUniqueIdentifier:
		return m.UniqueIdentifier()
	case aggregatedentity.FieldConsolidatedAttributes:
		return m.ConsolidatedAttributes()
	case aggregatedentity.FieldDataLineage:
		return m.DataLineage()
	case aggregatedentity.FieldConfidenceScore:
		return m.ConfidenceScore()
	case aggregatedentity.FieldSourceTasks:
		return m.SourceTasks()
	case aggregatedentity.FieldCreatedAt:
		return m.CreatedAt()
	case aggregatedentity.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AggregatedEntityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case aggregatedentity.FieldScopeID:
		return m.OldScopeID(ctx)
	case aggregatedentity.FieldEntityType:
		return m.OldEntityType(ctx)
	case aggregatedentity.FieldName:
		return m.OldName(ctx)
	case aggregatedentity.FieldNormalizedName:
		return m.OldNormalizedName(ctx)
	case aggregatedentity.FieldUniqueIdentifier:
		return m.OldUniqueIdentifier(ctx)
	case aggregatedentity.FieldConsolidatedAttributes:
		return m.OldConsolidatedAttributes(ctx)
	case aggregatedentity.FieldDataLineage:
		return m.OldDataLineage(ctx)
	case aggregatedentity.FieldConfidenceScore:
		return m.OldConfidenceScore(ctx)
	case aggregatedentity.FieldSourceTasks:
		return m.OldSourceTasks(ctx)
	case aggregatedentity.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case aggregatedentity.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AggregatedEntity field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AggregatedEntityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case aggregatedentity.FieldScopeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScopeID(v)
		return nil
	case aggregatedentity.FieldEntityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case aggregatedentity.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case aggregatedentity.FieldNormalizedName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalizedName(v)
		return nil
	case aggregatedentity.FieldUniqueIdentifier:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUniqueIdentifier(v)
		return nil
	case aggregatedentity.FieldConsolidatedAttributes:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsolidatedAttributes(v)
		return nil
	case aggregatedentity.FieldDataLineage:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDataLineage(v)
		return nil
	case aggregatedentity.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceScore(v)
		return nil
	case aggregatedentity.FieldSourceTasks:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceTasks(v)
		return nil
	case aggregatedentity.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case aggregatedentity.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AggregatedEntity field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AggregatedEntityMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence_score != nil {
		fields = append(fields, aggregatedentity.FieldConfidenceScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AggregatedEntityMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case aggregatedentity.FieldConfidenceScore:
		return m.AddedConfidenceScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AggregatedEntityMutation) AddField(name string, value ent.Value) error {
	switch name {
	case aggregatedentity.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceScore(v)
		return nil
	}
	return fmt.Errorf("unknown AggregatedEntity numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AggregatedEntityMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(aggregatedentity.FieldUniqueIdentifier) {
		fields = append(fields, aggregatedentity.FieldUniqueIdentifier)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AggregatedEntityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AggregatedEntityMutation) ClearField(name string) error {
	switch name {
	case aggregatedentity.FieldUniqueIdentifier:
		m.ClearUniqueIdentifier()
		return nil
	}
	return fmt.Errorf("unknown AggregatedEntity nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AggregatedEntityMutation) ResetField(name string) error {
	switch name {
	case aggregatedentity.FieldScopeID:
		m.ResetScopeID()
		return nil
	case aggregatedentity.FieldEntityType:
		m.ResetEntityType()
		return nil
	case aggregatedentity.FieldName:
		m.ResetName()
		return nil
	case aggregatedentity.FieldNormalizedName:
		m.ResetNormalizedName()
		return nil
	case aggregatedentity.FieldUniqueIdentifier:
		m.ResetUniqueIdentifier()
		return nil
	case aggregatedentity.FieldConsolidatedAttributes:
		m.ResetConsolidatedAttributes()
		return nil
	case aggregatedentity.FieldDataLineage:
		m.ResetDataLineage()
		return nil
	case aggregatedentity.FieldConfidenceScore:
		m.ResetConfidenceScore()
		return nil
	case aggregatedentity.FieldSourceTasks:
		m.ResetSourceTasks()
		return nil
	case aggregatedentity.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case aggregatedentity.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AggregatedEntity field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AggregatedEntityMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AggregatedEntityMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AggregatedEntityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AggregatedEntityMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AggregatedEntityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AggregatedEntityMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AggregatedEntityMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AggregatedEntity unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AggregatedEntityMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AggregatedEntity edge %s", name)
}

// ArtifactMutation represents an operation that mutates the Artifact nodes in the graph.
type ArtifactMutation struct {
	config
	op            Op
	typ           string
	id            *string
	kind          *string
	_path         *string
	content_type  *string
	checksum      *string
	size_bytes    *int64
	addsize_bytes *int64
	created_at    *time.Time
	clearedFields map[string]struct{}
	task          *string
	clearedtask   bool
	done          bool
	oldValue      func(context.Context) (*Artifact, error)
	predicates    []predicate.Artifact
}

var _ ent.Mutation = (*ArtifactMutation)(nil)

// artifactOption allows management of the mutation configuration using functional options.
type artifactOption func(*ArtifactMutation)

// newArtifactMutation creates new mutation for the Artifact entity.
func newArtifactMutation(c config, op Op, opts ...artifactOption) *ArtifactMutation {
	m := &ArtifactMutation{
		config:        c,
		op:            op,
		typ:           TypeArtifact,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withArtifactID sets the ID field of the mutation.
func withArtifactID(id string) artifactOption {
	return func(m *ArtifactMutation) {
		var (
			err   error
			once  sync.Once
			value *Artifact
		)
		m.oldValue = func(ctx context.Context) (*Artifact, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Artifact.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withArtifact sets the old Artifact of the mutation.
func withArtifact(node *Artifact) artifactOption {
	return func(m *ArtifactMutation) {
		m.oldValue = func(context.Context) (*Artifact, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ArtifactMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ArtifactMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Artifact entities.
func (m *ArtifactMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ArtifactMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ArtifactMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Artifact.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *ArtifactMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *ArtifactMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *ArtifactMutation) ResetTaskID() {
	m.task = nil
}

// SetKind sets the "kind" field.
func (m *ArtifactMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ArtifactMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ArtifactMutation) ResetKind() {
	m.kind = nil
}

// SetPath sets the "path" field.
func (m *ArtifactMutation) SetPath(s string) {
	m._path = &s
}

// Path returns the value of the "path" field in the mutation.
func (m *ArtifactMutation) Path() (r string, exists bool) {
	v := m._path
	if v == nil {
		return
	}
	return *v, true
}

// OldPath returns the old "path" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPath: %w", err)
	}
	return oldValue.Path, nil
}

// ResetPath resets all changes to the "path" field.
func (m *ArtifactMutation) ResetPath() {
	m._path = nil
}

// SetContentType sets the "content_type" field.
func (m *ArtifactMutation) SetContentType(s string) {
	m.content_type = &s
}

// ContentType returns the value of the "content_type" field in the mutation.
func (m *ArtifactMutation) ContentType() (r string, exists bool) {
	v := m.content_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContentType returns the old "content_type" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldContentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentType: %w", err)
	}
	return oldValue.ContentType, nil
}

// ResetContentType resets all changes to the "content_type" field.
func (m *ArtifactMutation) ResetContentType() {
	m.content_type = nil
}

// SetChecksum sets the "checksum" field.
func (m *ArtifactMutation) SetChecksum(s string) {
	m.checksum = &s
}

// Checksum returns the value of the "checksum" field in the mutation.
func (m *ArtifactMutation) Checksum() (r string, exists bool) {
	v := m.checksum
	if v == nil {
		return
	}
	return *v, true
}

// OldChecksum returns the old "checksum" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldChecksum(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChecksum is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChecksum requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChecksum: %w", err)
	}
	return oldValue.Checksum, nil
}

// ResetChecksum resets all changes to the "checksum" field.
func (m *ArtifactMutation) ResetChecksum() {
	m.checksum = nil
}

// SetSizeBytes sets the "size_bytes" field.
func (m *ArtifactMutation) SetSizeBytes(i int64) {
	m.size_bytes = &i
	m.addsize_bytes = nil
}

// SizeBytes returns the value of the "size_bytes" field in the mutation.
func (m *ArtifactMutation) SizeBytes() (r int64, exists bool) {
	v := m.size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldSizeBytes returns the old "size_bytes" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldSizeBytes(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSizeBytes: %w", err)
	}
	return oldValue.SizeBytes, nil
}

// AddSizeBytes adds i to the "size_bytes" field.
func (m *ArtifactMutation) AddSizeBytes(i int64) {
	if m.addsize_bytes != nil {
		*m.addsize_bytes += i
	} else {
		m.addsize_bytes = &i
	}
}

// AddedSizeBytes returns the value that was added to the "size_bytes" field in this mutation.
func (m *ArtifactMutation) AddedSizeBytes() (r int64, exists bool) {
	v := m.addsize_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetSizeBytes resets all changes to the "size_bytes" field.
func (m *ArtifactMutation) ResetSizeBytes() {
	m.size_bytes = nil
	m.addsize_bytes = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ArtifactMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ArtifactMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ArtifactMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the ResearchTask entity.
func (m *ArtifactMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[artifact.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the ResearchTask entity was cleared.
func (m *ArtifactMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *ArtifactMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *ArtifactMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the ArtifactMutation builder.
func (m *ArtifactMutation) Where(ps ...predicate.Artifact) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ArtifactMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ArtifactMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Artifact, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ArtifactMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ArtifactMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Artifact).
func (m *ArtifactMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ArtifactMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.task != nil {
		fields = append(fields, artifact.FieldTaskID)
	}
	if m.kind != nil {
		fields = append(fields, artifact.FieldKind)
	}
	if m._path != nil {
		fields = append(fields, artifact.FieldPath)
	}
	if m.content_type != nil {
		fields = append(fields, artifact.FieldContentType)
	}
	if m.checksum != nil {
		fields = append(fields, artifact.FieldChecksum)
	}
	if m.size_bytes != nil {
		fields = append(fields, artifact.FieldSizeBytes)
	}
	if m.created_at != nil {
		fields = append(fields, artifact.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ArtifactMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case artifact.FieldTaskID:
		return m.TaskID()
	case artifact.FieldKind:
		return m.Kind()
	case artifact.FieldPath:
		return m.Path()
	case artifact.FieldContentType:
		return m.ContentType()
	case artifact.FieldChecksum:
		return m.Checksum()
	case artifact.FieldSizeBytes:
		return m.SizeBytes()
	case artifact.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ArtifactMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case artifact.FieldTaskID:
		return m.OldTaskID(ctx)
	case artifact.FieldKind:
		return m.OldKind(ctx)
	case artifact.FieldPath:
		return m.OldPath(ctx)
	case artifact.FieldContentType:
		return m.OldContentType(ctx)
	case artifact.FieldChecksum:
		return m.OldChecksum(ctx)
	case artifact.FieldSizeBytes:
		return m.OldSizeBytes(ctx)
	case artifact.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Artifact field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArtifactMutation) SetField(name string, value ent.Value) error {
	switch name {
	case artifact.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case artifact.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case artifact.FieldPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPath(v)
		return nil
	case artifact.FieldContentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentType(v)
		return nil
	case artifact.FieldChecksum:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChecksum(v)
		return nil
	case artifact.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSizeBytes(v)
		return nil
	case artifact.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Artifact field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ArtifactMutation) AddedFields() []string {
	var fields []string
	if m.addsize_bytes != nil {
		fields = append(fields, artifact.FieldSizeBytes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ArtifactMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case artifact.FieldSizeBytes:
		return m.AddedSizeBytes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArtifactMutation) AddField(name string, value ent.Value) error {
	switch name {
	case artifact.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSizeBytes(v)
		return nil
	}
	return fmt.Errorf("unknown Artifact numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ArtifactMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ArtifactMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ArtifactMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Artifact nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ArtifactMutation) ResetField(name string) error {
	switch name {
	case artifact.FieldTaskID:
		m.ResetTaskID()
		return nil
	case artifact.FieldKind:
		m.ResetKind()
		return nil
	case artifact.FieldPath:
		m.ResetPath()
		return nil
	case artifact.FieldContentType:
		m.ResetContentType()
		return nil
	case artifact.FieldChecksum:
		m.ResetChecksum()
		return nil
	case artifact.FieldSizeBytes:
		m.ResetSizeBytes()
		return nil
	case artifact.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Artifact field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ArtifactMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, artifact.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ArtifactMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case artifact.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ArtifactMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ArtifactMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ArtifactMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, artifact.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ArtifactMutation) EdgeCleared(name string) bool {
	switch name {
	case artifact.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ArtifactMutation) ClearEdge(name string) error {
	switch name {
	case artifact.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown Artifact unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ArtifactMutation) ResetEdge(name string) error {
	switch name {
	case artifact.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown Artifact edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	channel       *string
	event_type    *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	task          *string
	clearedtask   bool
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *EventMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *EventMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ClearTaskID clears the value of the "task_id" field.
func (m *EventMutation) ClearTaskID() {
	m.task = nil
	m.clearedFields[event.FieldTaskID] = struct{}{}
}

// TaskIDCleared returns if the "task_id" field was cleared in this mutation.
func (m *EventMutation) TaskIDCleared() bool {
	_, ok := m.clearedFields[event.FieldTaskID]
	return ok
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *EventMutation) ResetTaskID() {
	m.task = nil
	delete(m.clearedFields, event.FieldTaskID)
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetEventType sets the "event_type" field.
func (m *EventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *EventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *EventMutation) ResetEventType() {
	m.event_type = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the ResearchTask entity.
func (m *EventMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[event.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the ResearchTask entity was cleared.
func (m *EventMutation) TaskCleared() bool {
	return m.TaskIDCleared() || m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *EventMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *EventMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.task != nil {
		fields = append(fields, event.FieldTaskID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.event_type != nil {
		fields = append(fields, event.FieldEventType)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldTaskID:
		return m.TaskID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldEventType:
		return m.EventType()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldTaskID:
		return m.OldTaskID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldEventType:
		return m.OldEventType(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldTaskID) {
		fields = append(fields, event.FieldTaskID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldTaskID:
		m.ClearTaskID()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldTaskID:
		m.ResetTaskID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldEventType:
		m.ResetEventType()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, event.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, event.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	switch name {
	case event.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	switch name {
	case event.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	switch name {
	case event.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown Event edge %s", name)
}

// EvidenceMutation represents an operation that mutates the Evidence nodes in the graph.
type EvidenceMutation struct {
	config
	op               Op
	typ              string
	id               *string
	task_id          *string
	evidence_type    *string
	evidence_data    *map[string]interface{}
	source_url       *string
	provider         *string
	size_bytes       *int
	addsize_bytes    *int
	created_at       *time.Time
	clearedFields    map[string]struct{}
	operation        *string
	clearedoperation bool
	done             bool
	oldValue         func(context.Context) (*Evidence, error)
	predicates       []predicate.Evidence
}

var _ ent.Mutation = (*EvidenceMutation)(nil)

// evidenceOption allows management of the mutation configuration using functional options.
type evidenceOption func(*EvidenceMutation)

// newEvidenceMutation creates new mutation for the Evidence entity.
func newEvidenceMutation(c config, op Op, opts ...evidenceOption) *EvidenceMutation {
	m := &EvidenceMutation{
		config:        c,
		op:            op,
		typ:           TypeEvidence,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEvidenceID sets the ID field of the mutation.
func withEvidenceID(id string) evidenceOption {
	return func(m *EvidenceMutation) {
		var (
			err   error
			once  sync.Once
			value *Evidence
		)
		m.oldValue = func(ctx context.Context) (*Evidence, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Evidence.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvidence sets the old Evidence of the mutation.
func withEvidence(node *Evidence) evidenceOption {
	return func(m *EvidenceMutation) {
		m.oldValue = func(context.Context) (*Evidence, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EvidenceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EvidenceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Evidence entities.
func (m *EvidenceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EvidenceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EvidenceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Evidence.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOperationID sets the "operation_id" field.
func (m *EvidenceMutation) SetOperationID(s string) {
	m.operation = &s
}

// OperationID returns the value of the "operation_id" field in the mutation.
func (m *EvidenceMutation) OperationID() (r string, exists bool) {
	v := m.operation
	if v == nil {
		return
	}
	return *v, true
}

// OldOperationID returns the old "operation_id" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldOperationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperationID: %w", err)
	}
	return oldValue.OperationID, nil
}

// ResetOperationID resets all changes to the "operation_id" field.
func (m *EvidenceMutation) ResetOperationID() {
	m.operation = nil
}

// SetTaskID sets the "task_id" field.
func (m *EvidenceMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *EvidenceMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *EvidenceMutation) ResetTaskID() {
	m.task_id = nil
}

// SetEvidenceType sets the "evidence_type" field.
func (m *EvidenceMutation) SetEvidenceType(s string) {
	m.evidence_type = &s
}

// EvidenceType returns the value of the "evidence_type" field in the mutation.
func (m *EvidenceMutation) EvidenceType() (r string, exists bool) {
	v := m.evidence_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidenceType returns the old "evidence_type" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldEvidenceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidenceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidenceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidenceType: %w", err)
	}
	return oldValue.EvidenceType, nil
}

// ResetEvidenceType resets all changes to the "evidence_type" field.
func (m *EvidenceMutation) ResetEvidenceType() {
	m.evidence_type = nil
}

// SetEvidenceData sets the "evidence_data" field.
func (m *EvidenceMutation) SetEvidenceData(value map[string]interface{}) {
	m.evidence_data = &value
}

// EvidenceData returns the value of the "evidence_data" field in the mutation.
func (m *EvidenceMutation) EvidenceData() (r map[string]interface{}, exists bool) {
	v := m.evidence_data
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidenceData returns the old "evidence_data" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldEvidenceData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidenceData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidenceData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidenceData: %w", err)
	}
	return oldValue.EvidenceData, nil
}

// ResetEvidenceData resets all changes to the "evidence_data" field.
func (m *EvidenceMutation) ResetEvidenceData() {
	m.evidence_data = nil
}

// SetSourceURL sets the "source_url" field.
func (m *EvidenceMutation) SetSourceURL(s string) {
	m.source_url = &s
}

// SourceURL returns the value of the "source_url" field in the mutation.
func (m *EvidenceMutation) SourceURL() (r string, exists bool) {
	v := m.source_url
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceURL returns the old "source_url" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldSourceURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceURL: %w", err)
	}
	return oldValue.SourceURL, nil
}

// ClearSourceURL clears the value of the "source_url" field.
func (m *EvidenceMutation) ClearSourceURL() {
	m.source_url = nil
	m.clearedFields[evidence.FieldSourceURL] = struct{}{}
}

// SourceURLCleared returns if the "source_url" field was cleared in this mutation.
func (m *EvidenceMutation) SourceURLCleared() bool {
	_, ok := m.clearedFields[evidence.FieldSourceURL]
	return ok
}

// ResetSourceURL resets all changes to the "source_url" field.
func (m *EvidenceMutation) ResetSourceURL() {
	m.source_url = nil
	delete(m.clearedFields, evidence.FieldSourceURL)
}

// SetProvider sets the "provider" field.
func (m *EvidenceMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *EvidenceMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldProvider(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ClearProvider clears the value of the "provider" field.
func (m *EvidenceMutation) ClearProvider() {
	m.provider = nil
	m.clearedFields[evidence.FieldProvider] = struct{}{}
}

// ProviderCleared returns if the "provider" field was cleared in this mutation.
func (m *EvidenceMutation) ProviderCleared() bool {
	_, ok := m.clearedFields[evidence.FieldProvider]
	return ok
}

// ResetProvider resets all changes to the "provider" field.
func (m *EvidenceMutation) ResetProvider() {
	m.provider = nil
	delete(m.clearedFields, evidence.FieldProvider)
}

// SetSizeBytes sets the "size_bytes" field.
func (m *EvidenceMutation) SetSizeBytes(i int) {
	m.size_bytes = &i
	m.addsize_bytes = nil
}

// SizeBytes returns the value of the "size_bytes" field in the mutation.
func (m *EvidenceMutation) SizeBytes() (r int, exists bool) {
	v := m.size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldSizeBytes returns the old "size_bytes" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldSizeBytes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSizeBytes: %w", err)
	}
	return oldValue.SizeBytes, nil
}

// AddSizeBytes adds i to the "size_bytes" field.
func (m *EvidenceMutation) AddSizeBytes(i int) {
	if m.addsize_bytes != nil {
		*m.addsize_bytes += i
	} else {
		m.addsize_bytes = &i
	}
}

// AddedSizeBytes returns the value that was added to the "size_bytes" field in this mutation.
func (m *EvidenceMutation) AddedSizeBytes() (r int, exists bool) {
	v := m.addsize_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetSizeBytes resets all changes to the "size_bytes" field.
func (m *EvidenceMutation) ResetSizeBytes() {
	m.size_bytes = nil
	m.addsize_bytes = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EvidenceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EvidenceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EvidenceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearOperation clears the "operation" edge to the Operation entity.
func (m *EvidenceMutation) ClearOperation() {
	m.clearedoperation = true
	m.clearedFields[evidence.FieldOperationID] = struct{}{}
}

// OperationCleared reports if the "operation" edge to the Operation entity was cleared.
func (m *EvidenceMutation) OperationCleared() bool {
	return m.clearedoperation
}

// OperationIDs returns the "operation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OperationID instead. It exists only for internal usage by the builders.
func (m *EvidenceMutation) OperationIDs() (ids []string) {
	if id := m.operation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOperation resets all changes to the "operation" edge.
func (m *EvidenceMutation) ResetOperation() {
	m.operation = nil
	m.clearedoperation = false
}

// Where appends a list predicates to the EvidenceMutation builder.
func (m *EvidenceMutation) Where(ps ...predicate.Evidence) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EvidenceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EvidenceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Evidence, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EvidenceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EvidenceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Evidence).
func (m *EvidenceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EvidenceMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.operation != nil {
		fields = append(fields, evidence.FieldOperationID)
	}
	if m.task_id != nil {
		fields = append(fields, evidence.FieldTaskID)
	}
	if m.evidence_type != nil {
		fields = append(fields, evidence.FieldEvidenceType)
	}
	if m.evidence_data != nil {
		fields = append(fields, evidence.FieldEvidenceData)
	}
	if m.source_url != nil {
		fields = append(fields, evidence.FieldSourceURL)
	}
	if m.provider != nil {
		fields = append(fields, evidence.FieldProvider)
	}
	if m.size_bytes != nil {
		fields = append(fields, evidence.FieldSizeBytes)
	}
	if m.created_at != nil {
		fields = append(fields, evidence.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EvidenceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case evidence.FieldOperationID:
		return m.OperationID()
	case evidence.FieldTaskID:
		return m.TaskID()
	case evidence.FieldEvidenceType:
		return m.EvidenceType()
	case evidence.FieldEvidenceData:
		return m.EvidenceData()
	case evidence.FieldSourceURL:
		return m.SourceURL()
	case evidence.FieldProvider:
		return m.Provider()
	case evidence.FieldSizeBytes:
		return m.SizeBytes()
	case evidence.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EvidenceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case evidence.FieldOperationID:
		return m.OldOperationID(ctx)
	case evidence.FieldTaskID:
		return m.OldTaskID(ctx)
	case evidence.FieldEvidenceType:
		return m.OldEvidenceType(ctx)
	case evidence.FieldEvidenceData:
		return m.OldEvidenceData(ctx)
	case evidence.FieldSourceURL:
		return m.OldSourceURL(ctx)
	case evidence.FieldProvider:
		return m.OldProvider(ctx)
	case evidence.FieldSizeBytes:
		return m.OldSizeBytes(ctx)
	case evidence.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Evidence field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvidenceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case evidence.FieldOperationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperationID(v)
		return nil
	case evidence.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case evidence.FieldEvidenceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidenceType(v)
		return nil
	case evidence.FieldEvidenceData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidenceData(v)
		return nil
	case evidence.FieldSourceURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceURL(v)
		return nil
	case evidence.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case evidence.FieldSizeBytes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSizeBytes(v)
		return nil
	case evidence.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Evidence field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EvidenceMutation) AddedFields() []string {
	var fields []string
	if m.addsize_bytes != nil {
		fields = append(fields, evidence.FieldSizeBytes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EvidenceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case evidence.FieldSizeBytes:
		return m.AddedSizeBytes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvidenceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case evidence.FieldSizeBytes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSizeBytes(v)
		return nil
	}
	return fmt.Errorf("unknown Evidence numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EvidenceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(evidence.FieldSourceURL) {
		fields = append(fields, evidence.FieldSourceURL)
	}
	if m.FieldCleared(evidence.FieldProvider) {
		fields = append(fields, evidence.FieldProvider)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EvidenceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EvidenceMutation) ClearField(name string) error {
	switch name {
	case evidence.FieldSourceURL:
		m.ClearSourceURL()
		return nil
	case evidence.FieldProvider:
		m.ClearProvider()
		return nil
	}
	return fmt.Errorf("unknown Evidence nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EvidenceMutation) ResetField(name string) error {
	switch name {
	case evidence.FieldOperationID:
		m.ResetOperationID()
		return nil
	case evidence.FieldTaskID:
		m.ResetTaskID()
		return nil
	case evidence.FieldEvidenceType:
		m.ResetEvidenceType()
		return nil
	case evidence.FieldEvidenceData:
		m.ResetEvidenceData()
		return nil
	case evidence.FieldSourceURL:
		m.ResetSourceURL()
		return nil
	case evidence.FieldProvider:
		m.ResetProvider()
		return nil
	case evidence.FieldSizeBytes:
		m.ResetSizeBytes()
		return nil
	case evidence.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Evidence field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EvidenceMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.operation != nil {
		edges = append(edges, evidence.EdgeOperation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EvidenceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case evidence.EdgeOperation:
		if id := m.operation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EvidenceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EvidenceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EvidenceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedoperation {
		edges = append(edges, evidence.EdgeOperation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EvidenceMutation) EdgeCleared(name string) bool {
	switch name {
	case evidence.EdgeOperation:
		return m.clearedoperation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EvidenceMutation) ClearEdge(name string) error {
	switch name {
	case evidence.EdgeOperation:
		m.ClearOperation()
		return nil
	}
	return fmt.Errorf("unknown Evidence unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EvidenceMutation) ResetEdge(name string) error {
	switch name {
	case evidence.EdgeOperation:
		m.ResetOperation()
		return nil
	}
	return fmt.Errorf("unknown Evidence edge %s", name)
}

// InsightMutation represents an operation that mutates the Insight nodes in the graph.
type InsightMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	category            *string
	insight_text        *string
	confidence_score    *float64
	addconfidence_score *float64
	source_ids          *[]string
	appendsource_ids    []string
	position            *int
	addposition         *int
	created_at          *time.Time
	clearedFields       map[string]struct{}
	task                *string
	clearedtask         bool
	done                bool
	oldValue            func(context.Context) (*Insight, error)
	predicates          []predicate.Insight
}

var _ ent.Mutation = (*InsightMutation)(nil)

// insightOption allows management of the mutation configuration using functional options.
type insightOption func(*InsightMutation)

// newInsightMutation creates new mutation for the Insight entity.
func newInsightMutation(c config, op Op, opts ...insightOption) *InsightMutation {
	m := &InsightMutation{
		config:        c,
		op:            op,
		typ:           TypeInsight,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInsightID sets the ID field of the mutation.
func withInsightID(id string) insightOption {
	return func(m *InsightMutation) {
		var (
			err   error
			once  sync.Once
			value *Insight
		)
		m.oldValue = func(ctx context.Context) (*Insight, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Insight.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInsight sets the old Insight of the mutation.
func withInsight(node *Insight) insightOption {
	return func(m *InsightMutation) {
		m.oldValue = func(context.Context) (*Insight, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InsightMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InsightMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Insight entities.
func (m *InsightMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InsightMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InsightMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Insight.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *InsightMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *InsightMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *InsightMutation) ResetTaskID() {
	m.task = nil
}

// SetCategory sets the "category" field.
func (m *InsightMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *InsightMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *InsightMutation) ResetCategory() {
	m.category = nil
}

// SetInsightText sets the "insight_text" field.
func (m *InsightMutation) SetInsightText(s string) {
	m.insight_text = &s
}

// InsightText returns the value of the "insight_text" field in the mutation.
func (m *InsightMutation) InsightText() (r string, exists bool) {
	v := m.insight_text
	if v == nil {
		return
	}
	return *v, true
}

// OldInsightText returns the old "insight_text" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldInsightText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInsightText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInsightText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInsightText: %w", err)
	}
	return oldValue.InsightText, nil
}

// ResetInsightText resets all changes to the "insight_text" field.
func (m *InsightMutation) ResetInsightText() {
	m.insight_text = nil
}

// SetConfidenceScore sets the "confidence_score" field.
func (m *InsightMutation) SetConfidenceScore(f float64) {
	m.confidence_score = &f
	m.addconfidence_score = nil
}

// ConfidenceScore returns the value of the "confidence_score" field in the mutation.
func (m *InsightMutation) ConfidenceScore() (r float64, exists bool) {
	v := m.confidence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceScore returns the old "confidence_score" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldConfidenceScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceScore: %w", err)
	}
	return oldValue.ConfidenceScore, nil
}

// AddConfidenceScore adds f to the "confidence_score" field.
func (m *InsightMutation) AddConfidenceScore(f float64) {
	if m.addconfidence_score != nil {
		*m.addconfidence_score += f
	} else {
		m.addconfidence_score = &f
	}
}

// AddedConfidenceScore returns the value that was added to the "confidence_score" field in this mutation.
func (m *InsightMutation) AddedConfidenceScore() (r float64, exists bool) {
	v := m.addconfidence_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidenceScore resets all changes to the "confidence_score" field.
func (m *InsightMutation) ResetConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
}

// SetSourceIds sets the "source_ids" field.
func (m *InsightMutation) SetSourceIds(s []string) {
	m.source_ids = &s
	m.appendsource_ids = nil
}

// SourceIds returns the value of the "source_ids" field in the mutation.
func (m *InsightMutation) SourceIds() (r []string, exists bool) {
	v := m.source_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceIds returns the old "source_ids" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldSourceIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceIds: %w", err)
	}
	return oldValue.SourceIds, nil
}

// AppendSourceIds adds s to the "source_ids" field.
func (m *InsightMutation) AppendSourceIds(s []string) {
	m.appendsource_ids = append(m.appendsource_ids, s...)
}

// AppendedSourceIds returns the list of values that were appended to the "source_ids" field in this mutation.
func (m *InsightMutation) AppendedSourceIds() ([]string, bool) {
	if len(m.appendsource_ids) == 0 {
		return nil, false
	}
	return m.appendsource_ids, true
}

// ResetSourceIds resets all changes to the "source_ids" field.
func (m *InsightMutation) ResetSourceIds() {
	m.source_ids = nil
	m.appendsource_ids = nil
}

// SetPosition sets the "position" field.
func (m *InsightMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *InsightMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *InsightMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *InsightMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *InsightMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *InsightMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InsightMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InsightMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the ResearchTask entity.
func (m *InsightMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[insight.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the ResearchTask entity was cleared.
func (m *InsightMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *InsightMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *InsightMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the InsightMutation builder.
func (m *InsightMutation) Where(ps ...predicate.Insight) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InsightMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InsightMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Insight, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InsightMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InsightMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Insight).
func (m *InsightMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InsightMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.task != nil {
		fields = append(fields, insight.FieldTaskID)
	}
	if m.category != nil {
		fields = append(fields, insight.FieldCategory)
	}
	if m.insight_text != nil {
		fields = append(fields, insight.FieldInsightText)
	}
	if m.confidence_score != nil {
		fields = append(fields, insight.FieldConfidenceScore)
	}
	if m.source_ids != nil {
		fields = append(fields, insight.FieldSourceIds)
	}
	if m.position != nil {
		fields = append(fields, insight.FieldPosition)
	}
	if m.created_at != nil {
		fields = append(fields, insight.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InsightMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case insight.FieldTaskID:
		return m.TaskID()
	case insight.FieldCategory:
		return m.Category()
	case insight.FieldInsightText:
		return m.InsightText()
	case insight.FieldConfidenceScore:
		return m.ConfidenceScore()
	case insight.FieldSourceIds:
		return m.SourceIds()
	case insight.FieldPosition:
		return m.Position()
	case insight.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InsightMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case insight.FieldTaskID:
		return m.OldTaskID(ctx)
	case insight.FieldCategory:
		return m.OldCategory(ctx)
	case insight.FieldInsightText:
		return m.OldInsightText(ctx)
	case insight.FieldConfidenceScore:
		return m.OldConfidenceScore(ctx)
	case insight.FieldSourceIds:
		return m.OldSourceIds(ctx)
	case insight.FieldPosition:
		return m.OldPosition(ctx)
	case insight.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Insight field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InsightMutation) SetField(name string, value ent.Value) error {
	switch name {
	case insight.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case insight.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case insight.FieldInsightText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInsightText(v)
		return nil
	case insight.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceScore(v)
		return nil
	case insight.FieldSourceIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceIds(v)
		return nil
	case insight.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case insight.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Insight field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InsightMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence_score != nil {
		fields = append(fields, insight.FieldConfidenceScore)
	}
	if m.addposition != nil {
		fields = append(fields, insight.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InsightMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case insight.FieldConfidenceScore:
		return m.AddedConfidenceScore()
	case insight.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InsightMutation) AddField(name string, value ent.Value) error {
	switch name {
	case insight.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceScore(v)
		return nil
	case insight.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown Insight numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InsightMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InsightMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InsightMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Insight nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InsightMutation) ResetField(name string) error {
	switch name {
	case insight.FieldTaskID:
		m.ResetTaskID()
		return nil
	case insight.FieldCategory:
		m.ResetCategory()
		return nil
	case insight.FieldInsightText:
		m.ResetInsightText()
		return nil
	case insight.FieldConfidenceScore:
		m.ResetConfidenceScore()
		return nil
	case insight.FieldSourceIds:
		m.ResetSourceIds()
		return nil
	case insight.FieldPosition:
		m.ResetPosition()
		return nil
	case insight.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Insight field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InsightMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, insight.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InsightMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case insight.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InsightMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InsightMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InsightMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, insight.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InsightMutation) EdgeCleared(name string) bool {
	switch name {
	case insight.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InsightMutation) ClearEdge(name string) error {
	switch name {
	case insight.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown Insight unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InsightMutation) ResetEdge(name string) error {
	switch name {
	case insight.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown Insight edge %s", name)
}

// KnowledgeNodeMutation represents an operation that mutates the KnowledgeNode nodes in the graph.
type KnowledgeNodeMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	parent_id           *string
	category            *string
	subcategory         *string
	summary             *string
	dok_level           *int
	adddok_level        *int
	position            *int
	addposition         *int
	created_at          *time.Time
	clearedFields       map[string]struct{}
	task                *string
	clearedtask         bool
	source_links        map[string]struct{}
	removedsource_links map[string]struct{}
	clearedsource_links bool
	done                bool
	oldValue            func(context.Context) (*KnowledgeNode, error)
	predicates          []predicate.KnowledgeNode
}

var _ ent.Mutation = (*KnowledgeNodeMutation)(nil)

// knowledgenodeOption allows management of the mutation configuration using functional options.
type knowledgenodeOption func(*KnowledgeNodeMutation)

// newKnowledgeNodeMutation creates new mutation for the KnowledgeNode entity.
func newKnowledgeNodeMutation(c config, op Op, opts ...knowledgenodeOption) *KnowledgeNodeMutation {
	m := &KnowledgeNodeMutation{
		config:        c,
		op:            op,
		typ:           TypeKnowledgeNode,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withKnowledgeNodeID sets the ID field of the mutation.
func withKnowledgeNodeID(id string) knowledgenodeOption {
	return func(m *KnowledgeNodeMutation) {
		var (
			err   error
			once  sync.Once
			value *KnowledgeNode
		)
		m.oldValue = func(ctx context.Context) (*KnowledgeNode, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().KnowledgeNode.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withKnowledgeNode sets the old KnowledgeNode of the mutation.
func withKnowledgeNode(node *KnowledgeNode) knowledgenodeOption {
	return func(m *KnowledgeNodeMutation) {
		m.oldValue = func(context.Context) (*KnowledgeNode, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m KnowledgeNodeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m KnowledgeNodeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of KnowledgeNode entities.
func (m *KnowledgeNodeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *KnowledgeNodeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *KnowledgeNodeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().KnowledgeNode.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *KnowledgeNodeMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *KnowledgeNodeMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the KnowledgeNode entity.
// If the KnowledgeNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeNodeMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *KnowledgeNodeMutation) ResetTaskID() {
	m.task = nil
}

// SetParentID sets the "parent_id" field.
func (m *KnowledgeNodeMutation) SetParentID(s string) {
	m.parent_id = &s
}

// ParentID returns the value of the "parent_id" field in the mutation.
func (m *KnowledgeNodeMutation) ParentID() (r string, exists bool) {
	v := m.parent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentID returns the old "parent_id" field's value of the KnowledgeNode entity.
// If the KnowledgeNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeNodeMutation) OldParentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentID: %w", err)
	}
	return oldValue.ParentID, nil
}

// ClearParentID clears the value of the "parent_id" field.
func (m *KnowledgeNodeMutation) ClearParentID() {
	m.parent_id = nil
	m.clearedFields[knowledgenode.FieldParentID] = struct{}{}
}

// ParentIDCleared returns if the "parent_id" field was cleared in this mutation.
func (m *KnowledgeNodeMutation) ParentIDCleared() bool {
	_, ok := m.clearedFields[knowledgenode.FieldParentID]
	return ok
}

// ResetParentID resets all changes to the "parent_id" field.
func (m *KnowledgeNodeMutation) ResetParentID() {
	m.parent_id = nil
	delete(m.clearedFields, knowledgenode.FieldParentID)
}

// SetCategory sets the "category" field.
func (m *KnowledgeNodeMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *KnowledgeNodeMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the KnowledgeNode entity.
// If the KnowledgeNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeNodeMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *KnowledgeNodeMutation) ResetCategory() {
	m.category = nil
}

// SetSubcategory sets the "subcategory" field.
func (m *KnowledgeNodeMutation) SetSubcategory(s string) {
	m.subcategory = &s
}

// Subcategory returns the value of the "subcategory" field in the mutation.
func (m *KnowledgeNodeMutation) Subcategory() (r string, exists bool) {
	v := m.subcategory
	if v == nil {
		return
	}
	return *v, true
}

// OldSubcategory returns the old "subcategory" field's value of the KnowledgeNode entity.
// If the KnowledgeNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeNodeMutation) OldSubcategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubcategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubcategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubcategory: %w", err)
	}
	return oldValue.Subcategory, nil
}

// ClearSubcategory clears the value of the "subcategory" field.
func (m *KnowledgeNodeMutation) ClearSubcategory() {
	m.subcategory = nil
	m.clearedFields[knowledgenode.FieldSubcategory] = struct{}{}
}

// SubcategoryCleared returns if the "subcategory" field was cleared in this mutation.
func (m *KnowledgeNodeMutation) SubcategoryCleared() bool {
	_, ok := m.clearedFields[knowledgenode.FieldSubcategory]
	return ok
}

// ResetSubcategory resets all changes to the "subcategory" field.
func (m *KnowledgeNodeMutation) ResetSubcategory() {
	m.subcategory = nil
	delete(m.clearedFields, knowledgenode.FieldSubcategory)
}

// SetSummary sets the "summary" field.
func (m *KnowledgeNodeMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *KnowledgeNodeMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the KnowledgeNode entity.
// If the KnowledgeNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeNodeMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ResetSummary resets all changes to the "summary" field.
func (m *KnowledgeNodeMutation) ResetSummary() {
	m.summary = nil
}

// SetDokLevel sets the "dok_level" field.
func (m *KnowledgeNodeMutation) SetDokLevel(i int) {
	m.dok_level = &i
	m.adddok_level = nil
}

// DokLevel returns the value of the "dok_level" field in the mutation.
func (m *KnowledgeNodeMutation) DokLevel() (r int, exists bool) {
	v := m.dok_level
	if v == nil {
		return
	}
	return *v, true
}

// OldDokLevel returns the old "dok_level" field's value of the KnowledgeNode entity.
// If the KnowledgeNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeNodeMutation) OldDokLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDokLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDokLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDokLevel: %w", err)
	}
	return oldValue.DokLevel, nil
}

// AddDokLevel adds i to the "dok_level" field.
func (m *KnowledgeNodeMutation) AddDokLevel(i int) {
	if m.adddok_level != nil {
		*m.adddok_level += i
	} else {
		m.adddok_level = &i
	}
}

// AddedDokLevel returns the value that was added to the "dok_level" field in this mutation.
func (m *KnowledgeNodeMutation) AddedDokLevel() (r int, exists bool) {
	v := m.adddok_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetDokLevel resets all changes to the "dok_level" field.
func (m *KnowledgeNodeMutation) ResetDokLevel() {
	m.dok_level = nil
	m.adddok_level = nil
}

// SetPosition sets the "position" field.
func (m *KnowledgeNodeMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *KnowledgeNodeMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the KnowledgeNode entity.
// If the KnowledgeNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeNodeMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *KnowledgeNodeMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *KnowledgeNodeMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *KnowledgeNodeMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *KnowledgeNodeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *KnowledgeNodeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the KnowledgeNode entity.
// If the KnowledgeNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeNodeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *KnowledgeNodeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the ResearchTask entity.
func (m *KnowledgeNodeMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[knowledgenode.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the ResearchTask entity was cleared.
func (m *KnowledgeNodeMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *KnowledgeNodeMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *KnowledgeNodeMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// AddSourceLinkIDs adds the "source_links" edge to the KnowledgeNodeSource entity by ids.
func (m *KnowledgeNodeMutation) AddSourceLinkIDs(ids ...string) {
	if m.source_links == nil {
		m.source_links = make(map[string]struct{})
	}
	for i := range ids {
		m.source_links[ids[i]] = struct{}{}
	}
}

// ClearSourceLinks clears the "source_links" edge to the KnowledgeNodeSource entity.
func (m *KnowledgeNodeMutation) ClearSourceLinks() {
	m.clearedsource_links = true
}

// SourceLinksCleared reports if the "source_links" edge to the KnowledgeNodeSource entity was cleared.
func (m *KnowledgeNodeMutation) SourceLinksCleared() bool {
	return m.clearedsource_links
}

// RemoveSourceLinkIDs removes the "source_links" edge to the KnowledgeNodeSource entity by IDs.
func (m *KnowledgeNodeMutation) RemoveSourceLinkIDs(ids ...string) {
	if m.removedsource_links == nil {
		m.removedsource_links = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.source_links, ids[i])
		m.removedsource_links[ids[i]] = struct{}{}
	}
}

// RemovedSourceLinks returns the removed IDs of the "source_links" edge to the KnowledgeNodeSource entity.
func (m *KnowledgeNodeMutation) RemovedSourceLinksIDs() (ids []string) {
	for id := range m.removedsource_links {
		ids = append(ids, id)
	}
	return
}

// SourceLinksIDs returns the "source_links" edge IDs in the mutation.
func (m *KnowledgeNodeMutation) SourceLinksIDs() (ids []string) {
	for id := range m.source_links {
		ids = append(ids, id)
	}
	return
}

// ResetSourceLinks resets all changes to the "source_links" edge.
func (m *KnowledgeNodeMutation) ResetSourceLinks() {
	m.source_links = nil
	m.clearedsource_links = false
	m.removedsource_links = nil
}

// Where appends a list predicates to the KnowledgeNodeMutation builder.
func (m *KnowledgeNodeMutation) Where(ps ...predicate.KnowledgeNode) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the KnowledgeNodeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *KnowledgeNodeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.KnowledgeNode, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *KnowledgeNodeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *KnowledgeNodeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (KnowledgeNode).
func (m *KnowledgeNodeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *KnowledgeNodeMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.task != nil {
		fields = append(fields, knowledgenode.FieldTaskID)
	}
	if m.parent_id != nil {
		fields = append(fields, knowledgenode.FieldParentID)
	}
	if m.category != nil {
		fields = append(fields, knowledgenode.FieldCategory)
	}
	if m.subcategory != nil {
		fields = append(fields, knowledgenode.FieldSubcategory)
	}
	if m.summary != nil {
		fields = append(fields, knowledgenode.FieldSummary)
	}
	if m.dok_level != nil {
		fields = append(fields, knowledgenode.FieldDokLevel)
	}
	if m.position != nil {
		fields = append(fields, knowledgenode.FieldPosition)
	}
	if m.created_at != nil {
		fields = append(fields, knowledgenode.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *KnowledgeNodeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case knowledgenode.FieldTaskID:
		return m.TaskID()
	case knowledgenode.FieldParentID:
		return m.ParentID()
	case knowledgenode.FieldCategory:
		return m.Category()
	case knowledgenode.FieldSubcategory:
		return m.Subcategory()
	case knowledgenode.FieldSummary:
		return m.Summary()
	case knowledgenode.FieldDokLevel:
		return m.DokLevel()
	case knowledgenode.FieldPosition:
		return m.Position()
	case knowledgenode.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *KnowledgeNodeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case knowledgenode.FieldTaskID:
		return m.OldTaskID(ctx)
	case knowledgenode.FieldParentID:
		return m.OldParentID(ctx)
	case knowledgenode.FieldCategory:
		return m.OldCategory(ctx)
	case knowledgenode.FieldSubcategory:
		return m.OldSubcategory(ctx)
	case knowledgenode.FieldSummary:
		return m.OldSummary(ctx)
	case knowledgenode.FieldDokLevel:
		return m.OldDokLevel(ctx)
	case knowledgenode.FieldPosition:
		return m.OldPosition(ctx)
	case knowledgenode.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown KnowledgeNode field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KnowledgeNodeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case knowledgenode.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case knowledgenode.FieldParentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentID(v)
		return nil
	case knowledgenode.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case knowledgenode.FieldSubcategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubcategory(v)
		return nil
	case knowledgenode.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case knowledgenode.FieldDokLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDokLevel(v)
		return nil
	case knowledgenode.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case knowledgenode.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown KnowledgeNode field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *KnowledgeNodeMutation) AddedFields() []string {
	var fields []string
	if m.adddok_level != nil {
		fields = append(fields, knowledgenode.FieldDokLevel)
	}
	if m.addposition != nil {
		fields = append(fields, knowledgenode.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *KnowledgeNodeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case knowledgenode.FieldDokLevel:
		return m.AddedDokLevel()
	case knowledgenode.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KnowledgeNodeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case knowledgenode.FieldDokLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDokLevel(v)
		return nil
	case knowledgenode.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown KnowledgeNode numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *KnowledgeNodeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(knowledgenode.FieldParentID) {
		fields = append(fields, knowledgenode.FieldParentID)
	}
	if m.FieldCleared(knowledgenode.FieldSubcategory) {
		fields = append(fields, knowledgenode.FieldSubcategory)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *KnowledgeNodeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *KnowledgeNodeMutation) ClearField(name string) error {
	switch name {
	case knowledgenode.FieldParentID:
		m.ClearParentID()
		return nil
	case knowledgenode.FieldSubcategory:
		m.ClearSubcategory()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeNode nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *KnowledgeNodeMutation) ResetField(name string) error {
	switch name {
	case knowledgenode.FieldTaskID:
		m.ResetTaskID()
		return nil
	case knowledgenode.FieldParentID:
		m.ResetParentID()
		return nil
	case knowledgenode.FieldCategory:
		m.ResetCategory()
		return nil
	case knowledgenode.FieldSubcategory:
		m.ResetSubcategory()
		return nil
	case knowledgenode.FieldSummary:
		m.ResetSummary()
		return nil
	case knowledgenode.FieldDokLevel:
		m.ResetDokLevel()
		return nil
	case knowledgenode.FieldPosition:
		m.ResetPosition()
		return nil
	case knowledgenode.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeNode field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *KnowledgeNodeMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.task != nil {
		edges = append(edges, knowledgenode.EdgeTask)
	}
	if m.source_links != nil {
		edges = append(edges, knowledgenode.EdgeSourceLinks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *KnowledgeNodeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case knowledgenode.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	case knowledgenode.EdgeSourceLinks:
		ids := make([]ent.Value, 0, len(m.source_links))
		for id := range m.source_links {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *KnowledgeNodeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsource_links != nil {
		edges = append(edges, knowledgenode.EdgeSourceLinks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *KnowledgeNodeMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case knowledgenode.EdgeSourceLinks:
		ids := make([]ent.Value, 0, len(m.removedsource_links))
		for id := range m.removedsource_links {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *KnowledgeNodeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedtask {
		edges = append(edges, knowledgenode.EdgeTask)
	}
	if m.clearedsource_links {
		edges = append(edges, knowledgenode.EdgeSourceLinks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *KnowledgeNodeMutation) EdgeCleared(name string) bool {
	switch name {
	case knowledgenode.EdgeTask:
		return m.clearedtask
	case knowledgenode.EdgeSourceLinks:
		return m.clearedsource_links
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *KnowledgeNodeMutation) ClearEdge(name string) error {
	switch name {
	case knowledgenode.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeNode unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *KnowledgeNodeMutation) ResetEdge(name string) error {
	switch name {
	case knowledgenode.EdgeTask:
		m.ResetTask()
		return nil
	case knowledgenode.EdgeSourceLinks:
		m.ResetSourceLinks()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeNode edge %s", name)
}

// KnowledgeNodeSourceMutation represents an operation that mutates the KnowledgeNodeSource nodes in the graph.
type KnowledgeNodeSourceMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	relevance_score    *float64
	addrelevance_score *float64
	clearedFields      map[string]struct{}
	node               *string
	clearednode        bool
	source             *string
	clearedsource      bool
	done               bool
	oldValue           func(context.Context) (*KnowledgeNodeSource, error)
	predicates         []predicate.KnowledgeNodeSource
}

var _ ent.Mutation = (*KnowledgeNodeSourceMutation)(nil)

// knowledgenodesourceOption allows management of the mutation configuration using functional options.
type knowledgenodesourceOption func(*KnowledgeNodeSourceMutation)

// newKnowledgeNodeSourceMutation creates new mutation for the KnowledgeNodeSource entity.
func newKnowledgeNodeSourceMutation(c config, op Op, opts ...knowledgenodesourceOption) *KnowledgeNodeSourceMutation {
	m := &KnowledgeNodeSourceMutation{
		config:        c,
		op:            op,
		typ:           TypeKnowledgeNodeSource,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withKnowledgeNodeSourceID sets the ID field of the mutation.
func withKnowledgeNodeSourceID(id string) knowledgenodesourceOption {
	return func(m *KnowledgeNodeSourceMutation) {
		var (
			err   error
			once  sync.Once
			value *KnowledgeNodeSource
		)
		m.oldValue = func(ctx context.Context) (*KnowledgeNodeSource, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().KnowledgeNodeSource.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withKnowledgeNodeSource sets the old KnowledgeNodeSource of the mutation.
func withKnowledgeNodeSource(node *KnowledgeNodeSource) knowledgenodesourceOption {
	return func(m *KnowledgeNodeSourceMutation) {
		m.oldValue = func(context.Context) (*KnowledgeNodeSource, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m KnowledgeNodeSourceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m KnowledgeNodeSourceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of KnowledgeNodeSource entities.
func (m *KnowledgeNodeSourceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *KnowledgeNodeSourceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *KnowledgeNodeSourceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().KnowledgeNodeSource.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetNodeID sets the "node_id" field.
func (m *KnowledgeNodeSourceMutation) SetNodeID(s string) {
	m.node = &s
}

// NodeID returns the value of the "node_id" field in the mutation.
func (m *KnowledgeNodeSourceMutation) NodeID() (r string, exists bool) {
	v := m.node
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeID returns the old "node_id" field's value of the KnowledgeNodeSource entity.
// If the KnowledgeNodeSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeNodeSourceMutation) OldNodeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeID: %w", err)
	}
	return oldValue.NodeID, nil
}

// ResetNodeID resets all changes to the "node_id" field.
func (m *KnowledgeNodeSourceMutation) ResetNodeID() {
	m.node = nil
}

// SetSourceID sets the "source_id" field.
func (m *KnowledgeNodeSourceMutation) SetSourceID(s string) {
	m.source = &s
}

// SourceID returns the value of the "source_id" field in the mutation.
func (m *KnowledgeNodeSourceMutation) SourceID() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceID returns the old "source_id" field's value of the KnowledgeNodeSource entity.
// If the KnowledgeNodeSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeNodeSourceMutation) OldSourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceID: %w", err)
	}
	return oldValue.SourceID, nil
}

// ResetSourceID resets all changes to the "source_id" field.
func (m *KnowledgeNodeSourceMutation) ResetSourceID() {
	m.source = nil
}

// SetRelevanceScore sets the "relevance_score" field.
func (m *KnowledgeNodeSourceMutation) SetRelevanceScore(f float64) {
	m.relevance_score = &f
	m.addrelevance_score = nil
}

// RelevanceScore returns the value of the "relevance_score" field in the mutation.
func (m *KnowledgeNodeSourceMutation) RelevanceScore() (r float64, exists bool) {
	v := m.relevance_score
	if v == nil {
		return
	}
	return *v, true
}

// OldRelevanceScore returns the old "relevance_score" field's value of the KnowledgeNodeSource entity.
// If the KnowledgeNodeSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeNodeSourceMutation) OldRelevanceScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelevanceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelevanceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelevanceScore: %w", err)
	}
	return oldValue.RelevanceScore, nil
}

// AddRelevanceScore adds f to the "relevance_score" field.
func (m *KnowledgeNodeSourceMutation) AddRelevanceScore(f float64) {
	if m.addrelevance_score != nil {
		*m.addrelevance_score += f
	} else {
		m.addrelevance_score = &f
	}
}

// AddedRelevanceScore returns the value that was added to the "relevance_score" field in this mutation.
func (m *KnowledgeNodeSourceMutation) AddedRelevanceScore() (r float64, exists bool) {
	v := m.addrelevance_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetRelevanceScore resets all changes to the "relevance_score" field.
func (m *KnowledgeNodeSourceMutation) ResetRelevanceScore() {
	m.relevance_score = nil
	m.addrelevance_score = nil
}

// ClearNode clears the "node" edge to the KnowledgeNode entity.
func (m *KnowledgeNodeSourceMutation) ClearNode() {
	m.clearednode = true
	m.clearedFields[knowledgenodesource.FieldNodeID] = struct{}{}
}

// NodeCleared reports if the "node" edge to the KnowledgeNode entity was cleared.
func (m *KnowledgeNodeSourceMutation) NodeCleared() bool {
	return m.clearednode
}

// NodeIDs returns the "node" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// NodeID instead. It exists only for internal usage by the builders.
func (m *KnowledgeNodeSourceMutation) NodeIDs() (ids []string) {
	if id := m.node; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetNode resets all changes to the "node" edge.
func (m *KnowledgeNodeSourceMutation) ResetNode() {
	m.node = nil
	m.clearednode = false
}

// ClearSource clears the "source" edge to the Source entity.
func (m *KnowledgeNodeSourceMutation) ClearSource() {
	m.clearedsource = true
	m.clearedFields[knowledgenodesource.FieldSourceID] = struct{}{}
}

// SourceCleared reports if the "source" edge to the Source entity was cleared.
func (m *KnowledgeNodeSourceMutation) SourceCleared() bool {
	return m.clearedsource
}

// SourceIDs returns the "source" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SourceID instead. It exists only for internal usage by the builders.
func (m *KnowledgeNodeSourceMutation) SourceIDs() (ids []string) {
	if id := m.source; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSource resets all changes to the "source" edge.
func (m *KnowledgeNodeSourceMutation) ResetSource() {
	m.source = nil
	m.clearedsource = false
}

// Where appends a list predicates to the KnowledgeNodeSourceMutation builder.
func (m *KnowledgeNodeSourceMutation) Where(ps ...predicate.KnowledgeNodeSource) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the KnowledgeNodeSourceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *KnowledgeNodeSourceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.KnowledgeNodeSource, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *KnowledgeNodeSourceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *KnowledgeNodeSourceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (KnowledgeNodeSource).
func (m *KnowledgeNodeSourceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *KnowledgeNodeSourceMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.node != nil {
		fields = append(fields, knowledgenodesource.FieldNodeID)
	}
	if m.source != nil {
		fields = append(fields, knowledgenodesource.FieldSourceID)
	}
	if m.relevance_score != nil {
		fields = append(fields, knowledgenodesource.FieldRelevanceScore)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *KnowledgeNodeSourceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case knowledgenodesource.FieldNodeID:
		return m.NodeID()
	case knowledgenodesource.FieldSourceID:
		return m.SourceID()
	case knowledgenodesource.FieldRelevanceScore:
		return m.RelevanceScore()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *KnowledgeNodeSourceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case knowledgenodesource.FieldNodeID:
		return m.OldNodeID(ctx)
	case knowledgenodesource.FieldSourceID:
		return m.OldSourceID(ctx)
	case knowledgenodesource.FieldRelevanceScore:
		return m.OldRelevanceScore(ctx)
	}
	return nil, fmt.Errorf("unknown KnowledgeNodeSource field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KnowledgeNodeSourceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case knowledgenodesource.FieldNodeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeID(v)
		return nil
	case knowledgenodesource.FieldSourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceID(v)
		return nil
	case knowledgenodesource.FieldRelevanceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelevanceScore(v)
		return nil
	}
	return fmt.Errorf("unknown KnowledgeNodeSource field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *KnowledgeNodeSourceMutation) AddedFields() []string {
	var fields []string
	if m.addrelevance_score != nil {
		fields = append(fields, knowledgenodesource.FieldRelevanceScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *KnowledgeNodeSourceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case knowledgenodesource.FieldRelevanceScore:
		return m.AddedRelevanceScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KnowledgeNodeSourceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case knowledgenodesource.FieldRelevanceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRelevanceScore(v)
		return nil
	}
	return fmt.Errorf("unknown KnowledgeNodeSource numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *KnowledgeNodeSourceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *KnowledgeNodeSourceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *KnowledgeNodeSourceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown KnowledgeNodeSource nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *KnowledgeNodeSourceMutation) ResetField(name string) error {
	switch name {
	case knowledgenodesource.FieldNodeID:
		m.ResetNodeID()
		return nil
	case knowledgenodesource.FieldSourceID:
		m.ResetSourceID()
		return nil
	case knowledgenodesource.FieldRelevanceScore:
		m.ResetRelevanceScore()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeNodeSource field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *KnowledgeNodeSourceMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.node != nil {
		edges = append(edges, knowledgenodesource.EdgeNode)
	}
	if m.source != nil {
		edges = append(edges, knowledgenodesource.EdgeSource)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *KnowledgeNodeSourceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case knowledgenodesource.EdgeNode:
		if id := m.node; id != nil {
			return []ent.Value{*id}
		}
	case knowledgenodesource.EdgeSource:
		if id := m.source; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *KnowledgeNodeSourceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *KnowledgeNodeSourceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *KnowledgeNodeSourceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearednode {
		edges = append(edges, knowledgenodesource.EdgeNode)
	}
	if m.clearedsource {
		edges = append(edges, knowledgenodesource.EdgeSource)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *KnowledgeNodeSourceMutation) EdgeCleared(name string) bool {
	switch name {
	case knowledgenodesource.EdgeNode:
		return m.clearednode
	case knowledgenodesource.EdgeSource:
		return m.clearedsource
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *KnowledgeNodeSourceMutation) ClearEdge(name string) error {
	switch name {
	case knowledgenodesource.EdgeNode:
		m.ClearNode()
		return nil
	case knowledgenodesource.EdgeSource:
		m.ClearSource()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeNodeSource unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *KnowledgeNodeSourceMutation) ResetEdge(name string) error {
	switch name {
	case knowledgenodesource.EdgeNode:
		m.ResetNode()
		return nil
	case knowledgenodesource.EdgeSource:
		m.ResetSource()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeNodeSource edge %s", name)
}

// OperationMutation represents an operation that mutates the Operation nodes in the graph.
type OperationMutation struct {
	config
	op              Op
	typ             string
	id              *string
	parent_id       *string
	operation_type  *string
	queue_name      *string
	status          *operation.Status
	agent_type      *string
	priority        *int
	addpriority     *int
	started_at      *time.Time
	completed_at    *time.Time
	duration_ms     *int64
	addduration_ms  *int64
	input_data      *map[string]interface{}
	output_data     *map[string]interface{}
	error_message   *string
	retry_count     *int
	addretry_count  *int
	worker_id       *string
	meta            *map[string]interface{}
	created_at      *time.Time
	clearedFields   map[string]struct{}
	task            *string
	clearedtask     bool
	evidence        map[string]struct{}
	removedevidence map[string]struct{}
	clearedevidence bool
	done            bool
	oldValue        func(context.Context) (*Operation, error)
	predicates      []predicate.Operation
}

var _ ent.Mutation = (*OperationMutation)(nil)

// operationOption allows management of the mutation configuration using functional options.
type operationOption func(*OperationMutation)

// newOperationMutation creates new mutation for the Operation entity.
func newOperationMutation(c config, op Op, opts ...operationOption) *OperationMutation {
	m := &OperationMutation{
		config:        c,
		op:            op,
		typ:           TypeOperation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOperationID sets the ID field of the mutation.
func withOperationID(id string) operationOption {
	return func(m *OperationMutation) {
		var (
			err   error
			once  sync.Once
			value *Operation
		)
		m.oldValue = func(ctx context.Context) (*Operation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Operation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOperation sets the old Operation of the mutation.
func withOperation(node *Operation) operationOption {
	return func(m *OperationMutation) {
		m.oldValue = func(context.Context) (*Operation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OperationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OperationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Operation entities.
func (m *OperationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OperationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OperationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Operation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *OperationMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *OperationMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Operation entity.
// If the Operation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *OperationMutation) ResetTaskID() {
	m.task = nil
}

// SetParentID sets the "parent_id" field.
func (m *OperationMutation) SetParentID(s string) {
	m.parent_id = &s
}

// ParentID returns the value of the "parent_id" field in the mutation.
func (m *OperationMutation) ParentID() (r string, exists bool) {
	v := m.parent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentID returns the old "parent_id" field's value of the Operation entity.
// If the Operation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationMutation) OldParentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentID: %w", err)
	}
	return oldValue.ParentID, nil
}

// ClearParentID clears the value of the "parent_id" field.
func (m *OperationMutation) ClearParentID() {
	m.parent_id = nil
	m.clearedFields[operation.FieldParentID] = struct{}{}
}

// ParentIDCleared returns if the "parent_id" field was cleared in this mutation.
func (m *OperationMutation) ParentIDCleared() bool {
	_, ok := m.clearedFields[operation.FieldParentID]
	return ok
}

// ResetParentID resets all changes to the "parent_id" field.
func (m *OperationMutation) ResetParentID() {
	m.parent_id = nil
	delete(m.clearedFields, operation.FieldParentID)
}

// SetOperationType sets the "operation_type" field.
func (m *OperationMutation) SetOperationType(s string) {
	m.operation_type = &s
}

// OperationType returns the value of the "operation_type" field in the mutation.
func (m *OperationMutation) OperationType() (r string, exists bool) {
	v := m.operation_type
	if v == nil {
		return
	}
	return *v, true
}

// OldOperationType returns the old "operation_type" field's value of the Operation entity.
// If the Operation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationMutation) OldOperationType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperationType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperationType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperationType: %w", err)
	}
	return oldValue.OperationType, nil
}

// ResetOperationType resets all changes to the "operation_type" field.
func (m *OperationMutation) ResetOperationType() {
	m.operation_type = nil
}

// SetQueueName sets the "queue_name" field.
func (m *OperationMutation) SetQueueName(s string) {
	m.queue_name = &s
}

// QueueName returns the value of the "queue_name" field in the mutation.
func (m *OperationMutation) QueueName() (r string, exists bool) {
	v := m.queue_name
	if v == nil {
		return
	}
	return *v, true
}

// OldQueueName returns the old "queue_name" field's value of the Operation entity.
// If the Operation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationMutation) OldQueueName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueueName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueueName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueueName: %w", err)
	}
	return oldValue.QueueName, nil
}

// ResetQueueName resets all changes to the "queue_name" field.
func (m *OperationMutation) ResetQueueName() {
	m.queue_name = nil
}

// SetStatus sets the "status" field.
func (m *OperationMutation) SetStatus(o operation.Status) {
	m.status = &o
}

// Status returns the value of the "status" field in the mutation.
func (m *OperationMutation) Status() (r operation.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Operation entity.
// If the Operation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationMutation) OldStatus(ctx context.Context) (v operation.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *OperationMutation) ResetStatus() {
	m.status = nil
}

// SetAgentType sets the "agent_type" field.
func (m *OperationMutation) SetAgentType(s string) {
	m.agent_type = &s
}

// AgentType returns the value of the "agent_type" field in the mutation.
func (m *OperationMutation) AgentType() (r string, exists bool) {
	v := m.agent_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentType returns the old "agent_type" field's value of the Operation entity.
// If the Operation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationMutation) OldAgentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentType: %w", err)
	}
	return oldValue.AgentType, nil
}

// ClearAgentType clears the value of the "agent_type" field.
func (m *OperationMutation) ClearAgentType() {
	m.agent_type = nil
	m.clearedFields[operation.FieldAgentType] = struct{}{}
}

// AgentTypeCleared returns if the "agent_type" field was cleared in this mutation.
func (m *OperationMutation) AgentTypeCleared() bool {
	_, ok := m.clearedFields[operation.FieldAgentType]
	return ok
}

// ResetAgentType resets all changes to the "agent_type" field.
func (m *OperationMutation) ResetAgentType() {
	m.agent_type = nil
	delete(m.clearedFields, operation.FieldAgentType)
}

// SetPriority sets the "priority" field.
func (m *OperationMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *OperationMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Operation entity.
// If the Operation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *OperationMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *OperationMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *OperationMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetStartedAt sets the "started_at" field.
func (m *OperationMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *OperationMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Operation entity.
// If the Operation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *OperationMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[operation.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *OperationMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[operation.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *OperationMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, operation.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *OperationMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *OperationMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Operation entity.
// If the Operation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *OperationMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[operation.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *OperationMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[operation.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *OperationMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, operation.FieldCompletedAt)
}

// SetDurationMs sets the "duration_ms" field.
func (m *OperationMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *OperationMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the Operation entity.
// If the Operation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationMutation) OldDurationMs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *OperationMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *OperationMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *OperationMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[operation.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *OperationMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[operation.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *OperationMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, operation.FieldDurationMs)
}

// SetInputData sets the "input_data" field.
func (m *OperationMutation) SetInputData(value map[string]interface{}) {
	m.input_data = &value
}

// InputData returns the value of the "input_data" field in the mutation.
func (m *OperationMutation) InputData() (r map[string]interface{}, exists bool) {
	v := m.input_data
	if v == nil {
		return
	}
	return *v, true
}

// OldInputData returns the old "input_data" field's value of the Operation entity.
// If the Operation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationMutation) OldInputData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputData: %w", err)
	}
	return oldValue.InputData, nil
}

// ClearInputData clears the value of the "input_data" field.
func (m *OperationMutation) ClearInputData() {
	m.input_data = nil
	m.clearedFields[operation.FieldInputData] = struct{}{}
}

// InputDataCleared returns if the "input_data" field was cleared in this mutation.
func (m *OperationMutation) InputDataCleared() bool {
	_, ok := m.clearedFields[operation.FieldInputData]
	return ok
}

// ResetInputData resets all changes to the "input_data" field.
func (m *OperationMutation) ResetInputData() {
	m.input_data = nil
	delete(m.clearedFields, operation.FieldInputData)
}

// SetOutputData sets the "output_data" field.
func (m *OperationMutation) SetOutputData(value map[string]interface{}) {
	m.output_data = &value
}

// OutputData returns the value of the "output_data" field in the mutation.
func (m *OperationMutation) OutputData() (r map[string]interface{}, exists bool) {
	v := m.output_data
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputData returns the old "output_data" field's value of the Operation entity.
// If the Operation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationMutation) OldOutputData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputData: %w", err)
	}
	return oldValue.OutputData, nil
}

// ClearOutputData clears the value of the "output_data" field.
func (m *OperationMutation) ClearOutputData() {
	m.output_data = nil
	m.clearedFields[operation.FieldOutputData] = struct{}{}
}

// OutputDataCleared returns if the "output_data" field was cleared in this mutation.
func (m *OperationMutation) OutputDataCleared() bool {
	_, ok := m.clearedFields[operation.FieldOutputData]
	return ok
}

// ResetOutputData resets all changes to the "output_data" field.
func (m *OperationMutation) ResetOutputData() {
	m.output_data = nil
	delete(m.clearedFields, operation.FieldOutputData)
}

// SetErrorMessage sets the "error_message" field.
func (m *OperationMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *OperationMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Operation entity.
// If the Operation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *OperationMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[operation.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *OperationMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[operation.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *OperationMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, operation.FieldErrorMessage)
}

// SetRetryCount sets the "retry_count" field.
func (m *OperationMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *OperationMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the Operation entity.
// If the Operation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *OperationMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *OperationMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *OperationMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetWorkerID sets the "worker_id" field.
func (m *OperationMutation) SetWorkerID(s string) {
	m.worker_id = &s
}

// WorkerID returns the value of the "worker_id" field in the mutation.
func (m *OperationMutation) WorkerID() (r string, exists bool) {
	v := m.worker_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkerID returns the old "worker_id" field's value of the Operation entity.
// If the Operation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationMutation) OldWorkerID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkerID: %w", err)
	}
	return oldValue.WorkerID, nil
}

// ClearWorkerID clears the value of the "worker_id" field.
func (m *OperationMutation) ClearWorkerID() {
	m.worker_id = nil
	m.clearedFields[operation.FieldWorkerID] = struct{}{}
}

// WorkerIDCleared returns if the "worker_id" field was cleared in this mutation.
func (m *OperationMutation) WorkerIDCleared() bool {
	_, ok := m.clearedFields[operation.FieldWorkerID]
	return ok
}

// ResetWorkerID resets all changes to the "worker_id" field.
func (m *OperationMutation) ResetWorkerID() {
	m.worker_id = nil
	delete(m.clearedFields, operation.FieldWorkerID)
}

// SetMeta sets the "meta" field.
func (m *OperationMutation) SetMeta(value map[string]interface{}) {
	m.meta = &value
}

// Meta returns the value of the "meta" field in the mutation.
func (m *OperationMutation) Meta() (r map[string]interface{}, exists bool) {
	v := m.meta
	if v == nil {
		return
	}
	return *v, true
}

// OldMeta returns the old "meta" field's value of the Operation entity.
// If the Operation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationMutation) OldMeta(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeta: %w", err)
	}
	return oldValue.Meta, nil
}

// ClearMeta clears the value of the "meta" field.
func (m *OperationMutation) ClearMeta() {
	m.meta = nil
	m.clearedFields[operation.FieldMeta] = struct{}{}
}

// MetaCleared returns if the "meta" field was cleared in this mutation.
func (m *OperationMutation) MetaCleared() bool {
	_, ok := m.clearedFields[operation.FieldMeta]
	return ok
}

// ResetMeta resets all changes to the "meta" field.
func (m *OperationMutation) ResetMeta() {
	m.meta = nil
	delete(m.clearedFields, operation.FieldMeta)
}

// SetCreatedAt sets the "created_at" field.
func (m *OperationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OperationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Operation entity.
// If the Operation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OperationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the ResearchTask entity.
func (m *OperationMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[operation.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the ResearchTask entity was cleared.
func (m *OperationMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *OperationMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *OperationMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// AddEvidenceIDs adds the "evidence" edge to the Evidence entity by ids.
func (m *OperationMutation) AddEvidenceIDs(ids ...string) {
	if m.evidence == nil {
		m.evidence = make(map[string]struct{})
	}
	for i := range ids {
		m.evidence[ids[i]] = struct{}{}
	}
}

// ClearEvidence clears the "evidence" edge to the Evidence entity.
func (m *OperationMutation) ClearEvidence() {
	m.clearedevidence = true
}

// EvidenceCleared reports if the "evidence" edge to the Evidence entity was cleared.
func (m *OperationMutation) EvidenceCleared() bool {
	return m.clearedevidence
}

// RemoveEvidenceIDs removes the "evidence" edge to the Evidence entity by IDs.
func (m *OperationMutation) RemoveEvidenceIDs(ids ...string) {
	if m.removedevidence == nil {
		m.removedevidence = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.evidence, ids[i])
		m.removedevidence[ids[i]] = struct{}{}
	}
}

// RemovedEvidence returns the removed IDs of the "evidence" edge to the Evidence entity.
func (m *OperationMutation) RemovedEvidenceIDs() (ids []string) {
	for id := range m.removedevidence {
		ids = append(ids, id)
	}
	return
}

// EvidenceIDs returns the "evidence" edge IDs in the mutation.
func (m *OperationMutation) EvidenceIDs() (ids []string) {
	for id := range m.evidence {
		ids = append(ids, id)
	}
	return
}

// ResetEvidence resets all changes to the "evidence" edge.
func (m *OperationMutation) ResetEvidence() {
	m.evidence = nil
	m.clearedevidence = false
	m.removedevidence = nil
}

// Where appends a list predicates to the OperationMutation builder.
func (m *OperationMutation) Where(ps ...predicate.Operation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OperationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OperationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Operation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OperationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OperationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Operation).
func (m *OperationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OperationMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.task != nil {
		fields = append(fields, operation.FieldTaskID)
	}
	if m.parent_id != nil {
		fields = append(fields, operation.FieldParentID)
	}
	if m.operation_type != nil {
		fields = append(fields, operation.FieldOperationType)
	}
	if m.queue_name != nil {
		fields = append(fields, operation.FieldQueueName)
	}
	if m.status != nil {
		fields = append(fields, operation.FieldStatus)
	}
	if m.agent_type != nil {
		fields = append(fields, operation.FieldAgentType)
	}
	if m.priority != nil {
		fields = append(fields, operation.FieldPriority)
	}
	if m.started_at != nil {
		fields = append(fields, operation.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, operation.FieldCompletedAt)
	}
	if m.duration_ms != nil {
		fields = append(fields, operation.FieldDurationMs)
	}
	if m.input_data != nil {
		fields = append(fields, operation.FieldInputData)
	}
	if m.output_data != nil {
		fields = append(fields, operation.FieldOutputData)
	}
	if m.error_message != nil {
		fields = append(fields, operation.FieldErrorMessage)
	}
	if m.retry_count != nil {
		fields = append(fields, operation.FieldRetryCount)
	}
	if m.worker_id != nil {
		fields = append(fields, operation.FieldWorkerID)
	}
	if m.meta != nil {
		fields = append(fields, operation.FieldMeta)
	}
	if m.created_at != nil {
		fields = append(fields, operation.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OperationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case operation.FieldTaskID:
		return m.TaskID()
	case operation.FieldParentID:
		return m.ParentID()
	case operation.FieldOperationType:
		return m.OperationType()
	case operation.FieldQueueName:
		return m.QueueName()
	case operation.FieldStatus:
		return m.Status()
	case operation.FieldAgentType:
		return m.AgentType()
	case operation.FieldPriority:
		return m.Priority()
	case operation.FieldStartedAt:
		return m.StartedAt()
	case operation.FieldCompletedAt:
		return m.CompletedAt()
	case operation.FieldDurationMs:
		return m.DurationMs()
	case operation.FieldInputData:
		return m.InputData()
	case operation.FieldOutputData:
		return m.OutputData()
	case operation.FieldErrorMessage:
		return m.ErrorMessage()
	case operation.FieldRetryCount:
		return m.RetryCount()
	case operation.FieldWorkerID:
		return m.WorkerID()
	case operation.FieldMeta:
		return m.Meta()
	case operation.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OperationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case operation.FieldTaskID:
		return m.OldTaskID(ctx)
	case operation.FieldParentID:
		return m.OldParentID(ctx)
	case operation.FieldOperationType:
		return m.OldOperationType(ctx)
	case operation.FieldQueueName:
		return m.OldQueueName(ctx)
	case operation.FieldStatus:
		return m.OldStatus(ctx)
	case operation.FieldAgentType:
		return m.OldAgentType(ctx)
	case operation.FieldPriority:
		return m.OldPriority(ctx)
	case operation.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case operation.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case operation.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case operation.FieldInputData:
		return m.OldInputData(ctx)
	case operation.FieldOutputData:
		return m.OldOutputData(ctx)
	case operation.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case operation.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case operation.FieldWorkerID:
		return m.OldWorkerID(ctx)
	case operation.FieldMeta:
		return m.OldMeta(ctx)
	case operation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Operation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OperationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case operation.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case operation.FieldParentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentID(v)
		return nil
	case operation.FieldOperationType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperationType(v)
		return nil
	case operation.FieldQueueName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueueName(v)
		return nil
	case operation.FieldStatus:
		v, ok := value.(operation.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case operation.FieldAgentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentType(v)
		return nil
	case operation.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case operation.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case operation.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case operation.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case operation.FieldInputData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputData(v)
		return nil
	case operation.FieldOutputData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputData(v)
		return nil
	case operation.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case operation.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case operation.FieldWorkerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkerID(v)
		return nil
	case operation.FieldMeta:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeta(v)
		return nil
	case operation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Operation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OperationMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, operation.FieldPriority)
	}
	if m.addduration_ms != nil {
		fields = append(fields, operation.FieldDurationMs)
	}
	if m.addretry_count != nil {
		fields = append(fields, operation.FieldRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OperationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case operation.FieldPriority:
		return m.AddedPriority()
	case operation.FieldDurationMs:
		return m.AddedDurationMs()
	case operation.FieldRetryCount:
		return m.AddedRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OperationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case operation.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case operation.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	case operation.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown Operation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OperationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(operation.FieldParentID) {
		fields = append(fields, operation.FieldParentID)
	}
	if m.FieldCleared(operation.FieldAgentType) {
		fields = append(fields, operation.FieldAgentType)
	}
	if m.FieldCleared(operation.FieldStartedAt) {
		fields = append(fields, operation.FieldStartedAt)
	}
	if m.FieldCleared(operation.FieldCompletedAt) {
		fields = append(fields, operation.FieldCompletedAt)
	}
	if m.FieldCleared(operation.FieldDurationMs) {
		fields = append(fields, operation.FieldDurationMs)
	}
	if m.FieldCleared(operation.FieldInputData) {
		fields = append(fields, operation.FieldInputData)
	}
	if m.FieldCleared(operation.FieldOutputData) {
		fields = append(fields, operation.FieldOutputData)
	}
	if m.FieldCleared(operation.FieldErrorMessage) {
		fields = append(fields, operation.FieldErrorMessage)
	}
	if m.FieldCleared(operation.FieldWorkerID) {
		fields = append(fields, operation.FieldWorkerID)
	}
	if m.FieldCleared(operation.FieldMeta) {
		fields = append(fields, operation.FieldMeta)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OperationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OperationMutation) ClearField(name string) error {
	switch name {
	case operation.FieldParentID:
		m.ClearParentID()
		return nil
	case operation.FieldAgentType:
		m.ClearAgentType()
		return nil
	case operation.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case operation.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case operation.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case operation.FieldInputData:
		m.ClearInputData()
		return nil
	case operation.FieldOutputData:
		m.ClearOutputData()
		return nil
	case operation.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case operation.FieldWorkerID:
		m.ClearWorkerID()
		return nil
	case operation.FieldMeta:
		m.ClearMeta()
		return nil
	}
	return fmt.Errorf("unknown Operation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OperationMutation) ResetField(name string) error {
	switch name {
	case operation.FieldTaskID:
		m.ResetTaskID()
		return nil
	case operation.FieldParentID:
		m.ResetParentID()
		return nil
	case operation.FieldOperationType:
		m.ResetOperationType()
		return nil
	case operation.FieldQueueName:
		m.ResetQueueName()
		return nil
	case operation.FieldStatus:
		m.ResetStatus()
		return nil
	case operation.FieldAgentType:
		m.ResetAgentType()
		return nil
	case operation.FieldPriority:
		m.ResetPriority()
		return nil
	case operation.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case operation.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case operation.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case operation.FieldInputData:
		m.ResetInputData()
		return nil
	case operation.FieldOutputData:
		m.ResetOutputData()
		return nil
	case operation.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case operation.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case operation.FieldWorkerID:
		m.ResetWorkerID()
		return nil
	case operation.FieldMeta:
		m.ResetMeta()
		return nil
	case operation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Operation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OperationMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.task != nil {
		edges = append(edges, operation.EdgeTask)
	}
	if m.evidence != nil {
		edges = append(edges, operation.EdgeEvidence)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OperationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case operation.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	case operation.EdgeEvidence:
		ids := make([]ent.Value, 0, len(m.evidence))
		for id := range m.evidence {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OperationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedevidence != nil {
		edges = append(edges, operation.EdgeEvidence)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OperationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case operation.EdgeEvidence:
		ids := make([]ent.Value, 0, len(m.removedevidence))
		for id := range m.removedevidence {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OperationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedtask {
		edges = append(edges, operation.EdgeTask)
	}
	if m.clearedevidence {
		edges = append(edges, operation.EdgeEvidence)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OperationMutation) EdgeCleared(name string) bool {
	switch name {
	case operation.EdgeTask:
		return m.clearedtask
	case operation.EdgeEvidence:
		return m.clearedevidence
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OperationMutation) ClearEdge(name string) error {
	switch name {
	case operation.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown Operation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OperationMutation) ResetEdge(name string) error {
	switch name {
	case operation.EdgeTask:
		m.ResetTask()
		return nil
	case operation.EdgeEvidence:
		m.ResetEvidence()
		return nil
	}
	return fmt.Errorf("unknown Operation edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	description   *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	tasks         map[string]struct{}
	removedtasks  map[string]struct{}
	clearedtasks  bool
	done          bool
	oldValue      func(context.Context) (*Project, error)
	predicates    []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id string) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Project entities.
func (m *ProjectMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *ProjectMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ProjectMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ProjectMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[project.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ProjectMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[project.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ProjectMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, project.FieldDescription)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddTaskIDs adds the "tasks" edge to the ResearchTask entity by ids.
func (m *ProjectMutation) AddTaskIDs(ids ...string) {
	if m.tasks == nil {
		m.tasks = make(map[string]struct{})
	}
	for i := range ids {
		m.tasks[ids[i]] = struct{}{}
	}
}

// ClearTasks clears the "tasks" edge to the ResearchTask entity.
func (m *ProjectMutation) ClearTasks() {
	m.clearedtasks = true
}

// TasksCleared reports if the "tasks" edge to the ResearchTask entity was cleared.
func (m *ProjectMutation) TasksCleared() bool {
	return m.clearedtasks
}

// RemoveTaskIDs removes the "tasks" edge to the ResearchTask entity by IDs.
func (m *ProjectMutation) RemoveTaskIDs(ids ...string) {
	if m.removedtasks == nil {
		m.removedtasks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tasks, ids[i])
		m.removedtasks[ids[i]] = struct{}{}
	}
}

// RemovedTasks returns the removed IDs of the "tasks" edge to the ResearchTask entity.
func (m *ProjectMutation) RemovedTasksIDs() (ids []string) {
	for id := range m.removedtasks {
		ids = append(ids, id)
	}
	return
}

// TasksIDs returns the "tasks" edge IDs in the mutation.
func (m *ProjectMutation) TasksIDs() (ids []string) {
	for id := range m.tasks {
		ids = append(ids, id)
	}
	return
}

// ResetTasks resets all changes to the "tasks" edge.
func (m *ProjectMutation) ResetTasks() {
	m.tasks = nil
	m.clearedtasks = false
	m.removedtasks = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m.description != nil {
		fields = append(fields, project.FieldDescription)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldName:
		return m.Name()
	case project.FieldDescription:
		return m.Description()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldDescription:
		return m.OldDescription(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(project.FieldDescription) {
		fields = append(fields, project.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	switch name {
	case project.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldDescription:
		m.ResetDescription()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tasks != nil {
		edges = append(edges, project.EdgeTasks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.tasks))
		for id := range m.tasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedtasks != nil {
		edges = append(edges, project.EdgeTasks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.removedtasks))
		for id := range m.removedtasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtasks {
		edges = append(edges, project.EdgeTasks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	switch name {
	case project.EdgeTasks:
		return m.clearedtasks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	switch name {
	case project.EdgeTasks:
		m.ResetTasks()
		return nil
	}
	return fmt.Errorf("unknown Project edge %s", name)
}

// ReportSectionMutation represents an operation that mutates the ReportSection nodes in the graph.
type ReportSectionMutation struct {
	config
	op               Op
	typ              string
	id               *string
	section          *reportsection.Section
	content          *string
	source_ids       *[]string
	appendsource_ids []string
	position         *int
	addposition      *int
	clearedFields    map[string]struct{}
	task             *string
	clearedtask      bool
	done             bool
	oldValue         func(context.Context) (*ReportSection, error)
	predicates       []predicate.ReportSection
}

var _ ent.Mutation = (*ReportSectionMutation)(nil)

// reportsectionOption allows management of the mutation configuration using functional options.
type reportsectionOption func(*ReportSectionMutation)

// newReportSectionMutation creates new mutation for the ReportSection entity.
func newReportSectionMutation(c config, op Op, opts ...reportsectionOption) *ReportSectionMutation {
	m := &ReportSectionMutation{
		config:        c,
		op:            op,
		typ:           TypeReportSection,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReportSectionID sets the ID field of the mutation.
func withReportSectionID(id string) reportsectionOption {
	return func(m *ReportSectionMutation) {
		var (
			err   error
			once  sync.Once
			value *ReportSection
		)
		m.oldValue = func(ctx context.Context) (*ReportSection, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReportSection.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReportSection sets the old ReportSection of the mutation.
func withReportSection(node *ReportSection) reportsectionOption {
	return func(m *ReportSectionMutation) {
		m.oldValue = func(context.Context) (*ReportSection, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReportSectionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReportSectionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ReportSection entities.
func (m *ReportSectionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReportSectionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReportSectionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReportSection.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *ReportSectionMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *ReportSectionMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the ReportSection entity.
// If the ReportSection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportSectionMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *ReportSectionMutation) ResetTaskID() {
	m.task = nil
}

// SetSection sets the "section" field.
func (m *ReportSectionMutation) SetSection(r reportsection.Section) {
	m.section = &r
}

// Section returns the value of the "section" field in the mutation.
func (m *ReportSectionMutation) Section() (r reportsection.Section, exists bool) {
	v := m.section
	if v == nil {
		return
	}
	return *v, true
}

// OldSection returns the old "section" field's value of the ReportSection entity.
// If the ReportSection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportSectionMutation) OldSection(ctx context.Context) (v reportsection.Section, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSection: %w", err)
	}
	return oldValue.Section, nil
}

// ResetSection resets all changes to the "section" field.
func (m *ReportSectionMutation) ResetSection() {
	m.section = nil
}

// SetContent sets the "content" field.
func (m *ReportSectionMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ReportSectionMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ReportSection entity.
// If the ReportSection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportSectionMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ReportSectionMutation) ResetContent() {
	m.content = nil
}

// SetSourceIds sets the "source_ids" field.
func (m *ReportSectionMutation) SetSourceIds(s []string) {
	m.source_ids = &s
	m.appendsource_ids = nil
}

// SourceIds returns the value of the "source_ids" field in the mutation.
func (m *ReportSectionMutation) SourceIds() (r []string, exists bool) {
	v := m.source_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceIds returns the old "source_ids" field's value of the ReportSection entity.
// If the ReportSection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportSectionMutation) OldSourceIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceIds: %w", err)
	}
	return oldValue.SourceIds, nil
}

// AppendSourceIds adds s to the "source_ids" field.
func (m *ReportSectionMutation) AppendSourceIds(s []string) {
	m.appendsource_ids = append(m.appendsource_ids, s...)
}

// AppendedSourceIds returns the list of values that were appended to the "source_ids" field in this mutation.
func (m *ReportSectionMutation) AppendedSourceIds() ([]string, bool) {
	if len(m.appendsource_ids) == 0 {
		return nil, false
	}
	return m.appendsource_ids, true
}

// ResetSourceIds resets all changes to the "source_ids" field.
func (m *ReportSectionMutation) ResetSourceIds() {
	m.source_ids = nil
	m.appendsource_ids = nil
}

// SetPosition sets the "position" field.
func (m *ReportSectionMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *ReportSectionMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the ReportSection entity.
// If the ReportSection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportSectionMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *ReportSectionMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *ReportSectionMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *ReportSectionMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// ClearTask clears the "task" edge to the ResearchTask entity.
func (m *ReportSectionMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[reportsection.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the ResearchTask entity was cleared.
func (m *ReportSectionMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *ReportSectionMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *ReportSectionMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the ReportSectionMutation builder.
func (m *ReportSectionMutation) Where(ps ...predicate.ReportSection) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReportSectionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReportSectionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReportSection, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReportSectionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReportSectionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReportSection).
func (m *ReportSectionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReportSectionMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.task != nil {
		fields = append(fields, reportsection.FieldTaskID)
	}
	if m.section != nil {
		fields = append(fields, reportsection.FieldSection)
	}
	if m.content != nil {
		fields = append(fields, reportsection.FieldContent)
	}
	if m.source_ids != nil {
		fields = append(fields, reportsection.FieldSourceIds)
	}
	if m.position != nil {
		fields = append(fields, reportsection.FieldPosition)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReportSectionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reportsection.FieldTaskID:
		return m.TaskID()
	case reportsection.FieldSection:
		return m.Section()
	case reportsection.FieldContent:
		return m.Content()
	case reportsection.FieldSourceIds:
		return m.SourceIds()
	case reportsection.FieldPosition:
		return m.Position()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReportSectionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reportsection.FieldTaskID:
		return m.OldTaskID(ctx)
	case reportsection.FieldSection:
		return m.OldSection(ctx)
	case reportsection.FieldContent:
		return m.OldContent(ctx)
	case reportsection.FieldSourceIds:
		return m.OldSourceIds(ctx)
	case reportsection.FieldPosition:
		return m.OldPosition(ctx)
	}
	return nil, fmt.Errorf("unknown ReportSection field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportSectionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reportsection.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case reportsection.FieldSection:
		v, ok := value.(reportsection.Section)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSection(v)
		return nil
	case reportsection.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case reportsection.FieldSourceIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceIds(v)
		return nil
	case reportsection.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	}
	return fmt.Errorf("unknown ReportSection field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReportSectionMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, reportsection.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReportSectionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reportsection.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportSectionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reportsection.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown ReportSection numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReportSectionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReportSectionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReportSectionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ReportSection nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReportSectionMutation) ResetField(name string) error {
	switch name {
	case reportsection.FieldTaskID:
		m.ResetTaskID()
		return nil
	case reportsection.FieldSection:
		m.ResetSection()
		return nil
	case reportsection.FieldContent:
		m.ResetContent()
		return nil
	case reportsection.FieldSourceIds:
		m.ResetSourceIds()
		return nil
	case reportsection.FieldPosition:
		m.ResetPosition()
		return nil
	}
	return fmt.Errorf("unknown ReportSection field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReportSectionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, reportsection.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReportSectionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case reportsection.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReportSectionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReportSectionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReportSectionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, reportsection.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReportSectionMutation) EdgeCleared(name string) bool {
	switch name {
	case reportsection.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReportSectionMutation) ClearEdge(name string) error {
	switch name {
	case reportsection.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown ReportSection unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReportSectionMutation) ResetEdge(name string) error {
	switch name {
	case reportsection.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown ReportSection edge %s", name)
}

// ResearchTaskMutation represents an operation that mutates the ResearchTask nodes in the graph.
type ResearchTaskMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	title                   *string
	research_query          *string
	research_type           *researchtask.ResearchType
	status                  *researchtask.Status
	user_id                 *string
	aggregation_config      *map[string]interface{}
	report_markdown         *string
	error_message           *string
	error_kind              *string
	created_at              *time.Time
	started_at              *time.Time
	completed_at            *time.Time
	pod_id                  *string
	last_heartbeat_at       *time.Time
	deleted_at              *time.Time
	clearedFields           map[string]struct{}
	project                 *string
	clearedproject          bool
	operations              map[string]struct{}
	removedoperations       map[string]struct{}
	clearedoperations       bool
	source_summaries        map[string]struct{}
	removedsource_summaries map[string]struct{}
	clearedsource_summaries bool
	knowledge_nodes         map[string]struct{}
	removedknowledge_nodes  map[string]struct{}
	clearedknowledge_nodes  bool
	insights                map[string]struct{}
	removedinsights         map[string]struct{}
	clearedinsights         bool
	spiky_povs              map[string]struct{}
	removedspiky_povs       map[string]struct{}
	clearedspiky_povs       bool
	report_sections         map[string]struct{}
	removedreport_sections  map[string]struct{}
	clearedreport_sections  bool
	artifacts               map[string]struct{}
	removedartifacts        map[string]struct{}
	clearedartifacts        bool
	events                  map[int]struct{}
	removedevents           map[int]struct{}
	clearedevents           bool
	done                    bool
	oldValue                func(context.Context) (*ResearchTask, error)
	predicates              []predicate.ResearchTask
}

var _ ent.Mutation = (*ResearchTaskMutation)(nil)

// researchtaskOption allows management of the mutation configuration using functional options.
type researchtaskOption func(*ResearchTaskMutation)

// newResearchTaskMutation creates new mutation for the ResearchTask entity.
func newResearchTaskMutation(c config, op Op, opts ...researchtaskOption) *ResearchTaskMutation {
	m := &ResearchTaskMutation{
		config:        c,
		op:            op,
		typ:           TypeResearchTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResearchTaskID sets the ID field of the mutation.
func withResearchTaskID(id string) researchtaskOption {
	return func(m *ResearchTaskMutation) {
		var (
			err   error
			once  sync.Once
			value *ResearchTask
		)
		m.oldValue = func(ctx context.Context) (*ResearchTask, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ResearchTask.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResearchTask sets the old ResearchTask of the mutation.
func withResearchTask(node *ResearchTask) researchtaskOption {
	return func(m *ResearchTaskMutation) {
		m.oldValue = func(context.Context) (*ResearchTask, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResearchTaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResearchTaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ResearchTask entities.
func (m *ResearchTaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResearchTaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResearchTaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ResearchTask.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *ResearchTaskMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ResearchTaskMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the ResearchTask entity.
// If the ResearchTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchTaskMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ResearchTaskMutation) ResetTitle() {
	m.title = nil
}

// SetResearchQuery sets the "research_query" field.
func (m *ResearchTaskMutation) SetResearchQuery(s string) {
	m.research_query = &s
}

// ResearchQuery returns the value of the "research_query" field in the mutation.
func (m *ResearchTaskMutation) ResearchQuery() (r string, exists bool) {
	v := m.research_query
	if v == nil {
		return
	}
	return *v, true
}

// OldResearchQuery returns the old "research_query" field's value of the ResearchTask entity.
// If the ResearchTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchTaskMutation) OldResearchQuery(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResearchQuery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResearchQuery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResearchQuery: %w", err)
	}
	return oldValue.ResearchQuery, nil
}

// ResetResearchQuery resets all changes to the "research_query" field.
func (m *ResearchTaskMutation) ResetResearchQuery() {
	m.research_query = nil
}

// SetResearchType sets the "research_type" field.
func (m *ResearchTaskMutation) SetResearchType(rt researchtask.ResearchType) {
	m.research_type = &rt
}

// ResearchType returns the value of the "research_type" field in the mutation.
func (m *ResearchTaskMutation) ResearchType() (r researchtask.ResearchType, exists bool) {
	v := m.research_type
	if v == nil {
		return
	}
	return *v, true
}

// OldResearchType returns the old "research_type" field's value of the ResearchTask entity.
// If the ResearchTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchTaskMutation) OldResearchType(ctx context.Context) (v researchtask.ResearchType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResearchType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResearchType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResearchType: %w", err)
	}
	return oldValue.ResearchType, nil
}

// ResetResearchType resets all changes to the "research_type" field.
func (m *ResearchTaskMutation) ResetResearchType() {
	m.research_type = nil
}

// SetStatus sets the "status" field.
func (m *ResearchTaskMutation) SetStatus(r researchtask.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *ResearchTaskMutation) Status() (r researchtask.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ResearchTask entity.
// If the ResearchTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchTaskMutation) OldStatus(ctx context.Context) (v researchtask.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ResearchTaskMutation) ResetStatus() {
	m.status = nil
}

// SetProjectID sets the "project_id" field.
func (m *ResearchTaskMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *ResearchTaskMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the ResearchTask entity.
// If the ResearchTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchTaskMutation) OldProjectID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ClearProjectID clears the value of the "project_id" field.
func (m *ResearchTaskMutation) ClearProjectID() {
	m.project = nil
	m.clearedFields[researchtask.FieldProjectID] = struct{}{}
}

// ProjectIDCleared returns if the "project_id" field was cleared in this mutation.
func (m *ResearchTaskMutation) ProjectIDCleared() bool {
	_, ok := m.clearedFields[researchtask.FieldProjectID]
	return ok
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *ResearchTaskMutation) ResetProjectID() {
	m.project = nil
	delete(m.clearedFields, researchtask.FieldProjectID)
}

// SetUserID sets the "user_id" field.
func (m *ResearchTaskMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ResearchTaskMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ResearchTask entity.
// If the ResearchTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchTaskMutation) OldUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *ResearchTaskMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[researchtask.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *ResearchTaskMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[researchtask.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ResearchTaskMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, researchtask.FieldUserID)
}

// SetAggregationConfig sets the "aggregation_config" field.
func (m *ResearchTaskMutation) SetAggregationConfig(value map[string]interface{}) {
	m.aggregation_config = &value
}

// AggregationConfig returns the value of the "aggregation_config" field in the mutation.
func (m *ResearchTaskMutation) AggregationConfig() (r map[string]interface{}, exists bool) {
	v := m.aggregation_config
	if v == nil {
		return
	}
	return *v, true
}

// OldAggregationConfig returns the old "aggregation_config" field's value of the ResearchTask entity.
// If the ResearchTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchTaskMutation) OldAggregationConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAggregationConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAggregationConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAggregationConfig: %w", err)
	}
	return oldValue.AggregationConfig, nil
}

// ClearAggregationConfig clears the value of the "aggregation_config" field.
func (m *ResearchTaskMutation) ClearAggregationConfig() {
	m.aggregation_config = nil
	m.clearedFields[researchtask.FieldAggregationConfig] = struct{}{}
}

// AggregationConfigCleared returns if the "aggregation_config" field was cleared in this mutation.
func (m *ResearchTaskMutation) AggregationConfigCleared() bool {
	_, ok := m.clearedFields[researchtask.FieldAggregationConfig]
	return ok
}

// ResetAggregationConfig resets all changes to the "aggregation_config" field.
func (m *ResearchTaskMutation) ResetAggregationConfig() {
	m.aggregation_config = nil
	delete(m.clearedFields, researchtask.FieldAggregationConfig)
}

// SetReportMarkdown sets the "report_markdown" field.
func (m *ResearchTaskMutation) SetReportMarkdown(s string) {
	m.report_markdown = &s
}

// ReportMarkdown returns the value of the "report_markdown" field in the mutation.
func (m *ResearchTaskMutation) ReportMarkdown() (r string, exists bool) {
	v := m.report_markdown
	if v == nil {
		return
	}
	return *v, true
}

// OldReportMarkdown returns the old "report_markdown" field's value of the ResearchTask entity.
// If the ResearchTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchTaskMutation) OldReportMarkdown(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportMarkdown is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportMarkdown requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportMarkdown: %w", err)
	}
	return oldValue.ReportMarkdown, nil
}

// ClearReportMarkdown clears the value of the "report_markdown" field.
func (m *ResearchTaskMutation) ClearReportMarkdown() {
	m.report_markdown = nil
	m.clearedFields[researchtask.FieldReportMarkdown] = struct{}{}
}

// ReportMarkdownCleared returns if the "report_markdown" field was cleared in this mutation.
func (m *ResearchTaskMutation) ReportMarkdownCleared() bool {
	_, ok := m.clearedFields[researchtask.FieldReportMarkdown]
	return ok
}

// ResetReportMarkdown resets all changes to the "report_markdown" field.
func (m *ResearchTaskMutation) ResetReportMarkdown() {
	m.report_markdown = nil
	delete(m.clearedFields, researchtask.FieldReportMarkdown)
}

// SetErrorMessage sets the "error_message" field.
func (m *ResearchTaskMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ResearchTaskMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ResearchTask entity.
// If the ResearchTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchTaskMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ResearchTaskMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[researchtask.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ResearchTaskMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[researchtask.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ResearchTaskMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, researchtask.FieldErrorMessage)
}

// SetErrorKind sets the "error_kind" field.
func (m *ResearchTaskMutation) SetErrorKind(s string) {
	m.error_kind = &s
}

// ErrorKind returns the value of the "error_kind" field in the mutation.
func (m *ResearchTaskMutation) ErrorKind() (r string, exists bool) {
	v := m.error_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorKind returns the old "error_kind" field's value of the ResearchTask entity.
// If the ResearchTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchTaskMutation) OldErrorKind(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorKind: %w", err)
	}
	return oldValue.ErrorKind, nil
}

// ClearErrorKind clears the value of the "error_kind" field.
func (m *ResearchTaskMutation) ClearErrorKind() {
	m.error_kind = nil
	m.clearedFields[researchtask.FieldErrorKind] = struct{}{}
}

// ErrorKindCleared returns if the "error_kind" field was cleared in this mutation.
func (m *ResearchTaskMutation) ErrorKindCleared() bool {
	_, ok := m.clearedFields[researchtask.FieldErrorKind]
	return ok
}

// ResetErrorKind resets all changes to the "error_kind" field.
func (m *ResearchTaskMutation) ResetErrorKind() {
	m.error_kind = nil
	delete(m.clearedFields, researchtask.FieldErrorKind)
}

// SetCreatedAt sets the "created_at" field.
func (m *ResearchTaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ResearchTaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ResearchTask entity.
// If the ResearchTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchTaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ResearchTaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ResearchTaskMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ResearchTaskMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ResearchTask entity.
// If the ResearchTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchTaskMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *ResearchTaskMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[researchtask.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *ResearchTaskMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[researchtask.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ResearchTaskMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, researchtask.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *ResearchTaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ResearchTaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ResearchTask entity.
// If the ResearchTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchTaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ResearchTaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[researchtask.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ResearchTaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[researchtask.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ResearchTaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, researchtask.FieldCompletedAt)
}

// SetPodID sets the "pod_id" field.
func (m *ResearchTaskMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *ResearchTaskMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the ResearchTask entity.
// If the ResearchTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchTaskMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *ResearchTaskMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[researchtask.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *ResearchTaskMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[researchtask.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *ResearchTaskMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, researchtask.FieldPodID)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *ResearchTaskMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *ResearchTaskMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the ResearchTask entity.
// If the ResearchTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchTaskMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *ResearchTaskMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[researchtask.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *ResearchTaskMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[researchtask.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *ResearchTaskMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, researchtask.FieldLastHeartbeatAt)
}

// SetDeletedAt sets the "deleted_at" field.
func (m *ResearchTaskMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *ResearchTaskMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the ResearchTask entity.
// If the ResearchTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchTaskMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *ResearchTaskMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[researchtask.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *ResearchTaskMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[researchtask.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *ResearchTaskMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, researchtask.FieldDeletedAt)
}

// ClearProject clears the "project" edge to the Project entity.
func (m *ResearchTaskMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[researchtask.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *ResearchTaskMutation) ProjectCleared() bool {
	return m.ProjectIDCleared() || m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *ResearchTaskMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *ResearchTaskMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddOperationIDs adds the "operations" edge to the Operation entity by ids.
func (m *ResearchTaskMutation) AddOperationIDs(ids ...string) {
	if m.operations == nil {
		m.operations = make(map[string]struct{})
	}
	for i := range ids {
		m.operations[ids[i]] = struct{}{}
	}
}

// ClearOperations clears the "operations" edge to the Operation entity.
func (m *ResearchTaskMutation) ClearOperations() {
	m.clearedoperations = true
}

// OperationsCleared reports if the "operations" edge to the Operation entity was cleared.
func (m *ResearchTaskMutation) OperationsCleared() bool {
	return m.clearedoperations
}

// RemoveOperationIDs removes the "operations" edge to the Operation entity by IDs.
func (m *ResearchTaskMutation) RemoveOperationIDs(ids ...string) {
	if m.removedoperations == nil {
		m.removedoperations = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.operations, ids[i])
		m.removedoperations[ids[i]] = struct{}{}
	}
}

// RemovedOperations returns the removed IDs of the "operations" edge to the Operation entity.
func (m *ResearchTaskMutation) RemovedOperationsIDs() (ids []string) {
	for id := range m.removedoperations {
		ids = append(ids, id)
	}
	return
}

// OperationsIDs returns the "operations" edge IDs in the mutation.
func (m *ResearchTaskMutation) OperationsIDs() (ids []string) {
	for id := range m.operations {
		ids = append(ids, id)
	}
	return
}

// ResetOperations resets all changes to the "operations" edge.
func (m *ResearchTaskMutation) ResetOperations() {
	m.operations = nil
	m.clearedoperations = false
	m.removedoperations = nil
}

// AddSourceSummaryIDs adds the "source_summaries" edge to the SourceSummary entity by ids.
func (m *ResearchTaskMutation) AddSourceSummaryIDs(ids ...string) {
	if m.source_summaries == nil {
		m.source_summaries = make(map[string]struct{})
	}
	for i := range ids {
		m.source_summaries[ids[i]] = struct{}{}
	}
}

// ClearSourceSummaries clears the "source_summaries" edge to the SourceSummary entity.
func (m *ResearchTaskMutation) ClearSourceSummaries() {
	m.clearedsource_summaries = true
}

// SourceSummariesCleared reports if the "source_summaries" edge to the SourceSummary entity was cleared.
func (m *ResearchTaskMutation) SourceSummariesCleared() bool {
	return m.clearedsource_summaries
}

// RemoveSourceSummaryIDs removes the "source_summaries" edge to the SourceSummary entity by IDs.
func (m *ResearchTaskMutation) RemoveSourceSummaryIDs(ids ...string) {
	if m.removedsource_summaries == nil {
		m.removedsource_summaries = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.source_summaries, ids[i])
		m.removedsource_summaries[ids[i]] = struct{}{}
	}
}

// RemovedSourceSummaries returns the removed IDs of the "source_summaries" edge to the SourceSummary entity.
func (m *ResearchTaskMutation) RemovedSourceSummariesIDs() (ids []string) {
	for id := range m.removedsource_summaries {
		ids = append(ids, id)
	}
	return
}

// SourceSummariesIDs returns the "source_summaries" edge IDs in the mutation.
func (m *ResearchTaskMutation) SourceSummariesIDs() (ids []string) {
	for id := range m.source_summaries {
		ids = append(ids, id)
	}
	return
}

// ResetSourceSummaries resets all changes to the "source_summaries" edge.
func (m *ResearchTaskMutation) ResetSourceSummaries() {
	m.source_summaries = nil
	m.clearedsource_summaries = false
	m.removedsource_summaries = nil
}

// AddKnowledgeNodeIDs adds the "knowledge_nodes" edge to the KnowledgeNode entity by ids.
func (m *ResearchTaskMutation) AddKnowledgeNodeIDs(ids ...string) {
	if m.knowledge_nodes == nil {
		m.knowledge_nodes = make(map[string]struct{})
	}
	for i := range ids {
		m.knowledge_nodes[ids[i]] = struct{}{}
	}
}

// ClearKnowledgeNodes clears the "knowledge_nodes" edge to the KnowledgeNode entity.
func (m *ResearchTaskMutation) ClearKnowledgeNodes() {
	m.clearedknowledge_nodes = true
}

// KnowledgeNodesCleared reports if the "knowledge_nodes" edge to the KnowledgeNode entity was cleared.
func (m *ResearchTaskMutation) KnowledgeNodesCleared() bool {
	return m.clearedknowledge_nodes
}

// RemoveKnowledgeNodeIDs removes the "knowledge_nodes" edge to the KnowledgeNode entity by IDs.
func (m *ResearchTaskMutation) RemoveKnowledgeNodeIDs(ids ...string) {
	if m.removedknowledge_nodes == nil {
		m.removedknowledge_nodes = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.knowledge_nodes, ids[i])
		m.removedknowledge_nodes[ids[i]] = struct{}{}
	}
}

// RemovedKnowledgeNodes returns the removed IDs of the "knowledge_nodes" edge to the KnowledgeNode entity.
func (m *ResearchTaskMutation) RemovedKnowledgeNodesIDs() (ids []string) {
	for id := range m.removedknowledge_nodes {
		ids = append(ids, id)
	}
	return
}

// KnowledgeNodesIDs returns the "knowledge_nodes" edge IDs in the mutation.
func (m *ResearchTaskMutation) KnowledgeNodesIDs() (ids []string) {
	for id := range m.knowledge_nodes {
		ids = append(ids, id)
	}
	return
}

// ResetKnowledgeNodes resets all changes to the "knowledge_nodes" edge.
func (m *ResearchTaskMutation) ResetKnowledgeNodes() {
	m.knowledge_nodes = nil
	m.clearedknowledge_nodes = false
	m.removedknowledge_nodes = nil
}

// AddInsightIDs adds the "insights" edge to the Insight entity by ids.
func (m *ResearchTaskMutation) AddInsightIDs(ids ...string) {
	if m.insights == nil {
		m.insights = make(map[string]struct{})
	}
	for i := range ids {
		m.insights[ids[i]] = struct{}{}
	}
}

// ClearInsights clears the "insights" edge to the Insight entity.
func (m *ResearchTaskMutation) ClearInsights() {
	m.clearedinsights = true
}

// InsightsCleared reports if the "insights" edge to the Insight entity was cleared.
func (m *ResearchTaskMutation) InsightsCleared() bool {
	return m.clearedinsights
}

// RemoveInsightIDs removes the "insights" edge to the Insight entity by IDs.
func (m *ResearchTaskMutation) RemoveInsightIDs(ids ...string) {
	if m.removedinsights == nil {
		m.removedinsights = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.insights, ids[i])
		m.removedinsights[ids[i]] = struct{}{}
	}
}

// RemovedInsights returns the removed IDs of the "insights" edge to the Insight entity.
func (m *ResearchTaskMutation) RemovedInsightsIDs() (ids []string) {
	for id := range m.removedinsights {
		ids = append(ids, id)
	}
	return
}

// InsightsIDs returns the "insights" edge IDs in the mutation.
func (m *ResearchTaskMutation) InsightsIDs() (ids []string) {
	for id := range m.insights {
		ids = append(ids, id)
	}
	return
}

// ResetInsights resets all changes to the "insights" edge.
func (m *ResearchTaskMutation) ResetInsights() {
	m.insights = nil
	m.clearedinsights = false
	m.removedinsights = nil
}

// AddSpikyPovIDs adds the "spiky_povs" edge to the SpikyPOV entity by ids.
func (m *ResearchTaskMutation) AddSpikyPovIDs(ids ...string) {
	if m.spiky_povs == nil {
		m.spiky_povs = make(map[string]struct{})
	}
	for i := range ids {
		m.spiky_povs[ids[i]] = struct{}{}
	}
}

// ClearSpikyPovs clears the "spiky_povs" edge to the SpikyPOV entity.
func (m *ResearchTaskMutation) ClearSpikyPovs() {
	m.clearedspiky_povs = true
}

// SpikyPovsCleared reports if the "spiky_povs" edge to the SpikyPOV entity was cleared.
func (m *ResearchTaskMutation) SpikyPovsCleared() bool {
	return m.clearedspiky_povs
}

// RemoveSpikyPovIDs removes the "spiky_povs" edge to the SpikyPOV entity by IDs.
func (m *ResearchTaskMutation) RemoveSpikyPovIDs(ids ...string) {
	if m.removedspiky_povs == nil {
		m.removedspiky_povs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.spiky_povs, ids[i])
		m.removedspiky_povs[ids[i]] = struct{}{}
	}
}

// RemovedSpikyPovs returns the removed IDs of the "spiky_povs" edge to the SpikyPOV entity.
func (m *ResearchTaskMutation) RemovedSpikyPovsIDs() (ids []string) {
	for id := range m.removedspiky_povs {
		ids = append(ids, id)
	}
	return
}

// SpikyPovsIDs returns the "spiky_povs" edge IDs in the mutation.
func (m *ResearchTaskMutation) SpikyPovsIDs() (ids []string) {
	for id := range m.spiky_povs {
		ids = append(ids, id)
	}
	return
}

// ResetSpikyPovs resets all changes to the "spiky_povs" edge.
func (m *ResearchTaskMutation) ResetSpikyPovs() {
	m.spiky_povs = nil
	m.clearedspiky_povs = false
	m.removedspiky_povs = nil
}

// AddReportSectionIDs adds the "report_sections" edge to the ReportSection entity by ids.
func (m *ResearchTaskMutation) AddReportSectionIDs(ids ...string) {
	if m.report_sections == nil {
		m.report_sections = make(map[string]struct{})
	}
	for i := range ids {
		m.report_sections[ids[i]] = struct{}{}
	}
}

// ClearReportSections clears the "report_sections" edge to the ReportSection entity.
func (m *ResearchTaskMutation) ClearReportSections() {
	m.clearedreport_sections = true
}

// ReportSectionsCleared reports if the "report_sections" edge to the ReportSection entity was cleared.
func (m *ResearchTaskMutation) ReportSectionsCleared() bool {
	return m.clearedreport_sections
}

// RemoveReportSectionIDs removes the "report_sections" edge to the ReportSection entity by IDs.
func (m *ResearchTaskMutation) RemoveReportSectionIDs(ids ...string) {
	if m.removedreport_sections == nil {
		m.removedreport_sections = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.report_sections, ids[i])
		m.removedreport_sections[ids[i]] = struct{}{}
	}
}

// RemovedReportSections returns the removed IDs of the "report_sections" edge to the ReportSection entity.
func (m *ResearchTaskMutation) RemovedReportSectionsIDs() (ids []string) {
	for id := range m.removedreport_sections {
		ids = append(ids, id)
	}
	return
}

// ReportSectionsIDs returns the "report_sections" edge IDs in the mutation.
func (m *ResearchTaskMutation) ReportSectionsIDs() (ids []string) {
	for id := range m.report_sections {
		ids = append(ids, id)
	}
	return
}

// ResetReportSections resets all changes to the "report_sections" edge.
func (m *ResearchTaskMutation) ResetReportSections() {
	m.report_sections = nil
	m.clearedreport_sections = false
	m.removedreport_sections = nil
}

// AddArtifactIDs adds the "artifacts" edge to the Artifact entity by ids.
func (m *ResearchTaskMutation) AddArtifactIDs(ids ...string) {
	if m.artifacts == nil {
		m.artifacts = make(map[string]struct{})
	}
	for i := range ids {
		m.artifacts[ids[i]] = struct{}{}
	}
}

// ClearArtifacts clears the "artifacts" edge to the Artifact entity.
func (m *ResearchTaskMutation) ClearArtifacts() {
	m.clearedartifacts = true
}

// ArtifactsCleared reports if the "artifacts" edge to the Artifact entity was cleared.
func (m *ResearchTaskMutation) ArtifactsCleared() bool {
	return m.clearedartifacts
}

// RemoveArtifactIDs removes the "artifacts" edge to the Artifact entity by IDs.
func (m *ResearchTaskMutation) RemoveArtifactIDs(ids ...string) {
	if m.removedartifacts == nil {
		m.removedartifacts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.artifacts, ids[i])
		m.removedartifacts[ids[i]] = struct{}{}
	}
}

// RemovedArtifacts returns the removed IDs of the "artifacts" edge to the Artifact entity.
func (m *ResearchTaskMutation) RemovedArtifactsIDs() (ids []string) {
	for id := range m.removedartifacts {
		ids = append(ids, id)
	}
	return
}

// ArtifactsIDs returns the "artifacts" edge IDs in the mutation.
func (m *ResearchTaskMutation) ArtifactsIDs() (ids []string) {
	for id := range m.artifacts {
		ids = append(ids, id)
	}
	return
}

// ResetArtifacts resets all changes to the "artifacts" edge.
func (m *ResearchTaskMutation) ResetArtifacts() {
	m.artifacts = nil
	m.clearedartifacts = false
	m.removedartifacts = nil
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *ResearchTaskMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *ResearchTaskMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *ResearchTaskMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *ResearchTaskMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *ResearchTaskMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *ResearchTaskMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *ResearchTaskMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the ResearchTaskMutation builder.
func (m *ResearchTaskMutation) Where(ps ...predicate.ResearchTask) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResearchTaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResearchTaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ResearchTask, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResearchTaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResearchTaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ResearchTask).
func (m *ResearchTaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResearchTaskMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.title != nil {
		fields = append(fields, researchtask.FieldTitle)
	}
	if m.research_query != nil {
		fields = append(fields, researchtask.FieldResearchQuery)
	}
	if m.research_type != nil {
		fields = append(fields, researchtask.FieldResearchType)
	}
	if m.status != nil {
		fields = append(fields, researchtask.FieldStatus)
	}
	if m.project != nil {
		fields = append(fields, researchtask.FieldProjectID)
	}
	if m.user_id != nil {
		fields = append(fields, researchtask.FieldUserID)
	}
	if m.aggregation_config != nil {
		fields = append(fields, researchtask.FieldAggregationConfig)
	}
	if m.report_markdown != nil {
		fields = append(fields, researchtask.FieldReportMarkdown)
	}
	if m.error_message != nil {
		fields = append(fields, researchtask.FieldErrorMessage)
	}
	if m.error_kind != nil {
		fields = append(fields, researchtask.FieldErrorKind)
	}
	if m.created_at != nil {
		fields = append(fields, researchtask.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, researchtask.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, researchtask.FieldCompletedAt)
	}
	if m.pod_id != nil {
		fields = append(fields, researchtask.FieldPodID)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, researchtask.FieldLastHeartbeatAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, researchtask.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResearchTaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case researchtask.FieldTitle:
		return m.Title()
	case researchtask.FieldResearchQuery:
		return m.ResearchQuery()
	case researchtask.FieldResearchType:
		return m.ResearchType()
	case researchtask.FieldStatus:
		return m.Status()
	case researchtask.FieldProjectID:
		return m.ProjectID()
	case researchtask.FieldUserID:
		return m.UserID()
	case researchtask.FieldAggregationConfig:
		return m.AggregationConfig()
	case researchtask.FieldReportMarkdown:
		return m.ReportMarkdown()
	case researchtask.FieldErrorMessage:
		return m.ErrorMessage()
	case researchtask.FieldErrorKind:
		return m.ErrorKind()
	case researchtask.FieldCreatedAt:
		return m.CreatedAt()
	case researchtask.FieldStartedAt:
		return m.StartedAt()
	case researchtask.FieldCompletedAt:
		return m.CompletedAt()
	case researchtask.FieldPodID:
		return m.PodID()
	case researchtask.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case researchtask.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResearchTaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case researchtask.FieldTitle:
		return m.OldTitle(ctx)
	case researchtask.FieldResearchQuery:
		return m.OldResearchQuery(ctx)
	case researchtask.FieldResearchType:
		return m.OldResearchType(ctx)
	case researchtask.FieldStatus:
		return m.OldStatus(ctx)
	case researchtask.FieldProjectID:
		return m.OldProjectID(ctx)
	case researchtask.FieldUserID:
		return m.OldUserID(ctx)
	case researchtask.FieldAggregationConfig:
		return m.OldAggregationConfig(ctx)
	case researchtask.FieldReportMarkdown:
		return m.OldReportMarkdown(ctx)
	case researchtask.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case researchtask.FieldErrorKind:
		return m.OldErrorKind(ctx)
	case researchtask.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case researchtask.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case researchtask.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case researchtask.FieldPodID:
		return m.OldPodID(ctx)
	case researchtask.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case researchtask.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ResearchTask field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResearchTaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case researchtask.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case researchtask.FieldResearchQuery:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResearchQuery(v)
		return nil
	case researchtask.FieldResearchType:
		v, ok := value.(researchtask.ResearchType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResearchType(v)
		return nil
	case researchtask.FieldStatus:
		v, ok := value.(researchtask.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case researchtask.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case researchtask.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case researchtask.FieldAggregationConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAggregationConfig(v)
		return nil
	case researchtask.FieldReportMarkdown:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportMarkdown(v)
		return nil
	case researchtask.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case researchtask.FieldErrorKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorKind(v)
		return nil
	case researchtask.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case researchtask.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case researchtask.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case researchtask.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case researchtask.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case researchtask.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ResearchTask field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResearchTaskMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResearchTaskMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResearchTaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ResearchTask numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResearchTaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(researchtask.FieldProjectID) {
		fields = append(fields, researchtask.FieldProjectID)
	}
	if m.FieldCleared(researchtask.FieldUserID) {
		fields = append(fields, researchtask.FieldUserID)
	}
	if m.FieldCleared(researchtask.FieldAggregationConfig) {
		fields = append(fields, researchtask.FieldAggregationConfig)
	}
	if m.FieldCleared(researchtask.FieldReportMarkdown) {
		fields = append(fields, researchtask.FieldReportMarkdown)
	}
	if m.FieldCleared(researchtask.FieldErrorMessage) {
		fields = append(fields, researchtask.FieldErrorMessage)
	}
	if m.FieldCleared(researchtask.FieldErrorKind) {
		fields = append(fields, researchtask.FieldErrorKind)
	}
	if m.FieldCleared(researchtask.FieldStartedAt) {
		fields = append(fields, researchtask.FieldStartedAt)
	}
	if m.FieldCleared(researchtask.FieldCompletedAt) {
		fields = append(fields, researchtask.FieldCompletedAt)
	}
	if m.FieldCleared(researchtask.FieldPodID) {
		fields = append(fields, researchtask.FieldPodID)
	}
	if m.FieldCleared(researchtask.FieldLastHeartbeatAt) {
		fields = append(fields, researchtask.FieldLastHeartbeatAt)
	}
	if m.FieldCleared(researchtask.FieldDeletedAt) {
		fields = append(fields, researchtask.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResearchTaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResearchTaskMutation) ClearField(name string) error {
	switch name {
	case researchtask.FieldProjectID:
		m.ClearProjectID()
		return nil
	case researchtask.FieldUserID:
		m.ClearUserID()
		return nil
	case researchtask.FieldAggregationConfig:
		m.ClearAggregationConfig()
		return nil
	case researchtask.FieldReportMarkdown:
		m.ClearReportMarkdown()
		return nil
	case researchtask.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case researchtask.FieldErrorKind:
		m.ClearErrorKind()
		return nil
	case researchtask.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case researchtask.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case researchtask.FieldPodID:
		m.ClearPodID()
		return nil
	case researchtask.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	case researchtask.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown ResearchTask nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResearchTaskMutation) ResetField(name string) error {
	switch name {
	case researchtask.FieldTitle:
		m.ResetTitle()
		return nil
	case researchtask.FieldResearchQuery:
		m.ResetResearchQuery()
		return nil
	case researchtask.FieldResearchType:
		m.ResetResearchType()
		return nil
	case researchtask.FieldStatus:
		m.ResetStatus()
		return nil
	case researchtask.FieldProjectID:
		m.ResetProjectID()
		return nil
	case researchtask.FieldUserID:
		m.ResetUserID()
		return nil
	case researchtask.FieldAggregationConfig:
		m.ResetAggregationConfig()
		return nil
	case researchtask.FieldReportMarkdown:
		m.ResetReportMarkdown()
		return nil
	case researchtask.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case researchtask.FieldErrorKind:
		m.ResetErrorKind()
		return nil
	case researchtask.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case researchtask.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case researchtask.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case researchtask.FieldPodID:
		m.ResetPodID()
		return nil
	case researchtask.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case researchtask.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown ResearchTask field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResearchTaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 9)
	if m.project != nil {
		edges = append(edges, researchtask.EdgeProject)
	}
	if m.operations != nil {
		edges = append(edges, researchtask.EdgeOperations)
	}
	if m.source_summaries != nil {
		edges = append(edges, researchtask.EdgeSourceSummaries)
	}
	if m.knowledge_nodes != nil {
		edges = append(edges, researchtask.EdgeKnowledgeNodes)
	}
	if m.insights != nil {
		edges = append(edges, researchtask.EdgeInsights)
	}
	if m.spiky_povs != nil {
		edges = append(edges, researchtask.EdgeSpikyPovs)
	}
	if m.report_sections != nil {
		edges = append(edges, researchtask.EdgeReportSections)
	}
	if m.artifacts != nil {
		edges = append(edges, researchtask.EdgeArtifacts)
	}
	if m.events != nil {
		edges = append(edges, researchtask.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResearchTaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case researchtask.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case researchtask.EdgeOperations:
		ids := make([]ent.Value, 0, len(m.operations))
		for id := range m.operations {
			ids = append(ids, id)
		}
		return ids
	case researchtask.EdgeSourceSummaries:
		ids := make([]ent.Value, 0, len(m.source_summaries))
		for id := range m.source_summaries {
			ids = append(ids, id)
		}
		return ids
	case researchtask.EdgeKnowledgeNodes:
		ids := make([]ent.Value, 0, len(m.knowledge_nodes))
		for id := range m.knowledge_nodes {
			ids = append(ids, id)
		}
		return ids
	case researchtask.EdgeInsights:
		ids := make([]ent.Value, 0, len(m.insights))
		for id := range m.insights {
			ids = append(ids, id)
		}
		return ids
	case researchtask.EdgeSpikyPovs:
		ids := make([]ent.Value, 0, len(m.spiky_povs))
		for id := range m.spiky_povs {
			ids = append(ids, id)
		}
		return ids
	case researchtask.EdgeReportSections:
		ids := make([]ent.Value, 0, len(m.report_sections))
		for id := range m.report_sections {
			ids = append(ids, id)
		}
		return ids
	case researchtask.EdgeArtifacts:
		ids := make([]ent.Value, 0, len(m.artifacts))
		for id := range m.artifacts {
			ids = append(ids, id)
		}
		return ids
	case researchtask.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResearchTaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 9)
	if m.removedoperations != nil {
		edges = append(edges, researchtask.EdgeOperations)
	}
	if m.removedsource_summaries != nil {
		edges = append(edges, researchtask.EdgeSourceSummaries)
	}
	if m.removedknowledge_nodes != nil {
		edges = append(edges, researchtask.EdgeKnowledgeNodes)
	}
	if m.removedinsights != nil {
		edges = append(edges, researchtask.EdgeInsights)
	}
	if m.removedspiky_povs != nil {
		edges = append(edges, researchtask.EdgeSpikyPovs)
	}
	if m.removedreport_sections != nil {
		edges = append(edges, researchtask.EdgeReportSections)
	}
	if m.removedartifacts != nil {
		edges = append(edges, researchtask.EdgeArtifacts)
	}
	if m.removedevents != nil {
		edges = append(edges, researchtask.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResearchTaskMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case researchtask.EdgeOperations:
		ids := make([]ent.Value, 0, len(m.removedoperations))
		for id := range m.removedoperations {
			ids = append(ids, id)
		}
		return ids
	case researchtask.EdgeSourceSummaries:
		ids := make([]ent.Value, 0, len(m.removedsource_summaries))
		for id := range m.removedsource_summaries {
			ids = append(ids, id)
		}
		return ids
	case researchtask.EdgeKnowledgeNodes:
		ids := make([]ent.Value, 0, len(m.removedknowledge_nodes))
		for id := range m.removedknowledge_nodes {
			ids = append(ids, id)
		}
		return ids
	case researchtask.EdgeInsights:
		ids := make([]ent.Value, 0, len(m.removedinsights))
		for id := range m.removedinsights {
			ids = append(ids, id)
		}
		return ids
	case researchtask.EdgeSpikyPovs:
		ids := make([]ent.Value, 0, len(m.removedspiky_povs))
		for id := range m.removedspiky_povs {
			ids = append(ids, id)
		}
		return ids
	case researchtask.EdgeReportSections:
		ids := make([]ent.Value, 0, len(m.removedreport_sections))
		for id := range m.removedreport_sections {
			ids = append(ids, id)
		}
		return ids
	case researchtask.EdgeArtifacts:
		ids := make([]ent.Value, 0, len(m.removedartifacts))
		for id := range m.removedartifacts {
			ids = append(ids, id)
		}
		return ids
	case researchtask.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResearchTaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 9)
	if m.clearedproject {
		edges = append(edges, researchtask.EdgeProject)
	}
	if m.clearedoperations {
		edges = append(edges, researchtask.EdgeOperations)
	}
	if m.clearedsource_summaries {
		edges = append(edges, researchtask.EdgeSourceSummaries)
	}
	if m.clearedknowledge_nodes {
		edges = append(edges, researchtask.EdgeKnowledgeNodes)
	}
	if m.clearedinsights {
		edges = append(edges, researchtask.EdgeInsights)
	}
	if m.clearedspiky_povs {
		edges = append(edges, researchtask.EdgeSpikyPovs)
	}
	if m.clearedreport_sections {
		edges = append(edges, researchtask.EdgeReportSections)
	}
	if m.clearedartifacts {
		edges = append(edges, researchtask.EdgeArtifacts)
	}
	if m.clearedevents {
		edges = append(edges, researchtask.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResearchTaskMutation) EdgeCleared(name string) bool {
	switch name {
	case researchtask.EdgeProject:
		return m.clearedproject
	case researchtask.EdgeOperations:
		return m.clearedoperations
	case researchtask.EdgeSourceSummaries:
		return m.clearedsource_summaries
	case researchtask.EdgeKnowledgeNodes:
		return m.clearedknowledge_nodes
	case researchtask.EdgeInsights:
		return m.clearedinsights
	case researchtask.EdgeSpikyPovs:
		return m.clearedspiky_povs
	case researchtask.EdgeReportSections:
		return m.clearedreport_sections
	case researchtask.EdgeArtifacts:
		return m.clearedartifacts
	case researchtask.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResearchTaskMutation) ClearEdge(name string) error {
	switch name {
	case researchtask.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown ResearchTask unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResearchTaskMutation) ResetEdge(name string) error {
	switch name {
	case researchtask.EdgeProject:
		m.ResetProject()
		return nil
	case researchtask.EdgeOperations:
		m.ResetOperations()
		return nil
	case researchtask.EdgeSourceSummaries:
		m.ResetSourceSummaries()
		return nil
	case researchtask.EdgeKnowledgeNodes:
		m.ResetKnowledgeNodes()
		return nil
	case researchtask.EdgeInsights:
		m.ResetInsights()
		return nil
	case researchtask.EdgeSpikyPovs:
		m.ResetSpikyPovs()
		return nil
	case researchtask.EdgeReportSections:
		m.ResetReportSections()
		return nil
	case researchtask.EdgeArtifacts:
		m.ResetArtifacts()
		return nil
	case researchtask.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown ResearchTask edge %s", name)
}

// SourceMutation represents an operation that mutates the Source nodes in the graph.
type SourceMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	url                  *string
	title                *string
	description          *string
	provider             *string
	content_hash         *string
	reliability_score    *float64
	addreliability_score *float64
	observation_count    *int
	addobservation_count *int
	accessed_at          *time.Time
	created_at           *time.Time
	clearedFields        map[string]struct{}
	summaries            map[string]struct{}
	removedsummaries     map[string]struct{}
	clearedsummaries     bool
	node_links           map[string]struct{}
	removednode_links    map[string]struct{}
	clearednode_links    bool
	done                 bool
	oldValue             func(context.Context) (*Source, error)
	predicates           []predicate.Source
}

var _ ent.Mutation = (*SourceMutation)(nil)

// sourceOption allows management of the mutation configuration using functional options.
type sourceOption func(*SourceMutation)

// newSourceMutation creates new mutation for the Source entity.
func newSourceMutation(c config, op Op, opts ...sourceOption) *SourceMutation {
	m := &SourceMutation{
		config:        c,
		op:            op,
		typ:           TypeSource,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSourceID sets the ID field of the mutation.
func withSourceID(id string) sourceOption {
	return func(m *SourceMutation) {
		var (
			err   error
			once  sync.Once
			value *Source
		)
		m.oldValue = func(ctx context.Context) (*Source, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Source.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSource sets the old Source of the mutation.
func withSource(node *Source) sourceOption {
	return func(m *SourceMutation) {
		m.oldValue = func(context.Context) (*Source, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SourceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SourceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Source entities.
func (m *SourceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SourceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SourceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Source.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetURL sets the "url" field.
func (m *SourceMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *SourceMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *SourceMutation) ResetURL() {
	m.url = nil
}

// SetTitle sets the "title" field.
func (m *SourceMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *SourceMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *SourceMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[source.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *SourceMutation) TitleCleared() bool {
	_, ok := m.clearedFields[source.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *SourceMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, source.FieldTitle)
}

// SetDescription sets the "description" field.
func (m *SourceMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *SourceMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *SourceMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[source.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *SourceMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[source.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *SourceMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, source.FieldDescription)
}

// SetProvider sets the "provider" field.
func (m *SourceMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *SourceMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *SourceMutation) ResetProvider() {
	m.provider = nil
}

// SetContentHash sets the "content_hash" field.
func (m *SourceMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *SourceMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldContentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *SourceMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetReliabilityScore sets the "reliability_score" field.
func (m *SourceMutation) SetReliabilityScore(f float64) {
	m.reliability_score = &f
	m.addreliability_score = nil
}

// ReliabilityScore returns the value of the "reliability_score" field in the mutation.
func (m *SourceMutation) ReliabilityScore() (r float64, exists bool) {
	v := m.reliability_score
	if v == nil {
		return
	}
	return *v, true
}

// OldReliabilityScore returns the old "reliability_score" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldReliabilityScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReliabilityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReliabilityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReliabilityScore: %w", err)
	}
	return oldValue.ReliabilityScore, nil
}

// AddReliabilityScore adds f to the "reliability_score" field.
func (m *SourceMutation) AddReliabilityScore(f float64) {
	if m.addreliability_score != nil {
		*m.addreliability_score += f
	} else {
		m.addreliability_score = &f
	}
}

// AddedReliabilityScore returns the value that was added to the "reliability_score" field in this mutation.
func (m *SourceMutation) AddedReliabilityScore() (r float64, exists bool) {
	v := m.addreliability_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetReliabilityScore resets all changes to the "reliability_score" field.
func (m *SourceMutation) ResetReliabilityScore() {
	m.reliability_score = nil
	m.addreliability_score = nil
}

// SetObservationCount sets the "observation_count" field.
func (m *SourceMutation) SetObservationCount(i int) {
	m.observation_count = &i
	m.addobservation_count = nil
}

// ObservationCount returns the value of the "observation_count" field in the mutation.
func (m *SourceMutation) ObservationCount() (r int, exists bool) {
	v := m.observation_count
	if v == nil {
		return
	}
	return *v, true
}

// OldObservationCount returns the old "observation_count" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldObservationCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObservationCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObservationCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObservationCount: %w", err)
	}
	return oldValue.ObservationCount, nil
}

// AddObservationCount adds i to the "observation_count" field.
func (m *SourceMutation) AddObservationCount(i int) {
	if m.addobservation_count != nil {
		*m.addobservation_count += i
	} else {
		m.addobservation_count = &i
	}
}

// AddedObservationCount returns the value that was added to the "observation_count" field in this mutation.
func (m *SourceMutation) AddedObservationCount() (r int, exists bool) {
	v := m.addobservation_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetObservationCount resets all changes to the "observation_count" field.
func (m *SourceMutation) ResetObservationCount() {
	m.observation_count = nil
	m.addobservation_count = nil
}

// SetAccessedAt sets the "accessed_at" field.
func (m *SourceMutation) SetAccessedAt(t time.Time) {
	m.accessed_at = &t
}

// AccessedAt returns the value of the "accessed_at" field in the mutation.
func (m *SourceMutation) AccessedAt() (r time.Time, exists bool) {
	v := m.accessed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAccessedAt returns the old "accessed_at" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldAccessedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccessedAt: %w", err)
	}
	return oldValue.AccessedAt, nil
}

// ResetAccessedAt resets all changes to the "accessed_at" field.
func (m *SourceMutation) ResetAccessedAt() {
	m.accessed_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SourceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SourceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SourceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddSummaryIDs adds the "summaries" edge to the SourceSummary entity by ids.
func (m *SourceMutation) AddSummaryIDs(ids ...string) {
	if m.summaries == nil {
		m.summaries = make(map[string]struct{})
	}
	for i := range ids {
		m.summaries[ids[i]] = struct{}{}
	}
}

// ClearSummaries clears the "summaries" edge to the SourceSummary entity.
func (m *SourceMutation) ClearSummaries() {
	m.clearedsummaries = true
}

// SummariesCleared reports if the "summaries" edge to the SourceSummary entity was cleared.
func (m *SourceMutation) SummariesCleared() bool {
	return m.clearedsummaries
}

// RemoveSummaryIDs removes the "summaries" edge to the SourceSummary entity by IDs.
func (m *SourceMutation) RemoveSummaryIDs(ids ...string) {
	if m.removedsummaries == nil {
		m.removedsummaries = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.summaries, ids[i])
		m.removedsummaries[ids[i]] = struct{}{}
	}
}

// RemovedSummaries returns the removed IDs of the "summaries" edge to the SourceSummary entity.
func (m *SourceMutation) RemovedSummariesIDs() (ids []string) {
	for id := range m.removedsummaries {
		ids = append(ids, id)
	}
	return
}

// SummariesIDs returns the "summaries" edge IDs in the mutation.
func (m *SourceMutation) SummariesIDs() (ids []string) {
	for id := range m.summaries {
		ids = append(ids, id)
	}
	return
}

// ResetSummaries resets all changes to the "summaries" edge.
func (m *SourceMutation) ResetSummaries() {
	m.summaries = nil
	m.clearedsummaries = false
	m.removedsummaries = nil
}

// AddNodeLinkIDs adds the "node_links" edge to the KnowledgeNodeSource entity by ids.
func (m *SourceMutation) AddNodeLinkIDs(ids ...string) {
	if m.node_links == nil {
		m.node_links = make(map[string]struct{})
	}
	for i := range ids {
		m.node_links[ids[i]] = struct{}{}
	}
}

// ClearNodeLinks clears the "node_links" edge to the KnowledgeNodeSource entity.
func (m *SourceMutation) ClearNodeLinks() {
	m.clearednode_links = true
}

// NodeLinksCleared reports if the "node_links" edge to the KnowledgeNodeSource entity was cleared.
func (m *SourceMutation) NodeLinksCleared() bool {
	return m.clearednode_links
}

// RemoveNodeLinkIDs removes the "node_links" edge to the KnowledgeNodeSource entity by IDs.
func (m *SourceMutation) RemoveNodeLinkIDs(ids ...string) {
	if m.removednode_links == nil {
		m.removednode_links = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.node_links, ids[i])
		m.removednode_links[ids[i]] = struct{}{}
	}
}

// RemovedNodeLinks returns the removed IDs of the "node_links" edge to the KnowledgeNodeSource entity.
func (m *SourceMutation) RemovedNodeLinksIDs() (ids []string) {
	for id := range m.removednode_links {
		ids = append(ids, id)
	}
	return
}

// NodeLinksIDs returns the "node_links" edge IDs in the mutation.
func (m *SourceMutation) NodeLinksIDs() (ids []string) {
	for id := range m.node_links {
		ids = append(ids, id)
	}
	return
}

// ResetNodeLinks resets all changes to the "node_links" edge.
func (m *SourceMutation) ResetNodeLinks() {
	m.node_links = nil
	m.clearednode_links = false
	m.removednode_links = nil
}

// Where appends a list predicates to the SourceMutation builder.
func (m *SourceMutation) Where(ps ...predicate.Source) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SourceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SourceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Source, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SourceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SourceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Source).
func (m *SourceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SourceMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.url != nil {
		fields = append(fields, source.FieldURL)
	}
	if m.title != nil {
		fields = append(fields, source.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, source.FieldDescription)
	}
	if m.provider != nil {
		fields = append(fields, source.FieldProvider)
	}
	if m.content_hash != nil {
		fields = append(fields, source.FieldContentHash)
	}
	if m.reliability_score != nil {
		fields = append(fields, source.FieldReliabilityScore)
	}
	if m.observation_count != nil {
		fields = append(fields, source.FieldObservationCount)
	}
	if m.accessed_at != nil {
		fields = append(fields, source.FieldAccessedAt)
	}
	if m.created_at != nil {
		fields = append(fields, source.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SourceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case source.FieldURL:
		return m.URL()
	case source.FieldTitle:
		return m.Title()
	case source.FieldDescription:
		return m.Description()
	case source.FieldProvider:
		return m.Provider()
	case source.FieldContentHash:
		return m.ContentHash()
	case source.FieldReliabilityScore:
		return m.ReliabilityScore()
	case source.FieldObservationCount:
		return m.ObservationCount()
	case source.FieldAccessedAt:
		return m.AccessedAt()
	case source.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SourceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case source.FieldURL:
		return m.OldURL(ctx)
	case source.FieldTitle:
		return m.OldTitle(ctx)
	case source.FieldDescription:
		return m.OldDescription(ctx)
	case source.FieldProvider:
		return m.OldProvider(ctx)
	case source.FieldContentHash:
		return m.OldContentHash(ctx)
	case source.FieldReliabilityScore:
		return m.OldReliabilityScore(ctx)
	case source.FieldObservationCount:
		return m.OldObservationCount(ctx)
	case source.FieldAccessedAt:
		return m.OldAccessedAt(ctx)
	case source.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Source field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case source.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case source.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case source.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case source.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case source.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case source.FieldReliabilityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReliabilityScore(v)
		return nil
	case source.FieldObservationCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObservationCount(v)
		return nil
	case source.FieldAccessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccessedAt(v)
		return nil
	case source.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Source field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SourceMutation) AddedFields() []string {
	var fields []string
	if m.addreliability_score != nil {
		fields = append(fields, source.FieldReliabilityScore)
	}
	if m.addobservation_count != nil {
		fields = append(fields, source.FieldObservationCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SourceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case source.FieldReliabilityScore:
		return m.AddedReliabilityScore()
	case source.FieldObservationCount:
		return m.AddedObservationCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case source.FieldReliabilityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReliabilityScore(v)
		return nil
	case source.FieldObservationCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddObservationCount(v)
		return nil
	}
	return fmt.Errorf("unknown Source numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SourceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(source.FieldTitle) {
		fields = append(fields, source.FieldTitle)
	}
	if m.FieldCleared(source.FieldDescription) {
		fields = append(fields, source.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SourceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SourceMutation) ClearField(name string) error {
	switch name {
	case source.FieldTitle:
		m.ClearTitle()
		return nil
	case source.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Source nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SourceMutation) ResetField(name string) error {
	switch name {
	case source.FieldURL:
		m.ResetURL()
		return nil
	case source.FieldTitle:
		m.ResetTitle()
		return nil
	case source.FieldDescription:
		m.ResetDescription()
		return nil
	case source.FieldProvider:
		m.ResetProvider()
		return nil
	case source.FieldContentHash:
		m.ResetContentHash()
		return nil
	case source.FieldReliabilityScore:
		m.ResetReliabilityScore()
		return nil
	case source.FieldObservationCount:
		m.ResetObservationCount()
		return nil
	case source.FieldAccessedAt:
		m.ResetAccessedAt()
		return nil
	case source.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Source field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SourceMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.summaries != nil {
		edges = append(edges, source.EdgeSummaries)
	}
	if m.node_links != nil {
		edges = append(edges, source.EdgeNodeLinks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SourceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case source.EdgeSummaries:
		ids := make([]ent.Value, 0, len(m.summaries))
		for id := range m.summaries {
			ids = append(ids, id)
		}
		return ids
	case source.EdgeNodeLinks:
		ids := make([]ent.Value, 0, len(m.node_links))
		for id := range m.node_links {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SourceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsummaries != nil {
		edges = append(edges, source.EdgeSummaries)
	}
	if m.removednode_links != nil {
		edges = append(edges, source.EdgeNodeLinks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SourceMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case source.EdgeSummaries:
		ids := make([]ent.Value, 0, len(m.removedsummaries))
		for id := range m.removedsummaries {
			ids = append(ids, id)
		}
		return ids
	case source.EdgeNodeLinks:
		ids := make([]ent.Value, 0, len(m.removednode_links))
		for id := range m.removednode_links {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SourceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsummaries {
		edges = append(edges, source.EdgeSummaries)
	}
	if m.clearednode_links {
		edges = append(edges, source.EdgeNodeLinks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SourceMutation) EdgeCleared(name string) bool {
	switch name {
	case source.EdgeSummaries:
		return m.clearedsummaries
	case source.EdgeNodeLinks:
		return m.clearednode_links
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SourceMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Source unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SourceMutation) ResetEdge(name string) error {
	switch name {
	case source.EdgeSummaries:
		m.ResetSummaries()
		return nil
	case source.EdgeNodeLinks:
		m.ResetNodeLinks()
		return nil
	}
	return fmt.Errorf("unknown Source edge %s", name)
}

// SourceSummaryMutation represents an operation that mutates the SourceSummary nodes in the graph.
type SourceSummaryMutation struct {
	config
	op               Op
	typ              string
	id               *string
	subtopic         *string
	summary          *string
	dok1_facts       *[]string
	appenddok1_facts []string
	dok_level        *int
	adddok_level     *int
	superseded_by    *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	task             *string
	clearedtask      bool
	source           *string
	clearedsource    bool
	done             bool
	oldValue         func(context.Context) (*SourceSummary, error)
	predicates       []predicate.SourceSummary
}

var _ ent.Mutation = (*SourceSummaryMutation)(nil)

// sourcesummaryOption allows management of the mutation configuration using functional options.
type sourcesummaryOption func(*SourceSummaryMutation)

// newSourceSummaryMutation creates new mutation for the SourceSummary entity.
func newSourceSummaryMutation(c config, op Op, opts ...sourcesummaryOption) *SourceSummaryMutation {
	m := &SourceSummaryMutation{
		config:        c,
		op:            op,
		typ:           TypeSourceSummary,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSourceSummaryID sets the ID field of the mutation.
func withSourceSummaryID(id string) sourcesummaryOption {
	return func(m *SourceSummaryMutation) {
		var (
			err   error
			once  sync.Once
			value *SourceSummary
		)
		m.oldValue = func(ctx context.Context) (*SourceSummary, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SourceSummary.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSourceSummary sets the old SourceSummary of the mutation.
func withSourceSummary(node *SourceSummary) sourcesummaryOption {
	return func(m *SourceSummaryMutation) {
		m.oldValue = func(context.Context) (*SourceSummary, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SourceSummaryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SourceSummaryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SourceSummary entities.
func (m *SourceSummaryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SourceSummaryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SourceSummaryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SourceSummary.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *SourceSummaryMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *SourceSummaryMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the SourceSummary entity.
// If the SourceSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceSummaryMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *SourceSummaryMutation) ResetTaskID() {
	m.task = nil
}

// SetSourceID sets the "source_id" field.
func (m *SourceSummaryMutation) SetSourceID(s string) {
	m.source = &s
}

// SourceID returns the value of the "source_id" field in the mutation.
func (m *SourceSummaryMutation) SourceID() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceID returns the old "source_id" field's value of the SourceSummary entity.
// If the SourceSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceSummaryMutation) OldSourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceID: %w", err)
	}
	return oldValue.SourceID, nil
}

// ResetSourceID resets all changes to the "source_id" field.
func (m *SourceSummaryMutation) ResetSourceID() {
	m.source = nil
}

// SetSubtopic sets the "subtopic" field.
func (m *SourceSummaryMutation) SetSubtopic(s string) {
	m.subtopic = &s
}

// Subtopic returns the value of the "subtopic" field in the mutation.
func (m *SourceSummaryMutation) Subtopic() (r string, exists bool) {
	v := m.subtopic
	if v == nil {
		return
	}
	return *v, true
}

// OldSubtopic returns the old "subtopic" field's value of the SourceSummary entity.
// If the SourceSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceSummaryMutation) OldSubtopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubtopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubtopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubtopic: %w", err)
	}
	return oldValue.Subtopic, nil
}

// ClearSubtopic clears the value of the "subtopic" field.
func (m *SourceSummaryMutation) ClearSubtopic() {
	m.subtopic = nil
	m.clearedFields[sourcesummary.FieldSubtopic] = struct{}{}
}

// SubtopicCleared returns if the "subtopic" field was cleared in this mutation.
func (m *SourceSummaryMutation) SubtopicCleared() bool {
	_, ok := m.clearedFields[sourcesummary.FieldSubtopic]
	return ok
}

// ResetSubtopic resets all changes to the "subtopic" field.
func (m *SourceSummaryMutation) ResetSubtopic() {
	m.subtopic = nil
	delete(m.clearedFields, sourcesummary.FieldSubtopic)
}

// SetSummary sets the "summary" field.
func (m *SourceSummaryMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *SourceSummaryMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the SourceSummary entity.
// If the SourceSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceSummaryMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ResetSummary resets all changes to the "summary" field.
func (m *SourceSummaryMutation) ResetSummary() {
	m.summary = nil
}

// SetDok1Facts sets the "dok1_facts" field.
func (m *SourceSummaryMutation) SetDok1Facts(s []string) {
	m.dok1_facts = &s
	m.appenddok1_facts = nil
}

// Dok1Facts returns the value of the "dok1_facts" field in the mutation.
func (m *SourceSummaryMutation) Dok1Facts() (r []string, exists bool) {
	v := m.dok1_facts
	if v == nil {
		return
	}
	return *v, true
}

// OldDok1Facts returns the old "dok1_facts" field's value of the SourceSummary entity.
// If the SourceSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceSummaryMutation) OldDok1Facts(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDok1Facts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDok1Facts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDok1Facts: %w", err)
	}
	return oldValue.Dok1Facts, nil
}

// AppendDok1Facts adds s to the "dok1_facts" field.
func (m *SourceSummaryMutation) AppendDok1Facts(s []string) {
	m.appenddok1_facts = append(m.appenddok1_facts, s...)
}

// AppendedDok1Facts returns the list of values that were appended to the "dok1_facts" field in this mutation.
func (m *SourceSummaryMutation) AppendedDok1Facts() ([]string, bool) {
	if len(m.appenddok1_facts) == 0 {
		return nil, false
	}
	return m.appenddok1_facts, true
}

// ResetDok1Facts resets all changes to the "dok1_facts" field.
func (m *SourceSummaryMutation) ResetDok1Facts() {
	m.dok1_facts = nil
	m.appenddok1_facts = nil
}

// SetDokLevel sets the "dok_level" field.
func (m *SourceSummaryMutation) SetDokLevel(i int) {
	m.dok_level = &i
	m.adddok_level = nil
}

// DokLevel returns the value of the "dok_level" field in the mutation.
func (m *SourceSummaryMutation) DokLevel() (r int, exists bool) {
	v := m.dok_level
	if v == nil {
		return
	}
	return *v, true
}

// OldDokLevel returns the old "dok_level" field's value of the SourceSummary entity.
// If the SourceSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceSummaryMutation) OldDokLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDokLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDokLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDokLevel: %w", err)
	}
	return oldValue.DokLevel, nil
}

// AddDokLevel adds i to the "dok_level" field.
func (m *SourceSummaryMutation) AddDokLevel(i int) {
	if m.adddok_level != nil {
		*m.adddok_level += i
	} else {
		m.adddok_level = &i
	}
}

// AddedDokLevel returns the value that was added to the "dok_level" field in this mutation.
func (m *SourceSummaryMutation) AddedDokLevel() (r int, exists bool) {
	v := m.adddok_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetDokLevel resets all changes to the "dok_level" field.
func (m *SourceSummaryMutation) ResetDokLevel() {
	m.dok_level = nil
	m.adddok_level = nil
}

// SetSupersededBy sets the "superseded_by" field.
func (m *SourceSummaryMutation) SetSupersededBy(s string) {
	m.superseded_by = &s
}

// SupersededBy returns the value of the "superseded_by" field in the mutation.
func (m *SourceSummaryMutation) SupersededBy() (r string, exists bool) {
	v := m.superseded_by
	if v == nil {
		return
	}
	return *v, true
}

// OldSupersededBy returns the old "superseded_by" field's value of the SourceSummary entity.
// If the SourceSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceSummaryMutation) OldSupersededBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupersededBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupersededBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupersededBy: %w", err)
	}
	return oldValue.SupersededBy, nil
}

// ClearSupersededBy clears the value of the "superseded_by" field.
func (m *SourceSummaryMutation) ClearSupersededBy() {
	m.superseded_by = nil
	m.clearedFields[sourcesummary.FieldSupersededBy] = struct{}{}
}

// SupersededByCleared returns if the "superseded_by" field was cleared in this mutation.
func (m *SourceSummaryMutation) SupersededByCleared() bool {
	_, ok := m.clearedFields[sourcesummary.FieldSupersededBy]
	return ok
}

// ResetSupersededBy resets all changes to the "superseded_by" field.
func (m *SourceSummaryMutation) ResetSupersededBy() {
	m.superseded_by = nil
	delete(m.clearedFields, sourcesummary.FieldSupersededBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *SourceSummaryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SourceSummaryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SourceSummary entity.
// If the SourceSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceSummaryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SourceSummaryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the ResearchTask entity.
func (m *SourceSummaryMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[sourcesummary.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the ResearchTask entity was cleared.
func (m *SourceSummaryMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *SourceSummaryMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *SourceSummaryMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// ClearSource clears the "source" edge to the Source entity.
func (m *SourceSummaryMutation) ClearSource() {
	m.clearedsource = true
	m.clearedFields[sourcesummary.FieldSourceID] = struct{}{}
}

// SourceCleared reports if the "source" edge to the Source entity was cleared.
func (m *SourceSummaryMutation) SourceCleared() bool {
	return m.clearedsource
}

// SourceIDs returns the "source" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SourceID instead. It exists only for internal usage by the builders.
func (m *SourceSummaryMutation) SourceIDs() (ids []string) {
	if id := m.source; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSource resets all changes to the "source" edge.
func (m *SourceSummaryMutation) ResetSource() {
	m.source = nil
	m.clearedsource = false
}

// Where appends a list predicates to the SourceSummaryMutation builder.
func (m *SourceSummaryMutation) Where(ps ...predicate.SourceSummary) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SourceSummaryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SourceSummaryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SourceSummary, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SourceSummaryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SourceSummaryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SourceSummary).
func (m *SourceSummaryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SourceSummaryMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.task != nil {
		fields = append(fields, sourcesummary.FieldTaskID)
	}
	if m.source != nil {
		fields = append(fields, sourcesummary.FieldSourceID)
	}
	if m.subtopic != nil {
		fields = append(fields, sourcesummary.FieldSubtopic)
	}
	if m.summary != nil {
		fields = append(fields, sourcesummary.FieldSummary)
	}
	if m.dok1_facts != nil {
		fields = append(fields, sourcesummary.FieldDok1Facts)
	}
	if m.dok_level != nil {
		fields = append(fields, sourcesummary.FieldDokLevel)
	}
	if m.superseded_by != nil {
		fields = append(fields, sourcesummary.FieldSupersededBy)
	}
	if m.created_at != nil {
		fields = append(fields, sourcesummary.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SourceSummaryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sourcesummary.FieldTaskID:
		return m.TaskID()
	case sourcesummary.FieldSourceID:
		return m.SourceID()
	case sourcesummary.FieldSubtopic:
		return m.Subtopic()
	case sourcesummary.FieldSummary:
		return m.Summary()
	case sourcesummary.FieldDok1Facts:
		return m.Dok1Facts()
	case sourcesummary.FieldDokLevel:
		return m.DokLevel()
	case sourcesummary.FieldSupersededBy:
		return m.SupersededBy()
	case sourcesummary.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SourceSummaryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sourcesummary.FieldTaskID:
		return m.OldTaskID(ctx)
	case sourcesummary.FieldSourceID:
		return m.OldSourceID(ctx)
	case sourcesummary.FieldSubtopic:
		return m.OldSubtopic(ctx)
	case sourcesummary.FieldSummary:
		return m.OldSummary(ctx)
	case sourcesummary.FieldDok1Facts:
		return m.OldDok1Facts(ctx)
	case sourcesummary.FieldDokLevel:
		return m.OldDokLevel(ctx)
	case sourcesummary.FieldSupersededBy:
		return m.OldSupersededBy(ctx)
	case sourcesummary.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SourceSummary field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceSummaryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sourcesummary.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case sourcesummary.FieldSourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceID(v)
		return nil
	case sourcesummary.FieldSubtopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubtopic(v)
		return nil
	case sourcesummary.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case sourcesummary.FieldDok1Facts:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDok1Facts(v)
		return nil
	case sourcesummary.FieldDokLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDokLevel(v)
		return nil
	case sourcesummary.FieldSupersededBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupersededBy(v)
		return nil
	case sourcesummary.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SourceSummary field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SourceSummaryMutation) AddedFields() []string {
	var fields []string
	if m.adddok_level != nil {
		fields = append(fields, sourcesummary.FieldDokLevel)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SourceSummaryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sourcesummary.FieldDokLevel:
		return m.AddedDokLevel()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceSummaryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sourcesummary.FieldDokLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDokLevel(v)
		return nil
	}
	return fmt.Errorf("unknown SourceSummary numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SourceSummaryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sourcesummary.FieldSubtopic) {
		fields = append(fields, sourcesummary.FieldSubtopic)
	}
	if m.FieldCleared(sourcesummary.FieldSupersededBy) {
		fields = append(fields, sourcesummary.FieldSupersededBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SourceSummaryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SourceSummaryMutation) ClearField(name string) error {
	switch name {
	case sourcesummary.FieldSubtopic:
		m.ClearSubtopic()
		return nil
	case sourcesummary.FieldSupersededBy:
		m.ClearSupersededBy()
		return nil
	}
	return fmt.Errorf("unknown SourceSummary nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SourceSummaryMutation) ResetField(name string) error {
	switch name {
	case sourcesummary.FieldTaskID:
		m.ResetTaskID()
		return nil
	case sourcesummary.FieldSourceID:
		m.ResetSourceID()
		return nil
	case sourcesummary.FieldSubtopic:
		m.ResetSubtopic()
		return nil
	case sourcesummary.FieldSummary:
		m.ResetSummary()
		return nil
	case sourcesummary.FieldDok1Facts:
		m.ResetDok1Facts()
		return nil
	case sourcesummary.FieldDokLevel:
		m.ResetDokLevel()
		return nil
	case sourcesummary.FieldSupersededBy:
		m.ResetSupersededBy()
		return nil
	case sourcesummary.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SourceSummary field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SourceSummaryMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.task != nil {
		edges = append(edges, sourcesummary.EdgeTask)
	}
	if m.source != nil {
		edges = append(edges, sourcesummary.EdgeSource)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SourceSummaryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sourcesummary.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	case sourcesummary.EdgeSource:
		if id := m.source; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SourceSummaryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SourceSummaryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SourceSummaryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedtask {
		edges = append(edges, sourcesummary.EdgeTask)
	}
	if m.clearedsource {
		edges = append(edges, sourcesummary.EdgeSource)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SourceSummaryMutation) EdgeCleared(name string) bool {
	switch name {
	case sourcesummary.EdgeTask:
		return m.clearedtask
	case sourcesummary.EdgeSource:
		return m.clearedsource
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SourceSummaryMutation) ClearEdge(name string) error {
	switch name {
	case sourcesummary.EdgeTask:
		m.ClearTask()
		return nil
	case sourcesummary.EdgeSource:
		m.ClearSource()
		return nil
	}
	return fmt.Errorf("unknown SourceSummary unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SourceSummaryMutation) ResetEdge(name string) error {
	switch name {
	case sourcesummary.EdgeTask:
		m.ResetTask()
		return nil
	case sourcesummary.EdgeSource:
		m.ResetSource()
		return nil
	}
	return fmt.Errorf("unknown SourceSummary edge %s", name)
}

// SpikyPOVMutation represents an operation that mutates the SpikyPOV nodes in the graph.
type SpikyPOVMutation struct {
	config
	op                Op
	typ               string
	id                *string
	kind              *spikypov.Kind
	statement         *string
	reasoning         *string
	insight_ids       *[]string
	appendinsight_ids []string
	position          *int
	addposition       *int
	created_at        *time.Time
	clearedFields     map[string]struct{}
	task              *string
	clearedtask       bool
	done              bool
	oldValue          func(context.Context) (*SpikyPOV, error)
	predicates        []predicate.SpikyPOV
}

var _ ent.Mutation = (*SpikyPOVMutation)(nil)

// spikypovOption allows management of the mutation configuration using functional options.
type spikypovOption func(*SpikyPOVMutation)

// newSpikyPOVMutation creates new mutation for the SpikyPOV entity.
func newSpikyPOVMutation(c config, op Op, opts ...spikypovOption) *SpikyPOVMutation {
	m := &SpikyPOVMutation{
		config:        c,
		op:            op,
		typ:           TypeSpikyPOV,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSpikyPOVID sets the ID field of the mutation.
func withSpikyPOVID(id string) spikypovOption {
	return func(m *SpikyPOVMutation) {
		var (
			err   error
			once  sync.Once
			value *SpikyPOV
		)
		m.oldValue = func(ctx context.Context) (*SpikyPOV, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SpikyPOV.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSpikyPOV sets the old SpikyPOV of the mutation.
func withSpikyPOV(node *SpikyPOV) spikypovOption {
	return func(m *SpikyPOVMutation) {
		m.oldValue = func(context.Context) (*SpikyPOV, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SpikyPOVMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SpikyPOVMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SpikyPOV entities.
func (m *SpikyPOVMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SpikyPOVMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SpikyPOVMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SpikyPOV.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *SpikyPOVMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *SpikyPOVMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the SpikyPOV entity.
// If the SpikyPOV object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpikyPOVMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *SpikyPOVMutation) ResetTaskID() {
	m.task = nil
}

// SetKind sets the "kind" field.
func (m *SpikyPOVMutation) SetKind(s spikypov.Kind) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *SpikyPOVMutation) Kind() (r spikypov.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the SpikyPOV entity.
// If the SpikyPOV object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpikyPOVMutation) OldKind(ctx context.Context) (v spikypov.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *SpikyPOVMutation) ResetKind() {
	m.kind = nil
}

// SetStatement sets the "statement" field.
func (m *SpikyPOVMutation) SetStatement(s string) {
	m.statement = &s
}

// Statement returns the value of the "statement" field in the mutation.
func (m *SpikyPOVMutation) Statement() (r string, exists bool) {
	v := m.statement
	if v == nil {
		return
	}
	return *v, true
}

// OldStatement returns the old "statement" field's value of the SpikyPOV entity.
// If the SpikyPOV object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpikyPOVMutation) OldStatement(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatement is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatement requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatement: %w", err)
	}
	return oldValue.Statement, nil
}

// ResetStatement resets all changes to the "statement" field.
func (m *SpikyPOVMutation) ResetStatement() {
	m.statement = nil
}

// SetReasoning sets the "reasoning" field.
func (m *SpikyPOVMutation) SetReasoning(s string) {
	m.reasoning = &s
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *SpikyPOVMutation) Reasoning() (r string, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the SpikyPOV entity.
// If the SpikyPOV object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpikyPOVMutation) OldReasoning(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *SpikyPOVMutation) ResetReasoning() {
	m.reasoning = nil
}

// SetInsightIds sets the "insight_ids" field.
func (m *SpikyPOVMutation) SetInsightIds(s []string) {
	m.insight_ids = &s
	m.appendinsight_ids = nil
}

// InsightIds returns the value of the "insight_ids" field in the mutation.
func (m *SpikyPOVMutation) InsightIds() (r []string, exists bool) {
	v := m.insight_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldInsightIds returns the old "insight_ids" field's value of the SpikyPOV entity.
// If the SpikyPOV object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpikyPOVMutation) OldInsightIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInsightIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInsightIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInsightIds: %w", err)
	}
	return oldValue.InsightIds, nil
}

// AppendInsightIds adds s to the "insight_ids" field.
func (m *SpikyPOVMutation) AppendInsightIds(s []string) {
	m.appendinsight_ids = append(m.appendinsight_ids, s...)
}

// AppendedInsightIds returns the list of values that were appended to the "insight_ids" field in this mutation.
func (m *SpikyPOVMutation) AppendedInsightIds() ([]string, bool) {
	if len(m.appendinsight_ids) == 0 {
		return nil, false
	}
	return m.appendinsight_ids, true
}

// ResetInsightIds resets all changes to the "insight_ids" field.
func (m *SpikyPOVMutation) ResetInsightIds() {
	m.insight_ids = nil
	m.appendinsight_ids = nil
}

// SetPosition sets the "position" field.
func (m *SpikyPOVMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *SpikyPOVMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the SpikyPOV entity.
// If the SpikyPOV object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpikyPOVMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *SpikyPOVMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *SpikyPOVMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *SpikyPOVMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SpikyPOVMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SpikyPOVMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SpikyPOV entity.
// If the SpikyPOV object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpikyPOVMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SpikyPOVMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the ResearchTask entity.
func (m *SpikyPOVMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[spikypov.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the ResearchTask entity was cleared.
func (m *SpikyPOVMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *SpikyPOVMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *SpikyPOVMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the SpikyPOVMutation builder.
func (m *SpikyPOVMutation) Where(ps ...predicate.SpikyPOV) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SpikyPOVMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SpikyPOVMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SpikyPOV, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SpikyPOVMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SpikyPOVMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SpikyPOV).
func (m *SpikyPOVMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SpikyPOVMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.task != nil {
		fields = append(fields, spikypov.FieldTaskID)
	}
	if m.kind != nil {
		fields = append(fields, spikypov.FieldKind)
	}
	if m.statement != nil {
		fields = append(fields, spikypov.FieldStatement)
	}
	if m.reasoning != nil {
		fields = append(fields, spikypov.FieldReasoning)
	}
	if m.insight_ids != nil {
		fields = append(fields, spikypov.FieldInsightIds)
	}
	if m.position != nil {
		fields = append(fields, spikypov.FieldPosition)
	}
	if m.created_at != nil {
		fields = append(fields, spikypov.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SpikyPOVMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case spikypov.FieldTaskID:
		return m.TaskID()
	case spikypov.FieldKind:
		return m.Kind()
	case spikypov.FieldStatement:
		return m.Statement()
	case spikypov.FieldReasoning:
		return m.Reasoning()
	case spikypov.FieldInsightIds:
		return m.InsightIds()
	case spikypov.FieldPosition:
		return m.Position()
	case spikypov.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SpikyPOVMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case spikypov.FieldTaskID:
		return m.OldTaskID(ctx)
	case spikypov.FieldKind:
		return m.OldKind(ctx)
	case spikypov.FieldStatement:
		return m.OldStatement(ctx)
	case spikypov.FieldReasoning:
		return m.OldReasoning(ctx)
	case spikypov.FieldInsightIds:
		return m.OldInsightIds(ctx)
	case spikypov.FieldPosition:
		return m.OldPosition(ctx)
	case spikypov.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SpikyPOV field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SpikyPOVMutation) SetField(name string, value ent.Value) error {
	switch name {
	case spikypov.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case spikypov.FieldKind:
		v, ok := value.(spikypov.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case spikypov.FieldStatement:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatement(v)
		return nil
	case spikypov.FieldReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	case spikypov.FieldInsightIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInsightIds(v)
		return nil
	case spikypov.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case spikypov.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SpikyPOV field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SpikyPOVMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, spikypov.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SpikyPOVMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case spikypov.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SpikyPOVMutation) AddField(name string, value ent.Value) error {
	switch name {
	case spikypov.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown SpikyPOV numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SpikyPOVMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SpikyPOVMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SpikyPOVMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SpikyPOV nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SpikyPOVMutation) ResetField(name string) error {
	switch name {
	case spikypov.FieldTaskID:
		m.ResetTaskID()
		return nil
	case spikypov.FieldKind:
		m.ResetKind()
		return nil
	case spikypov.FieldStatement:
		m.ResetStatement()
		return nil
	case spikypov.FieldReasoning:
		m.ResetReasoning()
		return nil
	case spikypov.FieldInsightIds:
		m.ResetInsightIds()
		return nil
	case spikypov.FieldPosition:
		m.ResetPosition()
		return nil
	case spikypov.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SpikyPOV field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SpikyPOVMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, spikypov.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SpikyPOVMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case spikypov.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SpikyPOVMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SpikyPOVMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SpikyPOVMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, spikypov.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SpikyPOVMutation) EdgeCleared(name string) bool {
	switch name {
	case spikypov.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SpikyPOVMutation) ClearEdge(name string) error {
	switch name {
	case spikypov.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown SpikyPOV unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SpikyPOVMutation) ResetEdge(name string) error {
	switch name {
	case spikypov.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown SpikyPOV edge %s", name)
}
