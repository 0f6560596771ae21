// Code generated by ent, DO NOT EDIT.

package aggregatedentity

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/trilogy-group/nexus-agents/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldContainsFold(FieldID, id))
}

// ScopeID applies equality check predicate on the "scope_id" field. It's identical to ScopeIDEQ.
func ScopeID(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldEQ(FieldScopeID, v))
}

// EntityType applies equality check predicate on the "entity_type" field. It's identical to EntityTypeEQ.
func EntityType(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldEQ(FieldEntityType, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldEQ(FieldName, v))
}

// NormalizedName applies equality check predicate on the "normalized_name" field. It's identical to NormalizedNameEQ.
func NormalizedName(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldEQ(FieldNormalizedName, v))
}

// UniqueIdentifier applies equality check predicate on the "unique_identifier" field. It's identical to UniqueIdentifierEQ.
func UniqueIdentifier(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldEQ(FieldUniqueIdentifier, v))
}

// ConfidenceScore applies equality check predicate on the "confidence_score" field. It's identical to ConfidenceScoreEQ.
func ConfidenceScore(v float64) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldEQ(FieldConfidenceScore, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldEQ(FieldUpdatedAt, v))
}

// ScopeIDEQ applies the EQ predicate on the "scope_id" field.
func ScopeIDEQ(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldEQ(FieldScopeID, v))
}

// ScopeIDNEQ applies the NEQ predicate on the "scope_id" field.
func ScopeIDNEQ(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldNEQ(FieldScopeID, v))
}

// ScopeIDIn applies the In predicate on the "scope_id" field.
func ScopeIDIn(vs ...string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldIn(FieldScopeID, vs...))
}

// ScopeIDNotIn applies the NotIn predicate on the "scope_id" field.
func ScopeIDNotIn(vs ...string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldNotIn(FieldScopeID, vs...))
}

// ScopeIDGT applies the GT predicate on the "scope_id" field.
func ScopeIDGT(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldGT(FieldScopeID, v))
}

// ScopeIDGTE applies the GTE predicate on the "scope_id" field.
func ScopeIDGTE(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldGTE(FieldScopeID, v))
}

// ScopeIDLT applies the LT predicate on the "scope_id" field.
func ScopeIDLT(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldLT(FieldScopeID, v))
}

// ScopeIDLTE applies the LTE predicate on the "scope_id" field.
func ScopeIDLTE(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldLTE(FieldScopeID, v))
}

// ScopeIDContains applies the Contains predicate on the "scope_id" field.
func ScopeIDContains(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldContains(FieldScopeID, v))
}

// ScopeIDHasPrefix applies the HasPrefix predicate on the "scope_id" field.
func ScopeIDHasPrefix(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldHasPrefix(FieldScopeID, v))
}

// ScopeIDHasSuffix applies the HasSuffix predicate on the "scope_id" field.
func ScopeIDHasSuffix(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldHasSuffix(FieldScopeID, v))
}

// ScopeIDEqualFold applies the EqualFold predicate on the "scope_id" field.
func ScopeIDEqualFold(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldEqualFold(FieldScopeID, v))
}

// ScopeIDContainsFold applies the ContainsFold predicate on the "scope_id" field.
func ScopeIDContainsFold(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldContainsFold(FieldScopeID, v))
}

// EntityTypeEQ applies the EQ predicate on the "entity_type" field.
func EntityTypeEQ(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldEQ(FieldEntityType, v))
}

// EntityTypeNEQ applies the NEQ predicate on the "entity_type" field.
func EntityTypeNEQ(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldNEQ(FieldEntityType, v))
}

// EntityTypeIn applies the In predicate on the "entity_type" field.
func EntityTypeIn(vs ...string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldIn(FieldEntityType, vs...))
}

// EntityTypeNotIn applies the NotIn predicate on the "entity_type" field.
func EntityTypeNotIn(vs ...string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldNotIn(FieldEntityType, vs...))
}

// EntityTypeGT applies the GT predicate on the "entity_type" field.
func EntityTypeGT(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldGT(FieldEntityType, v))
}

// EntityTypeGTE applies the GTE predicate on the "entity_type" field.
func EntityTypeGTE(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldGTE(FieldEntityType, v))
}

// EntityTypeLT applies the LT predicate on the "entity_type" field.
func EntityTypeLT(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldLT(FieldEntityType, v))
}

// EntityTypeLTE applies the LTE predicate on the "entity_type" field.
func EntityTypeLTE(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldLTE(FieldEntityType, v))
}

// EntityTypeContains applies the Contains predicate on the "entity_type" field.
func EntityTypeContains(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldContains(FieldEntityType, v))
}

// EntityTypeHasPrefix applies the HasPrefix predicate on the "entity_type" field.
func EntityTypeHasPrefix(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldHasPrefix(FieldEntityType, v))
}

// EntityTypeHasSuffix applies the HasSuffix predicate on the "entity_type" field.
func EntityTypeHasSuffix(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldHasSuffix(FieldEntityType, v))
}

// EntityTypeEqualFold applies the EqualFold predicate on the "entity_type" field.
func EntityTypeEqualFold(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldEqualFold(FieldEntityType, v))
}

// EntityTypeContainsFold applies the ContainsFold predicate on the "entity_type" field.
func EntityTypeContainsFold(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldContainsFold(FieldEntityType, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldContainsFold(FieldName, v))
}

// NormalizedNameEQ applies the EQ predicate on the "normalized_name" field.
func NormalizedNameEQ(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldEQ(FieldNormalizedName, v))
}

// NormalizedNameNEQ applies the NEQ predicate on the "normalized_name" field.
func NormalizedNameNEQ(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldNEQ(FieldNormalizedName, v))
}

// NormalizedNameIn applies the In predicate on the "normalized_name" field.
func NormalizedNameIn(vs ...string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldIn(FieldNormalizedName, vs...))
}

// NormalizedNameNotIn applies the NotIn predicate on the "normalized_name" field.
func NormalizedNameNotIn(vs ...string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldNotIn(FieldNormalizedName, vs...))
}

// NormalizedNameGT applies the GT predicate on the "normalized_name" field.
func NormalizedNameGT(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldGT(FieldNormalizedName, v))
}

// NormalizedNameGTE applies the GTE predicate on the "normalized_name" field.
func NormalizedNameGTE(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldGTE(FieldNormalizedName, v))
}

// NormalizedNameLT applies the LT predicate on the "normalized_name" field.
func NormalizedNameLT(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldLT(FieldNormalizedName, v))
}

// NormalizedNameLTE applies the LTE predicate on the "normalized_name" field.
func NormalizedNameLTE(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldLTE(FieldNormalizedName, v))
}

// NormalizedNameContains applies the Contains predicate on the "normalized_name" field.
func NormalizedNameContains(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldContains(FieldNormalizedName, v))
}

// NormalizedNameHasPrefix applies the HasPrefix predicate on the "normalized_name" field.
func NormalizedNameHasPrefix(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldHasPrefix(FieldNormalizedName, v))
}

// NormalizedNameHasSuffix applies the HasSuffix predicate on the "normalized_name" field.
func NormalizedNameHasSuffix(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldHasSuffix(FieldNormalizedName, v))
}

// NormalizedNameEqualFold applies the EqualFold predicate on the "normalized_name" field.
func NormalizedNameEqualFold(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldEqualFold(FieldNormalizedName, v))
}

// NormalizedNameContainsFold applies the ContainsFold predicate on the "normalized_name" field.
func NormalizedNameContainsFold(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldContainsFold(FieldNormalizedName, v))
}

// UniqueIdentifierEQ applies the EQ predicate on the "unique_identifier" field.
func UniqueIdentifierEQ(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldEQ(FieldUniqueIdentifier, v))
}

// UniqueIdentifierNEQ applies the NEQ predicate on the "unique_identifier" field.
func UniqueIdentifierNEQ(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldNEQ(FieldUniqueIdentifier, v))
}

// UniqueIdentifierIn applies the In predicate on the "unique_identifier" field.
func UniqueIdentifierIn(vs ...string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldIn(FieldUniqueIdentifier, vs...))
}

// UniqueIdentifierNotIn applies the NotIn predicate on the "unique_identifier" field.
func UniqueIdentifierNotIn(vs ...string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldNotIn(FieldUniqueIdentifier, vs...))
}

// UniqueIdentifierGT applies the GT predicate on the "unique_identifier" field.
func UniqueIdentifierGT(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldGT(FieldUniqueIdentifier, v))
}

// UniqueIdentifierGTE applies the GTE predicate on the "unique_identifier" field.
func UniqueIdentifierGTE(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldGTE(FieldUniqueIdentifier, v))
}

// UniqueIdentifierLT applies the LT predicate on the "unique_identifier" field.
func UniqueIdentifierLT(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldLT(FieldUniqueIdentifier, v))
}

// UniqueIdentifierLTE applies the LTE predicate on the "unique_identifier" field.
func UniqueIdentifierLTE(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldLTE(FieldUniqueIdentifier, v))
}

// UniqueIdentifierContains applies the Contains predicate on the "unique_identifier" field.
func UniqueIdentifierContains(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldContains(FieldUniqueIdentifier, v))
}

// UniqueIdentifierHasPrefix applies the HasPrefix predicate on the "unique_identifier" field.
func UniqueIdentifierHasPrefix(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldHasPrefix(FieldUniqueIdentifier, v))
}

// UniqueIdentifierHasSuffix applies the HasSuffix predicate on the "unique_identifier" field.
func UniqueIdentifierHasSuffix(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldHasSuffix(FieldUniqueIdentifier, v))
}

// UniqueIdentifierIsNil applies the IsNil predicate on the "unique_identifier" field.
func UniqueIdentifierIsNil() predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldIsNull(FieldUniqueIdentifier))
}

// UniqueIdentifierNotNil applies the NotNil predicate on the "unique_identifier" field.
func UniqueIdentifierNotNil() predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldNotNull(FieldUniqueIdentifier))
}

// UniqueIdentifierEqualFold applies the EqualFold predicate on the "unique_identifier" field.
func UniqueIdentifierEqualFold(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldEqualFold(FieldUniqueIdentifier, v))
}

// UniqueIdentifierContainsFold applies the ContainsFold predicate on the "unique_identifier" field.
func UniqueIdentifierContainsFold(v string) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldContainsFold(FieldUniqueIdentifier, v))
}

// ConfidenceScoreEQ applies the EQ predicate on the "confidence_score" field.
func ConfidenceScoreEQ(v float64) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreNEQ applies the NEQ predicate on the "confidence_score" field.
func ConfidenceScoreNEQ(v float64) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldNEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreIn applies the In predicate on the "confidence_score" field.
func ConfidenceScoreIn(vs ...float64) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreNotIn applies the NotIn predicate on the "confidence_score" field.
func ConfidenceScoreNotIn(vs ...float64) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldNotIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreGT applies the GT predicate on the "confidence_score" field.
func ConfidenceScoreGT(v float64) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldGT(FieldConfidenceScore, v))
}

// ConfidenceScoreGTE applies the GTE predicate on the "confidence_score" field.
func ConfidenceScoreGTE(v float64) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldGTE(FieldConfidenceScore, v))
}

// ConfidenceScoreLT applies the LT predicate on the "confidence_score" field.
func ConfidenceScoreLT(v float64) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldLT(FieldConfidenceScore, v))
}

// ConfidenceScoreLTE applies the LTE predicate on the "confidence_score" field.
func ConfidenceScoreLTE(v float64) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldLTE(FieldConfidenceScore, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AggregatedEntity) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AggregatedEntity) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AggregatedEntity) predicate.AggregatedEntity {
	return predicate.AggregatedEntity(sql.NotPredicates(p))
}
