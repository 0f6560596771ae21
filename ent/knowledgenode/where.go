// Code generated by ent, DO NOT EDIT.

package knowledgenode

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/trilogy-group/nexus-agents/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEQ(FieldTaskID, v))
}

// ParentID applies equality check predicate on the "parent_id" field. It's identical to ParentIDEQ.
func ParentID(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEQ(FieldParentID, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEQ(FieldCategory, v))
}

// Subcategory applies equality check predicate on the "subcategory" field. It's identical to SubcategoryEQ.
func Subcategory(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEQ(FieldSubcategory, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEQ(FieldSummary, v))
}

// DokLevel applies equality check predicate on the "dok_level" field. It's identical to DokLevelEQ.
func DokLevel(v int) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEQ(FieldDokLevel, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEQ(FieldPosition, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEQ(FieldCreatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldContainsFold(FieldTaskID, v))
}

// ParentIDEQ applies the EQ predicate on the "parent_id" field.
func ParentIDEQ(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEQ(FieldParentID, v))
}

// ParentIDNEQ applies the NEQ predicate on the "parent_id" field.
func ParentIDNEQ(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNEQ(FieldParentID, v))
}

// ParentIDIn applies the In predicate on the "parent_id" field.
func ParentIDIn(vs ...string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldIn(FieldParentID, vs...))
}

// ParentIDNotIn applies the NotIn predicate on the "parent_id" field.
func ParentIDNotIn(vs ...string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNotIn(FieldParentID, vs...))
}

// ParentIDGT applies the GT predicate on the "parent_id" field.
func ParentIDGT(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldGT(FieldParentID, v))
}

// ParentIDGTE applies the GTE predicate on the "parent_id" field.
func ParentIDGTE(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldGTE(FieldParentID, v))
}

// ParentIDLT applies the LT predicate on the "parent_id" field.
func ParentIDLT(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldLT(FieldParentID, v))
}

// ParentIDLTE applies the LTE predicate on the "parent_id" field.
func ParentIDLTE(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldLTE(FieldParentID, v))
}

// ParentIDContains applies the Contains predicate on the "parent_id" field.
func ParentIDContains(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldContains(FieldParentID, v))
}

// ParentIDHasPrefix applies the HasPrefix predicate on the "parent_id" field.
func ParentIDHasPrefix(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldHasPrefix(FieldParentID, v))
}

// ParentIDHasSuffix applies the HasSuffix predicate on the "parent_id" field.
func ParentIDHasSuffix(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldHasSuffix(FieldParentID, v))
}

// ParentIDIsNil applies the IsNil predicate on the "parent_id" field.
func ParentIDIsNil() predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldIsNull(FieldParentID))
}

// ParentIDNotNil applies the NotNil predicate on the "parent_id" field.
func ParentIDNotNil() predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNotNull(FieldParentID))
}

// ParentIDEqualFold applies the EqualFold predicate on the "parent_id" field.
func ParentIDEqualFold(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEqualFold(FieldParentID, v))
}

// ParentIDContainsFold applies the ContainsFold predicate on the "parent_id" field.
func ParentIDContainsFold(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldContainsFold(FieldParentID, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldContainsFold(FieldCategory, v))
}

// SubcategoryEQ applies the EQ predicate on the "subcategory" field.
func SubcategoryEQ(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEQ(FieldSubcategory, v))
}

// SubcategoryNEQ applies the NEQ predicate on the "subcategory" field.
func SubcategoryNEQ(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNEQ(FieldSubcategory, v))
}

// SubcategoryIn applies the In predicate on the "subcategory" field.
func SubcategoryIn(vs ...string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldIn(FieldSubcategory, vs...))
}

// SubcategoryNotIn applies the NotIn predicate on the "subcategory" field.
func SubcategoryNotIn(vs ...string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNotIn(FieldSubcategory, vs...))
}

// SubcategoryGT applies the GT predicate on the "subcategory" field.
func SubcategoryGT(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldGT(FieldSubcategory, v))
}

// SubcategoryGTE applies the GTE predicate on the "subcategory" field.
func SubcategoryGTE(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldGTE(FieldSubcategory, v))
}

// SubcategoryLT applies the LT predicate on the "subcategory" field.
func SubcategoryLT(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldLT(FieldSubcategory, v))
}

// SubcategoryLTE applies the LTE predicate on the "subcategory" field.
func SubcategoryLTE(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldLTE(FieldSubcategory, v))
}

// SubcategoryContains applies the Contains predicate on the "subcategory" field.
func SubcategoryContains(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldContains(FieldSubcategory, v))
}

// SubcategoryHasPrefix applies the HasPrefix predicate on the "subcategory" field.
func SubcategoryHasPrefix(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldHasPrefix(FieldSubcategory, v))
}

// SubcategoryHasSuffix applies the HasSuffix predicate on the "subcategory" field.
func SubcategoryHasSuffix(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldHasSuffix(FieldSubcategory, v))
}

// SubcategoryIsNil applies the IsNil predicate on the "subcategory" field.
func SubcategoryIsNil() predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldIsNull(FieldSubcategory))
}

// SubcategoryNotNil applies the NotNil predicate on the "subcategory" field.
func SubcategoryNotNil() predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNotNull(FieldSubcategory))
}

// SubcategoryEqualFold applies the EqualFold predicate on the "subcategory" field.
func SubcategoryEqualFold(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEqualFold(FieldSubcategory, v))
}

// SubcategoryContainsFold applies the ContainsFold predicate on the "subcategory" field.
func SubcategoryContainsFold(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldContainsFold(FieldSubcategory, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldContainsFold(FieldSummary, v))
}

// DokLevelEQ applies the EQ predicate on the "dok_level" field.
func DokLevelEQ(v int) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEQ(FieldDokLevel, v))
}

// DokLevelNEQ applies the NEQ predicate on the "dok_level" field.
func DokLevelNEQ(v int) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNEQ(FieldDokLevel, v))
}

// DokLevelIn applies the In predicate on the "dok_level" field.
func DokLevelIn(vs ...int) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldIn(FieldDokLevel, vs...))
}

// DokLevelNotIn applies the NotIn predicate on the "dok_level" field.
func DokLevelNotIn(vs ...int) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNotIn(FieldDokLevel, vs...))
}

// DokLevelGT applies the GT predicate on the "dok_level" field.
func DokLevelGT(v int) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldGT(FieldDokLevel, v))
}

// DokLevelGTE applies the GTE predicate on the "dok_level" field.
func DokLevelGTE(v int) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldGTE(FieldDokLevel, v))
}

// DokLevelLT applies the LT predicate on the "dok_level" field.
func DokLevelLT(v int) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldLT(FieldDokLevel, v))
}

// DokLevelLTE applies the LTE predicate on the "dok_level" field.
func DokLevelLTE(v int) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldLTE(FieldDokLevel, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldLTE(FieldPosition, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.KnowledgeNode {
	return predicate.KnowledgeNode(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.ResearchTask) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSourceLinks applies the HasEdge predicate on the "source_links" edge.
func HasSourceLinks() predicate.KnowledgeNode {
	return predicate.KnowledgeNode(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SourceLinksTable, SourceLinksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSourceLinksWith applies the HasEdge predicate on the "source_links" edge with a given conditions (other predicates).
func HasSourceLinksWith(preds ...predicate.KnowledgeNodeSource) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(func(s *sql.Selector) {
		step := newSourceLinksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.KnowledgeNode) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.KnowledgeNode) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.KnowledgeNode) predicate.KnowledgeNode {
	return predicate.KnowledgeNode(sql.NotPredicates(p))
}
