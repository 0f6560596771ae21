// Code generated by ent, DO NOT EDIT.

package sourcesummary

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/trilogy-group/nexus-agents/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldEQ(FieldTaskID, v))
}

// SourceID applies equality check predicate on the "source_id" field. It's identical to SourceIDEQ.
func SourceID(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldEQ(FieldSourceID, v))
}

// Subtopic applies equality check predicate on the "subtopic" field. It's identical to SubtopicEQ.
func Subtopic(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldEQ(FieldSubtopic, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldEQ(FieldSummary, v))
}

// DokLevel applies equality check predicate on the "dok_level" field. It's identical to DokLevelEQ.
func DokLevel(v int) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldEQ(FieldDokLevel, v))
}

// SupersededBy applies equality check predicate on the "superseded_by" field. It's identical to SupersededByEQ.
func SupersededBy(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldEQ(FieldSupersededBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldEQ(FieldCreatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldContainsFold(FieldTaskID, v))
}

// SourceIDEQ applies the EQ predicate on the "source_id" field.
func SourceIDEQ(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldEQ(FieldSourceID, v))
}

// SourceIDNEQ applies the NEQ predicate on the "source_id" field.
func SourceIDNEQ(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldNEQ(FieldSourceID, v))
}

// SourceIDIn applies the In predicate on the "source_id" field.
func SourceIDIn(vs ...string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldIn(FieldSourceID, vs...))
}

// SourceIDNotIn applies the NotIn predicate on the "source_id" field.
func SourceIDNotIn(vs ...string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldNotIn(FieldSourceID, vs...))
}

// SourceIDGT applies the GT predicate on the "source_id" field.
func SourceIDGT(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldGT(FieldSourceID, v))
}

// SourceIDGTE applies the GTE predicate on the "source_id" field.
func SourceIDGTE(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldGTE(FieldSourceID, v))
}

// SourceIDLT applies the LT predicate on the "source_id" field.
func SourceIDLT(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldLT(FieldSourceID, v))
}

// SourceIDLTE applies the LTE predicate on the "source_id" field.
func SourceIDLTE(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldLTE(FieldSourceID, v))
}

// SourceIDContains applies the Contains predicate on the "source_id" field.
func SourceIDContains(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldContains(FieldSourceID, v))
}

// SourceIDHasPrefix applies the HasPrefix predicate on the "source_id" field.
func SourceIDHasPrefix(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldHasPrefix(FieldSourceID, v))
}

// SourceIDHasSuffix applies the HasSuffix predicate on the "source_id" field.
func SourceIDHasSuffix(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldHasSuffix(FieldSourceID, v))
}

// SourceIDEqualFold applies the EqualFold predicate on the "source_id" field.
func SourceIDEqualFold(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldEqualFold(FieldSourceID, v))
}

// SourceIDContainsFold applies the ContainsFold predicate on the "source_id" field.
func SourceIDContainsFold(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldContainsFold(FieldSourceID, v))
}

// SubtopicEQ applies the EQ predicate on the "subtopic" field.
func SubtopicEQ(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldEQ(FieldSubtopic, v))
}

// SubtopicNEQ applies the NEQ predicate on the "subtopic" field.
func SubtopicNEQ(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldNEQ(FieldSubtopic, v))
}

// SubtopicIn applies the In predicate on the "subtopic" field.
func SubtopicIn(vs ...string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldIn(FieldSubtopic, vs...))
}

// SubtopicNotIn applies the NotIn predicate on the "subtopic" field.
func SubtopicNotIn(vs ...string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldNotIn(FieldSubtopic, vs...))
}

// SubtopicGT applies the GT predicate on the "subtopic" field.
func SubtopicGT(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldGT(FieldSubtopic, v))
}

// SubtopicGTE applies the GTE predicate on the "subtopic" field.
func SubtopicGTE(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldGTE(FieldSubtopic, v))
}

// SubtopicLT applies the LT predicate on the "subtopic" field.
func SubtopicLT(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldLT(FieldSubtopic, v))
}

// SubtopicLTE applies the LTE predicate on the "subtopic" field.
func SubtopicLTE(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldLTE(FieldSubtopic, v))
}

// SubtopicContains applies the Contains predicate on the "subtopic" field.
func SubtopicContains(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldContains(FieldSubtopic, v))
}

// SubtopicHasPrefix applies the HasPrefix predicate on the "subtopic" field.
func SubtopicHasPrefix(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldHasPrefix(FieldSubtopic, v))
}

// SubtopicHasSuffix applies the HasSuffix predicate on the "subtopic" field.
func SubtopicHasSuffix(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldHasSuffix(FieldSubtopic, v))
}

// SubtopicIsNil applies the IsNil predicate on the "subtopic" field.
func SubtopicIsNil() predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldIsNull(FieldSubtopic))
}

// SubtopicNotNil applies the NotNil predicate on the "subtopic" field.
func SubtopicNotNil() predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldNotNull(FieldSubtopic))
}

// SubtopicEqualFold applies the EqualFold predicate on the "subtopic" field.
func SubtopicEqualFold(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldEqualFold(FieldSubtopic, v))
}

// SubtopicContainsFold applies the ContainsFold predicate on the "subtopic" field.
func SubtopicContainsFold(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldContainsFold(FieldSubtopic, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldContainsFold(FieldSummary, v))
}

// DokLevelEQ applies the EQ predicate on the "dok_level" field.
func DokLevelEQ(v int) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldEQ(FieldDokLevel, v))
}

// DokLevelNEQ applies the NEQ predicate on the "dok_level" field.
func DokLevelNEQ(v int) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldNEQ(FieldDokLevel, v))
}

// DokLevelIn applies the In predicate on the "dok_level" field.
func DokLevelIn(vs ...int) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldIn(FieldDokLevel, vs...))
}

// DokLevelNotIn applies the NotIn predicate on the "dok_level" field.
func DokLevelNotIn(vs ...int) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldNotIn(FieldDokLevel, vs...))
}

// DokLevelGT applies the GT predicate on the "dok_level" field.
func DokLevelGT(v int) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldGT(FieldDokLevel, v))
}

// DokLevelGTE applies the GTE predicate on the "dok_level" field.
func DokLevelGTE(v int) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldGTE(FieldDokLevel, v))
}

// DokLevelLT applies the LT predicate on the "dok_level" field.
func DokLevelLT(v int) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldLT(FieldDokLevel, v))
}

// DokLevelLTE applies the LTE predicate on the "dok_level" field.
func DokLevelLTE(v int) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldLTE(FieldDokLevel, v))
}

// SupersededByEQ applies the EQ predicate on the "superseded_by" field.
func SupersededByEQ(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldEQ(FieldSupersededBy, v))
}

// SupersededByNEQ applies the NEQ predicate on the "superseded_by" field.
func SupersededByNEQ(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldNEQ(FieldSupersededBy, v))
}

// SupersededByIn applies the In predicate on the "superseded_by" field.
func SupersededByIn(vs ...string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldIn(FieldSupersededBy, vs...))
}

// SupersededByNotIn applies the NotIn predicate on the "superseded_by" field.
func SupersededByNotIn(vs ...string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldNotIn(FieldSupersededBy, vs...))
}

// SupersededByGT applies the GT predicate on the "superseded_by" field.
func SupersededByGT(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldGT(FieldSupersededBy, v))
}

// SupersededByGTE applies the GTE predicate on the "superseded_by" field.
func SupersededByGTE(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldGTE(FieldSupersededBy, v))
}

// SupersededByLT applies the LT predicate on the "superseded_by" field.
func SupersededByLT(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldLT(FieldSupersededBy, v))
}

// SupersededByLTE applies the LTE predicate on the "superseded_by" field.
func SupersededByLTE(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldLTE(FieldSupersededBy, v))
}

// SupersededByContains applies the Contains predicate on the "superseded_by" field.
func SupersededByContains(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldContains(FieldSupersededBy, v))
}

// SupersededByHasPrefix applies the HasPrefix predicate on the "superseded_by" field.
func SupersededByHasPrefix(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldHasPrefix(FieldSupersededBy, v))
}

// SupersededByHasSuffix applies the HasSuffix predicate on the "superseded_by" field.
func SupersededByHasSuffix(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldHasSuffix(FieldSupersededBy, v))
}

// SupersededByIsNil applies the IsNil predicate on the "superseded_by" field.
func SupersededByIsNil() predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldIsNull(FieldSupersededBy))
}

// SupersededByNotNil applies the NotNil predicate on the "superseded_by" field.
func SupersededByNotNil() predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldNotNull(FieldSupersededBy))
}

// SupersededByEqualFold applies the EqualFold predicate on the "superseded_by" field.
func SupersededByEqualFold(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldEqualFold(FieldSupersededBy, v))
}

// SupersededByContainsFold applies the ContainsFold predicate on the "superseded_by" field.
func SupersededByContainsFold(v string) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldContainsFold(FieldSupersededBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SourceSummary {
	return predicate.SourceSummary(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.SourceSummary {
	return predicate.SourceSummary(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.ResearchTask) predicate.SourceSummary {
	return predicate.SourceSummary(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSource applies the HasEdge predicate on the "source" edge.
func HasSource() predicate.SourceSummary {
	return predicate.SourceSummary(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SourceTable, SourceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSourceWith applies the HasEdge predicate on the "source" edge with a given conditions (other predicates).
func HasSourceWith(preds ...predicate.Source) predicate.SourceSummary {
	return predicate.SourceSummary(func(s *sql.Selector) {
		step := newSourceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SourceSummary) predicate.SourceSummary {
	return predicate.SourceSummary(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SourceSummary) predicate.SourceSummary {
	return predicate.SourceSummary(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SourceSummary) predicate.SourceSummary {
	return predicate.SourceSummary(sql.NotPredicates(p))
}
