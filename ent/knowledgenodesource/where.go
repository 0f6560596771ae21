// Code generated by ent, DO NOT EDIT.

package knowledgenodesource

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/trilogy-group/nexus-agents/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldContainsFold(FieldID, id))
}

// NodeID applies equality check predicate on the "node_id" field. It's identical to NodeIDEQ.
func NodeID(v string) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldEQ(FieldNodeID, v))
}

// SourceID applies equality check predicate on the "source_id" field. It's identical to SourceIDEQ.
func SourceID(v string) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldEQ(FieldSourceID, v))
}

// RelevanceScore applies equality check predicate on the "relevance_score" field. It's identical to RelevanceScoreEQ.
func RelevanceScore(v float64) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldEQ(FieldRelevanceScore, v))
}

// NodeIDEQ applies the EQ predicate on the "node_id" field.
func NodeIDEQ(v string) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldEQ(FieldNodeID, v))
}

// NodeIDNEQ applies the NEQ predicate on the "node_id" field.
func NodeIDNEQ(v string) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldNEQ(FieldNodeID, v))
}

// NodeIDIn applies the In predicate on the "node_id" field.
func NodeIDIn(vs ...string) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldIn(FieldNodeID, vs...))
}

// NodeIDNotIn applies the NotIn predicate on the "node_id" field.
func NodeIDNotIn(vs ...string) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldNotIn(FieldNodeID, vs...))
}

// NodeIDGT applies the GT predicate on the "node_id" field.
func NodeIDGT(v string) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldGT(FieldNodeID, v))
}

// NodeIDGTE applies the GTE predicate on the "node_id" field.
func NodeIDGTE(v string) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldGTE(FieldNodeID, v))
}

// NodeIDLT applies the LT predicate on the "node_id" field.
func NodeIDLT(v string) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldLT(FieldNodeID, v))
}

// NodeIDLTE applies the LTE predicate on the "node_id" field.
func NodeIDLTE(v string) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldLTE(FieldNodeID, v))
}

// NodeIDContains applies the Contains predicate on the "node_id" field.
func NodeIDContains(v string) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldContains(FieldNodeID, v))
}

// NodeIDHasPrefix applies the HasPrefix predicate on the "node_id" field.
func NodeIDHasPrefix(v string) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldHasPrefix(FieldNodeID, v))
}

// NodeIDHasSuffix applies the HasSuffix predicate on the "node_id" field.
func NodeIDHasSuffix(v string) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldHasSuffix(FieldNodeID, v))
}

// NodeIDEqualFold applies the EqualFold predicate on the "node_id" field.
func NodeIDEqualFold(v string) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldEqualFold(FieldNodeID, v))
}

// NodeIDContainsFold applies the ContainsFold predicate on the "node_id" field.
func NodeIDContainsFold(v string) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldContainsFold(FieldNodeID, v))
}

// SourceIDEQ applies the EQ predicate on the "source_id" field.
func SourceIDEQ(v string) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldEQ(FieldSourceID, v))
}

// SourceIDNEQ applies the NEQ predicate on the "source_id" field.
func SourceIDNEQ(v string) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldNEQ(FieldSourceID, v))
}

// SourceIDIn applies the In predicate on the "source_id" field.
func SourceIDIn(vs ...string) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldIn(FieldSourceID, vs...))
}

// SourceIDNotIn applies the NotIn predicate on the "source_id" field.
func SourceIDNotIn(vs ...string) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldNotIn(FieldSourceID, vs...))
}

// SourceIDGT applies the GT predicate on the "source_id" field.
func SourceIDGT(v string) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldGT(FieldSourceID, v))
}

// SourceIDGTE applies the GTE predicate on the "source_id" field.
func SourceIDGTE(v string) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldGTE(FieldSourceID, v))
}

// SourceIDLT applies the LT predicate on the "source_id" field.
func SourceIDLT(v string) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldLT(FieldSourceID, v))
}

// SourceIDLTE applies the LTE predicate on the "source_id" field.
func SourceIDLTE(v string) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldLTE(FieldSourceID, v))
}

// SourceIDContains applies the Contains predicate on the "source_id" field.
func SourceIDContains(v string) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldContains(FieldSourceID, v))
}

// SourceIDHasPrefix applies the HasPrefix predicate on the "source_id" field.
func SourceIDHasPrefix(v string) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldHasPrefix(FieldSourceID, v))
}

// SourceIDHasSuffix applies the HasSuffix predicate on the "source_id" field.
func SourceIDHasSuffix(v string) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldHasSuffix(FieldSourceID, v))
}

// SourceIDEqualFold applies the EqualFold predicate on the "source_id" field.
func SourceIDEqualFold(v string) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldEqualFold(FieldSourceID, v))
}

// SourceIDContainsFold applies the ContainsFold predicate on the "source_id" field.
func SourceIDContainsFold(v string) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldContainsFold(FieldSourceID, v))
}

// RelevanceScoreEQ applies the EQ predicate on the "relevance_score" field.
func RelevanceScoreEQ(v float64) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldEQ(FieldRelevanceScore, v))
}

// RelevanceScoreNEQ applies the NEQ predicate on the "relevance_score" field.
func RelevanceScoreNEQ(v float64) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldNEQ(FieldRelevanceScore, v))
}

// RelevanceScoreIn applies the In predicate on the "relevance_score" field.
func RelevanceScoreIn(vs ...float64) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldIn(FieldRelevanceScore, vs...))
}

// RelevanceScoreNotIn applies the NotIn predicate on the "relevance_score" field.
func RelevanceScoreNotIn(vs ...float64) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldNotIn(FieldRelevanceScore, vs...))
}

// RelevanceScoreGT applies the GT predicate on the "relevance_score" field.
func RelevanceScoreGT(v float64) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldGT(FieldRelevanceScore, v))
}

// RelevanceScoreGTE applies the GTE predicate on the "relevance_score" field.
func RelevanceScoreGTE(v float64) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldGTE(FieldRelevanceScore, v))
}

// RelevanceScoreLT applies the LT predicate on the "relevance_score" field.
func RelevanceScoreLT(v float64) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldLT(FieldRelevanceScore, v))
}

// RelevanceScoreLTE applies the LTE predicate on the "relevance_score" field.
func RelevanceScoreLTE(v float64) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.FieldLTE(FieldRelevanceScore, v))
}

// HasNode applies the HasEdge predicate on the "node" edge.
func HasNode() predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, NodeTable, NodeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasNodeWith applies the HasEdge predicate on the "node" edge with a given conditions (other predicates).
func HasNodeWith(preds ...predicate.KnowledgeNode) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(func(s *sql.Selector) {
		step := newNodeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSource applies the HasEdge predicate on the "source" edge.
func HasSource() predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SourceTable, SourceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSourceWith applies the HasEdge predicate on the "source" edge with a given conditions (other predicates).
func HasSourceWith(preds ...predicate.Source) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(func(s *sql.Selector) {
		step := newSourceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.KnowledgeNodeSource) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.KnowledgeNodeSource) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.KnowledgeNodeSource) predicate.KnowledgeNodeSource {
	return predicate.KnowledgeNodeSource(sql.NotPredicates(p))
}
