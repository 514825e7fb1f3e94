// Code generated by ent, DO NOT EDIT.

package demoenvironment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/showroom-hq/showroom/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldContainsFold(FieldID, id))
}

// TemplateID applies equality check predicate on the "template_id" field. It's identical to TemplateIDEQ.
func TemplateID(v string) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldEQ(FieldTemplateID, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldEQ(FieldCreatedAt, v))
}

// LastInteractionAt applies equality check predicate on the "last_interaction_at" field. It's identical to LastInteractionAtEQ.
func LastInteractionAt(v time.Time) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldEQ(FieldLastInteractionAt, v))
}

// TemplateIDEQ applies the EQ predicate on the "template_id" field.
func TemplateIDEQ(v string) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldEQ(FieldTemplateID, v))
}

// TemplateIDNEQ applies the NEQ predicate on the "template_id" field.
func TemplateIDNEQ(v string) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldNEQ(FieldTemplateID, v))
}

// TemplateIDIn applies the In predicate on the "template_id" field.
func TemplateIDIn(vs ...string) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldIn(FieldTemplateID, vs...))
}

// TemplateIDNotIn applies the NotIn predicate on the "template_id" field.
func TemplateIDNotIn(vs ...string) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldNotIn(FieldTemplateID, vs...))
}

// TemplateIDGT applies the GT predicate on the "template_id" field.
func TemplateIDGT(v string) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldGT(FieldTemplateID, v))
}

// TemplateIDGTE applies the GTE predicate on the "template_id" field.
func TemplateIDGTE(v string) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldGTE(FieldTemplateID, v))
}

// TemplateIDLT applies the LT predicate on the "template_id" field.
func TemplateIDLT(v string) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldLT(FieldTemplateID, v))
}

// TemplateIDLTE applies the LTE predicate on the "template_id" field.
func TemplateIDLTE(v string) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldLTE(FieldTemplateID, v))
}

// TemplateIDContains applies the Contains predicate on the "template_id" field.
func TemplateIDContains(v string) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldContains(FieldTemplateID, v))
}

// TemplateIDHasPrefix applies the HasPrefix predicate on the "template_id" field.
func TemplateIDHasPrefix(v string) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldHasPrefix(FieldTemplateID, v))
}

// TemplateIDHasSuffix applies the HasSuffix predicate on the "template_id" field.
func TemplateIDHasSuffix(v string) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldHasSuffix(FieldTemplateID, v))
}

// TemplateIDEqualFold applies the EqualFold predicate on the "template_id" field.
func TemplateIDEqualFold(v string) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldEqualFold(FieldTemplateID, v))
}

// TemplateIDContainsFold applies the ContainsFold predicate on the "template_id" field.
func TemplateIDContainsFold(v string) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldContainsFold(FieldTemplateID, v))
}

// EnvTypeEQ applies the EQ predicate on the "env_type" field.
func EnvTypeEQ(v EnvType) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldEQ(FieldEnvType, v))
}

// EnvTypeNEQ applies the NEQ predicate on the "env_type" field.
func EnvTypeNEQ(v EnvType) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldNEQ(FieldEnvType, v))
}

// EnvTypeIn applies the In predicate on the "env_type" field.
func EnvTypeIn(vs ...EnvType) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldIn(FieldEnvType, vs...))
}

// EnvTypeNotIn applies the NotIn predicate on the "env_type" field.
func EnvTypeNotIn(vs ...EnvType) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldNotIn(FieldEnvType, vs...))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldContainsFold(FieldCreatedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldLTE(FieldCreatedAt, v))
}

// LastInteractionAtEQ applies the EQ predicate on the "last_interaction_at" field.
func LastInteractionAtEQ(v time.Time) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtNEQ applies the NEQ predicate on the "last_interaction_at" field.
func LastInteractionAtNEQ(v time.Time) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldNEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtIn applies the In predicate on the "last_interaction_at" field.
func LastInteractionAtIn(vs ...time.Time) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtNotIn applies the NotIn predicate on the "last_interaction_at" field.
func LastInteractionAtNotIn(vs ...time.Time) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldNotIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtGT applies the GT predicate on the "last_interaction_at" field.
func LastInteractionAtGT(v time.Time) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldGT(FieldLastInteractionAt, v))
}

// LastInteractionAtGTE applies the GTE predicate on the "last_interaction_at" field.
func LastInteractionAtGTE(v time.Time) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldGTE(FieldLastInteractionAt, v))
}

// LastInteractionAtLT applies the LT predicate on the "last_interaction_at" field.
func LastInteractionAtLT(v time.Time) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldLT(FieldLastInteractionAt, v))
}

// LastInteractionAtLTE applies the LTE predicate on the "last_interaction_at" field.
func LastInteractionAtLTE(v time.Time) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldLTE(FieldLastInteractionAt, v))
}

// LastInteractionAtIsNil applies the IsNil predicate on the "last_interaction_at" field.
func LastInteractionAtIsNil() predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldIsNull(FieldLastInteractionAt))
}

// LastInteractionAtNotNil applies the NotNil predicate on the "last_interaction_at" field.
func LastInteractionAtNotNil() predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.FieldNotNull(FieldLastInteractionAt))
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.DemoEnvironment {
	return predicate.DemoEnvironment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.ChatMessage) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTimelineEvents applies the HasEdge predicate on the "timeline_events" edge.
func HasTimelineEvents() predicate.DemoEnvironment {
	return predicate.DemoEnvironment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TimelineEventsTable, TimelineEventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTimelineEventsWith applies the HasEdge predicate on the "timeline_events" edge with a given conditions (other predicates).
func HasTimelineEventsWith(preds ...predicate.TimelineEvent) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(func(s *sql.Selector) {
		step := newTimelineEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DemoEnvironment) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DemoEnvironment) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DemoEnvironment) predicate.DemoEnvironment {
	return predicate.DemoEnvironment(sql.NotPredicates(p))
}
