// Code generated by ent, DO NOT EDIT.

package researchtask

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/trilogy-group/nexus-agents/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldContainsFold(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldTitle, v))
}

// ResearchQuery applies equality check predicate on the "research_query" field. It's identical to ResearchQueryEQ.
func ResearchQuery(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldResearchQuery, v))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldProjectID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldUserID, v))
}

// ReportMarkdown applies equality check predicate on the "report_markdown" field. It's identical to ReportMarkdownEQ.
func ReportMarkdown(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldReportMarkdown, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorKind applies equality check predicate on the "error_kind" field. It's identical to ErrorKindEQ.
func ErrorKind(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldErrorKind, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldCompletedAt, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldPodID, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldDeletedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldContainsFold(FieldTitle, v))
}

// ResearchQueryEQ applies the EQ predicate on the "research_query" field.
func ResearchQueryEQ(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldResearchQuery, v))
}

// ResearchQueryNEQ applies the NEQ predicate on the "research_query" field.
func ResearchQueryNEQ(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNEQ(FieldResearchQuery, v))
}

// ResearchQueryIn applies the In predicate on the "research_query" field.
func ResearchQueryIn(vs ...string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIn(FieldResearchQuery, vs...))
}

// ResearchQueryNotIn applies the NotIn predicate on the "research_query" field.
func ResearchQueryNotIn(vs ...string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotIn(FieldResearchQuery, vs...))
}

// ResearchQueryGT applies the GT predicate on the "research_query" field.
func ResearchQueryGT(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGT(FieldResearchQuery, v))
}

// ResearchQueryGTE applies the GTE predicate on the "research_query" field.
func ResearchQueryGTE(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGTE(FieldResearchQuery, v))
}

// ResearchQueryLT applies the LT predicate on the "research_query" field.
func ResearchQueryLT(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLT(FieldResearchQuery, v))
}

// ResearchQueryLTE applies the LTE predicate on the "research_query" field.
func ResearchQueryLTE(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLTE(FieldResearchQuery, v))
}

// ResearchQueryContains applies the Contains predicate on the "research_query" field.
func ResearchQueryContains(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldContains(FieldResearchQuery, v))
}

// ResearchQueryHasPrefix applies the HasPrefix predicate on the "research_query" field.
func ResearchQueryHasPrefix(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldHasPrefix(FieldResearchQuery, v))
}

// ResearchQueryHasSuffix applies the HasSuffix predicate on the "research_query" field.
func ResearchQueryHasSuffix(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldHasSuffix(FieldResearchQuery, v))
}

// ResearchQueryEqualFold applies the EqualFold predicate on the "research_query" field.
func ResearchQueryEqualFold(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEqualFold(FieldResearchQuery, v))
}

// ResearchQueryContainsFold applies the ContainsFold predicate on the "research_query" field.
func ResearchQueryContainsFold(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldContainsFold(FieldResearchQuery, v))
}

// ResearchTypeEQ applies the EQ predicate on the "research_type" field.
func ResearchTypeEQ(v ResearchType) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldResearchType, v))
}

// ResearchTypeNEQ applies the NEQ predicate on the "research_type" field.
func ResearchTypeNEQ(v ResearchType) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNEQ(FieldResearchType, v))
}

// ResearchTypeIn applies the In predicate on the "research_type" field.
func ResearchTypeIn(vs ...ResearchType) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIn(FieldResearchType, vs...))
}

// ResearchTypeNotIn applies the NotIn predicate on the "research_type" field.
func ResearchTypeNotIn(vs ...ResearchType) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotIn(FieldResearchType, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotIn(FieldStatus, vs...))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDIsNil applies the IsNil predicate on the "project_id" field.
func ProjectIDIsNil() predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIsNull(FieldProjectID))
}

// ProjectIDNotNil applies the NotNil predicate on the "project_id" field.
func ProjectIDNotNil() predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotNull(FieldProjectID))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldContainsFold(FieldProjectID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotNull(FieldUserID))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldContainsFold(FieldUserID, v))
}

// AggregationConfigIsNil applies the IsNil predicate on the "aggregation_config" field.
func AggregationConfigIsNil() predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIsNull(FieldAggregationConfig))
}

// AggregationConfigNotNil applies the NotNil predicate on the "aggregation_config" field.
func AggregationConfigNotNil() predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotNull(FieldAggregationConfig))
}

// ReportMarkdownEQ applies the EQ predicate on the "report_markdown" field.
func ReportMarkdownEQ(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldReportMarkdown, v))
}

// ReportMarkdownNEQ applies the NEQ predicate on the "report_markdown" field.
func ReportMarkdownNEQ(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNEQ(FieldReportMarkdown, v))
}

// ReportMarkdownIn applies the In predicate on the "report_markdown" field.
func ReportMarkdownIn(vs ...string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIn(FieldReportMarkdown, vs...))
}

// ReportMarkdownNotIn applies the NotIn predicate on the "report_markdown" field.
func ReportMarkdownNotIn(vs ...string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotIn(FieldReportMarkdown, vs...))
}

// ReportMarkdownGT applies the GT predicate on the "report_markdown" field.
func ReportMarkdownGT(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGT(FieldReportMarkdown, v))
}

// ReportMarkdownGTE applies the GTE predicate on the "report_markdown" field.
func ReportMarkdownGTE(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGTE(FieldReportMarkdown, v))
}

// ReportMarkdownLT applies the LT predicate on the "report_markdown" field.
func ReportMarkdownLT(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLT(FieldReportMarkdown, v))
}

// ReportMarkdownLTE applies the LTE predicate on the "report_markdown" field.
func ReportMarkdownLTE(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLTE(FieldReportMarkdown, v))
}

// ReportMarkdownContains applies the Contains predicate on the "report_markdown" field.
func ReportMarkdownContains(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldContains(FieldReportMarkdown, v))
}

// ReportMarkdownHasPrefix applies the HasPrefix predicate on the "report_markdown" field.
func ReportMarkdownHasPrefix(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldHasPrefix(FieldReportMarkdown, v))
}

// ReportMarkdownHasSuffix applies the HasSuffix predicate on the "report_markdown" field.
func ReportMarkdownHasSuffix(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldHasSuffix(FieldReportMarkdown, v))
}

// ReportMarkdownIsNil applies the IsNil predicate on the "report_markdown" field.
func ReportMarkdownIsNil() predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIsNull(FieldReportMarkdown))
}

// ReportMarkdownNotNil applies the NotNil predicate on the "report_markdown" field.
func ReportMarkdownNotNil() predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotNull(FieldReportMarkdown))
}

// ReportMarkdownEqualFold applies the EqualFold predicate on the "report_markdown" field.
func ReportMarkdownEqualFold(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEqualFold(FieldReportMarkdown, v))
}

// ReportMarkdownContainsFold applies the ContainsFold predicate on the "report_markdown" field.
func ReportMarkdownContainsFold(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldContainsFold(FieldReportMarkdown, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ErrorKindEQ applies the EQ predicate on the "error_kind" field.
func ErrorKindEQ(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldErrorKind, v))
}

// ErrorKindNEQ applies the NEQ predicate on the "error_kind" field.
func ErrorKindNEQ(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNEQ(FieldErrorKind, v))
}

// ErrorKindIn applies the In predicate on the "error_kind" field.
func ErrorKindIn(vs ...string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIn(FieldErrorKind, vs...))
}

// ErrorKindNotIn applies the NotIn predicate on the "error_kind" field.
func ErrorKindNotIn(vs ...string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotIn(FieldErrorKind, vs...))
}

// ErrorKindGT applies the GT predicate on the "error_kind" field.
func ErrorKindGT(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGT(FieldErrorKind, v))
}

// ErrorKindGTE applies the GTE predicate on the "error_kind" field.
func ErrorKindGTE(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGTE(FieldErrorKind, v))
}

// ErrorKindLT applies the LT predicate on the "error_kind" field.
func ErrorKindLT(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLT(FieldErrorKind, v))
}

// ErrorKindLTE applies the LTE predicate on the "error_kind" field.
func ErrorKindLTE(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLTE(FieldErrorKind, v))
}

// ErrorKindContains applies the Contains predicate on the "error_kind" field.
func ErrorKindContains(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldContains(FieldErrorKind, v))
}

// ErrorKindHasPrefix applies the HasPrefix predicate on the "error_kind" field.
func ErrorKindHasPrefix(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldHasPrefix(FieldErrorKind, v))
}

// ErrorKindHasSuffix applies the HasSuffix predicate on the "error_kind" field.
func ErrorKindHasSuffix(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldHasSuffix(FieldErrorKind, v))
}

// ErrorKindIsNil applies the IsNil predicate on the "error_kind" field.
func ErrorKindIsNil() predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIsNull(FieldErrorKind))
}

// ErrorKindNotNil applies the NotNil predicate on the "error_kind" field.
func ErrorKindNotNil() predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotNull(FieldErrorKind))
}

// ErrorKindEqualFold applies the EqualFold predicate on the "error_kind" field.
func ErrorKindEqualFold(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEqualFold(FieldErrorKind, v))
}

// ErrorKindContainsFold applies the ContainsFold predicate on the "error_kind" field.
func ErrorKindContainsFold(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldContainsFold(FieldErrorKind, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotNull(FieldCompletedAt))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldContainsFold(FieldPodID, v))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIsNil applies the IsNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIsNil() predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIsNull(FieldLastHeartbeatAt))
}

// LastHeartbeatAtNotNil applies the NotNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotNil() predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotNull(FieldLastHeartbeatAt))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotNull(FieldDeletedAt))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.ResearchTask {
	return predicate.ResearchTask(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.ResearchTask {
	return predicate.ResearchTask(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOperations applies the HasEdge predicate on the "operations" edge.
func HasOperations() predicate.ResearchTask {
	return predicate.ResearchTask(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, OperationsTable, OperationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOperationsWith applies the HasEdge predicate on the "operations" edge with a given conditions (other predicates).
func HasOperationsWith(preds ...predicate.Operation) predicate.ResearchTask {
	return predicate.ResearchTask(func(s *sql.Selector) {
		step := newOperationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSourceSummaries applies the HasEdge predicate on the "source_summaries" edge.
func HasSourceSummaries() predicate.ResearchTask {
	return predicate.ResearchTask(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SourceSummariesTable, SourceSummariesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSourceSummariesWith applies the HasEdge predicate on the "source_summaries" edge with a given conditions (other predicates).
func HasSourceSummariesWith(preds ...predicate.SourceSummary) predicate.ResearchTask {
	return predicate.ResearchTask(func(s *sql.Selector) {
		step := newSourceSummariesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasKnowledgeNodes applies the HasEdge predicate on the "knowledge_nodes" edge.
func HasKnowledgeNodes() predicate.ResearchTask {
	return predicate.ResearchTask(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, KnowledgeNodesTable, KnowledgeNodesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasKnowledgeNodesWith applies the HasEdge predicate on the "knowledge_nodes" edge with a given conditions (other predicates).
func HasKnowledgeNodesWith(preds ...predicate.KnowledgeNode) predicate.ResearchTask {
	return predicate.ResearchTask(func(s *sql.Selector) {
		step := newKnowledgeNodesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasInsights applies the HasEdge predicate on the "insights" edge.
func HasInsights() predicate.ResearchTask {
	return predicate.ResearchTask(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, InsightsTable, InsightsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInsightsWith applies the HasEdge predicate on the "insights" edge with a given conditions (other predicates).
func HasInsightsWith(preds ...predicate.Insight) predicate.ResearchTask {
	return predicate.ResearchTask(func(s *sql.Selector) {
		step := newInsightsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSpikyPovs applies the HasEdge predicate on the "spiky_povs" edge.
func HasSpikyPovs() predicate.ResearchTask {
	return predicate.ResearchTask(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SpikyPovsTable, SpikyPovsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSpikyPovsWith applies the HasEdge predicate on the "spiky_povs" edge with a given conditions (other predicates).
func HasSpikyPovsWith(preds ...predicate.SpikyPOV) predicate.ResearchTask {
	return predicate.ResearchTask(func(s *sql.Selector) {
		step := newSpikyPovsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasReportSections applies the HasEdge predicate on the "report_sections" edge.
func HasReportSections() predicate.ResearchTask {
	return predicate.ResearchTask(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ReportSectionsTable, ReportSectionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReportSectionsWith applies the HasEdge predicate on the "report_sections" edge with a given conditions (other predicates).
func HasReportSectionsWith(preds ...predicate.ReportSection) predicate.ResearchTask {
	return predicate.ResearchTask(func(s *sql.Selector) {
		step := newReportSectionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasArtifacts applies the HasEdge predicate on the "artifacts" edge.
func HasArtifacts() predicate.ResearchTask {
	return predicate.ResearchTask(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ArtifactsTable, ArtifactsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasArtifactsWith applies the HasEdge predicate on the "artifacts" edge with a given conditions (other predicates).
func HasArtifactsWith(preds ...predicate.Artifact) predicate.ResearchTask {
	return predicate.ResearchTask(func(s *sql.Selector) {
		step := newArtifactsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.ResearchTask {
	return predicate.ResearchTask(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.Event) predicate.ResearchTask {
	return predicate.ResearchTask(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ResearchTask) predicate.ResearchTask {
	return predicate.ResearchTask(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ResearchTask) predicate.ResearchTask {
	return predicate.ResearchTask(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ResearchTask) predicate.ResearchTask {
	return predicate.ResearchTask(sql.NotPredicates(p))
}
