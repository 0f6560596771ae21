// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/trilogy-group/nexus-agents/ent/aggregatedentity"
	"github.com/trilogy-group/nexus-agents/ent/artifact"
	"github.com/trilogy-group/nexus-agents/ent/event"
	"github.com/trilogy-group/nexus-agents/ent/evidence"
	"github.com/trilogy-group/nexus-agents/ent/insight"
	"github.com/trilogy-group/nexus-agents/ent/knowledgenode"
	"github.com/trilogy-group/nexus-agents/ent/knowledgenodesource"
	"github.com/trilogy-group/nexus-agents/ent/operation"
	"github.com/trilogy-group/nexus-agents/ent/project"
	"github.com/trilogy-group/nexus-agents/ent/reportsection"
	"github.com/trilogy-group/nexus-agents/ent/researchtask"
	"github.com/trilogy-group/nexus-agents/ent/schema"
	"github.com/trilogy-group/nexus-agents/ent/source"
	"github.com/trilogy-group/nexus-agents/ent/sourcesummary"
	"github.com/trilogy-group/nexus-agents/ent/spikypov"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	aggregatedentityFields := schema.AggregatedEntity{}.Fields()
	_ = aggregatedentityFields
	// aggregatedentityDescEntityType is the schema descriptor for entity_type field.
	aggregatedentityDescEntityType := aggregatedentityFields[2].Descriptor()
	// aggregatedentity.EntityTypeValidator is a validator for the "entity_type" field. It is called by the builders before save.
	aggregatedentity.EntityTypeValidator = aggregatedentityDescEntityType.Validators[0].(func(string) error)
	// aggregatedentityDescName is the schema descriptor for name field.
	aggregatedentityDescName := aggregatedentityFields[3].Descriptor()
	// aggregatedentity.NameValidator is a validator for the "name" field. It is called by the builders before save.
	aggregatedentity.NameValidator = aggregatedentityDescName.Validators[0].(func(string) error)
	// aggregatedentityDescNormalizedName is the schema descriptor for normalized_name field.
	aggregatedentityDescNormalizedName := aggregatedentityFields[4].Descriptor()
	// aggregatedentity.NormalizedNameValidator is a validator for the "normalized_name" field. It is called by the builders before save.
	aggregatedentity.NormalizedNameValidator = aggregatedentityDescNormalizedName.Validators[0].(func(string) error)
	// aggregatedentityDescConfidenceScore is the schema descriptor for confidence_score field.
	aggregatedentityDescConfidenceScore := aggregatedentityFields[8].Descriptor()
	// aggregatedentity.ConfidenceScoreValidator is a validator for the "confidence_score" field. It is called by the builders before save.
	aggregatedentity.ConfidenceScoreValidator = func() func(float64) error {
		validators := aggregatedentityDescConfidenceScore.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(confidence_score float64) error {
			for _, fn := range fns {
				if err := fn(confidence_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// aggregatedentityDescCreatedAt is the schema descriptor for created_at field.
	aggregatedentityDescCreatedAt := aggregatedentityFields[10].Descriptor()
	// aggregatedentity.DefaultCreatedAt holds the default value on creation for the created_at field.
	aggregatedentity.DefaultCreatedAt = aggregatedentityDescCreatedAt.Default.(func() time.Time)
	// aggregatedentityDescUpdatedAt is the schema descriptor for updated_at field.
	aggregatedentityDescUpdatedAt := aggregatedentityFields[11].Descriptor()
	// aggregatedentity.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	aggregatedentity.DefaultUpdatedAt = aggregatedentityDescUpdatedAt.Default.(func() time.Time)
	// aggregatedentity.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	aggregatedentity.UpdateDefaultUpdatedAt = aggregatedentityDescUpdatedAt.UpdateDefault.(func() time.Time)
	artifactFields := schema.Artifact{}.Fields()
	_ = artifactFields
	// artifactDescKind is the schema descriptor for kind field.
	artifactDescKind := artifactFields[2].Descriptor()
	// artifact.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	artifact.KindValidator = artifactDescKind.Validators[0].(func(string) error)
	// artifactDescPath is the schema descriptor for path field.
	artifactDescPath := artifactFields[3].Descriptor()
	// artifact.PathValidator is a validator for the "path" field. It is called by the builders before save.
	artifact.PathValidator = artifactDescPath.Validators[0].(func(string) error)
	// artifactDescCreatedAt is the schema descriptor for created_at field.
	artifactDescCreatedAt := artifactFields[7].Descriptor()
	// artifact.DefaultCreatedAt holds the default value on creation for the created_at field.
	artifact.DefaultCreatedAt = artifactDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescChannel is the schema descriptor for channel field.
	eventDescChannel := eventFields[1].Descriptor()
	// event.ChannelValidator is a validator for the "channel" field. It is called by the builders before save.
	event.ChannelValidator = eventDescChannel.Validators[0].(func(string) error)
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[4].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	evidenceFields := schema.Evidence{}.Fields()
	_ = evidenceFields
	// evidenceDescEvidenceType is the schema descriptor for evidence_type field.
	evidenceDescEvidenceType := evidenceFields[3].Descriptor()
	// evidence.EvidenceTypeValidator is a validator for the "evidence_type" field. It is called by the builders before save.
	evidence.EvidenceTypeValidator = evidenceDescEvidenceType.Validators[0].(func(string) error)
	// evidenceDescCreatedAt is the schema descriptor for created_at field.
	evidenceDescCreatedAt := evidenceFields[8].Descriptor()
	// evidence.DefaultCreatedAt holds the default value on creation for the created_at field.
	evidence.DefaultCreatedAt = evidenceDescCreatedAt.Default.(func() time.Time)
	insightFields := schema.Insight{}.Fields()
	_ = insightFields
	// insightDescCategory is the schema descriptor for category field.
	insightDescCategory := insightFields[2].Descriptor()
	// insight.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	insight.CategoryValidator = insightDescCategory.Validators[0].(func(string) error)
	// insightDescInsightText is the schema descriptor for insight_text field.
	insightDescInsightText := insightFields[3].Descriptor()
	// insight.InsightTextValidator is a validator for the "insight_text" field. It is called by the builders before save.
	insight.InsightTextValidator = insightDescInsightText.Validators[0].(func(string) error)
	// insightDescConfidenceScore is the schema descriptor for confidence_score field.
	insightDescConfidenceScore := insightFields[4].Descriptor()
	// insight.ConfidenceScoreValidator is a validator for the "confidence_score" field. It is called by the builders before save.
	insight.ConfidenceScoreValidator = func() func(float64) error {
		validators := insightDescConfidenceScore.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(confidence_score float64) error {
			for _, fn := range fns {
				if err := fn(confidence_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// insightDescPosition is the schema descriptor for position field.
	insightDescPosition := insightFields[6].Descriptor()
	// insight.DefaultPosition holds the default value on creation for the position field.
	insight.DefaultPosition = insightDescPosition.Default.(int)
	// insightDescCreatedAt is the schema descriptor for created_at field.
	insightDescCreatedAt := insightFields[7].Descriptor()
	// insight.DefaultCreatedAt holds the default value on creation for the created_at field.
	insight.DefaultCreatedAt = insightDescCreatedAt.Default.(func() time.Time)
	knowledgenodeFields := schema.KnowledgeNode{}.Fields()
	_ = knowledgenodeFields
	// knowledgenodeDescCategory is the schema descriptor for category field.
	knowledgenodeDescCategory := knowledgenodeFields[3].Descriptor()
	// knowledgenode.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	knowledgenode.CategoryValidator = knowledgenodeDescCategory.Validators[0].(func(string) error)
	// knowledgenodeDescSummary is the schema descriptor for summary field.
	knowledgenodeDescSummary := knowledgenodeFields[5].Descriptor()
	// knowledgenode.SummaryValidator is a validator for the "summary" field. It is called by the builders before save.
	knowledgenode.SummaryValidator = knowledgenodeDescSummary.Validators[0].(func(string) error)
	// knowledgenodeDescDokLevel is the schema descriptor for dok_level field.
	knowledgenodeDescDokLevel := knowledgenodeFields[6].Descriptor()
	// knowledgenode.DefaultDokLevel holds the default value on creation for the dok_level field.
	knowledgenode.DefaultDokLevel = knowledgenodeDescDokLevel.Default.(int)
	// knowledgenode.DokLevelValidator is a validator for the "dok_level" field. It is called by the builders before save.
	knowledgenode.DokLevelValidator = func() func(int) error {
		validators := knowledgenodeDescDokLevel.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(dok_level int) error {
			for _, fn := range fns {
				if err := fn(dok_level); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// knowledgenodeDescPosition is the schema descriptor for position field.
	knowledgenodeDescPosition := knowledgenodeFields[7].Descriptor()
	// knowledgenode.DefaultPosition holds the default value on creation for the position field.
	knowledgenode.DefaultPosition = knowledgenodeDescPosition.Default.(int)
	// knowledgenodeDescCreatedAt is the schema descriptor for created_at field.
	knowledgenodeDescCreatedAt := knowledgenodeFields[8].Descriptor()
	// knowledgenode.DefaultCreatedAt holds the default value on creation for the created_at field.
	knowledgenode.DefaultCreatedAt = knowledgenodeDescCreatedAt.Default.(func() time.Time)
	knowledgenodesourceFields := schema.KnowledgeNodeSource{}.Fields()
	_ = knowledgenodesourceFields
	// knowledgenodesourceDescRelevanceScore is the schema descriptor for relevance_score field.
	knowledgenodesourceDescRelevanceScore := knowledgenodesourceFields[3].Descriptor()
	// knowledgenodesource.DefaultRelevanceScore holds the default value on creation for the relevance_score field.
	knowledgenodesource.DefaultRelevanceScore = knowledgenodesourceDescRelevanceScore.Default.(float64)
	// knowledgenodesource.RelevanceScoreValidator is a validator for the "relevance_score" field. It is called by the builders before save.
	knowledgenodesource.RelevanceScoreValidator = func() func(float64) error {
		validators := knowledgenodesourceDescRelevanceScore.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(relevance_score float64) error {
			for _, fn := range fns {
				if err := fn(relevance_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	operationFields := schema.Operation{}.Fields()
	_ = operationFields
	// operationDescOperationType is the schema descriptor for operation_type field.
	operationDescOperationType := operationFields[3].Descriptor()
	// operation.OperationTypeValidator is a validator for the "operation_type" field. It is called by the builders before save.
	operation.OperationTypeValidator = operationDescOperationType.Validators[0].(func(string) error)
	// operationDescQueueName is the schema descriptor for queue_name field.
	operationDescQueueName := operationFields[4].Descriptor()
	// operation.QueueNameValidator is a validator for the "queue_name" field. It is called by the builders before save.
	operation.QueueNameValidator = operationDescQueueName.Validators[0].(func(string) error)
	// operationDescPriority is the schema descriptor for priority field.
	operationDescPriority := operationFields[7].Descriptor()
	// operation.DefaultPriority holds the default value on creation for the priority field.
	operation.DefaultPriority = operationDescPriority.Default.(int)
	// operationDescRetryCount is the schema descriptor for retry_count field.
	operationDescRetryCount := operationFields[14].Descriptor()
	// operation.DefaultRetryCount holds the default value on creation for the retry_count field.
	operation.DefaultRetryCount = operationDescRetryCount.Default.(int)
	// operationDescCreatedAt is the schema descriptor for created_at field.
	operationDescCreatedAt := operationFields[17].Descriptor()
	// operation.DefaultCreatedAt holds the default value on creation for the created_at field.
	operation.DefaultCreatedAt = operationDescCreatedAt.Default.(func() time.Time)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescName is the schema descriptor for name field.
	projectDescName := projectFields[1].Descriptor()
	// project.NameValidator is a validator for the "name" field. It is called by the builders before save.
	project.NameValidator = projectDescName.Validators[0].(func(string) error)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[3].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	reportsectionFields := schema.ReportSection{}.Fields()
	_ = reportsectionFields
	// reportsectionDescPosition is the schema descriptor for position field.
	reportsectionDescPosition := reportsectionFields[5].Descriptor()
	// reportsection.DefaultPosition holds the default value on creation for the position field.
	reportsection.DefaultPosition = reportsectionDescPosition.Default.(int)
	researchtaskFields := schema.ResearchTask{}.Fields()
	_ = researchtaskFields
	// researchtaskDescResearchQuery is the schema descriptor for research_query field.
	researchtaskDescResearchQuery := researchtaskFields[2].Descriptor()
	// researchtask.ResearchQueryValidator is a validator for the "research_query" field. It is called by the builders before save.
	researchtask.ResearchQueryValidator = researchtaskDescResearchQuery.Validators[0].(func(string) error)
	// researchtaskDescCreatedAt is the schema descriptor for created_at field.
	researchtaskDescCreatedAt := researchtaskFields[11].Descriptor()
	// researchtask.DefaultCreatedAt holds the default value on creation for the created_at field.
	researchtask.DefaultCreatedAt = researchtaskDescCreatedAt.Default.(func() time.Time)
	sourceFields := schema.Source{}.Fields()
	_ = sourceFields
	// sourceDescURL is the schema descriptor for url field.
	sourceDescURL := sourceFields[1].Descriptor()
	// source.URLValidator is a validator for the "url" field. It is called by the builders before save.
	source.URLValidator = sourceDescURL.Validators[0].(func(string) error)
	// sourceDescContentHash is the schema descriptor for content_hash field.
	sourceDescContentHash := sourceFields[5].Descriptor()
	// source.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	source.ContentHashValidator = sourceDescContentHash.Validators[0].(func(string) error)
	// sourceDescReliabilityScore is the schema descriptor for reliability_score field.
	sourceDescReliabilityScore := sourceFields[6].Descriptor()
	// source.DefaultReliabilityScore holds the default value on creation for the reliability_score field.
	source.DefaultReliabilityScore = sourceDescReliabilityScore.Default.(float64)
	// sourceDescObservationCount is the schema descriptor for observation_count field.
	sourceDescObservationCount := sourceFields[7].Descriptor()
	// source.DefaultObservationCount holds the default value on creation for the observation_count field.
	source.DefaultObservationCount = sourceDescObservationCount.Default.(int)
	// sourceDescAccessedAt is the schema descriptor for accessed_at field.
	sourceDescAccessedAt := sourceFields[8].Descriptor()
	// source.DefaultAccessedAt holds the default value on creation for the accessed_at field.
	source.DefaultAccessedAt = sourceDescAccessedAt.Default.(func() time.Time)
	// sourceDescCreatedAt is the schema descriptor for created_at field.
	sourceDescCreatedAt := sourceFields[9].Descriptor()
	// source.DefaultCreatedAt holds the default value on creation for the created_at field.
	source.DefaultCreatedAt = sourceDescCreatedAt.Default.(func() time.Time)
	sourcesummaryFields := schema.SourceSummary{}.Fields()
	_ = sourcesummaryFields
	// sourcesummaryDescSummary is the schema descriptor for summary field.
	sourcesummaryDescSummary := sourcesummaryFields[4].Descriptor()
	// sourcesummary.SummaryValidator is a validator for the "summary" field. It is called by the builders before save.
	sourcesummary.SummaryValidator = sourcesummaryDescSummary.Validators[0].(func(string) error)
	// sourcesummaryDescDokLevel is the schema descriptor for dok_level field.
	sourcesummaryDescDokLevel := sourcesummaryFields[6].Descriptor()
	// sourcesummary.DefaultDokLevel holds the default value on creation for the dok_level field.
	sourcesummary.DefaultDokLevel = sourcesummaryDescDokLevel.Default.(int)
	// sourcesummary.DokLevelValidator is a validator for the "dok_level" field. It is called by the builders before save.
	sourcesummary.DokLevelValidator = func() func(int) error {
		validators := sourcesummaryDescDokLevel.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(dok_level int) error {
			for _, fn := range fns {
				if err := fn(dok_level); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// sourcesummaryDescCreatedAt is the schema descriptor for created_at field.
	sourcesummaryDescCreatedAt := sourcesummaryFields[8].Descriptor()
	// sourcesummary.DefaultCreatedAt holds the default value on creation for the created_at field.
	sourcesummary.DefaultCreatedAt = sourcesummaryDescCreatedAt.Default.(func() time.Time)
	spikypovFields := schema.SpikyPOV{}.Fields()
	_ = spikypovFields
	// spikypovDescStatement is the schema descriptor for statement field.
	spikypovDescStatement := spikypovFields[3].Descriptor()
	// spikypov.StatementValidator is a validator for the "statement" field. It is called by the builders before save.
	spikypov.StatementValidator = spikypovDescStatement.Validators[0].(func(string) error)
	// spikypovDescReasoning is the schema descriptor for reasoning field.
	spikypovDescReasoning := spikypovFields[4].Descriptor()
	// spikypov.ReasoningValidator is a validator for the "reasoning" field. It is called by the builders before save.
	spikypov.ReasoningValidator = spikypovDescReasoning.Validators[0].(func(string) error)
	// spikypovDescPosition is the schema descriptor for position field.
	spikypovDescPosition := spikypovFields[6].Descriptor()
	// spikypov.DefaultPosition holds the default value on creation for the position field.
	spikypov.DefaultPosition = spikypovDescPosition.Default.(int)
	// spikypovDescCreatedAt is the schema descriptor for created_at field.
	spikypovDescCreatedAt := spikypovFields[7].Descriptor()
	// spikypov.DefaultCreatedAt holds the default value on creation for the created_at field.
	spikypov.DefaultCreatedAt = spikypovDescCreatedAt.Default.(func() time.Time)
}
