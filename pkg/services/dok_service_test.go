package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trilogy-group/nexus-agents/ent/reportsection"
	testdb "github.com/trilogy-group/nexus-agents/test/database"
)

func TestDOKService_RecordSummary(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDOKService(client.Client)
	ctx := context.Background()

	task := createTestTask(t, client.Client)
	src := createTestSource(t, client.Client, "https://example.com/paper")

	t.Run("stores summary with facts", func(t *testing.T) {
		summary, err := service.RecordSummary(ctx, RecordSummaryInput{
			TaskID:    task.ID,
			SourceID:  src.ID,
			Subtopic:  "productivity",
			Summary:   "The paper reports a 12% productivity gain.",
			DOK1Facts: []string{"12% productivity gain reported"},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, summary.DokLevel)
		assert.Len(t, summary.Dok1Facts, 1)
	})

	t.Run("retried operation returns the existing row", func(t *testing.T) {
		again, err := service.RecordSummary(ctx, RecordSummaryInput{
			TaskID:   task.ID,
			SourceID: src.ID,
			Subtopic: "productivity",
			Summary:  "A different wording from the retry.",
		})
		require.NoError(t, err)

		all, err := service.ListSummaries(ctx, task.ID)
		require.NoError(t, err)
		assert.Len(t, all, 1)
		assert.Equal(t, all[0].ID, again.ID)
	})

	t.Run("supersede keeps the old row for lineage", func(t *testing.T) {
		active, err := service.ListSummaries(ctx, task.ID)
		require.NoError(t, err)
		require.Len(t, active, 1)

		replacement, err := service.SupersedeSummary(ctx, active[0].ID, RecordSummaryInput{
			Subtopic: "productivity-v2",
			Summary:  "Revised: the gain holds only for senior teams.",
			DOKLevel: 2,
		})
		require.NoError(t, err)

		active, err = service.ListSummaries(ctx, task.ID)
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, replacement.ID, active[0].ID)

		// Superseding twice is rejected.
		_, err = service.SupersedeSummary(ctx, replacement.ID, RecordSummaryInput{
			Subtopic: "productivity-v3", Summary: "x",
		})
		require.NoError(t, err)
		_, err = service.SupersedeSummary(ctx, replacement.ID, RecordSummaryInput{
			Subtopic: "productivity-v4", Summary: "y",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestDOKService_KnowledgeTree(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDOKService(client.Client)
	ctx := context.Background()

	task := createTestTask(t, client.Client)

	t.Run("builds a bounded tree", func(t *testing.T) {
		root, err := service.CreateKnowledgeNode(ctx, CreateNodeInput{
			TaskID: task.ID, Category: "economics", Summary: "Economic effects.",
		})
		require.NoError(t, err)

		l2, err := service.CreateKnowledgeNode(ctx, CreateNodeInput{
			TaskID: task.ID, ParentID: root.ID, Category: "economics",
			Subcategory: "labor", Summary: "Labor market effects.",
		})
		require.NoError(t, err)
		l3, err := service.CreateKnowledgeNode(ctx, CreateNodeInput{
			TaskID: task.ID, ParentID: l2.ID, Category: "economics",
			Subcategory: "wages", Summary: "Wage effects.",
		})
		require.NoError(t, err)
		l4, err := service.CreateKnowledgeNode(ctx, CreateNodeInput{
			TaskID: task.ID, ParentID: l3.ID, Category: "economics",
			Subcategory: "regional", Summary: "Regional wage divergence.",
		})
		require.NoError(t, err)

		// Depth 5 exceeds the bound.
		_, err = service.CreateKnowledgeNode(ctx, CreateNodeInput{
			TaskID: task.ID, ParentID: l4.ID, Category: "economics", Summary: "Too deep.",
		})
		assert.True(t, IsValidationError(err))

		tree, err := service.GetKnowledgeTree(ctx, task.ID)
		require.NoError(t, err)
		require.Len(t, tree.Roots, 1)
		assert.Equal(t, root.ID, tree.Roots[0].Node.ID)
		require.Len(t, tree.Roots[0].Children, 1)
		assert.Equal(t, l2.ID, tree.Roots[0].Children[0].Node.ID)
	})

	t.Run("rejects cross-task parents", func(t *testing.T) {
		other := createTestTask(t, client.Client)
		foreign, err := service.CreateKnowledgeNode(ctx, CreateNodeInput{
			TaskID: other.ID, Category: "misc", Summary: "Other task root.",
		})
		require.NoError(t, err)

		_, err = service.CreateKnowledgeNode(ctx, CreateNodeInput{
			TaskID: task.ID, ParentID: foreign.ID, Category: "misc", Summary: "Bad parent.",
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("links sources idempotently", func(t *testing.T) {
		node, err := service.CreateKnowledgeNode(ctx, CreateNodeInput{
			TaskID: task.ID, Category: "sources", Summary: "Leaf with sources.",
		})
		require.NoError(t, err)
		src := createTestSource(t, client.Client, "https://example.com/link")

		require.NoError(t, service.LinkNodeSource(ctx, node.ID, src.ID, 0.8))
		require.NoError(t, service.LinkNodeSource(ctx, node.ID, src.ID, 0.8))

		ids, err := service.NodeSourceIDs(ctx, node.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{src.ID}, ids)
	})
}

func TestDOKService_InsightsAndPOVs(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDOKService(client.Client)
	ctx := context.Background()

	task := createTestTask(t, client.Client)
	src := createTestSource(t, client.Client, "https://example.com/insight-src")

	t.Run("insight requires a source and clamps confidence", func(t *testing.T) {
		_, err := service.CreateInsight(ctx, CreateInsightInput{
			TaskID: task.ID, InsightText: "unsupported claim",
		})
		assert.True(t, IsValidationError(err))

		ins, err := service.CreateInsight(ctx, CreateInsightInput{
			TaskID:          task.ID,
			InsightText:     "Hybrid schedules outperform fully-remote ones.",
			ConfidenceScore: 1.7,
			SourceIDs:       []string{src.ID},
		})
		require.NoError(t, err)
		assert.InDelta(t, 1.0, ins.ConfidenceScore, 1e-9)
	})

	t.Run("pov must cite insights on the same task", func(t *testing.T) {
		ins, err := service.CreateInsight(ctx, CreateInsightInput{
			TaskID:          task.ID,
			InsightText:     "Async communication reduces meeting load.",
			ConfidenceScore: 0.8,
			SourceIDs:       []string{src.ID},
		})
		require.NoError(t, err)

		pov, err := service.CreateSpikyPOV(ctx, CreatePOVInput{
			TaskID:     task.ID,
			Kind:       "truth",
			Statement:  "Meetings are a coordination failure, not a collaboration tool.",
			Reasoning:  "Follows from the async findings.",
			InsightIDs: []string{ins.ID},
		})
		require.NoError(t, err)
		assert.Equal(t, "truth", string(pov.Kind))

		_, err = service.CreateSpikyPOV(ctx, CreatePOVInput{
			TaskID:     task.ID,
			Kind:       "myth",
			Statement:  "cites a ghost",
			InsightIDs: []string{"missing-insight"},
		})
		assert.True(t, IsValidationError(err))

		_, err = service.CreateSpikyPOV(ctx, CreatePOVInput{
			TaskID: task.ID, Kind: "opinion", Statement: "bad kind",
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("stats partition truths and myths", func(t *testing.T) {
		_, err := service.CreateSpikyPOV(ctx, CreatePOVInput{
			TaskID: task.ID, Kind: "myth", Statement: "Everyone is equally productive at home.",
		})
		require.NoError(t, err)

		stats, err := service.GetStats(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, stats.TotalInsights)
		assert.Equal(t, 1, stats.TotalTruths)
		assert.Equal(t, 1, stats.TotalMyths)
	})
}

func TestDOKService_ReportSections(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDOKService(client.Client)
	ctx := context.Background()

	task := createTestTask(t, client.Client)

	created, err := service.SaveReportSection(ctx, task.ID,
		reportsection.SectionKeyFindings, "Initial findings.", nil, 0)
	require.NoError(t, err)

	// Saving the same section again replaces its content.
	updated, err := service.SaveReportSection(ctx, task.ID,
		reportsection.SectionKeyFindings, "Revised findings.", []string{"s1"}, 0)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	sections, err := service.ListReportSections(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, "Revised findings.", sections[0].Content)

	_, err = service.SaveReportSection(ctx, task.ID, "freeform", "x", nil, 0)
	assert.True(t, IsValidationError(err))
}

func TestDOKService_GetTaxonomy(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDOKService(client.Client)
	ctx := context.Background()

	task := createTestTask(t, client.Client)
	src := createTestSource(t, client.Client, "https://example.com/taxonomy")

	_, err := service.RecordSummary(ctx, RecordSummaryInput{
		TaskID: task.ID, SourceID: src.ID, Subtopic: "general",
		Summary: "Summary of the source.",
	})
	require.NoError(t, err)
	_, err = service.CreateKnowledgeNode(ctx, CreateNodeInput{
		TaskID: task.ID, Category: "general", Summary: "Root.",
	})
	require.NoError(t, err)

	resp, err := service.GetTaxonomy(ctx, task.ID)
	require.NoError(t, err)
	assert.Len(t, resp.Summaries, 1)
	assert.Len(t, resp.Tree.Roots, 1)
	assert.Equal(t, 1, resp.Stats.TotalSummaries)
	assert.Equal(t, 1, resp.Stats.TotalNodes)
}
