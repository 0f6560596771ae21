package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/trilogy-group/nexus-agents/ent"
	"github.com/trilogy-group/nexus-agents/ent/insight"
	"github.com/trilogy-group/nexus-agents/ent/knowledgenode"
	"github.com/trilogy-group/nexus-agents/ent/knowledgenodesource"
	"github.com/trilogy-group/nexus-agents/ent/reportsection"
	"github.com/trilogy-group/nexus-agents/ent/sourcesummary"
	"github.com/trilogy-group/nexus-agents/ent/spikypov"
	"github.com/trilogy-group/nexus-agents/pkg/models"
)

// MaxKnowledgeTreeDepth bounds the taxonomy hierarchy. Roots sit at depth 1.
const MaxKnowledgeTreeDepth = 4

// DOKService persists the depth-of-knowledge taxonomy built during an
// analytical task: source summaries (DOK 1-2), the knowledge tree, insights
// (DOK 3) and spiky points of view (DOK 4).
type DOKService struct {
	client *ent.Client
}

// NewDOKService creates a new DOKService.
func NewDOKService(client *ent.Client) *DOKService {
	return &DOKService{client: client}
}

// RecordSummaryInput describes one source summary for a subtopic.
type RecordSummaryInput struct {
	TaskID    string
	SourceID  string
	Subtopic  string
	Summary   string
	DOK1Facts []string
	DOKLevel  int
}

// RecordSummary stores a source summary. Re-running a summarize operation for
// the same (task, source, subtopic) returns the existing row instead of
// duplicating it, so retried operations stay idempotent.
func (s *DOKService) RecordSummary(ctx context.Context, in RecordSummaryInput) (*ent.SourceSummary, error) {
	if in.Summary == "" {
		return nil, NewValidationError("summary", "required")
	}
	if in.DOKLevel == 0 {
		in.DOKLevel = 1
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	created, err := s.client.SourceSummary.Create().
		SetID(uuid.New().String()).
		SetTaskID(in.TaskID).
		SetSourceID(in.SourceID).
		SetSubtopic(in.Subtopic).
		SetSummary(in.Summary).
		SetDok1Facts(in.DOK1Facts).
		SetDokLevel(in.DOKLevel).
		Save(writeCtx)
	if err == nil {
		return created, nil
	}
	if !ent.IsConstraintError(err) {
		return nil, fmt.Errorf("failed to record summary: %w", err)
	}

	existing, qerr := s.client.SourceSummary.Query().
		Where(
			sourcesummary.TaskIDEQ(in.TaskID),
			sourcesummary.SourceIDEQ(in.SourceID),
			sourcesummary.SubtopicEQ(in.Subtopic),
		).
		Only(writeCtx)
	if qerr != nil {
		return nil, fmt.Errorf("failed to load existing summary: %w", qerr)
	}
	return existing, nil
}

// SupersedeSummary writes a replacement summary and marks the old one as
// superseded by it. The old row stays for lineage.
func (s *DOKService) SupersedeSummary(ctx context.Context, summaryID string, in RecordSummaryInput) (*ent.SourceSummary, error) {
	if in.Summary == "" {
		return nil, NewValidationError("summary", "required")
	}
	if in.DOKLevel == 0 {
		in.DOKLevel = 2
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	old, err := tx.SourceSummary.Query().
		Where(sourcesummary.IDEQ(summaryID)).
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load summary: %w", err)
	}
	if old.SupersededBy != nil {
		return nil, fmt.Errorf("%w: summary already superseded", ErrInvalidInput)
	}

	replacement, err := tx.SourceSummary.Create().
		SetID(uuid.New().String()).
		SetTaskID(old.TaskID).
		// A replacement lands on a fresh subtopic key so the unique index
		// keeps pointing the dedupe path at the active row.
		SetSourceID(old.SourceID).
		SetSubtopic(in.Subtopic).
		SetSummary(in.Summary).
		SetDok1Facts(in.DOK1Facts).
		SetDokLevel(in.DOKLevel).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to create replacement summary: %w", err)
	}

	if err := tx.SourceSummary.UpdateOneID(summaryID).
		SetSupersededBy(replacement.ID).
		Exec(writeCtx); err != nil {
		return nil, fmt.Errorf("failed to mark summary superseded: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit summary supersede: %w", err)
	}
	return replacement, nil
}

// ListSummaries returns the active (non-superseded) summaries for a task.
func (s *DOKService) ListSummaries(ctx context.Context, taskID string) ([]*ent.SourceSummary, error) {
	summaries, err := s.client.SourceSummary.Query().
		Where(
			sourcesummary.TaskIDEQ(taskID),
			sourcesummary.SupersededByIsNil(),
		).
		Order(ent.Asc(sourcesummary.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list summaries: %w", err)
	}
	return summaries, nil
}

// CreateNodeInput describes one knowledge tree node.
type CreateNodeInput struct {
	TaskID      string
	ParentID    string // empty for a root node
	Category    string
	Subcategory string
	Summary     string
	DOKLevel    int
	Position    int
}

// CreateKnowledgeNode adds a node to the task's knowledge tree. The parent
// must belong to the same task, and the resulting chain must stay within
// MaxKnowledgeTreeDepth levels.
func (s *DOKService) CreateKnowledgeNode(ctx context.Context, in CreateNodeInput) (*ent.KnowledgeNode, error) {
	if in.Category == "" {
		return nil, NewValidationError("category", "required")
	}
	if in.Summary == "" {
		return nil, NewValidationError("summary", "required")
	}
	if in.DOKLevel == 0 {
		in.DOKLevel = 2
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if in.ParentID != "" {
		depth, err := s.nodeDepth(writeCtx, in.TaskID, in.ParentID)
		if err != nil {
			return nil, err
		}
		if depth >= MaxKnowledgeTreeDepth {
			return nil, NewValidationError("parent_id",
				fmt.Sprintf("tree depth exceeds %d levels", MaxKnowledgeTreeDepth))
		}
	}

	builder := s.client.KnowledgeNode.Create().
		SetID(uuid.New().String()).
		SetTaskID(in.TaskID).
		SetCategory(in.Category).
		SetSubcategory(in.Subcategory).
		SetSummary(in.Summary).
		SetDokLevel(in.DOKLevel).
		SetPosition(in.Position)
	if in.ParentID != "" {
		builder.SetParentID(in.ParentID)
	}

	node, err := builder.Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to create knowledge node: %w", err)
	}
	return node, nil
}

// nodeDepth walks the parent chain and returns the node's depth, where a root
// is depth 1. Errors if the chain crosses tasks or exceeds the depth bound
// (which would indicate a cycle).
func (s *DOKService) nodeDepth(ctx context.Context, taskID, nodeID string) (int, error) {
	depth := 0
	current := nodeID
	for current != "" {
		depth++
		if depth > MaxKnowledgeTreeDepth {
			return 0, NewValidationError("parent_id", "parent chain too deep or cyclic")
		}
		node, err := s.client.KnowledgeNode.Query().
			Where(knowledgenode.IDEQ(current)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return 0, NewValidationError("parent_id", "parent node not found")
			}
			return 0, fmt.Errorf("failed to walk node chain: %w", err)
		}
		if node.TaskID != taskID {
			return 0, NewValidationError("parent_id", "parent belongs to a different task")
		}
		if node.ParentID == nil {
			break
		}
		current = *node.ParentID
	}
	return depth, nil
}

// LinkNodeSource attaches a source to a knowledge node with a relevance
// score. Linking the same pair twice is a no-op.
func (s *DOKService) LinkNodeSource(ctx context.Context, nodeID, sourceID string, relevance float64) error {
	if relevance < 0 {
		relevance = 0
	}
	if relevance > 1 {
		relevance = 1
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.KnowledgeNodeSource.Create().
		SetID(uuid.New().String()).
		SetNodeID(nodeID).
		SetSourceID(sourceID).
		SetRelevanceScore(relevance).
		Exec(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil
		}
		return fmt.Errorf("failed to link node source: %w", err)
	}
	return nil
}

// NodeSourceIDs returns the source IDs linked to a node, highest relevance
// first.
func (s *DOKService) NodeSourceIDs(ctx context.Context, nodeID string) ([]string, error) {
	links, err := s.client.KnowledgeNodeSource.Query().
		Where(knowledgenodesource.NodeIDEQ(nodeID)).
		Order(ent.Desc(knowledgenodesource.FieldRelevanceScore)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list node sources: %w", err)
	}
	ids := make([]string, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.SourceID)
	}
	return ids, nil
}

// CreateInsightInput describes one DOK level 3 insight.
type CreateInsightInput struct {
	TaskID          string
	Category        string
	InsightText     string
	ConfidenceScore float64
	SourceIDs       []string
	Position        int
}

// CreateInsight stores an insight. Confidence is clamped to [0, 1]; at least
// one supporting source is required.
func (s *DOKService) CreateInsight(ctx context.Context, in CreateInsightInput) (*ent.Insight, error) {
	if in.InsightText == "" {
		return nil, NewValidationError("insight_text", "required")
	}
	if len(in.SourceIDs) == 0 {
		return nil, NewValidationError("source_ids", "at least one supporting source required")
	}
	if in.ConfidenceScore < 0 {
		in.ConfidenceScore = 0
	}
	if in.ConfidenceScore > 1 {
		in.ConfidenceScore = 1
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	row, err := s.client.Insight.Create().
		SetID(uuid.New().String()).
		SetTaskID(in.TaskID).
		SetCategory(in.Category).
		SetInsightText(in.InsightText).
		SetConfidenceScore(in.ConfidenceScore).
		SetSourceIds(in.SourceIDs).
		SetPosition(in.Position).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to create insight: %w", err)
	}
	return row, nil
}

// ListInsights returns a task's insights in position order.
func (s *DOKService) ListInsights(ctx context.Context, taskID string) ([]*ent.Insight, error) {
	insights, err := s.client.Insight.Query().
		Where(insight.TaskIDEQ(taskID)).
		Order(ent.Asc(insight.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list insights: %w", err)
	}
	return insights, nil
}

// CreatePOVInput describes one DOK level 4 spiky point of view.
type CreatePOVInput struct {
	TaskID     string
	Kind       string // truth or myth
	Statement  string
	Reasoning  string
	InsightIDs []string
	Position   int
}

// CreateSpikyPOV stores a contrarian truth or debunked myth. Every referenced
// insight must exist on the same task.
func (s *DOKService) CreateSpikyPOV(ctx context.Context, in CreatePOVInput) (*ent.SpikyPOV, error) {
	if in.Statement == "" {
		return nil, NewValidationError("statement", "required")
	}
	kind := spikypov.Kind(in.Kind)
	if err := spikypov.KindValidator(kind); err != nil {
		return nil, NewValidationError("kind", "must be truth or myth")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if len(in.InsightIDs) > 0 {
		count, err := s.client.Insight.Query().
			Where(
				insight.IDIn(in.InsightIDs...),
				insight.TaskIDEQ(in.TaskID),
			).
			Count(writeCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to verify insights: %w", err)
		}
		if count != len(in.InsightIDs) {
			return nil, NewValidationError("insight_ids",
				"references insights that do not exist on this task")
		}
	}

	row, err := s.client.SpikyPOV.Create().
		SetID(uuid.New().String()).
		SetTaskID(in.TaskID).
		SetKind(kind).
		SetStatement(in.Statement).
		SetReasoning(in.Reasoning).
		SetInsightIds(in.InsightIDs).
		SetPosition(in.Position).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to create spiky pov: %w", err)
	}
	return row, nil
}

// ListSpikyPOVs returns a task's POVs in position order.
func (s *DOKService) ListSpikyPOVs(ctx context.Context, taskID string) ([]*ent.SpikyPOV, error) {
	povs, err := s.client.SpikyPOV.Query().
		Where(spikypov.TaskIDEQ(taskID)).
		Order(ent.Asc(spikypov.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list spiky povs: %w", err)
	}
	return povs, nil
}

// SaveReportSection stores or replaces one named section of the final report.
func (s *DOKService) SaveReportSection(ctx context.Context, taskID string, section reportsection.Section, content string, sourceIDs []string, position int) (*ent.ReportSection, error) {
	if err := reportsection.SectionValidator(section); err != nil {
		return nil, NewValidationError("section", "unknown report section")
	}
	if content == "" {
		return nil, NewValidationError("content", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := s.client.ReportSection.Query().
		Where(
			reportsection.TaskIDEQ(taskID),
			reportsection.SectionEQ(section),
		).
		Only(writeCtx)
	if err == nil {
		updated, uerr := existing.Update().
			SetContent(content).
			SetSourceIds(sourceIDs).
			SetPosition(position).
			Save(writeCtx)
		if uerr != nil {
			return nil, fmt.Errorf("failed to update report section: %w", uerr)
		}
		return updated, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query report section: %w", err)
	}

	created, err := s.client.ReportSection.Create().
		SetID(uuid.New().String()).
		SetTaskID(taskID).
		SetSection(section).
		SetContent(content).
		SetSourceIds(sourceIDs).
		SetPosition(position).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to create report section: %w", err)
	}
	return created, nil
}

// ListReportSections returns a task's report sections in position order.
func (s *DOKService) ListReportSections(ctx context.Context, taskID string) ([]*ent.ReportSection, error) {
	sections, err := s.client.ReportSection.Query().
		Where(reportsection.TaskIDEQ(taskID)).
		Order(ent.Asc(reportsection.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list report sections: %w", err)
	}
	return sections, nil
}

// GetKnowledgeTree assembles the task's knowledge nodes into a tree. Node
// order within a level follows the position field.
func (s *DOKService) GetKnowledgeTree(ctx context.Context, taskID string) (*models.KnowledgeTree, error) {
	nodes, err := s.client.KnowledgeNode.Query().
		Where(knowledgenode.TaskIDEQ(taskID)).
		Order(ent.Asc(knowledgenode.FieldPosition), ent.Asc(knowledgenode.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load knowledge nodes: %w", err)
	}

	byID := make(map[string]*models.KnowledgeTreeNode, len(nodes))
	for _, n := range nodes {
		byID[n.ID] = &models.KnowledgeTreeNode{Node: n}
	}

	tree := &models.KnowledgeTree{TaskID: taskID}
	for _, n := range nodes {
		wrapped := byID[n.ID]
		if n.ParentID == nil {
			tree.Roots = append(tree.Roots, wrapped)
			continue
		}
		parent, ok := byID[*n.ParentID]
		if !ok {
			// Dangling parent reference; surface the node as a root rather
			// than dropping it.
			tree.Roots = append(tree.Roots, wrapped)
			continue
		}
		parent.Children = append(parent.Children, wrapped)
	}
	return tree, nil
}

// GetStats aggregates taxonomy counts for a task.
func (s *DOKService) GetStats(ctx context.Context, taskID string) (models.DOKStats, error) {
	var stats models.DOKStats
	var err error

	if stats.TotalSummaries, err = s.client.SourceSummary.Query().
		Where(sourcesummary.TaskIDEQ(taskID), sourcesummary.SupersededByIsNil()).
		Count(ctx); err != nil {
		return stats, fmt.Errorf("failed to count summaries: %w", err)
	}
	if stats.TotalNodes, err = s.client.KnowledgeNode.Query().
		Where(knowledgenode.TaskIDEQ(taskID)).
		Count(ctx); err != nil {
		return stats, fmt.Errorf("failed to count knowledge nodes: %w", err)
	}
	if stats.TotalInsights, err = s.client.Insight.Query().
		Where(insight.TaskIDEQ(taskID)).
		Count(ctx); err != nil {
		return stats, fmt.Errorf("failed to count insights: %w", err)
	}
	if stats.TotalTruths, err = s.client.SpikyPOV.Query().
		Where(spikypov.TaskIDEQ(taskID), spikypov.KindEQ(spikypov.KindTruth)).
		Count(ctx); err != nil {
		return stats, fmt.Errorf("failed to count truths: %w", err)
	}
	if stats.TotalMyths, err = s.client.SpikyPOV.Query().
		Where(spikypov.TaskIDEQ(taskID), spikypov.KindEQ(spikypov.KindMyth)).
		Count(ctx); err != nil {
		return stats, fmt.Errorf("failed to count myths: %w", err)
	}
	return stats, nil
}

// GetTaxonomy returns the full DOK payload for the retrieval endpoint.
func (s *DOKService) GetTaxonomy(ctx context.Context, taskID string) (*models.DOKResponse, error) {
	summaries, err := s.ListSummaries(ctx, taskID)
	if err != nil {
		return nil, err
	}
	tree, err := s.GetKnowledgeTree(ctx, taskID)
	if err != nil {
		return nil, err
	}
	insights, err := s.ListInsights(ctx, taskID)
	if err != nil {
		return nil, err
	}
	povs, err := s.ListSpikyPOVs(ctx, taskID)
	if err != nil {
		return nil, err
	}
	stats, err := s.GetStats(ctx, taskID)
	if err != nil {
		return nil, err
	}
	return &models.DOKResponse{
		Summaries: summaries,
		Tree:      tree,
		Insights:  insights,
		SpikyPOVs: povs,
		Stats:     stats,
	}, nil
}
