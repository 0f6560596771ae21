package models

import "github.com/trilogy-group/nexus-agents/ent"

// KnowledgeTreeNode is one node of the hierarchical knowledge tree with its
// children resolved.
type KnowledgeTreeNode struct {
	Node     *ent.KnowledgeNode   `json:"node"`
	Children []*KnowledgeTreeNode `json:"children,omitempty"`
}

// KnowledgeTree is the full taxonomy for one task.
type KnowledgeTree struct {
	TaskID string               `json:"task_id"`
	Roots  []*KnowledgeTreeNode `json:"roots"`
}

// DOKResponse is the combined taxonomy payload for the retrieval endpoint.
type DOKResponse struct {
	Summaries []*ent.SourceSummary `json:"source_summaries"`
	Tree      *KnowledgeTree       `json:"knowledge_tree"`
	Insights  []*ent.Insight       `json:"insights"`
	SpikyPOVs []*ent.SpikyPOV      `json:"spiky_povs"`
	Stats     DOKStats             `json:"stats"`
}
