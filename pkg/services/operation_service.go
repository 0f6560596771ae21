package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/trilogy-group/nexus-agents/ent"
	"github.com/trilogy-group/nexus-agents/ent/evidence"
	"github.com/trilogy-group/nexus-agents/ent/operation"
	"github.com/trilogy-group/nexus-agents/pkg/models"
)

// OperationService is the read side of the operation ledger: listing a
// task's operations and evidence for the API. Writes (transitions, evidence
// capture) go through pkg/ledger so they stay transactional.
type OperationService struct {
	client *ent.Client
}

// NewOperationService creates a new OperationService.
func NewOperationService(client *ent.Client) *OperationService {
	return &OperationService{client: client}
}

// GetOperation retrieves an operation by ID.
func (s *OperationService) GetOperation(ctx context.Context, operationID string) (*ent.Operation, error) {
	op, err := s.client.Operation.Query().
		Where(operation.IDEQ(operationID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get operation: %w", err)
	}
	return op, nil
}

// ListOperationsForTask returns a task's operations in submission order with
// their evidence counts.
func (s *OperationService) ListOperationsForTask(ctx context.Context, taskID string) ([]models.OperationWithEvidence, error) {
	ops, err := s.client.Operation.Query().
		Where(operation.TaskIDEQ(taskID)).
		Order(ent.Asc(operation.FieldCreatedAt), ent.Asc(operation.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list operations: %w", err)
	}

	counts, err := s.evidenceCountsByOperation(ctx, taskID)
	if err != nil {
		return nil, err
	}

	out := make([]models.OperationWithEvidence, 0, len(ops))
	for _, op := range ops {
		out = append(out, models.OperationWithEvidence{
			Operation:     op,
			EvidenceCount: counts[op.ID],
		})
	}
	return out, nil
}

func (s *OperationService) evidenceCountsByOperation(ctx context.Context, taskID string) (map[string]int, error) {
	var rows []struct {
		OperationID string `json:"operation_id"`
		Count       int    `json:"count"`
	}
	err := s.client.Evidence.Query().
		Where(evidence.TaskIDEQ(taskID)).
		GroupBy(evidence.FieldOperationID).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count evidence: %w", err)
	}
	counts := make(map[string]int, len(rows))
	for _, r := range rows {
		counts[r.OperationID] = r.Count
	}
	return counts, nil
}

// GetEvidenceForTask returns a task's evidence rows plus the aggregate block
// the evidence endpoint exposes.
func (s *OperationService) GetEvidenceForTask(ctx context.Context, taskID string) (*models.EvidenceResponse, error) {
	rows, err := s.client.Evidence.Query().
		Where(evidence.TaskIDEQ(taskID)).
		Order(ent.Asc(evidence.FieldCreatedAt), ent.Asc(evidence.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list evidence: %w", err)
	}

	providers := make(map[string]struct{})
	operations := make(map[string]struct{})
	for _, row := range rows {
		if row.Provider != nil && *row.Provider != "" {
			providers[*row.Provider] = struct{}{}
		}
		operations[row.OperationID] = struct{}{}
	}
	providerList := make([]string, 0, len(providers))
	for p := range providers {
		providerList = append(providerList, p)
	}
	sort.Strings(providerList)

	return &models.EvidenceResponse{
		Evidence: rows,
		EvidenceAggregate: models.EvidenceAggregate{
			TotalEvidenceItems:  len(rows),
			SearchProvidersUsed: providerList,
			OperationsCount:     len(operations),
		},
	}, nil
}

// ListEvidenceForOperation returns one operation's evidence rows in insertion
// order.
func (s *OperationService) ListEvidenceForOperation(ctx context.Context, operationID string) ([]*ent.Evidence, error) {
	rows, err := s.client.Evidence.Query().
		Where(evidence.OperationIDEQ(operationID)).
		Order(ent.Asc(evidence.FieldCreatedAt), ent.Asc(evidence.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list operation evidence: %w", err)
	}
	return rows, nil
}
