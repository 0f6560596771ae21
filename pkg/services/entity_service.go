package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/trilogy-group/nexus-agents/ent"
	"github.com/trilogy-group/nexus-agents/ent/aggregatedentity"
	"github.com/trilogy-group/nexus-agents/pkg/entity"
)

// EntityService persists consolidated entities produced by entity resolution.
// The scope of an entity is the project when the task belongs to one, else
// the task itself; cross-task consolidation happens inside a project scope.
type EntityService struct {
	client *ent.Client
}

// NewEntityService creates a new EntityService.
func NewEntityService(client *ent.Client) *EntityService {
	return &EntityService{client: client}
}

// UpsertResolved merges one resolved entity into the scope. An existing row
// matched by unique identifier (or normalized name when no identifier is
// known) has its lineage merged and values re-elected; repeat upserts with
// identical inputs leave the row unchanged apart from updated_at.
func (s *EntityService) UpsertResolved(ctx context.Context, scopeID, entityType string, resolved entity.Resolved) (*ent.AggregatedEntity, error) {
	if scopeID == "" {
		return nil, NewValidationError("scope_id", "required")
	}
	if entityType == "" {
		return nil, NewValidationError("entity_type", "required")
	}
	if resolved.Name == "" {
		return nil, NewValidationError("name", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := s.findMatch(writeCtx, scopeID, entityType, resolved)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return s.create(writeCtx, scopeID, entityType, resolved)
	}
	return s.merge(writeCtx, existing, resolved)
}

// findMatch locates the row this resolved entity consolidates into.
func (s *EntityService) findMatch(ctx context.Context, scopeID, entityType string, resolved entity.Resolved) (*ent.AggregatedEntity, error) {
	query := s.client.AggregatedEntity.Query().
		Where(
			aggregatedentity.ScopeIDEQ(scopeID),
			aggregatedentity.EntityTypeEQ(entityType),
		)
	if resolved.UniqueIdentifier != "" {
		query = query.Where(aggregatedentity.UniqueIdentifierEQ(resolved.UniqueIdentifier))
	} else {
		query = query.Where(
			aggregatedentity.NormalizedNameEQ(resolved.NormalizedName),
			aggregatedentity.UniqueIdentifierEQ(""),
		)
	}
	match, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to match entity: %w", err)
	}
	return match, nil
}

func (s *EntityService) create(ctx context.Context, scopeID, entityType string, resolved entity.Resolved) (*ent.AggregatedEntity, error) {
	lineage, err := lineageToJSON(resolved.Lineage)
	if err != nil {
		return nil, err
	}

	row, err := s.client.AggregatedEntity.Create().
		SetID(uuid.New().String()).
		SetScopeID(scopeID).
		SetEntityType(entityType).
		SetName(resolved.Name).
		SetNormalizedName(resolved.NormalizedName).
		SetUniqueIdentifier(resolved.UniqueIdentifier).
		SetConsolidatedAttributes(attributesToJSON(resolved.Attributes)).
		SetDataLineage(lineage).
		SetConfidenceScore(resolved.ConfidenceScore).
		SetSourceTasks(resolved.SourceTasks).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: entity identifier already taken in scope", ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create entity: %w", err)
	}
	return row, nil
}

// merge folds the new observations into the stored lineage and re-elects
// every attribute value from the combined history. Observations are
// deduplicated on (value, task, source, timestamp), which makes the upsert
// idempotent under identical inputs.
func (s *EntityService) merge(ctx context.Context, existing *ent.AggregatedEntity, resolved entity.Resolved) (*ent.AggregatedEntity, error) {
	stored, err := lineageFromJSON(existing.DataLineage)
	if err != nil {
		return nil, err
	}

	combined := entity.MergeLineages(stored, resolved.Lineage)
	merged := entity.Reconsolidate(entity.Resolved{
		Name:             existing.Name,
		NormalizedName:   existing.NormalizedName,
		UniqueIdentifier: existing.UniqueIdentifier,
		Lineage:          combined,
		SourceTasks:      existing.SourceTasks,
	}, resolved, time.Now())

	lineage, err := lineageToJSON(merged.Lineage)
	if err != nil {
		return nil, err
	}

	row, err := existing.Update().
		SetName(merged.Name).
		SetNormalizedName(merged.NormalizedName).
		SetConsolidatedAttributes(attributesToJSON(merged.Attributes)).
		SetDataLineage(lineage).
		SetConfidenceScore(merged.ConfidenceScore).
		SetSourceTasks(merged.SourceTasks).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update entity: %w", err)
	}
	return row, nil
}

// ListEntities returns the consolidated entities for a scope, ordered by
// normalized name for stable exports.
func (s *EntityService) ListEntities(ctx context.Context, scopeID, entityType string) ([]*ent.AggregatedEntity, error) {
	query := s.client.AggregatedEntity.Query().
		Where(aggregatedentity.ScopeIDEQ(scopeID))
	if entityType != "" {
		query = query.Where(aggregatedentity.EntityTypeEQ(entityType))
	}
	rows, err := query.
		Order(ent.Asc(aggregatedentity.FieldNormalizedName), ent.Asc(aggregatedentity.FieldUniqueIdentifier)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list entities: %w", err)
	}
	return rows, nil
}

// DeleteScope removes every consolidated entity in a scope. Used when a
// task-scoped aggregation is re-run from scratch.
func (s *EntityService) DeleteScope(ctx context.Context, scopeID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.AggregatedEntity.Delete().
		Where(aggregatedentity.ScopeIDEQ(scopeID)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete scope entities: %w", err)
	}
	return count, nil
}

// attributesToJSON widens the attribute map for the JSON column.
func attributesToJSON(attrs map[string]string) map[string]interface{} {
	out := make(map[string]interface{}, len(attrs))
	for k, v := range attrs {
		out[k] = v
	}
	return out
}

// lineageToJSON round-trips the typed lineage into the generic map the JSON
// column stores.
func lineageToJSON(lin entity.Lineage) (map[string]interface{}, error) {
	raw, err := json.Marshal(lin)
	if err != nil {
		return nil, fmt.Errorf("failed to encode lineage: %w", err)
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode lineage: %w", err)
	}
	return out, nil
}

// lineageFromJSON restores the typed lineage from the stored column.
func lineageFromJSON(data map[string]interface{}) (entity.Lineage, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return entity.Lineage{}, fmt.Errorf("failed to encode stored lineage: %w", err)
	}
	var lin entity.Lineage
	if err := json.Unmarshal(raw, &lin); err != nil {
		return entity.Lineage{}, fmt.Errorf("failed to decode stored lineage: %w", err)
	}
	if lin.Attributes == nil {
		lin.Attributes = make(map[string]entity.AttributeLineage)
	}
	return lin, nil
}
