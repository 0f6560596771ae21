package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/trilogy-group/nexus-agents/ent"
	"github.com/trilogy-group/nexus-agents/ent/source"
)

// reliabilityBump is added to a source's reliability score on each repeat
// observation, capped at 1.0. Sources seen across many operations are more
// trustworthy than one-off hits.
const reliabilityBump = 0.05

// SourceService manages the deduplicated source catalog. Sources are global,
// not task-scoped: the same document observed by two tasks is one row.
type SourceService struct {
	client *ent.Client
}

// NewSourceService creates a new SourceService.
func NewSourceService(client *ent.Client) *SourceService {
	return &SourceService{client: client}
}

// ObservedSource is a document observed during a search or fetch operation.
type ObservedSource struct {
	URL         string
	Title       string
	Description string
	Provider    string
	Content     string
}

// ContentHash returns the hex SHA-256 of the document content. Identity is
// (url, content_hash), so a page that changed content becomes a new source.
func ContentHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// RecordObservation upserts a source observation. A repeat observation of the
// same (url, content_hash) increments observation_count and bumps the
// reliability score instead of creating a duplicate row.
func (s *SourceService) RecordObservation(ctx context.Context, obs ObservedSource) (*ent.Source, error) {
	if obs.URL == "" {
		return nil, NewValidationError("url", "required")
	}
	hash := ContentHash(obs.Content)

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := s.client.Source.Query().
		Where(source.URLEQ(obs.URL), source.ContentHashEQ(hash)).
		Only(writeCtx)
	if err == nil {
		return s.touchSource(writeCtx, existing)
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query source: %w", err)
	}

	created, err := s.client.Source.Create().
		SetID(uuid.New().String()).
		SetURL(obs.URL).
		SetTitle(obs.Title).
		SetDescription(obs.Description).
		SetProvider(obs.Provider).
		SetContentHash(hash).
		SetAccessedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost the race to a concurrent observer. Fall back to the
			// row that won.
			winner, qerr := s.client.Source.Query().
				Where(source.URLEQ(obs.URL), source.ContentHashEQ(hash)).
				Only(writeCtx)
			if qerr != nil {
				return nil, fmt.Errorf("failed to resolve source race: %w", qerr)
			}
			return s.touchSource(writeCtx, winner)
		}
		return nil, fmt.Errorf("failed to create source: %w", err)
	}
	return created, nil
}

// touchSource records a repeat observation on an existing source.
func (s *SourceService) touchSource(ctx context.Context, src *ent.Source) (*ent.Source, error) {
	score := src.ReliabilityScore + reliabilityBump
	if score > 1.0 {
		score = 1.0
	}
	updated, err := src.Update().
		AddObservationCount(1).
		SetReliabilityScore(score).
		SetAccessedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update source observation: %w", err)
	}
	return updated, nil
}

// GetSource retrieves a source by ID.
func (s *SourceService) GetSource(ctx context.Context, sourceID string) (*ent.Source, error) {
	src, err := s.client.Source.Query().
		Where(source.IDEQ(sourceID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get source: %w", err)
	}
	return src, nil
}

// GetSourcesByIDs retrieves a batch of sources. Missing IDs are skipped, not
// an error; callers resolving citation lists tolerate deleted sources.
func (s *SourceService) GetSourcesByIDs(ctx context.Context, sourceIDs []string) ([]*ent.Source, error) {
	if len(sourceIDs) == 0 {
		return nil, nil
	}
	sources, err := s.client.Source.Query().
		Where(source.IDIn(sourceIDs...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get sources: %w", err)
	}
	return sources, nil
}

// ListByURL returns every content version observed for a URL, newest first.
func (s *SourceService) ListByURL(ctx context.Context, url string) ([]*ent.Source, error) {
	sources, err := s.client.Source.Query().
		Where(source.URLEQ(url)).
		Order(ent.Desc(source.FieldAccessedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sources by url: %w", err)
	}
	return sources, nil
}
