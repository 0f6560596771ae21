// Package artifacts is the local object store for binary task outputs (CSV
// and XLSX exports, rendered reports). Files live at
// {root}/{task_id}/{artifact_uuid}.{ext}; every stored file gets an ent
// Artifact row carrying its checksum and size, and an artifact.created event.
package artifacts

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/trilogy-group/nexus-agents/ent"
	"github.com/trilogy-group/nexus-agents/ent/artifact"
	"github.com/trilogy-group/nexus-agents/pkg/events"
	"github.com/trilogy-group/nexus-agents/pkg/services"
)

// Publisher emits artifact.created events. Satisfied by
// *events.EventPublisher; nil disables publication.
type Publisher interface {
	PublishArtifactCreated(ctx context.Context, payload events.ArtifactCreatedPayload) error
}

// Store writes artifacts under a root directory and registers them in the
// knowledge store. Safe for concurrent use.
type Store struct {
	root      string
	client    *ent.Client
	publisher Publisher
	logger    *slog.Logger
}

// NewStore wires the artifact store. The root directory is created lazily on
// the first write.
func NewStore(root string, client *ent.Client, publisher Publisher, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		root:      root,
		client:    client,
		publisher: publisher,
		logger:    logger.With("component", "artifacts"),
	}
}

// Put stores data as a new artifact for the task and records it. The path
// persisted on the row is relative to the store root so the root can move
// between deployments.
func (s *Store) Put(ctx context.Context, taskID, kind, ext, contentType string, data []byte) (*ent.Artifact, error) {
	if taskID == "" {
		return nil, errors.New("artifact requires a task id")
	}

	artifactID := uuid.New().String()
	relPath := filepath.Join(taskID, artifactID+"."+ext)
	absPath := filepath.Join(s.root, relPath)

	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create artifact directory: %w", err)
	}
	if err := os.WriteFile(absPath, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write artifact: %w", err)
	}

	sum := sha256.Sum256(data)
	row, err := s.client.Artifact.Create().
		SetID(artifactID).
		SetTaskID(taskID).
		SetKind(kind).
		SetPath(relPath).
		SetContentType(contentType).
		SetChecksum(hex.EncodeToString(sum[:])).
		SetSizeBytes(int64(len(data))).
		Save(ctx)
	if err != nil {
		// The row is the source of truth; an unregistered file is garbage.
		if rmErr := os.Remove(absPath); rmErr != nil {
			s.logger.Warn("failed to remove orphaned artifact file",
				"path", absPath, "error", rmErr)
		}
		return nil, fmt.Errorf("failed to register artifact: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishArtifactCreated(ctx, events.ArtifactCreatedPayload{
			TaskID:     taskID,
			ArtifactID: row.ID,
			Kind:       kind,
			SizeBytes:  row.SizeBytes,
		}); err != nil {
			s.logger.Warn("failed to publish artifact.created",
				"task_id", taskID, "artifact_id", row.ID, "error", err)
		}
	}

	s.logger.Info("artifact stored",
		"task_id", taskID, "artifact_id", row.ID, "kind", kind, "size_bytes", row.SizeBytes)
	return row, nil
}

// Read returns the bytes and row of one artifact, verifying the checksum.
func (s *Store) Read(ctx context.Context, artifactID string) ([]byte, *ent.Artifact, error) {
	row, err := s.client.Artifact.Get(ctx, artifactID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, fmt.Errorf("artifact %s: %w", artifactID, services.ErrNotFound)
		}
		return nil, nil, fmt.Errorf("failed to load artifact: %w", err)
	}

	data, err := os.ReadFile(filepath.Join(s.root, row.Path))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read artifact file: %w", err)
	}

	sum := sha256.Sum256(data)
	if hex.EncodeToString(sum[:]) != row.Checksum {
		return nil, nil, fmt.Errorf("artifact %s: checksum mismatch", artifactID)
	}
	return data, row, nil
}

// Latest returns the most recent artifact of the given kind for a task, or
// services.ErrNotFound when none exists.
func (s *Store) Latest(ctx context.Context, taskID, kind string) (*ent.Artifact, error) {
	row, err := s.client.Artifact.Query().
		Where(artifact.TaskID(taskID), artifact.Kind(kind)).
		Order(ent.Desc(artifact.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%s artifact for task %s: %w", kind, taskID, services.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query artifacts: %w", err)
	}
	return row, nil
}

// RemoveTask deletes the task's artifact directory. Rows are removed by the
// task cascade; this cleans up the files.
func (s *Store) RemoveTask(taskID string) error {
	if taskID == "" {
		return errors.New("task id required")
	}
	return os.RemoveAll(filepath.Join(s.root, taskID))
}
