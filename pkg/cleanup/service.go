// Package cleanup enforces data retention policies.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/trilogy-group/nexus-agents/pkg/config"
	"github.com/trilogy-group/nexus-agents/pkg/services"
)

// Service periodically enforces retention:
//   - Soft-deletes terminal research tasks past the retention window
//   - Removes persisted Event rows past their catchup TTL
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config       *config.RetentionConfig
	taskService  *services.TaskService
	eventService *services.EventService
	logger       *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates the retention service.
func NewService(
	cfg *config.RetentionConfig,
	taskService *services.TaskService,
	eventService *services.EventService,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		config:       cfg,
		taskService:  taskService,
		eventService: eventService,
		logger:       logger.With("component", "cleanup"),
	}
}

// Start launches the background sweep loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("retention service started",
		"task_retention_days", s.config.TaskRetentionDays,
		"event_ttl", s.config.EventTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("retention service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunOnce(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single retention sweep.
func (s *Service) RunOnce(ctx context.Context) {
	s.softDeleteOldTasks(ctx)
	s.cleanupExpiredEvents(ctx)
}

func (s *Service) softDeleteOldTasks(ctx context.Context) {
	if s.config.TaskRetentionDays <= 0 {
		return
	}
	count, err := s.taskService.SoftDeleteOldTasks(ctx, s.config.TaskRetentionDays)
	if err != nil {
		s.logger.Error("retention: soft-delete tasks failed", "error", err)
		return
	}
	if count > 0 {
		s.logger.Info("retention: soft-deleted old tasks", "count", count)
	}
}

func (s *Service) cleanupExpiredEvents(ctx context.Context) {
	if s.config.EventTTL <= 0 {
		return
	}
	count, err := s.eventService.CleanupExpiredEvents(ctx, s.config.EventTTL)
	if err != nil {
		s.logger.Error("retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		s.logger.Info("retention: cleaned up expired events", "count", count)
	}
}
