package orchestrator

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/trilogy-group/nexus-agents/ent"
	"github.com/trilogy-group/nexus-agents/ent/researchtask"
	"github.com/trilogy-group/nexus-agents/pkg/config"
	"github.com/trilogy-group/nexus-agents/pkg/models"
	"github.com/trilogy-group/nexus-agents/pkg/services"
)

// Runner polls for pending tasks, claims them for this pod, and executes them
// through the orchestrator under a parallelism bound. Claiming is the
// pending -> running transition: the row-locked forward-only status check
// makes exactly one pod win each task.
type Runner struct {
	podID  string
	orch   *Orchestrator
	tasks  *services.TaskService
	cfg    *config.RunnerConfig
	logger *slog.Logger

	sem    *semaphore.Weighted
	wg     sync.WaitGroup
	cancel context.CancelFunc
	done   chan struct{}
}

// NewRunner wires a runner around the orchestrator.
func NewRunner(podID string, orch *Orchestrator, tasks *services.TaskService,
	cfg *config.RunnerConfig, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		podID:  podID,
		orch:   orch,
		tasks:  tasks,
		cfg:    cfg,
		logger: logger.With("component", "runner", "pod_id", podID),
		sem:    semaphore.NewWeighted(int64(cfg.MaxParallelTasks)),
		done:   make(chan struct{}),
	}
}

// Start launches the polling loop. Call Stop to drain.
func (r *Runner) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(ctx)
	go r.pollLoop(ctx)
	r.logger.Info("runner started",
		"poll_interval", r.cfg.PollInterval,
		"max_parallel_tasks", r.cfg.MaxParallelTasks)
}

// Stop halts polling and waits for in-flight tasks to finish or for the
// context to expire.
func (r *Runner) Stop(ctx context.Context) error {
	if r.cancel != nil {
		r.cancel()
	}
	<-r.done

	finished := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(finished)
	}()
	select {
	case <-finished:
		r.logger.Info("runner stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Runner) pollLoop(ctx context.Context) {
	defer close(r.done)

	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	// Immediate first scan so a restart picks up backlog without waiting a
	// full tick.
	r.scan(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.scan(ctx)
		}
	}
}

// scan claims and launches as many pending tasks as the semaphore allows.
// Oldest first so backlog drains fairly.
func (r *Runner) scan(ctx context.Context) {
	resp, err := r.tasks.ListTasks(ctx, models.TaskFilters{
		Status: string(researchtask.StatusPending),
		Limit:  r.cfg.MaxParallelTasks * 2,
	})
	if err != nil {
		r.logger.Error("failed to list pending tasks", "error", err)
		return
	}

	// ListTasks orders newest first; walk backwards for FIFO pickup.
	for i := len(resp.Tasks) - 1; i >= 0; i-- {
		task := resp.Tasks[i]
		if !r.sem.TryAcquire(1) {
			return
		}
		if !r.claim(ctx, task) {
			r.sem.Release(1)
			continue
		}
		r.wg.Add(1)
		go func(task *ent.ResearchTask) {
			defer r.wg.Done()
			defer r.sem.Release(1)
			r.execute(ctx, task)
		}(task)
	}
}

// claim wins the task for this pod. A lost race surfaces as
// ErrInvalidTransition and is not an error.
func (r *Runner) claim(ctx context.Context, task *ent.ResearchTask) bool {
	if err := r.orch.transition(task, researchtask.StatusRunning); err != nil {
		if !errors.Is(err, services.ErrInvalidTransition) {
			r.logger.Error("failed to claim task", "task_id", task.ID, "error", err)
		}
		return false
	}
	if err := r.tasks.ClaimTask(ctx, task.ID, r.podID); err != nil {
		r.logger.Error("failed to stamp task claim", "task_id", task.ID, "error", err)
	}
	return true
}

// execute runs one claimed task with a heartbeat goroutine alongside.
func (r *Runner) execute(ctx context.Context, task *ent.ResearchTask) {
	hbCtx, stopHeartbeat := context.WithCancel(ctx)
	defer stopHeartbeat()
	go r.heartbeatLoop(hbCtx, task.ID)

	// RunTask records the terminal outcome itself; the error is already
	// handled when it returns.
	_ = r.orch.RunTask(ctx, task)
}

func (r *Runner) heartbeatLoop(ctx context.Context, taskID string) {
	ticker := time.NewTicker(r.cfg.HeartbeatInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.tasks.Heartbeat(context.Background(), taskID); err != nil {
				r.logger.Warn("task heartbeat failed", "task_id", taskID, "error", err)
			}
		}
	}
}

// RecoverOrphans fails tasks whose executing pod died. Run once at startup
// before polling begins.
func (r *Runner) RecoverOrphans(ctx context.Context) (int, error) {
	orphans, err := r.tasks.FindOrphanedTasks(ctx, r.cfg.HeartbeatTTL)
	if err != nil {
		return 0, err
	}
	for _, task := range orphans {
		podID := ""
		if task.PodID != nil {
			podID = *task.PodID
		}
		r.logger.Warn("recovering orphaned task",
			"task_id", task.ID, "status", task.Status, "pod_id", podID)
		r.orch.failTask(task, KindTimeout,
			errors.New("executing pod stopped heartbeating"))
	}
	return len(orphans), nil
}
