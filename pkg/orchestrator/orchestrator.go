// Package orchestrator drives the per-task research workflow. Both pipelines
// (analytical report and data aggregation) share one control spine: phases
// submit operations to the coordinator, wait for terminal outcomes, emit
// phase.status events with counts, and decide completion under the
// min-success-ratio policy. Task-level outcome decisions live here and only
// here; workers never fail a task on their own.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/trilogy-group/nexus-agents/ent"
	"github.com/trilogy-group/nexus-agents/ent/operation"
	"github.com/trilogy-group/nexus-agents/ent/researchtask"
	"github.com/trilogy-group/nexus-agents/pkg/artifacts"
	"github.com/trilogy-group/nexus-agents/pkg/config"
	"github.com/trilogy-group/nexus-agents/pkg/coordinator"
	"github.com/trilogy-group/nexus-agents/pkg/dok"
	"github.com/trilogy-group/nexus-agents/pkg/events"
	"github.com/trilogy-group/nexus-agents/pkg/gateway"
	"github.com/trilogy-group/nexus-agents/pkg/ledger"
	"github.com/trilogy-group/nexus-agents/pkg/llm"
	"github.com/trilogy-group/nexus-agents/pkg/services"
)

// Gateway is the external-call surface the pipelines use. Satisfied by
// *gateway.Gateway.
type Gateway interface {
	Search(ctx context.Context, provider, query string, opts gateway.SearchOptions) gateway.Result[[]gateway.SearchResult]
	Fetch(ctx context.Context, url string) gateway.Result[*gateway.Document]
	Complete(ctx context.Context, input *llm.GenerateInput) gateway.Result[*llm.Completion]
	EnabledProviders() []string
}

// EventSink is the persistent-event surface. Satisfied by
// *events.EventPublisher.
type EventSink interface {
	PublishTaskStatus(ctx context.Context, payload events.TaskStatusPayload) error
	PublishPhaseStatus(ctx context.Context, payload events.PhaseStatusPayload) error
}

// Services bundles the knowledge-store services the orchestrator writes
// through.
type Services struct {
	Tasks    *services.TaskService
	Sources  *services.SourceService
	DOK      *services.DOKService
	Entities *services.EntityService
	Projects *services.ProjectService
}

// Orchestrator runs research tasks to completion. Safe for concurrent use;
// each task runs independently.
type Orchestrator struct {
	podID     string
	coord     *coordinator.Coordinator
	gw        Gateway
	engine    *dok.Engine
	svc       Services
	artifacts *artifacts.Store
	sink      EventSink
	cfg       *config.PipelineConfig
	logger    *slog.Logger
}

// New wires the orchestrator.
func New(podID string, coord *coordinator.Coordinator, gw Gateway, engine *dok.Engine,
	svc Services, store *artifacts.Store, sink EventSink, cfg *config.PipelineConfig,
	logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		podID:     podID,
		coord:     coord,
		gw:        gw,
		engine:    engine,
		svc:       svc,
		artifacts: store,
		sink:      sink,
		cfg:       cfg,
		logger:    logger.With("component", "orchestrator"),
	}
}

// RunTask executes one claimed task through its pipeline and records the
// terminal outcome. The caller owns claiming and heartbeats.
func (o *Orchestrator) RunTask(ctx context.Context, task *ent.ResearchTask) error {
	logger := o.logger.With("task_id", task.ID, "research_type", task.ResearchType)
	logger.Info("task started", "title", task.Title)

	var err error
	switch task.ResearchType {
	case researchtask.ResearchTypeAnalyticalReport:
		err = o.runAnalytical(ctx, task)
	case researchtask.ResearchTypeDataAggregation:
		err = o.runAggregation(ctx, task)
	default:
		err = fmt.Errorf("unknown research type %q", task.ResearchType)
	}

	if err != nil {
		kind := errorKind(err)
		logger.Error("task failed", "error_kind", kind, "error", err)
		o.failTask(task, kind, err)
		return err
	}

	if err := o.transition(task, researchtask.StatusCompleted); err != nil {
		logger.Error("failed to complete task", "error", err)
		return err
	}
	logger.Info("task completed")
	return nil
}

// Depths reports the current backlog per named queue, for the health surface.
func (o *Orchestrator) Depths() map[string]int {
	return o.coord.Depths()
}

// CancelTask cancels every pending and in-flight operation of a task and
// fails the task with the Cancelled kind. Idempotent.
func (o *Orchestrator) CancelTask(ctx context.Context, taskID string) error {
	if err := o.coord.Cancel(ctx, taskID); err != nil {
		return err
	}

	task, err := o.svc.Tasks.GetTask(ctx, taskID)
	if err != nil {
		return err
	}
	o.failTask(task, KindCancelled, errors.New("cancelled by client"))
	return nil
}

// transition moves the task forward and mirrors the change on the event bus.
// An ErrInvalidTransition from a concurrent mover is surfaced to the caller.
func (o *Orchestrator) transition(task *ent.ResearchTask, status researchtask.Status) error {
	ctx := context.Background()
	if _, err := o.svc.Tasks.TransitionStatus(ctx, task.ID, status); err != nil {
		return err
	}
	if err := o.sink.PublishTaskStatus(ctx, events.TaskStatusPayload{
		TaskID:    task.ID,
		ProjectID: taskProject(task),
		Status:    status,
	}); err != nil {
		o.logger.Warn("failed to publish task status",
			"task_id", task.ID, "status", status, "error", err)
	}
	return nil
}

// failTask records the terminal failure. Best effort: a task already terminal
// (e.g. a concurrent cancel) is left as is.
func (o *Orchestrator) failTask(task *ent.ResearchTask, kind string, cause error) {
	ctx := context.Background()
	msg := cause.Error()
	if err := o.svc.Tasks.FailTask(ctx, task.ID, kind, msg); err != nil {
		if !errors.Is(err, services.ErrInvalidTransition) {
			o.logger.Error("failed to record task failure",
				"task_id", task.ID, "error", err)
		}
		return
	}
	if err := o.sink.PublishTaskStatus(ctx, events.TaskStatusPayload{
		TaskID:       task.ID,
		ProjectID:    taskProject(task),
		Status:       researchtask.StatusFailed,
		ErrorKind:    kind,
		ErrorMessage: msg,
	}); err != nil {
		o.logger.Warn("failed to publish task failure",
			"task_id", task.ID, "error", err)
	}
}

// phaseResult summarizes the terminal outcomes of one phase.
type phaseResult struct {
	Total     int
	Succeeded int
	Failed    int
	FirstErr  error
	Outcomes  []coordinator.Outcome
}

// runPhase submits a phase's operations, waits for every one to reach a
// terminal state, publishes the phase lifecycle events, and applies the
// success-ratio policy. submit receives the phase deadline to stamp on each
// operation so a phase timeout converts stragglers into op timeouts.
func (o *Orchestrator) runPhase(ctx context.Context, task *ent.ResearchTask, phase string,
	minRatio float64, submit func(deadline time.Time) ([]*coordinator.Handle, error)) (*phaseResult, error) {

	start := time.Now()
	deadline := start.Add(o.cfg.PhaseTimeout)

	o.publishPhase(task, events.PhaseStatusPayload{
		TaskID: task.ID,
		Phase:  phase,
		Status: events.PhaseStatusStarted,
	})

	handles, err := submit(deadline)
	if err != nil {
		o.publishPhase(task, events.PhaseStatusPayload{
			TaskID:     task.ID,
			Phase:      phase,
			Status:     events.PhaseStatusFailed,
			DurationMS: time.Since(start).Milliseconds(),
		})
		return nil, fmt.Errorf("phase %s: %w", phase, err)
	}

	res, err := o.awaitPhase(ctx, task, phase, minRatio, start, handles)
	if err != nil {
		return res, err
	}
	return res, nil
}

// awaitPhase waits on already-submitted handles and evaluates the phase.
func (o *Orchestrator) awaitPhase(ctx context.Context, task *ent.ResearchTask, phase string,
	minRatio float64, start time.Time, handles []*coordinator.Handle) (*phaseResult, error) {

	res := &phaseResult{Total: len(handles)}
	cancelled := false
	for _, h := range handles {
		outcome, err := h.Wait(ctx)
		if err != nil {
			// Context loss is an orchestrator shutdown, not a phase verdict.
			return res, fmt.Errorf("phase %s interrupted: %w", phase, err)
		}
		res.Outcomes = append(res.Outcomes, outcome)
		switch outcome.Status {
		case operation.StatusCompleted:
			res.Succeeded++
		default:
			res.Failed++
			if outcome.Status == operation.StatusCancelled {
				cancelled = true
			}
			if res.FirstErr == nil && outcome.Err != nil {
				res.FirstErr = outcome.Err
			}
		}
	}

	duration := time.Since(start).Milliseconds()
	payload := events.PhaseStatusPayload{
		TaskID:     task.ID,
		Phase:      phase,
		Total:      res.Total,
		Succeeded:  res.Succeeded,
		Failed:     res.Failed,
		DurationMS: duration,
	}

	if cancelled {
		payload.Status = events.PhaseStatusCancelled
		o.publishPhase(task, payload)
		return res, fmt.Errorf("phase %s: %w", phase, coordinator.ErrCancelled)
	}

	// An empty fan-out is a completed phase: downstream runs on empty input.
	if res.Total > 0 {
		ratio := float64(res.Succeeded) / float64(res.Total)
		if res.Succeeded == 0 || ratio < minRatio {
			payload.Status = events.PhaseStatusFailed
			o.publishPhase(task, payload)
			err := res.FirstErr
			if err == nil {
				err = fmt.Errorf("no operations succeeded")
			}
			return res, fmt.Errorf("phase %s: %d/%d operations succeeded: %w",
				phase, res.Succeeded, res.Total, err)
		}
	}

	payload.Status = events.PhaseStatusCompleted
	o.publishPhase(task, payload)

	o.logger.Info("phase completed",
		"task_id", task.ID, "phase", phase,
		"total", res.Total, "succeeded", res.Succeeded, "failed", res.Failed,
		"duration_ms", duration)
	return res, nil
}

func (o *Orchestrator) publishPhase(task *ent.ResearchTask, payload events.PhaseStatusPayload) {
	if err := o.sink.PublishPhaseStatus(context.Background(), payload); err != nil {
		o.logger.Warn("failed to publish phase status",
			"task_id", task.ID, "phase", payload.Phase, "error", err)
	}
}

// completionText unwraps a gateway completion into text the way the
// synthesis engine does, so orchestrator-level LLM ops share the retry
// classification.
func (o *Orchestrator) completionText(res gateway.Result[*llm.Completion]) (string, error) {
	switch res.Status {
	case gateway.StatusOK:
		return res.Value.Text, nil
	case gateway.StatusTransient:
		return "", coordinator.Transient(fmt.Errorf("llm call: %w", res.Err))
	case gateway.StatusDegraded:
		return "", degraded(fmt.Errorf("llm unavailable: %s", res.Reason))
	default:
		return "", fmt.Errorf("llm call: %w", res.Err)
	}
}

// taskProject unwraps the optional project membership, "" for standalone
// tasks.
func taskProject(task *ent.ResearchTask) string {
	if task.ProjectID == nil {
		return ""
	}
	return *task.ProjectID
}

func llmEvidence(stage, text string) ledger.EvidenceInput {
	return ledger.EvidenceInput{
		Type: "llm_response",
		Data: map[string]any{"stage": stage, "response": text},
	}
}
