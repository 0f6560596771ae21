// Package ledger records operation lifecycles. Every status transition is
// written atomically with its evidence rows and, on terminal success, the
// operation's output — consumers reconstruct the full timeline from these
// rows. The ledger is append-mostly: the only mutations are the status,
// timing stamps and retry counter.
package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/trilogy-group/nexus-agents/ent"
	"github.com/trilogy-group/nexus-agents/ent/operation"
)

// DefaultEvidenceSizeCap bounds a single evidence payload. Oversized payloads
// are stored as a truncated stub, never rejected.
const DefaultEvidenceSizeCap = 256 * 1024

// StoreError wraps persistence failures so callers can distinguish a broken
// store from domain errors. The store never partially applies a multi-row
// transition.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store error in %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func storeErr(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

// ErrInvalidTransition is returned when a status change violates the
// operation lifecycle.
var ErrInvalidTransition = fmt.Errorf("invalid operation transition")

// allowedTransitions is the operation lifecycle graph. Terminal statuses
// (completed, failed, cancelled) have no outgoing edges.
var allowedTransitions = map[operation.Status][]operation.Status{
	operation.StatusWaitingDeps: {operation.StatusQueued, operation.StatusFailed, operation.StatusCancelled},
	operation.StatusQueued:      {operation.StatusDispatched, operation.StatusFailed, operation.StatusCancelled},
	operation.StatusDispatched:  {operation.StatusInFlight, operation.StatusFailed, operation.StatusCancelled},
	operation.StatusInFlight:    {operation.StatusCompleted, operation.StatusFailed, operation.StatusRetrying, operation.StatusCancelled},
	operation.StatusRetrying:    {operation.StatusDispatched, operation.StatusInFlight, operation.StatusFailed, operation.StatusCancelled},
}

func transitionAllowed(from, to operation.Status) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether an operation status admits no further
// transitions.
func IsTerminal(s operation.Status) bool {
	return s == operation.StatusCompleted ||
		s == operation.StatusFailed ||
		s == operation.StatusCancelled
}

// Ledger wraps the Ent client with transactional operation-lifecycle writes.
type Ledger struct {
	client          *ent.Client
	evidenceSizeCap int
	logger          *slog.Logger
}

// New creates a Ledger. A non-positive evidenceSizeCap selects the default.
func New(client *ent.Client, evidenceSizeCap int, logger *slog.Logger) *Ledger {
	if evidenceSizeCap <= 0 {
		evidenceSizeCap = DefaultEvidenceSizeCap
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Ledger{
		client:          client,
		evidenceSizeCap: evidenceSizeCap,
		logger:          logger.With("component", "ledger"),
	}
}

// OperationSpec describes a new operation row.
type OperationSpec struct {
	// OperationID is optional; when empty a fresh UUID is assigned. Callers
	// that pre-assign ids use them for idempotent resubmission checks.
	OperationID   string
	TaskID        string
	ParentID      string
	OperationType string
	QueueName     string
	AgentType     string
	Priority      int
	InputData     map[string]any
	Meta          map[string]any
	// HasDependencies starts the operation in waiting_deps instead of queued.
	HasDependencies bool
}

// Append creates the operation row in its initial status and returns it.
func (l *Ledger) Append(ctx context.Context, spec OperationSpec) (*ent.Operation, error) {
	if spec.TaskID == "" {
		return nil, fmt.Errorf("ledger: task id required")
	}
	if spec.OperationType == "" {
		return nil, fmt.Errorf("ledger: operation type required")
	}
	if spec.QueueName == "" {
		return nil, fmt.Errorf("ledger: queue name required")
	}

	status := operation.StatusQueued
	if spec.HasDependencies {
		status = operation.StatusWaitingDeps
	}

	opID := spec.OperationID
	if opID == "" {
		opID = uuid.New().String()
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := l.client.Operation.Create().
		SetID(opID).
		SetTaskID(spec.TaskID).
		SetOperationType(spec.OperationType).
		SetQueueName(spec.QueueName).
		SetStatus(status).
		SetPriority(spec.Priority)
	if spec.ParentID != "" {
		builder.SetParentID(spec.ParentID)
	}
	if spec.AgentType != "" {
		builder.SetAgentType(spec.AgentType)
	}
	if spec.InputData != nil {
		builder.SetInputData(spec.InputData)
	}
	if spec.Meta != nil {
		builder.SetMeta(spec.Meta)
	}

	op, err := builder.Save(writeCtx)
	if err != nil {
		return nil, storeErr("append_operation", err)
	}
	return op, nil
}

// EvidenceInput is one artifact captured during an operation attempt.
type EvidenceInput struct {
	Type      string
	Data      map[string]any
	SourceURL string
	Provider  string
}

// Transition moves an operation to a new status and writes the accompanying
// rows in one transaction: the status/timing update, any evidence, and — on
// completed — the output data.
type Transition struct {
	To           operation.Status
	WorkerID     string
	ErrorMessage string
	RetryCount   int // written when > current value
	OutputData   map[string]any
	Evidence     []EvidenceInput
}

// Apply performs the transition. It returns ErrInvalidTransition when the
// lifecycle graph forbids the move, and never partially applies the write.
func (l *Ledger) Apply(ctx context.Context, operationID string, tr Transition) (*ent.Operation, error) {
	if tr.To == operation.StatusCompleted && tr.OutputData == nil {
		tr.OutputData = map[string]any{}
	}
	if tr.To != operation.StatusCompleted && tr.OutputData != nil {
		return nil, fmt.Errorf("ledger: output data only valid on completed")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	tx, err := l.client.Tx(writeCtx)
	if err != nil {
		return nil, storeErr("begin_transition", err)
	}
	defer tx.Rollback()

	current, err := tx.Operation.Query().
		Where(operation.IDEQ(operationID)).
		ForUpdate().
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("ledger: operation %s not found", operationID)
		}
		return nil, storeErr("lock_operation", err)
	}

	if !transitionAllowed(current.Status, tr.To) {
		return nil, fmt.Errorf("%w: %s → %s", ErrInvalidTransition, current.Status, tr.To)
	}

	now := time.Now()
	update := tx.Operation.UpdateOneID(operationID).SetStatus(tr.To)
	if tr.To == operation.StatusInFlight && current.StartedAt == nil {
		update = update.SetStartedAt(now)
	}
	if IsTerminal(tr.To) {
		update = update.SetCompletedAt(now)
		if current.StartedAt != nil {
			update = update.SetDurationMs(now.Sub(*current.StartedAt).Milliseconds())
		}
	}
	if tr.To == operation.StatusCompleted {
		update = update.SetOutputData(tr.OutputData)
	}
	if tr.WorkerID != "" {
		update = update.SetWorkerID(tr.WorkerID)
	}
	if tr.ErrorMessage != "" {
		update = update.SetErrorMessage(tr.ErrorMessage)
	}
	if tr.RetryCount > current.RetryCount {
		update = update.SetRetryCount(tr.RetryCount)
	}

	updated, err := update.Save(writeCtx)
	if err != nil {
		return nil, storeErr("update_operation", err)
	}

	for _, ev := range tr.Evidence {
		if err := l.insertEvidence(writeCtx, tx, current.TaskID, operationID, ev); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, storeErr("commit_transition", err)
	}
	return updated, nil
}

// insertEvidence writes one evidence row, bounding the payload at the size
// cap. Oversized payloads become a stub carrying the truncation marker and
// the original size.
func (l *Ledger) insertEvidence(ctx context.Context, tx *ent.Tx, taskID, operationID string, ev EvidenceInput) error {
	if ev.Type == "" {
		return fmt.Errorf("ledger: evidence type required")
	}
	data := ev.Data
	if data == nil {
		data = map[string]any{}
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("ledger: evidence payload not serializable: %w", err)
	}
	size := len(raw)
	if size > l.evidenceSizeCap {
		l.logger.Warn("evidence payload truncated",
			"operation_id", operationID,
			"evidence_type", ev.Type,
			"size_bytes", size,
			"cap_bytes", l.evidenceSizeCap)
		data = map[string]any{
			"truncated":           true,
			"original_size_bytes": size,
			"summary":             truncateRaw(raw, l.evidenceSizeCap/2),
		}
		raw, _ = json.Marshal(data)
		size = len(raw)
	}

	builder := tx.Evidence.Create().
		SetID(uuid.New().String()).
		SetOperationID(operationID).
		SetTaskID(taskID).
		SetEvidenceType(ev.Type).
		SetEvidenceData(data).
		SetSizeBytes(size)
	if ev.SourceURL != "" {
		builder.SetSourceURL(ev.SourceURL)
	}
	if ev.Provider != "" {
		builder.SetProvider(ev.Provider)
	}
	if err := builder.Exec(ctx); err != nil {
		return storeErr("append_evidence", err)
	}
	return nil
}

// truncateRaw cuts serialized JSON at a byte bound without splitting a UTF-8
// rune.
func truncateRaw(raw []byte, limit int) string {
	if len(raw) <= limit {
		return string(raw)
	}
	cut := raw[:limit]
	for len(cut) > 0 && cut[len(cut)-1]&0xC0 == 0x80 {
		cut = cut[:len(cut)-1]
	}
	return string(cut)
}

// CancelPending marks every non-terminal, not-yet-in-flight operation of a
// task as cancelled. In-flight operations are left to finalize cooperatively.
// Idempotent: repeated calls cancel nothing new.
func (l *Ledger) CancelPending(ctx context.Context, taskID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := l.client.Operation.Update().
		Where(
			operation.TaskIDEQ(taskID),
			operation.StatusIn(
				operation.StatusWaitingDeps,
				operation.StatusQueued,
				operation.StatusDispatched,
				operation.StatusRetrying,
			),
		).
		SetStatus(operation.StatusCancelled).
		SetCompletedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return 0, storeErr("cancel_pending", err)
	}
	return count, nil
}

// Get loads one operation.
func (l *Ledger) Get(ctx context.Context, operationID string) (*ent.Operation, error) {
	op, err := l.client.Operation.Query().
		Where(operation.IDEQ(operationID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("ledger: operation %s not found", operationID)
		}
		return nil, storeErr("get_operation", err)
	}
	return op, nil
}
