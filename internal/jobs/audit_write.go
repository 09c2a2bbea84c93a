// Package jobs defines River Queue job types for the audit pipeline.
package jobs

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"ledgerline.io/audittrail/internal/audit"
	"ledgerline.io/audittrail/internal/pkg/logger"
)

// QueueAuditWrite is the dedicated queue for async audit appends. It runs
// with a single worker so records from one producer land in submission
// order.
const QueueAuditWrite = "audit_write"

// AuditWriteArgs carries one full audit record. The record travels with the
// job because the source of truth does not exist until the append happens.
type AuditWriteArgs struct {
	RecordID       string         `json:"record_id"`
	ActionType     string         `json:"action_type"`
	ActorID        string         `json:"actor_id,omitempty"`
	ActorEmail     string         `json:"actor_email,omitempty"`
	TargetType     string         `json:"target_type,omitempty"`
	TargetID       string         `json:"target_id,omitempty"`
	OrganizationID string         `json:"organization_id,omitempty"`
	WorkspaceID    string         `json:"workspace_id,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

// Kind returns the job kind identifier for async audit appends.
func (AuditWriteArgs) Kind() string { return "audit_write" }

// InsertOpts routes appends to the serialized audit queue. Duplicate
// submissions of the same record collapse into one job.
func (AuditWriteArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       QueueAuditWrite,
		MaxAttempts: 5,
		UniqueOpts: river.UniqueOpts{
			ByArgs:  true,
			ByQueue: true,
		},
	}
}

// record rebuilds the domain record from the job payload.
func (a AuditWriteArgs) record() *audit.Record {
	rec := &audit.Record{
		ID:             a.RecordID,
		Action:         audit.Action(a.ActionType),
		Actor:          audit.Actor{ID: a.ActorID, Email: a.ActorEmail},
		OrganizationID: a.OrganizationID,
		WorkspaceID:    a.WorkspaceID,
		Metadata:       a.Metadata,
		CreatedAt:      a.CreatedAt,
	}
	if a.TargetType != "" || a.TargetID != "" {
		rec.Target = audit.EntityRef{Type: a.TargetType, ID: a.TargetID}
	}
	return rec
}

// newAuditWriteArgs flattens a domain record into the job payload.
func newAuditWriteArgs(rec *audit.Record) AuditWriteArgs {
	return AuditWriteArgs{
		RecordID:       rec.ID,
		ActionType:     rec.Action.String(),
		ActorID:        rec.Actor.ID,
		ActorEmail:     rec.Actor.Email,
		TargetType:     rec.Target.Type,
		TargetID:       rec.Target.ID,
		OrganizationID: rec.OrganizationID,
		WorkspaceID:    rec.WorkspaceID,
		Metadata:       rec.Metadata,
		CreatedAt:      rec.CreatedAt,
	}
}

// AuditWriteWorker appends queued audit records to the store.
type AuditWriteWorker struct {
	river.WorkerDefaults[AuditWriteArgs]
	store *audit.Store
}

// NewAuditWriteWorker creates the append worker.
func NewAuditWriteWorker(store *audit.Store) *AuditWriteWorker {
	return &AuditWriteWorker{store: store}
}

// Work appends one record. Store failures are returned so River retries
// with backoff.
func (w *AuditWriteWorker) Work(ctx context.Context, job *river.Job[AuditWriteArgs]) error {
	rec := job.Args.record()
	if err := w.store.Append(ctx, rec); err != nil {
		logger.Warn("async audit append failed",
			zap.String("record_id", rec.ID),
			zap.String("action", rec.Action.String()),
			zap.Int("attempt", job.Attempt),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// RiverEnqueuer submits audit records to the write queue. It is the
// dispatcher's async backend.
type RiverEnqueuer struct {
	client *river.Client[pgx.Tx]
}

// NewRiverEnqueuer wraps a river client as an audit enqueuer.
func NewRiverEnqueuer(client *river.Client[pgx.Tx]) *RiverEnqueuer {
	return &RiverEnqueuer{client: client}
}

// Enqueue inserts one append job.
func (e *RiverEnqueuer) Enqueue(ctx context.Context, rec *audit.Record) error {
	_, err := e.client.Insert(ctx, newAuditWriteArgs(rec), nil)
	return err
}
