package jobs

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/riverqueue/river"

	"ledgerline.io/audittrail/internal/audit"
)

func TestAuditWriteArgsKind(t *testing.T) {
	t.Parallel()

	if got := (AuditWriteArgs{}).Kind(); got != "audit_write" {
		t.Fatalf("Kind() = %q, want %q", got, "audit_write")
	}
}

func TestAuditWriteArgsInsertOpts(t *testing.T) {
	t.Parallel()

	opts := (AuditWriteArgs{}).InsertOpts()
	if opts.Queue != QueueAuditWrite {
		t.Fatalf("Queue = %q, want %q", opts.Queue, QueueAuditWrite)
	}
	if opts.MaxAttempts != 5 {
		t.Fatalf("MaxAttempts = %d, want 5", opts.MaxAttempts)
	}
	if !opts.UniqueOpts.ByQueue {
		t.Fatal("UniqueOpts.ByQueue = false, want true")
	}
	if !opts.UniqueOpts.ByArgs {
		t.Fatal("UniqueOpts.ByArgs = false, want true")
	}
}

func TestAuditWriteArgsRoundTrip(t *testing.T) {
	t.Parallel()

	rec := audit.NewRecord(audit.ActionEntryApproved,
		audit.Actor{ID: "u-1", Email: "user@example.com"},
		audit.EntityRef{Type: "entry", ID: "e-1"},
		map[string]any{"notes": "ok"})
	rec.OrganizationID = "org-1"
	rec.WorkspaceID = "ws-1"

	got := newAuditWriteArgs(rec).record()

	if got.ID != rec.ID {
		t.Fatalf("ID = %q, want %q", got.ID, rec.ID)
	}
	if got.Action != rec.Action {
		t.Fatalf("Action = %q, want %q", got.Action, rec.Action)
	}
	if got.Actor != rec.Actor {
		t.Fatalf("Actor = %+v, want %+v", got.Actor, rec.Actor)
	}
	if got.Target != rec.Target {
		t.Fatalf("Target = %+v, want %+v", got.Target, rec.Target)
	}
	if got.WorkspaceID != "ws-1" || got.OrganizationID != "org-1" {
		t.Fatalf("scope = %q/%q, want ws-1/org-1", got.WorkspaceID, got.OrganizationID)
	}
	if got.Metadata["notes"] != "ok" {
		t.Fatalf("Metadata = %v, want notes preserved", got.Metadata)
	}
	if !got.CreatedAt.Equal(rec.CreatedAt) {
		t.Fatalf("CreatedAt = %s, want %s", got.CreatedAt, rec.CreatedAt)
	}
}

func TestAuditWriteArgsRecord_SystemEvent(t *testing.T) {
	t.Parallel()

	args := AuditWriteArgs{RecordID: "audit-1", ActionType: "login_failed"}
	rec := args.record()
	if !rec.Actor.IsZero() {
		t.Fatalf("Actor = %+v, want zero", rec.Actor)
	}
	if !rec.Target.IsZero() {
		t.Fatalf("Target = %+v, want zero", rec.Target)
	}
}

func TestAuditCleanupArgsKind(t *testing.T) {
	t.Parallel()

	if got := (AuditCleanupArgs{}).Kind(); got != "audit_cleanup" {
		t.Fatalf("Kind() = %q, want %q", got, "audit_cleanup")
	}
}

func TestAuditCleanupArgsInsertOpts(t *testing.T) {
	t.Parallel()

	opts := (AuditCleanupArgs{}).InsertOpts()
	if opts.Queue != river.QueueDefault {
		t.Fatalf("Queue = %q, want %q", opts.Queue, river.QueueDefault)
	}
	if opts.MaxAttempts != 1 {
		t.Fatalf("MaxAttempts = %d, want 1", opts.MaxAttempts)
	}
	if opts.UniqueOpts.ByPeriod != 24*time.Hour {
		t.Fatalf("UniqueOpts.ByPeriod = %s, want %s", opts.UniqueOpts.ByPeriod, 24*time.Hour)
	}
}

func TestAuditCleanupWorkerWork_Uninitialized(t *testing.T) {
	t.Parallel()

	t.Run("nil receiver", func(t *testing.T) {
		var w *AuditCleanupWorker
		err := w.Work(context.Background(), nil)
		if err == nil || !strings.Contains(err.Error(), "not initialized") {
			t.Fatalf("Work() error = %v, want contains %q", err, "not initialized")
		}
	})

	t.Run("nil engine", func(t *testing.T) {
		w := &AuditCleanupWorker{}
		err := w.Work(context.Background(), nil)
		if err == nil || !strings.Contains(err.Error(), "not initialized") {
			t.Fatalf("Work() error = %v, want contains %q", err, "not initialized")
		}
	})
}
