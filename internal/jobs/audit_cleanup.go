package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"ledgerline.io/audittrail/internal/audit/retention"
	"ledgerline.io/audittrail/internal/pkg/logger"
)

// AuditCleanupArgs is the periodic maintenance job that expires audit
// records past their retention window.
type AuditCleanupArgs struct{}

// Kind returns the job kind identifier for periodic audit cleanup.
func (AuditCleanupArgs) Kind() string { return "audit_cleanup" }

// InsertOpts ensures at most one cleanup job is enqueued within the same day.
func (AuditCleanupArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: 24 * time.Hour,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// AuditCleanupWorker runs the retention engine with its configured
// defaults.
type AuditCleanupWorker struct {
	river.WorkerDefaults[AuditCleanupArgs]
	engine *retention.Engine
}

// NewAuditCleanupWorker creates the cleanup worker.
func NewAuditCleanupWorker(engine *retention.Engine) *AuditCleanupWorker {
	return &AuditCleanupWorker{engine: engine}
}

// Work expires records per category policy.
func (w *AuditCleanupWorker) Work(ctx context.Context, _ *river.Job[AuditCleanupArgs]) error {
	if w == nil || w.engine == nil {
		return fmt.Errorf("audit cleanup worker is not initialized")
	}

	summary, err := w.engine.Run(ctx, retention.Options{})
	if err != nil {
		return fmt.Errorf("audit retention run: %w", err)
	}

	logger.Info("scheduled audit cleanup completed",
		zap.Int("deleted_rows", summary.Total),
		zap.Int("authentication", summary.PerCategory[retention.CategoryAuthentication]),
		zap.Int("critical", summary.PerCategory[retention.CategoryCritical]),
		zap.Int("default", summary.PerCategory[retention.CategoryDefault]),
		zap.Duration("duration", summary.Duration),
	)
	return nil
}
