// Package dispatch routes audit records to the store over two write paths
// and isolates audit failures from the triggering business operation.
//
// Sync path: inline append, used by automatic capture. Async path: hand-off
// to the dispatch worker pool, which inserts a queue job; used by the
// structured logging facade. The async hand-off never blocks and never
// fails the caller.
package dispatch

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"ledgerline.io/audittrail/internal/audit"
	apperrors "ledgerline.io/audittrail/internal/pkg/errors"
	"ledgerline.io/audittrail/internal/pkg/logger"
	"ledgerline.io/audittrail/internal/pkg/worker"
)

// Appender is the synchronous write surface of the store.
type Appender interface {
	Append(ctx context.Context, rec *audit.Record) error
}

// Enqueuer inserts a durable write job for one record.
type Enqueuer interface {
	Enqueue(ctx context.Context, rec *audit.Record) error
}

// Dispatcher owns both write paths and the metadata shaping that precedes
// them.
type Dispatcher struct {
	appender        Appender
	enqueuer        Enqueuer
	pools           *worker.Pools
	maxMetadataSize int
}

// New creates a Dispatcher.
func New(appender Appender, enqueuer Enqueuer, pools *worker.Pools, maxMetadataSize int) *Dispatcher {
	return &Dispatcher{
		appender:        appender,
		enqueuer:        enqueuer,
		pools:           pools,
		maxMetadataSize: maxMetadataSize,
	}
}

// Sync shapes the record's metadata and appends it inline, within the
// caller's unit of work. The error is returned raw; callers wrap the whole
// entry point in Protect.
func (d *Dispatcher) Sync(ctx context.Context, rec *audit.Record) error {
	d.shape(rec)
	return d.appender.Append(ctx, rec)
}

// Async shapes the record's metadata and hands it to the dispatch pool for
// out-of-band persistence. It never blocks and never fails the caller: a
// full pool or a failed queue insert costs one audit record, logged at
// error severity, not a business operation.
func (d *Dispatcher) Async(rec *audit.Record) {
	d.shape(rec)

	err := d.pools.SubmitDetached("dispatch", func(ctx context.Context) {
		if err := d.enqueuer.Enqueue(ctx, rec); err != nil {
			logger.Error("Failed to enqueue audit record",
				zap.String("record_id", rec.ID),
				zap.String("action", rec.Action.String()),
				zap.Error(err),
			)
		}
	})
	if err != nil {
		logger.Error("Audit dispatch pool rejected record",
			zap.String("record_id", rec.ID),
			zap.String("action", rec.Action.String()),
			zap.Error(err),
		)
	}
}

func (d *Dispatcher) shape(rec *audit.Record) {
	rec.Metadata = audit.Truncate(audit.Sanitize(rec.Metadata), d.maxMetadataSize)
}

// Protect wraps an audit entry point so that audit failures can never
// break the triggering business operation. Panics are recovered; all
// errors are logged with the operation's identity and swallowed, except
// invalid-actor validation failures, which signal caller misuse and are
// re-raised.
func Protect(operation string, fn func() error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			logger.Error("Audit operation panicked",
				zap.String("operation", operation),
				zap.Any("panic", p),
				zap.Stack("stack"),
			)
			err = nil
		}
	}()

	if ferr := fn(); ferr != nil {
		if errors.Is(ferr, apperrors.ErrInvalidActor) {
			return ferr
		}
		logger.Error("Audit operation failed",
			zap.String("operation", operation),
			zap.Error(ferr),
		)
	}
	return nil
}
