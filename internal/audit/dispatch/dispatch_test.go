package dispatch

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ledgerline.io/audittrail/internal/audit"
	apperrors "ledgerline.io/audittrail/internal/pkg/errors"
	"ledgerline.io/audittrail/internal/pkg/logger"
	"ledgerline.io/audittrail/internal/pkg/worker"
)

func init() {
	_ = logger.Init("error", "json")
}

type fakeAppender struct {
	mu      sync.Mutex
	records []*audit.Record
	err     error
}

func (f *fakeAppender) Append(_ context.Context, rec *audit.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, rec)
	return nil
}

type fakeEnqueuer struct {
	mu      sync.Mutex
	records []*audit.Record
	err     error
	done    chan struct{}
}

func (f *fakeEnqueuer) Enqueue(_ context.Context, rec *audit.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.done != nil {
		defer close(f.done)
		f.done = nil
	}
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, rec)
	return nil
}

func newTestPools(t *testing.T) *worker.Pools {
	t.Helper()
	pools, err := worker.NewPools(context.Background(), worker.PoolConfig{
		GeneralPoolSize:  2,
		DispatchPoolSize: 2,
	})
	require.NoError(t, err)
	t.Cleanup(pools.Shutdown)
	return pools
}

func TestDispatcher_Sync(t *testing.T) {
	appender := &fakeAppender{}
	d := New(appender, &fakeEnqueuer{}, newTestPools(t), 10000)

	rec := audit.NewRecord(audit.ActionEntryCreated, audit.Actor{ID: "u-1"},
		audit.EntityRef{Type: "entry", ID: "e-1"},
		map[string]any{"when": time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)})

	require.NoError(t, d.Sync(context.Background(), rec))
	require.Len(t, appender.records, 1)

	// Metadata was shaped before the append.
	require.Equal(t, "2026-01-02T03:04:05Z", appender.records[0].Metadata["when"])
}

func TestDispatcher_Sync_ShapesOversizedMetadata(t *testing.T) {
	appender := &fakeAppender{}
	d := New(appender, &fakeEnqueuer{}, newTestPools(t), 300)

	rec := audit.NewRecord(audit.ActionDataExported, audit.Actor{ID: "u-1"},
		audit.EntityRef{}, map[string]any{"notes": strings.Repeat("n", 500)})

	require.NoError(t, d.Sync(context.Background(), rec))
	require.Equal(t, strings.Repeat("n", 100)+"...", appender.records[0].Metadata["notes"])
}

func TestDispatcher_Async(t *testing.T) {
	enqueuer := &fakeEnqueuer{done: make(chan struct{})}
	done := enqueuer.done
	d := New(&fakeAppender{}, enqueuer, newTestPools(t), 10000)

	rec := audit.NewRecord(audit.ActionEntryApproved, audit.Actor{ID: "u-2"},
		audit.EntityRef{Type: "entry", ID: "e-2"}, nil)
	d.Async(rec)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("async record was not enqueued")
	}

	enqueuer.mu.Lock()
	defer enqueuer.mu.Unlock()
	require.Len(t, enqueuer.records, 1)
	require.Equal(t, rec.ID, enqueuer.records[0].ID)
}

func TestDispatcher_Async_EnqueueFailureIsSwallowed(t *testing.T) {
	enqueuer := &fakeEnqueuer{err: apperrors.ErrPersistence, done: make(chan struct{})}
	done := enqueuer.done
	d := New(&fakeAppender{}, enqueuer, newTestPools(t), 10000)

	// Must not panic or surface anything to the caller.
	d.Async(audit.NewRecord(audit.ActionEntryApproved, audit.Actor{ID: "u-3"}, audit.EntityRef{}, nil))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("enqueue attempt never happened")
	}
}

func TestProtect_SwallowsErrors(t *testing.T) {
	err := Protect("capture.created", func() error {
		return apperrors.ErrPersistencef(nil, "store down")
	})
	require.NoError(t, err)
}

func TestProtect_SwallowsPanics(t *testing.T) {
	err := Protect("facade.log_entry", func() error {
		panic("builder exploded")
	})
	require.NoError(t, err)
}

func TestProtect_PropagatesInvalidActor(t *testing.T) {
	want := apperrors.ErrInvalidActorf("log_entry_action")
	err := Protect("facade.log_entry", func() error {
		return want
	})
	require.Error(t, err)
	require.ErrorIs(t, err, apperrors.ErrInvalidActor)
}

func TestProtect_NilError(t *testing.T) {
	require.NoError(t, Protect("noop", func() error { return nil }))
}
