package audit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "ledgerline.io/audittrail/internal/pkg/errors"
	"ledgerline.io/audittrail/internal/pkg/logger"
	"ledgerline.io/audittrail/internal/testutil"
)

func init() {
	_ = logger.Init("error", "json")
}

func TestStore_AppendAndGet(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "audit_store")
	store := NewStore(client, 5*time.Second)
	ctx := context.Background()

	rec := NewRecord(ActionEntryApproved,
		Actor{ID: "u-1", Email: "approver@example.com"},
		EntityRef{Type: "entry", ID: "e-1"},
		map[string]any{"approver_id": "u-1", "notes": "ok"})
	rec.OrganizationID = "org-1"
	rec.WorkspaceID = "ws-1"

	require.NoError(t, store.Append(ctx, rec))

	got, err := store.Get(ctx, rec.ID)
	require.NoError(t, err)
	require.Equal(t, rec.ID, got.ID)
	require.Equal(t, ActionEntryApproved, got.Action)
	require.Equal(t, rec.Actor, got.Actor)
	require.Equal(t, rec.Target, got.Target)
	require.Equal(t, "org-1", got.OrganizationID)
	require.Equal(t, "ws-1", got.WorkspaceID)
	require.Equal(t, "ok", got.Metadata["notes"])
	require.WithinDuration(t, rec.CreatedAt, got.CreatedAt, time.Second)
}

func TestStore_Append_SystemRecord(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "audit_store")
	store := NewStore(client, 0)
	ctx := context.Background()

	rec := NewRecord(ActionOperationFailed, Actor{}, EntityRef{}, map[string]any{"error_message": "boom"})
	require.NoError(t, store.Append(ctx, rec))

	got, err := store.Get(ctx, rec.ID)
	require.NoError(t, err)
	require.True(t, got.Actor.IsZero())
	require.True(t, got.Target.IsZero())
}

func TestStore_Get_NotFound(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "audit_store")
	store := NewStore(client, 0)

	_, err := store.Get(context.Background(), "audit-missing")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStore_DeleteBatch(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "audit_store")
	store := NewStore(client, 0)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		rec := NewRecord(ActionEntryCreated, Actor{ID: "u-1"}, EntityRef{Type: "entry", ID: "e-1"}, nil)
		require.NoError(t, store.Append(ctx, rec))
		ids = append(ids, rec.ID)
	}

	n, err := store.DeleteBatch(ctx, ids[:2])
	require.NoError(t, err)
	require.Equal(t, 2, n)

	// Deleting the same ids again is a no-op.
	n, err = store.DeleteBatch(ctx, ids[:2])
	require.NoError(t, err)
	require.Equal(t, 0, n)

	n, err = store.DeleteBatch(ctx, nil)
	require.NoError(t, err)
	require.Equal(t, 0, n)

	_, err = store.Get(ctx, ids[2])
	require.NoError(t, err)
}

func TestStore_ExpiredIDs(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "audit_store")
	store := NewStore(client, 0)
	ctx := context.Background()

	now := time.Now().UTC()
	old1 := seedRecordAt(t, ctx, store, ActionLoginSuccess, now.Add(-72*time.Hour))
	old2 := seedRecordAt(t, ctx, store, ActionEntryCreated, now.Add(-48*time.Hour))
	seedRecordAt(t, ctx, store, ActionEntryCreated, now.Add(-time.Hour))

	cutoff := now.Add(-24 * time.Hour)

	ids, err := store.ExpiredIDs(ctx, cutoff, nil, 100)
	require.NoError(t, err)
	require.Equal(t, []string{old1, old2}, ids, "expired ids should come back oldest first")

	ids, err = store.ExpiredIDs(ctx, cutoff, []string{ActionLoginSuccess.String()}, 100)
	require.NoError(t, err)
	require.Equal(t, []string{old1}, ids)

	ids, err = store.ExpiredIDs(ctx, cutoff, nil, 1)
	require.NoError(t, err)
	require.Equal(t, []string{old1}, ids)

	n, err := store.CountExpired(ctx, cutoff, nil)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	n, err = store.CountExpired(ctx, cutoff, []string{ActionLoginSuccess.String()})
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func seedRecordAt(t *testing.T, ctx context.Context, store *Store, action Action, at time.Time) string {
	t.Helper()
	rec := NewRecord(action, Actor{ID: "u-1"}, EntityRef{}, nil)
	rec.CreatedAt = at
	require.NoError(t, store.Append(ctx, rec))
	return rec.ID
}
