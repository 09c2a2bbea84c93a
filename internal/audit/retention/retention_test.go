package retention

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ledgerline.io/audittrail/internal/audit"
	"ledgerline.io/audittrail/internal/config"
	apperrors "ledgerline.io/audittrail/internal/pkg/errors"
	"ledgerline.io/audittrail/internal/pkg/logger"
)

func init() {
	_ = logger.Init("error", "json")
}

var testRetention = config.RetentionConfig{
	AuthenticationDays: 180,
	CriticalDays:       2555,
	DefaultDays:        365,
}

// fakeStore keeps records in memory, mimicking the store's cutoff and
// action-type narrowing.
type fakeStore struct {
	records map[string]fakeRecord
	deletes int
}

type fakeRecord struct {
	action    string
	createdAt time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[string]fakeRecord)}
}

func (f *fakeStore) add(id, action string, createdAt time.Time) {
	f.records[id] = fakeRecord{action: action, createdAt: createdAt}
}

func (f *fakeStore) expired(cutoff time.Time, actions []string) []string {
	allowed := make(map[string]struct{}, len(actions))
	for _, a := range actions {
		allowed[a] = struct{}{}
	}
	var ids []string
	for id, rec := range f.records {
		if !rec.createdAt.Before(cutoff) {
			continue
		}
		if len(allowed) > 0 {
			if _, ok := allowed[rec.action]; !ok {
				continue
			}
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return f.records[ids[i]].createdAt.Before(f.records[ids[j]].createdAt)
	})
	return ids
}

func (f *fakeStore) ExpiredIDs(_ context.Context, cutoff time.Time, actions []string, limit int) ([]string, error) {
	ids := f.expired(cutoff, actions)
	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

func (f *fakeStore) CountExpired(_ context.Context, cutoff time.Time, actions []string) (int, error) {
	return len(f.expired(cutoff, actions)), nil
}

func (f *fakeStore) DeleteBatch(_ context.Context, ids []string) (int, error) {
	n := 0
	for _, id := range ids {
		if _, ok := f.records[id]; ok {
			delete(f.records, id)
			n++
		}
	}
	f.deletes++
	return n, nil
}

func TestPolicy_CategoryFor(t *testing.T) {
	p := NewPolicy(testRetention, nil)

	require.Equal(t, CategoryAuthentication, p.CategoryFor(audit.ActionLoginSuccess))
	require.Equal(t, CategoryAuthentication, p.CategoryFor(audit.ActionLoginFailed))
	require.Equal(t, CategoryCritical, p.CategoryFor(audit.ActionPermissionGranted))
	require.Equal(t, CategoryCritical, p.CategoryFor(audit.ActionDataExported))
	require.Equal(t, CategoryDefault, p.CategoryFor(audit.ActionEntryCreated))

	// Configured critical membership wins over the authentication class.
	extended := NewPolicy(testRetention, []string{audit.ActionLoginFailed.String()})
	require.Equal(t, CategoryCritical, extended.CategoryFor(audit.ActionLoginFailed))
}

func TestPolicy_Cutoff(t *testing.T) {
	p := NewPolicy(testRetention, nil)
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	require.Equal(t, now.Add(-180*24*time.Hour), p.Cutoff(CategoryAuthentication, now, 0))
	require.Equal(t, now.Add(-30*24*time.Hour), p.Cutoff(CategoryAuthentication, now, 30))
}

func TestEngine_Run_CategoryWindows(t *testing.T) {
	store := newFakeStore()
	now := time.Now().UTC()

	// Authentication record older than its 180-day window but younger than
	// the default window: it must expire while a default-category record of
	// the same age survives.
	store.add("auth-old", audit.ActionLoginSuccess.String(), now.Add(-200*24*time.Hour))
	store.add("entry-same-age", audit.ActionEntryCreated.String(), now.Add(-200*24*time.Hour))
	store.add("entry-old", audit.ActionEntryCreated.String(), now.Add(-400*24*time.Hour))
	store.add("critical-old", audit.ActionPermissionGranted.String(), now.Add(-400*24*time.Hour))

	engine := NewEngine(store, NewPolicy(testRetention, nil), 100)
	summary, err := engine.Run(context.Background(), Options{})
	require.NoError(t, err)

	require.False(t, summary.DryRun)
	require.Equal(t, 2, summary.Total)
	require.Equal(t, 1, summary.PerCategory[CategoryAuthentication])
	require.Equal(t, 1, summary.PerCategory[CategoryDefault])
	require.Equal(t, 0, summary.PerCategory[CategoryCritical])

	require.NotContains(t, store.records, "auth-old")
	require.NotContains(t, store.records, "entry-old")
	require.Contains(t, store.records, "entry-same-age")
	require.Contains(t, store.records, "critical-old")
}

func TestEngine_Run_DryRun(t *testing.T) {
	store := newFakeStore()
	now := time.Now().UTC()

	store.add("old-1", audit.ActionEntryCreated.String(), now.Add(-400*24*time.Hour))
	store.add("old-2", audit.ActionEntryUpdated.String(), now.Add(-366*24*time.Hour))
	store.add("live-1", audit.ActionEntryCreated.String(), now.Add(-10*24*time.Hour))
	store.add("live-2", audit.ActionEntryDeleted.String(), now.Add(-24*time.Hour))
	store.add("live-3", audit.ActionEntryApproved.String(), now)

	engine := NewEngine(store, NewPolicy(testRetention, nil), 100)
	summary, err := engine.Run(context.Background(), Options{DryRun: true})
	require.NoError(t, err)

	require.True(t, summary.DryRun)
	require.Equal(t, 2, summary.Total)
	require.Equal(t, 2, summary.PerCategory[CategoryDefault])
	require.Len(t, store.records, 5, "dry run must not delete")
	require.Equal(t, 0, store.deletes)
}

func TestEngine_Run_Batching(t *testing.T) {
	store := newFakeStore()
	now := time.Now().UTC()

	for i := 0; i < 7; i++ {
		store.add(
			string(rune('a'+i)),
			audit.ActionEntryCreated.String(),
			now.Add(-400*24*time.Hour).Add(time.Duration(i)*time.Minute))
	}

	engine := NewEngine(store, NewPolicy(testRetention, nil), 100)
	summary, err := engine.Run(context.Background(), Options{BatchSize: 3})
	require.NoError(t, err)

	require.Equal(t, 7, summary.Total)
	require.Empty(t, store.records)
	require.Equal(t, 3, store.deletes, "7 records at batch size 3 take 3 delete rounds")
}

func TestEngine_Run_SingleActionType(t *testing.T) {
	store := newFakeStore()
	now := time.Now().UTC()

	store.add("target-old", audit.ActionFileUploaded.String(), now.Add(-400*24*time.Hour))
	store.add("other-old", audit.ActionEntryCreated.String(), now.Add(-400*24*time.Hour))

	engine := NewEngine(store, NewPolicy(testRetention, nil), 100)
	summary, err := engine.Run(context.Background(), Options{ActionType: audit.ActionFileUploaded.String()})
	require.NoError(t, err)

	require.Equal(t, 1, summary.Total)
	require.NotContains(t, store.records, "target-old")
	require.Contains(t, store.records, "other-old")
}

func TestEngine_Run_OverrideDays(t *testing.T) {
	store := newFakeStore()
	now := time.Now().UTC()

	store.add("recent", audit.ActionEntryCreated.String(), now.Add(-40*24*time.Hour))

	engine := NewEngine(store, NewPolicy(testRetention, nil), 100)

	summary, err := engine.Run(context.Background(), Options{})
	require.NoError(t, err)
	require.Equal(t, 0, summary.Total)

	summary, err = engine.Run(context.Background(), Options{OverrideDays: 30})
	require.NoError(t, err)
	require.Equal(t, 1, summary.Total)
}

func TestEngine_Run_InvalidOptions(t *testing.T) {
	engine := NewEngine(newFakeStore(), NewPolicy(testRetention, nil), 100)
	ctx := context.Background()

	_, err := engine.Run(ctx, Options{BatchSize: -1})
	require.ErrorIs(t, err, apperrors.ErrBadRequest)

	_, err = engine.Run(ctx, Options{OverrideDays: -7})
	require.ErrorIs(t, err, apperrors.ErrBadRequest)

	_, err = engine.Run(ctx, Options{ActionType: "no_such_action"})
	require.ErrorIs(t, err, apperrors.ErrBadRequest)
}
