package query

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ledgerline.io/audittrail/ent"
	"ledgerline.io/audittrail/internal/audit"
	apperrors "ledgerline.io/audittrail/internal/pkg/errors"
	"ledgerline.io/audittrail/internal/pkg/logger"
	"ledgerline.io/audittrail/internal/testutil"
)

func init() {
	_ = logger.Init("error", "json")
}

type seed struct {
	action    audit.Action
	actor     audit.Actor
	target    audit.EntityRef
	workspace string
	metadata  map[string]any
	at        time.Time
}

func seedRecords(t *testing.T, client *ent.Client, seeds []seed) []string {
	t.Helper()
	store := audit.NewStore(client, 0)
	ctx := context.Background()

	ids := make([]string, 0, len(seeds))
	for _, s := range seeds {
		rec := audit.NewRecord(s.action, s.actor, s.target, s.metadata)
		rec.WorkspaceID = s.workspace
		if !s.at.IsZero() {
			rec.CreatedAt = s.at
		}
		require.NoError(t, store.Append(ctx, rec))
		ids = append(ids, rec.ID)
	}
	return ids
}

func TestSelector_Validate(t *testing.T) {
	s := NewSelector(nil, nil)
	ctx := context.Background()

	_, err := s.Records(ctx, Filter{Limit: -1})
	require.ErrorIs(t, err, apperrors.ErrInvalidQuery)

	start := time.Now()
	end := start.Add(-time.Hour)
	_, err = s.Records(ctx, Filter{Start: &start, End: &end})
	require.ErrorIs(t, err, apperrors.ErrInvalidQuery)

	_, err = s.Records(ctx, Filter{Actions: []string{"no_such_action"}})
	require.ErrorIs(t, err, apperrors.ErrInvalidQuery)

	_, err = s.Transitions(ctx, TransitionFilter{})
	require.ErrorIs(t, err, apperrors.ErrInvalidQuery)
}

func TestSelector_EntityLifecycleOrdering(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "audit_query")
	ctx := context.Background()

	now := time.Now().UTC()
	actor := audit.Actor{ID: "u-1", Email: "user@example.com"}
	entry := audit.EntityRef{Type: "entry", ID: "e-1"}

	seedRecords(t, client, []seed{
		{action: audit.ActionEntryCreated, actor: actor, target: entry, at: now.Add(-3 * time.Minute)},
		{action: audit.ActionEntryUpdated, actor: actor, target: entry, at: now.Add(-2 * time.Minute),
			metadata: map[string]any{"changed_fields": []any{
				map[string]any{"field": "status", "old_value": "draft", "new_value": "submitted"},
			}}},
		{action: audit.ActionEntryDeleted, actor: actor, target: entry, at: now.Add(-time.Minute)},
		{action: audit.ActionEntryCreated, actor: actor, target: audit.EntityRef{Type: "entry", ID: "e-other"}, at: now},
	})

	s := NewSelector(client, nil)
	records, err := s.Records(ctx, Filter{EntityID: "e-1"})
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, audit.ActionEntryDeleted, records[0].Action)
	require.Equal(t, audit.ActionEntryUpdated, records[1].Action)
	require.Equal(t, audit.ActionEntryCreated, records[2].Action)

	// Ascending override inverts the order.
	records, err = s.Records(ctx, Filter{EntityID: "e-1", OrderAsc: true})
	require.NoError(t, err)
	require.Equal(t, audit.ActionEntryCreated, records[0].Action)
	require.Equal(t, audit.ActionEntryDeleted, records[2].Action)
}

func TestSelector_Filters(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "audit_query")
	ctx := context.Background()

	now := time.Now().UTC()
	alice := audit.Actor{ID: "u-alice", Email: "alice@example.com"}
	bob := audit.Actor{ID: "u-bob", Email: "bob@example.com"}

	seedRecords(t, client, []seed{
		{action: audit.ActionEntryApproved, actor: alice, target: audit.EntityRef{Type: "entry", ID: "e-1"}, workspace: "ws-1", at: now.Add(-4 * time.Hour)},
		{action: audit.ActionLoginFailed, metadata: map[string]any{"attempted_identifier": "ghost@example.com"}, at: now.Add(-3 * time.Hour)},
		{action: audit.ActionPermissionGranted, actor: bob, target: audit.EntityRef{Type: "user", ID: "u-9"}, workspace: "ws-2", at: now.Add(-2 * time.Hour)},
		{action: audit.ActionDataExported, actor: bob, workspace: "ws-2", at: now.Add(-time.Hour)},
	})

	s := NewSelector(client, nil)

	records, err := s.Records(ctx, Filter{ActorID: "u-bob"})
	require.NoError(t, err)
	require.Len(t, records, 2)

	records, err = s.Records(ctx, Filter{WorkspaceID: "ws-1"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, audit.ActionEntryApproved, records[0].Action)

	records, err = s.Records(ctx, Filter{Actions: []string{audit.ActionPermissionGranted.String(), audit.ActionDataExported.String()}})
	require.NoError(t, err)
	require.Len(t, records, 2)

	records, err = s.Records(ctx, Filter{EntityTypes: []string{"user"}})
	require.NoError(t, err)
	require.Len(t, records, 1)

	start := now.Add(-150 * time.Minute)
	end := now.Add(-30 * time.Minute)
	records, err = s.Records(ctx, Filter{Start: &start, End: &end})
	require.NoError(t, err)
	require.Len(t, records, 2)

	records, err = s.Records(ctx, Filter{SecurityOnly: true})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, audit.ActionLoginFailed, records[0].Action)

	records, err = s.Records(ctx, Filter{CriticalOnly: true})
	require.NoError(t, err)
	require.Len(t, records, 2)

	records, err = s.Records(ctx, Filter{ExcludeSystem: true})
	require.NoError(t, err)
	require.Len(t, records, 3)
	for _, rec := range records {
		require.False(t, rec.Actor.IsZero())
	}

	// Unmatched filters are an empty result, not an error.
	records, err = s.Records(ctx, Filter{ActorID: "u-nobody"})
	require.NoError(t, err)
	require.Empty(t, records)

	n, err := s.Count(ctx, Filter{ActorID: "u-bob"})
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestSelector_CriticalOnly_ConfigExtension(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "audit_query")
	ctx := context.Background()

	seedRecords(t, client, []seed{
		{action: audit.ActionPermissionRevoked, actor: audit.Actor{ID: "u-1"}},
		{action: audit.ActionFileDeleted, actor: audit.Actor{ID: "u-1"}},
		{action: audit.ActionEntryCreated, actor: audit.Actor{ID: "u-1"}},
	})

	builtin := NewSelector(client, nil)
	records, err := builtin.Records(ctx, Filter{CriticalOnly: true})
	require.NoError(t, err)
	require.Len(t, records, 1)

	extended := NewSelector(client, []string{audit.ActionFileDeleted.String()})
	records, err = extended.Records(ctx, Filter{CriticalOnly: true})
	require.NoError(t, err)
	require.Len(t, records, 2)
}

func TestSelector_FreeTextSearch(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "audit_query")
	ctx := context.Background()

	seedRecords(t, client, []seed{
		{action: audit.ActionEntryApproved, actor: audit.Actor{ID: "u-1", Email: "carol@example.com"},
			metadata: map[string]any{"notes": "quarterly remittance check"}},
		{action: audit.ActionWorkspaceArchived, actor: audit.Actor{ID: "u-2", Email: "dave@example.com"}},
		{action: audit.ActionEntryCreated, actor: audit.Actor{ID: "u-3", Email: "erin@example.com"}},
	})

	s := NewSelector(client, nil)

	// Metadata content.
	records, err := s.Records(ctx, Filter{Search: "remittance check"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, audit.ActionEntryApproved, records[0].Action)

	// Actor email, case-insensitive.
	records, err = s.Records(ctx, Filter{Search: "DAVE@example"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, audit.ActionWorkspaceArchived, records[0].Action)

	// Human-readable action label.
	records, err = s.Records(ctx, Filter{Search: "Workspace Archived"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, audit.ActionWorkspaceArchived, records[0].Action)

	// LIKE wildcards in the term are literal characters.
	records, err = s.Records(ctx, Filter{Search: "%"})
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestSelector_Pagination(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "audit_query")
	ctx := context.Background()

	now := time.Now().UTC()
	seeds := make([]seed, 5)
	for i := range seeds {
		seeds[i] = seed{
			action: audit.ActionEntryCreated,
			actor:  audit.Actor{ID: "u-1"},
			at:     now.Add(time.Duration(-i) * time.Minute),
		}
	}
	ids := seedRecords(t, client, seeds)

	s := NewSelector(client, nil)

	page1, err := s.Records(ctx, Filter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, page1, 2)
	require.Equal(t, ids[0], page1[0].ID)

	page2, err := s.Records(ctx, Filter{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, page2, 2)
	require.Equal(t, ids[2], page2[0].ID)

	page3, err := s.Records(ctx, Filter{Limit: 2, Offset: 4})
	require.NoError(t, err)
	require.Len(t, page3, 1)
}

func TestSelector_Transitions(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "audit_query")
	ctx := context.Background()

	now := time.Now().UTC()
	actor := audit.Actor{ID: "u-1"}
	entry := audit.EntityRef{Type: "entry", ID: "e-1"}

	diff := func(field, old, new string) map[string]any {
		return map[string]any{"changed_fields": []any{
			map[string]any{"field": field, "old_value": old, "new_value": new},
		}}
	}

	seedRecords(t, client, []seed{
		{action: audit.ActionEntryUpdated, actor: actor, target: entry, workspace: "ws-1",
			metadata: diff("status", "draft", "submitted"), at: now.Add(-3 * time.Minute)},
		{action: audit.ActionEntryStatusChanged, actor: actor, target: entry, workspace: "ws-1",
			metadata: diff("status", "submitted", "approved"), at: now.Add(-2 * time.Minute)},
		{action: audit.ActionEntryUpdated, actor: actor, target: entry, workspace: "ws-1",
			metadata: diff("amount", "50", "75"), at: now.Add(-time.Minute)},
		// A record mentioning "status" in metadata without a structured diff
		// must not match.
		{action: audit.ActionEntryCreated, actor: actor, target: entry, workspace: "ws-1",
			metadata: map[string]any{"initial_values": map[string]any{"status": "draft"}}, at: now},
	})

	s := NewSelector(client, nil)

	records, err := s.Transitions(ctx, TransitionFilter{Field: "status"})
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, audit.ActionEntryStatusChanged, records[0].Action)

	old := "draft"
	records, err = s.Transitions(ctx, TransitionFilter{Field: "status", OldValue: &old})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, audit.ActionEntryUpdated, records[0].Action)

	newVal := "approved"
	records, err = s.Transitions(ctx, TransitionFilter{Field: "status", NewValue: &newVal})
	require.NoError(t, err)
	require.Len(t, records, 1)

	wrong := "nonexistent"
	records, err = s.Transitions(ctx, TransitionFilter{Field: "status", OldValue: &wrong})
	require.NoError(t, err)
	require.Empty(t, records)

	records, err = s.Transitions(ctx, TransitionFilter{Field: "amount", WorkspaceID: "ws-2"})
	require.NoError(t, err)
	require.Empty(t, records)
}
