package capture

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ledgerline.io/audittrail/internal/audit"
	"ledgerline.io/audittrail/internal/audit/dispatch"
	"ledgerline.io/audittrail/internal/pkg/logger"
	"ledgerline.io/audittrail/internal/pkg/worker"
)

func init() {
	_ = logger.Init("error", "json")
}

type recordingAppender struct {
	mu      sync.Mutex
	records []*audit.Record
}

func (r *recordingAppender) Append(_ context.Context, rec *audit.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, rec)
	return nil
}

func (r *recordingAppender) all() []*audit.Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*audit.Record(nil), r.records...)
}

type nopEnqueuer struct{}

func (nopEnqueuer) Enqueue(context.Context, *audit.Record) error { return nil }

// testEntry is an auditable financial entry with a workspace relation.
type testEntry struct {
	id     string
	fields map[string]any
	ws     *audit.WorkspaceRef
}

func (e *testEntry) EntityType() string { return "entry" }
func (e *testEntry) EntityID() string   { return e.id }
func (e *testEntry) FieldValue(name string) (any, bool) {
	v, ok := e.fields[name]
	return v, ok
}
func (e *testEntry) Workspace() *audit.WorkspaceRef { return e.ws }

func entryConfig(loader Loader) Config {
	return Config{
		Actions: map[Verb]audit.Action{
			VerbCreated:       audit.ActionEntryCreated,
			VerbUpdated:       audit.ActionEntryUpdated,
			VerbDeleted:       audit.ActionEntryDeleted,
			VerbStatusChanged: audit.ActionEntryStatusChanged,
		},
		TrackedFields: []string{"amount", "status", "password_hash"},
		Loader:        loader,
	}
}

func newTestHooks(t *testing.T) (*Hooks, *recordingAppender, *Registry) {
	t.Helper()
	pools, err := worker.NewPools(context.Background(), worker.PoolConfig{
		GeneralPoolSize:  2,
		DispatchPoolSize: 2,
	})
	require.NoError(t, err)
	t.Cleanup(pools.Shutdown)

	appender := &recordingAppender{}
	d := dispatch.New(appender, nopEnqueuer{}, pools, 10000)
	registry := NewRegistry()
	return NewHooks(registry, d, nil), appender, registry
}

func TestHooks_Created(t *testing.T) {
	hooks, appender, registry := newTestHooks(t)
	registry.Register("entry", entryConfig(nil))

	entity := &testEntry{
		id:     "e-1",
		fields: map[string]any{"amount": "100.50", "status": "draft", "password_hash": "x"},
		ws:     &audit.WorkspaceRef{ID: "ws-1", OrganizationID: "org-1"},
	}

	err := hooks.Created(context.Background(), entity, &EventContext{
		Actor: audit.Actor{ID: "u-1", Email: "u@example.com"},
	})
	require.NoError(t, err)

	records := appender.all()
	require.Len(t, records, 1)
	rec := records[0]
	require.Equal(t, audit.ActionEntryCreated, rec.Action)
	require.Equal(t, audit.EntityRef{Type: "entry", ID: "e-1"}, rec.Target)
	require.Equal(t, "u-1", rec.Actor.ID)
	require.Equal(t, "ws-1", rec.WorkspaceID)
	require.Equal(t, "org-1", rec.OrganizationID)
	require.Equal(t, "100.50", rec.Metadata["amount"])
	require.Equal(t, "draft", rec.Metadata["status"])
	require.Equal(t, true, rec.Metadata["automatic_logging"])
	require.Equal(t, "create", rec.Metadata["operation_type"])

	// Sensitive fields never reach metadata.
	require.NotContains(t, rec.Metadata, "password_hash")
}

func TestHooks_Created_UnregisteredType(t *testing.T) {
	hooks, appender, _ := newTestHooks(t)

	err := hooks.Created(context.Background(), &testEntry{id: "e-1", fields: map[string]any{}}, nil)
	require.NoError(t, err)
	require.Empty(t, appender.all())
}

func TestHooks_Updated_NoOpEmitsNothing(t *testing.T) {
	hooks, appender, registry := newTestHooks(t)
	registry.Register("entry", entryConfig(nil))

	entity := &testEntry{id: "e-2", fields: map[string]any{"amount": "50", "status": "draft"}}
	snapshot := map[string]any{"amount": "50", "status": "draft"}

	require.NoError(t, hooks.Updated(context.Background(), entity, snapshot, nil))
	require.Empty(t, appender.all())
}

func TestHooks_Updated_EmitsDiff(t *testing.T) {
	hooks, appender, registry := newTestHooks(t)
	registry.Register("entry", entryConfig(nil))

	entity := &testEntry{id: "e-3", fields: map[string]any{"amount": "75", "status": "draft"}}
	snapshot := map[string]any{"amount": "50", "status": "draft"}

	require.NoError(t, hooks.Updated(context.Background(), entity, snapshot, nil))

	records := appender.all()
	require.Len(t, records, 1)
	rec := records[0]
	require.Equal(t, audit.ActionEntryUpdated, rec.Action)

	changed := rec.Metadata["changed_fields"].([]any)
	require.Len(t, changed, 1)
	change := changed[0].(map[string]any)
	require.Equal(t, "amount", change["field"])
	require.Equal(t, "50", change["old_value"])
	require.Equal(t, "75", change["new_value"])
}

func TestHooks_Updated_StatusChange(t *testing.T) {
	hooks, appender, registry := newTestHooks(t)
	registry.Register("entry", entryConfig(nil))

	entity := &testEntry{id: "e-4", fields: map[string]any{"amount": "50", "status": "submitted"}}
	snapshot := map[string]any{"amount": "50", "status": "draft"}

	require.NoError(t, hooks.Updated(context.Background(), entity, snapshot, nil))

	records := appender.all()
	require.Len(t, records, 1)
	rec := records[0]
	require.Equal(t, audit.ActionEntryStatusChanged, rec.Action)
	require.Equal(t, "status_change", rec.Metadata["operation_type"])
	require.Equal(t, "draft", rec.Metadata["old_status"])
	require.Equal(t, "submitted", rec.Metadata["new_status"])
}

func TestHooks_Updated_SoftDelete(t *testing.T) {
	hooks, appender, registry := newTestHooks(t)
	cfg := entryConfig(nil)
	cfg.TrackedFields = append(cfg.TrackedFields, "deleted_at")
	registry.Register("entry", cfg)

	deletedAt := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	entity := &testEntry{id: "e-5", fields: map[string]any{
		"amount": "50", "status": "draft", "deleted_at": deletedAt,
	}}
	snapshot := map[string]any{"amount": "50", "status": "draft", "deleted_at": nil}

	require.NoError(t, hooks.Updated(context.Background(), entity, snapshot, nil))

	records := appender.all()
	require.Len(t, records, 1)
	rec := records[0]
	require.Equal(t, audit.ActionEntryDeleted, rec.Action)
	require.Equal(t, true, rec.Metadata["soft_delete"])
	require.Equal(t, "2026-04-01T12:00:00Z", rec.Metadata["deletion_timestamp"])
}

func TestHooks_Updated_SensitiveFieldExcluded(t *testing.T) {
	hooks, appender, registry := newTestHooks(t)
	registry.Register("entry", entryConfig(nil))

	entity := &testEntry{id: "e-6", fields: map[string]any{
		"amount": "50", "status": "draft", "password_hash": "new",
	}}
	snapshot := map[string]any{"amount": "50", "status": "draft", "password_hash": "old"}

	// Only the sensitive field changed, so nothing is emitted at all.
	require.NoError(t, hooks.Updated(context.Background(), entity, snapshot, nil))
	require.Empty(t, appender.all())
}

func TestHooks_Deleting(t *testing.T) {
	hooks, appender, registry := newTestHooks(t)
	registry.Register("entry", entryConfig(nil))

	entity := &testEntry{id: "e-7", fields: map[string]any{"amount": "99", "status": "approved"}}

	require.NoError(t, hooks.Deleting(context.Background(), entity, &EventContext{
		Actor: audit.Actor{ID: "u-2"},
		Extra: map[string]any{"reason": "gdpr request"},
	}))

	records := appender.all()
	require.Len(t, records, 1)
	rec := records[0]
	require.Equal(t, audit.ActionEntryDeleted, rec.Action)
	require.Equal(t, "99", rec.Metadata["amount"])
	require.Equal(t, "approved", rec.Metadata["status"])
	require.Equal(t, "delete", rec.Metadata["operation_type"])
	require.Equal(t, "gdpr request", rec.Metadata["reason"])
}

func TestHooks_Snapshot(t *testing.T) {
	hooks, _, registry := newTestHooks(t)

	stored := &testEntry{id: "e-8", fields: map[string]any{"amount": "10", "status": "draft"}}
	registry.Register("entry", entryConfig(func(_ context.Context, id string) (Auditable, error) {
		if id == "e-8" {
			return stored, nil
		}
		return nil, nil
	}))

	snap := hooks.Snapshot(context.Background(), "entry", "e-8")
	require.Equal(t, map[string]any{"amount": "10", "status": "draft"}, snap)

	// Raced with a concurrent delete: empty snapshot, not an error.
	require.Empty(t, hooks.Snapshot(context.Background(), "entry", "gone"))

	// Unregistered type.
	require.Empty(t, hooks.Snapshot(context.Background(), "unknown", "x"))
}

func TestRegistry_ReplaceOnReregister(t *testing.T) {
	registry := NewRegistry()
	registry.Register("entry", Config{TrackedFields: []string{"a"}})
	registry.Register("entry", Config{TrackedFields: []string{"b", "c"}})

	cfg, ok := registry.Config("entry")
	require.True(t, ok)
	require.Equal(t, []string{"b", "c"}, cfg.TrackedFields)
	require.True(t, registry.IsRegistered("entry"))
	require.False(t, registry.IsRegistered("other"))
	require.Equal(t, []string{"entry"}, registry.Types())
}
