// Package capture derives audit records automatically from entity
// lifecycle transitions. Business code registers its entity types once at
// startup; the hooks then observe created/updated/deleted transitions and
// emit records through the dispatcher without any explicit logging calls.
package capture

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"ledgerline.io/audittrail/internal/audit"
	"ledgerline.io/audittrail/internal/pkg/logger"
)

// Verb is an entity lifecycle transition.
type Verb string

const (
	VerbCreated       Verb = "created"
	VerbUpdated       Verb = "updated"
	VerbDeleted       Verb = "deleted"
	VerbStatusChanged Verb = "status_changed"
)

// Auditable is an entity whose tracked fields can be read by name. The
// second return reports whether the entity has the field at all.
type Auditable interface {
	audit.Entity
	FieldValue(name string) (any, bool)
}

// Loader fetches the current stored state of one entity, used for
// pre-change snapshots. Returning an error or nil is tolerated: the
// snapshot is then simply empty.
type Loader func(ctx context.Context, id string) (Auditable, error)

// Config is the capture configuration for one entity type.
type Config struct {
	// Actions maps lifecycle verbs to catalog actions. At minimum
	// created/updated/deleted should be mapped; status_changed is
	// optional.
	Actions map[Verb]audit.Action

	// TrackedFields are the field names whose values are captured and
	// diffed. Sensitive names are excluded at emission time regardless.
	TrackedFields []string

	// Loader provides pre-change snapshots. Optional; without it the
	// caller must pass snapshots explicitly.
	Loader Loader
}

// Registry maps entity types to capture configurations. Registration is
// expected at process start; dynamic re-registration replaces the previous
// configuration for that type.
type Registry struct {
	mu      sync.RWMutex
	configs map[string]Config
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{configs: make(map[string]Config)}
}

// Register declares an entity type auditable. Re-registering a type
// replaces its configuration.
func (r *Registry) Register(entityType string, cfg Config) {
	r.mu.Lock()
	r.configs[entityType] = cfg
	r.mu.Unlock()
	logger.Info("Registered audit capture for entity type",
		zap.String("entity_type", entityType),
		zap.Int("tracked_fields", len(cfg.TrackedFields)),
	)
}

// Config returns the configuration for an entity type.
func (r *Registry) Config(entityType string) (Config, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cfg, ok := r.configs[entityType]
	return cfg, ok
}

// Types returns all registered entity types.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.configs))
	for t := range r.configs {
		out = append(out, t)
	}
	return out
}

// IsRegistered reports whether an entity type is under capture.
func (r *Registry) IsRegistered(entityType string) bool {
	_, ok := r.Config(entityType)
	return ok
}
