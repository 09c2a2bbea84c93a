package capture

import (
	"context"

	"go.uber.org/zap"

	"ledgerline.io/audittrail/internal/audit"
	"ledgerline.io/audittrail/internal/audit/dispatch"
	"ledgerline.io/audittrail/internal/pkg/logger"
)

// FieldChange is one tracked-field difference. Values are stringified for
// safe serialization; nil marks an absent value.
type FieldChange struct {
	Field string  `json:"field"`
	Old   *string `json:"old_value"`
	New   *string `json:"new_value"`
}

// EventContext carries the optional scope hints and free-form metadata for
// one emission. All fields may be nil.
type EventContext struct {
	Actor           audit.Actor
	Workspace       *audit.WorkspaceRef
	ActorMembership *audit.OrganizationRef
	Extra           map[string]any
}

// Hooks observes entity lifecycle transitions and emits audit records.
// Emissions are synchronous, within the caller's unit of work, and wrapped
// so capture failures never break the triggering operation.
type Hooks struct {
	registry   *Registry
	dispatcher *dispatch.Dispatcher
	sensitive  []string
}

// NewHooks creates the capture hooks.
func NewHooks(registry *Registry, dispatcher *dispatch.Dispatcher, sensitiveFields []string) *Hooks {
	if sensitiveFields == nil {
		sensitiveFields = audit.DefaultSensitiveFields
	}
	return &Hooks{registry: registry, dispatcher: dispatcher, sensitive: sensitiveFields}
}

// Created emits one record for a freshly created entity, carrying the
// current value of every tracked field.
func (h *Hooks) Created(ctx context.Context, entity Auditable, evctx *EventContext) error {
	return dispatch.Protect("capture.created", func() error {
		cfg, ok := h.registry.Config(entity.EntityType())
		if !ok {
			return nil
		}
		action, ok := cfg.Actions[VerbCreated]
		if !ok {
			return nil
		}

		metadata := h.trackedValues(entity, cfg.TrackedFields)
		metadata["automatic_logging"] = true
		metadata["operation_type"] = "create"

		return h.emit(ctx, action, entity, evctx, metadata)
	})
}

// Snapshot loads the current stored values of every tracked field of one
// entity, immediately before an update is applied. If the entity cannot be
// loaded (e.g. raced with a concurrent delete) the snapshot is empty and
// diffing later finds no changes.
func (h *Hooks) Snapshot(ctx context.Context, entityType, id string) map[string]any {
	cfg, ok := h.registry.Config(entityType)
	if !ok || cfg.Loader == nil {
		return map[string]any{}
	}

	old, err := cfg.Loader(ctx, id)
	if err != nil || old == nil {
		logger.Debug("Pre-change snapshot unavailable",
			zap.String("entity_type", entityType),
			zap.String("entity_id", id),
			zap.Error(err),
		)
		return map[string]any{}
	}

	snapshot := make(map[string]any, len(cfg.TrackedFields))
	for _, field := range cfg.TrackedFields {
		if v, ok := old.FieldValue(field); ok {
			snapshot[field] = v
		}
	}
	return snapshot
}

// Updated diffs the pre-change snapshot against the entity's current state
// and emits one record if any tracked field changed. A no-op save emits
// nothing. A tracked deleted_at transitioning from absent to set is
// treated as a soft delete and uses the deleted action; a tracked status
// change uses the status_changed action when mapped.
func (h *Hooks) Updated(ctx context.Context, entity Auditable, snapshot map[string]any, evctx *EventContext) error {
	return dispatch.Protect("capture.updated", func() error {
		cfg, ok := h.registry.Config(entity.EntityType())
		if !ok {
			return nil
		}

		changes := h.diff(entity, snapshot, cfg.TrackedFields)
		if len(changes) == 0 {
			return nil
		}

		action, extras := classifyUpdate(cfg, changes)
		if !action.Valid() {
			return nil
		}

		metadata := h.trackedValues(entity, cfg.TrackedFields)
		metadata["automatic_logging"] = true
		metadata["changed_fields"] = changesToMetadata(changes)
		for k, v := range extras {
			metadata[k] = v
		}

		return h.emit(ctx, action, entity, evctx, metadata)
	})
}

// Deleting emits one record carrying the final known value of every
// tracked field, immediately before the entity is removed.
func (h *Hooks) Deleting(ctx context.Context, entity Auditable, evctx *EventContext) error {
	return dispatch.Protect("capture.deleting", func() error {
		cfg, ok := h.registry.Config(entity.EntityType())
		if !ok {
			return nil
		}
		action, ok := cfg.Actions[VerbDeleted]
		if !ok {
			return nil
		}

		metadata := h.trackedValues(entity, cfg.TrackedFields)
		metadata["automatic_logging"] = true
		metadata["operation_type"] = "delete"

		return h.emit(ctx, action, entity, evctx, metadata)
	})
}

func (h *Hooks) emit(ctx context.Context, action audit.Action, entity Auditable, evctx *EventContext, metadata map[string]any) error {
	if evctx == nil {
		evctx = &EventContext{}
	}
	for k, v := range evctx.Extra {
		metadata[k] = v
	}

	rec := audit.NewRecord(action, evctx.Actor, audit.Ref(entity), metadata)
	scope := audit.Resolve(entity, evctx.Workspace, evctx.ActorMembership)
	rec.WorkspaceID = scope.WorkspaceID
	rec.OrganizationID = scope.OrganizationID

	return h.dispatcher.Sync(ctx, rec)
}

// diff computes the stringified before/after pairs for tracked fields that
// actually changed. Sensitive fields never participate.
func (h *Hooks) diff(entity Auditable, snapshot map[string]any, tracked []string) []FieldChange {
	var changes []FieldChange
	for _, field := range tracked {
		if audit.IsSensitiveField(field, h.sensitive) {
			continue
		}

		oldRaw, hadOld := snapshot[field]
		newRaw, hasNew := entity.FieldValue(field)
		if !hadOld && !hasNew {
			continue
		}

		oldStr := audit.Stringify(oldRaw)
		newStr := audit.Stringify(newRaw)
		if !equalStr(oldStr, newStr) {
			changes = append(changes, FieldChange{Field: field, Old: oldStr, New: newStr})
		}
	}
	return changes
}

// trackedValues captures the current value of every tracked,
// non-sensitive field the entity actually has.
func (h *Hooks) trackedValues(entity Auditable, tracked []string) map[string]any {
	out := make(map[string]any, len(tracked)+4)
	for _, field := range tracked {
		if audit.IsSensitiveField(field, h.sensitive) {
			continue
		}
		if v, ok := entity.FieldValue(field); ok {
			out[field] = v
		}
	}
	return out
}

// classifyUpdate picks the action and operation-specific metadata for an
// update emission.
func classifyUpdate(cfg Config, changes []FieldChange) (audit.Action, map[string]any) {
	for _, c := range changes {
		if c.Field == "deleted_at" && c.Old == nil && c.New != nil {
			if action, ok := cfg.Actions[VerbDeleted]; ok {
				return action, map[string]any{
					"operation_type":     "delete",
					"soft_delete":        true,
					"deletion_timestamp": *c.New,
				}
			}
		}
	}

	for _, c := range changes {
		if c.Field == "status" {
			if action, ok := cfg.Actions[VerbStatusChanged]; ok {
				return action, map[string]any{
					"operation_type": "status_change",
					"old_status":     deref(c.Old),
					"new_status":     deref(c.New),
				}
			}
		}
	}

	action := cfg.Actions[VerbUpdated]
	return action, map[string]any{"operation_type": "update"}
}

func changesToMetadata(changes []FieldChange) []any {
	out := make([]any, len(changes))
	for i, c := range changes {
		m := map[string]any{"field": c.Field}
		if c.Old != nil {
			m["old_value"] = *c.Old
		} else {
			m["old_value"] = nil
		}
		if c.New != nil {
			m["new_value"] = *c.New
		} else {
			m["new_value"] = nil
		}
		out[i] = m
	}
	return out
}

func equalStr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func deref(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
