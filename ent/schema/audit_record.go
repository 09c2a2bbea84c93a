package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditRecord holds the schema definition for the AuditRecord entity.
// Append-only compliance records: no update path exists, rows are removed
// only by the retention engine.
type AuditRecord struct {
	ent.Schema
}

// Mixin of the AuditRecord.
func (AuditRecord) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AppendOnlyMixin{},
	}
}

// Fields of the AuditRecord.
func (AuditRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("action_type").
			NotEmpty().
			Immutable(), // e.g. "entry_approved", "workspace_archived"
		field.String("actor_id").
			Optional().
			Immutable(), // empty for system-initiated events
		field.String("actor_email").
			Optional().
			Immutable(),
		field.String("target_entity_type").
			Optional().
			Immutable(), // set together with target_entity_id or not at all
		field.String("target_entity_id").
			Optional().
			Immutable(),
		field.String("organization_id").
			Optional().
			Immutable(), // denormalized tenant scope from context resolution
		field.String("workspace_id").
			Optional().
			Immutable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
	}
}

// Indexes of the AuditRecord.
func (AuditRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("target_entity_type", "target_entity_id"),
		index.Fields("action_type"),
		index.Fields("actor_id"),
		index.Fields("created_at"),
		index.Fields("organization_id"),
		index.Fields("workspace_id"),
	}
}
