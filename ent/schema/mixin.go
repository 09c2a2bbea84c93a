// Package schema contains Ent schema definitions for the audit trail service.
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/mixin"
)

// AppendOnlyMixin adds created_at (immutable, no updated_at) for append-only tables.
type AppendOnlyMixin struct {
	mixin.Schema
}

// Fields of the AppendOnlyMixin.
func (AppendOnlyMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
