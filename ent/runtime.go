// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"ledgerline.io/audittrail/ent/auditrecord"
	"ledgerline.io/audittrail/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditrecordMixin := schema.AuditRecord{}.Mixin()
	auditrecordMixinFields0 := auditrecordMixin[0].Fields()
	_ = auditrecordMixinFields0
	auditrecordFields := schema.AuditRecord{}.Fields()
	_ = auditrecordFields
	// auditrecordDescCreatedAt is the schema descriptor for created_at field.
	auditrecordDescCreatedAt := auditrecordMixinFields0[0].Descriptor()
	// auditrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditrecord.DefaultCreatedAt = auditrecordDescCreatedAt.Default.(func() time.Time)
	// auditrecordDescActionType is the schema descriptor for action_type field.
	auditrecordDescActionType := auditrecordFields[1].Descriptor()
	// auditrecord.ActionTypeValidator is a validator for the "action_type" field. It is called by the builders before save.
	auditrecord.ActionTypeValidator = auditrecordDescActionType.Validators[0].(func(string) error)
}
