// Code generated by ent, DO NOT EDIT.

package auditrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the auditrecord type in the database.
	Label = "audit_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldActionType holds the string denoting the action_type field in the database.
	FieldActionType = "action_type"
	// FieldActorID holds the string denoting the actor_id field in the database.
	FieldActorID = "actor_id"
	// FieldActorEmail holds the string denoting the actor_email field in the database.
	FieldActorEmail = "actor_email"
	// FieldTargetEntityType holds the string denoting the target_entity_type field in the database.
	FieldTargetEntityType = "target_entity_type"
	// FieldTargetEntityID holds the string denoting the target_entity_id field in the database.
	FieldTargetEntityID = "target_entity_id"
	// FieldOrganizationID holds the string denoting the organization_id field in the database.
	FieldOrganizationID = "organization_id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// Table holds the table name of the auditrecord in the database.
	Table = "audit_records"
)

// Columns holds all SQL columns for auditrecord fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldActionType,
	FieldActorID,
	FieldActorEmail,
	FieldTargetEntityType,
	FieldTargetEntityID,
	FieldOrganizationID,
	FieldWorkspaceID,
	FieldMetadata,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// ActionTypeValidator is a validator for the "action_type" field. It is called by the builders before save.
	ActionTypeValidator func(string) error
)

// OrderOption defines the ordering options for the AuditRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByActionType orders the results by the action_type field.
func ByActionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActionType, opts...).ToFunc()
}

// ByActorID orders the results by the actor_id field.
func ByActorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActorID, opts...).ToFunc()
}

// ByActorEmail orders the results by the actor_email field.
func ByActorEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActorEmail, opts...).ToFunc()
}

// ByTargetEntityType orders the results by the target_entity_type field.
func ByTargetEntityType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetEntityType, opts...).ToFunc()
}

// ByTargetEntityID orders the results by the target_entity_id field.
func ByTargetEntityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetEntityID, opts...).ToFunc()
}

// ByOrganizationID orders the results by the organization_id field.
func ByOrganizationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrganizationID, opts...).ToFunc()
}

// ByWorkspaceID orders the results by the workspace_id field.
func ByWorkspaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceID, opts...).ToFunc()
}
