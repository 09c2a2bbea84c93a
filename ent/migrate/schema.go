// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditRecordsColumns holds the columns for the "audit_records" table.
	AuditRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "action_type", Type: field.TypeString},
		{Name: "actor_id", Type: field.TypeString, Nullable: true},
		{Name: "actor_email", Type: field.TypeString, Nullable: true},
		{Name: "target_entity_type", Type: field.TypeString, Nullable: true},
		{Name: "target_entity_id", Type: field.TypeString, Nullable: true},
		{Name: "organization_id", Type: field.TypeString, Nullable: true},
		{Name: "workspace_id", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
	}
	// AuditRecordsTable holds the schema information for the "audit_records" table.
	AuditRecordsTable = &schema.Table{
		Name:       "audit_records",
		Columns:    AuditRecordsColumns,
		PrimaryKey: []*schema.Column{AuditRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditrecord_target_entity_type_target_entity_id",
				Unique:  false,
				Columns: []*schema.Column{AuditRecordsColumns[5], AuditRecordsColumns[6]},
			},
			{
				Name:    "auditrecord_action_type",
				Unique:  false,
				Columns: []*schema.Column{AuditRecordsColumns[2]},
			},
			{
				Name:    "auditrecord_actor_id",
				Unique:  false,
				Columns: []*schema.Column{AuditRecordsColumns[3]},
			},
			{
				Name:    "auditrecord_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditRecordsColumns[1]},
			},
			{
				Name:    "auditrecord_organization_id",
				Unique:  false,
				Columns: []*schema.Column{AuditRecordsColumns[7]},
			},
			{
				Name:    "auditrecord_workspace_id",
				Unique:  false,
				Columns: []*schema.Column{AuditRecordsColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditRecordsTable,
	}
)

func init() {
}
