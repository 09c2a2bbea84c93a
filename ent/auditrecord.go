// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"ledgerline.io/audittrail/ent/auditrecord"
)

// AuditRecord is the model entity for the AuditRecord schema.
type AuditRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ActionType holds the value of the "action_type" field.
	ActionType string `json:"action_type,omitempty"`
	// ActorID holds the value of the "actor_id" field.
	ActorID string `json:"actor_id,omitempty"`
	// ActorEmail holds the value of the "actor_email" field.
	ActorEmail string `json:"actor_email,omitempty"`
	// TargetEntityType holds the value of the "target_entity_type" field.
	TargetEntityType string `json:"target_entity_type,omitempty"`
	// TargetEntityID holds the value of the "target_entity_id" field.
	TargetEntityID string `json:"target_entity_id,omitempty"`
	// OrganizationID holds the value of the "organization_id" field.
	OrganizationID string `json:"organization_id,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID string `json:"workspace_id,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AuditRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case auditrecord.FieldMetadata:
			values[i] = new([]byte)
		case auditrecord.FieldID, auditrecord.FieldActionType, auditrecord.FieldActorID, auditrecord.FieldActorEmail, auditrecord.FieldTargetEntityType, auditrecord.FieldTargetEntityID, auditrecord.FieldOrganizationID, auditrecord.FieldWorkspaceID:
			values[i] = new(sql.NullString)
		case auditrecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AuditRecord fields.
func (_m *AuditRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case auditrecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case auditrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case auditrecord.FieldActionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action_type", values[i])
			} else if value.Valid {
				_m.ActionType = value.String
			}
		case auditrecord.FieldActorID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actor_id", values[i])
			} else if value.Valid {
				_m.ActorID = value.String
			}
		case auditrecord.FieldActorEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actor_email", values[i])
			} else if value.Valid {
				_m.ActorEmail = value.String
			}
		case auditrecord.FieldTargetEntityType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_entity_type", values[i])
			} else if value.Valid {
				_m.TargetEntityType = value.String
			}
		case auditrecord.FieldTargetEntityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_entity_id", values[i])
			} else if value.Valid {
				_m.TargetEntityID = value.String
			}
		case auditrecord.FieldOrganizationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field organization_id", values[i])
			} else if value.Valid {
				_m.OrganizationID = value.String
			}
		case auditrecord.FieldWorkspaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value.Valid {
				_m.WorkspaceID = value.String
			}
		case auditrecord.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AuditRecord.
// This includes values selected through modifiers, order, etc.
func (_m *AuditRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AuditRecord.
// Note that you need to call AuditRecord.Unwrap() before calling this method if this AuditRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AuditRecord) Update() *AuditRecordUpdateOne {
	return NewAuditRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AuditRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AuditRecord) Unwrap() *AuditRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AuditRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AuditRecord) String() string {
	var builder strings.Builder
	builder.WriteString("AuditRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("action_type=")
	builder.WriteString(_m.ActionType)
	builder.WriteString(", ")
	builder.WriteString("actor_id=")
	builder.WriteString(_m.ActorID)
	builder.WriteString(", ")
	builder.WriteString("actor_email=")
	builder.WriteString(_m.ActorEmail)
	builder.WriteString(", ")
	builder.WriteString("target_entity_type=")
	builder.WriteString(_m.TargetEntityType)
	builder.WriteString(", ")
	builder.WriteString("target_entity_id=")
	builder.WriteString(_m.TargetEntityID)
	builder.WriteString(", ")
	builder.WriteString("organization_id=")
	builder.WriteString(_m.OrganizationID)
	builder.WriteString(", ")
	builder.WriteString("workspace_id=")
	builder.WriteString(_m.WorkspaceID)
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteByte(')')
	return builder.String()
}

// AuditRecords is a parsable slice of AuditRecord.
type AuditRecords []*AuditRecord
