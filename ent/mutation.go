// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"ledgerline.io/audittrail/ent/auditrecord"
	"ledgerline.io/audittrail/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAuditRecord = "AuditRecord"
)

// AuditRecordMutation represents an operation that mutates the AuditRecord nodes in the graph.
type AuditRecordMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	created_at         *time.Time
	action_type        *string
	actor_id           *string
	actor_email        *string
	target_entity_type *string
	target_entity_id   *string
	organization_id    *string
	workspace_id       *string
	metadata           *map[string]interface{}
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*AuditRecord, error)
	predicates         []predicate.AuditRecord
}

var _ ent.Mutation = (*AuditRecordMutation)(nil)

// auditrecordOption allows management of the mutation configuration using functional options.
type auditrecordOption func(*AuditRecordMutation)

// newAuditRecordMutation creates new mutation for the AuditRecord entity.
func newAuditRecordMutation(c config, op Op, opts ...auditrecordOption) *AuditRecordMutation {
	m := &AuditRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditRecordID sets the ID field of the mutation.
func withAuditRecordID(id string) auditrecordOption {
	return func(m *AuditRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditRecord
		)
		m.oldValue = func(ctx context.Context) (*AuditRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditRecord sets the old AuditRecord of the mutation.
func withAuditRecord(node *AuditRecord) auditrecordOption {
	return func(m *AuditRecordMutation) {
		m.oldValue = func(context.Context) (*AuditRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditRecord entities.
func (m *AuditRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetActionType sets the "action_type" field.
func (m *AuditRecordMutation) SetActionType(s string) {
	m.action_type = &s
}

// ActionType returns the value of the "action_type" field in the mutation.
func (m *AuditRecordMutation) ActionType() (r string, exists bool) {
	v := m.action_type
	if v == nil {
		return
	}
	return *v, true
}

// OldActionType returns the old "action_type" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldActionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionType: %w", err)
	}
	return oldValue.ActionType, nil
}

// ResetActionType resets all changes to the "action_type" field.
func (m *AuditRecordMutation) ResetActionType() {
	m.action_type = nil
}

// SetActorID sets the "actor_id" field.
func (m *AuditRecordMutation) SetActorID(s string) {
	m.actor_id = &s
}

// ActorID returns the value of the "actor_id" field in the mutation.
func (m *AuditRecordMutation) ActorID() (r string, exists bool) {
	v := m.actor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActorID returns the old "actor_id" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldActorID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorID: %w", err)
	}
	return oldValue.ActorID, nil
}

// ClearActorID clears the value of the "actor_id" field.
func (m *AuditRecordMutation) ClearActorID() {
	m.actor_id = nil
	m.clearedFields[auditrecord.FieldActorID] = struct{}{}
}

// ActorIDCleared returns if the "actor_id" field was cleared in this mutation.
func (m *AuditRecordMutation) ActorIDCleared() bool {
	_, ok := m.clearedFields[auditrecord.FieldActorID]
	return ok
}

// ResetActorID resets all changes to the "actor_id" field.
func (m *AuditRecordMutation) ResetActorID() {
	m.actor_id = nil
	delete(m.clearedFields, auditrecord.FieldActorID)
}

// SetActorEmail sets the "actor_email" field.
func (m *AuditRecordMutation) SetActorEmail(s string) {
	m.actor_email = &s
}

// ActorEmail returns the value of the "actor_email" field in the mutation.
func (m *AuditRecordMutation) ActorEmail() (r string, exists bool) {
	v := m.actor_email
	if v == nil {
		return
	}
	return *v, true
}

// OldActorEmail returns the old "actor_email" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldActorEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorEmail: %w", err)
	}
	return oldValue.ActorEmail, nil
}

// ClearActorEmail clears the value of the "actor_email" field.
func (m *AuditRecordMutation) ClearActorEmail() {
	m.actor_email = nil
	m.clearedFields[auditrecord.FieldActorEmail] = struct{}{}
}

// ActorEmailCleared returns if the "actor_email" field was cleared in this mutation.
func (m *AuditRecordMutation) ActorEmailCleared() bool {
	_, ok := m.clearedFields[auditrecord.FieldActorEmail]
	return ok
}

// ResetActorEmail resets all changes to the "actor_email" field.
func (m *AuditRecordMutation) ResetActorEmail() {
	m.actor_email = nil
	delete(m.clearedFields, auditrecord.FieldActorEmail)
}

// SetTargetEntityType sets the "target_entity_type" field.
func (m *AuditRecordMutation) SetTargetEntityType(s string) {
	m.target_entity_type = &s
}

// TargetEntityType returns the value of the "target_entity_type" field in the mutation.
func (m *AuditRecordMutation) TargetEntityType() (r string, exists bool) {
	v := m.target_entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetEntityType returns the old "target_entity_type" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldTargetEntityType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetEntityType: %w", err)
	}
	return oldValue.TargetEntityType, nil
}

// ClearTargetEntityType clears the value of the "target_entity_type" field.
func (m *AuditRecordMutation) ClearTargetEntityType() {
	m.target_entity_type = nil
	m.clearedFields[auditrecord.FieldTargetEntityType] = struct{}{}
}

// TargetEntityTypeCleared returns if the "target_entity_type" field was cleared in this mutation.
func (m *AuditRecordMutation) TargetEntityTypeCleared() bool {
	_, ok := m.clearedFields[auditrecord.FieldTargetEntityType]
	return ok
}

// ResetTargetEntityType resets all changes to the "target_entity_type" field.
func (m *AuditRecordMutation) ResetTargetEntityType() {
	m.target_entity_type = nil
	delete(m.clearedFields, auditrecord.FieldTargetEntityType)
}

// SetTargetEntityID sets the "target_entity_id" field.
func (m *AuditRecordMutation) SetTargetEntityID(s string) {
	m.target_entity_id = &s
}

// TargetEntityID returns the value of the "target_entity_id" field in the mutation.
func (m *AuditRecordMutation) TargetEntityID() (r string, exists bool) {
	v := m.target_entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetEntityID returns the old "target_entity_id" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldTargetEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetEntityID: %w", err)
	}
	return oldValue.TargetEntityID, nil
}

// ClearTargetEntityID clears the value of the "target_entity_id" field.
func (m *AuditRecordMutation) ClearTargetEntityID() {
	m.target_entity_id = nil
	m.clearedFields[auditrecord.FieldTargetEntityID] = struct{}{}
}

// TargetEntityIDCleared returns if the "target_entity_id" field was cleared in this mutation.
func (m *AuditRecordMutation) TargetEntityIDCleared() bool {
	_, ok := m.clearedFields[auditrecord.FieldTargetEntityID]
	return ok
}

// ResetTargetEntityID resets all changes to the "target_entity_id" field.
func (m *AuditRecordMutation) ResetTargetEntityID() {
	m.target_entity_id = nil
	delete(m.clearedFields, auditrecord.FieldTargetEntityID)
}

// SetOrganizationID sets the "organization_id" field.
func (m *AuditRecordMutation) SetOrganizationID(s string) {
	m.organization_id = &s
}

// OrganizationID returns the value of the "organization_id" field in the mutation.
func (m *AuditRecordMutation) OrganizationID() (r string, exists bool) {
	v := m.organization_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrganizationID returns the old "organization_id" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldOrganizationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrganizationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrganizationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrganizationID: %w", err)
	}
	return oldValue.OrganizationID, nil
}

// ClearOrganizationID clears the value of the "organization_id" field.
func (m *AuditRecordMutation) ClearOrganizationID() {
	m.organization_id = nil
	m.clearedFields[auditrecord.FieldOrganizationID] = struct{}{}
}

// OrganizationIDCleared returns if the "organization_id" field was cleared in this mutation.
func (m *AuditRecordMutation) OrganizationIDCleared() bool {
	_, ok := m.clearedFields[auditrecord.FieldOrganizationID]
	return ok
}

// ResetOrganizationID resets all changes to the "organization_id" field.
func (m *AuditRecordMutation) ResetOrganizationID() {
	m.organization_id = nil
	delete(m.clearedFields, auditrecord.FieldOrganizationID)
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *AuditRecordMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *AuditRecordMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ClearWorkspaceID clears the value of the "workspace_id" field.
func (m *AuditRecordMutation) ClearWorkspaceID() {
	m.workspace_id = nil
	m.clearedFields[auditrecord.FieldWorkspaceID] = struct{}{}
}

// WorkspaceIDCleared returns if the "workspace_id" field was cleared in this mutation.
func (m *AuditRecordMutation) WorkspaceIDCleared() bool {
	_, ok := m.clearedFields[auditrecord.FieldWorkspaceID]
	return ok
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *AuditRecordMutation) ResetWorkspaceID() {
	m.workspace_id = nil
	delete(m.clearedFields, auditrecord.FieldWorkspaceID)
}

// SetMetadata sets the "metadata" field.
func (m *AuditRecordMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *AuditRecordMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the AuditRecord entity.
// If the AuditRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditRecordMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *AuditRecordMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[auditrecord.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *AuditRecordMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[auditrecord.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *AuditRecordMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, auditrecord.FieldMetadata)
}

// Where appends a list predicates to the AuditRecordMutation builder.
func (m *AuditRecordMutation) Where(ps ...predicate.AuditRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditRecord).
func (m *AuditRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditRecordMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, auditrecord.FieldCreatedAt)
	}
	if m.action_type != nil {
		fields = append(fields, auditrecord.FieldActionType)
	}
	if m.actor_id != nil {
		fields = append(fields, auditrecord.FieldActorID)
	}
	if m.actor_email != nil {
		fields = append(fields, auditrecord.FieldActorEmail)
	}
	if m.target_entity_type != nil {
		fields = append(fields, auditrecord.FieldTargetEntityType)
	}
	if m.target_entity_id != nil {
		fields = append(fields, auditrecord.FieldTargetEntityID)
	}
	if m.organization_id != nil {
		fields = append(fields, auditrecord.FieldOrganizationID)
	}
	if m.workspace_id != nil {
		fields = append(fields, auditrecord.FieldWorkspaceID)
	}
	if m.metadata != nil {
		fields = append(fields, auditrecord.FieldMetadata)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditrecord.FieldCreatedAt:
		return m.CreatedAt()
	case auditrecord.FieldActionType:
		return m.ActionType()
	case auditrecord.FieldActorID:
		return m.ActorID()
	case auditrecord.FieldActorEmail:
		return m.ActorEmail()
	case auditrecord.FieldTargetEntityType:
		return m.TargetEntityType()
	case auditrecord.FieldTargetEntityID:
		return m.TargetEntityID()
	case auditrecord.FieldOrganizationID:
		return m.OrganizationID()
	case auditrecord.FieldWorkspaceID:
		return m.WorkspaceID()
	case auditrecord.FieldMetadata:
		return m.Metadata()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case auditrecord.FieldActionType:
		return m.OldActionType(ctx)
	case auditrecord.FieldActorID:
		return m.OldActorID(ctx)
	case auditrecord.FieldActorEmail:
		return m.OldActorEmail(ctx)
	case auditrecord.FieldTargetEntityType:
		return m.OldTargetEntityType(ctx)
	case auditrecord.FieldTargetEntityID:
		return m.OldTargetEntityID(ctx)
	case auditrecord.FieldOrganizationID:
		return m.OldOrganizationID(ctx)
	case auditrecord.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case auditrecord.FieldMetadata:
		return m.OldMetadata(ctx)
	}
	return nil, fmt.Errorf("unknown AuditRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case auditrecord.FieldActionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionType(v)
		return nil
	case auditrecord.FieldActorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorID(v)
		return nil
	case auditrecord.FieldActorEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorEmail(v)
		return nil
	case auditrecord.FieldTargetEntityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetEntityType(v)
		return nil
	case auditrecord.FieldTargetEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetEntityID(v)
		return nil
	case auditrecord.FieldOrganizationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrganizationID(v)
		return nil
	case auditrecord.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case auditrecord.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	}
	return fmt.Errorf("unknown AuditRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditrecord.FieldActorID) {
		fields = append(fields, auditrecord.FieldActorID)
	}
	if m.FieldCleared(auditrecord.FieldActorEmail) {
		fields = append(fields, auditrecord.FieldActorEmail)
	}
	if m.FieldCleared(auditrecord.FieldTargetEntityType) {
		fields = append(fields, auditrecord.FieldTargetEntityType)
	}
	if m.FieldCleared(auditrecord.FieldTargetEntityID) {
		fields = append(fields, auditrecord.FieldTargetEntityID)
	}
	if m.FieldCleared(auditrecord.FieldOrganizationID) {
		fields = append(fields, auditrecord.FieldOrganizationID)
	}
	if m.FieldCleared(auditrecord.FieldWorkspaceID) {
		fields = append(fields, auditrecord.FieldWorkspaceID)
	}
	if m.FieldCleared(auditrecord.FieldMetadata) {
		fields = append(fields, auditrecord.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditRecordMutation) ClearField(name string) error {
	switch name {
	case auditrecord.FieldActorID:
		m.ClearActorID()
		return nil
	case auditrecord.FieldActorEmail:
		m.ClearActorEmail()
		return nil
	case auditrecord.FieldTargetEntityType:
		m.ClearTargetEntityType()
		return nil
	case auditrecord.FieldTargetEntityID:
		m.ClearTargetEntityID()
		return nil
	case auditrecord.FieldOrganizationID:
		m.ClearOrganizationID()
		return nil
	case auditrecord.FieldWorkspaceID:
		m.ClearWorkspaceID()
		return nil
	case auditrecord.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown AuditRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditRecordMutation) ResetField(name string) error {
	switch name {
	case auditrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case auditrecord.FieldActionType:
		m.ResetActionType()
		return nil
	case auditrecord.FieldActorID:
		m.ResetActorID()
		return nil
	case auditrecord.FieldActorEmail:
		m.ResetActorEmail()
		return nil
	case auditrecord.FieldTargetEntityType:
		m.ResetTargetEntityType()
		return nil
	case auditrecord.FieldTargetEntityID:
		m.ResetTargetEntityID()
		return nil
	case auditrecord.FieldOrganizationID:
		m.ResetOrganizationID()
		return nil
	case auditrecord.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case auditrecord.FieldMetadata:
		m.ResetMetadata()
		return nil
	}
	return fmt.Errorf("unknown AuditRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditRecord edge %s", name)
}
