// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"ledgerline.io/audittrail/ent/auditrecord"
)

// AuditRecordCreate is the builder for creating a AuditRecord entity.
type AuditRecordCreate struct {
	config
	mutation *AuditRecordMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *AuditRecordCreate) SetCreatedAt(v time.Time) *AuditRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AuditRecordCreate) SetNillableCreatedAt(v *time.Time) *AuditRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetActionType sets the "action_type" field.
func (_c *AuditRecordCreate) SetActionType(v string) *AuditRecordCreate {
	_c.mutation.SetActionType(v)
	return _c
}

// SetActorID sets the "actor_id" field.
func (_c *AuditRecordCreate) SetActorID(v string) *AuditRecordCreate {
	_c.mutation.SetActorID(v)
	return _c
}

// SetNillableActorID sets the "actor_id" field if the given value is not nil.
func (_c *AuditRecordCreate) SetNillableActorID(v *string) *AuditRecordCreate {
	if v != nil {
		_c.SetActorID(*v)
	}
	return _c
}

// SetActorEmail sets the "actor_email" field.
func (_c *AuditRecordCreate) SetActorEmail(v string) *AuditRecordCreate {
	_c.mutation.SetActorEmail(v)
	return _c
}

// SetNillableActorEmail sets the "actor_email" field if the given value is not nil.
func (_c *AuditRecordCreate) SetNillableActorEmail(v *string) *AuditRecordCreate {
	if v != nil {
		_c.SetActorEmail(*v)
	}
	return _c
}

// SetTargetEntityType sets the "target_entity_type" field.
func (_c *AuditRecordCreate) SetTargetEntityType(v string) *AuditRecordCreate {
	_c.mutation.SetTargetEntityType(v)
	return _c
}

// SetNillableTargetEntityType sets the "target_entity_type" field if the given value is not nil.
func (_c *AuditRecordCreate) SetNillableTargetEntityType(v *string) *AuditRecordCreate {
	if v != nil {
		_c.SetTargetEntityType(*v)
	}
	return _c
}

// SetTargetEntityID sets the "target_entity_id" field.
func (_c *AuditRecordCreate) SetTargetEntityID(v string) *AuditRecordCreate {
	_c.mutation.SetTargetEntityID(v)
	return _c
}

// SetNillableTargetEntityID sets the "target_entity_id" field if the given value is not nil.
func (_c *AuditRecordCreate) SetNillableTargetEntityID(v *string) *AuditRecordCreate {
	if v != nil {
		_c.SetTargetEntityID(*v)
	}
	return _c
}

// SetOrganizationID sets the "organization_id" field.
func (_c *AuditRecordCreate) SetOrganizationID(v string) *AuditRecordCreate {
	_c.mutation.SetOrganizationID(v)
	return _c
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_c *AuditRecordCreate) SetNillableOrganizationID(v *string) *AuditRecordCreate {
	if v != nil {
		_c.SetOrganizationID(*v)
	}
	return _c
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *AuditRecordCreate) SetWorkspaceID(v string) *AuditRecordCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_c *AuditRecordCreate) SetNillableWorkspaceID(v *string) *AuditRecordCreate {
	if v != nil {
		_c.SetWorkspaceID(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *AuditRecordCreate) SetMetadata(v map[string]interface{}) *AuditRecordCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetID sets the "id" field.
func (_c *AuditRecordCreate) SetID(v string) *AuditRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AuditRecordMutation object of the builder.
func (_c *AuditRecordCreate) Mutation() *AuditRecordMutation {
	return _c.mutation
}

// Save creates the AuditRecord in the database.
func (_c *AuditRecordCreate) Save(ctx context.Context) (*AuditRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AuditRecordCreate) SaveX(ctx context.Context) *AuditRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AuditRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := auditrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AuditRecordCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AuditRecord.created_at"`)}
	}
	if _, ok := _c.mutation.ActionType(); !ok {
		return &ValidationError{Name: "action_type", err: errors.New(`ent: missing required field "AuditRecord.action_type"`)}
	}
	if v, ok := _c.mutation.ActionType(); ok {
		if err := auditrecord.ActionTypeValidator(v); err != nil {
			return &ValidationError{Name: "action_type", err: fmt.Errorf(`ent: validator failed for field "AuditRecord.action_type": %w`, err)}
		}
	}
	return nil
}

func (_c *AuditRecordCreate) sqlSave(ctx context.Context) (*AuditRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected AuditRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AuditRecordCreate) createSpec() (*AuditRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &AuditRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(auditrecord.Table, sqlgraph.NewFieldSpec(auditrecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(auditrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ActionType(); ok {
		_spec.SetField(auditrecord.FieldActionType, field.TypeString, value)
		_node.ActionType = value
	}
	if value, ok := _c.mutation.ActorID(); ok {
		_spec.SetField(auditrecord.FieldActorID, field.TypeString, value)
		_node.ActorID = value
	}
	if value, ok := _c.mutation.ActorEmail(); ok {
		_spec.SetField(auditrecord.FieldActorEmail, field.TypeString, value)
		_node.ActorEmail = value
	}
	if value, ok := _c.mutation.TargetEntityType(); ok {
		_spec.SetField(auditrecord.FieldTargetEntityType, field.TypeString, value)
		_node.TargetEntityType = value
	}
	if value, ok := _c.mutation.TargetEntityID(); ok {
		_spec.SetField(auditrecord.FieldTargetEntityID, field.TypeString, value)
		_node.TargetEntityID = value
	}
	if value, ok := _c.mutation.OrganizationID(); ok {
		_spec.SetField(auditrecord.FieldOrganizationID, field.TypeString, value)
		_node.OrganizationID = value
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(auditrecord.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(auditrecord.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	return _node, _spec
}

// AuditRecordCreateBulk is the builder for creating many AuditRecord entities in bulk.
type AuditRecordCreateBulk struct {
	config
	err      error
	builders []*AuditRecordCreate
}

// Save creates the AuditRecord entities in the database.
func (_c *AuditRecordCreateBulk) Save(ctx context.Context) ([]*AuditRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AuditRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AuditRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AuditRecordCreateBulk) SaveX(ctx context.Context) []*AuditRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
