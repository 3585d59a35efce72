// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docstream/docstream/gen/ent/usagerecord"
	"github.com/docstream/docstream/gen/ent/user"
	"github.com/google/uuid"
)

// UsageRecordCreate is the builder for creating a UsageRecord entity.
type UsageRecordCreate struct {
	config
	mutation *UsageRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *UsageRecordCreate) SetUserID(v uuid.UUID) *UsageRecordCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetMonth sets the "month" field.
func (_c *UsageRecordCreate) SetMonth(v string) *UsageRecordCreate {
	_c.mutation.SetMonth(v)
	return _c
}

// SetCount sets the "count" field.
func (_c *UsageRecordCreate) SetCount(v int) *UsageRecordCreate {
	_c.mutation.SetCount(v)
	return _c
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_c *UsageRecordCreate) SetNillableCount(v *int) *UsageRecordCreate {
	if v != nil {
		_c.SetCount(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UsageRecordCreate) SetUpdatedAt(v time.Time) *UsageRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UsageRecordCreate) SetNillableUpdatedAt(v *time.Time) *UsageRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UsageRecordCreate) SetID(v uuid.UUID) *UsageRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *UsageRecordCreate) SetNillableID(v *uuid.UUID) *UsageRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *UsageRecordCreate) SetUser(v *User) *UsageRecordCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the UsageRecordMutation object of the builder.
func (_c *UsageRecordCreate) Mutation() *UsageRecordMutation {
	return _c.mutation
}

// Save creates the UsageRecord in the database.
func (_c *UsageRecordCreate) Save(ctx context.Context) (*UsageRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UsageRecordCreate) SaveX(ctx context.Context) *UsageRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UsageRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UsageRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UsageRecordCreate) defaults() {
	if _, ok := _c.mutation.Count(); !ok {
		v := usagerecord.DefaultCount
		_c.mutation.SetCount(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := usagerecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := usagerecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UsageRecordCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UsageRecord.user_id"`)}
	}
	if _, ok := _c.mutation.Month(); !ok {
		return &ValidationError{Name: "month", err: errors.New(`ent: missing required field "UsageRecord.month"`)}
	}
	if v, ok := _c.mutation.Month(); ok {
		if err := usagerecord.MonthValidator(v); err != nil {
			return &ValidationError{Name: "month", err: fmt.Errorf(`ent: validator failed for field "UsageRecord.month": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Count(); !ok {
		return &ValidationError{Name: "count", err: errors.New(`ent: missing required field "UsageRecord.count"`)}
	}
	if v, ok := _c.mutation.Count(); ok {
		if err := usagerecord.CountValidator(v); err != nil {
			return &ValidationError{Name: "count", err: fmt.Errorf(`ent: validator failed for field "UsageRecord.count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "UsageRecord.updated_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "UsageRecord.user"`)}
	}
	return nil
}

func (_c *UsageRecordCreate) sqlSave(ctx context.Context) (*UsageRecord, error) {
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
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UsageRecordCreate) createSpec() (*UsageRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &UsageRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(usagerecord.Table, sqlgraph.NewFieldSpec(usagerecord.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Month(); ok {
		_spec.SetField(usagerecord.FieldMonth, field.TypeString, value)
		_node.Month = value
	}
	if value, ok := _c.mutation.Count(); ok {
		_spec.SetField(usagerecord.FieldCount, field.TypeInt, value)
		_node.Count = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(usagerecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   usagerecord.UserTable,
			Columns: []string{usagerecord.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UsageRecord.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UsageRecordUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *UsageRecordCreate) OnConflict(opts ...sql.ConflictOption) *UsageRecordUpsertOne {
	_c.conflict = opts
	return &UsageRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UsageRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UsageRecordCreate) OnConflictColumns(columns ...string) *UsageRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UsageRecordUpsertOne{
		create: _c,
	}
}

type (
	// UsageRecordUpsertOne is the builder for "upsert"-ing
	//  one UsageRecord node.
	UsageRecordUpsertOne struct {
		create *UsageRecordCreate
	}

	// UsageRecordUpsert is the "OnConflict" setter.
	UsageRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *UsageRecordUpsert) SetUserID(v uuid.UUID) *UsageRecordUpsert {
	u.Set(usagerecord.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UsageRecordUpsert) UpdateUserID() *UsageRecordUpsert {
	u.SetExcluded(usagerecord.FieldUserID)
	return u
}

// SetMonth sets the "month" field.
func (u *UsageRecordUpsert) SetMonth(v string) *UsageRecordUpsert {
	u.Set(usagerecord.FieldMonth, v)
	return u
}

// UpdateMonth sets the "month" field to the value that was provided on create.
func (u *UsageRecordUpsert) UpdateMonth() *UsageRecordUpsert {
	u.SetExcluded(usagerecord.FieldMonth)
	return u
}

// SetCount sets the "count" field.
func (u *UsageRecordUpsert) SetCount(v int) *UsageRecordUpsert {
	u.Set(usagerecord.FieldCount, v)
	return u
}

// UpdateCount sets the "count" field to the value that was provided on create.
func (u *UsageRecordUpsert) UpdateCount() *UsageRecordUpsert {
	u.SetExcluded(usagerecord.FieldCount)
	return u
}

// AddCount adds v to the "count" field.
func (u *UsageRecordUpsert) AddCount(v int) *UsageRecordUpsert {
	u.Add(usagerecord.FieldCount, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UsageRecordUpsert) SetUpdatedAt(v time.Time) *UsageRecordUpsert {
	u.Set(usagerecord.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UsageRecordUpsert) UpdateUpdatedAt() *UsageRecordUpsert {
	u.SetExcluded(usagerecord.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.UsageRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(usagerecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UsageRecordUpsertOne) UpdateNewValues() *UsageRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(usagerecord.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UsageRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UsageRecordUpsertOne) Ignore() *UsageRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UsageRecordUpsertOne) DoNothing() *UsageRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UsageRecordCreate.OnConflict
// documentation for more info.
func (u *UsageRecordUpsertOne) Update(set func(*UsageRecordUpsert)) *UsageRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UsageRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *UsageRecordUpsertOne) SetUserID(v uuid.UUID) *UsageRecordUpsertOne {
	return u.Update(func(s *UsageRecordUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UsageRecordUpsertOne) UpdateUserID() *UsageRecordUpsertOne {
	return u.Update(func(s *UsageRecordUpsert) {
		s.UpdateUserID()
	})
}

// SetMonth sets the "month" field.
func (u *UsageRecordUpsertOne) SetMonth(v string) *UsageRecordUpsertOne {
	return u.Update(func(s *UsageRecordUpsert) {
		s.SetMonth(v)
	})
}

// UpdateMonth sets the "month" field to the value that was provided on create.
func (u *UsageRecordUpsertOne) UpdateMonth() *UsageRecordUpsertOne {
	return u.Update(func(s *UsageRecordUpsert) {
		s.UpdateMonth()
	})
}

// SetCount sets the "count" field.
func (u *UsageRecordUpsertOne) SetCount(v int) *UsageRecordUpsertOne {
	return u.Update(func(s *UsageRecordUpsert) {
		s.SetCount(v)
	})
}

// AddCount adds v to the "count" field.
func (u *UsageRecordUpsertOne) AddCount(v int) *UsageRecordUpsertOne {
	return u.Update(func(s *UsageRecordUpsert) {
		s.AddCount(v)
	})
}

// UpdateCount sets the "count" field to the value that was provided on create.
func (u *UsageRecordUpsertOne) UpdateCount() *UsageRecordUpsertOne {
	return u.Update(func(s *UsageRecordUpsert) {
		s.UpdateCount()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UsageRecordUpsertOne) SetUpdatedAt(v time.Time) *UsageRecordUpsertOne {
	return u.Update(func(s *UsageRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UsageRecordUpsertOne) UpdateUpdatedAt() *UsageRecordUpsertOne {
	return u.Update(func(s *UsageRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *UsageRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UsageRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UsageRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UsageRecordUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: UsageRecordUpsertOne.ID is not supported by MySQL driver. Use UsageRecordUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UsageRecordUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UsageRecordCreateBulk is the builder for creating many UsageRecord entities in bulk.
type UsageRecordCreateBulk struct {
	config
	err      error
	builders []*UsageRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the UsageRecord entities in the database.
func (_c *UsageRecordCreateBulk) Save(ctx context.Context) ([]*UsageRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UsageRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UsageRecordMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *UsageRecordCreateBulk) SaveX(ctx context.Context) []*UsageRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UsageRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UsageRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UsageRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UsageRecordUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *UsageRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *UsageRecordUpsertBulk {
	_c.conflict = opts
	return &UsageRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UsageRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UsageRecordCreateBulk) OnConflictColumns(columns ...string) *UsageRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UsageRecordUpsertBulk{
		create: _c,
	}
}

// UsageRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of UsageRecord nodes.
type UsageRecordUpsertBulk struct {
	create *UsageRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.UsageRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(usagerecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UsageRecordUpsertBulk) UpdateNewValues() *UsageRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(usagerecord.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UsageRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UsageRecordUpsertBulk) Ignore() *UsageRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UsageRecordUpsertBulk) DoNothing() *UsageRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UsageRecordCreateBulk.OnConflict
// documentation for more info.
func (u *UsageRecordUpsertBulk) Update(set func(*UsageRecordUpsert)) *UsageRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UsageRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *UsageRecordUpsertBulk) SetUserID(v uuid.UUID) *UsageRecordUpsertBulk {
	return u.Update(func(s *UsageRecordUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UsageRecordUpsertBulk) UpdateUserID() *UsageRecordUpsertBulk {
	return u.Update(func(s *UsageRecordUpsert) {
		s.UpdateUserID()
	})
}

// SetMonth sets the "month" field.
func (u *UsageRecordUpsertBulk) SetMonth(v string) *UsageRecordUpsertBulk {
	return u.Update(func(s *UsageRecordUpsert) {
		s.SetMonth(v)
	})
}

// UpdateMonth sets the "month" field to the value that was provided on create.
func (u *UsageRecordUpsertBulk) UpdateMonth() *UsageRecordUpsertBulk {
	return u.Update(func(s *UsageRecordUpsert) {
		s.UpdateMonth()
	})
}

// SetCount sets the "count" field.
func (u *UsageRecordUpsertBulk) SetCount(v int) *UsageRecordUpsertBulk {
	return u.Update(func(s *UsageRecordUpsert) {
		s.SetCount(v)
	})
}

// AddCount adds v to the "count" field.
func (u *UsageRecordUpsertBulk) AddCount(v int) *UsageRecordUpsertBulk {
	return u.Update(func(s *UsageRecordUpsert) {
		s.AddCount(v)
	})
}

// UpdateCount sets the "count" field to the value that was provided on create.
func (u *UsageRecordUpsertBulk) UpdateCount() *UsageRecordUpsertBulk {
	return u.Update(func(s *UsageRecordUpsert) {
		s.UpdateCount()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UsageRecordUpsertBulk) SetUpdatedAt(v time.Time) *UsageRecordUpsertBulk {
	return u.Update(func(s *UsageRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UsageRecordUpsertBulk) UpdateUpdatedAt() *UsageRecordUpsertBulk {
	return u.Update(func(s *UsageRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *UsageRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the UsageRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UsageRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UsageRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
