// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docstream/docstream/gen/ent/document"
	"github.com/docstream/docstream/gen/ent/user"
	"github.com/docstream/docstream/internal/entity"
	"github.com/google/uuid"
)

// DocumentCreate is the builder for creating a Document entity.
type DocumentCreate struct {
	config
	mutation *DocumentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *DocumentCreate) SetUserID(v uuid.UUID) *DocumentCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *DocumentCreate) SetContentHash(v []byte) *DocumentCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *DocumentCreate) SetFilename(v string) *DocumentCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetStoredExt sets the "stored_ext" field.
func (_c *DocumentCreate) SetStoredExt(v string) *DocumentCreate {
	_c.mutation.SetStoredExt(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *DocumentCreate) SetPayload(v entity.ExtractionPayload) *DocumentCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetRawExtraction sets the "raw_extraction" field.
func (_c *DocumentCreate) SetRawExtraction(v json.RawMessage) *DocumentCreate {
	_c.mutation.SetRawExtraction(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *DocumentCreate) SetConfidence(v float32) *DocumentCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableConfidence(v *float32) *DocumentCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetAnomalies sets the "anomalies" field.
func (_c *DocumentCreate) SetAnomalies(v []string) *DocumentCreate {
	_c.mutation.SetAnomalies(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DocumentCreate) SetCreatedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableCreatedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DocumentCreate) SetUpdatedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableUpdatedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DocumentCreate) SetID(v uuid.UUID) *DocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableID(v *uuid.UUID) *DocumentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *DocumentCreate) SetUser(v *User) *DocumentCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the DocumentMutation object of the builder.
func (_c *DocumentCreate) Mutation() *DocumentMutation {
	return _c.mutation
}

// Save creates the Document in the database.
func (_c *DocumentCreate) Save(ctx context.Context) (*Document, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentCreate) SaveX(ctx context.Context) *Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := document.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := document.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := document.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Document.user_id"`)}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "Document.content_hash"`)}
	}
	if v, ok := _c.mutation.ContentHash(); ok {
		if err := document.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Document.content_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "Document.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := document.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Document.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StoredExt(); !ok {
		return &ValidationError{Name: "stored_ext", err: errors.New(`ent: missing required field "Document.stored_ext"`)}
	}
	if v, ok := _c.mutation.StoredExt(); ok {
		if err := document.StoredExtValidator(v); err != nil {
			return &ValidationError{Name: "stored_ext", err: fmt.Errorf(`ent: validator failed for field "Document.stored_ext": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "Document.payload"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Document.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Document.updated_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "Document.user"`)}
	}
	return nil
}

func (_c *DocumentCreate) sqlSave(ctx context.Context) (*Document, error) {
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

func (_c *DocumentCreate) createSpec() (*Document, *sqlgraph.CreateSpec) {
	var (
		_node = &Document{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(document.Table, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(document.FieldContentHash, field.TypeBytes, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.StoredExt(); ok {
		_spec.SetField(document.FieldStoredExt, field.TypeString, value)
		_node.StoredExt = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(document.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.RawExtraction(); ok {
		_spec.SetField(document.FieldRawExtraction, field.TypeJSON, value)
		_node.RawExtraction = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(document.FieldConfidence, field.TypeFloat32, value)
		_node.Confidence = &value
	}
	if value, ok := _c.mutation.Anomalies(); ok {
		_spec.SetField(document.FieldAnomalies, field.TypeJSON, value)
		_node.Anomalies = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.UserTable,
			Columns: []string{document.UserColumn},
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
//	client.Document.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DocumentUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *DocumentCreate) OnConflict(opts ...sql.ConflictOption) *DocumentUpsertOne {
	_c.conflict = opts
	return &DocumentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DocumentCreate) OnConflictColumns(columns ...string) *DocumentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DocumentUpsertOne{
		create: _c,
	}
}

type (
	// DocumentUpsertOne is the builder for "upsert"-ing
	//  one Document node.
	DocumentUpsertOne struct {
		create *DocumentCreate
	}

	// DocumentUpsert is the "OnConflict" setter.
	DocumentUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *DocumentUpsert) SetUserID(v uuid.UUID) *DocumentUpsert {
	u.Set(document.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateUserID() *DocumentUpsert {
	u.SetExcluded(document.FieldUserID)
	return u
}

// SetContentHash sets the "content_hash" field.
func (u *DocumentUpsert) SetContentHash(v []byte) *DocumentUpsert {
	u.Set(document.FieldContentHash, v)
	return u
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateContentHash() *DocumentUpsert {
	u.SetExcluded(document.FieldContentHash)
	return u
}

// SetFilename sets the "filename" field.
func (u *DocumentUpsert) SetFilename(v string) *DocumentUpsert {
	u.Set(document.FieldFilename, v)
	return u
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateFilename() *DocumentUpsert {
	u.SetExcluded(document.FieldFilename)
	return u
}

// SetStoredExt sets the "stored_ext" field.
func (u *DocumentUpsert) SetStoredExt(v string) *DocumentUpsert {
	u.Set(document.FieldStoredExt, v)
	return u
}

// UpdateStoredExt sets the "stored_ext" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateStoredExt() *DocumentUpsert {
	u.SetExcluded(document.FieldStoredExt)
	return u
}

// SetPayload sets the "payload" field.
func (u *DocumentUpsert) SetPayload(v entity.ExtractionPayload) *DocumentUpsert {
	u.Set(document.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *DocumentUpsert) UpdatePayload() *DocumentUpsert {
	u.SetExcluded(document.FieldPayload)
	return u
}

// SetRawExtraction sets the "raw_extraction" field.
func (u *DocumentUpsert) SetRawExtraction(v json.RawMessage) *DocumentUpsert {
	u.Set(document.FieldRawExtraction, v)
	return u
}

// UpdateRawExtraction sets the "raw_extraction" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateRawExtraction() *DocumentUpsert {
	u.SetExcluded(document.FieldRawExtraction)
	return u
}

// ClearRawExtraction clears the value of the "raw_extraction" field.
func (u *DocumentUpsert) ClearRawExtraction() *DocumentUpsert {
	u.SetNull(document.FieldRawExtraction)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *DocumentUpsert) SetConfidence(v float32) *DocumentUpsert {
	u.Set(document.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateConfidence() *DocumentUpsert {
	u.SetExcluded(document.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *DocumentUpsert) AddConfidence(v float32) *DocumentUpsert {
	u.Add(document.FieldConfidence, v)
	return u
}

// ClearConfidence clears the value of the "confidence" field.
func (u *DocumentUpsert) ClearConfidence() *DocumentUpsert {
	u.SetNull(document.FieldConfidence)
	return u
}

// SetAnomalies sets the "anomalies" field.
func (u *DocumentUpsert) SetAnomalies(v []string) *DocumentUpsert {
	u.Set(document.FieldAnomalies, v)
	return u
}

// UpdateAnomalies sets the "anomalies" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateAnomalies() *DocumentUpsert {
	u.SetExcluded(document.FieldAnomalies)
	return u
}

// ClearAnomalies clears the value of the "anomalies" field.
func (u *DocumentUpsert) ClearAnomalies() *DocumentUpsert {
	u.SetNull(document.FieldAnomalies)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *DocumentUpsert) SetCreatedAt(v time.Time) *DocumentUpsert {
	u.Set(document.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateCreatedAt() *DocumentUpsert {
	u.SetExcluded(document.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DocumentUpsert) SetUpdatedAt(v time.Time) *DocumentUpsert {
	u.Set(document.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateUpdatedAt() *DocumentUpsert {
	u.SetExcluded(document.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(document.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DocumentUpsertOne) UpdateNewValues() *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(document.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Document.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DocumentUpsertOne) Ignore() *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DocumentUpsertOne) DoNothing() *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DocumentCreate.OnConflict
// documentation for more info.
func (u *DocumentUpsertOne) Update(set func(*DocumentUpsert)) *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DocumentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *DocumentUpsertOne) SetUserID(v uuid.UUID) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateUserID() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateUserID()
	})
}

// SetContentHash sets the "content_hash" field.
func (u *DocumentUpsertOne) SetContentHash(v []byte) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetContentHash(v)
	})
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateContentHash() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateContentHash()
	})
}

// SetFilename sets the "filename" field.
func (u *DocumentUpsertOne) SetFilename(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetFilename(v)
	})
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateFilename() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateFilename()
	})
}

// SetStoredExt sets the "stored_ext" field.
func (u *DocumentUpsertOne) SetStoredExt(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetStoredExt(v)
	})
}

// UpdateStoredExt sets the "stored_ext" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateStoredExt() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateStoredExt()
	})
}

// SetPayload sets the "payload" field.
func (u *DocumentUpsertOne) SetPayload(v entity.ExtractionPayload) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdatePayload() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdatePayload()
	})
}

// SetRawExtraction sets the "raw_extraction" field.
func (u *DocumentUpsertOne) SetRawExtraction(v json.RawMessage) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetRawExtraction(v)
	})
}

// UpdateRawExtraction sets the "raw_extraction" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateRawExtraction() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateRawExtraction()
	})
}

// ClearRawExtraction clears the value of the "raw_extraction" field.
func (u *DocumentUpsertOne) ClearRawExtraction() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearRawExtraction()
	})
}

// SetConfidence sets the "confidence" field.
func (u *DocumentUpsertOne) SetConfidence(v float32) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *DocumentUpsertOne) AddConfidence(v float32) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateConfidence() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateConfidence()
	})
}

// ClearConfidence clears the value of the "confidence" field.
func (u *DocumentUpsertOne) ClearConfidence() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearConfidence()
	})
}

// SetAnomalies sets the "anomalies" field.
func (u *DocumentUpsertOne) SetAnomalies(v []string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetAnomalies(v)
	})
}

// UpdateAnomalies sets the "anomalies" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateAnomalies() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateAnomalies()
	})
}

// ClearAnomalies clears the value of the "anomalies" field.
func (u *DocumentUpsertOne) ClearAnomalies() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearAnomalies()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *DocumentUpsertOne) SetCreatedAt(v time.Time) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateCreatedAt() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DocumentUpsertOne) SetUpdatedAt(v time.Time) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateUpdatedAt() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *DocumentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DocumentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DocumentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DocumentUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: DocumentUpsertOne.ID is not supported by MySQL driver. Use DocumentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DocumentUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DocumentCreateBulk is the builder for creating many Document entities in bulk.
type DocumentCreateBulk struct {
	config
	err      error
	builders []*DocumentCreate
	conflict []sql.ConflictOption
}

// Save creates the Document entities in the database.
func (_c *DocumentCreateBulk) Save(ctx context.Context) ([]*Document, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Document, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentMutation)
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
func (_c *DocumentCreateBulk) SaveX(ctx context.Context) []*Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Document.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DocumentUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *DocumentCreateBulk) OnConflict(opts ...sql.ConflictOption) *DocumentUpsertBulk {
	_c.conflict = opts
	return &DocumentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DocumentCreateBulk) OnConflictColumns(columns ...string) *DocumentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DocumentUpsertBulk{
		create: _c,
	}
}

// DocumentUpsertBulk is the builder for "upsert"-ing
// a bulk of Document nodes.
type DocumentUpsertBulk struct {
	create *DocumentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(document.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DocumentUpsertBulk) UpdateNewValues() *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(document.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DocumentUpsertBulk) Ignore() *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DocumentUpsertBulk) DoNothing() *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DocumentCreateBulk.OnConflict
// documentation for more info.
func (u *DocumentUpsertBulk) Update(set func(*DocumentUpsert)) *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DocumentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *DocumentUpsertBulk) SetUserID(v uuid.UUID) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateUserID() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateUserID()
	})
}

// SetContentHash sets the "content_hash" field.
func (u *DocumentUpsertBulk) SetContentHash(v []byte) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetContentHash(v)
	})
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateContentHash() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateContentHash()
	})
}

// SetFilename sets the "filename" field.
func (u *DocumentUpsertBulk) SetFilename(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetFilename(v)
	})
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateFilename() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateFilename()
	})
}

// SetStoredExt sets the "stored_ext" field.
func (u *DocumentUpsertBulk) SetStoredExt(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetStoredExt(v)
	})
}

// UpdateStoredExt sets the "stored_ext" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateStoredExt() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateStoredExt()
	})
}

// SetPayload sets the "payload" field.
func (u *DocumentUpsertBulk) SetPayload(v entity.ExtractionPayload) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdatePayload() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdatePayload()
	})
}

// SetRawExtraction sets the "raw_extraction" field.
func (u *DocumentUpsertBulk) SetRawExtraction(v json.RawMessage) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetRawExtraction(v)
	})
}

// UpdateRawExtraction sets the "raw_extraction" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateRawExtraction() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateRawExtraction()
	})
}

// ClearRawExtraction clears the value of the "raw_extraction" field.
func (u *DocumentUpsertBulk) ClearRawExtraction() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearRawExtraction()
	})
}

// SetConfidence sets the "confidence" field.
func (u *DocumentUpsertBulk) SetConfidence(v float32) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *DocumentUpsertBulk) AddConfidence(v float32) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateConfidence() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateConfidence()
	})
}

// ClearConfidence clears the value of the "confidence" field.
func (u *DocumentUpsertBulk) ClearConfidence() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearConfidence()
	})
}

// SetAnomalies sets the "anomalies" field.
func (u *DocumentUpsertBulk) SetAnomalies(v []string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetAnomalies(v)
	})
}

// UpdateAnomalies sets the "anomalies" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateAnomalies() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateAnomalies()
	})
}

// ClearAnomalies clears the value of the "anomalies" field.
func (u *DocumentUpsertBulk) ClearAnomalies() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearAnomalies()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *DocumentUpsertBulk) SetCreatedAt(v time.Time) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateCreatedAt() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DocumentUpsertBulk) SetUpdatedAt(v time.Time) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateUpdatedAt() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *DocumentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DocumentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DocumentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DocumentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
