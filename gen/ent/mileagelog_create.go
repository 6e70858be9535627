// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/oghenetejiriorukpegmail/expense-tracker/gen/ent/mileagelog"
)

// MileageLogCreate is the builder for creating a MileageLog entity.
type MileageLogCreate struct {
	config
	mutation *MileageLogMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *MileageLogCreate) SetUserID(v uuid.UUID) *MileageLogCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTripID sets the "trip_id" field.
func (_c *MileageLogCreate) SetTripID(v uuid.UUID) *MileageLogCreate {
	_c.mutation.SetTripID(v)
	return _c
}

// SetNillableTripID sets the "trip_id" field if the given value is not nil.
func (_c *MileageLogCreate) SetNillableTripID(v *uuid.UUID) *MileageLogCreate {
	if v != nil {
		_c.SetTripID(*v)
	}
	return _c
}

// SetLogDate sets the "log_date" field.
func (_c *MileageLogCreate) SetLogDate(v string) *MileageLogCreate {
	_c.mutation.SetLogDate(v)
	return _c
}

// SetNillableLogDate sets the "log_date" field if the given value is not nil.
func (_c *MileageLogCreate) SetNillableLogDate(v *string) *MileageLogCreate {
	if v != nil {
		_c.SetLogDate(*v)
	}
	return _c
}

// SetStartOdometer sets the "start_odometer" field.
func (_c *MileageLogCreate) SetStartOdometer(v string) *MileageLogCreate {
	_c.mutation.SetStartOdometer(v)
	return _c
}

// SetNillableStartOdometer sets the "start_odometer" field if the given value is not nil.
func (_c *MileageLogCreate) SetNillableStartOdometer(v *string) *MileageLogCreate {
	if v != nil {
		_c.SetStartOdometer(*v)
	}
	return _c
}

// SetEndOdometer sets the "end_odometer" field.
func (_c *MileageLogCreate) SetEndOdometer(v string) *MileageLogCreate {
	_c.mutation.SetEndOdometer(v)
	return _c
}

// SetNillableEndOdometer sets the "end_odometer" field if the given value is not nil.
func (_c *MileageLogCreate) SetNillableEndOdometer(v *string) *MileageLogCreate {
	if v != nil {
		_c.SetEndOdometer(*v)
	}
	return _c
}

// SetStartImagePath sets the "start_image_path" field.
func (_c *MileageLogCreate) SetStartImagePath(v string) *MileageLogCreate {
	_c.mutation.SetStartImagePath(v)
	return _c
}

// SetNillableStartImagePath sets the "start_image_path" field if the given value is not nil.
func (_c *MileageLogCreate) SetNillableStartImagePath(v *string) *MileageLogCreate {
	if v != nil {
		_c.SetStartImagePath(*v)
	}
	return _c
}

// SetEndImagePath sets the "end_image_path" field.
func (_c *MileageLogCreate) SetEndImagePath(v string) *MileageLogCreate {
	_c.mutation.SetEndImagePath(v)
	return _c
}

// SetNillableEndImagePath sets the "end_image_path" field if the given value is not nil.
func (_c *MileageLogCreate) SetNillableEndImagePath(v *string) *MileageLogCreate {
	if v != nil {
		_c.SetEndImagePath(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *MileageLogCreate) SetStatus(v string) *MileageLogCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *MileageLogCreate) SetNillableStatus(v *string) *MileageLogCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetOcrError sets the "ocr_error" field.
func (_c *MileageLogCreate) SetOcrError(v string) *MileageLogCreate {
	_c.mutation.SetOcrError(v)
	return _c
}

// SetNillableOcrError sets the "ocr_error" field if the given value is not nil.
func (_c *MileageLogCreate) SetNillableOcrError(v *string) *MileageLogCreate {
	if v != nil {
		_c.SetOcrError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MileageLogCreate) SetCreatedAt(v time.Time) *MileageLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MileageLogCreate) SetNillableCreatedAt(v *time.Time) *MileageLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MileageLogCreate) SetUpdatedAt(v time.Time) *MileageLogCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MileageLogCreate) SetNillableUpdatedAt(v *time.Time) *MileageLogCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MileageLogCreate) SetID(v uuid.UUID) *MileageLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MileageLogCreate) SetNillableID(v *uuid.UUID) *MileageLogCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the MileageLogMutation object of the builder.
func (_c *MileageLogCreate) Mutation() *MileageLogMutation {
	return _c.mutation
}

// Save creates the MileageLog in the database.
func (_c *MileageLogCreate) Save(ctx context.Context) (*MileageLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MileageLogCreate) SaveX(ctx context.Context) *MileageLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MileageLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MileageLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MileageLogCreate) defaults() {
	if _, ok := _c.mutation.LogDate(); !ok {
		v := mileagelog.DefaultLogDate
		_c.mutation.SetLogDate(v)
	}
	if _, ok := _c.mutation.StartOdometer(); !ok {
		v := mileagelog.DefaultStartOdometer
		_c.mutation.SetStartOdometer(v)
	}
	if _, ok := _c.mutation.EndOdometer(); !ok {
		v := mileagelog.DefaultEndOdometer
		_c.mutation.SetEndOdometer(v)
	}
	if _, ok := _c.mutation.StartImagePath(); !ok {
		v := mileagelog.DefaultStartImagePath
		_c.mutation.SetStartImagePath(v)
	}
	if _, ok := _c.mutation.EndImagePath(); !ok {
		v := mileagelog.DefaultEndImagePath
		_c.mutation.SetEndImagePath(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := mileagelog.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := mileagelog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := mileagelog.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := mileagelog.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MileageLogCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "MileageLog.user_id"`)}
	}
	if _, ok := _c.mutation.LogDate(); !ok {
		return &ValidationError{Name: "log_date", err: errors.New(`ent: missing required field "MileageLog.log_date"`)}
	}
	if _, ok := _c.mutation.StartOdometer(); !ok {
		return &ValidationError{Name: "start_odometer", err: errors.New(`ent: missing required field "MileageLog.start_odometer"`)}
	}
	if _, ok := _c.mutation.EndOdometer(); !ok {
		return &ValidationError{Name: "end_odometer", err: errors.New(`ent: missing required field "MileageLog.end_odometer"`)}
	}
	if _, ok := _c.mutation.StartImagePath(); !ok {
		return &ValidationError{Name: "start_image_path", err: errors.New(`ent: missing required field "MileageLog.start_image_path"`)}
	}
	if _, ok := _c.mutation.EndImagePath(); !ok {
		return &ValidationError{Name: "end_image_path", err: errors.New(`ent: missing required field "MileageLog.end_image_path"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "MileageLog.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := mileagelog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MileageLog.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MileageLog.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MileageLog.updated_at"`)}
	}
	return nil
}

func (_c *MileageLogCreate) sqlSave(ctx context.Context) (*MileageLog, error) {
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

func (_c *MileageLogCreate) createSpec() (*MileageLog, *sqlgraph.CreateSpec) {
	var (
		_node = &MileageLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mileagelog.Table, sqlgraph.NewFieldSpec(mileagelog.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(mileagelog.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.TripID(); ok {
		_spec.SetField(mileagelog.FieldTripID, field.TypeUUID, value)
		_node.TripID = &value
	}
	if value, ok := _c.mutation.LogDate(); ok {
		_spec.SetField(mileagelog.FieldLogDate, field.TypeString, value)
		_node.LogDate = value
	}
	if value, ok := _c.mutation.StartOdometer(); ok {
		_spec.SetField(mileagelog.FieldStartOdometer, field.TypeString, value)
		_node.StartOdometer = value
	}
	if value, ok := _c.mutation.EndOdometer(); ok {
		_spec.SetField(mileagelog.FieldEndOdometer, field.TypeString, value)
		_node.EndOdometer = value
	}
	if value, ok := _c.mutation.StartImagePath(); ok {
		_spec.SetField(mileagelog.FieldStartImagePath, field.TypeString, value)
		_node.StartImagePath = value
	}
	if value, ok := _c.mutation.EndImagePath(); ok {
		_spec.SetField(mileagelog.FieldEndImagePath, field.TypeString, value)
		_node.EndImagePath = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(mileagelog.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.OcrError(); ok {
		_spec.SetField(mileagelog.FieldOcrError, field.TypeString, value)
		_node.OcrError = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(mileagelog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(mileagelog.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// MileageLogCreateBulk is the builder for creating many MileageLog entities in bulk.
type MileageLogCreateBulk struct {
	config
	err      error
	builders []*MileageLogCreate
}

// Save creates the MileageLog entities in the database.
func (_c *MileageLogCreateBulk) Save(ctx context.Context) ([]*MileageLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MileageLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MileageLogMutation)
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
func (_c *MileageLogCreateBulk) SaveX(ctx context.Context) []*MileageLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MileageLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MileageLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
