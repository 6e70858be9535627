// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/oghenetejiriorukpegmail/expense-tracker/gen/ent/mileagelog"
	"github.com/oghenetejiriorukpegmail/expense-tracker/gen/ent/predicate"
)

// MileageLogUpdate is the builder for updating MileageLog entities.
type MileageLogUpdate struct {
	config
	hooks    []Hook
	mutation *MileageLogMutation
}

// Where appends a list predicates to the MileageLogUpdate builder.
func (_u *MileageLogUpdate) Where(ps ...predicate.MileageLog) *MileageLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *MileageLogUpdate) SetUserID(v uuid.UUID) *MileageLogUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MileageLogUpdate) SetNillableUserID(v *uuid.UUID) *MileageLogUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTripID sets the "trip_id" field.
func (_u *MileageLogUpdate) SetTripID(v uuid.UUID) *MileageLogUpdate {
	_u.mutation.SetTripID(v)
	return _u
}

// SetNillableTripID sets the "trip_id" field if the given value is not nil.
func (_u *MileageLogUpdate) SetNillableTripID(v *uuid.UUID) *MileageLogUpdate {
	if v != nil {
		_u.SetTripID(*v)
	}
	return _u
}

// ClearTripID clears the value of the "trip_id" field.
func (_u *MileageLogUpdate) ClearTripID() *MileageLogUpdate {
	_u.mutation.ClearTripID()
	return _u
}

// SetLogDate sets the "log_date" field.
func (_u *MileageLogUpdate) SetLogDate(v string) *MileageLogUpdate {
	_u.mutation.SetLogDate(v)
	return _u
}

// SetNillableLogDate sets the "log_date" field if the given value is not nil.
func (_u *MileageLogUpdate) SetNillableLogDate(v *string) *MileageLogUpdate {
	if v != nil {
		_u.SetLogDate(*v)
	}
	return _u
}

// SetStartOdometer sets the "start_odometer" field.
func (_u *MileageLogUpdate) SetStartOdometer(v string) *MileageLogUpdate {
	_u.mutation.SetStartOdometer(v)
	return _u
}

// SetNillableStartOdometer sets the "start_odometer" field if the given value is not nil.
func (_u *MileageLogUpdate) SetNillableStartOdometer(v *string) *MileageLogUpdate {
	if v != nil {
		_u.SetStartOdometer(*v)
	}
	return _u
}

// SetEndOdometer sets the "end_odometer" field.
func (_u *MileageLogUpdate) SetEndOdometer(v string) *MileageLogUpdate {
	_u.mutation.SetEndOdometer(v)
	return _u
}

// SetNillableEndOdometer sets the "end_odometer" field if the given value is not nil.
func (_u *MileageLogUpdate) SetNillableEndOdometer(v *string) *MileageLogUpdate {
	if v != nil {
		_u.SetEndOdometer(*v)
	}
	return _u
}

// SetStartImagePath sets the "start_image_path" field.
func (_u *MileageLogUpdate) SetStartImagePath(v string) *MileageLogUpdate {
	_u.mutation.SetStartImagePath(v)
	return _u
}

// SetNillableStartImagePath sets the "start_image_path" field if the given value is not nil.
func (_u *MileageLogUpdate) SetNillableStartImagePath(v *string) *MileageLogUpdate {
	if v != nil {
		_u.SetStartImagePath(*v)
	}
	return _u
}

// SetEndImagePath sets the "end_image_path" field.
func (_u *MileageLogUpdate) SetEndImagePath(v string) *MileageLogUpdate {
	_u.mutation.SetEndImagePath(v)
	return _u
}

// SetNillableEndImagePath sets the "end_image_path" field if the given value is not nil.
func (_u *MileageLogUpdate) SetNillableEndImagePath(v *string) *MileageLogUpdate {
	if v != nil {
		_u.SetEndImagePath(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *MileageLogUpdate) SetStatus(v string) *MileageLogUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MileageLogUpdate) SetNillableStatus(v *string) *MileageLogUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOcrError sets the "ocr_error" field.
func (_u *MileageLogUpdate) SetOcrError(v string) *MileageLogUpdate {
	_u.mutation.SetOcrError(v)
	return _u
}

// SetNillableOcrError sets the "ocr_error" field if the given value is not nil.
func (_u *MileageLogUpdate) SetNillableOcrError(v *string) *MileageLogUpdate {
	if v != nil {
		_u.SetOcrError(*v)
	}
	return _u
}

// ClearOcrError clears the value of the "ocr_error" field.
func (_u *MileageLogUpdate) ClearOcrError() *MileageLogUpdate {
	_u.mutation.ClearOcrError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MileageLogUpdate) SetUpdatedAt(v time.Time) *MileageLogUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MileageLogMutation object of the builder.
func (_u *MileageLogUpdate) Mutation() *MileageLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MileageLogUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MileageLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MileageLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MileageLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MileageLogUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := mileagelog.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MileageLogUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := mileagelog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MileageLog.status": %w`, err)}
		}
	}
	return nil
}

func (_u *MileageLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mileagelog.Table, mileagelog.Columns, sqlgraph.NewFieldSpec(mileagelog.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(mileagelog.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TripID(); ok {
		_spec.SetField(mileagelog.FieldTripID, field.TypeUUID, value)
	}
	if _u.mutation.TripIDCleared() {
		_spec.ClearField(mileagelog.FieldTripID, field.TypeUUID)
	}
	if value, ok := _u.mutation.LogDate(); ok {
		_spec.SetField(mileagelog.FieldLogDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartOdometer(); ok {
		_spec.SetField(mileagelog.FieldStartOdometer, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndOdometer(); ok {
		_spec.SetField(mileagelog.FieldEndOdometer, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartImagePath(); ok {
		_spec.SetField(mileagelog.FieldStartImagePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndImagePath(); ok {
		_spec.SetField(mileagelog.FieldEndImagePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(mileagelog.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.OcrError(); ok {
		_spec.SetField(mileagelog.FieldOcrError, field.TypeString, value)
	}
	if _u.mutation.OcrErrorCleared() {
		_spec.ClearField(mileagelog.FieldOcrError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(mileagelog.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mileagelog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MileageLogUpdateOne is the builder for updating a single MileageLog entity.
type MileageLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MileageLogMutation
}

// SetUserID sets the "user_id" field.
func (_u *MileageLogUpdateOne) SetUserID(v uuid.UUID) *MileageLogUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MileageLogUpdateOne) SetNillableUserID(v *uuid.UUID) *MileageLogUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTripID sets the "trip_id" field.
func (_u *MileageLogUpdateOne) SetTripID(v uuid.UUID) *MileageLogUpdateOne {
	_u.mutation.SetTripID(v)
	return _u
}

// SetNillableTripID sets the "trip_id" field if the given value is not nil.
func (_u *MileageLogUpdateOne) SetNillableTripID(v *uuid.UUID) *MileageLogUpdateOne {
	if v != nil {
		_u.SetTripID(*v)
	}
	return _u
}

// ClearTripID clears the value of the "trip_id" field.
func (_u *MileageLogUpdateOne) ClearTripID() *MileageLogUpdateOne {
	_u.mutation.ClearTripID()
	return _u
}

// SetLogDate sets the "log_date" field.
func (_u *MileageLogUpdateOne) SetLogDate(v string) *MileageLogUpdateOne {
	_u.mutation.SetLogDate(v)
	return _u
}

// SetNillableLogDate sets the "log_date" field if the given value is not nil.
func (_u *MileageLogUpdateOne) SetNillableLogDate(v *string) *MileageLogUpdateOne {
	if v != nil {
		_u.SetLogDate(*v)
	}
	return _u
}

// SetStartOdometer sets the "start_odometer" field.
func (_u *MileageLogUpdateOne) SetStartOdometer(v string) *MileageLogUpdateOne {
	_u.mutation.SetStartOdometer(v)
	return _u
}

// SetNillableStartOdometer sets the "start_odometer" field if the given value is not nil.
func (_u *MileageLogUpdateOne) SetNillableStartOdometer(v *string) *MileageLogUpdateOne {
	if v != nil {
		_u.SetStartOdometer(*v)
	}
	return _u
}

// SetEndOdometer sets the "end_odometer" field.
func (_u *MileageLogUpdateOne) SetEndOdometer(v string) *MileageLogUpdateOne {
	_u.mutation.SetEndOdometer(v)
	return _u
}

// SetNillableEndOdometer sets the "end_odometer" field if the given value is not nil.
func (_u *MileageLogUpdateOne) SetNillableEndOdometer(v *string) *MileageLogUpdateOne {
	if v != nil {
		_u.SetEndOdometer(*v)
	}
	return _u
}

// SetStartImagePath sets the "start_image_path" field.
func (_u *MileageLogUpdateOne) SetStartImagePath(v string) *MileageLogUpdateOne {
	_u.mutation.SetStartImagePath(v)
	return _u
}

// SetNillableStartImagePath sets the "start_image_path" field if the given value is not nil.
func (_u *MileageLogUpdateOne) SetNillableStartImagePath(v *string) *MileageLogUpdateOne {
	if v != nil {
		_u.SetStartImagePath(*v)
	}
	return _u
}

// SetEndImagePath sets the "end_image_path" field.
func (_u *MileageLogUpdateOne) SetEndImagePath(v string) *MileageLogUpdateOne {
	_u.mutation.SetEndImagePath(v)
	return _u
}

// SetNillableEndImagePath sets the "end_image_path" field if the given value is not nil.
func (_u *MileageLogUpdateOne) SetNillableEndImagePath(v *string) *MileageLogUpdateOne {
	if v != nil {
		_u.SetEndImagePath(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *MileageLogUpdateOne) SetStatus(v string) *MileageLogUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MileageLogUpdateOne) SetNillableStatus(v *string) *MileageLogUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOcrError sets the "ocr_error" field.
func (_u *MileageLogUpdateOne) SetOcrError(v string) *MileageLogUpdateOne {
	_u.mutation.SetOcrError(v)
	return _u
}

// SetNillableOcrError sets the "ocr_error" field if the given value is not nil.
func (_u *MileageLogUpdateOne) SetNillableOcrError(v *string) *MileageLogUpdateOne {
	if v != nil {
		_u.SetOcrError(*v)
	}
	return _u
}

// ClearOcrError clears the value of the "ocr_error" field.
func (_u *MileageLogUpdateOne) ClearOcrError() *MileageLogUpdateOne {
	_u.mutation.ClearOcrError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MileageLogUpdateOne) SetUpdatedAt(v time.Time) *MileageLogUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MileageLogMutation object of the builder.
func (_u *MileageLogUpdateOne) Mutation() *MileageLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the MileageLogUpdate builder.
func (_u *MileageLogUpdateOne) Where(ps ...predicate.MileageLog) *MileageLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MileageLogUpdateOne) Select(field string, fields ...string) *MileageLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MileageLog entity.
func (_u *MileageLogUpdateOne) Save(ctx context.Context) (*MileageLog, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MileageLogUpdateOne) SaveX(ctx context.Context) *MileageLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MileageLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MileageLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MileageLogUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := mileagelog.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MileageLogUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := mileagelog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MileageLog.status": %w`, err)}
		}
	}
	return nil
}

func (_u *MileageLogUpdateOne) sqlSave(ctx context.Context) (_node *MileageLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mileagelog.Table, mileagelog.Columns, sqlgraph.NewFieldSpec(mileagelog.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MileageLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mileagelog.FieldID)
		for _, f := range fields {
			if !mileagelog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mileagelog.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(mileagelog.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TripID(); ok {
		_spec.SetField(mileagelog.FieldTripID, field.TypeUUID, value)
	}
	if _u.mutation.TripIDCleared() {
		_spec.ClearField(mileagelog.FieldTripID, field.TypeUUID)
	}
	if value, ok := _u.mutation.LogDate(); ok {
		_spec.SetField(mileagelog.FieldLogDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartOdometer(); ok {
		_spec.SetField(mileagelog.FieldStartOdometer, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndOdometer(); ok {
		_spec.SetField(mileagelog.FieldEndOdometer, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartImagePath(); ok {
		_spec.SetField(mileagelog.FieldStartImagePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndImagePath(); ok {
		_spec.SetField(mileagelog.FieldEndImagePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(mileagelog.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.OcrError(); ok {
		_spec.SetField(mileagelog.FieldOcrError, field.TypeString, value)
	}
	if _u.mutation.OcrErrorCleared() {
		_spec.ClearField(mileagelog.FieldOcrError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(mileagelog.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &MileageLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mileagelog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
