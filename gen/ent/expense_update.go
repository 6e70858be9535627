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
	"github.com/oghenetejiriorukpegmail/expense-tracker/gen/ent/expense"
	"github.com/oghenetejiriorukpegmail/expense-tracker/gen/ent/predicate"
)

// ExpenseUpdate is the builder for updating Expense entities.
type ExpenseUpdate struct {
	config
	hooks    []Hook
	mutation *ExpenseMutation
}

// Where appends a list predicates to the ExpenseUpdate builder.
func (_u *ExpenseUpdate) Where(ps ...predicate.Expense) *ExpenseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ExpenseUpdate) SetUserID(v uuid.UUID) *ExpenseUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableUserID(v *uuid.UUID) *ExpenseUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTripID sets the "trip_id" field.
func (_u *ExpenseUpdate) SetTripID(v uuid.UUID) *ExpenseUpdate {
	_u.mutation.SetTripID(v)
	return _u
}

// SetNillableTripID sets the "trip_id" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableTripID(v *uuid.UUID) *ExpenseUpdate {
	if v != nil {
		_u.SetTripID(*v)
	}
	return _u
}

// ClearTripID clears the value of the "trip_id" field.
func (_u *ExpenseUpdate) ClearTripID() *ExpenseUpdate {
	_u.mutation.ClearTripID()
	return _u
}

// SetVendor sets the "vendor" field.
func (_u *ExpenseUpdate) SetVendor(v string) *ExpenseUpdate {
	_u.mutation.SetVendor(v)
	return _u
}

// SetNillableVendor sets the "vendor" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableVendor(v *string) *ExpenseUpdate {
	if v != nil {
		_u.SetVendor(*v)
	}
	return _u
}

// SetTxDate sets the "tx_date" field.
func (_u *ExpenseUpdate) SetTxDate(v string) *ExpenseUpdate {
	_u.mutation.SetTxDate(v)
	return _u
}

// SetNillableTxDate sets the "tx_date" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableTxDate(v *string) *ExpenseUpdate {
	if v != nil {
		_u.SetTxDate(*v)
	}
	return _u
}

// SetCost sets the "cost" field.
func (_u *ExpenseUpdate) SetCost(v string) *ExpenseUpdate {
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableCost(v *string) *ExpenseUpdate {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *ExpenseUpdate) SetCurrency(v string) *ExpenseUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableCurrency(v *string) *ExpenseUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *ExpenseUpdate) SetLocation(v string) *ExpenseUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableLocation(v *string) *ExpenseUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// SetExpenseType sets the "expense_type" field.
func (_u *ExpenseUpdate) SetExpenseType(v string) *ExpenseUpdate {
	_u.mutation.SetExpenseType(v)
	return _u
}

// SetNillableExpenseType sets the "expense_type" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableExpenseType(v *string) *ExpenseUpdate {
	if v != nil {
		_u.SetExpenseType(*v)
	}
	return _u
}

// SetComments sets the "comments" field.
func (_u *ExpenseUpdate) SetComments(v string) *ExpenseUpdate {
	_u.mutation.SetComments(v)
	return _u
}

// SetNillableComments sets the "comments" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableComments(v *string) *ExpenseUpdate {
	if v != nil {
		_u.SetComments(*v)
	}
	return _u
}

// SetReceiptPath sets the "receipt_path" field.
func (_u *ExpenseUpdate) SetReceiptPath(v string) *ExpenseUpdate {
	_u.mutation.SetReceiptPath(v)
	return _u
}

// SetNillableReceiptPath sets the "receipt_path" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableReceiptPath(v *string) *ExpenseUpdate {
	if v != nil {
		_u.SetReceiptPath(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExpenseUpdate) SetStatus(v string) *ExpenseUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableStatus(v *string) *ExpenseUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOcrError sets the "ocr_error" field.
func (_u *ExpenseUpdate) SetOcrError(v string) *ExpenseUpdate {
	_u.mutation.SetOcrError(v)
	return _u
}

// SetNillableOcrError sets the "ocr_error" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableOcrError(v *string) *ExpenseUpdate {
	if v != nil {
		_u.SetOcrError(*v)
	}
	return _u
}

// ClearOcrError clears the value of the "ocr_error" field.
func (_u *ExpenseUpdate) ClearOcrError() *ExpenseUpdate {
	_u.mutation.ClearOcrError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExpenseUpdate) SetUpdatedAt(v time.Time) *ExpenseUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ExpenseMutation object of the builder.
func (_u *ExpenseUpdate) Mutation() *ExpenseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExpenseUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExpenseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExpenseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExpenseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExpenseUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := expense.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExpenseUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := expense.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Expense.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ExpenseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(expense.Table, expense.Columns, sqlgraph.NewFieldSpec(expense.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(expense.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TripID(); ok {
		_spec.SetField(expense.FieldTripID, field.TypeUUID, value)
	}
	if _u.mutation.TripIDCleared() {
		_spec.ClearField(expense.FieldTripID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Vendor(); ok {
		_spec.SetField(expense.FieldVendor, field.TypeString, value)
	}
	if value, ok := _u.mutation.TxDate(); ok {
		_spec.SetField(expense.FieldTxDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(expense.FieldCost, field.TypeString, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(expense.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(expense.FieldLocation, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpenseType(); ok {
		_spec.SetField(expense.FieldExpenseType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Comments(); ok {
		_spec.SetField(expense.FieldComments, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReceiptPath(); ok {
		_spec.SetField(expense.FieldReceiptPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(expense.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.OcrError(); ok {
		_spec.SetField(expense.FieldOcrError, field.TypeString, value)
	}
	if _u.mutation.OcrErrorCleared() {
		_spec.ClearField(expense.FieldOcrError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(expense.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{expense.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExpenseUpdateOne is the builder for updating a single Expense entity.
type ExpenseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExpenseMutation
}

// SetUserID sets the "user_id" field.
func (_u *ExpenseUpdateOne) SetUserID(v uuid.UUID) *ExpenseUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableUserID(v *uuid.UUID) *ExpenseUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTripID sets the "trip_id" field.
func (_u *ExpenseUpdateOne) SetTripID(v uuid.UUID) *ExpenseUpdateOne {
	_u.mutation.SetTripID(v)
	return _u
}

// SetNillableTripID sets the "trip_id" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableTripID(v *uuid.UUID) *ExpenseUpdateOne {
	if v != nil {
		_u.SetTripID(*v)
	}
	return _u
}

// ClearTripID clears the value of the "trip_id" field.
func (_u *ExpenseUpdateOne) ClearTripID() *ExpenseUpdateOne {
	_u.mutation.ClearTripID()
	return _u
}

// SetVendor sets the "vendor" field.
func (_u *ExpenseUpdateOne) SetVendor(v string) *ExpenseUpdateOne {
	_u.mutation.SetVendor(v)
	return _u
}

// SetNillableVendor sets the "vendor" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableVendor(v *string) *ExpenseUpdateOne {
	if v != nil {
		_u.SetVendor(*v)
	}
	return _u
}

// SetTxDate sets the "tx_date" field.
func (_u *ExpenseUpdateOne) SetTxDate(v string) *ExpenseUpdateOne {
	_u.mutation.SetTxDate(v)
	return _u
}

// SetNillableTxDate sets the "tx_date" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableTxDate(v *string) *ExpenseUpdateOne {
	if v != nil {
		_u.SetTxDate(*v)
	}
	return _u
}

// SetCost sets the "cost" field.
func (_u *ExpenseUpdateOne) SetCost(v string) *ExpenseUpdateOne {
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableCost(v *string) *ExpenseUpdateOne {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *ExpenseUpdateOne) SetCurrency(v string) *ExpenseUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableCurrency(v *string) *ExpenseUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *ExpenseUpdateOne) SetLocation(v string) *ExpenseUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableLocation(v *string) *ExpenseUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// SetExpenseType sets the "expense_type" field.
func (_u *ExpenseUpdateOne) SetExpenseType(v string) *ExpenseUpdateOne {
	_u.mutation.SetExpenseType(v)
	return _u
}

// SetNillableExpenseType sets the "expense_type" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableExpenseType(v *string) *ExpenseUpdateOne {
	if v != nil {
		_u.SetExpenseType(*v)
	}
	return _u
}

// SetComments sets the "comments" field.
func (_u *ExpenseUpdateOne) SetComments(v string) *ExpenseUpdateOne {
	_u.mutation.SetComments(v)
	return _u
}

// SetNillableComments sets the "comments" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableComments(v *string) *ExpenseUpdateOne {
	if v != nil {
		_u.SetComments(*v)
	}
	return _u
}

// SetReceiptPath sets the "receipt_path" field.
func (_u *ExpenseUpdateOne) SetReceiptPath(v string) *ExpenseUpdateOne {
	_u.mutation.SetReceiptPath(v)
	return _u
}

// SetNillableReceiptPath sets the "receipt_path" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableReceiptPath(v *string) *ExpenseUpdateOne {
	if v != nil {
		_u.SetReceiptPath(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExpenseUpdateOne) SetStatus(v string) *ExpenseUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableStatus(v *string) *ExpenseUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOcrError sets the "ocr_error" field.
func (_u *ExpenseUpdateOne) SetOcrError(v string) *ExpenseUpdateOne {
	_u.mutation.SetOcrError(v)
	return _u
}

// SetNillableOcrError sets the "ocr_error" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableOcrError(v *string) *ExpenseUpdateOne {
	if v != nil {
		_u.SetOcrError(*v)
	}
	return _u
}

// ClearOcrError clears the value of the "ocr_error" field.
func (_u *ExpenseUpdateOne) ClearOcrError() *ExpenseUpdateOne {
	_u.mutation.ClearOcrError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExpenseUpdateOne) SetUpdatedAt(v time.Time) *ExpenseUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ExpenseMutation object of the builder.
func (_u *ExpenseUpdateOne) Mutation() *ExpenseMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExpenseUpdate builder.
func (_u *ExpenseUpdateOne) Where(ps ...predicate.Expense) *ExpenseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExpenseUpdateOne) Select(field string, fields ...string) *ExpenseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Expense entity.
func (_u *ExpenseUpdateOne) Save(ctx context.Context) (*Expense, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExpenseUpdateOne) SaveX(ctx context.Context) *Expense {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExpenseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExpenseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExpenseUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := expense.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExpenseUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := expense.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Expense.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ExpenseUpdateOne) sqlSave(ctx context.Context) (_node *Expense, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(expense.Table, expense.Columns, sqlgraph.NewFieldSpec(expense.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Expense.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, expense.FieldID)
		for _, f := range fields {
			if !expense.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != expense.FieldID {
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
		_spec.SetField(expense.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TripID(); ok {
		_spec.SetField(expense.FieldTripID, field.TypeUUID, value)
	}
	if _u.mutation.TripIDCleared() {
		_spec.ClearField(expense.FieldTripID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Vendor(); ok {
		_spec.SetField(expense.FieldVendor, field.TypeString, value)
	}
	if value, ok := _u.mutation.TxDate(); ok {
		_spec.SetField(expense.FieldTxDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(expense.FieldCost, field.TypeString, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(expense.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(expense.FieldLocation, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpenseType(); ok {
		_spec.SetField(expense.FieldExpenseType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Comments(); ok {
		_spec.SetField(expense.FieldComments, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReceiptPath(); ok {
		_spec.SetField(expense.FieldReceiptPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(expense.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.OcrError(); ok {
		_spec.SetField(expense.FieldOcrError, field.TypeString, value)
	}
	if _u.mutation.OcrErrorCleared() {
		_spec.ClearField(expense.FieldOcrError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(expense.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Expense{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{expense.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
