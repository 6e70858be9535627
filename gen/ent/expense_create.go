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
	"github.com/oghenetejiriorukpegmail/expense-tracker/gen/ent/expense"
)

// ExpenseCreate is the builder for creating a Expense entity.
type ExpenseCreate struct {
	config
	mutation *ExpenseMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ExpenseCreate) SetUserID(v uuid.UUID) *ExpenseCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTripID sets the "trip_id" field.
func (_c *ExpenseCreate) SetTripID(v uuid.UUID) *ExpenseCreate {
	_c.mutation.SetTripID(v)
	return _c
}

// SetNillableTripID sets the "trip_id" field if the given value is not nil.
func (_c *ExpenseCreate) SetNillableTripID(v *uuid.UUID) *ExpenseCreate {
	if v != nil {
		_c.SetTripID(*v)
	}
	return _c
}

// SetVendor sets the "vendor" field.
func (_c *ExpenseCreate) SetVendor(v string) *ExpenseCreate {
	_c.mutation.SetVendor(v)
	return _c
}

// SetNillableVendor sets the "vendor" field if the given value is not nil.
func (_c *ExpenseCreate) SetNillableVendor(v *string) *ExpenseCreate {
	if v != nil {
		_c.SetVendor(*v)
	}
	return _c
}

// SetTxDate sets the "tx_date" field.
func (_c *ExpenseCreate) SetTxDate(v string) *ExpenseCreate {
	_c.mutation.SetTxDate(v)
	return _c
}

// SetNillableTxDate sets the "tx_date" field if the given value is not nil.
func (_c *ExpenseCreate) SetNillableTxDate(v *string) *ExpenseCreate {
	if v != nil {
		_c.SetTxDate(*v)
	}
	return _c
}

// SetCost sets the "cost" field.
func (_c *ExpenseCreate) SetCost(v string) *ExpenseCreate {
	_c.mutation.SetCost(v)
	return _c
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_c *ExpenseCreate) SetNillableCost(v *string) *ExpenseCreate {
	if v != nil {
		_c.SetCost(*v)
	}
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *ExpenseCreate) SetCurrency(v string) *ExpenseCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_c *ExpenseCreate) SetNillableCurrency(v *string) *ExpenseCreate {
	if v != nil {
		_c.SetCurrency(*v)
	}
	return _c
}

// SetLocation sets the "location" field.
func (_c *ExpenseCreate) SetLocation(v string) *ExpenseCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_c *ExpenseCreate) SetNillableLocation(v *string) *ExpenseCreate {
	if v != nil {
		_c.SetLocation(*v)
	}
	return _c
}

// SetExpenseType sets the "expense_type" field.
func (_c *ExpenseCreate) SetExpenseType(v string) *ExpenseCreate {
	_c.mutation.SetExpenseType(v)
	return _c
}

// SetNillableExpenseType sets the "expense_type" field if the given value is not nil.
func (_c *ExpenseCreate) SetNillableExpenseType(v *string) *ExpenseCreate {
	if v != nil {
		_c.SetExpenseType(*v)
	}
	return _c
}

// SetComments sets the "comments" field.
func (_c *ExpenseCreate) SetComments(v string) *ExpenseCreate {
	_c.mutation.SetComments(v)
	return _c
}

// SetNillableComments sets the "comments" field if the given value is not nil.
func (_c *ExpenseCreate) SetNillableComments(v *string) *ExpenseCreate {
	if v != nil {
		_c.SetComments(*v)
	}
	return _c
}

// SetReceiptPath sets the "receipt_path" field.
func (_c *ExpenseCreate) SetReceiptPath(v string) *ExpenseCreate {
	_c.mutation.SetReceiptPath(v)
	return _c
}

// SetNillableReceiptPath sets the "receipt_path" field if the given value is not nil.
func (_c *ExpenseCreate) SetNillableReceiptPath(v *string) *ExpenseCreate {
	if v != nil {
		_c.SetReceiptPath(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExpenseCreate) SetStatus(v string) *ExpenseCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ExpenseCreate) SetNillableStatus(v *string) *ExpenseCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetOcrError sets the "ocr_error" field.
func (_c *ExpenseCreate) SetOcrError(v string) *ExpenseCreate {
	_c.mutation.SetOcrError(v)
	return _c
}

// SetNillableOcrError sets the "ocr_error" field if the given value is not nil.
func (_c *ExpenseCreate) SetNillableOcrError(v *string) *ExpenseCreate {
	if v != nil {
		_c.SetOcrError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExpenseCreate) SetCreatedAt(v time.Time) *ExpenseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExpenseCreate) SetNillableCreatedAt(v *time.Time) *ExpenseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ExpenseCreate) SetUpdatedAt(v time.Time) *ExpenseCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ExpenseCreate) SetNillableUpdatedAt(v *time.Time) *ExpenseCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExpenseCreate) SetID(v uuid.UUID) *ExpenseCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExpenseCreate) SetNillableID(v *uuid.UUID) *ExpenseCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ExpenseMutation object of the builder.
func (_c *ExpenseCreate) Mutation() *ExpenseMutation {
	return _c.mutation
}

// Save creates the Expense in the database.
func (_c *ExpenseCreate) Save(ctx context.Context) (*Expense, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExpenseCreate) SaveX(ctx context.Context) *Expense {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExpenseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExpenseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExpenseCreate) defaults() {
	if _, ok := _c.mutation.Vendor(); !ok {
		v := expense.DefaultVendor
		_c.mutation.SetVendor(v)
	}
	if _, ok := _c.mutation.TxDate(); !ok {
		v := expense.DefaultTxDate
		_c.mutation.SetTxDate(v)
	}
	if _, ok := _c.mutation.Cost(); !ok {
		v := expense.DefaultCost
		_c.mutation.SetCost(v)
	}
	if _, ok := _c.mutation.Currency(); !ok {
		v := expense.DefaultCurrency
		_c.mutation.SetCurrency(v)
	}
	if _, ok := _c.mutation.Location(); !ok {
		v := expense.DefaultLocation
		_c.mutation.SetLocation(v)
	}
	if _, ok := _c.mutation.ExpenseType(); !ok {
		v := expense.DefaultExpenseType
		_c.mutation.SetExpenseType(v)
	}
	if _, ok := _c.mutation.Comments(); !ok {
		v := expense.DefaultComments
		_c.mutation.SetComments(v)
	}
	if _, ok := _c.mutation.ReceiptPath(); !ok {
		v := expense.DefaultReceiptPath
		_c.mutation.SetReceiptPath(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := expense.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := expense.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := expense.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := expense.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExpenseCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Expense.user_id"`)}
	}
	if _, ok := _c.mutation.Vendor(); !ok {
		return &ValidationError{Name: "vendor", err: errors.New(`ent: missing required field "Expense.vendor"`)}
	}
	if _, ok := _c.mutation.TxDate(); !ok {
		return &ValidationError{Name: "tx_date", err: errors.New(`ent: missing required field "Expense.tx_date"`)}
	}
	if _, ok := _c.mutation.Cost(); !ok {
		return &ValidationError{Name: "cost", err: errors.New(`ent: missing required field "Expense.cost"`)}
	}
	if _, ok := _c.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`ent: missing required field "Expense.currency"`)}
	}
	if _, ok := _c.mutation.Location(); !ok {
		return &ValidationError{Name: "location", err: errors.New(`ent: missing required field "Expense.location"`)}
	}
	if _, ok := _c.mutation.ExpenseType(); !ok {
		return &ValidationError{Name: "expense_type", err: errors.New(`ent: missing required field "Expense.expense_type"`)}
	}
	if _, ok := _c.mutation.Comments(); !ok {
		return &ValidationError{Name: "comments", err: errors.New(`ent: missing required field "Expense.comments"`)}
	}
	if _, ok := _c.mutation.ReceiptPath(); !ok {
		return &ValidationError{Name: "receipt_path", err: errors.New(`ent: missing required field "Expense.receipt_path"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Expense.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := expense.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Expense.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Expense.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Expense.updated_at"`)}
	}
	return nil
}

func (_c *ExpenseCreate) sqlSave(ctx context.Context) (*Expense, error) {
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

func (_c *ExpenseCreate) createSpec() (*Expense, *sqlgraph.CreateSpec) {
	var (
		_node = &Expense{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(expense.Table, sqlgraph.NewFieldSpec(expense.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(expense.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.TripID(); ok {
		_spec.SetField(expense.FieldTripID, field.TypeUUID, value)
		_node.TripID = &value
	}
	if value, ok := _c.mutation.Vendor(); ok {
		_spec.SetField(expense.FieldVendor, field.TypeString, value)
		_node.Vendor = value
	}
	if value, ok := _c.mutation.TxDate(); ok {
		_spec.SetField(expense.FieldTxDate, field.TypeString, value)
		_node.TxDate = value
	}
	if value, ok := _c.mutation.Cost(); ok {
		_spec.SetField(expense.FieldCost, field.TypeString, value)
		_node.Cost = value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(expense.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(expense.FieldLocation, field.TypeString, value)
		_node.Location = value
	}
	if value, ok := _c.mutation.ExpenseType(); ok {
		_spec.SetField(expense.FieldExpenseType, field.TypeString, value)
		_node.ExpenseType = value
	}
	if value, ok := _c.mutation.Comments(); ok {
		_spec.SetField(expense.FieldComments, field.TypeString, value)
		_node.Comments = value
	}
	if value, ok := _c.mutation.ReceiptPath(); ok {
		_spec.SetField(expense.FieldReceiptPath, field.TypeString, value)
		_node.ReceiptPath = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(expense.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.OcrError(); ok {
		_spec.SetField(expense.FieldOcrError, field.TypeString, value)
		_node.OcrError = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(expense.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(expense.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ExpenseCreateBulk is the builder for creating many Expense entities in bulk.
type ExpenseCreateBulk struct {
	config
	err      error
	builders []*ExpenseCreate
}

// Save creates the Expense entities in the database.
func (_c *ExpenseCreateBulk) Save(ctx context.Context) ([]*Expense, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Expense, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExpenseMutation)
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
func (_c *ExpenseCreateBulk) SaveX(ctx context.Context) []*Expense {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExpenseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExpenseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
