// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/oghenetejiriorukpegmail/expense-tracker/db/ent/schema"
	"github.com/oghenetejiriorukpegmail/expense-tracker/gen/ent/expense"
	"github.com/oghenetejiriorukpegmail/expense-tracker/gen/ent/mileagelog"
	"github.com/oghenetejiriorukpegmail/expense-tracker/gen/ent/task"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	expenseFields := schema.Expense{}.Fields()
	_ = expenseFields
	// expenseDescVendor is the schema descriptor for vendor field.
	expenseDescVendor := expenseFields[3].Descriptor()
	// expense.DefaultVendor holds the default value on creation for the vendor field.
	expense.DefaultVendor = expenseDescVendor.Default.(string)
	// expenseDescTxDate is the schema descriptor for tx_date field.
	expenseDescTxDate := expenseFields[4].Descriptor()
	// expense.DefaultTxDate holds the default value on creation for the tx_date field.
	expense.DefaultTxDate = expenseDescTxDate.Default.(string)
	// expenseDescCost is the schema descriptor for cost field.
	expenseDescCost := expenseFields[5].Descriptor()
	// expense.DefaultCost holds the default value on creation for the cost field.
	expense.DefaultCost = expenseDescCost.Default.(string)
	// expenseDescCurrency is the schema descriptor for currency field.
	expenseDescCurrency := expenseFields[6].Descriptor()
	// expense.DefaultCurrency holds the default value on creation for the currency field.
	expense.DefaultCurrency = expenseDescCurrency.Default.(string)
	// expenseDescLocation is the schema descriptor for location field.
	expenseDescLocation := expenseFields[7].Descriptor()
	// expense.DefaultLocation holds the default value on creation for the location field.
	expense.DefaultLocation = expenseDescLocation.Default.(string)
	// expenseDescExpenseType is the schema descriptor for expense_type field.
	expenseDescExpenseType := expenseFields[8].Descriptor()
	// expense.DefaultExpenseType holds the default value on creation for the expense_type field.
	expense.DefaultExpenseType = expenseDescExpenseType.Default.(string)
	// expenseDescComments is the schema descriptor for comments field.
	expenseDescComments := expenseFields[9].Descriptor()
	// expense.DefaultComments holds the default value on creation for the comments field.
	expense.DefaultComments = expenseDescComments.Default.(string)
	// expenseDescReceiptPath is the schema descriptor for receipt_path field.
	expenseDescReceiptPath := expenseFields[10].Descriptor()
	// expense.DefaultReceiptPath holds the default value on creation for the receipt_path field.
	expense.DefaultReceiptPath = expenseDescReceiptPath.Default.(string)
	// expenseDescStatus is the schema descriptor for status field.
	expenseDescStatus := expenseFields[11].Descriptor()
	// expense.DefaultStatus holds the default value on creation for the status field.
	expense.DefaultStatus = expenseDescStatus.Default.(string)
	// expense.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	expense.StatusValidator = expenseDescStatus.Validators[0].(func(string) error)
	// expenseDescCreatedAt is the schema descriptor for created_at field.
	expenseDescCreatedAt := expenseFields[13].Descriptor()
	// expense.DefaultCreatedAt holds the default value on creation for the created_at field.
	expense.DefaultCreatedAt = expenseDescCreatedAt.Default.(func() time.Time)
	// expenseDescUpdatedAt is the schema descriptor for updated_at field.
	expenseDescUpdatedAt := expenseFields[14].Descriptor()
	// expense.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	expense.DefaultUpdatedAt = expenseDescUpdatedAt.Default.(func() time.Time)
	// expense.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	expense.UpdateDefaultUpdatedAt = expenseDescUpdatedAt.UpdateDefault.(func() time.Time)
	// expenseDescID is the schema descriptor for id field.
	expenseDescID := expenseFields[0].Descriptor()
	// expense.DefaultID holds the default value on creation for the id field.
	expense.DefaultID = expenseDescID.Default.(func() uuid.UUID)
	mileagelogFields := schema.MileageLog{}.Fields()
	_ = mileagelogFields
	// mileagelogDescLogDate is the schema descriptor for log_date field.
	mileagelogDescLogDate := mileagelogFields[3].Descriptor()
	// mileagelog.DefaultLogDate holds the default value on creation for the log_date field.
	mileagelog.DefaultLogDate = mileagelogDescLogDate.Default.(string)
	// mileagelogDescStartOdometer is the schema descriptor for start_odometer field.
	mileagelogDescStartOdometer := mileagelogFields[4].Descriptor()
	// mileagelog.DefaultStartOdometer holds the default value on creation for the start_odometer field.
	mileagelog.DefaultStartOdometer = mileagelogDescStartOdometer.Default.(string)
	// mileagelogDescEndOdometer is the schema descriptor for end_odometer field.
	mileagelogDescEndOdometer := mileagelogFields[5].Descriptor()
	// mileagelog.DefaultEndOdometer holds the default value on creation for the end_odometer field.
	mileagelog.DefaultEndOdometer = mileagelogDescEndOdometer.Default.(string)
	// mileagelogDescStartImagePath is the schema descriptor for start_image_path field.
	mileagelogDescStartImagePath := mileagelogFields[6].Descriptor()
	// mileagelog.DefaultStartImagePath holds the default value on creation for the start_image_path field.
	mileagelog.DefaultStartImagePath = mileagelogDescStartImagePath.Default.(string)
	// mileagelogDescEndImagePath is the schema descriptor for end_image_path field.
	mileagelogDescEndImagePath := mileagelogFields[7].Descriptor()
	// mileagelog.DefaultEndImagePath holds the default value on creation for the end_image_path field.
	mileagelog.DefaultEndImagePath = mileagelogDescEndImagePath.Default.(string)
	// mileagelogDescStatus is the schema descriptor for status field.
	mileagelogDescStatus := mileagelogFields[8].Descriptor()
	// mileagelog.DefaultStatus holds the default value on creation for the status field.
	mileagelog.DefaultStatus = mileagelogDescStatus.Default.(string)
	// mileagelog.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	mileagelog.StatusValidator = mileagelogDescStatus.Validators[0].(func(string) error)
	// mileagelogDescCreatedAt is the schema descriptor for created_at field.
	mileagelogDescCreatedAt := mileagelogFields[10].Descriptor()
	// mileagelog.DefaultCreatedAt holds the default value on creation for the created_at field.
	mileagelog.DefaultCreatedAt = mileagelogDescCreatedAt.Default.(func() time.Time)
	// mileagelogDescUpdatedAt is the schema descriptor for updated_at field.
	mileagelogDescUpdatedAt := mileagelogFields[11].Descriptor()
	// mileagelog.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	mileagelog.DefaultUpdatedAt = mileagelogDescUpdatedAt.Default.(func() time.Time)
	// mileagelog.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	mileagelog.UpdateDefaultUpdatedAt = mileagelogDescUpdatedAt.UpdateDefault.(func() time.Time)
	// mileagelogDescID is the schema descriptor for id field.
	mileagelogDescID := mileagelogFields[0].Descriptor()
	// mileagelog.DefaultID holds the default value on creation for the id field.
	mileagelog.DefaultID = mileagelogDescID.Default.(func() uuid.UUID)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescKind is the schema descriptor for kind field.
	taskDescKind := taskFields[2].Descriptor()
	// task.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	task.KindValidator = func() func(string) error {
		validators := taskDescKind.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(kind string) error {
			for _, fn := range fns {
				if err := fn(kind); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// taskDescStatus is the schema descriptor for status field.
	taskDescStatus := taskFields[3].Descriptor()
	// task.DefaultStatus holds the default value on creation for the status field.
	task.DefaultStatus = taskDescStatus.Default.(string)
	// task.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	task.StatusValidator = taskDescStatus.Validators[0].(func(string) error)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[7].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[8].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
	// taskDescID is the schema descriptor for id field.
	taskDescID := taskFields[0].Descriptor()
	// task.DefaultID holds the default value on creation for the id field.
	task.DefaultID = taskDescID.Default.(func() uuid.UUID)
}
