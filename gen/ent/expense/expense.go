// Code generated by ent, DO NOT EDIT.

package expense

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the expense type in the database.
	Label = "expense"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTripID holds the string denoting the trip_id field in the database.
	FieldTripID = "trip_id"
	// FieldVendor holds the string denoting the vendor field in the database.
	FieldVendor = "vendor"
	// FieldTxDate holds the string denoting the tx_date field in the database.
	FieldTxDate = "tx_date"
	// FieldCost holds the string denoting the cost field in the database.
	FieldCost = "cost"
	// FieldCurrency holds the string denoting the currency field in the database.
	FieldCurrency = "currency"
	// FieldLocation holds the string denoting the location field in the database.
	FieldLocation = "location"
	// FieldExpenseType holds the string denoting the expense_type field in the database.
	FieldExpenseType = "expense_type"
	// FieldComments holds the string denoting the comments field in the database.
	FieldComments = "comments"
	// FieldReceiptPath holds the string denoting the receipt_path field in the database.
	FieldReceiptPath = "receipt_path"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldOcrError holds the string denoting the ocr_error field in the database.
	FieldOcrError = "ocr_error"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the expense in the database.
	Table = "expenses"
)

// Columns holds all SQL columns for expense fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldTripID,
	FieldVendor,
	FieldTxDate,
	FieldCost,
	FieldCurrency,
	FieldLocation,
	FieldExpenseType,
	FieldComments,
	FieldReceiptPath,
	FieldStatus,
	FieldOcrError,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultVendor holds the default value on creation for the "vendor" field.
	DefaultVendor string
	// DefaultTxDate holds the default value on creation for the "tx_date" field.
	DefaultTxDate string
	// DefaultCost holds the default value on creation for the "cost" field.
	DefaultCost string
	// DefaultCurrency holds the default value on creation for the "currency" field.
	DefaultCurrency string
	// DefaultLocation holds the default value on creation for the "location" field.
	DefaultLocation string
	// DefaultExpenseType holds the default value on creation for the "expense_type" field.
	DefaultExpenseType string
	// DefaultComments holds the default value on creation for the "comments" field.
	DefaultComments string
	// DefaultReceiptPath holds the default value on creation for the "receipt_path" field.
	DefaultReceiptPath string
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Expense queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTripID orders the results by the trip_id field.
func ByTripID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTripID, opts...).ToFunc()
}

// ByVendor orders the results by the vendor field.
func ByVendor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVendor, opts...).ToFunc()
}

// ByTxDate orders the results by the tx_date field.
func ByTxDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTxDate, opts...).ToFunc()
}

// ByCost orders the results by the cost field.
func ByCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCost, opts...).ToFunc()
}

// ByCurrency orders the results by the currency field.
func ByCurrency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrency, opts...).ToFunc()
}

// ByLocation orders the results by the location field.
func ByLocation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocation, opts...).ToFunc()
}

// ByExpenseType orders the results by the expense_type field.
func ByExpenseType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpenseType, opts...).ToFunc()
}

// ByComments orders the results by the comments field.
func ByComments(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComments, opts...).ToFunc()
}

// ByReceiptPath orders the results by the receipt_path field.
func ByReceiptPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReceiptPath, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByOcrError orders the results by the ocr_error field.
func ByOcrError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOcrError, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
