// Code generated by ent, DO NOT EDIT.

package mileagelog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the mileagelog type in the database.
	Label = "mileage_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTripID holds the string denoting the trip_id field in the database.
	FieldTripID = "trip_id"
	// FieldLogDate holds the string denoting the log_date field in the database.
	FieldLogDate = "log_date"
	// FieldStartOdometer holds the string denoting the start_odometer field in the database.
	FieldStartOdometer = "start_odometer"
	// FieldEndOdometer holds the string denoting the end_odometer field in the database.
	FieldEndOdometer = "end_odometer"
	// FieldStartImagePath holds the string denoting the start_image_path field in the database.
	FieldStartImagePath = "start_image_path"
	// FieldEndImagePath holds the string denoting the end_image_path field in the database.
	FieldEndImagePath = "end_image_path"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldOcrError holds the string denoting the ocr_error field in the database.
	FieldOcrError = "ocr_error"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the mileagelog in the database.
	Table = "mileage_logs"
)

// Columns holds all SQL columns for mileagelog fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldTripID,
	FieldLogDate,
	FieldStartOdometer,
	FieldEndOdometer,
	FieldStartImagePath,
	FieldEndImagePath,
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
	// DefaultLogDate holds the default value on creation for the "log_date" field.
	DefaultLogDate string
	// DefaultStartOdometer holds the default value on creation for the "start_odometer" field.
	DefaultStartOdometer string
	// DefaultEndOdometer holds the default value on creation for the "end_odometer" field.
	DefaultEndOdometer string
	// DefaultStartImagePath holds the default value on creation for the "start_image_path" field.
	DefaultStartImagePath string
	// DefaultEndImagePath holds the default value on creation for the "end_image_path" field.
	DefaultEndImagePath string
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

// OrderOption defines the ordering options for the MileageLog queries.
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

// ByLogDate orders the results by the log_date field.
func ByLogDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLogDate, opts...).ToFunc()
}

// ByStartOdometer orders the results by the start_odometer field.
func ByStartOdometer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartOdometer, opts...).ToFunc()
}

// ByEndOdometer orders the results by the end_odometer field.
func ByEndOdometer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndOdometer, opts...).ToFunc()
}

// ByStartImagePath orders the results by the start_image_path field.
func ByStartImagePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartImagePath, opts...).ToFunc()
}

// ByEndImagePath orders the results by the end_image_path field.
func ByEndImagePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndImagePath, opts...).ToFunc()
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
