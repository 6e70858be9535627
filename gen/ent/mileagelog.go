// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/oghenetejiriorukpegmail/expense-tracker/gen/ent/mileagelog"
)

// MileageLog is the model entity for the MileageLog schema.
type MileageLog struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID uuid.UUID `json:"user_id,omitempty"`
	// TripID holds the value of the "trip_id" field.
	TripID *uuid.UUID `json:"trip_id,omitempty"`
	// LogDate holds the value of the "log_date" field.
	LogDate string `json:"log_date,omitempty"`
	// StartOdometer holds the value of the "start_odometer" field.
	StartOdometer string `json:"start_odometer,omitempty"`
	// EndOdometer holds the value of the "end_odometer" field.
	EndOdometer string `json:"end_odometer,omitempty"`
	// StartImagePath holds the value of the "start_image_path" field.
	StartImagePath string `json:"start_image_path,omitempty"`
	// EndImagePath holds the value of the "end_image_path" field.
	EndImagePath string `json:"end_image_path,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// OcrError holds the value of the "ocr_error" field.
	OcrError *string `json:"ocr_error,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MileageLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mileagelog.FieldTripID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case mileagelog.FieldLogDate, mileagelog.FieldStartOdometer, mileagelog.FieldEndOdometer, mileagelog.FieldStartImagePath, mileagelog.FieldEndImagePath, mileagelog.FieldStatus, mileagelog.FieldOcrError:
			values[i] = new(sql.NullString)
		case mileagelog.FieldCreatedAt, mileagelog.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case mileagelog.FieldID, mileagelog.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MileageLog fields.
func (_m *MileageLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mileagelog.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case mileagelog.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case mileagelog.FieldTripID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field trip_id", values[i])
			} else if value.Valid {
				_m.TripID = new(uuid.UUID)
				*_m.TripID = *value.S.(*uuid.UUID)
			}
		case mileagelog.FieldLogDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field log_date", values[i])
			} else if value.Valid {
				_m.LogDate = value.String
			}
		case mileagelog.FieldStartOdometer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field start_odometer", values[i])
			} else if value.Valid {
				_m.StartOdometer = value.String
			}
		case mileagelog.FieldEndOdometer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field end_odometer", values[i])
			} else if value.Valid {
				_m.EndOdometer = value.String
			}
		case mileagelog.FieldStartImagePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field start_image_path", values[i])
			} else if value.Valid {
				_m.StartImagePath = value.String
			}
		case mileagelog.FieldEndImagePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field end_image_path", values[i])
			} else if value.Valid {
				_m.EndImagePath = value.String
			}
		case mileagelog.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case mileagelog.FieldOcrError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ocr_error", values[i])
			} else if value.Valid {
				_m.OcrError = new(string)
				*_m.OcrError = value.String
			}
		case mileagelog.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case mileagelog.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MileageLog.
// This includes values selected through modifiers, order, etc.
func (_m *MileageLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MileageLog.
// Note that you need to call MileageLog.Unwrap() before calling this method if this MileageLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MileageLog) Update() *MileageLogUpdateOne {
	return NewMileageLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MileageLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MileageLog) Unwrap() *MileageLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MileageLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MileageLog) String() string {
	var builder strings.Builder
	builder.WriteString("MileageLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	if v := _m.TripID; v != nil {
		builder.WriteString("trip_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("log_date=")
	builder.WriteString(_m.LogDate)
	builder.WriteString(", ")
	builder.WriteString("start_odometer=")
	builder.WriteString(_m.StartOdometer)
	builder.WriteString(", ")
	builder.WriteString("end_odometer=")
	builder.WriteString(_m.EndOdometer)
	builder.WriteString(", ")
	builder.WriteString("start_image_path=")
	builder.WriteString(_m.StartImagePath)
	builder.WriteString(", ")
	builder.WriteString("end_image_path=")
	builder.WriteString(_m.EndImagePath)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.OcrError; v != nil {
		builder.WriteString("ocr_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MileageLogs is a parsable slice of MileageLog.
type MileageLogs []*MileageLog
