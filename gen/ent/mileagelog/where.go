// Code generated by ent, DO NOT EDIT.

package mileagelog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/oghenetejiriorukpegmail/expense-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldEQ(FieldUserID, v))
}

// TripID applies equality check predicate on the "trip_id" field. It's identical to TripIDEQ.
func TripID(v uuid.UUID) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldEQ(FieldTripID, v))
}

// LogDate applies equality check predicate on the "log_date" field. It's identical to LogDateEQ.
func LogDate(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldEQ(FieldLogDate, v))
}

// StartOdometer applies equality check predicate on the "start_odometer" field. It's identical to StartOdometerEQ.
func StartOdometer(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldEQ(FieldStartOdometer, v))
}

// EndOdometer applies equality check predicate on the "end_odometer" field. It's identical to EndOdometerEQ.
func EndOdometer(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldEQ(FieldEndOdometer, v))
}

// StartImagePath applies equality check predicate on the "start_image_path" field. It's identical to StartImagePathEQ.
func StartImagePath(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldEQ(FieldStartImagePath, v))
}

// EndImagePath applies equality check predicate on the "end_image_path" field. It's identical to EndImagePathEQ.
func EndImagePath(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldEQ(FieldEndImagePath, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldEQ(FieldStatus, v))
}

// OcrError applies equality check predicate on the "ocr_error" field. It's identical to OcrErrorEQ.
func OcrError(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldEQ(FieldOcrError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldLTE(FieldUserID, v))
}

// TripIDEQ applies the EQ predicate on the "trip_id" field.
func TripIDEQ(v uuid.UUID) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldEQ(FieldTripID, v))
}

// TripIDNEQ applies the NEQ predicate on the "trip_id" field.
func TripIDNEQ(v uuid.UUID) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldNEQ(FieldTripID, v))
}

// TripIDIn applies the In predicate on the "trip_id" field.
func TripIDIn(vs ...uuid.UUID) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldIn(FieldTripID, vs...))
}

// TripIDNotIn applies the NotIn predicate on the "trip_id" field.
func TripIDNotIn(vs ...uuid.UUID) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldNotIn(FieldTripID, vs...))
}

// TripIDGT applies the GT predicate on the "trip_id" field.
func TripIDGT(v uuid.UUID) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldGT(FieldTripID, v))
}

// TripIDGTE applies the GTE predicate on the "trip_id" field.
func TripIDGTE(v uuid.UUID) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldGTE(FieldTripID, v))
}

// TripIDLT applies the LT predicate on the "trip_id" field.
func TripIDLT(v uuid.UUID) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldLT(FieldTripID, v))
}

// TripIDLTE applies the LTE predicate on the "trip_id" field.
func TripIDLTE(v uuid.UUID) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldLTE(FieldTripID, v))
}

// TripIDIsNil applies the IsNil predicate on the "trip_id" field.
func TripIDIsNil() predicate.MileageLog {
	return predicate.MileageLog(sql.FieldIsNull(FieldTripID))
}

// TripIDNotNil applies the NotNil predicate on the "trip_id" field.
func TripIDNotNil() predicate.MileageLog {
	return predicate.MileageLog(sql.FieldNotNull(FieldTripID))
}

// LogDateEQ applies the EQ predicate on the "log_date" field.
func LogDateEQ(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldEQ(FieldLogDate, v))
}

// LogDateNEQ applies the NEQ predicate on the "log_date" field.
func LogDateNEQ(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldNEQ(FieldLogDate, v))
}

// LogDateIn applies the In predicate on the "log_date" field.
func LogDateIn(vs ...string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldIn(FieldLogDate, vs...))
}

// LogDateNotIn applies the NotIn predicate on the "log_date" field.
func LogDateNotIn(vs ...string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldNotIn(FieldLogDate, vs...))
}

// LogDateGT applies the GT predicate on the "log_date" field.
func LogDateGT(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldGT(FieldLogDate, v))
}

// LogDateGTE applies the GTE predicate on the "log_date" field.
func LogDateGTE(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldGTE(FieldLogDate, v))
}

// LogDateLT applies the LT predicate on the "log_date" field.
func LogDateLT(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldLT(FieldLogDate, v))
}

// LogDateLTE applies the LTE predicate on the "log_date" field.
func LogDateLTE(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldLTE(FieldLogDate, v))
}

// LogDateContains applies the Contains predicate on the "log_date" field.
func LogDateContains(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldContains(FieldLogDate, v))
}

// LogDateHasPrefix applies the HasPrefix predicate on the "log_date" field.
func LogDateHasPrefix(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldHasPrefix(FieldLogDate, v))
}

// LogDateHasSuffix applies the HasSuffix predicate on the "log_date" field.
func LogDateHasSuffix(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldHasSuffix(FieldLogDate, v))
}

// LogDateEqualFold applies the EqualFold predicate on the "log_date" field.
func LogDateEqualFold(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldEqualFold(FieldLogDate, v))
}

// LogDateContainsFold applies the ContainsFold predicate on the "log_date" field.
func LogDateContainsFold(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldContainsFold(FieldLogDate, v))
}

// StartOdometerEQ applies the EQ predicate on the "start_odometer" field.
func StartOdometerEQ(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldEQ(FieldStartOdometer, v))
}

// StartOdometerNEQ applies the NEQ predicate on the "start_odometer" field.
func StartOdometerNEQ(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldNEQ(FieldStartOdometer, v))
}

// StartOdometerIn applies the In predicate on the "start_odometer" field.
func StartOdometerIn(vs ...string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldIn(FieldStartOdometer, vs...))
}

// StartOdometerNotIn applies the NotIn predicate on the "start_odometer" field.
func StartOdometerNotIn(vs ...string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldNotIn(FieldStartOdometer, vs...))
}

// StartOdometerGT applies the GT predicate on the "start_odometer" field.
func StartOdometerGT(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldGT(FieldStartOdometer, v))
}

// StartOdometerGTE applies the GTE predicate on the "start_odometer" field.
func StartOdometerGTE(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldGTE(FieldStartOdometer, v))
}

// StartOdometerLT applies the LT predicate on the "start_odometer" field.
func StartOdometerLT(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldLT(FieldStartOdometer, v))
}

// StartOdometerLTE applies the LTE predicate on the "start_odometer" field.
func StartOdometerLTE(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldLTE(FieldStartOdometer, v))
}

// StartOdometerContains applies the Contains predicate on the "start_odometer" field.
func StartOdometerContains(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldContains(FieldStartOdometer, v))
}

// StartOdometerHasPrefix applies the HasPrefix predicate on the "start_odometer" field.
func StartOdometerHasPrefix(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldHasPrefix(FieldStartOdometer, v))
}

// StartOdometerHasSuffix applies the HasSuffix predicate on the "start_odometer" field.
func StartOdometerHasSuffix(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldHasSuffix(FieldStartOdometer, v))
}

// StartOdometerEqualFold applies the EqualFold predicate on the "start_odometer" field.
func StartOdometerEqualFold(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldEqualFold(FieldStartOdometer, v))
}

// StartOdometerContainsFold applies the ContainsFold predicate on the "start_odometer" field.
func StartOdometerContainsFold(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldContainsFold(FieldStartOdometer, v))
}

// EndOdometerEQ applies the EQ predicate on the "end_odometer" field.
func EndOdometerEQ(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldEQ(FieldEndOdometer, v))
}

// EndOdometerNEQ applies the NEQ predicate on the "end_odometer" field.
func EndOdometerNEQ(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldNEQ(FieldEndOdometer, v))
}

// EndOdometerIn applies the In predicate on the "end_odometer" field.
func EndOdometerIn(vs ...string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldIn(FieldEndOdometer, vs...))
}

// EndOdometerNotIn applies the NotIn predicate on the "end_odometer" field.
func EndOdometerNotIn(vs ...string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldNotIn(FieldEndOdometer, vs...))
}

// EndOdometerGT applies the GT predicate on the "end_odometer" field.
func EndOdometerGT(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldGT(FieldEndOdometer, v))
}

// EndOdometerGTE applies the GTE predicate on the "end_odometer" field.
func EndOdometerGTE(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldGTE(FieldEndOdometer, v))
}

// EndOdometerLT applies the LT predicate on the "end_odometer" field.
func EndOdometerLT(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldLT(FieldEndOdometer, v))
}

// EndOdometerLTE applies the LTE predicate on the "end_odometer" field.
func EndOdometerLTE(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldLTE(FieldEndOdometer, v))
}

// EndOdometerContains applies the Contains predicate on the "end_odometer" field.
func EndOdometerContains(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldContains(FieldEndOdometer, v))
}

// EndOdometerHasPrefix applies the HasPrefix predicate on the "end_odometer" field.
func EndOdometerHasPrefix(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldHasPrefix(FieldEndOdometer, v))
}

// EndOdometerHasSuffix applies the HasSuffix predicate on the "end_odometer" field.
func EndOdometerHasSuffix(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldHasSuffix(FieldEndOdometer, v))
}

// EndOdometerEqualFold applies the EqualFold predicate on the "end_odometer" field.
func EndOdometerEqualFold(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldEqualFold(FieldEndOdometer, v))
}

// EndOdometerContainsFold applies the ContainsFold predicate on the "end_odometer" field.
func EndOdometerContainsFold(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldContainsFold(FieldEndOdometer, v))
}

// StartImagePathEQ applies the EQ predicate on the "start_image_path" field.
func StartImagePathEQ(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldEQ(FieldStartImagePath, v))
}

// StartImagePathNEQ applies the NEQ predicate on the "start_image_path" field.
func StartImagePathNEQ(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldNEQ(FieldStartImagePath, v))
}

// StartImagePathIn applies the In predicate on the "start_image_path" field.
func StartImagePathIn(vs ...string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldIn(FieldStartImagePath, vs...))
}

// StartImagePathNotIn applies the NotIn predicate on the "start_image_path" field.
func StartImagePathNotIn(vs ...string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldNotIn(FieldStartImagePath, vs...))
}

// StartImagePathGT applies the GT predicate on the "start_image_path" field.
func StartImagePathGT(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldGT(FieldStartImagePath, v))
}

// StartImagePathGTE applies the GTE predicate on the "start_image_path" field.
func StartImagePathGTE(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldGTE(FieldStartImagePath, v))
}

// StartImagePathLT applies the LT predicate on the "start_image_path" field.
func StartImagePathLT(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldLT(FieldStartImagePath, v))
}

// StartImagePathLTE applies the LTE predicate on the "start_image_path" field.
func StartImagePathLTE(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldLTE(FieldStartImagePath, v))
}

// StartImagePathContains applies the Contains predicate on the "start_image_path" field.
func StartImagePathContains(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldContains(FieldStartImagePath, v))
}

// StartImagePathHasPrefix applies the HasPrefix predicate on the "start_image_path" field.
func StartImagePathHasPrefix(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldHasPrefix(FieldStartImagePath, v))
}

// StartImagePathHasSuffix applies the HasSuffix predicate on the "start_image_path" field.
func StartImagePathHasSuffix(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldHasSuffix(FieldStartImagePath, v))
}

// StartImagePathEqualFold applies the EqualFold predicate on the "start_image_path" field.
func StartImagePathEqualFold(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldEqualFold(FieldStartImagePath, v))
}

// StartImagePathContainsFold applies the ContainsFold predicate on the "start_image_path" field.
func StartImagePathContainsFold(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldContainsFold(FieldStartImagePath, v))
}

// EndImagePathEQ applies the EQ predicate on the "end_image_path" field.
func EndImagePathEQ(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldEQ(FieldEndImagePath, v))
}

// EndImagePathNEQ applies the NEQ predicate on the "end_image_path" field.
func EndImagePathNEQ(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldNEQ(FieldEndImagePath, v))
}

// EndImagePathIn applies the In predicate on the "end_image_path" field.
func EndImagePathIn(vs ...string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldIn(FieldEndImagePath, vs...))
}

// EndImagePathNotIn applies the NotIn predicate on the "end_image_path" field.
func EndImagePathNotIn(vs ...string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldNotIn(FieldEndImagePath, vs...))
}

// EndImagePathGT applies the GT predicate on the "end_image_path" field.
func EndImagePathGT(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldGT(FieldEndImagePath, v))
}

// EndImagePathGTE applies the GTE predicate on the "end_image_path" field.
func EndImagePathGTE(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldGTE(FieldEndImagePath, v))
}

// EndImagePathLT applies the LT predicate on the "end_image_path" field.
func EndImagePathLT(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldLT(FieldEndImagePath, v))
}

// EndImagePathLTE applies the LTE predicate on the "end_image_path" field.
func EndImagePathLTE(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldLTE(FieldEndImagePath, v))
}

// EndImagePathContains applies the Contains predicate on the "end_image_path" field.
func EndImagePathContains(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldContains(FieldEndImagePath, v))
}

// EndImagePathHasPrefix applies the HasPrefix predicate on the "end_image_path" field.
func EndImagePathHasPrefix(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldHasPrefix(FieldEndImagePath, v))
}

// EndImagePathHasSuffix applies the HasSuffix predicate on the "end_image_path" field.
func EndImagePathHasSuffix(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldHasSuffix(FieldEndImagePath, v))
}

// EndImagePathEqualFold applies the EqualFold predicate on the "end_image_path" field.
func EndImagePathEqualFold(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldEqualFold(FieldEndImagePath, v))
}

// EndImagePathContainsFold applies the ContainsFold predicate on the "end_image_path" field.
func EndImagePathContainsFold(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldContainsFold(FieldEndImagePath, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldContainsFold(FieldStatus, v))
}

// OcrErrorEQ applies the EQ predicate on the "ocr_error" field.
func OcrErrorEQ(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldEQ(FieldOcrError, v))
}

// OcrErrorNEQ applies the NEQ predicate on the "ocr_error" field.
func OcrErrorNEQ(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldNEQ(FieldOcrError, v))
}

// OcrErrorIn applies the In predicate on the "ocr_error" field.
func OcrErrorIn(vs ...string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldIn(FieldOcrError, vs...))
}

// OcrErrorNotIn applies the NotIn predicate on the "ocr_error" field.
func OcrErrorNotIn(vs ...string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldNotIn(FieldOcrError, vs...))
}

// OcrErrorGT applies the GT predicate on the "ocr_error" field.
func OcrErrorGT(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldGT(FieldOcrError, v))
}

// OcrErrorGTE applies the GTE predicate on the "ocr_error" field.
func OcrErrorGTE(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldGTE(FieldOcrError, v))
}

// OcrErrorLT applies the LT predicate on the "ocr_error" field.
func OcrErrorLT(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldLT(FieldOcrError, v))
}

// OcrErrorLTE applies the LTE predicate on the "ocr_error" field.
func OcrErrorLTE(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldLTE(FieldOcrError, v))
}

// OcrErrorContains applies the Contains predicate on the "ocr_error" field.
func OcrErrorContains(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldContains(FieldOcrError, v))
}

// OcrErrorHasPrefix applies the HasPrefix predicate on the "ocr_error" field.
func OcrErrorHasPrefix(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldHasPrefix(FieldOcrError, v))
}

// OcrErrorHasSuffix applies the HasSuffix predicate on the "ocr_error" field.
func OcrErrorHasSuffix(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldHasSuffix(FieldOcrError, v))
}

// OcrErrorIsNil applies the IsNil predicate on the "ocr_error" field.
func OcrErrorIsNil() predicate.MileageLog {
	return predicate.MileageLog(sql.FieldIsNull(FieldOcrError))
}

// OcrErrorNotNil applies the NotNil predicate on the "ocr_error" field.
func OcrErrorNotNil() predicate.MileageLog {
	return predicate.MileageLog(sql.FieldNotNull(FieldOcrError))
}

// OcrErrorEqualFold applies the EqualFold predicate on the "ocr_error" field.
func OcrErrorEqualFold(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldEqualFold(FieldOcrError, v))
}

// OcrErrorContainsFold applies the ContainsFold predicate on the "ocr_error" field.
func OcrErrorContainsFold(v string) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldContainsFold(FieldOcrError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.MileageLog {
	return predicate.MileageLog(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MileageLog) predicate.MileageLog {
	return predicate.MileageLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MileageLog) predicate.MileageLog {
	return predicate.MileageLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MileageLog) predicate.MileageLog {
	return predicate.MileageLog(sql.NotPredicates(p))
}
