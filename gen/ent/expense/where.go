// Code generated by ent, DO NOT EDIT.

package expense

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/oghenetejiriorukpegmail/expense-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Expense {
	return predicate.Expense(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Expense {
	return predicate.Expense(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Expense {
	return predicate.Expense(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Expense {
	return predicate.Expense(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Expense {
	return predicate.Expense(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Expense {
	return predicate.Expense(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Expense {
	return predicate.Expense(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldUserID, v))
}

// TripID applies equality check predicate on the "trip_id" field. It's identical to TripIDEQ.
func TripID(v uuid.UUID) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldTripID, v))
}

// Vendor applies equality check predicate on the "vendor" field. It's identical to VendorEQ.
func Vendor(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldVendor, v))
}

// TxDate applies equality check predicate on the "tx_date" field. It's identical to TxDateEQ.
func TxDate(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldTxDate, v))
}

// Cost applies equality check predicate on the "cost" field. It's identical to CostEQ.
func Cost(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldCost, v))
}

// Currency applies equality check predicate on the "currency" field. It's identical to CurrencyEQ.
func Currency(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldCurrency, v))
}

// Location applies equality check predicate on the "location" field. It's identical to LocationEQ.
func Location(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldLocation, v))
}

// ExpenseType applies equality check predicate on the "expense_type" field. It's identical to ExpenseTypeEQ.
func ExpenseType(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldExpenseType, v))
}

// Comments applies equality check predicate on the "comments" field. It's identical to CommentsEQ.
func Comments(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldComments, v))
}

// ReceiptPath applies equality check predicate on the "receipt_path" field. It's identical to ReceiptPathEQ.
func ReceiptPath(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldReceiptPath, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldStatus, v))
}

// OcrError applies equality check predicate on the "ocr_error" field. It's identical to OcrErrorEQ.
func OcrError(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldOcrError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.Expense {
	return predicate.Expense(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.Expense {
	return predicate.Expense(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.Expense {
	return predicate.Expense(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.Expense {
	return predicate.Expense(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.Expense {
	return predicate.Expense(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.Expense {
	return predicate.Expense(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.Expense {
	return predicate.Expense(sql.FieldLTE(FieldUserID, v))
}

// TripIDEQ applies the EQ predicate on the "trip_id" field.
func TripIDEQ(v uuid.UUID) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldTripID, v))
}

// TripIDNEQ applies the NEQ predicate on the "trip_id" field.
func TripIDNEQ(v uuid.UUID) predicate.Expense {
	return predicate.Expense(sql.FieldNEQ(FieldTripID, v))
}

// TripIDIn applies the In predicate on the "trip_id" field.
func TripIDIn(vs ...uuid.UUID) predicate.Expense {
	return predicate.Expense(sql.FieldIn(FieldTripID, vs...))
}

// TripIDNotIn applies the NotIn predicate on the "trip_id" field.
func TripIDNotIn(vs ...uuid.UUID) predicate.Expense {
	return predicate.Expense(sql.FieldNotIn(FieldTripID, vs...))
}

// TripIDGT applies the GT predicate on the "trip_id" field.
func TripIDGT(v uuid.UUID) predicate.Expense {
	return predicate.Expense(sql.FieldGT(FieldTripID, v))
}

// TripIDGTE applies the GTE predicate on the "trip_id" field.
func TripIDGTE(v uuid.UUID) predicate.Expense {
	return predicate.Expense(sql.FieldGTE(FieldTripID, v))
}

// TripIDLT applies the LT predicate on the "trip_id" field.
func TripIDLT(v uuid.UUID) predicate.Expense {
	return predicate.Expense(sql.FieldLT(FieldTripID, v))
}

// TripIDLTE applies the LTE predicate on the "trip_id" field.
func TripIDLTE(v uuid.UUID) predicate.Expense {
	return predicate.Expense(sql.FieldLTE(FieldTripID, v))
}

// TripIDIsNil applies the IsNil predicate on the "trip_id" field.
func TripIDIsNil() predicate.Expense {
	return predicate.Expense(sql.FieldIsNull(FieldTripID))
}

// TripIDNotNil applies the NotNil predicate on the "trip_id" field.
func TripIDNotNil() predicate.Expense {
	return predicate.Expense(sql.FieldNotNull(FieldTripID))
}

// VendorEQ applies the EQ predicate on the "vendor" field.
func VendorEQ(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldVendor, v))
}

// VendorNEQ applies the NEQ predicate on the "vendor" field.
func VendorNEQ(v string) predicate.Expense {
	return predicate.Expense(sql.FieldNEQ(FieldVendor, v))
}

// VendorIn applies the In predicate on the "vendor" field.
func VendorIn(vs ...string) predicate.Expense {
	return predicate.Expense(sql.FieldIn(FieldVendor, vs...))
}

// VendorNotIn applies the NotIn predicate on the "vendor" field.
func VendorNotIn(vs ...string) predicate.Expense {
	return predicate.Expense(sql.FieldNotIn(FieldVendor, vs...))
}

// VendorGT applies the GT predicate on the "vendor" field.
func VendorGT(v string) predicate.Expense {
	return predicate.Expense(sql.FieldGT(FieldVendor, v))
}

// VendorGTE applies the GTE predicate on the "vendor" field.
func VendorGTE(v string) predicate.Expense {
	return predicate.Expense(sql.FieldGTE(FieldVendor, v))
}

// VendorLT applies the LT predicate on the "vendor" field.
func VendorLT(v string) predicate.Expense {
	return predicate.Expense(sql.FieldLT(FieldVendor, v))
}

// VendorLTE applies the LTE predicate on the "vendor" field.
func VendorLTE(v string) predicate.Expense {
	return predicate.Expense(sql.FieldLTE(FieldVendor, v))
}

// VendorContains applies the Contains predicate on the "vendor" field.
func VendorContains(v string) predicate.Expense {
	return predicate.Expense(sql.FieldContains(FieldVendor, v))
}

// VendorHasPrefix applies the HasPrefix predicate on the "vendor" field.
func VendorHasPrefix(v string) predicate.Expense {
	return predicate.Expense(sql.FieldHasPrefix(FieldVendor, v))
}

// VendorHasSuffix applies the HasSuffix predicate on the "vendor" field.
func VendorHasSuffix(v string) predicate.Expense {
	return predicate.Expense(sql.FieldHasSuffix(FieldVendor, v))
}

// VendorEqualFold applies the EqualFold predicate on the "vendor" field.
func VendorEqualFold(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEqualFold(FieldVendor, v))
}

// VendorContainsFold applies the ContainsFold predicate on the "vendor" field.
func VendorContainsFold(v string) predicate.Expense {
	return predicate.Expense(sql.FieldContainsFold(FieldVendor, v))
}

// TxDateEQ applies the EQ predicate on the "tx_date" field.
func TxDateEQ(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldTxDate, v))
}

// TxDateNEQ applies the NEQ predicate on the "tx_date" field.
func TxDateNEQ(v string) predicate.Expense {
	return predicate.Expense(sql.FieldNEQ(FieldTxDate, v))
}

// TxDateIn applies the In predicate on the "tx_date" field.
func TxDateIn(vs ...string) predicate.Expense {
	return predicate.Expense(sql.FieldIn(FieldTxDate, vs...))
}

// TxDateNotIn applies the NotIn predicate on the "tx_date" field.
func TxDateNotIn(vs ...string) predicate.Expense {
	return predicate.Expense(sql.FieldNotIn(FieldTxDate, vs...))
}

// TxDateGT applies the GT predicate on the "tx_date" field.
func TxDateGT(v string) predicate.Expense {
	return predicate.Expense(sql.FieldGT(FieldTxDate, v))
}

// TxDateGTE applies the GTE predicate on the "tx_date" field.
func TxDateGTE(v string) predicate.Expense {
	return predicate.Expense(sql.FieldGTE(FieldTxDate, v))
}

// TxDateLT applies the LT predicate on the "tx_date" field.
func TxDateLT(v string) predicate.Expense {
	return predicate.Expense(sql.FieldLT(FieldTxDate, v))
}

// TxDateLTE applies the LTE predicate on the "tx_date" field.
func TxDateLTE(v string) predicate.Expense {
	return predicate.Expense(sql.FieldLTE(FieldTxDate, v))
}

// TxDateContains applies the Contains predicate on the "tx_date" field.
func TxDateContains(v string) predicate.Expense {
	return predicate.Expense(sql.FieldContains(FieldTxDate, v))
}

// TxDateHasPrefix applies the HasPrefix predicate on the "tx_date" field.
func TxDateHasPrefix(v string) predicate.Expense {
	return predicate.Expense(sql.FieldHasPrefix(FieldTxDate, v))
}

// TxDateHasSuffix applies the HasSuffix predicate on the "tx_date" field.
func TxDateHasSuffix(v string) predicate.Expense {
	return predicate.Expense(sql.FieldHasSuffix(FieldTxDate, v))
}

// TxDateEqualFold applies the EqualFold predicate on the "tx_date" field.
func TxDateEqualFold(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEqualFold(FieldTxDate, v))
}

// TxDateContainsFold applies the ContainsFold predicate on the "tx_date" field.
func TxDateContainsFold(v string) predicate.Expense {
	return predicate.Expense(sql.FieldContainsFold(FieldTxDate, v))
}

// CostEQ applies the EQ predicate on the "cost" field.
func CostEQ(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldCost, v))
}

// CostNEQ applies the NEQ predicate on the "cost" field.
func CostNEQ(v string) predicate.Expense {
	return predicate.Expense(sql.FieldNEQ(FieldCost, v))
}

// CostIn applies the In predicate on the "cost" field.
func CostIn(vs ...string) predicate.Expense {
	return predicate.Expense(sql.FieldIn(FieldCost, vs...))
}

// CostNotIn applies the NotIn predicate on the "cost" field.
func CostNotIn(vs ...string) predicate.Expense {
	return predicate.Expense(sql.FieldNotIn(FieldCost, vs...))
}

// CostGT applies the GT predicate on the "cost" field.
func CostGT(v string) predicate.Expense {
	return predicate.Expense(sql.FieldGT(FieldCost, v))
}

// CostGTE applies the GTE predicate on the "cost" field.
func CostGTE(v string) predicate.Expense {
	return predicate.Expense(sql.FieldGTE(FieldCost, v))
}

// CostLT applies the LT predicate on the "cost" field.
func CostLT(v string) predicate.Expense {
	return predicate.Expense(sql.FieldLT(FieldCost, v))
}

// CostLTE applies the LTE predicate on the "cost" field.
func CostLTE(v string) predicate.Expense {
	return predicate.Expense(sql.FieldLTE(FieldCost, v))
}

// CostContains applies the Contains predicate on the "cost" field.
func CostContains(v string) predicate.Expense {
	return predicate.Expense(sql.FieldContains(FieldCost, v))
}

// CostHasPrefix applies the HasPrefix predicate on the "cost" field.
func CostHasPrefix(v string) predicate.Expense {
	return predicate.Expense(sql.FieldHasPrefix(FieldCost, v))
}

// CostHasSuffix applies the HasSuffix predicate on the "cost" field.
func CostHasSuffix(v string) predicate.Expense {
	return predicate.Expense(sql.FieldHasSuffix(FieldCost, v))
}

// CostEqualFold applies the EqualFold predicate on the "cost" field.
func CostEqualFold(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEqualFold(FieldCost, v))
}

// CostContainsFold applies the ContainsFold predicate on the "cost" field.
func CostContainsFold(v string) predicate.Expense {
	return predicate.Expense(sql.FieldContainsFold(FieldCost, v))
}

// CurrencyEQ applies the EQ predicate on the "currency" field.
func CurrencyEQ(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldCurrency, v))
}

// CurrencyNEQ applies the NEQ predicate on the "currency" field.
func CurrencyNEQ(v string) predicate.Expense {
	return predicate.Expense(sql.FieldNEQ(FieldCurrency, v))
}

// CurrencyIn applies the In predicate on the "currency" field.
func CurrencyIn(vs ...string) predicate.Expense {
	return predicate.Expense(sql.FieldIn(FieldCurrency, vs...))
}

// CurrencyNotIn applies the NotIn predicate on the "currency" field.
func CurrencyNotIn(vs ...string) predicate.Expense {
	return predicate.Expense(sql.FieldNotIn(FieldCurrency, vs...))
}

// CurrencyGT applies the GT predicate on the "currency" field.
func CurrencyGT(v string) predicate.Expense {
	return predicate.Expense(sql.FieldGT(FieldCurrency, v))
}

// CurrencyGTE applies the GTE predicate on the "currency" field.
func CurrencyGTE(v string) predicate.Expense {
	return predicate.Expense(sql.FieldGTE(FieldCurrency, v))
}

// CurrencyLT applies the LT predicate on the "currency" field.
func CurrencyLT(v string) predicate.Expense {
	return predicate.Expense(sql.FieldLT(FieldCurrency, v))
}

// CurrencyLTE applies the LTE predicate on the "currency" field.
func CurrencyLTE(v string) predicate.Expense {
	return predicate.Expense(sql.FieldLTE(FieldCurrency, v))
}

// CurrencyContains applies the Contains predicate on the "currency" field.
func CurrencyContains(v string) predicate.Expense {
	return predicate.Expense(sql.FieldContains(FieldCurrency, v))
}

// CurrencyHasPrefix applies the HasPrefix predicate on the "currency" field.
func CurrencyHasPrefix(v string) predicate.Expense {
	return predicate.Expense(sql.FieldHasPrefix(FieldCurrency, v))
}

// CurrencyHasSuffix applies the HasSuffix predicate on the "currency" field.
func CurrencyHasSuffix(v string) predicate.Expense {
	return predicate.Expense(sql.FieldHasSuffix(FieldCurrency, v))
}

// CurrencyEqualFold applies the EqualFold predicate on the "currency" field.
func CurrencyEqualFold(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEqualFold(FieldCurrency, v))
}

// CurrencyContainsFold applies the ContainsFold predicate on the "currency" field.
func CurrencyContainsFold(v string) predicate.Expense {
	return predicate.Expense(sql.FieldContainsFold(FieldCurrency, v))
}

// LocationEQ applies the EQ predicate on the "location" field.
func LocationEQ(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldLocation, v))
}

// LocationNEQ applies the NEQ predicate on the "location" field.
func LocationNEQ(v string) predicate.Expense {
	return predicate.Expense(sql.FieldNEQ(FieldLocation, v))
}

// LocationIn applies the In predicate on the "location" field.
func LocationIn(vs ...string) predicate.Expense {
	return predicate.Expense(sql.FieldIn(FieldLocation, vs...))
}

// LocationNotIn applies the NotIn predicate on the "location" field.
func LocationNotIn(vs ...string) predicate.Expense {
	return predicate.Expense(sql.FieldNotIn(FieldLocation, vs...))
}

// LocationGT applies the GT predicate on the "location" field.
func LocationGT(v string) predicate.Expense {
	return predicate.Expense(sql.FieldGT(FieldLocation, v))
}

// LocationGTE applies the GTE predicate on the "location" field.
func LocationGTE(v string) predicate.Expense {
	return predicate.Expense(sql.FieldGTE(FieldLocation, v))
}

// LocationLT applies the LT predicate on the "location" field.
func LocationLT(v string) predicate.Expense {
	return predicate.Expense(sql.FieldLT(FieldLocation, v))
}

// LocationLTE applies the LTE predicate on the "location" field.
func LocationLTE(v string) predicate.Expense {
	return predicate.Expense(sql.FieldLTE(FieldLocation, v))
}

// LocationContains applies the Contains predicate on the "location" field.
func LocationContains(v string) predicate.Expense {
	return predicate.Expense(sql.FieldContains(FieldLocation, v))
}

// LocationHasPrefix applies the HasPrefix predicate on the "location" field.
func LocationHasPrefix(v string) predicate.Expense {
	return predicate.Expense(sql.FieldHasPrefix(FieldLocation, v))
}

// LocationHasSuffix applies the HasSuffix predicate on the "location" field.
func LocationHasSuffix(v string) predicate.Expense {
	return predicate.Expense(sql.FieldHasSuffix(FieldLocation, v))
}

// LocationEqualFold applies the EqualFold predicate on the "location" field.
func LocationEqualFold(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEqualFold(FieldLocation, v))
}

// LocationContainsFold applies the ContainsFold predicate on the "location" field.
func LocationContainsFold(v string) predicate.Expense {
	return predicate.Expense(sql.FieldContainsFold(FieldLocation, v))
}

// ExpenseTypeEQ applies the EQ predicate on the "expense_type" field.
func ExpenseTypeEQ(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldExpenseType, v))
}

// ExpenseTypeNEQ applies the NEQ predicate on the "expense_type" field.
func ExpenseTypeNEQ(v string) predicate.Expense {
	return predicate.Expense(sql.FieldNEQ(FieldExpenseType, v))
}

// ExpenseTypeIn applies the In predicate on the "expense_type" field.
func ExpenseTypeIn(vs ...string) predicate.Expense {
	return predicate.Expense(sql.FieldIn(FieldExpenseType, vs...))
}

// ExpenseTypeNotIn applies the NotIn predicate on the "expense_type" field.
func ExpenseTypeNotIn(vs ...string) predicate.Expense {
	return predicate.Expense(sql.FieldNotIn(FieldExpenseType, vs...))
}

// ExpenseTypeGT applies the GT predicate on the "expense_type" field.
func ExpenseTypeGT(v string) predicate.Expense {
	return predicate.Expense(sql.FieldGT(FieldExpenseType, v))
}

// ExpenseTypeGTE applies the GTE predicate on the "expense_type" field.
func ExpenseTypeGTE(v string) predicate.Expense {
	return predicate.Expense(sql.FieldGTE(FieldExpenseType, v))
}

// ExpenseTypeLT applies the LT predicate on the "expense_type" field.
func ExpenseTypeLT(v string) predicate.Expense {
	return predicate.Expense(sql.FieldLT(FieldExpenseType, v))
}

// ExpenseTypeLTE applies the LTE predicate on the "expense_type" field.
func ExpenseTypeLTE(v string) predicate.Expense {
	return predicate.Expense(sql.FieldLTE(FieldExpenseType, v))
}

// ExpenseTypeContains applies the Contains predicate on the "expense_type" field.
func ExpenseTypeContains(v string) predicate.Expense {
	return predicate.Expense(sql.FieldContains(FieldExpenseType, v))
}

// ExpenseTypeHasPrefix applies the HasPrefix predicate on the "expense_type" field.
func ExpenseTypeHasPrefix(v string) predicate.Expense {
	return predicate.Expense(sql.FieldHasPrefix(FieldExpenseType, v))
}

// ExpenseTypeHasSuffix applies the HasSuffix predicate on the "expense_type" field.
func ExpenseTypeHasSuffix(v string) predicate.Expense {
	return predicate.Expense(sql.FieldHasSuffix(FieldExpenseType, v))
}

// ExpenseTypeEqualFold applies the EqualFold predicate on the "expense_type" field.
func ExpenseTypeEqualFold(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEqualFold(FieldExpenseType, v))
}

// ExpenseTypeContainsFold applies the ContainsFold predicate on the "expense_type" field.
func ExpenseTypeContainsFold(v string) predicate.Expense {
	return predicate.Expense(sql.FieldContainsFold(FieldExpenseType, v))
}

// CommentsEQ applies the EQ predicate on the "comments" field.
func CommentsEQ(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldComments, v))
}

// CommentsNEQ applies the NEQ predicate on the "comments" field.
func CommentsNEQ(v string) predicate.Expense {
	return predicate.Expense(sql.FieldNEQ(FieldComments, v))
}

// CommentsIn applies the In predicate on the "comments" field.
func CommentsIn(vs ...string) predicate.Expense {
	return predicate.Expense(sql.FieldIn(FieldComments, vs...))
}

// CommentsNotIn applies the NotIn predicate on the "comments" field.
func CommentsNotIn(vs ...string) predicate.Expense {
	return predicate.Expense(sql.FieldNotIn(FieldComments, vs...))
}

// CommentsGT applies the GT predicate on the "comments" field.
func CommentsGT(v string) predicate.Expense {
	return predicate.Expense(sql.FieldGT(FieldComments, v))
}

// CommentsGTE applies the GTE predicate on the "comments" field.
func CommentsGTE(v string) predicate.Expense {
	return predicate.Expense(sql.FieldGTE(FieldComments, v))
}

// CommentsLT applies the LT predicate on the "comments" field.
func CommentsLT(v string) predicate.Expense {
	return predicate.Expense(sql.FieldLT(FieldComments, v))
}

// CommentsLTE applies the LTE predicate on the "comments" field.
func CommentsLTE(v string) predicate.Expense {
	return predicate.Expense(sql.FieldLTE(FieldComments, v))
}

// CommentsContains applies the Contains predicate on the "comments" field.
func CommentsContains(v string) predicate.Expense {
	return predicate.Expense(sql.FieldContains(FieldComments, v))
}

// CommentsHasPrefix applies the HasPrefix predicate on the "comments" field.
func CommentsHasPrefix(v string) predicate.Expense {
	return predicate.Expense(sql.FieldHasPrefix(FieldComments, v))
}

// CommentsHasSuffix applies the HasSuffix predicate on the "comments" field.
func CommentsHasSuffix(v string) predicate.Expense {
	return predicate.Expense(sql.FieldHasSuffix(FieldComments, v))
}

// CommentsEqualFold applies the EqualFold predicate on the "comments" field.
func CommentsEqualFold(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEqualFold(FieldComments, v))
}

// CommentsContainsFold applies the ContainsFold predicate on the "comments" field.
func CommentsContainsFold(v string) predicate.Expense {
	return predicate.Expense(sql.FieldContainsFold(FieldComments, v))
}

// ReceiptPathEQ applies the EQ predicate on the "receipt_path" field.
func ReceiptPathEQ(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldReceiptPath, v))
}

// ReceiptPathNEQ applies the NEQ predicate on the "receipt_path" field.
func ReceiptPathNEQ(v string) predicate.Expense {
	return predicate.Expense(sql.FieldNEQ(FieldReceiptPath, v))
}

// ReceiptPathIn applies the In predicate on the "receipt_path" field.
func ReceiptPathIn(vs ...string) predicate.Expense {
	return predicate.Expense(sql.FieldIn(FieldReceiptPath, vs...))
}

// ReceiptPathNotIn applies the NotIn predicate on the "receipt_path" field.
func ReceiptPathNotIn(vs ...string) predicate.Expense {
	return predicate.Expense(sql.FieldNotIn(FieldReceiptPath, vs...))
}

// ReceiptPathGT applies the GT predicate on the "receipt_path" field.
func ReceiptPathGT(v string) predicate.Expense {
	return predicate.Expense(sql.FieldGT(FieldReceiptPath, v))
}

// ReceiptPathGTE applies the GTE predicate on the "receipt_path" field.
func ReceiptPathGTE(v string) predicate.Expense {
	return predicate.Expense(sql.FieldGTE(FieldReceiptPath, v))
}

// ReceiptPathLT applies the LT predicate on the "receipt_path" field.
func ReceiptPathLT(v string) predicate.Expense {
	return predicate.Expense(sql.FieldLT(FieldReceiptPath, v))
}

// ReceiptPathLTE applies the LTE predicate on the "receipt_path" field.
func ReceiptPathLTE(v string) predicate.Expense {
	return predicate.Expense(sql.FieldLTE(FieldReceiptPath, v))
}

// ReceiptPathContains applies the Contains predicate on the "receipt_path" field.
func ReceiptPathContains(v string) predicate.Expense {
	return predicate.Expense(sql.FieldContains(FieldReceiptPath, v))
}

// ReceiptPathHasPrefix applies the HasPrefix predicate on the "receipt_path" field.
func ReceiptPathHasPrefix(v string) predicate.Expense {
	return predicate.Expense(sql.FieldHasPrefix(FieldReceiptPath, v))
}

// ReceiptPathHasSuffix applies the HasSuffix predicate on the "receipt_path" field.
func ReceiptPathHasSuffix(v string) predicate.Expense {
	return predicate.Expense(sql.FieldHasSuffix(FieldReceiptPath, v))
}

// ReceiptPathEqualFold applies the EqualFold predicate on the "receipt_path" field.
func ReceiptPathEqualFold(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEqualFold(FieldReceiptPath, v))
}

// ReceiptPathContainsFold applies the ContainsFold predicate on the "receipt_path" field.
func ReceiptPathContainsFold(v string) predicate.Expense {
	return predicate.Expense(sql.FieldContainsFold(FieldReceiptPath, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Expense {
	return predicate.Expense(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Expense {
	return predicate.Expense(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Expense {
	return predicate.Expense(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Expense {
	return predicate.Expense(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Expense {
	return predicate.Expense(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Expense {
	return predicate.Expense(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Expense {
	return predicate.Expense(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Expense {
	return predicate.Expense(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Expense {
	return predicate.Expense(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Expense {
	return predicate.Expense(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Expense {
	return predicate.Expense(sql.FieldContainsFold(FieldStatus, v))
}

// OcrErrorEQ applies the EQ predicate on the "ocr_error" field.
func OcrErrorEQ(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldOcrError, v))
}

// OcrErrorNEQ applies the NEQ predicate on the "ocr_error" field.
func OcrErrorNEQ(v string) predicate.Expense {
	return predicate.Expense(sql.FieldNEQ(FieldOcrError, v))
}

// OcrErrorIn applies the In predicate on the "ocr_error" field.
func OcrErrorIn(vs ...string) predicate.Expense {
	return predicate.Expense(sql.FieldIn(FieldOcrError, vs...))
}

// OcrErrorNotIn applies the NotIn predicate on the "ocr_error" field.
func OcrErrorNotIn(vs ...string) predicate.Expense {
	return predicate.Expense(sql.FieldNotIn(FieldOcrError, vs...))
}

// OcrErrorGT applies the GT predicate on the "ocr_error" field.
func OcrErrorGT(v string) predicate.Expense {
	return predicate.Expense(sql.FieldGT(FieldOcrError, v))
}

// OcrErrorGTE applies the GTE predicate on the "ocr_error" field.
func OcrErrorGTE(v string) predicate.Expense {
	return predicate.Expense(sql.FieldGTE(FieldOcrError, v))
}

// OcrErrorLT applies the LT predicate on the "ocr_error" field.
func OcrErrorLT(v string) predicate.Expense {
	return predicate.Expense(sql.FieldLT(FieldOcrError, v))
}

// OcrErrorLTE applies the LTE predicate on the "ocr_error" field.
func OcrErrorLTE(v string) predicate.Expense {
	return predicate.Expense(sql.FieldLTE(FieldOcrError, v))
}

// OcrErrorContains applies the Contains predicate on the "ocr_error" field.
func OcrErrorContains(v string) predicate.Expense {
	return predicate.Expense(sql.FieldContains(FieldOcrError, v))
}

// OcrErrorHasPrefix applies the HasPrefix predicate on the "ocr_error" field.
func OcrErrorHasPrefix(v string) predicate.Expense {
	return predicate.Expense(sql.FieldHasPrefix(FieldOcrError, v))
}

// OcrErrorHasSuffix applies the HasSuffix predicate on the "ocr_error" field.
func OcrErrorHasSuffix(v string) predicate.Expense {
	return predicate.Expense(sql.FieldHasSuffix(FieldOcrError, v))
}

// OcrErrorIsNil applies the IsNil predicate on the "ocr_error" field.
func OcrErrorIsNil() predicate.Expense {
	return predicate.Expense(sql.FieldIsNull(FieldOcrError))
}

// OcrErrorNotNil applies the NotNil predicate on the "ocr_error" field.
func OcrErrorNotNil() predicate.Expense {
	return predicate.Expense(sql.FieldNotNull(FieldOcrError))
}

// OcrErrorEqualFold applies the EqualFold predicate on the "ocr_error" field.
func OcrErrorEqualFold(v string) predicate.Expense {
	return predicate.Expense(sql.FieldEqualFold(FieldOcrError, v))
}

// OcrErrorContainsFold applies the ContainsFold predicate on the "ocr_error" field.
func OcrErrorContainsFold(v string) predicate.Expense {
	return predicate.Expense(sql.FieldContainsFold(FieldOcrError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Expense {
	return predicate.Expense(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Expense) predicate.Expense {
	return predicate.Expense(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Expense) predicate.Expense {
	return predicate.Expense(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Expense) predicate.Expense {
	return predicate.Expense(sql.NotPredicates(p))
}
