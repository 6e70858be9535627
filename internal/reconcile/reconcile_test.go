package reconcile

import (
	"encoding/json"
	"testing"

	"github.com/oghenetejiriorukpegmail/expense-tracker/constants"
	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/entity"
)

func placeholderExpense() *entity.Expense {
	return &entity.Expense{
		Vendor:      constants.PlaceholderVendor,
		Cost:        "0",
		Currency:    "USD",
		Location:    constants.PlaceholderLocation,
		ExpenseType: constants.PlaceholderType,
	}
}

func TestMergeExpenseFillsPlaceholders(t *testing.T) {
	fields := map[string]any{
		"vendor":   "City Cabs",
		"cost":     json.Number("45.5"),
		"date":     "2024-03-15",
		"type":     "Transportation",
		"location": "New York, NY",
	}

	changed := MergeExpense(placeholderExpense(), fields)

	want := map[string]string{
		"vendor":       "City Cabs",
		"cost":         "45.50",
		"tx_date":      "2024-03-15",
		"expense_type": "Transportation",
		"location":     "New York, NY",
	}
	for col, val := range want {
		if changed[col] != val {
			t.Errorf("changed[%q] = %q, want %q", col, changed[col], val)
		}
	}
	if len(changed) != len(want) {
		t.Errorf("changed has %d entries, want %d: %v", len(changed), len(want), changed)
	}
}

func TestMergeExpenseNeverRegressesUserData(t *testing.T) {
	current := placeholderExpense()
	current.Vendor = "Acme Corp"
	current.Cost = "12.00"
	current.TxDate = "2024-01-01"

	fields := map[string]any{
		"vendor": "Wrong Vendor Inc",
		"cost":   json.Number("99.99"),
		"date":   "2024-12-31",
		"type":   "Meals",
	}

	changed := MergeExpense(current, fields)

	for _, col := range []string{"vendor", "cost", "tx_date"} {
		if _, ok := changed[col]; ok {
			t.Errorf("changed[%q] present, user data must not be overwritten", col)
		}
	}
	if changed["expense_type"] != "Meals" {
		t.Errorf("expense_type = %q, want Meals to fill the placeholder", changed["expense_type"])
	}
}

func TestMergeExpenseCurrencyDefaultIsOverwritable(t *testing.T) {
	current := placeholderExpense() // currency seeded to USD
	changed := MergeExpense(current, map[string]any{"currency": "EUR"})
	if changed["currency"] != "EUR" {
		t.Errorf("currency = %q, want EUR over the seeded USD default", changed["currency"])
	}

	current.Currency = "CAD"
	changed = MergeExpense(current, map[string]any{"currency": "EUR"})
	if _, ok := changed["currency"]; ok {
		t.Error("a user-chosen currency must not be overwritten")
	}
}

func TestMergeExpenseIgnoresUnknownAndEmptyFields(t *testing.T) {
	changed := MergeExpense(placeholderExpense(), map[string]any{
		"vendor":     "   ",
		"confidence": json.Number("0.92"),
		"cost":       nil,
	})
	if len(changed) != 0 {
		t.Errorf("changed = %v, want empty", changed)
	}
}

func TestMergeOdometer(t *testing.T) {
	log := &entity.MileageLog{}

	reading, settable, err := MergeOdometer(log, "start", map[string]any{"reading": json.Number("45231.5")})
	if err != nil {
		t.Fatalf("MergeOdometer returned error: %v", err)
	}
	if !settable {
		t.Fatal("expected a settable reading for an empty field")
	}
	if reading != "45231.5" {
		t.Errorf("reading = %q, want 45231.5", reading)
	}
}

func TestMergeOdometerKeepsExistingReading(t *testing.T) {
	log := &entity.MileageLog{StartOdometer: "45000"}

	_, settable, err := MergeOdometer(log, "start", map[string]any{"reading": json.Number("45231.5")})
	if err != nil {
		t.Fatalf("MergeOdometer returned error: %v", err)
	}
	if settable {
		t.Error("an existing reading must never be overwritten")
	}
}

func TestMergeOdometerMissingReading(t *testing.T) {
	log := &entity.MileageLog{}
	for _, fields := range []map[string]any{
		{},
		{"reading": nil},
		{"reading": map[string]any{}},
	} {
		if _, _, err := MergeOdometer(log, "end", fields); err == nil {
			t.Errorf("MergeOdometer(%v) expected error, got nil", fields)
		}
	}
}

func TestMergeOdometerUnknownField(t *testing.T) {
	log := &entity.MileageLog{}
	if _, _, err := MergeOdometer(log, "middle", map[string]any{"reading": json.Number("1")}); err == nil {
		t.Error("expected error for unknown odometer field")
	}
}
