package reconcile

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/oghenetejiriorukpegmail/expense-tracker/constants"
	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/entity"
	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/parse"
)

// expenseRule maps one extraction key onto one expense column. The rule
// table is explicit and enumerated: only these fields are ever OCR-derived,
// and each decides for itself whether the current value is overwritable.
type expenseRule struct {
	key           string // canonical extraction key
	column        string
	current       func(e *entity.Expense) string
	isPlaceholder func(v string) bool
	convert       func(v any) (string, bool)
}

var expenseRules = []expenseRule{
	{
		key:           "vendor",
		column:        "vendor",
		current:       func(e *entity.Expense) string { return e.Vendor },
		isPlaceholder: constants.IsPlaceholder,
		convert:       stringValue,
	},
	{
		key:           "date",
		column:        "tx_date",
		current:       func(e *entity.Expense) string { return e.TxDate },
		isPlaceholder: isEmpty,
		convert:       stringValue,
	},
	{
		key:           "cost",
		column:        "cost",
		current:       func(e *entity.Expense) string { return e.Cost },
		isPlaceholder: constants.IsPlaceholderCost,
		convert:       amountValue,
	},
	{
		key:     "currency",
		column:  "currency",
		current: func(e *entity.Expense) string { return e.Currency },
		// "USD" is the seeded column default, not a user choice
		isPlaceholder: func(v string) bool { return isEmpty(v) || strings.EqualFold(v, "USD") },
		convert:       stringValue,
	},
	{
		key:           "location",
		column:        "location",
		current:       func(e *entity.Expense) string { return e.Location },
		isPlaceholder: constants.IsPlaceholder,
		convert:       stringValue,
	},
	{
		key:           "type",
		column:        "expense_type",
		current:       func(e *entity.Expense) string { return e.ExpenseType },
		isPlaceholder: constants.IsPlaceholder,
		convert:       stringValue,
	},
	{
		key:           "comments",
		column:        "comments",
		current:       func(e *entity.Expense) string { return e.Comments },
		isPlaceholder: isEmpty,
		convert:       stringValue,
	},
}

// MergeExpense decides which extracted fields may be written to the expense.
// A field is written only when the current value is empty or a placeholder
// sentinel; a genuine user-entered value always wins, even when extraction
// disagrees. The returned map is keyed by column name.
func MergeExpense(current *entity.Expense, fields map[string]any) map[string]string {
	out := make(map[string]string)
	for _, rule := range expenseRules {
		v, ok := fields[rule.key]
		if !ok || v == nil {
			continue
		}
		newVal, ok := rule.convert(v)
		if !ok || newVal == "" {
			continue
		}
		if !rule.isPlaceholder(rule.current(current)) {
			continue
		}
		out[rule.column] = newVal
	}
	return out
}

// MergeOdometer decides whether an extracted reading may be written to the
// named odometer field ("start" or "end"). An existing reading is genuine
// user data and is never overwritten.
func MergeOdometer(current *entity.MileageLog, field string, fields map[string]any) (string, bool, error) {
	v, ok := fields["reading"]
	if !ok || v == nil {
		return "", false, fmt.Errorf("%s", parse.ErrNoReading)
	}
	reading, ok := amountAsFloat(v)
	if !ok {
		return "", false, fmt.Errorf("%s", parse.ErrNoReading)
	}

	var cur string
	switch field {
	case "start":
		cur = current.StartOdometer
	case "end":
		cur = current.EndOdometer
	default:
		return "", false, fmt.Errorf("unknown odometer field %q", field)
	}
	if !isEmpty(cur) {
		return "", false, nil
	}
	return parse.FormatReading(reading), true, nil
}

func isEmpty(v string) bool { return strings.TrimSpace(v) == "" }

func stringValue(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t), true
	case json.Number:
		return t.String(), true
	case float64:
		return parse.FormatReading(t), true
	default:
		return "", false
	}
}

func amountValue(v any) (string, bool) {
	f, ok := amountAsFloat(v)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%.2f", f), true
}

func amountAsFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case float64:
		return t, true
	case string:
		f, err := parse.CleanNumber(t)
		return f, err == nil
	default:
		return 0, false
	}
}
