package constants

import "strings"

// Placeholder sentinels written by the CRUD layer when the user left a field
// blank. Reconciliation treats these as "not really set" and may overwrite
// them with extracted values.
const (
	PlaceholderVendor   = "Unknown Vendor"
	PlaceholderLocation = "Unknown Location"
	PlaceholderType     = "General Expense"
)

// placeholderValues indexes every sentinel, lowercased.
var placeholderValues = map[string]struct{}{
	strings.ToLower(PlaceholderVendor):   {},
	strings.ToLower(PlaceholderLocation): {},
	strings.ToLower(PlaceholderType):     {},
}

// IsPlaceholder reports whether v is empty or a known sentinel default.
func IsPlaceholder(v string) bool {
	s := strings.TrimSpace(v)
	if s == "" {
		return true
	}
	_, ok := placeholderValues[strings.ToLower(s)]
	return ok
}

// IsPlaceholderCost reports whether a cost value is unset: empty or zero.
func IsPlaceholderCost(v string) bool {
	switch strings.TrimSpace(v) {
	case "", "0", "0.0", "0.00":
		return true
	}
	return false
}
