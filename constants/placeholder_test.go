package constants

import "testing"

func TestIsPlaceholder(t *testing.T) {
	cases := []struct {
		v    string
		want bool
	}{
		{"", true},
		{"   ", true},
		{PlaceholderVendor, true},
		{"unknown vendor", true},
		{PlaceholderLocation, true},
		{PlaceholderType, true},
		{"Acme Corp", false},
		{"Unknown", false},
	}
	for _, tc := range cases {
		if got := IsPlaceholder(tc.v); got != tc.want {
			t.Errorf("IsPlaceholder(%q) = %v, want %v", tc.v, got, tc.want)
		}
	}
}

func TestIsPlaceholderCost(t *testing.T) {
	for _, v := range []string{"", "0", "0.0", "0.00"} {
		if !IsPlaceholderCost(v) {
			t.Errorf("IsPlaceholderCost(%q) = false, want true", v)
		}
	}
	for _, v := range []string{"0.01", "12.00", "-1"} {
		if IsPlaceholderCost(v) {
			t.Errorf("IsPlaceholderCost(%q) = true, want false", v)
		}
	}
}
