package parse

import (
	"strings"
	"testing"
)

func TestNumericFallback(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want float64
	}{
		{"plain integer", "45231", 45231},
		{"surrounded by prose", "The odometer shows 45,231.5 km", 45231.5},
		{"decimal comma", "Stand: 123,45", 123.45},
		{"thousands separators", "1,234,567", 1234567},
		{"grouped reading", "45,231", 45231},
		{"three-digit group", "123,456", 123456},
		{"first token wins", "reading 120 of 2 photos", 120},
		{"unit glued on", "45231mi", 45231},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NumericFallback(tc.raw)
			if err != nil {
				t.Fatalf("NumericFallback(%q) returned error: %v", tc.raw, err)
			}
			if got != tc.want {
				t.Errorf("NumericFallback(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestNumericFallbackNoDigits(t *testing.T) {
	for _, raw := range []string{"", "the image is too blurry to read", "N/A"} {
		_, err := NumericFallback(raw)
		if err == nil {
			t.Fatalf("NumericFallback(%q) expected error, got nil", raw)
		}
		if !strings.Contains(err.Error(), ErrNoReading) {
			t.Errorf("NumericFallback(%q) error = %q, want it to contain %q", raw, err, ErrNoReading)
		}
	}
}

func TestCleanNumber(t *testing.T) {
	cases := []struct {
		token string
		want  float64
	}{
		{"45,231.5", 45231.5},
		{"123,45", 123.45},
		{"45,231", 45231},
		{"123,456", 123456},
		{"1,234,567", 1234567},
		{"12,3", 12.3},
		{"1.234.567", 1.234567},
		{"  42 ", 42},
		{"0.5", 0.5},
	}
	for _, tc := range cases {
		got, err := CleanNumber(tc.token)
		if err != nil {
			t.Fatalf("CleanNumber(%q) returned error: %v", tc.token, err)
		}
		if got != tc.want {
			t.Errorf("CleanNumber(%q) = %v, want %v", tc.token, got, tc.want)
		}
	}
}

func TestCleanNumberRejectsEmpty(t *testing.T) {
	for _, token := range []string{"", ".", ",", "km"} {
		if _, err := CleanNumber(token); err == nil {
			t.Errorf("CleanNumber(%q) expected error, got nil", token)
		}
	}
}

func TestFormatReading(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{45231.5, "45231.5"},
		{45231, "45231"},
		{0.5, "0.5"},
	}
	for _, tc := range cases {
		if got := FormatReading(tc.v); got != tc.want {
			t.Errorf("FormatReading(%v) = %q, want %q", tc.v, got, tc.want)
		}
	}
}
