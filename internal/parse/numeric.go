package parse

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrNoReading is the stable message for an odometer response containing no
// numeric token at all.
const ErrNoReading = "could not extract a numerical reading"

// matches the first decimal-or-integer token, thousands separators included
var numericToken = regexp.MustCompile(`\d[\d.,]*`)

// NumericFallback is the second parse stage for single-value extractions:
// scan the raw text for the first numeric token and normalize it. Used when
// the structured stage yields no usable reading.
func NumericFallback(raw string) (float64, error) {
	token := numericToken.FindString(raw)
	if token == "" {
		return 0, fmt.Errorf("%s", ErrNoReading)
	}
	return CleanNumber(token)
}

// CleanNumber normalizes a loosely formatted numeric token:
// a comma acting as the decimal separator becomes a period, every character
// that is not a digit or a period is stripped, and extra periods collapse by
// treating the first as the separator and concatenating remaining digit
// groups. A result that fails to parse as a finite number is a failure, not
// a zero.
func CleanNumber(token string) (float64, error) {
	s := strings.TrimSpace(token)
	// A comma is the decimal separator only in the unambiguous "123,45"
	// shape: no period, exactly one comma, one or two trailing digits.
	// Everything else ("45,231", "1,234,567") is thousands grouping and the
	// commas are simply stripped below.
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		idx := strings.Index(s, ",")
		if frac := s[idx+1:]; len(frac) >= 1 && len(frac) <= 2 && digitsOnly(frac) {
			s = s[:idx] + "." + frac
		}
	}
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	s = b.String()
	if parts := strings.Split(s, "."); len(parts) > 2 {
		s = parts[0] + "." + strings.Join(parts[1:], "")
	}
	if s == "" || s == "." {
		return 0, fmt.Errorf("%s", ErrNoReading)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("unparseable number %q", token)
	}
	return v, nil
}

func digitsOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FormatReading renders an odometer reading the way it is stored: no
// trailing zeros, no scientific notation.
func FormatReading(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
