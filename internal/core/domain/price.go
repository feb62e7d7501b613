package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePrice converts a non-negative decimal string with at most two
// fractional digits into integer cents.
func ParsePrice(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidPrice
	}

	whole, frac, hasDot := strings.Cut(s, ".")
	if whole == "" || !allDigits(whole) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}
	if hasDot && (frac == "" || len(frac) > 2 || !allDigits(frac)) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}
	for len(frac) < 2 {
		frac += "0"
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}
	cents, _ := strconv.ParseInt(frac, 10, 64)
	return units*100 + cents, nil
}

// FormatCents renders cents with a fixed two-digit scale.
func FormatCents(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

// NormalizePrice rewrites s to the fixed two-digit scale ("5.5" -> "5.50").
func NormalizePrice(s string) (string, error) {
	cents, err := ParsePrice(s)
	if err != nil {
		return "", err
	}
	return FormatCents(cents), nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
