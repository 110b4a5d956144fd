package bst

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseNumber parses a field-entry value. A comma is accepted as the decimal
// separator. Empty, unparsable and non-finite input reports ok=false.
func ParseNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Number parses raw and degrades to zero.
func Number(raw string) float64 {
	v, _ := ParseNumber(raw)
	return v
}

// NumberOr returns def for an empty value and degrades to zero for garbage.
func NumberOr(raw string, def float64) float64 {
	if strings.TrimSpace(raw) == "" {
		return def
	}
	return Number(raw)
}

// Fixed2 formats v with two decimals. Rounding works on the exact binary
// value, so 1.005 (stored as 1.00499...) becomes "1.00".
func Fixed2(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return decimal.NewFromFloatWithExponent(v, -2).StringFixed(2)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func decimalString(v float64) string {
	if !finite(v) {
		return "0"
	}
	return decimal.NewFromFloat(v).String()
}
