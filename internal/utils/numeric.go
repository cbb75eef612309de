package utils

import (
	"fmt"
	"math"
)

// Coerce collapses an optional numeric field to a plain value: nil and
// non-finite inputs compute as zero. Callers never need nil-checks downstream.
func Coerce(v *float64) float64 {
	if v == nil {
		return 0
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0
	}
	return *v
}

// Float64Ptr is a convenience for building optional fields in tests and
// default values.
func Float64Ptr(v float64) *float64 {
	return &v
}

// FormatMoney keeps consistent two-decimal formatting for currency fields.
// Non-finite values render as "0.00" instead of leaking NaN/Inf to output.
func FormatMoney(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", amount)
}
