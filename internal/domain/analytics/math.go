// Package analytics implements the financial and occupancy aggregation engine.
//
// Every function in this package is pure: it reads the ledger and entity snapshots it is
// given, never retains them, and returns freshly computed value objects. Division by zero
// always yields zero.
package analytics

import "github.com/shopspring/decimal"

var (
	half    = decimal.NewFromFloat(0.5)
	hundred = decimal.NewFromInt(100)
)

// roundHalfUp rounds to the nearest integer with halves going towards positive infinity,
// so 2.5 becomes 3 and -2.5 becomes -2.
func roundHalfUp(d decimal.Decimal) int64 {
	return d.Add(half).Floor().IntPart()
}

// safeDiv returns num/den, or zero when den is zero.
func safeDiv(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.Div(den)
}

// percentOf returns roundHalfUp(part / whole * 100), or zero when whole is zero.
func percentOf(part, whole decimal.Decimal) int64 {
	if whole.IsZero() {
		return 0
	}
	return roundHalfUp(part.Div(whole).Mul(hundred))
}

func percentOfCount(part, whole int) int64 {
	return percentOf(decimal.NewFromInt(int64(part)), decimal.NewFromInt(int64(whole)))
}
