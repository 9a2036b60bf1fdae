package paye

import "github.com/shopspring/decimal"

// mulDiv returns amountPence × numerator / denominator rounded to the
// nearest penny (half away from zero). All rate and periodization arithmetic
// funnels through here so the rounding rule lives in one place.
func mulDiv(amountPence, numerator, denominator int64) int64 {
	return decimal.NewFromInt(amountPence).
		Mul(decimal.NewFromInt(numerator)).
		Div(decimal.NewFromInt(denominator)).
		Round(0).
		IntPart()
}

// mulDivFloor is mulDiv rounded down instead, for the statutory student-loan
// rule.
func mulDivFloor(amountPence, numerator, denominator int64) int64 {
	return decimal.NewFromInt(amountPence).
		Mul(decimal.NewFromInt(numerator)).
		Div(decimal.NewFromInt(denominator)).
		Floor().
		IntPart()
}

func clampNonNegative(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}
