package utils

import "math"

// ToCents converts a euro amount to integer cents. All payout arithmetic
// runs on cents so repeated calculations stay exact to two decimals.
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * MoneyPrecision))
}

// FromCents converts integer cents back to a euro amount.
func FromCents(cents int64) float64 {
	return float64(cents) / MoneyPrecision
}

// PercentOfCents applies a rate to a cent amount, rounding to the nearest cent.
func PercentOfCents(cents int64, rate float64) int64 {
	return int64(math.Round(float64(cents) * rate))
}

// Round rounds a euro amount to 2 decimal places.
func Round(num float64) float64 {
	return math.Round(num*MoneyPrecision) / MoneyPrecision
}
