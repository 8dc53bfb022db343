package paystack

import "github.com/shopspring/decimal"

// MinorUnits converts an amount in major currency units into the smallest
// currency unit the gateway expects. Rounds half away from zero instead of
// truncating, so a client is never under- or overcharged by a cent.
func MinorUnits(amountMajor float64) int64 {
	return decimal.NewFromFloat(amountMajor).
		Mul(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}
