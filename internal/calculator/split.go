package calculator

import "github.com/shopspring/decimal"

// Epsilon is the tolerance under which a balance counts as settled.
// It is one minor currency unit (0.01).
var Epsilon = decimal.New(1, -2)

// EqualShare splits amount evenly among n participants.
// The share keeps its fractional part (decimal division precision), so
// n shares add back up to amount within Epsilon.
// It returns false when there is nobody to split among.
func EqualShare(amount decimal.Decimal, n int) (decimal.Decimal, bool) {
	if n <= 0 {
		return decimal.Zero, false
	}
	return amount.Div(decimal.NewFromInt(int64(n))), true
}

// IsSettled reports whether a balance is within Epsilon of zero.
func IsSettled(balance decimal.Decimal) bool {
	return balance.Abs().LessThan(Epsilon)
}
