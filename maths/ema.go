// Package maths holds streaming numeric primitives shared by the
// strategy implementations.
package maths

import "github.com/shopspring/decimal"

var (
	one = decimal.NewFromInt(1)
	two = decimal.NewFromInt(2)
)

// Alpha returns the smoothing factor 2/(length+1) of an exponential
// moving average of the given window length.
func Alpha(length int) decimal.Decimal {
	return two.Div(decimal.NewFromInt(int64(length) + 1))
}

// EMA computes an exponential moving average over values with the given
// window length. The output has the same length as the input:
//
//	out[0] = values[0]
//	out[i] = alpha*values[i] + (1-alpha)*out[i-1]
//
// The function is pure, so deriving several averages of different lengths
// from the same series is just repeated calls; there is no shared
// iteration state to alias.
func EMA(values []decimal.Decimal, length int) []decimal.Decimal {
	if len(values) == 0 {
		return nil
	}

	alpha := Alpha(length)
	decay := one.Sub(alpha)

	out := make([]decimal.Decimal, len(values))
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = values[i].Mul(alpha).Add(out[i-1].Mul(decay))
	}

	return out
}
