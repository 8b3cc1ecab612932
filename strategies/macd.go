// Package strategies provides the reference TradingStrategy and
// RiskStrategy implementations: a MACD oscillator trend detector and a
// Donchian channel stop.
package strategies

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/charypar/betty/maths"
	"github.com/charypar/betty/price"
	"github.com/charypar/betty/strategy"
)

// emaError is the acceptable distance from true EMA convergence when
// deciding how much history the oscillator needs.
var emaError = decimal.RequireFromString("0.1")

// MACD is a moving average convergence/divergence trend detector with
// hysteresis: the sentiment only flips when the oscillator crosses the
// entry limit and only resets to neutral when it falls back through the
// exit limit.
type MACD struct {
	Short  int
	Long   int
	Signal int

	EntryLimit decimal.Decimal // enter above this oscillator value
	ExitLimit  decimal.Decimal // exit below this oscillator value
}

// Value is one row of the computed oscillator series.
type Value struct {
	ShortEMA   decimal.Decimal
	LongEMA    decimal.Decimal
	MACD       decimal.Decimal
	MACDSignal decimal.Decimal
	Histogram  decimal.Decimal
	Trend      strategy.Trend
}

// Values computes the full oscillator series over frames in chronological
// order, including the running sentiment. The sentiment here is raw: it is
// computed from the very first sample regardless of convergence. Trend is
// the history-aware entry point used for actual decisions.
func (m MACD) Values(frames []price.Frame) []Value {
	mids := make([]decimal.Decimal, len(frames))
	for i, f := range frames {
		mids[i] = f.Close.Mid()
	}

	shortEMA := maths.EMA(mids, m.Short)
	longEMA := maths.EMA(mids, m.Long)

	macdLine := make([]decimal.Decimal, len(mids))
	for i := range mids {
		macdLine[i] = shortEMA[i].Sub(longEMA[i])
	}

	signalLine := maths.EMA(macdLine, m.Signal)

	out := make([]Value, len(mids))
	for i := range mids {
		trend := strategy.Neutral
		if i > 0 {
			trend = m.step(out[i-1].Trend, macdLine[i])
		}

		out[i] = Value{
			ShortEMA:   shortEMA[i],
			LongEMA:    longEMA[i],
			MACD:       macdLine[i],
			MACDSignal: signalLine[i],
			Histogram:  macdLine[i].Sub(signalLine[i]),
			Trend:      trend,
		}
	}

	return out
}

// step applies the hysteresis rules to move from the previous sentiment.
func (m MACD) step(prev strategy.Trend, macd decimal.Decimal) strategy.Trend {
	switch {
	case prev != strategy.Bullish && macd.GreaterThan(m.EntryLimit):
		return strategy.Bullish
	case prev != strategy.Bearish && macd.LessThan(m.EntryLimit.Neg()):
		return strategy.Bearish
	case prev == strategy.Bullish && macd.LessThanOrEqual(m.ExitLimit):
		return strategy.Neutral
	case prev == strategy.Bearish && macd.GreaterThanOrEqual(m.ExitLimit.Neg()):
		return strategy.Neutral
	}

	return prev
}

// Trend implements strategy.TradingStrategy. It returns Neutral until
// there is enough history for the slowest of the three averages to have
// converged, then the most recent computed sentiment.
func (m MACD) Trend(history *price.History) strategy.Trend {
	length := m.Short
	if m.Long > length {
		length = m.Long
	}
	if m.Signal > length {
		length = m.Signal
	}

	// two valid post-seed samples minimum
	take := SamplesNeeded(length, emaError) + 1
	if take > history.Len() {
		return strategy.Neutral
	}

	values := m.Values(history.Recent(take + 1))

	return values[len(values)-1].Trend
}

// SamplesNeeded returns the minimum sample count for an EMA of the given
// length to be within maxError of true convergence.
func SamplesNeeded(length int, maxError decimal.Decimal) int {
	alpha := 2.0 / float64(length+1)
	e, _ := maxError.Float64()

	return int(math.Round(math.Log(e) / -alpha))
}
