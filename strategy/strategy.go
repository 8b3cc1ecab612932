// Package strategy defines the two capabilities an account is
// parameterized over: trend detection and risk management. Implementations
// live in the strategies package; the account never depends on a concrete
// one.
package strategy

import (
	"errors"
	"fmt"

	"github.com/charypar/betty/price"
	"github.com/charypar/betty/trade"
)

// Trend is the three-state directional bias of the market.
type Trend int

const (
	Neutral Trend = iota
	Bullish
	Bearish
)

func (t Trend) String() string {
	switch t {
	case Bullish:
		return "Bullish"
	case Bearish:
		return "Bearish"
	default:
		return "Neutral"
	}
}

// Direction converts a directional trend into a trade direction. A neutral
// trend has no direction.
func (t Trend) Direction() (trade.Direction, bool) {
	switch t {
	case Bullish:
		return trade.Buy, true
	case Bearish:
		return trade.Sell, true
	default:
		return 0, false
	}
}

// TradingStrategy estimates the trend of the market from price history.
// Implementations decide how much trailing history they need and return
// Neutral, never an error, when there is not enough of it.
type TradingStrategy interface {
	Trend(history *price.History) Trend
}

// ErrNotEnoughHistory is returned by a RiskStrategy that cannot place a
// stop-loss safely with the history available.
var ErrNotEnoughHistory = errors.New("not enough history to set a stop-loss")

// ErrStopAtEntry is returned by Entry when the stop-loss coincides with the
// entry level, leaving no distance to size the position over.
var ErrStopAtEntry = errors.New("stop-loss is at the entry price")

// RiskStrategy decides stop-loss placement. Position sizing on top of the
// stop is common to all implementations, see Entry.
type RiskStrategy interface {
	Stop(direction trade.Direction, history *price.History) (price.Points, error)
}

// Entry builds a fully formed opening order from a risk strategy's stop:
// the entry price is the side of the latest close the trader must cross
// (ask for a buy, bid for a sell) and the size per point is the risk
// budget spread over the distance to the stop. The position id is left
// empty; identity is assigned by the caller placing the order.
//
// Assuming immediate execution; slippage would make the size slightly off
// in live trading.
func Entry(rs RiskStrategy, direction trade.Direction, history *price.History, risk price.CurrencyAmount) (trade.Entry, error) {
	stop, err := rs.Stop(direction, history)
	if err != nil {
		return trade.Entry{}, err
	}

	latest := history.At(0)

	level := latest.Close.Ask
	if direction == trade.Sell {
		level = latest.Close.Bid
	}

	distance := level.Sub(stop).Abs()
	if distance.IsZero() {
		return trade.Entry{}, fmt.Errorf("%s at %s: %w", direction, level, ErrStopAtEntry)
	}

	return trade.Entry{
		PositionID: "",
		Direction:  direction,
		Price:      level,
		Stop:       stop,
		Size:       risk.DivPoints(distance),
		Time:       latest.CloseTime,
	}, nil
}
