package price

import (
	"time"

	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// Price is a two-sided quote. The ask is the price the market sells at,
// the bid the price it buys at; ask >= bid always holds for real quotes.
type Price struct {
	Bid Points
	Ask Points
}

// NewMid builds a price from a mid level and a spread, splitting the
// spread evenly around the mid.
func NewMid(mid, spread decimal.Decimal) Price {
	half := spread.Div(two)

	return Price{Bid: mid.Sub(half), Ask: mid.Add(half)}
}

func (p Price) Mid() Points {
	return p.Bid.Add(p.Ask).Div(two)
}

func (p Price) Spread() Points {
	return p.Ask.Sub(p.Bid)
}

// Sub returns the difference of the mid prices, used for indicator math.
func (p Price) Sub(o Price) Points {
	return p.Mid().Sub(o.Mid())
}

func (p Price) Equal(o Price) bool {
	return p.Bid.Equal(o.Bid) && p.Ask.Equal(o.Ask)
}

// Frame is one OHLC candle. CloseTime marks the instant the candle
// completed. Frames are immutable value records.
type Frame struct {
	Open      Price
	High      Price
	Low       Price
	Close     Price
	CloseTime time.Time
}

func (f Frame) Equal(o Frame) bool {
	return f.Open.Equal(o.Open) &&
		f.High.Equal(o.High) &&
		f.Low.Equal(o.Low) &&
		f.Close.Equal(o.Close) &&
		f.CloseTime.Equal(o.CloseTime)
}
