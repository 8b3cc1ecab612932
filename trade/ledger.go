package trade

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/charypar/betty/price"
)

// Status of a ledger row.
type Status int

const (
	StatusOpen Status = iota
	StatusClosed
)

func (s Status) String() string {
	if s == StatusClosed {
		return "Closed"
	}

	return "Open"
}

// Outcome classifies a trade: Profit iff the profit is strictly positive.
type Outcome int

const (
	OutcomeProfit Outcome = iota
	OutcomeLoss
)

func (o Outcome) String() string {
	if o == OutcomeLoss {
		return "Loss"
	}

	return "Profit"
}

// Trade is a read-only ledger row derived from an Entry alone (still open,
// profit unrealized against a reference price) or an Entry/Exit pair
// (closed, profit realized). Rows are recomputed on demand, never mutated.
type Trade struct {
	ID         string
	Status     Status
	Direction  Direction
	EntryTime  time.Time
	EntryPrice price.Points
	ExitTime   *time.Time
	ExitPrice  *price.Points
	Stop       price.Points
	Size       price.CurrencyAmount
	Risk       price.CurrencyAmount
	Outcome    Outcome
	PriceDiff  price.Points
	Profit     price.CurrencyAmount
	RiskReward decimal.Decimal
}

// OpenTrade projects a live entry against the latest quote. The unrealized
// exit level is the side the trader would have to cross to get out now.
func OpenTrade(e Entry, latest price.Price) Trade {
	level := latest.Bid
	if e.Direction == Sell {
		level = latest.Ask
	}

	return project(e, level, nil, nil)
}

// ClosedTrade projects an entry and its matching exit into a realized row.
func ClosedTrade(e Entry, x Exit) Trade {
	return project(e, x.Price, &x.Price, &x.Time)
}

func project(e Entry, exitLevel price.Points, exitPrice *price.Points, exitTime *time.Time) Trade {
	diff := exitLevel.Sub(e.Price)
	if e.Direction == Sell {
		diff = e.Price.Sub(exitLevel)
	}

	risk := e.Size.Mul(e.Price.Sub(e.Stop).Abs())
	profit := e.Size.Mul(diff)

	outcome := OutcomeLoss
	if profit.IsPositive() {
		outcome = OutcomeProfit
	}

	status := StatusOpen
	if exitPrice != nil {
		status = StatusClosed
	}

	return Trade{
		ID:         e.PositionID,
		Status:     status,
		Direction:  e.Direction,
		EntryTime:  e.Time,
		EntryPrice: e.Price,
		ExitTime:   exitTime,
		ExitPrice:  exitPrice,
		Stop:       e.Stop,
		Size:       e.Size,
		Risk:       risk,
		Outcome:    outcome,
		PriceDiff:  diff,
		Profit:     profit,
		RiskReward: profit.Div(risk),
	}
}

func (t Trade) Equal(o Trade) bool {
	if t.ID != o.ID || t.Status != o.Status || t.Direction != o.Direction || t.Outcome != o.Outcome {
		return false
	}
	if !t.EntryTime.Equal(o.EntryTime) || !t.EntryPrice.Equal(o.EntryPrice) {
		return false
	}
	if (t.ExitTime == nil) != (o.ExitTime == nil) || (t.ExitPrice == nil) != (o.ExitPrice == nil) {
		return false
	}
	if t.ExitTime != nil && !t.ExitTime.Equal(*o.ExitTime) {
		return false
	}
	if t.ExitPrice != nil && !t.ExitPrice.Equal(*o.ExitPrice) {
		return false
	}

	return t.Stop.Equal(o.Stop) &&
		t.Size.Equal(o.Size) &&
		t.Risk.Equal(o.Risk) &&
		t.PriceDiff.Equal(o.PriceDiff) &&
		t.Profit.Equal(o.Profit) &&
		t.RiskReward.Equal(o.RiskReward)
}
