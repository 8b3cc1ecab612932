// Package account implements the trading account state machine: it turns
// price updates into proposed orders and confirmed orders into balance and
// ledger changes, holding at most one live position at a time.
package account

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/charypar/betty/market"
	"github.com/charypar/betty/price"
	"github.com/charypar/betty/strategy"
	"github.com/charypar/betty/trade"
)

var (
	ErrDuplicateEntry        = errors.New("a position is already open")
	ErrNoMatchingEntry       = errors.New("no matching entry")
	ErrPositionAlreadyClosed = errors.New("position already closed")
)

// Account owns the balance, the price history, the live position and the
// closed-trade ledger. It is parameterized over the two strategy
// capabilities through their interfaces, supplied at construction.
//
// UpdatePrice only proposes orders; LogOrder is the authoritative state
// transition once an order is confirmed. An account belongs to a single
// backtest run and is not safe for concurrent use.
type Account struct {
	Balance         price.CurrencyAmount
	Market          market.Market
	History         *price.History
	TradingStrategy strategy.TradingStrategy
	RiskStrategy    strategy.RiskStrategy
	RiskPerTrade    decimal.Decimal

	live   *trade.Entry
	closed []trade.Trade
}

func New(
	m market.Market,
	ts strategy.TradingStrategy,
	rs strategy.RiskStrategy,
	riskPerTrade decimal.Decimal,
	openingBalance price.CurrencyAmount,
	resolution price.Resolution,
) *Account {
	return &Account{
		Balance:         openingBalance,
		Market:          m,
		History:         price.NewHistory(resolution),
		TradingStrategy: ts,
		RiskStrategy:    rs,
		RiskPerTrade:    riskPerTrade,
	}
}

// UpdatePrice records a new frame and proposes zero or more orders in
// response. It never mutates the live position or the ledger, only the
// price history; the proposals take effect when logged back via LogOrder.
//
// A stop takes precedence over a strategy exit on the same frame, and is
// filled at the frame's close rather than the stop level; intrabar fills
// are not modeled. An exit (or a flat account) combined with a directional
// trend produces a new entry after the exit, so a reversal comes out as
// [Close, Open]. A risk strategy short on history, or a stop landing on
// the entry level, suppresses the entry silently.
func (a *Account) UpdatePrice(frame price.Frame) []trade.Order {
	a.History.Push(frame)

	t := frame.CloseTime
	trend := a.TradingStrategy.Trend(a.History)

	var orders []trade.Order

	if lt := a.live; lt != nil {
		switch {
		// the switch guarantees a stop and a close never both fire
		case lt.Direction == trade.Buy && frame.Low.Bid.LessThanOrEqual(lt.Stop):
			orders = append(orders, trade.Stop(lt.Exit(frame.Close, t)))
		case lt.Direction == trade.Sell && frame.High.Ask.GreaterThanOrEqual(lt.Stop):
			orders = append(orders, trade.Stop(lt.Exit(frame.Close, t)))
		case trend == strategy.Neutral:
			orders = append(orders, trade.Close(lt.Exit(frame.Close, t)))
		case trend == strategy.Bullish && lt.Direction == trade.Sell,
			trend == strategy.Bearish && lt.Direction == trade.Buy:
			orders = append(orders, trade.Close(lt.Exit(frame.Close, t)))
		}
	}

	if a.live == nil || len(orders) > 0 {
		if dir, ok := trend.Direction(); ok {
			risk := a.Balance.Mul(a.RiskPerTrade)

			if entry, err := strategy.Entry(a.RiskStrategy, dir, a.History, risk); err == nil {
				orders = append(orders, trade.Open(entry))
			}
		}
	}

	return orders
}

// LogOrder applies a confirmed order to the account state.
//
// A Close or Stop while a position is live closes the live position
// without checking that the ids match; under the single-position invariant
// the caller is always closing the position that is live. Callers that
// stamp ids (see the backtest orchestrator) rely on this.
func (a *Account) LogOrder(order trade.Order) error {
	switch order.Kind {
	case trade.OrderOpen:
		if a.live != nil {
			return fmt.Errorf("position %s: %w", a.live.PositionID, ErrDuplicateEntry)
		}

		entry := order.Entry
		a.live = &entry

		return nil

	default: // Close and Stop close positions identically
		if a.live == nil {
			for _, t := range a.closed {
				if t.ID == order.Exit.PositionID {
					return fmt.Errorf("position %s: %w", order.Exit.PositionID, ErrPositionAlreadyClosed)
				}
			}

			return fmt.Errorf("position %s: %w", order.Exit.PositionID, ErrNoMatchingEntry)
		}

		closed := trade.ClosedTrade(*a.live, order.Exit)
		a.Balance = a.Balance.Add(closed.Profit)
		a.live = nil
		a.closed = append(a.closed, closed)

		return nil
	}
}

// TradeLog projects the closed trades plus the live position (evaluated
// against latest) into a ledger sorted by ascending entry time.
func (a *Account) TradeLog(latest price.Price) []trade.Trade {
	trades := make([]trade.Trade, 0, len(a.closed)+1)
	trades = append(trades, a.closed...)

	if a.live != nil {
		trades = append(trades, trade.OpenTrade(*a.live, latest))
	}

	sort.SliceStable(trades, func(i, j int) bool {
		return trades[i].EntryTime.Before(trades[j].EntryTime)
	})

	return trades
}
