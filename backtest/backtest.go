// Package backtest replays a price series through an account, assigning
// position identity, enforcing market validation and keeping an audit
// trace of every attempted order.
package backtest

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/charypar/betty/account"
	"github.com/charypar/betty/price"
	"github.com/charypar/betty/trade"
)

// Event is one attempted order. Err is nil when the order was accepted and
// carries the rejection reason otherwise.
type Event struct {
	Order trade.Order
	Err   error
}

func (e Event) Accepted() bool { return e.Err == nil }

// Backtest drives an account through an oldest-first frame sequence.
//
// Position ids come from an internal counter: an Open is stamped with the
// current value, a Close or Stop is stamped with the current value and
// then advances it. Only one position is ever live and the counter only
// moves on a close, so an Open and its eventual exit always share an id
// even though the account itself never checks them.
type Backtest struct {
	Account *account.Account
	RunID   string
	Trace   []Event

	nextID int
	logger *zap.Logger
}

func New(acc *account.Account, logger *zap.Logger) *Backtest {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Backtest{
		Account: acc,
		RunID:   uuid.NewString(),
		logger:  logger,
	}
}

// Run replays the frames in order. Frames must be sorted oldest first; the
// account's windowed computations assume strict chronological arrival.
func (b *Backtest) Run(frames []price.Frame) {
	b.logger.Info("backtest starting",
		zap.String("run_id", b.RunID),
		zap.String("market", b.Account.Market.Code),
		zap.Int("frames", len(frames)),
	)

	for _, frame := range frames {
		for _, order := range b.Account.UpdatePrice(frame) {
			b.Trace = append(b.Trace, b.placeOrder(order))
		}
	}

	b.logger.Info("backtest finished",
		zap.String("run_id", b.RunID),
		zap.Int("orders_attempted", len(b.Trace)),
		zap.String("balance", b.Account.Balance.String()),
	)
}

// placeOrder validates, stamps and logs a single proposed order. A
// market-rejected open is dropped permanently; it is not retried on later
// frames.
func (b *Backtest) placeOrder(order trade.Order) Event {
	switch order.Kind {
	case trade.OrderOpen:
		if err := b.Account.Market.ValidateEntry(order.Entry, b.Account.Balance); err != nil {
			b.logger.Debug("entry rejected",
				zap.String("run_id", b.RunID),
				zap.String("direction", order.Entry.Direction.String()),
				zap.Error(err),
			)

			return Event{Order: order, Err: fmt.Errorf("market rejected entry: %w", err)}
		}

		stamped := order.WithPositionID(strconv.Itoa(b.nextID))
		if err := b.Account.LogOrder(stamped); err != nil {
			return Event{Order: stamped, Err: err}
		}

		b.logger.Debug("position opened",
			zap.String("run_id", b.RunID),
			zap.String("position_id", stamped.Entry.PositionID),
			zap.String("direction", stamped.Entry.Direction.String()),
			zap.String("price", stamped.Entry.Price.String()),
			zap.String("stop", stamped.Entry.Stop.String()),
			zap.String("size", stamped.Entry.Size.String()),
		)

		return Event{Order: stamped}

	default: // Close and Stop
		stamped := order.WithPositionID(strconv.Itoa(b.nextID))
		if err := b.Account.LogOrder(stamped); err != nil {
			return Event{Order: stamped, Err: err}
		}

		b.nextID++

		b.logger.Debug("position closed",
			zap.String("run_id", b.RunID),
			zap.String("position_id", stamped.Exit.PositionID),
			zap.String("kind", stamped.Kind.String()),
			zap.String("price", stamped.Exit.Price.String()),
		)

		return Event{Order: stamped}
	}
}
