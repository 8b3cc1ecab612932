// Package trade defines the order instructions exchanged between the
// account and the orchestrator, and the derived ledger records.
package trade

import (
	"time"

	"github.com/charypar/betty/price"
)

// Direction of a position.
type Direction int

const (
	Buy Direction = iota
	Sell
)

func (d Direction) String() string {
	if d == Sell {
		return "Sell"
	}

	return "Buy"
}

// Entry is an opening order. The position id is assigned by whoever places
// the order, not by the account producing it.
type Entry struct {
	PositionID string
	Direction  Direction
	Price      price.Points
	Stop       price.Points
	Size       price.CurrencyAmount // per point
	Time       time.Time
}

// Exit derives the closing order for this entry at the given quote,
// crossing the side the trader must trade at to get out: a long sells at
// the bid, a short buys at the ask.
func (e Entry) Exit(p price.Price, t time.Time) Exit {
	level := p.Bid
	if e.Direction == Sell {
		level = p.Ask
	}

	return Exit{PositionID: e.PositionID, Price: level, Time: t}
}

func (e Entry) Equal(o Entry) bool {
	return e.PositionID == o.PositionID &&
		e.Direction == o.Direction &&
		e.Price.Equal(o.Price) &&
		e.Stop.Equal(o.Stop) &&
		e.Size.Equal(o.Size) &&
		e.Time.Equal(o.Time)
}

// Exit is a closing order. Whether the close was strategy driven or stop
// triggered is carried by the enclosing Order kind, not here.
type Exit struct {
	PositionID string
	Price      price.Points
	Time       time.Time
}

func (x Exit) Equal(o Exit) bool {
	return x.PositionID == o.PositionID && x.Price.Equal(o.Price) && x.Time.Equal(o.Time)
}

// OrderKind discriminates the order union.
type OrderKind int

const (
	OrderOpen OrderKind = iota
	OrderClose
	OrderStop
)

func (k OrderKind) String() string {
	switch k {
	case OrderClose:
		return "Close"
	case OrderStop:
		return "Stop"
	default:
		return "Open"
	}
}

// Order is a proposed position instruction. Close and Stop are processed
// identically by the account; the kind exists for external bookkeeping.
type Order struct {
	Kind  OrderKind
	Entry Entry // set when Kind is OrderOpen
	Exit  Exit  // set when Kind is OrderClose or OrderStop
}

func Open(e Entry) Order  { return Order{Kind: OrderOpen, Entry: e} }
func Close(x Exit) Order  { return Order{Kind: OrderClose, Exit: x} }
func Stop(x Exit) Order   { return Order{Kind: OrderStop, Exit: x} }

func (o Order) PositionID() string {
	if o.Kind == OrderOpen {
		return o.Entry.PositionID
	}

	return o.Exit.PositionID
}

// WithPositionID returns a copy of the order stamped with the given id.
func (o Order) WithPositionID(id string) Order {
	if o.Kind == OrderOpen {
		o.Entry.PositionID = id
	} else {
		o.Exit.PositionID = id
	}

	return o
}

func (o Order) Equal(other Order) bool {
	if o.Kind != other.Kind {
		return false
	}
	if o.Kind == OrderOpen {
		return o.Entry.Equal(other.Entry)
	}

	return o.Exit.Equal(other.Exit)
}
