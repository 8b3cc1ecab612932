package strategies

import (
	"github.com/charypar/betty/price"
	"github.com/charypar/betty/strategy"
	"github.com/charypar/betty/trade"
)

// Donchian places stops on a rolling price channel. The two bounds are
// deliberately asymmetric: the lower bound is a bid price (a long exits by
// selling) and the upper bound is an ask price (a short exits by buying).
type Donchian struct {
	ChannelLength int
}

// Channel is one row of the rolling channel series.
type Channel struct {
	Low  price.Points // a bid
	High price.Points // an ask
}

// Channel computes the rolling channel over frames in chronological order.
// Early rows cover only the frames seen so far, the rest a full window.
func (d Donchian) Channel(frames []price.Frame) []Channel {
	out := make([]Channel, len(frames))

	for i, f := range frames {
		low, high := f.Low.Bid, f.High.Ask

		for j := i - 1; j >= 0 && j > i-d.ChannelLength; j-- {
			if frames[j].Low.Bid.LessThan(low) {
				low = frames[j].Low.Bid
			}
			if frames[j].High.Ask.GreaterThan(high) {
				high = frames[j].High.Ask
			}
		}

		out[i] = Channel{Low: low, High: high}
	}

	return out
}

// Stop implements strategy.RiskStrategy: the channel bound the position
// would exit through. A long stops at the channel minimum, a short at the
// channel maximum.
func (d Donchian) Stop(direction trade.Direction, history *price.History) (price.Points, error) {
	if history.Len() < d.ChannelLength {
		return price.Points{}, strategy.ErrNotEnoughHistory
	}

	low := history.At(0).Low.Bid
	high := history.At(0).High.Ask

	for i := 1; i < d.ChannelLength; i++ {
		f := history.At(i)
		if f.Low.Bid.LessThan(low) {
			low = f.Low.Bid
		}
		if f.High.Ask.GreaterThan(high) {
			high = f.High.Ask
		}
	}

	if direction == trade.Sell {
		return high, nil
	}

	return low, nil
}
