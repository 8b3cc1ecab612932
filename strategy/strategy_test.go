package strategy

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charypar/betty/price"
	"github.com/charypar/betty/trade"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type stopAt struct {
	level decimal.Decimal
}

func (s stopAt) Stop(trade.Direction, *price.History) (price.Points, error) {
	return s.level, nil
}

func TestTrendDirection(t *testing.T) {
	dir, ok := Bullish.Direction()
	assert.True(t, ok)
	assert.Equal(t, trade.Buy, dir)

	dir, ok = Bearish.Direction()
	assert.True(t, ok)
	assert.Equal(t, trade.Sell, dir)

	_, ok = Neutral.Direction()
	assert.False(t, ok)
}

func TestEntryCrossesTheSpread(t *testing.T) {
	h := price.NewHistory(price.Minutes(10))
	closeTime := time.Date(2021, 1, 1, 10, 1, 0, 0, time.UTC)

	quote := price.NewMid(dec("200"), dec("1"))
	h.Push(price.Frame{Open: quote, High: quote, Low: quote, Close: quote, CloseTime: closeTime})

	risk := price.NewAmount(dec("30"), "GBP")

	long, err := Entry(stopAt{dec("100")}, trade.Buy, h, risk)
	require.NoError(t, err)

	assert.Equal(t, "", long.PositionID)
	assert.True(t, dec("200.5").Equal(long.Price))
	assert.True(t, dec("100").Equal(long.Stop))
	assert.True(t, dec("0.298507").Equal(long.Size.Amount)) // 30 / 100.5, rounded
	assert.True(t, closeTime.Equal(long.Time))

	short, err := Entry(stopAt{dec("250")}, trade.Sell, h, risk)
	require.NoError(t, err)

	assert.True(t, dec("199.5").Equal(short.Price))
	assert.True(t, dec("0.594059").Equal(short.Size.Amount)) // 30 / 50.5, rounded
}

func TestEntryRejectsAStopAtTheEntryPrice(t *testing.T) {
	h := price.NewHistory(price.Minutes(10))

	// a zero-spread quote, as resampled mid-only feeds produce
	quote := price.NewMid(dec("200"), dec("0"))
	h.Push(price.Frame{Open: quote, High: quote, Low: quote, Close: quote, CloseTime: time.Date(2021, 1, 1, 10, 1, 0, 0, time.UTC)})

	_, err := Entry(stopAt{dec("200")}, trade.Buy, h, price.NewAmount(dec("30"), "GBP"))

	assert.ErrorIs(t, err, ErrStopAtEntry)
}
