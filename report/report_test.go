package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charypar/betty/price"
	"github.com/charypar/betty/strategies"
	"github.com/charypar/betty/trade"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func gbp(s string) price.CurrencyAmount {
	return price.NewAmount(dec(s), "GBP")
}

func closedTrade(id string, entryLevel, exitLevel string, at time.Time) trade.Trade {
	e := trade.Entry{
		PositionID: id,
		Direction:  trade.Buy,
		Price:      dec(entryLevel),
		Stop:       dec(entryLevel).Sub(dec("10")),
		Size:       gbp("1"),
		Time:       at,
	}

	return trade.ClosedTrade(e, trade.Exit{PositionID: id, Price: dec(exitLevel), Time: at.Add(time.Hour)})
}

func TestFormatTradeLog(t *testing.T) {
	start := time.Date(2021, 1, 1, 10, 0, 0, 0, time.UTC)
	trades := []trade.Trade{
		closedTrade("0", "100", "150", start),
		closedTrade("1", "150", "145", start.Add(2*time.Hour)),
	}

	out := FormatTradeLog(trades, gbp("1000"), price.NewMid(dec("145"), dec("1")))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Contains(t, lines[0], "Balance")
	assert.Contains(t, lines[1], "1-Jan-2021 10:00")
	assert.Contains(t, lines[1], "Profit")
	assert.Contains(t, lines[1], "1,050 GBP")
	assert.Contains(t, lines[2], "Loss")
	assert.Contains(t, lines[2], "1,045 GBP")
}

func TestFormatTradeLogOpenTrade(t *testing.T) {
	e := trade.Entry{
		PositionID: "0",
		Direction:  trade.Buy,
		Price:      dec("100"),
		Stop:       dec("90"),
		Size:       gbp("1"),
		Time:       time.Date(2021, 1, 1, 10, 0, 0, 0, time.UTC),
	}
	latest := price.NewMid(dec("120"), dec("1"))

	out := FormatTradeLog([]trade.Trade{trade.OpenTrade(e, latest)}, gbp("1000"), latest)

	assert.Contains(t, out, "Open")
	assert.Contains(t, out, "-") // no exit yet
}

func TestSummarize(t *testing.T) {
	start := time.Date(2021, 1, 1, 10, 0, 0, 0, time.UTC)
	trades := []trade.Trade{
		closedTrade("0", "100", "150", start),
		closedTrade("1", "150", "145", start.Add(2*time.Hour)),
		closedTrade("2", "145", "165", start.Add(4*time.Hour)),
	}

	s := Summarize(trades, gbp("1000"))

	assert.Equal(t, 3, s.Trades)
	assert.Equal(t, 2, s.Wins)
	assert.Equal(t, 1, s.Losses)
	assert.True(t, gbp("65").Equal(s.Net))
	assert.True(t, gbp("1065").Equal(s.Balance))

	assert.Contains(t, s.String(), "WinRate: 66.67%")
	assert.Contains(t, s.String(), "Balance: 1065 GBP")
}

func TestSummarizeEmptyRun(t *testing.T) {
	s := Summarize(nil, gbp("1000"))

	assert.Equal(t, 0, s.Trades)
	assert.True(t, gbp("0").Equal(s.Net))
	assert.True(t, gbp("1000").Equal(s.Balance))
	assert.Contains(t, s.String(), "WinRate: 0.00%")
}

func TestWriteIndicatorTrace(t *testing.T) {
	start := time.Date(2021, 1, 1, 9, 0, 0, 0, time.UTC)

	frames := make([]price.Frame, 10)
	for i := range frames {
		p := price.NewMid(dec("100").Add(decimal.NewFromInt(int64(i))), dec("1"))
		frames[i] = price.Frame{Open: p, High: p, Low: p, Close: p, CloseTime: start.Add(time.Duration(i+1) * 10 * time.Minute)}
	}

	macd := strategies.MACD{Short: 2, Long: 4, Signal: 3, EntryLimit: dec("0.5"), ExitLimit: dec("0.5")}
	donchian := strategies.Donchian{ChannelLength: 3}

	var buf bytes.Buffer
	require.NoError(t, WriteIndicatorTrace(&buf, frames, macd, donchian))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 11)

	assert.Equal(t, "close_time,mid,short_ema,long_ema,macd,macd_signal,histogram,trend,channel_low,channel_high", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "2021-01-01T09:10:00,100,100,100,0,"))
}
