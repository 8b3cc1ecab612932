package trade

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charypar/betty/price"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func gbp(s string) price.CurrencyAmount {
	return price.NewAmount(dec(s), "GBP")
}

func date() time.Time {
	return time.Date(2021, 1, 1, 10, 1, 0, 0, time.UTC)
}

func buyEntry() Entry {
	return Entry{
		PositionID: "1",
		Direction:  Buy,
		Price:      dec("100"),
		Stop:       dec("90"),
		Size:       gbp("1"),
		Time:       date(),
	}
}

func TestClosedTradeRealizesProfit(t *testing.T) {
	exit := Exit{PositionID: "1", Price: dec("150"), Time: date().Add(4 * time.Hour)}

	tr := ClosedTrade(buyEntry(), exit)

	assert.Equal(t, StatusClosed, tr.Status)
	assert.Equal(t, OutcomeProfit, tr.Outcome)
	assert.True(t, dec("50").Equal(tr.PriceDiff))
	assert.True(t, gbp("50").Equal(tr.Profit))
	assert.True(t, gbp("10").Equal(tr.Risk))
	assert.True(t, dec("5").Equal(tr.RiskReward))
	require.NotNil(t, tr.ExitPrice)
	assert.True(t, dec("150").Equal(*tr.ExitPrice))
}

func TestClosedTradeSellDirection(t *testing.T) {
	entry := Entry{
		PositionID: "2",
		Direction:  Sell,
		Price:      dec("80"),
		Stop:       dec("85"),
		Size:       gbp("1"),
		Time:       date(),
	}
	exit := Exit{PositionID: "2", Price: dec("60"), Time: date().Add(time.Hour)}

	tr := ClosedTrade(entry, exit)

	assert.Equal(t, OutcomeProfit, tr.Outcome)
	assert.True(t, dec("20").Equal(tr.PriceDiff))
	assert.True(t, gbp("20").Equal(tr.Profit))
	assert.True(t, gbp("5").Equal(tr.Risk))
	assert.True(t, dec("4").Equal(tr.RiskReward))
}

func TestClosedTradeLoss(t *testing.T) {
	exit := Exit{PositionID: "1", Price: dec("95"), Time: date().Add(time.Hour)}

	tr := ClosedTrade(buyEntry(), exit)

	assert.Equal(t, OutcomeLoss, tr.Outcome)
	assert.True(t, gbp("-5").Equal(tr.Profit))
}

func TestOpenTradeEvaluatesAgainstLatestQuote(t *testing.T) {
	latest := price.Price{Bid: dec("110"), Ask: dec("112")}

	tr := OpenTrade(buyEntry(), latest)

	assert.Equal(t, StatusOpen, tr.Status)
	assert.Nil(t, tr.ExitPrice)
	assert.Nil(t, tr.ExitTime)
	assert.True(t, dec("10").Equal(tr.PriceDiff)) // long exits at the bid
	assert.True(t, gbp("10").Equal(tr.Profit))
	assert.True(t, dec("1").Equal(tr.RiskReward))
}

func TestOpenTradeSellUsesAsk(t *testing.T) {
	entry := Entry{
		PositionID: "1",
		Direction:  Sell,
		Price:      dec("120"),
		Stop:       dec("130"),
		Size:       gbp("1"),
		Time:       date(),
	}
	latest := price.Price{Bid: dec("110"), Ask: dec("112")}

	tr := OpenTrade(entry, latest)

	assert.True(t, dec("8").Equal(tr.PriceDiff))
	assert.True(t, gbp("8").Equal(tr.Profit))
}

func TestEntryExitCrossesTheSpread(t *testing.T) {
	quote := price.NewMid(dec("200"), dec("1"))

	long := buyEntry().Exit(quote, date())
	assert.True(t, dec("199.5").Equal(long.Price))

	short := Entry{PositionID: "1", Direction: Sell, Price: dec("250"), Stop: dec("260"), Size: gbp("1"), Time: date()}.Exit(quote, date())
	assert.True(t, dec("200.5").Equal(short.Price))
}

func TestOrderStamping(t *testing.T) {
	open := Open(buyEntry())
	stamped := open.WithPositionID("7")

	assert.Equal(t, "7", stamped.PositionID())
	assert.Equal(t, "1", open.PositionID()) // original untouched

	stop := Stop(Exit{PositionID: "", Price: dec("90"), Time: date()})
	assert.Equal(t, "3", stop.WithPositionID("3").PositionID())
}
