// Package report renders backtest results for human consumption. All
// presentation concerns live here; the core packages only produce values.
package report

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/charypar/betty/price"
	"github.com/charypar/betty/trade"
)

const timeLayout = "2-Jan-2006 15:04"

// FormatTradeLog renders the ledger as a text table with a running
// balance column. Open trades show their unrealized figures against the
// price they were projected with.
func FormatTradeLog(trades []trade.Trade, openingBalance price.CurrencyAmount, latest price.Price) string {
	var b strings.Builder

	w := tabwriter.NewWriter(&b, 2, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tStatus\tEntry\tPrice\tDir\tExit\tPrice\tStop\tChange\tSize\tRisk\tOutcome\tProfit\tRR\tBalance")

	p := message.NewPrinter(language.English)
	balance := openingBalance

	for _, t := range trades {
		balance = balance.Add(t.Profit)

		exitTime, exitPrice := "-", "-"
		if t.ExitTime != nil {
			exitTime = t.ExitTime.Format(timeLayout)
		}
		if t.ExitPrice != nil {
			exitPrice = t.ExitPrice.String()
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID,
			t.Status,
			t.EntryTime.Format(timeLayout),
			t.EntryPrice,
			t.Direction,
			exitTime,
			exitPrice,
			t.Stop,
			t.PriceDiff,
			t.Size,
			t.Risk,
			t.Outcome,
			t.Profit,
			t.RiskReward.Round(2),
			formatAmount(p, balance),
		)
	}

	w.Flush()

	return b.String()
}

// Summary is the bottom line of a run.
type Summary struct {
	Trades  int
	Wins    int
	Losses  int
	Net     price.CurrencyAmount
	Balance price.CurrencyAmount
}

func Summarize(trades []trade.Trade, openingBalance price.CurrencyAmount) Summary {
	s := Summary{Trades: len(trades), Net: price.NewAmount(decimal.Zero, openingBalance.Currency)}

	for _, t := range trades {
		if t.Outcome == trade.OutcomeProfit {
			s.Wins++
		} else {
			s.Losses++
		}
		s.Net = s.Net.Add(t.Profit)
	}

	s.Balance = openingBalance.Add(s.Net)

	return s
}

func (s Summary) String() string {
	winRate := 0.0
	if s.Trades > 0 {
		winRate = float64(s.Wins) / float64(s.Trades) * 100
	}

	return fmt.Sprintf("Trades: %d, Wins: %d, Losses: %d, WinRate: %.2f%%, Net: %s, Balance: %s",
		s.Trades, s.Wins, s.Losses, winRate, s.Net, s.Balance)
}

func formatAmount(p *message.Printer, a price.CurrencyAmount) string {
	v, _ := a.Amount.Round(2).Float64()

	return p.Sprintf("%v %s", number.Decimal(v), a.Currency)
}
