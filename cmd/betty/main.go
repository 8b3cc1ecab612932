// betty replays a CSV price series through a MACD/Donchian trading
// strategy and prints the resulting trade ledger.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/charypar/betty/account"
	"github.com/charypar/betty/backtest"
	"github.com/charypar/betty/feed"
	"github.com/charypar/betty/market"
	"github.com/charypar/betty/price"
	"github.com/charypar/betty/report"
	"github.com/charypar/betty/strategies"
)

func main() {
	var (
		csvPath    = flag.String("csv", "", "Path to price CSV (Date,Open,High,Low,Close); stdin when empty")
		configPath = flag.String("config", "", "Path to YAML config file")
		tracePath  = flag.String("indicator-trace", "", "Write per-frame indicator CSV to this path")
		logLevel   = flag.String("log-level", "", "Log level (overrides config)")
	)
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	resolution, err := price.ParseResolution(cfg.Resolution)
	if err != nil {
		logger.Fatal("invalid resolution", zap.Error(err))
	}

	var frames []price.Frame
	if *csvPath != "" {
		frames, err = feed.Open(*csvPath, cfg.Spread)
	} else {
		frames, err = feed.ReadPrices(os.Stdin, cfg.Spread)
	}
	if err != nil {
		logger.Fatal("reading prices", zap.Error(err))
	}
	if len(frames) == 0 {
		logger.Fatal("no price data")
	}

	mkt := market.Market{
		Code:            cfg.Market.Code,
		MarginFactor:    cfg.Market.MarginFactor,
		MinDealSize:     price.NewAmount(cfg.Market.MinDealSize, cfg.Currency),
		MinStopDistance: cfg.Market.MinStopDistance,
	}

	macd := strategies.MACD{
		Short:      cfg.MACD.Short,
		Long:       cfg.MACD.Long,
		Signal:     cfg.MACD.Signal,
		EntryLimit: cfg.MACD.EntryLimit,
		ExitLimit:  cfg.MACD.ExitLimit,
	}
	donchian := strategies.Donchian{ChannelLength: cfg.Donchian.ChannelLength}

	openingBalance := price.NewAmount(cfg.OpeningBalance, cfg.Currency)

	acc := account.New(mkt, macd, donchian, cfg.RiskPerTrade, openingBalance, resolution)

	bt := backtest.New(acc, logger)
	bt.Run(frames)

	if *tracePath != "" {
		if err := writeIndicatorTrace(*tracePath, frames, macd, donchian); err != nil {
			logger.Error("writing indicator trace", zap.Error(err))
		}
	}

	latest := frames[len(frames)-1].Close
	trades := acc.TradeLog(latest)

	fmt.Print(report.FormatTradeLog(trades, openingBalance, latest))
	fmt.Println(report.Summarize(trades, openingBalance))

	for _, ev := range bt.Trace {
		if !ev.Accepted() {
			logger.Info("order not placed", zap.String("reason", ev.Err.Error()))
		}
	}
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()

	l, err := zapcore.ParseLevel(level)
	if err != nil {
		l = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(l)

	return cfg.Build()
}

func writeIndicatorTrace(path string, frames []price.Frame, macd strategies.MACD, donchian strategies.Donchian) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return report.WriteIndicatorTrace(f, frames, macd, donchian)
}
