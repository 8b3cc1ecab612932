package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Config is the full parameter surface of a run. Zero fields fall back to
// the defaults below, so a config file only needs to override what it
// cares about.
type Config struct {
	Market struct {
		Code            string          `yaml:"code"`
		MarginFactor    decimal.Decimal `yaml:"margin_factor"`
		MinDealSize     decimal.Decimal `yaml:"min_deal_size"`
		MinStopDistance decimal.Decimal `yaml:"min_stop_distance"`
	} `yaml:"market"`

	MACD struct {
		Short      int             `yaml:"short"`
		Long       int             `yaml:"long"`
		Signal     int             `yaml:"signal"`
		EntryLimit decimal.Decimal `yaml:"entry_limit"`
		ExitLimit  decimal.Decimal `yaml:"exit_limit"`
	} `yaml:"macd"`

	Donchian struct {
		ChannelLength int `yaml:"channel_length"`
	} `yaml:"donchian"`

	Currency       string          `yaml:"currency"`
	RiskPerTrade   decimal.Decimal `yaml:"risk_per_trade"`
	OpeningBalance decimal.Decimal `yaml:"opening_balance"`
	Resolution     string          `yaml:"resolution"`
	Spread         decimal.Decimal `yaml:"spread"`
	LogLevel       string          `yaml:"log_level"`
}

func defaultConfig() Config {
	var c Config

	c.Market.Code = "GDAXI"
	c.Market.MarginFactor = decimal.RequireFromString("0.05")
	c.Market.MinDealSize = decimal.RequireFromString("0.50")
	c.Market.MinStopDistance = decimal.NewFromInt(12)

	c.MACD.Short = 12
	c.MACD.Long = 42
	c.MACD.Signal = 10
	c.MACD.EntryLimit = decimal.NewFromInt(40)
	c.MACD.ExitLimit = decimal.NewFromInt(40)

	c.Donchian.ChannelLength = 20

	c.Currency = "GBP"
	c.RiskPerTrade = decimal.RequireFromString("0.03")
	c.OpeningBalance = decimal.NewFromInt(20000)
	c.Resolution = "1d"
	c.Spread = decimal.NewFromInt(5)
	c.LogLevel = "info"

	return c
}

func loadConfig(path string) (Config, error) {
	c := defaultConfig()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}

	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return c, nil
}
