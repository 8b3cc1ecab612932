package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/charypar/betty/price"
	"github.com/charypar/betty/strategies"
)

// WriteIndicatorTrace exports the per-frame indicator series (oscillator
// values plus the stop channel) as CSV, one row per frame, for offline
// inspection and parity checks against charting tools.
func WriteIndicatorTrace(w io.Writer, frames []price.Frame, macd strategies.MACD, donchian strategies.Donchian) error {
	values := macd.Values(frames)
	channels := donchian.Channel(frames)

	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"close_time", "mid", "short_ema", "long_ema", "macd", "macd_signal", "histogram", "trend", "channel_low", "channel_high"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, f := range frames {
		row := []string{
			f.CloseTime.UTC().Format("2006-01-02T15:04:05"),
			f.Close.Mid().String(),
			values[i].ShortEMA.String(),
			values[i].LongEMA.String(),
			values[i].MACD.String(),
			values[i].MACDSignal.String(),
			values[i].Histogram.String(),
			values[i].Trend.String(),
			channels[i].Low.String(),
			channels[i].High.String(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("writing indicator trace: %w", err)
	}

	return nil
}
