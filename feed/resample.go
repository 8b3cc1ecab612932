package feed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/charypar/betty/price"
)

// ErrVariableResolution is returned when resampling to a resolution with no
// fixed period length.
var ErrVariableResolution = errors.New("cannot resample to a variable-length resolution")

// Resample aggregates frames into coarser candles of the given resolution.
// Buckets are aligned to the epoch in UTC; a frame belongs to the bucket
// its close time falls into. Within a bucket the open comes from the first
// frame, the close from the last, and the high and low are the extremes of
// the ask and bid sides respectively. The output frame closes at the
// bucket boundary.
//
// The input does not have to be sorted; the output always is.
func Resample(frames []price.Frame, to price.Resolution) ([]price.Frame, error) {
	period, ok := to.Duration()
	if !ok {
		return nil, fmt.Errorf("resampling: %w", ErrVariableResolution)
	}

	sorted := make([]price.Frame, len(frames))
	copy(sorted, frames)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CloseTime.Before(sorted[j].CloseTime)
	})

	var out []price.Frame

	for _, f := range sorted {
		end := bucketEnd(f.CloseTime, period)

		if len(out) == 0 || !out[len(out)-1].CloseTime.Equal(end) {
			out = append(out, price.Frame{
				Open:      f.Open,
				High:      f.High,
				Low:       f.Low,
				Close:     f.Close,
				CloseTime: end,
			})
			continue
		}

		agg := &out[len(out)-1]
		if f.High.Ask.GreaterThan(agg.High.Ask) {
			agg.High = f.High
		}
		if f.Low.Bid.LessThan(agg.Low.Bid) {
			agg.Low = f.Low
		}
		agg.Close = f.Close
	}

	return out, nil
}

// bucketEnd maps a close time onto the end of its epoch-aligned bucket. A
// close exactly on a boundary belongs to the bucket ending there.
func bucketEnd(t time.Time, period time.Duration) time.Time {
	end := t.UTC().Truncate(period)
	if end.Before(t) {
		end = end.Add(period)
	}

	return end
}

// WriteFrames writes frames as Date,Open,High,Low,Close CSV, mid levels
// only, in the format ReadPrices accepts.
func WriteFrames(w io.Writer, frames []price.Frame) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Date", "Open", "High", "Low", "Close"}); err != nil {
		return err
	}

	for _, f := range frames {
		row := []string{
			f.CloseTime.UTC().Format(dateLayout),
			f.Open.Mid().String(),
			f.High.Mid().String(),
			f.Low.Mid().String(),
			f.Close.Mid().String(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("writing prices: %w", err)
	}

	return nil
}
