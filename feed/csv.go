// Package feed reads price series from CSV into frames the backtest can
// replay. It is the only place any serialized price format is understood.
package feed

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/charypar/betty/price"
)

const dateLayout = "2006-01-02T15:04:05"

// ReadPrices parses Date,Open,High,Low,Close rows (oldest first, header
// optional, extra columns ignored) into frames. Candles come as single
// mid levels; the given spread is split around them to reconstruct
// two-sided quotes.
func ReadPrices(r io.Reader, spread decimal.Decimal) ([]price.Frame, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	var frames []price.Frame

	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading prices: %w", err)
		}
		if len(rec) < 5 {
			continue
		}

		first := strings.TrimPrefix(strings.TrimSpace(rec[0]), "\uFEFF")
		closeTime, err := time.Parse(dateLayout, first)
		if err != nil {
			// header or junk row
			continue
		}

		frame, err := parseFrame(rec, closeTime, spread)
		if err != nil {
			return nil, err
		}

		frames = append(frames, frame)
	}

	return frames, nil
}

// Open reads a price CSV from disk, tolerating UTF-16 files with a byte
// order mark, which some chart export tools produce.
func Open(path string, spread decimal.Decimal) ([]price.Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	br := bufio.NewReader(f)

	head, _ := br.Peek(2)
	if len(head) >= 2 && ((head[0] == 0xFF && head[1] == 0xFE) || (head[0] == 0xFE && head[1] == 0xFF)) {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
		return ReadPrices(transform.NewReader(br, dec), spread)
	}

	return ReadPrices(br, spread)
}

func parseFrame(rec []string, closeTime time.Time, spread decimal.Decimal) (price.Frame, error) {
	levels := make([]decimal.Decimal, 4)
	for i := range levels {
		v, err := decimal.NewFromString(strings.TrimSpace(rec[i+1]))
		if err != nil {
			return price.Frame{}, fmt.Errorf("price row at %s: %w", closeTime, err)
		}
		levels[i] = v
	}

	return price.Frame{
		Open:      price.NewMid(levels[0], spread),
		High:      price.NewMid(levels[1], spread),
		Low:       price.NewMid(levels[2], spread),
		Close:     price.NewMid(levels[3], spread),
		CloseTime: closeTime,
	}, nil
}
