// resample aggregates a candle CSV into a coarser resolution, keeping the
// Date,Open,High,Low,Close format betty reads.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/charypar/betty/feed"
	"github.com/charypar/betty/price"
)

func main() {
	var (
		inPath  = flag.String("in", "", "Input price CSV; stdin when empty")
		outPath = flag.String("out", "", "Output CSV path; stdout when empty")
		to      = flag.String("to", "1d", "Target resolution, e.g. 10m, 4h, 1d")
	)
	flag.Parse()

	if err := run(*inPath, *outPath, *to); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(inPath, outPath, to string) error {
	resolution, err := price.ParseResolution(to)
	if err != nil {
		return err
	}

	// a zero spread keeps mid levels untouched on the round trip
	var frames []price.Frame
	if inPath != "" {
		frames, err = feed.Open(inPath, decimal.Zero)
	} else {
		frames, err = feed.ReadPrices(os.Stdin, decimal.Zero)
	}
	if err != nil {
		return err
	}

	resampled, err := feed.Resample(frames, resolution)
	if err != nil {
		return err
	}

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	return feed.WriteFrames(out, resampled)
}
