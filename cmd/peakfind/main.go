// Command peakfind detects peaks in 8-bit intensity traces and compares
// their timing.
//
// Traces are read as CSV, one trace per row, from a file or stdin ("-").
//
// Usage:
//
//	peakfind peaks [flags] [file]
//	peakfind phase [flags] [file]
//	peakfind period [flags] [file]
//
// Examples:
//
//	peakfind peaks traces.csv
//	peakfind peaks --peak-fraction 0.2 --min-distance 12 -o json traces.csv
//	peakfind phase --reference 3 --frame-rate 30 traces.csv
//	cat traces.csv | peakfind period --auto-distance -
//
// Settings can also come from peakfind.yaml (see --config) and from
// PEAKFIND_* environment variables, e.g. PEAKFIND_PEAKS_MIN_DISTANCE.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
