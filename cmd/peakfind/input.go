package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var errNoTraces = errors.New("no traces in input")

// openInput returns the file named by args, or stdin for no argument or "-".
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}

	return f, nil
}

// readTraces parses one integer trace per CSV row. Lines starting with '#'
// are comments.
func readTraces(r io.Reader) ([][]int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var traces [][]int

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}

		trace := make([]int, 0, len(record))
		for col, field := range record {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}

			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %d: %w", len(traces)+1, col+1, err)
			}

			trace = append(trace, v)
		}

		if len(trace) > 0 {
			traces = append(traces, trace)
		}
	}

	if len(traces) == 0 {
		return nil, errNoTraces
	}

	return traces, nil
}

func loadTraces(cmd *cobra.Command, args []string) ([][]int, error) {
	in, err := openInput(cmd, args)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	return readTraces(in)
}

func toFloat(trace []int) []float64 {
	out := make([]float64, len(trace))
	for i, v := range trace {
		out[i] = float64(v)
	}

	return out
}
