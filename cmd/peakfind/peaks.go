package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type peakRow struct {
	Trace       int      `json:"trace" yaml:"trace"`
	Threshold   *float64 `json:"threshold" yaml:"threshold"`
	MinDistance float64  `json:"min_distance" yaml:"min_distance"`
	Peaks       []int    `json:"peaks" yaml:"peaks"`
}

func newPeaksCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "peaks [file]",
		Short: "List the peaks of every trace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			traces, err := loadTraces(cmd, args)
			if err != nil {
				return err
			}

			rows := make([]peakRow, len(traces))
			for i, trace := range traces {
				det := a.detectorFor(i, trace)

				idx := det.FindInSection(trace)
				if idx == nil {
					idx = []int{}
				}

				rows[i] = peakRow{
					Trace:       i,
					Threshold:   finite(det.Threshold(trace)),
					MinDistance: det.Config().MinDistance,
					Peaks:       idx,
				}
			}

			a.logger.Info("peaks detected", zap.Int("traces", len(rows)))

			return render(cmd.OutOrStdout(), a.cfg.Output, rows, func(w io.Writer) error {
				if _, err := fmt.Fprintf(w, "TRACE\tTHRESHOLD\tMIN DIST\tCOUNT\tPEAKS\n"); err != nil {
					return err
				}

				for _, r := range rows {
					if _, err := fmt.Fprintf(w, "%d\t%s\t%.1f\t%d\t%s\n",
						r.Trace,
						formatOptional(r.Threshold, 2),
						r.MinDistance,
						len(r.Peaks),
						formatIndices(r.Peaks),
					); err != nil {
						return err
					}
				}

				return nil
			})
		},
	}
}
