package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-peaks/measure/peaks"
	"github.com/cwbudde/algo-peaks/measure/phase"
)

type periodRow struct {
	Trace       int      `json:"trace" yaml:"trace"`
	Period      *float64 `json:"period" yaml:"period"`
	MinDistance *float64 `json:"min_distance" yaml:"min_distance"`
	PeakPeriod  float64  `json:"peak_period" yaml:"peak_period"`
	Error       string   `json:"error,omitempty" yaml:"error,omitempty"`
}

func newPeriodCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "period [file]",
		Short: "Estimate the dominant repetition period of every trace",
		Long: `Estimates the period of every trace from its autocorrelation and
suggests a minimum peak distance of half that period. peak_period is the mean
gap between the peaks found with the current detection settings.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			traces, err := loadTraces(cmd, args)
			if err != nil {
				return err
			}

			rows := make([]periodRow, len(traces))
			for i, trace := range traces {
				rows[i] = periodRow{
					Trace:      i,
					PeakPeriod: phase.MeanPeriod(a.detectorFor(i, trace).FindInSection(trace)),
				}

				period, err := peaks.EstimatePeriod(toFloat(trace), a.cfg.Period.MinLag, a.cfg.Period.MaxLag)
				if err != nil {
					rows[i].Error = err.Error()
					continue
				}

				rows[i].Period = finite(period)
				rows[i].MinDistance = finite(peaks.DistanceFromPeriod(period))
			}

			return render(cmd.OutOrStdout(), a.cfg.Output, rows, func(w io.Writer) error {
				if _, err := fmt.Fprintf(w, "TRACE\tPERIOD\tMIN DIST\tPEAK PERIOD\tERROR\n"); err != nil {
					return err
				}

				for _, r := range rows {
					if _, err := fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%s\n",
						r.Trace,
						formatOptional(r.Period, 2),
						formatOptional(r.MinDistance, 1),
						r.PeakPeriod,
						r.Error,
					); err != nil {
						return err
					}
				}

				return nil
			})
		},
	}
}
