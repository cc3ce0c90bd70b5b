package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-peaks/dsp/core"
	"github.com/cwbudde/algo-peaks/measure/phase"
	"github.com/cwbudde/algo-peaks/measure/stack"
)

var (
	errReference     = errors.New("reference trace out of range")
	errUnequalTraces = errors.New("traces differ in length")
)

type phaseRow struct {
	Trace     int      `json:"trace" yaml:"trace"`
	Peaks     []int    `json:"peaks" yaml:"peaks"`
	Coherence float64  `json:"coherence" yaml:"coherence"`
	Phase     *float64 `json:"phase" yaml:"phase"`
	BPM       float64  `json:"bpm" yaml:"bpm"`
}

type phaseReport struct {
	Reference int        `json:"reference" yaml:"reference"`
	MaxBPM    float64    `json:"max_bpm" yaml:"max_bpm"`
	Traces    []phaseRow `json:"traces" yaml:"traces"`
}

func newPhaseCmd(a *app) *cobra.Command {
	var reference int

	cmd := &cobra.Command{
		Use:   "phase [file]",
		Short: "Compare the peak timing of every trace with a reference trace",
		Long: `Detects the peaks of every trace, then reports for each trace the
coherence and the mean phase (in degrees) of its peaks relative to the peak
train of the reference trace, plus its peak rate in beats per minute.
All traces must have the same length; samples are clamped to 0..255.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			traces, err := loadTraces(cmd, args)
			if err != nil {
				return err
			}

			if reference < 0 || reference >= len(traces) {
				return fmt.Errorf("%w: %d of %d traces", errReference, reference, len(traces))
			}

			s, err := traceStack(traces)
			if err != nil {
				return err
			}

			opts := []stack.Option{
				stack.WithLogger(a.logger),
				stack.WithWorkers(a.cfg.Workers),
			}

			det := a.detectorFor(reference, traces[reference])

			mask, err := stack.PeakMask(cmd.Context(), s, det, opts...)
			if err != nil {
				return err
			}

			phases, err := stack.PhaseImage(cmd.Context(), mask, reference, 0, nil, opts...)
			if err != nil {
				return fmt.Errorf("trace %d: %w", reference, err)
			}

			bpm, maxBPM, err := stack.FrequencyImage(mask, a.cfg.FrameRate)
			if err != nil {
				return err
			}

			ref := phase.PositiveIndices(mask.Section(reference, 0))

			report := phaseReport{
				Reference: reference,
				MaxBPM:    maxBPM,
				Traces:    make([]phaseRow, len(traces)),
			}

			for i := range traces {
				train := phase.PositiveIndices(mask.Section(i, 0))
				if train == nil {
					train = []int{}
				}

				report.Traces[i] = phaseRow{
					Trace:     i,
					Peaks:     train,
					Coherence: phase.Coherence(train, ref),
					Phase:     finite(phases[i]),
					BPM:       bpm[i],
				}
			}

			a.logger.Info("phase computed",
				zap.Int("traces", len(traces)),
				zap.Int("reference", reference),
				zap.Int("reference_peaks", len(ref)),
			)

			return render(cmd.OutOrStdout(), a.cfg.Output, report, func(w io.Writer) error {
				if _, err := fmt.Fprintf(w, "TRACE\tPEAKS\tCOHERENCE\tPHASE\tBPM\n"); err != nil {
					return err
				}

				for _, r := range report.Traces {
					if _, err := fmt.Fprintf(w, "%d\t%d\t%.3f\t%s\t%.1f\n",
						r.Trace,
						len(r.Peaks),
						r.Coherence,
						formatOptional(r.Phase, 1),
						r.BPM,
					); err != nil {
						return err
					}
				}

				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&reference, "reference", "r", 0, "index of the reference trace")

	return cmd
}

// traceStack lays the traces out as a one-row image stack, trace i being the
// section of pixel (i, 0).
func traceStack(traces [][]int) (*stack.Stack, error) {
	depth := len(traces[0])
	for i, t := range traces {
		if len(t) != depth {
			return nil, fmt.Errorf("%w: trace %d has %d samples, trace 0 has %d",
				errUnequalTraces, i, len(t), depth)
		}
	}

	s, err := stack.New(len(traces), 1, depth)
	if err != nil {
		return nil, err
	}

	for x, t := range traces {
		for z, v := range t {
			s.Set(x, 0, z, uint8(core.ClampInt(v, 0, stack.PeakValue)))
		}
	}

	return s, nil
}
