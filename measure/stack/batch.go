package stack

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-peaks/dsp/core"
	"github.com/cwbudde/algo-peaks/measure/peaks"
	"github.com/cwbudde/algo-peaks/measure/phase"
)

// PeakMask runs det on the section of every pixel and returns a stack of the
// same size holding PeakValue at every detected peak and 0 elsewhere.
// Columns are processed concurrently; a cancelled ctx stops the batch.
func PeakMask(ctx context.Context, s *Stack, det *peaks.Detector, opts ...Option) (*Stack, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	o := ApplyOptions(opts...)

	out, err := New(s.Width, s.Height, s.Depth)
	if err != nil {
		return nil, err
	}

	var total atomic.Int64

	err = forEachColumn(ctx, s.Width, o.Workers, func(x int) {
		for y := range s.Height {
			idx := det.FindInSection(s.Section(x, y))
			for _, z := range idx {
				out.Set(x, y, z, PeakValue)
			}
			total.Add(int64(len(idx)))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("stack: peak mask: %w", err)
	}

	o.Logger.Debug("peak mask computed",
		zap.Int("width", s.Width),
		zap.Int("height", s.Height),
		zap.Int("depth", s.Depth),
		zap.Int64("peaks", total.Load()),
	)

	return out, nil
}

// PhaseImage returns, for every pixel of a peak stack, the mean phase of its
// peak train against the train of the reference pixel (refX, refY), in
// degrees. The result is row-major, Width×Height.
//
// The reference coordinates are clamped into the image. Pixels with a zero
// value in a non-nil mask, and pixels without peaks, are NaN. A peak is any
// positive value.
func PhaseImage(ctx context.Context, peakStack *Stack, refX, refY int, mask []uint8, opts ...Option) ([]float64, error) {
	if err := peakStack.Validate(); err != nil {
		return nil, err
	}

	size := peakStack.Width * peakStack.Height
	if mask != nil && len(mask) != size {
		return nil, fmt.Errorf("%w: %d pixels, want %d", ErrMaskSize, len(mask), size)
	}

	o := ApplyOptions(opts...)

	refX = core.ClampInt(refX, 0, peakStack.Width-1)
	refY = core.ClampInt(refY, 0, peakStack.Height-1)

	reference := phase.PositiveIndices(peakStack.Section(refX, refY))
	if len(reference) < 2 {
		return nil, fmt.Errorf("%w: %d at (%d, %d)", ErrReferencePeaks, len(reference), refX, refY)
	}

	o.Logger.Debug("reference section",
		zap.Int("x", refX),
		zap.Int("y", refY),
		zap.Int("peaks", len(reference)),
		zap.Float64("mean_period", phase.MeanPeriod(reference)),
	)

	out := make([]float64, size)

	err := forEachColumn(ctx, peakStack.Width, o.Workers, func(x int) {
		for y := range peakStack.Height {
			i := y*peakStack.Width + x
			if mask != nil && mask[i] == 0 {
				out[i] = math.NaN()
				continue
			}

			train := phase.PositiveIndices(peakStack.Section(x, y))
			out[i] = phase.Degrees(phase.MeanPhase(train, reference))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("stack: phase image: %w", err)
	}

	return out, nil
}

// FrequencyImage returns the peak rate of every pixel of a peak stack in
// beats per minute, row-major, together with the largest rate (the upper end
// of a display range). frameRate is in frames per second.
func FrequencyImage(peakStack *Stack, frameRate float64) ([]float64, float64, error) {
	if err := peakStack.Validate(); err != nil {
		return nil, 0, err
	}

	out := make([]float64, peakStack.Width*peakStack.Height)
	for y := range peakStack.Height {
		for x := range peakStack.Width {
			n := phase.CountPositive(peakStack.Section(x, y))
			out[y*peakStack.Width+x] = phase.BeatsPerMinute(n, peakStack.Depth, frameRate)
		}
	}

	return out, floats.Max(out), nil
}

// forEachColumn calls fn for every column index with at most workers calls
// in flight. It returns ctx.Err() if ctx is done before all columns ran.
func forEachColumn(ctx context.Context, width, workers int, fn func(x int)) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	for x := range width {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			fn(x)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return ctx.Err()
}
