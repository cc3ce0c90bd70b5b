package main

import (
	"go.uber.org/zap"

	"github.com/cwbudde/algo-peaks/measure/peaks"
)

// detectorFor returns the detector for trace. With auto distance enabled
// the minimum distance is half the estimated period of the trace; if no
// period is found the configured distance is kept.
func (a *app) detectorFor(index int, trace []int) *peaks.Detector {
	opts := a.cfg.PeakOptions()

	if a.cfg.Peaks.AutoDistance {
		period, err := peaks.EstimatePeriod(toFloat(trace), a.cfg.Period.MinLag, a.cfg.Period.MaxLag)
		if err != nil {
			a.logger.Warn("period estimate failed, keeping configured distance",
				zap.Int("trace", index),
				zap.Error(err),
			)
		} else {
			opts = append(opts, peaks.WithMinDistance(peaks.DistanceFromPeriod(period)))
			a.logger.Debug("derived minimum distance",
				zap.Int("trace", index),
				zap.Float64("period", period),
			)
		}
	}

	return peaks.NewDetector(opts...)
}
