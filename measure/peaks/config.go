package peaks

import (
	"math"

	"github.com/cwbudde/algo-peaks/dsp/core"
)

const (
	defaultPeakFraction = 0.5
	defaultMinDistance  = 20.0
	defaultMinWidth     = 1.0
	defaultMaxWidth     = 100.0
	defaultMinHeight    = 5.5

	minMinDistance = 2.0
	minMinWidth    = 1.0
)

// Config holds peak detection parameters.
type Config struct {
	// PeakFraction is the target fraction of the trace above the adaptive
	// threshold, in [0, 1]. Only used by Detector.Threshold.
	PeakFraction float64
	// MinDistance is the minimum separation between two peaks, in samples.
	MinDistance float64
	// DoFiltering enables the parabolic quality filter.
	DoFiltering bool
	// MinWidth and MaxWidth bound the fitted half-width of a peak.
	MinWidth float64
	MaxWidth float64
	// MinHeight is the minimum fitted apex height.
	MinHeight float64
	// FitFloor narrows the fitting window: boundary samples below it are
	// excluded from the fit.
	FitFloor float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the detection defaults for 8-bit calcium imaging
// stacks.
func DefaultConfig() Config {
	return Config{
		PeakFraction: defaultPeakFraction,
		MinDistance:  defaultMinDistance,
		DoFiltering:  true,
		MinWidth:     defaultMinWidth,
		MaxWidth:     defaultMaxWidth,
		MinHeight:    defaultMinHeight,
	}
}

// WithPeakFraction sets the target fraction of the trace above threshold.
func WithPeakFraction(fraction float64) Option {
	return func(cfg *Config) {
		cfg.PeakFraction = fraction
	}
}

// WithMinDistance sets the minimum peak separation in samples.
func WithMinDistance(distance float64) Option {
	return func(cfg *Config) {
		cfg.MinDistance = distance
	}
}

// WithFiltering enables or disables the parabolic quality filter.
func WithFiltering(enabled bool) Option {
	return func(cfg *Config) {
		cfg.DoFiltering = enabled
	}
}

// WithWidthRange sets the accepted fitted half-width range.
func WithWidthRange(minWidth, maxWidth float64) Option {
	return func(cfg *Config) {
		cfg.MinWidth = minWidth
		cfg.MaxWidth = maxWidth
	}
}

// WithMinHeight sets the minimum fitted apex height.
func WithMinHeight(height float64) Option {
	return func(cfg *Config) {
		cfg.MinHeight = height
	}
}

// WithFitFloor sets the level below which boundary samples are excluded
// from the fitting window.
func WithFitFloor(floor float64) Option {
	return func(cfg *Config) {
		cfg.FitFloor = floor
	}
}

// ApplyOptions applies zero or more options to the default config and
// normalizes the result.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return normalizeConfig(cfg)
}

// Normalize returns cfg with every parameter clamped into its valid range.
func (cfg Config) Normalize() Config {
	return normalizeConfig(cfg)
}

func normalizeConfig(cfg Config) Config {
	if math.IsNaN(cfg.PeakFraction) {
		cfg.PeakFraction = defaultPeakFraction
	}
	cfg.PeakFraction = core.Clamp(cfg.PeakFraction, 0, 1)

	if math.IsNaN(cfg.MinDistance) {
		cfg.MinDistance = defaultMinDistance
	}
	cfg.MinDistance = max(cfg.MinDistance, minMinDistance)

	if math.IsNaN(cfg.MinWidth) {
		cfg.MinWidth = defaultMinWidth
	}
	cfg.MinWidth = max(cfg.MinWidth, minMinWidth)

	if math.IsNaN(cfg.MaxWidth) {
		cfg.MaxWidth = defaultMaxWidth
	}
	cfg.MaxWidth = max(cfg.MaxWidth, cfg.MinWidth)

	if math.IsNaN(cfg.MinHeight) {
		cfg.MinHeight = defaultMinHeight
	}
	cfg.MinHeight = max(cfg.MinHeight, 0)

	if math.IsNaN(cfg.FitFloor) {
		cfg.FitFloor = 0
	}

	return cfg
}
