// Package config loads peakfind settings from defaults, a YAML file,
// PEAKFIND_* environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/cwbudde/algo-peaks/measure/peaks"
)

// EnvPrefix prefixes every environment variable, e.g.
// PEAKFIND_PEAKS_MIN_DISTANCE.
const EnvPrefix = "PEAKFIND"

var (
	// ErrOutputFormat is returned for an unsupported output format.
	ErrOutputFormat = errors.New("config: unknown output format")
	// ErrFrameRate is returned for a frame rate that is not positive.
	ErrFrameRate = errors.New("config: frame rate must be positive")
)

// Config is the complete peakfind configuration.
type Config struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	Output    string `mapstructure:"output"`
	// Workers bounds concurrent pixel processing; 0 uses every CPU.
	Workers int `mapstructure:"workers"`
	// FrameRate is the acquisition rate in frames per second.
	FrameRate float64 `mapstructure:"frame_rate"`

	Peaks  PeakConfig   `mapstructure:"peaks"`
	Period PeriodConfig `mapstructure:"period"`
}

// PeakConfig mirrors peaks.Config.
type PeakConfig struct {
	PeakFraction float64 `mapstructure:"peak_fraction"`
	MinDistance  float64 `mapstructure:"min_distance"`
	Filter       bool    `mapstructure:"filter"`
	MinWidth     float64 `mapstructure:"min_width"`
	MaxWidth     float64 `mapstructure:"max_width"`
	MinHeight    float64 `mapstructure:"min_height"`
	FitFloor     float64 `mapstructure:"fit_floor"`
	// AutoDistance derives MinDistance from the estimated period of each
	// trace.
	AutoDistance bool `mapstructure:"auto_distance"`
}

// PeriodConfig bounds the period search in samples; 0 means unbounded.
type PeriodConfig struct {
	MinLag int `mapstructure:"min_lag"`
	MaxLag int `mapstructure:"max_lag"`
}

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	return v
}

// SetDefaults registers the default of every key.
func SetDefaults(v *viper.Viper) {
	d := peaks.DefaultConfig()

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("output", "table")
	v.SetDefault("workers", 0)
	v.SetDefault("frame_rate", 24.0)

	v.SetDefault("peaks.peak_fraction", d.PeakFraction)
	v.SetDefault("peaks.min_distance", d.MinDistance)
	v.SetDefault("peaks.filter", d.DoFiltering)
	v.SetDefault("peaks.min_width", d.MinWidth)
	v.SetDefault("peaks.max_width", d.MaxWidth)
	v.SetDefault("peaks.min_height", d.MinHeight)
	v.SetDefault("peaks.fit_floor", d.FitFloor)
	v.SetDefault("peaks.auto_distance", false)

	v.SetDefault("period.min_lag", 0)
	v.SetDefault("period.max_lag", 0)
}

// Load reads the config file into v and decodes the result. An explicit
// file must exist; otherwise peakfind.yaml is searched in the working
// directory and in $HOME/.config/peakfind, and its absence is not an error.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "peakfind"))
		}
		v.SetConfigName("peakfind")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the values that cannot be clamped.
func (c *Config) Validate() error {
	switch c.Output {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("%w: %q", ErrOutputFormat, c.Output)
	}

	if !(c.FrameRate > 0) {
		return fmt.Errorf("%w: %v", ErrFrameRate, c.FrameRate)
	}

	return nil
}

// PeakOptions converts the peak settings into detector options.
func (c *Config) PeakOptions() []peaks.Option {
	p := c.Peaks

	return []peaks.Option{
		peaks.WithPeakFraction(p.PeakFraction),
		peaks.WithMinDistance(p.MinDistance),
		peaks.WithFiltering(p.Filter),
		peaks.WithWidthRange(p.MinWidth, p.MaxWidth),
		peaks.WithMinHeight(p.MinHeight),
		peaks.WithFitFloor(p.FitFloor),
	}
}
