package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-peaks/internal/config"
	"github.com/cwbudde/algo-peaks/internal/logging"
	"github.com/cwbudde/algo-peaks/measure/peaks"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	v          *viper.Viper
	configFile string
	cfg        *config.Config
	logger     *zap.Logger
}

// flagKeys maps persistent flag names to viper keys.
var flagKeys = map[string]string{
	"log-level":     "log_level",
	"log-format":    "log_format",
	"output":        "output",
	"workers":       "workers",
	"frame-rate":    "frame_rate",
	"peak-fraction": "peaks.peak_fraction",
	"min-distance":  "peaks.min_distance",
	"filter":        "peaks.filter",
	"min-width":     "peaks.min_width",
	"max-width":     "peaks.max_width",
	"min-height":    "peaks.min_height",
	"fit-floor":     "peaks.fit_floor",
	"auto-distance": "peaks.auto_distance",
	"min-lag":       "period.min_lag",
	"max-lag":       "period.max_lag",
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "peakfind",
		Short: "Detect peaks and compare peak timing in intensity traces",
		Long: `peakfind reads 8-bit intensity traces as CSV (one trace per row) and
detects peaks with an adaptive threshold and a parabolic quality filter.

Subcommands:
- peaks:  list the peaks of every trace
- phase:  coherence and mean phase of every trace against a reference trace
- period: dominant repetition period of every trace`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initialize(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	d := peaks.DefaultConfig()
	pf := root.PersistentFlags()

	pf.StringVar(&a.configFile, "config", "",
		"config file (default is ./peakfind.yaml or $HOME/.config/peakfind/peakfind.yaml)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-format", "json", "log encoding (json, console)")
	pf.StringP("output", "o", "table", "output format (table, json, yaml)")
	pf.Int("workers", 0, "concurrent workers for per-pixel processing (0 = all CPUs)")
	pf.Float64("frame-rate", 24, "acquisition frame rate in frames per second")

	pf.Float64("peak-fraction", d.PeakFraction, "target fraction of each trace above the adaptive threshold")
	pf.Float64("min-distance", d.MinDistance, "minimum distance between peaks in samples")
	pf.Bool("filter", d.DoFiltering, "apply the parabolic quality filter")
	pf.Float64("min-width", d.MinWidth, "minimum fitted peak half-width")
	pf.Float64("max-width", d.MaxWidth, "maximum fitted peak half-width")
	pf.Float64("min-height", d.MinHeight, "minimum fitted peak height above the threshold")
	pf.Float64("fit-floor", d.FitFloor, "exclude fit window edges below this level")
	pf.Bool("auto-distance", false, "derive the minimum distance from the estimated period")
	pf.Int("min-lag", 0, "shortest period considered by the period estimate")
	pf.Int("max-lag", 0, "longest period considered by the period estimate (0 = trace length)")

	root.AddCommand(newPeaksCmd(a), newPhaseCmd(a), newPeriodCmd(a))

	return root
}

// initialize binds the flags, loads the configuration and builds the logger.
func (a *app) initialize(cmd *cobra.Command) error {
	var bindErr error

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return
		}

		if err := a.v.BindPFlag(key, f); err != nil {
			bindErr = err
		}
	})

	if bindErr != nil {
		return fmt.Errorf("bind flags: %w", bindErr)
	}

	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger

	if file := a.v.ConfigFileUsed(); file != "" {
		logger.Debug("using config file", zap.String("path", file))
	}

	return nil
}
