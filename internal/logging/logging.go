// Package logging builds the zap logger used by the command line tools.
package logging

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrFormat is returned for an unknown encoding.
var ErrFormat = errors.New("logging: unknown format")

// Options selects level, encoding and destination.
type Options struct {
	// Level is a zap level name; empty means info.
	Level string
	// Format is "json" (default) or "console".
	Format string
	// Writer overrides the destination, which defaults to stderr.
	Writer io.Writer
}

// New returns a production logger configured by opts.
func New(opts Options) (*zap.Logger, error) {
	levelName := opts.Level
	if levelName == "" {
		levelName = "info"
	}

	level, err := zapcore.ParseLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	switch opts.Format {
	case "", "json":
		cfg.Encoding = "json"
	case "console":
		cfg.Encoding = "console"
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, opts.Format)
	}

	if opts.Writer == nil {
		return cfg.Build()
	}

	var enc zapcore.Encoder
	if cfg.Encoding == "console" {
		enc = zapcore.NewConsoleEncoder(cfg.EncoderConfig)
	} else {
		enc = zapcore.NewJSONEncoder(cfg.EncoderConfig)
	}

	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(opts.Writer), cfg.Level)), nil
}
