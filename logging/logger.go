// Package logging configures logrus for the visualizer and carries loggers
// through context.Context.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type loggerContextKey string

const loggerContextKeyVal = loggerContextKey("logrus.FieldLogger")

// Formats accepted by Options.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Options selects level, format and destination.
// An empty File writes to Output (stderr when nil); File "-" discards.
type Options struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`

	Output io.Writer `yaml:"-"`
}

// New builds a logger from opts. The returned closer releases the log file, if any.
func New(opts Options) (*logrus.Logger, func() error, error) {
	logger := logrus.New()
	closer := func() error { return nil }

	level := opts.Level
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, closer, fmt.Errorf("logging: %w", err)
	}
	logger.SetLevel(lvl)

	switch opts.Format {
	case "", FormatText:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case FormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, closer, fmt.Errorf("logging: unknown format %q", opts.Format)
	}

	switch {
	case opts.File == "-":
		logger.SetOutput(io.Discard)
	case opts.File != "":
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closer, fmt.Errorf("logging: open %s: %w", opts.File, err)
		}
		logger.SetOutput(f)
		closer = f.Close
	case opts.Output != nil:
		logger.SetOutput(opts.Output)
	default:
		logger.SetOutput(os.Stderr)
	}

	return logger, closer, nil
}

// Logger returns the logger carried by ctx, or the standard logger.
func Logger(ctx context.Context) logrus.FieldLogger {
	if logger, ok := FromContext(ctx); ok {
		return logger
	}
	return logrus.StandardLogger()
}

// FromContext returns the logger carried by ctx, if any.
func FromContext(ctx context.Context) (logrus.FieldLogger, bool) {
	if ctx == nil {
		return nil, false
	}
	logger, ok := ctx.Value(loggerContextKeyVal).(logrus.FieldLogger)

	return logger, ok
}

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger logrus.FieldLogger) context.Context {
	return context.WithValue(ctx, loggerContextKeyVal, logger)
}
