// Package logger builds the slog.Logger used by the assistant.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Options selects the level, format and destination of log output.
type Options struct {
	Level  string `mapstructure:"level" yaml:"level"`   // debug, info, warn or error; empty means warn
	Format string `mapstructure:"format" yaml:"format"` // text or json
	File   string `mapstructure:"file" yaml:"file"`     // append to file; empty or "-" means Output

	// Output receives logs when File is empty. Defaults to os.Stderr so logs
	// never mix with command output on stdout.
	Output io.Writer `mapstructure:"-" yaml:"-"`
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(option string) (slog.Leveler, bool) {
	switch strings.ToLower(option) {
	case "":
		return slog.LevelWarn, true
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return nil, false
	}
}

// New returns a logger for options and the closer of its destination. The
// closer must be called once the logger is no longer used; it is a no-op
// unless File names a log file. Unusable options fall back to their
// defaults and the fallback is logged as a warning.
func New(options *Options) (*slog.Logger, io.Closer) {
	level, ok := ParseLevel(options.Level)
	if !ok {
		bad := options.Level
		options.Level = ""
		logger, closer := New(options)
		logger.Warn("could not parse logger level", "level", bad)
		return logger, closer
	}
	opts := slog.HandlerOptions{Level: level}

	format := strings.ToLower(options.Format)
	switch format {
	case "", "text", "json":
	default:
		bad := options.Format
		options.Format = "text"
		logger, closer := New(options)
		logger.Warn("could not parse logger format", "format", bad)
		return logger, closer
	}

	var (
		output io.Writer
		closer io.Closer = nopCloser{}
	)
	switch options.File {
	case "", "-":
		output = options.Output
		if output == nil {
			output = os.Stderr
		}
	case os.DevNull:
		return slog.New(slog.DiscardHandler), closer
	default:
		f, err := os.OpenFile(options.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			options.File = ""
			logger, closer := New(options)
			logger.Warn("could not open logger file", "err", err)
			return logger, closer
		}
		output, closer = f, f
	}

	if format == "json" {
		return slog.New(slog.NewJSONHandler(output, &opts)), closer
	}
	return slog.New(slog.NewTextHandler(output, &opts)), closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
