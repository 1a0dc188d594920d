// Package logger configures zerolog for the binaries.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a go-flags option group.
type Logger struct {
	Level  string `long:"log-level"  env:"LOG_LEVEL"  description:"Log level" choice:"trace" choice:"debug" choice:"info" choice:"warn" choice:"error" default:"info"`
	Format string `long:"log-format" env:"LOG_FORMAT" description:"Log output format" choice:"console" choice:"json" default:"console"`
}

// Setup replaces the global logger and returns it. An invalid option falls back to
// info/console and is reported as a warning.
func (l Logger) Setup() zerolog.Logger {
	logger, err := New(l.Level, l.Format, os.Stderr)
	if err != nil {
		logger, _ = New("info", "console", os.Stderr)
		logger.Warn().Err(err).Msg("Invalid logger options, using defaults")
	}

	zerolog.SetGlobalLevel(logger.GetLevel())
	log.Logger = logger
	return logger
}

// New builds a logger writing to w. format is "console" or "json".
func New(level, format string, w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("logger: %w", err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	switch strings.ToLower(format) {
	case "json":
	case "console", "":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.DateTime}
	default:
		return zerolog.Nop(), fmt.Errorf("logger: unknown format %q", format)
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}
