package logger

import (
	"fmt"
	"io"
	"lol-watcher/internal/config"
	"os"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Mode int

const (
	// ModeConsole writes human readable lines to stderr.
	ModeConsole Mode = iota
	// ModeTerminalUI keeps the terminal clean; logs go to a file or nowhere.
	ModeTerminalUI
)

type Options struct {
	Mode Mode
}

func New(lc fx.Lifecycle, opts Options, cfg *config.Config) (zerolog.Logger, error) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	var out io.Writer
	switch {
	case opts.Mode == ModeConsole:
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("failed to open log file: %w", err)
		}
		lc.Append(fx.StopHook(f.Close))
		out = f
	default:
		out = io.Discard
	}

	logger := zerolog.New(out).
		With().
		Timestamp().
		Logger()

	return logger.Level(ParseLevel(cfg.LogLevel)), nil
}

func ParseLevel(level string) zerolog.Level {
	l, err := zerolog.ParseLevel(level)
	if err != nil || l == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return l
}

var Module = fx.Provide(New)
