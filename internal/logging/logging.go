// Package logging builds the zerolog loggers used by the CLI and server.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// FormatPretty selects human-readable console output. Any other format writes JSON lines.
const FormatPretty = "pretty"

// Config describes how log lines are written.
type Config struct {
	Level      string `json:"level"`
	Format     string `json:"format"`
	TimeFormat string `json:"time_format"`
}

// New returns a logger writing to w. An unknown level falls back to info.
func New(cfg Config, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	out := w
	if cfg.Format == FormatPretty {
		timeFormat := cfg.TimeFormat
		if timeFormat == "" {
			timeFormat = time.Kitchen
		}
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: timeFormat}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
