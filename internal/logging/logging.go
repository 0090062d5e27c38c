// Package logging configures the process-wide zerolog logger.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "warn"

// Setup points the global logger at w with a console writer and applies
// level. An unknown level falls back to DefaultLevel and is reported.
func Setup(w io.Writer, level string) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: os.Getenv("NO_COLOR") != ""}
	logger := zerolog.New(console).With().Timestamp().Logger()

	level = strings.TrimSpace(strings.ToLower(level))
	if level == "" {
		level = DefaultLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl, _ = zerolog.ParseLevel(DefaultLevel)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = logger
	if err != nil {
		logger.Warn().Str("level", level).Msg("unknown log level, using " + DefaultLevel)
	}
	return logger
}
