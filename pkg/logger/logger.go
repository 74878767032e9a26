// Package logger builds the root zerolog logger for the dashboard backend.
// The root carries the level, the output format and the service field; every
// component derives its own child from it via log.With(), so this package
// owns nothing but the bootstrap.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const serviceName = "kapital"

// New builds the root logger. level is one of debug/info/warn/error
// (anything unrecognized falls back to info). dev switches to the human
// console writer for local runs; production emits JSON lines on stderr.
func New(level string, dev bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339

	var out io.Writer = os.Stderr
	if dev {
		out = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: "15:04:05",
		}
	}

	return zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger()
}
