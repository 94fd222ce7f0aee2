// Package equitylog builds the charmbracelet/log loggers solve callers
// inject via equity.WithLogger. The solver itself stays silent by default;
// callers opt into diagnostics explicitly.
package equitylog

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New builds a logger writing to os.Stderr at the given level.
func New(level log.Level) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "equity",
	})
}

// Discard builds a logger that writes nowhere, for tests and callers that
// don't want diagnostics but still need a non-nil equity.Logger.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

// ParseLevel maps a config string ("debug", "info", "warn", "error") to a
// log.Level, defaulting to log.InfoLevel for anything unrecognized.
func ParseLevel(s string) log.Level {
	level, err := log.ParseLevel(s)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
