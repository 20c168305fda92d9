package cli

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

// newLogger builds the CLI logger. Text output goes through charmbracelet/log
// for humans; json uses the standard JSON handler. Only warnings and errors
// are shown unless verbose is set.
func newLogger(w io.Writer, format string, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	if format == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	}

	handler := log.NewWithOptions(w, log.Options{
		Level:           log.Level(level),
		Prefix:          "uniquepick",
		ReportTimestamp: true,
	})
	return slog.New(handler)
}
