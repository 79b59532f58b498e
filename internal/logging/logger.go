package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

type Component string

const (
	ComponentLedger Component = "Ledger"
	ComponentEvents Component = "Events"
	ComponentConfig Component = "Config"
	ComponentCLI    Component = "CLI"
)

// New builds a logger writing to w. format is "json" or "console".
// Writes are serialized, so w may be shared by several goroutines.
func New(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}

	w = zerolog.SyncWriter(w)

	if format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// For tags every entry of the returned logger with the component name
func For(logger zerolog.Logger, component Component) zerolog.Logger {
	return logger.With().Str("component", string(component)).Logger()
}
