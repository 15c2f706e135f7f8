// Package logging wires the process-wide zerolog logger.
package logging

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global logger.
//
// The level parameter can be one of: debug, info, warn, error, fatal.
// Output is human-readable and meant for stderr, so command output on
// stdout stays clean.
func Setup(level string, w io.Writer) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}

	console := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	log.Logger = zerolog.New(console).
		With().
		Timestamp().
		Logger().
		Level(lvl)

	return nil
}

// Component creates a new logger with a component identifier.
// Uses the "cmp" key for consistency with zerolog conventions.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger()
}
