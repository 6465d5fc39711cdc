package logger

import (
	"io"
	"log/slog"
	"os"
)

// Service is stamped on every record.
const Service = "agegate"

// New returns a structured JSON logger on stdout tagged with the environment.
func New(level slog.Level, environment string) *slog.Logger {
	return NewWithWriter(os.Stdout, level, environment)
}

// NewWithWriter returns a structured JSON logger writing to w. An empty
// environment is left out of the records.
func NewWithWriter(w io.Writer, level slog.Level, environment string) *slog.Logger {
	log := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	log = log.With("service", Service)
	if environment != "" {
		log = log.With("environment", environment)
	}
	return log
}
