// Package logging builds the structured loggers used by the lambdac CLI.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// RunKey is the field carrying the id of one CLI invocation.
const RunKey = "run"

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Name is shown as the log prefix.
	Name string

	// Log level (debug, info, warn, error)
	Level string

	// Output format: "text", "json" or "logfmt" (default: text)
	Format string

	Timestamps bool

	// Output defaults to os.Stderr.
	Output io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "info",
		Format: "text",
	}
}

// New creates a logger from cfg.
func New(cfg LoggerConfig) *log.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	return log.NewWithOptions(out, log.Options{
		Prefix:          cfg.Name,
		Level:           ParseLevel(cfg.Level),
		Formatter:       parseFormat(cfg.Format),
		ReportTimestamp: cfg.Timestamps,
		TimeFormat:      time.RFC3339,
	})
}

// ParseLevel maps a level name to a log level; unknown names yield info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

func parseFormat(format string) log.Formatter {
	switch strings.ToLower(format) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

// NewRunID returns a fresh id for one CLI run.
func NewRunID() string {
	return uuid.NewString()
}

// WithRun returns a child logger tagging every line with a new run id.
func WithRun(l *log.Logger) (*log.Logger, string) {
	id := NewRunID()
	return l.With(RunKey, id), id
}
