// Package logger configures the structured logger shared by the CLI and services.
// Output goes to stderr (or a file) so answers on stdout stay machine readable.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Config selects the level and destination of log output.
type Config struct {
	Level string // debug, info, warn, error; empty means warn
	File  string // optional; appended to instead of stderr
}

// DefaultLevel keeps normal runs quiet apart from answer mismatches.
const DefaultLevel = "warn"

// New builds a logger from cfg. The returned close func releases the log file, if any.
func New(cfg Config, stderr io.Writer) (*log.Logger, func() error, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	out := stderr
	closer := func() error { return nil }
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closer = f.Close
	}

	l := log.NewWithOptions(out, log.Options{
		Level:           level,
		Prefix:          "aoc",
		ReportTimestamp: false,
	})
	l.SetStyles(styles())
	return l, closer, nil
}

// Discard returns a logger that drops everything; handy in tests.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// ParseLevel converts a level name; an empty string selects DefaultLevel.
func ParseLevel(s string) (log.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		s = DefaultLevel
	}
	level, err := log.ParseLevel(s)
	if err != nil {
		return 0, fmt.Errorf("invalid log level %q (want debug, info, warn or error)", s)
	}
	return level, nil
}

func styles() *log.Styles {
	s := log.DefaultStyles()
	badge := func(label, bg string) lipgloss.Style {
		return lipgloss.NewStyle().
			SetString(label).
			Padding(0, 1, 0, 1).
			Background(lipgloss.Color(bg)).
			Foreground(lipgloss.Color("15"))
	}
	s.Levels[log.DebugLevel] = badge("DEBUG", "240")
	s.Levels[log.InfoLevel] = badge("INFO", "33")
	s.Levels[log.WarnLevel] = badge("WARN", "214")
	s.Levels[log.ErrorLevel] = badge("ERROR", "196")

	s.Keys["day"] = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
	s.Values["day"] = lipgloss.NewStyle().Bold(true)
	s.Keys["err"] = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	return s
}
