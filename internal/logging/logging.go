// Package logging builds the zerolog loggers used across pokecatch and carries
// them, together with trace identifiers, through context.Context.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Output destinations.
const (
	OutputStderr = "stderr"
	OutputFile   = "file"
)

// Output formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config describes how a logger is constructed.
type Config struct {
	Level  string // trace, debug, info, warn, error
	Format string // json or console
	Output string // stderr or file
	File   string // path used when Output is "file"
	Caller bool
}

// LogPathResult is returned by NewLoggerWithPath so callers can tell the user
// where logs are going and release the file handle on exit.
type LogPathResult struct {
	Logger         zerolog.Logger
	UsingFile      bool
	FilePath       string
	FallbackUsed   bool
	FallbackReason string
	// Stderr is set when logs go to stderr, so a terminal UI can hold them.
	Stderr *HoldWriter

	file *os.File
}

// Close releases the log file handle, if any.
func (r *LogPathResult) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// NewLogger builds a logger writing to w.
func NewLogger(w io.Writer, cfg Config) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	if cfg.Format == FormatConsole {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(w).Level(lvl).With().Timestamp()
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// NewLoggerWithPath builds a logger from cfg. When file output is requested
// but the file cannot be opened, it falls back to stderr and records why.
func NewLoggerWithPath(cfg Config) LogPathResult {
	if cfg.Output != OutputFile || cfg.File == "" {
		stderr := NewHoldWriter(os.Stderr)
		return LogPathResult{Logger: NewLogger(stderr, cfg), Stderr: stderr}
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o750); err != nil {
		stderr := NewHoldWriter(os.Stderr)
		return LogPathResult{
			Logger:         NewLogger(stderr, cfg),
			Stderr:         stderr,
			FallbackUsed:   true,
			FallbackReason: fmt.Sprintf("creating log directory: %v", err),
		}
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		stderr := NewHoldWriter(os.Stderr)
		return LogPathResult{
			Logger:         NewLogger(stderr, cfg),
			Stderr:         stderr,
			FallbackUsed:   true,
			FallbackReason: fmt.Sprintf("opening log file: %v", err),
		}
	}

	return LogPathResult{
		Logger:    NewLogger(f, cfg),
		UsingFile: true,
		FilePath:  cfg.File,
		file:      f,
	}
}

// ComponentLogger returns a child logger tagged with the component name.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// PrintLogPathMessage tells the user where logs are written.
func PrintLogPathMessage(w io.Writer, path string) {
	_, _ = fmt.Fprintf(w, "Logging to %s\n", path)
}

// PrintFallbackWarning tells the user that file logging was not possible.
func PrintFallbackWarning(w io.Writer, reason string) {
	_, _ = fmt.Fprintf(w, "Warning: file logging unavailable (%s), logging to stderr\n", reason)
}
