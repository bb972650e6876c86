// Package logger is the structured logger shared by every command.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Options configure New.
type Options struct {
	// Level is one of trace, debug, info, warn (or warning) and error.
	// Empty means info.
	Level string
	// HumanReadable switches from JSON lines to zerolog's console format.
	HumanReadable bool
	// NoColor drops ANSI colours from the console format.
	NoColor bool
	// Writer defaults to stdout.
	Writer io.Writer
}

// Logger is a thin, nil-safe facade over zerolog.
type Logger struct {
	z zerolog.Logger
}

// ParseLevel maps a settings value to a zerolog level.
func ParseLevel(value string) (zerolog.Level, error) {
	switch v := strings.ToLower(strings.TrimSpace(value)); v {
	case "":
		return zerolog.InfoLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	case "trace", "debug", "info", "warn", "error":
		return zerolog.ParseLevel(v)
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", value)
	}
}

// New builds a Logger writing timestamped entries to opts.Writer.
func New(opts Options) (*Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	out := opts.Writer
	if out == nil {
		out = os.Stdout
	}
	if opts.HumanReadable {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen, NoColor: opts.NoColor}
	}

	return &Logger{z: zerolog.New(out).Level(level).With().Timestamp().Logger()}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{z: zerolog.Nop()}
}

// WithFields returns a child logger that adds fields to every entry.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{z: l.z.With().Fields(fields).Logger()}
}

// With is WithFields for a single field.
func (l *Logger) With(key string, value any) *Logger {
	return l.WithFields(map[string]any{key: value})
}

// WithCorrelationID tags every entry with a fresh correlation_id. Commands
// call it once per invocation.
func (l *Logger) WithCorrelationID() *Logger {
	return l.With("correlation_id", uuid.NewString())
}

func (l *Logger) Trace(msg string) { l.emit(zerolog.TraceLevel, nil, msg) }

func (l *Logger) Debug(msg string) { l.emit(zerolog.DebugLevel, nil, msg) }

func (l *Logger) Info(msg string) { l.emit(zerolog.InfoLevel, nil, msg) }

func (l *Logger) Warn(msg string) { l.emit(zerolog.WarnLevel, nil, msg) }

// Error logs msg at error level with err attached under "error".
func (l *Logger) Error(err error, msg string) { l.emit(zerolog.ErrorLevel, err, msg) }

func (l *Logger) emit(level zerolog.Level, err error, msg string) {
	if l == nil {
		return
	}
	ev := l.z.WithLevel(level)
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msg(msg)
}
