// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors used by every go-appconfig-reader command.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, etc.) are available directly on *Logger.
// A command builds exactly one *Logger at startup and passes it by pointer
// to every constructor that needs it; no package keeps a global logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Output formats accepted by [NewLogger].
const (
	FormatAuto    = ""
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Field names attached to every log entry.
const (
	NameFieldName  = "logger"
	RunIDFieldName = "run_id"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger named name that writes to out.
//
// The logger is configured with:
//   - the level parsed from level ("debug", "info", "warn", ...; empty means
//     info);
//   - a "logger" field set to name, the equivalent of a named logger;
//   - a "run_id" field unique to this process invocation;
//   - a timestamp on every entry;
//   - a "func" caller field that records the fully-qualified function name
//     (instead of the default file:line format) for easier log navigation.
//
// format selects JSON or human-readable console output. With [FormatAuto]
// console output is used when out is a terminal.
func NewLogger(name string, out io.Writer, level, format string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	w, err := newWriter(out, format)
	if err != nil {
		return nil, err
	}

	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).Level(lvl).With().
		Str(NameFieldName, name).
		Str(RunIDFieldName, newRunID()).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}, nil
}

// newRunID returns a time-ordered UUIDv7, falling back to a random UUIDv4.
func newRunID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// ParseLevel converts a textual level into a zerolog.Level. The empty string
// maps to info.
func ParseLevel(level string) (zerolog.Level, error) {
	level = strings.TrimSpace(strings.ToLower(level))
	if level == "" {
		return zerolog.InfoLevel, nil
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}

	return lvl, nil
}

func newWriter(out io.Writer, format string) (io.Writer, error) {
	switch strings.TrimSpace(strings.ToLower(format)) {
	case FormatJSON:
		return out, nil
	case FormatConsole:
		return newConsoleWriter(out), nil
	case FormatAuto:
		if isTerminal(out) {
			return newConsoleWriter(out), nil
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func newConsoleWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    !isTerminal(out),
		TimeFormat: time.DateTime,
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			NameFieldName,
			zerolog.LevelFieldName,
			zerolog.MessageFieldName,
		},
		FieldsExclude: []string{NameFieldName, RunIDFieldName, zerolog.CallerFieldName},
	}
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}
