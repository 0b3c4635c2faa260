// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for lnxdrive-shell. *Logger embeds
// zerolog.Logger, so the whole zerolog API is available on it; components
// get their own tagged child through WithComponent.
package logger

import (
	"context"
	"io"
	"os"
	"runtime"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultLogFile is the log file location relative to the XDG state home.
const DefaultLogFile = "lnxdrive/shell.log"

// Logger is the logger passed to every component.
type Logger struct {
	zerolog.Logger
}

func configureGlobals(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"
}

func newLogger(w io.Writer, role string) *Logger {
	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewLogger returns a JSON logger on stderr. Every line carries role, a
// timestamp and the calling function under "func". level is parsed by
// zerolog; empty or unknown levels enable debug output.
func NewLogger(role, level string) *Logger {
	configureGlobals(level)
	return newLogger(os.Stderr, role)
}

// NewClientLogger constructs a *Logger that appends to path, or to
// $XDG_STATE_HOME/lnxdrive/shell.log when path is empty. Interactive surfaces
// own the terminal, so log lines must not reach stdout. Falls back to
// os.Stderr when the file cannot be opened.
func NewClientLogger(role, level, path string) *Logger {
	configureGlobals(level)

	if path == "" {
		var err error
		if path, err = xdg.StateFile(DefaultLogFile); err != nil {
			return newLogger(os.Stderr, role)
		}
	}

	logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return newLogger(os.Stderr, role)
	}

	return newLogger(logFile, role)
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy that can be enriched without touching l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithComponent returns a child logger tagged with a "component" field.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{l.With().Str("component", name).Logger()}
}

// FromContext returns the logger attached to ctx with zerolog's WithContext,
// or zerolog's default logger. It never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
