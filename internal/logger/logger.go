// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the blocklist service and its CLI.
//
// Every component receives a *Logger at construction time. Request-scoped
// loggers (carrying the trace id) travel in the context and are recovered
// with FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger so the full zerolog API is available on *Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger writing to stdout at debug level.
// Every entry carries the role (e.g. "server", "worker"), a timestamp and the
// calling function name in the "func" field.
func NewLogger(role string) *Logger {
	return New(role, os.Stdout, zerolog.DebugLevel)
}

// New returns a logger for role that writes to w and emits entries at level
// and above.
func New(role string, w io.Writer, level zerolog.Level) *Logger {
	zerolog.SetGlobalLevel(level)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// ParseLevel converts a textual level ("debug", "info", ...) to a zerolog
// level. Unknown or empty values yield debug.
func ParseLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.DebugLevel
	}
	return parsed
}

// Nop returns a *Logger that discards all output. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of l that can be enriched with extra fields
// without affecting l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx with zerolog's WithContext.
// If none is attached the zerolog default logger is returned, never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
