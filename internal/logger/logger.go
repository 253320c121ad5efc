// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the fin-tracker server and API client.
//
// cmd/server builds one root *Logger. The HTTP layer derives a child per
// request carrying the trace id and stores it in the request context, where
// handlers and services pick it up with FromRequest or FromContext.
package logger

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger, so the usual Debug/Info/Err chain is
// available on it directly.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger writing to stdout. Every entry carries the
// service name, a timestamp and the calling function under "func".
func NewLogger(service string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{zerolog.New(os.Stdout).With().
		Str("service", service).
		Timestamp().
		Caller().
		Logger()}
}

// NewConsoleLogger renders the entries of [NewLogger] for a terminal. It is
// used when APP_ENV is "development".
func NewConsoleLogger(service string) *Logger {
	l := NewLogger(service)
	l.Logger = l.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.TimeOnly})
	return l
}

// Nop discards everything. Tests use it.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithTraceID returns a child logger tagging every entry with trace_id.
func (l *Logger) WithTraceID(traceID string) *Logger {
	return &Logger{l.With().Str("trace_id", traceID).Logger()}
}

// FromRequest returns the request-scoped logger put into r's context by the
// trace id middleware.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger stored in ctx. Without one it is zerolog's
// DefaultContextLogger, or a disabled logger when that is unset, so the
// result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
