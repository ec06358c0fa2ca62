// Package logger provides structured JSON logging using zerolog.
package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ServiceName is attached to every log line.
const ServiceName = "spool-service"

// Init initializes the global logger. Unknown levels fall back to info.
func Init(level string, pretty bool) {
	InitWithWriter(level, pretty, os.Stderr)
}

// InitWithWriter is Init with an explicit destination.
func InitWithWriter(level string, pretty bool, w io.Writer) {
	logLevel, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || logLevel == zerolog.NoLevel {
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Str("service", ServiceName).Logger()
}

// Logger returns the global logger instance.
func Logger() zerolog.Logger {
	return log.Logger
}

// WithRequestID returns a logger tagged with the request id.
func WithRequestID(requestID string) zerolog.Logger {
	if requestID == "" {
		return log.Logger
	}
	return log.Logger.With().Str("request_id", requestID).Logger()
}

type requestIDKey struct{}

// ContextWithRequestID stores the request id on ctx so code below the HTTP
// layer can log with it.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext returns the id stored by ContextWithRequestID.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// FromContext returns the global logger tagged with the request id carried
// by ctx, if any.
func FromContext(ctx context.Context) zerolog.Logger {
	return WithRequestID(RequestIDFromContext(ctx))
}
