package logging

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

type contextKey string

const (
	traceIDKey    contextKey = "trace_id"
	stderrHoldKey contextKey = "stderr_hold"
)

// NewID returns a new ULID string. Used for trace IDs and fetch cycle IDs.
func NewID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

// ContextWithTraceID stores the trace ID in ctx.
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

// TraceIDFromContext returns the trace ID stored in ctx, or "".
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(traceIDKey).(string)
	return id
}

// GetOrGenerateTraceID returns the trace ID in ctx or generates a new one.
func GetOrGenerateTraceID(ctx context.Context) string {
	if id := TraceIDFromContext(ctx); id != "" {
		return id
	}
	return NewID()
}

// FromContext returns the logger attached to ctx, with its trace ID field.
// A disabled logger is returned when ctx carries none.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		l := zerolog.Nop()
		return &l
	}
	l := zerolog.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled {
		return l
	}
	if id := TraceIDFromContext(ctx); id != "" {
		child := l.With().Str("trace_id", id).Logger()
		return &child
	}
	return l
}

// ContextWithStderrHold stores the writer behind stderr logging in ctx.
func ContextWithStderrHold(ctx context.Context, h *HoldWriter) context.Context {
	return context.WithValue(ctx, stderrHoldKey, h)
}

// StderrHoldFromContext returns the stderr log writer stored in ctx, or nil
// when logs go to a file.
func StderrHoldFromContext(ctx context.Context) *HoldWriter {
	if ctx == nil {
		return nil
	}
	h, _ := ctx.Value(stderrHoldKey).(*HoldWriter)
	return h
}
