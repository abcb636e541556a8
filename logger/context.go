package logger

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// CorrelationIDKey is the field name under which correlation identifiers
// are attached to log entries.
const CorrelationIDKey = "correlation_id"

// fieldsKey carries context-scoped logging fields.
type fieldsKey struct{}

// correlationIDKey carries the correlation identifier for retrieval.
type correlationIDKey struct{}

// ToContext attaches key-value pairs to the context.
// Every leveled call made with the returned context includes them,
// accumulating with fields attached earlier.
func ToContext(ctx context.Context, kvs ...any) context.Context {
	if len(kvs) == 0 {
		return ctx
	}

	existing, _ := ctx.Value(fieldsKey{}).([]any)

	merged := make([]any, 0, len(existing)+len(kvs))
	merged = append(merged, existing...)
	merged = append(merged, kvs...)

	return context.WithValue(ctx, fieldsKey{}, merged)
}

// WithCorrelationID attaches a freshly generated correlation identifier
// to the context, both as a logging field and for retrieval via
// CorrelationIDFromContext.
func WithCorrelationID(ctx context.Context) context.Context {
	id := uuid.NewString()
	ctx = context.WithValue(ctx, correlationIDKey{}, id)

	return ToContext(ctx, CorrelationIDKey, id)
}

// CorrelationIDFromContext returns the correlation identifier attached by
// WithCorrelationID, or an empty string if none is present.
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)

	return id
}

// fromContext returns the installed logger enriched with the context's
// fields, or a no-op logger while uninitialized.
func fromContext(ctx context.Context) *zap.SugaredLogger {
	h := current.Load()
	if h == nil {
		return nop
	}

	logger := h.base

	if ctx != nil {
		if kvs, ok := ctx.Value(fieldsKey{}).([]any); ok && len(kvs) > 0 {
			logger = logger.With(kvs...)
		}
	}

	return logger
}

// Log logs a message at an arbitrary level using fmt.Sprint semantics.
func Log(ctx context.Context, level zapcore.Level, args ...any) {
	if !backendEnabled {
		return
	}

	fromContext(ctx).Log(level, args...)
}

// Logf logs a formatted message at an arbitrary level.
func Logf(ctx context.Context, level zapcore.Level, format string, args ...any) {
	if !backendEnabled {
		return
	}

	fromContext(ctx).Logf(level, format, args...)
}

// LogKV logs a message at an arbitrary level with structured key-value pairs.
func LogKV(ctx context.Context, level zapcore.Level, message string, kvs ...any) {
	if !backendEnabled {
		return
	}

	fromContext(ctx).Logw(level, message, kvs...)
}

// Trace logs a message at trace level using fmt.Sprint semantics.
func Trace(ctx context.Context, args ...any) {
	if !backendEnabled {
		return
	}

	fromContext(ctx).Log(TraceLevel, args...)
}

// Tracef logs a formatted message at trace level.
func Tracef(ctx context.Context, format string, args ...any) {
	if !backendEnabled {
		return
	}

	fromContext(ctx).Logf(TraceLevel, format, args...)
}

// TraceKV logs a message at trace level with structured key-value pairs.
func TraceKV(ctx context.Context, message string, kvs ...any) {
	if !backendEnabled {
		return
	}

	fromContext(ctx).Logw(TraceLevel, message, kvs...)
}

// Debug logs a message at debug level using fmt.Sprint semantics.
func Debug(ctx context.Context, args ...any) {
	if !backendEnabled {
		return
	}

	fromContext(ctx).Debug(args...)
}

// Debugf logs a formatted message at debug level.
func Debugf(ctx context.Context, format string, args ...any) {
	if !backendEnabled {
		return
	}

	fromContext(ctx).Debugf(format, args...)
}

// DebugKV logs a message at debug level with structured key-value pairs.
func DebugKV(ctx context.Context, message string, kvs ...any) {
	if !backendEnabled {
		return
	}

	fromContext(ctx).Debugw(message, kvs...)
}

// Info logs a message at info level using fmt.Sprint semantics.
func Info(ctx context.Context, args ...any) {
	if !backendEnabled {
		return
	}

	fromContext(ctx).Info(args...)
}

// Infof logs a formatted message at info level.
func Infof(ctx context.Context, format string, args ...any) {
	if !backendEnabled {
		return
	}

	fromContext(ctx).Infof(format, args...)
}

// InfoKV logs a message at info level with structured key-value pairs.
func InfoKV(ctx context.Context, message string, kvs ...any) {
	if !backendEnabled {
		return
	}

	fromContext(ctx).Infow(message, kvs...)
}

// Warn logs a message at warn level using fmt.Sprint semantics.
func Warn(ctx context.Context, args ...any) {
	if !backendEnabled {
		return
	}

	fromContext(ctx).Warn(args...)
}

// Warnf logs a formatted message at warn level.
func Warnf(ctx context.Context, format string, args ...any) {
	if !backendEnabled {
		return
	}

	fromContext(ctx).Warnf(format, args...)
}

// WarnKV logs a message at warn level with structured key-value pairs.
func WarnKV(ctx context.Context, message string, kvs ...any) {
	if !backendEnabled {
		return
	}

	fromContext(ctx).Warnw(message, kvs...)
}

// Error logs a message at error level using fmt.Sprint semantics.
func Error(ctx context.Context, args ...any) {
	if !backendEnabled {
		return
	}

	fromContext(ctx).Error(args...)
}

// Errorf logs a formatted message at error level.
func Errorf(ctx context.Context, format string, args ...any) {
	if !backendEnabled {
		return
	}

	fromContext(ctx).Errorf(format, args...)
}

// ErrorKV logs a message at error level with structured key-value pairs.
func ErrorKV(ctx context.Context, message string, kvs ...any) {
	if !backendEnabled {
		return
	}

	fromContext(ctx).Errorw(message, kvs...)
}

// Fatal logs a message at fatal level and terminates the process.
// Zap's fatal semantics apply even while uninitialized.
func Fatal(ctx context.Context, args ...any) {
	fromContext(ctx).Fatal(args...)
}

// Fatalf logs a formatted message at fatal level and terminates the process.
func Fatalf(ctx context.Context, format string, args ...any) {
	fromContext(ctx).Fatalf(format, args...)
}

// FatalKV logs a message at fatal level with structured key-value pairs
// and terminates the process.
func FatalKV(ctx context.Context, message string, kvs ...any) {
	fromContext(ctx).Fatalw(message, kvs...)
}
