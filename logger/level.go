package logger

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

// TraceLevel is one step more verbose than zapcore.DebugLevel.
// Zap has no built-in trace level, so the facade claims the next
// numeric slot below debug and renders it through its own level encoder.
const TraceLevel = zapcore.Level(-2)

// ParseLogLevel converts a string representation of a log level
// to the corresponding zapcore.Level value.
// Leading and trailing whitespace is ignored and matching is case-insensitive.
// The second return value reports whether the input was recognized;
// unrecognized input falls back to zapcore.InfoLevel.
func ParseLogLevel(level string) (zapcore.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return TraceLevel, true
	case "debug":
		return zapcore.DebugLevel, true
	case "info":
		return zapcore.InfoLevel, true
	case "warn":
		return zapcore.WarnLevel, true
	case "error":
		return zapcore.ErrorLevel, true
	case "dpanic":
		return zapcore.DPanicLevel, true
	case "panic":
		return zapcore.PanicLevel, true
	case "fatal":
		return zapcore.FatalLevel, true
	default:
		return zapcore.InfoLevel, false
	}
}

// levelLabel returns the upper-case display name of a level,
// including the facade's trace extension.
func levelLabel(level zapcore.Level) string {
	if level == TraceLevel {
		return "TRACE"
	}

	return level.CapitalString()
}

// encodeLevel is a zapcore level encoder that knows about TraceLevel.
func encodeLevel(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(levelLabel(level))
}
