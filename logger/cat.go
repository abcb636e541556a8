package logger

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// Cat is a tag-scoped logger that needs no initialization.
// In development builds it writes colored lines straight to standard error,
// so diagnostics work before (or without) Initialize.
// In release builds ("release" tag) it delegates to the installed
// process-wide logger under its tag and is a no-op while uninitialized.
type Cat struct {
	tag string
}

// NewCat returns a tag logger writing under the given tag.
func NewCat(tag string) Cat {
	return Cat{tag: tag}
}

// Tag returns the logger's tag.
func (c Cat) Tag() string {
	return c.tag
}

// Trace logs a message at trace level.
func (c Cat) Trace(args ...any) {
	c.emit(TraceLevel, fmt.Sprint(args...))
}

// Tracef logs a formatted message at trace level.
func (c Cat) Tracef(format string, args ...any) {
	c.emit(TraceLevel, fmt.Sprintf(format, args...))
}

// Debug logs a message at debug level.
func (c Cat) Debug(args ...any) {
	c.emit(zapcore.DebugLevel, fmt.Sprint(args...))
}

// Debugf logs a formatted message at debug level.
func (c Cat) Debugf(format string, args ...any) {
	c.emit(zapcore.DebugLevel, fmt.Sprintf(format, args...))
}

// Info logs a message at info level.
func (c Cat) Info(args ...any) {
	c.emit(zapcore.InfoLevel, fmt.Sprint(args...))
}

// Infof logs a formatted message at info level.
func (c Cat) Infof(format string, args ...any) {
	c.emit(zapcore.InfoLevel, fmt.Sprintf(format, args...))
}

// Warn logs a message at warn level.
func (c Cat) Warn(args ...any) {
	c.emit(zapcore.WarnLevel, fmt.Sprint(args...))
}

// Warnf logs a formatted message at warn level.
func (c Cat) Warnf(format string, args ...any) {
	c.emit(zapcore.WarnLevel, fmt.Sprintf(format, args...))
}

// Error logs a message at error level.
func (c Cat) Error(args ...any) {
	c.emit(zapcore.ErrorLevel, fmt.Sprint(args...))
}

// Errorf logs a formatted message at error level.
func (c Cat) Errorf(format string, args ...any) {
	c.emit(zapcore.ErrorLevel, fmt.Sprintf(format, args...))
}
