//go:build !release

package logger

import "go.uber.org/zap/zapcore"

// ANSI escape sequences for per-level colors in development builds.
const (
	ansiReset   = "\x1b[0m"
	ansiRed     = "\x1b[31m"
	ansiGreen   = "\x1b[32m"
	ansiYellow  = "\x1b[33m"
	ansiMagenta = "\x1b[95m"
	ansiCyan    = "\x1b[96m"
)

// catColor maps a level to its ANSI color.
func catColor(level zapcore.Level) string {
	switch {
	case level <= TraceLevel:
		return ansiMagenta
	case level == zapcore.DebugLevel:
		return ansiCyan
	case level == zapcore.InfoLevel:
		return ansiGreen
	case level == zapcore.WarnLevel:
		return ansiYellow
	default:
		return ansiRed
	}
}
