//go:build release

package logger

import "go.uber.org/zap/zapcore"

// emit delegates to the installed process-wide logger under the tag.
// While uninitialized it is a guaranteed no-op.
func (c Cat) emit(level zapcore.Level, message string) {
	Named(c.tag).Log(level, message)
}
