//go:build !release && logcaller

package logger

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"go.uber.org/zap/zapcore"
)

// catWriter receives Cat output in development builds.
// Overridable for tests.
//
//nolint:gochecknoglobals // Swappable output seam, mirroring the osExit pattern.
var catWriter io.Writer = os.Stderr

// emit writes a colored line with the caller's file and line
// ("logcaller" build tag) to the development output.
func (c Cat) emit(level zapcore.Level, message string) {
	// Skip emit and the leveled wrapper to reach the call site.
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file, line = "???", 0
	}

	fmt.Fprintf(catWriter, "%s[%6s] - %s - %s (%s:%d)%s\n",
		catColor(level), levelLabel(level), c.tag, message, file, line, ansiReset)
}
