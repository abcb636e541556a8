//go:build !release && !logcaller

package logger

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap/zapcore"
)

// catWriter receives Cat output in development builds.
// Overridable for tests.
//
//nolint:gochecknoglobals // Swappable output seam, mirroring the osExit pattern.
var catWriter io.Writer = os.Stderr

// emit writes a colored line to the development output.
func (c Cat) emit(level zapcore.Level, message string) {
	fmt.Fprintf(catWriter, "%s[%6s] - %s - %s%s\n",
		catColor(level), levelLabel(level), c.tag, message, ansiReset)
}
