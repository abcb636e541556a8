//go:build !lognone

package logger

// backendEnabled reports whether the Zap backend was compiled in.
// The constant lets the compiler drop log call bodies entirely
// when the backend is absent.
const backendEnabled = true
