//go:build lognone

package logger

// backendEnabled reports whether the Zap backend was compiled in.
// With the "lognone" tag, Initialize fails fast with ErrBackendDisabled
// and every leveled call compiles down to an immediate return.
const backendEnabled = false
