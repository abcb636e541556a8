// Package logger provides a structured logging facade built on the Zap logging library.
// It installs at most one process-wide logger per process: the first successful
// Initialize or InitializeFromFile call wins, later calls report ErrAlreadyInitialized,
// and Shutdown flushes buffered output and returns the facade to its uninitialized
// state. Leveled calls are safe in every state and are guaranteed no-ops while no
// logger is installed, so logging never becomes a control-flow dependency.
// The package supports key-value logging, named loggers, context-scoped fields,
// and customizable log levels, making it suitable for both development and
// production environments.
//
// The backend can be compiled out with the "lognone" build tag; combining it with
// the "release" tag is a build error, because a release binary that silently drops
// diagnostics is worse than one that fails to build.
//
// Flushing on process exit is the host's responsibility: defer Shutdown (or
// Logger().Sync()) from main, the way a signal-aware entry point would.
package logger
