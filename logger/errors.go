package logger

import "errors"

// Static error definitions for better error handling.
var (
	// ErrAlreadyInitialized indicates that a process-wide logger is already installed.
	// The first installation stays in effect; the repeated call has no side effects.
	ErrAlreadyInitialized = errors.New("logger is already initialized")
	// ErrBackendDisabled indicates that the logging backend was compiled out
	// with the "lognone" build tag.
	ErrBackendDisabled = errors.New("logging backend is compiled out")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrUnknownLogFormat indicates that the log format is not recognized.
	ErrUnknownLogFormat = errors.New("unknown log format")
	// ErrNoAppenders indicates that a logging configuration document declares no appenders.
	ErrNoAppenders = errors.New("logging config must declare at least one appender")
	// ErrAppenderNameRequired indicates that an appender is missing a name.
	ErrAppenderNameRequired = errors.New("appender name cannot be empty")
	// ErrDuplicateAppender indicates that two appenders share a name.
	ErrDuplicateAppender = errors.New("duplicate appender name")
	// ErrUnknownAppenderKind indicates that an appender kind is not recognized.
	ErrUnknownAppenderKind = errors.New("unknown appender kind")
	// ErrUnknownRootAppender indicates that the root rule references an undeclared appender.
	ErrUnknownRootAppender = errors.New("root rule references unknown appender")
	// ErrInvalidFlushInterval indicates that a file appender's flush interval is not positive.
	ErrInvalidFlushInterval = errors.New("flush_interval must be positive")
)
