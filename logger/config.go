package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/goutil/internal/constants"
	"github.com/oshokin/goutil/utils"
)

// Config holds the inline form of the logger configuration.
type Config struct {
	// Level is the minimum severity, one of:
	// trace, debug, info, warn, error, dpanic, panic, fatal.
	// An empty value defaults to info.
	Level string `mapstructure:"level"`
	// Target is the output destination: TargetConsole or a writable file path.
	// An empty value defaults to the console.
	Target string `mapstructure:"target"`
	// Format selects the encoder: FormatText (default) or FormatJSON.
	Format string `mapstructure:"format"`
}

const (
	// TargetConsole routes output to standard error.
	// Any other non-empty target is treated as a file path.
	TargetConsole = "console"

	// FormatText encodes entries as human-readable lines.
	FormatText = "text"
	// FormatJSON encodes entries as JSON objects.
	FormatJSON = "json"
)

const (
	// AppenderKindConsole is a stderr appender in a configuration document.
	AppenderKindConsole = "console"
	// AppenderKindFile is a timestamped log file appender in a configuration document.
	AppenderKindFile = "file"

	// defaultLogDirectory is where file appenders write when no path is configured.
	defaultLogDirectory = "logs"

	// logFileTimestampLayout stamps file appender names so restarts never clobber old logs.
	logFileTimestampLayout = "2006-01-02_15-04-05"
)

// fileConfig is the schema of the configuration document accepted by
// InitializeFromFile: named appenders plus a root routing rule.
type fileConfig struct {
	// Appenders declares the available output destinations.
	Appenders []appenderConfig `mapstructure:"appenders"`
	// Root routes severities to appenders.
	Root rootConfig `mapstructure:"root"`
}

// appenderConfig describes a single named output destination.
type appenderConfig struct {
	// Name identifies the appender to the root rule.
	Name string `mapstructure:"name"`
	// Kind is AppenderKindConsole (default) or AppenderKindFile.
	Kind string `mapstructure:"kind"`
	// Level is this appender's severity threshold; defaults to debug.
	Level string `mapstructure:"level"`
	// Format selects the encoder: FormatText (default) or FormatJSON.
	Format string `mapstructure:"format"`
	// Path is the log directory for file appenders; defaults to "logs".
	Path string `mapstructure:"path"`
	// Filename is the base name of the log file; defaults to the appender name.
	// The final name is "<filename>-<timestamp>.log".
	Filename string `mapstructure:"filename"`
	// BufferSize enables buffered writes when set, e.g. "256KB".
	BufferSize string `mapstructure:"buffer_size"`
	// FlushInterval bounds how long buffered entries may linger, e.g. "5s".
	FlushInterval string `mapstructure:"flush_interval"`
}

// rootConfig is the root routing rule of a configuration document.
type rootConfig struct {
	// Level is the global minimum severity; defaults to trace,
	// leaving filtering to the per-appender thresholds.
	Level string `mapstructure:"level"`
	// Appenders lists the appender names to route to;
	// an empty list routes to every declared appender.
	Appenders []string `mapstructure:"appenders"`
}

// newEncoder builds a zapcore encoder for the requested format.
func newEncoder(format string) (zapcore.Encoder, error) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = encodeLevel

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatText:
		return zapcore.NewConsoleEncoder(encoderConfig), nil
	case FormatJSON:
		return zapcore.NewJSONEncoder(encoderConfig), nil
	default:
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownLogFormat, format)
	}
}

// parseLevelOrDefault parses an optional level string,
// falling back to the given default when it is empty.
func parseLevelOrDefault(level string, fallback zapcore.Level) (zapcore.Level, error) {
	if strings.TrimSpace(level) == "" {
		return fallback, nil
	}

	parsed, ok := ParseLogLevel(level)
	if !ok {
		return fallback, fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, level)
	}

	return parsed, nil
}

// buildHandle constructs a single-core handle from the inline configuration.
func (cfg Config) buildHandle() (*handle, error) {
	minLevel, err := parseLevelOrDefault(cfg.Level, zapcore.InfoLevel)
	if err != nil {
		return nil, err
	}

	encoder, err := newEncoder(cfg.Format)
	if err != nil {
		return nil, err
	}

	var (
		level   = zap.NewAtomicLevelAt(minLevel)
		target  = strings.TrimSpace(cfg.Target)
		sink    zapcore.WriteSyncer
		closers []io.Closer
	)

	if target == "" || target == TargetConsole {
		sink = zapcore.Lock(os.Stderr)
	} else {
		file, openErr := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_APPEND, constants.DefaultFilePermissions)
		if openErr != nil {
			return nil, fmt.Errorf("failed to open log target '%s': %w", target, openErr)
		}

		sink = zapcore.AddSync(file)
		closers = append(closers, file)
	}

	core := zapcore.NewCore(encoder, sink, level)

	return newHandle(zap.New(core).Sugar(), level, closers), nil
}

// loadFileConfig reads and unmarshals a configuration document.
// Parse errors from the underlying reader are surfaced wrapped but verbatim.
func loadFileConfig(path string) (*fileConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read logging config from file: %w", err)
	}

	var cfg fileConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal logging config: %w", err)
	}

	return &cfg, nil
}

// buildHandle validates the document and constructs a tee of appender cores.
func (cfg *fileConfig) buildHandle() (*handle, error) {
	if len(cfg.Appenders) == 0 {
		return nil, ErrNoAppenders
	}

	rootLevel, err := parseLevelOrDefault(cfg.Root.Level, TraceLevel)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]appenderConfig, len(cfg.Appenders))

	for _, appender := range cfg.Appenders {
		name := strings.TrimSpace(appender.Name)
		if name == "" {
			return nil, ErrAppenderNameRequired
		}

		if _, ok := byName[name]; ok {
			return nil, fmt.Errorf("%w: '%s'", ErrDuplicateAppender, name)
		}

		byName[name] = appender
	}

	selected := cfg.Root.Appenders
	if len(selected) == 0 {
		selected = make([]string, 0, len(cfg.Appenders))
		for _, appender := range cfg.Appenders {
			selected = append(selected, strings.TrimSpace(appender.Name))
		}
	}

	var (
		level   = zap.NewAtomicLevelAt(rootLevel)
		cores   = make([]zapcore.Core, 0, len(selected))
		closers []io.Closer
	)

	closeAll := func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}

	for _, name := range selected {
		appender, ok := byName[strings.TrimSpace(name)]
		if !ok {
			closeAll()

			return nil, fmt.Errorf("%w: '%s'", ErrUnknownRootAppender, name)
		}

		core, closer, buildErr := appender.buildCore(level)
		if buildErr != nil {
			closeAll()

			return nil, buildErr
		}

		cores = append(cores, core)

		if closer != nil {
			closers = append(closers, closer)
		}
	}

	return newHandle(zap.New(zapcore.NewTee(cores...)).Sugar(), level, closers), nil
}

// buildCore constructs one appender core filtered by both the appender's
// own threshold and the runtime-adjustable root level.
func (a appenderConfig) buildCore(root zap.AtomicLevel) (zapcore.Core, io.Closer, error) {
	threshold, err := parseLevelOrDefault(a.Level, zapcore.DebugLevel)
	if err != nil {
		return nil, nil, err
	}

	encoder, err := newEncoder(a.Format)
	if err != nil {
		return nil, nil, err
	}

	enabler := zap.LevelEnablerFunc(func(level zapcore.Level) bool {
		return level >= threshold && root.Enabled(level)
	})

	switch strings.ToLower(strings.TrimSpace(a.Kind)) {
	case "", AppenderKindConsole:
		return zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), enabler), nil, nil
	case AppenderKindFile:
		sink, closer, openErr := a.openLogFile()
		if openErr != nil {
			return nil, nil, openErr
		}

		return zapcore.NewCore(encoder, sink, enabler), closer, nil
	default:
		return nil, nil, fmt.Errorf("%w: '%s'", ErrUnknownAppenderKind, a.Kind)
	}
}

// closerFunc adapts a function to io.Closer.
type closerFunc func() error

// Close implements io.Closer.
func (f closerFunc) Close() error {
	return f()
}

// openLogFile creates the appender's directory and a timestamped log file,
// optionally wrapping it in a buffered write syncer.
func (a appenderConfig) openLogFile() (zapcore.WriteSyncer, io.Closer, error) {
	directory := strings.TrimSpace(a.Path)
	if directory == "" {
		directory = defaultLogDirectory
	}

	if err := os.MkdirAll(directory, constants.DefaultFolderPermissions); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory '%s': %w", directory, err)
	}

	baseName := strings.TrimSpace(a.Filename)
	if baseName == "" {
		baseName = strings.TrimSpace(a.Name)
	}

	fileName := fmt.Sprintf("%s-%s%s",
		utils.SanitizeFilename(baseName),
		time.Now().Format(logFileTimestampLayout),
		constants.ExtensionLog)

	fullPath := filepath.Join(directory, fileName)

	file, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, constants.DefaultFilePermissions)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file '%s': %w", fullPath, err)
	}

	sink := zapcore.AddSync(file)
	closer := io.Closer(file)

	bufferSize := strings.TrimSpace(a.BufferSize)
	flushInterval := strings.TrimSpace(a.FlushInterval)

	if bufferSize == "" && flushInterval == "" {
		return sink, closer, nil
	}

	buffered := &zapcore.BufferedWriteSyncer{WS: sink}

	if bufferSize != "" {
		parsedSize, parseErr := humanize.ParseBytes(bufferSize)
		if parseErr != nil {
			_ = file.Close()

			return nil, nil, fmt.Errorf("failed to parse buffer size: %w", parseErr)
		}

		buffered.Size = int(utils.SafeUint64ToInt64(parsedSize))
	}

	if flushInterval != "" {
		parsedInterval, parseErr := time.ParseDuration(flushInterval)
		if parseErr != nil {
			_ = file.Close()

			return nil, nil, fmt.Errorf("failed to parse flush interval: %w", parseErr)
		}

		if parsedInterval <= 0 {
			_ = file.Close()

			return nil, nil, ErrInvalidFlushInterval
		}

		buffered.FlushInterval = parsedInterval
	}

	closer = closerFunc(func() error {
		// Stop flushes pending writes before the file is closed.
		_ = buffered.Stop()

		return file.Close()
	})

	return buffered, closer, nil
}
