package logger

import (
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// namedCacheSize bounds the cache of named child loggers,
	// so callers may derive loggers from dynamic tags without growing memory forever.
	namedCacheSize = 128

	// shutdownTimeout bounds how long Shutdown waits for buffered output to flush.
	// Process exit must not hang on a stuck appender.
	shutdownTimeout = 5 * time.Second
)

// handle is the process-wide logger installation.
// It is immutable after construction except for the atomic level.
type handle struct {
	base    *zap.SugaredLogger
	level   zap.AtomicLevel
	named   *lru.Cache[string, *zap.SugaredLogger]
	closers []io.Closer
}

var (
	// installMu serializes installation and teardown,
	// so concurrent Initialize calls race for exactly one winner.
	//nolint:gochecknoglobals // The install-once gate must be shared process-wide.
	installMu sync.Mutex

	// current holds the installed handle, or nil while uninitialized.
	// Log calls load it atomically and never block on the install gate.
	//nolint:gochecknoglobals // The process-wide logger handle is global state by necessity.
	current atomic.Pointer[handle]

	// nop is returned to callers while no logger is installed.
	//nolint:gochecknoglobals // Immutable no-op logger shared by all uninitialized calls.
	nop = zap.NewNop().Sugar()
)

// newHandle wraps a constructed logger with its level control and named-logger cache.
func newHandle(base *zap.SugaredLogger, level zap.AtomicLevel, closers []io.Closer) *handle {
	// lru.New fails only for non-positive sizes.
	named, _ := lru.New[string, *zap.SugaredLogger](namedCacheSize)

	return &handle{
		base:    base,
		level:   level,
		named:   named,
		closers: closers,
	}
}

// install runs build under the install-once gate and publishes the result.
// If a logger is already installed, build is never called and
// ErrAlreadyInitialized is returned.
func install(build func() (*handle, error)) error {
	installMu.Lock()
	defer installMu.Unlock()

	if current.Load() != nil {
		return ErrAlreadyInitialized
	}

	h, err := build()
	if err != nil {
		return err
	}

	current.Store(h)

	return nil
}

// Initialize installs the process-wide logger from inline parameters.
// It returns ErrAlreadyInitialized if a logger is already installed
// (the first installation stays in effect), ErrBackendDisabled if the
// backend was compiled out, and wrapped validation or I/O errors if the
// configuration is invalid or the target cannot be opened.
// On any error the facade stays uninitialized and log calls remain no-ops.
func Initialize(cfg Config) error {
	if !backendEnabled {
		return ErrBackendDisabled
	}

	return install(cfg.buildHandle)
}

// InitializeFromFile installs the process-wide logger from a YAML document
// describing named appenders and a root routing rule (see Package doc and
// the fileConfig schema). Read and parse failures of the document are
// returned wrapped but otherwise verbatim.
// The install-once policy matches Initialize.
func InitializeFromFile(path string) error {
	if !backendEnabled {
		return ErrBackendDisabled
	}

	return install(func() (*handle, error) {
		cfg, err := loadFileConfig(path)
		if err != nil {
			return nil, err
		}

		return cfg.buildHandle()
	})
}

// Shutdown flushes buffered output, releases appender resources and
// uninstalls the process-wide logger. It blocks until the flush completes
// or shutdownTimeout elapses, then proceeds regardless.
// After Shutdown the facade behaves exactly as before Initialize:
// log calls are no-ops and Initialize may be called again.
// Calling Shutdown while uninitialized is a no-op.
func Shutdown() {
	installMu.Lock()
	h := current.Swap(nil)
	installMu.Unlock()

	if h == nil {
		return
	}

	done := make(chan struct{})

	go func() {
		defer close(done)

		//nolint:errcheck // Sync failures on shutdown are not actionable.
		_ = h.base.Sync()

		for _, c := range h.closers {
			_ = c.Close()
		}
	}()

	select {
	case <-done:
	case <-time.After(shutdownTimeout):
	}
}

// Initialized reports whether a process-wide logger is currently installed.
func Initialized() bool {
	return current.Load() != nil
}

// New creates a new logger writing to stderr with the specified level.
// If the provided level is nil, zapcore.InfoLevel is used as default.
// The returned logger is independent of the process-wide installation.
func New(level zapcore.LevelEnabler, options ...zap.Option) *zap.SugaredLogger {
	if level == nil {
		level = zapcore.InfoLevel
	}

	// newEncoder cannot fail for the default text format.
	encoder, _ := newEncoder(FormatText)
	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level)

	return zap.New(core, options...).Sugar()
}

// Logger returns the installed process-wide logger,
// or a no-op logger while uninitialized.
func Logger() *zap.SugaredLogger {
	if h := current.Load(); h != nil {
		return h.base
	}

	return nop
}

// SetLogger replaces the installed logger, installing one if none exists.
// Unlike Initialize it overrides an existing installation on purpose:
// it is an explicit escape hatch for tests and embedding hosts.
// A nil logger is ignored.
func SetLogger(logger *zap.SugaredLogger) {
	if logger == nil {
		return
	}

	installMu.Lock()
	defer installMu.Unlock()

	prev := current.Load()

	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	var closers []io.Closer

	if prev != nil {
		level = prev.level
		closers = prev.closers
	}

	current.Store(newHandle(logger, level, closers))
}

// Level returns the minimum severity of the installed logger,
// or zapcore.InfoLevel while uninitialized.
func Level() zapcore.Level {
	if h := current.Load(); h != nil {
		return h.level.Level()
	}

	return zapcore.InfoLevel
}

// SetLevel changes the minimum severity of the installed logger at runtime.
// It is a no-op while uninitialized.
func SetLevel(level zapcore.Level) {
	if h := current.Load(); h != nil {
		h.level.SetLevel(level)
	}
}

// Named returns a child of the installed logger with the given name,
// caching derived loggers in a bounded LRU so dynamic tags stay cheap.
// While uninitialized it returns a no-op logger.
func Named(name string) *zap.SugaredLogger {
	h := current.Load()
	if h == nil {
		return nop
	}

	if cached, ok := h.named.Get(name); ok {
		return cached
	}

	child := h.base.Named(name)
	h.named.Add(name, child)

	return child
}
