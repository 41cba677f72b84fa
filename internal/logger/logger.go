package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger. It is a no-op until Init or Configure is called,
// so packages can log unconditionally (tests included).
var Log = zap.NewNop()

// Init installs a production logger at info level.
func Init() {
	if err := Configure("info", false); err != nil {
		// Falling back keeps startup alive when stderr cannot be opened.
		Log = zap.NewExample()
	}
}

// Configure replaces Log with a logger at the given level ("debug", "info", "warn", "error").
// Development mode switches to the human readable console encoder.
func Configure(level string, development bool) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}

	var cfg zap.Config
	if development {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	Log = l
	return nil
}

// ParseLevel converts a level name to a zap level.
func ParseLevel(level string) (zapcore.Level, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return lvl, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return lvl, nil
}

// Sync flushes buffered log entries. Errors from syncing stderr on some platforms are ignored.
func Sync() {
	_ = Log.Sync()
}
