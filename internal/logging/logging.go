// Package logging holds the process-wide zap logger used by fields and
// schemas. It discards everything until a logger is installed.
package logging

import (
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var global atomic.Pointer[zap.Logger]

func init() {
	global.Store(zap.NewNop())
}

// L returns the current logger.
func L() *zap.Logger {
	return global.Load()
}

// Replace installs l and returns a function restoring the previous logger.
// A nil l installs a no-op logger.
func Replace(l *zap.Logger) func() {
	if l == nil {
		l = zap.NewNop()
	}

	prev := global.Swap(l)

	return func() {
		global.Store(prev)
	}
}

// New builds a console logger writing to stderr at the given level
// ("debug", "info", "warn", "error").
func New(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "log level %q", level)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true

	l, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}

	return l, nil
}
