// Package logger provides the shared structured logger for vendas-cli.
// Storage and service failures are logged here at the operation boundary;
// the --verbose flag raises the level from warn to debug.
package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu  sync.RWMutex
	log = zap.NewNop()
)

// Init builds the process-wide logger. With verbose enabled, debug and
// info messages are emitted; otherwise only warnings and errors reach
// stderr.
func Init(verbose bool) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}

	l, err := cfg.Build()
	if err != nil {
		// Fall back to a no-op logger rather than failing startup.
		l = zap.NewNop()
	}

	mu.Lock()
	log = l
	mu.Unlock()
}

// L returns the shared logger. Safe to call before Init; returns a no-op
// logger in that case.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// SetLogger replaces the shared logger. Useful for testing.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l == nil {
		l = zap.NewNop()
	}
	log = l
}

// Sync flushes any buffered log entries. Called on process exit.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = log.Sync()
}
