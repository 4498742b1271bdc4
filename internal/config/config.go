// Package config holds the lexer's cross-cutting, process-wide knobs: the
// trace-logging switch and the logger it writes through. Everything that
// varies per Tokenize call (line/column origin, literate mode, whether to
// invoke the Rewriter) lives on lexer.Options instead — see
// internal/lexer/driver.go.
package config

import (
	"reflect"
	"runtime"
	"sync"

	"go.uber.org/zap"
)

// EnableFnTrace shows matcher/dispatch-function call transitions. Off by
// default; the same toggle the teacher repo exposed as EnableFnTrace, now
// backed by a structured logger instead of the standard log package.
var EnableFnTrace = false

var (
	loggerMu sync.Mutex
	logger   *zap.Logger
)

// Logger returns the process-wide trace logger, building a no-op logger
// on first use if none was installed via SetLogger.
func Logger() *zap.Logger {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

// SetLogger installs the logger TraceFn and friends write through. Passing
// nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// TraceFn logs a lexer/indentation-engine function transition when
// EnableFnTrace is set. Mirrors the teacher's TraceFn(msg, fn) shape.
func TraceFn(msg string, fn interface{}) {
	if !EnableFnTrace || fn == nil {
		return
	}
	name := runtime.FuncForPC(reflectValueOf(fn)).Name()
	Logger().Debug(msg, zap.String("fn", name))
}

func reflectValueOf(i interface{}) uintptr {
	return reflect.ValueOf(i).Pointer()
}

// Trace logs a structured trace event when EnableFnTrace is set, for
// transitions (indent/outdent/pair-match) that aren't a plain function
// hand-off.
func Trace(msg string, fields ...zap.Field) {
	if !EnableFnTrace {
		return
	}
	Logger().Debug(msg, fields...)
}
