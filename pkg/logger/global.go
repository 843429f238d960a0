package logger

import (
	"sync/atomic"
)

// defaultLogger holds the process-wide *Logger.
var defaultLogger atomic.Value

func init() {
	defaultLogger.Store(New())
}

// Default returns the process-wide logger.
func Default() *Logger {
	return defaultLogger.Load().(*Logger)
}

// SetDefault replaces the process-wide logger. A nil logger is ignored.
func SetDefault(logger *Logger) {
	if logger != nil {
		defaultLogger.Store(logger)
	}
}

// OrDefault returns l, or the process-wide logger when l is nil. Library
// packages take an optional *Logger and resolve it through here.
func OrDefault(l *Logger) *Logger {
	if l == nil {
		return Default()
	}
	return l
}

// Trace logs at TraceLevel on the default logger.
func Trace(msg any, keyvals ...any) {
	Default().Trace(msg, keyvals...)
}

// Debug logs at DebugLevel on the default logger.
func Debug(msg any, keyvals ...any) {
	Default().Debug(msg, keyvals...)
}

// Info logs at InfoLevel on the default logger.
func Info(msg any, keyvals ...any) {
	Default().Info(msg, keyvals...)
}

// Warn logs at WarnLevel on the default logger.
func Warn(msg any, keyvals ...any) {
	Default().Warn(msg, keyvals...)
}
