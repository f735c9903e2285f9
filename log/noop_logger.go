package log

import "go.uber.org/zap/zapcore"

// NoOpLogger is a logger that discards all messages. Useful in tests.
type NoOpLogger struct{}

var _ Logger = &NoOpLogger{}

// Named implements Logger.
func (l *NoOpLogger) Named(string) Logger {
	return l
}

// Debug implements Logger.
func (l *NoOpLogger) Debug(string, ...zapcore.Field) {}

// Info implements Logger.
func (l *NoOpLogger) Info(string, ...zapcore.Field) {}

// Warn implements Logger.
func (l *NoOpLogger) Warn(string, ...zapcore.Field) {}

// Error implements Logger.
func (l *NoOpLogger) Error(string, ...zapcore.Field) {}
