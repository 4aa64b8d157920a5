// ABOUTME: Logrus-backed logger implementation of the core Logger interface
// ABOUTME: Provides leveled structured logging with configurable verbosity

package logrus

import (
	"os"

	lr "github.com/sirupsen/logrus"
)

// LogrusLogger implements the Logger interface using sirupsen/logrus
type LogrusLogger struct {
	logger *lr.Logger
}

// NewLogrusLogger creates a new logrus logger with the given level
// (debug/info/warn/error; anything else falls back to info).
func NewLogrusLogger(level string) *LogrusLogger {
	logger := lr.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&lr.TextFormatter{
		FullTimestamp: true,
	})

	parsed, err := lr.ParseLevel(level)
	if err != nil {
		parsed = lr.InfoLevel
	}
	logger.SetLevel(parsed)

	return &LogrusLogger{logger: logger}
}

// Debug logs a debug message with structured fields
func (l *LogrusLogger) Debug(msg string, fields map[string]interface{}) {
	l.entry(fields).Debug(msg)
}

// Info logs an info message with structured fields
func (l *LogrusLogger) Info(msg string, fields map[string]interface{}) {
	l.entry(fields).Info(msg)
}

// Warn logs a warning message with structured fields
func (l *LogrusLogger) Warn(msg string, fields map[string]interface{}) {
	l.entry(fields).Warn(msg)
}

// Error logs an error message with structured fields
func (l *LogrusLogger) Error(msg string, fields map[string]interface{}) {
	l.entry(fields).Error(msg)
}

func (l *LogrusLogger) entry(fields map[string]interface{}) *lr.Entry {
	if len(fields) == 0 {
		return lr.NewEntry(l.logger)
	}
	return l.logger.WithFields(lr.Fields(fields))
}
