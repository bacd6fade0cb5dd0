package logging

import (
	"context"
	"io"
	"os"
	"sync"
)

// ConsoleLogger implements Logger with text output to a terminal stream
type ConsoleLogger struct {
	level  Level
	writer io.Writer
	mu     *sync.Mutex
	fields Fields
}

// NewConsoleLogger creates a console logger writing to stdout
func NewConsoleLogger(level Level) *ConsoleLogger {
	return &ConsoleLogger{
		level:  level,
		writer: os.Stdout,
		mu:     &sync.Mutex{},
	}
}

// NewConsoleLoggerTo creates a console logger writing to w
func NewConsoleLoggerTo(level Level, w io.Writer) *ConsoleLogger {
	return &ConsoleLogger{
		level:  level,
		writer: w,
		mu:     &sync.Mutex{},
	}
}

// Debug logs a debug message
func (l *ConsoleLogger) Debug(ctx context.Context, msg string, fields Fields) {
	if l.level <= DebugLevel {
		l.log(DebugLevel, msg, nil, fields)
	}
}

// Info logs an info message
func (l *ConsoleLogger) Info(ctx context.Context, msg string, fields Fields) {
	if l.level <= InfoLevel {
		l.log(InfoLevel, msg, nil, fields)
	}
}

// Warn logs a warning message
func (l *ConsoleLogger) Warn(ctx context.Context, msg string, fields Fields) {
	if l.level <= WarnLevel {
		l.log(WarnLevel, msg, nil, fields)
	}
}

// Error logs an error message
func (l *ConsoleLogger) Error(ctx context.Context, msg string, err error, fields Fields) {
	if l.level <= ErrorLevel {
		l.log(ErrorLevel, msg, err, fields)
	}
}

// WithFields returns a logger with additional fields
func (l *ConsoleLogger) WithFields(fields Fields) Logger {
	return &ConsoleLogger{
		level:  l.level,
		writer: l.writer,
		mu:     l.mu,
		fields: mergeFields(l.fields, fields),
	}
}

// Close does nothing; the console stream is not owned by the logger
func (l *ConsoleLogger) Close() error {
	return nil
}

func (l *ConsoleLogger) log(level Level, msg string, err error, fields Fields) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.writer.Write(formatTextLine(level, msg, err, mergeFields(l.fields, fields)))
}
