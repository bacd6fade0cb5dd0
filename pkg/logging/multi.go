package logging

import "context"

// Multi fans log entries out to several loggers. A curation run logs to
// the console and to a per-run file at the same time.
type Multi struct {
	loggers []Logger
}

// NewMulti creates a logger that forwards to all given loggers
func NewMulti(loggers ...Logger) *Multi {
	return &Multi{loggers: loggers}
}

// Debug logs a debug message on all loggers
func (m *Multi) Debug(ctx context.Context, msg string, fields Fields) {
	for _, l := range m.loggers {
		l.Debug(ctx, msg, fields)
	}
}

// Info logs an info message on all loggers
func (m *Multi) Info(ctx context.Context, msg string, fields Fields) {
	for _, l := range m.loggers {
		l.Info(ctx, msg, fields)
	}
}

// Warn logs a warning message on all loggers
func (m *Multi) Warn(ctx context.Context, msg string, fields Fields) {
	for _, l := range m.loggers {
		l.Warn(ctx, msg, fields)
	}
}

// Error logs an error message on all loggers
func (m *Multi) Error(ctx context.Context, msg string, err error, fields Fields) {
	for _, l := range m.loggers {
		l.Error(ctx, msg, err, fields)
	}
}

// WithFields returns a multi logger with additional fields on every branch
func (m *Multi) WithFields(fields Fields) Logger {
	branched := make([]Logger, len(m.loggers))
	for i, l := range m.loggers {
		branched[i] = l.WithFields(fields)
	}
	return &Multi{loggers: branched}
}

// Close closes all underlying loggers, returning the first error
func (m *Multi) Close() error {
	var firstErr error
	for _, l := range m.loggers {
		if err := l.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
