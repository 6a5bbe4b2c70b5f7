package logging

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// LogLevel is a thin enum for user friendly level configuration decoupled from slog.
type LogLevel int

const (
	// LogLevelDebug is the debug logging level.
	LogLevelDebug LogLevel = iota
	// LogLevelInfo is the informational logging level.
	LogLevelInfo
	// LogLevelWarn is the warning logging level.
	LogLevelWarn
	// LogLevelError is the error logging level.
	LogLevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger defines the minimal logging interface for DeepSolve.
// This allows users to provide their own logger implementation or use the built-in adapters.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// SlogAdapter wraps *slog.Logger to implement the Logger interface.
type SlogAdapter struct {
	*slog.Logger
}

// Debug logs a debug message.
func (s *SlogAdapter) Debug(msg string, args ...any) { s.Logger.Debug(msg, args...) }

// Info logs an informational message.
func (s *SlogAdapter) Info(msg string, args ...any) { s.Logger.Info(msg, args...) }

// Warn logs a warning message.
func (s *SlogAdapter) Warn(msg string, args ...any) { s.Logger.Warn(msg, args...) }

// Error logs an error message.
func (s *SlogAdapter) Error(msg string, args ...any) { s.Logger.Error(msg, args...) }

// NewSlogAdapter creates a Logger from *slog.Logger.
func NewSlogAdapter(logger *slog.Logger) Logger {
	return &SlogAdapter{Logger: logger}
}

// NewDefaultSlogLogger creates a Logger using slog.Default().
func NewDefaultSlogLogger() Logger {
	return NewSlogAdapter(slog.Default())
}

// NewSlogLogger creates a Logger writing to stdout with the given level and
// format ("json" or "text").
func NewSlogLogger(level LogLevel, format string, addSource bool) Logger {
	return NewSlogLoggerTo(os.Stdout, level, format, addSource)
}

// NewSlogLoggerTo creates a Logger writing to the given writer.
func NewSlogLoggerTo(w io.Writer, level LogLevel, format string, addSource bool) Logger {
	opts := &slog.HandlerOptions{Level: slogLevel(level), AddSource: addSource}
	var handler slog.Handler
	if format == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	return NewSlogAdapter(slog.New(handler))
}

func slogLevel(l LogLevel) slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SolveLogger wraps a Logger adding contextual cloning helpers and domain
// convenience methods. It is cheap to copy via the With* methods.
type SolveLogger struct {
	logger  Logger
	context map[string]any
}

// NewSolveLogger wraps a Logger (NoOpLogger if nil).
func NewSolveLogger(l Logger) *SolveLogger {
	if l == nil {
		l = NoOpLogger{}
	}
	return &SolveLogger{logger: l, context: map[string]any{}}
}

func (l *SolveLogger) clone() *SolveLogger {
	nl := &SolveLogger{logger: l.logger, context: make(map[string]any, len(l.context))}
	for k, v := range l.context {
		nl.context[k] = v
	}
	return nl
}

// WithContext adds a key/value attribute attached to every log entry.
func (l *SolveLogger) WithContext(key string, value any) *SolveLogger {
	nl := l.clone()
	nl.context[key] = value
	return nl
}

// WithComponent sets the logical component (agent, planner, reasoner, etc.).
func (l *SolveLogger) WithComponent(c string) *SolveLogger {
	return l.WithContext("component", c)
}

func (l *SolveLogger) attrs(extra ...any) []any {
	args := make([]any, 0, len(l.context)*2+len(extra))
	for k, v := range l.context {
		args = append(args, k, v)
	}
	return append(args, extra...)
}

// Debug logs at debug level with the attached context.
func (l *SolveLogger) Debug(msg string, args ...any) { l.logger.Debug(msg, l.attrs(args...)...) }

// Info logs at info level with the attached context.
func (l *SolveLogger) Info(msg string, args ...any) { l.logger.Info(msg, l.attrs(args...)...) }

// Warn logs at warn level with the attached context.
func (l *SolveLogger) Warn(msg string, args ...any) { l.logger.Warn(msg, l.attrs(args...)...) }

// Error logs at error level with the attached context.
func (l *SolveLogger) Error(msg string, args ...any) { l.logger.Error(msg, l.attrs(args...)...) }

// LogLMCall records model call latency and success.
func (l *SolveLogger) LogLMCall(model string, dur time.Duration, err error) {
	if err != nil {
		l.Error("LM call failed", "model", model, "duration", dur, "error", err.Error())
		return
	}
	l.Info("LM call completed", "model", model, "duration", dur)
}

// LogDecomposition records one decomposition step of the dynamic solve loop.
func (l *SolveLogger) LogDecomposition(ask string, depth, subTasks int) {
	l.Info("Problem decomposed", "ask", ask, "max_depth", depth, "sub_tasks", subTasks)
}

// NoOpLogger discards all log messages. Useful for testing or when logging is disabled.
type NoOpLogger struct{}

// Debug logs a debug message.
func (NoOpLogger) Debug(string, ...any) {}

// Info logs an informational message.
func (NoOpLogger) Info(string, ...any) {}

// Warn logs a warning message.
func (NoOpLogger) Warn(string, ...any) {}

// Error logs an error message.
func (NoOpLogger) Error(string, ...any) {}

var (
	_ Logger = (*SlogAdapter)(nil)
	_ Logger = NoOpLogger{}
	_ Logger = (*SolveLogger)(nil)
)
