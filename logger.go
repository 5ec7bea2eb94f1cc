package raylib

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
)

// TraceLogLevel mirrors raylib's TraceLogLevel enum.
type TraceLogLevel int32

const (
	LogAll TraceLogLevel = iota
	LogTrace
	LogDebug
	LogInfo
	LogWarning
	LogError
	LogFatal
	LogNone
)

func (l TraceLogLevel) String() string {
	switch l {
	case LogAll:
		return "all"
	case LogTrace:
		return "trace"
	case LogDebug:
		return "debug"
	case LogInfo:
		return "info"
	case LogWarning:
		return "warning"
	case LogError:
		return "error"
	case LogFatal:
		return "fatal"
	case LogNone:
		return "none"
	default:
		return fmt.Sprintf("TraceLogLevel(%d)", int32(l))
	}
}

func (l TraceLogLevel) slogLevel() slog.Level {
	switch {
	case l <= LogDebug:
		return slog.LevelDebug
	case l == LogInfo:
		return slog.LevelInfo
	case l == LogWarning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

func ResolveLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s", level)
	}
}

func ResolveTraceLogLevel(level string) (TraceLogLevel, error) {
	switch strings.ToLower(level) {
	case "all":
		return LogAll, nil
	case "trace":
		return LogTrace, nil
	case "debug":
		return LogDebug, nil
	case "info":
		return LogInfo, nil
	case "warn", "warning":
		return LogWarning, nil
	case "error":
		return LogError, nil
	case "fatal":
		return LogFatal, nil
	case "none":
		return LogNone, nil
	default:
		return 0, fmt.Errorf("invalid trace log level: %s", level)
	}
}

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger sets the logger used by the package and by raylib's trace log
// callback. The package is silent until SetLogger is called; nil restores
// that default. Safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

func Logger() *slog.Logger {
	return loggerPtr.Load()
}
