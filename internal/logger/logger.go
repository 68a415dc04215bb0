package logger

import (
	"fmt"
	"strings"
	"sync"

	"github.com/pterm/pterm"
)

// Log is the process-wide diagnostic logger.
var Log = &Logger{level: LevelWarn}

type LogLevel int

const (
	LevelTrace LogLevel = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

type Logger struct {
	mu    sync.RWMutex
	level LogLevel
	once  sync.Map
}

func (l *Logger) enabled(level LogLevel) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.level <= level
}

func (l *Logger) Tracef(format string, args ...interface{}) {
	if l.enabled(LevelTrace) {
		pterm.Debug.Printfln(format, args...)
	}
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.enabled(LevelDebug) {
		pterm.Debug.Printfln(format, args...)
	}
}

func (l *Logger) Infof(format string, args ...interface{}) {
	if l.enabled(LevelInfo) {
		pterm.Info.Printfln(format, args...)
	}
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	if l.enabled(LevelWarn) {
		pterm.Warning.Printfln(format, args...)
	}
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	if l.enabled(LevelError) {
		pterm.Error.Printfln(format, args...)
	}
}

// Oncef logs at level the first time key is seen and drops later calls.
func (l *Logger) Oncef(key string, level LogLevel, format string, args ...interface{}) {
	if _, seen := l.once.LoadOrStore(key, struct{}{}); seen {
		return
	}

	switch level {
	case LevelTrace:
		l.Tracef(format, args...)
	case LevelDebug:
		l.Debugf(format, args...)
	case LevelInfo:
		l.Infof(format, args...)
	case LevelWarn:
		l.Warnf(format, args...)
	default:
		l.Errorf(format, args...)
	}
}

// ForgetOnce clears the keys remembered by Oncef.
func (l *Logger) ForgetOnce() {
	l.once.Range(func(key, _ any) bool {
		l.once.Delete(key)
		return true
	})
}

func SetLevel(level string) error {
	var parsed LogLevel

	switch strings.ToLower(level) {
	case "trace":
		parsed = LevelTrace
	case "debug":
		parsed = LevelDebug
	case "info":
		parsed = LevelInfo
	case "warn", "warning":
		parsed = LevelWarn
	case "error":
		parsed = LevelError
	default:
		return fmt.Errorf("invalid log level: %s", level)
	}

	Log.mu.Lock()
	Log.level = parsed
	Log.mu.Unlock()

	if parsed <= LevelDebug {
		pterm.EnableDebugMessages()
	} else {
		pterm.DisableDebugMessages()
	}

	return nil
}

// Level returns the current level of Log.
func Level() LogLevel {
	Log.mu.RLock()
	defer Log.mu.RUnlock()

	return Log.level
}

func GetLogger() *Logger {
	return Log
}
