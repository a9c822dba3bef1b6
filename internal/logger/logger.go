// Package logger provides a simple leveled logger for the application.
// It supports three levels: off (no output), normal (info/warn/error),
// and verbose (includes debug). The logger is safe for concurrent use.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Level controls the verbosity of the logger.
type Level int

const (
	// LevelOff disables all log output.
	LevelOff Level = iota
	// LevelNormal enables info, warn, and error output.
	LevelNormal
	// LevelVerbose enables all output including debug.
	LevelVerbose
)

// Logger is a leveled logger writing to a single sink. All methods are
// safe for concurrent use.
type Logger struct {
	mu    sync.RWMutex
	level Level
	sink  *log.Logger
}

// New creates a logger with the given level, writing to the given output.
// If out is nil, os.Stderr is used.
func New(level Level, out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}
	return &Logger{
		level: level,
		sink:  log.New(out, "", log.Ltime),
	}
}

// SetLevel changes the log level at runtime.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) write(min Level, tag, format string, args ...any) {
	l.mu.RLock()
	enabled := l.level >= min
	l.mu.RUnlock()
	if !enabled {
		return
	}
	l.sink.Printf("%s %s", tag, fmt.Sprintf(format, args...))
}

// Debug logs at verbose level.
func (l *Logger) Debug(format string, args ...any) {
	l.write(LevelVerbose, "[DBG]", format, args...)
}

// Info logs at normal level.
func (l *Logger) Info(format string, args ...any) {
	l.write(LevelNormal, "[INF]", format, args...)
}

// Warn logs at normal level.
func (l *Logger) Warn(format string, args ...any) {
	l.write(LevelNormal, "[WRN]", format, args...)
}

// Error logs at normal level.
func (l *Logger) Error(format string, args ...any) {
	l.write(LevelNormal, "[ERR]", format, args...)
}
