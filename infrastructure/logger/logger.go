package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// FileLogger writes JSON log lines. The TUI owns the terminal, so logs
// always go to a file.
type FileLogger struct {
	mu     sync.Mutex
	logger *log.Logger
	file   *os.File
	closed bool
}

// NewFileLogger opens <logDir>/<logPrefix>_<timestamp>.json for this run.
func NewFileLogger(logDir, logPrefix, level string) (*FileLogger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory '%s': %w", logDir, err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	logFilePath := filepath.Join(logDir, fmt.Sprintf("%s_%s.json", logPrefix, timestamp))

	file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file '%s': %w", logFilePath, err)
	}

	l := New(file, level)
	l.file = file
	return l, nil
}

// New builds a logger on top of w. Unknown levels fall back to info.
func New(w io.Writer, level string) *FileLogger {
	if w == nil {
		w = io.Discard
	}

	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		ReportCaller:    true,
		CallerOffset:    2, // skip write and the level method
		TimeFormat:      time.RFC3339,
		Formatter:       log.JSONFormatter,
		Level:           parseLevel(level),
	})

	return &FileLogger{logger: l}
}

// Nop discards everything.
func Nop() *FileLogger {
	return New(io.Discard, "error")
}

func parseLevel(level string) log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

func (l *FileLogger) Debug(msg string, keyvals ...any) {
	l.write(log.DebugLevel, msg, keyvals)
}

func (l *FileLogger) Info(msg string, keyvals ...any) {
	l.write(log.InfoLevel, msg, keyvals)
}

func (l *FileLogger) Warning(msg string, keyvals ...any) {
	l.write(log.WarnLevel, msg, keyvals)
}

func (l *FileLogger) Error(msg string, err error, keyvals ...any) {
	if err != nil {
		keyvals = append([]any{"err", err.Error()}, keyvals...)
	}
	l.write(log.ErrorLevel, msg, keyvals)
}

func (l *FileLogger) write(level log.Level, msg string, keyvals []any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		fmt.Fprintf(os.Stderr, "logger is closed, dropping log: %s\n", msg)
		return
	}

	l.logger.Log(level, msg, keyvals...)
}

func (l *FileLogger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}
	l.closed = true

	if l.file != nil {
		if err := l.file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "error closing log file: %v\n", err)
		}
	}
}
