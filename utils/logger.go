package utils

import (
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorCyan   = "\033[36m"
	colorReset  = "\033[0m"
)

// Logger provides structured, leveled logging throughout the application.
// Level tags are colored on the console; the log file receives the same
// lines without ANSI escapes so placeholder fallbacks and load failures stay
// grep-able after the process exits.
type Logger struct {
	out     *log.Logger
	errOut  *log.Logger
	fileLog *log.Logger
	file    *lumberjack.Logger
}

// NewLogger creates a Logger writing to stdout/stderr and the given log file.
// An empty path disables the file sink (used by tests).
func NewLogger(logPath string) *Logger {
	flags := 0
	l := &Logger{
		out:    log.New(os.Stdout, "", flags),
		errOut: log.New(os.Stderr, "", flags),
	}

	if logPath != "" {
		l.file = &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    10, // MB
			MaxBackups: 2,
		}
		l.fileLog = log.New(l.file, "", flags)
	}

	return l
}

// Close flushes and closes the log file sink, if any.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

func (l *Logger) timestamp() string {
	return time.Now().Format("2006-01-02 15:04:05")
}

func (l *Logger) emit(console *log.Logger, color, level, format string, args ...any) {
	ts := l.timestamp()
	console.Printf(fmt.Sprintf("[%s] %s%-5s%s %s\n", ts, color, level, colorReset, format), args...)
	if l.fileLog != nil {
		l.fileLog.Printf(fmt.Sprintf("[%s] %-5s %s\n", ts, level, format), args...)
	}
}

func (l *Logger) Info(format string, args ...any) {
	l.emit(l.out, colorGreen, "INFO", format, args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.emit(l.out, colorYellow, "WARN", format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.emit(l.errOut, colorRed, "ERROR", format, args...)
}

func (l *Logger) Debug(format string, args ...any) {
	l.emit(l.out, colorCyan, "DEBUG", format, args...)
}
