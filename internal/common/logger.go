package common

// logger.go contains logging utilities for respkv.
// It supports the log levels the rest of the tree actually calls and
// formats log messages consistently across the application.

import (
	"log"
	"os"
)

// Log levels
const (
	infoLevel  = "INFO"
	warnLevel  = "WARN"
	errorLevel = "ERROR"
)

// Logger is a custom logger with different log levels.
type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
}

// NewLogger initializes and returns a new Logger instance.
func NewLogger() *Logger {
	return &Logger{
		infoLogger:  log.New(os.Stderr, "[INFO]  ", log.Ldate|log.Ltime),
		warnLogger:  log.New(os.Stderr, "[WARN]  ", log.Ldate|log.Ltime),
		errorLogger: log.New(os.Stderr, "[ERROR] ", log.Ldate|log.Ltime),
	}
}

// Info logs an informational message.
func (l *Logger) Info(format string, v ...interface{}) {
	l.printf(infoLevel, format, v...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, v ...interface{}) {
	l.printf(warnLevel, format, v...)
}

// Error logs an error message.
func (l *Logger) Error(format string, v ...interface{}) {
	l.printf(errorLevel, format, v...)
}

func (l *Logger) printf(level string, format string, v ...interface{}) {
	switch level {
	case infoLevel:
		l.infoLogger.Printf(format, v...)
	case warnLevel:
		l.warnLogger.Printf(format, v...)
	case errorLevel:
		l.errorLogger.Printf(format, v...)
	default:
		l.infoLogger.Printf(format, v...)
	}
}
