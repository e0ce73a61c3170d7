// Package log wraps logrus with the small package-level surface the rest
// of the application uses.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var std = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return l
}

// Fields is an alias for logrus.Fields
type Fields = logrus.Fields

// F builds a single-entry field set for LogWithFields
func F(key string, value interface{}) Fields {
	return Fields{key: value}
}

// LogWithFields returns an entry carrying the merged field sets
func LogWithFields(fields ...Fields) *logrus.Entry {
	merged := Fields{}
	for _, f := range fields {
		for k, v := range f {
			merged[k] = v
		}
	}
	return std.WithFields(merged)
}

// SetDebug toggles debug-level logging
func SetDebug(debug bool) {
	if debug {
		std.SetLevel(logrus.DebugLevel)
	} else {
		std.SetLevel(logrus.InfoLevel)
	}
}

// SetOutput redirects log output, mainly for tests
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

func Info(format string, args ...interface{}) {
	std.Infof(format, args...)
}

// Debug logs a formatted debug message
func Debug(format string, args ...interface{}) {
	std.Debugf(format, args...)
}

// Warn logs a formatted warning message
func Warn(format string, args ...interface{}) {
	std.Warnf(format, args...)
}

// Error logs a formatted error message
func Error(format string, args ...interface{}) {
	std.Errorf(format, args...)
}
