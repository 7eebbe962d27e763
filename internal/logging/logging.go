// Package logging routes diagnostics to stderr and an optional log file.
// Standard output is reserved for data.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	mu      sync.Mutex
	logFile *os.File
)

// Init configures the shared logger. Diagnostics always go to stderr; when
// logPath is set they are also appended to that file. debug lowers the level
// so LogEvent and Debugf messages are emitted.
func Init(logPath string, debug bool) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	writers := []io.Writer{os.Stderr}

	if logPath != "" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		logFile = file
		writers = append(writers, logFile)
	}

	logrus.SetOutput(io.MultiWriter(writers...))
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}
	return nil
}

// Close releases the log file, if any, and points the logger back at stderr.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	logrus.SetOutput(os.Stderr)
	err := logFile.Close()
	logFile = nil
	return err
}

// LogEvent records an informational event.
func LogEvent(format string, args ...any) {
	logrus.Infof(format, args...)
}

// Debugf records a debug message.
func Debugf(format string, args ...any) {
	logrus.Debugf(format, args...)
}

// Warnf records a recoverable problem, such as an unparseable input line.
func Warnf(format string, args ...any) {
	logrus.Warnf(format, args...)
}
