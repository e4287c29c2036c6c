// Package logger provides the global zerolog logger for snipgen.
//
// Console output goes to stderr so generated HTML previews on stdout stay
// machine-parseable for the documentation pipeline. File logging with
// rotation can be enabled for debugging intermittent CI failures.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the global logger instance. It stays a nop until Init or
// InitWithFile runs, so library code can log unconditionally.
var Log = zerolog.Nop()

// fileWriter is the rotating file output, nil when file logging is off.
var fileWriter *lumberjack.Logger

// LoggingConfig holds configuration for file-based logging.
type LoggingConfig struct {
	MaxSizeMB  int
	MaxAgeDays int
	MaxBackups int
}

// GetMaxSizeMB returns the max size in MB, defaulting to 10 if not set.
func (c *LoggingConfig) GetMaxSizeMB() int {
	if c == nil || c.MaxSizeMB <= 0 {
		return 10
	}
	return c.MaxSizeMB
}

// GetMaxAgeDays returns the max age in days, defaulting to 7 if not set.
func (c *LoggingConfig) GetMaxAgeDays() int {
	if c == nil || c.MaxAgeDays <= 0 {
		return 7
	}
	return c.MaxAgeDays
}

// GetMaxBackups returns the max backups, defaulting to 3 if not set.
func (c *LoggingConfig) GetMaxBackups() int {
	if c == nil || c.MaxBackups <= 0 {
		return 3
	}
	return c.MaxBackups
}

// Init initializes console-only logging. Use InitWithFile for file logging.
func Init(debug bool) {
	Log = zerolog.New(consoleWriter()).
		Level(level(debug)).
		With().
		Timestamp().
		Logger()
}

// InitWithFile initializes the logger with console output plus a rotating
// log file under logsDir. The console stays human-readable; the file gets
// JSON.
func InitWithFile(debug bool, logsDir string, cfg *LoggingConfig) error {
	if logsDir == "" {
		Init(debug)
		return nil
	}

	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return fmt.Errorf("creating logs directory: %w", err)
	}

	fileWriter = &lumberjack.Logger{
		Filename:   filepath.Join(logsDir, "snipgen.log"),
		MaxSize:    cfg.GetMaxSizeMB(),
		MaxAge:     cfg.GetMaxAgeDays(),
		MaxBackups: cfg.GetMaxBackups(),
		LocalTime:  true,
	}

	Log = zerolog.New(io.MultiWriter(consoleWriter(), fileWriter)).
		Level(level(debug)).
		With().
		Timestamp().
		Logger()
	return nil
}

// CloseFileWriter closes the log file if file logging was enabled.
// Call on process shutdown.
func CloseFileWriter() error {
	if fileWriter == nil {
		return nil
	}
	err := fileWriter.Close()
	fileWriter = nil
	return err
}

// LogFilePath returns the current log file path, empty when file logging
// is disabled.
func LogFilePath() string {
	if fileWriter == nil {
		return ""
	}
	return fileWriter.Filename
}

func consoleWriter() io.Writer {
	return zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
}

func level(debug bool) zerolog.Level {
	if debug {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

// Debug logs a debug message.
func Debug() *zerolog.Event { return Log.Debug() }

// Info logs an info message.
func Info() *zerolog.Event { return Log.Info() }

// Warn logs a warning message.
func Warn() *zerolog.Event { return Log.Warn() }

// Error logs an error message.
func Error() *zerolog.Event { return Log.Error() }
