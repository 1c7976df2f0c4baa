// ABOUTME: Logger implementation backed by sirupsen/logrus
// ABOUTME: Supports text or JSON output and optional rotating log files via lumberjack

package logrus

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls level, format and destination
type Config struct {
	// Level is one of debug, info, warn, error. Unknown values fall back to info.
	Level string

	// Format is "json" or "text"
	Format string

	// File, when set, receives log output through a rotating writer
	File string

	// Rotation settings used with File
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int

	// Output overrides the destination when File is empty. Defaults to stderr.
	Output io.Writer
}

// Logger implements interfaces.Logger
type Logger struct {
	entry  *logrus.Entry
	closer io.Closer
}

// New creates a logger from cfg
func New(cfg Config) *Logger {
	l := logrus.New()
	l.SetLevel(ParseLevel(cfg.Level))

	if strings.EqualFold(cfg.Format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	logger := &Logger{entry: logrus.NewEntry(l)}

	switch {
	case cfg.File != "":
		rotator := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    orDefault(cfg.MaxSizeMB, 100),
			MaxBackups: orDefault(cfg.MaxBackups, 3),
			MaxAge:     orDefault(cfg.MaxAgeDays, 28),
			Compress:   true,
		}
		l.SetOutput(rotator)
		logger.closer = rotator
	case cfg.Output != nil:
		l.SetOutput(cfg.Output)
	default:
		l.SetOutput(os.Stderr)
	}

	return logger
}

// ParseLevel maps a level name to a logrus level, defaulting to info
func ParseLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "warning":
		return logrus.WarnLevel
	case "":
		return logrus.InfoLevel
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.with(fields).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.with(fields).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.with(fields).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.with(fields).Error(msg)
}

// WithFields returns a logger that adds fields to every entry
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{entry: l.with(fields), closer: l.closer}
}

// Close releases the rotating file, if any
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

func (l *Logger) with(fields map[string]interface{}) *logrus.Entry {
	if len(fields) == 0 {
		return l.entry
	}
	return l.entry.WithFields(logrus.Fields(fields))
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
