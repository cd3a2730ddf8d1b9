// Copyright (c) Jeevanandam M (https://github.com/jeevatkm)
// aahframe.work/security source code and usage is governed by a MIT style
// license that can be found in the LICENSE file.

// Package log is the leveled logger used across the aah security packages.
// Configuration is read from the `log { ... }` section:
//
//	log {
//	  # Supported levels are TRACE, DEBUG, INFO, WARN, ERROR
//	  level = "info"
//
//	  # text or json
//	  format = "text"
//
//	  color = true
//	}
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"aahframe.work/security/config"
	"github.com/hashicorp/go-hclog"
)

const (
	textFmt = "text"
	jsonFmt = "json"
)

var (
	dl *Logger
	mu sync.RWMutex
)

// Fields type is used to log fields values in the logger.
type Fields map[string]interface{}

// Logger is the aah leveled logger.
type Logger struct {
	hl hclog.Logger
}

//‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾
// Package methods
//___________________________________

// New method creates the logger based on given config `log { ... }`, writes
// into os.Stderr.
func New(cfg *config.Config) (*Logger, error) {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter method creates the logger based on given config and writes the
// log entries into given writer.
func NewWithWriter(cfg *config.Config, w io.Writer) (*Logger, error) {
	if cfg == nil {
		cfg = config.NewEmpty()
	}

	lvl := cfg.StringDefault("log.level", "debug")
	level := hclog.LevelFromString(lvl)
	if level == hclog.NoLevel {
		return nil, fmt.Errorf("log: unsupported level '%s'", lvl)
	}

	format := cfg.StringDefault("log.format", textFmt)
	if !(format == textFmt || format == jsonFmt) {
		return nil, fmt.Errorf("log: unsupported format '%s'", format)
	}

	color := hclog.ColorOff
	if cfg.BoolDefault("log.color", false) {
		color = hclog.AutoColor
	}

	return &Logger{
		hl: hclog.New(&hclog.LoggerOptions{
			Name:       cfg.StringDefault("log.name", "aah"),
			Level:      level,
			Output:     w,
			JSONFormat: format == jsonFmt,
			Color:      color,
		}),
	}, nil
}

// SetDefaultLogger method sets the given logger instance as default logger.
func SetDefaultLogger(l *Logger) {
	if l == nil {
		return
	}
	mu.Lock()
	dl = l
	mu.Unlock()
}

func std() *Logger {
	mu.RLock()
	defer mu.RUnlock()
	return dl
}

// Trace logs message at TRACE level on the default logger.
func Trace(v ...interface{}) { std().Trace(v...) }

// Tracef logs formatted message at TRACE level on the default logger.
func Tracef(format string, v ...interface{}) { std().Tracef(format, v...) }

// Debug logs message at DEBUG level on the default logger.
func Debug(v ...interface{}) { std().Debug(v...) }

// Debugf logs formatted message at DEBUG level on the default logger.
func Debugf(format string, v ...interface{}) { std().Debugf(format, v...) }

// Info logs message at INFO level on the default logger.
func Info(v ...interface{}) { std().Info(v...) }

// Infof logs formatted message at INFO level on the default logger.
func Infof(format string, v ...interface{}) { std().Infof(format, v...) }

// Warn logs message at WARN level on the default logger.
func Warn(v ...interface{}) { std().Warn(v...) }

// Warnf logs formatted message at WARN level on the default logger.
func Warnf(format string, v ...interface{}) { std().Warnf(format, v...) }

// Error logs message at ERROR level on the default logger.
func Error(v ...interface{}) { std().Error(v...) }

// Errorf logs formatted message at ERROR level on the default logger.
func Errorf(format string, v ...interface{}) { std().Errorf(format, v...) }

// WithFields method returns the default logger with given fields added.
func WithFields(fields Fields) *Logger { return std().WithFields(fields) }

// IsLevelDebug method returns true if default logger level is DEBUG or lower.
func IsLevelDebug() bool { return std().IsLevelDebug() }

//‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾
// Logger methods
//___________________________________

// Trace logs message at TRACE level.
func (l *Logger) Trace(v ...interface{}) { l.hl.Trace(fmt.Sprint(v...)) }

// Tracef logs formatted message at TRACE level.
func (l *Logger) Tracef(format string, v ...interface{}) { l.hl.Trace(fmt.Sprintf(format, v...)) }

// Debug logs message at DEBUG level.
func (l *Logger) Debug(v ...interface{}) { l.hl.Debug(fmt.Sprint(v...)) }

// Debugf logs formatted message at DEBUG level.
func (l *Logger) Debugf(format string, v ...interface{}) { l.hl.Debug(fmt.Sprintf(format, v...)) }

// Info logs message at INFO level.
func (l *Logger) Info(v ...interface{}) { l.hl.Info(fmt.Sprint(v...)) }

// Infof logs formatted message at INFO level.
func (l *Logger) Infof(format string, v ...interface{}) { l.hl.Info(fmt.Sprintf(format, v...)) }

// Warn logs message at WARN level.
func (l *Logger) Warn(v ...interface{}) { l.hl.Warn(fmt.Sprint(v...)) }

// Warnf logs formatted message at WARN level.
func (l *Logger) Warnf(format string, v ...interface{}) { l.hl.Warn(fmt.Sprintf(format, v...)) }

// Error logs message at ERROR level.
func (l *Logger) Error(v ...interface{}) { l.hl.Error(fmt.Sprint(v...)) }

// Errorf logs formatted message at ERROR level.
func (l *Logger) Errorf(format string, v ...interface{}) { l.hl.Error(fmt.Sprintf(format, v...)) }

// WithFields method returns a new logger carrying given fields on every entry.
func (l *Logger) WithFields(fields Fields) *Logger {
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return &Logger{hl: l.hl.With(args...)}
}

// Level method returns the current log level name.
func (l *Logger) Level() string {
	return strings.ToUpper(l.hl.GetLevel().String())
}

// IsLevelDebug method returns true if log level is DEBUG or lower.
func (l *Logger) IsLevelDebug() bool {
	return l.hl.IsDebug() || l.hl.IsTrace()
}

func init() {
	dl, _ = New(nil)
}
