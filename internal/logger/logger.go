// Package logger provides a lightweight, centralized logging facility
// with configurable verbosity levels, backed by zap.
//
// Verbosity levels (in increasing order):
//
//	Error < Warn < Info < Debug < Trace
//
// Example usage:
//
//	logger.SetVerbosity(int(logger.Debug))
//	logger.Infof("pricing %d contracts", n)
//	logger.Debugf("spot=%f vol=%f", spot, vol)
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Level represents a logging verbosity level.
// Higher values mean more verbose logging.
type Level int

const (
	Error Level = iota // Error logs only critical failures.
	Warn               // Warn logs recoverable problems worth a look.
	Info               // Info logs high-level application progress.
	Debug              // Debug logs detailed diagnostic information.
	Trace              // Trace logs very fine-grained execution details.
)

// ParseLevel maps a level name ("error", "warn", "info", "debug", "trace")
// to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "error":
		return Error, nil
	case "warn", "warning":
		return Warn, nil
	case "", "info":
		return Info, nil
	case "debug":
		return Debug, nil
	case "trace":
		return Trace, nil
	}
	return Info, fmt.Errorf("unknown log level %q", s)
}

// Config describes where log output goes.
type Config struct {
	Level      string `mapstructure:"level"`
	Output     string `mapstructure:"output"` // stderr, file or both
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"` // megabytes
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
	Compress   bool   `mapstructure:"compress"`
}

var (
	// current holds the active verbosity level.
	// Only messages with level <= current are logged.
	current atomic.Int32

	sugar atomic.Pointer[zap.SugaredLogger]
)

func init() {
	current.Store(int32(Info))
	Use(zap.New(zapcore.NewCore(consoleEncoder(), zapcore.Lock(os.Stderr), zapcore.DebugLevel)))
}

// Init configures verbosity and output from cfg.
func Init(cfg Config) error {
	lvl, err := ParseLevel(cfg.Level)
	if err != nil {
		return err
	}

	var ws zapcore.WriteSyncer
	switch cfg.Output {
	case "", "stderr":
		ws = zapcore.Lock(os.Stderr)
	case "file", "both":
		if cfg.FilePath == "" {
			return fmt.Errorf("log output %q requires a file path", cfg.Output)
		}
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
			return err
		}
		ws = zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		})
		if cfg.Output == "both" {
			ws = zapcore.NewMultiWriteSyncer(ws, zapcore.Lock(os.Stderr))
		}
	default:
		return fmt.Errorf("unknown log output %q", cfg.Output)
	}

	Use(zap.New(zapcore.NewCore(consoleEncoder(), ws, zapcore.DebugLevel), zap.AddCaller()))
	current.Store(int32(lvl))
	return nil
}

// Use replaces the underlying zap logger. Verbosity filtering still applies.
func Use(l *zap.Logger) {
	sugar.Store(l.WithOptions(zap.AddCallerSkip(2)).Sugar())
}

// Sync flushes buffered log output.
func Sync() error {
	return sugar.Load().Sync()
}

// SetVerbosity sets the global logging verbosity.
// Typically called once during application startup.
func SetVerbosity(v int) {
	current.Store(int32(v))
}

func consoleEncoder() zapcore.Encoder {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeTime = zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05")
	return zapcore.NewConsoleEncoder(enc)
}

// logf checks verbosity and hands the message to zap.
func logf(l Level, format string, args ...any) {
	if Level(current.Load()) < l {
		return
	}
	s := sugar.Load()
	switch l {
	case Error:
		s.Errorf(format, args...)
	case Warn:
		s.Warnf(format, args...)
	case Info:
		s.Infof(format, args...)
	default:
		s.Debugf(format, args...)
	}
}

// Errorf logs an error-level message.
// Use this for failures that require attention.
func Errorf(format string, args ...any) {
	logf(Error, format, args...)
}

// Warnf logs a warning.
func Warnf(format string, args ...any) {
	logf(Warn, format, args...)
}

// Infof logs an informational message.
// Use this for major lifecycle events.
func Infof(format string, args ...any) {
	logf(Info, format, args...)
}

// Debugf logs debugging information.
func Debugf(format string, args ...any) {
	logf(Debug, format, args...)
}

// Tracef logs very detailed execution traces. Trace messages are written at
// zap's debug level.
func Tracef(format string, args ...any) {
	logf(Trace, format, args...)
}
