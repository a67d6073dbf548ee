package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/Radha57/Pcod-Tracker/internal/constants"
)

var (
	// Logger is the global logger instance
	Logger *log.Logger
)

// Config holds logger configuration
type Config struct {
	Debug  bool
	LogDir string
}

// Init initializes the global logger with the given configuration
func Init(cfg Config) error {
	if err := os.MkdirAll(cfg.LogDir, 0755); err != nil {
		return err
	}

	fileWriter := &lumberjack.Logger{
		Filename:   filepath.Join(cfg.LogDir, constants.AppName+".log"),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	level := log.WarnLevel
	if cfg.Debug {
		level = log.DebugLevel
	}

	// Stderr only sees log output in debug mode
	var writer io.Writer = fileWriter
	if cfg.Debug {
		writer = io.MultiWriter(os.Stderr, fileWriter)
	}

	Logger = log.NewWithOptions(writer, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          constants.AppName,
	})

	return nil
}

// Debug logs a debug message
func Debug(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

// Info logs an info message
func Info(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

// Warn logs a warning message
func Warn(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

// Error logs an error message
func Error(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}

// Fields carries key/value pairs logged ahead of each call's own, so a
// component can name the file it works on once.
type Fields []interface{}

// With returns Fields holding keyvals.
func With(keyvals ...interface{}) Fields {
	return Fields(keyvals)
}

func (f Fields) merge(keyvals []interface{}) []interface{} {
	out := make([]interface{}, 0, len(f)+len(keyvals))
	out = append(out, f...)
	return append(out, keyvals...)
}

func (f Fields) Debug(msg string, keyvals ...interface{}) {
	Debug(msg, f.merge(keyvals)...)
}

func (f Fields) Info(msg string, keyvals ...interface{}) {
	Info(msg, f.merge(keyvals)...)
}

func (f Fields) Warn(msg string, keyvals ...interface{}) {
	Warn(msg, f.merge(keyvals)...)
}

func (f Fields) Error(msg string, keyvals ...interface{}) {
	Error(msg, f.merge(keyvals)...)
}

// Fatal logs a fatal error and exits
func Fatal(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Fatal(msg, keyvals...)
	}
	os.Exit(1)
}
