// Package logger provides structured logging with rotation support.
package logger

import (
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	instance *Logger
	once     sync.Once
)

// Logger wraps zap logger with additional functionality.
type Logger struct {
	zapLogger *zap.Logger
	sugar     *zap.SugaredLogger
	logFile   *os.File
	logPath   string
	level     zapcore.Level
	console   bool

	maxSize    int64
	maxBackups int
}

// Config holds logger configuration.
type Config struct {
	LogPath    string // Path to log file
	Level      string // Log level: debug, info, warn, error
	MaxSize    int64  // Max size in bytes before rotation (default 10MB)
	MaxBackups int    // Max number of backup files to keep
	Console    bool   // Also output to console
}

// GetInstance returns the singleton logger instance.
// Until Initialize is called every logging method is a no-op.
func GetInstance() *Logger {
	once.Do(func() {
		instance = &Logger{}
	})
	return instance
}

// New returns a standalone logger, mostly useful in tests.
func New() *Logger {
	return &Logger{}
}

// ParseLevel maps a config level name to a zap level. Unknown names give info.
func ParseLevel(name string) zapcore.Level {
	switch name {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Initialize sets up the logger with the given configuration.
func (l *Logger) Initialize(config Config) error {
	// Set default values
	if config.MaxSize == 0 {
		config.MaxSize = 10 * 1024 * 1024 // 10MB
	}
	if config.MaxBackups == 0 {
		config.MaxBackups = 5
	}

	l.maxSize = config.MaxSize
	l.maxBackups = config.MaxBackups
	l.level = ParseLevel(config.Level)
	l.console = config.Console

	// Re-initialising replaces any previously opened file.
	if l.logFile != nil {
		l.logFile.Close()
		l.logFile = nil
	}
	l.logPath = ""

	// Create log directory if needed
	if config.LogPath != "" {
		dir := filepath.Dir(config.LogPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			l.build()
			return err
		}

		file, err := os.OpenFile(config.LogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			l.build()
			return err
		}
		l.logFile = file
		l.logPath = config.LogPath
	}

	l.build()
	return nil
}

// build (re)creates the zap cores for the current file and console settings.
func (l *Logger) build() {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	var cores []zapcore.Core

	// File core (JSON)
	if l.logFile != nil {
		fileEncoder := zapcore.NewJSONEncoder(encoderConfig)
		cores = append(cores, zapcore.NewCore(fileEncoder, zapcore.AddSync(l.logFile), l.level))
	}

	// Console core
	if l.console {
		consoleEncoder := zapcore.NewConsoleEncoder(encoderConfig)
		cores = append(cores, zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stdout), l.level))
	}

	core := zapcore.NewTee(cores...)
	l.zapLogger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))
	l.sugar = l.zapLogger.Sugar()
}

// Close closes the logger and flushes any buffered data.
func (l *Logger) Close() error {
	if l.zapLogger != nil {
		l.zapLogger.Sync()
		l.zapLogger = nil
		l.sugar = nil
	}
	if l.logFile != nil {
		err := l.logFile.Close()
		l.logFile = nil
		return err
	}
	return nil
}

// Level returns the active log level.
func (l *Logger) Level() zapcore.Level {
	return l.level
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, fields ...zap.Field) {
	if l.zapLogger != nil {
		l.zapLogger.Debug(msg, fields...)
	}
}

// Info logs an info message.
func (l *Logger) Info(msg string, fields ...zap.Field) {
	if l.zapLogger != nil {
		l.zapLogger.Info(msg, fields...)
	}
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, fields ...zap.Field) {
	if l.zapLogger != nil {
		l.zapLogger.Warn(msg, fields...)
	}
}

// Error logs an error message.
func (l *Logger) Error(msg string, fields ...zap.Field) {
	if l.zapLogger != nil {
		l.zapLogger.Error(msg, fields...)
	}
}

// Infof logs a formatted info message.
func (l *Logger) Infof(template string, args ...interface{}) {
	if l.sugar != nil {
		l.sugar.Infof(template, args...)
	}
}

// Warnf logs a formatted warning message.
func (l *Logger) Warnf(template string, args ...interface{}) {
	if l.sugar != nil {
		l.sugar.Warnf(template, args...)
	}
}

// Errorf logs a formatted error message.
func (l *Logger) Errorf(template string, args ...interface{}) {
	if l.sugar != nil {
		l.sugar.Errorf(template, args...)
	}
}

// LogRender logs the outcome of rasterizing one icon.
func (l *Logger) LogRender(name string, size int, err error) {
	fields := []zap.Field{
		zap.String("icon", name),
		zap.Int("size_px", size),
	}

	if err != nil {
		fields = append(fields, zap.Error(err))
		l.Warn("icon render failed, using blank icon", fields...)
	} else {
		l.Debug("icon rendered", fields...)
	}
}

// LogExport logs an icon export run.
func (l *Logger) LogExport(dir string, written int, duration time.Duration, err error) {
	fields := []zap.Field{
		zap.String("dir", dir),
		zap.Int("files", written),
		zap.Duration("duration", duration),
	}

	if err != nil {
		fields = append(fields, zap.Error(err))
		l.Error("export failed", fields...)
	} else {
		l.Info("export completed", fields...)
	}
}

// Rotate rotates the log file if it exceeds max size.
func (l *Logger) Rotate(maxSize int64, maxBackups int) error {
	if l.logFile == nil || l.logPath == "" {
		return nil
	}

	info, err := l.logFile.Stat()
	if err != nil {
		return err
	}

	if info.Size() < maxSize {
		return nil
	}

	if l.zapLogger != nil {
		l.zapLogger.Sync()
	}
	l.logFile.Close()

	// Shift backups: .1 -> .2, ...; the oldest falls off the end.
	for i := maxBackups - 1; i > 0; i-- {
		oldPath := l.logPath + "." + strconv.Itoa(i)
		newPath := l.logPath + "." + strconv.Itoa(i+1)
		os.Rename(oldPath, newPath)
	}
	os.Rename(l.logPath, l.logPath+".1")

	l.logFile, err = os.OpenFile(l.logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		l.logFile = nil
	}
	l.build()
	return err
}

// RotateIfNeeded rotates using the limits given to Initialize.
func (l *Logger) RotateIfNeeded() error {
	return l.Rotate(l.maxSize, l.maxBackups)
}
