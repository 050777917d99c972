// logging/logger.go

package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Log = zap.NewNop()

// InitLogger writes JSON logs to <logDirPath>/pcbctl.log. Console output stays
// clean for the CLI unless LOG_LEVEL=debug.
func InitLogger(logDirPath string, level string) error {
	config := zap.NewProductionConfig()

	if env := os.Getenv("LOG_LEVEL"); env != "" {
		level = env
	}
	if level != "" {
		if lvl, err := zapcore.ParseLevel(level); err == nil {
			config.Level.SetLevel(lvl)
		}
	}

	if err := os.MkdirAll(logDirPath, 0o700); err != nil {
		return err
	}
	logFilePath := filepath.Join(logDirPath, "pcbctl.log")
	logErrorFilePath := filepath.Join(logDirPath, "pcbctl_error.log")

	config.OutputPaths = []string{logFilePath}
	config.ErrorOutputPaths = []string{"stderr", logErrorFilePath}
	if config.Level.Level() == zapcore.DebugLevel {
		config.OutputPaths = append(config.OutputPaths, "stderr")
	}

	config.EncoderConfig.CallerKey = "caller"
	config.EncoderConfig.StacktraceKey = "stacktrace"
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}
	Log = logger
	zap.ReplaceGlobals(Log)
	return nil
}

// InitNop silences logging, for tests.
func InitNop() {
	Log = zap.NewNop()
}

func Info(msg string, fields ...zap.Field) {
	Log.Info(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	Log.Error(msg, fields...)
}

func Debug(msg string, fields ...zap.Field) {
	Log.Debug(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	Log.Warn(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	Log.Fatal(msg, fields...)
}

// WithContext adds context fields to the logger
func WithContext(fields ...zap.Field) *zap.Logger {
	return Log.With(fields...)
}

func Sync() error {
	return Log.Sync()
}
