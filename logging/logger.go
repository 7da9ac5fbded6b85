// logging/logger.go

package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is a no-op until InitLogger runs.
var Log = zap.NewNop()

// InitLogger builds the production logger. An empty logDirPath logs to
// stdout/stderr only.
func InitLogger(logDirPath, level string) error {
	config := zap.NewProductionConfig()

	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err == nil {
			config.Level.SetLevel(lvl)
		}
	}

	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}
	if logDirPath != "" {
		if err := os.MkdirAll(logDirPath, 0o755); err != nil {
			return err
		}
		config.OutputPaths = append(config.OutputPaths, filepath.Join(logDirPath, "gateway.log"))
		config.ErrorOutputPaths = append(config.ErrorOutputPaths, filepath.Join(logDirPath, "gateway_error.log"))
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
