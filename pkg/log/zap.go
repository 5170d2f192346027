// Package log is the process-wide structured logger. Entries are JSON on stderr so stdout stays free for command output.
package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	level  = zap.NewAtomicLevelAt(zap.InfoLevel)
	logger *zap.Logger
)

func init() {
	if raw, ok := os.LookupEnv("LOG_LEVEL"); ok {
		_ = SetLevel(raw)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.MessageKey = "msg"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.TimeKey = "@timestamp"
	encoderConfig.CallerKey = "logger_name"

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		level,
	)

	logger = zap.New(core,
		zap.AddCaller(),
		zap.AddCallerSkip(1),
		zap.Fields(zap.String("logName", os.Getenv("APPLICATION_NAME"))),
	)
}

// SetLevel changes the minimum level at runtime, e.g. "debug" or "warn".
func SetLevel(raw string) error {
	parsed, err := zapcore.ParseLevel(raw)
	if err != nil {
		return err
	}
	level.SetLevel(parsed)
	return nil
}

// Zap returns the underlying logger for collaborators that take a *zap.Logger.
func Zap() *zap.Logger {
	return logger.WithOptions(zap.AddCallerSkip(-1))
}

func Debug(message string, fields ...zap.Field) {
	logger.Debug(message, fields...)
}

func Info(message string, fields ...zap.Field) {
	logger.Info(message, fields...)
}

func Warn(message string, fields ...zap.Field) {
	logger.Warn(message, fields...)
}

func Error(message string, fields ...zap.Field) {
	logger.Error(message, fields...)
}

// Fatal logs at FatalLevel, then calls os.Exit(1).
func Fatal(message string, fields ...zap.Field) {
	logger.Fatal(message, fields...)
}

// Sync flushes buffered entries.
func Sync() {
	_ = logger.Sync()
}
