package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sployal/fine-back-sub000/internal/pkg/models"
)

// ZapLogger wraps zap with the application's structured JSON configuration
type ZapLogger struct {
	*zap.Logger
	sugar *zap.SugaredLogger
}

// NewZapLogger creates the application logger writing JSON to stdout
func NewZapLogger(cfg models.LoggerConfig) (*ZapLogger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(os.Stdout),
		level,
	)

	zapLog := zap.New(core, zap.AddCaller())

	return &ZapLogger{
		Logger: zapLog,
		sugar:  zapLog.Sugar(),
	}, nil
}

// With returns a logger with the given fields attached to every entry
func (l *ZapLogger) With(fields ...Field) *ZapLogger {
	child := l.Logger.With(fields...)
	return &ZapLogger{
		Logger: child,
		sugar:  child.Sugar(),
	}
}

// Close flushes buffered log entries
func (l *ZapLogger) Close() error {
	return l.Logger.Sync()
}
