package logging

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type (
	Field = zapcore.Field
	Level = zapcore.Level
)

const (
	DebugLevel = zapcore.DebugLevel
	InfoLevel  = zapcore.InfoLevel
)

type ctxKey struct{}

type Logger struct {
	log *zap.Logger
}

func production() bool {
	return os.Getenv("GO_ENVIRONMENT") == "production"
}

// New builds a development logger, or a JSON production logger when
// GO_ENVIRONMENT=production.
func New(level Level) (*Logger, error) {
	var cfg zap.Config
	if production() {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("could not create logger: %w", err)
	}
	return Wrap(l), nil
}

func Wrap(l *zap.Logger) *Logger {
	return &Logger{log: l}
}

func Nop() *Logger {
	return Wrap(zap.NewNop())
}

// FromContext never returns nil.
func FromContext(ctx context.Context) *Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
			return l
		}
	}
	return Nop()
}

func (l *Logger) WithContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

func (l *Logger) With(fields ...Field) *Logger {
	return Wrap(l.log.With(fields...))
}

func (l *Logger) Debug(msg string, fields ...Field) {
	l.log.Debug(msg, fields...)
}

func (l *Logger) Info(msg string, fields ...Field) {
	l.log.Info(msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...Field) {
	l.log.Warn(msg, fields...)
}

func (l *Logger) Error(msg string, fields ...Field) {
	l.log.Error(msg, fields...)
}

func (l *Logger) Sync() error {
	return l.log.Sync()
}
