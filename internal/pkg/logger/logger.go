package logger

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey struct{}

var (
	mu   sync.RWMutex
	base = zap.NewNop().Sugar()
)

// Init replaces the global logger. mode is "production" or "development".
func Init(level, mode string) error {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}

	SetLogger(l)
	return nil
}

func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	base = l.Sugar()
}

func Sync() {
	_ = get().Sync()
}

// WithFields returns a context whose log lines carry the given key/value pairs.
func WithFields(ctx context.Context, keysAndValues ...interface{}) context.Context {
	existing, _ := ctx.Value(ctxKey{}).([]interface{})
	fields := make([]interface{}, 0, len(existing)+len(keysAndValues))
	fields = append(fields, existing...)
	fields = append(fields, keysAndValues...)
	return context.WithValue(ctx, ctxKey{}, fields)
}

func get() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

func fromCtx(ctx context.Context) *zap.SugaredLogger {
	l := get()
	if ctx == nil {
		return l
	}
	if fields, ok := ctx.Value(ctxKey{}).([]interface{}); ok && len(fields) > 0 {
		return l.With(fields...)
	}
	return l
}

func Debugf(ctx context.Context, format string, args ...interface{}) {
	fromCtx(ctx).Debugf(format, args...)
}

func Info(ctx context.Context, msg string, keysAndValues ...interface{}) {
	fromCtx(ctx).Infow(msg, keysAndValues...)
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	fromCtx(ctx).Infof(format, args...)
}

func Warnf(ctx context.Context, format string, args ...interface{}) {
	fromCtx(ctx).Warnf(format, args...)
}

func Error(ctx context.Context, msg string, keysAndValues ...interface{}) {
	fromCtx(ctx).Errorw(msg, keysAndValues...)
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	fromCtx(ctx).Errorf(format, args...)
}

// Fatal logs err and exits. A nil err is ignored.
func Fatal(ctx context.Context, err error) {
	if err == nil {
		return
	}
	fromCtx(ctx).Fatal(err)
}
