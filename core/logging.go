package core

import (
	"context"

	"go.uber.org/zap"
)

type loggerKey struct{}

var baseLogger *zap.SugaredLogger

func init() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	baseLogger = logger.Sugar()
}

// WithDefaultLogger attaches a named logger to the context. Components pass
// the returned context down so log lines carry the operation id.
func WithDefaultLogger(parent context.Context, id string) context.Context {
	return context.WithValue(parent, loggerKey{}, baseLogger.With("id", id))
}

func fromContext(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*zap.SugaredLogger); ok {
			return l
		}
	}
	return baseLogger
}

func Infof(ctx context.Context, tpl string, args ...any) {
	fromContext(ctx).Infof(tpl, args...)
}

func Errorf(ctx context.Context, tpl string, args ...any) {
	fromContext(ctx).Errorf(tpl, args...)
}

func Debugf(ctx context.Context, tpl string, args ...any) {
	fromContext(ctx).Debugf(tpl, args...)
}
