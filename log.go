package cp6

import (
	"sync"

	"go.uber.org/zap"
)

// Logger is the small structured-logging surface this package logs through.
// Modeled on drand's common/log.Logger: a thin wrapper over a
// *zap.SugaredLogger so callers can plug in their own zap core without this
// package depending on any particular sink or encoding.
type Logger interface {
	Debugw(msg string, keyvals ...interface{})
	Errorw(msg string, keyvals ...interface{})
	With(args ...interface{}) Logger
}

type zapLogger struct {
	*zap.SugaredLogger
}

func (l *zapLogger) With(args ...interface{}) Logger {
	return &zapLogger{l.SugaredLogger.With(args...)}
}

var (
	defaultLoggerOnce sync.Once
	defaultLogger     Logger
)

// DefaultLogger returns the package-wide default logger, built from zap's
// production configuration the first time it is requested.
func DefaultLogger() Logger {
	defaultLoggerOnce.Do(func() {
		z, err := zap.NewProduction()
		if err != nil {
			z = zap.NewNop()
		}
		defaultLogger = &zapLogger{z.Sugar()}
	})
	return defaultLogger
}

// NewLogger wraps an existing zap logger, letting a host application share
// its own zap core and options with this package.
func NewLogger(z *zap.Logger) Logger {
	return &zapLogger{z.Sugar()}
}
