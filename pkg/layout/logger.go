package layout

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the layout package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the layout package's logger.
// This must be called before any layout pass.
func SetLogger(l *zap.Logger) {
	logger = l
}

func tracePass(msg string, fields ...zap.Field) {
	if ce := Logger().Check(zapcore.DebugLevel, msg); ce != nil {
		ce.Write(fields...)
	}
}
