package logger

import (
	"go.uber.org/zap"
)

var sugar *zap.SugaredLogger

// Init configures the process-wide logger. Production gets JSON output,
// anything else gets the human-readable development encoder.
func Init(environment string) {
	var l *zap.Logger
	if environment == "production" {
		l, _ = zap.NewProduction(zap.AddCallerSkip(1))
	} else {
		l, _ = zap.NewDevelopment(zap.AddCallerSkip(1))
	}
	sugar = l.Sugar()
}

// get falls back to a no-op logger so packages can log before Init,
// e.g. in tests.
func get() *zap.SugaredLogger {
	if sugar == nil {
		return zap.NewNop().Sugar()
	}
	return sugar
}

func Info(msg string, keysAndValues ...interface{}) {
	get().Infow(msg, keysAndValues...)
}

func Warn(msg string, keysAndValues ...interface{}) {
	get().Warnw(msg, keysAndValues...)
}

func Error(msg string, keysAndValues ...interface{}) {
	get().Errorw(msg, keysAndValues...)
}

func Fatal(msg string, keysAndValues ...interface{}) {
	get().Fatalw(msg, keysAndValues...)
}

// Sync flushes buffered log entries; call on shutdown.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
