package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nezia1/missive/config"
)

// Logger wraps a zap sugared logger. The zero value is a valid no-op logger,
// which keeps tests free of logging setup.
type Logger struct {
	sugar *zap.SugaredLogger
}

func NewLogger(cfg *config.Config) (*Logger, error) {
	level := zapcore.InfoLevel
	if cfg != nil {
		if parsed, err := zapcore.ParseLevel(cfg.LoggerMode.Level); err == nil && cfg.LoggerMode.Level != "" {
			level = parsed
		}
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if cfg != nil && cfg.LoggerMode.Development {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), level)
	l := zap.New(core, zap.Fields(zap.Int("pid", os.Getpid())))

	return &Logger{sugar: l.Sugar()}, nil
}

func (l *Logger) Debug(msg string, keysAndValues ...any) {
	if l != nil && l.sugar != nil {
		l.sugar.Debugw(msg, keysAndValues...)
	}
}

func (l *Logger) Info(msg string, keysAndValues ...any) {
	if l != nil && l.sugar != nil {
		l.sugar.Infow(msg, keysAndValues...)
	}
}

func (l *Logger) Warn(msg string, keysAndValues ...any) {
	if l != nil && l.sugar != nil {
		l.sugar.Warnw(msg, keysAndValues...)
	}
}

func (l *Logger) Error(msg string, keysAndValues ...any) {
	if l != nil && l.sugar != nil {
		l.sugar.Errorw(msg, keysAndValues...)
	}
}

func (l *Logger) Infof(format string, args ...any) {
	if l != nil && l.sugar != nil {
		l.sugar.Infof(format, args...)
	}
}

func (l *Logger) Warnf(format string, args ...any) {
	if l != nil && l.sugar != nil {
		l.sugar.Warnf(format, args...)
	}
}

func (l *Logger) Errorf(format string, args ...any) {
	if l != nil && l.sugar != nil {
		l.sugar.Errorf(format, args...)
	}
}

func (l *Logger) Sync() {
	if l != nil && l.sugar != nil {
		_ = l.sugar.Sync()
	}
}
