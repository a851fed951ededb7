// Package log provides the structured logger used across the module. It
// wraps zap the same way drand's common/log package does: a small Logger
// interface backed by a *zap.SugaredLogger, with a lazily-built default
// instance and fluent With/Named helpers.
package log

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging surface used by the join sessions (package join).
// No operation here ever logs key material.
type Logger interface {
	Debugw(msg string, keyvals ...interface{})
	Infow(msg string, keyvals ...interface{})
	Warnw(msg string, keyvals ...interface{})
	Errorw(msg string, keyvals ...interface{})
	With(args ...interface{}) Logger
	Named(s string) Logger
}

type log struct {
	*zap.SugaredLogger
}

func (l *log) With(args ...interface{}) Logger {
	return &log{l.SugaredLogger.With(args...)}
}

func (l *log) Named(s string) Logger {
	return &log{l.SugaredLogger.Named(s)}
}

const (
	DebugLevel = int(zapcore.DebugLevel)
	InfoLevel  = int(zapcore.InfoLevel)
	WarnLevel  = int(zapcore.WarnLevel)
	ErrorLevel = int(zapcore.ErrorLevel)
)

// DefaultLevel controls the verbosity of DefaultLogger. Change it before the
// first call to DefaultLogger to take effect.
var DefaultLevel = InfoLevel

func init() {
	if v, ok := os.LookupEnv("GROUPSIG_TEST_LOGS"); ok && v == "DEBUG" {
		DefaultLevel = DebugLevel
	}
}

var (
	defaultOnce sync.Once
	defaultLog  Logger
)

// DefaultLogger returns the package's lazily-initialized default logger.
func DefaultLogger() Logger {
	defaultOnce.Do(func() {
		defaultLog = New(nil, DefaultLevel, true)
	})
	return defaultLog
}

// New builds a logger writing to output (stderr when nil) at the given
// level, JSON-encoded when isJSON is set, console-encoded otherwise.
func New(output zapcore.WriteSyncer, level int, isJSON bool) Logger {
	if output == nil {
		output = zapcore.AddSync(os.Stderr)
	}
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	var encoder zapcore.Encoder
	if isJSON {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, output, zapcore.Level(level))
	return &log{zap.New(core, zap.WithCaller(true)).Sugar()}
}
