package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	*zap.Logger
}

// init builds a colored development logger on stderr in debug mode. Otherwise
// the logger discards everything: stderr is reserved for the single failure
// line.
func (l *Logger) init(debug bool) error {
	if !debug {
		l.Logger = zap.NewNop()
		return nil
	}

	zapConfig := zap.NewDevelopmentConfig()
	zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	var err error
	l.Logger, err = zapConfig.Build()
	return err
}

// New takes in a package to initialize the new Logger in. debug comes from
// the general.debug config setting.
func New(pkg string, debug bool) *Logger {
	Log := &Logger{}
	if err := Log.init(debug); err != nil {
		panic(err)
	}

	Log.Logger = Log.Logger.With(
		zap.String("package", pkg),
	)

	return Log
}
