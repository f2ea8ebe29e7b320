// Package logger builds the named, colored console loggers used by every component.
package logger

import (
	"errors"
	"io"

	"github.com/beka-birhanu/pony-escape/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrNilWriter is returned when no output is given to a logger.
var ErrNilWriter = errors.New("logger output is nil")

// New creates a logger whose lines are prefixed with the colored component name,
// e.g. "[NAVIGATOR] [INFO] move accepted".
func New(name, color string, w io.Writer, level zapcore.Level) (*zap.Logger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		NameKey:          "name",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeTime:       zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05"),
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
		EncodeName: func(n string, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(color + "[" + n + "]" + config.ColorReset)
		},
		EncodeLevel: func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			levelColor := config.ColorGreen
			switch {
			case l >= zapcore.ErrorLevel:
				levelColor = config.ColorRed
			case l == zapcore.WarnLevel:
				levelColor = config.ColorYellow
			}
			enc.AppendString(levelColor + "[" + l.CapitalString() + "]" + config.ColorReset)
		},
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(w), level)
	return zap.New(core).Named(name), nil
}
