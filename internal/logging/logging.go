package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects where a logger writes.
type Options struct {
	Path      string
	Workspace string
	Level     zapcore.Level
	// Console adds a stderr core. The terminal UI leaves it off since
	// stderr output would corrupt the screen.
	Console bool
}

// New creates a zap logger that writes JSON to the log file at o.Path,
// and also to stderr when o.Console is set. Workspace name and PID are
// included as initial fields.
func New(o Options) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(o.Path), 0700); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(o.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, err
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(file), o.Level),
	}
	if o.Console {
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(os.Stderr), o.Level))
	}

	logger := zap.New(zapcore.NewTee(cores...),
		zap.Fields(
			zap.String("workspace", o.Workspace),
			zap.Int("pid", os.Getpid()),
		),
	)

	return logger, nil
}
