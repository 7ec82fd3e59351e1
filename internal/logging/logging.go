// Package logging builds the diagnostics logger from config.
package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"trivia/internal/config"
)

// New returns a zap logger for cfg and a function that flushes and closes
// its sink. Output goes to cfg.File when set, otherwise to w. A nil w with
// no file yields a no-op logger, which is what the live terminal UI wants.
func New(cfg config.LogConfig, w io.Writer) (*zap.Logger, func() error, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	var sink zapcore.WriteSyncer
	closeSink := func() error { return nil }
	switch {
	case cfg.File != "":
		file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		sink = zapcore.AddSync(file)
		closeSink = file.Close
	case w != nil:
		sink = zapcore.AddSync(w)
	default:
		return zap.NewNop(), closeSink, nil
	}

	var encoder zapcore.Encoder
	if cfg.Format == "json" {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}

	logger := zap.New(zapcore.NewCore(encoder, sink, level))
	return logger, func() error {
		_ = logger.Sync()
		return closeSink()
	}, nil
}
