// Package logging builds the zap logger used across memberadmin.
//
// The TUI owns the terminal, so interactive runs log only to a rotating
// file. Non-interactive commands may also log to stderr.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configure the logger.
type Options struct {
	Level  string // debug / info / warn / error
	File   string // empty disables the file sink
	Stderr bool   // also write to stderr

	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// New returns a logger and a func that flushes it. With no sinks configured
// it returns a no-op logger.
func New(opts Options) (*zap.Logger, func()) {
	var lvl zapcore.Level
	if err := lvl.Set(strings.TrimSpace(opts.Level)); err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000")
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncodeCaller = zapcore.ShortCallerEncoder
	enc := zapcore.NewConsoleEncoder(cfg)

	var cores []zapcore.Core
	if path := strings.TrimSpace(opts.File); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			rotator := &lumberjack.Logger{
				Filename:   path,
				MaxSize:    orDefault(opts.MaxSizeMB, 5),
				MaxBackups: orDefault(opts.MaxBackups, 3),
				MaxAge:     orDefault(opts.MaxAgeDays, 14),
			}
			cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(rotWriter{rotator}), lvl))
		}
	}
	if opts.Stderr {
		cores = append(cores, zapcore.NewCore(enc, zapcore.Lock(os.Stderr), lvl))
	}
	if len(cores) == 0 {
		return zap.NewNop(), func() {}
	}

	l := zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	return l, func() { _ = l.Sync() }
}

// NewWriter returns a logger that writes to w. Tests use it to inspect
// output.
func NewWriter(w io.Writer, level zapcore.Level) *zap.Logger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = ""
	enc := zapcore.NewConsoleEncoder(cfg)
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), level))
}

type rotWriter struct{ *lumberjack.Logger }

func (w rotWriter) Write(p []byte) (int, error) { return w.Logger.Write(p) }
func (w rotWriter) Sync() error                 { return nil }

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
