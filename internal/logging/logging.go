// Package logging builds the process logger. INFO and WARN go to stdout,
// ERROR and above to stderr, and an optional log file receives everything.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options select the level, encoding and optional log file.
type Options struct {
	Level  string // debug, info, warn or error
	Format string // console or json
	File   string
}

// New returns a logger and a cleanup function that flushes it and closes
// the log file when one was opened.
func New(opts Options) (*zap.Logger, func(), error) {
	f, cleanup, err := openFile(opts.File)
	if err != nil {
		return nil, nil, err
	}
	logger, err := build(opts, os.Stdout, os.Stderr, f)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return logger, func() {
		_ = logger.Sync()
		cleanup()
	}, nil
}

func openFile(path string) (io.Writer, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// build tees level-filtered cores over stdout, stderr and file. A nil file
// is skipped.
func build(opts Options, stdout, stderr, file io.Writer) (*zap.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	enc, err := encoder(opts.Format)
	if err != nil {
		return nil, err
	}

	low := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= level && l < zapcore.ErrorLevel
	})
	high := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= level && l >= zapcore.ErrorLevel
	})

	cores := []zapcore.Core{
		zapcore.NewCore(enc, zapcore.AddSync(stdout), low),
		zapcore.NewCore(enc.Clone(), zapcore.AddSync(stderr), high),
	}
	if file != nil {
		cores = append(cores, zapcore.NewCore(enc.Clone(), zapcore.AddSync(file), level))
	}
	return zap.New(zapcore.NewTee(cores...)), nil
}

// ParseLevel maps a level name onto a zap level. Empty means info.
func ParseLevel(s string) (zapcore.Level, error) {
	if strings.TrimSpace(s) == "" {
		return zapcore.InfoLevel, nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(s)))); err != nil {
		return l, fmt.Errorf("invalid log level %q", s)
	}
	return l, nil
}

func encoder(format string) (zapcore.Encoder, error) {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	switch strings.ToLower(format) {
	case "", "console":
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewConsoleEncoder(cfg), nil
	case "json":
		return zapcore.NewJSONEncoder(cfg), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}
