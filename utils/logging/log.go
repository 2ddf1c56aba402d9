// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the surface the rest of the repo logs through. Library code
// that should stay quiet takes a NoLog.
type Logger interface {
	Fatal(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Debug(msg string, fields ...zap.Field)

	// Stop flushes any buffered entries.
	Stop()
}

var _ Logger = (*log)(nil)

type log struct {
	internalLogger *zap.Logger
}

// NewLogger returns a console logger named [prefix] writing entries at or
// above [level] to [w].
func NewLogger(prefix string, level Level, w io.Writer) Logger {
	if level == Off {
		return &log{internalLogger: zap.NewNop()}
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		level.zapLevel(),
	)
	logger := zap.New(core)
	if prefix != "" {
		logger = logger.Named(prefix)
	}

	return &log{internalLogger: logger}
}

func (l *log) log(level zapcore.Level, msg string, fields ...zap.Field) {
	if ce := l.internalLogger.Check(level, msg); ce != nil {
		ce.Write(fields...)
	}
}

func (l *log) Fatal(msg string, fields ...zap.Field) {
	l.log(zapcore.FatalLevel, msg, fields...)
}

func (l *log) Error(msg string, fields ...zap.Field) {
	l.log(zapcore.ErrorLevel, msg, fields...)
}

func (l *log) Warn(msg string, fields ...zap.Field) {
	l.log(zapcore.WarnLevel, msg, fields...)
}

func (l *log) Info(msg string, fields ...zap.Field) {
	l.log(zapcore.InfoLevel, msg, fields...)
}

func (l *log) Debug(msg string, fields ...zap.Field) {
	l.log(zapcore.DebugLevel, msg, fields...)
}

func (l *log) Stop() {
	_ = l.internalLogger.Sync()
}
