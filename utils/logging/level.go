// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

type Level int

const (
	Off Level = iota
	Fatal
	Error
	Warn
	Info
	Debug
)

const (
	offStr     = "OFF"
	fatalStr   = "FATAL"
	errorStr   = "ERROR"
	warnStr    = "WARN"
	infoStr    = "INFO"
	debugStr   = "DEBUG"
	unknownStr = "UNKNO"
)

// Inverse of Level.String()
func ToLevel(l string) (Level, error) {
	switch strings.ToUpper(l) {
	case offStr:
		return Off, nil
	case fatalStr:
		return Fatal, nil
	case errorStr:
		return Error, nil
	case warnStr:
		return Warn, nil
	case infoStr:
		return Info, nil
	case debugStr:
		return Debug, nil
	default:
		return Off, fmt.Errorf("unknown log level: %q", l)
	}
}

func (l Level) String() string {
	switch l {
	case Off:
		return offStr
	case Fatal:
		return fatalStr
	case Error:
		return errorStr
	case Warn:
		return warnStr
	case Info:
		return infoStr
	case Debug:
		return debugStr
	default:
		// This should never happen
		return unknownStr
	}
}

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case Fatal:
		return zapcore.FatalLevel
	case Error:
		return zapcore.ErrorLevel
	case Warn:
		return zapcore.WarnLevel
	case Info:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}
