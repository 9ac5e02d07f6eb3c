// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Filipe Johansson

package cloudsocket

import (
	"context"
	"fmt"
	"log/slog"
)

type LogType string

const (
	LogTypeRoom     LogType = "room"     // for membership changes
	LogTypeVariable LogType = "variable" // for variable creation and updates
	LogTypeClient   LogType = "client"   // for client events
	LogTypeError    LogType = "error"    // for rejected operations and internal errors
	LogTypeOther    LogType = "other"    // generic
)

type LogLevel int

const (
	LogLevelNone LogLevel = iota
	LogLevelError
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

func (l LogLevel) String() string {
	switch l {
	case LogLevelError:
		return "ERROR"
	case LogLevelWarn:
		return "WARN"
	case LogLevelInfo:
		return "INFO"
	case LogLevelDebug:
		return "DEBUG"
	default:
		return "NONE"
	}
}

type Logger interface {
	Log(logType LogType, level LogLevel, msg string, args ...interface{})
}

type DefaultLogger struct{}

func (l *DefaultLogger) Log(logType LogType, level LogLevel, msg string, args ...interface{}) {
	fmt.Printf("[%s] [%s] %s\n", level, logType, fmt.Sprintf(msg, args...))
}

type NullLogger struct{}

func (l *NullLogger) Log(logType LogType, level LogLevel, msg string, args ...interface{}) {}

// SlogLogger forwards log lines to a *slog.Logger, with the LogType as a "type" attribute.
type SlogLogger struct {
	Logger *slog.Logger
}

func NewSlogLogger(l *slog.Logger) *SlogLogger {
	if l == nil {
		l = slog.Default()
	}
	return &SlogLogger{Logger: l}
}

func (l *SlogLogger) Log(logType LogType, level LogLevel, msg string, args ...interface{}) {
	l.Logger.Log(context.Background(), slogLevel(level), fmt.Sprintf(msg, args...), slog.String("type", string(logType)))
}

func slogLevel(level LogLevel) slog.Level {
	switch level {
	case LogLevelError:
		return slog.LevelError
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelDebug:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
