// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Filipe Johansson

package cloudsocket

const (
	// VariablePrefix is the sentinel every cloud variable name starts with.
	VariablePrefix = "☁ "

	DefaultMaxVariables   = 10
	DefaultMaxNameLength  = 100
	DefaultMaxValueLength = 1000
)

// RoomConfig holds the limits a Room enforces on its variable namespace.
// Lengths are exclusive upper bounds measured in UTF-16 code units.
type RoomConfig struct {
	MaxVariables   int
	MaxNameLength  int
	MaxValueLength int
	VariablePrefix string
}

func DefaultRoomConfig() RoomConfig {
	return RoomConfig{
		MaxVariables:   DefaultMaxVariables,
		MaxNameLength:  DefaultMaxNameLength,
		MaxValueLength: DefaultMaxValueLength,
		VariablePrefix: VariablePrefix,
	}
}

func (c RoomConfig) validate() error {
	switch {
	case c.MaxVariables < 1:
		return newInvalidRoomConfigError("max variables must be greater than 0")
	case c.MaxNameLength < 1:
		return newInvalidRoomConfigError("max name length must be greater than 0")
	case c.MaxValueLength < 1:
		return newInvalidRoomConfigError("max value length must be greater than 0")
	case c.VariablePrefix == "":
		return newInvalidRoomConfigError("variable prefix cannot be empty")
	case utf16Len(c.VariablePrefix) >= c.MaxNameLength:
		return newInvalidRoomConfigError("variable prefix does not fit in max name length")
	}
	return nil
}

// LoggerConfig pairs a Logger with the most verbose level it receives per LogType.
type LoggerConfig struct {
	Logger Logger
	Level  map[LogType]LogLevel
}

func DefaultLoggerConfig() *LoggerConfig {
	return &LoggerConfig{
		Logger: &DefaultLogger{},
		Level: map[LogType]LogLevel{
			LogTypeRoom:     LogLevelWarn,
			LogTypeVariable: LogLevelWarn,
			LogTypeClient:   LogLevelWarn,
			LogTypeError:    LogLevelError,
		},
	}
}
