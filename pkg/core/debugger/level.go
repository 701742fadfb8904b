// ============================================================================
// debugger - Diagnostics facade
// ============================================================================
//
// Package:     debugger
// Description: Log level definitions and threshold comparison
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package debugger

import (
	"strings"
)

// LogLevel is the severity threshold of a Debugger.
// Levels are ordered by increasing verbosity: Info > Warning > Error > Exception > None.
type LogLevel int

const (
	// None suppresses every log call
	None LogLevel = iota

	// Exception lets only LogException through
	Exception

	// Error adds LogError
	Error

	// Warning adds LogWarning
	Warning

	// Info lets everything through
	Info
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case None:
		return "none"
	case Exception:
		return "exception"
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	default:
		return "unknown"
	}
}

// ShortString returns the three letter tag used by console sinks
func (l LogLevel) ShortString() string {
	switch l {
	case None:
		return "---"
	case Exception:
		return "EXC"
	case Error:
		return "ERR"
	case Warning:
		return "WRN"
	case Info:
		return "INF"
	default:
		return "???"
	}
}

// Valid reports whether l is one of the defined levels
func (l LogLevel) Valid() bool {
	return l >= None && l <= Info
}

// Allows returns true if a message of the given severity passes threshold l.
// None is never emitted, even by an Info threshold.
func (l LogLevel) Allows(severity LogLevel) bool {
	if severity <= None {
		return false
	}
	return l >= severity
}

// MarshalText implements encoding.TextMarshaler
func (l LogLevel) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, &ParseError{Input: l.String(), Type: "level"}
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (l *LogLevel) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel parses a string into a log level
func ParseLevel(level string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "none", "off":
		return None, nil
	case "exception", "exc":
		return Exception, nil
	case "error", "err":
		return Error, nil
	case "warning", "warn", "wrn":
		return Warning, nil
	case "info", "inf", "all":
		return Info, nil
	default:
		return Info, &ParseError{
			Input: level,
			Type:  "level",
		}
	}
}

// ParseError represents an error parsing a level value
type ParseError struct {
	Input string
	Type  string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// AllLevels returns all levels in ascending verbosity
func AllLevels() []LogLevel {
	return []LogLevel{None, Exception, Error, Warning, Info}
}

// DefaultLevel returns the threshold a new Debugger starts with
func DefaultLevel() LogLevel {
	return Info
}
