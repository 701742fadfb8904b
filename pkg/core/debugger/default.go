// ============================================================================
// debugger - Diagnostics facade
// ============================================================================
//
// Package:     debugger
// Description: Process-wide default Debugger and package-level shortcuts
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package debugger

import (
	"sync/atomic"
)

var defaultDebugger atomic.Pointer[Debugger]

func init() {
	defaultDebugger.Store(New())
}

// Default returns the process-wide Debugger
func Default() *Debugger {
	return defaultDebugger.Load()
}

// SetDefault replaces the process-wide Debugger and returns the previous one.
// A nil d installs a fresh New().
func SetDefault(d *Debugger) *Debugger {
	if d == nil {
		d = New()
	}
	return defaultDebugger.Swap(d)
}

// Global shortcuts using the default Debugger

// Enabled reports whether the default Debugger is enabled
func Enabled() bool {
	return Default().Enabled()
}

// SetEnabled enables or disables the default Debugger
func SetEnabled(enabled bool) {
	Default().SetEnabled(enabled)
}

// Level returns the default Debugger's threshold
func Level() LogLevel {
	return Default().Level()
}

// SetLevel sets the default Debugger's threshold
func SetLevel(level LogLevel) {
	Default().SetLevel(level)
}

// Assert panics with *AssertionError if enabled and statement is false
func Assert(statement bool, message ...string) {
	if err := Default().Check(statement, message...); err != nil {
		panic(err)
	}
}

// Check returns *AssertionError if enabled and statement is false
func Check(statement bool, message ...string) error {
	return Default().Check(statement, message...)
}

// AssertNotNull logs an error if enabled and value is null
func AssertNotNull(value any, name string, ctx Object) {
	Default().AssertNotNull(value, name, ctx)
}

// Log writes info through the default Debugger
func Log(message string, ctx ...Object) {
	Default().Log(message, ctx...)
}

// LogWarning writes a warning through the default Debugger
func LogWarning(message string, ctx ...Object) {
	Default().LogWarning(message, ctx...)
}

// LogError writes an error through the default Debugger
func LogError(message string, ctx ...Object) {
	Default().LogError(message, ctx...)
}

// LogException reports err through the default Debugger
func LogException(err error, ctx ...Object) {
	Default().LogException(err, ctx...)
}

// Logf writes formatted info through the default Debugger
func Logf(format string, args ...any) {
	Default().Logf(format, args...)
}

// LogWarningf writes a formatted warning through the default Debugger
func LogWarningf(format string, args ...any) {
	Default().LogWarningf(format, args...)
}

// LogErrorf writes a formatted error through the default Debugger
func LogErrorf(format string, args ...any) {
	Default().LogErrorf(format, args...)
}
