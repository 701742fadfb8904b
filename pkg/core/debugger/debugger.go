// ============================================================================
// debugger - Diagnostics facade
// ============================================================================
//
// Package:     debugger
// Description: Debugger instance: enable flag, threshold and gated forwarding
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package debugger

import (
	"fmt"
	"sync"
)

// Debugger gates diagnostics on an enabled flag and a LogLevel threshold
// and forwards whatever passes to its Sink.
type Debugger struct {
	mu      sync.RWMutex
	enabled bool
	level   LogLevel
	sink    Sink
}

// Option configures a Debugger
type Option func(*Debugger)

// WithEnabled overrides the build-mode default
func WithEnabled(enabled bool) Option {
	return func(d *Debugger) {
		d.enabled = enabled
	}
}

// WithLevel sets the initial threshold
func WithLevel(level LogLevel) Option {
	return func(d *Debugger) {
		d.level = level
	}
}

// WithSink sets the console sink
func WithSink(sink Sink) Option {
	return func(d *Debugger) {
		if sink != nil {
			d.sink = sink
		}
	}
}

// New creates a Debugger. Without options it is enabled iff BuildIsDebug,
// logs at Info and forwards to slog's default logger.
func New(options ...Option) *Debugger {
	d := &Debugger{
		enabled: BuildIsDebug,
		level:   DefaultLevel(),
		sink:    NewSlogSink(nil),
	}
	for _, option := range options {
		option(d)
	}
	return d
}

// Enabled returns whether the Debugger does anything at all
func (d *Debugger) Enabled() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.enabled
}

// SetEnabled switches every operation on or off
func (d *Debugger) SetEnabled(enabled bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.enabled = enabled
}

// Level returns the current threshold
func (d *Debugger) Level() LogLevel {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.level
}

// SetLevel sets the threshold
func (d *Debugger) SetLevel(level LogLevel) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.level = level
}

// Sink returns the current sink
func (d *Debugger) Sink() Sink {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.sink
}

// SetSink replaces the sink; nil restores the slog host sink
func (d *Debugger) SetSink(sink Sink) {
	if sink == nil {
		sink = NewSlogSink(nil)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sink = sink
}

// IsLogging returns true if a message of the given severity would be emitted
func (d *Debugger) IsLogging(severity LogLevel) bool {
	_, ok := d.gate(severity)
	return ok
}

// Assert panics with *AssertionError if the Debugger is enabled and
// statement is false. The message defaults to DefaultAssertMessage.
func (d *Debugger) Assert(statement bool, message ...string) {
	if err := d.Check(statement, message...); err != nil {
		panic(err)
	}
}

// Check is the non-panicking form of Assert
func (d *Debugger) Check(statement bool, message ...string) error {
	if statement || !d.Enabled() {
		return nil
	}
	return &AssertionError{Message: assertMessage(message)}
}

// AssertNotNull logs an error naming the object if value is null.
// It never panics and is not filtered by the threshold.
func (d *Debugger) AssertNotNull(value any, name string, ctx Object) {
	d.mu.RLock()
	enabled, sink := d.enabled, d.sink
	d.mu.RUnlock()

	if enabled && isNull(value) {
		sink.LogError(nullMessage(name, ctx), ctx)
	}
}

// Log writes info to the console
func (d *Debugger) Log(message string, ctx ...Object) {
	if sink, ok := d.gate(Info); ok {
		sink.Log(message, first(ctx))
	}
}

// LogWarning writes a warning to the console
func (d *Debugger) LogWarning(message string, ctx ...Object) {
	if sink, ok := d.gate(Warning); ok {
		sink.LogWarning(message, first(ctx))
	}
}

// LogError writes an error to the console
func (d *Debugger) LogError(message string, ctx ...Object) {
	if sink, ok := d.gate(Error); ok {
		sink.LogError(message, first(ctx))
	}
}

// LogException reports err to the console. A nil err is ignored.
func (d *Debugger) LogException(err error, ctx ...Object) {
	if err == nil {
		return
	}
	if sink, ok := d.gate(Exception); ok {
		sink.LogException(err, first(ctx))
	}
}

// Logf is Log with fmt.Sprintf formatting, done only if the message passes
func (d *Debugger) Logf(format string, args ...any) {
	if sink, ok := d.gate(Info); ok {
		sink.Log(fmt.Sprintf(format, args...), nil)
	}
}

// LogWarningf is LogWarning with formatting
func (d *Debugger) LogWarningf(format string, args ...any) {
	if sink, ok := d.gate(Warning); ok {
		sink.LogWarning(fmt.Sprintf(format, args...), nil)
	}
}

// LogErrorf is LogError with formatting
func (d *Debugger) LogErrorf(format string, args ...any) {
	if sink, ok := d.gate(Error); ok {
		sink.LogError(fmt.Sprintf(format, args...), nil)
	}
}

// gate snapshots the state once so a concurrent SetSink cannot split a call
func (d *Debugger) gate(severity LogLevel) (Sink, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if !d.enabled || !d.level.Allows(severity) {
		return nil, false
	}
	return d.sink, true
}

func first(ctx []Object) Object {
	if len(ctx) == 0 {
		return nil
	}
	return ctx[0]
}
