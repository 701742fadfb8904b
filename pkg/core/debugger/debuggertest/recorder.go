// ============================================================================
// debugger - Diagnostics facade
// ============================================================================
//
// Package:     debuggertest
// Description: Recording sink for tests
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

// Package debuggertest provides a Sink that records every call.
package debuggertest

import (
	"sync"

	"github.com/msto63/debugger/pkg/core/debugger"
)

// Entry is one recorded sink call. Err is set only for exceptions.
type Entry struct {
	Level   debugger.LogLevel
	Message string
	Err     error
	Context debugger.Object
}

// Recorder implements debugger.Sink
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Log records an Info entry
func (r *Recorder) Log(message string, ctx debugger.Object) {
	r.add(Entry{Level: debugger.Info, Message: message, Context: ctx})
}

// LogWarning records a Warning entry
func (r *Recorder) LogWarning(message string, ctx debugger.Object) {
	r.add(Entry{Level: debugger.Warning, Message: message, Context: ctx})
}

// LogError records an Error entry
func (r *Recorder) LogError(message string, ctx debugger.Object) {
	r.add(Entry{Level: debugger.Error, Message: message, Context: ctx})
}

// LogException records an Exception entry. A nil err is recorded with an
// empty message.
func (r *Recorder) LogException(err error, ctx debugger.Object) {
	message := ""
	if err != nil {
		message = err.Error()
	}
	r.add(Entry{Level: debugger.Exception, Message: message, Err: err, Context: ctx})
}

// Entries returns a copy of everything recorded so far
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of recorded entries
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Reset drops all entries
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}

func (r *Recorder) add(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}
