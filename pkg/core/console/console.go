// ============================================================================
// debugger - Diagnostics facade
// ============================================================================
//
// Package:     console
// Description: Terminal console sink with per-severity colours
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

// Package console implements debugger.Sink for terminals and plain writers.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/msto63/debugger/pkg/core/debugger"
)

// TimeFormat is used when Options.Timestamps is set
const TimeFormat = "15:04:05.000"

// Options configures a Sink
type Options struct {
	// Output defaults to os.Stderr
	Output io.Writer

	// NoColor disables ANSI colours even on a terminal
	NoColor bool

	// Timestamps prefixes each line with the wall clock time
	Timestamps bool

	// Stacks prints pkg/errors stack traces below exception lines
	Stacks bool

	// Now is the clock used for timestamps; defaults to time.Now
	Now func() time.Time
}

// Sink writes one line per message
type Sink struct {
	mu      sync.Mutex
	out     io.Writer
	opts    Options
	colours map[debugger.LogLevel]*color.Color
	dim     *color.Color
}

// stackTracer is the interface pkg/errors attaches to errors it creates
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// New creates a console sink
func New(opts Options) *Sink {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	s := &Sink{
		out:  opts.Output,
		opts: opts,
		colours: map[debugger.LogLevel]*color.Color{
			debugger.Info:      color.New(color.FgGreen),
			debugger.Warning:   color.New(color.FgYellow),
			debugger.Error:     color.New(color.FgRed),
			debugger.Exception: color.New(color.FgMagenta, color.Bold),
		},
		dim: color.New(color.Faint),
	}
	if opts.NoColor {
		for _, c := range s.colours {
			c.DisableColor()
		}
		s.dim.DisableColor()
	}
	return s
}

// Log writes an INF line
func (s *Sink) Log(message string, ctx debugger.Object) {
	s.write(debugger.Info, message, ctx, "")
}

// LogWarning writes a WRN line
func (s *Sink) LogWarning(message string, ctx debugger.Object) {
	s.write(debugger.Warning, message, ctx, "")
}

// LogError writes an ERR line
func (s *Sink) LogError(message string, ctx debugger.Object) {
	s.write(debugger.Error, message, ctx, "")
}

// LogException writes an EXC line, followed by the stack trace if the error
// carries one and Stacks is on.
func (s *Sink) LogException(err error, ctx debugger.Object) {
	trace := ""
	if s.opts.Stacks {
		trace = stackOf(err)
	}
	s.write(debugger.Exception, err.Error(), ctx, trace)
}

func (s *Sink) write(level debugger.LogLevel, message string, ctx debugger.Object, trace string) {
	var b strings.Builder

	if s.opts.Timestamps {
		b.WriteString(s.dim.Sprint(s.opts.Now().Format(TimeFormat)))
		b.WriteByte(' ')
	}
	b.WriteString(s.colours[level].Sprint(level.ShortString()))
	b.WriteByte(' ')
	b.WriteString(message)
	if suffix := describe(ctx); suffix != "" {
		b.WriteByte(' ')
		b.WriteString(s.dim.Sprint(suffix))
	}
	b.WriteByte('\n')
	if trace != "" {
		b.WriteString(trace)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = io.WriteString(s.out, b.String())
}

// describe renders the context handle, or "" without one
func describe(ctx debugger.Object) string {
	if debugger.IsNilObject(ctx) {
		return ""
	}
	return fmt.Sprintf("(object: %s, type: %s)", ctx.Name(), ctx.TypeName())
}

// stackOf returns the innermost pkg/errors stack trace of err, indented
func stackOf(err error) string {
	var tracer stackTracer
	for e := err; e != nil; e = errors.Unwrap(e) {
		if st, ok := e.(stackTracer); ok {
			tracer = st
		}
	}
	if tracer == nil {
		return ""
	}

	var b strings.Builder
	for _, frame := range tracer.StackTrace() {
		fmt.Fprintf(&b, "    at %+v\n", frame)
	}
	return strings.ReplaceAll(b.String(), "\n\t", "\n      ")
}
