// ============================================================================
// debugger - Diagnostics facade
// ============================================================================
//
// Package:     debugger
// Description: Console sink contract and the slog-backed host sink
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package debugger

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Sink is the host console a Debugger forwards to. ctx may be nil.
// Where the text ends up and how it is buffered is up to the sink.
type Sink interface {
	Log(message string, ctx Object)
	LogWarning(message string, ctx Object)
	LogError(message string, ctx Object)
	LogException(err error, ctx Object)
}

// SlogSink forwards to a *slog.Logger. A nil Logger means slog.Default()
// at call time, so SetDefault on slog is honoured.
type SlogSink struct {
	Logger *slog.Logger
}

// NewSlogSink creates a sink over logger
func NewSlogSink(logger *slog.Logger) *SlogSink {
	return &SlogSink{Logger: logger}
}

// Log writes at slog.LevelInfo
func (s *SlogSink) Log(message string, ctx Object) {
	s.logger().LogAttrs(context.Background(), slog.LevelInfo, message, contextAttrs(ctx)...)
}

// LogWarning writes at slog.LevelWarn
func (s *SlogSink) LogWarning(message string, ctx Object) {
	s.logger().LogAttrs(context.Background(), slog.LevelWarn, message, contextAttrs(ctx)...)
}

// LogError writes at slog.LevelError
func (s *SlogSink) LogError(message string, ctx Object) {
	s.logger().LogAttrs(context.Background(), slog.LevelError, message, contextAttrs(ctx)...)
}

// LogException writes err at slog.LevelError with an "error" attribute
func (s *SlogSink) LogException(err error, ctx Object) {
	attrs := append(contextAttrs(ctx), slog.Any("error", err))
	s.logger().LogAttrs(context.Background(), slog.LevelError, err.Error(), attrs...)
}

func (s *SlogSink) logger() *slog.Logger {
	if s == nil || s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

// contextAttrs converts an Object into slog attributes
func contextAttrs(ctx Object) []slog.Attr {
	if IsNilObject(ctx) {
		return nil
	}
	attrs := []slog.Attr{
		slog.String("object", ctx.Name()),
		slog.String("type", ctx.TypeName()),
	}
	if identified, ok := ctx.(interface{ ID() uuid.UUID }); ok {
		attrs = append(attrs, slog.String("object_id", identified.ID().String()))
	}
	return attrs
}
