// ============================================================================
// debugger - Diagnostics facade
// ============================================================================
//
// Package:     debugger
// Description: Context handles that tie a message to its originating object
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package debugger

import (
	"fmt"
	"reflect"
	"sync/atomic"

	"github.com/google/uuid"
)

// Object is the context a diagnostic message concerns. Sinks use it for
// host-side presentation only (e.g. highlighting the object in an editor).
type Object interface {
	Name() string
	TypeName() string
}

// Nullable is implemented by values that can be null without being a nil
// Go value, such as a handle to an object the host has already destroyed.
type Nullable interface {
	IsNil() bool
}

// Handle is the default Object implementation
type Handle struct {
	id        uuid.UUID
	name      string
	typeName  string
	destroyed atomic.Bool
}

// NewHandle creates a handle with a fresh instance ID
func NewHandle(name, typeName string) *Handle {
	return &Handle{
		id:       uuid.New(),
		name:     name,
		typeName: typeName,
	}
}

// HandleOf creates a handle whose type descriptor is v's dynamic type
func HandleOf(v any, name string) *Handle {
	typeName := "<nil>"
	if v != nil {
		typeName = reflect.TypeOf(v).String()
	}
	return NewHandle(name, typeName)
}

// ID returns the instance ID
func (h *Handle) ID() uuid.UUID {
	return h.id
}

// Name returns the object name
func (h *Handle) Name() string {
	return h.name
}

// TypeName returns the type descriptor
func (h *Handle) TypeName() string {
	return h.typeName
}

// Destroy marks the object as gone. A destroyed handle is null for AssertNotNull.
func (h *Handle) Destroy() {
	h.destroyed.Store(true)
}

// IsNil implements Nullable
func (h *Handle) IsNil() bool {
	return h == nil || h.destroyed.Load()
}

// String returns "name (type)"
func (h *Handle) String() string {
	if h == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s (%s)", h.name, h.typeName)
}

// isNull reports whether value is absent
func isNull(value any) bool {
	if value == nil {
		return true
	}
	if n, ok := value.(Nullable); ok {
		return n.IsNil()
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// objectName and objectType render a possibly nil Object
func objectName(ctx Object) string {
	if IsNilObject(ctx) {
		return "<nil>"
	}
	return ctx.Name()
}

func objectType(ctx Object) string {
	if IsNilObject(ctx) {
		return "<nil>"
	}
	return ctx.TypeName()
}

// isNilObject ignores Nullable: a destroyed handle still has a readable name.
func IsNilObject(ctx Object) bool {
	if ctx == nil {
		return true
	}
	rv := reflect.ValueOf(ctx)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}
