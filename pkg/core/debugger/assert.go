// ============================================================================
// debugger - Diagnostics facade
// ============================================================================
//
// Package:     debugger
// Description: Assertion failures and the panic/error bridge
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package debugger

import (
	"errors"
)

// DefaultAssertMessage is used when Assert or Check is called without a message
const DefaultAssertMessage = "Statement is false!"

// AssertionError is raised by Assert and returned by Check
type AssertionError struct {
	Message string
}

// Error returns the assertion message unchanged
func (e *AssertionError) Error() string {
	return e.Message
}

// IsAssertionError reports whether err wraps an *AssertionError
func IsAssertionError(err error) bool {
	var assertErr *AssertionError
	return errors.As(err, &assertErr)
}

// Recover turns an assertion panic into an error. Use it deferred at a
// boundary that wants recoverable handling:
//
//	func step() (err error) {
//	    defer debugger.Recover(&err)
//	    debugger.Assert(ready, "not ready")
//	    ...
//	}
//
// Panics that are not assertion failures are re-raised.
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	assertErr, ok := r.(*AssertionError)
	if !ok {
		panic(r)
	}
	if errp != nil {
		*errp = assertErr
	}
}

func assertMessage(message []string) string {
	if len(message) == 0 {
		return DefaultAssertMessage
	}
	return message[0]
}

func nullMessage(name string, ctx Object) string {
	return name + " in object " + objectName(ctx) + " ( " + objectType(ctx) + " ) is null!"
}
