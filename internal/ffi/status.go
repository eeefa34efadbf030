// Package ffi wraps the foreign wallet engine surface with typed, owned handles.
//
// Every resource the engine allocates is identified by an opaque Token. A
// handle owns exactly one token and frees it at most once. Every fallible
// foreign call receives a Status slot that is inspected right after the call
// returns; a non-zero code becomes a *ForeignCallError.
package ffi

import (
	"errors"
	"fmt"
)

// Token is the opaque address of a foreign resource. The zero value is null.
type Token uintptr

// Null is the token of a resource that does not exist, or no longer does.
const Null Token = 0

// ErrNullHandle is returned when an operation is attempted on a handle whose
// token is null, either because it was never set or because it was destroyed.
//
// It is a precondition failure and never reaches the engine.
var ErrNullHandle = errors.New("operation on null handle")

// ForeignCallError reports a non-zero code written by the engine into the
// error slot of a call.
type ForeignCallError struct {
	Op   string // name of the foreign call
	Code int32  // engine result code
}

// Error implements the error interface.
func (e *ForeignCallError) Error() string {
	return fmt.Sprintf("foreign call %s failed with code %d", e.Op, e.Code)
}

// Status is the out-parameter error slot passed to every fallible foreign call.
type Status struct {
	Code int32
}

// Err returns nil when the slot holds zero and a *ForeignCallError otherwise.
func (s *Status) Err(op string) error {
	if s.Code == 0 {
		return nil
	}

	return &ForeignCallError{Op: op, Code: s.Code}
}

// call runs fn with a fresh Status slot and translates the slot afterwards.
func call[T any](op string, fn func(st *Status) T) (T, error) {
	var st Status
	v := fn(&st)
	if err := st.Err(op); err != nil {
		var zero T
		return zero, err
	}

	return v, nil
}

// callNoResult is call for foreign functions that return nothing.
func callNoResult(op string, fn func(st *Status)) error {
	var st Status
	fn(&st)
	return st.Err(op)
}

// CallCode extracts the engine code from err, if it carries one.
func CallCode(err error) (int32, bool) {
	var fce *ForeignCallError
	if errors.As(err, &fce) {
		return fce.Code, true
	}

	return 0, false
}
