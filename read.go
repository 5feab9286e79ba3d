package focus

import (
	"fmt"

	"github.com/smpoulsen/focus/container"
)

type readState uint8

const (
	stateFound readState = iota
	stateAbsent
	stateFailed
)

// ReadResult is the outcome of viewing through an optic. It is a
// three-state value: Found (the focus exists and holds value, possibly
// nil), Absent (the key, index, or variant tag is missing), or Failed
// (the structure's shape does not support the optic, or a stage of a
// composed optic failed). Keeping absence separate from the value type
// means a stored nil is never confused with a missing key.
type ReadResult[T any] struct {
	value T
	err   error
	state readState
}

// Found creates a successful read carrying value.
func Found[T any](value T) ReadResult[T] {
	return ReadResult[T]{value: value, state: stateFound}
}

// Absent creates a read whose focus does not exist.
func Absent[T any]() ReadResult[T] {
	return ReadResult[T]{state: stateAbsent}
}

// Failed creates a read that could not be performed.
func Failed[T any](err error) ReadResult[T] {
	return ReadResult[T]{err: err, state: stateFailed}
}

// IsFound returns true if the focus exists.
func (r ReadResult[T]) IsFound() bool {
	return r.state == stateFound
}

// IsAbsent returns true if the focus does not exist.
func (r ReadResult[T]) IsAbsent() bool {
	return r.state == stateAbsent
}

// IsFailed returns true if the read could not be performed at all.
func (r ReadResult[T]) IsFailed() bool {
	return r.state == stateFailed
}

// Unwrap returns the focused value or panics if the read did not succeed.
func (r ReadResult[T]) Unwrap() T {
	switch r.state {
	case stateAbsent:
		panic("called Unwrap on Absent")
	case stateFailed:
		panic("called Unwrap on Failed: " + r.err.Error())
	}
	return r.value
}

// UnwrapOr returns the focused value or a default.
func (r ReadResult[T]) UnwrapOr(defaultValue T) T {
	if r.state == stateFound {
		return r.value
	}
	return defaultValue
}

// UnwrapOrElse returns the focused value or computes a default.
func (r ReadResult[T]) UnwrapOrElse(fn func() T) T {
	if r.state == stateFound {
		return r.value
	}
	return fn()
}

// Err returns the failure for Failed reads, a BAD_PATH error for Absent
// reads, and nil for Found reads.
func (r ReadResult[T]) Err() error {
	switch r.state {
	case stateFailed:
		return r.err
	case stateAbsent:
		return container.ErrBadPath
	}
	return nil
}

// Match executes exactly one of the three functions based on state.
func (r ReadResult[T]) Match(onFound func(T), onAbsent func(), onFailed func(error)) {
	switch r.state {
	case stateFound:
		onFound(r.value)
	case stateAbsent:
		onAbsent()
	case stateFailed:
		onFailed(r.err)
	}
}

// MapRead applies a transformation to a Found value, preserving Absent
// and Failed states.
func MapRead[T, U any](r ReadResult[T], fn func(T) U) ReadResult[U] {
	switch r.state {
	case stateAbsent:
		return Absent[U]()
	case stateFailed:
		return Failed[U](r.err)
	}
	return Found(fn(r.value))
}

// String implements fmt.Stringer.
func (r ReadResult[T]) String() string {
	switch r.state {
	case stateAbsent:
		return "Absent"
	case stateFailed:
		return fmt.Sprintf("Failed(%v)", r.err)
	}
	return fmt.Sprintf("Found(%v)", r.value)
}

// readFrom converts an adapter result into a ReadResult: a BAD_PATH
// error becomes Absent, any other error becomes Failed.
func readFrom(value any, err error) ReadResult[any] {
	if err == nil {
		return Found(value)
	}
	if se, ok := err.(*container.ShapeError); ok && se.Code == container.ErrCodeBadPath {
		return Absent[any]()
	}
	return Failed[any](err)
}
