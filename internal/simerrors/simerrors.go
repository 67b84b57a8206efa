// Package simerrors implements the core's typed error taxonomy (spec.md
// §7): NotFound, InvalidArgument, Conflict, and Unreachable. The Game
// Engine is total and never returns one of these; the Season Engine uses
// them for every failure a caller should be able to distinguish and react
// to, instead of bare strings. The Playoff Engine reports its no-op cases
// as a false return instead.
//
// Grounded on the teacher's pkg/response error envelope
// (Code/Message/Status) and internal/middleware's per-class log-level
// handling, reshaped into a typed Go error since the core has no HTTP
// status codes to carry.
package simerrors

import (
	"errors"
	"fmt"
)

// Kind is the closed set of error classes a caller can switch on.
type Kind string

const (
	// NotFound is returned when a requested team, game, or season does
	// not exist.
	NotFound Kind = "NotFound"
	// InvalidArgument is returned for an out-of-range week, a negative
	// score, or other malformed input.
	InvalidArgument Kind = "InvalidArgument"
	// Conflict is returned for completing an already-completed game, or
	// advancing a bracket round whose predecessor is incomplete.
	Conflict Kind = "Conflict"
	// Unreachable indicates an internal invariant was violated - always
	// a bug, never a user-input problem.
	Unreachable Kind = "Unreachable"
)

// Error is a typed, wrapped failure. Compare kinds with errors.Is against
// the Err* sentinels below, or inspect Kind directly after an errors.As.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is supports errors.Is(err, simerrors.ErrNotFound) style comparisons: it
// reports whether target is an *Error of the same Kind, such as one of the
// sentinel errors below.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Kind == other.Kind
	}
	return false
}

// sentinels let callers write errors.Is(err, simerrors.ErrNotFound).
var (
	ErrNotFound        = &Error{Kind: NotFound, Message: "not found"}
	ErrInvalidArgument = &Error{Kind: InvalidArgument, Message: "invalid argument"}
	ErrConflict        = &Error{Kind: Conflict, Message: "conflict"}
	ErrUnreachable     = &Error{Kind: Unreachable, Message: "unreachable"}
)

// NewNotFound wraps msg as a NotFound.
func NewNotFound(msg string, args ...interface{}) *Error {
	return &Error{Kind: NotFound, Message: fmt.Sprintf(msg, args...)}
}

// NewInvalidArgument wraps msg as an InvalidArgument.
func NewInvalidArgument(msg string, args ...interface{}) *Error {
	return &Error{Kind: InvalidArgument, Message: fmt.Sprintf(msg, args...)}
}

// NewConflict wraps msg as a Conflict.
func NewConflict(msg string, args ...interface{}) *Error {
	return &Error{Kind: Conflict, Message: fmt.Sprintf(msg, args...)}
}

// NewUnreachable wraps msg as an Unreachable - a programming error that
// should abort the operation with a diagnostic, not corrupt state.
func NewUnreachable(msg string, args ...interface{}) *Error {
	return &Error{Kind: Unreachable, Message: fmt.Sprintf(msg, args...)}
}

// Wrap attaches err as the cause of a new typed Error of the given kind.
func Wrap(kind Kind, err error, msg string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(msg, args...), Err: err}
}

// KindOf extracts the Kind of err if it (or something it wraps) is an
// *Error, reporting ok=false otherwise.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}
