package model

import "fmt"

// Sentinel failure classes. Services wrap these so handlers can map any
// returned error onto an HTTP status with errors.Is.
var (
	ErrNotFound     = fmt.Errorf("not found")
	ErrValidation   = fmt.Errorf("validation error")
	ErrPrecondition = fmt.Errorf("precondition failed")
	ErrDependency   = fmt.Errorf("dependency failure")
	ErrUpstream     = fmt.Errorf("upstream unreachable")
)

// Error couples a failure class with an operator-facing detail message.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

// NotFoundf reports a missing destination, guild, or other addressable thing.
func NotFoundf(format string, a ...interface{}) error {
	return &Error{Kind: ErrNotFound, Msg: fmt.Sprintf(format, a...)}
}

// Invalidf reports malformed fields or values outside a fixed allow-set.
func Invalidf(format string, a ...interface{}) error {
	return &Error{Kind: ErrValidation, Msg: fmt.Sprintf(format, a...)}
}

// Preconditionf reports a valid command issued against the wrong state,
// e.g. no connected handle or a non-adjustable source.
func Preconditionf(format string, a ...interface{}) error {
	return &Error{Kind: ErrPrecondition, Msg: fmt.Sprintf(format, a...)}
}

// Dependencyf reports a failure in an external collaborator.
func Dependencyf(format string, a ...interface{}) error {
	return &Error{Kind: ErrDependency, Msg: fmt.Sprintf(format, a...)}
}

// Upstreamf reports that the control tier could not be reached at all.
// Only the panel tier produces this class.
func Upstreamf(format string, a ...interface{}) error {
	return &Error{Kind: ErrUpstream, Msg: fmt.Sprintf(format, a...)}
}
