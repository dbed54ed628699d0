package browser

import "errors"

// Kind is a stable error classification surfaced to tool callers. The set is
// closed: every failure crossing the dispatch boundary maps to exactly one
// kind.
type Kind string

const (
	KindUnknownTool      Kind = "UnknownTool"
	KindInvalidArguments Kind = "InvalidArguments"
	KindLaunchError      Kind = "LaunchError"
	KindNavigationError  Kind = "NavigationError"
	KindElementNotFound  Kind = "ElementNotFound"
	KindTimeout          Kind = "Timeout"
	KindInternalError    Kind = "InternalError"
)

// Error is an explicit failure value with a stable kind and a human message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return string(e.Kind) + ": " + e.Message + ": " + e.Err.Error()
	}
	return string(e.Kind) + ": " + e.Message
}

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a classified error.
func NewError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the classification of err, falling back to InternalError
// for unclassified failures.
func KindOf(err error) Kind {
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Kind
	}
	return KindInternalError
}
