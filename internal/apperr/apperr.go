// Package apperr defines the error kinds the API boundary translates into
// HTTP status codes. Usecases return these instead of raw storage errors so
// handlers never have to inspect driver internals.
package apperr

import "fmt"

type Kind int

const (
	// Internal is anything unexpected. Never exposes internals to callers.
	Internal Kind = iota
	// NotFound means a referenced entity id does not exist.
	NotFound
	// Conflict is a uniqueness violation (name, SKU, inventory row).
	Conflict
	// InvalidInput is a malformed or unparsable request.
	InvalidInput
	// BusinessRule is a domain rule failure, e.g. insufficient stock.
	BusinessRule
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap keeps the cause for logging while presenting a clean message.
func Wrap(kind Kind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf reports the kind of an error, Internal for anything untyped.
func KindOf(err error) Kind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return Internal
}

// MessageOf returns the caller-safe message for an error. Untyped errors get
// a generic message so driver internals never leak into responses.
func MessageOf(err error) string {
	if e, ok := err.(*Error); ok {
		return e.Message
	}
	return "An unexpected error occurred"
}
