package resource

import (
	"context"
	"errors"
	"strings"
)

// Failure kinds. Every fetch error is classified as one of these; the kind
// only changes the message shown to the user, never control flow.
var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrTransport        = errors.New("transport error")
	ErrBadResponse      = errors.New("bad response")
)

// Error carries a failure kind plus the human-readable detail shown in the
// store's Err field.
type Error struct {
	Kind   error
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.Error()
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// PermissionDenied reports a declined device capability.
func PermissionDenied(detail string) error {
	return &Error{Kind: ErrPermissionDenied, Detail: detail}
}

// Transport reports a request that could not complete.
func Transport(detail string, cause error) error {
	return &Error{Kind: ErrTransport, Detail: detail, Err: cause}
}

// BadResponse reports a non-success status or a payload missing required
// fields.
func BadResponse(detail string) error {
	return &Error{Kind: ErrBadResponse, Detail: detail}
}

// KindOf returns the failure kind of err. Unclassified errors count as
// transport failures.
func KindOf(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrPermissionDenied):
		return ErrPermissionDenied
	case errors.Is(err, ErrBadResponse):
		return ErrBadResponse
	default:
		return ErrTransport
	}
}

// Message renders err for display.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "Request timed out."
	}
	var re *Error
	if errors.As(err, &re) {
		return strings.TrimSpace(re.Error())
	}
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		return "Unknown error"
	}
	return msg
}
