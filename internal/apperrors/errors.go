// Package apperrors defines the closed set of error kinds callers can
// branch on: Validation, Auth, Session and Transport. Each error
// carries a machine-readable code alongside the human message, so
// command handlers decide presentation (dialog, redirect, inline
// text) from the kind rather than from string matching.
package apperrors

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// KindValidation covers input rejected before any network call.
	KindValidation Kind = iota
	// KindAuth covers failures reported by the backend's auth surface
	// (bad credentials, duplicate username).
	KindAuth
	// KindSession covers an expired or revoked credential; handlers
	// respond with a session reset, never a dialog.
	KindSession
	// KindTransport covers network and backend failures.
	KindTransport
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindSession:
		return "session"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(code, message string) *Error {
	return &Error{Kind: KindValidation, Code: code, Message: message}
}

func Auth(code, message string) *Error {
	return &Error{Kind: KindAuth, Code: code, Message: message}
}

func Session(code, message string) *Error {
	return &Error{Kind: KindSession, Code: code, Message: message}
}

func Transport(code, message string, err error) *Error {
	return &Error{Kind: KindTransport, Code: code, Message: message, Err: err}
}

// KindOf extracts the kind from err, unwrapping as needed. The second
// return value is false when err carries no kind.
func KindOf(err error) (Kind, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind, true
	}
	return 0, false
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, k Kind) bool {
	got, ok := KindOf(err)
	return ok && got == k
}
