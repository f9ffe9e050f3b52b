// Package apperr defines the error taxonomy shared by repositories, services
// and the HTTP layer. Handlers map kinds to status codes in exactly one place.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// KindInternal is anything unexpected: driver failures, broken invariants.
	KindInternal Kind = iota
	// KindValidation is malformed or missing caller input.
	KindValidation
	// KindAuth is a missing, malformed, expired or signature-invalid token.
	KindAuth
	// KindInvalidCredentials is a wrong password on login.
	KindInvalidCredentials
	// KindNotFound is an unknown resource, including cross-owner access,
	// which is deliberately indistinguishable from genuine absence.
	KindNotFound
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "internal error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

func InvalidCredentials(msg string) *Error {
	return &Error{Kind: KindInvalidCredentials, Msg: msg}
}

func Auth(msg string) *Error {
	return &Error{Kind: KindAuth, Msg: msg}
}

// KindOf extracts the kind from err, defaulting to KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func IsNotFound(err error) bool   { return KindOf(err) == KindNotFound }
func IsValidation(err error) bool { return KindOf(err) == KindValidation }
