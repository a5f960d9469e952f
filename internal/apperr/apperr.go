// Package apperr defines the typed failure outcomes shared by every
// domain service. Handlers translate kinds into HTTP status codes; no
// other layer inspects error text.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnknown Kind = iota
	// KindValidation: malformed input, recoverable by correcting the call.
	KindValidation
	// KindNotFound: the referenced entity is absent. Deliberately does not
	// distinguish "never existed" from "deleted".
	KindNotFound
	// KindConflict: the requested state already holds (duplicate join,
	// duplicate registration).
	KindConflict
	// KindUnauthenticated: no valid identity on the request.
	KindUnauthenticated
	// KindForbidden: authenticated but not permitted — membership or
	// authorship check failed.
	KindForbidden
)

type Error struct {
	kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Kind() Kind { return e.kind }

func newf(kind Kind, format string, args ...any) error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

func Validationf(format string, args ...any) error {
	return newf(KindValidation, format, args...)
}

func NotFoundf(format string, args ...any) error {
	return newf(KindNotFound, format, args...)
}

func Conflictf(format string, args ...any) error {
	return newf(KindConflict, format, args...)
}

func Unauthenticatedf(format string, args ...any) error {
	return newf(KindUnauthenticated, format, args...)
}

func Forbiddenf(format string, args ...any) error {
	return newf(KindForbidden, format, args...)
}

// Wrap attaches a kind to an underlying store or transport error while
// keeping it reachable through errors.Is/As.
func Wrap(kind Kind, err error, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{kind: kind, msg: msg, err: err}
}

// KindOf reports the kind of err, or KindUnknown for untyped errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return KindUnknown
}

func IsValidation(err error) bool { return KindOf(err) == KindValidation }
func IsNotFound(err error) bool   { return KindOf(err) == KindNotFound }
func IsConflict(err error) bool   { return KindOf(err) == KindConflict }
func IsForbidden(err error) bool  { return KindOf(err) == KindForbidden }
