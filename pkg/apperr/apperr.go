// Package apperr is the error taxonomy shared by the service layer.
// Every failure a service returns to a caller is one of these kinds,
// carrying enough detail (entity, id, field) to render a precise
// message.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindAuthorization
	KindState
	KindConflict
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindAuthorization:
		return "authorization"
	case KindState:
		return "state"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

type Error struct {
	Kind   Kind
	Entity string // "order", "restaurant", ...
	ID     uint   // subject id, 0 when not applicable
	Field  string // offending field, "" when not applicable
	Msg    string
	Err    error // wrapped cause, usually a persistence error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(entity, field, format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Entity: entity, Field: field, Msg: fmt.Sprintf(format, args...)}
}

func NotFound(entity string, id uint) *Error {
	return &Error{Kind: KindNotFound, Entity: entity, ID: id, Msg: fmt.Sprintf("%s %d not found", entity, id)}
}

func Authorization(entity string, id uint, format string, args ...any) *Error {
	return &Error{Kind: KindAuthorization, Entity: entity, ID: id, Msg: fmt.Sprintf(format, args...)}
}

func State(entity string, id uint, format string, args ...any) *Error {
	return &Error{Kind: KindState, Entity: entity, ID: id, Msg: fmt.Sprintf(format, args...)}
}

func Conflict(entity string, id uint, format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Entity: entity, ID: id, Msg: fmt.Sprintf(format, args...)}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Msg: "internal error", Err: err}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

// KindOf returns the kind of err, or KindInternal for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
