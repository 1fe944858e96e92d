package httperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure by what the caller can do about it.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindTransient
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindTransient:
		return "transient"
	default:
		return "internal"
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
		return fmt.Sprintf("%s: %s (%v)", e.Kind, e.Code, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Code)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func ErrValidation(code, message string) error {
	return &Error{Kind: KindValidation, Code: code, Message: message}
}

func ErrNotFound(code, message string) error {
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

func ErrConflict(code, message string) error {
	return &Error{Kind: KindConflict, Code: code, Message: message}
}

// ErrTransient marks an infrastructure failure (database down, timeout).
// It never carries a business outcome.
func ErrTransient(err error) error {
	if err == nil {
		return nil
	}
	var he *Error
	if errors.As(err, &he) && he.Kind == KindTransient {
		return err
	}
	return &Error{
		Kind:    KindTransient,
		Code:    "service_unavailable",
		Message: "Servicio no disponible temporalmente.",
		Err:     err,
	}
}

// KindOf reports the kind of err; errors that were never classified are internal.
func KindOf(err error) Kind {
	var he *Error
	if errors.As(err, &he) {
		return he.Kind
	}
	return KindInternal
}

func Is(err error, kind Kind, code string) bool {
	var he *Error
	if errors.As(err, &he) {
		return he.Kind == kind && he.Code == code
	}
	return false
}
