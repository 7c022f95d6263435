// Package errors provides const-friendly sentinel errors for the rule function packages.
//
// Sentinels are declared as package constants and wrapped with a cause when returned:
//
//	const ErrUnknownFunction = errors.Error("unknown function")
//
//	return ErrUnknownFunction.Wrap(fmt.Errorf("id %q", id))
//
// The wrapped error still matches the sentinel with errors.Is.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Separator sits between a sentinel message and its cause in a wrapped error message.
const Separator = " -- "

// Error is a string based error so sentinels can be declared as constants.
type Error string

func (s Error) Error() string {
	return string(s)
}

// Is reports whether target is this sentinel or an error produced by wrapping it.
func (s Error) Is(target error) bool {
	if target == nil {
		return false
	}
	msg := target.Error()
	return msg == string(s) || strings.HasPrefix(msg, string(s)+Separator)
}

// Wrap attaches err as the cause of this sentinel.
func (s Error) Wrap(err error) error {
	return wrappedError{cause: err, msg: string(s)}
}

// Wrapf attaches a formatted cause to this sentinel.
func (s Error) Wrapf(format string, args ...any) error {
	return s.Wrap(fmt.Errorf(format, args...))
}

type wrappedError struct {
	cause error
	msg   string
}

func (w wrappedError) Error() string {
	if w.cause != nil {
		return w.msg + Separator + w.cause.Error()
	}
	return w.msg
}

func (w wrappedError) Is(target error) bool {
	return Error(w.msg).Is(target)
}

func (w wrappedError) Unwrap() error {
	return w.cause
}

// Is wraps errors.Is so callers can import this package in place of the standard one.
func Is(err error, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// New returns a new error with the specified message.
func New(message string) error {
	return errors.New(message)
}

// Join returns an error that wraps the given errors.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// UnwrapErrors returns the errors joined into err, or err itself when it is not a joined error.
func UnwrapErrors(err error) []error {
	if err == nil {
		return nil
	}

	if je, ok := err.(interface{ Unwrap() []error }); ok {
		return je.Unwrap()
	}
	return []error{err}
}
