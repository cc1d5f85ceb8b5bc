package usecase

import (
	"fmt"
)

// Kind classifies a service failure so the transport layer can pick a
// status code without inspecting error strings.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindConflict
)

// Error is the failure type every service method returns on the error
// path. Fields carries per-field validation messages when Kind is
// KindValidation.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func ErrValidation(message string, fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

func ErrUnauthenticated(message string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: message}
}

func ErrForbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func ErrNotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func ErrConflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func ErrInternal(message string, cause error) *Error {
	return &Error{Kind: KindInternal, Message: message, cause: cause}
}
