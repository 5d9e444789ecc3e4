package errs

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrConflict           = errors.New("conflict")
	ErrOperationFailed    = errors.New("operation failed")
	ErrAuthenticationData = errors.New("authentication data is missing")
	ErrUserExists         = errors.New("user already exists")
)

// Error is a classified domain error. errors.Is matches it against its kind.
type Error struct {
	kind  error
	msg   string
	Field string
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }

func newError(kind error, format string, args ...any) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

func BookNotFound(id uuid.UUID) error {
	return newError(ErrNotFound, "Book not found with id: %s", id)
}

func ReservationNotFound(id uuid.UUID) error {
	return newError(ErrNotFound, "Reservation not found with id: %s", id)
}

func BookHasReservations(id uuid.UUID) error {
	return newError(ErrConflict, "Book with id: %s has reservations and cannot be deleted", id)
}

func InvalidState(msg string) error {
	return newError(ErrConflict, "%s", msg)
}

func OperationFailed(format string, args ...any) error {
	return newError(ErrOperationFailed, format, args...)
}

func Validation(field, msg string) error {
	e := newError(ErrValidation, "%s: %s", field, msg)
	e.Field = field
	return e
}

func MissingClaims() error {
	return newError(ErrAuthenticationData, "User claims are missing required information.")
}
