package services

import (
	"errors"
	"fmt"
)

// Error kinds. Handlers map each kind to one HTTP status; anything that
// wraps none of them is an internal error.
var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// Error is a client-facing failure of a given kind.
type Error struct {
	Kind    error
	Message string
	Details any
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

var (
	ErrInvalidCredentials = newError(ErrUnauthorized, "Invalid credentials")
	ErrAccountDeactivated = newError(ErrForbidden, "Account is deactivated. Please contact super admin.")
	ErrAccountNotFound    = newError(ErrUnauthorized, "Account no longer exists")

	ErrAdminNotFound     = newError(ErrNotFound, "Admin not found")
	ErrAdminExists       = newError(ErrConflict, "Email or username already exists")
	ErrEmailInUse        = newError(ErrConflict, "Email already in use")
	ErrCustomerNotFound  = newError(ErrNotFound, "Customer not found")
	ErrCustomerExists    = newError(ErrConflict, "Customer with this phone number already exists")
	ErrPhoneInUse        = newError(ErrConflict, "Phone number already in use")
	ErrOrderNotFound     = newError(ErrNotFound, "Order not found")
	ErrReferenceNotFound = newError(ErrNotFound, "Referenced record does not exist")
)

// DependentsError blocks a delete while dependent records exist.
type DependentsError struct {
	Resource string
	Count    int64
}

func (e *DependentsError) Error() string {
	return fmt.Sprintf("Cannot delete %s with existing orders", e.Resource)
}

func (e *DependentsError) Unwrap() error { return ErrConflict }
