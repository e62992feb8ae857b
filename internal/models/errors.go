package models

import "errors"

// Domain errors returned by the repositories and the account service.
// Handlers translate these into HTTP status codes with errors.Is.
var (
	// ErrAccountNotFound means no account matches the given unique ID. Maps to 404.
	ErrAccountNotFound = errors.New("account not found")

	// ErrDuplicateEmail means the email is already bound to an account. Maps to 400.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInsufficientBalance means a withdrawal exceeds the current balance. Maps to 400.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrUnknownAction means the balance action is neither deposit nor withdraw. Maps to 400.
	ErrUnknownAction = errors.New("unknown balance action")

	// ErrConstraintViolation wraps storage constraint failures other than a
	// duplicate email, e.g. a unique_id collision. Maps to 400.
	ErrConstraintViolation = errors.New("constraint violation")
)
