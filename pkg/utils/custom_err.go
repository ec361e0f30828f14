package utils

import "errors"

var (
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrDatabaseError      = errors.New("database error")
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountNotFound    = errors.New("account not found")
	ErrTripNotFound       = errors.New("trip not found")
	ErrInvalidDateRange   = errors.New("end date must not be before start date")
	ErrInvalidDate        = errors.New("invalid date")
	ErrNegativeBudget     = errors.New("budget must not be negative")
	ErrBudgetTooLarge     = errors.New("budget exceeds the maximum")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenRevoked       = errors.New("token revoked")
)
