package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrDuplicateAccount = errors.New("account already exists")
	ErrQuotaExceeded    = errors.New("premium quota exceeded")
	ErrDailyCapReached  = errors.New("daily download cap reached")
	ErrUnsupportedPlan  = errors.New("unsupported plan")
)

// ValidationError reports malformed input. Callers receive it synchronously;
// input is never silently corrected.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// AuthError reports a failed login. The message is deliberately generic so a
// response cannot be used to probe which identifiers exist.
type AuthError struct{}

func (e *AuthError) Error() string { return "invalid credentials" }

// ErrInvalidCredentials is the only AuthError ever surfaced.
var ErrInvalidCredentials = &AuthError{}

// StorageError wraps a persistence read/write failure.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
