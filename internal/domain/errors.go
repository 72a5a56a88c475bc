package domain

import (
	"errors"
	"fmt"
)

// Not-found sentinels returned by the persistence layer. A lookup that hits
// the store and finds nothing is distinct from the store being unreachable.
var (
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrUserNotFound    = errors.New("user not found")
)

// DomainError represents a business logic error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeInvalidAmount = "INVALID_AMOUNT"
	ErrCodeInvalidStatus = "INVALID_STATUS"
)

func NewInvalidAmountError(cents int64) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidAmount,
		Message: fmt.Sprintf("invoice amount must not be negative, got %d cents", cents),
	}
}

func NewInvalidStatusError(status string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidStatus,
		Message: fmt.Sprintf("unknown invoice status %q", status),
	}
}
