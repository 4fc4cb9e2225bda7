package errors

import (
	"errors"
	"fmt"
)

var (
	ErrSalespersonNotFound = errors.New("salesperson not found")
	ErrSalespersonInactive = errors.New("salesperson is inactive")

	ErrVisitNotFound  = errors.New("visit not found")
	ErrOrderNotFound  = errors.New("order not found")
	ErrClientNotFound = errors.New("client not found")

	ErrInvalidInput      = errors.New("invalid input data")
	ErrInvalidStatus     = errors.New("invalid status value")
	ErrInvalidCoordinate = errors.New("coordinates out of range")
	ErrPartialPosition   = errors.New("latitude and longitude must be set together")
)

type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
