package utils

import (
	"errors"
	"fmt"
)

// UseCaseError is the only error kind a service lets escape. Op names the
// service operation, Err keeps the original cause for errors.Is / errors.As.
type UseCaseError struct {
	Op  string
	Err error
}

func NewUseCaseError(op string, err error) *UseCaseError {
	return &UseCaseError{Op: op, Err: err}
}

func (e *UseCaseError) Error() string {
	if e.Err == nil {
		return "UseCase: unknown error"
	}
	return fmt.Sprintf("UseCase: %s", e.Err.Error())
}

func (e *UseCaseError) Unwrap() error {
	return e.Err
}

// AsUseCaseError reports whether err is (or wraps) a UseCaseError.
func AsUseCaseError(err error) (*UseCaseError, bool) {
	var ucErr *UseCaseError
	if errors.As(err, &ucErr) {
		return ucErr, true
	}
	return nil, false
}
