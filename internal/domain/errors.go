package domain

import (
	"errors"
	"fmt"

	"git.appkode.ru/pub/go/failure"
)

// AppError is a domain error carrying a stable code from pkg/errcodes.
type AppError struct {
	Code    failure.ErrorCode
	Message string
	invalid bool
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}

	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// ErrorCode lets transports report the code without importing this package.
func (e *AppError) ErrorCode() failure.ErrorCode {
	return e.Code
}

// Invalid reports that the caller supplied a bad argument.
func (e *AppError) Invalid() bool {
	return e.invalid
}

func NewError(code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewInvalidError is a NewError that transports map to a client error.
func NewInvalidError(code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		invalid: true,
	}
}

func WrapError(err error, code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		cause:   err,
	}
}

func WrapInvalidError(err error, code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		invalid: true,
		cause:   err,
	}
}

func IsAppError(err error) bool {
	var appErr *AppError

	return errors.As(err, &appErr)
}

func GetCode(err error) (failure.ErrorCode, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}

	return "", false
}
