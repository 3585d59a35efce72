package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Failure kinds for a single upload attempt. Everything here is scoped to one
// upload; nothing is fatal to the process.
var (
	ErrNotFound   = errors.New("resource not found")
	ErrValidation = errors.New("validation failed")
	ErrQuota      = errors.New("monthly quota exceeded")

	// Extraction failures, kept distinct so callers can decide whether a
	// retry of the whole upload makes sense.
	ErrExtractionTransient   = errors.New("extraction failed transiently")
	ErrExtractionMalformed   = errors.New("extraction returned unparseable content")
	ErrExtractionUnsupported = errors.New("extraction input unreadable")

	// ErrConflict marks a unique-constraint race. It is resolved internally
	// by re-reading the winning record and must not reach the caller.
	ErrConflict = errors.New("persistence conflict")

	ErrDatabase = errors.New("database error")
	ErrInternal = errors.New("internal error")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func ResourceExhaustedError(message string) error {
	return status.Error(codes.ResourceExhausted, message)
}

func UnavailableError(message string) error {
	return status.Error(codes.Unavailable, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}

// GRPCStatus maps the upload failure taxonomy onto gRPC status codes.
func GRPCStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrValidation):
		return InvalidArgumentError(err.Error())
	case errors.Is(err, ErrNotFound):
		return NotFoundError(err.Error())
	case errors.Is(err, ErrQuota):
		return ResourceExhaustedError(err.Error())
	case errors.Is(err, ErrExtractionTransient):
		return UnavailableError(err.Error())
	default:
		return InternalError(err.Error())
	}
}
