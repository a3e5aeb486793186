package logstore

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Error represents a structured logstore error with context and category
type Error struct {
	Op    string    // Operation that failed (e.g., "COMMIT", "REPLAY")
	Code  ErrorCode // High-level error category
	Msg   string    // Human-readable message
	Inner error     // Wrapped error
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = string(e.Code)
	}
	if e.Op != "" {
		return fmt.Sprintf("logstore: %s (op=%s)", msg, e.Op)
	}
	return fmt.Sprintf("logstore: %s", msg)
}

// Unwrap returns the wrapped error for errors.Is/As support
func (e *Error) Unwrap() error {
	return e.Inner
}

// Is provides errors.Is support: two structured errors match on category
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if te, ok := target.(*Error); ok {
		return e.Code == te.Code
	}
	return false
}

// ErrorCode represents high-level error categories
type ErrorCode string

const (
	// ErrCodeParse marks a malformed frame or truncated buffer.
	ErrCodeParse ErrorCode = "parse error"
	// ErrCodeInternal marks I/O failures, transport errors, bad bounds, and
	// exhausted retries.
	ErrCodeInternal ErrorCode = "internal error"
	// ErrCodeConfig marks a bad address or path.
	ErrCodeConfig ErrorCode = "config error"
	// ErrCodeValue marks a domain error. Reserved; nothing produces it yet.
	ErrCodeValue ErrorCode = "value error"
	// ErrCodeAbort marks cooperative cancellation.
	ErrCodeAbort ErrorCode = "operation aborted"
)

// Error constructors

// NewError creates a new structured error
func NewError(op string, code ErrorCode, msg string) *Error {
	return &Error{
		Op:   op,
		Code: code,
		Msg:  msg,
	}
}

// ParseError creates a parse-category error
func ParseError(op, msg string) *Error {
	return NewError(op, ErrCodeParse, msg)
}

// InternalError creates an internal-category error
func InternalError(op, msg string) *Error {
	return NewError(op, ErrCodeInternal, msg)
}

// ConfigError creates a config-category error
func ConfigError(op, msg string) *Error {
	return NewError(op, ErrCodeConfig, msg)
}

// WrapError wraps an existing error with logstore context. Structured
// errors keep their category; everything else becomes internal.
func WrapError(op string, inner error) *Error {
	if inner == nil {
		return nil
	}

	if le, ok := inner.(*Error); ok {
		return &Error{
			Op:    op,
			Code:  le.Code,
			Msg:   le.Msg,
			Inner: le.Inner,
		}
	}

	return &Error{
		Op:    op,
		Code:  ErrCodeInternal,
		Msg:   inner.Error(),
		Inner: inner,
	}
}

// IsCode checks if an error matches a specific error code
func IsCode(err error, code ErrorCode) bool {
	var lerr *Error
	if errors.As(err, &lerr) {
		return lerr.Code == code
	}
	return false
}

// ToStatus converts an error into the gRPC status the log service reports.
// Every category surfaces as a textual internal status.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Error(codes.Internal, err.Error())
}

// FromStatus converts a gRPC transport error back into the caller's
// internal error domain.
func FromStatus(op string, err error) *Error {
	if err == nil {
		return nil
	}
	if s, ok := status.FromError(err); ok {
		return &Error{
			Op:    op,
			Code:  ErrCodeInternal,
			Msg:   s.Message(),
			Inner: err,
		}
	}
	return WrapError(op, err)
}
