package errors

import (
	stderrors "errors"
	"fmt"
	"maps"
)

// PlatformError is implemented by every error created by this package.
type PlatformError interface {
	error

	// Code returns the error code classifying the failure.
	Code() ErrorCode

	// Context returns additional key/value metadata about the failure.
	Context() map[string]interface{}

	// Unwrap returns the underlying cause, if any.
	Unwrap() error
}

type platformError struct {
	code    ErrorCode
	message string
	context map[string]interface{}
	cause   error
}

func (e *platformError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *platformError) Code() ErrorCode { return e.code }

func (e *platformError) Context() map[string]interface{} { return e.context }

func (e *platformError) Unwrap() error { return e.cause }

// New creates a new PlatformError with the given code and message.
//
//nolint:ireturn // PlatformError is the package's public error contract
func New(code ErrorCode, message string) PlatformError {
	return &platformError{code: code, message: message}
}

// Newf creates a new PlatformError with a formatted message.
//
//nolint:ireturn // PlatformError is the package's public error contract
func Newf(code ErrorCode, format string, args ...interface{}) PlatformError {
	return &platformError{code: code, message: fmt.Sprintf(format, args...)}
}

// Wrap wraps err with a code and message. It returns nil if err is nil.
//
//nolint:ireturn // PlatformError is the package's public error contract
func Wrap(err error, code ErrorCode, message string) PlatformError {
	if err == nil {
		return nil
	}
	return &platformError{code: code, message: message, cause: err}
}

// WrapWithContext wraps err with a code, message and context metadata.
// The context map is copied. It returns nil if err is nil.
//
//nolint:ireturn // PlatformError is the package's public error contract
func WrapWithContext(err error, code ErrorCode, message string, context map[string]interface{}) PlatformError {
	if err == nil {
		return nil
	}
	return &platformError{
		code:    code,
		message: message,
		context: maps.Clone(context),
		cause:   err,
	}
}

// GetCode returns the code of the outermost PlatformError in err's chain,
// or CodeUnknown if there is none.
func GetCode(err error) ErrorCode {
	var pe PlatformError
	if As(err, &pe) {
		return pe.Code()
	}
	return CodeUnknown
}

// HasCode reports whether any PlatformError in err's chain carries code.
func HasCode(err error, code ErrorCode) bool {
	for err != nil {
		if pe, ok := err.(PlatformError); ok && pe.Code() == code {
			return true
		}
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			for _, e := range joined.Unwrap() {
				if HasCode(e, code) {
					return true
				}
			}
			return false
		}
		err = stderrors.Unwrap(err)
	}
	return false
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool { return stderrors.As(err, target) }

// Join returns an error that wraps the given errors, discarding nils.
func Join(errs ...error) error { return stderrors.Join(errs...) }
