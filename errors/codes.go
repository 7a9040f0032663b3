// Package errors provides the error handling system for sasjslint.
// It extends Go's standard error handling with structured error codes
// and context preservation.
package errors

// ErrorCode represents a specific error condition in the linter.
// Error codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// Resource errors.

	// CodeNotFound indicates a requested file or directory does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// Validation errors.

	// CodeInvalidInput indicates the provided input is invalid or malformed.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidConfig indicates a configuration error prevents the operation.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// CodeConfigLoadFailed indicates a configuration file could not be read or parsed.
	CodeConfigLoadFailed ErrorCode = "CONFIG_LOAD_FAILED"

	// CodeConfigDecodeFailed indicates a parsed configuration could not be decoded.
	CodeConfigDecodeFailed ErrorCode = "CONFIG_DECODE_FAILED"

	// CodeUnsupportedFormat indicates a file or output format is not supported.
	CodeUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"

	// CodeVersionMismatch indicates the linter version does not satisfy a requirement.
	CodeVersionMismatch ErrorCode = "VERSION_MISMATCH"

	// Execution errors.

	// CodeRuleFailed indicates a rule panicked while checking a file.
	CodeRuleFailed ErrorCode = "RULE_FAILED"

	// CodeIOFailed indicates reading or writing a file failed.
	CodeIOFailed ErrorCode = "IO_FAILED"

	// CodeCacheFailed indicates the diagnostics cache could not be used.
	CodeCacheFailed ErrorCode = "CACHE_FAILED"

	// System errors.

	// CodeInternal indicates an internal error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// Generic errors.

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
