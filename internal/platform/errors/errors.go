// Package errors provides a structured error type with wrapping and metadata
package errors

// Always import the project errors package as perr (platform/errors)

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode defines supported error codes used across the scanner
// Values are stable for wire compatibility; add sparingly
type ErrorCode uint16

const (
	// ErrorCodeUnknown is for unclassified errors
	ErrorCodeUnknown ErrorCode = iota

	// ErrorCodePanic is for panics recovered by middleware
	ErrorCodePanic

	// ErrorCodeUsage is for bad command line usage (missing args, unknown flags)
	ErrorCodeUsage

	// ErrorCodeInvalidConfiguration is for scan parameters out of range (max repeat < 1, bad format)
	ErrorCodeInvalidConfiguration

	// ErrorCodeTableSyntax is for malformed translation table files
	ErrorCodeTableSyntax

	// ErrorCodeNotFound is for missing input or table files
	ErrorCodeNotFound

	// ErrorCodeReadFailure is for I/O errors while paging the input
	ErrorCodeReadFailure

	// ErrorCodeWriteFailure is for errors writing results
	ErrorCodeWriteFailure

	// ErrorCodeTooLarge is for request bodies beyond the configured cap
	ErrorCodeTooLarge

	// ErrorCodeCanceled is for scans stopped by context cancellation
	ErrorCodeCanceled
)

var codeNames = map[ErrorCode]string{
	ErrorCodeUnknown:              "unknown",
	ErrorCodePanic:                "panic",
	ErrorCodeUsage:                "usage",
	ErrorCodeInvalidConfiguration: "invalid_configuration",
	ErrorCodeTableSyntax:          "table_syntax",
	ErrorCodeNotFound:             "not_found",
	ErrorCodeReadFailure:          "read_failure",
	ErrorCodeWriteFailure:         "write_failure",
	ErrorCodeTooLarge:             "too_large",
	ErrorCodeCanceled:             "canceled",
}

// String returns the snake_case name of the code
func (c ErrorCode) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("code(%d)", uint16(c))
}

// HTTPStatusCode turns an ErrorCode into an http status code
func HTTPStatusCode(c ErrorCode) int {
	switch c {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeInvalidConfiguration, ErrorCodeUsage:
		return http.StatusBadRequest
	case ErrorCodeTableSyntax:
		return http.StatusUnprocessableEntity
	case ErrorCodeTooLarge:
		return http.StatusRequestEntityTooLarge
	case ErrorCodeCanceled:
		return http.StatusRequestTimeout
	case ErrorCodeReadFailure, ErrorCodeWriteFailure, ErrorCodePanic, ErrorCodeUnknown:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// ExitCode turns an ErrorCode into a process exit status for the CLI
// 2 is reserved for bad invocation (usage, configuration, table), 1 for runtime failures
func ExitCode(c ErrorCode) int {
	switch c {
	case ErrorCodeUsage, ErrorCodeInvalidConfiguration, ErrorCodeTableSyntax, ErrorCodeNotFound:
		return 2
	case ErrorCodeCanceled:
		return 130
	default:
		return 1
	}
}

// ErrNotFound is a sentinel not found error for convenience
var ErrNotFound = New(ErrorCodeNotFound, "not found")

// Error is the structured error type with wrapping and metadata
// msg is human/developer facing; code is machine facing
// field is optional (flag or table line); op is optional operation tag
// orig is the wrapped cause
type Error struct {
	orig  error
	msg   string
	code  ErrorCode
	field string
	op    string
}

// Wire is the JSON-serializable form returned by the API
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

// Unwrap returns the wrapped error, if any
func (e *Error) Unwrap() error { return e.orig }

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// Field returns the offending field, if any
func (e *Error) Field() string { return e.field }

// Op returns the operation label, if set
func (e *Error) Op() string { return e.op }

// ToWire converts an *Error to a Wire payload
func (e *Error) ToWire() Wire { return Wire{Code: e.code, Message: e.msg, Field: e.field} }

// WireFrom converts any error into a Wire payload with best-effort mapping
// If err is nil, returns the zero-value Wire (no error)
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return e.ToWire()
	}
	return Wire{Code: ErrorCodeUnknown, Message: err.Error()}
}

// Root returns the deepest wrapped cause
func Root(err error) error {
	for err != nil {
		u := stderrs.Unwrap(err)
		if u == nil {
			return err
		}
		err = u
	}
	return nil
}

// CodeOf extracts an ErrorCode from any error, defaulting to Unknown
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err has the given code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// HTTPStatus returns the mapped HTTP status for any error
func HTTPStatus(err error) int { return HTTPStatusCode(CodeOf(err)) }

// Exit returns the mapped process exit status for any error, 0 for nil
func Exit(err error) int {
	if err == nil {
		return 0
	}
	return ExitCode(CodeOf(err))
}

// As unwraps and returns (*Error, true) if err is one of ours
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Mutators (copy-on-write)

// WithField attaches a field to an *Error (copy-on-write). If err isn't *Error, returns err unchanged
func WithField(err error, field string) error {
	if e, ok := As(err); ok {
		c := *e
		c.field = field
		return &c
	}
	return err
}

// WithOp attaches an operation label to an *Error (copy-on-write). If err isn't *Error, returns err unchanged
func WithOp(err error, op string) error {
	if e, ok := As(err); ok {
		c := *e
		c.op = op
		return &c
	}
	return err
}

// WithFieldChain sets field on *Error or wraps a foreign error into an *Error with Unknown code (copy-on-write)
func WithFieldChain(err error, field string) error {
	if e, ok := As(err); ok {
		c := *e
		c.field = field
		return &c
	}
	return &Error{code: ErrorCodeUnknown, msg: err.Error(), field: field, orig: err}
}

// Constructors

// New returns a new *Error with the given code and message
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf returns a new *Error with code and formatted message
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap returns a new *Error that wraps orig with code and message
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

// Wrapf returns a new *Error that wraps orig with code and formatted message
func Wrapf(orig error, code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), orig: orig}
}

// WrapIf wraps only when err != nil (helper for 1-liners)
func WrapIf(err error, code ErrorCode, msg string) error {
	if err == nil {
		return nil
	}
	return Wrap(err, code, msg)
}

// Sugar

// NotFoundf returns a not found error
func NotFoundf(format string, a ...any) error { return Newf(ErrorCodeNotFound, format, a...) }

// Usagef returns a command line usage error
func Usagef(format string, a ...any) error { return Newf(ErrorCodeUsage, format, a...) }

// InvalidConfigf returns an invalid configuration error
func InvalidConfigf(format string, a ...any) error {
	return Newf(ErrorCodeInvalidConfiguration, format, a...)
}

// TableSyntaxf returns a table syntax error
func TableSyntaxf(format string, a ...any) error { return Newf(ErrorCodeTableSyntax, format, a...) }

// ReadFailure wraps an I/O error raised while paging input
func ReadFailure(orig error, format string, a ...any) error {
	return Wrapf(orig, ErrorCodeReadFailure, format, a...)
}

// PanicErrf returns a panic error
func PanicErrf(format string, a ...any) error { return Newf(ErrorCodePanic, format, a...) }

// Internalf returns a generic internal error
func Internalf(format string, a ...any) error { return Newf(ErrorCodeUnknown, format, a...) }

// HTTP bundles status + wire in one shot (nice for handlers)
func HTTP(err error) (int, Wire) {
	if err == nil {
		return http.StatusOK, Wire{}
	}
	return HTTPStatus(err), WireFrom(err)
}

// Retry semantics

// Retryable reports whether the error is retryable. Nothing in a scan is:
// a read failure aborts the pass and configuration errors need a new invocation
func Retryable(error) bool { return false }
