package errors

import (
	"encoding/json"
	"fmt"
	"io"
)

// ErrorCategory represents the category of an error
type ErrorCategory string

const (
	CategoryClient ErrorCategory = "client"
	CategoryServer ErrorCategory = "server"
)

// Common error codes
const (
	// Client errors: bad user input
	CodeValidationError  = "VALIDATION_ERROR"
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeInvalidVideoKind = "INVALID_VIDEO_KIND"

	// Programming errors
	CodeInvalidSearchMode = "INVALID_SEARCH_MODE"
	CodeInternalError     = "INTERNAL_ERROR"
)

// Process exit codes
const (
	ExitOK         = 0
	ExitInternal   = 1
	ExitInvalid    = 2
	ExitBadRequest = 64
)

// AppError represents a structured application error
type AppError struct {
	Code     string         `json:"code"`
	Message  string         `json:"message"`
	Category ErrorCategory  `json:"-"`
	ExitCode int            `json:"-"`
	Details  map[string]any `json:"details,omitempty"`
	Cause    error          `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetails adds details to the error
func (e *AppError) WithDetails(details map[string]any) *AppError {
	e.Details = details
	return e
}

// WithCause sets the underlying cause of the error
func (e *AppError) WithCause(err error) *AppError {
	e.Cause = err
	return e
}

// ErrorResponse is the JSON structure written for failed commands
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody contains the error details
type ErrorBody struct {
	Code        string         `json:"code"`
	Message     string         `json:"message"`
	OperationID string         `json:"operation_id,omitempty"`
	Details     map[string]any `json:"details,omitempty"`
}

// New creates a new AppError
func New(code string, message string, category ErrorCategory, exitCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Category: category,
		ExitCode: exitCode,
	}
}

// Client error constructors

func BadRequest(message string) *AppError {
	return New(CodeInvalidRequest, message, CategoryClient, ExitBadRequest)
}

func ValidationError(message string) *AppError {
	return New(CodeValidationError, message, CategoryClient, ExitInvalid)
}

func InvalidVideoKind(kind string) *AppError {
	return New(CodeInvalidVideoKind, fmt.Sprintf("unknown video kind: %q", kind), CategoryClient, ExitBadRequest)
}

// Server error constructors

// InvalidSearchMode reports a search mode value outside the known set.
// User input never produces one; parsing rejects unknown names with BadRequest.
func InvalidSearchMode(mode any) *AppError {
	return New(CodeInvalidSearchMode, fmt.Sprintf("invalid search mode: %v", mode), CategoryServer, ExitInternal)
}

func InternalError(message string) *AppError {
	return New(CodeInternalError, message, CategoryServer, ExitInternal)
}

// Write writes an error response as a single JSON document
func Write(w io.Writer, operationID string, err error) {
	appErr := As(err)

	resp := ErrorResponse{
		Error: ErrorBody{
			Code:        appErr.Code,
			Message:     appErr.Message,
			OperationID: operationID,
			Details:     appErr.Details,
		},
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(resp)
}

// As returns err as an *AppError, wrapping unknown errors as internal errors
func As(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return InternalError("an unexpected error occurred").WithCause(err)
}

// ExitCode returns the process exit code for err
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	return As(err).ExitCode
}

// IsClientError returns true if the error is a client error
func IsClientError(err error) bool {
	appErr, ok := err.(*AppError)
	if !ok {
		return false
	}
	return appErr.Category == CategoryClient
}

// IsServerError returns true if the error is a server error
func IsServerError(err error) bool {
	appErr, ok := err.(*AppError)
	if !ok {
		return false
	}
	return appErr.Category == CategoryServer
}
