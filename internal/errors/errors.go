package errors

import (
	"fmt"
	"log"
	"os"
)

// ErrorCode represents different types of errors in ossh
type ErrorCode int

const (
	// Application errors
	ErrCodeUnknown ErrorCode = iota
	ErrCodeConfigParse
	ErrCodeConfigWrite
	ErrCodeHostLookup
	ErrCodeDuplicateHost
	ErrCodeUserInput
	ErrCodeValidation
	ErrCodeSSHExec
	ErrCodeFileOperation
)

// AppError represents a structured error with operation context and error code
type AppError struct {
	Op      string    // Operation that failed (e.g., "load_config", "connect")
	Code    ErrorCode // Error classification
	Err     error     // Underlying error
	Context string    // Additional context (optional)
	Fatal   bool      // Whether this error should cause program exit
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Context, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error wrapping support
func (e *AppError) Unwrap() error {
	return e.Err
}

// IsFatal returns whether this error should cause program termination
func (e *AppError) IsFatal() bool {
	return e.Fatal
}

// GetCode returns the error classification code
func (e *AppError) GetCode() ErrorCode {
	return e.Code
}

// ErrorHandler provides standardized error handling across the application
type ErrorHandler struct {
	logger *log.Logger
	debug  bool
}

// NewErrorHandler creates a new error handler with the given logger
func NewErrorHandler(logger *log.Logger, debug bool) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
		debug:  debug,
	}
}

// Handle processes an error according to its type and severity
func (eh *ErrorHandler) Handle(err error) {
	if err == nil {
		return
	}

	var appErr *AppError
	if e, ok := err.(*AppError); ok {
		appErr = e
	} else {
		// Wrap unknown errors
		appErr = &AppError{
			Op:   "unknown_operation",
			Code: ErrCodeUnknown,
			Err:  err,
		}
	}

	if eh.debug {
		eh.logger.Printf("[%s] %s", eh.codeToString(appErr.Code), appErr.Error())
	} else {
		eh.logger.Printf("Error: %s", appErr.Error())
	}

	if appErr.IsFatal() {
		eh.logger.Printf("Fatal error encountered, exiting...")
		os.Exit(1)
	}
}

// codeToString converts error codes to readable strings
func (eh *ErrorHandler) codeToString(code ErrorCode) string {
	switch code {
	case ErrCodeConfigParse:
		return "CONFIG_PARSE"
	case ErrCodeConfigWrite:
		return "CONFIG_WRITE"
	case ErrCodeHostLookup:
		return "HOST_LOOKUP"
	case ErrCodeDuplicateHost:
		return "DUPLICATE_HOST"
	case ErrCodeUserInput:
		return "USER_INPUT"
	case ErrCodeValidation:
		return "VALIDATION"
	case ErrCodeSSHExec:
		return "SSH_EXEC"
	case ErrCodeFileOperation:
		return "FILE_OPERATION"
	default:
		return "UNKNOWN"
	}
}

// Helper functions for creating common error types

// NewConfigParseError creates a config parsing error
func NewConfigParseError(path string, err error) *AppError {
	return &AppError{
		Op:      "load_config",
		Code:    ErrCodeConfigParse,
		Err:     err,
		Context: fmt.Sprintf("path: %s", path),
		Fatal:   true,
	}
}

// NewConfigWriteError creates a config write error
func NewConfigWriteError(path string, err error) *AppError {
	return &AppError{
		Op:      "save_config",
		Code:    ErrCodeConfigWrite,
		Err:     err,
		Context: fmt.Sprintf("path: %s", path),
	}
}

// NewHostLookupError creates a host lookup error
func NewHostLookupError(alias string, err error) *AppError {
	return &AppError{
		Op:      "lookup_host",
		Code:    ErrCodeHostLookup,
		Err:     err,
		Context: fmt.Sprintf("alias: %s", alias),
	}
}

// NewDuplicateHostError creates a duplicate alias error
func NewDuplicateHostError(alias string, err error) *AppError {
	return &AppError{
		Op:      "add_host",
		Code:    ErrCodeDuplicateHost,
		Err:     err,
		Context: fmt.Sprintf("alias: %s", alias),
	}
}

// NewUserInputError creates a user input error
func NewUserInputError(prompt string, err error) *AppError {
	return &AppError{
		Op:      "user_input",
		Code:    ErrCodeUserInput,
		Err:     err,
		Context: fmt.Sprintf("prompt: %s", prompt),
	}
}

// NewValidationError creates an input validation error
func NewValidationError(field string, err error) *AppError {
	return &AppError{
		Op:      "validate_input",
		Code:    ErrCodeValidation,
		Err:     err,
		Context: fmt.Sprintf("field: %s", field),
	}
}

// NewSSHExecError creates an ssh subprocess error
func NewSSHExecError(alias string, err error) *AppError {
	return &AppError{
		Op:      "ssh_exec",
		Code:    ErrCodeSSHExec,
		Err:     err,
		Context: fmt.Sprintf("alias: %s", alias),
	}
}

// NewFileOperationError creates a file operation error
func NewFileOperationError(operation, path string, err error) *AppError {
	return &AppError{
		Op:      "file_operation",
		Code:    ErrCodeFileOperation,
		Err:     err,
		Context: fmt.Sprintf("operation: %s, path: %s", operation, path),
	}
}
