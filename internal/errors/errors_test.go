package errors

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
)

// TestErrorCode tests error code constants
func TestErrorCode(t *testing.T) {
	codes := []ErrorCode{
		ErrCodeUnknown,
		ErrCodeConfigParse,
		ErrCodeConfigWrite,
		ErrCodeHostLookup,
		ErrCodeDuplicateHost,
		ErrCodeUserInput,
		ErrCodeValidation,
		ErrCodeSSHExec,
		ErrCodeFileOperation,
	}

	// Verify all codes are unique
	seen := make(map[ErrorCode]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %d", code)
		}
		seen[code] = true
	}

	// Verify starting from 0
	if ErrCodeUnknown != 0 {
		t.Errorf("ErrCodeUnknown should be 0, got %d", ErrCodeUnknown)
	}
}

// TestAppError tests AppError structure and methods
func TestAppError(t *testing.T) {
	tests := []struct {
		name      string
		appErr    *AppError
		wantErr   string
		wantCode  ErrorCode
		wantFatal bool
	}{
		{
			name: "basic error",
			appErr: &AppError{
				Op:   "test_op",
				Code: ErrCodeUnknown,
				Err:  errors.New("test error"),
			},
			wantErr:   "test_op: test error",
			wantCode:  ErrCodeUnknown,
			wantFatal: false,
		},
		{
			name: "error with context",
			appErr: &AppError{
				Op:      "lookup_host",
				Code:    ErrCodeHostLookup,
				Err:     errors.New("not found"),
				Context: "alias: web",
			},
			wantErr:   "lookup_host: alias: web: not found",
			wantCode:  ErrCodeHostLookup,
			wantFatal: false,
		},
		{
			name: "fatal error",
			appErr: &AppError{
				Op:    "load_config",
				Code:  ErrCodeConfigParse,
				Err:   errors.New("malformed block"),
				Fatal: true,
			},
			wantErr:   "load_config: malformed block",
			wantCode:  ErrCodeConfigParse,
			wantFatal: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.appErr.Error(); got != tt.wantErr {
				t.Errorf("Error() = %v, want %v", got, tt.wantErr)
			}
			if got := tt.appErr.GetCode(); got != tt.wantCode {
				t.Errorf("GetCode() = %v, want %v", got, tt.wantCode)
			}
			if got := tt.appErr.IsFatal(); got != tt.wantFatal {
				t.Errorf("IsFatal() = %v, want %v", got, tt.wantFatal)
			}
		})
	}
}

// TestAppErrorUnwrap tests error unwrapping
func TestAppErrorUnwrap(t *testing.T) {
	originalErr := errors.New("original error")
	appErr := &AppError{
		Op:  "test_op",
		Err: originalErr,
	}

	if unwrapped := appErr.Unwrap(); unwrapped != originalErr {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, originalErr)
	}
	if !errors.Is(appErr, originalErr) {
		t.Error("errors.Is should match the wrapped error")
	}
}

// TestErrorHandler tests non-fatal error handling output
func TestErrorHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	eh := NewErrorHandler(logger, false)
	eh.Handle(NewHostLookupError("web", errors.New("not found")))

	if !strings.Contains(buf.String(), "alias: web") {
		t.Errorf("Handle() output missing context: %q", buf.String())
	}

	buf.Reset()
	debugEH := NewErrorHandler(logger, true)
	debugEH.Handle(NewSSHExecError("web", errors.New("exit status 255")))

	if !strings.Contains(buf.String(), "[SSH_EXEC]") {
		t.Errorf("debug Handle() output missing code tag: %q", buf.String())
	}
}

// TestHelperConstructors verifies code classification of the helpers
func TestHelperConstructors(t *testing.T) {
	underlying := errors.New("boom")
	tests := []struct {
		name string
		err  *AppError
		code ErrorCode
	}{
		{"config parse", NewConfigParseError("/tmp/config", underlying), ErrCodeConfigParse},
		{"config write", NewConfigWriteError("/tmp/config", underlying), ErrCodeConfigWrite},
		{"host lookup", NewHostLookupError("web", underlying), ErrCodeHostLookup},
		{"duplicate host", NewDuplicateHostError("web", underlying), ErrCodeDuplicateHost},
		{"user input", NewUserInputError("alias", underlying), ErrCodeUserInput},
		{"validation", NewValidationError("port", underlying), ErrCodeValidation},
		{"ssh exec", NewSSHExecError("web", underlying), ErrCodeSSHExec},
		{"file operation", NewFileOperationError("rename", "/tmp/config", underlying), ErrCodeFileOperation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.GetCode() != tt.code {
				t.Errorf("GetCode() = %v, want %v", tt.err.GetCode(), tt.code)
			}
			if !errors.Is(tt.err, underlying) {
				t.Error("helper did not wrap the underlying error")
			}
		})
	}
}
