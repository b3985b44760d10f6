package internal

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ErrorTypeValidation     ErrorType = "VALIDATION_ERROR"
	ErrorTypeAuthentication ErrorType = "AUTHENTICATION_ERROR"
	ErrorTypeNotFound       ErrorType = "NOT_FOUND"
	ErrorTypeConflict       ErrorType = "CONFLICT"
	ErrorTypeStorage        ErrorType = "STORAGE_ERROR"
	ErrorTypeInternal       ErrorType = "INTERNAL_ERROR"
)

type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeRoleRequired     ErrorCode = "ROLE_REQUIRED"
	ErrCodeInvalidRole      ErrorCode = "INVALID_ROLE"
	ErrCodeEmptyReply       ErrorCode = "EMPTY_REPLY"
	ErrCodeInvalidStatus    ErrorCode = "INVALID_STATUS"

	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	ErrCodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"
	ErrCodeSessionMissing     ErrorCode = "SESSION_MISSING"

	ErrCodeUserNotFound     ErrorCode = "USER_NOT_FOUND"
	ErrCodePatientNotFound  ErrorCode = "PATIENT_NOT_FOUND"
	ErrCodeIssueNotFound    ErrorCode = "ISSUE_NOT_FOUND"
	ErrCodeDocumentNotFound ErrorCode = "DOCUMENT_NOT_FOUND"

	ErrCodeInvalidUserStatus ErrorCode = "INVALID_USER_STATUS"
	ErrCodeIssueResolved     ErrorCode = "ISSUE_RESOLVED"
	ErrCodeDuplicateID       ErrorCode = "DUPLICATE_ID"

	ErrCodeSessionStorage ErrorCode = "SESSION_STORAGE_FAILED"
)

type AppError struct {
	Type       ErrorType `json:"type"`
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func NewValidationError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NewAuthenticationError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeAuthentication,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

func NewNotFoundError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

func NewConflictError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeConflict,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusConflict,
	}
}

// NewStorageError marks a durable-storage failure. These are recovered
// locally (the corrupt record is discarded) and never surfaced to callers.
func NewStorageError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeStorage,
		Code:       ErrCodeSessionStorage,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Code:       "INTERNAL_ERROR",
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

var (
	ErrRoleRequired  = NewValidationError("a role must be assigned before approval", ErrCodeRoleRequired)
	ErrInvalidRole   = NewValidationError("unknown staffing role", ErrCodeInvalidRole)
	ErrEmptyReply    = NewValidationError("reply text must not be empty", ErrCodeEmptyReply)
	ErrInvalidStatus = NewValidationError("unknown status value", ErrCodeInvalidStatus)

	ErrInvalidCredentials = NewAuthenticationError("invalid email or password", ErrCodeInvalidCredentials)
	ErrInvalidToken       = NewAuthenticationError("invalid token", ErrCodeInvalidToken)
	ErrTokenExpired       = NewAuthenticationError("token has expired", ErrCodeTokenExpired)
	ErrSessionMissing     = NewAuthenticationError("no active admin session", ErrCodeSessionMissing)

	ErrUserNotFound     = NewNotFoundError("user not found", ErrCodeUserNotFound)
	ErrPatientNotFound  = NewNotFoundError("patient not found", ErrCodePatientNotFound)
	ErrIssueNotFound    = NewNotFoundError("issue not found", ErrCodeIssueNotFound)
	ErrDocumentNotFound = NewNotFoundError("document not found", ErrCodeDocumentNotFound)

	ErrInvalidUserStatus = NewConflictError("transition not allowed from current user status", ErrCodeInvalidUserStatus)
	ErrIssueResolved     = NewConflictError("issue is resolved; responses are locked", ErrCodeIssueResolved)
	ErrDuplicateID       = NewConflictError("an entity with this id already exists", ErrCodeDuplicateID)
)

func IsAppError(err error) (*AppError, bool) {
	if appErr, ok := err.(*AppError); ok {
		return appErr, true
	}
	return nil, false
}

type Response struct {
	Error *AppError `json:"error"`
}

func (e *AppError) ToHTTPResponse() (int, interface{}) {
	return e.StatusCode, Response{Error: e}
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    ErrorType `json:"type"`
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	}{
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
	})
}
