// Package apperr defines the error taxonomy returned by the API. Every
// user-visible failure carries a stable machine-readable code plus a
// human-readable message; anything that is not an *Error is reported to
// the client as INTERNAL_ERROR without leaking internals.
package apperr

import "net/http"

const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeEmailExists        = "EMAIL_EXISTS"
	CodeDuplicateEntry     = "DUPLICATE_ENTRY"
	CodeDuplicateReview    = "DUPLICATE_REVIEW"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeExpiredToken       = "EXPIRED_TOKEN"
	CodeNotFound           = "NOT_FOUND"
	CodeForbidden          = "FORBIDDEN"
	CodeRateLimited        = "RATE_LIMITED"
	CodeInternal           = "INTERNAL_ERROR"
)

type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (e *Error) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

// Validation reports the first violated constraint in details.
func Validation(details string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: CodeValidation, Message: "Invalid input data.", Details: details}
}

func Duplicate(code, message string) *Error {
	return &Error{Status: http.StatusConflict, Code: code, Message: message}
}

func InvalidCredentials(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Code: CodeInvalidCredentials, Message: message}
}

func InvalidToken(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: CodeInvalidToken, Message: message}
}

func ExpiredToken(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: CodeExpiredToken, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Code: CodeNotFound, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Status: http.StatusForbidden, Code: CodeForbidden, Message: message}
}

func Internal() *Error {
	return &Error{Status: http.StatusInternalServerError, Code: CodeInternal, Message: "Internal server error"}
}
