// Package apierror defines errors that are safe to show to API callers.
package apierror

import (
	"fmt"
	"net/http"
)

// Kind is the coarse failure class of an API error.
type Kind string

const (
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindValidation   Kind = "validation"
	KindInternal     Kind = "internal"
)

// APIError is an error with a public message and HTTP status.
type APIError struct {
	Kind       Kind
	Code       string
	HTTPStatus int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches API errors by code, so constructors can be used as errors.Is targets.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	return ok && t.Code == e.Code
}

func newErr(kind Kind, code string, status int, msg string) *APIError {
	return &APIError{Kind: kind, Code: code, HTTPStatus: status, Message: msg}
}

func NewErrMissingAuthorizationToken() *APIError {
	return newErr(KindUnauthorized, "missing_token", http.StatusUnauthorized, "unauthorized: no token provided")
}

func NewErrInvalidAuthorizationToken() *APIError {
	return newErr(KindUnauthorized, "invalid_token", http.StatusUnauthorized, "invalid token")
}

func NewErrInvalidLogin() *APIError {
	return newErr(KindUnauthorized, "invalid_login", http.StatusUnauthorized, "invalid email or password")
}

func NewErrForbidden(msg string) *APIError {
	if msg == "" {
		msg = "access denied"
	}
	return newErr(KindForbidden, "forbidden", http.StatusForbidden, msg)
}

func NewErrUserNotFound() *APIError {
	return newErr(KindNotFound, "user_not_found", http.StatusNotFound, "user not found")
}

func NewErrInvalidUserID() *APIError {
	return newErr(KindValidation, "invalid_user_id", http.StatusBadRequest, "user id is not valid")
}

func NewErrEmailIsTaken(email string) *APIError {
	return newErr(KindValidation, "email_taken", http.StatusConflict, fmt.Sprintf("email %s is already registered", email))
}

func NewErrWeakPassword(reason string) *APIError {
	return newErr(KindValidation, "weak_password", http.StatusBadRequest, reason)
}

func NewErrInvalidCurrentPassword() *APIError {
	return newErr(KindValidation, "invalid_current_password", http.StatusBadRequest, "current password is incorrect")
}

func NewErrPasswordReuse() *APIError {
	return newErr(KindValidation, "password_reuse", http.StatusBadRequest, "new password must differ from the current password")
}

func NewErrValidation(msg string) *APIError {
	return newErr(KindValidation, "validation_failed", http.StatusBadRequest, msg)
}

func NewErrInternal() *APIError {
	return newErr(KindInternal, "internal", http.StatusInternalServerError, "internal server error")
}

func NewErrPayloadTooLarge(limit int64) *APIError {
	return newErr(KindValidation, "payload_too_large", http.StatusRequestEntityTooLarge, fmt.Sprintf("request body exceeds %d bytes", limit))
}
