package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidCredentials indicates a secret that does not match the stored hash.
var ErrInvalidCredentials = errors.New("invalid user credentials")

// ErrInvalidToken indicates a refresh token that is malformed, expired, unknown or rotated out.
var ErrInvalidToken = errors.New("invalid refresh token")

// ErrUnauthorized indicates a request without valid authentication.
var ErrUnauthorized = errors.New("unauthorized request")

// ErrForbidden indicates an authenticated caller acting on a resource it does not own.
var ErrForbidden = errors.New("forbidden")

// ErrTokenExpired is returned by token verification when the embedded expiry has passed.
var ErrTokenExpired = errors.New("token has expired")

// ErrInvalidSignature is returned by token verification for any other parse or signature failure.
var ErrInvalidSignature = errors.New("token signature is invalid")

// ErrMediaUpload indicates the media host rejected or failed an upload.
var ErrMediaUpload = errors.New("media upload failed")

// AppError carries an HTTP status code and a client-safe message alongside the underlying error.
type AppError struct {
	Code    int    `json:"status"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError creates a 400 error wrapping ErrValidation.
func NewValidationError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrValidation)
}

// NewNotFoundError creates a 404 error wrapping ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

// NewConflictError creates a 409 error wrapping ErrDuplicate.
func NewConflictError(message string) *AppError {
	return NewAppError(http.StatusConflict, message, ErrDuplicate)
}

// NewUnauthorizedError creates a 401 error wrapping ErrUnauthorized.
func NewUnauthorizedError(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

// NewForbiddenError creates a 403 error wrapping ErrForbidden.
func NewForbiddenError(message string) *AppError {
	return NewAppError(http.StatusForbidden, message, ErrForbidden)
}

// NewInternalServerError creates a 500 error.
func NewInternalServerError(message string) *AppError {
	return NewAppError(http.StatusInternalServerError, message, nil)
}

// StatusFor maps an error to its HTTP status and a default client message.
// AppError values win over sentinels found further down the chain.
func StatusFor(err error) (int, string) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, appErr.Message
	}
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest, "Invalid request"
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, "Resource not found"
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict, "Resource already exists"
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid user credentials"
	case errors.Is(err, ErrInvalidToken):
		return http.StatusUnauthorized, "Invalid refresh token"
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrTokenExpired), errors.Is(err, ErrInvalidSignature):
		return http.StatusUnauthorized, "Unauthorized request"
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden, "You are not allowed to modify this resource"
	case errors.Is(err, ErrMediaUpload):
		return http.StatusBadGateway, "Error uploading media"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
