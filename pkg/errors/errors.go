package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// tokens and session
	ErrInvalidSigningMethod = errors.New("invalid token signing method")
	ErrInvalidToken         = errors.New("invalid token")
	ErrTokenExpired         = errors.New("token has expired")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidCredentials   = errors.New("invalid credentials")

	// context
	ErrUserIDNotFoundInContext = errors.New("user id not found in request context")

	// domain
	ErrNotFound           = errors.New("record not found")
	ErrBadRequest         = errors.New("bad request")
	ErrEquipmentFinalized = errors.New("equipment is already assembled and can no longer be edited")
	ErrComponentsRequired = errors.New("an assembled equipment needs at least one RAM module and one storage device")
	ErrInsufficientStock  = errors.New("insufficient stock")
)

// HttpError carries an HTTP status alongside the wrapped cause so controllers
// can answer without re-deriving the status from the error chain.
type HttpError struct {
	Code    int
	Message string
	Err     error
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err}
}

func NewBadRequestError(message string) *HttpError {
	return NewHttpError(http.StatusBadRequest, message, ErrBadRequest)
}

func NewNotFoundError(message string) *HttpError {
	return NewHttpError(http.StatusNotFound, message, ErrNotFound)
}

func NewConflictError(message string, err error) *HttpError {
	return NewHttpError(http.StatusConflict, message, err)
}

// StatusFor maps an error chain to an HTTP status. Unknown errors fall
// through to 500.
func StatusFor(err error) int {
	var httpErr *HttpError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, ErrComponentsRequired),
		errors.Is(err, ErrInsufficientStock):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrTokenExpired),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrUserIDNotFoundInContext):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrEquipmentFinalized):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
