package errors

import "net/http"

// Machine-readable codes carried in the error envelope. Clients match on
// these, never on Message.
const (
	CodeInternal            = "internal_error"
	CodeUnauthorized        = "unauthorized"
	CodeInvalidJSON         = "invalid_json"
	CodeInvalidCredentials  = "invalid_credentials"
	CodeUsernameExists      = "username_exists"
	CodeInvalidDescription  = "invalid_description"
	CodeInvalidFilter       = "invalid_filter"
	CodeTimerNotFound       = "timer_not_found"
	CodeTimerAlreadyStopped = "timer_already_stopped"
)

// APIError is the failure a service hands back to its handler. Status picks
// the HTTP response code; Code and Message form the envelope body.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Code + ": " + e.Message
}

func New(status int, code, message string) *APIError {
	return &APIError{Status: status, Code: code, Message: message}
}

func Internal(message string) *APIError {
	if message == "" {
		message = "internal server error"
	}
	return New(http.StatusInternalServerError, CodeInternal, message)
}

func BadRequest(code, message string) *APIError {
	return New(http.StatusBadRequest, code, message)
}

// Unauthorized defaults both code and message to "unauthorized".
func Unauthorized(code, message string) *APIError {
	if code == "" {
		code = CodeUnauthorized
	}
	if message == "" {
		message = "unauthorized"
	}
	return New(http.StatusUnauthorized, code, message)
}

func NotFound(code, message string) *APIError {
	return New(http.StatusNotFound, code, message)
}

func Conflict(code, message string) *APIError {
	return New(http.StatusConflict, code, message)
}
