package internal

import "errors"

var (
	// ErrInvalidState is returned when a timer operation is not valid for
	// the current state, e.g. starting while a session is active or
	// stopping with no session.
	ErrInvalidState = errors.New("invalid timer state")

	// ErrInvalidFormat is returned when a backup document cannot be parsed.
	ErrInvalidFormat = errors.New("invalid backup file format")
)

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, msg string) *AppError {
	return &AppError{Code: code, Message: msg}
}
