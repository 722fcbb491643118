package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError carries a user-facing message together with the HTTP status
// the handler should respond with.
type AppError struct {
	Message string
	Status  int
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func New(message string, status int) *AppError {
	return &AppError{Message: message, Status: status}
}

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = New("entity not found", http.StatusNotFound)
	// ErrStorage wraps persistence failures surfaced by the repositories.
	ErrStorage = New("storage failure", http.StatusInternalServerError)
	// InActiveUserError is returned when a deactivated user tries to authenticate.
	InActiveUserError = errors.New("user is inactive")
)
