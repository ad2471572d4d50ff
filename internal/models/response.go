package models

import "fmt"

// ErrorResponse is the body of every error reply: { "message": "..." }.
type ErrorResponse struct {
	Message string `json:"message"`
}

// APIError carries an HTTP status alongside a client-safe message. Handlers
// throw these; the terminal responder turns them into ErrorResponse bodies.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

func NewAPIError(status int, message string) *APIError {
	return &APIError{Status: status, Message: message}
}
