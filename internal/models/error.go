package models

import (
	"fmt"
	"strings"
)

// ValidationErrorPrefix is prepended to every message of a validation failure response
const ValidationErrorPrefix = "Validation error: "

// ErrorResponse is the body returned for not found and internal errors
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse is the body returned when a request breaks a domain rule
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// NotFoundError is returned when a referenced record does not exist
type NotFoundError struct {
	Entity  string
	ID      uint
	message string
}

func (e *NotFoundError) Error() string {
	return e.message
}

// NewRestaurantNotFound reports a missing restaurant
func NewRestaurantNotFound(id uint) *NotFoundError {
	return &NotFoundError{Entity: "restaurant", ID: id, message: "Restaurant not found"}
}

// NewPizzaNotFound reports a missing pizza, naming its id
func NewPizzaNotFound(id uint) *NotFoundError {
	return &NotFoundError{Entity: "pizza", ID: id, message: fmt.Sprintf("Pizza %d not found", id)}
}

// ValidationError is returned when a write would break a domain constraint
type ValidationError struct {
	Problems []string
}

// NewValidationError creates a validation error with one or more problems
func NewValidationError(problems ...string) *ValidationError {
	return &ValidationError{Problems: problems}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "; ")
}

// Messages returns the problems in the form sent to clients
func (e *ValidationError) Messages() []string {
	messages := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		messages = append(messages, ValidationErrorPrefix+p)
	}
	return messages
}
