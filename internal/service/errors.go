package service

import (
	"errors"

	"github.com/snnyvrz/shelfshare-catalog/internal/validation"
)

var (
	ErrBookNotFound  = errors.New("book not found")
	ErrMissingParams = errors.New("author and update_data are required")
	ErrNoValidFields = errors.New("no valid fields to update")
	ErrNoBooksFound  = errors.New("no books found for author")
)

const isbnTakenMessage = "This ISBN already exists."

// ValidationError is a field-scoped rejection raised before any write.
type ValidationError struct {
	Field   string
	Rule    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *ValidationError) FieldError() validation.FieldError {
	return validation.FieldError{
		Field:   e.Field,
		Rule:    e.Rule,
		Message: e.Message,
	}
}

func fieldError(field, rule, message string) *ValidationError {
	return &ValidationError{Field: field, Rule: rule, Message: message}
}

func isbnTaken() *ValidationError {
	return fieldError("isbn", "isbn_unique", isbnTakenMessage)
}
