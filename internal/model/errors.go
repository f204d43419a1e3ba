package model

import (
	"errors"
	"fmt"
)

var (
	ErrValidation    = errors.New("validation error")
	ErrDuplicateTask = errors.New("This task already exists in the task list")
	ErrTaskNotFound  = errors.New("task not found")
)

// ValidationError сообщает, какое ограничение поля нарушено
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func newValidationError(field, value, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Detail includes the rejected value; useful for logs, not for users.
func (e *ValidationError) Detail() string {
	return fmt.Sprintf("%s %q: %s", e.Field, e.Value, e.Message)
}
