package apperrors

import (
	"errors"
	"fmt"
)

// Code tags an Error with its place in the error taxonomy.
type Code int

const (
	CodeUnknown Code = iota
	CodeValidation
	CodeNotFound
	CodeForbidden
	CodeUnauthenticated
	CodeConflict
)

// Error is the tagged error passed from the service layer to the resource
// layer. Field is set only for validation errors.
type Error struct {
	Code    Code
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// Validation reports a bad field value.
func Validation(field, reason string) *Error {
	return &Error{Code: CodeValidation, Field: field, Message: reason}
}

// NotFound reports that a referenced entity id does not exist.
func NotFound(resource string) *Error {
	return &Error{Code: CodeNotFound, Message: resource + " not found"}
}

// Forbidden reports an authenticated but unauthorized action.
func Forbidden(message string) *Error {
	return &Error{Code: CodeForbidden, Message: message}
}

// Unauthenticated reports a missing or invalid identity.
func Unauthenticated(message string) *Error {
	return &Error{Code: CodeUnauthenticated, Message: message}
}

// Conflict reports a uniqueness or business-rule collision.
func Conflict(message string) *Error {
	return &Error{Code: CodeConflict, Message: message}
}

// CodeOf extracts the taxonomy code from err, or CodeUnknown.
func CodeOf(err error) Code {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeUnknown
}

// FieldOf extracts the offending field from a validation error, or "".
func FieldOf(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Field
	}
	return ""
}
