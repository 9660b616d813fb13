package apperrors

import (
	"net/http"
)

// Factories for the errors the domain layers raise.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound and friends)
// into a 404 AppError.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrInvalidOperation reports a request that is well-formed but not allowed.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrFileTooLarge: upload exceeds the configured payload cap.
var ErrFileTooLarge = New(
	CodeFileTooLarge,
	"upload",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

// ErrInvalidMediaType: file extension outside the allowed image set.
var ErrInvalidMediaType = New(
	CodeInvalidMediaType,
	"upload",
	"Invalid file type. Allowed types: jpg, jpeg, png, gif",
	http.StatusBadRequest,
)
