// Package response defines consistent HTTP response structures.
// Error bodies are flat: the human-readable message sits under "error" so
// the page script can show it directly.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"textconv/src/core/domain"
)

// Error represents an error response.
type Error struct {
	// Error is a human-readable error description
	Error string `json:"error"`

	// Code is a machine-readable error code (e.g., "EMPTY_INPUT", "NOT_FOUND")
	Code string `json:"code"`

	// Field is the field that caused the error (for validation errors)
	Field string `json:"field,omitempty"`

	// RequestID is the request ID for debugging
	RequestID string `json:"request_id,omitempty"`
}

// Error codes.
const (
	CodeBadRequest = "BAD_REQUEST"
	CodeEmptyInput = "EMPTY_INPUT"
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeInternal   = "INTERNAL_ERROR"
)

// OK sends a 200 response with data as the whole body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// BadRequest sends a 400 response.
func BadRequest(c *gin.Context, message, requestID string) {
	c.JSON(http.StatusBadRequest, Error{
		Error:     message,
		Code:      CodeBadRequest,
		RequestID: requestID,
	})
}

// EmptyInput sends the 400 response for blank text.
func EmptyInput(c *gin.Context, field, requestID string) {
	c.JSON(http.StatusBadRequest, Error{
		Error:     domain.EmptyInputMessage,
		Code:      CodeEmptyInput,
		Field:     field,
		RequestID: requestID,
	})
}

// ValidationError sends a 400 response for validation failures.
func ValidationError(c *gin.Context, field, message, requestID string) {
	c.JSON(http.StatusBadRequest, Error{
		Error:     message,
		Code:      CodeValidation,
		Field:     field,
		RequestID: requestID,
	})
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, message, requestID string) {
	c.JSON(http.StatusNotFound, Error{
		Error:     message,
		Code:      CodeNotFound,
		RequestID: requestID,
	})
}

// Internal builds the body of a 500 response.
func Internal(requestID string) Error {
	return Error{
		Error:     "An unexpected error occurred",
		Code:      CodeInternal,
		RequestID: requestID,
	}
}

// InternalError sends a 500 response.
func InternalError(c *gin.Context, requestID string) {
	c.JSON(http.StatusInternalServerError, Internal(requestID))
}

// FromDomainError converts a domain error to an appropriate HTTP response.
func FromDomainError(c *gin.Context, err error, requestID string) {
	var de *domain.DomainError
	field := ""
	if errors.As(err, &de) {
		field = de.Field
	}

	switch {
	case domain.IsEmptyInput(err):
		EmptyInput(c, field, requestID)
	case domain.IsValidationError(err):
		ValidationError(c, field, domain.UserMessage(err), requestID)
	default:
		InternalError(c, requestID)
	}
}
