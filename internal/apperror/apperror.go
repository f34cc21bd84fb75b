// Package apperror attaches machine-readable codes to domain errors for the HTTP and MCP surfaces.
package apperror

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"crimedash/internal/dashboard"
	"crimedash/internal/export"
	"crimedash/internal/live"
	"crimedash/internal/stats"
	"crimedash/internal/view"
	"crimedash/internal/visuals"
)

// Error codes.
const (
	CodeInvalidSelection  = "INVALID_SELECTION"
	CodeUnknownTab        = "UNKNOWN_TAB"
	CodeUnknownChart      = "UNKNOWN_CHART"
	CodeUnknownFormat     = "UNKNOWN_FORMAT"
	CodeEmptyInput        = "EMPTY_INPUT"
	CodeRefreshInProgress = "REFRESH_IN_PROGRESS"
	CodeViewClosed        = "VIEW_CLOSED"
	CodeCancelled         = "CANCELLED"
	CodeRateLimited       = "RATE_LIMITED"
	CodeBadRequest        = "BAD_REQUEST"
	CodeNotFound          = "NOT_FOUND"
	CodeMethodNotAllowed  = "METHOD_NOT_ALLOWED"
	CodeInternal          = "INTERNAL_ERROR"
)

// Error is a domain error with a code and the HTTP status it maps to.
type Error struct {
	Code    string
	Message string
	Status  int
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func New(code, message string, status int) *Error {
	return &Error{Code: code, Message: message, Status: status}
}

// WithCause sets the underlying error.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

var mapping = []struct {
	target error
	code   string
	status int
}{
	{view.ErrInvalidSelection, CodeInvalidSelection, http.StatusBadRequest},
	{dashboard.ErrUnknownTab, CodeUnknownTab, http.StatusNotFound},
	{visuals.ErrUnknownChart, CodeUnknownChart, http.StatusNotFound},
	{export.ErrUnknownFormat, CodeUnknownFormat, http.StatusBadRequest},
	{stats.ErrEmptyInput, CodeEmptyInput, http.StatusUnprocessableEntity},
	{live.ErrRefreshInProgress, CodeRefreshInProgress, http.StatusConflict},
	{live.ErrClosed, CodeViewClosed, http.StatusServiceUnavailable},
	{context.Canceled, CodeCancelled, http.StatusServiceUnavailable},
	{context.DeadlineExceeded, CodeCancelled, http.StatusServiceUnavailable},
}

// From classifies err. An *Error anywhere in the chain is returned as is; known sentinels get
// their code; anything else is an internal error.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	for _, m := range mapping {
		if errors.Is(err, m.target) {
			return &Error{Code: m.code, Message: err.Error(), Status: m.status, Cause: err}
		}
	}
	return &Error{Code: CodeInternal, Message: "internal error", Status: http.StatusInternalServerError, Cause: err}
}
