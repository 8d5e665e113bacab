package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies client-side failures so handlers can decide how to
// surface them.
type Kind string

const (
	KindValidation    Kind = "validation"     // bad input caught before any network call
	KindStockConflict Kind = "stock_conflict" // cart operation exceeded the known stock ceiling
	KindTransport     Kind = "transport"      // backend unreachable or non-2xx
	KindPrintFailure  Kind = "print_failure"  // print cascade exhausted
)

// AppError represents an application error with an HTTP status code for the
// client's own API surface.
type AppError struct {
	Kind    Kind         `json:"kind"`
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrSessionExpired      = &AppError{Kind: KindTransport, Code: http.StatusUnauthorized, Message: "Session expired, please log in again"}
	ErrForbidden           = &AppError{Kind: KindTransport, Code: http.StatusForbidden, Message: "Forbidden"}
	ErrEmptyCart           = &AppError{Kind: KindValidation, Code: http.StatusUnprocessableEntity, Message: "Cart is empty"}
	ErrInsufficientPayment = &AppError{Kind: KindValidation, Code: http.StatusUnprocessableEntity, Message: "Amount received is below the sale total"}
)

// New creates a new application error
func New(kind Kind, code int, message string) *AppError {
	return &AppError{Kind: kind, Code: code, Message: message}
}

// NewValidationError creates a validation error with field details
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Kind:    KindValidation,
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// NewBadRequestError creates a validation error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{Kind: KindValidation, Code: http.StatusBadRequest, Message: message}
}

// NewStockConflict creates the rejection for a cart operation that would
// exceed the stock known to the client. Available is the last stock figure
// received from the backend; the client trusts it until the next lookup.
func NewStockConflict(productName string, available int) *AppError {
	return &AppError{
		Kind:    KindStockConflict,
		Code:    http.StatusConflict,
		Message: fmt.Sprintf("Insufficient stock for %s: %d available", productName, available),
	}
}

// NewOutOfStock creates the rejection for adding a product whose known
// stock is zero.
func NewOutOfStock(productName string) *AppError {
	return &AppError{
		Kind:    KindStockConflict,
		Code:    http.StatusConflict,
		Message: fmt.Sprintf("%s is out of stock", productName),
	}
}

// NewPrintFailure wraps a print-cascade failure. Printing never blocks sale
// finalization; handlers surface this as an advisory.
func NewPrintFailure(message string) *AppError {
	return &AppError{Kind: KindPrintFailure, Code: http.StatusServiceUnavailable, Message: message}
}

// FromStatus maps a backend HTTP status to a human-readable transport
// error.
func FromStatus(status int, body string) *AppError {
	switch {
	case status == http.StatusUnauthorized:
		return ErrSessionExpired
	case status == http.StatusForbidden:
		return ErrForbidden
	case status == http.StatusNotFound:
		msg := "Resource not found"
		if body != "" {
			msg = body
		}
		return &AppError{Kind: KindTransport, Code: http.StatusNotFound, Message: msg}
	case status >= 500:
		return &AppError{Kind: KindTransport, Code: status, Message: "Server error, please try again"}
	default:
		msg := fmt.Sprintf("Request failed with status %d", status)
		if body != "" {
			msg = body
		}
		return &AppError{Kind: KindTransport, Code: status, Message: msg}
	}
}

// NewTransportError wraps a network-level failure (unreachable backend,
// malformed response body). Caller state is preserved for retry.
func NewTransportError(err error) *AppError {
	return &AppError{
		Kind:    KindTransport,
		Code:    http.StatusBadGateway,
		Message: "Could not reach the server: " + err.Error(),
	}
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Kind:    KindTransport,
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}
