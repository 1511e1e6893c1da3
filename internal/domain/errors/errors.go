// Package errors defines the application error taxonomy. Every failure a
// handler can return is one of these values, so the HTTP layer can map
// errors to the response envelope without inspecting internals.
package errors

import (
	"net/http"

	"storemgr/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error carrying detailed information.
// The predefined values below stay immutable.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage returns a copy of the error with a more specific message,
// keeping the code and classification.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Predefined error types
var (
	// Input validation
	ErrEmptyInput = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_ERROR",
		"empty input json",
		"",
	)

	ErrServerAssignedKey = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_ERROR",
		"server-assigned key cannot be specified in input json",
		"",
	)

	ErrUnknownColumn = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_ERROR",
		"unrecognized column in input json",
		"",
	)

	// Constraint violations
	ErrDuplicateValue = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_VALUE",
		"record exists in database",
		"",
	)

	ErrInvalidForeignKey = NewBaseError(
		http.StatusBadRequest,
		"INVALID_FOREIGN_KEY",
		"invalid foreign keys in input",
		"",
	)

	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"invalid input",
		"",
	)

	// Inventory ledger
	ErrBillNotFound = NewBaseError(
		http.StatusBadRequest,
		"BILL_NOT_FOUND",
		"bill does not exist",
		"",
	)

	ErrPairingNotFound = NewBaseError(
		http.StatusBadRequest,
		"PAIRING_NOT_FOUND",
		"store does not hold this product lot",
		"",
	)

	ErrInsufficientStock = NewBaseError(
		http.StatusBadRequest,
		"INSUFFICIENT_STOCK",
		"insufficient stock for requested quantity",
		"",
	)

	ErrDuplicateLineItem = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_LINE_ITEM",
		"line item already exists on this bill",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusBadRequest,
		"TRANSACTION_FAILED",
		"could not complete transaction",
		"",
	)

	// Reporting
	ErrReportUnavailable = NewBaseError(
		http.StatusBadRequest,
		"REPORT_UNAVAILABLE",
		"could not build report",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"record not found",
		"",
	)
)

// NewDatabaseExecuteError wraps an unclassified database failure. The
// original error stays in details for logging; the client sees only the
// generic message.
func NewDatabaseExecuteError(err error, message string) *BaseError {
	return NewBaseError(
		http.StatusBadRequest,
		"DATABASE_ERROR",
		message,
		err.Error(),
	)
}
