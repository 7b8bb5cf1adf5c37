package apperror

import (
	"errors"
	"net/http"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int          `json:"code"`
	Kind    string       `json:"kind,omitempty"`
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

// Error kinds for the business invariants. Handlers surface the kind so the
// UI can distinguish failures without parsing messages.
const (
	KindValidation           = "validation_error"
	KindInsufficientStock    = "insufficient_stock"
	KindDepositExceedsBalance = "deposit_exceeds_balance"
	KindInvalidDiscount      = "invalid_discount"
	KindInsufficientFunds    = "insufficient_funds"
	KindInvalidPrice         = "invalid_price"
)

// Common errors
var (
	ErrNotFound           = &AppError{Code: http.StatusNotFound, Message: "Resource not found"}
	ErrUnauthorized       = &AppError{Code: http.StatusUnauthorized, Message: "Unauthorized"}
	ErrForbidden          = &AppError{Code: http.StatusForbidden, Message: "Forbidden"}
	ErrBadRequest         = &AppError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrInternalServer     = &AppError{Code: http.StatusInternalServerError, Message: "Internal server error"}
	ErrConflict           = &AppError{Code: http.StatusConflict, Message: "Resource already exists"}
	ErrInvalidCredentials = &AppError{Code: http.StatusUnauthorized, Message: "Invalid email or password"}
	ErrInvalidToken       = &AppError{Code: http.StatusUnauthorized, Message: "Invalid token"}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a validation error with field details
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Kind:    KindValidation,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// NewRequiredFieldError creates a validation error for a missing field
func NewRequiredFieldError(field string) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Kind:    KindValidation,
		Message: "Validation failed",
		Errors:  []FieldError{{Field: field, Message: field + " is required"}},
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: resource + " not found",
	}
}

// NewConflictError creates a conflict error with a custom message
func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// NewInsufficientStockError rejects a sale whose line items exceed the
// available quantity of one or more products.
func NewInsufficientStockError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindInsufficientStock,
		Message: message,
	}
}

// NewDepositExceedsBalanceError rejects a deposit larger than the debt's
// remaining balance.
func NewDepositExceedsBalanceError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindDepositExceedsBalance,
		Message: message,
	}
}

// NewInvalidDiscountError rejects a negative discount or one exceeding the
// pre-discount subtotal.
func NewInvalidDiscountError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindInvalidDiscount,
		Message: message,
	}
}

// NewInsufficientFundsError rejects a restock whose cost exceeds the current
// ledger balance.
func NewInsufficientFundsError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindInsufficientFunds,
		Message: message,
	}
}

// NewInvalidPriceError rejects a product whose selling price does not exceed
// its buying price.
func NewInvalidPriceError(message string) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Kind:    KindInvalidPrice,
		Message: message,
	}
}

// IsKind reports whether err is an AppError with the given kind
func IsKind(err error, kind string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
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
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}
