package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Validation (VAL) ----

// Validation returns a generic malformed-input error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return New("VAL_002", "Amount must be positive", http.StatusBadRequest)
}

func ErrInvalidIdempotencyKey() *AppError {
	return New("VAL_003", "Idempotency key must be 1-64 characters of [A-Za-z0-9_-]", http.StatusBadRequest)
}

// ---- Ledger & Business Rules (LED) ----

func ErrNotFound(entity string) *AppError {
	return New("LED_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrInsufficientFunds() *AppError {
	return New("LED_002", "Insufficient funds", http.StatusUnprocessableEntity)
}

func ErrSelfTransfer() *AppError {
	return New("LED_003", "Sender and recipient must be different accounts", http.StatusUnprocessableEntity)
}

func ErrCardFrozen() *AppError {
	return New("LED_004", "Card is frozen or blocked", http.StatusForbidden)
}

func ErrAlreadyReversed() *AppError {
	return New("LED_005", "Transaction has already been reversed", http.StatusConflict)
}

func ErrDailyLimitExceeded() *AppError {
	return New("LED_006", "Daily transfer limit exceeded", http.StatusUnprocessableEntity)
}

func ErrAccountInactive() *AppError {
	return New("LED_007", "Account is inactive", http.StatusForbidden)
}

// ErrIntegrityViolation reports a ledger whose debits and credits no longer
// balance after a write. Callers must roll back the enclosing transaction and
// escalate: this is always a server defect, never a business outcome.
func ErrIntegrityViolation(err error) *AppError {
	return Wrap("LED_900", "Ledger integrity violation: debits do not equal credits", http.StatusInternalServerError, err)
}

// ---- Authentication (AUTH) ----

func ErrInvalidPIN() *AppError {
	return New("AUTH_001", "Card PIN verification failed", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_002", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Dependencies (DEP) ----

// ErrServiceUnavailable reports a dependency rejected by an open circuit
// breaker. Only ever raised for the non-critical classification path.
func ErrServiceUnavailable(name string) *AppError {
	return New("DEP_001", fmt.Sprintf("%s is currently unavailable", name), http.StatusServiceUnavailable)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_002", "Internal database error", http.StatusInternalServerError, err)
}
