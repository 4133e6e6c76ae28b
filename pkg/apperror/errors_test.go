package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("LED_002", "Insufficient funds", http.StatusUnprocessableEntity),
			expected: "[LED_002] Insufficient funds",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_002", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_002] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("VAL_001", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestValidationErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"Validation", Validation("bad input"), "VAL_001", 400},
		{"InvalidAmount", ErrInvalidAmount(), "VAL_002", 400},
		{"InvalidIdempotencyKey", ErrInvalidIdempotencyKey(), "VAL_003", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestLedgerErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"NotFound", ErrNotFound("Account"), "LED_001", 404},
		{"InsufficientFunds", ErrInsufficientFunds(), "LED_002", 422},
		{"SelfTransfer", ErrSelfTransfer(), "LED_003", 422},
		{"CardFrozen", ErrCardFrozen(), "LED_004", 403},
		{"AlreadyReversed", ErrAlreadyReversed(), "LED_005", 409},
		{"DailyLimitExceeded", ErrDailyLimitExceeded(), "LED_006", 422},
		{"AccountInactive", ErrAccountInactive(), "LED_007", 403},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestIntegrityViolation(t *testing.T) {
	inner := fmt.Errorf("debits 100 credits 90")
	err := ErrIntegrityViolation(inner)

	assert.Equal(t, "LED_900", err.Code)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus)
	assert.True(t, errors.Is(err, inner))
}

func TestAuthErrors(t *testing.T) {
	assert.Equal(t, "AUTH_001", ErrInvalidPIN().Code)
	assert.Equal(t, 401, ErrInvalidPIN().HTTPStatus)
	assert.Equal(t, "AUTH_002", ErrInvalidToken().Code)
	assert.Equal(t, 401, ErrInvalidToken().HTTPStatus)
}

func TestDependencyError(t *testing.T) {
	err := ErrServiceUnavailable("expense-classifier")
	assert.Equal(t, "DEP_001", err.Code)
	assert.Equal(t, 503, err.HTTPStatus)
	assert.Contains(t, err.Message, "expense-classifier")
}

func TestSystemErrors(t *testing.T) {
	inner := fmt.Errorf("pg: connection closed")
	dbErr := ErrDatabaseError(inner)
	assert.Equal(t, "SYS_002", dbErr.Code)
	assert.Equal(t, 500, dbErr.HTTPStatus)
	assert.True(t, errors.Is(dbErr, inner))

	intErr := InternalError(inner)
	assert.Equal(t, "SYS_001", intErr.Code)
	assert.Equal(t, 500, intErr.HTTPStatus)
}

func TestNotFoundEntity(t *testing.T) {
	err := ErrNotFound("Recipient account")
	assert.Contains(t, err.Message, "Recipient account")
	assert.Equal(t, "LED_001", err.Code)
}
