package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToAppError_Validation(t *testing.T) {
	err := fmt.Errorf("compile: %w", NewValidationError("temperatureRange", "min %v > max %v", 30, 10))

	appErr := ToAppError(err)

	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
	assert.Equal(t, "temperatureRange", appErr.Details["field"])
	assert.Equal(t, "min 30 > max 10", appErr.Details["reason"])
	assert.Empty(t, ErrValidation.Details, "sentinel must not be mutated")
}

func TestToAppError_Execution(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := &ExecutionError{Operation: "search", Query: "SELECT ?", ParamCount: 1, Err: cause}

	appErr := ToAppError(fmt.Errorf("search floats: %w", err))

	assert.Equal(t, http.StatusBadGateway, appErr.StatusCode)
	assert.Equal(t, true, appErr.Details["retryable"])
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsExecution(err))
	assert.False(t, IsValidation(err))
}

func TestToAppError_NotFoundAndUnknown(t *testing.T) {
	wrapped := fmt.Errorf("float 123: %w", ErrFloatNotFound)

	assert.Equal(t, http.StatusNotFound, StatusCode(wrapped))
	assert.ErrorIs(t, wrapped, ErrFloatNotFound)
	assert.Equal(t, http.StatusInternalServerError, StatusCode(stderrors.New("boom")))
}

func TestAppError_WithDetailsKeepsIdentity(t *testing.T) {
	detailed := ErrProfileNotFound.WithDetails(map[string]interface{}{"profileId": "p1"})

	require.NotSame(t, ErrProfileNotFound, detailed)
	assert.ErrorIs(t, detailed, ErrProfileNotFound)
	assert.NotErrorIs(t, detailed, ErrFloatNotFound)
}

func TestExecutionError_HidesDriverMessage(t *testing.T) {
	cause := fmt.Errorf("query: %w", stderrors.New("Conversion Error: Could not convert string 'secret-42' to INT64"))
	err := &ExecutionError{Operation: "measurements.count", Query: "SELECT COUNT(*) FROM m WHERE m.profile_id = ?", ParamCount: 1, Err: cause}

	assert.Equal(t, "warehouse measurements.count failed (driver)", err.Error())
	assert.NotContains(t, err.Error(), "secret-42")
	assert.ErrorIs(t, err, cause)
}

type driverError struct{ error }

func TestErrorKind(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil", nil, "none"},
		{"timeout", fmt.Errorf("query: %w", context.DeadlineExceeded), "timeout"},
		{"canceled", context.Canceled, "canceled"},
		{"plain", stderrors.New("boom"), "driver"},
		{"typed", fmt.Errorf("scan: %w", &driverError{stderrors.New("value 'x'")}), "*errors.driverError"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ErrorKind(tt.err))
		})
	}
}

func TestToAppError_ParamError(t *testing.T) {
	appErr := ToAppError(NewParamError("id", "must be a non-negative integer profile id"))

	assert.Equal(t, "INVALID_REQUEST", appErr.Code)
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
	assert.Equal(t, "id", appErr.Details["field"])
	assert.True(t, IsValidation(NewParamError("id", "is required")))
}
