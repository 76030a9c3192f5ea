package types

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorErrorFormat(t *testing.T) {
	appErr := &AppError{
		Code:    ErrCodeInvalidStateBadgeValue,
		Message: "either a numeric or glyph value is required",
	}

	assert.Equal(t, "invalid_state_badge_value_missing: either a numeric or glyph value is required", appErr.Error())
}

func TestAppErrorUnwrap(t *testing.T) {
	underlying := errors.New("boom")
	appErr := NewAppError(ErrCodeInternalUnexpected, "render failed", underlying)

	assert.Same(t, underlying, appErr.Unwrap())
	assert.True(t, errors.Is(appErr, underlying))
}

func TestAppErrorErrorsAs(t *testing.T) {
	appErr := NewAppError(ErrCodeValidationUnknownGlyph, "unknown glyph", nil)
	wrapped := fmt.Errorf("render: %w", appErr)

	var target *AppError
	require.True(t, errors.As(wrapped, &target))
	assert.Equal(t, ErrCodeValidationUnknownGlyph, target.Code)
}

func TestAppErrorIs_MatchesOnCode(t *testing.T) {
	sentinel := NewAppError(ErrCodeInvalidStateBadgeValue, "sentinel", nil)
	other := NewAppErrorWithDetails(ErrCodeInvalidStateBadgeValue, "different message", nil, map[string]any{"kind": "badge"})
	wrapped := fmt.Errorf("payload: %w", other)

	assert.True(t, errors.Is(wrapped, sentinel))
	assert.False(t, errors.Is(wrapped, NewAppError(ErrCodeInvalidStateContent, "x", nil)))
	assert.False(t, errors.Is(wrapped, errors.New("plain")))
}

func TestErrorCodeHTTPStatus(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{ErrCodeValidationInvalidRequest, http.StatusBadRequest},
		{ErrCodeValidationInvalidJSON, http.StatusBadRequest},
		{ErrCodeValidationUnknownTemplate, http.StatusBadRequest},
		{ErrCodeInvalidStateBadgeValue, http.StatusUnprocessableEntity},
		{ErrCodeInvalidStateContent, http.StatusUnprocessableEntity},
		{ErrCodeInternalUnexpected, http.StatusInternalServerError},
		{ErrorCode("something_else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.HTTPStatus())
			assert.Equal(t, tt.want, NewAppError(tt.code, "m", nil).HTTPStatus())
		})
	}
}

func TestErrorCodeRetryable(t *testing.T) {
	assert.False(t, ErrCodeInvalidStateBadgeValue.Retryable())
	assert.False(t, ErrCodeValidationInvalidRequest.Retryable())
	assert.True(t, ErrCodeInternalUnexpected.Retryable())
}

func TestAppErrorWithDetails_DoesNotMutateOriginal(t *testing.T) {
	orig := NewAppErrorWithDetails(ErrCodeValidationInvalidRequest, "bad", nil, map[string]any{"a": 1})
	copied := orig.WithDetails(map[string]any{"b": 2})

	assert.Equal(t, map[string]any{"a": 1}, orig.Details)
	assert.Equal(t, map[string]any{"a": 1, "b": 2}, copied.Details)
	assert.Equal(t, orig.Code, copied.Code)
}
