package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wnspush/internal/types"
)

func requestWithID(id string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	return r.WithContext(types.WithRequestID(r.Context(), id))
}

func TestJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	JSON(w, requestWithID("r1"), http.StatusCreated, APIResponse{Data: map[string]string{"kind": "tile"}})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"kind":"tile"}}`, w.Body.String())
}

func TestJSON_MarshalFailure(t *testing.T) {
	w := httptest.NewRecorder()
	JSON(w, requestWithID("r1"), http.StatusOK, map[string]any{"ch": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp APIErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(types.ErrCodeInternalUnexpected), resp.Error.Code)
	assert.Equal(t, "r1", resp.Error.RequestID)
}

func TestError_AppErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{
			name:   "validation",
			err:    types.NewAppError(types.ErrCodeValidationUnknownTemplate, "unknown template", nil),
			status: http.StatusBadRequest,
			code:   "validation_unknown_template",
		},
		{
			name:   "invalid state",
			err:    types.NewAppError(types.ErrCodeInvalidStateBadgeValue, "missing", nil),
			status: http.StatusUnprocessableEntity,
			code:   "invalid_state_badge_value_missing",
		},
		{
			name:   "wrapped app error",
			err:    fmt.Errorf("render: %w", types.NewAppError(types.ErrCodeValidationInvalidJSON, "bad", nil)),
			status: http.StatusBadRequest,
			code:   "validation_invalid_json",
		},
		{
			name:   "generic error",
			err:    errors.New("database password is hunter2"),
			status: http.StatusInternalServerError,
			code:   "internal_unexpected_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			Error(w, requestWithID("req-err"), tt.err)

			assert.Equal(t, tt.status, w.Code)
			var resp APIErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.Equal(t, "req-err", resp.Error.RequestID)
			assert.NotContains(t, w.Body.String(), "hunter2")
		})
	}
}

func TestError_IncludesDetails(t *testing.T) {
	err := types.NewAppErrorWithDetails(types.ErrCodeValidationUnknownGlyph, "unknown glyph", nil,
		map[string]any{"field": "glyph", "value": "sparkle"})

	w := httptest.NewRecorder()
	Error(w, requestWithID(""), err)

	var resp APIErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "glyph", resp.Error.Details["field"])
	assert.Equal(t, "sparkle", resp.Error.Details["value"])
}

type decodeTarget struct {
	Kind  string   `json:"kind"`
	Texts []string `json:"texts"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "valid", body: `{"kind":"tile","texts":["a"]}`},
		{name: "unknown field", body: `{"kind":"tile","colour":"red"}`, wantErr: "unknown field"},
		{name: "syntax", body: `{"kind":`, wantErr: "invalid JSON"},
		{name: "malformed", body: `{"kind" "tile"}`, wantErr: "malformed JSON"},
		{name: "empty", body: ``, wantErr: "must not be empty"},
		{name: "type mismatch", body: `{"texts":"a"}`, wantErr: "invalid value for field"},
		{name: "two values", body: `{"kind":"tile"} {"kind":"badge"}`, wantErr: "single JSON object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst decodeTarget
			err := DecodeJSON(httptest.NewRecorder(), r, &dst)

			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, "tile", dst.Kind)
				return
			}

			var appErr *types.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, types.ErrCodeValidationInvalidJSON, appErr.Code)
			assert.Contains(t, appErr.Message, tt.wantErr)
		})
	}
}
