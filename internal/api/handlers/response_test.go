package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondConflict(rec, "Slot already taken")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Slot already taken"}`, rec.Body.String())
}

func TestRespondInternalError_HidesDetails(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondInternalError(rec)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	type body struct {
		Status string `json:"status"`
	}

	tests := []struct {
		name    string
		payload string
		wantErr bool
		empty   bool
	}{
		{name: "valid", payload: `{"status":"confirmed"}`},
		{name: "empty", payload: ``, wantErr: true, empty: true},
		{name: "unknown field ignored", payload: `{"status":"confirmed","extra":1}`},
		{name: "trailing data", payload: `{"status":"a"}{"status":"b"}`, wantErr: true},
		{name: "malformed", payload: `{"status":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.payload))

			var v body
			err := DecodeJSON(req, &v)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, "confirmed", v.Status)
				return
			}
			require.Error(t, err)
			if tt.empty {
				assert.ErrorIs(t, err, ErrEmptyBody)
			}
		})
	}
}
