package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	tests := []struct {
		name         string
		code         int
		payload      any
		expectedBody string
	}{
		{
			name:         "Object payload",
			code:         http.StatusCreated,
			payload:      map[string]string{"id": "0x01"},
			expectedBody: `{"id":"0x01"}`,
		},
		{
			name:         "No payload",
			code:         http.StatusNoContent,
			payload:      nil,
			expectedBody: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			RespondWithJSON(rr, tt.code, tt.payload)

			assert.Equal(t, tt.code, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			if tt.expectedBody == "" {
				assert.Empty(t, rr.Body.String())
				return
			}
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestRespondWithError(t *testing.T) {
	rr := httptest.NewRecorder()
	RespondWithError(rr, http.StatusLocked, "FundsStillLockedUp: funds are still locked up")

	assert.Equal(t, http.StatusLocked, rr.Code)
	var resp Response
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "FundsStillLockedUp: funds are still locked up", resp.Message)
}
