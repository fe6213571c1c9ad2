package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMiddleware(t *testing.T) {
	jwtService := NewJWTService(testSecret)
	valid, err := jwtService.GenerateJWT(7, "alice", time.Now().Add(time.Hour))
	assert.NoError(t, err)

	var gotLogin string
	var gotUserID int
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLogin, _ = Caller(r.Context())
		gotUserID, _ = r.Context().Value(UserIDKey).(int)
		w.WriteHeader(http.StatusOK)
	})
	handler := Middleware(jwtService)(next)

	tests := []struct {
		name         string
		header       string
		expectedCode int
		expectedUser string
	}{
		{
			name:         "Valid bearer token",
			header:       "Bearer " + valid,
			expectedCode: http.StatusOK,
			expectedUser: "alice",
		},
		{
			name:         "Missing header",
			header:       "",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Wrong scheme",
			header:       "Basic " + valid,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Garbage token",
			header:       "Bearer nope",
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotLogin, gotUserID = "", 0
			req := httptest.NewRequest(http.MethodGet, "/api/deposits/0x01", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedUser, gotLogin)
			if tt.expectedUser != "" {
				assert.Equal(t, 7, gotUserID)
			}
		})
	}
}

func TestCaller_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := Caller(req.Context())
	assert.False(t, ok)
}
