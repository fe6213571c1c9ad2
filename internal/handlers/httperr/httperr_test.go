package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/fundslock/internal/domain"
	"github.com/GlebRadaev/fundslock/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err      error
		expected int
	}{
		{domain.ErrZeroAmount, http.StatusUnprocessableEntity},
		{domain.ErrInvalidAmount, http.StatusUnprocessableEntity},
		{domain.ErrInvalidDuration, http.StatusUnprocessableEntity},
		{domain.ErrArityMismatch, http.StatusUnprocessableEntity},
		{domain.ErrFundingMismatch, http.StatusUnprocessableEntity},
		{domain.ErrInvalidTierConfiguration, http.StatusUnprocessableEntity},
		{domain.ErrInsufficientFunds, http.StatusPaymentRequired},
		{domain.ErrLoginTaken, http.StatusConflict},
		{domain.ErrDepositNotForCaller, http.StatusForbidden},
		{domain.ErrNotAdministrator, http.StatusForbidden},
		{domain.ErrUnknownDeposit, http.StatusNotFound},
		{domain.ErrFundsStillLockedUp, http.StatusLocked},
		{domain.ErrAlreadyWithdrawn, http.StatusConflict},
		{domain.ErrInvalidTimestamp, http.StatusUnprocessableEntity},
		{domain.ErrInsufficientVaultBalance, http.StatusServiceUnavailable},
		{fmt.Errorf("wrapped: %w", domain.ErrFundsStillLockedUp), http.StatusLocked},
		{errors.New("db error"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusOf(tt.err))
		})
	}
}

func TestRespond(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedCode    int
		expectedMessage string
	}{
		{
			name:            "Vault error keeps its code",
			err:             fmt.Errorf("%w: 0x01", domain.ErrAlreadyWithdrawn),
			expectedCode:    http.StatusConflict,
			expectedMessage: "AlreadyWithdrawn: deposit already withdrawn: 0x01",
		},
		{
			name:            "Infrastructure error is hidden",
			err:             errors.New("connection refused"),
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			Respond(rr, tt.err)

			assert.Equal(t, tt.expectedCode, rr.Code)
			var resp utils.Response
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.expectedMessage, resp.Message)
		})
	}
}
