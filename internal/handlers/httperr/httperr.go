// Package httperr maps vault errors onto HTTP responses.
package httperr

import (
	"errors"
	"net/http"

	"github.com/GlebRadaev/fundslock/internal/domain"
	"github.com/GlebRadaev/fundslock/pkg/utils"
	"go.uber.org/zap"
)

// StatusOf returns the HTTP status for err.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, domain.ErrLoginTaken):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnknownDeposit):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrFundsStillLockedUp):
		return http.StatusLocked
	case errors.Is(err, domain.ErrAlreadyWithdrawn):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidTimestamp):
		return http.StatusUnprocessableEntity
	}

	switch domain.KindOf(err) {
	case domain.KindValidation:
		return http.StatusUnprocessableEntity
	case domain.KindAuthorization:
		return http.StatusForbidden
	case domain.KindFatal:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes err with its status. Errors that are not vault errors are
// logged and hidden behind a generic message.
func Respond(w http.ResponseWriter, err error) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		zap.L().Error("request failed", zap.Error(err))
		utils.RespondWithError(w, status, "Internal server error")
		return
	}
	utils.RespondWithError(w, status, err.Error())
}
