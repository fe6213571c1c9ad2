package deposits

//go:generate mockgen -source=deposits.go -destination=mock_deposits.go -package=deposits

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/fundslock/internal/domain"
	"github.com/GlebRadaev/fundslock/internal/dto"
	"github.com/GlebRadaev/fundslock/internal/handlers/httperr"
	"github.com/GlebRadaev/fundslock/pkg/auth"
	"github.com/GlebRadaev/fundslock/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type Service interface {
	Deposit(ctx context.Context, owner string, lockDuration int64, value decimal.Decimal) (string, error)
	DepositBatch(ctx context.Context, owner string, amounts []decimal.Decimal, durations []int64, total decimal.Decimal) ([]string, error)
	GetDeposit(ctx context.Context, id string) (*domain.Deposit, error)
	GetDepositIDs(ctx context.Context, owner string) ([]string, error)
	InterestQuote(ctx context.Context, amount decimal.Decimal, createdAt int64) (decimal.Decimal, error)
}

type WithdrawalService interface {
	Withdraw(ctx context.Context, caller, id string) (*domain.Payout, error)
	GetPayouts(ctx context.Context, recipient string) ([]domain.Payout, error)
}

type DepositHandler struct {
	depositService    Service
	withdrawalService WithdrawalService
}

func New(depositService Service, withdrawalService WithdrawalService) *DepositHandler {
	return &DepositHandler{
		depositService:    depositService,
		withdrawalService: withdrawalService,
	}
}

// Deposit godoc
//
//	@Summary		Lock value
//	@Description	Create one deposit owned by the caller. The value sent is the amount locked.
//	@Tags			Deposits
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.DepositRequestDTO	true	"Deposit request body"
//	@Success		201		{object}	dto.DepositResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		422		{object}	utils.Response	"Zero or malformed amount, negative duration"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/deposits [post]
func (h *DepositHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.Caller(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "User not authorized")
		return
	}
	var req dto.DepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.depositService.Deposit(r.Context(), caller, req.LockDuration, req.Value)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.DepositResponseDTO{ID: id})
}

// DepositBatch godoc
//
//	@Summary		Lock value in several deposits
//	@Description	Create one deposit per (amount, duration) pair. Total must equal the sum of amounts.
//	@Tags			Deposits
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.BatchDepositRequestDTO	true	"Batch deposit request body"
//	@Success		201		{object}	dto.BatchDepositResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Total is less than the sum of amounts"
//	@Failure		422		{object}	utils.Response	"Arity mismatch, zero amount or overfunded batch"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/deposits/batch [post]
func (h *DepositHandler) DepositBatch(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.Caller(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "User not authorized")
		return
	}
	var req dto.BatchDepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ids, err := h.depositService.DepositBatch(r.Context(), caller, req.Amounts, req.Durations, req.Total)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.BatchDepositResponseDTO{IDs: ids})
}

// GetDeposit godoc
//
//	@Summary		Read a deposit
//	@Tags			Deposits
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Deposit id"
//	@Success		200	{object}	dto.DepositDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Unknown deposit"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/deposits/{id} [get]
func (h *DepositHandler) GetDeposit(w http.ResponseWriter, r *http.Request) {
	deposit, err := h.depositService.GetDeposit(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDepositDTO(deposit))
}

// Withdraw godoc
//
//	@Summary		Withdraw a deposit
//	@Description	Claim principal plus interest for a deposit owned by the caller once its lock has expired.
//	@Tags			Deposits
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Deposit id"
//	@Success		200	{object}	dto.PayoutDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Deposit does not belong to caller"
//	@Failure		404	{object}	utils.Response	"Unknown deposit"
//	@Failure		409	{object}	utils.Response	"Already withdrawn"
//	@Failure		423	{object}	utils.Response	"Funds still locked up"
//	@Failure		503	{object}	utils.Response	"Vault balance does not cover the payout"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/deposits/{id}/withdraw [post]
func (h *DepositHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.Caller(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "User not authorized")
		return
	}

	payout, err := h.withdrawalService.Withdraw(r.Context(), caller, chi.URLParam(r, "id"))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPayoutDTO(payout))
}

// GetOwnerDeposits godoc
//
//	@Summary		List deposit ids of an owner
//	@Description	Ids are returned in creation order.
//	@Tags			Deposits
//	@Produce		json
//	@Security		BearerAuth
//	@Param			owner	path		string	true	"Owner login"
//	@Success		200		{object}	dto.DepositIDsResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/owners/{owner}/deposits [get]
func (h *DepositHandler) GetOwnerDeposits(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "owner")
	ids, err := h.depositService.GetDepositIDs(r.Context(), owner)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DepositIDsResponseDTO{Owner: owner, IDs: ids})
}

// GetQuote godoc
//
//	@Summary		Quote interest
//	@Description	Interest a deposit of amount created at createdAt would earn if withdrawn now.
//	@Tags			Deposits
//	@Produce		json
//	@Security		BearerAuth
//	@Param			amount		query		string	true	"Principal in the smallest value unit"
//	@Param			createdAt	query		int		true	"Creation time, unix seconds"
//	@Success		200			{object}	dto.QuoteResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid query"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		422			{object}	utils.Response	"Creation time in the future or malformed amount"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/interest/quote [get]
func (h *DepositHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	amount, err := decimal.NewFromString(r.URL.Query().Get("amount"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid amount")
		return
	}
	createdAt, err := strconv.ParseInt(r.URL.Query().Get("createdAt"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid createdAt")
		return
	}

	earned, err := h.depositService.InterestQuote(r.Context(), amount, createdAt)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.QuoteResponseDTO{Amount: amount, CreatedAt: createdAt, Interest: earned})
}

// GetPayouts godoc
//
//	@Summary		List the caller's payouts
//	@Tags			Deposits
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.PayoutDTO
//	@Success		204	{object}	nil				"No payouts"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/payouts [get]
func (h *DepositHandler) GetPayouts(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.Caller(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "User not authorized")
		return
	}

	payouts, err := h.withdrawalService.GetPayouts(r.Context(), caller)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	if len(payouts) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	resp := make([]dto.PayoutDTO, len(payouts))
	for i := range payouts {
		resp[i] = dto.NewPayoutDTO(&payouts[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
