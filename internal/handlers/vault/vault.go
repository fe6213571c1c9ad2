package vault

//go:generate mockgen -source=vault.go -destination=mock_vault.go -package=vault

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/fundslock/internal/domain"
	"github.com/GlebRadaev/fundslock/internal/dto"
	"github.com/GlebRadaev/fundslock/internal/handlers/httperr"
	"github.com/GlebRadaev/fundslock/pkg/auth"
	"github.com/GlebRadaev/fundslock/pkg/utils"
	"github.com/shopspring/decimal"
)

type Service interface {
	SetInterestTiers(ctx context.Context, caller string, durations, rates []int64) ([]domain.Tier, error)
	GetInterestTiers(ctx context.Context) ([]domain.Tier, error)
	Fund(ctx context.Context, caller string, value decimal.Decimal) (*domain.Vault, error)
	GetVault(ctx context.Context) (*domain.Vault, error)
}

type VaultHandler struct {
	vaultService Service
}

func New(vaultService Service) *VaultHandler {
	return &VaultHandler{
		vaultService: vaultService,
	}
}

// GetTiers godoc
//
//	@Summary		Read the interest tier table
//	@Description	Tiers are sorted by threshold. An empty table pays no interest.
//	@Tags			Vault
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.TiersResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/vault/tiers [get]
func (h *VaultHandler) GetTiers(w http.ResponseWriter, r *http.Request) {
	tiers, err := h.vaultService.GetInterestTiers(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTiersResponseDTO(tiers))
}

// SetTiers godoc
//
//	@Summary		Replace the interest tier table
//	@Description	Administrator only. The whole table is replaced at once.
//	@Tags			Vault
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.TiersRequestDTO	true	"Tier durations in seconds and rates in basis points"
//	@Success		200		{object}	dto.TiersResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Caller is not the administrator"
//	@Failure		422		{object}	utils.Response	"Invalid tier configuration"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/vault/tiers [put]
func (h *VaultHandler) SetTiers(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.Caller(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "User not authorized")
		return
	}
	var req dto.TiersRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tiers, err := h.vaultService.SetInterestTiers(r.Context(), caller, req.Durations, req.Rates)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTiersResponseDTO(tiers))
}

// Fund godoc
//
//	@Summary		Add value to the vault
//	@Description	External value that backs interest payouts.
//	@Tags			Vault
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.FundRequestDTO	true	"Value in the smallest unit"
//	@Success		200		{object}	dto.VaultResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		422		{object}	utils.Response	"Zero or malformed value"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/vault/fund [post]
func (h *VaultHandler) Fund(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.Caller(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "User not authorized")
		return
	}
	var req dto.FundRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	vault, err := h.vaultService.Fund(r.Context(), caller, req.Value)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewVaultResponseDTO(vault))
}

// GetVault godoc
//
//	@Summary		Read vault balance and administrator
//	@Tags			Vault
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.VaultResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/vault [get]
func (h *VaultHandler) GetVault(w http.ResponseWriter, r *http.Request) {
	vault, err := h.vaultService.GetVault(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewVaultResponseDTO(vault))
}
