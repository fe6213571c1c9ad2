package dto

import (
	"github.com/GlebRadaev/fundslock/internal/domain"
	"github.com/shopspring/decimal"
)

type TiersRequestDTO struct {
	Durations []int64 `json:"durations" example:"31536000,63072000,94608000"`
	Rates     []int64 `json:"rates" example:"500,700,1000"`
}

type TierDTO struct {
	Threshold int64 `json:"threshold_seconds" example:"31536000"`
	RateBps   int64 `json:"rate_bps" example:"500"`
}

type TiersResponseDTO struct {
	Tiers []TierDTO `json:"tiers"`
}

func NewTiersResponseDTO(tiers []domain.Tier) TiersResponseDTO {
	out := make([]TierDTO, len(tiers))
	for i, t := range tiers {
		out[i] = TierDTO{Threshold: t.Threshold, RateBps: t.RateBps}
	}
	return TiersResponseDTO{Tiers: out}
}

type FundRequestDTO struct {
	Value decimal.Decimal `json:"value" swaggertype:"string" example:"500000000000000000"`
}

type VaultResponseDTO struct {
	Administrator string          `json:"administrator" example:"admin"`
	Balance       decimal.Decimal `json:"balance" swaggertype:"string" example:"1500000000000000000"`
}

func NewVaultResponseDTO(v *domain.Vault) VaultResponseDTO {
	return VaultResponseDTO{Administrator: v.Administrator, Balance: v.Balance}
}
