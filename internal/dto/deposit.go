package dto

import (
	"time"

	"github.com/GlebRadaev/fundslock/internal/domain"
	"github.com/shopspring/decimal"
)

type DepositRequestDTO struct {
	LockDuration int64           `json:"lock_duration" example:"1209600"`
	Value        decimal.Decimal `json:"value" swaggertype:"string" example:"1000000000000000000"`
}

type DepositResponseDTO struct {
	ID string `json:"id" example:"0x3f2a9c01d4e5b6a70000000000000001"`
}

type BatchDepositRequestDTO struct {
	Amounts   []decimal.Decimal `json:"amounts" swaggertype:"array,string" example:"1,2,3"`
	Durations []int64           `json:"durations" example:"1296000,2592000,3888000"`
	Total     decimal.Decimal   `json:"total" swaggertype:"string" example:"6"`
}

type BatchDepositResponseDTO struct {
	IDs []string `json:"ids"`
}

type DepositDTO struct {
	ID           string          `json:"id" example:"0x3f2a9c01d4e5b6a70000000000000001"`
	Owner        string          `json:"owner" example:"alice"`
	Amount       decimal.Decimal `json:"amount" swaggertype:"string" example:"1000000000000000000"`
	CreatedAt    int64           `json:"created_at" example:"1700000000"`
	LockDuration int64           `json:"lock_duration" example:"1209600"`
	UnlocksAt    int64           `json:"unlocks_at" example:"1701209600"`
	Claimed      bool            `json:"claimed" example:"false"`
	ClaimedAt    *int64          `json:"claimed_at,omitempty" example:"1702000000"`
}

func NewDepositDTO(d *domain.Deposit) DepositDTO {
	return DepositDTO{
		ID:           d.ID,
		Owner:        d.Owner,
		Amount:       d.Amount,
		CreatedAt:    d.CreatedAt,
		LockDuration: d.LockDuration,
		UnlocksAt:    d.UnlocksAt(),
		Claimed:      d.Claimed,
		ClaimedAt:    d.ClaimedAt,
	}
}

type DepositIDsResponseDTO struct {
	Owner string   `json:"owner" example:"alice"`
	IDs   []string `json:"ids"`
}

type QuoteResponseDTO struct {
	Amount    decimal.Decimal `json:"amount" swaggertype:"string" example:"1000000000000000000"`
	CreatedAt int64           `json:"created_at" example:"1620000000"`
	Interest  decimal.Decimal `json:"interest" swaggertype:"string" example:"70000000000000000"`
}

type PayoutDTO struct {
	ID           string          `json:"id" example:"5b0c7d0e-8a3f-4c1e-9d2b-6f7a8b9c0d1e"`
	DepositID    string          `json:"deposit_id" example:"0x3f2a9c01d4e5b6a70000000000000001"`
	Recipient    string          `json:"recipient" example:"alice"`
	Principal    decimal.Decimal `json:"principal" swaggertype:"string" example:"1000000000000000000"`
	Interest     decimal.Decimal `json:"interest" swaggertype:"string" example:"70000000000000000"`
	Total        decimal.Decimal `json:"total" swaggertype:"string" example:"1070000000000000000"`
	CreatedAt    time.Time       `json:"created_at" example:"2024-05-01T12:00:00Z"`
	DispatchedAt *time.Time      `json:"dispatched_at,omitempty" example:"2024-05-01T12:00:05Z"`
}

func NewPayoutDTO(p *domain.Payout) PayoutDTO {
	return PayoutDTO{
		ID:           p.ID,
		DepositID:    p.DepositID,
		Recipient:    p.Recipient,
		Principal:    p.Principal,
		Interest:     p.Interest,
		Total:        p.Total(),
		CreatedAt:    p.CreatedAt,
		DispatchedAt: p.DispatchedAt,
	}
}
