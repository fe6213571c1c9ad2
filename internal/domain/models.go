package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// Deposit is a ledger record. Only Claimed (and ClaimedAt) ever change after
// creation, and only from false to true.
type Deposit struct {
	ID           string          `db:"id"`
	Owner        string          `db:"owner"`
	Amount       decimal.Decimal `db:"amount"`
	CreatedAt    int64           `db:"created_at"`
	LockDuration int64           `db:"lock_duration"`
	Claimed      bool            `db:"claimed"`
	ClaimedAt    *int64          `db:"claimed_at"`
}

// UnlocksAt is the first second at which the deposit may be withdrawn.
func (d *Deposit) UnlocksAt() int64 {
	return d.CreatedAt + d.LockDuration
}

// Locked reports whether now is still inside the lock window. It compares
// elapsed time against the duration so that huge durations cannot overflow.
func (d *Deposit) Locked(now int64) bool {
	return now < d.CreatedAt || now-d.CreatedAt < d.LockDuration
}

type Tier struct {
	Threshold int64 `db:"threshold_seconds"`
	RateBps   int64 `db:"rate_bps"`
}

type Vault struct {
	Administrator string          `db:"administrator"`
	Balance       decimal.Decimal `db:"balance"`
	CreatedAt     time.Time       `db:"created_at"`
}

// Payout is an authorised outbound transfer of principal plus interest.
type Payout struct {
	ID           string          `db:"id"`
	DepositID    string          `db:"deposit_id"`
	Recipient    string          `db:"recipient"`
	Principal    decimal.Decimal `db:"principal"`
	Interest     decimal.Decimal `db:"interest"`
	CreatedAt    time.Time       `db:"created_at"`
	DispatchedAt *time.Time      `db:"dispatched_at"`
}

func (p *Payout) Total() decimal.Decimal {
	return p.Principal.Add(p.Interest)
}
