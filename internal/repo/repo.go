package repo

import (
	"github.com/GlebRadaev/fundslock/internal/idgen"
	"github.com/GlebRadaev/fundslock/internal/payout"
	"github.com/GlebRadaev/fundslock/internal/pg"
	depositrepo "github.com/GlebRadaev/fundslock/internal/repo/deposit-repo"
	payoutrepo "github.com/GlebRadaev/fundslock/internal/repo/payout-repo"
	tierrepo "github.com/GlebRadaev/fundslock/internal/repo/tier-repo"
	userrepo "github.com/GlebRadaev/fundslock/internal/repo/user-repo"
	vaultrepo "github.com/GlebRadaev/fundslock/internal/repo/vault-repo"
	"github.com/GlebRadaev/fundslock/internal/service/authservice"
	"github.com/GlebRadaev/fundslock/internal/service/depositservice"
	"github.com/GlebRadaev/fundslock/internal/service/vaultservice"
	"github.com/GlebRadaev/fundslock/internal/service/withdrawalservice"
)

// DepositRepo is the ledger as seen by issuance, withdrawal and id generation.
type DepositRepo interface {
	depositservice.DepositRepo
	withdrawalservice.DepositRepo
	idgen.Sequence
}

type VaultRepo interface {
	vaultservice.VaultRepo
	depositservice.VaultRepo
	withdrawalservice.VaultRepo
}

type PayoutRepo interface {
	withdrawalservice.PayoutRepo
	payout.Repo
}

type Repositories struct {
	TxManager   pg.TXManager
	UserRepo    authservice.Repo
	DepositRepo DepositRepo
	TierRepo    vaultservice.TierRepo
	VaultRepo   VaultRepo
	PayoutRepo  PayoutRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		TxManager:   txManager,
		UserRepo:    userrepo.New(conn),
		DepositRepo: depositrepo.New(conn),
		TierRepo:    tierrepo.New(conn, txManager),
		VaultRepo:   vaultrepo.New(conn),
		PayoutRepo:  payoutrepo.New(conn),
	}
}
