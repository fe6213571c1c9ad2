package service

//go:generate mockgen -source=service.go -destination=mock_service.go -package=service

import (
	"context"

	"github.com/GlebRadaev/fundslock/internal/config"
	"github.com/GlebRadaev/fundslock/internal/domain"
	"github.com/GlebRadaev/fundslock/internal/handlers/auth"
	"github.com/GlebRadaev/fundslock/internal/handlers/deposits"
	"github.com/GlebRadaev/fundslock/internal/handlers/vault"
	"github.com/GlebRadaev/fundslock/internal/idgen"
	"github.com/GlebRadaev/fundslock/internal/repo"
	"github.com/GlebRadaev/fundslock/internal/service/authservice"
	"github.com/GlebRadaev/fundslock/internal/service/depositservice"
	"github.com/GlebRadaev/fundslock/internal/service/vaultservice"
	"github.com/GlebRadaev/fundslock/internal/service/withdrawalservice"
	pkgauth "github.com/GlebRadaev/fundslock/pkg/auth"
)

// AuthService is the user surface plus the startup hook that reserves the
// administrator login.
type AuthService interface {
	auth.Service
	ProvisionAdministrator(ctx context.Context, login, password string) (*domain.User, error)
}

// VaultService is the administration surface plus the startup hook that
// records the administrator.
type VaultService interface {
	vault.Service
	Init(ctx context.Context, administrator string) (*domain.Vault, error)
}

type Services struct {
	AuthService       AuthService
	DepositService    deposits.Service
	WithdrawalService deposits.WithdrawalService
	VaultService      VaultService
	Tokens            pkgauth.TokenValidator
}

func New(cfg *config.Config, repo *repo.Repositories) *Services {
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, jwtService)
	depositService := depositservice.New(
		repo.TxManager,
		repo.DepositRepo,
		repo.VaultRepo,
		repo.TierRepo,
		idgen.NewKeccakGenerator(repo.DepositRepo),
	)
	withdrawalService := withdrawalservice.New(
		repo.TxManager,
		repo.DepositRepo,
		repo.VaultRepo,
		repo.TierRepo,
		repo.PayoutRepo,
	)
	vaultService := vaultservice.New(repo.TierRepo, repo.VaultRepo)

	return &Services{
		AuthService:       authService,
		DepositService:    depositService,
		WithdrawalService: withdrawalService,
		VaultService:      vaultService,
		Tokens:            jwtService,
	}
}
