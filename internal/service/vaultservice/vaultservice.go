package vaultservice

//go:generate mockgen -source=vaultservice.go -destination=mock_vaultservice.go -package=vaultservice

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/fundslock/internal/domain"
	"github.com/GlebRadaev/fundslock/internal/interest"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type TierRepo interface {
	List(ctx context.Context) ([]domain.Tier, error)
	Replace(ctx context.Context, tiers []domain.Tier) error
}

type VaultRepo interface {
	Init(ctx context.Context, administrator string) (*domain.Vault, error)
	Get(ctx context.Context) (*domain.Vault, error)
	Credit(ctx context.Context, value decimal.Decimal) error
}

// Service covers the privileged side of the vault. The administrator is
// fixed by Init and checked on every privileged call.
type Service struct {
	tierRepo      TierRepo
	vaultRepo     VaultRepo
	administrator string
}

func New(tierRepo TierRepo, vaultRepo VaultRepo) *Service {
	return &Service{
		tierRepo:  tierRepo,
		vaultRepo: vaultRepo,
	}
}

// Init creates the vault on first start. On later starts the stored
// administrator wins over the configured one.
func (s *Service) Init(ctx context.Context, administrator string) (*domain.Vault, error) {
	vault, err := s.vaultRepo.Init(ctx, administrator)
	if err != nil {
		zap.L().Error("failed to initialise vault", zap.Error(err))
		return nil, err
	}
	if vault.Administrator != administrator {
		zap.L().Warn("configured administrator ignored, vault already has one",
			zap.String("configured", administrator),
			zap.String("administrator", vault.Administrator),
		)
	}
	s.administrator = vault.Administrator
	zap.L().Info("vault ready", zap.String("administrator", vault.Administrator), zap.Stringer("balance", vault.Balance))
	return vault, nil
}

func (s *Service) Administrator() string {
	return s.administrator
}

// SetInterestTiers replaces the whole tier table.
func (s *Service) SetInterestTiers(ctx context.Context, caller string, durations, rates []int64) ([]domain.Tier, error) {
	if err := s.authorize(caller); err != nil {
		return nil, err
	}

	table, err := interest.NewTable(durations, rates)
	if err != nil {
		zap.L().Info("tier configuration rejected", zap.Error(err))
		return nil, err
	}

	tiers := table.Tiers()
	if err := s.tierRepo.Replace(ctx, tiers); err != nil {
		zap.L().Error("failed to replace interest tiers", zap.Error(err))
		return nil, err
	}

	zap.L().Info("interest tiers replaced", zap.Int64s("durations", table.Durations()), zap.Int64s("rates", table.Rates()))
	return tiers, nil
}

func (s *Service) GetInterestTiers(ctx context.Context) ([]domain.Tier, error) {
	tiers, err := s.tierRepo.List(ctx)
	if err != nil {
		zap.L().Error("failed to get interest tiers", zap.Error(err))
		return nil, err
	}
	return interest.FromTiers(tiers).Tiers(), nil
}

// Fund adds external value to the vault so that interest can be paid out.
func (s *Service) Fund(ctx context.Context, caller string, value decimal.Decimal) (*domain.Vault, error) {
	if value.IsNegative() || !value.IsInteger() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidAmount, value)
	}
	if value.IsZero() {
		return nil, domain.ErrZeroAmount
	}

	if err := s.vaultRepo.Credit(ctx, value); err != nil {
		zap.L().Error("failed to fund vault", zap.String("caller", caller), zap.Error(err))
		return nil, err
	}
	zap.L().Info("vault funded", zap.String("caller", caller), zap.Stringer("value", value))
	return s.GetVault(ctx)
}

func (s *Service) GetVault(ctx context.Context) (*domain.Vault, error) {
	vault, err := s.vaultRepo.Get(ctx)
	if err != nil {
		zap.L().Error("failed to get vault", zap.Error(err))
		return nil, err
	}
	return vault, nil
}

func (s *Service) authorize(caller string) error {
	if s.administrator == "" || caller != s.administrator {
		zap.L().Warn("privileged call denied", zap.String("caller", caller))
		return fmt.Errorf("%w: %s", domain.ErrNotAdministrator, caller)
	}
	return nil
}
