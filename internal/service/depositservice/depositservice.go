package depositservice

//go:generate mockgen -source=depositservice.go -destination=mock_depositservice.go -package=depositservice

import (
	"context"
	"fmt"
	"time"

	"github.com/GlebRadaev/fundslock/internal/domain"
	"github.com/GlebRadaev/fundslock/internal/idgen"
	"github.com/GlebRadaev/fundslock/internal/interest"
	"github.com/GlebRadaev/fundslock/internal/pg"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type DepositRepo interface {
	Create(ctx context.Context, deposit *domain.Deposit) error
	GetByID(ctx context.Context, id string) (*domain.Deposit, error)
	IDsByOwner(ctx context.Context, owner string) ([]string, error)
}

type VaultRepo interface {
	Credit(ctx context.Context, value decimal.Decimal) error
}

type TierRepo interface {
	List(ctx context.Context) ([]domain.Tier, error)
}

// Service is the issuance side of the vault: it turns funded requests into
// ledger records and answers read-only questions about them.
type Service struct {
	txManager   pg.TXManager
	depositRepo DepositRepo
	vaultRepo   VaultRepo
	tierRepo    TierRepo
	ids         idgen.Generator
	now         func() time.Time
}

func New(txManager pg.TXManager, depositRepo DepositRepo, vaultRepo VaultRepo, tierRepo TierRepo, ids idgen.Generator) *Service {
	return &Service{
		txManager:   txManager,
		depositRepo: depositRepo,
		vaultRepo:   vaultRepo,
		tierRepo:    tierRepo,
		ids:         ids,
		now:         time.Now,
	}
}

// Deposit locks value for owner for at least lockDuration seconds.
func (s *Service) Deposit(ctx context.Context, owner string, lockDuration int64, value decimal.Decimal) (string, error) {
	if err := validateAmount(value); err != nil {
		return "", err
	}
	if lockDuration < 0 {
		return "", fmt.Errorf("%w: %d", domain.ErrInvalidDuration, lockDuration)
	}

	ids, err := s.issue(ctx, owner, []decimal.Decimal{value}, []int64{lockDuration}, value)
	if err != nil {
		return "", err
	}
	return ids[0], nil
}

// DepositBatch creates one deposit per (amount, duration) pair, in order.
// total must match the sum of amounts exactly; nothing is written otherwise.
func (s *Service) DepositBatch(ctx context.Context, owner string, amounts []decimal.Decimal, durations []int64, total decimal.Decimal) ([]string, error) {
	if len(amounts) == 0 || len(amounts) != len(durations) {
		return nil, fmt.Errorf("%w: %d amounts, %d durations", domain.ErrArityMismatch, len(amounts), len(durations))
	}
	if total.IsNegative() || !total.IsInteger() {
		return nil, fmt.Errorf("%w: total %s", domain.ErrInvalidAmount, total)
	}

	sum := decimal.Zero
	for i, amount := range amounts {
		if err := validateAmount(amount); err != nil {
			return nil, fmt.Errorf("amount %d: %w", i, err)
		}
		if durations[i] < 0 {
			return nil, fmt.Errorf("duration %d: %w", i, domain.ErrInvalidDuration)
		}
		sum = sum.Add(amount)
	}

	switch total.Cmp(sum) {
	case -1:
		zap.L().Info("batch deposit underfunded", zap.String("owner", owner), zap.Stringer("total", total), zap.Stringer("sum", sum))
		return nil, fmt.Errorf("%w: sent %s, need %s", domain.ErrInsufficientFunds, total, sum)
	case 1:
		zap.L().Info("batch deposit overfunded", zap.String("owner", owner), zap.Stringer("total", total), zap.Stringer("sum", sum))
		return nil, fmt.Errorf("%w: sent %s, need %s", domain.ErrFundingMismatch, total, sum)
	}

	return s.issue(ctx, owner, amounts, durations, total)
}

func (s *Service) issue(ctx context.Context, owner string, amounts []decimal.Decimal, durations []int64, funding decimal.Decimal) ([]string, error) {
	createdAt := s.now().Unix()
	ids := make([]string, 0, len(amounts))

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		for i := range amounts {
			id, err := s.ids.Next(ctx, owner, createdAt)
			if err != nil {
				return err
			}
			deposit := &domain.Deposit{
				ID:           id,
				Owner:        owner,
				Amount:       amounts[i],
				CreatedAt:    createdAt,
				LockDuration: durations[i],
			}
			if err := s.depositRepo.Create(ctx, deposit); err != nil {
				return err
			}
			ids = append(ids, id)
		}
		return s.vaultRepo.Credit(ctx, funding)
	})
	if err != nil {
		zap.L().Error("failed to issue deposits", zap.String("owner", owner), zap.Int("count", len(amounts)), zap.Error(err))
		return nil, err
	}

	zap.L().Info("deposits issued", zap.String("owner", owner), zap.Strings("ids", ids))
	return ids, nil
}

func (s *Service) GetDeposit(ctx context.Context, id string) (*domain.Deposit, error) {
	deposit, err := s.depositRepo.GetByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get deposit", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if deposit == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownDeposit, id)
	}
	return deposit, nil
}

func (s *Service) GetDepositIDs(ctx context.Context, owner string) ([]string, error) {
	ids, err := s.depositRepo.IDsByOwner(ctx, owner)
	if err != nil {
		zap.L().Error("failed to get deposit ids", zap.String("owner", owner), zap.Error(err))
		return nil, err
	}
	return ids, nil
}

// InterestQuote prices amount as if a deposit created at createdAt were
// withdrawn now under the current tier table.
func (s *Service) InterestQuote(ctx context.Context, amount decimal.Decimal, createdAt int64) (decimal.Decimal, error) {
	tiers, err := s.tierRepo.List(ctx)
	if err != nil {
		zap.L().Error("failed to get interest tiers", zap.Error(err))
		return decimal.Decimal{}, err
	}
	return interest.Compute(amount, createdAt, s.now().Unix(), interest.FromTiers(tiers))
}

func validateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() || !amount.IsInteger() {
		return fmt.Errorf("%w: %s", domain.ErrInvalidAmount, amount)
	}
	if amount.IsZero() {
		return domain.ErrZeroAmount
	}
	return nil
}
