package withdrawalservice

//go:generate mockgen -source=withdrawalservice.go -destination=mock_withdrawalservice.go -package=withdrawalservice

import (
	"context"
	"fmt"
	"time"

	"github.com/GlebRadaev/fundslock/internal/domain"
	"github.com/GlebRadaev/fundslock/internal/interest"
	"github.com/GlebRadaev/fundslock/internal/pg"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type DepositRepo interface {
	GetByIDForUpdate(ctx context.Context, id string) (*domain.Deposit, error)
	MarkClaimed(ctx context.Context, id string, claimedAt int64) error
}

type VaultRepo interface {
	Debit(ctx context.Context, value decimal.Decimal) error
}

type TierRepo interface {
	List(ctx context.Context) ([]domain.Tier, error)
}

type PayoutRepo interface {
	Create(ctx context.Context, payout *domain.Payout) error
	FindByRecipient(ctx context.Context, recipient string) ([]domain.Payout, error)
}

type Service struct {
	txManager   pg.TXManager
	depositRepo DepositRepo
	vaultRepo   VaultRepo
	tierRepo    TierRepo
	payoutRepo  PayoutRepo
	now         func() time.Time
	newID       func() string
}

func New(txManager pg.TXManager, depositRepo DepositRepo, vaultRepo VaultRepo, tierRepo TierRepo, payoutRepo PayoutRepo) *Service {
	return &Service{
		txManager:   txManager,
		depositRepo: depositRepo,
		vaultRepo:   vaultRepo,
		tierRepo:    tierRepo,
		payoutRepo:  payoutRepo,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// Withdraw claims deposit id for caller and authorises the payout of
// principal plus interest. The row lock, the claim, the vault debit and the
// payout record share one transaction.
func (s *Service) Withdraw(ctx context.Context, caller, id string) (*domain.Payout, error) {
	now := s.now()
	var payout *domain.Payout

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		deposit, err := s.depositRepo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := checkWithdrawable(deposit, caller, id, now.Unix()); err != nil {
			return err
		}

		tiers, err := s.tierRepo.List(ctx)
		if err != nil {
			return err
		}
		earned, err := interest.Compute(deposit.Amount, deposit.CreatedAt, now.Unix(), interest.FromTiers(tiers))
		if err != nil {
			return err
		}

		if err := s.depositRepo.MarkClaimed(ctx, id, now.Unix()); err != nil {
			return err
		}

		payout = &domain.Payout{
			ID:        s.newID(),
			DepositID: id,
			Recipient: caller,
			Principal: deposit.Amount,
			Interest:  earned,
			CreatedAt: now.UTC(),
		}
		if err := s.vaultRepo.Debit(ctx, payout.Total()); err != nil {
			return err
		}
		return s.payoutRepo.Create(ctx, payout)
	})
	if err != nil {
		logRejection(err, caller, id)
		return nil, err
	}

	zap.L().Info("deposit withdrawn",
		zap.String("id", id),
		zap.String("recipient", caller),
		zap.Stringer("principal", payout.Principal),
		zap.Stringer("interest", payout.Interest),
	)
	return payout, nil
}

func checkWithdrawable(deposit *domain.Deposit, caller, id string, now int64) error {
	switch {
	case deposit == nil:
		return fmt.Errorf("%w: %s", domain.ErrUnknownDeposit, id)
	case deposit.Owner != caller:
		return fmt.Errorf("%w: %s", domain.ErrDepositNotForCaller, id)
	case deposit.Claimed:
		return fmt.Errorf("%w: %s", domain.ErrAlreadyWithdrawn, id)
	case deposit.Locked(now):
		return fmt.Errorf("%w: %s unlocks at %d", domain.ErrFundsStillLockedUp, id, deposit.UnlocksAt())
	}
	return nil
}

func logRejection(err error, caller, id string) {
	fields := []zap.Field{zap.String("id", id), zap.String("caller", caller), zap.Error(err)}
	switch domain.KindOf(err) {
	case domain.KindValidation, domain.KindAuthorization, domain.KindState:
		zap.L().Info("withdrawal rejected", fields...)
	case domain.KindFatal:
		zap.L().Error("vault cannot cover withdrawal", fields...)
	default:
		zap.L().Error("failed to withdraw deposit", fields...)
	}
}

func (s *Service) GetPayouts(ctx context.Context, recipient string) ([]domain.Payout, error) {
	payouts, err := s.payoutRepo.FindByRecipient(ctx, recipient)
	if err != nil {
		zap.L().Error("failed to get payouts", zap.String("recipient", recipient), zap.Error(err))
		return nil, err
	}
	return payouts, nil
}
