package payoutrepo

import (
	"context"
	"time"

	"github.com/GlebRadaev/fundslock/internal/domain"
	"github.com/GlebRadaev/fundslock/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, payout *domain.Payout) error {
	query := `
		INSERT INTO payouts (id, deposit_id, recipient, principal, interest, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query, payout.ID, payout.DepositID, payout.Recipient, payout.Principal, payout.Interest, payout.CreatedAt)
	if err != nil {
		zap.L().Error("can't save payout", zap.String("deposit_id", payout.DepositID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindPending(ctx context.Context, limit uint32) ([]domain.Payout, error) {
	query := `
		SELECT id, deposit_id, recipient, principal, interest, created_at, dispatched_at
		FROM payouts
		WHERE dispatched_at IS NULL
		ORDER BY created_at ASC
		LIMIT $1
	`
	return r.list(ctx, query, int(limit))
}

func (r *Repository) FindByRecipient(ctx context.Context, recipient string) ([]domain.Payout, error) {
	query := `
		SELECT id, deposit_id, recipient, principal, interest, created_at, dispatched_at
		FROM payouts
		WHERE recipient = $1
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, recipient)
}

func (r *Repository) MarkDispatched(ctx context.Context, id string, at time.Time) error {
	query := `
		UPDATE payouts
		SET dispatched_at = $2
		WHERE id = $1 AND dispatched_at IS NULL
	`
	if _, err := r.db.Exec(ctx, query, id, at); err != nil {
		zap.L().Error("can't mark payout dispatched", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) list(ctx context.Context, query string, arg any) ([]domain.Payout, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		zap.L().Error("can't fetch payouts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payouts []domain.Payout
	for rows.Next() {
		var p domain.Payout
		if err := rows.Scan(&p.ID, &p.DepositID, &p.Recipient, &p.Principal, &p.Interest, &p.CreatedAt, &p.DispatchedAt); err != nil {
			zap.L().Error("can't scan payout row", zap.Error(err))
			return nil, err
		}
		payouts = append(payouts, p)
	}
	return payouts, nil
}
