package depositrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

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

func (r *Repository) NextNonce(ctx context.Context) (int64, error) {
	var nonce int64
	err := r.db.QueryRow(ctx, `SELECT nextval('deposit_nonce_seq')`).Scan(&nonce)
	if err != nil {
		zap.L().Error("can't allocate deposit nonce", zap.Error(err))
		return 0, err
	}
	return nonce, nil
}

func (r *Repository) Create(ctx context.Context, deposit *domain.Deposit) error {
	query := `
		INSERT INTO deposits (id, owner, amount, created_at, lock_duration, claimed)
		VALUES ($1, $2, $3, $4, $5, FALSE)
	`
	_, err := r.db.Exec(ctx, query, deposit.ID, deposit.Owner, deposit.Amount, deposit.CreatedAt, deposit.LockDuration)
	if err != nil {
		zap.L().Error("can't save deposit", zap.String("id", deposit.ID), zap.Error(err))
		return err
	}
	return nil
}

// GetByID returns nil, nil when the deposit does not exist.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Deposit, error) {
	query := `
		SELECT id, owner, amount, created_at, lock_duration, claimed, claimed_at
		FROM deposits
		WHERE id = $1
	`
	return r.scanOne(ctx, query, id)
}

// GetByIDForUpdate locks the row until the surrounding transaction ends, so
// concurrent withdrawals of the same deposit are serialised.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id string) (*domain.Deposit, error) {
	query := `
		SELECT id, owner, amount, created_at, lock_duration, claimed, claimed_at
		FROM deposits
		WHERE id = $1
		FOR UPDATE
	`
	return r.scanOne(ctx, query, id)
}

func (r *Repository) scanOne(ctx context.Context, query, id string) (*domain.Deposit, error) {
	var d domain.Deposit
	err := r.db.QueryRow(ctx, query, id).Scan(&d.ID, &d.Owner, &d.Amount, &d.CreatedAt, &d.LockDuration, &d.Claimed, &d.ClaimedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get deposit", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return &d, nil
}

// IDsByOwner lists the owner's deposit ids in insertion order.
func (r *Repository) IDsByOwner(ctx context.Context, owner string) ([]string, error) {
	query := `
		SELECT id
		FROM deposits
		WHERE owner = $1
		ORDER BY seq ASC
	`
	rows, err := r.db.Query(ctx, query, owner)
	if err != nil {
		zap.L().Error("can't get deposit ids", zap.String("owner", owner), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan deposit id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate deposit ids", zap.Error(err))
		return nil, err
	}
	return ids, nil
}

// MarkClaimed flips claimed only if it is still false. Losing the race is
// reported as domain.ErrAlreadyWithdrawn.
func (r *Repository) MarkClaimed(ctx context.Context, id string, claimedAt int64) error {
	query := `
		UPDATE deposits
		SET claimed = TRUE, claimed_at = $2
		WHERE id = $1 AND claimed = FALSE
	`
	tag, err := r.db.Exec(ctx, query, id, claimedAt)
	if err != nil {
		zap.L().Error("can't mark deposit claimed", zap.String("id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrAlreadyWithdrawn, id)
	}
	return nil
}
