package vaultrepo

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/fundslock/internal/domain"
	"github.com/GlebRadaev/fundslock/internal/pg"
	"github.com/shopspring/decimal"
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

// Init creates the vault row on first start. An existing vault keeps the
// administrator it was created with.
func (r *Repository) Init(ctx context.Context, administrator string) (*domain.Vault, error) {
	insert := `
		INSERT INTO vault (id, administrator, balance)
		VALUES (1, $1, 0)
		ON CONFLICT (id) DO NOTHING
	`
	if _, err := r.db.Exec(ctx, insert, administrator); err != nil {
		zap.L().Error("can't create vault", zap.Error(err))
		return nil, err
	}
	return r.Get(ctx)
}

func (r *Repository) Get(ctx context.Context) (*domain.Vault, error) {
	query := `
		SELECT administrator, balance, created_at
		FROM vault
		WHERE id = 1
	`
	var v domain.Vault
	if err := r.db.QueryRow(ctx, query).Scan(&v.Administrator, &v.Balance, &v.CreatedAt); err != nil {
		zap.L().Error("can't get vault", zap.Error(err))
		return nil, err
	}
	return &v, nil
}

func (r *Repository) Credit(ctx context.Context, value decimal.Decimal) error {
	query := `
		UPDATE vault
		SET balance = balance + $1
		WHERE id = 1
	`
	if _, err := r.db.Exec(ctx, query, value); err != nil {
		zap.L().Error("can't credit vault", zap.Error(err))
		return err
	}
	return nil
}

// Debit takes value out of the vault, failing with
// domain.ErrInsufficientVaultBalance instead of going negative.
func (r *Repository) Debit(ctx context.Context, value decimal.Decimal) error {
	query := `
		UPDATE vault
		SET balance = balance - $1
		WHERE id = 1 AND balance >= $1
	`
	tag, err := r.db.Exec(ctx, query, value)
	if err != nil {
		zap.L().Error("can't debit vault", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: need %s", domain.ErrInsufficientVaultBalance, value)
	}
	return nil
}
