package tierrepo

import (
	"context"

	"github.com/GlebRadaev/fundslock/internal/domain"
	"github.com/GlebRadaev/fundslock/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// List reads the active table in a single statement, so a concurrent Replace
// is seen either entirely or not at all.
func (r *Repository) List(ctx context.Context) ([]domain.Tier, error) {
	query := `
		SELECT threshold_seconds, rate_bps
		FROM interest_tiers
		ORDER BY threshold_seconds ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get interest tiers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	tiers := make([]domain.Tier, 0)
	for rows.Next() {
		var tier domain.Tier
		if err := rows.Scan(&tier.Threshold, &tier.RateBps); err != nil {
			zap.L().Error("can't scan interest tier", zap.Error(err))
			return nil, err
		}
		tiers = append(tiers, tier)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate interest tiers", zap.Error(err))
		return nil, err
	}
	return tiers, nil
}

// Replace swaps the whole table in one transaction.
func (r *Repository) Replace(ctx context.Context, tiers []domain.Tier) error {
	thresholds := make([]int64, len(tiers))
	rates := make([]int64, len(tiers))
	for i, tier := range tiers {
		thresholds[i] = tier.Threshold
		rates[i] = tier.RateBps
	}

	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, `DELETE FROM interest_tiers`); err != nil {
			zap.L().Error("can't clear interest tiers", zap.Error(err))
			return err
		}
		query := `
			INSERT INTO interest_tiers (threshold_seconds, rate_bps)
			SELECT * FROM unnest($1::bigint[], $2::bigint[])
		`
		if _, err := r.db.Exec(ctx, query, thresholds, rates); err != nil {
			zap.L().Error("can't save interest tiers", zap.Error(err))
			return err
		}
		return nil
	})
}
