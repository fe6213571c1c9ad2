package tierrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/GlebRadaev/fundslock/internal/domain"
	"github.com/GlebRadaev/fundslock/internal/pg"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB, mockTxManager), mockDB, mockTxManager
}

func TestRepository_List(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.Tier
	}{
		{
			name: "Returns tiers ordered by threshold",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT threshold_seconds, rate_bps FROM interest_tiers ORDER BY threshold_seconds ASC`)).
					WillReturnRows(pgxmock.NewRows([]string{"threshold_seconds", "rate_bps"}).
						AddRow(int64(100), int64(500)).
						AddRow(int64(200), int64(700)))
			},
			result: []domain.Tier{{Threshold: 100, RateBps: 500}, {Threshold: 200, RateBps: 700}},
		},
		{
			name: "No tiers configured",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM interest_tiers`)).
					WillReturnRows(pgxmock.NewRows([]string{"threshold_seconds", "rate_bps"}))
			},
			result: []domain.Tier{},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM interest_tiers`)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.List(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.result, result)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Replace(t *testing.T) {
	repo, mock, tx := NewMock(t)
	tiers := []domain.Tier{{Threshold: 100, RateBps: 500}, {Threshold: 200, RateBps: 700}}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Replaces whole table",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM interest_tiers`)).
						WillReturnResult(pgxmock.NewResult("DELETE", 3))
					mock.ExpectExec(regexp.QuoteMeta(`
						INSERT INTO interest_tiers (threshold_seconds, rate_bps)
						SELECT * FROM unnest($1::bigint[], $2::bigint[])`)).
						WithArgs([]int64{100, 200}, []int64{500, 700}).
						WillReturnResult(pgxmock.NewResult("INSERT", 2))
					return fn(ctx)
				})
			},
		},
		{
			name: "Insert failure aborts",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM interest_tiers`)).
						WillReturnResult(pgxmock.NewResult("DELETE", 2))
					mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO interest_tiers`)).
						WithArgs([]int64{100, 200}, []int64{500, 700}).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
		{
			name: "Delete failure aborts before insert",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM interest_tiers`)).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Replace(context.Background(), tiers)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
