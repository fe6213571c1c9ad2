package payoutrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/fundslock/internal/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var payoutColumns = []string{"id", "deposit_id", "recipient", "principal", "interest", "created_at", "dispatched_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	payout := &domain.Payout{
		ID:        "4c6f6e67-0000-4000-8000-000000000001",
		DepositID: "0x01",
		Recipient: "alice",
		Principal: decimal.NewFromInt(1000),
		Interest:  decimal.NewFromInt(70),
		CreatedAt: createdAt,
	}

	mock.ExpectExec(regexp.QuoteMeta(`
		INSERT INTO payouts (id, deposit_id, recipient, principal, interest, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`)).
		WithArgs(payout.ID, "0x01", "alice", payout.Principal, payout.Interest, createdAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	assert.NoError(t, repo.Create(context.Background(), payout))

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO payouts`)).
		WithArgs(payout.ID, "0x01", "alice", payout.Principal, payout.Interest, createdAt).
		WillReturnError(errors.New("duplicate key value violates unique constraint"))
	assert.Error(t, repo.Create(context.Background(), payout))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindPending(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	principal := decimal.NewFromInt(1000)
	interest := decimal.NewFromInt(70)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.Payout
	}{
		{
			name: "Pending payouts",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM payouts WHERE dispatched_at IS NULL ORDER BY created_at ASC LIMIT $1`)).
					WithArgs(10).
					WillReturnRows(pgxmock.NewRows(payoutColumns).AddRow("p1", "0x01", "alice", principal, interest, createdAt, nil))
			},
			result: []domain.Payout{{ID: "p1", DepositID: "0x01", Recipient: "alice", Principal: principal, Interest: interest, CreatedAt: createdAt}},
		},
		{
			name: "Nothing pending",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM payouts WHERE dispatched_at IS NULL`)).
					WithArgs(10).
					WillReturnRows(pgxmock.NewRows(payoutColumns))
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM payouts WHERE dispatched_at IS NULL`)).
					WithArgs(10).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindPending(context.Background(), 10)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.result, result)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByRecipient(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	dispatchedAt := createdAt.Add(time.Minute)
	principal := decimal.NewFromInt(1000)
	interest := decimal.NewFromInt(0)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM payouts WHERE recipient = $1 ORDER BY created_at DESC`)).
		WithArgs("alice").
		WillReturnRows(pgxmock.NewRows(payoutColumns).AddRow("p1", "0x01", "alice", principal, interest, createdAt, &dispatchedAt))

	result, err := repo.FindByRecipient(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, &dispatchedAt, result[0].DispatchedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkDispatched(t *testing.T) {
	repo, mock := NewMock(t)
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE payouts SET dispatched_at = $2 WHERE id = $1 AND dispatched_at IS NULL`)).
		WithArgs("p1", at).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.MarkDispatched(context.Background(), "p1", at))

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE payouts`)).
		WithArgs("p1", at).
		WillReturnError(errors.New("database error"))
	assert.Error(t, repo.MarkDispatched(context.Background(), "p1", at))

	assert.NoError(t, mock.ExpectationsWereMet())
}
