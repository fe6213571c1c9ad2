package repo

import (
	"testing"

	"github.com/GlebRadaev/fundslock/internal/pg"
	depositrepo "github.com/GlebRadaev/fundslock/internal/repo/deposit-repo"
	payoutrepo "github.com/GlebRadaev/fundslock/internal/repo/payout-repo"
	tierrepo "github.com/GlebRadaev/fundslock/internal/repo/tier-repo"
	userrepo "github.com/GlebRadaev/fundslock/internal/repo/user-repo"
	vaultrepo "github.com/GlebRadaev/fundslock/internal/repo/vault-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.TxManager)
	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &depositrepo.Repository{}, repo.DepositRepo)
	assert.IsType(t, &tierrepo.Repository{}, repo.TierRepo)
	assert.IsType(t, &vaultrepo.Repository{}, repo.VaultRepo)
	assert.IsType(t, &payoutrepo.Repository{}, repo.PayoutRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
