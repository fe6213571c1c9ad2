package vaultservice

import (
	"context"
	"errors"
	"testing"

	"github.com/GlebRadaev/fundslock/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

const year = int64(365 * 24 * 60 * 60)

func NewMock(t *testing.T) (*Service, *MockTierRepo, *MockVaultRepo) {
	ctrl := gomock.NewController(t)
	tierRepo := NewMockTierRepo(ctrl)
	vaultRepo := NewMockVaultRepo(ctrl)
	service := New(tierRepo, vaultRepo)
	return service, tierRepo, vaultRepo
}

func TestInit(t *testing.T) {
	tests := []struct {
		name          string
		configured    string
		prepareMock   func(vaultRepo *MockVaultRepo)
		expectedAdmin string
		wantErr       bool
	}{
		{
			name:       "First start records the configured administrator",
			configured: "admin",
			prepareMock: func(vaultRepo *MockVaultRepo) {
				vaultRepo.EXPECT().Init(gomock.Any(), "admin").Return(&domain.Vault{Administrator: "admin", Balance: decimal.Zero}, nil)
			},
			expectedAdmin: "admin",
		},
		{
			name:       "Stored administrator wins",
			configured: "someone-else",
			prepareMock: func(vaultRepo *MockVaultRepo) {
				vaultRepo.EXPECT().Init(gomock.Any(), "someone-else").Return(&domain.Vault{Administrator: "admin", Balance: decimal.Zero}, nil)
			},
			expectedAdmin: "admin",
		},
		{
			name:       "Repository error",
			configured: "admin",
			prepareMock: func(vaultRepo *MockVaultRepo) {
				vaultRepo.EXPECT().Init(gomock.Any(), "admin").Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, vaultRepo := NewMock(t)
			tt.prepareMock(vaultRepo)

			vault, err := service.Init(context.Background(), tt.configured)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, vault)
				assert.Empty(t, service.Administrator())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAdmin, service.Administrator())
		})
	}
}

func TestSetInterestTiers(t *testing.T) {
	tests := []struct {
		name        string
		caller      string
		durations   []int64
		rates       []int64
		prepareMock func(tierRepo *MockTierRepo)
		expected    []domain.Tier
		expectedErr error
		anyErr      bool
	}{
		{
			name:      "Administrator replaces the table",
			caller:    "admin",
			durations: []int64{3 * year, year, 2 * year},
			rates:     []int64{1000, 500, 700},
			prepareMock: func(tierRepo *MockTierRepo) {
				tierRepo.EXPECT().Replace(gomock.Any(), []domain.Tier{
					{Threshold: year, RateBps: 500},
					{Threshold: 2 * year, RateBps: 700},
					{Threshold: 3 * year, RateBps: 1000},
				}).Return(nil)
			},
			expected: []domain.Tier{
				{Threshold: year, RateBps: 500},
				{Threshold: 2 * year, RateBps: 700},
				{Threshold: 3 * year, RateBps: 1000},
			},
		},
		{
			name:        "Other callers are refused",
			caller:      "alice",
			durations:   []int64{year},
			rates:       []int64{500},
			prepareMock: func(tierRepo *MockTierRepo) {},
			expectedErr: domain.ErrNotAdministrator,
		},
		{
			name:        "Authorization is checked before validation",
			caller:      "alice",
			durations:   []int64{year, year},
			rates:       []int64{500},
			prepareMock: func(tierRepo *MockTierRepo) {},
			expectedErr: domain.ErrNotAdministrator,
		},
		{
			name:        "Length mismatch",
			caller:      "admin",
			durations:   []int64{year, 2 * year},
			rates:       []int64{500},
			prepareMock: func(tierRepo *MockTierRepo) {},
			expectedErr: domain.ErrInvalidTierConfiguration,
		},
		{
			name:        "Duplicate thresholds",
			caller:      "admin",
			durations:   []int64{year, year},
			rates:       []int64{500, 700},
			prepareMock: func(tierRepo *MockTierRepo) {},
			expectedErr: domain.ErrInvalidTierConfiguration,
		},
		{
			name:      "Repository error",
			caller:    "admin",
			durations: []int64{year},
			rates:     []int64{500},
			prepareMock: func(tierRepo *MockTierRepo) {
				tierRepo.EXPECT().Replace(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, tierRepo, _ := NewMock(t)
			service.administrator = "admin"
			tt.prepareMock(tierRepo)

			tiers, err := service.SetInterestTiers(context.Background(), tt.caller, tt.durations, tt.rates)
			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, tiers)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.expected, tiers)
			}
		})
	}
}

func TestSetInterestTiers_BeforeInit(t *testing.T) {
	service, _, _ := NewMock(t)

	_, err := service.SetInterestTiers(context.Background(), "", []int64{year}, []int64{500})
	assert.ErrorIs(t, err, domain.ErrNotAdministrator)
	assert.Equal(t, domain.KindAuthorization, domain.KindOf(err))
}

func TestGetInterestTiers(t *testing.T) {
	service, tierRepo, _ := NewMock(t)

	tierRepo.EXPECT().List(gomock.Any()).Return([]domain.Tier{
		{Threshold: 2 * year, RateBps: 700},
		{Threshold: year, RateBps: 500},
	}, nil)
	tiers, err := service.GetInterestTiers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Tier{{Threshold: year, RateBps: 500}, {Threshold: 2 * year, RateBps: 700}}, tiers)

	tierRepo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db error"))
	_, err = service.GetInterestTiers(context.Background())
	assert.Error(t, err)
}

func TestFund(t *testing.T) {
	funded := &domain.Vault{Administrator: "admin", Balance: decimal.NewFromInt(100)}

	tests := []struct {
		name        string
		value       decimal.Decimal
		prepareMock func(vaultRepo *MockVaultRepo)
		expectedErr error
		anyErr      bool
	}{
		{
			name:  "Credit the vault",
			value: decimal.NewFromInt(100),
			prepareMock: func(vaultRepo *MockVaultRepo) {
				vaultRepo.EXPECT().Credit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, value decimal.Decimal) error {
					assert.Equal(t, "100", value.String())
					return nil
				})
				vaultRepo.EXPECT().Get(gomock.Any()).Return(funded, nil)
			},
		},
		{
			name:        "Zero value",
			value:       decimal.Zero,
			prepareMock: func(vaultRepo *MockVaultRepo) {},
			expectedErr: domain.ErrZeroAmount,
		},
		{
			name:        "Negative value",
			value:       decimal.NewFromInt(-1),
			prepareMock: func(vaultRepo *MockVaultRepo) {},
			expectedErr: domain.ErrInvalidAmount,
		},
		{
			name:  "Repository error",
			value: decimal.NewFromInt(1),
			prepareMock: func(vaultRepo *MockVaultRepo) {
				vaultRepo.EXPECT().Credit(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, vaultRepo := NewMock(t)
			tt.prepareMock(vaultRepo)

			vault, err := service.Fund(context.Background(), "bob", tt.value)
			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, vault)
			case tt.anyErr:
				assert.Error(t, err)
				assert.Nil(t, vault)
			default:
				require.NoError(t, err)
				assert.Equal(t, funded, vault)
			}
		})
	}
}

func TestGetVault(t *testing.T) {
	service, _, vaultRepo := NewMock(t)
	expected := &domain.Vault{Administrator: "admin", Balance: decimal.NewFromInt(7)}

	vaultRepo.EXPECT().Get(gomock.Any()).Return(expected, nil)
	vault, err := service.GetVault(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expected, vault)

	vaultRepo.EXPECT().Get(gomock.Any()).Return(nil, errors.New("db error"))
	vault, err = service.GetVault(context.Background())
	assert.Error(t, err)
	assert.Nil(t, vault)
}
