package walletservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/avdeyev/paymate/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockWalletRepo, *MockTransactionRepo) {
	ctrl := gomock.NewController(t)
	walletRepo := NewMockWalletRepo(ctrl)
	ledger := NewMockTransactionRepo(ctrl)
	service := New(walletRepo, ledger)
	defer ctrl.Finish()
	return service, walletRepo, ledger
}

func TestGetWallet(t *testing.T) {
	service, walletRepo, _ := NewMock(t)

	tests := []struct {
		name           string
		userID         int
		prepareMock    func()
		expectedWallet *domain.Wallet
		expectedError  error
	}{
		{
			name:   "Retrieve wallet successfully",
			userID: 1,
			prepareMock: func() {
				walletRepo.EXPECT().GetOrCreate(gomock.Any(), 1).Return(&domain.Wallet{ID: 10, UserID: 1, Balance: 500}, nil)
			},
			expectedWallet: &domain.Wallet{ID: 10, UserID: 1, Balance: 500},
		},
		{
			name:   "Error retrieving wallet",
			userID: 1,
			prepareMock: func() {
				walletRepo.EXPECT().GetOrCreate(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			wallet, err := service.GetWallet(context.Background(), tt.userID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedWallet, wallet)
			}
		})
	}
}

func TestCreateWallet(t *testing.T) {
	service, walletRepo, _ := NewMock(t)

	tests := []struct {
		name           string
		userID         int
		prepareMock    func()
		expectedWallet *domain.Wallet
		expectedError  error
	}{
		{
			name:   "Provision wallet at registration",
			userID: 1,
			prepareMock: func() {
				walletRepo.EXPECT().GetOrCreate(gomock.Any(), 1).Return(&domain.Wallet{ID: 10, UserID: 1, Balance: 0}, nil)
			},
			expectedWallet: &domain.Wallet{ID: 10, UserID: 1, Balance: 0},
		},
		{
			name:   "Error provisioning wallet",
			userID: 1,
			prepareMock: func() {
				walletRepo.EXPECT().GetOrCreate(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			wallet, err := service.CreateWallet(context.Background(), tt.userID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedWallet, wallet)
			}
		})
	}
}

func TestListTransactions(t *testing.T) {
	service, walletRepo, ledger := NewMock(t)

	wallet := &domain.Wallet{ID: 10, UserID: 1}
	txns := []domain.Transaction{
		{ID: 2, Kind: domain.TransactionKindTransfer, Amount: 500},
		{ID: 1, Kind: domain.TransactionKindRecharge, Amount: 1000},
	}

	tests := []struct {
		name          string
		page          int
		limit         int
		prepareMock   func()
		expected      []domain.Transaction
		expectedError error
	}{
		{
			name:  "Defaults applied when page and limit are unset",
			page:  0,
			limit: 0,
			prepareMock: func() {
				walletRepo.EXPECT().GetOrCreate(gomock.Any(), 1).Return(wallet, nil)
				ledger.EXPECT().ListByWallet(gomock.Any(), 10, 20, 0).Return(txns, nil)
			},
			expected: txns,
		},
		{
			name:  "Second page offsets by page size",
			page:  2,
			limit: 10,
			prepareMock: func() {
				walletRepo.EXPECT().GetOrCreate(gomock.Any(), 1).Return(wallet, nil)
				ledger.EXPECT().ListByWallet(gomock.Any(), 10, 10, 10).Return(nil, nil)
			},
			expected: nil,
		},
		{
			name:  "Oversized limit is capped",
			page:  1,
			limit: 1000,
			prepareMock: func() {
				walletRepo.EXPECT().GetOrCreate(gomock.Any(), 1).Return(wallet, nil)
				ledger.EXPECT().ListByWallet(gomock.Any(), 10, 100, 0).Return(nil, nil)
			},
			expected: nil,
		},
		{
			name:  "Error fetching transactions",
			page:  1,
			limit: 20,
			prepareMock: func() {
				walletRepo.EXPECT().GetOrCreate(gomock.Any(), 1).Return(wallet, nil)
				ledger.EXPECT().ListByWallet(gomock.Any(), 10, 20, 0).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			result, err := service.ListTransactions(context.Background(), 1, tt.page, tt.limit)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}
