package walletservice

import (
	"context"

	"github.com/avdeyev/paymate/internal/domain"
	"go.uber.org/zap"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type WalletRepo interface {
	GetOrCreate(ctx context.Context, userID int) (*domain.Wallet, error)
}

type TransactionRepo interface {
	ListByWallet(ctx context.Context, walletID int, limit, offset int) ([]domain.Transaction, error)
}

type Service struct {
	walletRepo WalletRepo
	ledger     TransactionRepo
}

func New(walletRepo WalletRepo, ledger TransactionRepo) *Service {
	return &Service{
		walletRepo: walletRepo,
		ledger:     ledger,
	}
}

// GetWallet returns the user's wallet, creating an empty one on first access.
func (s *Service) GetWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetOrCreate(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// CreateWallet eagerly provisions the wallet at registration time.
func (s *Service) CreateWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetOrCreate(ctx, userID)
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// ListTransactions returns the user's ledger history, most recent first.
func (s *Service) ListTransactions(ctx context.Context, userID, page, limit int) ([]domain.Transaction, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	wallet, err := s.walletRepo.GetOrCreate(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}

	txns, err := s.ledger.ListByWallet(ctx, wallet.ID, limit, (page-1)*limit)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return txns, nil
}
