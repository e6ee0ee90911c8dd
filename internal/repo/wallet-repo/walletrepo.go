package walletrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/avdeyev/paymate/internal/domain"
	"github.com/avdeyev/paymate/internal/pg"
	"go.uber.org/zap"
)

// ErrInsufficientFunds is returned when a debit would drive the balance
// negative. The guard is evaluated by the store together with the write,
// never by a separate read.
var ErrInsufficientFunds = errors.New("insufficient funds")

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetOrCreate(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        INSERT INTO wallets (user_id)
        VALUES ($1)
        ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
        RETURNING id, user_id, balance, created_at
    `
	row := r.db.QueryRow(ctx, query, userID)
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.UserID, &wallet.Balance, &wallet.CreatedAt)
	if err != nil {
		zap.L().Error("failed to get or create wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        SELECT id, user_id, balance, created_at
        FROM wallets
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.UserID, &wallet.Balance, &wallet.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

// AdjustBalance applies delta as a single conditional update. The non-negative
// invariant holds even when two debits race: the losing statement matches no
// row and nothing is written.
func (r *Repository) AdjustBalance(ctx context.Context, walletID int, delta int64) (int64, error) {
	query := `
        UPDATE wallets
        SET balance = balance + $1
        WHERE id = $2 AND balance + $1 >= 0
        RETURNING balance
    `
	var balance int64
	err := r.db.QueryRow(ctx, query, delta, walletID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if delta < 0 {
				return 0, ErrInsufficientFunds
			}
			return 0, err
		}
		zap.L().Error("failed to adjust wallet balance", zap.Error(err))
		return 0, err
	}
	return balance, nil
}
