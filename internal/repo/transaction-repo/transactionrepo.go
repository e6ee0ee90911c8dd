package transactionrepo

import (
	"context"

	"github.com/avdeyev/paymate/internal/domain"
	"github.com/avdeyev/paymate/internal/pg"
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

// Append inserts an immutable ledger entry. There is no update or delete.
func (r *Repository) Append(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (kind, amount, sender_wallet_id, receiver_wallet_id, description, settlement_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		txn.Kind, txn.Amount, txn.SenderWalletID, txn.ReceiverWalletID,
		txn.Description, txn.SettlementID, txn.CreatedAt,
	).Scan(&txn.ID)
	if err != nil {
		zap.L().Error("can't append ledger entry", zap.Error(err))
		return nil, err
	}
	return txn, nil
}

func (r *Repository) ListByWallet(ctx context.Context, walletID int, limit, offset int) ([]domain.Transaction, error) {
	query := `
        SELECT id, kind, amount, sender_wallet_id, receiver_wallet_id, description, settlement_id, created_at
        FROM transactions
        WHERE sender_wallet_id = $1 OR receiver_wallet_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, query, walletID, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var txn domain.Transaction
		err := rows.Scan(&txn.ID, &txn.Kind, &txn.Amount, &txn.SenderWalletID, &txn.ReceiverWalletID, &txn.Description, &txn.SettlementID, &txn.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		txns = append(txns, txn)
	}

	return txns, nil
}
