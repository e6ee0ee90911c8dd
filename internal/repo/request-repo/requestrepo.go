package requestrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

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

func (r *Repository) Create(ctx context.Context, req *domain.MoneyRequest) (*domain.MoneyRequest, error) {
	query := `
		INSERT INTO money_requests (requester_id, payer_id, amount, description, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		req.RequesterID, req.PayerID, req.Amount, req.Description, req.Status, req.CreatedAt,
	).Scan(&req.ID)
	if err != nil {
		zap.L().Error("can't save money request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.MoneyRequest, error) {
	query := `
        SELECT id, requester_id, payer_id, amount, description, status, created_at
        FROM money_requests
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var req domain.MoneyRequest
	err := row.Scan(&req.ID, &req.RequesterID, &req.PayerID, &req.Amount, &req.Description, &req.Status, &req.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find money request", zap.Error(err))
		return nil, err
	}
	return &req, nil
}

// Resolve flips a pending request into a terminal status. The pending guard is
// part of the statement, so a request can never be resolved twice even when
// two responses race. Returns false when the request was not pending anymore.
func (r *Repository) Resolve(ctx context.Context, id int, status string) (bool, error) {
	query := `
        UPDATE money_requests
        SET status = $1
        WHERE id = $2 AND status = 'pending'
    `
	tag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		zap.L().Error("failed to resolve money request", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) ListPendingByPayer(ctx context.Context, payerID int) ([]domain.MoneyRequest, error) {
	query := `
        SELECT id, requester_id, payer_id, amount, description, status, created_at
        FROM money_requests
        WHERE payer_id = $1 AND status = 'pending'
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, payerID)
	if err != nil {
		zap.L().Error("failed to fetch money requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.MoneyRequest
	for rows.Next() {
		var req domain.MoneyRequest
		err := rows.Scan(&req.ID, &req.RequesterID, &req.PayerID, &req.Amount, &req.Description, &req.Status, &req.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan money request row", zap.Error(err))
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}
