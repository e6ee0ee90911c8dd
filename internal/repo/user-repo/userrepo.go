package userrepo

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

// FindByLogin resolves a handle to its account. Returns nil, nil when the
// handle is unknown.
func (r *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	query := `
        SELECT id, login, password_hash, created_at
        FROM users
        WHERE login = $1
    `
	row := r.db.QueryRow(ctx, query, login)

	var user domain.User
	err := row.Scan(&user.ID, &user.Login, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	query := `
        SELECT id, login, password_hash, created_at
        FROM users
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var user domain.User
	err := row.Scan(&user.ID, &user.Login, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (login, password_hash)
        VALUES ($1, $2)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, user.Login, user.PasswordHash).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}
	return user, nil
}
