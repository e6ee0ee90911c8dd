package rewardrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/avdeyev/paymate/internal/domain"
	"github.com/avdeyev/paymate/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) GetProfile(ctx context.Context, userID int) (*domain.RewardProfile, error) {
	query := `
        SELECT id, user_id, experience, level
        FROM reward_profiles
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var profile domain.RewardProfile
	err := row.Scan(&profile.ID, &profile.UserID, &profile.Experience, &profile.Level)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get reward profile", zap.Error(err))
		return nil, err
	}
	return &profile, nil
}

// ApplyGrant credits points for one settlement. The grant row carries a unique
// settlement id, so a redelivered settlement inserts nothing and the
// experience stays as if the event had been delivered once. Returns the
// resulting experience and whether this delivery was the first one.
func (r *Repository) ApplyGrant(ctx context.Context, userID int, points int64, settlementID string) (int64, bool, error) {
	var experience int64
	granted := false

	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		insertProfile := `
			INSERT INTO reward_profiles (user_id, experience, level)
			VALUES ($1, 0, 0)
			ON CONFLICT (user_id) DO NOTHING
		`
		if _, err := r.db.Exec(ctx, insertProfile, userID); err != nil {
			zap.L().Error("failed to create reward profile", zap.Error(err))
			return err
		}

		insertGrant := `
			INSERT INTO reward_grants (settlement_id, user_id, points)
			VALUES ($1, $2, $3)
			ON CONFLICT (settlement_id) DO NOTHING
		`
		tag, err := r.db.Exec(ctx, insertGrant, settlementID, userID, points)
		if err != nil {
			zap.L().Error("failed to insert reward grant", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return nil
		}
		granted = true

		addExperience := `
			UPDATE reward_profiles
			SET experience = experience + $1
			WHERE user_id = $2
			RETURNING experience
		`
		if err := r.db.QueryRow(ctx, addExperience, points, userID).Scan(&experience); err != nil {
			zap.L().Error("failed to add experience", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return 0, false, err
	}
	return experience, granted, nil
}

func (r *Repository) SetLevel(ctx context.Context, userID int, level int) error {
	query := `
        UPDATE reward_profiles
        SET level = $1
        WHERE user_id = $2
    `
	if _, err := r.db.Exec(ctx, query, level, userID); err != nil {
		zap.L().Error("failed to set reward level", zap.Error(err))
		return err
	}
	return nil
}
