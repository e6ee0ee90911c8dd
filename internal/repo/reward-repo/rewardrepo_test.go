package rewardrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/avdeyev/paymate/internal/domain"
	"github.com/avdeyev/paymate/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func TestRepository_GetProfile(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT id, user_id, experience, level
        FROM reward_profiles
        WHERE user_id = $1
    `)

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		result    *domain.RewardProfile
	}{
		{
			name:   "Valid userID returns profile",
			userID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "experience", "level"}).
					AddRow(1, 1, int64(275), 2)
				mock.ExpectQuery(query).WithArgs(1).WillReturnRows(rows)
			},
			result: &domain.RewardProfile{ID: 1, UserID: 1, Experience: 275, Level: 2},
		},
		{
			name:   "No profile returns nil",
			userID: 99,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(99).WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:   "Database error",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetProfile(context.Background(), tt.userID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_ApplyGrant(t *testing.T) {
	repo, mock, tx := NewMock(t)

	insertProfile := regexp.QuoteMeta(`
				INSERT INTO reward_profiles (user_id, experience, level)
				VALUES ($1, 0, 0)
				ON CONFLICT (user_id) DO NOTHING
			`)
	insertGrant := regexp.QuoteMeta(`
				INSERT INTO reward_grants (settlement_id, user_id, points)
				VALUES ($1, $2, $3)
				ON CONFLICT (settlement_id) DO NOTHING
			`)
	addExperience := regexp.QuoteMeta(`
				UPDATE reward_profiles
				SET experience = experience + $1
				WHERE user_id = $2
				RETURNING experience
			`)

	settlementID := "6f1d2e14-0000-4000-8000-000000000001"

	tests := []struct {
		name           string
		mockSetup      func()
		expectErr      bool
		wantExperience int64
		wantGranted    bool
	}{
		{
			name: "First delivery credits experience",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
					mock.ExpectExec(insertProfile).
						WithArgs(1).
						WillReturnResult(pgxmock.NewResult("INSERT", 1))
					mock.ExpectExec(insertGrant).
						WithArgs(settlementID, 1, int64(25)).
						WillReturnResult(pgxmock.NewResult("INSERT", 1))
					mock.ExpectQuery(addExperience).
						WithArgs(int64(25), 1).
						WillReturnRows(pgxmock.NewRows([]string{"experience"}).AddRow(int64(125)))
					return fn(ctx)
				})
			},
			wantExperience: 125,
			wantGranted:    true,
		},
		{
			name: "Redelivered settlement credits nothing",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
					mock.ExpectExec(insertProfile).
						WithArgs(1).
						WillReturnResult(pgxmock.NewResult("INSERT", 0))
					mock.ExpectExec(insertGrant).
						WithArgs(settlementID, 1, int64(25)).
						WillReturnResult(pgxmock.NewResult("INSERT", 0))
					return fn(ctx)
				})
			},
			wantExperience: 0,
			wantGranted:    false,
		},
		{
			name: "Database error rolls the grant back",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
					mock.ExpectExec(insertProfile).
						WithArgs(1).
						WillReturnResult(pgxmock.NewResult("INSERT", 1))
					mock.ExpectExec(insertGrant).
						WithArgs(settlementID, 1, int64(25)).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			experience, granted, err := repo.ApplyGrant(context.Background(), 1, 25, settlementID)

			if tt.expectErr {
				assert.Error(t, err)
				assert.False(t, granted)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantExperience, experience)
				assert.Equal(t, tt.wantGranted, granted)
			}
		})
	}
}

func TestRepository_SetLevel(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := regexp.QuoteMeta(`
        UPDATE reward_profiles
        SET level = $1
        WHERE user_id = $2
    `)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Sets level",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(2, 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(2, 1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.SetLevel(context.Background(), 1, 2)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
