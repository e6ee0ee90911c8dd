package service

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/avdeyev/paymate/internal/pg"
	"github.com/avdeyev/paymate/internal/repo"
	"github.com/avdeyev/paymate/internal/reward"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	txManager := pg.NewMockTXManager(ctrl)
	repos := repo.New(mockDB, txManager)
	rewards := reward.New(repos.RewardRepo, rdb, 1)

	services := New(repos, txManager, rewards)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.WalletService)
	assert.NotNil(t, services.TransferService)
	assert.NotNil(t, services.RequestService)
	assert.NotNil(t, services.RewardService)
}
