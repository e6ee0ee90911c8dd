package service

import (
	"github.com/avdeyev/paymate/internal/handlers/auth"
	"github.com/avdeyev/paymate/internal/handlers/request"
	"github.com/avdeyev/paymate/internal/handlers/wallet"

	pkgauth "github.com/avdeyev/paymate/pkg/auth"

	"github.com/avdeyev/paymate/internal/pg"
	"github.com/avdeyev/paymate/internal/repo"
	"github.com/avdeyev/paymate/internal/reward"
	authservice "github.com/avdeyev/paymate/internal/service/authservice"
	requestservice "github.com/avdeyev/paymate/internal/service/requestservice"
	transferservice "github.com/avdeyev/paymate/internal/service/transferservice"
	walletservice "github.com/avdeyev/paymate/internal/service/walletservice"
)

type Services struct {
	AuthService     auth.Service
	WalletService   wallet.Service
	TransferService *transferservice.Service
	RequestService  request.Service
	RewardService   *reward.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, rewards *reward.Service) *Services {
	walletService := walletservice.New(repo.WalletRepo, repo.TransactionRepo)
	transferService := transferservice.New(repo.UserRepo, repo.WalletRepo, repo.TransactionRepo, txManager, rewards)
	requestService := requestservice.New(repo.RequestRepo, repo.UserRepo, transferService, txManager)
	authService := authservice.New(repo.UserRepo, walletService, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:     authService,
		WalletService:   walletService,
		TransferService: transferService,
		RequestService:  requestService,
		RewardService:   rewards,
	}
}
