package repo

import (
	"github.com/avdeyev/paymate/internal/pg"
	requestrepo "github.com/avdeyev/paymate/internal/repo/request-repo"
	rewardrepo "github.com/avdeyev/paymate/internal/repo/reward-repo"
	transactionrepo "github.com/avdeyev/paymate/internal/repo/transaction-repo"
	userrepo "github.com/avdeyev/paymate/internal/repo/user-repo"
	walletrepo "github.com/avdeyev/paymate/internal/repo/wallet-repo"
)

type Repositories struct {
	UserRepo        *userrepo.Repository
	WalletRepo      *walletrepo.Repository
	TransactionRepo *transactionrepo.Repository
	RequestRepo     *requestrepo.Repository
	RewardRepo      *rewardrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		WalletRepo:      walletrepo.New(conn),
		TransactionRepo: transactionrepo.New(conn),
		RequestRepo:     requestrepo.New(conn),
		RewardRepo:      rewardrepo.New(conn, txManager),
	}
}
