package transferservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avdeyev/paymate/internal/domain"
	"github.com/avdeyev/paymate/internal/pg"
	walletrepo "github.com/avdeyev/paymate/internal/repo/wallet-repo"
	"github.com/avdeyev/paymate/internal/reward"
)

type UserRepo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
}

type WalletRepo interface {
	GetOrCreate(ctx context.Context, userID int) (*domain.Wallet, error)
	AdjustBalance(ctx context.Context, walletID int, delta int64) (int64, error)
}

type TransactionRepo interface {
	Append(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
}

type RewardDispatcher interface {
	Settle(s reward.Settlement)
}

var (
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrSelfTransfer      = errors.New("sender and receiver wallets are the same")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrRecipientNotFound = errors.New("recipient not found")
)

type Service struct {
	userRepo  UserRepo
	wallets   WalletRepo
	ledger    TransactionRepo
	txManager pg.TXManager
	rewards   RewardDispatcher
}

func New(userRepo UserRepo, wallets WalletRepo, ledger TransactionRepo, txManager pg.TXManager, rewards RewardDispatcher) *Service {
	return &Service{
		userRepo:  userRepo,
		wallets:   wallets,
		ledger:    ledger,
		txManager: txManager,
		rewards:   rewards,
	}
}

// Transfer moves amount from the sender's wallet to the wallet of the user
// behind receiverLogin. The debit, the credit and the ledger entry commit or
// roll back as one storage transaction.
func (s *Service) Transfer(ctx context.Context, senderID int, receiverLogin string, amount int64, description string) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	receiver, err := s.userRepo.FindByLogin(ctx, receiverLogin)
	if err != nil {
		zap.L().Error("failed to resolve receiver", zap.Error(err))
		return nil, err
	}
	if receiver == nil {
		return nil, ErrRecipientNotFound
	}

	senderWallet, err := s.wallets.GetOrCreate(ctx, senderID)
	if err != nil {
		return nil, err
	}
	receiverWallet, err := s.wallets.GetOrCreate(ctx, receiver.ID)
	if err != nil {
		return nil, err
	}
	if senderWallet.ID == receiverWallet.ID {
		return nil, ErrSelfTransfer
	}

	txn := &domain.Transaction{
		Kind:             domain.TransactionKindTransfer,
		Amount:           amount,
		SenderWalletID:   &senderWallet.ID,
		ReceiverWalletID: &receiverWallet.ID,
		Description:      description,
		SettlementID:     uuid.NewString(),
		CreatedAt:        time.Now(),
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		// Row updates always run in ascending wallet id order so two
		// transfers touching the same pair in opposite directions acquire
		// their row locks in the same order.
		adjustments := [2]struct {
			walletID int
			delta    int64
		}{
			{senderWallet.ID, -amount},
			{receiverWallet.ID, amount},
		}
		if adjustments[1].walletID < adjustments[0].walletID {
			adjustments[0], adjustments[1] = adjustments[1], adjustments[0]
		}

		for _, adj := range adjustments {
			if _, err := s.wallets.AdjustBalance(ctx, adj.walletID, adj.delta); err != nil {
				if errors.Is(err, walletrepo.ErrInsufficientFunds) {
					return ErrInsufficientFunds
				}
				return err
			}
		}

		_, err := s.ledger.Append(ctx, txn)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientFunds) {
			zap.L().Error("transfer failed", zap.Error(err))
		}
		return nil, err
	}

	// Reward crediting is fire and forget; its failure never unwinds the
	// committed transfer. When the transfer joined an ambient transaction
	// (request accept) the dispatch waits for the outer commit.
	settlement := reward.Settlement{
		SettlementID: txn.SettlementID,
		UserID:       senderID,
		Amount:       amount,
	}
	pg.AfterCommit(ctx, func() {
		s.rewards.Settle(settlement)
	})

	zap.L().Info("transfer settled",
		zap.Int("senderWallet", senderWallet.ID),
		zap.Int("receiverWallet", receiverWallet.ID),
		zap.Int64("amount", amount),
	)
	return txn, nil
}

// Recharge credits the user's wallet unconditionally and appends the matching
// recharge entry in the same storage transaction.
func (s *Service) Recharge(ctx context.Context, userID int, amount int64, description string) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	wallet, err := s.wallets.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	txn := &domain.Transaction{
		Kind:             domain.TransactionKindRecharge,
		Amount:           amount,
		ReceiverWalletID: &wallet.ID,
		Description:      description,
		SettlementID:     uuid.NewString(),
		CreatedAt:        time.Now(),
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.wallets.AdjustBalance(ctx, wallet.ID, amount); err != nil {
			return err
		}
		_, err := s.ledger.Append(ctx, txn)
		return err
	})
	if err != nil {
		zap.L().Error("recharge failed", zap.Error(err))
		return nil, err
	}
	return txn, nil
}

// Withdraw debits the user's wallet with the same conditional guard as a
// transfer debit and records a withdrawal entry.
func (s *Service) Withdraw(ctx context.Context, userID int, amount int64, description string) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	wallet, err := s.wallets.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	txn := &domain.Transaction{
		Kind:           domain.TransactionKindWithdrawal,
		Amount:         amount,
		SenderWalletID: &wallet.ID,
		Description:    description,
		SettlementID:   uuid.NewString(),
		CreatedAt:      time.Now(),
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.wallets.AdjustBalance(ctx, wallet.ID, -amount); err != nil {
			if errors.Is(err, walletrepo.ErrInsufficientFunds) {
				return ErrInsufficientFunds
			}
			return err
		}
		_, err := s.ledger.Append(ctx, txn)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientFunds) {
			zap.L().Error("withdrawal failed", zap.Error(err))
		}
		return nil, err
	}
	return txn, nil
}
