package requestservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/avdeyev/paymate/internal/domain"
	"github.com/avdeyev/paymate/internal/pg"
)

type Repo interface {
	Create(ctx context.Context, req *domain.MoneyRequest) (*domain.MoneyRequest, error)
	GetByID(ctx context.Context, id int) (*domain.MoneyRequest, error)
	Resolve(ctx context.Context, id int, status string) (bool, error)
	ListPendingByPayer(ctx context.Context, payerID int) ([]domain.MoneyRequest, error)
}

type UserRepo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type TransferEngine interface {
	Transfer(ctx context.Context, senderID int, receiverLogin string, amount int64, description string) (*domain.Transaction, error)
}

var (
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrPayerNotFound   = errors.New("payer not found")
	ErrRequestNotFound = errors.New("money request not found")
	ErrNotRequestPayer = errors.New("responder is not the request payer")
	ErrAlreadyResolved = errors.New("money request already resolved")
)

type Service struct {
	requestRepo Repo
	userRepo    UserRepo
	transfers   TransferEngine
	txManager   pg.TXManager
}

func New(requestRepo Repo, userRepo UserRepo, transfers TransferEngine, txManager pg.TXManager) *Service {
	return &Service{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		transfers:   transfers,
		txManager:   txManager,
	}
}

// Create persists a pending request from requester to the user behind
// payerLogin. No funds move until the payer accepts.
func (s *Service) Create(ctx context.Context, requesterID int, payerLogin string, amount int64, description string) (*domain.MoneyRequest, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	payer, err := s.userRepo.FindByLogin(ctx, payerLogin)
	if err != nil {
		zap.L().Error("failed to resolve payer", zap.Error(err))
		return nil, err
	}
	if payer == nil {
		return nil, ErrPayerNotFound
	}

	req := &domain.MoneyRequest{
		RequesterID: requesterID,
		PayerID:     payer.ID,
		Amount:      amount,
		Description: description,
		Status:      domain.RequestStatusPending,
		CreatedAt:   time.Now(),
	}
	created, err := s.requestRepo.Create(ctx, req)
	if err != nil {
		zap.L().Error("failed to create money request", zap.Error(err))
		return nil, err
	}

	zap.L().Info("money request created",
		zap.Int("requestID", created.ID),
		zap.Int("requesterID", requesterID),
		zap.Int("payerID", payer.ID),
		zap.Int64("amount", amount),
	)
	return created, nil
}

// Respond resolves a pending request. Accepting claims the request with a
// conditional status flip and runs the transfer inside the same storage
// transaction, so a failed transfer rolls the flip back and the request stays
// pending.
func (s *Service) Respond(ctx context.Context, payerID, requestID int, accept bool) (*domain.MoneyRequest, error) {
	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		zap.L().Error("failed to load money request", zap.Error(err))
		return nil, err
	}
	if req == nil {
		return nil, ErrRequestNotFound
	}
	if req.PayerID != payerID {
		return nil, ErrNotRequestPayer
	}
	if req.Status != domain.RequestStatusPending {
		return nil, ErrAlreadyResolved
	}

	if !accept {
		resolved, err := s.requestRepo.Resolve(ctx, requestID, domain.RequestStatusRejected)
		if err != nil {
			return nil, err
		}
		if !resolved {
			return nil, ErrAlreadyResolved
		}
		req.Status = domain.RequestStatusRejected
		return req, nil
	}

	requester, err := s.userRepo.FindByID(ctx, req.RequesterID)
	if err != nil {
		zap.L().Error("failed to resolve requester", zap.Error(err))
		return nil, err
	}
	if requester == nil {
		return nil, ErrRequestNotFound
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		resolved, err := s.requestRepo.Resolve(ctx, requestID, domain.RequestStatusAccepted)
		if err != nil {
			return err
		}
		if !resolved {
			return ErrAlreadyResolved
		}
		_, err = s.transfers.Transfer(ctx, payerID, requester.Login, req.Amount, req.Description)
		return err
	})
	if err != nil {
		return nil, err
	}

	req.Status = domain.RequestStatusAccepted
	zap.L().Info("money request accepted", zap.Int("requestID", requestID), zap.Int("payerID", payerID))
	return req, nil
}

// Inbox lists the pending requests addressed to the payer, newest first.
func (s *Service) Inbox(ctx context.Context, payerID int) ([]domain.MoneyRequest, error) {
	reqs, err := s.requestRepo.ListPendingByPayer(ctx, payerID)
	if err != nil {
		zap.L().Error("failed to fetch money requests", zap.Error(err))
		return nil, err
	}
	return reqs, nil
}
