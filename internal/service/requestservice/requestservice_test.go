package requestservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/avdeyev/paymate/internal/domain"
	"github.com/avdeyev/paymate/internal/pg"
	"github.com/avdeyev/paymate/internal/reward"
	transferservice "github.com/avdeyev/paymate/internal/service/transferservice"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockUserRepo, *MockTransferEngine, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	requestRepo := NewMockRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	transfers := NewMockTransferEngine(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(requestRepo, userRepo, transfers, txManager)
	defer ctrl.Finish()
	return service, requestRepo, userRepo, transfers, txManager
}

func passthroughBegin(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestCreate(t *testing.T) {
	service, requestRepo, userRepo, _, _ := NewMock(t)

	payer := &domain.User{ID: 2, Login: "bob"}

	tests := []struct {
		name          string
		payerLogin    string
		amount        int64
		prepareMock   func()
		expectedError error
	}{
		{
			name:       "Successful request creation",
			payerLogin: "bob",
			amount:     500,
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "bob").Return(payer, nil)
				requestRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, req *domain.MoneyRequest) (*domain.MoneyRequest, error) {
						req.ID = 3
						return req, nil
					})
			},
		},
		{
			name:          "Invalid amount",
			payerLogin:    "bob",
			amount:        0,
			prepareMock:   func() {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:       "Unknown payer",
			payerLogin: "nobody",
			amount:     500,
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "nobody").Return(nil, nil)
			},
			expectedError: ErrPayerNotFound,
		},
		{
			name:       "Database error",
			payerLogin: "bob",
			amount:     500,
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "bob").Return(payer, nil)
				requestRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			created, err := service.Create(context.Background(), 1, tt.payerLogin, tt.amount, "concert tickets")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, created)
				assert.Equal(t, domain.RequestStatusPending, created.Status)
				assert.Equal(t, 1, created.RequesterID)
				assert.Equal(t, payer.ID, created.PayerID)
			}
		})
	}
}

func TestRespond(t *testing.T) {
	service, requestRepo, userRepo, transfers, txManager := NewMock(t)

	pendingReq := func() *domain.MoneyRequest {
		return &domain.MoneyRequest{
			ID:          3,
			RequesterID: 1,
			PayerID:     2,
			Amount:      500,
			Description: "concert tickets",
			Status:      domain.RequestStatusPending,
			CreatedAt:   time.Now(),
		}
	}
	requester := &domain.User{ID: 1, Login: "alice"}

	tests := []struct {
		name           string
		payerID        int
		accept         bool
		prepareMock    func()
		expectedStatus string
		expectedError  error
	}{
		{
			name:    "Accept runs the transfer and flips the status",
			payerID: 2,
			accept:  true,
			prepareMock: func() {
				requestRepo.EXPECT().GetByID(gomock.Any(), 3).Return(pendingReq(), nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(requester, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(passthroughBegin)
				requestRepo.EXPECT().Resolve(gomock.Any(), 3, domain.RequestStatusAccepted).Return(true, nil)
				transfers.EXPECT().Transfer(gomock.Any(), 2, "alice", int64(500), "concert tickets").
					Return(&domain.Transaction{ID: 7, Amount: 500}, nil)
			},
			expectedStatus: domain.RequestStatusAccepted,
		},
		{
			name:    "Reject flips the status without moving funds",
			payerID: 2,
			accept:  false,
			prepareMock: func() {
				requestRepo.EXPECT().GetByID(gomock.Any(), 3).Return(pendingReq(), nil)
				requestRepo.EXPECT().Resolve(gomock.Any(), 3, domain.RequestStatusRejected).Return(true, nil)
			},
			expectedStatus: domain.RequestStatusRejected,
		},
		{
			name:    "Unknown request",
			payerID: 2,
			accept:  true,
			prepareMock: func() {
				requestRepo.EXPECT().GetByID(gomock.Any(), 3).Return(nil, nil)
			},
			expectedError: ErrRequestNotFound,
		},
		{
			name:    "Responder is not the payer",
			payerID: 9,
			accept:  true,
			prepareMock: func() {
				requestRepo.EXPECT().GetByID(gomock.Any(), 3).Return(pendingReq(), nil)
			},
			expectedError: ErrNotRequestPayer,
		},
		{
			name:    "Request already resolved",
			payerID: 2,
			accept:  true,
			prepareMock: func() {
				req := pendingReq()
				req.Status = domain.RequestStatusRejected
				requestRepo.EXPECT().GetByID(gomock.Any(), 3).Return(req, nil)
			},
			expectedError: ErrAlreadyResolved,
		},
		{
			name:    "Concurrent response loses the status flip",
			payerID: 2,
			accept:  true,
			prepareMock: func() {
				requestRepo.EXPECT().GetByID(gomock.Any(), 3).Return(pendingReq(), nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(requester, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(passthroughBegin)
				requestRepo.EXPECT().Resolve(gomock.Any(), 3, domain.RequestStatusAccepted).Return(false, nil)
			},
			expectedError: ErrAlreadyResolved,
		},
		{
			name:    "Failed transfer leaves the request pending",
			payerID: 2,
			accept:  true,
			prepareMock: func() {
				requestRepo.EXPECT().GetByID(gomock.Any(), 3).Return(pendingReq(), nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(requester, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(passthroughBegin)
				requestRepo.EXPECT().Resolve(gomock.Any(), 3, domain.RequestStatusAccepted).Return(true, nil)
				transfers.EXPECT().Transfer(gomock.Any(), 2, "alice", int64(500), "concert tickets").
					Return(nil, transferservice.ErrInsufficientFunds)
			},
			expectedError: transferservice.ErrInsufficientFunds,
		},
		{
			name:    "Concurrent rejection loses the status flip",
			payerID: 2,
			accept:  false,
			prepareMock: func() {
				requestRepo.EXPECT().GetByID(gomock.Any(), 3).Return(pendingReq(), nil)
				requestRepo.EXPECT().Resolve(gomock.Any(), 3, domain.RequestStatusRejected).Return(false, nil)
			},
			expectedError: ErrAlreadyResolved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			resolved, err := service.Respond(context.Background(), tt.payerID, 3, tt.accept)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, resolved)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, resolved)
				assert.Equal(t, tt.expectedStatus, resolved.Status)
			}
		})
	}
}

func TestInbox(t *testing.T) {
	service, requestRepo, _, _, _ := NewMock(t)

	reqs := []domain.MoneyRequest{
		{ID: 4, RequesterID: 3, PayerID: 2, Amount: 250, Status: domain.RequestStatusPending},
		{ID: 3, RequesterID: 1, PayerID: 2, Amount: 500, Status: domain.RequestStatusPending},
	}

	tests := []struct {
		name          string
		prepareMock   func()
		expected      []domain.MoneyRequest
		expectedError error
	}{
		{
			name: "Returns pending requests",
			prepareMock: func() {
				requestRepo.EXPECT().ListPendingByPayer(gomock.Any(), 2).Return(reqs, nil)
			},
			expected: reqs,
		},
		{
			name: "Empty inbox",
			prepareMock: func() {
				requestRepo.EXPECT().ListPendingByPayer(gomock.Any(), 2).Return(nil, nil)
			},
			expected: nil,
		},
		{
			name: "Database error",
			prepareMock: func() {
				requestRepo.EXPECT().ListPendingByPayer(gomock.Any(), 2).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			result, err := service.Inbox(context.Background(), 2)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

type stubUserDirectory struct{}

func (stubUserDirectory) FindByLogin(_ context.Context, login string) (*domain.User, error) {
	if login == "alice" {
		return &domain.User{ID: 1, Login: "alice"}, nil
	}
	return nil, nil
}

func (stubUserDirectory) FindByID(_ context.Context, id int) (*domain.User, error) {
	if id == 1 {
		return &domain.User{ID: 1, Login: "alice"}, nil
	}
	return nil, nil
}

type stubWalletStore struct {
	balances map[int]int64
}

func (s *stubWalletStore) GetOrCreate(_ context.Context, userID int) (*domain.Wallet, error) {
	return &domain.Wallet{ID: userID, UserID: userID, Balance: s.balances[userID]}, nil
}

func (s *stubWalletStore) AdjustBalance(_ context.Context, walletID int, delta int64) (int64, error) {
	s.balances[walletID] += delta
	return s.balances[walletID], nil
}

type stubLedger struct {
	txns []*domain.Transaction
}

func (s *stubLedger) Append(_ context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	s.txns = append(s.txns, txn)
	return txn, nil
}

type stubRequestRepo struct {
	req *domain.MoneyRequest
}

func (s *stubRequestRepo) Create(_ context.Context, req *domain.MoneyRequest) (*domain.MoneyRequest, error) {
	return req, nil
}

func (s *stubRequestRepo) GetByID(_ context.Context, id int) (*domain.MoneyRequest, error) {
	if s.req != nil && s.req.ID == id {
		return s.req, nil
	}
	return nil, nil
}

func (s *stubRequestRepo) Resolve(_ context.Context, _ int, _ string) (bool, error) {
	return true, nil
}

func (s *stubRequestRepo) ListPendingByPayer(_ context.Context, _ int) ([]domain.MoneyRequest, error) {
	return nil, nil
}

type recordingDispatcher struct {
	settlements []reward.Settlement
}

func (r *recordingDispatcher) Settle(s reward.Settlement) {
	r.settlements = append(r.settlements, s)
}

type joinKey struct{}

// joinedTxManager mirrors the real manager: nested Begins join the open unit,
// and after-commit hooks fire only once the outermost unit commits.
type joinedTxManager struct {
	commitErr error
}

func (m *joinedTxManager) Begin(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(joinKey{}) != nil {
		return fn(ctx)
	}
	ctx, hooks := pg.WithCommitHooks(context.WithValue(ctx, joinKey{}, struct{}{}))
	if err := fn(ctx); err != nil {
		return err
	}
	if m.commitErr != nil {
		return m.commitErr
	}
	hooks.Run()
	return nil
}

// Accepting a request runs the transfer inside the request's own transaction
// unit, so the reward settlement must not reach the dispatcher until that
// outer unit has committed.
func TestRespond_RewardWaitsForCommit(t *testing.T) {
	tests := []struct {
		name        string
		commitErr   error
		settlements int
	}{
		{
			name:        "Settlement dispatched once the accept commits",
			settlements: 1,
		},
		{
			name:        "Failed commit dispatches nothing",
			commitErr:   errors.New("commit failed"),
			settlements: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &stubWalletStore{balances: map[int]int64{1: 0, 2: 1000}}
			dispatcher := &recordingDispatcher{}
			txm := &joinedTxManager{commitErr: tt.commitErr}
			engine := transferservice.New(stubUserDirectory{}, store, &stubLedger{}, txm, dispatcher)
			requestRepo := &stubRequestRepo{req: &domain.MoneyRequest{
				ID:          3,
				RequesterID: 1,
				PayerID:     2,
				Amount:      500,
				Description: "concert tickets",
				Status:      domain.RequestStatusPending,
				CreatedAt:   time.Now(),
			}}
			service := New(requestRepo, stubUserDirectory{}, engine, txm)

			resolved, err := service.Respond(context.Background(), 2, 3, true)

			assert.Len(t, dispatcher.settlements, tt.settlements)
			if tt.commitErr != nil {
				assert.EqualError(t, err, tt.commitErr.Error())
				assert.Nil(t, resolved)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.RequestStatusAccepted, resolved.Status)
				assert.Equal(t, 2, dispatcher.settlements[0].UserID)
				assert.Equal(t, int64(500), dispatcher.settlements[0].Amount)
			}
		})
	}
}
