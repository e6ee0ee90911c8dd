package request

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/avdeyev/paymate/internal/domain"
	"github.com/avdeyev/paymate/internal/dto"
	requestservice "github.com/avdeyev/paymate/internal/service/requestservice"
	transferservice "github.com/avdeyev/paymate/internal/service/transferservice"
	"github.com/avdeyev/paymate/pkg/auth"
)

func NewMock(t *testing.T) (*RequestHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateRequestHandler(t *testing.T) {
	handler, service := NewMock(t)

	authedCtx := context.WithValue(context.Background(), auth.UserIDKey, 1)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful creation",
			body: `{"from":"bob","amount":200,"description":"split the bill"}`,
			prepareMock: func() {
				service.EXPECT().
					Create(authedCtx, 1, "bob", int64(200), "split the bill").
					Return(&domain.MoneyRequest{
						ID:          5,
						RequesterID: 1,
						PayerID:     2,
						Amount:      200,
						Description: "split the bill",
						Status:      domain.RequestStatusPending,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{"from":"bob","amount":invalid}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Invalid amount",
			body: `{"from":"bob","amount":0}`,
			prepareMock: func() {
				service.EXPECT().
					Create(authedCtx, 1, "bob", int64(0), "").
					Return(nil, requestservice.ErrInvalidAmount)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Unknown payer",
			body: `{"from":"nobody","amount":200}`,
			prepareMock: func() {
				service.EXPECT().
					Create(authedCtx, 1, "nobody", int64(200), "").
					Return(nil, requestservice.ErrPayerNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal server error",
			body: `{"from":"bob","amount":200}`,
			prepareMock: func() {
				service.EXPECT().
					Create(authedCtx, 1, "bob", int64(200), "").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/requests", bytes.NewBufferString(tt.body))
			r = r.WithContext(authedCtx)
			w := httptest.NewRecorder()
			handler.CreateRequest(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestGetInboxHandler(t *testing.T) {
	handler, service := NewMock(t)

	authedCtx := context.WithValue(context.Background(), auth.UserIDKey, 1)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().
					Inbox(authedCtx, 1).
					Return([]domain.MoneyRequest{
						{ID: 5, RequesterID: 2, PayerID: 1, Amount: 200, Status: domain.RequestStatusPending},
						{ID: 4, RequesterID: 3, PayerID: 1, Amount: 100, Status: domain.RequestStatusPending},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name: "No pending requests",
			prepareMock: func() {
				service.EXPECT().
					Inbox(authedCtx, 1).
					Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					Inbox(authedCtx, 1).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/requests", nil)
			r = r.WithContext(authedCtx)
			w := httptest.NewRecorder()
			handler.GetInbox(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.MoneyRequestResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, tt.expectedLen)
			}
		})
	}
}

func TestRespondToRequestHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		requestID    string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:      "Accept resolves the request",
			requestID: "5",
			body:      `{"action":"accept"}`,
			prepareMock: func() {
				service.EXPECT().
					Respond(gomock.Any(), 1, 5, true).
					Return(&domain.MoneyRequest{ID: 5, RequesterID: 2, PayerID: 1, Amount: 200, Status: domain.RequestStatusAccepted}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:      "Reject resolves the request",
			requestID: "5",
			body:      `{"action":"reject"}`,
			prepareMock: func() {
				service.EXPECT().
					Respond(gomock.Any(), 1, 5, false).
					Return(&domain.MoneyRequest{ID: 5, RequesterID: 2, PayerID: 1, Amount: 200, Status: domain.RequestStatusRejected}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request id",
			requestID:    "abc",
			body:         `{"action":"accept"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid action",
			requestID:    "5",
			body:         `{"action":"maybe"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "Request not found",
			requestID: "99",
			body:      `{"action":"accept"}`,
			prepareMock: func() {
				service.EXPECT().
					Respond(gomock.Any(), 1, 99, true).
					Return(nil, requestservice.ErrRequestNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:      "Responder is not the payer",
			requestID: "5",
			body:      `{"action":"accept"}`,
			prepareMock: func() {
				service.EXPECT().
					Respond(gomock.Any(), 1, 5, true).
					Return(nil, requestservice.ErrNotRequestPayer)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:      "Request already resolved",
			requestID: "5",
			body:      `{"action":"reject"}`,
			prepareMock: func() {
				service.EXPECT().
					Respond(gomock.Any(), 1, 5, false).
					Return(nil, requestservice.ErrAlreadyResolved)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:      "Insufficient funds on accept",
			requestID: "5",
			body:      `{"action":"accept"}`,
			prepareMock: func() {
				service.EXPECT().
					Respond(gomock.Any(), 1, 5, true).
					Return(nil, transferservice.ErrInsufficientFunds)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name:      "Self transfer on accept",
			requestID: "5",
			body:      `{"action":"accept"}`,
			prepareMock: func() {
				service.EXPECT().
					Respond(gomock.Any(), 1, 5, true).
					Return(nil, transferservice.ErrSelfTransfer)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:      "Internal server error",
			requestID: "5",
			body:      `{"action":"accept"}`,
			prepareMock: func() {
				service.EXPECT().
					Respond(gomock.Any(), 1, 5, true).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/requests/"+tt.requestID, bytes.NewBufferString(tt.body))
			r = r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 1))
			r = withURLParam(r, "id", tt.requestID)
			w := httptest.NewRecorder()
			handler.RespondToRequest(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
