package handlers

import (
	"net/http"

	_ "github.com/avdeyev/paymate/docs"
	authhandlers "github.com/avdeyev/paymate/internal/handlers/auth"
	requesthandlers "github.com/avdeyev/paymate/internal/handlers/request"
	transferhandlers "github.com/avdeyev/paymate/internal/handlers/transfer"
	wallethandlers "github.com/avdeyev/paymate/internal/handlers/wallet"
	"github.com/avdeyev/paymate/internal/service"
	"github.com/avdeyev/paymate/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetWallet(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	Recharge(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetRewards(w http.ResponseWriter, r *http.Request)
}

type TransferHandler interface {
	Transfer(w http.ResponseWriter, r *http.Request)
}

type RequestHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	GetInbox(w http.ResponseWriter, r *http.Request)
	RespondToRequest(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	WalletHandler   WalletHandler
	TransferHandler TransferHandler
	RequestHandler  RequestHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		WalletHandler:   wallethandlers.New(s.WalletService, s.TransferService, s.RewardService),
		TransferHandler: transferhandlers.New(s.TransferService),
		RequestHandler:  requesthandlers.New(s.RequestService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/wallet", func(r chi.Router) {
				r.Get("/", h.WalletHandler.GetWallet)
				r.Get("/transactions", h.WalletHandler.GetTransactions)
				r.Post("/recharge", h.WalletHandler.Recharge)
				r.Post("/withdraw", h.WalletHandler.Withdraw)
				r.Post("/transfer", h.TransferHandler.Transfer)
			})
			r.Route("/requests", func(r chi.Router) {
				r.Post("/", h.RequestHandler.CreateRequest)
				r.Get("/", h.RequestHandler.GetInbox)
				r.Post("/{id}", h.RequestHandler.RespondToRequest)
			})
			r.Get("/rewards", h.WalletHandler.GetRewards)
		})
	})

	return r
}
