package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/avdeyev/paymate/internal/domain"
	"github.com/avdeyev/paymate/internal/dto"
	transferservice "github.com/avdeyev/paymate/internal/service/transferservice"
	"github.com/avdeyev/paymate/pkg/auth"
	"github.com/avdeyev/paymate/pkg/utils"
	"github.com/avdeyev/paymate/pkg/validate"
)

type Service interface {
	GetWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	ListTransactions(ctx context.Context, userID, page, limit int) ([]domain.Transaction, error)
}

type FundsService interface {
	Recharge(ctx context.Context, userID int, amount int64, description string) (*domain.Transaction, error)
	Withdraw(ctx context.Context, userID int, amount int64, description string) (*domain.Transaction, error)
}

type RewardService interface {
	Profile(ctx context.Context, userID int) (*domain.RewardProfile, error)
}

type WalletHandler struct {
	walletService Service
	fundsService  FundsService
	rewardService RewardService
}

func New(walletService Service, fundsService FundsService, rewardService RewardService) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
		fundsService:  fundsService,
		rewardService: rewardService,
	}
}

// GetWallet godoc
//
//	@Summary		Get current user wallet
//	@Description	Retrieve the wallet balance for the authenticated user. The wallet is created on first access.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletResponseDTO	"Current balance in the smallest currency unit"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/wallet [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	wallet, err := h.walletService.GetWallet(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletResponseDTO{
		Balance: wallet.Balance,
	})
}

// GetTransactions godoc
//
//	@Summary		Get transaction history
//	@Description	Get the ledger entries touching the user's wallet, most recent first.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Param			page	query		int	false	"Page number, starting at 1"
//	@Param			limit	query		int	false	"Page size, capped at 100"
//	@Success		200		{array}		dto.TransactionResponseDTO	"Transaction history"
//	@Success		204		{object}	utils.Response				"No transactions"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/wallet/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	txns, err := h.walletService.ListTransactions(r.Context(), userID, page, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	if len(txns) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Transactions not found")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(txns))
	for i, txn := range txns {
		response[i] = dto.TransactionResponseDTO{
			ID:               txn.ID,
			Kind:             txn.Kind,
			Amount:           txn.Amount,
			SenderWalletID:   txn.SenderWalletID,
			ReceiverWalletID: txn.ReceiverWalletID,
			Description:      txn.Description,
			CreatedAt:        txn.CreatedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Recharge godoc
//
//	@Summary		Recharge the wallet
//	@Description	Credit the wallet from a top-up voucher. The voucher code must pass a checksum.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RechargeRequestDTO	true	"Recharge request payload"
//	@Success		200		{object}	dto.TransactionResponseDTO	"Recharge ledger entry"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		422		{object}	utils.Response				"Invalid voucher or amount"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/wallet/recharge [post]
func (h *WalletHandler) Recharge(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.RechargeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if ok := validate.IsVoucher(req.Voucher); !ok {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid voucher code")
		return
	}

	txn, err := h.fundsService.Recharge(r.Context(), userID, req.Amount, "voucher "+req.Voucher)
	if err != nil {
		switch {
		case errors.Is(err, transferservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TransactionResponseDTO{
		ID:               txn.ID,
		Kind:             txn.Kind,
		Amount:           txn.Amount,
		ReceiverWalletID: txn.ReceiverWalletID,
		Description:      txn.Description,
		CreatedAt:        txn.CreatedAt,
	})
}

// Withdraw godoc
//
//	@Summary		Withdraw funds
//	@Description	Debit the wallet and record a withdrawal ledger entry.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawRequestDTO	true	"Withdrawal request payload"
//	@Success		200		{object}	dto.TransactionResponseDTO	"Withdrawal ledger entry"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		402		{object}	utils.Response				"Insufficient funds"
//	@Failure		422		{object}	utils.Response				"Invalid amount"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/wallet/withdraw [post]
func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	txn, err := h.fundsService.Withdraw(r.Context(), userID, req.Amount, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, transferservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, transferservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TransactionResponseDTO{
		ID:             txn.ID,
		Kind:           txn.Kind,
		Amount:         txn.Amount,
		SenderWalletID: txn.SenderWalletID,
		Description:    txn.Description,
		CreatedAt:      txn.CreatedAt,
	})
}

// GetRewards godoc
//
//	@Summary		Get reward profile
//	@Description	Get the accumulated experience and level for the authenticated user.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.RewardResponseDTO	"Reward profile"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/rewards [get]
func (h *WalletHandler) GetRewards(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	profile, err := h.rewardService.Profile(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RewardResponseDTO{
		Experience: profile.Experience,
		Level:      profile.Level,
	})
}
