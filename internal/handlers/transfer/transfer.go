package transfer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avdeyev/paymate/internal/domain"
	"github.com/avdeyev/paymate/internal/dto"
	transferservice "github.com/avdeyev/paymate/internal/service/transferservice"
	"github.com/avdeyev/paymate/pkg/auth"
	"github.com/avdeyev/paymate/pkg/utils"
)

type Service interface {
	Transfer(ctx context.Context, senderID int, receiverLogin string, amount int64, description string) (*domain.Transaction, error)
}

type TransferHandler struct {
	transferService Service
}

func New(transferService Service) *TransferHandler {
	return &TransferHandler{
		transferService: transferService,
	}
}

// Transfer godoc
//
//	@Summary		Transfer funds to another user
//	@Description	Move funds from the authenticated user's wallet to the wallet of the user behind the handle.
//	@Tags			Transfer
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TransferRequestDTO	true	"Transfer request payload"
//	@Success		200		{object}	dto.TransferResponseDTO	"Committed transfer"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		402		{object}	utils.Response			"Insufficient funds"
//	@Failure		404		{object}	utils.Response			"Recipient not found"
//	@Failure		422		{object}	utils.Response			"Invalid amount or self transfer"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/wallet/transfer [post]
func (h *TransferHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.TransferRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	txn, err := h.transferService.Transfer(r.Context(), userID, req.To, req.Amount, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, transferservice.ErrInvalidAmount),
			errors.Is(err, transferservice.ErrSelfTransfer):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, transferservice.ErrRecipientNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, transferservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.TransferResponseDTO{
		ID:        txn.ID,
		Amount:    txn.Amount,
		CreatedAt: txn.CreatedAt,
	})
}
