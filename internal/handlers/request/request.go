package request

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/avdeyev/paymate/internal/domain"
	"github.com/avdeyev/paymate/internal/dto"
	requestservice "github.com/avdeyev/paymate/internal/service/requestservice"
	transferservice "github.com/avdeyev/paymate/internal/service/transferservice"
	"github.com/avdeyev/paymate/pkg/auth"
	"github.com/avdeyev/paymate/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, requesterID int, payerLogin string, amount int64, description string) (*domain.MoneyRequest, error)
	Respond(ctx context.Context, payerID, requestID int, accept bool) (*domain.MoneyRequest, error)
	Inbox(ctx context.Context, payerID int) ([]domain.MoneyRequest, error)
}

type RequestHandler struct {
	requestService Service
}

func New(requestService Service) *RequestHandler {
	return &RequestHandler{
		requestService: requestService,
	}
}

// CreateRequest godoc
//
//	@Summary		Create a money request
//	@Description	Ask another user to pay the authenticated user. No funds move until the payer accepts.
//	@Tags			Requests
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateMoneyRequestDTO	true	"Money request payload"
//	@Success		200		{object}	dto.MoneyRequestResponseDTO	"Created request"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		404		{object}	utils.Response				"Payer not found"
//	@Failure		422		{object}	utils.Response				"Invalid amount"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/requests [post]
func (h *RequestHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateMoneyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.requestService.Create(r.Context(), userID, req.From, req.Amount, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, requestservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, requestservice.ErrPayerNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(created))
}

// GetInbox godoc
//
//	@Summary		List pending money requests
//	@Description	List the pending requests where the authenticated user is the payer, newest first.
//	@Tags			Requests
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.MoneyRequestResponseDTO	"Pending requests"
//	@Success		204	{object}	utils.Response				"No pending requests"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/requests [get]
func (h *RequestHandler) GetInbox(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	reqs, err := h.requestService.Inbox(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch requests")
		return
	}

	if len(reqs) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Requests not found")
		return
	}

	response := make([]dto.MoneyRequestResponseDTO, len(reqs))
	for i, req := range reqs {
		response[i] = toResponseDTO(&req)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// RespondToRequest godoc
//
//	@Summary		Respond to a money request
//	@Description	Accept or reject a pending request. Accepting transfers the requested amount to the requester.
//	@Tags			Requests
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Request id"
//	@Param			request	body		dto.RespondMoneyRequestDTO	true	"Response payload"
//	@Success		200		{object}	dto.MoneyRequestResponseDTO	"Resolved request"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		402		{object}	utils.Response				"Insufficient funds"
//	@Failure		403		{object}	utils.Response				"Responder is not the payer"
//	@Failure		404		{object}	utils.Response				"Request not found"
//	@Failure		409		{object}	utils.Response				"Request already resolved"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/requests/{id} [post]
func (h *RequestHandler) RespondToRequest(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	requestID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	var req dto.RespondMoneyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Action != "accept" && req.Action != "reject" {
		utils.RespondWithError(w, http.StatusBadRequest, "action must be accept or reject")
		return
	}

	resolved, err := h.requestService.Respond(r.Context(), userID, requestID, req.Action == "accept")
	if err != nil {
		switch {
		case errors.Is(err, requestservice.ErrRequestNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, requestservice.ErrNotRequestPayer):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, requestservice.ErrAlreadyResolved):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, transferservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, transferservice.ErrSelfTransfer):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(resolved))
}

func toResponseDTO(req *domain.MoneyRequest) dto.MoneyRequestResponseDTO {
	return dto.MoneyRequestResponseDTO{
		ID:          req.ID,
		RequesterID: req.RequesterID,
		PayerID:     req.PayerID,
		Amount:      req.Amount,
		Description: req.Description,
		Status:      req.Status,
		CreatedAt:   req.CreatedAt,
	}
}
