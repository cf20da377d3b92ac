package subscriptions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/GlebRadaev/tennisclub/internal/domain"
	"github.com/GlebRadaev/tennisclub/internal/dto"
	"github.com/GlebRadaev/tennisclub/pkg/auth"
	"github.com/GlebRadaev/tennisclub/pkg/utils"
)

//go:generate mockgen -source=subscriptions.go -destination=mock_service.go -package=subscriptions

const dateLayout = time.DateOnly

type Service interface {
	Create(ctx context.Context, memberID int, number string, initialAmount float64) (*domain.Subscription, error)
	GetActive(ctx context.Context, memberID int) (*domain.Subscription, error)
	List(ctx context.Context, memberID int) ([]domain.Subscription, error)
}

type SubscriptionHandler struct {
	subscriptionService Service
}

func New(subscriptionService Service) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionService: subscriptionService,
	}
}

// CreateSubscription godoc
//
//	@Summary		Open a subscription
//	@Description	Opens a prepaid subscription for the member. The balance starts at the paid amount.
//	@Tags			Subscriptions
//	@Accept			json
//	@Produce		json
//	@Param			X-Member-ID		header		int								true	"External member id"
//	@Param			subscription	body		dto.CreateSubscriptionRequestDTO	true	"Subscription data"
//	@Success		201				{object}	dto.SubscriptionResponseDTO
//	@Failure		400				{object}	utils.Response	"Invalid request body"
//	@Failure		401				{object}	utils.Response	"Member header missing"
//	@Failure		404				{object}	utils.Response	"Member not registered"
//	@Failure		409				{object}	utils.Response	"Subscription number already exists"
//	@Failure		422				{object}	utils.Response	"Invalid number or amount"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/member/subscriptions [post]
func (h *SubscriptionHandler) CreateSubscription(w http.ResponseWriter, r *http.Request) {
	memberID := r.Context().Value(auth.MemberIDKey).(int)

	var req dto.CreateSubscriptionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sub, err := h.subscriptionService.Create(r.Context(), memberID, req.Number, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrInvalidSubscriptionNumber):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, domain.ErrDuplicateSubscriptionNumber):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toResponse(sub))
}

// GetSubscriptions godoc
//
//	@Summary		List subscriptions
//	@Description	Returns all subscriptions of the member, newest first
//	@Tags			Subscriptions
//	@Produce		json
//	@Param			X-Member-ID	header		int	true	"External member id"
//	@Success		200			{array}		dto.SubscriptionResponseDTO
//	@Failure		204			{object}	utils.Response	"No data available"
//	@Failure		401			{object}	utils.Response	"Member header missing"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/member/subscriptions [get]
func (h *SubscriptionHandler) GetSubscriptions(w http.ResponseWriter, r *http.Request) {
	memberID := r.Context().Value(auth.MemberIDKey).(int)

	subs, err := h.subscriptionService.List(r.Context(), memberID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(subs) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	response := make([]dto.SubscriptionResponseDTO, 0, len(subs))
	for i := range subs {
		response = append(response, toResponse(&subs[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetBalance godoc
//
//	@Summary		Get the balance
//	@Description	Returns the balance of the active subscription
//	@Tags			Subscriptions
//	@Produce		json
//	@Param			X-Member-ID	header		int	true	"External member id"
//	@Success		200			{object}	dto.BalanceResponseDTO
//	@Failure		401			{object}	utils.Response	"Member header missing"
//	@Failure		404			{object}	utils.Response	"No active subscription"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/member/balance [get]
func (h *SubscriptionHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	memberID := r.Context().Value(auth.MemberIDKey).(int)

	sub, err := h.subscriptionService.GetActive(r.Context(), memberID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if sub == nil {
		utils.RespondWithError(w, http.StatusNotFound, domain.ErrNoActiveSubscription.Error())
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		SubscriptionID: sub.ID,
		Number:         sub.Number,
		Current:        sub.CurrentBalance,
		Initial:        sub.InitialAmount,
	})
}

func toResponse(s *domain.Subscription) dto.SubscriptionResponseDTO {
	resp := dto.SubscriptionResponseDTO{
		ID:             s.ID,
		Number:         s.Number,
		InitialAmount:  s.InitialAmount,
		CurrentBalance: s.CurrentBalance,
		StartDate:      s.StartDate.Format(dateLayout),
		Status:         string(s.Status),
	}
	if s.EndDate != nil {
		resp.EndDate = s.EndDate.Format(dateLayout)
	}
	return resp
}
