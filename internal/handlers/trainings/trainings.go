package trainings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/GlebRadaev/tennisclub/internal/domain"
	"github.com/GlebRadaev/tennisclub/internal/dto"
	"github.com/GlebRadaev/tennisclub/pkg/auth"
	"github.com/GlebRadaev/tennisclub/pkg/utils"
)

//go:generate mockgen -source=trainings.go -destination=mock_service.go -package=trainings

type Service interface {
	Record(ctx context.Context, req domain.TrainingRequest) (*domain.SessionRecord, error)
	History(ctx context.Context, memberID, limit int) ([]domain.TrainingHistoryItem, error)
}

type TrainingHandler struct {
	trainingService Service
}

func New(trainingService Service) *TrainingHandler {
	return &TrainingHandler{
		trainingService: trainingService,
	}
}

// RecordTraining godoc
//
//	@Summary		Record a training
//	@Description	Prices the training, charges the active subscription and stores the session.
//	@Tags			Trainings
//	@Accept			json
//	@Produce		json
//	@Param			X-Member-ID	header		int								true	"External member id"
//	@Param			training	body		dto.RecordTrainingRequestDTO	true	"Training parameters"
//	@Success		201			{object}	dto.RecordTrainingResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request body"
//	@Failure		401			{object}	utils.Response	"Member header missing"
//	@Failure		402			{object}	utils.Response	"Insufficient funds"
//	@Failure		404			{object}	utils.Response	"No active subscription"
//	@Failure		422			{object}	utils.Response	"No price for training parameters"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/member/trainings [post]
func (h *TrainingHandler) RecordTraining(w http.ResponseWriter, r *http.Request) {
	memberID := r.Context().Value(auth.MemberIDKey).(int)

	var req dto.RecordTrainingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	record, err := h.trainingService.Record(r.Context(), domain.TrainingRequest{
		MemberID:          memberID,
		DurationMinutes:   req.DurationMinutes,
		ParticipantsCount: req.ParticipantsCount,
		CourtType:         req.CourtType,
		CoachName:         req.CoachName,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, domain.ErrNoActiveSubscription):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrNoPriceForParameters):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.RecordTrainingResponseDTO{
		SessionID:         record.SessionID,
		SubscriptionID:    record.SubscriptionID,
		Price:             record.Price,
		Balance:           record.Balance,
		DurationMinutes:   record.DurationMinutes,
		ParticipantsCount: record.ParticipantsCount,
		StartedAt:         record.StartedAt.Format(time.RFC3339),
		CourtType:         record.CourtType,
		CoachName:         record.CoachName,
	})
}

// GetTrainings godoc
//
//	@Summary		Training history
//	@Description	Returns the member's last trainings, newest first
//	@Tags			Trainings
//	@Produce		json
//	@Param			X-Member-ID	header		int	true	"External member id"
//	@Param			limit		query		int	false	"How many trainings to return (default 10)"
//	@Success		200			{array}		dto.TrainingHistoryResponseDTO
//	@Failure		204			{object}	utils.Response	"No data available"
//	@Failure		400			{object}	utils.Response	"Invalid limit"
//	@Failure		401			{object}	utils.Response	"Member header missing"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/member/trainings [get]
func (h *TrainingHandler) GetTrainings(w http.ResponseWriter, r *http.Request) {
	memberID := r.Context().Value(auth.MemberIDKey).(int)

	var limit int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		var err error
		if limit, err = strconv.Atoi(raw); err != nil || limit < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
	}

	items, err := h.trainingService.History(r.Context(), memberID, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(items) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	response := make([]dto.TrainingHistoryResponseDTO, 0, len(items))
	for _, it := range items {
		response = append(response, dto.TrainingHistoryResponseDTO{
			SessionID:         it.SessionID,
			StartedAt:         it.StartedAt.Format(time.RFC3339),
			DurationMinutes:   it.DurationMinutes,
			ParticipantsCount: it.ParticipantsCount,
			AmountPaid:        it.AmountPaid,
			CourtType:         it.CourtType,
			CoachName:         it.CoachName,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
