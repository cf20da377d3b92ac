package stats

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/GlebRadaev/tennisclub/internal/domain"
	"github.com/GlebRadaev/tennisclub/internal/dto"
	"github.com/GlebRadaev/tennisclub/pkg/auth"
	"github.com/GlebRadaev/tennisclub/pkg/utils"
)

//go:generate mockgen -source=stats.go -destination=mock_service.go -package=stats

type Service interface {
	Summary(ctx context.Context, memberID int, period domain.Period) (*domain.Stats, error)
}

type StatsHandler struct {
	statsService Service
}

func New(statsService Service) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// GetStats godoc
//
//	@Summary		Member statistics
//	@Description	Spent amount and training counts for the period. Month and year start at calendar boundaries in club time, week is the last 7 days.
//	@Tags			Stats
//	@Produce		json
//	@Param			X-Member-ID	header		int		true	"External member id"
//	@Param			period		query		string	false	"week, month, year or all (default month)"
//	@Success		200			{object}	dto.StatsResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid period"
//	@Failure		401			{object}	utils.Response	"Member header missing"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/member/stats [get]
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	memberID := r.Context().Value(auth.MemberIDKey).(int)

	period, err := domain.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	stats, err := h.statsService.Summary(r.Context(), memberID, period)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPeriod) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	byParticipants := make(map[string]int, len(stats.ByParticipants))
	for size, count := range stats.ByParticipants {
		byParticipants[strconv.Itoa(size)] = count
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.StatsResponseDTO{
		Period:         string(stats.Period),
		Since:          stats.Since.Format(time.RFC3339),
		Spent:          stats.Spent,
		TrainingsTotal: stats.TrainingsTotal,
		ByParticipants: byParticipants,
	})
}
