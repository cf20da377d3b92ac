package prices

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/tennisclub/internal/domain"
	"github.com/GlebRadaev/tennisclub/internal/dto"
	"github.com/GlebRadaev/tennisclub/pkg/utils"
)

//go:generate mockgen -source=prices.go -destination=mock_service.go -package=prices

type Service interface {
	List(ctx context.Context) ([]domain.PricePoint, error)
}

type PriceHandler struct {
	priceService Service
}

func New(priceService Service) *PriceHandler {
	return &PriceHandler{
		priceService: priceService,
	}
}

// GetPrices godoc
//
//	@Summary		Get the price list
//	@Description	Returns active price points ordered by group size and duration
//	@Tags			Prices
//	@Produce		json
//	@Success		200	{array}		dto.PriceResponseDTO
//	@Failure		204	{object}	utils.Response	"No data available"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/prices [get]
func (h *PriceHandler) GetPrices(w http.ResponseWriter, r *http.Request) {
	points, err := h.priceService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(points) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	response := make([]dto.PriceResponseDTO, 0, len(points))
	for _, p := range points {
		response = append(response, dto.PriceResponseDTO{
			DurationMinutes:   p.DurationMinutes,
			ParticipantsCount: p.ParticipantsCount,
			Price:             p.Price,
			Description:       p.Description,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
