package members

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/tennisclub/internal/domain"
	"github.com/GlebRadaev/tennisclub/internal/dto"
	"github.com/GlebRadaev/tennisclub/pkg/utils"
)

//go:generate mockgen -source=members.go -destination=mock_service.go -package=members

type Service interface {
	Exists(ctx context.Context, externalID int64) (bool, error)
	Register(ctx context.Context, member domain.Member) (*domain.Member, error)
	GetByExternalID(ctx context.Context, externalID int64) (*domain.Member, error)
}

type MemberHandler struct {
	memberService Service
}

func New(memberService Service) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

// Register godoc
//
//	@Summary		Register a club member
//	@Description	Registers a member under the external (messenger) id. Phone is optional and normalised to +7XXXXXXXXXX.
//	@Tags			Members
//	@Accept			json
//	@Produce		json
//	@Param			member	body		dto.RegisterMemberRequestDTO	true	"Member data"
//	@Success		201		{object}	dto.MemberResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or member data"
//	@Failure		409		{object}	utils.Response	"Member already registered"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/members [post]
func (h *MemberHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterMemberRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	member, err := h.memberService.Register(r.Context(), domain.Member{
		ExternalID: req.ExternalID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidMember):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrDuplicateMember):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toResponse(member))
}

// GetMember godoc
//
//	@Summary		Get a member
//	@Description	Returns the member registered under the external id
//	@Tags			Members
//	@Produce		json
//	@Param			externalID	path		int	true	"External id"
//	@Success		200			{object}	dto.MemberResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid external id"
//	@Failure		404			{object}	utils.Response	"Member not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/members/{externalID} [get]
func (h *MemberHandler) GetMember(w http.ResponseWriter, r *http.Request) {
	externalID, ok := parseExternalID(w, r)
	if !ok {
		return
	}

	member, err := h.memberService.GetByExternalID(r.Context(), externalID)
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(member))
}

// CheckMember godoc
//
//	@Summary		Check registration
//	@Description	Answers 200 when the external id is registered and 404 otherwise
//	@Tags			Members
//	@Param			externalID	path	int	true	"External id"
//	@Success		200
//	@Failure		400
//	@Failure		404
//	@Failure		500
//	@Router			/api/members/{externalID} [head]
func (h *MemberHandler) CheckMember(w http.ResponseWriter, r *http.Request) {
	externalID, ok := parseExternalID(w, r)
	if !ok {
		return
	}

	exists, err := h.memberService.Exists(r.Context(), externalID)
	switch {
	case err != nil:
		w.WriteHeader(http.StatusInternalServerError)
	case !exists:
		w.WriteHeader(http.StatusNotFound)
	default:
		w.WriteHeader(http.StatusOK)
	}
}

func parseExternalID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	externalID, err := strconv.ParseInt(chi.URLParam(r, "externalID"), 10, 64)
	if err != nil || externalID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid external id")
		return 0, false
	}
	return externalID, true
}

func toResponse(m *domain.Member) dto.MemberResponseDTO {
	return dto.MemberResponseDTO{
		ID:         m.ID,
		ExternalID: m.ExternalID,
		FirstName:  m.FirstName,
		LastName:   m.LastName,
		Phone:      m.Phone,
		IsActive:   m.IsActive,
		CreatedAt:  m.CreatedAt,
	}
}
