package auth

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/tennisclub/internal/domain"
	"github.com/GlebRadaev/tennisclub/pkg/utils"
)

//go:generate mockgen -source=middleware.go -destination=mock_resolver.go -package=auth

type ContextKey string

const (
	MemberIDKey  ContextKey = "memberID"
	MemberHeader            = "X-Member-ID"
)

type Resolver interface {
	GetByExternalID(ctx context.Context, externalID int64) (*domain.Member, error)
}

// MemberMiddleware resolves the external id from the X-Member-ID header to
// the internal member id and stores it under MemberIDKey.
func MemberMiddleware(resolver Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			externalID, err := strconv.ParseInt(strings.TrimSpace(r.Header.Get(MemberHeader)), 10, 64)
			if err != nil || externalID <= 0 {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			member, err := resolver.GetByExternalID(r.Context(), externalID)
			if err != nil {
				if errors.Is(err, domain.ErrMemberNotFound) {
					utils.RespondWithError(w, http.StatusNotFound, "Member not registered")
					return
				}
				zap.L().Error("can't resolve member", zap.Int64("externalID", externalID), zap.Error(err))
				utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			ctx := context.WithValue(r.Context(), MemberIDKey, member.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
