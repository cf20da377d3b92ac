package memberservice

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/tennisclub/internal/domain"
	"github.com/GlebRadaev/tennisclub/pkg/validate"
)

//go:generate mockgen -source=memberservice.go -destination=mock_repo.go -package=memberservice

type Repo interface {
	Exists(ctx context.Context, externalID int64) (bool, error)
	FindByExternalID(ctx context.Context, externalID int64) (*domain.Member, error)
	Create(ctx context.Context, member *domain.Member) (*domain.Member, error)
}

type Service struct {
	memberRepo Repo
}

func New(repo Repo) *Service {
	return &Service{
		memberRepo: repo,
	}
}

func (s *Service) Exists(ctx context.Context, externalID int64) (bool, error) {
	exists, err := s.memberRepo.Exists(ctx, externalID)
	if err != nil {
		zap.L().Error("can't check member: ", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (s *Service) Register(ctx context.Context, member domain.Member) (*domain.Member, error) {
	member.FirstName = strings.TrimSpace(member.FirstName)
	member.LastName = strings.TrimSpace(member.LastName)
	member.Phone = strings.TrimSpace(member.Phone)

	if member.ExternalID <= 0 {
		return nil, fmt.Errorf("%w: external id must be positive", domain.ErrInvalidMember)
	}
	if member.FirstName == "" {
		return nil, fmt.Errorf("%w: first name is required", domain.ErrInvalidMember)
	}
	if member.Phone != "" {
		if !validate.IsPhone(member.Phone) {
			return nil, fmt.Errorf("%w: invalid phone %q", domain.ErrInvalidMember, member.Phone)
		}
		member.Phone = validate.NormalizePhone(member.Phone)
	}

	exists, err := s.memberRepo.Exists(ctx, member.ExternalID)
	if err != nil {
		zap.L().Error("can't check member: ", zap.Error(err))
		return nil, err
	}
	if exists {
		zap.L().Info("member already registered", zap.Int64("externalID", member.ExternalID))
		return nil, domain.ErrDuplicateMember
	}

	created, err := s.memberRepo.Create(ctx, &member)
	if err != nil {
		zap.L().Error("can't create member: ", zap.Error(err))
		return nil, err
	}
	zap.L().Info("member registered", zap.Int64("externalID", created.ExternalID), zap.Int("memberID", created.ID))
	return created, nil
}

func (s *Service) GetByExternalID(ctx context.Context, externalID int64) (*domain.Member, error) {
	member, err := s.memberRepo.FindByExternalID(ctx, externalID)
	if err != nil {
		zap.L().Error("can't find member: ", zap.Error(err))
		return nil, err
	}
	if member == nil {
		return nil, domain.ErrMemberNotFound
	}
	return member, nil
}
