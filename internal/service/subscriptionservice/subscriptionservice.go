package subscriptionservice

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/tennisclub/internal/domain"
)

//go:generate mockgen -source=subscriptionservice.go -destination=mock_repo.go -package=subscriptionservice

type Repo interface {
	Create(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error)
	FindActive(ctx context.Context, memberID int) (*domain.Subscription, error)
	FindByMemberID(ctx context.Context, memberID int) ([]domain.Subscription, error)
	Debit(ctx context.Context, subscriptionID int, amount float64) (float64, error)
}

type Service struct {
	subscriptionRepo Repo
	now              func() time.Time
}

func New(repo Repo, now func() time.Time) *Service {
	return &Service{
		subscriptionRepo: repo,
		now:              now,
	}
}

func (s *Service) Create(ctx context.Context, memberID int, number string, initialAmount float64) (*domain.Subscription, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, domain.ErrInvalidSubscriptionNumber
	}
	if initialAmount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	now := s.now()
	sub, err := s.subscriptionRepo.Create(ctx, &domain.Subscription{
		MemberID:      memberID,
		Number:        number,
		InitialAmount: initialAmount,
		StartDate:     time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		Status:        domain.SubscriptionActive,
	})
	if err != nil {
		zap.L().Error("failed to create subscription", zap.Int("memberID", memberID), zap.Error(err))
		return nil, err
	}
	zap.L().Info("subscription created", zap.Int("memberID", memberID), zap.String("number", number),
		zap.Float64("amount", initialAmount))
	return sub, nil
}

// GetActive returns nil without error when the member has no subscription
// that can be charged.
func (s *Service) GetActive(ctx context.Context, memberID int) (*domain.Subscription, error) {
	sub, err := s.subscriptionRepo.FindActive(ctx, memberID)
	if err != nil {
		zap.L().Error("failed to get active subscription", zap.Error(err))
		return nil, err
	}
	return sub, nil
}

func (s *Service) List(ctx context.Context, memberID int) ([]domain.Subscription, error) {
	subs, err := s.subscriptionRepo.FindByMemberID(ctx, memberID)
	if err != nil {
		zap.L().Error("failed to list subscriptions", zap.Error(err))
		return nil, err
	}
	return subs, nil
}

// Debit charges amount to the subscription and returns the remaining balance.
func (s *Service) Debit(ctx context.Context, subscriptionID int, amount float64) (float64, error) {
	if amount <= 0 {
		return 0, domain.ErrInvalidAmount
	}
	balance, err := s.subscriptionRepo.Debit(ctx, subscriptionID, amount)
	if err != nil {
		zap.L().Warn("debit rejected", zap.Int("subscriptionID", subscriptionID), zap.Float64("amount", amount), zap.Error(err))
		return 0, err
	}
	return balance, nil
}
