package priceservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/tennisclub/internal/domain"
)

//go:generate mockgen -source=priceservice.go -destination=mock_repo.go -package=priceservice

type Repo interface {
	Find(ctx context.Context, duration, participants int) (*domain.PricePoint, error)
	List(ctx context.Context) ([]domain.PricePoint, error)
	Seed(ctx context.Context, points []domain.PricePoint) (int64, error)
}

// DefaultPrices is the club price list seeded at startup.
var DefaultPrices = []domain.PricePoint{
	{DurationMinutes: 60, ParticipantsCount: 1, Price: 1500, Description: "Individual 60 min"},
	{DurationMinutes: 90, ParticipantsCount: 1, Price: 2000, Description: "Individual 90 min"},
	{DurationMinutes: 120, ParticipantsCount: 1, Price: 2500, Description: "Individual 120 min"},
	{DurationMinutes: 60, ParticipantsCount: 2, Price: 800, Description: "Pair 60 min"},
	{DurationMinutes: 90, ParticipantsCount: 2, Price: 1200, Description: "Pair 90 min"},
	{DurationMinutes: 120, ParticipantsCount: 2, Price: 1600, Description: "Pair 120 min"},
	{DurationMinutes: 60, ParticipantsCount: 3, Price: 600, Description: "Group of three 60 min"},
	{DurationMinutes: 90, ParticipantsCount: 3, Price: 900, Description: "Group of three 90 min"},
	{DurationMinutes: 120, ParticipantsCount: 3, Price: 1200, Description: "Group of three 120 min"},
	{DurationMinutes: 60, ParticipantsCount: 4, Price: 500, Description: "Group of four 60 min"},
	{DurationMinutes: 90, ParticipantsCount: 4, Price: 750, Description: "Group of four 90 min"},
	{DurationMinutes: 120, ParticipantsCount: 4, Price: 1000, Description: "Group of four 120 min"},
}

type Service struct {
	priceRepo Repo
}

func New(repo Repo) *Service {
	return &Service{
		priceRepo: repo,
	}
}

func (s *Service) Lookup(ctx context.Context, duration, participants int) (float64, error) {
	point, err := s.priceRepo.Find(ctx, duration, participants)
	if err != nil {
		zap.L().Error("failed to look up price", zap.Error(err))
		return 0, err
	}
	if point == nil {
		return 0, domain.ErrNoPriceForParameters
	}
	return point.Price, nil
}

func (s *Service) List(ctx context.Context) ([]domain.PricePoint, error) {
	points, err := s.priceRepo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list prices", zap.Error(err))
		return nil, err
	}
	return points, nil
}

func (s *Service) Seed(ctx context.Context) error {
	inserted, err := s.priceRepo.Seed(ctx, DefaultPrices)
	if err != nil {
		zap.L().Error("failed to seed price table", zap.Error(err))
		return err
	}
	zap.L().Info("price table seeded", zap.Int64("inserted", inserted), zap.Int("total", len(DefaultPrices)))
	return nil
}
