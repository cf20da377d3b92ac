package statsservice

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/tennisclub/internal/domain"
)

//go:generate mockgen -source=statsservice.go -destination=mock_repo.go -package=statsservice

// MaxGroupSize is the largest group the price table knows about.
const MaxGroupSize = 4

type Repo interface {
	SumSpent(ctx context.Context, memberID int, txType domain.TransactionType, since time.Time) (float64, error)
	CountTrainings(ctx context.Context, memberID int, since time.Time, participants int) (int, error)
}

type Service struct {
	statsRepo Repo
	now       func() time.Time
}

// New takes the clock the period windows are computed against. Its location
// decides where month and year boundaries fall.
func New(repo Repo, now func() time.Time) *Service {
	return &Service{
		statsRepo: repo,
		now:       now,
	}
}

func (s *Service) SpentAmount(ctx context.Context, memberID int, period domain.Period) (float64, error) {
	if !period.Valid() {
		return 0, domain.ErrInvalidPeriod
	}
	return s.statsRepo.SumSpent(ctx, memberID, domain.TransactionTraining, period.Since(s.now()))
}

func (s *Service) TrainingCount(ctx context.Context, memberID int, period domain.Period, participants int) (int, error) {
	if !period.Valid() {
		return 0, domain.ErrInvalidPeriod
	}
	return s.statsRepo.CountTrainings(ctx, memberID, period.Since(s.now()), participants)
}

func (s *Service) Summary(ctx context.Context, memberID int, period domain.Period) (*domain.Stats, error) {
	if !period.Valid() {
		return nil, domain.ErrInvalidPeriod
	}
	since := period.Since(s.now())
	stats := &domain.Stats{
		Period:         period,
		Since:          since,
		ByParticipants: make(map[int]int, MaxGroupSize),
	}

	counts := make([]int, MaxGroupSize+1)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		spent, err := s.statsRepo.SumSpent(gctx, memberID, domain.TransactionTraining, since)
		stats.Spent = spent
		return err
	})
	for size := 0; size <= MaxGroupSize; size++ {
		g.Go(func() error {
			count, err := s.statsRepo.CountTrainings(gctx, memberID, since, size)
			counts[size] = count
			return err
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to build stats", zap.Int("memberID", memberID), zap.String("period", string(period)), zap.Error(err))
		return nil, err
	}

	stats.TrainingsTotal = counts[0]
	for size := 1; size <= MaxGroupSize; size++ {
		if counts[size] > 0 {
			stats.ByParticipants[size] = counts[size]
		}
	}
	return stats, nil
}
