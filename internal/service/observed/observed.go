// Package observed wraps the club services so every call reports a started
// event and a finished or failed event to a logger.Sink.
package observed

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/tennisclub/internal/domain"
	"github.com/GlebRadaev/tennisclub/pkg/logger"
)

type MemberService interface {
	Exists(ctx context.Context, externalID int64) (bool, error)
	Register(ctx context.Context, member domain.Member) (*domain.Member, error)
	GetByExternalID(ctx context.Context, externalID int64) (*domain.Member, error)
}

type PriceService interface {
	Lookup(ctx context.Context, duration, participants int) (float64, error)
	List(ctx context.Context) ([]domain.PricePoint, error)
	Seed(ctx context.Context) error
}

type SubscriptionService interface {
	Create(ctx context.Context, memberID int, number string, initialAmount float64) (*domain.Subscription, error)
	GetActive(ctx context.Context, memberID int) (*domain.Subscription, error)
	List(ctx context.Context, memberID int) ([]domain.Subscription, error)
	Debit(ctx context.Context, subscriptionID int, amount float64) (float64, error)
}

type TrainingService interface {
	Record(ctx context.Context, req domain.TrainingRequest) (*domain.SessionRecord, error)
	History(ctx context.Context, memberID, limit int) ([]domain.TrainingHistoryItem, error)
}

type StatsService interface {
	SpentAmount(ctx context.Context, memberID int, period domain.Period) (float64, error)
	TrainingCount(ctx context.Context, memberID int, period domain.Period, participants int) (int, error)
	Summary(ctx context.Context, memberID int, period domain.Period) (*domain.Stats, error)
}

type Members struct {
	next MemberService
	sink logger.Sink
}

func NewMembers(next MemberService, sink logger.Sink) *Members {
	return &Members{next: next, sink: sink}
}

func (m *Members) Exists(ctx context.Context, externalID int64) (bool, error) {
	return logger.Observe(ctx, m.sink, "members.Exists", func(ctx context.Context) (bool, error) {
		return m.next.Exists(ctx, externalID)
	}, zap.Int64("externalID", externalID))
}

func (m *Members) Register(ctx context.Context, member domain.Member) (*domain.Member, error) {
	return logger.Observe(ctx, m.sink, "members.Register", func(ctx context.Context) (*domain.Member, error) {
		return m.next.Register(ctx, member)
	}, zap.Int64("externalID", member.ExternalID))
}

func (m *Members) GetByExternalID(ctx context.Context, externalID int64) (*domain.Member, error) {
	return logger.Observe(ctx, m.sink, "members.GetByExternalID", func(ctx context.Context) (*domain.Member, error) {
		return m.next.GetByExternalID(ctx, externalID)
	}, zap.Int64("externalID", externalID))
}

type Prices struct {
	next PriceService
	sink logger.Sink
}

func NewPrices(next PriceService, sink logger.Sink) *Prices {
	return &Prices{next: next, sink: sink}
}

func (p *Prices) Lookup(ctx context.Context, duration, participants int) (float64, error) {
	return logger.Observe(ctx, p.sink, "prices.Lookup", func(ctx context.Context) (float64, error) {
		return p.next.Lookup(ctx, duration, participants)
	}, zap.Int("duration", duration), zap.Int("participants", participants))
}

func (p *Prices) List(ctx context.Context) ([]domain.PricePoint, error) {
	return logger.Observe(ctx, p.sink, "prices.List", p.next.List)
}

func (p *Prices) Seed(ctx context.Context) error {
	return logger.ObserveErr(ctx, p.sink, "prices.Seed", p.next.Seed)
}

type Subscriptions struct {
	next SubscriptionService
	sink logger.Sink
}

func NewSubscriptions(next SubscriptionService, sink logger.Sink) *Subscriptions {
	return &Subscriptions{next: next, sink: sink}
}

func (s *Subscriptions) Create(ctx context.Context, memberID int, number string, initialAmount float64) (*domain.Subscription, error) {
	return logger.Observe(ctx, s.sink, "subscriptions.Create", func(ctx context.Context) (*domain.Subscription, error) {
		return s.next.Create(ctx, memberID, number, initialAmount)
	}, zap.Int("memberID", memberID), zap.Float64("amount", initialAmount))
}

func (s *Subscriptions) GetActive(ctx context.Context, memberID int) (*domain.Subscription, error) {
	return logger.Observe(ctx, s.sink, "subscriptions.GetActive", func(ctx context.Context) (*domain.Subscription, error) {
		return s.next.GetActive(ctx, memberID)
	}, zap.Int("memberID", memberID))
}

func (s *Subscriptions) List(ctx context.Context, memberID int) ([]domain.Subscription, error) {
	return logger.Observe(ctx, s.sink, "subscriptions.List", func(ctx context.Context) ([]domain.Subscription, error) {
		return s.next.List(ctx, memberID)
	}, zap.Int("memberID", memberID))
}

func (s *Subscriptions) Debit(ctx context.Context, subscriptionID int, amount float64) (float64, error) {
	return logger.Observe(ctx, s.sink, "subscriptions.Debit", func(ctx context.Context) (float64, error) {
		return s.next.Debit(ctx, subscriptionID, amount)
	}, zap.Int("subscriptionID", subscriptionID), zap.Float64("amount", amount))
}

type Trainings struct {
	next TrainingService
	sink logger.Sink
}

func NewTrainings(next TrainingService, sink logger.Sink) *Trainings {
	return &Trainings{next: next, sink: sink}
}

func (t *Trainings) Record(ctx context.Context, req domain.TrainingRequest) (*domain.SessionRecord, error) {
	return logger.Observe(ctx, t.sink, "trainings.Record", func(ctx context.Context) (*domain.SessionRecord, error) {
		return t.next.Record(ctx, req)
	}, zap.Int("memberID", req.MemberID), zap.Int("duration", req.DurationMinutes), zap.Int("participants", req.ParticipantsCount))
}

func (t *Trainings) History(ctx context.Context, memberID, limit int) ([]domain.TrainingHistoryItem, error) {
	return logger.Observe(ctx, t.sink, "trainings.History", func(ctx context.Context) ([]domain.TrainingHistoryItem, error) {
		return t.next.History(ctx, memberID, limit)
	}, zap.Int("memberID", memberID))
}

type Stats struct {
	next StatsService
	sink logger.Sink
}

func NewStats(next StatsService, sink logger.Sink) *Stats {
	return &Stats{next: next, sink: sink}
}

func (s *Stats) SpentAmount(ctx context.Context, memberID int, period domain.Period) (float64, error) {
	return logger.Observe(ctx, s.sink, "stats.SpentAmount", func(ctx context.Context) (float64, error) {
		return s.next.SpentAmount(ctx, memberID, period)
	}, zap.Int("memberID", memberID), zap.String("period", string(period)))
}

func (s *Stats) TrainingCount(ctx context.Context, memberID int, period domain.Period, participants int) (int, error) {
	return logger.Observe(ctx, s.sink, "stats.TrainingCount", func(ctx context.Context) (int, error) {
		return s.next.TrainingCount(ctx, memberID, period, participants)
	}, zap.Int("memberID", memberID), zap.String("period", string(period)))
}

func (s *Stats) Summary(ctx context.Context, memberID int, period domain.Period) (*domain.Stats, error) {
	return logger.Observe(ctx, s.sink, "stats.Summary", func(ctx context.Context) (*domain.Stats, error) {
		return s.next.Summary(ctx, memberID, period)
	}, zap.Int("memberID", memberID), zap.String("period", string(period)))
}
