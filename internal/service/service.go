package service

import (
	"time"

	"github.com/GlebRadaev/tennisclub/internal/pg"
	"github.com/GlebRadaev/tennisclub/internal/repo"
	"github.com/GlebRadaev/tennisclub/internal/service/memberservice"
	"github.com/GlebRadaev/tennisclub/internal/service/observed"
	"github.com/GlebRadaev/tennisclub/internal/service/priceservice"
	"github.com/GlebRadaev/tennisclub/internal/service/statsservice"
	"github.com/GlebRadaev/tennisclub/internal/service/subscriptionservice"
	"github.com/GlebRadaev/tennisclub/internal/service/trainingservice"
	"github.com/GlebRadaev/tennisclub/pkg/logger"
)

type Services struct {
	MemberService       observed.MemberService
	PriceService        observed.PriceService
	SubscriptionService observed.SubscriptionService
	TrainingService     observed.TrainingService
	StatsService        observed.StatsService
}

// New builds the services and wraps each of them so calls report to sink.
// now is the club clock: its location decides calendar period boundaries.
func New(repo *repo.Repositories, txManager pg.TXManager, sink logger.Sink, now func() time.Time) *Services {
	memberService := observed.NewMembers(memberservice.New(repo.MemberRepo), sink)
	priceService := observed.NewPrices(priceservice.New(repo.PriceRepo), sink)
	subscriptionService := observed.NewSubscriptions(subscriptionservice.New(repo.SubscriptionRepo, now), sink)
	trainingService := observed.NewTrainings(
		trainingservice.New(priceService, subscriptionService, repo.TrainingRepo, repo.TransactionRepo, txManager, now),
		sink,
	)
	statsService := observed.NewStats(statsservice.New(repo.StatsRepo, now), sink)

	return &Services{
		MemberService:       memberService,
		PriceService:        priceService,
		SubscriptionService: subscriptionService,
		TrainingService:     trainingService,
		StatsService:        statsService,
	}
}
