package repo

import (
	"github.com/GlebRadaev/tennisclub/internal/pg"
	memberrepo "github.com/GlebRadaev/tennisclub/internal/repo/member-repo"
	pricerepo "github.com/GlebRadaev/tennisclub/internal/repo/price-repo"
	statsrepo "github.com/GlebRadaev/tennisclub/internal/repo/stats-repo"
	subscriptionrepo "github.com/GlebRadaev/tennisclub/internal/repo/subscription-repo"
	trainingrepo "github.com/GlebRadaev/tennisclub/internal/repo/training-repo"
	transactionrepo "github.com/GlebRadaev/tennisclub/internal/repo/transaction-repo"
	"github.com/GlebRadaev/tennisclub/internal/service/memberservice"
	"github.com/GlebRadaev/tennisclub/internal/service/priceservice"
	"github.com/GlebRadaev/tennisclub/internal/service/statsservice"
	"github.com/GlebRadaev/tennisclub/internal/service/subscriptionservice"
	"github.com/GlebRadaev/tennisclub/internal/service/trainingservice"
)

type Repositories struct {
	MemberRepo       memberservice.Repo
	PriceRepo        priceservice.Repo
	SubscriptionRepo subscriptionservice.Repo
	TrainingRepo     trainingservice.TrainingRepo
	TransactionRepo  trainingservice.TransactionRepo
	StatsRepo        statsservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		MemberRepo:       memberrepo.New(conn),
		PriceRepo:        pricerepo.New(conn, txManager),
		SubscriptionRepo: subscriptionrepo.New(conn),
		TrainingRepo:     trainingrepo.New(conn),
		TransactionRepo:  transactionrepo.New(conn),
		StatsRepo:        statsrepo.New(conn),
	}
}
