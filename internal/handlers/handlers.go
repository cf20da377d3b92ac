package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/tennisclub/docs"
	memberhandlers "github.com/GlebRadaev/tennisclub/internal/handlers/members"
	pricehandlers "github.com/GlebRadaev/tennisclub/internal/handlers/prices"
	statshandlers "github.com/GlebRadaev/tennisclub/internal/handlers/stats"
	subscriptionhandlers "github.com/GlebRadaev/tennisclub/internal/handlers/subscriptions"
	traininghandlers "github.com/GlebRadaev/tennisclub/internal/handlers/trainings"
	"github.com/GlebRadaev/tennisclub/internal/service"
	"github.com/GlebRadaev/tennisclub/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type MemberHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	GetMember(w http.ResponseWriter, r *http.Request)
	CheckMember(w http.ResponseWriter, r *http.Request)
}

type PriceHandler interface {
	GetPrices(w http.ResponseWriter, r *http.Request)
}

type SubscriptionHandler interface {
	CreateSubscription(w http.ResponseWriter, r *http.Request)
	GetSubscriptions(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
}

type TrainingHandler interface {
	RecordTraining(w http.ResponseWriter, r *http.Request)
	GetTrainings(w http.ResponseWriter, r *http.Request)
}

type StatsHandler interface {
	GetStats(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	MemberHandler       MemberHandler
	PriceHandler        PriceHandler
	SubscriptionHandler SubscriptionHandler
	TrainingHandler     TrainingHandler
	StatsHandler        StatsHandler
	Resolver            auth.Resolver
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		MemberHandler:       memberhandlers.New(s.MemberService),
		PriceHandler:        pricehandlers.New(s.PriceService),
		SubscriptionHandler: subscriptionhandlers.New(s.SubscriptionService),
		TrainingHandler:     traininghandlers.New(s.TrainingService),
		StatsHandler:        statshandlers.New(s.StatsService),
		Resolver:            s.MemberService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Get("/prices", h.PriceHandler.GetPrices)

		r.Route("/members", func(r chi.Router) {
			r.Post("/", h.MemberHandler.Register)
			r.Get("/{externalID}", h.MemberHandler.GetMember)
			r.Head("/{externalID}", h.MemberHandler.CheckMember)
		})

		r.Route("/member", func(r chi.Router) {
			r.Use(auth.MemberMiddleware(h.Resolver))
			r.Route("/subscriptions", func(r chi.Router) {
				r.Post("/", h.SubscriptionHandler.CreateSubscription)
				r.Get("/", h.SubscriptionHandler.GetSubscriptions)
			})
			r.Get("/balance", h.SubscriptionHandler.GetBalance)
			r.Route("/trainings", func(r chi.Router) {
				r.Post("/", h.TrainingHandler.RecordTraining)
				r.Get("/", h.TrainingHandler.GetTrainings)
			})
			r.Get("/stats", h.StatsHandler.GetStats)
		})
	})

	return r
}
