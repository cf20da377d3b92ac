package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/tennisclub/internal/config"
	"github.com/GlebRadaev/tennisclub/internal/handlers"
	"github.com/GlebRadaev/tennisclub/pkg/auth"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestWait_GracefulShutdown() {
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	s.app.cfg = &config.Config{Address: "127.0.0.1:0"}
	s.app.api = &handlers.Handlers{
		MemberHandler:       handlers.NewMockMemberHandler(ctrl),
		PriceHandler:        handlers.NewMockPriceHandler(ctrl),
		SubscriptionHandler: handlers.NewMockSubscriptionHandler(ctrl),
		TrainingHandler:     handlers.NewMockTrainingHandler(ctrl),
		StatsHandler:        handlers.NewMockStatsHandler(ctrl),
		Resolver:            auth.NewMockResolver(ctrl),
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.Require().NoError(s.app.startHTTPServer(ctx))

	time.AfterFunc(50*time.Millisecond, cancel)
	err := s.app.Wait(ctx, cancel)

	s.NoError(err)
}
