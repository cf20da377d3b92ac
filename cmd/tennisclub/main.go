package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/GlebRadaev/tennisclub/internal/app"
	"github.com/rs/zerolog/log"
	"go.uber.org/zap"
)

//	@title			Tennis Club API
//	@version		1.0
//	@description	Members, prepaid subscriptions and training sessions of a tennis club

// @host		localhost:8080
// @BasePath	/
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, stop); err != nil {
		// zap may not be configured yet, zerolog always writes to stderr.
		log.Fatal().Err(err).Msg("tennisclub stopped")
	}
}

func run(ctx context.Context, stop context.CancelFunc) error {
	club := app.New()
	if err := club.Start(ctx); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	defer zap.L().Sync() //nolint:errcheck

	zap.L().Info("tennis club is accepting requests")

	if err := club.Wait(ctx, stop); err != nil {
		zap.L().Error("shutdown finished with errors", zap.Error(err))
		return fmt.Errorf("shutdown: %w", err)
	}

	zap.L().Info("all systems closed without errors")
	return nil
}
