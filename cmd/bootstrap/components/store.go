package components

import (
	"context"
	"log/slog"

	"kidcare-booking/internal/pkg/clock"
	"kidcare-booking/internal/pkg/config"
	"kidcare-booking/internal/store"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		clock.NewRealClock,
		NewRegistry,
	),
)

// NewRegistry ties the idle-session sweeper and session cleanup to the app
// lifecycle.
func NewRegistry(lc fx.Lifecycle, source store.FranchiseSource, clk clock.Clock, cfg config.Config, logger *slog.Logger) *store.Registry {
	registry := store.NewRegistry(source, clk, cfg.Session, cfg.Notification, logger)

	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go registry.RunSweeper(ctx, cfg.Session.SweepEvery)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			registry.Close()
			return nil
		},
	})

	return registry
}
