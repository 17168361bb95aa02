package bootstrap

import (
	"log/slog"

	"kidcare-booking/internal/infra/apiclient"
	"kidcare-booking/internal/infra/mockapi"
	"kidcare-booking/internal/pkg/clock"
	"kidcare-booking/internal/pkg/config"
	"kidcare-booking/internal/store"
	"kidcare-booking/internal/usecase"

	"go.uber.org/fx"
)

var BackendModule = fx.Module("backend",
	fx.Provide(
		NewBookingAPI,
		func(api usecase.BookingAPI) store.FranchiseSource {
			return api
		},
	),
)

// NewBookingAPI picks the remote backend or the in-memory development one.
func NewBookingAPI(cfg config.Config, clk clock.Clock, logger *slog.Logger) (usecase.BookingAPI, error) {
	if cfg.API.UseMock {
		logger.Info("Using in-memory booking backend")
		return mockapi.NewProvider(clk), nil
	}
	client, err := apiclient.NewClient(cfg.API, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("Using remote booking backend", "base_url", cfg.API.BaseURL, "timeout", cfg.API.Timeout)
	return client, nil
}
