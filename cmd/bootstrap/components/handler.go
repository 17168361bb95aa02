package components

import (
	"kidcare-booking/internal/handler"
	"kidcare-booking/internal/handler/api"
	"kidcare-booking/internal/handler/middleware"
	"kidcare-booking/internal/pkg/config"
	"kidcare-booking/internal/store"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSessionHandler,
		api.NewFlowHandler,
		api.NewCatalogHandler,
		api.NewUIHandler,
		api.NewBookingHandler,
		api.NewNavigationHandler,
		func(r *store.Registry) middleware.SessionStore { return r },
		middleware.NewSessionMiddleware,
		func(cfg config.Config) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit)
		},
	),
	fx.Invoke(handler.NewRouter),
)
