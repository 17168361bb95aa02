package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"kidcare-booking/internal/handler/api"
	"kidcare-booking/internal/handler/middleware"
	"kidcare-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

// Handlers groups everything the router mounts.
type Handlers struct {
	fx.In

	Session    *api.SessionHandler
	Flow       *api.FlowHandler
	Catalog    *api.CatalogHandler
	UI         *api.UIHandler
	Booking    *api.BookingHandler
	Navigation *api.NavigationHandler

	SessionMiddleware *middleware.SessionMiddleware
	RateLimiter       *middleware.RateLimiter
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.Recovery(logger))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.ErrorHandler(logger))
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(h.RateLimiter.Middleware())
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/sessions", Handler: h.Session.Create},
			{Method: http.MethodGet, Path: "/navigation", Handler: h.Navigation.Resolve},
		})

		sessionRequired := apiGroup.Group("")
		sessionRequired.Use(h.SessionMiddleware.RequireSession())
		addRoutes(sessionRequired, []route{
			{Method: http.MethodDelete, Path: "/sessions/current", Handler: h.Session.Delete},

			{Method: http.MethodGet, Path: "/flow", Handler: h.Flow.Get},
			{Method: http.MethodPost, Path: "/flow/next", Handler: h.Flow.Next},
			{Method: http.MethodPost, Path: "/flow/prev", Handler: h.Flow.Prev},
			{Method: http.MethodPost, Path: "/flow/reset", Handler: h.Flow.Reset},
			{Method: http.MethodPut, Path: "/flow/franchise", Handler: h.Flow.SelectFranchise},
			{Method: http.MethodPut, Path: "/flow/datetime", Handler: h.Flow.SelectDateTime},
			{Method: http.MethodPut, Path: "/flow/customer", Handler: h.Flow.SetCustomerInfo},
			{Method: http.MethodPut, Path: "/flow/child", Handler: h.Flow.SetChildInfo},
			{Method: http.MethodPost, Path: "/flow/submit", Handler: h.Flow.Submit},
			{Method: http.MethodPost, Path: "/flow/payment", Handler: h.Flow.Pay},
			{Method: http.MethodPost, Path: "/flow/complete", Handler: h.Flow.Complete},

			{Method: http.MethodGet, Path: "/franchises", Handler: h.Catalog.ListFranchises},
			{Method: http.MethodGet, Path: "/availability/:franchiseId", Handler: h.Catalog.Availability},

			{Method: http.MethodGet, Path: "/ui", Handler: h.UI.Get},
			{Method: http.MethodDelete, Path: "/ui/errors", Handler: h.UI.ClearErrors},
			{Method: http.MethodPost, Path: "/ui/notifications", Handler: h.UI.AddNotification},
			{Method: http.MethodDelete, Path: "/ui/notifications/:id", Handler: h.UI.RemoveNotification},

			{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.Booking.Get},
			{Method: http.MethodPut, Path: "/bookings/:id", Handler: h.Booking.Modify},
			{Method: http.MethodDelete, Path: "/bookings/:id", Handler: h.Booking.Cancel},
			{Method: http.MethodGet, Path: "/bookings/:id/qr", Handler: h.Booking.QRCode},
			{Method: http.MethodGet, Path: "/lookup", Handler: h.Booking.Lookup},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
