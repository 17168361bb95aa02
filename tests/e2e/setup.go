//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"kidcare-booking/cmd/bootstrap"
	"kidcare-booking/cmd/bootstrap/components"
	"kidcare-booking/internal/pkg/config"
	"kidcare-booking/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// ------------------------------------------------------------
// Build the whole application against the in-memory backend
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*gin.Engine, *store.Registry, config.Config) {
	gin.SetMode(gin.TestMode)

	router, registry, cfg, app := buildE2EApp()
	require.NotNil(t, router, "router setup failed")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("Failed to stop fx app", "error", err.Error())
		}
	})

	return router, registry, cfg
}

func buildE2EApp() (*gin.Engine, *store.Registry, config.Config, *fx.App) {
	var (
		router   *gin.Engine
		registry *store.Registry
		cfg      config.Config
	)

	testConfigModule := fx.Module("testconfig",
		fx.Provide(config.NewTestConfig),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.BackendModule,
		components.StoreModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &registry, &cfg),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}
	if router == nil {
		panic("fx app started without a router")
	}

	return router, registry, cfg, app
}

// ------------------------------------------------------------
// Shared suite for end-to-end tests
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router   *gin.Engine
	Registry *store.Registry
	Config   config.Config
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	router, registry, cfg := setupE2EEnvironment(t)
	s.Router = router
	s.Registry = registry
	s.Config = cfg
	require.NotEmpty(t, s.Config, "config missing")
	require.NotNil(t, s.Registry, "registry missing")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}
