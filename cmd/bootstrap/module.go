package bootstrap

import (
	"kidcare-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	JWTModule,
	BackendModule,
	components.StoreModule,
	components.UseCaseModule,
	components.HandlerModule,
)
