package bootstrap

import (
	"loyalty-console/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	JWTModule,
	GatewayModule,
	components.UseCaseModule,
	components.HandlerModule,
)
