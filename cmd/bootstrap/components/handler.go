package components

import (
	"loyalty-console/internal/handler"
	"loyalty-console/internal/handler/api"
	"loyalty-console/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewProgramHandler,
		api.NewTierHandler,
		api.NewBenefitHandler,
		api.NewEntitlementHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
