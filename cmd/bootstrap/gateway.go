package bootstrap

import (
	"loyalty-console/internal/infra/billing"
	"loyalty-console/internal/infra/gateway"
	"loyalty-console/internal/pkg/config"
	"loyalty-console/internal/usecase/shared"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewProgramGateway,
		NewSubscriptionResolver,
	),
)

func NewProgramGateway(cfg config.Config) shared.ProgramGateway {
	return gateway.NewClient(cfg.Gateway)
}

func NewSubscriptionResolver(cfg config.Config) shared.SubscriptionResolver {
	return billing.NewStripeResolver(cfg.Stripe)
}
