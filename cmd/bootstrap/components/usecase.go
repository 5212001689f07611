package components

import (
	"loyalty-console/internal/domain/program"
	"loyalty-console/internal/pkg/clock"
	"loyalty-console/internal/usecase/commands"
	"loyalty-console/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		program.NewStandardPointsCalculator,
		fx.As(new(program.PointsCalculator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewTierCommands,
		commands.NewBenefitCommands,
		commands.NewPointsCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewProgramQueries,
		queries.NewBenefitQueries,
		queries.NewEntitlementQueries,
	),
)
