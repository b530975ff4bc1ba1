package components

import (
	"meetline/internal/pkg/clock"
	"meetline/internal/usecase/commands"
	"meetline/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
	),
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewSchedulingUseCase,
		commands.NewAvailabilityUseCase,
		commands.NewCampaignUseCase,
		commands.NewCallUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewMeetingRequestQueries,
		queries.NewCallQueries,
		queries.NewLeadQueries,
	),
)
