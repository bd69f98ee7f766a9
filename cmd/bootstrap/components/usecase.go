package components

import (
	"hotelcore/internal/domain/booking"
	"hotelcore/internal/infra/notifier"
	"hotelcore/internal/pkg/clock"
	"hotelcore/internal/pkg/config"
	"hotelcore/internal/usecase"
	"hotelcore/internal/usecase/commands"
	"hotelcore/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		booking.NewNightlyPriceCalculator,
		fx.As(new(booking.PriceCalculator)),
	),
	booking.NewFactory,
	func(cfg config.Config) commands.BookingNotifier {
		return notifier.NewLogNotifier(cfg.Hotel.Name)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewBookingQueries,
		queries.NewCatalogQueries,
		queries.NewAvailabilityQueries,
		queries.NewDeskQueries,
		queries.NewPromotionQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
