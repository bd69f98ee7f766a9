package components

import (
	"hotelcore/internal/infra/db"
	"hotelcore/internal/infra/readstore"
	"hotelcore/internal/infra/uow"
	"hotelcore/internal/usecase/queries"
	"hotelcore/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		// Pool-bound readstores for the query side
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
		),
		fx.Annotate(
			readstore.NewCategoryReadStore,
			fx.As(new(queries.CategoryViewRepo)),
		),
		fx.Annotate(
			readstore.NewAvailabilityReadStore,
			fx.As(new(queries.AvailabilityViewRepo)),
		),
		fx.Annotate(
			readstore.NewDeskReadStore,
			fx.As(new(queries.DeskViewRepo)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Promotion validation rides on the command reads, which are already
		// bound to the pool outside any transaction
		func(u shared.UnitOfWork) queries.PromotionViewRepo {
			return u.CommandReads()
		},
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
