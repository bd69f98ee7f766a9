package components

import (
	"hotelcore/internal/handler"
	"hotelcore/internal/handler/api"
	"hotelcore/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewRoomHandler,
		api.NewPromotionHandler,
		api.NewDeskHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
