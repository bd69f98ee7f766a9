package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotelcore/internal/domain/user"
	"hotelcore/internal/handler/api"
	"hotelcore/internal/handler/middleware"
	"hotelcore/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	bookingHandler *api.BookingHandler,
	roomHandler *api.RoomHandler,
	promotionHandler *api.PromotionHandler,
	deskHandler *api.DeskHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, bookingHandler, roomHandler, promotionHandler, deskHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	bookingHandler *api.BookingHandler,
	roomHandler *api.RoomHandler,
	promotionHandler *api.PromotionHandler,
	deskHandler *api.DeskHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		rooms := apiGroup.Group("/rooms")
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "", Handler: roomHandler.List},
				{Method: http.MethodGet, Path: "/search", Handler: roomHandler.Search},
				{Method: http.MethodGet, Path: "/:id", Handler: roomHandler.Get},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: roomHandler.CheckAvailability},
			})
		}

		promotions := apiGroup.Group("/promotions")
		{
			addRoutes(promotions, []route{
				{Method: http.MethodPost, Path: "/validate", Handler: promotionHandler.Validate},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.Get},
				{Method: http.MethodGet, Path: "/code/:code", Handler: bookingHandler.GetByCode},
				{Method: http.MethodPost, Path: "/code/:code/rebook", Handler: bookingHandler.Rebook},
				{Method: http.MethodDelete, Path: "/code/:code", Handler: bookingHandler.Cancel},
			})
		}

		desk := apiGroup.Group("/desk")
		desk.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleReception))
		{
			addRoutes(desk, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: deskHandler.ListBookings},
				{Method: http.MethodGet, Path: "/occupancy", Handler: deskHandler.Occupancy},
				{Method: http.MethodGet, Path: "/revenue", Handler: deskHandler.Revenue},
				{Method: http.MethodGet, Path: "/stats", Handler: deskHandler.Stats},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
