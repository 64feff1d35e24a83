package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"workspace-booking/internal/domain/staff"
	"workspace-booking/internal/handler/api"
	"workspace-booking/internal/handler/middleware"
	"workspace-booking/internal/pkg/clock"
	"workspace-booking/internal/pkg/config"
	"workspace-booking/internal/usecase/shared"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine              *gin.Engine
	Config              config.Config
	Settings            shared.Settings
	Clock               clock.Clock
	Logger              *slog.Logger
	AvailabilityHandler *api.AvailabilityHandler
	ReservationHandler  *api.ReservationHandler
	RosterHandler       *api.RosterHandler
	AdminHandler        *api.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	auth := p.AuthMiddleware
	// Holds, releases and completions flush the roster cache.
	rosterCache := cache.New(p.Config.Booking.RosterCacheTTL, time.Minute)
	invalidateRoster := middleware.InvalidateCache(rosterCache)

	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		availability := apiGroup.Group("/availability")
		availability.Use(middleware.RateLimiter(p.Config.Server.RateLimitPerSec, p.Config.Server.RateLimitBurst))
		addRoutes(availability, []route{
			{Method: http.MethodGet, Path: "", Handler: p.AvailabilityHandler.Get},
		})

		operator := []gin.HandlerFunc{auth.RequireRoleAtLeast(staff.RoleOperator)}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(auth.RequireAuth(), invalidateRoster)
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: p.ReservationHandler.Create, Mw: operator},
				{Method: http.MethodGet, Path: "/:id", Handler: p.ReservationHandler.Get, Mw: operator},
				{Method: http.MethodPost, Path: "/:id/hold", Handler: p.ReservationHandler.Hold, Mw: operator},
				{Method: http.MethodPost, Path: "/:id/release", Handler: p.ReservationHandler.Release, Mw: operator},
			})
		}

		orders := apiGroup.Group("/orders")
		orders.Use(auth.RequireAuth(), invalidateRoster)
		addRoutes(orders, []route{
			{Method: http.MethodPost, Path: "/:id/complete", Handler: p.ReservationHandler.CompleteOrder, Mw: operator},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(auth.RequireAuth(), invalidateRoster)
		{
			roster := admin.Group("/roster")
			roster.Use(
				auth.RequireRoleAtLeast(staff.RoleViewer),
				middleware.ResponseCache(
					rosterCache,
					middleware.RosterTTL(p.Config.Booking.RosterCacheTTL, p.Settings.Location, p.Clock.Now),
				),
			)
			addRoutes(roster, []route{
				{Method: http.MethodGet, Path: "", Handler: p.RosterHandler.Get},
			})

			addRoutes(admin, []route{
				{
					Method:  http.MethodPost,
					Path:    "/reservations/expire",
					Handler: p.AdminHandler.ExpireUnpaid,
					Mw:      []gin.HandlerFunc{auth.RequireRoleAtLeast(staff.RoleAdmin)},
				},
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
