package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tour-booking/internal/handler/api"
	"tour-booking/internal/handler/middleware"
	"tour-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Tour    *api.TourHandler
	Booking *api.BookingHandler
	User    *api.UserHandler
}

func NewRouter(engine *gin.Engine, cfg *config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg *config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := []gin.HandlerFunc{authMiddleware.RequireAuth()}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		addRoutes(auth, []route{
			{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout, Mw: requireAuth},
			{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: requireAuth},
		})

		tours := apiGroup.Group("/tours")
		addRoutes(tours, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Tour.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Tour.Get},
			{Method: http.MethodPost, Path: "", Handler: h.Tour.Create, Mw: requireAuth},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Tour.Update, Mw: requireAuth},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Tour.Delete, Mw: requireAuth},
		})

		// Role checks happen in the use cases; the middleware only authenticates.
		bookings := apiGroup.Group("/bookings")
		bookings.Use(requireAuth...)
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Booking.ListAll},
			{Method: http.MethodGet, Path: "/my-bookings", Handler: h.Booking.ListMine},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Booking.UpdateStatus},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Booking.Cancel},
		})

		users := apiGroup.Group("/users")
		users.Use(requireAuth...)
		addRoutes(users, []route{
			{Method: http.MethodGet, Path: "", Handler: h.User.List},
			{Method: http.MethodPut, Path: "/:id/role", Handler: h.User.UpdateRole},
		})
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

// chainHandlers runs per-route middleware inline; a c.Next() inside them is a no-op.
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
