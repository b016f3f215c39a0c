package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/yungbote/neowatch-backend/internal/handlers"
	"github.com/yungbote/neowatch-backend/internal/middleware"
)

type RouterConfig struct {
	NeoHandler       *handlers.NeoHandler
	AlertHandler     *handlers.AlertHandler
	WatchlistHandler *handlers.WatchlistHandler
	AuthMiddleware   *middleware.AuthMiddleware
	CorsOrigins      []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()
	router.Use(otelgin.Middleware("neowatch-backend"))

	origins := cfg.CorsOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	// Feed endpoints work anonymously; a valid token personalizes alerts.
	api.Use(cfg.AuthMiddleware.OptionalAuth())
	{
		api.GET("/neos/feed", cfg.NeoHandler.GetFeed)
		api.GET("/neos/summary", cfg.NeoHandler.GetSummary)
		api.GET("/neos/lookup/:id", cfg.NeoHandler.GetLookup)
		api.GET("/neos/alerts", cfg.AlertHandler.GetAlerts)
	}

	// ===============
	// || Protected ||
	// ===============
	protected := router.Group("/api")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	// Alerts
	protected.PATCH("/neos/alerts/:id/read", cfg.AlertHandler.MarkRead)
	protected.PATCH("/neos/alerts/read-all", cfg.AlertHandler.MarkAllRead)
	protected.DELETE("/neos/alerts/:id", cfg.AlertHandler.DeleteAlert)
	// Watchlist
	protected.GET("/watchlist", cfg.WatchlistHandler.List)
	protected.POST("/watchlist", cfg.WatchlistHandler.Add)
	protected.DELETE("/watchlist/:neoId", cfg.WatchlistHandler.Remove)
	protected.PATCH("/watchlist/:neoId/alert", cfg.WatchlistHandler.ToggleAlert)

	return router
}
