package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/neowatch-backend/internal/server"
)

func wireRouter(cfg Config, handlerset Handlers, middlewareset Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		NeoHandler:       handlerset.Neo,
		AlertHandler:     handlerset.Alert,
		WatchlistHandler: handlerset.Watchlist,
		AuthMiddleware:   middlewareset.Auth,
		CorsOrigins:      cfg.CorsOrigins,
	})
}
