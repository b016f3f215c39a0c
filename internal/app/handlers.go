package app

import (
	"github.com/yungbote/neowatch-backend/internal/handlers"
	"github.com/yungbote/neowatch-backend/internal/logger"
)

type Handlers struct {
	Neo       *handlers.NeoHandler
	Alert     *handlers.AlertHandler
	Watchlist *handlers.WatchlistHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Neo:       handlers.NewNeoHandler(serviceset.Neo),
		Alert:     handlers.NewAlertHandler(serviceset.Alert),
		Watchlist: handlers.NewWatchlistHandler(serviceset.Watchlist),
	}
}
