package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/neowatch-backend/internal/logger"
	"github.com/yungbote/neowatch-backend/internal/services"
)

type Services struct {
	Source    services.NeoSource
	Neo       services.NeoService
	Alert     services.AlertService
	Watchlist services.WatchlistService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, clients Clients, reposet Repos) Services {
	log.Info("Wiring services...")

	source := services.NewNeoSource(log, clients.Nasa, clients.Cache, cfg.CacheTTL)

	return Services{
		Source:    source,
		Neo:       services.NewNeoService(log, source, cfg.RiskWeights),
		Alert:     services.NewAlertService(db, log, source, reposet.AlertState),
		Watchlist: services.NewWatchlistService(db, log, source, reposet.Watchlist, cfg.RiskWeights),
	}
}
