package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/neowatch-backend/internal/logger"
	"github.com/yungbote/neowatch-backend/internal/repos"
)

type Repos struct {
	AlertState repos.AlertStateRepo
	Watchlist  repos.WatchlistRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		AlertState: repos.NewAlertStateRepo(db, log),
		Watchlist:  repos.NewWatchlistRepo(db, log),
	}
}
