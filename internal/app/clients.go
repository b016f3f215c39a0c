package app

import (
	"os"
	"strings"

	"github.com/yungbote/neowatch-backend/internal/clients/nasa"
	"github.com/yungbote/neowatch-backend/internal/clients/rediscache"
	"github.com/yungbote/neowatch-backend/internal/logger"
)

type Clients struct {
	Nasa  *nasa.Client
	Cache rediscache.Cache
}

func wireClients(log *logger.Logger, cfg Config) Clients {
	log.Info("Wiring clients...")

	nasaClient := nasa.NewClient(cfg.NasaAPIKey, cfg.NasaBaseURL, cfg.NasaTimeout, log)

	// Redis is optional: without it every request goes straight upstream.
	var cache rediscache.Cache = rediscache.Noop{}
	if strings.TrimSpace(os.Getenv("REDIS_ADDR")) != "" {
		c, err := rediscache.New(log)
		if err != nil {
			log.Warn("Redis unavailable, running without cache", "error", err)
		} else {
			cache = c
		}
	} else {
		log.Warn("REDIS_ADDR not set, running without cache")
	}

	return Clients{
		Nasa:  nasaClient,
		Cache: cache,
	}
}
