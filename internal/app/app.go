package app

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yungbote/neowatch-backend/internal/db"
	"github.com/yungbote/neowatch-backend/internal/logger"
	"github.com/yungbote/neowatch-backend/internal/observability"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Router   *gin.Engine
	Cfg      Config
	Clients  Clients
	Repos    Repos
	Services Services

	otelShutdown func(context.Context) error
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	otelShutdown := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: "neowatch-backend",
		Environment: os.Getenv("APP_ENV"),
		Version:     os.Getenv("APP_VERSION"),
	})

	pg, err := db.NewPostgresService(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init postgres: %w", err)
	}
	if err := pg.AutoMigrateAll(); err != nil {
		log.Sync()
		return nil, fmt.Errorf("postgres automigrate: %w", err)
	}
	theDB := pg.DB()

	clientset := wireClients(log, cfg)
	reposet := wireRepos(theDB, log)
	serviceset := wireServices(theDB, log, cfg, clientset, reposet)
	handlerset := wireHandlers(log, serviceset)
	middlewareset := wireMiddleware(log, cfg)
	router := wireRouter(cfg, handlerset, middlewareset)

	return &App{
		Log:          log,
		DB:           theDB,
		Router:       router,
		Cfg:          cfg,
		Clients:      clientset,
		Repos:        reposet,
		Services:     serviceset,
		otelShutdown: otelShutdown,
	}, nil
}

func (a *App) Run(addr string) error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	return a.Router.Run(addr)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.otelShutdown != nil {
		_ = a.otelShutdown(context.Background())
	}
	if a.Clients.Cache != nil {
		_ = a.Clients.Cache.Close()
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
