package app

import (
	"fmt"
	"os"

	"gorm.io/gorm"

	redisclient "github.com/pulsefeed/pulsefeed-core/internal/clients/redis"
	"github.com/pulsefeed/pulsefeed-core/internal/db"
	"github.com/pulsefeed/pulsefeed-core/internal/logger"
	"github.com/pulsefeed/pulsefeed-core/internal/services"
)

type App struct {
	Log         *logger.Logger
	DB          *gorm.DB
	Cfg         Config
	Repos       Repos
	Services    Services
	Leaderboard *redisclient.Leaderboard
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

	// The leaderboard mirror is optional; without REDIS_ADDR ranking
	// queries fall back to postgres.
	var board *redisclient.Leaderboard
	var leaderboard services.Leaderboard
	if cfg.RedisAddr != "" {
		board, err = redisclient.NewLeaderboard(log)
		if err != nil {
			log.Sync()
			return nil, fmt.Errorf("init leaderboard: %w", err)
		}
		leaderboard = board
	}

	reposet := wireRepos(theDB, log)
	serviceset := wireServices(log, reposet, leaderboard)

	return &App{
		Log:         log,
		DB:          theDB,
		Cfg:         cfg,
		Repos:       reposet,
		Services:    serviceset,
		Leaderboard: board,
	}, nil
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Leaderboard != nil {
		if err := a.Leaderboard.Close(); err != nil {
			a.Log.Warn("leaderboard close failed", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
