package main

import (
	"log"

	"letterboxd/cmd"
	"letterboxd/internal/data/repository"
	"letterboxd/internal/view"
	"letterboxd/internal/wire"
	"letterboxd/pkg/cache"
	"letterboxd/pkg/cms"
	"letterboxd/pkg/database"
	"letterboxd/pkg/notify"
	"letterboxd/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.String("bucket", config.CMS.BucketSlug),
	)

	// Content API, optionally behind the redis cache
	var client cms.Client = cms.NewClient(config.CMS, logger)
	if config.Cache.Enabled {
		store, err := cache.NewRedisStore(config.Cache)
		if err != nil {
			logger.Warn("Cache unavailable, reading the content API directly", zap.Error(err))
		} else {
			defer store.Close()
			client = cache.NewCMSClient(client, store, config.Cache.TTL, logger)
			logger.Info("Content cache enabled", zap.Duration("ttl", config.Cache.TTL))
		}
	}

	// Watch state backend
	watchStates := repository.NewMemoryWatchStateRepository(logger)
	if config.State.Backend == "postgres" {
		db, err := database.InitDB(config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		watchStates = repository.NewPostgresWatchStateRepository(db, logger)
		logger.Info("Database connected successfully")
	}

	// Moderator notifications
	var notifier notify.Notifier = notify.Nop{}
	if config.Email.Host != "" {
		notifier = notify.NewMailer(config.Email, logger)
	}

	repos := repository.NewRepository(client, watchStates, logger)

	renderer, err := view.New(config.App.Name, logger)
	if err != nil {
		logger.Fatal("Failed to parse templates", zap.Error(err))
	}

	// Wire all dependencies
	app := wire.Wiring(repos, notifier, renderer, config, logger)

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server error", zap.Error(err))
	}
}
