package main

import (
	"github.com/fleetflow/fleetflow-go/internal/api"
	"github.com/fleetflow/fleetflow-go/internal/config"
	"github.com/fleetflow/fleetflow-go/internal/database"
	"github.com/fleetflow/fleetflow-go/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)
	defer log.Sync()

	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		log.Fatalw("failed to open database", "error", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalw("failed to run migrations", "error", err)
	}

	if cfg.SeedDemo {
		if err := database.Seed(db); err != nil {
			log.Fatalw("failed to seed database", "error", err)
		}
	}

	router := api.SetupRouter(cfg, db, log)

	log.Infow("server starting", "port", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatalw("failed to start server", "error", err)
	}
}
