package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/sksohail19/cricket-score-tracking-app/internal/config"
	"github.com/sksohail19/cricket-score-tracking-app/internal/handler"
	"github.com/sksohail19/cricket-score-tracking-app/internal/logger"
	"github.com/sksohail19/cricket-score-tracking-app/internal/repository/sqlite"
	"github.com/sksohail19/cricket-score-tracking-app/internal/service"
)

func main() {
	// Load application config
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("config loading failed: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("logger initialization failed: %v", err)
	}

	db, err := sqlite.Open(cfg.Storage.Path)
	if err != nil {
		log.Fatalf("storage open failed: %v", err)
	}
	repo, err := sqlite.NewMatchRepository(db, appLogger)
	if err != nil {
		log.Fatalf("storage migration failed: %v", err)
	}

	matchSvc := service.NewMatchService(repo, appLogger)

	r := gin.New()
	r.Use(gin.Recovery())
	handler.Register(r, repo, matchSvc)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	appLogger.Info().Str("addr", addr).Str("db", cfg.Storage.Path).Msg("service started")
	if err := r.Run(addr); err != nil {
		appLogger.Fatal().Err(err).Msg("server stopped")
	}
}
