package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ShivamGupta987/Google-Calendar/internal"
	"github.com/ShivamGupta987/Google-Calendar/internal/api"
	"github.com/ShivamGupta987/Google-Calendar/internal/config"
	"github.com/ShivamGupta987/Google-Calendar/internal/storage"
)

func main() {
	cfg := config.Load()

	logger, err := internal.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	if cfg.DBType == "file" {
		if _, err := os.Stat("data"); os.IsNotExist(err) {
			_ = os.Mkdir("data", 0755)
		}
	}

	repos, err := storage.NewRepositories(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatalf("failed to init storage: %v", err)
	}

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.Use(api.RequestIDMiddleware())

	api.RegisterRoutes(r, api.NewServer(logger, repos))

	go func() {
		logger.Infof("Server running on :%s", cfg.Port)
		if err := r.Run(":" + cfg.Port); err != nil {
			logger.Fatalf("failed to start server: %v", err)
		}
	}()

	// Flush pending storage writes on shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")
	if err := repos.Close(); err != nil {
		logger.Errorf("failed to close storage: %v", err)
	}
}
