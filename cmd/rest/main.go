package main

import (
	"log"

	"onemore-backend/internal/bootstrap"
	"onemore-backend/internal/config"
	"onemore-backend/internal/pkg/logger"
	"onemore-backend/internal/server"
)

func main() {
	cfg := config.Load()

	zapLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	defer zapLogger.Sync()

	container, err := bootstrap.NewContainer(cfg, zapLogger)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	zapLogger.Info("main", "ai reply generation configured", map[string]interface{}{
		"remote":  cfg.Ai.Enabled(),
		"baseURL": cfg.Ai.BaseURL,
		"model":   cfg.Ai.Model,
	})

	srv := server.New(cfg, container)
	if err := srv.Run(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
