package main

import (
	"log"
	"net/http"

	webAdapter "po-addon/internal/adapters/web"
	"po-addon/internal/app"
	"po-addon/internal/config"
	"po-addon/internal/document"
	"po-addon/internal/logging"
	"po-addon/internal/platform"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.Must(cfg.Log)
	defer func() { _ = logger.Sync() }()

	client := platform.NewClient(cfg.Platform.BaseURL,
		platform.WithTimeout(cfg.Platform.Timeout),
		platform.WithRateLimit(cfg.Platform.RateLimit, cfg.Platform.RateBurst),
		platform.WithLogger(logger),
	)
	svc := app.NewService(client, document.NewRenderer(), cfg.Platform, logger)
	handler := webAdapter.NewHandler(svc, cfg.AllowedOrigins, logger)

	logger.Info("server starting",
		zap.String("port", cfg.Port),
		zap.String("platform", cfg.Platform.BaseURL),
	)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		logger.Fatal("server", zap.Error(err))
	}
}
