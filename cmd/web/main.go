package main

import (
	"context"
	"log"
	"os"

	"log/slog"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/BlissMahlathi/heavenly/internal/config"
	apphttp "github.com/BlissMahlathi/heavenly/internal/http"
	"github.com/BlissMahlathi/heavenly/internal/metrics"
	"github.com/BlissMahlathi/heavenly/internal/storage"
)

func main() {
	// .env is optional; prod uses real env vars
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal(err)
	}

	db, err := gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	store, err := storage.FromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to configure storage: %v", err)
	}
	logger.Info("storage_ready", "driver", store.Driver)

	m := metrics.NewServerMetrics("web")

	r := apphttp.NewRouter(apphttp.Deps{
		Logger:  logger,
		DB:      db,
		Cfg:     cfg,
		Store:   store.Storage,
		Metrics: m,
	})

	logger.Info("listening", "addr", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
