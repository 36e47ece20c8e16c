package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"contractor_pro/internal/adapter/http/routes"
	"contractor_pro/internal/config"
	"contractor_pro/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format, cfg.Log.Environment)
	log.WithFields(map[string]interface{}{
		"environment": cfg.Log.Environment,
		"backend":     cfg.Storage.Backend,
	}).Infof("starting contractor pro api")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg, log); err != nil {
		log.WithError(err).Errorf("server stopped with error")
		os.Exit(1)
	}
	log.Infof("server stopped")
}
