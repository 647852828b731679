package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"

	_ "smeta/docs"
	"smeta/internal/adapter/http/routes"
	"smeta/pkg/config"
	"smeta/pkg/logger"
)

// @title           Smeta API
// @version         1.0
// @description     Construction estimate drafting: pricing, drafts, JSON export/import and PDF.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("[app][main] invalid configuration")
	}

	logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: cfg.App.Name})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("[app][main] server stopped")
	}
}
