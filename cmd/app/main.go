package main

import (
	"proccms/config"
	"proccms/di"
	"proccms/helper"
	"proccms/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title PROCCMS API
// @version 1.0
// @description Campus facilities backend: repair requests, room bookings, gate and vehicle passes.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
