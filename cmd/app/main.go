package main

import (
	"carrental/config"
	"carrental/di"
	"carrental/helper"
	"carrental/shared/logger"
	"carrental/shared/timezone"

	"github.com/rs/zerolog/log"
)

// @title Car Rental API
// @version 1.0
// @description Reservations and availability for the rental fleet.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	timezone.Init(cfg.App.Timezone)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
