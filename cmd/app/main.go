package main

import (
	"drivent/config"
	"drivent/di"
	"drivent/helper"
	"drivent/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title drivent accommodation API
// @version 1.0
// @description Hotels, rooms and bookings for event attendees.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	logger.InitLogger()

	cfg := config.Get()
	logger.Configure(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
