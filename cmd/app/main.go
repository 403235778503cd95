package main

import (
	"context"

	"buslink/config"
	"buslink/di"
	"buslink/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title BusLink API
// @version 1.0
// @description Bus ticket reservation service: route catalog, cart, checkout and booking ledger.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.InitLogger()

	if err := config.Init(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize configuration")
	}

	cfg := config.Get()
	logger.SetLogLevel(cfg)

	app := di.InitializeApp()

	if err := app.Seeder.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Seeding failed")
	}

	app.HTTP.SetupAndServe()
}
