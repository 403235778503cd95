package main

import (
	"os"

	"buslink/config"
	"buslink/helper"
	"buslink/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	logger.InitLogger()

	if err := config.Init(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize configuration")
	}

	cfg := config.Get()
	logger.SetLogLevel(cfg)

	direction := "up"
	if len(os.Args) > 1 {
		direction = os.Args[1]
	}

	switch direction {
	case "up":
		if err := helper.MigrateUp(cfg); err != nil {
			log.Fatal().Err(err).Msg("Migration up failed")
		}
	case "down":
		if err := helper.MigrateDown(cfg); err != nil {
			log.Fatal().Err(err).Msg("Migration down failed")
		}
	default:
		log.Fatal().Str("direction", direction).Msg("Unknown migration direction, use up or down")
	}
}
