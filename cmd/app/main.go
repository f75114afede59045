package main

import (
	"suitespot/config"
	"suitespot/di"
	"suitespot/helper"
	"suitespot/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	logger.InitLogger()

	cfg := config.Get()

	logger.Configure(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
