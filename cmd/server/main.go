package main

import (
	"context"

	"github.com/rs/zerolog/log"

	_ "github.com/lib/pq"

	"github.com/yash261/banking-app/internal/httpserver"
	"github.com/yash261/banking-app/internal/middleware"
	"github.com/yash261/banking-app/pkg/configpkg"
	"github.com/yash261/banking-app/pkg/dbpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.GetLogger(config)

	conn, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to db")
	}

	server, err := httpserver.New(conn, logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	if err := server.SeedUser(logger.WithContext(context.Background())); err != nil {
		logger.Fatal().Err(err).Msg("cannot seed initial user")
	}

	if err := server.Engine.Run(config.ServerAddress); err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
