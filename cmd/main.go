package main

import (
	"os"

	"github.com/rs/zerolog/log"

	_ "github.com/studiva/studiva-backend/docs" // swagger docs, generated by swag init
	"github.com/studiva/studiva-backend/internal/cli"
	"github.com/studiva/studiva-backend/internal/logger"
)

// @title Studiva Learning Platform API
// @version 1.0
// @description Backend for material progress tracking, challenge scoring, statistics and leaderboards.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	if err := cli.Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
