package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/okandemir/campusgate/internal/pkg/logger"
	"github.com/okandemir/campusgate/internal/server"
)

// @title CampusGate API
// @version 1.0
// @description Administrative gateway over the academic-records backend

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token issued by the records backend

func main() {
	// Optional .env for local development; real deployments set env vars
	if err := godotenv.Load(); err == nil {
		logger.Info().Msg("Loaded environment from .env")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
