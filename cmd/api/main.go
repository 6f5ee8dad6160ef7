package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/nkumar/talentpool/internal/pkg/logger"
	"github.com/nkumar/talentpool/internal/server"
)

func main() {
	// Optional local overrides; absence is fine outside development
	_ = godotenv.Load()

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
