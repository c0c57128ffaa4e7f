package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	v1 "github.com/rkas-pintar/backend/internal/controllers/v1"
	"github.com/rkas-pintar/backend/internal/models"
	"github.com/rkas-pintar/backend/internal/router"
	"github.com/rkas-pintar/backend/internal/suggest"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title			RKAS Pintar backend
// @description	BOSP budget planning and realization bookkeeping for elementary schools.
func main() {
	// Load a .env file if one exists. The environment always wins.
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Create data directory
	dataDir := filepath.Join(".", "data")
	err := os.MkdirAll(dataDir, os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	dbFile, ok := os.LookupEnv("DB_FILE")
	if !ok {
		dbFile = "data/rkas.db"
	}

	// Connect to the database
	err = models.Connect(dbFile)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Wire the AI collaborator when an endpoint is configured. Without
	// one, the suggestion endpoints fall back to the account rules.
	endpoint, ok := os.LookupEnv("SUGGEST_ENDPOINT")
	if ok {
		model, ok := os.LookupEnv("SUGGEST_MODEL")
		if !ok {
			model = "llama3"
		}

		v1.Suggester = suggest.NewClient(endpoint, model)
		log.Info().Str("endpoint", endpoint).Str("model", model).Msg("Suggestions")
	}

	r, teardown, err := router.Config()
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	router.AttachRoutes(r.Group("/"))

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
