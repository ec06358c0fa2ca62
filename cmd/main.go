// Package main is the entry point for the spool-service application.
//
// @title           Spool Service API
// @version         1.0.0
// @description     Filament spool inventory with remaining-weight summaries.
//
//	Tracks vendors, filaments and spools, records filament consumption and
//	aggregates what is left by material and color.
//
// @contact.name   API Support
// @contact.url    https://github.com/guttosm/spool-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key. Required when authentication is enabled.
//
// @tag.name        Vendors
// @tag.description Filament manufacturers
//
// @tag.name        Filaments
// @tag.description Filament products
//
// @tag.name        Spools
// @tag.description Physical spools and filament consumption
//
// @tag.name        Summary
// @tag.description Remaining filament grouped by material and color
//
// @tag.name        Logs
// @tag.description Audit log queries
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"

	_ "github.com/guttosm/spool-service/docs" // swagger docs

	"github.com/guttosm/spool-service/config"
	"github.com/guttosm/spool-service/internal/app"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	ctx := context.Background()

	application := app.InitializeApp(ctx, cfg)
	server := app.NewServer(application.Router, cfg.Server)
	server.OnShutdown(application.Close)

	if err := server.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
