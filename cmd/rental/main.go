package main

import (
	"context"
	"os"

	"house-rental/internal/application/bookings"
	"house-rental/internal/application/earnings"
	"house-rental/internal/application/listings"
	"house-rental/internal/cli"
	"house-rental/internal/config"
	"house-rental/internal/database"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database failed")
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate failed")
	}
	log.Info().Str("path", cfg.DBPath).Str("env", cfg.Env).Msg("database ready")

	menu := &cli.Menu{
		Listings: &listings.Service{DB: db},
		Bookings: &bookings.Service{DB: db},
		Earnings: &earnings.Service{DB: db},
		Prompt:   cli.NewPrompter(os.Stdin, os.Stdout),
		Out:      os.Stdout,
		Symbol:   cfg.CurrencySymbol,
	}
	if err := menu.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("menu loop failed")
	}
}
