package main

import (
	"flag"
	"fmt"
	"os"

	"house-rental/internal/cli"
	"house-rental/internal/config"
	"house-rental/internal/database"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func main() {
	reset := flag.Bool("reset", false, "drop and recreate all tables before seeding")
	seed := flag.Bool("seed", true, "insert sample data into empty tables")
	inspect := flag.Bool("inspect", false, "print schema and row counts, make no changes")
	dbPath := flag.String("db", "", "override the configured database path")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database failed")
	}

	if *inspect {
		if err := inspectDB(db); err != nil {
			log.Fatal().Err(err).Msg("inspect failed")
		}
		return
	}

	if *reset {
		if err := database.Reset(db); err != nil {
			log.Fatal().Err(err).Msg("reset failed")
		}
		log.Info().Msg("tables dropped and recreated")
	} else if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate failed")
	}

	if *seed {
		if err := database.Seed(db); err != nil {
			log.Fatal().Err(err).Msg("seed failed")
		}
		log.Info().Msg("sample data present")
	}
	fmt.Printf("Database setup completed at %s. Run the rental command to start the CLI.\n", cfg.DBPath)
}

type columnInfo struct {
	CID       int     `gorm:"column:cid"`
	Name      string  `gorm:"column:name"`
	Type      string  `gorm:"column:type"`
	NotNull   int     `gorm:"column:notnull"`
	DfltValue *string `gorm:"column:dflt_value"`
	PK        int     `gorm:"column:pk"`
}

func inspectDB(db *gorm.DB) error {
	var tables []string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' ORDER BY name`).Scan(&tables).Error; err != nil {
		return err
	}
	fmt.Printf("Tables: %v\n", tables)

	for _, table := range []string{"Listings", "Bookings", "BookingEvents"} {
		fmt.Printf("\n--- %s ---\n", table)
		var cols []columnInfo
		if err := db.Raw(fmt.Sprintf("PRAGMA table_info(%q)", table)).Scan(&cols).Error; err != nil {
			return err
		}
		rows := make([][]string, 0, len(cols))
		for _, c := range cols {
			dflt := ""
			if c.DfltValue != nil {
				dflt = *c.DfltValue
			}
			rows = append(rows, []string{
				fmt.Sprint(c.CID), c.Name, c.Type, fmt.Sprint(c.NotNull), dflt, fmt.Sprint(c.PK),
			})
		}
		cli.RenderTable(os.Stdout, []string{"ID", "Name", "Type", "NotNull", "Default", "PK"}, rows)

		var count int64
		if err := db.Table(table).Count(&count).Error; err != nil {
			return err
		}
		fmt.Printf("Total rows: %d\n", count)
	}

	var statusCounts []struct {
		Status string `gorm:"column:status"`
		N      int64  `gorm:"column:n"`
	}
	if err := db.Raw(`SELECT status, COUNT(*) AS n FROM "Bookings" GROUP BY status`).Scan(&statusCounts).Error; err != nil {
		return err
	}
	if len(statusCounts) > 0 {
		fmt.Println("\nBooking status counts:")
		rows := make([][]string, 0, len(statusCounts))
		for _, sc := range statusCounts {
			rows = append(rows, []string{sc.Status, fmt.Sprint(sc.N)})
		}
		cli.RenderTable(os.Stdout, []string{"Status", "Count"}, rows)
	}
	return nil
}
