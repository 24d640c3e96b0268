package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration (env + Viper).
type Config struct {
	Env            string
	DBPath         string // path to the sqlite store, ":memory:" for throwaway runs
	CurrencySymbol string // prefixed to two-decimal amounts in tables
}

// Load loads config from env and optional .env file.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}
	dbPath := viper.GetString("RENTAL_DB_PATH")
	if dbPath == "" {
		dbPath = "house_rental.db"
	}
	symbol := viper.GetString("CURRENCY_SYMBOL")
	if symbol == "" {
		symbol = "$"
	}

	return &Config{
		Env:            env,
		DBPath:         dbPath,
		CurrencySymbol: symbol,
	}, nil
}
