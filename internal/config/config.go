// Package config loads pipeline configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the file paths every stage shares. The database file is the
// hand-off medium between stages.
type Config struct {
	DatabasePath     string `env:"ETL_DATABASE_PATH" envDefault:"retail_data.db"`
	CustomersFile    string `env:"ETL_CUSTOMERS_FILE" envDefault:"customers.csv"`
	TransactionsFile string `env:"ETL_TRANSACTIONS_FILE" envDefault:"transactions.csv"`
}

// Load reads configuration from the environment. A .env file in the working
// directory is honored when present but is not required.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse environment: %w", err)
	}
	return cfg, nil
}
