// Command revenue refreshes the derived customer_revenue table from the
// loaded customers and transactions with a single left-join aggregation.
// Re-running is idempotent: the table is replaced, never appended to.
package main

import (
	"context"

	"github.com/dvloznov/retail-etl/internal/config"
	"github.com/dvloznov/retail-etl/internal/infra/sqlite"
	"github.com/dvloznov/retail-etl/internal/logger"
)

func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	store, err := sqlite.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer store.Close()

	ctx := context.Background()

	log.Info().Str("database", cfg.DatabasePath).Msg("Refreshing customer revenue")

	rows, err := store.RefreshCustomerRevenue(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Revenue aggregation failed")
	}

	log.Info().Int("rows", rows).Msg("customer_revenue refreshed")
}
