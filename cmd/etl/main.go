// Command etl runs one full ETL pass: extract the delimited input files,
// transform them into the clean set, load the store with replace semantics,
// and verify loaded row counts. Exit status is nonzero on any stage error or
// a verification FAIL.
package main

import (
	"context"
	"os"

	"github.com/dvloznov/retail-etl/internal/config"
	"github.com/dvloznov/retail-etl/internal/infra/sqlite"
	"github.com/dvloznov/retail-etl/internal/logger"
	"github.com/dvloznov/retail-etl/internal/pipeline"
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

	ctx := logger.WithContext(context.Background(), log)

	log.Info().
		Str("database", cfg.DatabasePath).
		Str("customers", cfg.CustomersFile).
		Str("transactions", cfg.TransactionsFile).
		Msg("Starting ETL run")

	report, err := pipeline.Run(ctx, store, store, cfg.CustomersFile, cfg.TransactionsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("ETL run failed")
	}

	log.Info().
		Str("run_id", report.RunID).
		Int("skipped_lines", report.CustomersSkipped+report.TransactionsSkipped).
		Int("customers_clean", report.Customers.Clean).
		Int("customers_rejected", report.Customers.Rejected()).
		Int("transactions_clean", report.Transactions.Clean).
		Int("transactions_rejected", report.Transactions.Rejected()).
		Msg("Quality report")

	if !report.Verification.OK() {
		log.Error().Str("status", report.Verification.Status()).Msg("Row count verification failed")
		os.Exit(1)
	}

	log.Info().Str("status", report.Verification.Status()).Msg("ETL run completed")
}
