package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"creditflow/internal/config"
	"creditflow/internal/database"
	"creditflow/internal/logger"
	"creditflow/internal/services"
)

// The sweep command advances term and debt statuses past their calendar
// deadlines. It is intended to run once a day from cron; reruns for the
// same date are no-ops.
func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Sweep error: %v", err)
	}
}

func run() error {
	asOfFlag := flag.String("as-of", "", "run the sweep as of this date (YYYY-MM-DD, default today)")
	flag.Parse()

	asOf := time.Now()
	if *asOfFlag != "" {
		t, err := time.Parse("2006-01-02", *asOfFlag)
		if err != nil {
			return fmt.Errorf("invalid -as-of date %q: %w", *asOfFlag, err)
		}
		asOf = t
	}

	if _, err := config.Load(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	sweepService := services.NewSweepService(dbManager.DB())
	result, err := sweepService.RunStatusSweep(asOf)
	if err != nil {
		return fmt.Errorf("status sweep failed: %w", err)
	}

	logger.Get().Infow("status sweep finished",
		"as_of", asOf.Format("2006-01-02"),
		"terms_updated", result.TermsUpdated,
		"debts_updated", result.DebtsUpdated,
	)
	return nil
}
