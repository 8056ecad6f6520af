package main

import (
	"context"
	"fmt"
	"os"

	"deal-formatter/config"
	"deal-formatter/llm"
	"deal-formatter/services"
	"deal-formatter/storage"
	"deal-formatter/utils"
)

func main() {
	logger := utils.NewLogger()

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	logger.Info("=== Deal Listing Formatter starting ===")
	logger.Info("Config — input: %s | output: %s | model: %s", cfg.InputPath, cfg.OutputPath, llm.Model)

	rows, extraHeaders, err := storage.ReadDeals(cfg.InputPath)
	if err != nil {
		logger.Error("Failed to load input: %v", err)
		os.Exit(1)
	}
	logger.Info("Loaded %d deal rows from %s", len(rows), cfg.InputPath)

	csvWriter, err := storage.NewCSVWriter(cfg.OutputPath, extraHeaders)
	if err != nil {
		logger.Error("Failed to create CSV writer: %v", err)
		os.Exit(1)
	}
	defer csvWriter.Close()

	client := llm.NewClient(cfg.APIKey)
	generator := services.NewGenerator(client, logger)
	pipeline := services.NewPipeline(services.NewNormalizer(), generator, logger)

	results := pipeline.Run(context.Background(), rows)

	if err := csvWriter.WriteResults(rows, results); err != nil {
		logger.Error("CSV write failed: %v", err)
		os.Exit(1)
	}

	if cfg.PostgresEnabled {
		pgWriter, err := storage.NewPostgresWriter(cfg.DSN(), cfg.ConnectAttempts, logger)
		if err != nil {
			logger.Error("PostgreSQL unavailable, skipping DB sink: %v", err)
		} else {
			defer pgWriter.Close()
			if err := pgWriter.WriteResults(rows, results); err != nil {
				logger.Error("PostgreSQL write failed: %v", err)
			} else {
				logger.Info("Listings stored in PostgreSQL (table: deal_listings)")
			}
		}
	}

	reportSvc := services.NewReportService(logger)
	reportSvc.Print(reportSvc.Generate(results))

	fmt.Printf("Saved formatted deals to %s\n", cfg.OutputPath)
}
