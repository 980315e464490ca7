// Command bstat demonstrates the library: it renders a histogram of
// normally distributed samples, a histogram sweep over a synthetic dataset,
// and the dataset itself as a text table.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"bstat/app"
	"bstat/domain/histogram"
	"bstat/internal"
	"bstat/internal/config"
	"bstat/internal/display"
	"bstat/internal/testkit"
)

func main() {
	// Load environment variables from .env file if present
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger := internal.NewDefaultLogger()
	kit := testkit.New(cfg.Data.Seed)

	values := kit.GaussianValues(cfg.Data.SampleSize, 0, 1)
	h, err := histogram.New("random", values)
	if err != nil {
		log.Fatalf("Failed to build histogram: %v", err)
	}
	fmt.Print(h.String())

	rows := kit.Rows(cfg.Data.TableRows)
	table := display.NewTable(rows, display.TableConfig{
		ColumnNames: rows.Keys(),
		SortKey:     "delta",
	})
	fmt.Print(table.String())

	svc := app.NewDistributionSweepService()
	result, err := svc.Run(context.Background(), app.SweepRequest{Rows: rows})
	if err != nil {
		log.Fatalf("Distribution sweep failed: %v", err)
	}
	logger.Info("sweep %s analyzed %d columns in %dms",
		result.SweepID, len(result.Columns), result.RuntimeMs)
	for _, cd := range result.Columns {
		fmt.Print(cd.Histogram.String())
	}
}
