// Package app coordinates domain components into higher-level operations.
package app

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"bstat/domain/core"
	"bstat/domain/dataset"
	"bstat/domain/histogram"
	"bstat/internal/errors"
)

// defaultConcurrency bounds how many columns are analyzed at once.
const defaultConcurrency = 4

// DistributionSweepService computes a histogram for every numeric column of
// a dataset.
type DistributionSweepService struct {
	concurrency int
}

// NewDistributionSweepService creates a sweep service with the default
// concurrency limit.
func NewDistributionSweepService() *DistributionSweepService {
	return &DistributionSweepService{concurrency: defaultConcurrency}
}

// SweepRequest defines the inputs for one distribution sweep.
type SweepRequest struct {
	Rows dataset.Rows

	// Columns restricts the sweep; empty means every numeric column.
	Columns []string

	// SweepID is optional and will be generated if empty.
	SweepID core.ID
}

// ColumnDistribution is the per-column output of a sweep.
type ColumnDistribution struct {
	Column    string
	Histogram *histogram.Histogram
}

// SweepResult contains the complete output of a distribution sweep.
type SweepResult struct {
	SweepID   core.ID
	Columns   []ColumnDistribution
	RuntimeMs int64
}

// Run executes the sweep, analyzing columns concurrently. Column order in
// the result matches the requested order.
func (s *DistributionSweepService) Run(ctx context.Context, req SweepRequest) (*SweepResult, error) {
	startTime := time.Now()

	if len(req.Rows) == 0 {
		return nil, errors.InvalidInput("sweep requires at least one row")
	}
	columns := req.Columns
	if len(columns) == 0 {
		columns = req.Rows.NumericKeys()
	}
	if len(columns) == 0 {
		return nil, errors.InvalidInput("dataset has no numeric columns to sweep")
	}

	sweepID := req.SweepID
	if sweepID.IsEmpty() {
		sweepID = core.NewID()
	}

	results := make([]ColumnDistribution, len(columns))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, column := range columns {
		i, column := i, column
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			values, ok := req.Rows.NumericColumn(column)
			if !ok {
				return errors.InvalidInput(fmt.Sprintf("column %q is not numeric", column))
			}
			h, err := histogram.New(column, values)
			if err != nil {
				return errors.Wrapf(err, "histogram for column %q", column)
			}
			results[i] = ColumnDistribution{Column: column, Histogram: h}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &SweepResult{
		SweepID:   sweepID,
		Columns:   results,
		RuntimeMs: time.Since(startTime).Milliseconds(),
	}, nil
}
