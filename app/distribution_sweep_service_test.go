package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bstat/domain/core"
	"bstat/internal/errors"
	"bstat/internal/testkit"
)

func TestSweepAnalyzesAllNumericColumns(t *testing.T) {
	kit := testkit.New(1)
	svc := NewDistributionSweepService()

	result, err := svc.Run(context.Background(), SweepRequest{Rows: kit.Rows(200)})
	require.NoError(t, err)

	require.Len(t, result.Columns, 3) // alfa, bravo, delta; charlie is text
	assert.Equal(t, "alfa", result.Columns[0].Column)
	assert.Equal(t, "bravo", result.Columns[1].Column)
	assert.Equal(t, "delta", result.Columns[2].Column)
	for _, cd := range result.Columns {
		require.NotNil(t, cd.Histogram)
		total := 0
		for _, c := range cd.Histogram.Counts() {
			total += c
		}
		assert.Equal(t, 200, total, "every sample of %s should be classified", cd.Column)
	}
	assert.False(t, result.SweepID.IsEmpty())
}

func TestSweepRespectsColumnSelection(t *testing.T) {
	kit := testkit.New(1)
	svc := NewDistributionSweepService()

	result, err := svc.Run(context.Background(), SweepRequest{
		Rows:    kit.Rows(50),
		Columns: []string{"delta"},
	})
	require.NoError(t, err)
	require.Len(t, result.Columns, 1)
	assert.Equal(t, "delta", result.Columns[0].Column)
}

func TestSweepKeepsSuppliedID(t *testing.T) {
	kit := testkit.New(1)
	svc := NewDistributionSweepService()
	id := core.NewID()

	result, err := svc.Run(context.Background(), SweepRequest{Rows: kit.Rows(20), SweepID: id})
	require.NoError(t, err)
	assert.Equal(t, id, result.SweepID)
}

func TestSweepRejectsEmptyDataset(t *testing.T) {
	svc := NewDistributionSweepService()

	_, err := svc.Run(context.Background(), SweepRequest{})
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestSweepRejectsNonNumericColumn(t *testing.T) {
	kit := testkit.New(1)
	svc := NewDistributionSweepService()

	_, err := svc.Run(context.Background(), SweepRequest{
		Rows:    kit.Rows(20),
		Columns: []string{"charlie"},
	})
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestSweepStopsOnCancelledContext(t *testing.T) {
	kit := testkit.New(1)
	svc := NewDistributionSweepService()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Run(ctx, SweepRequest{Rows: kit.Rows(20)})
	require.Error(t, err)
}
