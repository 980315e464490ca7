// Package testkit generates deterministic synthetic samples and datasets
// for tests and the demo command.
package testkit

import (
	"math"
	"math/rand"
	"strings"

	"bstat/domain/dataset"
)

// Kit produces synthetic data from a seeded RNG, so every run with the same
// seed sees the same fixtures.
type Kit struct {
	rng *rand.Rand
}

// New creates a kit seeded for reproducible generation.
func New(seed int64) *Kit {
	return &Kit{rng: rand.New(rand.NewSource(seed))}
}

// GaussianValues returns n samples from a normal distribution.
func (k *Kit) GaussianValues(n int, mean, sd float64) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = mean + sd*k.rng.NormFloat64()
	}
	return values
}

// SkewedValues returns n strictly positive samples spanning several orders
// of magnitude, with most of the mass near the minimum. Useful for forcing
// logarithmic bucket layouts.
func (k *Kit) SkewedValues(n int, base float64) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = math.Pow(base, k.rng.Float64()*float64(n))
	}
	return values
}

// UniformInts returns n integer-valued samples drawn uniformly from
// [low, high].
func (k *Kit) UniformInts(n, low, high int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = float64(low + k.rng.Intn(high-low+1))
	}
	return values
}

// Rows returns a dataset of n rows with two numeric columns, a string
// column, and a column spanning two orders of magnitude.
func (k *Kit) Rows(n int) dataset.Rows {
	rows := make(dataset.Rows, n)
	for i := range rows {
		rows[i] = dataset.Row{
			"alfa":    k.rng.Intn(100000),
			"bravo":   k.rng.Float64(),
			"charlie": strings.Repeat("a", 1+k.rng.Intn(10)),
			"delta":   math.Pow(10, 2*k.rng.Float64()),
		}
	}
	return rows
}
