package stats

import (
	"math"
	"testing"
)

const delta = 1e-6

func almostEqual(t *testing.T, want, got float64) {
	t.Helper()
	if math.Abs(want-got) > delta {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestStandardDeviation(t *testing.T) {
	sd, err := StandardDeviation([]float64{6, 11, 15, 12, 3, 14, 15, 15})
	if err != nil {
		t.Fatalf("StandardDeviation failed: %v", err)
	}
	almostEqual(t, 4.5650066, sd)
}

func TestMean(t *testing.T) {
	m, err := Mean([]float64{6, 11, 15, 12, 3, 14, 15, 15})
	if err != nil {
		t.Fatalf("Mean failed: %v", err)
	}
	almostEqual(t, 11.375, m)
}

func TestInterquartileRange(t *testing.T) {
	r, err := InterquartileRange([]float64{
		12, 13, 14, 15, 9, 10, 16, 10,
		8, 10, 11, 12, 13, 22, 23, 24, 25,
	})
	if err != nil {
		t.Fatalf("InterquartileRange failed: %v", err)
	}
	almostEqual(t, 6, r)
}

func TestTrimean(t *testing.T) {
	// Symmetric data: the trimean agrees with the mean.
	tm, err := Trimean([]float64{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("Trimean failed: %v", err)
	}
	almostEqual(t, 3, tm)
}

func TestCorrelationCoefficient(t *testing.T) {
	x := []float64{8, 9, 10, 12, 10, 13, 8, 7, 7, 12,
		11, 11, 9, 13, 9, 10, 11, 10, 7, 8, 8, 11, 8, 13, 9}
	y := []float64{8, 10, 9, 12, 9, 11, 9, 10, 10, 12,
		8, 11, 9, 11, 9, 9, 11, 12, 9, 10, 8, 10, 9, 13, 13}
	r, err := CorrelationCoefficient(x, y)
	if err != nil {
		t.Fatalf("CorrelationCoefficient failed: %v", err)
	}
	almostEqual(t, 0.5427855, r)
}

func TestEmptyInputFails(t *testing.T) {
	if _, err := Mean(nil); err == nil {
		t.Error("expected an error for empty input")
	}
	if _, err := StandardDeviation(nil); err == nil {
		t.Error("expected an error for empty input")
	}
}
