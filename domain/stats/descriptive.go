// Package stats provides the descriptive statistics and probability helpers
// that accompany the binning core: summary measures over raw samples and
// closed-form probabilities for common distributions.
package stats

import (
	mfstats "github.com/montanaflynn/stats"
)

// Mean returns the arithmetic mean of v.
func Mean(v []float64) (float64, error) {
	return mfstats.Mean(v)
}

// StandardDeviation returns the sample standard deviation of v (n-1
// denominator).
func StandardDeviation(v []float64) (float64, error) {
	return mfstats.StandardDeviationSample(v)
}

// Percentile returns the value at percentile p of v.
func Percentile(v []float64, p float64) (float64, error) {
	return mfstats.Percentile(v, p)
}

// Trimean returns the weighted average of the median and the two quartiles:
// (Q1 + 2*median + Q3) / 4. It is a robust measure of central tendency.
func Trimean(v []float64) (float64, error) {
	q1, err := mfstats.Percentile(v, 25)
	if err != nil {
		return 0, err
	}
	median, err := mfstats.Median(v)
	if err != nil {
		return 0, err
	}
	q3, err := mfstats.Percentile(v, 75)
	if err != nil {
		return 0, err
	}
	return (q1 + 2*median + q3) / 4, nil
}

// InterquartileRange returns the spread between the 25th and 75th
// percentiles of v.
func InterquartileRange(v []float64) (float64, error) {
	q1, err := mfstats.Percentile(v, 25)
	if err != nil {
		return 0, err
	}
	q3, err := mfstats.Percentile(v, 75)
	if err != nil {
		return 0, err
	}
	return q3 - q1, nil
}

// CorrelationCoefficient returns the Pearson product-moment correlation
// between x and y.
func CorrelationCoefficient(x, y []float64) (float64, error) {
	return mfstats.Pearson(x, y)
}
