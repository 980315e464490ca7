package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"bstat/internal/errors"
)

// Factorial returns n! as a float64. Negative n is treated as an empty
// product.
func Factorial(n int) float64 {
	result := 1.0
	for i := 2; i <= n; i++ {
		result *= float64(i)
	}
	return result
}

// BinomialProbability returns the probability of exactly x successes in n
// trials when each trial succeeds with probability p.
func BinomialProbability(n, x int, p float64) float64 {
	dist := distuv.Binomial{N: float64(n), P: p}
	return dist.Prob(float64(x))
}

// BinomialProbabilities returns the probability of the success count landing
// on any of xs, over n trials with per-trial probability p.
func BinomialProbabilities(n int, xs []int, p float64) float64 {
	total := 0.0
	for _, x := range xs {
		total += BinomialProbability(n, x, p)
	}
	return total
}

// PoissonProbability returns the probability of x successes given a mean
// number of successes mu.
func PoissonProbability(mu float64, x int) float64 {
	dist := distuv.Poisson{Lambda: mu}
	return dist.Prob(float64(x))
}

// MultinomialProbability returns the probability that outcome i, occurring
// with probability probs[i], happens counts[i] times for all i. Computed in
// log space to keep large counts stable.
func MultinomialProbability(probs []float64, counts []int) (float64, error) {
	if len(probs) != len(counts) {
		return 0, errors.InvalidInput(
			fmt.Sprintf("got %d probabilities for %d counts", len(probs), len(counts)))
	}
	total := 0
	logProb := 0.0
	for i, n := range counts {
		if n < 0 {
			return 0, errors.InvalidInput("outcome counts must not be negative")
		}
		total += n
		num, _ := math.Lgamma(float64(n) + 1)
		logProb -= num
		if n > 0 {
			logProb += float64(n) * math.Log(probs[i])
		}
	}
	logTotal, _ := math.Lgamma(float64(total) + 1)
	return math.Exp(logTotal + logProb), nil
}

// Bayes returns P(A|B) given P(B|A), P(B|~A), and P(A).
func Bayes(pBGivenA, pBGivenNotA, pA float64) float64 {
	pNotA := 1 - pA
	return (pBGivenA * pA) / (pBGivenA*pA + pBGivenNotA*pNotA)
}

// PercentInRangeNormal returns the fraction of a normally distributed
// population with the given mean and standard deviation that falls between
// low and high.
func PercentInRangeNormal(mean, sd, low, high float64) float64 {
	dist := distuv.Normal{Mu: mean, Sigma: sd}
	return dist.CDF(high) - dist.CDF(low)
}
