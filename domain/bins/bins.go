// Package bins computes human-friendly histogram bucket layouts for a set of
// numeric samples. Bucket boundaries are kept "nice" (few significant digits)
// while still covering the data, switching from linear to logarithmic spacing
// when the distribution is too right-skewed for a useful linear display.
package bins

import (
	"fmt"
	"math"
	"sort"

	"bstat/domain/nice"
	"bstat/internal/errors"
)

// Mode identifies how bucket boundaries are spaced.
type Mode string

const (
	ModeLinear      Mode = "linear"
	ModeLogarithmic Mode = "logarithmic"
)

// ValueCount pairs a sample value with its number of occurrences.
type ValueCount struct {
	Value float64
	Count int
}

// Request describes the samples to compute a bucket layout for. Exactly one
// of Values or Counted must be supplied; a raw value list and the counted
// multiset derived from it produce identical layouts.
type Request struct {
	Values  []float64
	Counted []ValueCount

	// BinCount overrides the Sturges' rule estimate when positive.
	BinCount int
}

// Layout is an immutable bucket layout: a lower bound at or below the
// smallest sample and an ordered boundary list reaching past the largest.
type Layout struct {
	mode       Mode
	lowerBound float64
	binSize    float64
	binCount   int
	boundaries []float64
}

// Mode returns the boundary spacing mode.
func (l *Layout) Mode() Mode { return l.mode }

// IsLogarithmic reports whether boundaries grow multiplicatively.
func (l *Layout) IsLogarithmic() bool { return l.mode == ModeLogarithmic }

// LowerBound returns the first boundary.
func (l *Layout) LowerBound() float64 { return l.lowerBound }

// BinSize returns the constant bucket width in linear mode and 0 in
// logarithmic mode, where widths vary per bucket.
func (l *Layout) BinSize() float64 { return l.binSize }

// BinCount returns the number of buckets.
func (l *Layout) BinCount() int { return l.binCount }

// BinBoundaries returns one more number than the bin count. The bins are the
// ranges between adjacent numbers in the list.
func (l *Layout) BinBoundaries() []float64 {
	out := make([]float64, len(l.boundaries))
	copy(out, l.boundaries)
	return out
}

// BinIndexForValue returns the index of the bucket containing value: the
// smallest i with value < boundaries[i+1]. Values at or beyond the top
// boundary are clamped into the last bucket, so classification is total.
func (l *Layout) BinIndexForValue(value float64) int {
	for i := 0; i < l.binCount; i++ {
		if value < l.boundaries[i+1] {
			return i
		}
	}
	return l.binCount - 1
}

// New computes a bucket layout for the requested samples.
func New(req Request) (*Layout, error) {
	s, err := normalize(req)
	if err != nil {
		return nil, err
	}

	// A single distinct value gets a fixed one-bucket layout; the general
	// formulas would divide by a zero span.
	if len(s.distinct) == 1 {
		v := s.distinct[0]
		return &Layout{
			mode:       ModeLinear,
			lowerBound: v,
			binSize:    0,
			binCount:   1,
			boundaries: []float64{v, v},
		}, nil
	}

	binCount := req.BinCount
	if binCount == 0 {
		binCount = sturges(s.total)
	}

	linear, err := linearLayout(s, binCount)
	if err != nil {
		return nil, err
	}
	if !shouldUseLogarithmic(s, linear) {
		return linear, nil
	}
	return logarithmicLayout(s, linear.binCount)
}

type sample struct {
	distinct []float64 // ascending
	counts   []int     // parallel to distinct
	total    int
}

func (s sample) min() float64 { return s.distinct[0] }
func (s sample) max() float64 { return s.distinct[len(s.distinct)-1] }

func normalize(req Request) (sample, error) {
	if len(req.Values) > 0 && len(req.Counted) > 0 {
		return sample{}, errors.InvalidInput("values and counted samples are mutually exclusive")
	}
	if len(req.Values) == 0 && len(req.Counted) == 0 {
		return sample{}, errors.InvalidInput("at least one sample value is required")
	}
	if req.BinCount < 0 {
		return sample{}, errors.InvalidInput("bin count override must not be negative")
	}

	byValue := make(map[float64]int)
	if len(req.Values) > 0 {
		for _, v := range req.Values {
			if err := checkFinite(v); err != nil {
				return sample{}, err
			}
			byValue[v]++
		}
	} else {
		for _, vc := range req.Counted {
			if err := checkFinite(vc.Value); err != nil {
				return sample{}, err
			}
			if vc.Count <= 0 {
				return sample{}, errors.InvalidInput(
					fmt.Sprintf("count for value %v must be positive, got %d", vc.Value, vc.Count))
			}
			byValue[vc.Value] += vc.Count
		}
	}

	s := sample{distinct: make([]float64, 0, len(byValue))}
	for v := range byValue {
		s.distinct = append(s.distinct, v)
	}
	sort.Float64s(s.distinct)
	s.counts = make([]int, len(s.distinct))
	for i, v := range s.distinct {
		s.counts[i] = byValue[v]
		s.total += byValue[v]
	}
	return s, nil
}

func checkFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.InvalidInput(fmt.Sprintf("sample value %v is not finite", v))
	}
	return nil
}

// sturges estimates a bucket count from the sample size: 1 + round(log2(n)).
// See http://onlinestatbook.com/2/graphing_distributions/histograms.html
func sturges(n int) int {
	return 1 + int(math.Round(math.Log2(float64(n))))
}

func linearLayout(s sample, binCount int) (*Layout, error) {
	low := s.min()
	high := s.max()
	span := high - low

	// Start with a nice number in the middle, and work out from there.
	middle := nice.RoundWithin((low+high)/2, span/float64(binCount))

	// Pick a nice bucket size, big enough to reach from the middle out to
	// both ends.
	biggestSide := math.Max(middle-low, high-middle)
	binSize := nice.RoundUp(biggestSide * 2 / float64(binCount))

	// Center the buckets on the middle. Works for even and odd counts
	// because the half-count offset may be fractional.
	lowerBound := middle - binSize*float64(binCount)/2

	// A negative axis start on all-non-negative data is a display artifact.
	if low >= 0 && lowerBound < 0 {
		lowerBound = 0
	}

	// The estimated count was only a hint for picking the bucket size; the
	// authoritative count comes from the realized bound and size.
	binCount = int(math.Ceil((high - lowerBound) / binSize))

	if lowerBound > low || high > lowerBound+binSize*float64(binCount) {
		return nil, errors.InternalError(
			fmt.Sprintf("bucket layout [%v, %v] by %v does not cover samples [%v, %v]",
				lowerBound, lowerBound+binSize*float64(binCount), binSize, low, high))
	}

	boundaries := make([]float64, binCount+1)
	for i := range boundaries {
		boundaries[i] = lowerBound + float64(i)*binSize
	}
	return &Layout{
		mode:       ModeLinear,
		lowerBound: lowerBound,
		binSize:    binSize,
		binCount:   binCount,
		boundaries: boundaries,
	}, nil
}

// shouldUseLogarithmic reports whether the data is too right-skewed for the
// candidate linear layout: strictly more than half of all occurrences land
// in its first bucket, and every sample is strictly positive.
func shouldUseLogarithmic(s sample, linear *Layout) bool {
	if s.min() <= 0 {
		return false
	}
	firstBucketTop := linear.boundaries[1]
	inFirst := 0
	for i, v := range s.distinct {
		if v < firstBucketTop {
			inFirst += s.counts[i]
		}
	}
	return inFirst*2 > s.total
}

func logarithmicLayout(s sample, binCount int) (*Layout, error) {
	lowerBound := nice.RoundDown(s.min())
	upperBound := s.max()

	// The binCount-th root of the total growth is the per-bucket growth
	// factor. Each boundary is then niced independently, so the sequence is
	// not a perfect geometric progression.
	growth := nice.RoundUp(math.Pow(upperBound/lowerBound, 1/float64(binCount)))

	boundaries := make([]float64, binCount+1)
	for i := range boundaries {
		boundaries[i] = nice.RoundUp(lowerBound * math.Pow(growth, float64(i)))
	}
	for i := 1; i < len(boundaries); i++ {
		if boundaries[i] <= boundaries[i-1] {
			return nil, errors.InternalError(
				fmt.Sprintf("logarithmic boundaries not increasing at index %d: %v", i, boundaries))
		}
	}
	if lowerBound > s.min() || upperBound > boundaries[len(boundaries)-1] {
		return nil, errors.InternalError(
			fmt.Sprintf("logarithmic layout %v does not cover samples [%v, %v]",
				boundaries, s.min(), upperBound))
	}

	return &Layout{
		mode:       ModeLogarithmic,
		lowerBound: lowerBound,
		binSize:    0,
		binCount:   binCount,
		boundaries: boundaries,
	}, nil
}
