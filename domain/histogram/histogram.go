// Package histogram counts samples into an automatically chosen bucket
// layout and renders the distribution as a fixed-width text bar chart.
package histogram

import (
	"math"
	"strconv"
	"strings"

	"bstat/domain/bins"
	"bstat/domain/nice"
)

// maxStars bounds the widest bar: an 80-column display minus 5 columns on
// the left for the axis and 5 on the right for good measure.
const maxStars = 70

// Histogram owns a bucket layout and one count per bucket. It is frozen at
// construction and safe for concurrent readers.
type Histogram struct {
	name   string
	layout *bins.Layout
	counts []int
}

// New computes a bucket layout for values and classifies every value into
// exactly one bucket.
func New(name string, values []float64) (*Histogram, error) {
	layout, err := bins.New(bins.Request{Values: values})
	if err != nil {
		return nil, err
	}
	counts := make([]int, layout.BinCount())
	for _, v := range values {
		counts[layout.BinIndexForValue(v)]++
	}
	return &Histogram{name: name, layout: layout, counts: counts}, nil
}

// Name returns the label the histogram was built with.
func (h *Histogram) Name() string { return h.name }

// Layout returns the bucket layout the counts are classified against.
func (h *Histogram) Layout() *bins.Layout { return h.layout }

// Counts returns one count per bucket.
func (h *Histogram) Counts() []int {
	out := make([]int, len(h.counts))
	copy(out, h.counts)
	return out
}

// String renders one line per bucket lower boundary followed by a bar of
// stars proportional to the bucket's count. When the largest count exceeds
// the display width, bars are scaled down by a nice factor and a one-line
// annotation reports it.
func (h *Histogram) String() string {
	scale := 1.0
	biggest := 0
	for _, c := range h.counts {
		if c > biggest {
			biggest = c
		}
	}
	if biggest > maxStars {
		scale = nice.RoundUp(float64(biggest) / maxStars)
	}

	boundaries := h.layout.BinBoundaries()

	var b strings.Builder
	b.WriteString("#\n")
	b.WriteString("# Histogram of " + h.name + ":\n")
	b.WriteString("#\n")
	if scale != 1.0 {
		b.WriteString("# One star = " + formatBoundary(scale) + "\n")
		b.WriteString("#\n")
	}
	b.WriteString("\n")
	for i, c := range h.counts {
		b.WriteString(formatBoundary(boundaries[i]))
		b.WriteString("\n    |")
		b.WriteString(strings.Repeat("*", int(math.Round(float64(c)/scale))))
		b.WriteString("\n")
	}
	b.WriteString(formatBoundary(boundaries[len(boundaries)-1]))
	b.WriteString("\n")
	return b.String()
}

func formatBoundary(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
