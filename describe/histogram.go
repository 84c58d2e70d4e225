// SPDX-License-Identifier: MIT

package describe

import "math"

// DefaultBins is the bin count used by Summarize for the histogram mode.
const DefaultBins = 30

const (
	opHistogram = "Histogram"
	opMode      = "Mode"
)

// Bin is one histogram bucket covering [Lo, Hi). The last bin also includes Hi.
type Bin struct {
	Lo    float64 `json:"lo" yaml:"lo"`
	Hi    float64 `json:"hi" yaml:"hi"`
	Count int     `json:"count" yaml:"count"`
}

// Mid returns the bin midpoint.
func (b Bin) Mid() float64 {
	return b.Lo + (b.Hi-b.Lo)/2
}

// Histogram splits [min(xs), max(xs)] into bins equal-width buckets and counts
// the observations in each. A constant sample yields a single bin of zero width
// holding every observation.
//
// The range may be wider than the largest float64 (e.g. ±1e308); edges and
// indices are then computed on halved values.
//
// Errors:
//   - ErrEmptySample for an empty sample.
//   - ErrDomain when bins ≤ 0 or xs holds NaN or ±Inf.
func Histogram(xs []float64, bins int) ([]Bin, error) {
	if len(xs) == 0 {
		return nil, describeErrorf(opHistogram, ErrEmptySample)
	}
	if bins <= 0 || !allFinite(xs) {
		return nil, describeErrorf(opHistogram, ErrDomain)
	}

	lo, hi, _ := MinMax(xs)
	if lo == hi {
		return []Bin{{Lo: lo, Hi: hi, Count: len(xs)}}, nil
	}

	// half is the half-width of a bin; it is finite for any finite lo, hi.
	half := (hi*0.5 - lo*0.5) / float64(bins)
	edge := func(i int) float64 {
		step := float64(i) * half
		if w := step + step; !math.IsInf(w, 0) {
			return lo + w
		}
		return lo + step + step
	}

	out := make([]Bin, bins)
	for i := range out {
		out[i].Lo = edge(i)
		out[i].Hi = edge(i + 1)
	}
	out[bins-1].Hi = hi

	var idx int
	for _, x := range xs {
		idx = int(math.Floor((x*0.5 - lo*0.5) / half))
		idx = max(0, min(idx, bins-1)) // x == hi lands in the last bin
		out[idx].Count++
	}

	return out, nil
}

func allFinite(xs []float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}

// Mode estimates the mode of continuous data as the midpoint of the most
// populated histogram bin. Ties go to the lowest bin.
func Mode(xs []float64, bins int) (float64, error) {
	h, err := Histogram(xs, bins)
	if err != nil {
		return math.NaN(), describeErrorf(opMode, err)
	}

	best := 0
	for i := 1; i < len(h); i++ {
		if h[i].Count > h[best].Count {
			best = i
		}
	}

	return h[best].Mid(), nil
}
