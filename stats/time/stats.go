// Package time provides time-domain summary statistics for sample sequences.
package time

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Summary holds the extrema and mean of a sample sequence.
type Summary struct {
	Length int
	Min    float64
	MinPos int
	Max    float64
	MaxPos int
	Mean   float64
}

// Summarize computes extrema and mean in a single pass over the extrema and
// a vectorized sum for the mean. An empty signal yields a zero Summary.
func Summarize(signal []float64) Summary {
	n := len(signal)
	if n == 0 {
		return Summary{}
	}

	s := Summary{
		Length: n,
		Min:    signal[0],
		Max:    signal[0],
	}
	for i, x := range signal[1:] {
		if x < s.Min {
			s.Min = x
			s.MinPos = i + 1
		}
		if x > s.Max {
			s.Max = x
			s.MaxPos = i + 1
		}
	}
	s.Mean = vecmath.Sum(signal) / float64(n)

	return s
}

// Mean returns the arithmetic mean of the signal, or 0 if it is empty.
func Mean(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	return vecmath.Sum(signal) / float64(len(signal))
}

// LinearTrend returns the least-squares line y = intercept + slope*i fitted
// against the sample index i. Signals shorter than two samples have zero
// slope and their mean as intercept.
func LinearTrend(signal []float64) (intercept, slope float64) {
	n := len(signal)
	if n < 2 {
		return Mean(signal), 0
	}

	// Center the index to keep the normal equations well conditioned.
	xm := float64(n-1) / 2
	ym := Mean(signal)

	var sxy, sxx float64
	for i, y := range signal {
		dx := float64(i) - xm
		sxy += dx * (y - ym)
		sxx += dx * dx
	}
	slope = sxy / sxx
	if math.IsNaN(slope) || math.IsInf(slope, 0) {
		slope = 0
	}

	return ym - slope*xm, slope
}
