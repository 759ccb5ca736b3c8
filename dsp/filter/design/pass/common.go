package pass

import (
	"math"

	"github.com/cwbudde/algo-sac/dsp/filter/biquad"
)

// validCorner reports whether freq lies strictly inside (0, Nyquist).
func validCorner(freq, sampleRate float64) bool {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return false
	}
	return freq > 0 && freq < sampleRate/2 && !math.IsNaN(freq)
}

// butterworthQ returns the quality factor of biquad section index
// (0 <= index < order/2) of a Butterworth cascade.
func butterworthQ(order, index int) float64 {
	theta := math.Pi * float64(2*index+1) / (2 * float64(order))

	s := math.Sin(theta)
	if s == 0 {
		return 1 / math.Sqrt2
	}

	return 1 / (2 * s)
}

// lowpassRBJ is the Audio EQ Cookbook lowpass section.
func lowpassRBJ(freq, q, sampleRate float64) biquad.Coefficients {
	if !validCorner(freq, sampleRate) {
		return biquad.Coefficients{}
	}

	sw, cw := math.Sincos(2 * math.Pi * freq / sampleRate)
	alpha := sw / (2 * q)

	b1 := 1 - cw
	return normalizeBiquad(b1/2, b1, b1/2, 1+alpha, -2*cw, 1-alpha)
}

// highpassRBJ is the Audio EQ Cookbook highpass section.
func highpassRBJ(freq, q, sampleRate float64) biquad.Coefficients {
	if !validCorner(freq, sampleRate) {
		return biquad.Coefficients{}
	}

	sw, cw := math.Sincos(2 * math.Pi * freq / sampleRate)
	alpha := sw / (2 * q)

	b1 := 1 + cw
	return normalizeBiquad(b1/2, -b1, b1/2, 1+alpha, -2*cw, 1-alpha)
}

func butterworthFirstOrderLP(freq, sampleRate float64) biquad.Coefficients {
	if !validCorner(freq, sampleRate) {
		return biquad.Coefficients{}
	}

	k := math.Tan(math.Pi * freq / sampleRate)
	norm := 1 / (1 + k)

	return biquad.Coefficients{
		B0: k * norm,
		B1: k * norm,
		A1: (k - 1) * norm,
	}
}

func butterworthFirstOrderHP(freq, sampleRate float64) biquad.Coefficients {
	if !validCorner(freq, sampleRate) {
		return biquad.Coefficients{}
	}

	k := math.Tan(math.Pi * freq / sampleRate)
	norm := 1 / (1 + k)

	return biquad.Coefficients{
		B0: norm,
		B1: -norm,
		A1: (k - 1) * norm,
	}
}

func normalizeBiquad(b0, b1, b2, a0, a1, a2 float64) biquad.Coefficients {
	if a0 == 0 || math.IsNaN(a0) || math.IsInf(a0, 0) {
		return biquad.Coefficients{}
	}

	return biquad.Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}
