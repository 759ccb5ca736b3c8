package biquad

import (
	"math"
	"math/cmplx"
)

// Response is H(e^jw) of one section at freqHz.
func (c Coefficients) Response(freqHz, sampleRate float64) complex128 {
	z1 := cmplx.Exp(complex(0, -2*math.Pi*freqHz/sampleRate))
	z2 := z1 * z1

	num := complex(c.B0, 0) + complex(c.B1, 0)*z1 + complex(c.B2, 0)*z2
	den := 1 + complex(c.A1, 0)*z1 + complex(c.A2, 0)*z2
	return num / den
}

// Response is the product of the section responses.
func (c *Chain) Response(freqHz, sampleRate float64) complex128 {
	h := complex(1, 0)
	for i := range c.sections {
		h *= c.sections[i].Response(freqHz, sampleRate)
	}
	return h
}

// MagnitudeDB is 20*log10|H| of the cascade.
func (c *Chain) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(freqHz, sampleRate)))
}

// MagnitudeDB is the cascade magnitude of coeffs at freqHz in dB.
func MagnitudeDB(coeffs []Coefficients, freqHz, sampleRate float64) float64 {
	return NewChain(coeffs).MagnitudeDB(freqHz, sampleRate)
}
