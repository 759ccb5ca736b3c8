package pass

import "github.com/cwbudde/algo-sac/dsp/filter/biquad"

// ButterworthLP designs a lowpass Butterworth cascade. It returns nil for a
// non-positive order or a corner outside (0, Nyquist).
func ButterworthLP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	if order <= 0 || !validCorner(freq, sampleRate) {
		return nil
	}
	sections := make([]biquad.Coefficients, 0, (order+1)/2)

	for i := order/2 - 1; i >= 0; i-- {
		sections = append(sections, lowpassRBJ(freq, butterworthQ(order, i), sampleRate))
	}
	if order%2 != 0 {
		sections = append(sections, butterworthFirstOrderLP(freq, sampleRate))
	}
	return sections
}

// ButterworthHP designs a highpass Butterworth cascade. It returns nil for a
// non-positive order or a corner outside (0, Nyquist).
func ButterworthHP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	if order <= 0 || !validCorner(freq, sampleRate) {
		return nil
	}
	sections := make([]biquad.Coefficients, 0, (order+1)/2)

	for i := order/2 - 1; i >= 0; i-- {
		sections = append(sections, highpassRBJ(freq, butterworthQ(order, i), sampleRate))
	}
	if order%2 != 0 {
		sections = append(sections, butterworthFirstOrderHP(freq, sampleRate))
	}
	return sections
}
