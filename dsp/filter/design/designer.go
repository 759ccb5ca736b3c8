package design

import (
	"fmt"

	"github.com/cwbudde/algo-sac/dsp/filter/biquad"
	"github.com/cwbudde/algo-sac/dsp/filter/design/pass"
)

// Designer synthesizes Butterworth cascades. The zero value is ready to use.
type Designer struct{}

// DesignFilter returns the biquad cascade for kind at the given corners.
//
// A bandpass is a highpass at corners[0] followed by a lowpass at
// corners[1], each with the full pole count. Corners must lie strictly
// inside (0, sampleRate/2).
func (Designer) DesignFilter(kind Kind, corners []float64, sampleRate float64,
	proto Prototype, poles int,
) ([]biquad.Coefficients, error) {
	if !proto.Valid() {
		return nil, invalidf("unknown filter prototype %d", int(proto))
	}
	if proto != Butterworth {
		return nil, fmt.Errorf("%w: %s", ErrUnimplementedPrototype, proto)
	}
	if !kind.Valid() {
		return nil, invalidf("unknown filter kind %d", int(kind))
	}
	if len(corners) != kind.Corners() {
		return nil, invalidf("%s takes %d corner(s), got %d", kind, kind.Corners(), len(corners))
	}
	if poles <= 0 {
		return nil, invalidf("pole count must be positive, got %d", poles)
	}

	nyquist := sampleRate / 2
	for _, c := range corners {
		if !(c > 0 && c < nyquist) {
			return nil, invalidf("corner %v Hz outside (0, %v)", c, nyquist)
		}
	}

	switch kind {
	case Lowpass:
		return pass.ButterworthLP(corners[0], poles, sampleRate), nil
	case Highpass:
		return pass.ButterworthHP(corners[0], poles, sampleRate), nil
	default:
		if corners[0] >= corners[1] {
			return nil, invalidf("bandpass corners must increase, got %v >= %v", corners[0], corners[1])
		}
		hp := pass.ButterworthHP(corners[0], poles, sampleRate)
		lp := pass.ButterworthLP(corners[1], poles, sampleRate)
		return append(hp, lp...), nil
	}
}

// ApplyForward filters samples causally and returns a new slice.
func (Designer) ApplyForward(coeffs []biquad.Coefficients, samples []float64) []float64 {
	return biquad.Forward(coeffs, samples)
}

// ApplyZeroPhase filters samples forward and backward and returns a new
// slice. The effective attenuation is doubled in dB.
func (Designer) ApplyZeroPhase(coeffs []biquad.Coefficients, samples []float64) []float64 {
	return biquad.ZeroPhase(coeffs, samples)
}
