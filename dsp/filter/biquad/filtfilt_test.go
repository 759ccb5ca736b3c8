package biquad

import (
	"math"
	"testing"
)

func TestForward_LeavesInputUntouched(t *testing.T) {
	in := []float64{1, 0, 0, 0}
	out := Forward([]Coefficients{testCoeffs}, in)

	if in[0] != 1 || in[1] != 0 {
		t.Fatalf("input modified: %v", in)
	}
	for i, w := range []float64{0.25, 0.55, 0.35, 0.048} {
		if !almostEqual(out[i], w, eps) {
			t.Errorf("sample %d: got %v, want %v", i, out[i], w)
		}
	}
}

func TestZeroPhase_SymmetricImpulse(t *testing.T) {
	// A forward-backward pass has a symmetric impulse response, so a
	// centered impulse stays centered.
	const n = 257
	in := make([]float64, n)
	in[n/2] = 1

	out := ZeroPhase(twoSectionCoeffs(), in)
	for k := 1; k < 40; k++ {
		if d := math.Abs(out[n/2-k] - out[n/2+k]); d > 1e-9 {
			t.Fatalf("asymmetry at lag %d: %v vs %v", k, out[n/2-k], out[n/2+k])
		}
	}
}

func TestZeroPhase_Empty(t *testing.T) {
	if out := ZeroPhase(twoSectionCoeffs(), nil); len(out) != 0 {
		t.Fatalf("got %v, want empty", out)
	}
}
