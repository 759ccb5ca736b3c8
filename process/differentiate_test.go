package process_test

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-sac/internal/testutil"
	"github.com/cwbudde/algo-sac/process"
	"github.com/cwbudde/algo-sac/sac"
)

func TestDifferentiate_TwoPointExample(t *testing.T) {
	tr := exampleTrace(t)

	if err := process.Differentiate(tr, process.TwoPoint); err != nil {
		t.Fatalf("Differentiate: %v", err)
	}
	if tr.Npts() != 4 {
		t.Fatalf("npts: got %d, want 4", tr.Npts())
	}
	testutil.RequireNearlyEqual(t, "b", tr.B(), 0.01, 1e-7)
	testutil.RequireSliceNearlyEqual(t, tr.Data(), []float64{50, 50, 50, 50}, 1e-4)
	testutil.RequireConsistent(t, tr)
}

func TestDifferentiate_Stencils(t *testing.T) {
	// x = t^2 sampled at delta = 0.5; the exact derivative is 2t.
	const delta = 0.5
	x := make([]float64, 9)
	for i := range x {
		tt := float64(i) * delta
		x[i] = tt * tt
	}

	cases := []struct {
		stencil process.Stencil
		npts    int
		b       float64
	}{
		{process.ThreePoint, 7, 0.5},
		{process.FivePoint, 7, 0.5},
	}
	for _, tc := range cases {
		t.Run(tc.stencil.String(), func(t *testing.T) {
			tr := testutil.Trace(t, delta, 0, x)
			if err := process.New().Differentiate(tr, tc.stencil); err != nil {
				t.Fatalf("Differentiate: %v", err)
			}
			if tr.Npts() != tc.npts || tr.B() != tc.b {
				t.Fatalf("npts=%d b=%v, want %d %v", tr.Npts(), tr.B(), tc.npts, tc.b)
			}
			// Centered differences are exact for quadratics.
			want := make([]float64, tc.npts)
			for i := range want {
				want[i] = 2 * (tc.b + float64(i)*delta)
			}
			testutil.RequireSliceNearlyEqual(t, tr.Data(), want, 1e-5)
			testutil.RequireConsistent(t, tr)
		})
	}
}

func TestDifferentiate_FivePointUsesWideStencil(t *testing.T) {
	// Cubic data separates the 5-point interior (exact) from the 3-point
	// ends (off by delta^2).
	x := []float64{0, 1, 8, 27, 64, 125, 216}
	tr := testutil.Trace(t, 1, 0, x)
	if err := process.Differentiate(tr, process.FivePoint); err != nil {
		t.Fatalf("Differentiate: %v", err)
	}

	// Outputs at t=1..5: ends (t=1, t=5) use (x[i+1]-x[i-1])/2 = 3t^2+1.
	want := []float64{4, 12, 27, 48, 76}
	testutil.RequireSliceNearlyEqual(t, tr.Data(), want, 1e-4)
}

func TestDifferentiate_Invalid(t *testing.T) {
	p := process.New()
	if err := p.Differentiate(exampleTrace(t), process.Stencil(4)); !errors.Is(err, sac.ErrValidation) {
		t.Fatalf("stencil 4: got %v", err)
	}
	short := testutil.Trace(t, 1, 0, []float64{1, 2})
	if err := p.Differentiate(short, process.ThreePoint); !errors.Is(err, sac.ErrValidation) {
		t.Fatalf("short trace: got %v", err)
	}
}
