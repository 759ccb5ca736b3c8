package process_test

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-sac/internal/testutil"
	"github.com/cwbudde/algo-sac/process"
	"github.com/cwbudde/algo-sac/sac"
)

func TestIntegrate_Trapezoidal(t *testing.T) {
	tr := testutil.Trace(t, 0.5, 1, []float64{0, 2, 4, 6})

	if err := process.Integrate(tr, process.Trapezoidal); err != nil {
		t.Fatalf("Integrate: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, tr.Data(), []float64{0.5, 2, 4.5}, 0)
	if tr.B() != 1.25 || tr.Npts() != 3 {
		t.Fatalf("b=%v npts=%d, want 1.25 3", tr.B(), tr.Npts())
	}
	testutil.RequireConsistent(t, tr)
}

func TestIntegrate_Rectangle(t *testing.T) {
	tr := testutil.Trace(t, 0.5, 1, []float64{2, 2, -4, 6})

	if err := process.New().Integrate(tr, process.Rectangle); err != nil {
		t.Fatalf("Integrate: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, tr.Data(), []float64{1, 2, 0, 3}, 0)
	if tr.B() != 1 || tr.Npts() != 4 {
		t.Fatalf("b=%v npts=%d, want 1 4", tr.B(), tr.Npts())
	}
	testutil.RequireConsistent(t, tr)
}

func TestIntegrate_UndoesDifferentiate(t *testing.T) {
	x := testutil.Ramp(3, 0.25, 20)
	tr := testutil.Trace(t, 0.1, 0, x)
	p := process.New()

	if err := p.Differentiate(tr, process.TwoPoint); err != nil {
		t.Fatal(err)
	}
	if err := p.Integrate(tr, process.Rectangle); err != nil {
		t.Fatal(err)
	}
	// Running sum of delta*dx/dt recovers x[i+1]-x[0].
	got := tr.Data()
	for i := range got {
		testutil.RequireNearlyEqual(t, "sample", got[i], x[i+1]-x[0], 1e-5)
	}
}

func TestIntegrate_Invalid(t *testing.T) {
	if err := process.Integrate(exampleTrace(t), process.Method(0)); !errors.Is(err, sac.ErrValidation) {
		t.Fatalf("method 0: got %v", err)
	}
	single := testutil.Trace(t, 1, 0, []float64{1})
	if err := process.Integrate(single, process.Trapezoidal); !errors.Is(err, sac.ErrValidation) {
		t.Fatalf("single sample: got %v", err)
	}
}
