package process_test

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-sac/dsp/window"
	"github.com/cwbudde/algo-sac/internal/testutil"
	"github.com/cwbudde/algo-sac/process"
	"github.com/cwbudde/algo-sac/sac"
)

func ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}

func TestTaper_Hanning(t *testing.T) {
	tr := testutil.Trace(t, 1, 0, ones(99))

	// n = floor(100 * 0.05) = 5
	if err := process.Taper(tr, process.DefaultTaperWidth, window.TypeHann); err != nil {
		t.Fatalf("Taper: %v", err)
	}
	got := tr.Data()
	for i := range 5 {
		want := 0.5 - 0.5*math.Cos(math.Pi*float64(i)/5)
		testutil.RequireNearlyEqual(t, "head", got[i], want, 1e-7)
		testutil.RequireNearlyEqual(t, "tail", got[98-i], want, 1e-7)
	}
	for i := 5; i < 94; i++ {
		if got[i] != 1 {
			t.Fatalf("sample %d changed: %v", i, got[i])
		}
	}
	testutil.RequireConsistent(t, tr)
}

func TestTaper_KernelsDiffer(t *testing.T) {
	p := process.New()
	first := map[window.Type]float64{}
	for _, kind := range []window.Type{window.TypeHann, window.TypeHamming, window.TypeCosine} {
		c, err := p.TaperCopy(testutil.Trace(t, 1, 0, ones(50)), 0.1, kind)
		if err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
		first[kind] = c.Data()[1]
	}
	// Weight at offset 1 of 5: hann 0.0955, hamming 0.1679, cosine 0.1564.
	testutil.RequireNearlyEqual(t, "hann", first[window.TypeHann], 0.5-0.5*math.Cos(math.Pi/5), 1e-6)
	testutil.RequireNearlyEqual(t, "hamming", first[window.TypeHamming], 0.54-0.46*math.Cos(math.Pi/5), 1e-6)
	testutil.RequireNearlyEqual(t, "cosine", first[window.TypeCosine], math.Sin(math.Pi/10), 1e-6)
}

func TestTaper_Invalid(t *testing.T) {
	for _, width := range []float64{0, -0.1, 0.51, math.NaN()} {
		if err := process.Taper(exampleTrace(t), width, window.TypeHann); !errors.Is(err, sac.ErrValidation) {
			t.Fatalf("width %v: got %v", width, err)
		}
	}
	if err := process.Taper(exampleTrace(t), 0.1, window.Type(0)); !errors.Is(err, sac.ErrValidation) {
		t.Fatalf("unknown kernel: got %v", err)
	}
}
