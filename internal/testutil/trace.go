package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-sac/sac"
)

// Trace builds a trace with the given timing and samples or fails t.
func Trace(t *testing.T, delta, b float64, samples []float64) *sac.Trace {
	t.Helper()
	tr, err := sac.New(delta, len(samples), sac.WithBegin(b))
	if err != nil {
		t.Fatalf("sac.New(%v, %d): %v", delta, len(samples), err)
	}
	tr.SetData(samples)
	return tr
}

// RequireConsistent fails t unless the derived header fields of tr agree with
// its samples: npts, e, depmin, depmax and depmen.
func RequireConsistent(t *testing.T, tr *sac.Trace) {
	t.Helper()

	data := tr.Data()
	if got := tr.Int(sac.Npts); got != len(data) {
		t.Fatalf("npts: header %d, samples %d", got, len(data))
	}

	wantE := tr.B()
	if len(data) > 0 {
		wantE = tr.B() + tr.Delta()*float64(len(data)-1)
	}
	RequireNearlyEqual(t, "e", tr.E(), wantE, RelEps(wantE, 1e-6))

	if len(data) == 0 {
		return
	}
	lo, hi, sum := math.Inf(1), math.Inf(-1), 0.0
	for _, v := range data {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
		sum += v
	}
	mean := sum / float64(len(data))
	RequireNearlyEqual(t, "depmin", tr.Float(sac.Depmin), lo, 0)
	RequireNearlyEqual(t, "depmax", tr.Float(sac.Depmax), hi, 0)
	RequireNearlyEqual(t, "depmen", tr.Float(sac.Depmen), mean, RelEps(math.Max(math.Abs(lo), math.Abs(hi)), 1e-6))
}
