package process_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/cwbudde/algo-sac/internal/testutil"
	"github.com/cwbudde/algo-sac/process"
	"github.com/cwbudde/algo-sac/sac"
)

// exampleTrace is delta=0.02, b=0, samples 1..5.
func exampleTrace(t *testing.T) *sac.Trace {
	t.Helper()
	return testutil.Trace(t, 0.02, 0, []float64{1, 2, 3, 4, 5})
}

// loggingProcessor returns a Processor whose log output lands in the
// returned buffer.
func loggingProcessor() (*process.Processor, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return process.New(process.WithLogger(logger)), &buf
}

// consistent reports whether the derived header fields of tr match its
// samples, for use inside property checks.
func consistent(tr *sac.Trace) bool {
	data := tr.Data()
	if tr.Int(sac.Npts) != len(data) {
		return false
	}
	wantE := tr.B()
	if len(data) > 0 {
		wantE += tr.Delta() * float64(len(data)-1)
	}
	if math.Abs(tr.E()-wantE) > testutil.RelEps(wantE, 1e-5) {
		return false
	}
	if len(data) == 0 {
		return !tr.IsSet(sac.Depmen)
	}
	lo, hi, sum := math.Inf(1), math.Inf(-1), 0.0
	for _, v := range data {
		lo, hi, sum = math.Min(lo, v), math.Max(hi, v), sum+v
	}
	scale := math.Max(math.Abs(lo), math.Abs(hi))
	return tr.Float(sac.Depmin) == lo && tr.Float(sac.Depmax) == hi &&
		math.Abs(tr.Float(sac.Depmen)-sum/float64(len(data))) <= testutil.RelEps(scale, 1e-5)
}
