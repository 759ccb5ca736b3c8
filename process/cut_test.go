package process_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/cwbudde/algo-sac/internal/testutil"
	"github.com/cwbudde/algo-sac/process"
	"github.com/cwbudde/algo-sac/sac"
)

func TestCut_Example(t *testing.T) {
	tr := exampleTrace(t)

	if err := process.Cut(tr, 0.01, 0.07); err != nil {
		t.Fatalf("Cut: %v", err)
	}
	if tr.Npts() != 4 {
		t.Fatalf("npts: got %d, want 4", tr.Npts())
	}
	testutil.RequireSliceNearlyEqual(t, tr.Data(), []float64{2, 3, 4, 5}, 0)
	testutil.RequireNearlyEqual(t, "b", tr.B(), 0.01, 1e-7)
	testutil.RequireNearlyEqual(t, "e", tr.E(), 0.07, 1e-6)
	testutil.RequireConsistent(t, tr)
}

func TestCut_ClampsWithWarning(t *testing.T) {
	p, logs := loggingProcessor()
	tr := exampleTrace(t)

	if err := p.Cut(tr, -1, 10); err != nil {
		t.Fatalf("Cut: %v", err)
	}
	if tr.Npts() != 5 || tr.B() != 0 {
		t.Fatalf("clamped cut changed the trace: npts=%d b=%v", tr.Npts(), tr.B())
	}
	if n := strings.Count(logs.String(), "level=WARN"); n != 2 {
		t.Fatalf("want 2 warnings, got %d:\n%s", n, logs)
	}
}

func TestCut_InvalidRange(t *testing.T) {
	cases := []struct {
		name       string
		begin, end float64
	}{
		{"begin after end of data", 0.5, 1},
		{"end before start of data", -1, -0.5},
		{"reversed window", 0.06, 0.02},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := exampleTrace(t)
			if err := process.Cut(tr, tc.begin, tc.end); !errors.Is(err, sac.ErrInvalidRange) {
				t.Fatalf("got %v, want ErrInvalidRange", err)
			}
			if tr.Npts() != 5 {
				t.Fatal("failed cut modified the trace")
			}
		})
	}
}

func TestCutAllAndCopy(t *testing.T) {
	p := process.New()
	traces := []*sac.Trace{exampleTrace(t), exampleTrace(t)}
	if err := p.CutAll(traces, 0.02, 0.06); err != nil {
		t.Fatalf("CutAll: %v", err)
	}
	for _, tr := range traces {
		testutil.RequireSliceNearlyEqual(t, tr.Data(), []float64{2, 3, 4}, 0)
	}

	orig := exampleTrace(t)
	c, err := p.CutCopy(orig, 0, 0.02)
	if err != nil || c.Npts() != 2 || orig.Npts() != 5 {
		t.Fatalf("CutCopy: npts=%d orig=%d err=%v", c.Npts(), orig.Npts(), err)
	}
}

func TestCut_SampleCountProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	const delta, npts = 0.5, 200
	properties.Property("npts == round((e-b)/delta)+1 for on-grid windows", prop.ForAll(
		func(i, j int) bool {
			if i > j {
				i, j = j, i
			}
			tr, err := sac.New(delta, npts)
			if err != nil {
				return false
			}
			tr.SetData(testutil.Ramp(0, 1, npts))

			begin, end := float64(i)*delta, float64(j)*delta
			if err := process.New().Cut(tr, begin, end); err != nil {
				return false
			}
			want := int(math.Round((end-begin)/delta)) + 1
			return tr.Npts() == want && tr.B() == begin && tr.E() == end &&
				tr.Data()[0] == float64(i) && consistent(tr)
		},
		gen.IntRange(0, npts-1),
		gen.IntRange(0, npts-1),
	))

	properties.TestingRun(t)
}
