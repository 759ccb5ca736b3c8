package time

import (
	"math"
	"testing"
)

const tolerance = 1e-10

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name   string
		signal []float64
		want   Summary
	}{
		{"empty", nil, Summary{}},
		{"single", []float64{4}, Summary{Length: 1, Min: 4, Max: 4, Mean: 4}},
		{"ramp", []float64{1, 2, 3, 4, 5}, Summary{Length: 5, Min: 1, Max: 5, MaxPos: 4, Mean: 3}},
		{"mixed", []float64{0, -3, 2, -1}, Summary{Length: 4, Min: -3, MinPos: 1, Max: 2, MaxPos: 2, Mean: -0.5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Summarize(tc.signal)
			if got.Length != tc.want.Length || got.MinPos != tc.want.MinPos || got.MaxPos != tc.want.MaxPos {
				t.Fatalf("positions: got %+v, want %+v", got, tc.want)
			}
			if !almostEqual(got.Min, tc.want.Min, tolerance) ||
				!almostEqual(got.Max, tc.want.Max, tolerance) ||
				!almostEqual(got.Mean, tc.want.Mean, tolerance) {
				t.Fatalf("values: got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestLinearTrend_ExactLine(t *testing.T) {
	signal := make([]float64, 50)
	for i := range signal {
		signal[i] = 0.25 - 1.5*float64(i)
	}

	b, m := LinearTrend(signal)
	if !almostEqual(b, 0.25, 1e-9) || !almostEqual(m, -1.5, 1e-12) {
		t.Fatalf("LinearTrend: got (%v, %v), want (0.25, -1.5)", b, m)
	}
}

func TestLinearTrend_Short(t *testing.T) {
	b, m := LinearTrend([]float64{3})
	if b != 3 || m != 0 {
		t.Fatalf("single sample: got (%v, %v), want (3, 0)", b, m)
	}

	b, m = LinearTrend(nil)
	if b != 0 || m != 0 {
		t.Fatalf("empty: got (%v, %v), want (0, 0)", b, m)
	}
}

func TestMean(t *testing.T) {
	if got := Mean([]float64{2, 4, 6}); !almostEqual(got, 4, tolerance) {
		t.Fatalf("Mean: got %v, want 4", got)
	}
}
