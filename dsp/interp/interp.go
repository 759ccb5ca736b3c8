package interp

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidFit reports knots or a degree the fitter cannot handle.
var ErrInvalidFit = errors.New("interp: invalid spline fit")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidFit}, args...)...)
}

// QuadraticFitter fits degree-2 interpolating B-splines. The zero value is
// ready to use.
type QuadraticFitter struct{}

// FitSpline fits a quadratic spline through (times, samples). times must be
// uniformly spaced and increasing, with at least two points. Only degree 2
// is supported.
func (QuadraticFitter) FitSpline(times, samples []float64, degree int) (*QuadraticSpline, error) {
	if degree != 2 {
		return nil, invalidf("spline degree %d unsupported, want 2", degree)
	}
	if len(times) != len(samples) {
		return nil, invalidf("spline knots: %d times for %d samples", len(times), len(samples))
	}
	n := len(samples)
	if n < 2 {
		return nil, invalidf("spline needs at least 2 samples, got %d", n)
	}

	step := (times[n-1] - times[0]) / float64(n-1)
	if !(step > 0) {
		return nil, invalidf("spline times must increase")
	}
	tol := 1e-6 * step
	for i, t := range times {
		if math.Abs(t-(times[0]+float64(i)*step)) > tol*float64(max(1, i)) {
			return nil, invalidf("spline times not uniform at index %d", i)
		}
	}

	return &QuadraticSpline{
		origin: times[0],
		step:   step,
		coeffs: solveQuadratic(samples),
	}, nil
}

// QuadraticSpline is a fitted uniform quadratic B-spline.
type QuadraticSpline struct {
	origin, step float64
	coeffs       []float64
}

// Evaluate returns the spline value at each time. Times outside the fitted
// span are clamped to its ends.
func (s *QuadraticSpline) Evaluate(times []float64) []float64 {
	out := make([]float64, len(times))
	for i, t := range times {
		out[i] = s.At(t)
	}
	return out
}

// At returns the spline value at time t.
func (s *QuadraticSpline) At(t float64) float64 {
	last := len(s.coeffs) - 1
	u := (t - s.origin) / s.step
	u = math.Max(0, math.Min(u, float64(last)))

	j := int(math.Round(u))
	x := u - float64(j)

	cm, c0, cp := s.coeff(j-1), s.coeff(j), s.coeff(j+1)
	a := 0.5 - x
	b := 0.5 + x
	return cm*a*a/2 + c0*(0.75-x*x) + cp*b*b/2
}

// coeff returns coefficient k, linearly extrapolating one step past either
// end.
func (s *QuadraticSpline) coeff(k int) float64 {
	c := s.coeffs
	last := len(c) - 1
	switch {
	case k < 0:
		return 2*c[0] - c[1]
	case k > last:
		return 2*c[last] - c[last-1]
	default:
		return c[k]
	}
}

// solveQuadratic solves c[i-1] + 6c[i] + c[i+1] = 8y[i] for the interior
// rows, with c[0] = y[0] and c[n-1] = y[n-1], by the Thomas algorithm.
func solveQuadratic(y []float64) []float64 {
	n := len(y)
	c := make([]float64, n)
	if n == 2 {
		c[0], c[1] = y[0], y[1]
		return c
	}

	// Forward sweep. Row 0 is the identity row c[0] = y[0].
	upper := make([]float64, n)
	rhs := make([]float64, n)
	rhs[0] = y[0]
	for i := 1; i < n-1; i++ {
		lower := 1.0
		diag := 6 - lower*upper[i-1]
		upper[i] = 1 / diag
		rhs[i] = (8*y[i] - lower*rhs[i-1]) / diag
	}

	c[n-1] = y[n-1]
	for i := n - 2; i >= 1; i-- {
		c[i] = rhs[i] - upper[i]*c[i+1]
	}
	c[0] = y[0]
	return c
}
