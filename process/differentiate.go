package process

import (
	"fmt"

	"github.com/cwbudde/algo-sac/sac"
)

// Stencil selects the finite-difference scheme of Differentiate. Its value
// is the number of points the scheme spans.
type Stencil int

const (
	TwoPoint   Stencil = 2
	ThreePoint Stencil = 3
	FivePoint  Stencil = 5
)

func (s Stencil) String() string {
	switch s {
	case TwoPoint, ThreePoint, FivePoint:
		return fmt.Sprintf("%d-point", int(s))
	default:
		return fmt.Sprintf("Stencil(%d)", int(s))
	}
}

// Differentiate replaces the samples by their time derivative.
//
//   - TwoPoint: forward difference, one sample shorter, b moves by delta/2.
//   - ThreePoint: centered difference, two samples shorter, b moves by delta.
//   - FivePoint: fourth-order centered difference with the centered
//     difference at the first and last output, two samples shorter, b moves
//     by delta.
func (p *Processor) Differentiate(t *sac.Trace, stencil Stencil) error {
	x := t.Data()
	n := len(x)
	delta := t.Delta()

	var (
		out   []float64
		shift float64
	)
	switch stencil {
	case TwoPoint:
		if n < 2 {
			return sac.Validationf("%s derivative needs 2 samples, have %d", stencil, n)
		}
		out = make([]float64, n-1)
		for i := range out {
			out[i] = (x[i+1] - x[i]) / delta
		}
		shift = delta / 2
	case ThreePoint, FivePoint:
		if n < 3 {
			return sac.Validationf("%s derivative needs 3 samples, have %d", stencil, n)
		}
		out = make([]float64, n-2)
		for i := 1; i < n-1; i++ {
			if stencil == FivePoint && i >= 2 && i <= n-3 {
				out[i-1] = (2.0/3.0)*(x[i+1]-x[i-1])/delta - (1.0/12.0)*(x[i+2]-x[i-2])/delta
				continue
			}
			out[i-1] = (x[i+1] - x[i-1]) / (2 * delta)
		}
		shift = delta
	default:
		return sac.Validationf("unknown stencil %d", int(stencil))
	}

	return t.SetSeries(t.B()+shift, delta, out)
}

// DifferentiateAll differentiates every trace.
func (p *Processor) DifferentiateAll(traces []*sac.Trace, stencil Stencil) error {
	return Each(traces, func(t *sac.Trace) error { return p.Differentiate(t, stencil) })
}

// DifferentiateCopy returns the derivative of t as a new trace.
func (p *Processor) DifferentiateCopy(t *sac.Trace, stencil Stencil) (*sac.Trace, error) {
	return Copy(t, func(c *sac.Trace) error { return p.Differentiate(c, stencil) })
}

// DifferentiateAllCopy returns differentiated copies of traces.
func (p *Processor) DifferentiateAllCopy(traces []*sac.Trace, stencil Stencil) ([]*sac.Trace, error) {
	return CopyAll(traces, func(c *sac.Trace) error { return p.Differentiate(c, stencil) })
}

// Differentiate differentiates t with the default Processor.
func Differentiate(t *sac.Trace, stencil Stencil) error { return std.Differentiate(t, stencil) }
