package process

import "github.com/cwbudde/algo-sac/sac"

// Method selects the quadrature rule of Integrate.
type Method int

const (
	// Trapezoidal sums (x[i]+x[i+1])*delta/2. The result is one sample
	// shorter and b moves by delta/2.
	Trapezoidal Method = iota + 1
	// Rectangle is the running sum of x[i]*delta. Length and b are kept.
	Rectangle
)

func (m Method) String() string {
	switch m {
	case Trapezoidal:
		return "trapezoidal"
	case Rectangle:
		return "rectangle"
	default:
		return "unknown"
	}
}

// Integrate replaces the samples by their running integral.
func (p *Processor) Integrate(t *sac.Trace, method Method) error {
	x := t.Data()
	delta := t.Delta()

	switch method {
	case Trapezoidal:
		if len(x) < 2 {
			return sac.Validationf("trapezoidal integration needs 2 samples, have %d", len(x))
		}
		out := make([]float64, len(x)-1)
		var acc float64
		for i := range out {
			acc += (x[i] + x[i+1]) * delta / 2
			out[i] = acc
		}
		return t.SetSeries(t.B()+delta/2, delta, out)
	case Rectangle:
		var acc float64
		for i, v := range x {
			acc += v * delta
			x[i] = acc
		}
		t.SetData(x)
		return nil
	default:
		return sac.Validationf("unknown integration method %d", int(method))
	}
}

// IntegrateAll integrates every trace.
func (p *Processor) IntegrateAll(traces []*sac.Trace, method Method) error {
	return Each(traces, func(t *sac.Trace) error { return p.Integrate(t, method) })
}

// IntegrateCopy returns the integral of t as a new trace.
func (p *Processor) IntegrateCopy(t *sac.Trace, method Method) (*sac.Trace, error) {
	return Copy(t, func(c *sac.Trace) error { return p.Integrate(c, method) })
}

// IntegrateAllCopy returns integrated copies of traces.
func (p *Processor) IntegrateAllCopy(traces []*sac.Trace, method Method) ([]*sac.Trace, error) {
	return CopyAll(traces, func(c *sac.Trace) error { return p.Integrate(c, method) })
}

// Integrate integrates t with the default Processor.
func Integrate(t *sac.Trace, method Method) error { return std.Integrate(t, method) }
