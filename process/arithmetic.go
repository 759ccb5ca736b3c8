package process

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-sac/sac"
)

// Multiply scales every sample by s.
func (p *Processor) Multiply(t *sac.Trace, s float64) error {
	x := t.Data()
	vecmath.ScaleBlockInPlace(x, s)
	t.SetData(x)
	return nil
}

// Add adds s to every sample.
func (p *Processor) Add(t *sac.Trace, s float64) error {
	x := t.Data()
	for i := range x {
		x[i] += s
	}
	t.SetData(x)
	return nil
}

// Divide divides every sample by s. A zero divisor fails before t is
// touched.
func (p *Processor) Divide(t *sac.Trace, s float64) error {
	if s == 0 {
		return sac.Validationf("divide by zero")
	}
	return p.Multiply(t, 1/s)
}

// MultiplyAll scales every trace.
func (p *Processor) MultiplyAll(traces []*sac.Trace, s float64) error {
	return Each(traces, func(t *sac.Trace) error { return p.Multiply(t, s) })
}

// AddAll offsets every trace.
func (p *Processor) AddAll(traces []*sac.Trace, s float64) error {
	return Each(traces, func(t *sac.Trace) error { return p.Add(t, s) })
}

// DivideAll divides every trace. A zero divisor fails before any trace is
// touched.
func (p *Processor) DivideAll(traces []*sac.Trace, s float64) error {
	return Each(traces, func(t *sac.Trace) error { return p.Divide(t, s) })
}

// MultiplyCopy returns a scaled copy of t.
func (p *Processor) MultiplyCopy(t *sac.Trace, s float64) (*sac.Trace, error) {
	return Copy(t, func(c *sac.Trace) error { return p.Multiply(c, s) })
}

// MultiplyAllCopy returns scaled copies of traces.
func (p *Processor) MultiplyAllCopy(traces []*sac.Trace, s float64) ([]*sac.Trace, error) {
	return CopyAll(traces, func(c *sac.Trace) error { return p.Multiply(c, s) })
}

// AddCopy returns an offset copy of t.
func (p *Processor) AddCopy(t *sac.Trace, s float64) (*sac.Trace, error) {
	return Copy(t, func(c *sac.Trace) error { return p.Add(c, s) })
}

// AddAllCopy returns offset copies of traces.
func (p *Processor) AddAllCopy(traces []*sac.Trace, s float64) ([]*sac.Trace, error) {
	return CopyAll(traces, func(c *sac.Trace) error { return p.Add(c, s) })
}

// DivideCopy returns a divided copy of t.
func (p *Processor) DivideCopy(t *sac.Trace, s float64) (*sac.Trace, error) {
	return Copy(t, func(c *sac.Trace) error { return p.Divide(c, s) })
}

// DivideAllCopy returns divided copies of traces.
func (p *Processor) DivideAllCopy(traces []*sac.Trace, s float64) ([]*sac.Trace, error) {
	return CopyAll(traces, func(c *sac.Trace) error { return p.Divide(c, s) })
}

// Multiply scales t with the default Processor.
func Multiply(t *sac.Trace, s float64) error { return std.Multiply(t, s) }

// Add offsets t with the default Processor.
func Add(t *sac.Trace, s float64) error { return std.Add(t, s) }

// Divide divides t with the default Processor.
func Divide(t *sac.Trace, s float64) error { return std.Divide(t, s) }
