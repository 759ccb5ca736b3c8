package process

import (
	"math"

	"github.com/cwbudde/algo-sac/sac"
)

// Cut keeps the samples between begin and end (seconds, same reference as
// b). Bounds beyond the data are clamped with a warning. A window wholly
// outside the data, or one that selects no sample, fails with
// sac.ErrInvalidRange. The new b is begin after clamping.
func (p *Processor) Cut(t *sac.Trace, begin, end float64) error {
	b, e, delta, n := t.B(), t.E(), t.Delta(), t.Npts()

	if begin > e || end < b {
		return sac.InvalidRangef("cut window [%v, %v] outside data [%v, %v]", begin, end, b, e)
	}
	if begin < b {
		p.log().Warn("cut begins before data, clamping", "begin", begin, "b", b)
		begin = b
	}
	if end > e {
		p.log().Warn("cut ends after data, clamping", "end", end, "e", e)
		end = e
	}

	// 1-based inclusive indices of the first and last kept sample.
	first := int(math.Round((begin-b)/delta)) + 1
	last := n - int(math.Round((e-end)/delta))
	if first > last || first < 1 || last > n {
		return sac.InvalidRangef("cut window [%v, %v] selects no samples", begin, end)
	}

	data := t.Data()[first-1 : last]
	return t.SetSeries(begin, delta, data)
}

// CutAll cuts every trace to the same window.
func (p *Processor) CutAll(traces []*sac.Trace, begin, end float64) error {
	return Each(traces, func(t *sac.Trace) error { return p.Cut(t, begin, end) })
}

// CutCopy returns a cut copy of t.
func (p *Processor) CutCopy(t *sac.Trace, begin, end float64) (*sac.Trace, error) {
	return Copy(t, func(c *sac.Trace) error { return p.Cut(c, begin, end) })
}

// CutAllCopy returns cut copies of traces.
func (p *Processor) CutAllCopy(traces []*sac.Trace, begin, end float64) ([]*sac.Trace, error) {
	return CopyAll(traces, func(c *sac.Trace) error { return p.Cut(c, begin, end) })
}

// Cut cuts t with the default Processor.
func Cut(t *sac.Trace, begin, end float64) error { return std.Cut(t, begin, end) }
