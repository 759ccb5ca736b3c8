package process

import (
	"math"

	"github.com/cwbudde/algo-sac/sac"
)

// TimeShift moves the samples by round(seconds/delta) positions. Positive
// shifts move data later. With wrap the samples rotate circularly; without
// it the vacated positions are zeroed. Shifts below half a sample are
// logged and ignored. The time axis (b, e) is unchanged.
func (p *Processor) TimeShift(t *sac.Trace, seconds float64, wrap bool) error {
	n := int(math.Round(seconds / t.Delta()))
	if n == 0 {
		p.log().Warn("time shift below one sample, ignoring", "seconds", seconds, "delta", t.Delta())
		return nil
	}

	x := t.Data()
	size := len(x)
	if size == 0 {
		return nil
	}

	out := make([]float64, size)
	k := ((n % size) + size) % size
	for i, v := range x {
		out[(i+k)%size] = v
	}

	if !wrap {
		if n > 0 {
			clear(out[:min(n, size)])
		} else {
			clear(out[size-min(-n, size):])
		}
	}

	t.SetData(out)
	return nil
}

// TimeShiftAll shifts every trace.
func (p *Processor) TimeShiftAll(traces []*sac.Trace, seconds float64, wrap bool) error {
	return Each(traces, func(t *sac.Trace) error { return p.TimeShift(t, seconds, wrap) })
}

// TimeShiftCopy returns a shifted copy of t.
func (p *Processor) TimeShiftCopy(t *sac.Trace, seconds float64, wrap bool) (*sac.Trace, error) {
	return Copy(t, func(c *sac.Trace) error { return p.TimeShift(c, seconds, wrap) })
}

// TimeShiftAllCopy returns shifted copies of traces.
func (p *Processor) TimeShiftAllCopy(traces []*sac.Trace, seconds float64, wrap bool) ([]*sac.Trace, error) {
	return CopyAll(traces, func(c *sac.Trace) error { return p.TimeShift(c, seconds, wrap) })
}

// TimeShift shifts t with the default Processor.
func TimeShift(t *sac.Trace, seconds float64, wrap bool) error {
	return std.TimeShift(t, seconds, wrap)
}
