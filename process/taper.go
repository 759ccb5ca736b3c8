package process

import (
	"github.com/cwbudde/algo-sac/dsp/window"
	"github.com/cwbudde/algo-sac/sac"
)

// DefaultTaperWidth is the conventional taper width: 5% of the trace at each
// end.
const DefaultTaperWidth = 0.05

// Taper multiplies both ends of t by a half window of the given shape. width
// is the fraction of the trace covered at each end and must lie in
// (0, 0.5]. The half-window length is max(2, floor((npts+1)*width)), capped
// at npts.
func (p *Processor) Taper(t *sac.Trace, width float64, kind window.Type) error {
	if !(width > 0 && width <= 0.5) {
		return sac.Validationf("taper width %v outside (0, 0.5]", width)
	}

	if !kind.Valid() {
		return sac.Validationf("unknown taper %s", kind)
	}

	n := window.TaperLength(t.Npts(), width)
	if n == 0 {
		return nil
	}
	w, err := window.HalfTaper(kind, n)
	if err != nil {
		return sac.Validationf("%v", err)
	}

	data := t.Data()
	window.ApplyEdges(data, w)
	t.SetData(data)
	return nil
}

// TaperAll tapers every trace.
func (p *Processor) TaperAll(traces []*sac.Trace, width float64, kind window.Type) error {
	return Each(traces, func(t *sac.Trace) error { return p.Taper(t, width, kind) })
}

// TaperCopy returns a tapered copy of t.
func (p *Processor) TaperCopy(t *sac.Trace, width float64, kind window.Type) (*sac.Trace, error) {
	return Copy(t, func(c *sac.Trace) error { return p.Taper(c, width, kind) })
}

// TaperAllCopy returns tapered copies of traces.
func (p *Processor) TaperAllCopy(traces []*sac.Trace, width float64, kind window.Type) ([]*sac.Trace, error) {
	return CopyAll(traces, func(c *sac.Trace) error { return p.Taper(c, width, kind) })
}

// Taper tapers t with the default Processor.
func Taper(t *sac.Trace, width float64, kind window.Type) error { return std.Taper(t, width, kind) }
