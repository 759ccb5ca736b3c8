package process

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sac/sac"
)

// Grid selects the new sampling of Interpolate. Exactly one Grid is
// accepted per call.
type Grid struct {
	npts     int
	delta    float64
	multiple int
	which    gridKind
}

type gridKind int

const (
	gridNone gridKind = iota
	gridNpts
	gridDelta
	gridMultiple
)

// ToNpts resamples [b, e] onto n samples.
func ToNpts(n int) Grid { return Grid{npts: n, which: gridNpts} }

// ToDelta resamples [b, e] at interval d. The last sample falls on or
// before e.
func ToDelta(d float64) Grid { return Grid{delta: d, which: gridDelta} }

// ByMultiple inserts m-1 samples between each original pair.
func ByMultiple(m int) Grid { return Grid{multiple: m, which: gridMultiple} }

// resolve returns the new sample count and interval for a trace spanning
// span seconds with npts samples.
func (g Grid) resolve(npts int, delta, span float64) (int, float64, error) {
	switch g.which {
	case gridNpts:
		if g.npts < 2 {
			return 0, 0, sac.Validationf("interpolate: npts must be at least 2, got %d", g.npts)
		}
		return g.npts, span / float64(g.npts-1), nil
	case gridDelta:
		if !(g.delta > 0) {
			return 0, 0, sac.Validationf("interpolate: delta must be positive, got %v", g.delta)
		}
		steps := span / g.delta
		// Absorb float32 rounding of b and e near whole steps.
		if r := math.Round(steps); math.Abs(steps-r) < 1e-4 {
			steps = r
		}
		n := int(math.Floor(steps)) + 1
		if n < 2 {
			return 0, 0, sac.Validationf("interpolate: delta %v leaves fewer than 2 samples", g.delta)
		}
		return n, g.delta, nil
	case gridMultiple:
		if g.multiple <= 0 {
			return 0, 0, sac.Validationf("interpolate: multiple must be positive, got %d", g.multiple)
		}
		return (npts-1)*g.multiple + 1, delta / float64(g.multiple), nil
	default:
		return 0, 0, sac.Validationf("interpolate: no target grid")
	}
}

// Interpolate resamples t onto a new uniform grid starting at b, through a
// degree-2 spline from the configured SplineFitter. Exactly one grid must
// be given.
func (p *Processor) Interpolate(t *sac.Trace, grids ...Grid) error {
	if len(grids) != 1 {
		return sac.Validationf("interpolate: exactly one of npts, delta, multiple required, got %d", len(grids))
	}
	if t.Npts() < 2 {
		return sac.Validationf("interpolate: need at least 2 samples, have %d", t.Npts())
	}

	b := t.B()
	npts, delta, err := grids[0].resolve(t.Npts(), t.Delta(), t.E()-b)
	if err != nil {
		return err
	}

	model, err := p.fitter().FitSpline(t.Times(), t.Data(), 2)
	if err != nil {
		return fmt.Errorf("fit spline: %w", collaboratorErr(err))
	}

	times := make([]float64, npts)
	for i := range times {
		times[i] = b + float64(i)*delta
	}
	return t.SetSeries(b, delta, model.Evaluate(times))
}

// InterpolateAll resamples every trace onto the same kind of grid.
func (p *Processor) InterpolateAll(traces []*sac.Trace, grids ...Grid) error {
	return Each(traces, func(t *sac.Trace) error { return p.Interpolate(t, grids...) })
}

// InterpolateCopy returns a resampled copy of t.
func (p *Processor) InterpolateCopy(t *sac.Trace, grids ...Grid) (*sac.Trace, error) {
	return Copy(t, func(c *sac.Trace) error { return p.Interpolate(c, grids...) })
}

// InterpolateAllCopy returns resampled copies of traces.
func (p *Processor) InterpolateAllCopy(traces []*sac.Trace, grids ...Grid) ([]*sac.Trace, error) {
	return CopyAll(traces, func(c *sac.Trace) error { return p.Interpolate(c, grids...) })
}

// Interpolate resamples t with the default Processor.
func Interpolate(t *sac.Trace, grids ...Grid) error { return std.Interpolate(t, grids...) }
