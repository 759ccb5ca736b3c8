package process

import (
	"github.com/cwbudde/algo-sac/sac"
	tstats "github.com/cwbudde/algo-sac/stats/time"
)

// Demean removes the mean from the samples.
func (p *Processor) Demean(t *sac.Trace) error {
	x := t.Data()
	if len(x) == 0 {
		return nil
	}
	mean := tstats.Mean(x)
	for i := range x {
		x[i] -= mean
	}
	t.SetData(x)
	return nil
}

// Detrend removes the least-squares line from the samples.
func (p *Processor) Detrend(t *sac.Trace) error {
	x := t.Data()
	if len(x) == 0 {
		return nil
	}
	intercept, slope := tstats.LinearTrend(x)
	for i := range x {
		x[i] -= intercept + slope*float64(i)
	}
	t.SetData(x)
	return nil
}

// DemeanAll demeans every trace.
func (p *Processor) DemeanAll(traces []*sac.Trace) error { return Each(traces, p.Demean) }

// DetrendAll detrends every trace.
func (p *Processor) DetrendAll(traces []*sac.Trace) error { return Each(traces, p.Detrend) }

// DemeanCopy returns a demeaned copy of t.
func (p *Processor) DemeanCopy(t *sac.Trace) (*sac.Trace, error) { return Copy(t, p.Demean) }

// DemeanAllCopy returns demeaned copies of traces.
func (p *Processor) DemeanAllCopy(traces []*sac.Trace) ([]*sac.Trace, error) {
	return CopyAll(traces, p.Demean)
}

// DetrendCopy returns a detrended copy of t.
func (p *Processor) DetrendCopy(t *sac.Trace) (*sac.Trace, error) { return Copy(t, p.Detrend) }

// DetrendAllCopy returns detrended copies of traces.
func (p *Processor) DetrendAllCopy(traces []*sac.Trace) ([]*sac.Trace, error) {
	return CopyAll(traces, p.Detrend)
}

// Demean demeans t with the default Processor.
func Demean(t *sac.Trace) error { return std.Demean(t) }

// Detrend detrends t with the default Processor.
func Detrend(t *sac.Trace) error { return std.Detrend(t) }
