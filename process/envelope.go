package process

import (
	"fmt"
	"math/bits"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-sac/sac"
)

// Envelope replaces the samples by the magnitude of the analytic signal.
// The series is zero-padded to a power of two for the transform.
func (p *Processor) Envelope(t *sac.Trace) error {
	x := t.Data()
	if len(x) == 0 {
		return nil
	}

	size := 1
	if len(x) > 1 {
		size = 1 << bits.Len(uint(len(x)-1))
	}
	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return fmt.Errorf("envelope: fft plan of size %d: %w", size, err)
	}

	in := make([]complex128, size)
	for i, v := range x {
		in[i] = complex(v, 0)
	}
	bins := make([]complex128, size)
	if err := plan.Forward(bins, in); err != nil {
		return fmt.Errorf("envelope: forward fft: %w", err)
	}

	// Analytic signal: keep DC and Nyquist, double positive, drop negative.
	for k := 1; k < size; k++ {
		switch {
		case 2*k < size:
			bins[k] *= 2
		case 2*k > size:
			bins[k] = 0
		}
	}

	analytic := make([]complex128, size)
	if err := plan.Inverse(analytic, bins); err != nil {
		return fmt.Errorf("envelope: inverse fft: %w", err)
	}
	for i := range x {
		x[i] = cmplx.Abs(analytic[i])
	}

	t.SetData(x)
	return nil
}

// EnvelopeAll replaces every trace by its envelope.
func (p *Processor) EnvelopeAll(traces []*sac.Trace) error { return Each(traces, p.Envelope) }

// EnvelopeCopy returns the envelope of t as a new trace.
func (p *Processor) EnvelopeCopy(t *sac.Trace) (*sac.Trace, error) { return Copy(t, p.Envelope) }

// EnvelopeAllCopy returns envelopes of copies of traces.
func (p *Processor) EnvelopeAllCopy(traces []*sac.Trace) ([]*sac.Trace, error) {
	return CopyAll(traces, p.Envelope)
}

// Envelope replaces t by its envelope with the default Processor.
func Envelope(t *sac.Trace) error { return std.Envelope(t) }
