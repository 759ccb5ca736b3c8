package process

import (
	"fmt"

	"github.com/cwbudde/algo-sac/dsp/filter/biquad"
	"github.com/cwbudde/algo-sac/dsp/filter/design"
	"github.com/cwbudde/algo-sac/sac"
)

// FilterRequest describes an IIR filter to run over a trace. Build one with
// Lowpass, Highpass or Bandpass, which fill in two poles, one pass and the
// Butterworth prototype.
type FilterRequest struct {
	Kind      design.Kind
	Corners   []float64 // Hz; one corner, or two increasing corners for bandpass
	Poles     int
	Passes    int // 1 for causal, 2 for zero-phase
	Prototype design.Prototype
}

// Lowpass requests a lowpass at corner Hz.
func Lowpass(corner float64) FilterRequest {
	return newRequest(design.Lowpass, corner)
}

// Highpass requests a highpass at corner Hz.
func Highpass(corner float64) FilterRequest {
	return newRequest(design.Highpass, corner)
}

// Bandpass requests a bandpass between low and high Hz.
func Bandpass(low, high float64) FilterRequest {
	return newRequest(design.Bandpass, low, high)
}

func newRequest(kind design.Kind, corners ...float64) FilterRequest {
	return FilterRequest{
		Kind:      kind,
		Corners:   corners,
		Poles:     2,
		Passes:    1,
		Prototype: design.Butterworth,
	}
}

// WithPoles returns a copy of r with the given pole count.
func (r FilterRequest) WithPoles(n int) FilterRequest {
	r.Poles = n
	return r
}

// WithPasses returns a copy of r with the given pass count.
func (r FilterRequest) WithPasses(n int) FilterRequest {
	r.Passes = n
	return r
}

// WithPrototype returns a copy of r with the given prototype.
func (r FilterRequest) WithPrototype(proto design.Prototype) FilterRequest {
	r.Prototype = proto
	return r
}

func (r FilterRequest) String() string {
	return fmt.Sprintf("%s %s %v Hz, %d poles, %d pass(es)", r.Prototype, r.Kind, r.Corners, r.Poles, r.Passes)
}

func (r FilterRequest) validate(sampleRate float64) error {
	if !r.Kind.Valid() {
		return sac.Validationf("unknown filter kind %d", int(r.Kind))
	}
	if len(r.Corners) != r.Kind.Corners() {
		return sac.Validationf("%s takes %d corner(s), got %d", r.Kind, r.Kind.Corners(), len(r.Corners))
	}
	if r.Kind == design.Bandpass && !(r.Corners[0] < r.Corners[1]) {
		return sac.Validationf("bandpass corners must increase, got %v", r.Corners)
	}
	nyquist := sampleRate / 2
	for _, c := range r.Corners {
		if !(c > 0 && c < nyquist) {
			return sac.Validationf("corner %v Hz outside (0, %v)", c, nyquist)
		}
	}
	if r.Poles <= 0 {
		return sac.Validationf("pole count must be positive, got %d", r.Poles)
	}
	if r.Passes != 1 && r.Passes != 2 {
		return sac.Validationf("pass count must be 1 or 2, got %d", r.Passes)
	}
	if !r.Prototype.Valid() {
		return sac.Validationf("unknown filter prototype %d", int(r.Prototype))
	}
	return nil
}

// Filter designs the requested filter at the trace's sample rate and runs
// it over the samples, causally for one pass or forward-backward for two.
// Prototypes other than Butterworth fail with
// design.ErrUnimplementedPrototype, which also matches sac.ErrValidation.
func (p *Processor) Filter(t *sac.Trace, req FilterRequest) error {
	filters := p.designer()
	coeffs, err := p.design(filters, t, req)
	if err != nil {
		return err
	}

	var out []float64
	if req.Passes == 2 {
		out = filters.ApplyZeroPhase(coeffs, t.Data())
	} else {
		out = filters.ApplyForward(coeffs, t.Data())
	}
	t.SetData(out)
	return nil
}

// FilterResponse returns the magnitude in dB that Filter(t, req) would apply
// at each frequency. A zero-phase request counts both passes, doubling the
// dB figure. t is not modified.
func (p *Processor) FilterResponse(t *sac.Trace, req FilterRequest, freqs ...float64) ([]float64, error) {
	coeffs, err := p.design(p.designer(), t, req)
	if err != nil {
		return nil, err
	}

	rate := 1 / t.Delta()
	chain := biquad.NewChain(coeffs)
	out := make([]float64, len(freqs))
	for i, f := range freqs {
		out[i] = float64(req.Passes) * chain.MagnitudeDB(f, rate)
	}
	return out, nil
}

func (p *Processor) design(filters FilterDesigner, t *sac.Trace, req FilterRequest) ([]biquad.Coefficients, error) {
	rate := 1 / t.Delta()
	if err := req.validate(rate); err != nil {
		return nil, err
	}
	coeffs, err := filters.DesignFilter(req.Kind, req.Corners, rate, req.Prototype, req.Poles)
	if err != nil {
		return nil, fmt.Errorf("design %s: %w", req, collaboratorErr(err))
	}
	return coeffs, nil
}

// FilterAll filters every trace with the same request.
func (p *Processor) FilterAll(traces []*sac.Trace, req FilterRequest) error {
	return Each(traces, func(t *sac.Trace) error { return p.Filter(t, req) })
}

// FilterCopy returns a filtered copy of t.
func (p *Processor) FilterCopy(t *sac.Trace, req FilterRequest) (*sac.Trace, error) {
	return Copy(t, func(c *sac.Trace) error { return p.Filter(c, req) })
}

// FilterAllCopy returns filtered copies of traces.
func (p *Processor) FilterAllCopy(traces []*sac.Trace, req FilterRequest) ([]*sac.Trace, error) {
	return CopyAll(traces, func(c *sac.Trace) error { return p.Filter(c, req) })
}

// FilterResponse reports the response of req on t with the default
// Processor.
func FilterResponse(t *sac.Trace, req FilterRequest, freqs ...float64) ([]float64, error) {
	return std.FilterResponse(t, req, freqs...)
}

// Filter filters t with the default Processor.
func Filter(t *sac.Trace, req FilterRequest) error { return std.Filter(t, req) }
