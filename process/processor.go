package process

import (
	"log/slog"

	"github.com/cwbudde/algo-sac/dsp/filter/biquad"
	"github.com/cwbudde/algo-sac/dsp/filter/design"
	"github.com/cwbudde/algo-sac/dsp/interp"
)

// FilterDesigner synthesizes and applies IIR filters.
type FilterDesigner interface {
	// DesignFilter returns a biquad cascade for the requested response.
	DesignFilter(kind design.Kind, corners []float64, sampleRate float64,
		proto design.Prototype, poles int) ([]biquad.Coefficients, error)
	// ApplyForward filters samples causally.
	ApplyForward(coeffs []biquad.Coefficients, samples []float64) []float64
	// ApplyZeroPhase filters samples forward and then backward.
	ApplyZeroPhase(coeffs []biquad.Coefficients, samples []float64) []float64
}

// SplineModel evaluates a fitted spline.
type SplineModel interface {
	Evaluate(times []float64) []float64
}

// SplineFitter fits a spline of the given degree through (times, samples).
type SplineFitter interface {
	FitSpline(times, samples []float64, degree int) (SplineModel, error)
}

// Processor applies trace transforms with an explicit logger and explicit
// numerical collaborators. The zero value uses the defaults.
type Processor struct {
	logger  *slog.Logger
	filters FilterDesigner
	splines SplineFitter
}

// Option configures a Processor.
type Option func(*Processor)

// WithLogger sets the logger for non-fatal adjustments such as clamped cut
// windows. The default is slog.Default() at the time of logging.
func WithLogger(l *slog.Logger) Option {
	return func(p *Processor) {
		p.logger = l
	}
}

// WithFilterDesigner replaces the filter collaborator.
func WithFilterDesigner(d FilterDesigner) Option {
	return func(p *Processor) {
		if d != nil {
			p.filters = d
		}
	}
}

// WithSplineFitter replaces the interpolation collaborator.
func WithSplineFitter(f SplineFitter) Option {
	return func(p *Processor) {
		if f != nil {
			p.splines = f
		}
	}
}

// New returns a Processor using the Butterworth designer and quadratic
// spline fitter unless overridden.
func New(opts ...Option) *Processor {
	p := &Processor{
		filters: design.Designer{},
		splines: quadraticFitter{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

func (p *Processor) log() *slog.Logger {
	if p.logger != nil {
		return p.logger
	}
	return slog.Default()
}

func (p *Processor) designer() FilterDesigner {
	if p.filters != nil {
		return p.filters
	}
	return design.Designer{}
}

func (p *Processor) fitter() SplineFitter {
	if p.splines != nil {
		return p.splines
	}
	return quadraticFitter{}
}

var std = New()

// quadraticFitter adapts interp.QuadraticFitter, whose model type is
// concrete, to SplineFitter.
type quadraticFitter struct{}

func (quadraticFitter) FitSpline(times, samples []float64, degree int) (SplineModel, error) {
	m, err := interp.QuadraticFitter{}.FitSpline(times, samples, degree)
	if err != nil {
		return nil, err
	}
	return m, nil
}
