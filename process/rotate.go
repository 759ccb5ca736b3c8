package process

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sac/sac"
)

// orthogonalTolerance is how far (degrees) two component azimuths may stray
// from perpendicular.
const orthogonalTolerance = 1e-3

// RotateThrough rotates the horizontal pair (a, b) clockwise by phi degrees:
//
//	a' =  cos(phi)*a + sin(phi)*b
//	b' = -sin(phi)*a + cos(phi)*b
//
// Both traces need the same npts and delta, and cmpaz values set and
// perpendicular. Each cmpaz becomes (cmpaz+phi) mod 360 and each kcmpnm the
// new azimuth as three zero-padded digits. Neither trace is modified on
// failure.
func (p *Processor) RotateThrough(a, b *sac.Trace, phi float64) error {
	if a.Npts() != b.Npts() {
		return sac.Validationf("rotate: npts differ (%d vs %d)", a.Npts(), b.Npts())
	}
	if a.Delta() != b.Delta() {
		return sac.Validationf("rotate: delta differs (%v vs %v)", a.Delta(), b.Delta())
	}
	if !a.IsSet(sac.Cmpaz) || !b.IsSet(sac.Cmpaz) {
		return sac.Validationf("rotate: cmpaz unset")
	}
	azA, azB := a.Float(sac.Cmpaz), b.Float(sac.Cmpaz)
	if d := math.Mod(math.Abs(azA-azB), 180); math.Abs(d-90) > orthogonalTolerance {
		return sac.Validationf("rotate: components %v and %v are not perpendicular", azA, azB)
	}

	s, c := math.Sincos(phi * math.Pi / 180)
	x, y := a.Data(), b.Data()
	for i := range x {
		x[i], y[i] = c*x[i]+s*y[i], -s*x[i]+c*y[i]
	}

	for _, tr := range []struct {
		t  *sac.Trace
		az float64
	}{{a, azA}, {b, azB}} {
		az := normalizeAzimuth(tr.az + phi)
		if err := tr.t.SetFloat(sac.Cmpaz, az); err != nil {
			return err
		}
		if err := tr.t.SetText(sac.Kcmpnm, componentName(az)); err != nil {
			return err
		}
	}
	a.SetData(x)
	b.SetData(y)
	return nil
}

// RotateAll rotates consecutive pairs (0,1), (2,3), ... by phi. The slice
// length must be even.
func (p *Processor) RotateAll(traces []*sac.Trace, phi float64) error {
	if len(traces)%2 != 0 {
		return sac.Validationf("rotate: odd number of traces (%d)", len(traces))
	}
	for i := 0; i < len(traces); i += 2 {
		if err := p.RotateThrough(traces[i], traces[i+1], phi); err != nil {
			return fmt.Errorf("pair %d: %w", i/2, err)
		}
	}
	return nil
}

// RotateThroughCopy returns rotated copies of a and b.
func (p *Processor) RotateThroughCopy(a, b *sac.Trace, phi float64) (*sac.Trace, *sac.Trace, error) {
	ca, cb := a.Clone(), b.Clone()
	if err := p.RotateThrough(ca, cb, phi); err != nil {
		return nil, nil, err
	}
	return ca, cb, nil
}

// RotateAllCopy returns rotated copies of every pair in traces.
func (p *Processor) RotateAllCopy(traces []*sac.Trace, phi float64) ([]*sac.Trace, error) {
	clones := cloneAll(traces)
	if err := p.RotateAll(clones, phi); err != nil {
		return nil, err
	}
	return clones, nil
}

// RotateThrough rotates a and b with the default Processor.
func RotateThrough(a, b *sac.Trace, phi float64) error { return std.RotateThrough(a, b, phi) }

func normalizeAzimuth(az float64) float64 {
	az = math.Mod(az, 360)
	if az < 0 {
		az += 360
	}
	return az
}

func componentName(az float64) string {
	return fmt.Sprintf("%03d", int(math.Round(az))%360)
}
