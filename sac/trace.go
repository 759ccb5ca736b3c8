package sac

import (
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/cwbudde/algo-sac/geodesy"
	tstats "github.com/cwbudde/algo-sac/stats/time"
)

// GeodesyProvider computes great-circle geometry between two points on an
// ellipsoidal earth. Angles are in degrees; the first point is the origin.
type GeodesyProvider interface {
	GreatCircle(lon0, lat0, lon1, lat1, flattening float64) (gcarc, az, baz float64)
}

// Trace is a SAC record: a fixed-schema header plus an evenly sampled
// amplitude sequence. A Trace exclusively owns its header and samples.
type Trace struct {
	hdr  Header
	data []float32
	geo  GeodesyProvider
}

// Option configures trace construction and decoding.
type Option func(*config)

type config struct {
	begin    float64
	geo      GeodesyProvider
	logger   *slog.Logger
	autoSwap bool
}

func defaultConfig() config {
	return config{
		geo:      geodesy.WGS84,
		logger:   slog.Default(),
		autoSwap: true,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithBegin sets the begin time b of a newly constructed trace.
func WithBegin(b float64) Option {
	return func(c *config) {
		c.begin = b
	}
}

// WithGeodesy replaces the great-circle provider used to keep az, baz and
// gcarc consistent with the coordinates.
func WithGeodesy(p GeodesyProvider) Option {
	return func(c *config) {
		if p != nil {
			c.geo = p
		}
	}
}

// WithLogger sets the logger used while decoding.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithAutoSwap controls whether Decode byte-swaps foreign-endian records.
// When disabled, such records fail with ErrEndianMismatch.
func WithAutoSwap(enabled bool) Option {
	return func(c *config) {
		c.autoSwap = enabled
	}
}

// New returns a trace with npts zero samples spaced delta seconds apart.
// All header fields not implied by the arguments are left unset.
func New(delta float64, npts int, opts ...Option) (*Trace, error) {
	if !(delta > 0) || math.IsInf(delta, 0) {
		return nil, Validationf("delta must be > 0: %v", delta)
	}
	if npts < 0 {
		return nil, Validationf("npts must be >= 0: %d", npts)
	}

	cfg := applyOptions(opts)

	t := &Trace{
		hdr:  NewHeader(),
		data: make([]float32, npts),
		geo:  cfg.geo,
	}
	t.hdr.Floats[Delta] = float32(delta)
	t.hdr.Floats[B] = float32(cfg.begin)
	t.hdr.Ints[Nvhdr] = HeaderVersion
	t.hdr.Ints[Iftype] = ITime
	t.hdr.Bools[Leven] = true
	t.Refresh()

	return t, nil
}

// Header returns a copy of the header.
func (t *Trace) Header() Header {
	return t.hdr
}

// Delta returns the sampling interval in seconds.
func (t *Trace) Delta() float64 { return float64(t.hdr.Floats[Delta]) }

// B returns the begin time.
func (t *Trace) B() float64 { return float64(t.hdr.Floats[B]) }

// E returns the end time.
func (t *Trace) E() float64 { return float64(t.hdr.Floats[E]) }

// Npts returns the number of samples.
func (t *Trace) Npts() int { return len(t.data) }

// Data returns a float64 copy of the samples.
func (t *Trace) Data() []float64 {
	out := make([]float64, len(t.data))
	for i, v := range t.data {
		out[i] = float64(v)
	}
	return out
}

// Times returns the time of every sample relative to the reference time.
func (t *Trace) Times() []float64 {
	b, delta := t.B(), t.Delta()
	out := make([]float64, len(t.data))
	for i := range out {
		out[i] = b + float64(i)*delta
	}
	return out
}

// SetData replaces the samples, keeping b and delta.
func (t *Trace) SetData(data []float64) {
	t.storeData(data)
	t.Refresh()
}

// SetSeries replaces begin time, sampling interval and samples in one step.
func (t *Trace) SetSeries(b, delta float64, data []float64) error {
	if !(delta > 0) || math.IsInf(delta, 0) {
		return Validationf("delta must be > 0: %v", delta)
	}
	t.hdr.Floats[B] = float32(b)
	t.hdr.Floats[Delta] = float32(delta)
	t.storeData(data)
	t.Refresh()
	return nil
}

func (t *Trace) storeData(data []float64) {
	if cap(t.data) >= len(data) {
		t.data = t.data[:len(data)]
	} else {
		t.data = make([]float32, len(data))
	}
	for i, v := range data {
		t.data[i] = float32(v)
	}
}

// Clone returns a deep copy of the trace.
func (t *Trace) Clone() *Trace {
	c := &Trace{
		hdr:  t.hdr,
		data: make([]float32, len(t.data)),
		geo:  t.geo,
	}
	copy(c.data, t.data)
	return c
}

// Float returns a float header field.
func (t *Trace) Float(k FloatKey) float64 { return float64(t.hdr.Floats[k]) }

// Int returns an integer header field.
func (t *Trace) Int(k IntKey) int { return int(t.hdr.Ints[k]) }

// Bool returns a logical header field.
func (t *Trace) Bool(k BoolKey) bool { return t.hdr.Bools[k] }

// Text returns a text header field.
func (t *Trace) Text(k TextKey) string { return t.hdr.Texts[k] }

// IsSet reports whether the float field holds a non-sentinel value.
func (t *Trace) IsSet(k FloatKey) bool { return t.hdr.IsSet(k) }

// SetFloat assigns a float header field. Fields derived from the samples are
// read-only. Changing b or delta refreshes e; changing a station or event
// coordinate refreshes az, baz and gcarc.
func (t *Trace) SetFloat(k FloatKey, v float64) error {
	if k < 0 || int(k) >= NumFloats {
		return Validationf("unknown float field %d", int(k))
	}
	switch k {
	case E, Depmin, Depmax, Depmen:
		return Validationf("%s is derived from the samples", k)
	case Delta:
		if !(v > 0) || math.IsInf(v, 0) {
			return Validationf("delta must be > 0: %v", v)
		}
	}

	t.hdr.Floats[k] = float32(v)

	switch k {
	case Delta, B:
		t.Refresh()
	case Stla, Stlo, Evla, Evlo:
		t.RefreshGeometry()
	}
	return nil
}

// SetInt assigns an integer header field. npts follows the sample buffer
// and nvhdr is fixed at HeaderVersion.
func (t *Trace) SetInt(k IntKey, v int) error {
	if k < 0 || int(k) >= NumInts {
		return Validationf("unknown int field %d", int(k))
	}
	switch k {
	case Npts:
		return Validationf("npts is derived from the samples")
	case Nvhdr:
		if v != HeaderVersion {
			return Validationf("nvhdr must be %d: %d", HeaderVersion, v)
		}
	}
	t.hdr.Ints[k] = int32(v)
	return nil
}

// SetBool assigns a logical header field.
func (t *Trace) SetBool(k BoolKey, v bool) error {
	if k < 0 || int(k) >= NumBools {
		return Validationf("unknown bool field %d", int(k))
	}
	t.hdr.Bools[k] = v
	return nil
}

// SetText assigns a text header field. Values are cut to the field width and
// trailing blanks are dropped, matching what a decode would return.
func (t *Trace) SetText(k TextKey, v string) error {
	if k < 0 || int(k) >= NumTexts {
		return Validationf("unknown text field %d", int(k))
	}
	t.hdr.Texts[k] = normalizeText(v, k.Width())
	return nil
}

func normalizeText(v string, width int) string {
	if len(v) > width {
		v = v[:width]
	}
	return strings.TrimRight(v, " \x00")
}

// Refresh recomputes depmin, depmax, depmen from the samples and e from b,
// delta and npts. Every mutating operation calls it before returning.
func (t *Trace) Refresh() {
	t.hdr.Ints[Npts] = int32(len(t.data))

	b := t.B()
	if len(t.data) == 0 {
		t.hdr.Floats[Depmin] = FloatUnset
		t.hdr.Floats[Depmax] = FloatUnset
		t.hdr.Floats[Depmen] = FloatUnset
		t.hdr.Floats[E] = float32(b)
		return
	}

	s := tstats.Summarize(t.Data())
	t.hdr.Floats[Depmin] = float32(s.Min)
	t.hdr.Floats[Depmax] = float32(s.Max)
	t.hdr.Floats[Depmen] = float32(s.Mean)
	t.hdr.Floats[E] = float32(b + t.Delta()*float64(len(t.data)-1))
}

// RefreshGeometry recomputes az, baz and gcarc from the event and station
// coordinates. It does nothing unless all four coordinates are set.
func (t *Trace) RefreshGeometry() {
	for _, k := range [...]FloatKey{Stla, Stlo, Evla, Evlo} {
		if !t.hdr.IsSet(k) {
			return
		}
	}
	geo := t.geo
	if geo == nil {
		geo = geodesy.WGS84
	}

	gcarc, az, baz := geo.GreatCircle(t.Float(Evlo), t.Float(Evla), t.Float(Stlo), t.Float(Stla), geodesy.WGS84Flattening)
	t.hdr.Floats[Gcarc] = float32(gcarc)
	t.hdr.Floats[Az] = float32(az)
	t.hdr.Floats[Baz] = float32(baz)
}

// ReferenceTime returns the reference time encoded in nzyear..nzmsec. The
// second result is false if any of those fields is unset.
func (t *Trace) ReferenceTime() (time.Time, bool) {
	for _, k := range [...]IntKey{Nzyear, Nzjday, Nzhour, Nzmin, Nzsec, Nzmsec} {
		if t.hdr.Ints[k] == IntUnset {
			return time.Time{}, false
		}
	}
	h := &t.hdr
	ref := time.Date(int(h.Ints[Nzyear]), time.January, 1,
		int(h.Ints[Nzhour]), int(h.Ints[Nzmin]), int(h.Ints[Nzsec]),
		int(h.Ints[Nzmsec])*int(time.Millisecond), time.UTC)
	return ref.AddDate(0, 0, int(h.Ints[Nzjday])-1), true
}

// SetReferenceTime stores ref (truncated to milliseconds, in UTC) in
// nzyear..nzmsec.
func (t *Trace) SetReferenceTime(ref time.Time) {
	ref = ref.UTC()
	h := &t.hdr
	h.Ints[Nzyear] = int32(ref.Year())
	h.Ints[Nzjday] = int32(ref.YearDay())
	h.Ints[Nzhour] = int32(ref.Hour())
	h.Ints[Nzmin] = int32(ref.Minute())
	h.Ints[Nzsec] = int32(ref.Second())
	h.Ints[Nzmsec] = int32(ref.Nanosecond() / int(time.Millisecond))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 32)
}

func formatInt(v int) string {
	return strconv.Itoa(v)
}
