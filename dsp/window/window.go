package window

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies an edge taper shape.
type Type int

const (
	TypeHann Type = iota + 1
	TypeHamming
	TypeCosine
)

func (t Type) String() string {
	switch t {
	case TypeHann:
		return "hanning"
	case TypeHamming:
		return "hamming"
	case TypeCosine:
		return "cosine"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Valid reports whether t is a known taper shape.
func (t Type) Valid() bool { return t >= TypeHann && t <= TypeCosine }

// ParseType maps a taper name to its Type. Both "hann" and "hanning" are
// accepted.
func ParseType(name string) (Type, error) {
	switch name {
	case "hann", "hanning":
		return TypeHann, nil
	case "hamming":
		return TypeHamming, nil
	case "cosine":
		return TypeCosine, nil
	default:
		return 0, fmt.Errorf("%w: %q", errUnknownType, name)
	}
}

// TaperLength returns the half-taper length for a series of npts samples and
// a fractional width: max(2, floor((npts+1)*width)), capped at npts.
func TaperLength(npts int, width float64) int {
	n := max(2, int(math.Floor(float64(npts+1)*width)))
	return min(n, npts)
}

// HalfTaper returns the rising half of a taper of length n. Weight i is
// f0 - f1*cos(pi*i/n) for Hann (0.5, 0.5) and Hamming (0.54, 0.46), and
// sin(pi*i/(2n)) for Cosine.
func HalfTaper(t Type, n int) ([]float64, error) {
	if err := validateLength(n); err != nil {
		return nil, err
	}

	var f0, f1 float64
	switch t {
	case TypeHann:
		f0, f1 = 0.5, 0.5
	case TypeHamming:
		f0, f1 = 0.54, 0.46
	case TypeCosine:
	default:
		return nil, fmt.Errorf("%w: %s", errUnknownType, t)
	}

	w := make([]float64, n)
	for i := range w {
		x := float64(i) / float64(n)
		if t == TypeCosine {
			w[i] = math.Sin(math.Pi * x / 2)
		} else {
			w[i] = f0 - f1*math.Cos(math.Pi*x)
		}
	}

	return w, nil
}

// ApplyEdges multiplies the first len(w) samples of buf by w and the last
// len(w) samples by w reversed. Overlapping edges are weighted twice.
func ApplyEdges(buf, w []float64) {
	n := min(len(w), len(buf))
	if n == 0 {
		return
	}

	vecmath.MulBlockInPlace(buf[:n], w[:n])

	rev := make([]float64, n)
	for i := range rev {
		rev[i] = w[n-1-i]
	}
	vecmath.MulBlockInPlace(buf[len(buf)-n:], rev)
}
