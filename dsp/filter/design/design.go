package design

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSpec reports a filter request the designer cannot satisfy:
	// unknown kind or prototype, wrong corner count, bad poles or corners.
	ErrInvalidSpec = errors.New("design: invalid filter specification")
	// ErrUnimplementedPrototype reports a prototype that is recognized but
	// not synthesized.
	ErrUnimplementedPrototype = errors.New("design: unimplemented filter prototype")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidSpec}, args...)...)
}

// Kind selects the filter response.
type Kind int

const (
	Lowpass Kind = iota + 1
	Highpass
	Bandpass
)

func (k Kind) String() string {
	switch k {
	case Lowpass:
		return "lowpass"
	case Highpass:
		return "highpass"
	case Bandpass:
		return "bandpass"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Corners is the number of corner frequencies the kind takes.
func (k Kind) Corners() int {
	switch k {
	case Lowpass, Highpass:
		return 1
	case Bandpass:
		return 2
	default:
		return 0
	}
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool { return k.Corners() > 0 }

// Prototype selects the analog prototype family. The zero value is
// Butterworth.
type Prototype int

const (
	Butterworth Prototype = iota
	Bessel
	Chebyshev1
	Chebyshev2
)

func (p Prototype) String() string {
	switch p {
	case Butterworth:
		return "butterworth"
	case Bessel:
		return "bessel"
	case Chebyshev1:
		return "chebyshev1"
	case Chebyshev2:
		return "chebyshev2"
	default:
		return fmt.Sprintf("Prototype(%d)", int(p))
	}
}

// Valid reports whether p is a known prototype.
func (p Prototype) Valid() bool { return p >= Butterworth && p <= Chebyshev2 }

// IsUnimplemented reports whether err came from a prototype that is known
// but not synthesized.
func IsUnimplemented(err error) bool {
	return errors.Is(err, ErrUnimplementedPrototype)
}
