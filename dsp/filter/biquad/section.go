package biquad

// Coefficients holds one second-order section with a0 normalized to 1.
// First-order sections leave B2 and A2 at zero.
//
// Direct Form II Transposed, per sample:
//
//	y  = B0*x + d0
//	d0 = B1*x - A1*y + d1
//	d1 = B2*x - A2*y
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// Section is a biquad with its two-element delay line.
type Section struct {
	Coefficients

	d0, d1 float64
}

// ProcessBlock filters buf in place, continuing from the current delay
// line.
func (s *Section) ProcessBlock(buf []float64) {
	b0, b1, b2 := s.B0, s.B1, s.B2
	a1, a2 := s.A1, s.A2
	d0, d1 := s.d0, s.d1

	for i, x := range buf {
		y := b0*x + d0
		d0 = b1*x - a1*y + d1
		d1 = b2*x - a2*y
		buf[i] = y
	}

	s.d0, s.d1 = d0, d1
}

// Reset zeroes the delay line.
func (s *Section) Reset() {
	s.d0, s.d1 = 0, 0
}
