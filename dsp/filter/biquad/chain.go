package biquad

// Chain runs a cascade of sections in series. Delay lines carry over
// between ProcessBlock calls until Reset.
type Chain struct {
	sections []Section
}

// NewChain returns a cascade at rest with one section per coefficient set,
// applied in slice order.
func NewChain(coeffs []Coefficients) *Chain {
	sections := make([]Section, len(coeffs))
	for i, c := range coeffs {
		sections[i] = Section{Coefficients: c}
	}
	return &Chain{sections: sections}
}

// ProcessBlock filters buf in place. Each section consumes the whole block
// before the next one starts, which is equivalent to cascading per sample.
func (c *Chain) ProcessBlock(buf []float64) {
	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// Reset returns every section to rest.
func (c *Chain) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}
