package biquad

// Forward runs samples once through a fresh cascade and returns the
// filtered copy. The input is not modified.
func Forward(coeffs []Coefficients, samples []float64) []float64 {
	out := make([]float64, len(samples))
	copy(out, samples)
	NewChain(coeffs).ProcessBlock(out)

	return out
}

// ZeroPhase filters samples forward, reverses, filters again from zero
// state and reverses back. The magnitude response is squared and the phase
// response cancels.
func ZeroPhase(coeffs []Coefficients, samples []float64) []float64 {
	out := make([]float64, len(samples))
	copy(out, samples)

	chain := NewChain(coeffs)
	chain.ProcessBlock(out)
	reverse(out)
	chain.Reset()
	chain.ProcessBlock(out)
	reverse(out)

	return out
}

func reverse(buf []float64) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}
