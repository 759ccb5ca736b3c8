package biquad_test

import (
	"fmt"

	"github.com/cwbudde/algo-sac/dsp/filter/biquad"
)

func ExampleChain_ProcessBlock() {
	chain := biquad.NewChain([]biquad.Coefficients{
		{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04},
		{B0: 0.1, B1: 0.2, B2: 0.1, A1: -0.5, A2: 0.1},
	})

	step := []float64{1, 1, 1, 1}
	chain.ProcessBlock(step)
	for i, y := range step {
		fmt.Printf("y[%d] = %.6f\n", i, y)
	}
	// Output:
	// y[0] = 0.025000
	// y[1] = 0.142500
	// y[2] = 0.368750
	// y[3] = 0.599925
}

func ExampleZeroPhase() {
	coeffs := []biquad.Coefficients{{B0: 0.5, B1: 0.5}}
	fmt.Println(biquad.ZeroPhase(coeffs, []float64{0, 0, 4, 0, 0}))
	// Output:
	// [0 1 2 1 0]
}
