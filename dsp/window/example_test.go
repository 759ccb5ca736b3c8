package window_test

import (
	"fmt"

	"github.com/cwbudde/algo-sac/dsp/window"
)

func ExampleApplyEdges() {
	buf := []float64{1, 1, 1, 1, 1, 1, 1, 1}
	w, err := window.HalfTaper(window.TypeHann, window.TaperLength(len(buf), 0.25))
	if err != nil {
		panic(err)
	}

	window.ApplyEdges(buf, w)
	fmt.Printf("%.2f\n", buf)
	// Output:
	// [0.00 0.50 1.00 1.00 1.00 1.00 0.50 0.00]
}
