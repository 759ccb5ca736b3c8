package process_test

import (
	"fmt"

	"github.com/cwbudde/algo-sac/process"
	"github.com/cwbudde/algo-sac/sac"
)

func ExampleDifferentiate() {
	tr, _ := sac.New(0.5, 0)
	tr.SetData([]float64{1, 2, 4, 7, 11})

	if err := process.Differentiate(tr, process.TwoPoint); err != nil {
		panic(err)
	}
	fmt.Println(tr.Npts(), tr.B(), tr.Data())
	// Output:
	// 4 0.25 [2 4 6 8]
}

func ExampleTimeShift() {
	tr, _ := sac.New(1, 0)
	tr.SetData([]float64{1, 2, 3, 4})

	if err := process.TimeShift(tr, 1, false); err != nil {
		panic(err)
	}
	fmt.Println(tr.Data())
	// Output:
	// [0 1 2 3]
}
