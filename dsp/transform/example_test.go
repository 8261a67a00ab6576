package transform_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/dsp/transform"
)

func ExampleRecursiveReal() {
	x := transform.RecursiveReal([]float64{1, 2, 3, 4})
	for _, v := range x {
		fmt.Printf("%.1f ", v)
	}
	fmt.Println()
	// Output:
	// (10.0+0.0i) (-2.0+2.0i) (-2.0+0.0i) (-2.0-2.0i)
}

func ExampleWithObserver() {
	var rec transform.Recorder
	_ = transform.RecursiveReal([]float64{1, 2, 3, 4, 5, 6}, transform.WithObserver(rec.Observe))
	for _, n := range rec.Notices() {
		fmt.Printf("length=%d depth=%d reason=%s\n", n.Length, n.Depth, n.Reason)
	}
	// Output:
	// length=3 depth=1 reason=odd-length
	// length=3 depth=1 reason=odd-length
}
