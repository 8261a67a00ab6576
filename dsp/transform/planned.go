package transform

import (
	"fmt"

	algofft "github.com/cwbudde/algo-fft"
)

// Planned returns the discrete Fourier transform of x computed by an
// algo-fft plan of length len(x).
//
// When algo-fft cannot build a plan for the length, the transform falls back
// to [Recursive] with the same options. An error is returned only when a plan
// was built but failed to execute.
func Planned(x []complex128, opts ...Option) ([]complex128, error) {
	n := len(x)
	if n <= 1 {
		out := make([]complex128, n)
		copy(out, x)
		return out, nil
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return Recursive(x, opts...), nil
	}

	src := make([]complex128, n)
	copy(src, x)
	out := make([]complex128, n)

	if err := plan.Forward(out, src); err != nil {
		return nil, fmt.Errorf("transform: planned forward (n=%d): %w", n, err)
	}

	return out, nil
}
