package transform

import (
	"math"
	"math/cmplx"
)

// Recursive returns the discrete Fourier transform of x using a radix-2
// decimation-in-time split.
//
// Lengths 0 and 1 are returned as a copy of the input. Odd lengths > 1 are
// evaluated by [Direct] and reported through the observer. Even lengths split
// into even- and odd-indexed halves, each transformed recursively, and are
// recombined with the butterfly
//
//	t          = exp(-2*pi*i*k/N) * odd[k]
//	out[k]     = even[k] + t
//	out[k+N/2] = even[k] - t
//
// Lengths with odd factors degrade toward O(N^2) in proportion to the odd
// part of N.
func Recursive(x []complex128, opts ...Option) []complex128 {
	cfg := applyOptions(opts)
	return cfg.recurse(x, 0)
}

// RecursiveReal returns the recursive FFT of a real signal.
func RecursiveReal(x []float64, opts ...Option) []complex128 {
	return Recursive(FromReal(x), opts...)
}

func (c *config) recurse(x []complex128, depth int) []complex128 {
	n := len(x)
	if n <= 1 {
		out := make([]complex128, n)
		copy(out, x)
		return out
	}

	if n%2 == 1 {
		c.notify(Notice{Length: n, Depth: depth, Reason: ReasonOddLength})
		return Direct(x)
	}

	if depth >= c.maxDepth {
		c.notify(Notice{Length: n, Depth: depth, Reason: ReasonDepthLimit})
		return Direct(x)
	}

	half := n / 2
	even := make([]complex128, half)
	odd := make([]complex128, half)
	for i := range half {
		even[i] = x[2*i]
		odd[i] = x[2*i+1]
	}

	even = c.recurse(even, depth+1)
	odd = c.recurse(odd, depth+1)

	out := make([]complex128, n)
	step := -2 * math.Pi / float64(n)
	for k := range half {
		t := cmplx.Exp(complex(0, step*float64(k))) * odd[k]
		out[k] = even[k] + t
		out[k+half] = even[k] - t
	}

	return out
}
